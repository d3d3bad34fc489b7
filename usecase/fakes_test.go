package usecase

import (
	"context"
	"errors"

	"github.com/samueldharshi/reflectra/domain/entities"
	"github.com/samueldharshi/reflectra/domain/repositories"
)

// fakeGenerator is a scripted TextGenerator for tests.
type fakeGenerator struct {
	name  string
	reply string
	err   error
	calls int
}

func (f *fakeGenerator) Name() string { return f.name }

func (f *fakeGenerator) Generate(_ context.Context, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

// fakeSTT is a scripted SpeechToText for tests.
type fakeSTT struct {
	transcript string
	err        error
	lastInput  repositories.TranscribeInput
}

func (f *fakeSTT) Name() string { return "fake-stt" }

func (f *fakeSTT) Transcribe(_ context.Context, input repositories.TranscribeInput) (string, error) {
	f.lastInput = input
	if f.err != nil {
		return "", f.err
	}
	return f.transcript, nil
}

// fakeTTS is a scripted TextToSpeech for tests.
type fakeTTS struct {
	audio    []byte
	err      error
	lastText string
}

func (f *fakeTTS) Name() string { return "fake-tts" }

func (f *fakeTTS) Synthesize(_ context.Context, text string) ([]byte, error) {
	f.lastText = text
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

// fakeReflectionRepo is an in-memory ReflectionRepository for tests.
type fakeReflectionRepo struct {
	reflections []*entities.Reflection
	err         error
}

func (f *fakeReflectionRepo) Create(_ context.Context, reflection *entities.Reflection) error {
	if f.err != nil {
		return f.err
	}
	f.reflections = append([]*entities.Reflection{reflection}, f.reflections...)
	return nil
}

func (f *fakeReflectionRepo) GetRecentByUserID(_ context.Context, userID string, limit int) ([]*entities.Reflection, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*entities.Reflection
	for _, r := range f.reflections {
		if r.UserID == userID {
			out = append(out, r)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

var errProviderDown = errors.New("provider down")
