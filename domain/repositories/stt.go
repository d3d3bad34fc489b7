package repositories

import (
	"context"
	"errors"
)

// TranscribeInput carries the audio to transcribe. Exactly one of Audio or URL
// must be set; when URL is set the adapter fetches the remote bytes first.
type TranscribeInput struct {
	Audio []byte
	URL   string
}

var (
	// ErrNoAudioSource is returned when neither audio bytes nor a URL is given.
	ErrNoAudioSource = errors.New("either audio bytes or an audio URL is required")
	// ErrAmbiguousAudioSource is returned when both audio bytes and a URL are given.
	ErrAmbiguousAudioSource = errors.New("audio bytes and audio URL are mutually exclusive")
)

// Validate enforces the exactly-one-source invariant.
func (in TranscribeInput) Validate() error {
	hasAudio := len(in.Audio) > 0
	hasURL := in.URL != ""
	switch {
	case !hasAudio && !hasURL:
		return ErrNoAudioSource
	case hasAudio && hasURL:
		return ErrAmbiguousAudioSource
	}
	return nil
}

// SpeechToText abstracts speech recognition services
type SpeechToText interface {
	// Name returns the human-readable provider label echoed to clients.
	Name() string
	// Transcribe converts spoken audio to a plain utterance string.
	Transcribe(ctx context.Context, input TranscribeInput) (string, error)
}
