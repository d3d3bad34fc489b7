package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/samueldharshi/reflectra/domain/entities"
	"github.com/samueldharshi/reflectra/domain/repositories"
)

// transcriptionPlaceholder substitutes for the transcript when speech
// recognition fails, so the remaining stages still run.
const transcriptionPlaceholder = "I couldn't quite hear that, but I'd like to reflect with you."

// VoiceResult is the outcome of one voice round trip. Transcription and Reply
// are always populated; Audio is empty when synthesis failed or was disabled,
// which callers must treat as "no playback" rather than an error.
type VoiceResult struct {
	Transcription string
	STTProvider   string
	Reply         string
	ReplyProvider string
	Audio         []byte
	TTSProvider   string
}

// VoiceService orchestrates the voice round trip: transcribe, compose a
// short-form prompt, generate, truncate, synthesize. Each stage degrades on
// failure without aborting the stages after it, and no external call is
// retried; text generation alone is attempted across the two configured
// providers, strictly in order.
type VoiceService struct {
	speechToText repositories.SpeechToText
	textToSpeech repositories.TextToSpeech
	generators   []repositories.TextGenerator
	logger       *zap.Logger
}

// NewVoiceService creates a new voice orchestrator. Any of the provider
// arguments may be nil (unconfigured); the corresponding stage then degrades
// the same way it does on a call failure.
func NewVoiceService(
	stt repositories.SpeechToText,
	tts repositories.TextToSpeech,
	generators []repositories.TextGenerator,
	logger *zap.Logger,
) *VoiceService {
	return &VoiceService{
		speechToText: stt,
		textToSpeech: tts,
		generators:   generators,
		logger:       logger,
	}
}

// Process runs the voice pipeline for already-validated input. It never
// returns an error: every stage substitutes a local result on failure, so the
// caller always receives a populated VoiceResult.
func (s *VoiceService) Process(ctx context.Context, input repositories.TranscribeInput, history []entities.ReflectionSummary) VoiceResult {
	result := VoiceResult{}

	// Transcribe. Non-fatal: a failure substitutes the placeholder sentence.
	result.Transcription, result.STTProvider = s.transcribe(ctx, input)

	// Compose and generate, falling back to the canned responder's opening
	// sentence when both providers fail.
	prompt := BuildVoicePrompt(result.Transcription, history)
	result.Reply, result.ReplyProvider = s.generate(ctx, prompt, result.Transcription)

	// Bound playback duration before synthesis.
	result.Reply = Truncate(result.Reply, VoiceWordLimit)

	// Synthesize. A failure leaves the audio field empty.
	result.Audio, result.TTSProvider = s.synthesize(ctx, result.Reply)

	return result
}

func (s *VoiceService) transcribe(ctx context.Context, input repositories.TranscribeInput) (string, string) {
	if s.speechToText == nil {
		s.logger.Info("Speech-to-text not configured, using placeholder transcript")
		return transcriptionPlaceholder, "none"
	}

	transcript, err := s.speechToText.Transcribe(ctx, input)
	if err != nil {
		s.logger.Warn("Transcription failed, using placeholder transcript",
			zap.String("provider", s.speechToText.Name()),
			zap.Error(err))
		return transcriptionPlaceholder, "none"
	}

	return transcript, s.speechToText.Name()
}

func (s *VoiceService) generate(ctx context.Context, prompt, transcript string) (string, string) {
	for _, generator := range s.generators {
		text, err := generator.Generate(ctx, prompt)
		if err != nil {
			s.logger.Warn("Voice text generation failed",
				zap.String("provider", generator.Name()),
				zap.Error(err))
			continue
		}
		if strings.TrimSpace(text) == "" {
			s.logger.Warn("Voice text generator returned empty response",
				zap.String("provider", generator.Name()))
			continue
		}
		return strings.TrimSpace(text), generator.Name()
	}

	s.logger.Info("All text generators unavailable for voice reply, using canned response")
	return FallbackFirstSentence(transcript), FallbackProvider
}

func (s *VoiceService) synthesize(ctx context.Context, reply string) ([]byte, string) {
	if s.textToSpeech == nil {
		s.logger.Info("Text-to-speech not configured, returning text-only reply")
		return nil, "none"
	}

	audio, err := s.textToSpeech.Synthesize(ctx, reply)
	if err != nil {
		s.logger.Warn("Speech synthesis failed, returning text-only reply",
			zap.String("provider", s.textToSpeech.Name()),
			zap.Error(err))
		return nil, "none"
	}

	return audio, s.textToSpeech.Name()
}
