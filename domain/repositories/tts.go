package repositories

import "context"

// TextToSpeech abstracts speech synthesis services
type TextToSpeech interface {
	// Name returns the human-readable provider label echoed to clients.
	Name() string
	// Synthesize renders the given short text as an opaque audio payload.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
