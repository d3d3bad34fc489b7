package repositories

import "context"

// TextGenerator abstracts a text-generation provider. Implementations return an
// error for any transport or provider failure, including an empty or
// whitespace-only completion; they never panic across this boundary.
type TextGenerator interface {
	// Name returns the human-readable provider label echoed to clients,
	// e.g. "Gemini (gemini-2.0-flash)".
	Name() string
	// Generate sends the complete prompt and returns the model's reply.
	Generate(ctx context.Context, prompt string) (string, error)
}
