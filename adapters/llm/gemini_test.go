package llm

import (
	"context"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/samueldharshi/reflectra/internal/config"
)

func TestNewGeminiGeneratorRequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), config.GeminiConfig{}, zaptest.NewLogger(t))
	if err == nil {
		t.Error("expected error when API key is not set")
	}
}

func TestGeminiGeneratorName(t *testing.T) {
	generator, err := NewGeminiGenerator(context.Background(), config.GeminiConfig{
		APIKey: "test-api-key",
		Model:  "gemini-2.0-flash",
	}, zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}

	if got := generator.Name(); got != "Gemini (gemini-2.0-flash)" {
		t.Errorf("Name() = %q", got)
	}
}
