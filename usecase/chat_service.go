package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/samueldharshi/reflectra/domain/entities"
	"github.com/samueldharshi/reflectra/domain/repositories"
)

// ChatReply is the outcome of the direct chat path. Text is always populated;
// Fallback marks replies produced by the canned responder.
type ChatReply struct {
	Text     string
	Provider string
	Fallback bool
}

// ChatService answers direct chat messages by prompting the configured text
// generators in order and substituting the canned responder when every
// provider fails or none is configured.
type ChatService struct {
	generators []repositories.TextGenerator
	logger     *zap.Logger
}

// NewChatService creates a new chat service. The generator slice is evaluated
// in order with short-circuit on first success; it may be empty, in which case
// every reply comes from the canned responder.
func NewChatService(generators []repositories.TextGenerator, logger *zap.Logger) *ChatService {
	return &ChatService{
		generators: generators,
		logger:     logger,
	}
}

// Respond builds the chat prompt and produces a reply. It never returns an
// error: provider failures degrade to the canned responder.
func (s *ChatService) Respond(ctx context.Context, message string, history []entities.ReflectionSummary) ChatReply {
	prompt := BuildChatPrompt(message, history)

	if text, provider, ok := s.generate(ctx, prompt); ok {
		return ChatReply{Text: text, Provider: provider}
	}

	s.logger.Info("All text generators unavailable, using canned response")
	return ChatReply{
		Text:     Fallback(message),
		Provider: FallbackProvider,
		Fallback: true,
	}
}

// generate runs the ordered provider chain. It returns false when no provider
// produced usable text.
func (s *ChatService) generate(ctx context.Context, prompt string) (string, string, bool) {
	for _, generator := range s.generators {
		text, err := generator.Generate(ctx, prompt)
		if err != nil {
			s.logger.Warn("Text generation failed",
				zap.String("provider", generator.Name()),
				zap.Error(err))
			continue
		}
		if strings.TrimSpace(text) == "" {
			s.logger.Warn("Text generator returned empty response",
				zap.String("provider", generator.Name()))
			continue
		}
		return strings.TrimSpace(text), generator.Name(), true
	}
	return "", "", false
}
