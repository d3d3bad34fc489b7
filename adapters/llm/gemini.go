package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/samueldharshi/reflectra/domain/repositories"
	"github.com/samueldharshi/reflectra/internal/config"
)

const (
	geminiTimeout         = 30 * time.Second
	geminiMaxOutputTokens = 512
)

// GeminiGenerator implements TextGenerator using Google's Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	logger *zap.Logger
	model  string
}

var _ repositories.TextGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a new Gemini text generator.
func NewGeminiGenerator(ctx context.Context, cfg config.GeminiConfig, logger *zap.Logger) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiGenerator{
		client: client,
		logger: logger,
		model:  cfg.Model,
	}, nil
}

// Name returns the provider label echoed to clients.
func (g *GeminiGenerator) Name() string {
	return fmt.Sprintf("Gemini (%s)", g.model)
}

// Generate sends the prompt and returns the model's reply. The prompt is the
// complete payload; no system instruction is layered on top.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, geminiTimeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	genConfig := &genai.GenerateContentConfig{
		MaxOutputTokens: geminiMaxOutputTokens,
		SafetySettings: []*genai.SafetySetting{
			{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
			{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockThresholdBlockOnlyHigh},
		},
	}

	response, err := g.client.Models.GenerateContent(ctx, g.model, contents, genConfig)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var text strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}

	reply := strings.TrimSpace(text.String())
	if reply == "" {
		return "", fmt.Errorf("gemini returned an empty response")
	}

	g.logger.Debug("Gemini response received",
		zap.String("model", g.model),
		zap.Int("length", len(reply)))

	return reply, nil
}
