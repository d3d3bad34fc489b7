package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/samueldharshi/reflectra/domain/repositories"
	"github.com/samueldharshi/reflectra/internal/config"
)

const openRouterTimeout = 15 * time.Second

// OpenRouterGenerator implements TextGenerator against an OpenAI-compatible
// chat-completions endpoint. It serves as the secondary provider in the voice
// flow, consulted only after the primary fails.
type OpenRouterGenerator struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ repositories.TextGenerator = (*OpenRouterGenerator)(nil)

type chatCompletionRequest struct {
	Model    string                  `json:"model"`
	Messages []chatCompletionMessage `json:"messages"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

// NewOpenRouterGenerator creates a new OpenRouter text generator.
func NewOpenRouterGenerator(cfg config.OpenRouterConfig, logger *zap.Logger) (*OpenRouterGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	return &OpenRouterGenerator{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: openRouterTimeout},
		logger:     logger,
	}, nil
}

// Name returns the provider label echoed to clients.
func (o *OpenRouterGenerator) Name() string {
	return fmt.Sprintf("OpenRouter (%s)", o.model)
}

// Generate sends the prompt as a single user message and returns the first
// choice's content.
func (o *OpenRouterGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	requestBody, err := json.Marshal(chatCompletionRequest{
		Model: o.model,
		Messages: []chatCompletionMessage{
			{Role: "user", Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := o.baseURL + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("openrouter request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openrouter returned %d: %s", resp.StatusCode, string(errorBody))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("openrouter returned no choices")
	}

	reply := strings.TrimSpace(completion.Choices[0].Message.Content)
	if reply == "" {
		return "", fmt.Errorf("openrouter returned an empty response")
	}

	o.logger.Debug("OpenRouter response received",
		zap.String("model", o.model),
		zap.Int("length", len(reply)))

	return reply, nil
}
