package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/samueldharshi/reflectra/internal/config"
)

func newRouterConfig(baseURL string) config.OpenRouterConfig {
	return config.OpenRouterConfig{
		APIKey:  "test-key",
		BaseURL: baseURL,
		Model:   "test-model",
	}
}

func TestNewOpenRouterGeneratorRequiresKey(t *testing.T) {
	_, err := NewOpenRouterGenerator(config.OpenRouterConfig{}, zaptest.NewLogger(t))
	if err == nil {
		t.Error("expected error when API key is not set")
	}
}

func TestOpenRouterGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}

		var req chatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("model = %q", req.Model)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Errorf("messages = %+v", req.Messages)
		}

		json.NewEncoder(w).Encode(chatCompletionResponse{
			Choices: []struct {
				Message chatCompletionMessage `json:"message"`
			}{
				{Message: chatCompletionMessage{Role: "assistant", Content: "  hello there  "}},
			},
		})
	}))
	defer server.Close()

	generator, err := NewOpenRouterGenerator(newRouterConfig(server.URL), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}

	reply, err := generator.Generate(context.Background(), "a prompt")
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if reply != "hello there" {
		t.Errorf("reply = %q, want trimmed content", reply)
	}
}

func TestOpenRouterGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "rate limited", http.StatusTooManyRequests)
			},
		},
		{
			name: "no choices",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"choices":[]}`))
			},
		},
		{
			name: "whitespace content",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"   "}}]}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			generator, err := NewOpenRouterGenerator(newRouterConfig(server.URL), zaptest.NewLogger(t))
			if err != nil {
				t.Fatalf("failed to create generator: %v", err)
			}

			if _, err := generator.Generate(context.Background(), "a prompt"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestOpenRouterName(t *testing.T) {
	generator, err := NewOpenRouterGenerator(newRouterConfig("https://example.com"), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}
	if got := generator.Name(); got != "OpenRouter (test-model)" {
		t.Errorf("Name() = %q", got)
	}
}
