package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/samueldharshi/reflectra/internal/config"
)

func newTTSConfig(baseURL string) config.ElevenLabsConfig {
	return config.ElevenLabsConfig{
		APIKey:    "test-api-key",
		BaseURL:   baseURL,
		VoiceID:   "voice-1",
		TTSModel:  "eleven_multilingual_v2",
		Stability: 0.5,
		Clarity:   0.75,
	}
}

func TestNewElevenLabsTTS(t *testing.T) {
	logger := zaptest.NewLogger(t)

	if _, err := NewElevenLabsTTS(config.ElevenLabsConfig{}, logger); err == nil {
		t.Error("expected error when API key is not set")
	}

	badStability := newTTSConfig("https://example.com")
	badStability.Stability = 1.5
	if _, err := NewElevenLabsTTS(badStability, logger); err == nil {
		t.Error("expected error for out-of-range stability")
	}

	adapter, err := NewElevenLabsTTS(newTTSConfig("https://example.com"), logger)
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}
	if adapter.voiceID != "voice-1" {
		t.Errorf("voiceID = %q", adapter.voiceID)
	}
}

func TestSynthesize(t *testing.T) {
	wantAudio := []byte("fake-mp3-bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/text-to-speech/voice-1/stream") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("output_format"); got != defaultOutputFormat {
			t.Errorf("output_format = %q", got)
		}
		if got := r.Header.Get("xi-api-key"); got != "test-api-key" {
			t.Errorf("xi-api-key = %q", got)
		}

		var req elevenLabsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Text != "hello" {
			t.Errorf("text = %q", req.Text)
		}
		if req.VoiceSettings.Stability != 0.5 || req.VoiceSettings.SimilarityBoost != 0.75 {
			t.Errorf("voice settings = %+v", req.VoiceSettings)
		}

		w.Write(wantAudio)
	}))
	defer server.Close()

	adapter, err := NewElevenLabsTTS(newTTSConfig(server.URL), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	audio, err := adapter.Synthesize(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if !bytes.Equal(audio, wantAudio) {
		t.Errorf("audio = %q, want %q", audio, wantAudio)
	}
}

func TestSynthesizeRejectsEmptyText(t *testing.T) {
	adapter, err := NewElevenLabsTTS(newTTSConfig("https://example.com"), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	if _, err := adapter.Synthesize(context.Background(), "   "); err == nil {
		t.Error("expected error for whitespace-only text")
	}
}

func TestSynthesizeRejectsOversizedText(t *testing.T) {
	adapter, err := NewElevenLabsTTS(newTTSConfig("https://example.com"), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("failed to create adapter: %v", err)
	}

	if _, err := adapter.Synthesize(context.Background(), strings.Repeat("a", maxSynthesisChars+1)); err == nil {
		t.Error("expected error for oversized text")
	}
}

func TestSynthesizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "voice not found", http.StatusNotFound)
			},
		},
		{
			name: "empty audio body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			adapter, err := NewElevenLabsTTS(newTTSConfig(server.URL), zaptest.NewLogger(t))
			if err != nil {
				t.Fatalf("failed to create adapter: %v", err)
			}

			if _, err := adapter.Synthesize(context.Background(), "hello"); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
