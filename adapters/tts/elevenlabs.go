package tts

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

const (
	synthesizeTimeout   = 60 * time.Second
	defaultOutputFormat = "mp3_44100_128" // Matches the audio/mpeg playback in the chat widget

	// Upper bound on the text accepted for one synthesis call.
	maxSynthesisChars = 1000
)

// ElevenLabsTTS implements TextToSpeech using the ElevenLabs API.
type ElevenLabsTTS struct {
	apiKey       string
	apiBaseURL   string
	voiceID      string
	modelID      string
	outputFormat string
	stability    float64
	clarity      float64
	httpClient   *http.Client
	logger       *zap.Logger
}

var _ repositories.TextToSpeech = (*ElevenLabsTTS)(nil)

// elevenLabsVoiceSettings represents voice settings for the ElevenLabs API
type elevenLabsVoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
	UseSpeakerBoost bool    `json:"use_speaker_boost,omitempty"`
}

// elevenLabsRequest represents the request payload for the ElevenLabs TTS API
type elevenLabsRequest struct {
	Text          string                  `json:"text"`
	ModelID       string                  `json:"model_id"`
	VoiceSettings elevenLabsVoiceSettings `json:"voice_settings"`
}

// NewElevenLabsTTS creates a new ElevenLabs TTS instance.
func NewElevenLabsTTS(cfg config.ElevenLabsConfig, logger *zap.Logger) (*ElevenLabsTTS, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("eleven labs API key is required")
	}
	if cfg.Stability < 0 || cfg.Stability > 1 {
		return nil, fmt.Errorf("stability must be between 0 and 1, got %f", cfg.Stability)
	}
	if cfg.Clarity < 0 || cfg.Clarity > 1 {
		return nil, fmt.Errorf("clarity must be between 0 and 1, got %f", cfg.Clarity)
	}

	return &ElevenLabsTTS{
		apiKey:       cfg.APIKey,
		apiBaseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		voiceID:      cfg.VoiceID,
		modelID:      cfg.TTSModel,
		outputFormat: defaultOutputFormat,
		stability:    cfg.Stability,
		clarity:      cfg.Clarity,
		httpClient:   &http.Client{Timeout: synthesizeTimeout},
		logger:       logger,
	}, nil
}

// Name returns the provider label echoed to clients.
func (e *ElevenLabsTTS) Name() string {
	return "ElevenLabs"
}

// Synthesize renders the given short text with the configured voice and
// returns the complete audio payload.
func (e *ElevenLabsTTS) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("text cannot be empty")
	}
	if len(text) > maxSynthesisChars {
		return nil, fmt.Errorf("text exceeds %d characters", maxSynthesisChars)
	}

	request := elevenLabsRequest{
		Text:    text,
		ModelID: e.modelID,
		VoiceSettings: elevenLabsVoiceSettings{
			Stability:       e.stability,
			SimilarityBoost: e.clarity,
			UseSpeakerBoost: true,
		},
	}

	requestBody, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s/stream?output_format=%s&enable_logging=false",
		e.apiBaseURL, e.voiceID, e.outputFormat)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Accept", "audio/mpeg")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("xi-api-key", e.apiKey)

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("eleven labs API returned %d: %s", resp.StatusCode, string(errorBody))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio body: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("eleven labs API returned empty audio")
	}

	e.logger.Info("Text synthesized",
		zap.String("voiceID", e.voiceID),
		zap.Int("textLength", len(text)),
		zap.Int("audioBytes", len(audio)))

	return audio, nil
}
