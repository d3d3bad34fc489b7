package stt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/samueldharshi/reflectra/domain/repositories"
	"github.com/samueldharshi/reflectra/internal/config"
)

const (
	transcribeTimeout = 60 * time.Second
	fetchTimeout      = 30 * time.Second

	// Remote audio larger than this is rejected rather than buffered.
	maxRemoteAudioBytes = 25 << 20
)

// ElevenLabsSTT implements SpeechToText using the ElevenLabs speech-to-text
// API. Transcription always runs with a fixed language and with speaker
// diarization and non-speech event tagging disabled, keeping the transcript a
// plain utterance string.
type ElevenLabsSTT struct {
	apiKey     string
	apiBaseURL string
	modelID    string
	language   string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ repositories.SpeechToText = (*ElevenLabsSTT)(nil)

// NewElevenLabsSTT creates a new ElevenLabs speech-to-text instance.
func NewElevenLabsSTT(cfg config.ElevenLabsConfig, logger *zap.Logger) (*ElevenLabsSTT, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("eleven labs API key is required")
	}

	return &ElevenLabsSTT{
		apiKey:     cfg.APIKey,
		apiBaseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		modelID:    cfg.STTModel,
		language:   cfg.Language,
		httpClient: &http.Client{Timeout: transcribeTimeout},
		logger:     logger,
	}, nil
}

// Name returns the provider label echoed to clients.
func (e *ElevenLabsSTT) Name() string {
	return fmt.Sprintf("ElevenLabs (%s)", e.modelID)
}

// Transcribe converts audio to text. When the input carries a URL instead of
// raw bytes, the remote audio is fetched first.
func (e *ElevenLabsSTT) Transcribe(ctx context.Context, input repositories.TranscribeInput) (string, error) {
	if err := input.Validate(); err != nil {
		return "", err
	}

	audio := input.Audio
	if input.URL != "" {
		fetched, err := e.fetchAudio(ctx, input.URL)
		if err != nil {
			return "", fmt.Errorf("failed to fetch remote audio: %w", err)
		}
		audio = fetched
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", "audio")
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(audio); err != nil {
		return "", fmt.Errorf("failed to write audio payload: %w", err)
	}

	fields := map[string]string{
		"model_id":         e.modelID,
		"language_code":    e.language,
		"diarize":          "false",
		"tag_audio_events": "false",
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return "", fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize form: %w", err)
	}

	url := e.apiBaseURL + "/speech-to-text"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("xi-api-key", e.apiKey)

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errorBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("eleven labs API returned %d: %s", resp.StatusCode, string(errorBody))
	}

	var transcription struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&transcription); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	transcript := strings.TrimSpace(transcription.Text)
	if transcript == "" {
		return "", fmt.Errorf("no speech detected in audio")
	}

	e.logger.Info("Audio transcribed",
		zap.Int("audioBytes", len(audio)),
		zap.Int("transcriptLength", len(transcript)))

	return transcript, nil
}

func (e *ElevenLabsSTT) fetchAudio(ctx context.Context, audioURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, audioURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("audio URL returned %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(io.LimitReader(resp.Body, maxRemoteAudioBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read audio body: %w", err)
	}
	if len(audio) > maxRemoteAudioBytes {
		return nil, fmt.Errorf("remote audio exceeds %d bytes", maxRemoteAudioBytes)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("audio URL returned an empty body")
	}

	return audio, nil
}
