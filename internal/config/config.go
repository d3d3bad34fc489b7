// Package config resolves all runtime configuration from the environment once
// at process start. A provider whose API key is absent is disabled, which routes
// requests to the local fallback path instead of erroring.
package config

import (
	"os"
	"strconv"
)

// GeminiConfig configures the primary text-generation provider.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// Enabled reports whether the provider can be called at all.
func (c GeminiConfig) Enabled() bool { return c.APIKey != "" }

// OpenRouterConfig configures the secondary text-generation provider, an
// OpenAI-compatible chat-completions endpoint.
type OpenRouterConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

func (c OpenRouterConfig) Enabled() bool { return c.APIKey != "" }

// ElevenLabsConfig configures both speech capabilities (transcription and
// synthesis) offered by ElevenLabs.
type ElevenLabsConfig struct {
	APIKey    string
	BaseURL   string
	VoiceID   string
	TTSModel  string
	STTModel  string
	Language  string
	Stability float64
	Clarity   float64
}

func (c ElevenLabsConfig) Enabled() bool { return c.APIKey != "" }

// MongoConfig configures the reflection store. An empty URI disables
// persistence; the chat flow then runs without server-side history.
type MongoConfig struct {
	URI      string
	Database string
}

func (c MongoConfig) Enabled() bool { return c.URI != "" }

// Config is the application configuration, resolved once in main and passed by
// reference into the services that need it.
type Config struct {
	Port       string
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	ElevenLabs ElevenLabsConfig
	Mongo      MongoConfig
}

const (
	defaultPort          = "8080"
	defaultGeminiModel   = "gemini-2.0-flash"
	defaultRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultRouterModel   = "meta-llama/llama-3.1-8b-instruct"
	defaultElevenBaseURL = "https://api.elevenlabs.io/v1"
	defaultVoiceID       = "21m00Tcm4TlvDq8ikWAM" // Rachel voice
	defaultTTSModel      = "eleven_multilingual_v2"
	defaultSTTModel      = "scribe_v1"
	defaultLanguage      = "en"
	defaultStability     = 0.5
	defaultClarity       = 0.75
)

// FromEnv builds the configuration from environment variables, applying
// defaults for everything except API keys.
func FromEnv() *Config {
	cfg := &Config{
		Port: envOr("PORT", defaultPort),
		Gemini: GeminiConfig{
			APIKey: os.Getenv("GEMINI_API_KEY"),
			Model:  envOr("GEMINI_MODEL", defaultGeminiModel),
		},
		OpenRouter: OpenRouterConfig{
			APIKey:  os.Getenv("OPENROUTER_API_KEY"),
			BaseURL: envOr("OPENROUTER_BASE_URL", defaultRouterBaseURL),
			Model:   envOr("OPENROUTER_MODEL", defaultRouterModel),
		},
		ElevenLabs: ElevenLabsConfig{
			APIKey:    os.Getenv("ELEVENLABS_API_KEY"),
			BaseURL:   envOr("ELEVENLABS_BASE_URL", defaultElevenBaseURL),
			VoiceID:   envOr("ELEVENLABS_VOICE_ID", defaultVoiceID),
			TTSModel:  envOr("ELEVENLABS_TTS_MODEL", defaultTTSModel),
			STTModel:  envOr("ELEVENLABS_STT_MODEL", defaultSTTModel),
			Language:  envOr("STT_LANGUAGE", defaultLanguage),
			Stability: envFloatOr("ELEVENLABS_STABILITY", defaultStability),
			Clarity:   envFloatOr("ELEVENLABS_CLARITY", defaultClarity),
		},
		Mongo: MongoConfig{
			URI:      os.Getenv("MONGODB_URI"),
			Database: envOr("MONGODB_DATABASE", "reflectra"),
		},
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			return f
		}
	}
	return fallback
}
