package api

import (
	"time"

	"github.com/samueldharshi/reflectra/domain/entities"
)

// ChatRequest is the direct chat request body. UserContext carries the
// client's own reflection summaries; when it is absent and UserID is set, the
// server fetches recent reflections itself.
type ChatRequest struct {
	Message     string                       `json:"message"`
	UserContext []entities.ReflectionSummary `json:"userContext"`
	UserID      string                       `json:"userId"`
}

// ChatResponse is the direct chat envelope. It is returned with status 200 for
// every handled outcome, including provider failures.
type ChatResponse struct {
	Success  bool    `json:"success"`
	Response string  `json:"response"`
	Provider string  `json:"provider"`
	Error    *string `json:"error"`
	Fallback bool    `json:"fallback"`
}

// VoiceRequest is the voice flow request body. Exactly one of AudioBase64 and
// AudioURL must be present.
type VoiceRequest struct {
	AudioBase64 string                       `json:"audio_base64"`
	AudioURL    string                       `json:"audio_url"`
	UserContext []entities.ReflectionSummary `json:"userContext"`
	UserID      string                       `json:"userId"`
}

// VoiceResponse is the voice flow envelope.
type VoiceResponse struct {
	Success       bool   `json:"success"`
	Transcription string `json:"transcription"`
	STTProvider   string `json:"sttProvider"`
	AIText        string `json:"aiText"`
	AIProvider    string `json:"aiProvider"`
	AudioBase64   string `json:"audio_base64"`
	TTSProvider   string `json:"ttsProvider"`
}

// SaveReflectionRequest is the body for storing one completed reflection form.
type SaveReflectionRequest struct {
	UserID           string   `json:"user_id"`
	CoreValues       []string `json:"core_values"`
	LifeGoals        []string `json:"life_goals"`
	CurrentStruggles []string `json:"current_struggles"`
	IdealSelf        string   `json:"ideal_self"`
	DecisionFocus    string   `json:"decision_focus"`
}

// ReflectionResponse is one stored reflection as returned by the API.
type ReflectionResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	CoreValues       []string  `json:"core_values"`
	LifeGoals        []string  `json:"life_goals"`
	CurrentStruggles []string  `json:"current_struggles"`
	IdealSelf        string    `json:"ideal_self,omitempty"`
	DecisionFocus    string    `json:"decision_focus,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
