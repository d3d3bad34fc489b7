package api

import (
	"encoding/base64"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/samueldharshi/reflectra/domain/entities"
	"github.com/samueldharshi/reflectra/domain/repositories"
	"github.com/samueldharshi/reflectra/usecase"
)

const serviceUnavailableMessage = "Service temporarily unavailable"

// Chat dispatches the chat endpoint: the voice flow when the `action=voice`
// query parameter is present, the direct chat path otherwise.
func (h *Handler) Chat(c echo.Context) error {
	if c.QueryParam("action") == "voice" {
		return h.voiceChat(c)
	}
	return h.directChat(c)
}

// directChat prefers answering over propagating errors: apart from the missing
// message validation, every failure converts into a 200 envelope carrying the
// canned responder's text.
func (h *Handler) directChat(c echo.Context) error {
	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Failed to parse chat request body", zap.Error(err))
		errMsg := serviceUnavailableMessage
		return c.JSON(http.StatusOK, ChatResponse{
			Success:  false,
			Response: usecase.Fallback("general"),
			Provider: usecase.FallbackProvider,
			Error:    &errMsg,
			Fallback: true,
		})
	}

	if req.Message == "" {
		errMsg := "Message is required"
		return c.JSON(http.StatusBadRequest, ChatResponse{
			Success:  false,
			Response: "",
			Provider: "",
			Error:    &errMsg,
		})
	}

	history := h.resolveHistory(c, req.UserContext, req.UserID)

	reply := h.chat.Respond(c.Request().Context(), req.Message, history)

	return c.JSON(http.StatusOK, ChatResponse{
		Success:  true,
		Response: reply.Text,
		Provider: reply.Provider,
		Error:    nil,
		Fallback: reply.Fallback,
	})
}

// voiceChat runs the voice round trip. Only the initial validation rejects the
// request; the pipeline itself always produces a populated result.
func (h *Handler) voiceChat(c echo.Context) error {
	var req VoiceRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Failed to parse voice request body", zap.Error(err))
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   "Invalid request body",
		})
	}

	input := repositories.TranscribeInput{URL: req.AudioURL}
	if req.AudioBase64 != "" {
		audio, err := base64.StdEncoding.DecodeString(req.AudioBase64)
		if err != nil {
			h.logger.Warn("Failed to decode audio payload", zap.Error(err))
			return c.JSON(http.StatusBadRequest, ErrorResponse{
				Success: false,
				Error:   "audio_base64 is not valid base64",
			})
		}
		input.Audio = audio
	}

	if err := input.Validate(); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
	}

	history := h.resolveHistory(c, req.UserContext, req.UserID)

	result := h.voice.Process(c.Request().Context(), input, history)

	return c.JSON(http.StatusOK, VoiceResponse{
		Success:       true,
		Transcription: result.Transcription,
		STTProvider:   result.STTProvider,
		AIText:        result.Reply,
		AIProvider:    result.ReplyProvider,
		AudioBase64:   base64.StdEncoding.EncodeToString(result.Audio),
		TTSProvider:   result.TTSProvider,
	})
}

// resolveHistory prefers the client-supplied context; otherwise it fetches the
// user's recent reflections, best-effort.
func (h *Handler) resolveHistory(c echo.Context, supplied []entities.ReflectionSummary, userID string) []entities.ReflectionSummary {
	if len(supplied) > 0 {
		return supplied
	}
	return h.reflections.HistoryFor(c.Request().Context(), userID)
}
