package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/samueldharshi/reflectra/usecase"
)

// Handler holds the services behind the HTTP surface.
type Handler struct {
	chat        *usecase.ChatService
	voice       *usecase.VoiceService
	reflections *usecase.ReflectionService
	logger      *zap.Logger
}

// NewHandler creates the API handler.
func NewHandler(
	chat *usecase.ChatService,
	voice *usecase.VoiceService,
	reflections *usecase.ReflectionService,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		chat:        chat,
		voice:       voice,
		reflections: reflections,
		logger:      logger,
	}
}

// InitRoutes initializes all API routes
func InitRoutes(e *echo.Echo, h *Handler) {
	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"service": "reflectra-server",
		})
	})

	// API v1 routes
	v1 := e.Group("/api/v1")

	// Chat APIs (the `action=voice` query selects the voice flow)
	v1.POST("/chat", h.Chat)

	// Reflection APIs
	v1.POST("/reflections", h.SaveReflection)
	v1.GET("/reflections", h.ListReflections)
}
