package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/samueldharshi/reflectra/adapters/llm"
	adaptermongo "github.com/samueldharshi/reflectra/adapters/mongo"
	"github.com/samueldharshi/reflectra/adapters/stt"
	"github.com/samueldharshi/reflectra/adapters/tts"
	"github.com/samueldharshi/reflectra/domain/repositories"
	"github.com/samueldharshi/reflectra/internal/api"
	"github.com/samueldharshi/reflectra/internal/config"
	"github.com/samueldharshi/reflectra/usecase"
)

func main() {
	godotenv.Load()

	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Resolve configuration once; unconfigured providers stay nil and their
	// stages degrade to the fallback path.
	cfg := config.FromEnv()

	ctx := context.Background()

	// Text generation: Gemini primary, OpenRouter secondary. The chat path
	// only ever consults the primary; the voice path walks the full chain.
	var generators []repositories.TextGenerator
	if cfg.Gemini.Enabled() {
		gemini, err := llm.NewGeminiGenerator(ctx, cfg.Gemini, logger)
		if err != nil {
			logger.Fatal("Failed to initialize Gemini", zap.Error(err))
		}
		generators = append(generators, gemini)
	} else {
		logger.Warn("Gemini API key not configured, text generation will use fallback responses")
	}

	var voiceGenerators []repositories.TextGenerator
	voiceGenerators = append(voiceGenerators, generators...)
	if cfg.OpenRouter.Enabled() {
		router, err := llm.NewOpenRouterGenerator(cfg.OpenRouter, logger)
		if err != nil {
			logger.Fatal("Failed to initialize OpenRouter", zap.Error(err))
		}
		voiceGenerators = append(voiceGenerators, router)
	}

	// Speech providers
	var speechToText repositories.SpeechToText
	var textToSpeech repositories.TextToSpeech
	if cfg.ElevenLabs.Enabled() {
		var err error
		speechToText, err = stt.NewElevenLabsSTT(cfg.ElevenLabs, logger)
		if err != nil {
			logger.Fatal("Failed to initialize speech-to-text", zap.Error(err))
		}
		textToSpeech, err = tts.NewElevenLabsTTS(cfg.ElevenLabs, logger)
		if err != nil {
			logger.Fatal("Failed to initialize text-to-speech", zap.Error(err))
		}
	} else {
		logger.Warn("ElevenLabs API key not configured, voice flow will degrade to text-only")
	}

	// Reflection store
	var reflectionRepo repositories.ReflectionRepository
	var mongoClient *adaptermongo.Client
	if cfg.Mongo.Enabled() {
		var err error
		mongoClient, err = adaptermongo.NewClient(cfg.Mongo, logger)
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		reflectionRepo = adaptermongo.NewReflectionRepository(mongoClient.Database)
	} else {
		logger.Warn("MongoDB not configured, reflections API disabled")
	}

	// Initialize usecase services
	chatService := usecase.NewChatService(generators, logger)
	voiceService := usecase.NewVoiceService(speechToText, textToSpeech, voiceGenerators, logger)
	reflectionService := usecase.NewReflectionService(reflectionRepo, logger)

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowMethods: []string{http.MethodPost, http.MethodGet, http.MethodOptions},
	}))

	// Initialize API routes
	handler := api.NewHandler(chatService, voiceService, reflectionService, logger)
	api.InitRoutes(e, handler)

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("port", cfg.Port))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	if mongoClient != nil {
		if err := mongoClient.Close(shutdownCtx); err != nil {
			logger.Error("Failed to close MongoDB connection", zap.Error(err))
		}
	}

	logger.Info("Server exited")
}
