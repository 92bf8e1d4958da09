package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mockmate/internal/api"
	"mockmate/internal/api/handlers"
	"mockmate/internal/repository"
	"mockmate/internal/service"
	"mockmate/pkg/config"
	"mockmate/pkg/logger"
	"mockmate/pkg/postgres"

	"go.uber.org/zap"
)

// @title MockMate Interview API
// @version 1.0
// @description AI-powered mock interview practice backend

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting MockMate service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	sessionRepo := repository.NewSessionRepository(db, appLogger)
	questionRepo := repository.NewQuestionRepository(db, appLogger)

	// Initialize services
	knowledgeService := service.NewKnowledgeService(cfg.Knowledge.Dir, appLogger)
	ragService := service.NewRAGService(knowledgeService, appLogger)

	var generator service.Generator
	switch cfg.Model.Provider {
	case "openai":
		generator = service.NewOpenAIGenerator(cfg.Model.BaseURL, cfg.Model.APIKey, cfg.Model.Model)
	default:
		generator = service.NewOllamaClient(cfg.Model.BaseURL, cfg.Model.Model, cfg.Model.Timeout)
	}

	llmService := service.NewLLMService(generator, ragService, appLogger)
	interviewService := service.NewInterviewService(sessionRepo, questionRepo, llmService, appLogger)
	speechService := service.NewSpeechService(cfg.Speech.Key, cfg.Speech.Region, cfg.Speech.Voice, cfg.Speech.Language, appLogger)
	storageService, err := service.NewStorageService(cfg.Storage.AudioDir)
	if err != nil {
		appLogger.Fatal("Failed to initialize audio storage", zap.Error(err))
	}

	if !speechService.Available() {
		appLogger.Warn("Speech services not configured, voice features disabled")
	}

	// Initialize handlers
	interviewHandler := handlers.NewInterviewHandler(interviewService, llmService, appLogger)
	speechHandler := handlers.NewSpeechHandler(interviewService, speechService, storageService, appLogger)
	healthHandler := handlers.NewHealthHandler(db)

	// Setup router
	app := api.SetupRouter(interviewHandler, speechHandler, healthHandler, &cfg.Server, storageService.AudioDir(), appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
