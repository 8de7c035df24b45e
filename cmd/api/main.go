package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"veridian/portfolio-api/internal/config"
	"veridian/portfolio-api/internal/content"
	"veridian/portfolio-api/internal/handlers"
	"veridian/portfolio-api/internal/logger"
	"veridian/portfolio-api/internal/secrets"
	"veridian/portfolio-api/internal/services"
	"veridian/portfolio-api/internal/validator"
)

func main() {
	// Load configuration
	cfg := config.Load()

	appLogger, err := logger.New(cfg.Log.JSON, cfg.Log.Debug || cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	if !cfg.EnvFileLoaded {
		appLogger.Info("no .env file found, using environment and defaults")
	}
	appLogger.Info("config loaded", zap.String("env", cfg.Server.Env))

	v := validator.New()

	portfolio, err := content.Load(cfg.Portfolio.File, v)
	if err != nil {
		appLogger.Fatal("failed to load portfolio", zap.Error(err))
	}
	appLogger.Info("portfolio loaded", zap.Int("projects", len(portfolio.Projects)))

	// Initialize Gemini AI
	apiKey, err := secrets.GeminiAPIKey(cfg.Gemini)
	if err != nil {
		appLogger.Fatal("failed to resolve gemini api key", zap.Error(err))
	}

	ctx := context.Background()
	geminiService, err := services.NewGeminiService(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.Temperature, appLogger)
	if err != nil {
		appLogger.Fatal("failed to initialize gemini", zap.Error(err))
	}
	aiLogger := logger.WithCommonFields(appLogger, "gemini", geminiService.Model())
	aiLogger.Info("gemini initialized")

	// Initialize services
	matcher := services.NewProjectMatcher(geminiService, v, aiLogger, cfg.Gemini.MaxLogLength)
	contactService := services.NewContactService(v, appLogger, cfg.Gemini.MaxLogLength)
	pdfParser := services.NewPDFParserService()

	// Initialize handlers
	app := handlers.NewApp(cfg.Server, handlers.Handlers{
		Portfolio: handlers.NewPortfolioHandler(portfolio),
		Match: handlers.NewMatchHandler(
			matcher,
			pdfParser,
			portfolio,
			cfg.Portfolio.MaxResumeSize,
			appLogger,
		),
		Contact: handlers.NewContactHandler(contactService),
	}, appLogger)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		appLogger.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			appLogger.Error("server forced to shutdown", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	appLogger.Info("server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		appLogger.Fatal("failed to start server", zap.Error(err))
	}
}
