package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	api "mirror-backend/cmd/api"
	journalRepo "mirror-backend/internal/journal/repository"
	journalUsecase "mirror-backend/internal/journal/usecase"
	"mirror-backend/pkg/ai"
	"mirror-backend/pkg/config"
	"mirror-backend/pkg/database"
	"mirror-backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	zlog, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Error("Server stopped with error", zap.Error(err))
		_ = zlog.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DatabaseURL, zlog)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zlog.Warn("Failed to close database", zap.Error(err))
		}
	}()

	if cfg.SkipDBCreate {
		zlog.Info("SKIP_DB_CREATE set, schema initialization skipped")
	} else if err := journalRepo.Migrate(db); err != nil {
		return err
	}

	// Initialize AI provider; nil means fallback mode
	if cfg.AIInsecureSSL {
		zlog.Warn("TLS verification disabled for AI provider calls; do not use in production")
	}
	provider, err := ai.NewProvider(ctx, ai.Config{
		Provider:        ai.ProviderType(cfg.AIProvider),
		AnthropicAPIKey: cfg.AnthropicAPIKey,
		AnthropicModel:  cfg.AnthropicModel,
		GeminiAPIKey:    cfg.GeminiAPIKey,
		GeminiModel:     cfg.GeminiModel,
		OllamaBaseURL:   cfg.OllamaBaseURL,
		OllamaModel:     cfg.OllamaModel,
		Timeout:         cfg.AITimeout,
		InsecureTLS:     cfg.AIInsecureSSL,
	})
	if err != nil {
		zlog.Warn("Failed to initialize AI provider, using fallbacks", zap.Error(err))
		provider = nil
	}
	enricher := ai.NewEnricher(provider, cfg.AITimeout, zlog)
	if enricher.Available() {
		zlog.Info("AI provider initialized", zap.String("provider", enricher.ProviderName()))
	} else {
		zlog.Warn("No AI provider configured, using deterministic fallbacks")
	}

	// Initialize repositories and use cases (dependency injection)
	userRepository := journalRepo.NewGormUserRepository(db)
	logRepository := journalRepo.NewGormLogRepository(db)
	journalUc := journalUsecase.NewJournalUsecase(userRepository, logRepository, enricher, zlog)

	handler := api.NewHandler(journalUc, cfg, zlog)
	return handler.Start(ctx, ":"+cfg.Port)
}
