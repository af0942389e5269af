package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fitnova/central/internal/api"
	"github.com/fitnova/central/internal/buildconfig"
	"github.com/fitnova/central/internal/config"
	"github.com/fitnova/central/internal/llm"
	"github.com/fitnova/central/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	_ = config.Load()

	logger := newLogger(config.LogLevel())
	defer func() { _ = logger.Sync() }()

	dbURL := config.DatabaseURL()
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}
	logger.Info("connected to database", zap.String("version", buildconfig.Version()))

	applied, err := store.Migrate(ctx, pool, config.MigrationsPath())
	if err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	if len(applied) > 0 {
		logger.Info("migrations applied", zap.Strings("files", applied))
	}

	llmProvider := config.LLMProvider()
	generator, err := llm.NewClient(llmProvider, config.LLMAPIKey())
	if err != nil {
		logger.Warn("LLM client initialization failed, coach will use canned replies",
			zap.String("provider", llmProvider), zap.Error(err))
		generator = nil
	} else {
		logger.Info("LLM client initialized", zap.String("provider", llmProvider))
	}

	registry, err := api.NewRegistry(generator, logger)
	if err != nil {
		logger.Fatal("failed to build agent registry", zap.Error(err))
	}

	app := api.NewApp(pool, registry, logger)

	if config.AdaptationEnabled() {
		app.Scheduler.Start()
	}

	addr := config.ServerAddr()
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")

	if config.AdaptationEnabled() {
		app.Scheduler.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}
	app.Shutdown()

	logger.Info("server stopped")
}

// newLogger builds the production logger at level, falling back to info
// for unknown levels.
func newLogger(level string) *zap.Logger {
	cfg := zap.NewProductionConfig()

	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
