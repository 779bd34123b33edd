package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"creator-api/internal/common/completion"
	"creator-api/internal/common/config"
	"creator-api/internal/common/database"
	apphttp "creator-api/internal/common/http"
	"creator-api/internal/common/logger"
	"creator-api/internal/common/notion"
	"creator-api/internal/common/observability"
	"creator-api/internal/server"

	bg "creator-api/internal/endpoints/content/blog-generate"
	vg "creator-api/internal/endpoints/content/video-generate"
	ts "creator-api/internal/endpoints/notion/triage-sort"

	"go.uber.org/zap"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.NewWithOutput(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting creator API...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New("creator-api")
	defer obs.Shutdown()

	// --- PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pg.Ping(ctx); err != nil {
			pg.Close()
			return err
		}
		return nil
	}, 5, 2*time.Second, zapLog, "PostgreSQL connection")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()
	zapLog.Info("PostgreSQL connected successfully")

	// --- External clients ---
	openaiHTTP := apphttp.NewClient(config.GetDuration(cfg.APIs.OpenAI.Timeout))
	completer, err := completion.NewOpenAIClient(completion.OpenAIConfig{
		APIKey:     cfg.APIs.OpenAI.APIKey,
		BaseURL:    cfg.APIs.OpenAI.BaseURL,
		Model:      cfg.APIs.OpenAI.Model,
		HTTPClient: openaiHTTP.HTTPClient(),
	}, obs)
	if err != nil {
		zapLog.Fatal("completion client init failed", zap.Error(err))
	}

	notionClient := notion.NewClient(notion.Config{
		BaseURL: cfg.APIs.Notion.BaseURL,
		Version: cfg.APIs.Notion.Version,
		Timeout: config.GetDuration(cfg.APIs.Notion.Timeout),
	})
	store := database.NewIntegrationStore(pg.GetDB())

	// --- Endpoints ---
	blogHandler, err := bg.NewHandler(bg.HandlerOptions{AppConfig: cfg, Completer: completer, Logger: log})
	if err != nil {
		zapLog.Fatal("blog-generate init failed", zap.Error(err))
	}
	videoHandler, err := vg.NewHandler(vg.HandlerOptions{AppConfig: cfg, Completer: completer, Logger: log})
	if err != nil {
		zapLog.Fatal("video-generate init failed", zap.Error(err))
	}
	triageHandler, err := ts.NewHandler(ts.HandlerOptions{
		AppConfig: cfg,
		Completer: completer,
		Store:     store,
		Workspace: notionClient,
		Logger:    log,
	})
	if err != nil {
		zapLog.Fatal("triage-sort init failed", zap.Error(err))
	}

	router := server.NewRouter(server.Options{
		Routes: []server.Route{
			{Pattern: bg.Route, Handler: blogHandler},
			{Pattern: vg.Route, Handler: videoHandler},
			{Pattern: ts.Route, Handler: triageHandler},
		},
		Pinger: pg,
		Logger: log,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
		IdleTimeout:  config.GetDuration(cfg.Server.IdleTimeout),
	}

	go func() {
		zapLog.Info("API server listening", zap.String("address", cfg.Server.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("API server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining requests...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down API server", zap.Error(err))
	}

	zapLog.Info("Creator API stopped gracefully")
}
