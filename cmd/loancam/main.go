// Package main contains the entrypoint for the LoanCam advisor application.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"loancam/internal/advisor"
	"loancam/internal/config"
	"loancam/internal/database"
	"loancam/internal/gemini"
	"loancam/internal/huggingface"
	"loancam/internal/logger"
	"loancam/internal/scheduler"
	"loancam/internal/web"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop()
	os.Exit(exitCode)
}

// run initializes and starts all application components (config, logger, db,
// model client, web server, scheduler), handles graceful shutdown, and
// returns an exit code (0 for success, 1 for failure).
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		log.Error("Failed to connect to database", "path", cfg.Database.Path, "error", err)
		return 1
	}
	defer database.CloseDB(db)
	store := database.NewStore(db, log)

	modelClient, err := newModelClient(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to initialize model client", "provider", cfg.Model.Provider, "error", err)
		return 1
	}
	if modelClient == nil {
		log.Info("No model credential configured, advice will be rule-based")
	} else {
		log.Info("Model client initialized", "provider", cfg.Model.Provider)
	}

	orch := advisor.New(modelClient, log)
	handler := web.NewHandler(store, orch, log)
	router := web.NewRouter(handler, log)

	sched, err := scheduler.New(store, cfg.Scheduler.MaintenanceInterval, log)
	if err != nil {
		log.Error("Failed to create scheduler", "error", err)
		return 1
	}
	if err := sched.Start(); err != nil {
		log.Error("Failed to start scheduler", "error", err)
		return 1
	}
	defer func() {
		if err := sched.Stop(); err != nil {
			log.Error("Failed to stop scheduler", "error", err)
		}
	}()

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("Starting HTTP server", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("Server stopped due to error", "error", err)
		return 1
	}

	log.Info("Server stopped gracefully.")
	return 0
}

// newModelClient builds the configured remote model client. It returns nil
// when no credential is configured, which routes all advice to the
// rule-based path.
func newModelClient(ctx context.Context, cfg *config.Config, log *slog.Logger) (advisor.ModelClient, error) {
	if !cfg.ModelConfigured() {
		return nil, nil
	}

	switch cfg.Model.Provider {
	case config.ProviderHuggingFace:
		return huggingface.NewClient(huggingface.Config{
			Endpoint:    cfg.Model.Endpoint,
			Token:       cfg.Model.Token,
			MaxTokens:   cfg.Model.MaxTokens,
			Temperature: cfg.Model.Temperature,
			Timeout:     cfg.Model.Timeout,
		}, log)
	case config.ProviderGemini:
		return gemini.NewClient(ctx, gemini.Config{
			APIKey:      cfg.Model.Token,
			Model:       cfg.Model.Model,
			Temperature: cfg.Model.Temperature,
			Timeout:     cfg.Model.Timeout,
		}, log)
	default:
		return nil, nil
	}
}
