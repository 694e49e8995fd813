package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"jamesfarrell.me/youtube-summarizer/internal/api"
	"jamesfarrell.me/youtube-summarizer/internal/app"
	"jamesfarrell.me/youtube-summarizer/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", slog.Any("error", err))
	}

	cfg, err := config.Load("")
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			slog.Error("invalid config", slog.String("field", e.Field), slog.String("reason", e.Message))
		}
		os.Exit(1)
	}
	app.SetupLogging(cfg, os.Stderr)

	if cfg.Summarizer.APIToken == "" {
		slog.Warn("summarizer API token is not set; summarization requests will fail",
			slog.String("provider", cfg.Summarizer.Provider))
	}

	// Initialize the pipeline with its collaborators
	p := app.NewPipeline(cfg, app.PipelineConfig(cfg))

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(p),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", slog.Any("error", err))
		}
	}()

	slog.Info("server running",
		slog.String("addr", srv.Addr),
		slog.String("provider", cfg.Summarizer.Provider),
		slog.String("model", cfg.Summarizer.Model),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("HTTP server error", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("server stopped")
}
