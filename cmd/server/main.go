package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/docsight/internal/analyze"
	"github.com/dgallion1/docsight/internal/api"
	"github.com/dgallion1/docsight/internal/config"
	"github.com/dgallion1/docsight/internal/session"
	"github.com/joho/godotenv"
)

func main() {
	// Best-effort: credentials are commonly kept in a local .env.
	_ = godotenv.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	stats := analyze.NewStats(time.Hour)

	var backend analyze.Backend
	switch cfg.Provider {
	case config.ProviderGemini:
		backend = analyze.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMTimeout, stats, log)
	default:
		backend = analyze.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, cfg.LLMTimeout, stats, log)
	}

	analyzer := analyze.New(backend, log, cfg.MaxTextChars)
	store := session.NewStore()
	srv := api.NewServer(analyzer, backend, stats, store, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting docsight", "port", cfg.Port, "provider", cfg.Provider, "model", backend.Model())
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
