// Package main starts the study notes HTTP API: document extraction,
// chunked AI summarization, and plain-text notes export.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"studynotes/internal/config"
	hhttp "studynotes/internal/handler/http"
	hnotes "studynotes/internal/handler/http/notes"
	"studynotes/internal/handler/http/requestid"
	htmlinfra "studynotes/internal/infra/html"
	pdfinfra "studynotes/internal/infra/pdf"
	"studynotes/internal/infra/summarizer"
	"studynotes/internal/observability/tracing"
	extractUC "studynotes/internal/usecase/extract"
	notesUC "studynotes/internal/usecase/notes"
)

func main() {
	logger := initLogger()

	cfg, err := config.LoadServerConfig()
	if err != nil {
		logger.Error("failed to load server configuration", slog.Any("error", err))
		os.Exit(1)
	}

	version := getVersion()
	handler := setupServer(logger, cfg)

	runServer(logger, cfg, handler, version)
}

// initLogger initializes and returns a structured logger based on environment configuration.
func initLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return logger
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// setupServer configures and returns the HTTP handler with all routes and middleware.
func setupServer(logger *slog.Logger, cfg config.ServerConfig) http.Handler {
	provider, providerErr := summarizer.Default()
	if providerErr != nil {
		// The server stays up in degraded mode so /healthz can report the
		// failure; summarization requests fail until configuration is fixed.
		logger.Error("summarizer initialization failed", slog.Any("error", providerErr))
		provider = notesUC.ProviderFunc(func(context.Context, string, int, int) (string, error) {
			return "", fmt.Errorf("summarizer unavailable: %w", providerErr)
		})
	}

	notesSvc := notesUC.NewService(provider, notesUC.Config{
		ChunkSize:   cfg.Pipeline.ChunkSize,
		Parallelism: cfg.Pipeline.Parallelism,
	})
	extractSvc := extractUC.NewService(pdfinfra.NewExtractor(), htmlinfra.NewExtractor())

	circuit, _ := provider.(hhttp.CircuitStateReporter)

	mux := http.NewServeMux()
	hnotes.Register(mux, notesSvc, extractSvc)
	mux.Handle("GET /healthz", hhttp.HealthHandler{
		Version:        getVersion(),
		SummarizerType: os.Getenv("SUMMARIZER_TYPE"),
		SummarizerErr:  providerErr,
		Circuit:        circuit,
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	rateLimiter := hhttp.NewRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window)

	var handler http.Handler = mux
	handler = rateLimiter.Limit(handler)
	handler = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(handler)
	handler = hhttp.Timeout(cfg.RequestTimeout)(handler)
	handler = hhttp.Recover(logger)(handler)
	handler = hhttp.Logging(logger)(handler)
	handler = tracing.Middleware(handler)
	handler = requestid.Middleware(handler)

	return handler
}

// runServer starts the HTTP server and blocks until a shutdown signal arrives.
func runServer(logger *slog.Logger, cfg config.ServerConfig, handler http.Handler, version string) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
