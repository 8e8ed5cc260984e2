package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/consistency/internal/server/handlers"
	"github.com/iudanet/consistency/internal/server/middleware"
	"github.com/iudanet/consistency/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "Listen address")
	dbPath := flag.String("db", "consistency-server.db", "Path to SQLite database")
	apiKey := flag.String("api-key", os.Getenv("CONSISTENCY_API_KEY"), "API key clients must present")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *apiKey == "" {
		logger.Error("API key is required: pass --api-key or set CONSISTENCY_API_KEY")
		os.Exit(1)
	}

	if err := run(logger, *addr, *dbPath, *apiKey); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath, apiKey string) error {
	ctx := context.Background()

	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", "error", err)
		}
	}()

	rowsHandler := handlers.NewRowsHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger, Version)

	authMw := middleware.APIKeyMiddleware(logger, apiKey)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler.Health)
	mux.Handle("/rest/v1/habit_sync", authMw(http.HandlerFunc(rowsHandler.HandleRows)))

	// Цепочка: recovery -> logging -> ratelimit -> mux
	// (health не логируется и не лимитируется по цепочке logging skip)
	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(60, time.Minute, logger)(handler)
	handler = middleware.LoggingMiddleware(logger, "/health")(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Graceful shutdown по SIGINT/SIGTERM
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", addr, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		logger.Info("Shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

func printVersion() {
	fmt.Printf("Consistency Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
