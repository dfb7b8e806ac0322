// Package main is the entry point for the agent-arena server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/internstack/agent-arena/internal/completion"
	"github.com/internstack/agent-arena/internal/config"
	"github.com/internstack/agent-arena/internal/domain"
	"github.com/internstack/agent-arena/internal/handler"
	"github.com/internstack/agent-arena/internal/orchestrator"
	"github.com/internstack/agent-arena/internal/security"
	"github.com/internstack/agent-arena/internal/ui"
)

func main() {
	// =========================================================================
	// 1. Load configuration (Singleton)
	// =========================================================================
	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// 2. Setup structured logger (JSON format, credential-redacting)
	// =========================================================================
	logger := setupLogger(cfg.Logging)

	logger.Info("starting agent-arena",
		slog.String("host", cfg.Server.Host),
		slog.Int("port", cfg.Server.Port),
	)

	// =========================================================================
	// 3. Build the agent registry and provider credentials
	// =========================================================================
	registry, err := domain.NewRegistry(cfg.AgentCatalog())
	if err != nil {
		logger.Error("invalid agent catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("agent registry loaded",
		slog.Int("agents", registry.Len()),
		slog.Int("configured_providers", len(cfg.Credentials.ConfiguredProviders())),
	)

	// =========================================================================
	// 4. Wire the completion router and orchestrator
	// =========================================================================
	router := completion.NewRouter(registry, cfg.Credentials,
		completion.WithLogger(logger),
	)

	completionTimeout := time.Duration(cfg.Server.CompletionTimeoutSeconds) * time.Second
	orch := orchestrator.New(router, registry,
		orchestrator.WithLogger(logger),
		orchestrator.WithTimeout(completionTimeout),
	)

	apiHandler := handler.NewAPIHandler(registry, router, orch,
		handler.WithLogger(logger),
	)

	// =========================================================================
	// 5. Setup Gin router with middleware
	// =========================================================================
	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(handler.RecoveryMiddleware(logger))
	engine.Use(handler.CORSMiddleware())
	engine.Use(handler.RequestIDMiddleware())
	engine.Use(handler.LoggingMiddleware(logger))

	apiHandler.RegisterRoutes(engine.Group("/api"))

	// =========================================================================
	// 6. Start HTTP server with graceful shutdown
	// =========================================================================
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		ui.PrintBanner()
		ui.PrintStartupInfo(cfg.Server.Host, cfg.Server.Port)
		ui.PrintProviderStatuses(router.ProviderStatuses())

		logger.Info("server starting", slog.String("address", addr))

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// =========================================================================
	// 7. Graceful shutdown on SIGTERM/SIGINT
	// =========================================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	ui.PrintShutdown()

	shutdownTimeout := time.Duration(cfg.Server.ShutdownTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("server stopped gracefully")
	ui.PrintGoodbye()
}

// setupLogger creates a structured logger from the logging config.
// Every record passes through the credential redactor before it is written.
func setupLogger(lc config.LoggingConfig) *slog.Logger {
	level := slog.LevelInfo
	switch lc.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var base slog.Handler
	if lc.Format == "text" {
		base = slog.NewTextHandler(os.Stdout, opts)
	} else {
		base = slog.NewJSONHandler(os.Stdout, opts)
	}

	logger := slog.New(security.NewRedactedHandler(base))
	slog.SetDefault(logger)
	return logger
}
