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

	"codeberg.org/mahabharata/server/internal/config"
	"codeberg.org/mahabharata/server/internal/logger"
)

// @title Mahabharata RAG API
// @version 1.0
// @description Chat about the Mahabharata, grounded in passages retrieved from the text
// @description
// @description Features:
// @description - Answers cite the pages they draw on
// @description - Character mode answers in the voice of a figure from the epic
// @description - Per-session conversation history

func main() {
	logger.Info("starting mahabharata server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	ctx := context.Background()

	// create server with all dependencies
	srv, err := NewServer(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	httpServer := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     srv.router,
		ReadTimeout: 15 * time.Second,
		// one chat turn may wait on every provider in turn
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// graceful shutdown with 10 second timeout
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	srv.services.Close()

	logger.Info("server stopped")
}
