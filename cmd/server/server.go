package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"codeberg.org/mahabharata/server/internal/config"
	"codeberg.org/mahabharata/server/internal/middleware"
	"codeberg.org/mahabharata/server/internal/sessions"
)

// creates and configures a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	services, err := InitializeServices(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	// share counters across replicas when history already lives in redis
	var limitStore *sessions.RedisStore
	if store, ok := services.History.(*sessions.RedisStore); ok {
		limitStore = store
	}

	chatLimit, err := newChatLimit(cfg.RateLimit, limitStore)
	if err != nil {
		services.Close()
		return nil, err
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := &Server{
		config:    cfg,
		services:  services,
		router:    gin.New(),
		chatLimit: chatLimit,
	}

	RegisterRoutes(server.router, server)

	return server, nil
}

func newChatLimit(rate string, store *sessions.RedisStore) (gin.HandlerFunc, error) {
	if store != nil {
		return middleware.RateLimit(rate, store.Client())
	}

	return middleware.RateLimit(rate, nil)
}
