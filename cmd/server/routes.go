package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/mahabharata/server/api/rest/characters"
	"codeberg.org/mahabharata/server/api/rest/chat"
	"codeberg.org/mahabharata/server/api/rest/health"
	"codeberg.org/mahabharata/server/internal/errors"
	"codeberg.org/mahabharata/server/internal/middleware"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(gin.Logger(), middleware.RequestID(), middleware.Recovery(), middleware.CORS())

	router.NoRoute(func(c *gin.Context) {
		errors.NotFound(c, "route")
	})

	services := server.services

	router.GET("/", health.RootHandler)
	router.GET("/health", health.Handler(services.Index))

	chat.RegisterRoutes(router, services.Agent, server.chatLimit)
	characters.RegisterRoutes(router, services.Characters)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		chat.RegisterRoutes(v1, services.Agent, server.chatLimit)
		characters.RegisterRoutes(v1, services.Characters)
	}
}
