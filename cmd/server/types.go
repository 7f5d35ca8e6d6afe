package main

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/mahabharata/server/internal/agent"
	"codeberg.org/mahabharata/server/internal/characters"
	"codeberg.org/mahabharata/server/internal/config"
	"codeberg.org/mahabharata/server/internal/llm"
	"codeberg.org/mahabharata/server/internal/retriever"
	"codeberg.org/mahabharata/server/internal/sessions"
	"codeberg.org/mahabharata/server/internal/storage"
)

// holds all dependencies and state for the API server
type Server struct {
	config    *config.Config
	services  *Services
	router    *gin.Engine
	chatLimit gin.HandlerFunc
}

// holds the long-lived clients shared by every request
type Services struct {
	Agent      *agent.Agent
	Gateway    *llm.Gateway
	Retriever  *retriever.Client
	Index      storage.Index
	History    sessions.Store
	Characters *characters.Table
}
