package main

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/mahabharata/server/internal/agent"
	"codeberg.org/mahabharata/server/internal/characters"
	"codeberg.org/mahabharata/server/internal/config"
	"codeberg.org/mahabharata/server/internal/embedder"
	"codeberg.org/mahabharata/server/internal/llm"
	"codeberg.org/mahabharata/server/internal/logger"
	"codeberg.org/mahabharata/server/internal/retriever"
	"codeberg.org/mahabharata/server/internal/sessions"
	"codeberg.org/mahabharata/server/internal/storage"
)

// creates and configures all service clients. only a broken embedder is
// fatal; a missing index, history store or provider degrades the answers.
func InitializeServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	emb, err := embedder.New(embedder.ConfigFromEnv(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	index, err := storage.New(ctx, storage.ConfigFromEnv(cfg))
	switch {
	case errors.Is(err, storage.ErrNotConfigured):
		logger.Warn("no vector index configured, answers will have no context", "backend", cfg.VectorBackend)
		index = nil
	case err != nil:
		logger.ErrorErr(err, "vector index unavailable, answers will have no context", "backend", cfg.VectorBackend)
		index = nil
	default:
		logger.Info("vector index ready", "backend", cfg.VectorBackend, "name", cfg.IndexName)
	}

	retrieverClient := retriever.NewClient(emb, index, retriever.Config{
		TopK:    cfg.RetrievalTopK,
		Timeout: cfg.RetrievalTimeout,
	})

	logger.Info("query embeddings ready",
		"model", retrieverClient.Model(),
		"dimensions", emb.Dimension(),
	)

	history := newHistoryStore(cfg)
	profiles := characters.LoadOrDefault(cfg.CharacterProfilesPath)

	gateway := llm.NewGateway(llm.NewProviders(llm.ConfigFromEnv(cfg)), llm.GatewayConfig{
		System:      llm.SystemPrompt(cfg.CorpusTitle),
		MaxTokens:   cfg.LLMMaxTokens,
		Temperature: cfg.LLMTemperature,
		Timeout:     cfg.LLMTimeout,
		RateLimit:   cfg.LLMRateLimit,
		Burst:       cfg.LLMRateBurst,
	})

	if len(gateway.Providers()) == 0 {
		logger.Warn("no generation provider configured, chat will return a configuration notice")
	} else {
		logger.Info("generation providers ready", "order", gateway.Providers())
	}

	agentClient := agent.New(retrieverClient, gateway, history, profiles, agent.Config{
		CorpusTitle: cfg.CorpusTitle,
		TopK:        cfg.RetrievalTopK,
	})

	return &Services{
		Agent:      agentClient,
		Gateway:    gateway,
		Retriever:  retrieverClient,
		Index:      index,
		History:    history,
		Characters: profiles,
	}, nil
}

// redis when REDIS_URL is set and reachable, process memory otherwise
func newHistoryStore(cfg *config.Config) sessions.Store {
	opts := sessions.Options{TTL: cfg.HistoryTTL}

	if cfg.RedisURL != "" {
		store, err := sessions.NewRedisStoreFromURL(cfg.RedisURL, opts)
		if err == nil {
			return store
		}

		logger.ErrorErr(err, "redis unavailable, keeping chat history in memory")
	}

	return sessions.NewMemoryStore(opts)
}

// releases every client; safe to call once on shutdown
func (s *Services) Close() {
	if s.History != nil {
		s.History.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}

	if s.Index != nil {
		s.Index.Close() //nolint:errcheck,gosec // best-effort cleanup on shutdown
	}
}
