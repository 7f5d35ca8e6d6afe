package embedder

import "codeberg.org/mahabharata/server/internal/config"

// maps process configuration onto embedder settings. the server and the
// ingester both go through here so their vectors stay comparable.
func ConfigFromEnv(cfg *config.Config) Config {
	return Config{
		Provider:   cfg.EmbedderProvider,
		Model:      cfg.EmbedderModel,
		APIKey:     cfg.EmbedderAPIKey,
		BaseURL:    cfg.EmbedderBaseURL,
		Dimensions: cfg.EmbeddingDimensions,
	}
}
