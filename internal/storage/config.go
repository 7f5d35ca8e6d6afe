package storage

import "codeberg.org/mahabharata/server/internal/config"

// maps process configuration onto index settings
func ConfigFromEnv(cfg *config.Config) Config {
	return Config{
		Backend:     cfg.VectorBackend,
		DatabaseURL: cfg.DatabaseURL,
		Name:        cfg.IndexName,
		Path:        cfg.ChromemPath,
		Dimensions:  cfg.EmbeddingDimensions,
	}
}
