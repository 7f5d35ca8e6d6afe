package storage

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// opens the configured index backend
func New(ctx context.Context, cfg Config) (Index, error) {
	switch strings.ToLower(cfg.Backend) {
	case "", BackendPgvector:
		if cfg.DatabaseURL == "" {
			return nil, ErrNotConfigured
		}

		idx, err := NewPgvectorIndex(ctx, cfg.DatabaseURL, cfg.Name, cfg.Dimensions)
		if err != nil {
			return nil, err
		}

		return idx, nil
	case BackendChromem:
		idx, err := NewChromemIndex(cfg.Path, cfg.Name)
		if err != nil {
			return nil, err
		}

		return idx, nil
	default:
		return nil, fmt.Errorf("unknown vector backend %q", cfg.Backend)
	}
}

// index id for the i-th chunk of a document
func ChunkID(i int) string {
	return "chunk-" + strconv.Itoa(i)
}
