package retriever

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/mahabharata/server/internal/embedder"
	"codeberg.org/mahabharata/server/internal/logger"
	"codeberg.org/mahabharata/server/internal/storage"
)

var ErrIndexUnavailable = errors.New("vector index unavailable")

// creates a retriever over idx. a nil index is allowed and makes every
// Retrieve call fail with ErrIndexUnavailable.
func NewClient(e embedder.Embedder, idx storage.Index, cfg Config) *Client {
	if cfg.TopK <= 0 {
		cfg.TopK = defaultTopK
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		embedder: e,
		index:    idx,
		topK:     cfg.TopK,
		timeout:  cfg.Timeout,
	}
}

// returns up to topK chunks most similar to query, highest score first.
// topK <= 0 uses the configured default.
func (c *Client) Retrieve(ctx context.Context, query string, topK int) ([]RetrievedChunk, error) {
	if c.index == nil || c.embedder == nil {
		return nil, ErrIndexUnavailable
	}

	if topK <= 0 {
		topK = c.topK
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	vector, err := embedder.EmbedOne(ctx, c.embedder, query)
	if err != nil {
		return nil, fmt.Errorf("failed to generate query embedding: %w", err)
	}

	matches, err := c.index.Query(ctx, vector, topK)
	if err != nil {
		return nil, fmt.Errorf("failed to query index: %w", err)
	}

	chunks := make([]RetrievedChunk, len(matches))
	mismatched := ""

	for i, m := range matches {
		chunks[i] = RetrievedChunk{
			Metadata:        m.Metadata,
			ID:              m.ID,
			SimilarityScore: m.Score,
		}

		if model := m.Metadata.EmbeddingModel; model != "" && model != c.embedder.Model() {
			mismatched = model
		}
	}

	if mismatched != "" {
		logger.FromContext(ctx).Warn("index was built with a different embedding model",
			"index_model", mismatched,
			"query_model", c.embedder.Model(),
		)
	}

	return rankChunks(chunks, topK), nil
}

// model used for query embeddings
func (c *Client) Model() string {
	if c.embedder == nil {
		return ""
	}

	return c.embedder.Model()
}
