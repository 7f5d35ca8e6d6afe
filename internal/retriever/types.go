package retriever

import (
	"time"

	"codeberg.org/mahabharata/server/internal/embedder"
	"codeberg.org/mahabharata/server/internal/storage"
)

type Client struct {
	embedder embedder.Embedder
	index    storage.Index
	topK     int
	timeout  time.Duration
}

type Config struct {
	TopK    int
	Timeout time.Duration
}

// a stored chunk and how closely it matched the query
type RetrievedChunk struct {
	storage.Metadata
	ID              string
	SimilarityScore float32
}
