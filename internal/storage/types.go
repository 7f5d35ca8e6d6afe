package storage

import (
	"context"
	"errors"
)

var ErrNotConfigured = errors.New("vector index not configured")

const (
	BackendPgvector = "pgvector"
	BackendChromem  = "chromem"
)

// metadata stored with every vector; field names match the index payload
type Metadata struct {
	Text           string `json:"text"`
	Summary        string `json:"summary"`
	Section        string `json:"section"`
	ChunkID        int    `json:"chunk_id"`
	Source         string `json:"source"`
	PageNumber     int    `json:"page_number"`
	DocumentTitle  string `json:"document_title"`
	ChunkLength    int    `json:"chunk_length"`
	EmbeddingModel string `json:"embedding_model"`
}

type Entry struct {
	ID       string
	Vector   []float32
	Metadata Metadata
}

type Match struct {
	ID       string
	Score    float32
	Metadata Metadata
}

// vector store holding (id, vector, metadata) triples.
// Query returns at most topK matches ordered by descending cosine similarity.
type Index interface {
	Upsert(ctx context.Context, entries []Entry) error
	Query(ctx context.Context, vector []float32, topK int) ([]Match, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
	Close() error
}

type Config struct {
	Backend     string
	DatabaseURL string
	Name        string
	Path        string
	Dimensions  int
}
