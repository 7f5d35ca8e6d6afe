package ingest

import (
	"time"

	"codeberg.org/mahabharata/server/internal/embedder"
	"codeberg.org/mahabharata/server/internal/storage"
)

const (
	DefaultBatchSize  = 100
	DefaultEmbedBatch = 32
)

// chunks, embeds and stores a document
type Pipeline struct {
	embedder embedder.Embedder
	index    storage.Index
}

type Options struct {
	// overrides the document title stored with every chunk
	Title string

	ChunkSize      int
	Overlap        int
	PageResolution string

	// vectors per upsert
	BatchSize int

	// texts per embedding request
	EmbedBatch int

	// empty the index before writing
	Clear bool
}

type Report struct {
	// chunks written by this run
	Chunks int

	// entries in the index afterwards
	Total int

	Duration time.Duration
}
