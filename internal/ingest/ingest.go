package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codeberg.org/mahabharata/server/internal/chunker"
	"codeberg.org/mahabharata/server/internal/document"
	"codeberg.org/mahabharata/server/internal/embedder"
	"codeberg.org/mahabharata/server/internal/logger"
	"codeberg.org/mahabharata/server/internal/storage"
)

var ErrNoChunks = errors.New("no chunks generated from document")

func New(e embedder.Embedder, idx storage.Index) *Pipeline {
	return &Pipeline{embedder: e, index: idx}
}

// chunks doc and writes one index entry per chunk, keyed chunk-<i>.
// re-running over the same document overwrites the same ids.
func (p *Pipeline) Run(ctx context.Context, doc *document.Document, opts Options) (Report, error) {
	started := time.Now()
	opts = opts.withDefaults()

	if p.index == nil {
		return Report{}, storage.ErrNotConfigured
	}

	if opts.Title != "" {
		doc.Title = opts.Title
	}

	if opts.Clear {
		logger.Info("clearing existing index entries")

		if err := p.index.Clear(ctx); err != nil {
			return Report{}, fmt.Errorf("failed to clear index: %w", err)
		}
	}

	chunks := chunker.ChunkDocument(doc, chunker.ChunkOptions{
		ChunkSize:      opts.ChunkSize,
		ChunkOverlap:   opts.Overlap,
		PageResolution: opts.PageResolution,
	})
	if len(chunks) == 0 {
		return Report{}, ErrNoChunks
	}

	logger.Info("generated chunks", "count", len(chunks), "pages", doc.PageCount())

	for start := 0; start < len(chunks); start += opts.BatchSize {
		end := min(start+opts.BatchSize, len(chunks))

		if err := p.writeBatch(ctx, chunks[start:end], opts.EmbedBatch); err != nil {
			return Report{}, fmt.Errorf("failed to write chunks %d-%d: %w", start, end-1, err)
		}

		logger.Info("upserted batch", "from", start, "to", end-1, "of", len(chunks))
	}

	total, err := p.index.Count(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("failed to verify index count: %w", err)
	}

	report := Report{
		Chunks:   len(chunks),
		Total:    total,
		Duration: time.Since(started),
	}

	logger.Info("ingestion complete",
		"chunks_inserted", report.Chunks,
		"total_entries", report.Total,
		"duration", report.Duration,
	)

	return report, nil
}

func (p *Pipeline) writeBatch(ctx context.Context, chunks []chunker.Chunk, embedBatch int) error {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	vectors := make([][]float32, 0, len(texts))

	for start := 0; start < len(texts); start += embedBatch {
		end := min(start+embedBatch, len(texts))

		batch, err := p.embedder.Embed(ctx, texts[start:end])
		if err != nil {
			return fmt.Errorf("failed to generate embeddings: %w", err)
		}

		vectors = append(vectors, batch...)
	}

	if len(vectors) != len(chunks) {
		return fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}

	entries := make([]storage.Entry, len(chunks))
	for i, c := range chunks {
		entries[i] = storage.Entry{
			ID:       storage.ChunkID(c.ID),
			Vector:   vectors[i],
			Metadata: metadataFor(c, p.embedder.Model()),
		}
	}

	return p.index.Upsert(ctx, entries)
}

func metadataFor(c chunker.Chunk, model string) storage.Metadata {
	return storage.Metadata{
		Text:           c.Text,
		Summary:        c.Summary,
		Section:        c.Section,
		ChunkID:        c.ID,
		Source:         c.DocumentTitle,
		PageNumber:     c.PageNumber,
		DocumentTitle:  c.DocumentTitle,
		ChunkLength:    len([]rune(c.Text)),
		EmbeddingModel: model,
	}
}

func (o Options) withDefaults() Options {
	def := chunker.DefaultOptions()

	if o.ChunkSize <= 0 {
		o.ChunkSize = def.ChunkSize
	}

	if o.Overlap < 0 {
		o.Overlap = 0
	}

	if o.PageResolution == "" {
		o.PageResolution = def.PageResolution
	}

	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}

	if o.EmbedBatch <= 0 {
		o.EmbedBatch = DefaultEmbedBatch
	}

	return o
}
