package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codeberg.org/mahabharata/server/internal/config"
	"codeberg.org/mahabharata/server/internal/document"
	"codeberg.org/mahabharata/server/internal/embedder"
	"codeberg.org/mahabharata/server/internal/ingest"
	"codeberg.org/mahabharata/server/internal/logger"
	"codeberg.org/mahabharata/server/internal/storage"
)

// extracts, chunks and embeds a PDF into the configured index
func IngestPDF(ctx context.Context, cfg *config.Config, flags config.IngestFlags) error {
	logger.Info("starting pdf ingestion",
		"path", flags.Path,
		"clear", flags.Clear,
		"chunk_size", flags.ChunkSize,
		"chunk_overlap", flags.ChunkOverlap,
		"page_resolution", flags.PageResolution,
	)

	doc, err := document.LoadPDF(flags.Path, flags.Title)
	if err != nil {
		return err
	}

	logger.Info("extracted text", "pages", doc.PageCount(), "characters", len(doc.Text))

	emb, err := embedder.New(embedder.ConfigFromEnv(cfg))
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}

	if cfg.VectorBackend == storage.BackendChromem && cfg.ChromemPath == "" {
		logger.Warn("CHROMEM_PATH is not set, the index will not outlive this run")
	}

	index, err := openIndex(ctx, cfg)
	if err != nil {
		return err
	}

	defer index.Close() //nolint:errcheck

	report, err := ingest.New(emb, index).Run(ctx, doc, ingest.Options{
		Title:          flags.Title,
		ChunkSize:      flags.ChunkSize,
		Overlap:        flags.ChunkOverlap,
		PageResolution: flags.PageResolution,
		BatchSize:      flags.BatchSize,
		Clear:          flags.Clear,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Ingested %d chunks from %s (%d entries in index %q, %s)\n",
		report.Chunks, flags.Path, report.Total, cfg.IndexName, report.Duration.Round(time.Millisecond))

	return nil
}

// prints the entry count of the configured index
func PrintStats(ctx context.Context, cfg *config.Config) error {
	index, err := openIndex(ctx, cfg)
	if err != nil {
		return err
	}

	defer index.Close() //nolint:errcheck

	count, err := index.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count entries: %w", err)
	}

	fmt.Printf("Index %q (%s): %d entries\n", cfg.IndexName, cfg.VectorBackend, count)

	return nil
}

// opens the index and, for pgvector, creates the table on first use
func openIndex(ctx context.Context, cfg *config.Config) (storage.Index, error) {
	index, err := storage.New(ctx, storage.ConfigFromEnv(cfg))
	if errors.Is(err, storage.ErrNotConfigured) {
		return nil, fmt.Errorf("%w: set DATABASE_URL or VECTOR_BACKEND=chromem", err)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}

	if pg, ok := index.(*storage.PgvectorIndex); ok {
		if err := pg.EnsureSchema(ctx); err != nil {
			index.Close() //nolint:errcheck
			return nil, err
		}
	}

	logger.Info("vector index ready", "backend", cfg.VectorBackend, "name", cfg.IndexName)

	return index, nil
}
