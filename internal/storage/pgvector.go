package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"codeberg.org/mahabharata/server/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// postgres + pgvector index; every row is scoped by index name
type PgvectorIndex struct {
	pool       *pgxpool.Pool
	name       string
	dimensions int
}

func NewPgvectorIndex(ctx context.Context, connString, name string, dimensions int) (*PgvectorIndex, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PgvectorIndex{
		pool:       pool,
		name:       name,
		dimensions: dimensions,
	}, nil
}

// creates the vector extension and table if missing
func (p *PgvectorIndex) EnsureSchema(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, createExtensionQuery); err != nil {
		return fmt.Errorf("failed to create vector extension: %w", err)
	}

	if _, err := p.pool.Exec(ctx, fmt.Sprintf(createTableQuery, p.dimensions)); err != nil {
		return fmt.Errorf("failed to create chunk_embeddings table: %w", err)
	}

	return nil
}

// upserts entries in a single transaction
func (p *PgvectorIndex) Upsert(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// defer rollback - will be no-op if commit succeeds
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.Warn("failed to rollback transaction", "error", err)
		}
	}()

	batch := &pgx.Batch{}

	for _, e := range entries {
		meta, err := json.Marshal(e.Metadata)
		if err != nil {
			return fmt.Errorf("failed to encode metadata for %s: %w", e.ID, err)
		}

		batch.Queue(upsertChunkQuery,
			p.name,
			e.ID,
			e.Metadata.Text,
			pgvector.NewVector(e.Vector),
			string(meta),
		)
	}

	br := tx.SendBatch(ctx, batch)

	for i := range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to upsert %s: %w", entries[i].ID, err)
		}
	}

	// must close batch results before committing, otherwise connection is still "busy"
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (p *PgvectorIndex) Query(ctx context.Context, vector []float32, topK int) ([]Match, error) {
	if topK <= 0 {
		return []Match{}, nil
	}

	rows, err := p.pool.Query(ctx, searchChunksQuery, pgvector.NewVector(vector), p.name, topK)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search query: %w", err)
	}
	defer rows.Close()

	matches := []Match{}

	for rows.Next() {
		var (
			m    Match
			raw  []byte
			dist float64
		)

		if err := rows.Scan(&m.ID, &raw, &dist); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		if err := json.Unmarshal(raw, &m.Metadata); err != nil {
			return nil, fmt.Errorf("failed to decode metadata for %s: %w", m.ID, err)
		}

		m.Score = float32(dist)
		matches = append(matches, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return matches, nil
}

func (p *PgvectorIndex) Count(ctx context.Context) (int, error) {
	var count int

	if err := p.pool.QueryRow(ctx, countChunksQuery, p.name).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to get chunk count: %w", err)
	}

	return count, nil
}

func (p *PgvectorIndex) Clear(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, deleteChunksQuery, p.name); err != nil {
		return fmt.Errorf("failed to clear chunks: %w", err)
	}

	return nil
}

func (p *PgvectorIndex) Close() error {
	p.pool.Close()
	return nil
}
