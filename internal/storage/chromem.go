package storage

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/philippgille/chromem-go"
)

// in-process vector index; persisted to disk when a path is given
type ChromemIndex struct {
	db   *chromem.DB
	name string

	mu         sync.RWMutex
	collection *chromem.Collection
}

func NewChromemIndex(path, name string) (*ChromemIndex, error) {
	var db *chromem.DB

	if path == "" {
		db = chromem.NewDB()
	} else {
		var err error

		db, err = chromem.NewPersistentDB(path, false)
		if err != nil {
			return nil, fmt.Errorf("failed to open chromem database: %w", err)
		}
	}

	// embeddings are always supplied, so no embedding func is needed
	collection, err := db.GetOrCreateCollection(name, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create/get collection: %w", err)
	}

	return &ChromemIndex{
		db:         db,
		name:       name,
		collection: collection,
	}, nil
}

func (c *ChromemIndex) Upsert(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]chromem.Document, len(entries))
	for i, e := range entries {
		docs[i] = chromem.Document{
			ID:        e.ID,
			Metadata:  e.Metadata.toMap(),
			Embedding: e.Vector,
			Content:   e.Metadata.Text,
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := c.collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return fmt.Errorf("failed to add documents: %w", err)
	}

	return nil
}

func (c *ChromemIndex) Query(ctx context.Context, vector []float32, topK int) ([]Match, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	// chromem rejects nResults above the collection size
	n := min(topK, c.collection.Count())
	if n <= 0 {
		return []Match{}, nil
	}

	results, err := c.collection.QueryEmbedding(ctx, vector, n, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query by similarity: %w", err)
	}

	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			ID:       r.ID,
			Score:    r.Similarity,
			Metadata: metadataFromMap(r.Metadata, r.Content),
		}
	}

	return matches, nil
}

func (c *ChromemIndex) Count(_ context.Context) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.collection.Count(), nil
}

func (c *ChromemIndex) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.db.DeleteCollection(c.name); err != nil {
		return fmt.Errorf("failed to drop collection: %w", err)
	}

	collection, err := c.db.GetOrCreateCollection(c.name, nil, nil)
	if err != nil {
		return fmt.Errorf("failed to recreate collection: %w", err)
	}

	c.collection = collection

	return nil
}

// persistent databases write through on every change
func (c *ChromemIndex) Close() error {
	return nil
}
