package storage

const (
	createExtensionQuery = `CREATE EXTENSION IF NOT EXISTS vector`

	// %d is the embedding dimension
	createTableQuery = `
		CREATE TABLE IF NOT EXISTS chunk_embeddings (
			index_name TEXT NOT NULL,
			id TEXT NOT NULL,
			content TEXT NOT NULL,
			embedding vector(%d) NOT NULL,
			metadata JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (index_name, id)
		)
	`

	upsertChunkQuery = `
		INSERT INTO chunk_embeddings (index_name, id, content, embedding, metadata)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (index_name, id) DO UPDATE
		SET content = EXCLUDED.content,
			embedding = EXCLUDED.embedding,
			metadata = EXCLUDED.metadata
	`

	searchChunksQuery = `
		SELECT
			id,
			metadata,
			1 - (embedding <=> $1) AS similarity
		FROM chunk_embeddings
		WHERE index_name = $2
		ORDER BY embedding <=> $1
		LIMIT $3
	`

	countChunksQuery  = `SELECT COUNT(*) FROM chunk_embeddings WHERE index_name = $1`
	deleteChunksQuery = `DELETE FROM chunk_embeddings WHERE index_name = $1`
)
