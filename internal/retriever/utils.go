package retriever

import (
	"sort"
	"time"
)

const (
	defaultTopK    = 5
	defaultTimeout = 10 * time.Second
)

// drops duplicate ids, orders by score (ties by chunk id) and keeps topK
func rankChunks(chunks []RetrievedChunk, topK int) []RetrievedChunk {
	seen := make(map[string]bool, len(chunks))
	ranked := make([]RetrievedChunk, 0, len(chunks))

	for _, chunk := range chunks {
		if seen[chunk.ID] {
			continue
		}

		seen[chunk.ID] = true
		ranked = append(ranked, chunk)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].SimilarityScore != ranked[j].SimilarityScore {
			return ranked[i].SimilarityScore > ranked[j].SimilarityScore
		}

		return ranked[i].ChunkID < ranked[j].ChunkID
	})

	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	return ranked
}

// highest similarity among chunks, 0 when there are none
func MaxScore(chunks []RetrievedChunk) float32 {
	if len(chunks) == 0 {
		return 0
	}

	best := chunks[0].SimilarityScore
	for _, c := range chunks[1:] {
		if c.SimilarityScore > best {
			best = c.SimilarityScore
		}
	}

	return best
}
