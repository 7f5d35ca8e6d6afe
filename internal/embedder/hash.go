package embedder

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"unicode"
)

// deterministic feature-hashing embedder for offline development and tests.
// texts sharing words and character trigrams land close together.
type HashEmbedder struct {
	dim int
}

func NewHashEmbedder(dim int) *HashEmbedder {
	if dim <= 0 {
		dim = defaultDimensions
	}

	return &HashEmbedder{dim: dim}
}

func (e *HashEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))

	for i, text := range texts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		out[i] = e.vector(text)
	}

	return out, nil
}

func (e *HashEmbedder) vector(text string) []float32 {
	v := make([]float32, e.dim)

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})

	for _, w := range words {
		e.add(v, "w:"+w, 1)

		runes := []rune(w)
		for i := 0; i+3 <= len(runes); i++ {
			e.add(v, "t:"+string(runes[i:i+3]), 0.5)
		}
	}

	// empty input still gets a unit vector
	e.add(v, "bias", 0.01)

	l2normalize(v)

	return v
}

func (e *HashEmbedder) add(v []float32, feature string, weight float32) {
	h := fnv.New64a()
	h.Write([]byte(feature))
	sum := h.Sum64()

	idx := int(sum % uint64(e.dim))
	if sum&(1<<63) != 0 {
		weight = -weight
	}

	v[idx] += weight
}

func (e *HashEmbedder) Model() string {
	return fmt.Sprintf("feature-hash-%d", e.dim)
}

func (e *HashEmbedder) Dimension() int {
	return e.dim
}
