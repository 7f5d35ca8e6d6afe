package embedder

import (
	"context"
	"fmt"
	"math"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderHash   = "hash"
)

// maps text to fixed-length vectors. ingestion and retrieval must use the same
// model, otherwise stored and query vectors are not comparable.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	Model() string
	Dimension() int
}

type Config struct {
	Provider   string
	Model      string
	APIKey     string
	BaseURL    string
	Dimensions int
	BatchSize  int
}

// builds the configured embedder
func New(cfg Config) (Embedder, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderOpenAI:
		return NewOpenAIEmbedder(cfg)
	case ProviderHash:
		return NewHashEmbedder(cfg.Dimensions), nil
	default:
		return nil, fmt.Errorf("unknown embedder provider %q", cfg.Provider)
	}
}

// embeds a single text
func EmbedOne(ctx context.Context, e Embedder, text string) ([]float32, error) {
	vecs, err := e.Embed(ctx, []string{text})
	if err != nil {
		return nil, err
	}

	if len(vecs) != 1 {
		return nil, fmt.Errorf("expected 1 embedding, got %d", len(vecs))
	}

	return vecs[0], nil
}

// cosine similarity of two vectors; 0 when either is zero or lengths differ
func Cosine(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}

	if na == 0 || nb == 0 {
		return 0
	}

	return float32(dot / (math.Sqrt(na) * math.Sqrt(nb)))
}
