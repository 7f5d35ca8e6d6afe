package embedder

import (
	"context"
	"errors"
	"fmt"
	"sort"

	openai "github.com/sashabaranov/go-openai"
)

// embeds text through an OpenAI-compatible /embeddings endpoint
// (Together AI by default)
type OpenAIEmbedder struct {
	client    *openai.Client
	model     string
	dim       int
	batchSize int
}

func NewOpenAIEmbedder(cfg Config) (*OpenAIEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("embedder api key not set")
	}

	clientCfg := openai.DefaultConfig(cfg.APIKey)
	clientCfg.BaseURL = cfg.BaseURL
	if clientCfg.BaseURL == "" {
		clientCfg.BaseURL = defaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = defaultModel
	}

	dim := cfg.Dimensions
	if dim <= 0 {
		dim = defaultDimensions
	}

	batch := cfg.BatchSize
	if batch <= 0 {
		batch = defaultBatchSize
	}

	return &OpenAIEmbedder{
		client:    openai.NewClientWithConfig(clientCfg),
		model:     model,
		dim:       dim,
		batchSize: batch,
	}, nil
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, 0, len(texts))

	for start := 0; start < len(texts); start += e.batchSize {
		end := min(start+e.batchSize, len(texts))

		vecs, err := e.embedBatch(ctx, texts[start:end])
		if err != nil {
			return nil, fmt.Errorf("batch %d-%d: %w", start, end, err)
		}

		out = append(out, vecs...)
	}

	return out, nil
}

func (e *OpenAIEmbedder) embedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(e.model),
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("embeddings request failed: %w", err)
	}

	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	data := resp.Data
	sort.Slice(data, func(i, j int) bool { return data[i].Index < data[j].Index })

	vecs := make([][]float32, len(data))
	for i, d := range data {
		if len(d.Embedding) != e.dim {
			return nil, fmt.Errorf("model %s returned %d dimensions, expected %d", e.model, len(d.Embedding), e.dim)
		}

		v := make([]float32, len(d.Embedding))
		for j, x := range d.Embedding {
			v[j] = float32(x)
		}

		l2normalize(v)
		vecs[i] = v
	}

	return vecs, nil
}

func (e *OpenAIEmbedder) Model() string {
	return e.model
}

func (e *OpenAIEmbedder) Dimension() int {
	return e.dim
}
