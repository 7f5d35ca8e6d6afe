package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/cohere"
)

// Cohere generation through langchaingo. the system instruction is not sent;
// the prompt carries everything the model needs.
type CohereProvider struct {
	llm *cohere.LLM
}

func NewCohereProvider(apiKey, model, baseURL string) (*CohereProvider, error) {
	if apiKey == "" {
		return nil, errors.New("cohere api key not set")
	}

	opts := []cohere.Option{
		cohere.WithToken(apiKey),
		cohere.WithModel(model),
	}

	if baseURL != "" {
		opts = append(opts, cohere.WithBaseURL(baseURL))
	}

	client, err := cohere.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cohere client: %w", err)
	}

	return &CohereProvider{llm: client}, nil
}

func (p *CohereProvider) Name() string {
	return ProviderCohere
}

func (p *CohereProvider) Generate(ctx context.Context, req Request) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, p.llm, req.Prompt,
		llms.WithMaxTokens(req.MaxTokens),
		llms.WithTemperature(float64(req.Temperature)),
	)
	if err != nil {
		return "", fmt.Errorf("cohere generation failed: %w", err)
	}

	return text, nil
}
