package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// chat completions on Together AI's OpenAI-compatible API
type TogetherProvider struct {
	client *openai.Client
	model  string
}

func NewTogetherProvider(apiKey, model, baseURL string) (*TogetherProvider, error) {
	if apiKey == "" {
		return nil, errors.New("together api key not set")
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = baseURL
	if cfg.BaseURL == "" {
		cfg.BaseURL = togetherBaseURL
	}

	return &TogetherProvider{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}, nil
}

func (p *TogetherProvider) Name() string {
	return ProviderTogether
}

func (p *TogetherProvider) Generate(ctx context.Context, req Request) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}

	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.Prompt,
	})

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no choices in response")
	}

	return resp.Choices[0].Message.Content, nil
}
