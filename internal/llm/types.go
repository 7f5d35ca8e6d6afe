package llm

import (
	"context"
	"time"
)

const (
	ProviderTogether  = "together"
	ProviderCohere    = "cohere"
	ProviderAnthropic = "anthropic"
)

// a text generation backend. Generate gets exactly one attempt per request.
type Provider interface {
	Name() string
	Generate(ctx context.Context, req Request) (string, error)
}

type Request struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float32
}

// one provider that did not produce text
type Failure struct {
	Provider string
	Err      error
}

// outcome of a gateway call. Provider is empty when nothing succeeded.
type Result struct {
	Text     string
	Provider string
	Failures []Failure
}

type GatewayConfig struct {
	System    string
	MaxTokens int

	// sent as given; zero is a valid setting
	Temperature float32
	Timeout     time.Duration

	// requests per second allowed per provider; 0 disables limiting
	RateLimit float64
	Burst     int
}

// provider settings resolved from the environment
type Config struct {
	Order []string

	TogetherAPIKey  string
	TogetherModel   string
	TogetherBaseURL string

	CohereAPIKey  string
	CohereModel   string
	CohereBaseURL string

	AnthropicAPIKey  string
	AnthropicModel   string
	AnthropicBaseURL string
}
