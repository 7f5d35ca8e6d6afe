package llm

import (
	"codeberg.org/mahabharata/server/internal/config"
	"codeberg.org/mahabharata/server/internal/logger"
)

// maps process configuration onto provider settings
func ConfigFromEnv(cfg *config.Config) Config {
	return Config{
		Order:           cfg.LLMProviders,
		TogetherAPIKey:  cfg.TogetherAPIKey,
		TogetherModel:   cfg.TogetherModel,
		CohereAPIKey:    cfg.CohereAPIKey,
		CohereModel:     cfg.CohereModel,
		AnthropicAPIKey: cfg.AnthropicAPIKey,
		AnthropicModel:  cfg.AnthropicModel,
	}
}

// builds providers in the configured order. providers without a credential
// are left out; one that fails to build is logged and skipped.
func NewProviders(cfg Config) []Provider {
	var providers []Provider

	for _, name := range cfg.Order {
		var (
			p   Provider
			err error
		)

		switch name {
		case ProviderTogether:
			if cfg.TogetherAPIKey == "" {
				continue
			}
			p, err = NewTogetherProvider(cfg.TogetherAPIKey, cfg.TogetherModel, cfg.TogetherBaseURL)
		case ProviderCohere:
			if cfg.CohereAPIKey == "" {
				continue
			}
			p, err = NewCohereProvider(cfg.CohereAPIKey, cfg.CohereModel, cfg.CohereBaseURL)
		case ProviderAnthropic:
			if cfg.AnthropicAPIKey == "" {
				continue
			}
			p, err = NewAnthropicProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel, cfg.AnthropicBaseURL)
		default:
			logger.Warn("unknown generation provider", "provider", name)
			continue
		}

		if err != nil {
			logger.Warn("generation provider unavailable", "provider", name, "error", err)
			continue
		}

		providers = append(providers, p)
	}

	return providers
}
