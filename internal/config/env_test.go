package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func lookup(env map[string]string) func(string) string {
	return func(key string) string { return env[key] }
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(lookup(nil))

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, []string{"together", "cohere"}, cfg.LLMProviders)
	assert.Equal(t, 512, cfg.LLMMaxTokens)
	assert.InDelta(t, 0.7, cfg.LLMTemperature, 1e-6)
	assert.Equal(t, 30*time.Second, cfg.LLMTimeout)
	assert.InDelta(t, 50.0, cfg.LLMRateLimit, 1e-9)
	assert.Equal(t, 10, cfg.LLMRateBurst)
	assert.Equal(t, "30-M", cfg.RateLimit)
}

func TestFromEnvKeepsZeroTemperature(t *testing.T) {
	cfg := FromEnv(lookup(map[string]string{"LLM_TEMPERATURE": "0"}))

	assert.Zero(t, cfg.LLMTemperature)
}

func TestFromEnvRejectsBadNumbers(t *testing.T) {
	cfg := FromEnv(lookup(map[string]string{
		"LLM_TEMPERATURE": "-1",
		"LLM_RATE_LIMIT":  "fast",
		"LLM_RATE_BURST":  "0",
		"LLM_MAX_TOKENS":  "lots",
	}))

	assert.InDelta(t, 0.7, cfg.LLMTemperature, 1e-6)
	assert.InDelta(t, 50.0, cfg.LLMRateLimit, 1e-9)
	assert.Equal(t, 10, cfg.LLMRateBurst)
	assert.Equal(t, 512, cfg.LLMMaxTokens)
}

func TestFromEnvRateLimitCanBeDisabled(t *testing.T) {
	cfg := FromEnv(lookup(map[string]string{"LLM_RATE_LIMIT": "0"}))

	assert.Zero(t, cfg.LLMRateLimit)
}

func TestFromEnvEmbedderKeyFallsBackToTogether(t *testing.T) {
	cfg := FromEnv(lookup(map[string]string{
		"TOGETHER_API_KEY": "tk",
		"LLM_PROVIDERS":    " Anthropic, ,together ",
	}))

	assert.Equal(t, "tk", cfg.EmbedderAPIKey)
	assert.Equal(t, []string{"anthropic", "together"}, cfg.LLMProviders)
}

func TestParseIngestFlags(t *testing.T) {
	flags := ParseIngestFlags([]string{"-path", "epic.pdf", "-clear", "-chunk-size", "800", "-page-resolution", "search"})

	assert.Equal(t, "epic.pdf", flags.Path)
	assert.True(t, flags.Clear)
	assert.Equal(t, 800, flags.ChunkSize)
	assert.Equal(t, 100, flags.ChunkOverlap)
	assert.Equal(t, "Mahabharata", flags.Title)
	assert.Equal(t, "search", flags.PageResolution)
}
