package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort             = "8080"
	defaultCorpusTitle      = "Mahabharata"
	defaultTogetherModel    = "meta-llama/Llama-3-70b-chat-hf"
	defaultCohereModel      = "command-r-plus"
	defaultAnthropicModel   = "claude-3-haiku-20240307"
	defaultLLMMaxTokens     = 512
	defaultLLMTemperature   = 0.7
	defaultLLMTimeout       = 30 * time.Second
	defaultLLMRateLimit     = 50
	defaultLLMRateBurst     = 10
	defaultEmbedderProvider = "openai"
	defaultEmbedderModel    = "BAAI/bge-large-en-v1.5"
	defaultEmbedderBaseURL  = "https://api.together.xyz/v1"
	defaultDimensions       = 1024
	defaultVectorBackend    = "pgvector"
	defaultIndexName        = "mahabharat"
	defaultProfilesPath     = "character_profiles.json"
	defaultTopK             = 5
	defaultRetrievalTimeout = 10 * time.Second
	defaultRateLimit        = "30-M"
)

// loads configuration from .env (if present) and the environment
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return FromEnv(os.Getenv), nil
}

// builds a Config from a lookup function, applying defaults for unset keys
func FromEnv(getenv func(string) string) *Config {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}

		return fallback
	}

	togetherKey := getenv("TOGETHER_API_KEY")

	// the embedding endpoint defaults to Together, so reuse its key unless told otherwise
	embedderKey := get("EMBEDDER_API_KEY", togetherKey)

	return &Config{
		Port:        get("PORT", defaultPort),
		Environment: get("ENVIRONMENT", "development"),
		CorpusTitle: get("CORPUS_TITLE", defaultCorpusTitle),

		TogetherAPIKey:  togetherKey,
		CohereAPIKey:    getenv("COHERE_API_KEY"),
		AnthropicAPIKey: getenv("ANTHROPIC_API_KEY"),
		LLMProviders:    splitList(get("LLM_PROVIDERS", "together,cohere")),
		TogetherModel:   get("TOGETHER_MODEL", defaultTogetherModel),
		CohereModel:     get("COHERE_MODEL", defaultCohereModel),
		AnthropicModel:  get("ANTHROPIC_MODEL", defaultAnthropicModel),
		LLMMaxTokens:    parseInt(getenv("LLM_MAX_TOKENS"), defaultLLMMaxTokens),
		LLMTemperature:  float32(parseFloat(getenv("LLM_TEMPERATURE"), defaultLLMTemperature)),
		LLMTimeout:      parseDuration(getenv("LLM_TIMEOUT"), defaultLLMTimeout),
		LLMRateLimit:    parseFloat(getenv("LLM_RATE_LIMIT"), defaultLLMRateLimit),
		LLMRateBurst:    parseInt(getenv("LLM_RATE_BURST"), defaultLLMRateBurst),

		EmbedderProvider:    get("EMBEDDER_PROVIDER", defaultEmbedderProvider),
		EmbedderModel:       get("EMBEDDER_MODEL", defaultEmbedderModel),
		EmbedderAPIKey:      embedderKey,
		EmbedderBaseURL:     get("EMBEDDER_BASE_URL", defaultEmbedderBaseURL),
		EmbeddingDimensions: parseInt(getenv("EMBEDDING_DIMENSIONS"), defaultDimensions),

		VectorBackend: get("VECTOR_BACKEND", defaultVectorBackend),
		DatabaseURL:   getenv("DATABASE_URL"),
		IndexName:     get("INDEX_NAME", defaultIndexName),
		ChromemPath:   getenv("CHROMEM_PATH"),

		RedisURL:   getenv("REDIS_URL"),
		HistoryTTL: parseDuration(getenv("HISTORY_TTL"), 0),

		CharacterProfilesPath: get("CHARACTER_PROFILES_PATH", defaultProfilesPath),

		RetrievalTopK:    parseInt(getenv("RETRIEVAL_TOP_K"), defaultTopK),
		RetrievalTimeout: parseDuration(getenv("RETRIEVAL_TIMEOUT"), defaultRetrievalTimeout),

		RateLimit: get("RATE_LIMIT", defaultRateLimit),
	}
}

func parseInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}

	if val, err := strconv.Atoi(strings.TrimSpace(s)); err == nil && val > 0 {
		return val
	}

	return fallback
}

// zero is a valid value here, so only unset, unparsable or negative input falls back
func parseFloat(s string, fallback float64) float64 {
	if s == "" {
		return fallback
	}

	if val, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && val >= 0 {
		return val
	}

	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}

	if val, err := time.ParseDuration(strings.TrimSpace(s)); err == nil && val >= 0 {
		return val
	}

	return fallback
}

func splitList(s string) []string {
	var out []string

	for part := range strings.SplitSeq(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}
