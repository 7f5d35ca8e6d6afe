package config

import "time"

// process configuration. credentials are optional: an empty key means the
// feature behind it is unavailable, not that startup fails.
type Config struct {
	Port        string
	Environment string
	CorpusTitle string

	// generation providers
	TogetherAPIKey  string
	CohereAPIKey    string
	AnthropicAPIKey string
	LLMProviders    []string
	TogetherModel   string
	CohereModel     string
	AnthropicModel  string
	LLMMaxTokens    int
	LLMTemperature  float32
	LLMTimeout      time.Duration

	// per-provider request rate (requests/second) and burst; 0 disables limiting
	LLMRateLimit float64
	LLMRateBurst int

	// embedding model; ingestion and serving must agree on these
	EmbedderProvider    string
	EmbedderModel       string
	EmbedderAPIKey      string
	EmbedderBaseURL     string
	EmbeddingDimensions int

	// vector index
	VectorBackend string
	DatabaseURL   string
	IndexName     string
	ChromemPath   string

	// session history
	RedisURL   string
	HistoryTTL time.Duration

	CharacterProfilesPath string

	RetrievalTopK    int
	RetrievalTimeout time.Duration

	// ulule/limiter formatted rate, e.g. "30-M"
	RateLimit string
}

// flags for the ingester pdf subcommand
type IngestFlags struct {
	Path           string
	Title          string
	Clear          bool
	ChunkSize      int
	ChunkOverlap   int
	BatchSize      int
	PageResolution string
}
