package agent

import (
	"context"
	"time"

	"codeberg.org/mahabharata/server/internal/characters"
	"codeberg.org/mahabharata/server/internal/retriever"
	"codeberg.org/mahabharata/server/internal/sessions"
)

const (
	ModeAI        = "ai"
	ModeCharacter = "character"
)

// interface for chunk retrieval
type Retriever interface {
	Retrieve(ctx context.Context, query string, topK int) ([]retriever.RetrievedChunk, error)
}

// interface for text generation; implementations never fail
type Generator interface {
	Generate(ctx context.Context, prompt string) string
}

// answers chat messages grounded in retrieved chunks
type Agent struct {
	retriever Retriever
	generator Generator
	history   sessions.Store
	profiles  *characters.Table
	cfg       Config
}

type Config struct {
	CorpusTitle    string
	TopK           int
	HistoryLimit   int
	HistoryTimeout time.Duration
}

type ChatRequest struct {
	Message   string
	Mode      string
	Character string
	SessionID string
}

type ChatResponse struct {
	Response        string   `json:"response"`
	Character       *string  `json:"character"`
	ConfidenceScore float32  `json:"confidenceScore"`
	Sources         []Source `json:"sources"`
}

// citation for one retrieved chunk
type Source struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	IsWebSource bool   `json:"isWebSource"`
	URL         string `json:"url,omitempty"`
}

// everything the prompt is assembled from
type PromptInput struct {
	Message   string
	History   []string
	Mode      string
	Character string
	Retrieved []retriever.RetrievedChunk
}
