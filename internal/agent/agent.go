package agent

import (
	"context"
	"time"

	"codeberg.org/mahabharata/server/internal/characters"
	"codeberg.org/mahabharata/server/internal/document"
	"codeberg.org/mahabharata/server/internal/logger"
	"codeberg.org/mahabharata/server/internal/retriever"
	"codeberg.org/mahabharata/server/internal/sessions"
)

const defaultHistoryTimeout = 2 * time.Second

// history may be nil, in which case conversations are not remembered
func New(ret Retriever, gen Generator, history sessions.Store, profiles *characters.Table, cfg Config) *Agent {
	if cfg.CorpusTitle == "" {
		cfg.CorpusTitle = "Mahabharata"
	}

	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = sessions.DefaultReadLimit
	}

	if cfg.HistoryTimeout <= 0 {
		cfg.HistoryTimeout = defaultHistoryTimeout
	}

	if profiles == nil {
		profiles = characters.Builtin()
	}

	return &Agent{
		retriever: ret,
		generator: gen,
		history:   history,
		profiles:  profiles,
		cfg:       cfg,
	}
}

// answers one chat message. retrieval and history failures degrade to an
// answer without context; generation failures come back as response text.
func (a *Agent) Chat(ctx context.Context, req ChatRequest) ChatResponse {
	history := a.loadHistory(ctx, req.SessionID)
	chunks := a.retrieve(ctx, req.Message)

	prompt := BuildPrompt(PromptInput{
		Message:   req.Message,
		History:   history,
		Mode:      req.Mode,
		Character: req.Character,
		Retrieved: chunks,
	}, a.profiles, a.cfg.CorpusTitle)

	text := a.generator.Generate(ctx, prompt)

	a.saveHistory(ctx, req.SessionID, "User: "+req.Message, "Bot: "+text)

	resp := ChatResponse{
		Response:        text,
		ConfidenceScore: retriever.MaxScore(chunks),
	}

	if req.Mode == ModeCharacter && req.Character != "" {
		character := req.Character
		resp.Character = &character
	}

	if len(chunks) > 0 {
		resp.Sources = a.sources(chunks)
	}

	return resp
}

// profiles offered for character mode
func (a *Agent) Characters() []characters.Profile {
	return a.profiles.Profiles()
}

func (a *Agent) retrieve(ctx context.Context, query string) []retriever.RetrievedChunk {
	if a.retriever == nil {
		return nil
	}

	chunks, err := a.retriever.Retrieve(ctx, query, a.cfg.TopK)
	if err != nil {
		logger.FromContext(ctx).Warn("retrieval failed, answering without context", "error", err)
		return nil
	}

	return chunks
}

func (a *Agent) loadHistory(ctx context.Context, sessionID string) []string {
	if a.history == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.HistoryTimeout)
	defer cancel()

	lines, err := a.history.Recent(ctx, sessionID, a.cfg.HistoryLimit)
	if err != nil {
		logger.FromContext(ctx).Warn("failed to load chat history", "session_id", sessionID, "error", err)
		return nil
	}

	return lines
}

func (a *Agent) saveHistory(ctx context.Context, sessionID string, lines ...string) {
	if a.history == nil {
		return
	}

	// record the exchange even if the caller has gone away
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.HistoryTimeout)
	defer cancel()

	if err := a.history.Append(ctx, sessionID, lines...); err != nil {
		logger.FromContext(ctx).Warn("failed to save chat history", "session_id", sessionID, "error", err)
	}
}

func (a *Agent) sources(chunks []retriever.RetrievedChunk) []Source {
	out := make([]Source, len(chunks))

	for i, c := range chunks {
		title := c.DocumentTitle
		if title == "" {
			title = a.cfg.CorpusTitle
		}

		out[i] = Source{
			Title:  title,
			Source: "Page " + document.PageLabel(c.PageNumber),
		}
	}

	return out
}
