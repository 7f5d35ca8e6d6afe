package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mahabharata/server/internal/characters"
	"codeberg.org/mahabharata/server/internal/retriever"
	"codeberg.org/mahabharata/server/internal/sessions"
	"codeberg.org/mahabharata/server/internal/storage"
)

// implements Retriever for testing
type mockRetriever struct {
	retrieveFunc func(ctx context.Context, query string, topK int) ([]retriever.RetrievedChunk, error)
}

func (m *mockRetriever) Retrieve(ctx context.Context, query string, topK int) ([]retriever.RetrievedChunk, error) {
	if m.retrieveFunc != nil {
		return m.retrieveFunc(ctx, query, topK)
	}

	return nil, nil
}

// implements Generator for testing
type mockGenerator struct {
	generateFunc func(ctx context.Context, prompt string) string
	prompts      []string
}

func (m *mockGenerator) Generate(ctx context.Context, prompt string) string {
	m.prompts = append(m.prompts, prompt)

	if m.generateFunc != nil {
		return m.generateFunc(ctx, prompt)
	}

	return "Dharma is subtle."
}

// implements sessions.Store for testing
type mockStore struct {
	recentFunc func(ctx context.Context, sessionID string, limit int) ([]string, error)
	appendFunc func(ctx context.Context, sessionID string, lines ...string) error
}

func (m *mockStore) Recent(ctx context.Context, sessionID string, limit int) ([]string, error) {
	if m.recentFunc != nil {
		return m.recentFunc(ctx, sessionID, limit)
	}

	return nil, nil
}

func (m *mockStore) Append(ctx context.Context, sessionID string, lines ...string) error {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, sessionID, lines...)
	}

	return nil
}

func (m *mockStore) Close() error {
	return nil
}

func retrieved(id int, page int, score float32) retriever.RetrievedChunk {
	return retriever.RetrievedChunk{
		Metadata: storage.Metadata{
			Text:       "Karna gave away his armour to Indra.",
			Summary:    "Karna gave away his armour...",
			ChunkID:    id,
			PageNumber: page,
		},
		ID:              storage.ChunkID(id),
		SimilarityScore: score,
	}
}

func TestChat_CharacterModeEmptyIndex(t *testing.T) {
	gen := &mockGenerator{}
	store := sessions.NewMemoryStore(sessions.Options{})
	defer store.Close()

	a := New(&mockRetriever{}, gen, store, characters.Builtin(), Config{})

	resp := a.Chat(context.Background(), ChatRequest{
		Message:   "Why did you give away your armour?",
		Mode:      ModeCharacter,
		Character: "Karna",
		SessionID: "s1",
	})

	assert.Equal(t, "Dharma is subtle.", resp.Response)
	require.NotNil(t, resp.Character)
	assert.Equal(t, "Karna", *resp.Character)
	assert.Zero(t, resp.ConfidenceScore)
	assert.Nil(t, resp.Sources)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "CHARACTER PERSONA: Respond as Karna")
	assert.NotContains(t, gen.prompts[0], "RELEVANT CONTEXT FROM")

	history, err := store.Recent(context.Background(), "s1", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"User: Why did you give away your armour?",
		"Bot: Dharma is subtle.",
	}, history)
}

func TestChat_SourcesAndConfidence(t *testing.T) {
	ret := &mockRetriever{
		retrieveFunc: func(_ context.Context, query string, topK int) ([]retriever.RetrievedChunk, error) {
			assert.Equal(t, "Who is Karna?", query)
			assert.Equal(t, 3, topK)

			first := retrieved(4, 12, 0.82)
			first.DocumentTitle = "Adi Parva"

			return []retriever.RetrievedChunk{first, retrieved(9, 0, 0.61)}, nil
		},
	}

	a := New(ret, &mockGenerator{}, nil, nil, Config{TopK: 3})

	resp := a.Chat(context.Background(), ChatRequest{Message: "Who is Karna?", Mode: ModeAI, SessionID: "s1"})

	assert.Nil(t, resp.Character)
	assert.InDelta(t, 0.82, resp.ConfidenceScore, 1e-6)
	assert.Equal(t, []Source{
		{Title: "Adi Parva", Source: "Page 12"},
		{Title: "Mahabharata", Source: "Page Unknown"},
	}, resp.Sources)
}

func TestChat_CharacterIgnoredInAIMode(t *testing.T) {
	gen := &mockGenerator{}
	a := New(&mockRetriever{}, gen, nil, nil, Config{})

	resp := a.Chat(context.Background(), ChatRequest{Message: "hi", Mode: ModeAI, Character: "Karna", SessionID: "s1"})

	assert.Nil(t, resp.Character)
	assert.NotContains(t, gen.prompts[0], "CHARACTER PERSONA")
}

func TestChat_RetrievalFailureDegrades(t *testing.T) {
	ret := &mockRetriever{
		retrieveFunc: func(context.Context, string, int) ([]retriever.RetrievedChunk, error) {
			return nil, retriever.ErrIndexUnavailable
		},
	}
	gen := &mockGenerator{}

	a := New(ret, gen, nil, nil, Config{})
	resp := a.Chat(context.Background(), ChatRequest{Message: "Who is Bhishma?", Mode: ModeAI, SessionID: "s1"})

	assert.Equal(t, "Dharma is subtle.", resp.Response)
	assert.Zero(t, resp.ConfidenceScore)
	assert.Nil(t, resp.Sources)
	assert.NotContains(t, gen.prompts[0], "RELEVANT CONTEXT FROM")
}

func TestChat_HistoryFailuresDegrade(t *testing.T) {
	appended := false
	store := &mockStore{
		recentFunc: func(context.Context, string, int) ([]string, error) {
			return nil, errors.New("connection refused")
		},
		appendFunc: func(context.Context, string, ...string) error {
			appended = true
			return errors.New("connection refused")
		},
	}
	gen := &mockGenerator{}

	a := New(&mockRetriever{}, gen, store, nil, Config{})
	resp := a.Chat(context.Background(), ChatRequest{Message: "hello", Mode: ModeAI, SessionID: "s1"})

	assert.Equal(t, "Dharma is subtle.", resp.Response)
	assert.True(t, appended)
	assert.NotContains(t, gen.prompts[0], "CHAT HISTORY:")
}

func TestChat_HistoryFeedsPrompt(t *testing.T) {
	store := &mockStore{
		recentFunc: func(_ context.Context, sessionID string, limit int) ([]string, error) {
			assert.Equal(t, "s7", sessionID)
			assert.Equal(t, sessions.DefaultReadLimit, limit)

			return []string{"User: who won?", "Bot: The Pandavas."}, nil
		},
	}
	gen := &mockGenerator{}

	a := New(&mockRetriever{}, gen, store, nil, Config{})
	a.Chat(context.Background(), ChatRequest{Message: "at what cost?", Mode: ModeAI, SessionID: "s7"})

	assert.Contains(t, gen.prompts[0], "CHAT HISTORY:\nUser: who won?\nBot: The Pandavas.\n")
}

func TestChat_AppendSurvivesCanceledRequest(t *testing.T) {
	store := sessions.NewMemoryStore(sessions.Options{})
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	gen := &mockGenerator{
		generateFunc: func(context.Context, string) string {
			cancel()
			return "late answer"
		},
	}

	a := New(&mockRetriever{}, gen, store, nil, Config{})
	a.Chat(ctx, ChatRequest{Message: "q", Mode: ModeAI, SessionID: "s1"})

	history, err := store.Recent(context.Background(), "s1", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"User: q", "Bot: late answer"}, history)
}

func TestCharacters(t *testing.T) {
	a := New(nil, &mockGenerator{}, nil, nil, Config{})

	profiles := a.Characters()
	require.Len(t, profiles, 7)
	assert.Equal(t, "Karna", profiles[0].Name)
}
