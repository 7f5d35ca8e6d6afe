package tui

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T, handler http.HandlerFunc) *ChatClient {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewChatClient(srv.URL)
}

func TestChatClient_Chat(t *testing.T) {
	client := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat", r.URL.Path)

		var req chatRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "character", req.Mode)
		if assert.NotNil(t, req.Character) {
			assert.Equal(t, "Karna", *req.Character)
		}
		assert.Equal(t, "s1", req.SessionID)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":"I am the son of Surya.","character":"Karna","confidenceScore":0.8,` + //nolint:errcheck
			`"sources":[{"title":"Mahabharata","source":"Page 12","isWebSource":false}]}`))
	})

	reply, err := client.Chat(t.Context(), "Who are you?", "Karna", "s1")
	require.NoError(t, err)

	assert.Equal(t, "I am the son of Surya.", reply.Response)
	assert.InDelta(t, 0.8, reply.ConfidenceScore, 1e-6)
	require.Len(t, reply.Sources, 1)
	assert.Equal(t, "Page 12", reply.Sources[0].Source)
}

func TestChatClient_AIModeSendsNullCharacter(t *testing.T) {
	client := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ai", body["mode"])
		assert.Contains(t, body, "character")
		assert.Nil(t, body["character"])

		w.Write([]byte(`{"response":"ok","character":null,"confidenceScore":0,"sources":null}`)) //nolint:errcheck
	})

	reply, err := client.Chat(t.Context(), "hi", "", "s1")
	require.NoError(t, err)
	assert.Nil(t, reply.Sources)
}

func TestChatClient_ErrorResponse(t *testing.T) {
	client := newTestAPI(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"too_many_requests","message":"too many requests. please slow down."}`)) //nolint:errcheck
	})

	_, err := client.Chat(t.Context(), "hi", "", "s1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too_many_requests")
}

func TestChatClient_Characters(t *testing.T) {
	client := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/characters", r.URL.Path)
		w.Write([]byte(`[{"name":"Karna","description":"Generous warrior"}]`)) //nolint:errcheck
	})

	list, err := client.Characters(t.Context())
	require.NoError(t, err)
	assert.Equal(t, []Character{{Name: "Karna", Description: "Generous warrior"}}, list)
}

func TestFormatReplyMetadata(t *testing.T) {
	assert.Equal(t, "no passages retrieved", formatReplyMetadata(ChatReply{}))

	got := formatReplyMetadata(ChatReply{
		ConfidenceScore: 0.756,
		Sources: []Source{
			{Source: "Page 3"},
			{Source: "Page 3"},
			{Source: "Page Unknown"},
		},
	})
	assert.Equal(t, "confidence: 0.76 | sources: Page 3, Page Unknown", got)
}

func TestWelcome_ResolveCharacter(t *testing.T) {
	w := NewWelcome("development")

	name, err := w.resolveCharacter("karna")
	require.NoError(t, err)
	assert.Equal(t, "karna", name, "without a list the name is passed through")

	w.Update(CharactersLoadedMsg{characters: []Character{{Name: "Karna"}, {Name: "Krishna"}}})

	name, err = w.resolveCharacter("KRISHNA")
	require.NoError(t, err)
	assert.Equal(t, "Krishna", name)

	_, err = w.resolveCharacter("Ravana")
	assert.Error(t, err)

	_, err = w.resolveCharacter("")
	assert.Error(t, err)
}

func TestModel_ChatFlow(t *testing.T) {
	m := NewApp("development", NewChatClient("http://localhost:0"))

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(EnterChatMsg{character: "Arjuna"})

	require.Equal(t, StateChat, m.state)
	assert.Equal(t, "Arjuna", m.chat.character)
	assert.NotEmpty(t, m.chat.sessionID)

	m.chat.transcript = append(m.chat.transcript, TranscriptEntry{Role: roleUser, Content: "why fight?"})
	m.chat.isFetching = true

	m.Update(ChatResponseMsg{message: "why fight?", reply: ChatReply{Response: "Because it is my duty."}})

	assert.False(t, m.chat.isFetching)
	require.Len(t, m.chat.transcript, 2)
	assert.Equal(t, roleBot, m.chat.transcript[1].Role)
	assert.Equal(t, "no passages retrieved", m.chat.transcript[1].Metadata)
	assert.Contains(t, m.View(), "CHAT WITH ARJUNA")

	m.Update(ChatErrorMsg{message: "again", err: errors.New("connection refused")})
	assert.Contains(t, m.chat.transcript[2].Content, "connection refused")

	// ctrl+c leaves the chat before it leaves the program
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Equal(t, StateWelcome, m.state)
}

func TestModel_ErrorIsDismissed(t *testing.T) {
	m := NewApp("production", NewChatClient("http://localhost:0"))

	m.Update(ErrorMsg{err: errors.New("unknown command: dance")})
	assert.Contains(t, m.View(), "unknown command: dance")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.Nil(t, cmd)
	assert.NotContains(t, m.View(), "unknown command")
}
