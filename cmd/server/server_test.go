package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mahabharata/server/internal/config"
)

// an offline server: hash embeddings, in-memory index and history, no providers
func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := map[string]string{
		"EMBEDDER_PROVIDER":       "hash",
		"EMBEDDING_DIMENSIONS":    "64",
		"VECTOR_BACKEND":          "chromem",
		"LLM_PROVIDERS":           "together,cohere",
		"CHARACTER_PROFILES_PATH": filepath.Join(t.TempDir(), "missing.json"),
		"RATE_LIMIT":              "100-M",
	}

	cfg := config.FromEnv(func(key string) string { return env[key] })

	srv, err := NewServer(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(srv.services.Close)

	return srv
}

func TestServer_Root(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Mahabharata RAG API is running"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestServer_Characters(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/characters", "/api/v1/characters"} {
		w := httptest.NewRecorder()
		srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusOK, w.Code, path)

		var list []map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		require.Len(t, list, 7)
		assert.Equal(t, map[string]string{"name": "Karna", "description": "Generous warrior"}, list[0])
	}
}

func TestServer_ChatWithoutProviders(t *testing.T) {
	srv := newTestServer(t)

	body, err := json.Marshal(map[string]any{
		"message":    "Who is Karna?",
		"mode":       "character",
		"character":  "Karna",
		"session_id": "s1",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "No AI service is available. Please check your API configuration.", resp["response"])
	assert.Equal(t, "Karna", resp["character"])
	assert.Equal(t, 0.0, resp["confidenceScore"])
	assert.Nil(t, resp["sources"])

	history, err := srv.services.History.Recent(context.Background(), "s1", 10)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"entries":0`)
}

func TestServer_UnknownRoute(t *testing.T) {
	srv := newTestServer(t)

	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/shlokas", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"not_found","message":"route not found"}`, w.Body.String())
}
