package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/mahabharata/server/internal/errors"
	"codeberg.org/mahabharata/server/internal/logger"
)

func newRouter(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware...)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"request_id": c.GetString(ContextRequestID),
			"has_logger": logger.FromContext(c.Request.Context()) != logger.Default(),
		})
	})

	return router
}

func get(router http.Handler, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	for k, v := range header {
		req.Header[k] = v
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestRequestID_Generates(t *testing.T) {
	w := get(newRouter(RequestID()), nil)

	require.Equal(t, http.StatusOK, w.Code)

	id := w.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Contains(t, w.Body.String(), id)
	assert.Contains(t, w.Body.String(), `"has_logger":true`)
}

func TestRequestID_Echoes(t *testing.T) {
	w := get(newRouter(RequestID()), http.Header{HeaderRequestID: {"abc-123"}})

	assert.Equal(t, "abc-123", w.Header().Get(HeaderRequestID))
	assert.Contains(t, w.Body.String(), `"request_id":"abc-123"`)
}

func TestCORS_AllowsAnyOrigin(t *testing.T) {
	router := newRouter(CORS())

	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
}

func TestRateLimit_Memory(t *testing.T) {
	limit, err := RateLimit("2-M", nil)
	require.NoError(t, err)

	router := newRouter(limit)

	assert.Equal(t, http.StatusOK, get(router, nil).Code)
	assert.Equal(t, http.StatusOK, get(router, nil).Code)

	w := get(router, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "too_many_requests")
}

func TestRateLimit_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	limit, err := RateLimit("1-H", client)
	require.NoError(t, err)

	router := newRouter(limit)

	assert.Equal(t, http.StatusOK, get(router, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(router, nil).Code)
}

func TestRateLimit_InvalidFormat(t *testing.T) {
	_, err := RateLimit("thirty per minute", nil)
	assert.Error(t, err)
}

func TestRecovery_ReturnsErrorBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.GET("/panic", func(c *gin.Context) {
		panic("index exploded")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, w.Header().Get(HeaderRequestID))

	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, errors.CodeServerError, resp.Error)
	assert.Equal(t, "internal server error", resp.Message)
}
