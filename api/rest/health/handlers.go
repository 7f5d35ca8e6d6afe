package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	serviceName = "mahabharata"
	version     = "1.0.0"

	indexCheckTimeout = 2 * time.Second
)

// RootHandler godoc
// @Summary Liveness message
// @Tags health
// @Produce json
// @Success 200 {object} RootResponse
// @Router / [get]
func RootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Message: "Mahabharata RAG API is running",
	})
}

// Handler godoc
// @Summary Health check
// @Description Reports server health and whether the vector index answers
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(index IndexCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := Response{
			Status:  "healthy",
			Service: serviceName,
			Version: version,
			Index:   &IndexStatus{},
		}

		if index == nil {
			resp.Status = "degraded"
			resp.Index.Error = "not configured"
			c.JSON(http.StatusOK, resp)

			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), indexCheckTimeout)
		defer cancel()

		count, err := index.Count(ctx)
		if err != nil {
			// answering without context still works, so this is not a failure
			resp.Status = "degraded"
			resp.Index.Error = err.Error()
		} else {
			resp.Index.Available = true
			resp.Index.Entries = count
		}

		c.JSON(http.StatusOK, resp)
	}
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message: "pong",
	})
}
