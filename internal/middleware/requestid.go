package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"codeberg.org/mahabharata/server/internal/logger"
)

const (
	HeaderRequestID = "X-Request-ID"

	// gin context key read by errors.InternalError
	ContextRequestID = "request_id"

	maxRequestIDLength = 128
)

// echoes the caller's X-Request-ID or generates one, and attaches a logger
// carrying it to the request context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(ContextRequestID, id)
		c.Header(HeaderRequestID, id)

		l := logger.With("request_id", id)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), l))

		c.Next()
	}
}
