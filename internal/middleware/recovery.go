package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"codeberg.org/mahabharata/server/internal/errors"
)

// turns a handler panic into a logged 500 with the standard error body
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		errors.InternalError(c, "internal server error", fmt.Errorf("panic: %v", recovered))
		c.Abort()
	})
}
