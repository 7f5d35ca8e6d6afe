package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// allows every origin, method and header. credentials stay off because
// browsers reject a wildcard origin on credentialed requests.
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{HeaderRequestID},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
