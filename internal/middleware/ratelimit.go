package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"codeberg.org/mahabharata/server/internal/errors"
	"codeberg.org/mahabharata/server/internal/logger"
)

const rateLimitPrefix = "limiter:chat"

// limits requests per client IP. rate uses the limiter format, e.g. "30-M".
// counters live in redis when a client is given so every replica shares them,
// in process memory otherwise.
func RateLimit(rate string, client *redis.Client) (gin.HandlerFunc, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", rate, err)
	}

	var store limiter.Store

	if client != nil {
		store, err = sredis.NewStoreWithOptions(client, limiter.StoreOptions{
			Prefix:   rateLimitPrefix,
			MaxRetry: 3,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create rate limit store: %w", err)
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{Prefix: rateLimitPrefix})
	}

	return mgin.NewMiddleware(
		limiter.New(store, parsed),
		mgin.WithLimitReachedHandler(limitReached),
		mgin.WithErrorHandler(limitError),
	), nil
}

func limitReached(c *gin.Context) {
	logger.FromContext(c.Request.Context()).Warn("rate limit exceeded", "ip", c.ClientIP(), "path", c.Request.URL.Path)

	errors.TooManyRequests(c, "too many requests. please slow down.")
	c.Abort()
}

// a broken limiter store should not take the chat endpoint down with it
func limitError(c *gin.Context, err error) {
	logger.FromContext(c.Request.Context()).Warn("rate limiter unavailable", "error", err)
	c.Next()
}
