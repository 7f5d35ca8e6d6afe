package sessions

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"codeberg.org/mahabharata/server/internal/logger"
)

// history kept in Redis lists under history:<session_id>
type RedisStore struct {
	client *redis.Client
	opts   Options
}

func NewRedisStore(client *redis.Client, opts Options) *RedisStore {
	return &RedisStore{client: client, opts: opts.withDefaults()}
}

// connects to redisURL and verifies the connection
func NewRedisStoreFromURL(redisURL string, opts Options) (*RedisStore, error) {
	redisOpts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(redisOpts)

	// test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close() //nolint:errcheck
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("connected to redis")

	return NewRedisStore(client, opts), nil
}

func (s *RedisStore) Recent(ctx context.Context, sessionID string, limit int) ([]string, error) {
	if sessionID == "" {
		return nil, ErrSessionIDRequired
	}

	if limit <= 0 {
		limit = DefaultReadLimit
	}

	lines, err := s.client.LRange(ctx, fmt.Sprintf(keyHistory, sessionID), int64(-limit), -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return lines, nil
}

// appends lines and trims the list in one transaction
func (s *RedisStore) Append(ctx context.Context, sessionID string, lines ...string) error {
	if sessionID == "" {
		return ErrSessionIDRequired
	}

	if len(lines) == 0 {
		return nil
	}

	key := fmt.Sprintf(keyHistory, sessionID)
	values := make([]any, len(lines))
	for i, l := range lines {
		values[i] = l
	}

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.LTrim(ctx, key, int64(-s.opts.MaxEntries), -1)

	if s.opts.TTL > 0 {
		pipe.Expire(ctx, key, s.opts.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}

	return nil
}

// closes the redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// returns the underlying client so other components can share the connection
func (s *RedisStore) Client() *redis.Client {
	return s.client
}
