package sessions

import (
	"context"
	"time"
)

const (
	// entries kept per session
	DefaultMaxEntries = 50

	// entries read back for a prompt
	DefaultReadLimit = 10

	keyHistory = "history:%s"
)

// append-only, length-capped message log per session
type Store interface {
	// returns up to limit of the most recent lines, oldest first
	Recent(ctx context.Context, sessionID string, limit int) ([]string, error)
	Append(ctx context.Context, sessionID string, lines ...string) error
	Close() error
}

type Options struct {
	MaxEntries int

	// expiry refreshed on every append; 0 keeps history until trimmed
	TTL time.Duration
}

func (o Options) withDefaults() Options {
	if o.MaxEntries <= 0 {
		o.MaxEntries = DefaultMaxEntries
	}

	if o.TTL < 0 {
		o.TTL = 0
	}

	return o
}
