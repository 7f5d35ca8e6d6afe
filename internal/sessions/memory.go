package sessions

import (
	"context"
	"sync"
	"time"
)

type history struct {
	lines     []string
	expiresAt time.Time
}

// in-process history store for development and single-instance deployments
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*history
	opts     Options
	now      func() time.Time

	done      chan struct{}
	closeOnce sync.Once
}

func NewMemoryStore(opts Options) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*history),
		opts:     opts.withDefaults(),
		now:      time.Now,
		done:     make(chan struct{}),
	}

	// start cleanup goroutine
	if s.opts.TTL > 0 {
		go s.cleanupExpiredSessions()
	}

	return s
}

func (s *MemoryStore) Recent(_ context.Context, sessionID string, limit int) ([]string, error) {
	if sessionID == "" {
		return nil, ErrSessionIDRequired
	}

	if limit <= 0 {
		limit = DefaultReadLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.sessions[sessionID]
	if !ok || s.expired(h) {
		return []string{}, nil
	}

	start := max(len(h.lines)-limit, 0)
	out := make([]string, len(h.lines)-start)
	copy(out, h.lines[start:])

	return out, nil
}

func (s *MemoryStore) Append(_ context.Context, sessionID string, lines ...string) error {
	if sessionID == "" {
		return ErrSessionIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	select {
	case <-s.done:
		return ErrStoreClosed
	default:
	}

	h, ok := s.sessions[sessionID]
	if !ok || s.expired(h) {
		h = &history{}
		s.sessions[sessionID] = h
	}

	h.lines = append(h.lines, lines...)
	if over := len(h.lines) - s.opts.MaxEntries; over > 0 {
		h.lines = append([]string(nil), h.lines[over:]...)
	}

	if s.opts.TTL > 0 {
		h.expiresAt = s.now().Add(s.opts.TTL)
	}

	return nil
}

// stops the cleanup goroutine
func (s *MemoryStore) Close() error {
	s.closeOnce.Do(func() { close(s.done) })
	return nil
}

// number of live sessions
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, h := range s.sessions {
		if !s.expired(h) {
			n++
		}
	}

	return n
}

func (s *MemoryStore) expired(h *history) bool {
	return !h.expiresAt.IsZero() && s.now().After(h.expiresAt)
}

// periodically removes expired sessions
func (s *MemoryStore) cleanupExpiredSessions() {
	interval := max(s.opts.TTL/2, time.Second)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.removeExpired()
		}
	}
}

func (s *MemoryStore) removeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, h := range s.sessions {
		if s.expired(h) {
			delete(s.sessions, id)
		}
	}
}
