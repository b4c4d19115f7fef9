package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// SessionStore keeps sessions in a map. Expired sessions are dropped when read
// and swept on every Save, so tokens that are never used again do not pile up.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]ports.Session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]ports.Session),
		now:      time.Now,
	}
}

func (s *SessionStore) Save(_ context.Context, session ports.Session, ttl time.Duration) error {
	if session.Token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	if ttl <= 0 {
		return errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "unbounded")
	}

	now := s.now()
	session.ExpiresAt = now.Add(ttl).UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	maps.DeleteFunc(s.sessions, func(_ string, stored ports.Session) bool {
		return !now.Before(stored.ExpiresAt)
	})
	s.sessions[session.Token] = session
	return nil
}

func (s *SessionStore) Get(ctx context.Context, token string) (ports.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return ports.Session{}, errs.NewObjectNotFoundError("session", "<redacted>")
	}
	if !s.now().Before(session.ExpiresAt) {
		_ = s.Delete(ctx, token)
		return ports.Session{}, errs.NewObjectNotFoundError("session", "<redacted>")
	}
	return session, nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
