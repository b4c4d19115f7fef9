// Package redis stores sessions in Redis so that every service instance
// resolves the same bearer tokens.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// SessionStore keeps each session as a JSON value under "session:<token>".
// Redis expires the key, so an expired session is simply missing.
type SessionStore struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{
		client: client,
		now:    time.Now,
	}
}

func (s *SessionStore) Save(ctx context.Context, session ports.Session, ttl time.Duration) error {
	if session.Token == "" {
		return errs.NewValueIsRequiredError("token")
	}
	if ttl <= 0 {
		return errs.NewValueIsOutOfRangeError("ttl", ttl, "1ns", "unbounded")
	}

	session.ExpiresAt = s.now().Add(ttl).UTC()
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	return s.client.Set(ctx, keyPrefix+session.Token, payload, ttl).Err()
}

func (s *SessionStore) Get(ctx context.Context, token string) (ports.Session, error) {
	payload, err := s.client.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return ports.Session{}, errs.NewObjectNotFoundError("session", "<redacted>")
	}
	if err != nil {
		return ports.Session{}, err
	}

	var session ports.Session
	if err = json.Unmarshal(payload, &session); err != nil {
		return ports.Session{}, fmt.Errorf("decode session: %w", err)
	}
	return session, nil
}

func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, keyPrefix+token).Err()
}
