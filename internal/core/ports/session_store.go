package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// Session binds an opaque bearer token to an authenticated actor.
type Session struct {
	Token     string      `json:"token"`
	Role      kernel.Role `json:"role"`
	ActorID   kernel.UUID `json:"actor_id"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// SessionStore keeps sessions for the lifetime given by ttl. Get on an unknown
// or expired token returns errs.ErrObjectNotFound.
type SessionStore interface {
	Save(ctx context.Context, session Session, ttl time.Duration) error
	Get(ctx context.Context, token string) (Session, error)
	Delete(ctx context.Context, token string) error
}
