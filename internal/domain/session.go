package domain

import (
	"context"
	"time"
)

// Session is one authenticated application session. The provider token is
// retained so verification emails can be re-sent without a fresh sign-in.
type Session struct {
	ID            string
	UserID        string
	Email         string
	EmailVerified bool
	ProviderToken string
	CreatedAt     time.Time
	ExpiresAt     time.Time
}

func (s *Session) Identity() *Identity {
	return &Identity{
		UserID:        s.UserID,
		Email:         s.Email,
		EmailVerified: s.EmailVerified,
	}
}

// SessionStore holds live session records. A record that is absent means the
// session was revoked or expired.
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
