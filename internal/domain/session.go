package domain

import (
	"context"
	"time"
)

// Session is the explicit per-visitor context. ID is the secret cookie value;
// UserID is the public name used on the community board.
type Session struct {
	ID        string    `json:"-"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	LastSeen  time.Time `json:"lastSeen"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session has passed its idle expiry at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// SessionRepository is the port for session persistence. Deleting a session
// also discards its waste log.
type SessionRepository interface {
	CreateSession(ctx context.Context, s Session) error
	GetSession(ctx context.Context, id string) (*Session, error)
	TouchSession(ctx context.Context, id string, lastSeen, expiresAt time.Time) error
	DeleteSession(ctx context.Context, id string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error)
}
