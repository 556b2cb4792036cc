package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"ecotracker/internal/domain"
)

// DefaultSessionTTL is the idle lifetime of a session.
const DefaultSessionTTL = 24 * time.Hour

// SessionService manages the explicit session lifecycle: Start, Resume, End
// and Reap.
type SessionService struct {
	repo domain.SessionRepository
	ttl  time.Duration
	now  func() time.Time
}

// NewSessionService creates a SessionService. A non-positive ttl selects
// DefaultSessionTTL.
func NewSessionService(repo domain.SessionRepository, ttl time.Duration) *SessionService {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionService{repo: repo, ttl: ttl, now: time.Now}
}

// WithClock replaces the service clock.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

// Start creates a new session with a random token and a fresh public user ID.
func (s *SessionService) Start(ctx context.Context) (*domain.Session, error) {
	now := s.now()
	sess := domain.Session{
		ID:        uuid.NewString(),
		UserID:    "user_" + ulid.Make().String(),
		CreatedAt: now,
		LastSeen:  now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.repo.CreateSession(ctx, sess); err != nil {
		return nil, err
	}
	zerolog.Ctx(ctx).Debug().Str("user", sess.UserID).Msg("session started")
	return &sess, nil
}

// Resume looks up an existing session and extends its expiry. Unknown and
// expired sessions fail with domain.ErrSessionNotFound.
func (s *SessionService) Resume(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, domain.ErrSessionNotFound
	}
	sess, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now()
	if sess == nil {
		return nil, domain.ErrSessionNotFound
	}
	if sess.Expired(now) {
		_ = s.repo.DeleteSession(ctx, id)
		return nil, domain.ErrSessionNotFound
	}
	sess.LastSeen = now
	sess.ExpiresAt = now.Add(s.ttl)
	if err := s.repo.TouchSession(ctx, id, sess.LastSeen, sess.ExpiresAt); err != nil {
		return nil, err
	}
	return sess, nil
}

// ResumeOrStart resumes id when possible and starts a new session otherwise.
// The boolean reports whether a new session was created.
func (s *SessionService) ResumeOrStart(ctx context.Context, id string) (*domain.Session, bool, error) {
	sess, err := s.Resume(ctx, id)
	if err == nil {
		return sess, false, nil
	}
	if !errors.Is(err, domain.ErrSessionNotFound) {
		return nil, false, err
	}
	sess, err = s.Start(ctx)
	return sess, err == nil, err
}

// End discards the session and its waste log. Shared snapshots remain.
func (s *SessionService) End(ctx context.Context, id string) error {
	return s.repo.DeleteSession(ctx, id)
}

// Reap discards every expired session and returns how many were removed.
func (s *SessionService) Reap(ctx context.Context) (int, error) {
	n, err := s.repo.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		zerolog.Ctx(ctx).Info().Int("sessions", n).Msg("expired sessions reaped")
	}
	return n, nil
}

// TTL returns the configured idle lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}
