package app

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"ecotracker/internal/domain"
)

// CommunityService manages the shared progress board.
type CommunityService struct {
	ledger domain.LedgerRepository
	now    func() time.Time
}

// NewCommunityService creates a CommunityService backed by the given ledger.
func NewCommunityService(ledger domain.LedgerRepository) *CommunityService {
	return &CommunityService{ledger: ledger, now: time.Now}
}

// WithClock replaces the service clock.
func (s *CommunityService) WithClock(now func() time.Time) *CommunityService {
	s.now = now
	return s
}

// Share appends a snapshot of the session's progress to the ledger. Values
// that are not finite fail with domain.ErrInvalidProgressData and nothing is
// appended.
func (s *CommunityService) Share(ctx context.Context, sess *domain.Session, totalKg, recycledKg, rate float64) (domain.ProgressSnapshot, error) {
	snap, err := domain.NewProgressSnapshot(sess.UserID, s.now(), totalKg, recycledKg, rate)
	if err != nil {
		return domain.ProgressSnapshot{}, err
	}
	if err := s.ledger.AppendSnapshot(ctx, snap); err != nil {
		return domain.ProgressSnapshot{}, err
	}
	zerolog.Ctx(ctx).Info().
		Str("user", sess.UserID).
		Float64("recycling_rate", rate).
		Msg("progress shared")
	return snap, nil
}

// Stats returns the community view for the session's user. It never fails:
// ledger or data errors are logged and reported as the empty result.
func (s *CommunityService) Stats(ctx context.Context, sess *domain.Session) domain.CommunityStats {
	snaps, err := s.ledger.ListSnapshots(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("community ledger unavailable")
		return domain.EmptyCommunityStats()
	}
	stats, err := domain.SummarizeCommunity(snaps, sess.UserID, s.now())
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Msg("community stats degraded to empty")
		return domain.EmptyCommunityStats()
	}
	return stats
}
