package app

import (
	"context"
	"time"

	"ecotracker/internal/domain"
)

// MaxChartDays caps the daily trend length.
const MaxChartDays = 366

// ChartsService encapsulates chart data retrieval use cases.
type ChartsService struct {
	repo domain.WasteRepository
	loc  *time.Location
	now  func() time.Time
}

// NewChartsService creates a ChartsService backed by the given repository.
// Days are bucketed in loc.
func NewChartsService(repo domain.WasteRepository, loc *time.Location) *ChartsService {
	if loc == nil {
		loc = time.Local
	}
	return &ChartsService{repo: repo, loc: loc, now: time.Now}
}

// WithClock replaces the service clock.
func (s *ChartsService) WithClock(now func() time.Time) *ChartsService {
	s.now = now
	return s
}

// Composition returns the all-time weight per category.
func (s *ChartsService) Composition(ctx context.Context, sess *domain.Session) []domain.CategoryWeight {
	return domain.Composition(loadEntries(ctx, s.repo, sess))
}

// Daily returns per-day totals for the last days days, oldest first.
func (s *ChartsService) Daily(ctx context.Context, sess *domain.Session, days int) []domain.DayTotal {
	if days > MaxChartDays {
		days = MaxChartDays
	}
	return domain.DailyTotals(loadEntries(ctx, s.repo, sess), s.now(), days, s.loc)
}

// Today returns the current local day in the service's location.
func (s *ChartsService) Today() string {
	return s.now().In(s.loc).Format("2006-01-02")
}
