// Package app holds the application services and business logic.
package app

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"ecotracker/internal/domain"
)

// WasteService encapsulates waste-logging use cases for one session at a time.
type WasteService struct {
	repo  domain.WasteRepository
	goals domain.Goals
	now   func() time.Time
}

// NewWasteService creates a WasteService backed by the given repository.
func NewWasteService(repo domain.WasteRepository, goals domain.Goals) *WasteService {
	return &WasteService{repo: repo, goals: goals, now: time.Now}
}

// WithClock replaces the service clock.
func (s *WasteService) WithClock(now func() time.Time) *WasteService {
	s.now = now
	return s
}

// AddEntry validates and appends an entry to the session's log. Invalid input
// fails with domain.ErrInvalidEntry and leaves the log unchanged.
func (s *WasteService) AddEntry(ctx context.Context, sess *domain.Session, category string, weightKg float64, recycled bool) (domain.WasteEntry, error) {
	e, err := domain.NewWasteEntry(category, weightKg, recycled, s.now())
	if err != nil {
		return domain.WasteEntry{}, err
	}
	id, err := s.repo.AddWasteEntry(ctx, sess.ID, e)
	if err != nil {
		return domain.WasteEntry{}, err
	}
	e.ID = id
	zerolog.Ctx(ctx).Debug().
		Str("user", sess.UserID).
		Str("category", string(e.Category)).
		Float64("weight_kg", e.WeightKg).
		Bool("recycled", e.Recycled).
		Msg("waste entry logged")
	return e, nil
}

// ListRecent returns up to limit entries, newest first. A non-positive limit
// yields no entries.
func (s *WasteService) ListRecent(ctx context.Context, sess *domain.Session, limit int) ([]domain.WasteEntry, error) {
	items, err := s.repo.ListWasteEntries(ctx, sess.ID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	limit = max(limit, 0)
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// WeeklySummary is the trailing-window view with goal progress.
type WeeklySummary struct {
	domain.WeeklyStats
	Goal domain.GoalProgress `json:"goal"`
}

// Weekly returns the trailing-window statistics for the session.
func (s *WasteService) Weekly(ctx context.Context, sess *domain.Session) WeeklySummary {
	stats := domain.ComputeWeeklyStats(s.entries(ctx, sess), s.now())
	return WeeklySummary{WeeklyStats: stats, Goal: domain.ComputeGoalProgress(stats, s.goals)}
}

// ImpactSummary is the all-time environmental impact with unlocked badges.
type ImpactSummary struct {
	domain.Impact
	Achievements []domain.Achievement `json:"achievements"`
}

// Impact returns the environmental impact of everything the session recycled.
func (s *WasteService) Impact(ctx context.Context, sess *domain.Session) ImpactSummary {
	entries := s.entries(ctx, sess)
	im := domain.ComputeImpact(entries)
	weekly := domain.ComputeWeeklyStats(entries, s.now())
	return ImpactSummary{Impact: im, Achievements: domain.Achievements(weekly, im)}
}

// Goals returns the configured targets.
func (s *WasteService) Goals() domain.Goals {
	return s.goals
}

// entries loads the session's log. Read paths never fail: a storage error is
// logged and treated as an empty log.
func (s *WasteService) entries(ctx context.Context, sess *domain.Session) []domain.WasteEntry {
	return loadEntries(ctx, s.repo, sess)
}

func loadEntries(ctx context.Context, repo domain.WasteRepository, sess *domain.Session) []domain.WasteEntry {
	items, err := repo.ListWasteEntries(ctx, sess.ID)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("user", sess.UserID).Msg("waste log unavailable, using empty log")
		return nil
	}
	return items
}
