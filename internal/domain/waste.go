// Package domain contains the core business entities, ports and the pure
// aggregations computed over them.
package domain

import (
	"context"
	"fmt"
	"math"
	"time"
)

// WasteEntry is one logged disposal event. Entries are never mutated once
// created.
type WasteEntry struct {
	ID        int64     `json:"id"`
	Category  Category  `json:"category"`
	WeightKg  float64   `json:"weightKg"`
	Recycled  bool      `json:"recycled"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewWasteEntry validates the inputs and builds an entry stamped with now.
func NewWasteEntry(category string, weightKg float64, recycled bool, now time.Time) (WasteEntry, error) {
	c, err := ParseCategory(category)
	if err != nil {
		return WasteEntry{}, err
	}
	if math.IsNaN(weightKg) || math.IsInf(weightKg, 0) || weightKg <= 0 {
		return WasteEntry{}, fmt.Errorf("%w: weight must be a positive number of kg, got %v", ErrInvalidEntry, weightKg)
	}
	return WasteEntry{
		Category:  c,
		WeightKg:  weightKg,
		Recycled:  recycled,
		CreatedAt: now,
	}, nil
}

// Goals holds the user's weekly targets in kilograms.
type Goals struct {
	WeeklyRecyclingKg float64 `json:"weeklyRecyclingKg" yaml:"weekly_recycling_kg"`
	WasteReductionKg  float64 `json:"wasteReductionKg" yaml:"waste_reduction_kg"`
}

// DefaultGoals returns the built-in targets.
func DefaultGoals() Goals {
	return Goals{WeeklyRecyclingKg: 5.0, WasteReductionKg: 2.0}
}

// WasteRepository is the port for per-session waste logs. Logs are
// append-only; entries come back in insertion order.
type WasteRepository interface {
	AddWasteEntry(ctx context.Context, sessionID string, e WasteEntry) (int64, error)
	ListWasteEntries(ctx context.Context, sessionID string) ([]WasteEntry, error)
}
