package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// TopRecyclersLimit caps the leaderboard length.
const TopRecyclersLimit = 5

// ProgressSnapshot is one user's progress shared to the community ledger.
// Users may share many snapshots; none are ever removed.
type ProgressSnapshot struct {
	UserID          string    `json:"userId"`
	CreatedAt       time.Time `json:"createdAt"`
	TotalWasteKg    float64   `json:"totalWasteKg"`
	RecycledWasteKg float64   `json:"recycledWasteKg"`
	RecyclingRate   float64   `json:"recyclingRate"`
}

// NewProgressSnapshot builds a snapshot stamped with now. Every numeric field
// must be finite; the recycling rate is not clamped to [0, 100].
func NewProgressSnapshot(userID string, now time.Time, totalKg, recycledKg, rate float64) (ProgressSnapshot, error) {
	fields := []struct {
		name string
		v    float64
	}{{"totalWaste", totalKg}, {"recycledWaste", recycledKg}, {"recyclingRate", rate}}
	for _, f := range fields {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return ProgressSnapshot{}, fmt.Errorf("%w: %s is not finite", ErrInvalidProgressData, f.name)
		}
	}
	return ProgressSnapshot{
		UserID:          userID,
		CreatedAt:       now,
		TotalWasteKg:    totalKg,
		RecycledWasteKg: recycledKg,
		RecyclingRate:   rate,
	}, nil
}

// CoerceFloat converts a loosely typed value (a decoded JSON number, a numeric
// string or a Go number) to a finite float64.
func CoerceFloat(v any) (float64, error) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		n, err := x.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidProgressData, x.String())
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidProgressData, x)
		}
		f = n
	default:
		return 0, fmt.Errorf("%w: unsupported value %v (%T)", ErrInvalidProgressData, v, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", ErrInvalidProgressData, v)
	}
	return f, nil
}

// LedgerRepository is the port for the process-wide community ledger.
// AppendSnapshot is atomic and ListSnapshots returns a consistent copy in
// append order.
type LedgerRepository interface {
	AppendSnapshot(ctx context.Context, s ProgressSnapshot) error
	ListSnapshots(ctx context.Context) ([]ProgressSnapshot, error)
}

// Recycler is one leaderboard row.
type Recycler struct {
	UserID        string  `json:"userId"`
	RecyclingRate float64 `json:"recyclingRate"`
}

// CommunityStats is the community view for one user. Rank is 0 when the user
// has not shared within the trailing window.
type CommunityStats struct {
	AvgRecyclingRate float64    `json:"avgRecyclingRate"`
	TopRecyclers     []Recycler `json:"topRecyclers"`
	Rank             int        `json:"rank"`
}

// EmptyCommunityStats is the neutral result.
func EmptyCommunityStats() CommunityStats {
	return CommunityStats{TopRecyclers: []Recycler{}}
}

// SummarizeCommunity computes the all-time average rate, the leaderboard over
// the trailing window and userID's rank within that window.
//
// Rank counts every windowed snapshot with a strictly higher rate, including
// the user's own older snapshots and repeated snapshots of other users.
// A snapshot with a non-finite rate yields ErrInvalidProgressData.
func SummarizeCommunity(snapshots []ProgressSnapshot, userID string, now time.Time) (CommunityStats, error) {
	out := EmptyCommunityStats()
	if len(snapshots) == 0 {
		return out, nil
	}

	var sum float64
	for _, s := range snapshots {
		if math.IsNaN(s.RecyclingRate) || math.IsInf(s.RecyclingRate, 0) {
			return EmptyCommunityStats(), fmt.Errorf("%w: snapshot for %s has rate %v", ErrInvalidProgressData, s.UserID, s.RecyclingRate)
		}
		sum += s.RecyclingRate
	}
	out.AvgRecyclingRate = sum / float64(len(snapshots))

	since := now.Add(-Window)
	recent := make([]ProgressSnapshot, 0, len(snapshots))
	for _, s := range snapshots {
		if !s.CreatedAt.Before(since) {
			recent = append(recent, s)
		}
	}
	if len(recent) == 0 {
		return out, nil
	}

	ranked := make([]ProgressSnapshot, len(recent))
	copy(ranked, recent)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RecyclingRate > ranked[j].RecyclingRate
	})
	if len(ranked) > TopRecyclersLimit {
		ranked = ranked[:TopRecyclersLimit]
	}
	for _, s := range ranked {
		out.TopRecyclers = append(out.TopRecyclers, Recycler{UserID: s.UserID, RecyclingRate: s.RecyclingRate})
	}

	latest := -1
	for i, s := range recent {
		if s.UserID != userID {
			continue
		}
		if latest < 0 || !s.CreatedAt.Before(recent[latest].CreatedAt) {
			latest = i
		}
	}
	if latest < 0 {
		return out, nil
	}
	userRate := recent[latest].RecyclingRate
	out.Rank = 1
	for _, s := range recent {
		if s.RecyclingRate > userRate {
			out.Rank++
		}
	}
	return out, nil
}
