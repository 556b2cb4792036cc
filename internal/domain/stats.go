package domain

import "time"

// Window is the trailing period used for weekly figures.
const Window = 7 * 24 * time.Hour

// Impact coefficients applied to recycled weight.
const (
	TreesPerKg    = 0.17
	CO2KgPerKg    = 2.5
	WaterLPerKg   = 3.8
	dayFormat     = "2006-01-02"
	percentFactor = 100
)

// WeeklyStats summarises the trailing window of a waste log.
type WeeklyStats struct {
	TotalKg       float64 `json:"totalKg"`
	RecycledKg    float64 `json:"recycledKg"`
	RecyclingRate float64 `json:"recyclingRate"`
}

// ComputeWeeklyStats sums the entries recorded at or after now-Window.
// Entries dated after now are included.
func ComputeWeeklyStats(entries []WasteEntry, now time.Time) WeeklyStats {
	if len(entries) == 0 {
		return WeeklyStats{}
	}
	since := now.Add(-Window)
	var s WeeklyStats
	for _, e := range entries {
		if e.CreatedAt.Before(since) {
			continue
		}
		s.TotalKg += e.WeightKg
		if e.Recycled {
			s.RecycledKg += e.WeightKg
		}
	}
	if s.TotalKg > 0 {
		s.RecyclingRate = s.RecycledKg / s.TotalKg * percentFactor
	}
	return s
}

// Impact is the approximate environmental saving from all recycled weight.
type Impact struct {
	TreesSaved   float64 `json:"treesSaved"`
	CO2ReducedKg float64 `json:"co2ReducedKg"`
	WaterSavedL  float64 `json:"waterSavedL"`
}

// ComputeImpact applies the fixed impact coefficients to the all-time
// recycled weight.
func ComputeImpact(entries []WasteEntry) Impact {
	var recycled float64
	for _, e := range entries {
		if e.Recycled {
			recycled += e.WeightKg
		}
	}
	return Impact{
		TreesSaved:   recycled * TreesPerKg,
		CO2ReducedKg: recycled * CO2KgPerKg,
		WaterSavedL:  recycled * WaterLPerKg,
	}
}

// GoalProgress compares weekly recycled weight with the recycling target.
type GoalProgress struct {
	RecycledKg float64 `json:"recycledKg"`
	TargetKg   float64 `json:"targetKg"`
	Percent    float64 `json:"percent"`
	Met        bool    `json:"met"`
}

// ComputeGoalProgress reports progress towards the weekly recycling target.
// Percent is not clamped, so it can exceed 100.
func ComputeGoalProgress(s WeeklyStats, g Goals) GoalProgress {
	p := GoalProgress{RecycledKg: s.RecycledKg, TargetKg: g.WeeklyRecyclingKg}
	if g.WeeklyRecyclingKg > 0 {
		p.Percent = s.RecycledKg / g.WeeklyRecyclingKg * percentFactor
		p.Met = s.RecycledKg >= g.WeeklyRecyclingKg
	}
	return p
}

// Achievement is a badge unlocked by the user's figures.
type Achievement struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Achievement thresholds.
const (
	HalfRecycledRate   = 50.0
	TreeSaverTrees     = 1.0
	WaterGuardianLitre = 100.0
)

// Achievements returns the unlocked badges in a fixed order.
func Achievements(s WeeklyStats, im Impact) []Achievement {
	out := []Achievement{}
	if s.RecyclingRate >= HalfRecycledRate {
		out = append(out, Achievement{Key: "half-recycled", Title: "50% Recycling Rate"})
	}
	if im.TreesSaved >= TreeSaverTrees {
		out = append(out, Achievement{Key: "tree-saver", Title: "Tree Saver"})
	}
	if im.WaterSavedL >= WaterGuardianLitre {
		out = append(out, Achievement{Key: "water-guardian", Title: "Water Guardian"})
	}
	return out
}

// CategoryWeight is the total weight logged for one category.
type CategoryWeight struct {
	Category Category `json:"category"`
	WeightKg float64  `json:"weightKg"`
}

// Composition returns the all-time weight per category present in the log,
// in canonical category order.
func Composition(entries []WasteEntry) []CategoryWeight {
	cats := Categories()
	sums := make([]float64, len(cats))
	seen := make([]bool, len(cats))
	for _, e := range entries {
		i := e.Category.Index()
		if i < 0 {
			continue
		}
		sums[i] += e.WeightKg
		seen[i] = true
	}
	out := []CategoryWeight{}
	for i, c := range cats {
		if seen[i] {
			out = append(out, CategoryWeight{Category: c, WeightKg: sums[i]})
		}
	}
	return out
}

// DayTotal is the waste logged on one local calendar day.
type DayTotal struct {
	Day        string  `json:"day"`
	TotalKg    float64 `json:"totalKg"`
	RecycledKg float64 `json:"recycledKg"`
}

// DailyTotals buckets entries into the last days local days ending with the
// day containing now, oldest first. Days without entries are zero.
func DailyTotals(entries []WasteEntry, now time.Time, days int, loc *time.Location) []DayTotal {
	if days <= 0 {
		return []DayTotal{}
	}
	today := now.In(loc)
	out := make([]DayTotal, 0, days)
	index := make(map[string]int, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(dayFormat)
		index[day] = len(out)
		out = append(out, DayTotal{Day: day})
	}
	for _, e := range entries {
		i, ok := index[e.CreatedAt.In(loc).Format(dayFormat)]
		if !ok {
			continue
		}
		out[i].TotalKg += e.WeightKg
		if e.Recycled {
			out[i].RecycledKg += e.WeightKg
		}
	}
	return out
}
