package carbon

import (
	"fmt"
	"sort"

	"ecotracker/internal/domain"
)

// Calculate computes the footprint of entries over the whole log.
//
// Each entry contributes weight * factor, times RecycledMultiplier when it was
// recycled. An entry with a category missing from the factor table fails the
// whole calculation with ErrUnknownCategory and an empty result.
func Calculate(entries []domain.WasteEntry) (Footprint, error) {
	out := Empty()
	if len(entries) == 0 {
		return out, nil
	}

	factors := Factors()
	weights := make(map[domain.Category]float64)
	for _, e := range entries {
		f, ok := factors[e.Category]
		if !ok {
			return Empty(), fmt.Errorf("%w: %q", ErrUnknownCategory, e.Category)
		}
		mult := 1.0
		if e.Recycled {
			mult = RecycledMultiplier
		}
		out.TotalKg += e.WeightKg * f * mult
		out.PotentialKg += e.WeightKg * f
		weights[e.Category] += e.WeightKg
	}
	out.SavingsKg = out.PotentialKg - out.TotalKg

	for _, c := range domain.Categories() {
		if w, ok := weights[c]; ok {
			out.ByCategory = append(out.ByCategory, CategoryFootprint{Category: c, KgCO2e: w * factors[c]})
		}
	}
	return out, nil
}

// Recommendations returns up to MaxRecommendations tips, highest-impact
// category first. Categories without a tip are skipped and the list is never
// padded. With no category breakdown the generic tips are returned.
func Recommendations(fp Footprint) []string {
	if len(fp.ByCategory) == 0 {
		return append([]string(nil), genericTips...)
	}

	ranked := make([]CategoryFootprint, len(fp.ByCategory))
	copy(ranked, fp.ByCategory)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].KgCO2e > ranked[j].KgCO2e
	})

	out := []string{}
	for _, cf := range ranked {
		tip, ok := categoryTips[cf.Category]
		if !ok {
			continue
		}
		out = append(out, tip)
		if len(out) == MaxRecommendations {
			break
		}
	}
	return out
}
