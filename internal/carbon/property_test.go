package carbon

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"ecotracker/internal/domain"
)

func genLog(weights []float64, recycled []bool, cats []int) []domain.WasteEntry {
	all := domain.Categories()
	out := make([]domain.WasteEntry, 0, len(weights))
	for i, w := range weights {
		c := all[0]
		if i < len(cats) {
			c = all[cats[i]%len(all)]
		}
		out = append(out, entry(c, w, i < len(recycled) && recycled[i]))
	}
	return out
}

func TestFootprintProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	weights := gen.SliceOf(gen.Float64Range(0.1, 100))
	flags := gen.SliceOf(gen.Bool())
	cats := gen.SliceOf(gen.IntRange(0, 6))

	properties.Property("savings equal potential minus total and are never negative", prop.ForAll(
		func(w []float64, r []bool, c []int) bool {
			fp, err := Calculate(genLog(w, r, c))
			return err == nil && fp.SavingsKg == fp.PotentialKg-fp.TotalKg && fp.SavingsKg >= 0
		},
		weights, flags, cats,
	))

	properties.Property("total is the per-entry discounted sum", prop.ForAll(
		func(w []float64, r []bool, c []int) bool {
			log := genLog(w, r, c)
			fp, err := Calculate(log)
			if err != nil {
				return false
			}
			factors := Factors()
			var want float64
			for _, e := range log {
				m := 1.0
				if e.Recycled {
					m = RecycledMultiplier
				}
				want += e.WeightKg * factors[e.Category] * m
			}
			return fp.TotalKg == want
		},
		weights, flags, cats,
	))

	properties.Property("recommendations are at most three known tips", prop.ForAll(
		func(w []float64, r []bool, c []int) bool {
			fp, err := Calculate(genLog(w, r, c))
			if err != nil {
				return false
			}
			recs := Recommendations(fp)
			if len(recs) > MaxRecommendations {
				return false
			}
			if len(fp.ByCategory) == 0 {
				return len(recs) == len(genericTips)
			}
			known := map[string]bool{}
			for _, tip := range categoryTips {
				known[tip] = true
			}
			for _, rec := range recs {
				if !known[rec] {
					return false
				}
			}
			return true
		},
		weights, flags, cats,
	))

	properties.TestingRun(t)
}
