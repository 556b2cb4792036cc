package carbon

import "ecotracker/internal/domain"

// RecycledMultiplier scales the emission of a recycled entry. Recycling
// reduces embodied emissions but does not remove them.
const RecycledMultiplier = 0.4

// MaxRecommendations caps the number of category tips returned.
const MaxRecommendations = 3

// Factors returns the emission factor table in kg CO2e per kg of waste.
// A fresh map is returned on every call.
func Factors() map[domain.Category]float64 {
	return map[domain.Category]float64{
		domain.Paper:       0.9,
		domain.Plastic:     2.5,
		domain.Glass:       0.6,
		domain.Metal:       2.7,
		domain.Organic:     0.8,
		domain.Electronics: 20.0,
		domain.Other:       1.5,
	}
}

// genericTips are returned when there is nothing to base advice on.
var genericTips = []string{
	"Start tracking your waste to get personalized recommendations",
	"Consider recycling to reduce your carbon footprint",
	"Minimize single-use items in your daily routine",
}

// categoryTips holds advice for the categories that have one.
var categoryTips = map[domain.Category]string{
	domain.Plastic:     "Reduce plastic usage by choosing reusable alternatives",
	domain.Electronics: "Extend device lifespan through proper maintenance",
	domain.Paper:       "Switch to digital alternatives when possible",
	domain.Organic:     "Consider composting organic waste",
}
