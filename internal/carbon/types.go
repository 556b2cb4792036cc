// Package carbon models the carbon footprint of a waste log.
//
// Each category has a fixed emission factor in kg CO2e per kg of waste.
// Recycled entries keep a fraction of their embodied emissions rather than
// dropping to zero, which gives a counterfactual "savings from recycling"
// figure: the footprint as if nothing were recycled minus the actual one.
package carbon

import "ecotracker/internal/domain"

// CategoryFootprint is the emission attributed to one category.
type CategoryFootprint struct {
	Category domain.Category `json:"category"`
	KgCO2e   float64         `json:"kgCO2e"`
}

// Footprint is the carbon model's result for a waste log.
type Footprint struct {
	// TotalKg is the emission after the recycling discount.
	TotalKg float64 `json:"totalKgCO2e"`

	// PotentialKg is the emission had nothing been recycled.
	PotentialKg float64 `json:"potentialKgCO2e"`

	// ByCategory holds the undiscounted emission per category present in the
	// log, in canonical category order. It is computed before the recycling
	// discount while TotalKg is computed after it.
	ByCategory []CategoryFootprint `json:"byCategory"`

	// SavingsKg is PotentialKg - TotalKg and is never negative.
	SavingsKg float64 `json:"savingsFromRecyclingKgCO2e"`
}

// Empty returns the neutral footprint.
func Empty() Footprint {
	return Footprint{ByCategory: []CategoryFootprint{}}
}
