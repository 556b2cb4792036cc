package domain

import "fmt"

// Category is one of the fixed waste categories.
type Category string

// The closed category set.
const (
	Paper       Category = "Paper"
	Plastic     Category = "Plastic"
	Glass       Category = "Glass"
	Metal       Category = "Metal"
	Organic     Category = "Organic"
	Electronics Category = "Electronics"
	Other       Category = "Other"
)

// Categories returns the closed category set in canonical order. The order is
// used wherever a deterministic per-category ordering is needed.
func Categories() []Category {
	return []Category{Paper, Plastic, Glass, Metal, Organic, Electronics, Other}
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	return c.Index() >= 0
}

// Index returns the position of c in canonical order, or -1.
func (c Category) Index() int {
	for i, k := range Categories() {
		if k == c {
			return i
		}
	}
	return -1
}

// ParseCategory validates s against the closed category set.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown category %q", ErrInvalidEntry, s)
	}
	return c, nil
}
