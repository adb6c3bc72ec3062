package entities

import (
	"fmt"
	"strings"
)

// Category classifies a part's demand pattern along the two classic
// intermittent-demand axes: how often demand occurs and how variable
// the order sizes are.
type Category int

const (
	// Smooth parts see near-daily demand with steady order sizes.
	Smooth Category = iota
	// Erratic parts see near-daily demand with volatile order sizes.
	Erratic
	// Slow parts see rare demand with steady order sizes.
	Slow
	// Lumpy parts see rare demand with volatile order sizes.
	Lumpy
)

// Categories lists all demand categories in their canonical draw order.
// Sampling walks this slice, so the order is part of the reproducibility
// contract and must not change.
var Categories = []Category{Smooth, Erratic, Slow, Lumpy}

// String method for Category enum
func (c Category) String() string {
	switch c {
	case Smooth:
		return "smooth"
	case Erratic:
		return "erratic"
	case Slow:
		return "slow"
	case Lumpy:
		return "lumpy"
	default:
		return "unknown"
	}
}

// ParseCategory converts a category name to its enum value.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "smooth":
		return Smooth, nil
	case "erratic":
		return Erratic, nil
	case "slow":
		return Slow, nil
	case "lumpy":
		return Lumpy, nil
	default:
		return Smooth, fmt.Errorf("invalid category: %s (expected: smooth, erratic, slow, or lumpy)", s)
	}
}

// Volatile reports whether the category draws from the high-variability
// order-size regime.
func (c Category) Volatile() bool {
	return c == Erratic || c == Lumpy
}

// Sparse reports whether the category draws from the low-frequency
// demand-rate regime.
func (c Category) Sparse() bool {
	return c == Slow || c == Lumpy
}
