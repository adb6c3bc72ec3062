package entities

import "fmt"

// AgingProfile models fleet obsolescence: demand holds steady for
// PeakYears after the part enters service, then decays linearly at
// DecayRate per year until it reaches zero.
type AgingProfile struct {
	PeakYears float64
	DecayRate float64
}

// NewAgingProfile creates a validated AgingProfile.
func NewAgingProfile(peakYears, decayRate float64) (AgingProfile, error) {
	if peakYears < 0 {
		return AgingProfile{}, fmt.Errorf("peak years cannot be negative, got %g", peakYears)
	}
	if decayRate < 0 {
		return AgingProfile{}, fmt.Errorf("decay rate cannot be negative, got %g", decayRate)
	}
	return AgingProfile{PeakYears: peakYears, DecayRate: decayRate}, nil
}

// FactorAt returns the demand multiplier after elapsedYears of service.
// It is 1.0 through the peak window and never goes below zero.
func (a AgingProfile) FactorAt(elapsedYears float64) float64 {
	if elapsedYears < a.PeakYears {
		return 1.0
	}
	f := 1.0 - a.DecayRate*(elapsedYears-a.PeakYears)
	if f < 0 {
		return 0
	}
	return f
}
