package entities

import "fmt"

// SizeDistribution selects the model used for hit sizes.
type SizeDistribution int

const (
	PoissonSize SizeDistribution = iota
	NegBinomialSize
)

// String method for SizeDistribution enum
func (d SizeDistribution) String() string {
	switch d {
	case PoissonSize:
		return "Poisson"
	case NegBinomialSize:
		return "NegBinomial"
	default:
		return "Unknown"
	}
}

// probEpsilon bounds the negative binomial success probability away from
// 0 and 1, where the sampler degenerates.
const probEpsilon = 1e-6

// ParameterSet holds the stochastic demand parameters for one part.
//
// DailyRate is the baseline probability of any demand on a given day.
// MeanSize and SizeCV describe the order-size distribution; the
// distribution itself is derived from them: when the implied variance
// (SizeCV*MeanSize)^2 exceeds the mean, sizes are negative binomial with
//
//	R = mean^2 / (variance - mean)
//	P = R / (R + mean)
//
// and otherwise overdispersion is impossible, so sizes fall back to
// Poisson(MeanSize). R and P are zero for the Poisson case.
type ParameterSet struct {
	DailyRate float64
	MeanSize  float64
	SizeCV    float64
	Dist      SizeDistribution
	R         float64
	P         float64
}

// NewParameterSet validates the inputs and derives the size distribution.
func NewParameterSet(dailyRate, meanSize, sizeCV float64) (ParameterSet, error) {
	if dailyRate <= 0 || dailyRate > 1 {
		return ParameterSet{}, fmt.Errorf("daily rate must be in (0, 1], got %g", dailyRate)
	}
	if meanSize <= 0 {
		return ParameterSet{}, fmt.Errorf("mean size must be positive, got %g", meanSize)
	}
	if sizeCV < 0 {
		return ParameterSet{}, fmt.Errorf("size CV cannot be negative, got %g", sizeCV)
	}

	ps := ParameterSet{
		DailyRate: dailyRate,
		MeanSize:  meanSize,
		SizeCV:    sizeCV,
		Dist:      PoissonSize,
	}

	variance := (sizeCV * meanSize) * (sizeCV * meanSize)
	if variance > meanSize {
		r := meanSize * meanSize / (variance - meanSize)
		p := r / (r + meanSize)
		if p < probEpsilon {
			p = probEpsilon
		}
		if p > 1-probEpsilon {
			p = 1 - probEpsilon
		}
		ps.Dist = NegBinomialSize
		ps.R = r
		ps.P = p
	}

	return ps, nil
}
