package simulation

import (
	"math"
	"math/rand"
)

// uniformIn returns a draw from U[min, max). It always consumes exactly
// one variate so degenerate ranges (min == max) keep streams aligned.
func uniformIn(rng *rand.Rand, min, max float64) float64 {
	return min + (max-min)*rng.Float64()
}

// poissonLambdaCutoff switches the Poisson sampler from exact
// inter-arrival counting to a normal approximation. Profiles keep the
// operating range orders of magnitude below this.
const poissonLambdaCutoff = 1000.0

// poissonDraw samples Poisson(lambda) by counting exponential
// inter-arrival times within one unit of intensity, which is exact and
// stable for all moderate lambda.
func poissonDraw(rng *rand.Rand, lambda float64) int64 {
	if lambda <= 0 {
		return 0
	}
	if lambda > poissonLambdaCutoff {
		draw := math.Round(lambda + math.Sqrt(lambda)*rng.NormFloat64())
		if draw < 0 {
			return 0
		}
		return int64(draw)
	}
	var k int64
	for sum := rng.ExpFloat64(); sum < lambda; sum += rng.ExpFloat64() {
		k++
	}
	return k
}

// gammaDraw samples Gamma(shape, scale) with the Marsaglia-Tsang
// squeeze. Shapes below one are lifted with the boost
// Gamma(a) = Gamma(a+1) * U^(1/a).
func gammaDraw(rng *rand.Rand, shape, scale float64) float64 {
	if shape <= 0 || scale <= 0 {
		return 0
	}
	if shape < 1 {
		u := rng.Float64()
		return gammaDraw(rng, shape+1, scale) * math.Pow(u, 1/shape)
	}

	d := shape - 1.0/3.0
	c := 1.0 / math.Sqrt(9.0*d)
	for {
		x := rng.NormFloat64()
		v := 1.0 + c*x
		if v <= 0 {
			continue
		}
		v = v * v * v
		u := rng.Float64()
		if u < 1.0-0.0331*x*x*x*x {
			return d * v * scale
		}
		if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
			return d * v * scale
		}
	}
}

// negBinomialDraw samples NB(r, p), the number of failures before the
// r-th success, as a Gamma-Poisson mixture:
//
//	lambda ~ Gamma(r, (1-p)/p),  X ~ Poisson(lambda)
//
// which has mean r(1-p)/p and variance mean/p, matching the moment
// derivation in entities.NewParameterSet.
func negBinomialDraw(rng *rand.Rand, r, p float64) int64 {
	if r <= 0 || p <= 0 || p >= 1 {
		return 0
	}
	lambda := gammaDraw(rng, r, (1-p)/p)
	return poissonDraw(rng, lambda)
}
