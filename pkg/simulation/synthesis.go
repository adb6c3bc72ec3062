package simulation

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/shopspring/decimal"

	"sparesim/pkg/config"
	"sparesim/pkg/domain/entities"
)

// drawCategory assigns a demand category with a cumulative-probability
// walk over the canonical category order. This is the first draw of
// every SKU substream.
func drawCategory(rng *rand.Rand, weights config.CategoryWeights) entities.Category {
	u := rng.Float64()
	acc := 0.0
	for _, c := range entities.Categories {
		acc += weights.For(c)
		if u < acc {
			return c
		}
	}
	// Rounding at the top of the walk lands on the last category.
	return entities.Categories[len(entities.Categories)-1]
}

// synthesizeSKU draws one SKU's full demand profile. Draw order is fixed
// by the reproducibility contract: category, daily rate, mean size, size
// CV, peak years, decay rate.
func synthesizeSKU(rng *rand.Rand, profile *config.Profile, index int) (entities.SKU, error) {
	category := drawCategory(rng, profile.Weights)

	var dailyRate float64
	if category.Sparse() {
		exp := uniformIn(rng, profile.SparseRateExponent.Min, profile.SparseRateExponent.Max)
		dailyRate = math.Pow(10, exp)
	} else {
		dailyRate = uniformIn(rng, profile.FrequentRate.Min, profile.FrequentRate.Max)
	}

	meanSize := uniformIn(rng, profile.MeanSize.Min, profile.MeanSize.Max)

	cvRange := profile.SteadyCV
	if category.Volatile() {
		cvRange = profile.VolatileCV
	}
	sizeCV := uniformIn(rng, cvRange.Min, cvRange.Max)

	params, err := entities.NewParameterSet(dailyRate, meanSize, sizeCV)
	if err != nil {
		return entities.SKU{}, fmt.Errorf("SKU %d parameters: %w", index, err)
	}

	peakYears := uniformIn(rng, profile.PeakYears.Min, profile.PeakYears.Max)
	decayRate := uniformIn(rng, profile.DecayRate.Min, profile.DecayRate.Max)
	aging, err := entities.NewAgingProfile(peakYears, decayRate)
	if err != nil {
		return entities.SKU{}, fmt.Errorf("SKU %d aging profile: %w", index, err)
	}

	return entities.SKU{
		Index:    index,
		ID:       entities.MaterialIDForIndex(index),
		Category: category,
		Params:   params,
		Aging:    aging,
	}, nil
}

// synthesizeCatalog draws the purchasing attributes for one SKU. These
// come from the catalog substream, isolated from the demand draws.
func synthesizeCatalog(rng *rand.Rand, profile *config.Profile) (decimal.Decimal, int) {
	cost := decimal.NewFromFloat(uniformIn(rng, profile.UnitCost.Min, profile.UnitCost.Max)).Round(2)
	spread := profile.LeadTimeDays.Max - profile.LeadTimeDays.Min
	leadTime := profile.LeadTimeDays.Min
	if spread > 0 {
		leadTime += rng.Intn(spread + 1)
	}
	return cost, leadTime
}
