package simulation

import (
	"time"

	"sparesim/pkg/domain/entities"
)

const hoursPerYear = 24 * 365.25

// elapsedYears converts the span between the series start and a given
// date into fractional years, so aging decays continuously instead of
// stepping once per calendar year.
func elapsedYears(start, date time.Time) float64 {
	return date.Sub(start).Hours() / hoursPerYear
}

// dailyRate modulates a SKU's base hit probability for one calendar day:
// weekday factor, month factor, then lifecycle aging. The result is a
// probability, clamped to [0, 1].
func dailyRate(sku entities.SKU, season entities.SeasonalityTable, start, date time.Time) float64 {
	rate := sku.Params.DailyRate * season.FactorFor(date) * sku.Aging.FactorAt(elapsedYears(start, date))
	if rate < 0 {
		return 0
	}
	if rate > 1 {
		return 1
	}
	return rate
}
