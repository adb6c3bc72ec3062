package simulation

import (
	"math/rand"
	"time"

	"sparesim/pkg/domain/entities"
)

// sampleDay draws one day of demand: a Bernoulli hit at the modulated
// daily rate, then a size draw from the SKU's distribution. A hit is
// never empty, so sizes are floored at one unit.
func sampleDay(rng *rand.Rand, sku entities.SKU, rate float64) int64 {
	if rng.Float64() >= rate {
		return 0
	}

	var size int64
	switch sku.Params.Dist {
	case entities.NegBinomialSize:
		size = negBinomialDraw(rng, sku.Params.R, sku.Params.P)
	default:
		size = poissonDraw(rng, sku.Params.MeanSize)
	}
	if size < 1 {
		size = 1
	}
	return size
}

// sampleSeries walks the inclusive [start, end] grid in date order and
// emits one record per day, zeros included. The dense grid is the
// point: consumers can tell observed zeros from missing data.
func sampleSeries(rng *rand.Rand, sku entities.SKU, season entities.SeasonalityTable, start, end time.Time) []entities.DemandRecord {
	days := int(end.Sub(start).Hours()/24) + 1
	records := make([]entities.DemandRecord, 0, days)
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		rate := dailyRate(sku, season, start, date)
		records = append(records, entities.DemandRecord{
			Date:     date,
			Material: sku.ID,
			Size:     sampleDay(rng, sku, rate),
		})
	}
	return records
}
