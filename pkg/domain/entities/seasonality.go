package entities

import "time"

// SeasonalityTable holds multiplicative calendar factors for demand
// intensity. Weekday is indexed by time.Weekday and Month by time.Month
// (index 0 of Month is unused). The table is read-only once built and
// safe to share across goroutines.
type SeasonalityTable struct {
	Weekday [7]float64
	Month   [13]float64
}

// DefaultSeasonality returns the standard industrial pattern: full
// demand on working days, reduced weekend activity, and a stocking
// uplift in July and December.
func DefaultSeasonality() SeasonalityTable {
	var t SeasonalityTable
	for d := time.Sunday; d <= time.Saturday; d++ {
		t.Weekday[d] = 1.0
	}
	t.Weekday[time.Saturday] = 0.6
	t.Weekday[time.Sunday] = 0.4

	for m := time.January; m <= time.December; m++ {
		t.Month[m] = 1.0
	}
	t.Month[time.July] = 1.25
	t.Month[time.December] = 1.25
	return t
}

// WeekdayFactor returns the multiplier for a day of the week.
func (t SeasonalityTable) WeekdayFactor(d time.Weekday) float64 {
	return t.Weekday[d]
}

// MonthFactor returns the multiplier for a month.
func (t SeasonalityTable) MonthFactor(m time.Month) float64 {
	return t.Month[m]
}

// FactorFor returns the combined calendar multiplier for a date.
func (t SeasonalityTable) FactorFor(date time.Time) float64 {
	return t.Weekday[date.Weekday()] * t.Month[date.Month()]
}
