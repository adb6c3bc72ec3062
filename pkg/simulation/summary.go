package simulation

import (
	"sort"

	"github.com/shopspring/decimal"

	"sparesim/pkg/domain/entities"
)

// CategoryStats accumulates per-category counts across a run.
type CategoryStats struct {
	SKUs  int
	Hits  int64
	Units int64
}

// RunSummary aggregates a whole generation run for reporting. It is
// filled by the engine's writer goroutine, so no locking is needed.
type RunSummary struct {
	SKUs    int
	Days    int
	Records int64
	Hits    int64
	Units   int64

	// TotalValue prices every demanded unit at its SKU's catalog cost.
	TotalValue decimal.Decimal

	PerCategory  map[entities.Category]*CategoryStats
	MonthlyUnits map[string]int64
}

func newRunSummary() *RunSummary {
	perCategory := make(map[entities.Category]*CategoryStats, len(entities.Categories))
	for _, c := range entities.Categories {
		perCategory[c] = &CategoryStats{}
	}
	return &RunSummary{
		TotalValue:   decimal.Zero,
		PerCategory:  perCategory,
		MonthlyUnits: make(map[string]int64),
	}
}

func (s *RunSummary) observe(sku entities.SKU, records []entities.DemandRecord) {
	s.SKUs++
	if s.Days == 0 {
		s.Days = len(records)
	}

	stats := s.PerCategory[sku.Category]
	stats.SKUs++

	var units int64
	for _, r := range records {
		s.Records++
		if r.Size == 0 {
			continue
		}
		s.Hits++
		stats.Hits++
		units += r.Size
		s.MonthlyUnits[r.Date.Format("2006-01")] += r.Size
	}
	s.Units += units
	stats.Units += units
	s.TotalValue = s.TotalValue.Add(sku.UnitCost.Mul(decimal.NewFromInt(units)))
}

// HitRate is the share of day cells carrying demand.
func (s *RunSummary) HitRate() float64 {
	if s.Records == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Records)
}

// CategoryShare is the observed share of SKUs assigned to c.
func (s *RunSummary) CategoryShare(c entities.Category) float64 {
	if s.SKUs == 0 {
		return 0
	}
	return float64(s.PerCategory[c].SKUs) / float64(s.SKUs)
}

// Months returns the covered months in ascending order.
func (s *RunSummary) Months() []string {
	months := make([]string, 0, len(s.MonthlyUnits))
	for m := range s.MonthlyUnits {
		months = append(months, m)
	}
	sort.Strings(months)
	return months
}
