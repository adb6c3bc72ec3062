package entities

import (
	"math"
	"testing"
	"time"
)

func TestDefaultSeasonality_WeekdayFactors(t *testing.T) {
	table := DefaultSeasonality()

	for d := time.Monday; d <= time.Friday; d++ {
		if got := table.WeekdayFactor(d); got != 1.0 {
			t.Errorf("Expected factor 1.0 for %v, got %g", d, got)
		}
	}
	if got := table.WeekdayFactor(time.Saturday); got != 0.6 {
		t.Errorf("Expected factor 0.6 for Saturday, got %g", got)
	}
	if got := table.WeekdayFactor(time.Sunday); got != 0.4 {
		t.Errorf("Expected factor 0.4 for Sunday, got %g", got)
	}
}

func TestDefaultSeasonality_MonthFactors(t *testing.T) {
	table := DefaultSeasonality()

	for m := time.January; m <= time.December; m++ {
		expected := 1.0
		if m == time.July || m == time.December {
			expected = 1.25
		}
		if got := table.MonthFactor(m); got != expected {
			t.Errorf("Expected factor %g for %v, got %g", expected, m, got)
		}
	}
}

func TestSeasonalityTable_FactorFor(t *testing.T) {
	table := DefaultSeasonality()

	testCases := []struct {
		name     string
		date     time.Time
		expected float64
	}{
		{"weekday outside uplift", time.Date(2023, 3, 7, 0, 0, 0, 0, time.UTC), 1.0},    // Tuesday
		{"sunday outside uplift", time.Date(2023, 3, 5, 0, 0, 0, 0, time.UTC), 0.4},     // Sunday
		{"weekday in july", time.Date(2023, 7, 12, 0, 0, 0, 0, time.UTC), 1.25},         // Wednesday
		{"sunday in december", time.Date(2023, 12, 10, 0, 0, 0, 0, time.UTC), 0.5},      // 0.4 * 1.25
		{"saturday in july", time.Date(2023, 7, 15, 0, 0, 0, 0, time.UTC), 0.75},        // 0.6 * 1.25
		{"saturday outside uplift", time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC), 0.6},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := table.FactorFor(tc.date)
			if math.Abs(got-tc.expected) > 1e-12 {
				t.Errorf("FactorFor(%s) = %g, expected %g", tc.date.Format("2006-01-02"), got, tc.expected)
			}
		})
	}
}

func TestMaterialIDForIndex(t *testing.T) {
	testCases := []struct {
		index    int
		expected MaterialID
	}{
		{0, "SKU-0001"},
		{9, "SKU-0010"},
		{399, "SKU-0400"},
		{9999, "SKU-10000"},
	}

	for _, tc := range testCases {
		if got := MaterialIDForIndex(tc.index); got != tc.expected {
			t.Errorf("MaterialIDForIndex(%d) = %s, expected %s", tc.index, got, tc.expected)
		}
	}
}
