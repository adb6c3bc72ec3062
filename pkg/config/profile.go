// Package config defines the demand profile: the distributions the
// generator draws SKU behavior from. The zero-argument default
// reproduces the standard spare-parts profile; a YAML file can override
// any part of it for custom fleets.
package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"sparesim/pkg/domain/entities"
)

// Range is a closed interval parameters are drawn from uniformly.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

func (r Range) validate(name string) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s: min %g is greater than max %g", name, r.Min, r.Max)
	}
	return nil
}

// IntRange is a closed integer interval.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

func (r IntRange) validate(name string) error {
	if r.Min > r.Max {
		return fmt.Errorf("%s: min %d is greater than max %d", name, r.Min, r.Max)
	}
	return nil
}

// CategoryWeights is the categorical distribution SKUs are assigned
// demand categories from. Weights must sum to one.
type CategoryWeights struct {
	Smooth  float64 `yaml:"smooth"`
	Erratic float64 `yaml:"erratic"`
	Slow    float64 `yaml:"slow"`
	Lumpy   float64 `yaml:"lumpy"`
}

// For returns the weight of one category.
func (w CategoryWeights) For(c entities.Category) float64 {
	switch c {
	case entities.Smooth:
		return w.Smooth
	case entities.Erratic:
		return w.Erratic
	case entities.Slow:
		return w.Slow
	case entities.Lumpy:
		return w.Lumpy
	default:
		return 0
	}
}

// Sum returns the total weight across all categories.
func (w CategoryWeights) Sum() float64 {
	return w.Smooth + w.Erratic + w.Slow + w.Lumpy
}

// SeasonalityConfig describes the calendar modulation table.
type SeasonalityConfig struct {
	// WeekdayFactors maps mon..sun to demand multipliers.
	WeekdayFactors map[string]float64 `yaml:"weekday_factors"`
	// UpliftMonths lists months (1-12) that get UpliftFactor applied.
	UpliftMonths []int   `yaml:"uplift_months"`
	UpliftFactor float64 `yaml:"uplift_factor"`
}

// Profile bundles every distribution the generator draws from.
type Profile struct {
	Weights CategoryWeights `yaml:"category_weights"`

	// FrequentRate is the daily hit probability range for smooth and
	// erratic parts. SparseRateExponent feeds 10^U(min,max) for slow
	// and lumpy parts, spreading their rates across decades.
	FrequentRate       Range `yaml:"frequent_rate"`
	SparseRateExponent Range `yaml:"sparse_rate_exponent"`

	// MeanSize is the order-size mean range. SteadyCV applies to smooth
	// and slow parts, VolatileCV to erratic and lumpy parts.
	MeanSize   Range `yaml:"mean_size"`
	SteadyCV   Range `yaml:"steady_cv"`
	VolatileCV Range `yaml:"volatile_cv"`

	// PeakYears and DecayRate parameterize fleet obsolescence.
	PeakYears Range `yaml:"peak_years"`
	DecayRate Range `yaml:"decay_rate"`

	Seasonality SeasonalityConfig `yaml:"seasonality"`

	// Catalog attributes. These never influence the demand series.
	UnitCost     Range    `yaml:"unit_cost"`
	LeadTimeDays IntRange `yaml:"lead_time_days"`
}

var weekdayKeys = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// Default returns the standard spare-parts profile.
func Default() *Profile {
	return &Profile{
		Weights: CategoryWeights{
			Smooth:  0.20,
			Erratic: 0.20,
			Slow:    0.30,
			Lumpy:   0.30,
		},
		FrequentRate:       Range{Min: 0.7, Max: 1.0},
		SparseRateExponent: Range{Min: -3.5, Max: -1.0},
		MeanSize:           Range{Min: 1.0, Max: 10.0},
		SteadyCV:           Range{Min: 0.3, Max: 0.6},
		VolatileCV:         Range{Min: 0.8, Max: 2.5},
		PeakYears:          Range{Min: 1.0, Max: 4.0},
		DecayRate:          Range{Min: 0.05, Max: 0.15},
		Seasonality: SeasonalityConfig{
			WeekdayFactors: map[string]float64{
				"mon": 1.0, "tue": 1.0, "wed": 1.0, "thu": 1.0, "fri": 1.0,
				"sat": 0.6, "sun": 0.4,
			},
			UpliftMonths: []int{7, 12},
			UpliftFactor: 1.25,
		},
		UnitCost:     Range{Min: 5.0, Max: 500.0},
		LeadTimeDays: IntRange{Min: 7, Max: 90},
	}
}

// Load reads a profile from a YAML file. Values absent from the file
// keep their defaults. An empty path returns the default profile. The
// returned profile is always validated.
func Load(path string) (*Profile, error) {
	profile := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read profile file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, profile); err != nil {
			return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
		}
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return profile, nil
}

// Validate checks every distribution for internal consistency.
func (p *Profile) Validate() error {
	for _, w := range []struct {
		name  string
		value float64
	}{
		{"smooth", p.Weights.Smooth},
		{"erratic", p.Weights.Erratic},
		{"slow", p.Weights.Slow},
		{"lumpy", p.Weights.Lumpy},
	} {
		if w.value < 0 {
			return fmt.Errorf("category weight %s cannot be negative, got %g", w.name, w.value)
		}
	}
	if sum := p.Weights.Sum(); math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("category weights must sum to 1, got %g", sum)
	}

	if err := p.FrequentRate.validate("frequent_rate"); err != nil {
		return err
	}
	if p.FrequentRate.Min <= 0 || p.FrequentRate.Max > 1 {
		return fmt.Errorf("frequent_rate must stay within (0, 1], got [%g, %g]",
			p.FrequentRate.Min, p.FrequentRate.Max)
	}
	if err := p.SparseRateExponent.validate("sparse_rate_exponent"); err != nil {
		return err
	}
	if p.SparseRateExponent.Max > 0 {
		return fmt.Errorf("sparse_rate_exponent max must be <= 0 so rates stay within [0, 1], got %g",
			p.SparseRateExponent.Max)
	}
	if err := p.MeanSize.validate("mean_size"); err != nil {
		return err
	}
	if p.MeanSize.Min <= 0 {
		return fmt.Errorf("mean_size min must be positive, got %g", p.MeanSize.Min)
	}
	if err := p.SteadyCV.validate("steady_cv"); err != nil {
		return err
	}
	if err := p.VolatileCV.validate("volatile_cv"); err != nil {
		return err
	}
	if p.SteadyCV.Min < 0 || p.VolatileCV.Min < 0 {
		return fmt.Errorf("CV ranges cannot be negative")
	}
	if err := p.PeakYears.validate("peak_years"); err != nil {
		return err
	}
	if p.PeakYears.Min < 0 {
		return fmt.Errorf("peak_years min cannot be negative, got %g", p.PeakYears.Min)
	}
	if err := p.DecayRate.validate("decay_rate"); err != nil {
		return err
	}
	if p.DecayRate.Min < 0 {
		return fmt.Errorf("decay_rate min cannot be negative, got %g", p.DecayRate.Min)
	}

	if len(p.Seasonality.WeekdayFactors) != len(weekdayKeys) {
		return fmt.Errorf("weekday_factors must define all 7 days (mon..sun), got %d entries",
			len(p.Seasonality.WeekdayFactors))
	}
	for key, factor := range p.Seasonality.WeekdayFactors {
		if _, ok := weekdayKeys[key]; !ok {
			return fmt.Errorf("unknown weekday key %q (expected mon, tue, wed, thu, fri, sat, sun)", key)
		}
		if factor < 0 {
			return fmt.Errorf("weekday factor %s cannot be negative, got %g", key, factor)
		}
	}
	for _, m := range p.Seasonality.UpliftMonths {
		if m < 1 || m > 12 {
			return fmt.Errorf("uplift month must be within 1..12, got %d", m)
		}
	}
	if p.Seasonality.UpliftFactor <= 0 {
		return fmt.Errorf("uplift_factor must be positive, got %g", p.Seasonality.UpliftFactor)
	}

	if err := p.UnitCost.validate("unit_cost"); err != nil {
		return err
	}
	if p.UnitCost.Min <= 0 {
		return fmt.Errorf("unit_cost min must be positive, got %g", p.UnitCost.Min)
	}
	if err := p.LeadTimeDays.validate("lead_time_days"); err != nil {
		return err
	}
	if p.LeadTimeDays.Min < 0 {
		return fmt.Errorf("lead_time_days min cannot be negative, got %d", p.LeadTimeDays.Min)
	}

	return nil
}

// SeasonalityTable builds the domain table from the configured factors.
// Call Validate first; unknown keys are silently skipped here.
func (p *Profile) SeasonalityTable() entities.SeasonalityTable {
	var t entities.SeasonalityTable
	for d := time.Sunday; d <= time.Saturday; d++ {
		t.Weekday[d] = 1.0
	}
	for key, factor := range p.Seasonality.WeekdayFactors {
		if d, ok := weekdayKeys[key]; ok {
			t.Weekday[d] = factor
		}
	}
	for m := time.January; m <= time.December; m++ {
		t.Month[m] = 1.0
	}
	for _, m := range p.Seasonality.UpliftMonths {
		if m >= 1 && m <= 12 {
			t.Month[time.Month(m)] = p.Seasonality.UpliftFactor
		}
	}
	return t
}
