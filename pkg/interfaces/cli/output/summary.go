// Package output renders run results for the terminal.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"sparesim/pkg/domain/entities"
	"sparesim/pkg/simulation"
)

// Render writes the run summary to w in the requested format.
func Render(w io.Writer, cfg simulation.Config, res *simulation.Result, format string) error {
	switch format {
	case "text":
		return renderText(w, cfg, res)
	case "json":
		return renderJSON(w, cfg, res)
	default:
		return fmt.Errorf("unsupported summary format: %s", format)
	}
}

func renderText(w io.Writer, cfg simulation.Config, res *simulation.Result) error {
	s := res.Summary

	fmt.Fprintf(w, "📊 Demand Generation Summary\n")
	fmt.Fprintf(w, "============================\n\n")

	fmt.Fprintf(w, "Run ID:       %s\n", res.RunID)
	fmt.Fprintf(w, "Window:       %s to %s (%d days)\n",
		cfg.Start.Format("2006-01-02"), cfg.End.Format("2006-01-02"), cfg.Days())
	fmt.Fprintf(w, "Seed:         %d\n", cfg.Seed)
	fmt.Fprintf(w, "SKUs:         %d\n", s.SKUs)
	fmt.Fprintf(w, "Day Cells:    %d\n", s.Records)
	fmt.Fprintf(w, "Demand Hits:  %d (%.1f%%)\n", s.Hits, s.HitRate()*100)
	fmt.Fprintf(w, "Units:        %d\n", s.Units)
	fmt.Fprintf(w, "Demand Value: %s\n", s.TotalValue.StringFixed(2))
	fmt.Fprintf(w, "Elapsed:      %v\n\n", res.Elapsed)

	fmt.Fprintf(w, "📦 Category Mix:\n")
	fmt.Fprintf(w, "%-10s %-8s %-8s %-10s %-12s\n",
		"Category", "SKUs", "Share", "Hits", "Units")
	fmt.Fprintf(w, "%-10s %-8s %-8s %-10s %-12s\n",
		"----------", "--------", "--------", "----------", "------------")
	for _, c := range entities.Categories {
		stats := s.PerCategory[c]
		fmt.Fprintf(w, "%-10s %-8d %-7.1f%% %-10d %-12d\n",
			c.String(), stats.SKUs, s.CategoryShare(c)*100, stats.Hits, stats.Units)
	}
	fmt.Fprintln(w)
	return nil
}

type categoryJSON struct {
	Name  string  `json:"name"`
	SKUs  int     `json:"skus"`
	Share float64 `json:"share"`
	Hits  int64   `json:"hits"`
	Units int64   `json:"units"`
}

type summaryJSON struct {
	RunID        string           `json:"run_id"`
	Start        string           `json:"start"`
	End          string           `json:"end"`
	Days         int              `json:"days"`
	Seed         int64            `json:"seed"`
	SKUs         int              `json:"skus"`
	DayCells     int64            `json:"day_cells"`
	DemandHits   int64            `json:"demand_hits"`
	HitRate      float64          `json:"hit_rate"`
	Units        int64            `json:"units"`
	DemandValue  string           `json:"demand_value"`
	ElapsedMS    int64            `json:"elapsed_ms"`
	Categories   []categoryJSON   `json:"categories"`
	MonthlyUnits map[string]int64 `json:"monthly_units"`
}

func renderJSON(w io.Writer, cfg simulation.Config, res *simulation.Result) error {
	s := res.Summary
	doc := summaryJSON{
		RunID:        res.RunID,
		Start:        cfg.Start.Format("2006-01-02"),
		End:          cfg.End.Format("2006-01-02"),
		Days:         cfg.Days(),
		Seed:         cfg.Seed,
		SKUs:         s.SKUs,
		DayCells:     s.Records,
		DemandHits:   s.Hits,
		HitRate:      s.HitRate(),
		Units:        s.Units,
		DemandValue:  s.TotalValue.StringFixed(2),
		ElapsedMS:    res.Elapsed.Milliseconds(),
		MonthlyUnits: s.MonthlyUnits,
	}
	for _, c := range entities.Categories {
		stats := s.PerCategory[c]
		doc.Categories = append(doc.Categories, categoryJSON{
			Name:  c.String(),
			SKUs:  stats.SKUs,
			Share: s.CategoryShare(c),
			Hits:  stats.Hits,
			Units: stats.Units,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(data)); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
