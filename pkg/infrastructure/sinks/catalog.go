package sinks

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"sparesim/pkg/domain/entities"
)

var catalogHeader = []string{
	"material", "category", "daily_rate", "mean_size", "size_cv",
	"distribution", "nb_r", "nb_p", "peak_years", "decay_rate",
	"unit_cost", "lead_time_days",
}

// WriteCatalog dumps the synthesized SKU attributes to a CSV so a run's
// ground truth can sit next to its demand history. NB columns are left
// empty for Poisson-sized parts.
func WriteCatalog(path string, skus []entities.SKU) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create catalog file %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(catalogHeader); err != nil {
		return fmt.Errorf("failed to write catalog header: %w", err)
	}
	for _, sku := range skus {
		nbR, nbP := "", ""
		if sku.Params.Dist == entities.NegBinomialSize {
			nbR = formatFloat(sku.Params.R)
			nbP = formatFloat(sku.Params.P)
		}
		row := []string{
			string(sku.ID),
			sku.Category.String(),
			formatFloat(sku.Params.DailyRate),
			formatFloat(sku.Params.MeanSize),
			formatFloat(sku.Params.SizeCV),
			sku.Params.Dist.String(),
			nbR,
			nbP,
			formatFloat(sku.Aging.PeakYears),
			formatFloat(sku.Aging.DecayRate),
			sku.UnitCost.StringFixed(2),
			strconv.Itoa(sku.LeadTimeDays),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write catalog row for %s: %w", sku.ID, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush catalog file %s: %w", path, err)
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
