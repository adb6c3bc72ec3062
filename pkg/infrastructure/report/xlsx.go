// Package report renders run aggregates into an XLSX workbook for
// planners who review generated fleets in a spreadsheet.
package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"sparesim/pkg/domain/entities"
	"sparesim/pkg/simulation"
)

const (
	runSheet      = "Run"
	categorySheet = "Categories"
	monthlySheet  = "Monthly"
)

var categoryHeaders = []string{"Category", "SKUs", "Share", "Demand Hits", "Units"}

// WriteWorkbook saves a three-sheet workbook: run facts, the category
// mix, and the monthly unit series.
func WriteWorkbook(path string, cfg simulation.Config, res *simulation.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	writeRunSheet(f, boldStyle, cfg, res)
	writeCategorySheet(f, boldStyle, res.Summary)
	writeMonthlySheet(f, boldStyle, res.Summary)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save report %s: %w", path, err)
	}
	return nil
}

func writeRunSheet(f *excelize.File, boldStyle int, cfg simulation.Config, res *simulation.Result) {
	f.SetSheetName("Sheet1", runSheet)

	rows := []struct {
		label string
		value any
	}{
		{"Run ID", res.RunID},
		{"SKUs", res.Summary.SKUs},
		{"Window Start", cfg.Start.Format("2006-01-02")},
		{"Window End", cfg.End.Format("2006-01-02")},
		{"Days", cfg.Days()},
		{"Seed", cfg.Seed},
		{"Day Cells", res.Summary.Records},
		{"Demand Hits", res.Summary.Hits},
		{"Hit Rate", res.Summary.HitRate()},
		{"Units", res.Summary.Units},
		{"Demand Value", res.Summary.TotalValue.StringFixed(2)},
		{"Elapsed", res.Elapsed.String()},
	}
	for i, r := range rows {
		labelCell := fmt.Sprintf("A%d", i+1)
		f.SetCellValue(runSheet, labelCell, r.label)
		f.SetCellStyle(runSheet, labelCell, labelCell, boldStyle)
		f.SetCellValue(runSheet, fmt.Sprintf("B%d", i+1), r.value)
	}
	f.SetColWidth(runSheet, "A", "A", 16)
	f.SetColWidth(runSheet, "B", "B", 40)
}

func writeCategorySheet(f *excelize.File, boldStyle int, summary *simulation.RunSummary) {
	f.NewSheet(categorySheet)

	for i, h := range categoryHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(categorySheet, cell, h)
		f.SetCellStyle(categorySheet, cell, cell, boldStyle)
	}
	for i, c := range entities.Categories {
		row := i + 2
		stats := summary.PerCategory[c]
		f.SetCellValue(categorySheet, fmt.Sprintf("A%d", row), c.String())
		f.SetCellValue(categorySheet, fmt.Sprintf("B%d", row), stats.SKUs)
		f.SetCellValue(categorySheet, fmt.Sprintf("C%d", row), summary.CategoryShare(c))
		f.SetCellValue(categorySheet, fmt.Sprintf("D%d", row), stats.Hits)
		f.SetCellValue(categorySheet, fmt.Sprintf("E%d", row), stats.Units)
	}
	for i := range categoryHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(categorySheet, col, col, 14)
	}
}

func writeMonthlySheet(f *excelize.File, boldStyle int, summary *simulation.RunSummary) {
	f.NewSheet(monthlySheet)

	f.SetCellValue(monthlySheet, "A1", "Month")
	f.SetCellValue(monthlySheet, "B1", "Units")
	f.SetCellStyle(monthlySheet, "A1", "B1", boldStyle)

	for i, month := range summary.Months() {
		row := i + 2
		f.SetCellValue(monthlySheet, fmt.Sprintf("A%d", row), month)
		f.SetCellValue(monthlySheet, fmt.Sprintf("B%d", row), summary.MonthlyUnits[month])
	}
	f.SetColWidth(monthlySheet, "A", "B", 12)
}
