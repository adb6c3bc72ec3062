package sinks

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"sparesim/pkg/domain/entities"
)

// LoadDemandHistory reads a demand history CSV back into records. The
// file must carry the layout the CSV sink writes. A header-only file
// loads as an empty history.
func LoadDemandHistory(filename string) ([]entities.DemandRecord, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open demand history file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read demand history CSV: %w", err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("demand history CSV must have a header row")
	}

	if !validateHeader(records[0], csvHeader) {
		return nil, fmt.Errorf("demand history CSV header mismatch. Expected: %v, Got: %v", csvHeader, records[0])
	}

	var history []entities.DemandRecord
	for i, record := range records[1:] {
		if len(record) != len(csvHeader) {
			return nil, fmt.Errorf("demand history CSV row %d: expected %d columns, got %d", i+2, len(csvHeader), len(record))
		}

		date, err := time.Parse("2006-01-02", record[0])
		if err != nil {
			return nil, fmt.Errorf("invalid demand date in row %d: %s (expected YYYY-MM-DD)", i+2, record[0])
		}

		size, err := strconv.ParseInt(record[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid demand size in row %d: %s", i+2, record[2])
		}
		if size < 0 {
			return nil, fmt.Errorf("invalid demand size in row %d: %d (must be non-negative)", i+2, size)
		}

		history = append(history, entities.DemandRecord{
			Date:     date,
			Material: entities.MaterialID(record[1]),
			Size:     size,
		})
	}

	return history, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if !strings.EqualFold(strings.TrimSpace(actual[i]), col) {
			return false
		}
	}

	return true
}
