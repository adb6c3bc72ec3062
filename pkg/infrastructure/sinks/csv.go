// Package sinks provides the destinations demand records stream into:
// CSV files, Postgres, memory, or any combination of them.
package sinks

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"sparesim/pkg/domain/entities"
	"sparesim/pkg/domain/repositories"
)

// csvHeader is the canonical demand-history layout downstream
// forecasting pipelines ingest.
var csvHeader = []string{"Demand Date", "Material", "Demand Size"}

// CSVSink streams demand records into a CSV file. Rows land in the
// order they are written, one per day cell.
type CSVSink struct {
	path   string
	file   *os.File
	writer *csv.Writer
}

// Verify interface compliance
var _ repositories.DemandSink = (*CSVSink)(nil)

// NewCSVSink creates (or truncates) the output file and writes the
// header row. Close must be called to flush the file.
func NewCSVSink(path string) (*CSVSink, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}
	return &CSVSink{path: path, file: file, writer: writer}, nil
}

// WriteRecords appends one row per record, preserving record order.
func (s *CSVSink) WriteRecords(ctx context.Context, records []entities.DemandRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Date.Format("2006-01-02"),
			string(r.Material),
			strconv.FormatInt(r.Size, 10),
		}
		if err := s.writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", r.Material, err)
		}
	}
	return nil
}

// Close flushes buffered rows and closes the file. The CSV is not
// complete until Close returns nil.
func (s *CSVSink) Close() error {
	s.writer.Flush()
	if err := s.writer.Error(); err != nil {
		s.file.Close()
		return fmt.Errorf("failed to flush CSV output %s: %w", s.path, err)
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("failed to close output file %s: %w", s.path, err)
	}
	return nil
}
