package sinks

import (
	"context"

	"sparesim/pkg/domain/entities"
	"sparesim/pkg/domain/repositories"
)

// MemorySink collects demand records in memory for tests and
// in-process consumers.
type MemorySink struct {
	records []entities.DemandRecord
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		records: []entities.DemandRecord{},
	}
}

// Verify interface compliance
var _ repositories.DemandSink = (*MemorySink)(nil)

// WriteRecords appends the batch in order.
func (s *MemorySink) WriteRecords(ctx context.Context, records []entities.DemandRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.records = append(s.records, records...)
	return nil
}

// Records returns everything written so far.
func (s *MemorySink) Records() []entities.DemandRecord {
	return s.records
}
