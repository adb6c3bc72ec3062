package sinks

import (
	"context"

	"sparesim/pkg/domain/entities"
	"sparesim/pkg/domain/repositories"
)

// MultiSink fans every batch out to several sinks in order. The first
// failing sink aborts the batch.
type MultiSink struct {
	sinks []repositories.DemandSink
}

// NewMultiSink combines sinks into one. Order matters: earlier sinks
// see each batch first.
func NewMultiSink(sinks ...repositories.DemandSink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

// Verify interface compliance
var _ repositories.DemandSink = (*MultiSink)(nil)

// WriteRecords forwards the batch to every sink.
func (s *MultiSink) WriteRecords(ctx context.Context, records []entities.DemandRecord) error {
	for _, sink := range s.sinks {
		if err := sink.WriteRecords(ctx, records); err != nil {
			return err
		}
	}
	return nil
}
