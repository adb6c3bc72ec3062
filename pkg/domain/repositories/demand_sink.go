package repositories

import (
	"context"

	"sparesim/pkg/domain/entities"
)

// DemandSink receives generated demand records. The engine delivers
// batches in material order with dates ascending inside each batch, from
// a single goroutine, so implementations do not need their own locking.
// A sink error aborts the run; partial output is not a valid history.
type DemandSink interface {
	WriteRecords(ctx context.Context, records []entities.DemandRecord) error
}
