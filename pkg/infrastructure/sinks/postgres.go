package sinks

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"sparesim/pkg/domain/entities"
	"sparesim/pkg/domain/repositories"
)

// PostgresSink bulk-loads demand records into a Postgres table via
// COPY, tagging every row with the run ID so repeated runs can share
// one table.
type PostgresSink struct {
	pool  *pgxpool.Pool
	table string
	runID string
}

// Verify interface compliance
var _ repositories.DemandSink = (*PostgresSink)(nil)

// NewPostgresSink connects to dsn, verifies the connection, and
// ensures the target table exists.
func NewPostgresSink(ctx context.Context, dsn, table, runID string) (*PostgresSink, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid Postgres DSN: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping Postgres: %w", err)
	}

	sink := &PostgresSink{pool: pool, table: table, runID: runID}
	if err := sink.ensureTable(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return sink, nil
}

func (s *PostgresSink) ensureTable(ctx context.Context) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		run_id      text   NOT NULL,
		demand_date date   NOT NULL,
		material    text   NOT NULL,
		demand_size bigint NOT NULL
	)`, pgx.Identifier{s.table}.Sanitize())
	if _, err := s.pool.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("failed to create table %s: %w", s.table, err)
	}
	return nil
}

// WriteRecords COPYs the batch into the table.
func (s *PostgresSink) WriteRecords(ctx context.Context, records []entities.DemandRecord) error {
	rows := pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
		r := records[i]
		return []any{s.runID, r.Date, string(r.Material), r.Size}, nil
	})
	if _, err := s.pool.CopyFrom(ctx, pgx.Identifier{s.table}, postgresColumns, rows); err != nil {
		return fmt.Errorf("failed to copy demand batch into %s: %w", s.table, err)
	}
	return nil
}

var postgresColumns = []string{"run_id", "demand_date", "material", "demand_size"}

// Close releases the connection pool.
func (s *PostgresSink) Close() {
	s.pool.Close()
}
