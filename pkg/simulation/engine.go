package simulation

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sparesim/pkg/config"
	"sparesim/pkg/domain/entities"
	"sparesim/pkg/domain/repositories"
)

// Config describes one generation run.
type Config struct {
	// SKUCount is the number of materials to synthesize.
	SKUCount int

	// Start and End bound the daily grid, inclusive on both ends.
	Start time.Time
	End   time.Time

	// Seed is the global seed. Every SKU derives its own substream
	// from it, so two runs with the same seed and configuration emit
	// identical output no matter how many workers run.
	Seed int64

	// Workers caps the synthesis pool. Zero means one per CPU.
	Workers int

	// RunID tags the run in sinks and reports. Assigned when empty.
	RunID string
}

// Validate rejects impossible runs before any generation work starts.
func (c Config) Validate() error {
	if c.SKUCount <= 0 {
		return fmt.Errorf("sku count must be positive, got %d", c.SKUCount)
	}
	if c.Start.IsZero() {
		return errors.New("start date is required")
	}
	if c.End.IsZero() {
		return errors.New("end date is required")
	}
	if c.Start.After(c.End) {
		return fmt.Errorf("start date %s is after end date %s",
			c.Start.Format("2006-01-02"), c.End.Format("2006-01-02"))
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers cannot be negative, got %d", c.Workers)
	}
	return nil
}

// Days is the size of the inclusive daily grid.
func (c Config) Days() int {
	return int(c.End.Sub(c.Start).Hours()/24) + 1
}

// Result reports what a finished run produced.
type Result struct {
	RunID   string
	SKUs    []entities.SKU
	Summary *RunSummary
	Elapsed time.Duration
}

// Engine generates synthetic demand histories. SKUs are synthesized
// concurrently, but records reach the sink in SKU order regardless of
// the worker count.
type Engine struct {
	cfg     Config
	profile *config.Profile
	season  entities.SeasonalityTable
	sink    repositories.DemandSink
	logger  *zap.Logger
}

// NewEngine validates the run configuration and demand profile up
// front. A nil profile means the built-in defaults; a nil logger
// silences progress output.
func NewEngine(cfg Config, profile *config.Profile, sink repositories.DemandSink, logger *zap.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run config: %w", err)
	}
	if profile == nil {
		profile = config.Default()
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	if sink == nil {
		return nil, errors.New("demand sink is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}
	return &Engine{
		cfg:     cfg,
		profile: profile,
		season:  profile.SeasonalityTable(),
		sink:    sink,
		logger:  logger,
	}, nil
}

type skuResult struct {
	index   int
	sku     entities.SKU
	records []entities.DemandRecord
}

// Run synthesizes every SKU and streams its daily records to the sink.
// The first error, from synthesis, the sink, or ctx, aborts the run.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	started := time.Now()
	workers := e.cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	e.logger.Info("starting demand generation",
		zap.String("run_id", e.cfg.RunID),
		zap.Int("skus", e.cfg.SKUCount),
		zap.String("start", e.cfg.Start.Format("2006-01-02")),
		zap.String("end", e.cfg.End.Format("2006-01-02")),
		zap.Int("days", e.cfg.Days()),
		zap.Int64("seed", e.cfg.Seed),
		zap.Int("workers", workers))

	jobs := make(chan int, workers)
	results := make(chan skuResult, workers)
	skus := make([]entities.SKU, e.cfg.SKUCount)
	summary := newRunSummary()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < e.cfg.SKUCount; i++ {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var workersDone sync.WaitGroup
	workersDone.Add(workers)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			defer workersDone.Done()
			for index := range jobs {
				res, err := e.buildSKU(index)
				if err != nil {
					return err
				}
				select {
				case results <- res:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		workersDone.Wait()
		close(results)
	}()

	g.Go(func() error {
		progressEvery := e.cfg.SKUCount / 10
		if progressEvery == 0 {
			progressEvery = 1
		}
		pending := make(map[int]skuResult)
		next := 0
		for res := range results {
			pending[res.index] = res
			for {
				r, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				if err := e.sink.WriteRecords(gctx, r.records); err != nil {
					return fmt.Errorf("writing demand for %s: %w", r.sku.ID, err)
				}
				summary.observe(r.sku, r.records)
				skus[next] = r.sku
				next++
				if next%progressEvery == 0 || next == e.cfg.SKUCount {
					e.logger.Info("generation progress",
						zap.Int("completed", next),
						zap.Int("total", e.cfg.SKUCount))
				}
			}
		}
		if next != e.cfg.SKUCount {
			if err := gctx.Err(); err != nil {
				return err
			}
			return fmt.Errorf("generation stopped after %d of %d SKUs", next, e.cfg.SKUCount)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	elapsed := time.Since(started)
	recordsPerSec := float64(summary.Records) / elapsed.Seconds()
	e.logger.Info("demand generation complete",
		zap.String("run_id", e.cfg.RunID),
		zap.Int64("records", summary.Records),
		zap.Int64("units", summary.Units),
		zap.Duration("elapsed", elapsed),
		zap.Float64("records_per_sec", recordsPerSec))

	return &Result{
		RunID:   e.cfg.RunID,
		SKUs:    skus,
		Summary: summary,
		Elapsed: elapsed,
	}, nil
}

// buildSKU synthesizes one SKU and its full daily series. The demand
// substream covers category, parameter, and daily draws in that order;
// catalog attributes come from their own substream so pricing never
// perturbs the demand history.
func (e *Engine) buildSKU(index int) (skuResult, error) {
	rng := newStream(e.cfg.Seed, index, demandStream)
	sku, err := synthesizeSKU(rng, e.profile, index)
	if err != nil {
		return skuResult{}, err
	}
	catalogRNG := newStream(e.cfg.Seed, index, catalogStream)
	sku.UnitCost, sku.LeadTimeDays = synthesizeCatalog(catalogRNG, e.profile)
	records := sampleSeries(rng, sku, e.season, e.cfg.Start, e.cfg.End)
	return skuResult{index: index, sku: sku, records: records}, nil
}
