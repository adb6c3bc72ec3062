package main

import (
	"context"
	"fmt"
	"time"

	"sparesim/pkg/domain/entities"
	"sparesim/pkg/infrastructure/sinks"
	"sparesim/pkg/simulation"
)

func main() {
	ctx := context.Background()

	// Generate a small fleet in memory
	sink := sinks.NewMemorySink()
	cfg := simulation.Config{
		SKUCount: 5,
		Start:    time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2023, 3, 31, 0, 0, 0, 0, time.UTC),
		Seed:     42,
	}

	engine, err := simulation.NewEngine(cfg, nil, sink, nil)
	if err != nil {
		fmt.Printf("❌ Engine setup failed: %v\n", err)
		return
	}

	fmt.Println("🔧 Generating synthetic spare-parts demand...")
	fmt.Printf("Fleet: %d SKUs over %d days (seed %d)\n\n", cfg.SKUCount, cfg.Days(), cfg.Seed)

	res, err := engine.Run(ctx)
	if err != nil {
		fmt.Printf("❌ Generation failed: %v\n", err)
		return
	}

	// Show the synthesized fleet
	fmt.Println("📦 Synthesized SKUs:")
	for _, sku := range res.SKUs {
		fmt.Printf("  %s: %s, hit rate %.4f, mean size %.2f (%s), unit cost %s\n",
			sku.ID,
			sku.Category,
			sku.Params.DailyRate,
			sku.Params.MeanSize,
			sku.Params.Dist,
			sku.UnitCost.StringFixed(2))
	}
	fmt.Println()

	// Show the first demand hits
	fmt.Println("📋 First demand hits:")
	shown := 0
	for _, r := range sink.Records() {
		if r.Size == 0 {
			continue
		}
		fmt.Printf("  %s  %s  %d units\n", r.Date.Format("2006-01-02"), r.Material, r.Size)
		if shown++; shown == 8 {
			break
		}
	}
	fmt.Println()

	// Summarize the run
	fmt.Println("📊 Run Summary:")
	fmt.Printf("  Day Cells: %d\n", res.Summary.Records)
	fmt.Printf("  Demand Hits: %d (%.1f%%)\n", res.Summary.Hits, res.Summary.HitRate()*100)
	fmt.Printf("  Units: %d\n", res.Summary.Units)
	fmt.Printf("  Demand Value: %s\n", res.Summary.TotalValue.StringFixed(2))
	for _, c := range entities.Categories {
		fmt.Printf("  %s SKUs: %d\n", c, res.Summary.PerCategory[c].SKUs)
	}
	fmt.Printf("  Elapsed: %v\n", res.Elapsed)
}
