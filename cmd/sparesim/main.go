package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"sparesim/pkg/interfaces/cli/commands"
)

func main() {
	// Load .env before flag definitions so SPARESIM_* variables can
	// feed flag defaults.
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables only")
	}

	// Command line flags
	var (
		skuCount = flag.Int("sku", 400, "Number of SKUs to synthesize")
		start    = flag.String("start", "2023-01-01", "First demand date (YYYY-MM-DD)")
		end      = flag.String("end", "2024-12-31", "Last demand date (YYYY-MM-DD), inclusive")
		seed     = flag.Int64(
			"seed",
			42,
			"Random seed for reproducible output (0 = time-based)",
		)
		outfile = flag.String(
			"outfile",
			"synthetic_spare_parts_daily.csv",
			"Demand history CSV path",
		)
		catalogFile = flag.String("catalog", "", "SKU catalog CSV path (optional)")
		reportFile  = flag.String("report", "", "XLSX summary workbook path (optional)")
		profileFile = flag.String("profile", "", "YAML demand profile path (optional)")
		pgDSN       = flag.String(
			"pg-dsn",
			os.Getenv("SPARESIM_PG_DSN"),
			"Postgres DSN to mirror records into (optional)",
		)
		pgTable = flag.String(
			"pg-table",
			envOr("SPARESIM_PG_TABLE", "demand_history"),
			"Postgres table for mirrored records",
		)
		workers       = flag.Int("workers", 0, "Worker pool size (0 = one per CPU)")
		summaryFormat = flag.String("summary", "text", "Run summary format: text or json")
		verbose       = flag.Bool("verbose", false, "Enable verbose output")
		help          = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	logger, err := initLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Create command configuration
	config := commands.Config{
		SKUCount:      *skuCount,
		Start:         *start,
		End:           *end,
		Seed:          *seed,
		Outfile:       *outfile,
		CatalogFile:   *catalogFile,
		ReportFile:    *reportFile,
		ProfileFile:   *profileFile,
		PostgresDSN:   *pgDSN,
		PostgresTable: *pgTable,
		Workers:       *workers,
		SummaryFormat: *summaryFormat,
		Verbose:       *verbose,
		Help:          *help,
	}

	// Create and execute command
	cmd := commands.NewGenerateCommand(config, logger)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func initLogger(verbose bool) (*zap.Logger, error) {
	var zapCfg zap.Config
	if verbose {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		zapCfg = zap.NewProductionConfig()
		zapCfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return zapCfg.Build()
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
