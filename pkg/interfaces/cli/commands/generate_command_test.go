package commands

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		SKUCount:      3,
		Start:         "2023-01-01",
		End:           "2023-01-10",
		Seed:          42,
		Outfile:       filepath.Join(t.TempDir(), "demand.csv"),
		PostgresTable: "demand_history",
		SummaryFormat: "text",
	}
}

func execute(t *testing.T, cfg Config) (*bytes.Buffer, error) {
	t.Helper()
	cmd := NewGenerateCommand(cfg, nil)
	var buf bytes.Buffer
	cmd.out = &buf
	return &buf, cmd.Execute(context.Background())
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestGenerateCommand_WritesDemandHistory(t *testing.T) {
	cfg := baseConfig(t)
	cfg.CatalogFile = filepath.Join(filepath.Dir(cfg.Outfile), "catalog.csv")

	out, err := execute(t, cfg)
	require.NoError(t, err)

	rows := readCSVFile(t, cfg.Outfile)
	require.Len(t, rows, 1+3*10, "header plus one row per SKU and day")
	assert.Equal(t, []string{"Demand Date", "Material", "Demand Size"}, rows[0])
	assert.Equal(t, "2023-01-01", rows[1][0])
	assert.Equal(t, "SKU-0001", rows[1][1])
	assert.Equal(t, "2023-01-10", rows[len(rows)-1][0])
	assert.Equal(t, "SKU-0003", rows[len(rows)-1][1])

	catalog := readCSVFile(t, cfg.CatalogFile)
	require.Len(t, catalog, 1+3)

	assert.Contains(t, out.String(), "Demand Generation Summary")
}

func TestGenerateCommand_DeterministicAcrossRuns(t *testing.T) {
	first := baseConfig(t)
	second := baseConfig(t)

	_, err := execute(t, first)
	require.NoError(t, err)
	_, err = execute(t, second)
	require.NoError(t, err)

	a, err := os.ReadFile(first.Outfile)
	require.NoError(t, err)
	b, err := os.ReadFile(second.Outfile)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same seed must produce byte-identical output")
}

func TestGenerateCommand_WorkerCountDoesNotChangeOutput(t *testing.T) {
	serial := baseConfig(t)
	serial.SKUCount = 20
	serial.Workers = 1
	serial.CatalogFile = filepath.Join(filepath.Dir(serial.Outfile), "catalog.csv")
	parallel := baseConfig(t)
	parallel.SKUCount = 20
	parallel.Workers = 8
	parallel.CatalogFile = filepath.Join(filepath.Dir(parallel.Outfile), "catalog.csv")

	_, err := execute(t, serial)
	require.NoError(t, err)
	_, err = execute(t, parallel)
	require.NoError(t, err)

	a, err := os.ReadFile(serial.Outfile)
	require.NoError(t, err)
	b, err := os.ReadFile(parallel.Outfile)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	aCat, err := os.ReadFile(serial.CatalogFile)
	require.NoError(t, err)
	bCat, err := os.ReadFile(parallel.CatalogFile)
	require.NoError(t, err)
	assert.Equal(t, aCat, bCat, "catalog must not depend on worker count either")
}

func TestGenerateCommand_JSONSummary(t *testing.T) {
	cfg := baseConfig(t)
	cfg.SummaryFormat = "json"

	out, err := execute(t, cfg)
	require.NoError(t, err)

	var doc struct {
		RunID string `json:"run_id"`
		SKUs  int    `json:"skus"`
		Days  int    `json:"days"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.NotEmpty(t, doc.RunID)
	assert.Equal(t, 3, doc.SKUs)
	assert.Equal(t, 10, doc.Days)
}

func TestGenerateCommand_WritesReport(t *testing.T) {
	cfg := baseConfig(t)
	cfg.ReportFile = filepath.Join(filepath.Dir(cfg.Outfile), "report.xlsx")

	_, err := execute(t, cfg)
	require.NoError(t, err)

	info, err := os.Stat(cfg.ReportFile)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestGenerateCommand_Help(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Help = true

	out, err := execute(t, cfg)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "USAGE:")
	assert.Contains(t, out.String(), "--sku <N>")

	_, statErr := os.Stat(cfg.Outfile)
	assert.True(t, os.IsNotExist(statErr), "help must not generate anything")
}

func TestGenerateCommand_RejectsBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "malformed start date",
			mutate:  func(c *Config) { c.Start = "01/01/2023" },
			wantErr: "invalid --start date",
		},
		{
			name:    "malformed end date",
			mutate:  func(c *Config) { c.End = "2023-13-01" },
			wantErr: "invalid --end date",
		},
		{
			name:    "start after end",
			mutate:  func(c *Config) { c.Start = "2023-02-01"; c.End = "2023-01-01" },
			wantErr: "is after end date",
		},
		{
			name:    "zero sku count",
			mutate:  func(c *Config) { c.SKUCount = 0 },
			wantErr: "sku count must be positive",
		},
		{
			name:    "unknown summary format",
			mutate:  func(c *Config) { c.SummaryFormat = "yaml" },
			wantErr: "unsupported summary format: yaml",
		},
		{
			name:    "missing profile file",
			mutate:  func(c *Config) { c.ProfileFile = "does-not-exist.yaml" },
			wantErr: "failed to read profile file",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig(t)
			tt.mutate(&cfg)

			_, err := execute(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)

			_, statErr := os.Stat(cfg.Outfile)
			assert.True(t, os.IsNotExist(statErr), "rejected configs must not leave output behind")
		})
	}
}

func TestNewGenerateCommand_ZeroSeedIsReplaced(t *testing.T) {
	cfg := baseConfig(t)
	cfg.Seed = 0
	cmd := NewGenerateCommand(cfg, nil)
	assert.NotZero(t, cmd.seed)
}
