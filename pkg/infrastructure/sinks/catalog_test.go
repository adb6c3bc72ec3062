package sinks

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sparesim/pkg/domain/entities"
)

func TestWriteCatalog_RoundTrip(t *testing.T) {
	lumpyParams, err := entities.NewParameterSet(0.02, 4.0, 1.5)
	require.NoError(t, err)
	require.Equal(t, entities.NegBinomialSize, lumpyParams.Dist)

	smoothParams, err := entities.NewParameterSet(0.9, 3.0, 0.3)
	require.NoError(t, err)
	require.Equal(t, entities.PoissonSize, smoothParams.Dist)

	aging, err := entities.NewAgingProfile(2.0, 0.1)
	require.NoError(t, err)

	skus := []entities.SKU{
		{
			Index:        0,
			ID:           entities.MaterialIDForIndex(0),
			Category:     entities.Lumpy,
			Params:       lumpyParams,
			Aging:        aging,
			UnitCost:     decimal.NewFromFloat(12.5),
			LeadTimeDays: 30,
		},
		{
			Index:        1,
			ID:           entities.MaterialIDForIndex(1),
			Category:     entities.Smooth,
			Params:       smoothParams,
			Aging:        aging,
			UnitCost:     decimal.NewFromFloat(249.99),
			LeadTimeDays: 7,
		},
	}

	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, WriteCatalog(path, skus))

	rows := readCSV(t, path)
	require.Len(t, rows, 3)
	assert.Equal(t, catalogHeader, rows[0])

	lumpy := rows[1]
	assert.Equal(t, "SKU-0001", lumpy[0])
	assert.Equal(t, "lumpy", lumpy[1])
	assert.Equal(t, "NegBinomial", lumpy[5])
	assert.NotEmpty(t, lumpy[6])
	assert.NotEmpty(t, lumpy[7])
	assert.Equal(t, "12.50", lumpy[10])
	assert.Equal(t, "30", lumpy[11])

	smooth := rows[2]
	assert.Equal(t, "SKU-0002", smooth[0])
	assert.Equal(t, "smooth", smooth[1])
	assert.Equal(t, "Poisson", smooth[5])
	assert.Empty(t, smooth[6])
	assert.Empty(t, smooth[7])
	assert.Equal(t, "249.99", smooth[10])
	assert.Equal(t, "7", smooth[11])
}

func TestWriteCatalog_UnwritablePath(t *testing.T) {
	err := WriteCatalog(filepath.Join(t.TempDir(), "missing", "catalog.csv"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create catalog file")
}
