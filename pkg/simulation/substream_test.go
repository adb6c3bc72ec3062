package simulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubSeed_IsDeterministic(t *testing.T) {
	for index := 0; index < 50; index++ {
		first := subSeed(42, index, demandStream)
		second := subSeed(42, index, demandStream)
		assert.Equal(t, first, second, "index %d", index)
	}
}

func TestSubSeed_DistinctAcrossIndexes(t *testing.T) {
	seen := make(map[int64]int)
	for index := 0; index < 10000; index++ {
		seed := subSeed(42, index, demandStream)
		if prev, ok := seen[seed]; ok {
			t.Fatalf("indexes %d and %d collide on substream seed %d", prev, index, seed)
		}
		seen[seed] = index
	}
}

func TestSubSeed_DistinctAcrossStreams(t *testing.T) {
	for index := 0; index < 100; index++ {
		demand := subSeed(42, index, demandStream)
		catalog := subSeed(42, index, catalogStream)
		assert.NotEqual(t, demand, catalog, "index %d", index)
	}
}

func TestSubSeed_DependsOnGlobalSeed(t *testing.T) {
	assert.NotEqual(t, subSeed(1, 0, demandStream), subSeed(2, 0, demandStream))
}

func TestSplitmix64_DispersesSequentialInputs(t *testing.T) {
	// Sequential inputs must not produce sequential outputs; the
	// finalizer has to spread them across the 64-bit space.
	var prev uint64
	for x := uint64(0); x < 100; x++ {
		out := splitmix64(x)
		require.NotEqual(t, x, out)
		if x > 0 {
			diff := out - prev
			assert.NotEqual(t, uint64(1), diff, "outputs for %d and %d are adjacent", x-1, x)
		}
		prev = out
	}
}

func TestNewStream_SameSeedSameDraws(t *testing.T) {
	a := newStream(42, 7, demandStream)
	b := newStream(42, 7, demandStream)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64())
	}
}
