// Package simulation generates synthetic spare-parts demand histories.
// Every SKU draws from its own deterministic random substream, so output
// depends only on the global seed and the configuration, never on worker
// count or scheduling.
package simulation

import "math/rand"

// Stream tags keep independent draw purposes from colliding on the same
// substream. Demand draws and catalog attribute draws must never share
// state: adding a catalog field must not disturb the demand series.
const (
	demandStream  uint64 = 0x64656d616e640a01
	catalogStream uint64 = 0x636174616c6f6702
)

// splitmix64 is the finalizer from the SplitMix64 generator. One round
// disperses low-entropy inputs (small seeds, sequential indexes) across
// the full 64-bit space.
func splitmix64(x uint64) uint64 {
	x += 0x9E3779B97F4A7C15
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	return x ^ (x >> 31)
}

// subSeed derives the seed for one SKU's substream from the global seed,
// the SKU index, and a stream tag. The derivation is pure arithmetic and
// part of the reproducibility contract.
func subSeed(seed int64, index int, stream uint64) int64 {
	h := splitmix64(uint64(seed) ^ stream)
	h = splitmix64(h + uint64(index))
	return int64(h)
}

// newStream returns the deterministic generator for one SKU and purpose.
func newStream(seed int64, index int, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(subSeed(seed, index, stream)))
}
