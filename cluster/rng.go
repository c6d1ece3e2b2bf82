// Package cluster - RNG utilities shared by the clustering strategies.
//
// This file centralizes deterministic random generation for centroid
// initialization and any derived stochastic step.
//
// Goals:
//   - Determinism: same seed ⇒ identical results on one platform.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: deriveRNG creates decorrelated substreams so Spectral's
//     inner K-means does not consume the caller's primary stream.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; each operation builds its own.
package cluster

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64-style avalanche, eliminating correlations between
// substreams.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64 finalizer; see Vigna 2014 for the constants.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic RNG stream from a caller
// seed and a stream identifier. Used by Spectral to seed its inner K-means
// without aliasing the graph-construction stream.
//
// Complexity: O(1).
func deriveRNG(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}
