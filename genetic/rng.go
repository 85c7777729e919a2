// Package genetic - RNG utilities shared by the evolution operators.
//
// This file centralizes deterministic random generation for the engine.
//
// Goals:
//   - Determinism: same seed ⇒ identical populations across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Independence: per-slot substreams so that parallel offspring
//     construction never contends on shared RNG state and never changes
//     the result.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Never share a *rand.Rand
//     across goroutines; derive one stream per population slot instead
//     (see deriveRNG), during setup rather than in the hot loop.
package genetic

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed using a SplitMix64-style avalanche (Vigna 2014 constants).
// Small input changes produce large, well-distributed output changes,
// which keeps per-slot substreams uncorrelated.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// deriveRNG creates an independent deterministic substream from base and
// a stream identifier. base.Int63() is consumed once so that successive
// derivations (e.g. one per generation) differ even for equal stream ids.
//
// Call during setup only; the returned stream is then private to one
// population slot.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// slotRNGs derives one independent RNG per population slot in [first, size).
// Derivation is strictly sequential over the base stream, so the resulting
// set depends only on the base state — not on how the slots are later
// scheduled across workers.
//
// Complexity: O(size−first) time and space.
func slotRNGs(base *rand.Rand, first, size int) []*rand.Rand {
	rngs := make([]*rand.Rand, size)

	var slot int
	for slot = first; slot < size; slot++ {
		rngs[slot] = deriveRNG(base, uint64(slot))
	}

	return rngs
}
