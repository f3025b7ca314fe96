// Package knows - RNG utilities for the generator.
//
// This file centralizes deterministic random generation for the whole
// pipeline.
//
// Goals:
//   - Determinism: same seed ⇒ identical graphs across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden
//     anywhere.
//   - Performance: O(1) helpers, O(n) shuffles, no hidden allocations.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. A Generate call owns its
//     RNG exclusively; use DeriveSeed to create independent streams for
//     auxiliary work such as population synthesis.
package knows

import "math/rand"

// NewRNG returns a deterministic *rand.Rand seeded verbatim. Both
// invocation streams and derived auxiliary streams go through here so
// no other source can sneak in.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new
// 64-bit seed, so auxiliary streams (population synthesis, test
// fixtures) stay decorrelated from the generator's own stream.
//
// The constants are the canonical SplitMix64 multipliers/finalizer
// (Vigna 2014): strong bit diffusion, so small input changes produce
// well-distributed output changes.
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// shuffleInts performs an in-place Fisher–Yates shuffle of a using
// rng. Complexity: O(n) time, O(1) extra space.
func shuffleInts(a []int, rng *rand.Rand) {
	for i := len(a) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
