// SPDX-License-Identifier: MIT

// Package perturb - RNG utilities.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across runs.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every call builds its own.
package perturb

import "math/rand"

// maxRedraws bounds how often a zero-norm noise draw is drawn again before
// falling back to the first unit basis vector.
const maxRedraws = 8

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: the seed is used verbatim, 0 included.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer. Distinct streams of one parent give
// decorrelated generators, e.g. for multi-seed sweeps.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// unitNoise returns n standard-normal samples scaled to unit Euclidean norm.
// A draw whose norm is zero is replaced by the next draw of the same stream;
// after maxRedraws attempts e_0 is returned. n must be ≥ 1.
//
// Complexity: O(n) expected.
func unitNoise(n int, rng *rand.Rand) []float64 {
	noise := make([]float64, n)
	var (
		attempt, i int
		norm       float64
	)
	for attempt = 0; attempt < maxRedraws; attempt++ {
		for i = range noise {
			noise[i] = rng.NormFloat64()
		}
		if norm = euclidean(noise); norm > 0 {
			for i = range noise {
				noise[i] /= norm
			}

			return noise
		}
	}
	for i = range noise {
		noise[i] = 0
	}
	noise[0] = 1

	return noise
}
