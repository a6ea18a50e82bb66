// Package tsp - RNG utilities for start-node selection.
//
// Goals:
//   - Determinism: same seed ⇒ same start node across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//
// Concurrency:
//   - A fresh *rand.Rand is created per call, so concurrent solves never
//     share RNG state.
package tsp

import (
	"math/rand"

	"github.com/katalvlaran/tourgeo/pointset"
)

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// pickStart resolves the start key for ps under opts.
// Assumes validateInput has succeeded (ps non-empty, fixed key present).
//
// Complexity: O(n) for the key copy.
func pickStart(ps *pointset.PointSet, opts Options) pointset.Key {
	keys := ps.Keys()
	switch opts.Start {
	case StartFixed:
		return opts.StartKey
	case StartSeeded:
		return keys[rngFromSeed(opts.Seed).Intn(len(keys))]
	default:
		return keys[0]
	}
}
