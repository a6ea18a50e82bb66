// Package tsp — tour cost evaluation.
//
// Design:
//   - Strict sentinels: unknown keys ⇒ ErrInvalidTour, a sum beyond float64
//     range ⇒ ErrDegenerateGeometry.
//   - Stable summation: rounded to 1e-9 so rotations and reversals of the
//     same cycle report the same cost across platforms.
//
// Complexity:
//   - O(n) time for a tour of n edges, O(1) extra space.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tourgeo/geometry"
	"github.com/katalvlaran/tourgeo/pointset"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TotalCost sums the Euclidean length of every edge of t.
//
// Contract:
//   - t is non-empty, else ErrInvalidTour.
//   - every edge endpoint is a key of ps, else ErrInvalidTour.
//   - the sum is finite, else ErrDegenerateGeometry.
//
// TotalCost does not check that t is a single cycle; see ValidateTour.
//
// Complexity: O(n).
func TotalCost(t Tour, ps *pointset.PointSet) (float64, error) {
	if len(t) == 0 {
		return 0, fmt.Errorf("%w: empty tour", ErrInvalidTour)
	}

	var sum float64
	for i, e := range t {
		w, err := edgeLength(ps, e)
		if err != nil {
			return 0, fmt.Errorf("edge %d: %w", i, err)
		}
		sum += w
	}
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, fmt.Errorf("%w: tour length exceeds float64 range", ErrDegenerateGeometry)
	}

	return round1e9(sum), nil
}

// edgeLength returns the length of e with strict key validation.
//
// Complexity: O(1).
func edgeLength(ps *pointset.PointSet, e Edge) (float64, error) {
	a, ok := ps.At(e.From)
	if !ok {
		return 0, fmt.Errorf("%w: unknown key %d", ErrInvalidTour, e.From)
	}
	b, ok := ps.At(e.To)
	if !ok {
		return 0, fmt.Errorf("%w: unknown key %d", ErrInvalidTour, e.To)
	}
	return geometry.Distance(a, b), nil
}

// roundLimit is the magnitude above which float64 spacing already exceeds
// 1e-9 and rounding is the identity.
const roundLimit = (1 << 53) / roundScale

// relBits is the mantissa precision kept for costs below 1 (2^-30 ≈ 9.3e-10
// relative), so tiny tours do not round to zero.
const relBits = 30

// round1e9 returns x rounded to 1e-9 absolute precision, or to 2^-30
// relative precision when |x| < 1.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	ax := math.Abs(x)
	switch {
	case ax == 0 || ax >= roundLimit:
		return x
	case ax < 1:
		_, e := math.Frexp(x)
		return math.Ldexp(math.Round(math.Ldexp(x, relBits-e)), e-relBits)
	}
	return math.Round(x*roundScale) / roundScale
}
