// Package tsp - exhaustive reference solver.
//
// BruteForce enumerates every visiting order with the smallest key fixed
// in front, (n-1)! orders in total, and keeps the cheapest. It exists to
// measure the heuristic against the optimum on tiny inputs.
package tsp

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/tourgeo/geometry"
	"github.com/katalvlaran/tourgeo/pointset"
)

// MaxBruteForceNodes bounds BruteForce: 9! ≈ 3.6e5 orders.
const MaxBruteForceNodes = 10

// BruteForce returns an optimal tour of ps.
//
// Contracts:
//   - 2 ≤ ps.Len() ≤ MaxBruteForceNodes (ErrEmptyInput / ErrTooLarge).
//   - finite coordinates (ErrDegenerateGeometry).
//   - opts.TimeLimit is honoured between orders (ErrTimeLimit).
//   - start policy fields are ignored; the cycle is reported from the
//     smallest key. Ties keep the first order in lexicographic sequence.
//
// Result.Steps is the number of orders evaluated. Of opts.Observer only
// OnComplete is called, with the same step count.
//
// Complexity: O(n!) time, O(n²) space for the distance table.
func BruteForce(ps *pointset.PointSet, opts Options) (Result, error) {
	begin := time.Now()

	if err := validateInput(ps, opts); err != nil {
		return Result{}, err
	}
	n := ps.Len()
	if n > MaxBruteForceNodes {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, MaxBruteForceNodes)
	}

	keys := ps.Keys()
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		pi, _ := ps.At(keys[i])
		for j := range dist[i] {
			pj, _ := ps.At(keys[j])
			dist[i][j] = geometry.Distance(pi, pj)
		}
	}

	// perm[0] stays 0; the rest is permuted lexicographically.
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	best := make([]int, n)
	copy(best, perm)
	bestCost := math.Inf(1)
	steps := 0

	for {
		if opts.TimeLimit > 0 && time.Since(begin) > opts.TimeLimit {
			return Result{}, fmt.Errorf("%w: after %d orders", ErrTimeLimit, steps)
		}
		steps++
		if c := cycleLength(dist, perm); c < bestCost {
			bestCost = c
			copy(best, perm)
		}
		if !nextPermutation(perm[1:]) {
			break
		}
	}

	tour := make(Tour, n)
	for i := 0; i < n; i++ {
		tour[i] = Edge{From: keys[best[i]], To: keys[best[(i+1)%n]]}
	}
	cost, err := TotalCost(tour, ps)
	if err != nil {
		return Result{}, err
	}
	elapsed := time.Since(begin)
	opts.observer().OnComplete(steps, elapsed)

	return Result{Tour: tour, Cost: cost, Steps: steps, Elapsed: elapsed}, nil
}

// cycleLength sums dist along the closed order perm.
func cycleLength(dist [][]float64, perm []int) float64 {
	var s float64
	n := len(perm)
	for i := 0; i < n; i++ {
		s += dist[perm[i]][perm[(i+1)%n]]
	}
	return s
}

// nextPermutation rearranges a into its lexicographic successor and
// reports false when a was the last permutation.
//
// Complexity: O(len(a)).
func nextPermutation(a []int) bool {
	i := len(a) - 2
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(a) - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	for l, r := i+1, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}
	return true
}
