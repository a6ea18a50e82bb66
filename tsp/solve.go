// Package tsp - entry point combining construction, costing and timing.
package tsp

import (
	"time"

	"github.com/katalvlaran/tourgeo/pointset"
)

// Solve builds a nearest-insertion tour and evaluates it.
//
// Result.Steps is the number of insertions (ps.Len()-2 on success) and
// Result.Elapsed covers construction and costing. Errors are those of
// BuildTour and TotalCost; no partial Result is returned.
//
// Complexity: O(n³) (see BuildTour).
func Solve(ps *pointset.PointSet, opts Options) (Result, error) {
	begin := time.Now()

	tour, steps, err := buildTour(ps, opts, begin)
	if err != nil {
		return Result{}, err
	}
	cost, err := TotalCost(tour, ps)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Tour:    tour,
		Cost:    cost,
		Steps:   steps,
		Elapsed: time.Since(begin),
	}, nil
}
