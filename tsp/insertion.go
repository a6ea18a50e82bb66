// Package tsp - nearest-insertion tour construction.
//
// States of one build: Empty → Seeded → Growing → Complete.
//   - Empty → Seeded: validate input, pick the start, join it with its
//     nearest neighbour into the 2-edge cycle (s→m, m→s).
//   - Growing: ask the Scanner for the cheapest (edge, node) pair, split the
//     edge through the node with ExtendEdge, drop the node from unplaced.
//   - Complete: unplaced is empty; the edge list is returned.
//
// All state (tour, unplaced) is allocated per call. Nothing is returned on
// failure.
package tsp

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/tourgeo/geometry"
	"github.com/katalvlaran/tourgeo/pointset"
)

// ExtendEdge splits e = (a→b) through n, returning (a→n) to replace e and
// (n→b) to append to the tour. The cycle stays closed: a still reaches b,
// now via n.
//
// Complexity: O(1).
func ExtendEdge(e Edge, n pointset.Key) (replaced, appended Edge) {
	return Edge{From: e.From, To: n}, Edge{From: n, To: e.To}
}

// BuildTour constructs a closed tour over every key of ps with the
// nearest-insertion heuristic.
//
// Contracts:
//   - ps.Len() ≥ 2, else ErrEmptyInput.
//   - all coordinates finite, else ErrDegenerateGeometry.
//   - StartFixed requires opts.StartKey ∈ ps, else ErrStartNotFound.
//   - opts.TimeLimit > 0 aborts with ErrTimeLimit once exceeded.
//
// The result has exactly ps.Len() edges and passes ValidateTour.
// Repeated calls with equal inputs return identical tours.
//
// Complexity: O(n³) time with LinearScan, O(n) space.
func BuildTour(ps *pointset.PointSet, opts Options) (Tour, error) {
	tour, _, err := buildTour(ps, opts, time.Now())
	return tour, err
}

// buildTour is BuildTour that also reports the insertion count.
func buildTour(ps *pointset.PointSet, opts Options, begin time.Time) (Tour, int, error) {
	if err := validateInput(ps, opts); err != nil {
		return nil, 0, err
	}

	var (
		n        = ps.Len()
		obs      = opts.observer()
		scan     = opts.scanner()
		start    = pickStart(ps, opts)
		nearest  = nearestNeighbor(ps, start)
		tour     = make(Tour, 0, n)
		unplaced = make([]pointset.Key, 0, n-2)
	)

	// Seeded.
	for _, k := range ps.Keys() {
		if k != start && k != nearest {
			unplaced = append(unplaced, k)
		}
	}
	tour = append(tour, Edge{From: start, To: nearest}, Edge{From: nearest, To: start})
	obs.OnSeed(start, nearest)

	// Growing.
	var (
		step int
		c    Candidate
		ok   bool
	)
	for len(unplaced) > 0 {
		if opts.TimeLimit > 0 && time.Since(begin) > opts.TimeLimit {
			return nil, step, fmt.Errorf("%w: %d of %d nodes placed", ErrTimeLimit, n-len(unplaced), n)
		}

		c, ok = scan.Best(ps, tour, unplaced)
		if !ok || c.EdgeIndex < 0 || c.EdgeIndex >= len(tour) || tour[c.EdgeIndex] != c.Edge {
			return nil, step, fmt.Errorf("%w: scanner returned no usable candidate", ErrInvalidTour)
		}
		idx := indexOfKey(unplaced, c.Node)
		if idx < 0 {
			return nil, step, fmt.Errorf("%w: scanner picked placed node %d", ErrInvalidTour, c.Node)
		}

		var added Edge
		tour[c.EdgeIndex], added = ExtendEdge(c.Edge, c.Node)
		tour = append(tour, added)
		unplaced = append(unplaced[:idx], unplaced[idx+1:]...)

		step++
		obs.OnInsert(step, c)
	}

	// Complete.
	obs.OnComplete(step, time.Since(begin))
	return tour, step, nil
}

// nearestNeighbor returns the key closest to from by plain distance,
// ties broken by ascending key. Requires ps.Len() ≥ 2.
//
// Complexity: O(n).
func nearestNeighbor(ps *pointset.PointSet, from pointset.Key) pointset.Key {
	origin, _ := ps.At(from)

	var (
		best     pointset.Key
		bestDist = math.Inf(1)
		found    bool
	)
	for _, k := range ps.Keys() {
		if k == from {
			continue
		}
		p, _ := ps.At(k)
		d := geometry.Distance(origin, p)
		if !found || d < bestDist {
			best, bestDist, found = k, d, true
		}
	}
	return best
}

// indexOfKey returns the position of k in keys, or -1.
func indexOfKey(keys []pointset.Key, k pointset.Key) int {
	for i, v := range keys {
		if v == k {
			return i
		}
	}
	return -1
}
