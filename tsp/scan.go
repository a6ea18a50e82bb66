package tsp

import (
	"math"

	"github.com/katalvlaran/tourgeo/geometry"
	"github.com/katalvlaran/tourgeo/pointset"
)

// Scanner finds the cheapest insertion for the current tour.
//
// Contract:
//   - Best returns the (edge, node) pair minimizing the squared
//     point-to-segment distance, with ties resolved to the first pair in
//     edge-major, node-minor order.
//   - ok is false only when tour or unplaced is empty.
//   - Implementations must not modify tour or unplaced.
//
// LinearScan is the reference implementation; an indexed variant may
// replace it without changing the resulting Tour.
type Scanner interface {
	Best(ps *pointset.PointSet, tour Tour, unplaced []pointset.Key) (c Candidate, ok bool)
}

// LinearScan evaluates every (edge, node) pair.
//
// Complexity: O(|tour|·|unplaced|) per call.
type LinearScan struct{}

// Best implements Scanner.
func (LinearScan) Best(ps *pointset.PointSet, tour Tour, unplaced []pointset.Key) (Candidate, bool) {
	if len(tour) == 0 || len(unplaced) == 0 {
		return Candidate{}, false
	}

	// Resolve unplaced coordinates once; they are read for every edge.
	// Sets too large or too small for the squared kernel are rescaled by a
	// power of two, which keeps the comparison order exact.
	e := geometry.ScaleExponent(ps.Extent())
	at := func(k pointset.Key) geometry.Point {
		p, _ := ps.At(k)
		return geometry.Scale(p, -e)
	}
	nodes := make([]geometry.Point, len(unplaced))
	for j, k := range unplaced {
		nodes[j] = at(k)
	}

	best := Candidate{Distance: math.Inf(1), EdgeIndex: -1}
	var (
		i, j int
		d    float64
	)
	for i = 0; i < len(tour); i++ {
		a := at(tour[i].From)
		b := at(tour[i].To)
		for j = 0; j < len(unplaced); j++ {
			d = geometry.SquaredDistanceToSegment(a, b, nodes[j])
			if d < best.Distance {
				best = Candidate{Node: unplaced[j], Edge: tour[i], EdgeIndex: i, Distance: d}
			}
		}
	}

	// Unreachable for finite coordinates.
	if best.EdgeIndex < 0 {
		best = Candidate{Node: unplaced[0], Edge: tour[0], EdgeIndex: 0, Distance: math.Inf(1)}
	}
	best.Distance = math.Ldexp(best.Distance, 2*e)
	return best, true
}
