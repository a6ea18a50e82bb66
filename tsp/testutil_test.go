// Package tsp_test provides lightweight fixtures shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tourgeo/geometry"
	"github.com/katalvlaran/tourgeo/pointset"
	"github.com/katalvlaran/tourgeo/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// epsCost is the tolerance for cost comparisons after 1e-9 rounding.
	epsCost = 1e-9

	// seedDet is a deterministic seed for fixtures and seeded starts.
	seedDet = int64(42)
)

// square returns {1:(0,0), 2:(10,0), 3:(10,10), 4:(0,10)}.
func square() *pointset.PointSet {
	return pointset.New(map[pointset.Key]geometry.Point{
		1: {X: 0, Y: 0},
		2: {X: 10, Y: 0},
		3: {X: 10, Y: 10},
		4: {X: 0, Y: 10},
	})
}

// collinear returns {1:(0,0), 2:(5,0), 3:(10,0)}.
func collinear() *pointset.PointSet {
	return pointset.New(map[pointset.Key]geometry.Point{
		1: {X: 0, Y: 0},
		2: {X: 5, Y: 0},
		3: {X: 10, Y: 0},
	})
}

// circle places n points evenly on a circle of radius r.
func circle(n int, r float64) *pointset.PointSet {
	pts := make([]geometry.Point, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = geometry.Point{X: r * math.Cos(th), Y: r * math.Sin(th)}
	}
	return pointset.FromSlice(pts)
}

// cloud draws n uniform points in [0,100)² from a seeded source.
func cloud(n int, seed int64) *pointset.PointSet {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]geometry.Point, n)
	for i := range pts {
		pts[i] = geometry.Point{X: rng.Float64() * 100, Y: rng.Float64() * 100}
	}
	return pointset.FromSlice(pts)
}

// requireCycle asserts the structural tour invariants directly, without
// relying on tsp.ValidateTour: n edges, every key once as tail and head.
func requireCycle(t *testing.T, tour tsp.Tour, ps *pointset.PointSet) {
	t.Helper()
	require.Len(t, tour, ps.Len())

	tails := make(map[pointset.Key]int)
	heads := make(map[pointset.Key]int)
	for _, e := range tour {
		tails[e.From]++
		heads[e.To]++
	}
	for _, k := range ps.Keys() {
		require.Equal(t, 1, tails[k], "key %d as tail", k)
		require.Equal(t, 1, heads[k], "key %d as head", k)
	}
	require.NoError(t, tsp.ValidateTour(tour, ps))
}

// Repeat runs fn count times as subtests to surface hidden nondeterminism.
func Repeat(t *testing.T, count int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < count; i++ {
		t.Run("", fn)
	}
}
