// Package tsp_test validates tour utilities and cost evaluation.
package tsp_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/tourgeo/geometry"
	"github.com/katalvlaran/tourgeo/pointset"
	"github.com/katalvlaran/tourgeo/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// 1) Cost — tsp.TotalCost
//

// TestTotalCost_RotationAndReversal checks that cost depends only on the
// cycle, not on edge order or direction.
func TestTotalCost_RotationAndReversal(t *testing.T) {
	ps := cloud(25, seedDet)
	tour, err := tsp.BuildTour(ps, tsp.DefaultOptions())
	require.NoError(t, err)

	base, err := tsp.TotalCost(tour, ps)
	require.NoError(t, err)

	for k := -3; k <= len(tour)+3; k++ {
		rot := tsp.Rotate(tour, k)
		c, err := tsp.TotalCost(rot, ps)
		require.NoError(t, err)
		assert.InDelta(t, base, c, epsCost, "rotation %d", k)
		require.NoError(t, tsp.ValidateTour(rot, ps))
	}

	rev := tsp.Reverse(tour)
	require.NoError(t, tsp.ValidateTour(rev, ps))
	c, err := tsp.TotalCost(rev, ps)
	require.NoError(t, err)
	assert.InDelta(t, base, c, epsCost)
}

// TestTotalCost_Errors covers dangling keys, empty tours and overflow.
func TestTotalCost_Errors(t *testing.T) {
	ps := square()

	_, err := tsp.TotalCost(tsp.Tour{{1, 2}, {2, 77}}, ps)
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)

	_, err = tsp.TotalCost(tsp.Tour{{77, 1}}, ps)
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)

	_, err = tsp.TotalCost(nil, ps)
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)

	huge := pointset.FromSlice([]geometry.Point{{X: -math.MaxFloat64, Y: 0}, {X: math.MaxFloat64, Y: 0}})
	_, err = tsp.TotalCost(tsp.Tour{{1, 2}, {2, 1}}, huge)
	assert.ErrorIs(t, err, tsp.ErrDegenerateGeometry)
}

// TestTotalCost_TwoPoints is twice the segment length.
func TestTotalCost_TwoPoints(t *testing.T) {
	ps := pointset.FromSlice([]geometry.Point{{X: 0, Y: 0}, {X: 6, Y: 8}})
	c, err := tsp.TotalCost(tsp.Tour{{1, 2}, {2, 1}}, ps)
	require.NoError(t, err)
	assert.Equal(t, 20.0, c)
}

//
// 2) Validation — tsp.ValidateTour
//

func TestValidateTour_Rejects(t *testing.T) {
	ps := square()

	cases := []struct {
		name string
		tour tsp.Tour
	}{
		{"too short", tsp.Tour{{1, 2}, {2, 1}}},
		{"repeated tail", tsp.Tour{{1, 2}, {1, 3}, {3, 4}, {4, 1}}},
		{"repeated head", tsp.Tour{{1, 2}, {2, 3}, {3, 2}, {4, 1}}},
		{"two sub-cycles", tsp.Tour{{1, 2}, {2, 1}, {3, 4}, {4, 3}}},
		{"unknown key", tsp.Tour{{1, 2}, {2, 3}, {3, 9}, {9, 1}}},
		{"self loops", tsp.Tour{{1, 1}, {2, 2}, {3, 3}, {4, 4}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tsp.ValidateTour(tc.tour, ps), tsp.ErrInvalidTour)
		})
	}

	assert.ErrorIs(t, tsp.ValidateTour(tsp.Tour{{1, 2}, {2, 1}}, nil), tsp.ErrInvalidTour)
}

func TestValidateTour_AcceptsAnyEdgeOrder(t *testing.T) {
	assert.NoError(t, tsp.ValidateTour(tsp.Tour{{3, 4}, {1, 2}, {4, 1}, {2, 3}}, square()))
}

//
// 3) Order / Rotate / Reverse / DebugString
//

func TestOrder(t *testing.T) {
	order, err := tsp.Order(tsp.Tour{{3, 4}, {1, 2}, {4, 1}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, []pointset.Key{3, 4, 1, 2}, order)

	_, err = tsp.Order(tsp.Tour{{1, 2}, {2, 1}, {3, 4}, {4, 3}})
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)

	_, err = tsp.Order(nil)
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)
}

func TestRotateReverseCopy(t *testing.T) {
	tour := tsp.Tour{{1, 2}, {2, 3}, {3, 1}}

	assert.Equal(t, tsp.Tour{{2, 3}, {3, 1}, {1, 2}}, tsp.Rotate(tour, 1))
	assert.Equal(t, tsp.Tour{{3, 1}, {1, 2}, {2, 3}}, tsp.Rotate(tour, -1))
	assert.Equal(t, tour, tsp.Rotate(tour, 3))
	assert.Equal(t, tsp.Tour{}, tsp.Rotate(nil, 2))

	assert.Equal(t, tsp.Tour{{1, 3}, {3, 2}, {2, 1}}, tsp.Reverse(tour))

	cp := tsp.CopyTour(tour)
	cp[0] = tsp.Edge{From: 9, To: 9}
	assert.Equal(t, tsp.Edge{From: 1, To: 2}, tour[0])
	assert.Nil(t, tsp.CopyTour(nil))
}

func TestDebugString(t *testing.T) {
	assert.Equal(t, "[1 2 3 | 1]", tsp.DebugString(tsp.Tour{{1, 2}, {2, 3}, {3, 1}}))
	assert.Equal(t, "[{1 2} {2 1} {3 3}]", tsp.DebugString(tsp.Tour{{1, 2}, {2, 1}, {3, 3}}))
}
