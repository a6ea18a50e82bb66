package tsp_test

import (
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/tourgeo/pointset"
	"github.com/katalvlaran/tourgeo/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestObserverFuncs_Sequence records the event stream of the square build.
func TestObserverFuncs_Sequence(t *testing.T) {
	var (
		seeds    [][2]pointset.Key
		inserts  []tsp.Candidate
		steps    []int
		complete int
	)
	opts := tsp.FixedStart(1)
	opts.Observer = tsp.ObserverFuncs{
		Seed: func(s, n pointset.Key) { seeds = append(seeds, [2]pointset.Key{s, n}) },
		Insert: func(step int, c tsp.Candidate) {
			steps = append(steps, step)
			inserts = append(inserts, c)
		},
		Complete: func(n int, _ time.Duration) { complete = n },
	}

	res, err := tsp.Solve(square(), opts)
	require.NoError(t, err)

	assert.Equal(t, [][2]pointset.Key{{1, 2}}, seeds)
	assert.Equal(t, []int{1, 2}, steps)
	require.Len(t, inserts, 2)
	assert.Equal(t, pointset.Key(3), inserts[0].Node)
	assert.Equal(t, tsp.Edge{From: 1, To: 2}, inserts[0].Edge)
	assert.Equal(t, pointset.Key(4), inserts[1].Node)
	assert.Equal(t, tsp.Edge{From: 1, To: 3}, inserts[1].Edge)
	assert.InDelta(t, 50.0, inserts[1].Distance, 1e-9)
	assert.Equal(t, 2, complete)
	assert.Equal(t, 2, res.Steps)
}

// TestObserverFuncs_NilFields must not panic.
func TestObserverFuncs_NilFields(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Observer = tsp.ObserverFuncs{}
	_, err := tsp.Solve(square(), opts)
	assert.NoError(t, err)
}

// TestStepCounter_Concurrent shares one counter across parallel builds on
// independent point sets; every build must still be correct and the
// counter must aggregate exactly.
func TestStepCounter_Concurrent(t *testing.T) {
	const (
		workers = 8
		n       = 20
	)
	var (
		counter tsp.StepCounter
		wg      sync.WaitGroup
		results = make([]tsp.Result, workers)
		errs    = make([]error, workers)
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			opts := tsp.DefaultOptions()
			opts.Observer = &counter
			results[w], errs[w] = tsp.Solve(cloud(n, int64(w+1)), opts)
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		require.NoError(t, errs[w])
		requireCycle(t, results[w].Tour, cloud(n, int64(w+1)))

		// Same input solved alone gives the same tour.
		alone, err := tsp.Solve(cloud(n, int64(w+1)), tsp.DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, alone.Tour, results[w].Tour)
	}
	assert.Equal(t, int64(workers), counter.Seeds())
	assert.Equal(t, int64(workers*(n-2)), counter.Inserts())
	assert.Equal(t, int64(workers), counter.Builds())
}

// TestSharedPointSet_Concurrent solves one PointSet from many goroutines.
func TestSharedPointSet_Concurrent(t *testing.T) {
	ps := cloud(25, seedDet)
	want, err := tsp.Solve(ps, tsp.DefaultOptions())
	require.NoError(t, err)

	var wg sync.WaitGroup
	got := make([]tsp.Result, 6)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], _ = tsp.Solve(ps, tsp.DefaultOptions())
		}(i)
	}
	wg.Wait()

	for i := range got {
		assert.Equal(t, want.Tour, got[i].Tour)
		assert.Equal(t, want.Cost, got[i].Cost)
	}
}

// TestStepCounter_BruteForceCountsBuildOnly shares one counter between the
// heuristic and the exhaustive solver, which reports only completion.
func TestStepCounter_BruteForceCountsBuildOnly(t *testing.T) {
	var counter tsp.StepCounter
	opts := tsp.DefaultOptions()
	opts.Observer = &counter

	_, err := tsp.Solve(square(), opts)
	require.NoError(t, err)
	_, err = tsp.BruteForce(square(), opts)
	require.NoError(t, err)

	assert.Equal(t, int64(1), counter.Seeds())
	assert.Equal(t, int64(2), counter.Inserts())
	assert.Equal(t, int64(2), counter.Builds())
}
