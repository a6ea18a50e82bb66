package tsp

import (
	"sync/atomic"
	"time"

	"github.com/katalvlaran/tourgeo/pointset"
)

// Observer receives progress events from a single build.
// Hooks run synchronously on the building goroutine; keep them cheap.
// BuildTour and Solve call all three hooks; BruteForce has no seed or
// insertions and calls only OnComplete.
type Observer interface {
	// OnSeed is called once with the start node and its nearest neighbour.
	OnSeed(start, nearest pointset.Key)
	// OnInsert is called after each insertion; step counts from 1.
	OnInsert(step int, c Candidate)
	// OnComplete is called once after the last insertion.
	OnComplete(steps int, elapsed time.Duration)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Seed     func(start, nearest pointset.Key)
	Insert   func(step int, c Candidate)
	Complete func(steps int, elapsed time.Duration)
}

// OnSeed implements Observer.
func (f ObserverFuncs) OnSeed(start, nearest pointset.Key) {
	if f.Seed != nil {
		f.Seed(start, nearest)
	}
}

// OnInsert implements Observer.
func (f ObserverFuncs) OnInsert(step int, c Candidate) {
	if f.Insert != nil {
		f.Insert(step, c)
	}
}

// OnComplete implements Observer.
func (f ObserverFuncs) OnComplete(steps int, elapsed time.Duration) {
	if f.Complete != nil {
		f.Complete(steps, elapsed)
	}
}

// StepCounter is an Observer that tallies events. It may be shared across
// concurrent builds; counts are then aggregated.
type StepCounter struct {
	seeds   atomic.Int64
	inserts atomic.Int64
	builds  atomic.Int64
}

// OnSeed implements Observer.
func (s *StepCounter) OnSeed(_, _ pointset.Key) { s.seeds.Add(1) }

// OnInsert implements Observer.
func (s *StepCounter) OnInsert(_ int, _ Candidate) { s.inserts.Add(1) }

// OnComplete implements Observer.
func (s *StepCounter) OnComplete(_ int, _ time.Duration) { s.builds.Add(1) }

// Seeds returns the number of seeded builds. BruteForce runs count in
// Builds but not in Seeds.
func (s *StepCounter) Seeds() int64 { return s.seeds.Load() }

// Inserts returns the number of insertions.
func (s *StepCounter) Inserts() int64 { return s.inserts.Load() }

// Builds returns the number of completed builds.
func (s *StepCounter) Builds() int64 { return s.builds.Load() }

type nopObserver struct{}

func (nopObserver) OnSeed(_, _ pointset.Key)          {}
func (nopObserver) OnInsert(_ int, _ Candidate)       {}
func (nopObserver) OnComplete(_ int, _ time.Duration) {}
