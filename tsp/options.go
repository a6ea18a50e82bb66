package tsp

import (
	"fmt"
	"time"

	"github.com/katalvlaran/tourgeo/pointset"
)

// StartPolicy selects the seed node of the tour.
type StartPolicy int

const (
	// StartFirstKey uses the smallest key of the point set.
	StartFirstKey StartPolicy = iota

	// StartFixed uses Options.StartKey.
	StartFixed

	// StartSeeded draws the key from an RNG seeded with Options.Seed
	// (seed 0 selects a fixed default stream).
	StartSeeded
)

// String implements fmt.Stringer.
func (p StartPolicy) String() string {
	switch p {
	case StartFirstKey:
		return "first"
	case StartFixed:
		return "fixed"
	case StartSeeded:
		return "seeded"
	default:
		return fmt.Sprintf("StartPolicy(%d)", int(p))
	}
}

// Options configures BuildTour, Solve and BruteForce.
//
// Fields:
//   - Start, StartKey, Seed — start-node policy (see StartPolicy).
//   - TimeLimit — checked once per insertion; 0 disables the check.
//   - Scanner — candidate search; nil means LinearScan.
//   - Observer — instrumentation hooks; nil means none.
type Options struct {
	Start     StartPolicy
	StartKey  pointset.Key
	Seed      int64
	TimeLimit time.Duration
	Scanner   Scanner
	Observer  Observer
}

// DefaultOptions returns deterministic defaults: smallest key as start,
// no time limit, LinearScan, no observer.
func DefaultOptions() Options {
	return Options{
		Start:   StartFirstKey,
		Scanner: LinearScan{},
	}
}

// FixedStart returns DefaultOptions with the start pinned to k.
func FixedStart(k pointset.Key) Options {
	o := DefaultOptions()
	o.Start = StartFixed
	o.StartKey = k
	return o
}

// SeededStart returns DefaultOptions with a seeded random start.
func SeededStart(seed int64) Options {
	o := DefaultOptions()
	o.Start = StartSeeded
	o.Seed = seed
	return o
}

// scanner returns the configured Scanner or the default.
func (o Options) scanner() Scanner {
	if o.Scanner == nil {
		return LinearScan{}
	}
	return o.Scanner
}

// observer returns the configured Observer or a no-op.
func (o Options) observer() Observer {
	if o.Observer == nil {
		return nopObserver{}
	}
	return o.Observer
}
