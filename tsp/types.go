package tsp

import (
	"errors"
	"time"

	"github.com/katalvlaran/tourgeo/geometry"
	"github.com/katalvlaran/tourgeo/pointset"
)

// Sentinel errors. Callers branch with errors.Is; context is attached with %w.
var (
	// ErrEmptyInput is returned when fewer than two points are supplied.
	ErrEmptyInput = errors.New("tsp: at least two points are required")

	// ErrDegenerateGeometry is returned when a coordinate, or a derived
	// length, is NaN or infinite.
	ErrDegenerateGeometry = geometry.ErrDegenerateGeometry

	// ErrInvalidTour is returned when an edge list is not a single cycle
	// over the point set or references an unknown key.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrStartNotFound is returned when Options.StartKey is not in the set.
	ErrStartNotFound = errors.New("tsp: start key not found")

	// ErrOptionViolation is returned for meaningless Options values.
	ErrOptionViolation = errors.New("tsp: invalid option")

	// ErrTimeLimit is returned when Options.TimeLimit elapses mid-build.
	ErrTimeLimit = errors.New("tsp: time limit exceeded")

	// ErrTooLarge is returned by BruteForce above MaxBruteForceNodes.
	ErrTooLarge = errors.New("tsp: instance too large for exhaustive search")
)

// Edge is a directed tour edge From→To. For cost purposes it is undirected.
type Edge struct {
	From pointset.Key
	To   pointset.Key
}

// Tour is a closed cycle stored as an edge list. Edge order is the order
// of construction, not the visiting order; use Order for the latter.
type Tour []Edge

// Candidate is the best insertion found by one scan.
type Candidate struct {
	// Node is the unplaced key to insert.
	Node pointset.Key
	// Edge is the tour edge the node is spliced into.
	Edge Edge
	// EdgeIndex is the position of Edge in the tour.
	EdgeIndex int
	// Distance is the squared point-to-segment distance of Node to Edge.
	// It saturates to +Inf or 0 when the square leaves float64 range
	// (distances above ~1.3e154 or below ~1e-162); the choice of
	// Candidate is still exact.
	Distance float64
}

// Result is the outcome of Solve or BruteForce.
type Result struct {
	// Tour is the closed cycle, len(Tour) == number of points.
	Tour Tour
	// Cost is the total Euclidean length, rounded to 1e-9 (relative below 1).
	Cost float64
	// Steps counts insertions (heuristic) or evaluated orders (exhaustive).
	Steps int
	// Elapsed is the wall-clock build time.
	Elapsed time.Duration
}
