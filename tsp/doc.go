// Package tsp builds approximate Travelling Salesman tours over planar
// point sets with the greedy nearest-insertion heuristic.
//
// Algorithm (BuildTour):
//
//  1. Seed: pick a start node (Options.Start), join it with its nearest
//     neighbour by plain distance into a 2-edge cycle (s→m, m→s).
//  2. Grow: among every (tour edge, unplaced node) pair choose the one with
//     the smallest point-to-segment distance and split that edge through
//     the node: (a→b) becomes (a→n) + (n→b).
//  3. Stop when no node is left unplaced.
//
// The tour is an edge list: Tour[i] = Edge{From, To}. Every key is the
// tail of exactly one edge and the head of exactly one edge, and following
// successors from any key visits all keys once before returning.
//
// Determinism:
//   - Keys are scanned in ascending order, edges in tour order.
//   - Ties keep the first pair encountered (strict < comparison).
//   - The start node is a fixed key, the smallest key, or drawn from a
//     seeded RNG; nothing depends on wall-clock randomness.
//
// Complexity:
//   - Each insertion scans |tour|·|unplaced| pairs, O(n²); the whole build
//     is O(n³) time and O(n) space. This is the known scalability ceiling
//     of the method; plug a faster Scanner via Options.Scanner if needed.
//
// Also provided:
//   - TotalCost, ValidateTour, Order, Rotate, Reverse: tour utilities.
//   - Solve: BuildTour + TotalCost + step count and elapsed time.
//   - BruteForce: exact reference for tiny instances (n ≤ MaxBruteForceNodes).
//   - Observer / StepCounter: per-call instrumentation, no globals.
//
// Errors (types.go): ErrEmptyInput, ErrDegenerateGeometry, ErrInvalidTour,
// ErrStartNotFound, ErrOptionViolation, ErrTimeLimit, ErrTooLarge.
package tsp
