// Package tsp — tour utilities.
//
// Helpers operating purely on the edge-list structure:
//   - ValidateTour: single Hamiltonian cycle over a point set.
//   - Order: visiting sequence following successors.
//   - Rotate / Reverse / CopyTour: cycle-preserving transforms.
//   - DebugString: compact printable form for tests and logs.
//
// None of them mutate their input.
package tsp

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/tourgeo/pointset"
)

// ValidateTour enforces the cycle invariants:
//
//	len(t) == ps.Len() ≥ 2,
//	every endpoint is a key of ps,
//	every key is the tail of exactly one edge and the head of exactly one,
//	following successors from t[0].From visits all keys before returning.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(t Tour, ps *pointset.PointSet) error {
	n := ps.Len()
	if n < 2 || len(t) != n {
		return fmt.Errorf("%w: %d edges for %d points", ErrInvalidTour, len(t), n)
	}

	succ, err := successors(t)
	if err != nil {
		return err
	}
	for k := range succ {
		if !ps.Has(k) {
			return fmt.Errorf("%w: unknown key %d", ErrInvalidTour, k)
		}
	}

	order, err := walk(succ, t[0].From, n)
	if err != nil {
		return err
	}
	if len(order) != n {
		return fmt.Errorf("%w: cycle covers %d of %d points", ErrInvalidTour, len(order), n)
	}
	return nil
}

// Order returns the keys in visiting order, starting at t[0].From.
// The closing return to the first key is not repeated.
//
// Complexity: O(n).
func Order(t Tour) ([]pointset.Key, error) {
	if len(t) == 0 {
		return nil, fmt.Errorf("%w: empty tour", ErrInvalidTour)
	}
	succ, err := successors(t)
	if err != nil {
		return nil, err
	}
	order, err := walk(succ, t[0].From, len(t))
	if err != nil {
		return nil, err
	}
	if len(order) != len(t) {
		return nil, fmt.Errorf("%w: tour is not a single cycle", ErrInvalidTour)
	}
	return order, nil
}

// Rotate returns a copy of t with the edge list shifted left by k positions
// (negative k shifts right). The cycle is unchanged.
//
// Complexity: O(n).
func Rotate(t Tour, k int) Tour {
	n := len(t)
	if n == 0 {
		return Tour{}
	}
	k = ((k % n) + n) % n
	out := make(Tour, n)
	for i := 0; i < n; i++ {
		out[i] = t[(i+k)%n]
	}
	return out
}

// Reverse returns the same cycle traversed in the opposite direction:
// the edge list is reversed and every edge flipped.
//
// Complexity: O(n).
func Reverse(t Tour) Tour {
	n := len(t)
	out := make(Tour, n)
	for i, e := range t {
		out[n-1-i] = Edge{From: e.To, To: e.From}
	}
	return out
}

// CopyTour returns an independent copy of t.
func CopyTour(t Tour) Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)
	return out
}

// DebugString renders the visiting order, e.g. "[1 4 3 2 | 1]", or the raw
// edge list when t is not a single cycle.
func DebugString(t Tour) string {
	order, err := Order(t)
	if err != nil {
		return fmt.Sprintf("%v", []Edge(t))
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, k := range order {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", k)
	}
	fmt.Fprintf(&b, " | %d]", order[0])
	return b.String()
}

// successors maps each tail to its head, rejecting repeated tails or heads.
func successors(t Tour) (map[pointset.Key]pointset.Key, error) {
	succ := make(map[pointset.Key]pointset.Key, len(t))
	heads := make(map[pointset.Key]struct{}, len(t))
	for _, e := range t {
		if _, dup := succ[e.From]; dup {
			return nil, fmt.Errorf("%w: key %d leaves twice", ErrInvalidTour, e.From)
		}
		if _, dup := heads[e.To]; dup {
			return nil, fmt.Errorf("%w: key %d entered twice", ErrInvalidTour, e.To)
		}
		succ[e.From] = e.To
		heads[e.To] = struct{}{}
	}
	return succ, nil
}

// walk follows succ from start for at most limit steps and returns the
// visited keys. It stops early when it returns to start.
func walk(succ map[pointset.Key]pointset.Key, start pointset.Key, limit int) ([]pointset.Key, error) {
	order := make([]pointset.Key, 0, limit)
	cur := start
	for i := 0; i < limit; i++ {
		order = append(order, cur)
		next, ok := succ[cur]
		if !ok {
			return nil, fmt.Errorf("%w: key %d has no successor", ErrInvalidTour, cur)
		}
		if next == start {
			return order, nil
		}
		cur = next
	}
	return nil, fmt.Errorf("%w: no return to %d", ErrInvalidTour, start)
}
