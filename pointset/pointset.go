package pointset

import (
	"math"
	"sort"

	"github.com/katalvlaran/tourgeo/geometry"
)

// Key identifies a point within a PointSet.
type Key int

// PointSet is an immutable mapping from Key to geometry.Point.
// The zero value is an empty set.
type PointSet struct {
	points map[Key]geometry.Point
	keys   []Key // ascending; canonical iteration order
}

// New builds a PointSet from m. The map is copied; later changes to m are
// not observed.
//
// Complexity: O(n log n) for the key sort.
func New(m map[Key]geometry.Point) *PointSet {
	ps := &PointSet{
		points: make(map[Key]geometry.Point, len(m)),
		keys:   make([]Key, 0, len(m)),
	}
	for k, p := range m {
		ps.points[k] = p
		ps.keys = append(ps.keys, k)
	}
	sort.Slice(ps.keys, func(i, j int) bool { return ps.keys[i] < ps.keys[j] })
	return ps
}

// FromSlice builds a PointSet keyed 1..len(pts) in slice order.
func FromSlice(pts []geometry.Point) *PointSet {
	m := make(map[Key]geometry.Point, len(pts))
	for i, p := range pts {
		m[Key(i+1)] = p
	}
	return New(m)
}

// Len returns the number of points.
func (ps *PointSet) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.keys)
}

// At returns the point stored under k.
func (ps *PointSet) At(k Key) (geometry.Point, bool) {
	if ps == nil {
		return geometry.Point{}, false
	}
	p, ok := ps.points[k]
	return p, ok
}

// Has reports whether k is present.
func (ps *PointSet) Has(k Key) bool {
	_, ok := ps.At(k)
	return ok
}

// Keys returns the keys in ascending order. The slice is a fresh copy.
func (ps *PointSet) Keys() []Key {
	if ps == nil {
		return nil
	}
	out := make([]Key, len(ps.keys))
	copy(out, ps.keys)
	return out
}

// Bounds returns the lower-left and upper-right corners of the axis-aligned
// bounding box. ok is false for an empty set.
func (ps *PointSet) Bounds() (lo, hi geometry.Point, ok bool) {
	if ps.Len() == 0 {
		return geometry.Point{}, geometry.Point{}, false
	}
	lo = geometry.Point{X: math.Inf(1), Y: math.Inf(1)}
	hi = geometry.Point{X: math.Inf(-1), Y: math.Inf(-1)}
	for _, k := range ps.keys {
		p := ps.points[k]
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi, true
}

// Extent returns the largest absolute coordinate in the set, 0 when empty.
func (ps *PointSet) Extent() float64 {
	lo, hi, ok := ps.Bounds()
	if !ok {
		return 0
	}
	return math.Max(
		math.Max(math.Abs(lo.X), math.Abs(lo.Y)),
		math.Max(math.Abs(hi.X), math.Abs(hi.Y)),
	)
}

// Validate returns geometry.ErrDegenerateGeometry if any point has a
// non-finite coordinate.
func (ps *PointSet) Validate() error {
	for _, k := range ps.Keys() {
		if err := geometry.Validate(ps.points[k]); err != nil {
			return err
		}
	}
	return nil
}
