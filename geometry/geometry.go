package geometry

import (
	"errors"
	"math"
)

// ErrDegenerateGeometry indicates a non-finite (NaN or ±Inf) coordinate.
var ErrDegenerateGeometry = errors.New("geometry: non-finite coordinate")

// Point is a location in the Euclidean plane.
type Point struct {
	X float64
	Y float64
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Sub returns the vector p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dot returns the dot product of p and q treated as vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Validate returns ErrDegenerateGeometry if p has a NaN or infinite coordinate.
func Validate(p Point) error {
	if !p.IsFinite() {
		return ErrDegenerateGeometry
	}
	return nil
}

// Distance returns the Euclidean distance between p1 and p2.
// The result is never negative and is exactly 0 when p1 == p2. It is
// finite whenever the coordinate differences are, however large.
func Distance(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// SquaredDistance returns the squared Euclidean distance between p1 and p2.
// It overflows to +Inf for distances above ~1.3e154; use ScaleExponent to
// bring such inputs into range first.
func SquaredDistance(p1, p2 Point) float64 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	return dx*dx + dy*dy
}

// SquaredDistanceToSegment returns the squared distance from p to the
// closest point of the segment [a, b].
//
// Algorithm:
//  1. v = b - a, lengthSquared = v·v.
//  2. lengthSquared == 0 (a and b coincide) ⇒ SquaredDistance(a, p).
//  3. t = ((p - a)·v) / lengthSquared.
//  4. t < 0 ⇒ closest is a; t > 1 ⇒ closest is b; otherwise a + t·v.
//
// The value does not depend on the order of a and b. Like SquaredDistance
// it overflows for coordinates beyond ~1e154 and underflows below ~1e-154;
// callers comparing such values rescale with ScaleExponent and Scale.
//
// Complexity: O(1).
func SquaredDistanceToSegment(a, b, p Point) float64 {
	v := b.Sub(a)
	lengthSquared := v.Dot(v)
	if lengthSquared == 0 {
		return SquaredDistance(a, p)
	}

	t := p.Sub(a).Dot(v) / lengthSquared
	switch {
	case t < 0:
		return SquaredDistance(p, a)
	case t > 1:
		return SquaredDistance(p, b)
	}

	closest := Point{X: a.X + t*v.X, Y: a.Y + t*v.Y}
	return SquaredDistance(p, closest)
}

// DistanceToSegment returns the distance from p to the segment [a, b].
// Inputs outside the safe range of the squared kernel are rescaled by a
// power of two, so the result stays finite for any finite coordinates
// whose differences are finite.
func DistanceToSegment(a, b, p Point) float64 {
	e := ScaleExponent(maxAbs(a, b, p))
	if e == 0 {
		return math.Sqrt(SquaredDistanceToSegment(a, b, p))
	}
	d := math.Sqrt(SquaredDistanceToSegment(Scale(a, -e), Scale(b, -e), Scale(p, -e)))
	return math.Ldexp(d, e)
}

// Squaring is exact in range for magnitudes within [safeLow, safeHigh).
const (
	safeHigh = 0x1p500
	safeLow  = 0x1p-500
)

// ScaleExponent returns e such that m·2^-e lies in [0.5, 1) when m, the
// largest coordinate magnitude of an input, would overflow or underflow
// the squared kernels. It returns 0 when no rescaling is needed.
//
// Scaling by a power of two is exact, so comparisons between squared
// distances of rescaled points order exactly as the unscaled ones would.
func ScaleExponent(m float64) int {
	if m == 0 || (m >= safeLow && m < safeHigh) || math.IsInf(m, 0) || math.IsNaN(m) {
		return 0
	}
	_, e := math.Frexp(m)
	return e
}

// Scale returns p multiplied by 2^exp.
func Scale(p Point, exp int) Point {
	return Point{X: math.Ldexp(p.X, exp), Y: math.Ldexp(p.Y, exp)}
}

func maxAbs(pts ...Point) float64 {
	var m float64
	for _, p := range pts {
		m = math.Max(m, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	return m
}
