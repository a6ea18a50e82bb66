// Package geometry provides the pure planar distance kernel used by the
// nearest-insertion tour builder.
//
// What:
//
//   - Point: an immutable 2D coordinate.
//   - Distance / SquaredDistance: point-to-point metrics.
//   - SquaredDistanceToSegment: distance from a point to the closest
//     location on a finite segment, via a clamped projection parameter.
//
// Why:
//
//	Ranking "how cheap is it to route the tour through p instead of a→b"
//	only needs the segment distance, not a full enumeration of positions.
//	Squared variants avoid the square root for comparison-only use.
//
// Complexity:
//
//   - Every function is O(1) time and O(1) space; nothing allocates.
//
// Errors:
//
//   - ErrDegenerateGeometry: a coordinate is NaN or ±Inf (see Validate).
package geometry
