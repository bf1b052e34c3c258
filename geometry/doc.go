// Package geometry provides the planar predicates the DCEL relies on to stay
// a valid straight-line embedding.
//
// What:
//
//   - Coordinate: an exact (x, y) pair, an alias of gonum's r2.Vec.
//   - Orientation: Cross, Angle, SignedArea, IsClockwise.
//   - Intersection: SegmentsIntersect (optionally half-open on the first segment),
//     OnSegment, PointInPolygon (even-odd ray casting).
//   - Hulls & distances: ConvexHull (monotone chain), PointToSegmentDistance,
//     MinDistance.
//
// Equality is exact: two coordinates name the same vertex iff both components
// match bit for bit. No predicate applies an epsilon.
//
// Complexity:
//
//   - Every predicate is O(1) except PointInPolygon O(n), ConvexHull O(n log n)
//     and MinDistance O(n).
package geometry
