// SPDX-License-Identifier: MIT
//
// File: predicates.go
// Role: Orientation and intersection predicates over Coordinates.
// Policy:
//   - Exact comparisons only; callers feed the same float64 values they stored.
//   - halfOpen always refers to the FIRST segment: [p1, p2) instead of [p1, p2].

package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// SegmentsIntersect reports whether segment p1–p2 shares at least one point
// with segment p3–p4.
//
// The parametric form p1 + t·(p2-p1) = p3 + s·(p4-p3) is solved with cross
// products. When the two directions are parallel the test falls back to a
// collinear overlap check by projecting p3 and p4 onto the first segment's line.
//
// With halfOpen set, a touch exactly at p2 does not count, which is what ray
// casting needs so that a ray through a polygon vertex is counted once.
//
// Complexity: O(1).
func SegmentsIntersect(p1, p2, p3, p4 Coordinate, halfOpen bool) bool {
	d1 := r2.Sub(p2, p1)
	d2 := r2.Sub(p4, p3)
	w := r2.Sub(p3, p1)
	den := r2.Cross(d1, d2)

	// within reports whether t is on the first segment, honoring halfOpen.
	within := func(t float64) bool {
		if halfOpen {
			return t >= 0 && t < 1
		}
		return t >= 0 && t <= 1
	}

	if den == 0 {
		// Parallel: only collinear segments can meet.
		if r2.Cross(w, d1) != 0 {
			return false
		}
		l2 := r2.Dot(d1, d1)
		if l2 == 0 {
			// First segment is a single point.
			return !halfOpen && OnSegment(p1, p3, p4)
		}
		t0 := r2.Dot(w, d1) / l2
		t1 := r2.Dot(r2.Sub(p4, p1), d1) / l2
		lo, hi := math.Min(t0, t1), math.Max(t0, t1)
		if halfOpen {
			return lo < 1 && hi >= 0
		}
		return lo <= 1 && hi >= 0
	}

	t := r2.Cross(w, d2) / den
	s := r2.Cross(w, d1) / den

	return within(t) && s >= 0 && s <= 1
}

// OnSegment reports whether p lies on the closed segment a–b.
func OnSegment(p, a, b Coordinate) bool {
	if Cross(a, b, p) != 0 {
		return false
	}

	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}

// SignedArea returns the shoelace area of the closed polygon. Counter-clockwise
// polygons are positive, clockwise ones negative. Repeated vertices (walks that
// run out along a slit and back) contribute nothing.
func SignedArea(polygon []Coordinate) float64 {
	var sum float64
	n := len(polygon)
	for i := 0; i < n; i++ {
		sum += r2.Cross(polygon[i], polygon[(i+1)%n])
	}

	return sum / 2
}

// IsClockwise reports whether the shoelace sum of polygon is negative.
func IsClockwise(polygon []Coordinate) bool {
	return SignedArea(polygon) < 0
}

// PointInPolygon reports whether point lies inside polygon using the even-odd
// rule. A ray is cast from point to a location beyond the polygon's bounding
// box; every edge is tested half-open so a ray through a shared vertex is
// counted once.
//
// Polygons with fewer than 3 vertices contain nothing. Points exactly on the
// boundary are not classified reliably.
//
// Complexity: O(n).
func PointInPolygon(polygon []Coordinate, point Coordinate) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}

	// The target is pushed past the box by an uneven margin so the ray is
	// neither horizontal nor vertical.
	box := Bounds(append(polygon[:n:n], point))
	w, h := box.Max.X-box.Min.X, box.Max.Y-box.Min.Y
	far := Coordinate{X: box.Max.X + 1 + w, Y: box.Max.Y + 1 + 2*h + math.Pi}

	crossings := 0
	for i := 0; i < n; i++ {
		if SegmentsIntersect(polygon[i], polygon[(i+1)%n], point, far, true) {
			crossings++
		}
	}

	return crossings%2 == 1
}
