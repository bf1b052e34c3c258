package geometry

import "sort"

// ConvexHull returns the vertices of the convex hull of points in
// counter-clockwise order, starting from the lowest-leftmost point. Points
// lying strictly inside the hull or in the interior of a hull edge are dropped.
// Inputs with at most two points are returned unchanged; a fully collinear
// input yields its two extreme points.
//
// Andrew's monotone chain. Complexity: O(n log n) time, O(n) space.
func ConvexHull(points []Coordinate) []Coordinate {
	if len(points) <= 2 {
		return points
	}

	pts := make([]Coordinate, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})

	// Drop exact duplicates so they cannot produce zero-length hull edges.
	uniq := pts[:1]
	for _, p := range pts[1:] {
		if !Equal(p, uniq[len(uniq)-1]) {
			uniq = append(uniq, p)
		}
	}
	if len(uniq) <= 2 {
		return uniq
	}

	hull := make([]Coordinate, 0, 2*len(uniq))
	// lower chain
	for _, p := range uniq {
		for len(hull) >= 2 && Cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	// upper chain
	lower := len(hull) + 1
	for i := len(uniq) - 2; i >= 0; i-- {
		p := uniq[i]
		for len(hull) >= lower && Cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}

	// The last point repeats the first.
	return hull[:len(hull)-1]
}
