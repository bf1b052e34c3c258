package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// PointToSegmentDistance returns the distance from p to the closed segment a–b.
func PointToSegmentDistance(p, a, b Coordinate) float64 {
	d := r2.Sub(b, a)
	l2 := r2.Dot(d, d)
	if l2 == 0 {
		return Distance(p, a)
	}
	// Project p onto the supporting line and clamp to the segment.
	t := r2.Dot(r2.Sub(p, a), d) / l2
	t = math.Max(0, math.Min(1, t))

	return Distance(p, r2.Add(a, r2.Scale(t, d)))
}

// MinDistance returns the smallest distance from any point of set to segment
// a–b, ignoring the segment's own endpoints. An empty remainder yields +Inf.
func MinDistance(set []Coordinate, a, b Coordinate) float64 {
	best := math.Inf(1)
	for _, p := range set {
		if Equal(p, a) || Equal(p, b) {
			continue
		}
		best = math.Min(best, PointToSegmentDistance(p, a, b))
	}

	return best
}
