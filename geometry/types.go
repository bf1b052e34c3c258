package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Coordinate is an immutable planar position. Being r2.Vec it is comparable
// and may be used directly as a map key.
type Coordinate = r2.Vec

// Pt is shorthand for Coordinate{X: x, Y: y}.
func Pt(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y}
}

// Equal reports exact equality of a and b.
func Equal(a, b Coordinate) bool {
	return a.X == b.X && a.Y == b.Y
}

// Cross returns the z-component of (b-a) × (c-a). Positive means a→b→c turns
// counter-clockwise.
func Cross(a, b, c Coordinate) float64 {
	return r2.Cross(r2.Sub(b, a), r2.Sub(c, a))
}

// Dot returns (b-a)·(c-a).
func Dot(a, b, c Coordinate) float64 {
	return r2.Dot(r2.Sub(b, a), r2.Sub(c, a))
}

// Angle returns the direction of the vector from → to in (-π, π].
func Angle(from, to Coordinate) float64 {
	d := r2.Sub(to, from)
	return math.Atan2(d.Y, d.X)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Coordinate) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// Midpoint returns the midpoint of segment a–b.
func Midpoint(a, b Coordinate) Coordinate {
	return r2.Scale(0.5, r2.Add(a, b))
}

// Bounds returns the axis-aligned bounding box of pts. The zero Box is
// returned for an empty input.
func Bounds(pts []Coordinate) r2.Box {
	if len(pts) == 0 {
		return r2.Box{}
	}
	box := r2.Box{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		box.Min.X = math.Min(box.Min.X, p.X)
		box.Min.Y = math.Min(box.Min.Y, p.Y)
		box.Max.X = math.Max(box.Max.X, p.X)
		box.Max.Y = math.Max(box.Max.Y, p.Y)
	}

	return box
}
