package builder

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

// snap rounds c to the snapUnit lattice.
func snap(c geometry.Coordinate) geometry.Coordinate {
	return geometry.Pt(math.Round(c.X/snapUnit)*snapUnit, math.Round(c.Y/snapUnit)*snapUnit)
}

// ringPoints returns n points evenly spaced on a circle of radius r around
// center, the first at angle π/2 + phase, counter-clockwise.
func ringPoints(n int, center geometry.Coordinate, r, phase float64) []geometry.Coordinate {
	pts := make([]geometry.Coordinate, n)
	for i := range pts {
		a := math.Pi/2 + phase + 2*math.Pi*float64(i)/float64(n)
		pts[i] = snap(geometry.Pt(center.X+r*math.Cos(a), center.Y+r*math.Sin(a)))
	}

	return pts
}

// connect inserts edge a–b unless it is already present.
func connect(g *core.PlanarGraph, method string, a, b geometry.Coordinate) error {
	if u, ok := g.VertexAt(a); ok {
		if v, ok := g.VertexAt(b); ok && g.Adjacent(u, v) {
			return nil
		}
	}
	if _, err := g.InsertEdge(a, b); err != nil {
		return fmt.Errorf("%s: edge %v-%v: %w", method, a, b, err)
	}

	return nil
}

// connectRing inserts the closed polygon through pts.
func connectRing(g *core.PlanarGraph, method string, pts []geometry.Coordinate) error {
	for i := range pts {
		if err := connect(g, method, pts[i], pts[(i+1)%len(pts)]); err != nil {
			return err
		}
	}

	return nil
}

// isPlacementError reports core errors caused by where a segment lies, as
// opposed to misuse of the graph.
func isPlacementError(err error) bool {
	return errors.Is(err, core.ErrNoValidSplit) || errors.Is(err, core.ErrAlreadyAdjacent)
}
