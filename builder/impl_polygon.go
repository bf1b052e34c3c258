package builder

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

// Polygon returns a Constructor that closes the simple polygon through pts in
// the given order. Coordinates are used as given, without snapping.
//
// Errors: ErrTooFewVertices if fewer than MinPolygonNodes points;
// core errors (wrapped) when two sides cross.
func Polygon(pts ...geometry.Coordinate) Constructor {
	ring := append([]geometry.Coordinate(nil), pts...)

	return func(g *core.PlanarGraph, _ builderConfig) error {
		if len(ring) < MinPolygonNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPolygon, len(ring), MinPolygonNodes, ErrTooFewVertices)
		}

		return connectRing(g, MethodPolygon, ring)
	}
}
