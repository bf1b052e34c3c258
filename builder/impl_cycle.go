package builder

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
)

// Cycle returns a Constructor that builds the regular n-gon of radius
// cfg.radius around cfg.center, vertex 0 at the top, counter-clockwise.
//
// The result has n vertices, n edges and one bounded face.
// Errors: ErrTooFewVertices if n < MinCycleNodes.
func Cycle(n int) Constructor {
	return func(g *core.PlanarGraph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}

		return connectRing(g, MethodCycle, ringPoints(n, cfg.center, cfg.radius, 0))
	}
}
