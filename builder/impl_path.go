package builder

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

// Path returns a Constructor that lays n collinear vertices along the x axis,
// starting at cfg.center and cfg.spacing apart.
// Errors: ErrTooFewVertices if n < MinPathNodes.
func Path(n int) Constructor {
	return func(g *core.PlanarGraph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		prev := cfg.center
		for i := 1; i < n; i++ {
			next := snap(geometry.Pt(cfg.center.X+float64(i)*cfg.spacing, cfg.center.Y))
			if err := connect(g, MethodPath, prev, next); err != nil {
				return err
			}
			prev = next
		}

		return nil
	}
}
