package builder

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

// Grid returns a Constructor that builds the rows×cols lattice with its lower
// left corner at cfg.center and cfg.spacing between neighbors.
//
// Cells are visited row-major; each vertex first joins its left neighbor and
// then the one below, which keeps every insertion attached to the graph.
// The result has rows·cols vertices and (rows-1)(cols-1) square faces.
//
// Errors: ErrTooFewVertices if rows or cols < MinGridDim.
func Grid(rows, cols int) Constructor {
	return func(g *core.PlanarGraph, cfg builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		at := func(r, c int) geometry.Coordinate {
			return snap(geometry.Pt(cfg.center.X+float64(c)*cfg.spacing, cfg.center.Y+float64(r)*cfg.spacing))
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c > 0 {
					if err := connect(g, MethodGrid, at(r, c-1), at(r, c)); err != nil {
						return err
					}
				}
				if r > 0 {
					if err := connect(g, MethodGrid, at(r-1, c), at(r, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
