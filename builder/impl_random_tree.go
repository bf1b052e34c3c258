package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

// treeReach bounds the integer offset of a new leaf from its parent.
const treeReach = 3

// RandomTree returns a Constructor that grows a random straight-line tree of
// n vertices on the integer lattice around cfg.center.
//
// Implementation:
//   - Stage 1: Validate n and the presence of an RNG.
//   - Stage 2: Repeatedly pick an existing vertex and a non-zero offset in
//     [-treeReach, treeReach]², and hang a leaf there. Draws that land on a
//     vertex or whose segment touches another edge are discarded.
//
// Integer coordinates keep every orientation predicate exact, which makes the
// fixture reproducible for a given seed. On a non-empty graph the tree hangs
// n new leaves off the existing vertices instead.
//
// Errors: ErrTooFewVertices, ErrNeedRandSource, ErrConstructFailed when the
// attempt budget is exhausted.
func RandomTree(n int) Constructor {
	return func(g *core.PlanarGraph, cfg builderConfig) error {
		if n < MinTreeNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomTree, n, MinTreeNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomTree, ErrNeedRandSource)
		}

		pts := make([]geometry.Coordinate, 0, g.VertexCount()+n)
		for _, v := range g.Vertices() {
			pts = append(pts, g.Coord(v))
		}
		target := len(pts) + n
		if len(pts) == 0 {
			pts = append(pts, geometry.Pt(math.Round(cfg.center.X), math.Round(cfg.center.Y)))
			target = n
		}

		budget := n * treeAttemptsPerNode
		for attempts := 0; len(pts) < target; attempts++ {
			if attempts >= budget {
				return fmt.Errorf("%s: placed %d of %d vertices in %d attempts: %w",
					MethodRandomTree, len(pts), target, budget, ErrConstructFailed)
			}
			parent := pts[cfg.rng.Intn(len(pts))]
			dx := cfg.rng.Intn(2*treeReach+1) - treeReach
			dy := cfg.rng.Intn(2*treeReach+1) - treeReach
			if dx == 0 && dy == 0 {
				continue
			}
			leaf := geometry.Pt(parent.X+float64(dx), parent.Y+float64(dy))
			if _, taken := g.VertexAt(leaf); taken {
				continue
			}
			if _, err := g.InsertEdge(parent, leaf); err != nil {
				if isPlacementError(err) {
					continue
				}

				return fmt.Errorf("%s: %w", MethodRandomTree, err)
			}
			pts = append(pts, leaf)
		}

		return nil
	}
}
