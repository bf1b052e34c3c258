// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
)

// Wheel returns a Constructor that builds the wheel W_n: a rim Cycle(n-1)
// plus a hub at cfg.center joined to every rim vertex.
//
// Implementation:
//   - Stage 1: Validate n ≥ MinWheelNodes.
//   - Stage 2: Delegate the rim to Cycle(n-1).
//   - Stage 3: Insert spokes hub→rim[i]; the first spoke is a pendant, each
//     further spoke splits a rim sector.
//
// The result has n vertices, 2(n-1) edges and n-1 triangular bounded faces.
// Errors: ErrTooFewVertices if n < MinWheelNodes; propagated from Cycle.
func Wheel(n int) Constructor {
	return func(g *core.PlanarGraph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: build rim: %w", MethodWheel, err)
		}
		for _, p := range ringPoints(n-1, cfg.center, cfg.radius, 0) {
			if err := connect(g, MethodWheel, cfg.center, p); err != nil {
				return err
			}
		}

		return nil
	}
}
