// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
)

// Star returns a Constructor that joins a hub at cfg.center to n-1 leaves on
// the ring of radius cfg.radius.
// Errors: ErrTooFewVertices if n < MinStarNodes.
func Star(n int) Constructor {
	return func(g *core.PlanarGraph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		for _, p := range ringPoints(n-1, cfg.center, cfg.radius, 0) {
			if err := connect(g, MethodStar, cfg.center, p); err != nil {
				return err
			}
		}

		return nil
	}
}
