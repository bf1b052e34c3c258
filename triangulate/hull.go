// SPDX-License-Identifier: MIT

package triangulate

import (
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

// Hullify returns a copy of g in which every segment of the convex hull is an
// edge. Vertices lying on a hull segment split it: consecutive collinear
// vertices are joined in order. Hulls of fewer than three points (collinear
// input) add nothing.
//
// Errors: ErrNilGraph; structural edit errors from core (wrapped), which
// indicate that g was not a valid embedding.
// Complexity: O(H·V) candidate scan plus the edge insertions.
func Hullify(g *core.PlanarGraph, opts ...Option) (*core.PlanarGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := resolve(opts)
	out := g.Clone()

	coords := make([]geometry.Coordinate, 0, out.VertexCount())
	for _, v := range out.Vertices() {
		coords = append(coords, out.Coord(v))
	}
	hull := geometry.ConvexHull(coords)
	if len(hull) < 3 {
		return out, nil
	}

	added := 0
	for i := range hull {
		a, b := hull[i], hull[(i+1)%len(hull)]
		run := collinearRun(coords, a, b)
		for j := 0; j+1 < len(run); j++ {
			p, q := run[j], run[j+1]
			u, _ := out.VertexAt(p)
			v, _ := out.VertexAt(q)
			if out.Adjacent(u, v) {
				continue
			}
			if _, err := out.InsertEdge(p, q); err != nil {
				return nil, errors.Wrapf(err, "hull segment %v-%v", p, q)
			}
			o.Log.EdgeAdded(p, q)
			added++
		}
	}
	o.Logger.Debug("hullify", zap.Int("hull", len(hull)), zap.Int("added", added))

	return out, nil
}

// collinearRun lists the coordinates lying on segment a–b, ordered from a to b.
func collinearRun(coords []geometry.Coordinate, a, b geometry.Coordinate) []geometry.Coordinate {
	var run []geometry.Coordinate
	for _, c := range coords {
		if geometry.OnSegment(c, a, b) {
			run = append(run, c)
		}
	}
	sort.Slice(run, func(i, j int) bool {
		return geometry.Distance(a, run[i]) < geometry.Distance(a, run[j])
	})

	return run
}
