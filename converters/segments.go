package converters

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

// Segment is a straight edge given by its endpoints.
type Segment [2]geometry.Coordinate

// FromSegments builds a PlanarGraph from segs. Duplicate segments (in either
// direction) are ignored. Segments are inserted in input order, except that a
// segment touching nothing inserted yet is deferred until it does.
//
// Errors: ErrDisconnected if some segments never touch the rest; core edit
// errors (crossings, zero-length segments) wrapped with the segment.
// Complexity: O(S²) passes in the worst case plus the insertions.
func FromSegments(segs []Segment) (*core.PlanarGraph, error) {
	g := core.NewGraph()
	pending := append([]Segment(nil), segs...)
	for len(pending) > 0 {
		var deferred []Segment
		for _, s := range pending {
			u, okU := g.VertexAt(s[0])
			v, okV := g.VertexAt(s[1])
			if g.VertexCount() > 0 && !okU && !okV {
				deferred = append(deferred, s)
				continue
			}
			if okU && okV && g.Adjacent(u, v) {
				continue
			}
			if _, err := g.InsertEdge(s[0], s[1]); err != nil {
				return nil, fmt.Errorf("FromSegments: %v-%v: %w", s[0], s[1], err)
			}
		}
		if len(deferred) == len(pending) {
			return nil, fmt.Errorf("FromSegments: %d segments unreachable: %w", len(deferred), ErrDisconnected)
		}
		pending = deferred
	}

	return g, nil
}
