// SPDX-License-Identifier: MIT

package fivecolor

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/fivecolor/converters"
	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/trace"
	"github.com/katalvlaran/fivecolor/triangulate"
)

// FiveColor colors g with at most five colors.
//
// Implementation:
//   - Stage 1: reject nil and disconnected input.
//   - Stage 2: Hullify, then Triangulate (on copies; g is not modified).
//   - Stage 3: PreColor and the recursive engine, or greedy coloring when
//     the triangulation has no bounded face.
//   - Stage 4: Verify the result, then replay the recorded trace into the
//     configured sink (reset once, then every event in order).
//
// The returned graph has the same vertices as g and a superset of its edges;
// the coloring is proper for all of them.
//
// Errors: ErrNilGraph, ErrDisconnected; any other error wraps the core or
// triangulate sentinel of a violated invariant. No event reaches the sink
// when an error is returned.
// Complexity: O(V²) clones across the recursion plus triangulation cost.
func FiveColor(g *core.PlanarGraph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if cc := converters.Components(g); len(cc) > 1 {
		return nil, errors.Wrapf(ErrDisconnected, "%d components", len(cc))
	}

	log := trace.NewLog()
	topts := []triangulate.Option{
		triangulate.WithLog(log),
		triangulate.WithLogger(o.Logger),
		triangulate.WithScore(o.Score),
	}

	log.Narrate("add the missing convex hull edges")
	hull, err := triangulate.Hullify(g, topts...)
	if err != nil {
		return nil, errors.Wrap(err, "fivecolor")
	}
	log.Pause()

	log.Narrate("triangulate every bounded face")
	tri, err := triangulate.Triangulate(hull, topts...)
	if err != nil {
		return nil, errors.Wrap(err, "fivecolor")
	}
	log.Pause()

	e := &engine{log: log, logger: o.Logger}
	if tri.BoundedFaceCount() == 0 {
		err = e.greedy(tri)
	} else if err = PreColor(tri, log); err == nil {
		log.Pause()
		err = e.color(tri, 0)
	}
	if err != nil {
		return nil, errors.Wrap(err, "fivecolor")
	}
	if err := Verify(tri); err != nil {
		return nil, errors.Wrap(err, "fivecolor")
	}
	log.Narrate("every vertex is colored")

	res := &Result{Graph: tri, Log: log}
	o.Logger.Info("five-coloring complete",
		zap.Int("vertices", tri.VertexCount()),
		zap.Int("edges", tri.EdgeCount()),
		zap.Int("added_edges", tri.EdgeCount()-g.EdgeCount()),
		zap.Stringer("colors", res.Used()),
		zap.Int("events", log.Len()))
	log.Drain(o.Sink)

	return res, nil
}
