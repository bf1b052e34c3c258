// SPDX-License-Identifier: MIT
// Package core_test contains fixtures shared by the PlanarGraph tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

// Fixture coordinates.
var (
	P00 = geometry.Pt(0, 0)
	P10 = geometry.Pt(1, 0)
	P11 = geometry.Pt(1, 1)
	P01 = geometry.Pt(0, 1)
	PC  = geometry.Pt(0.5, 0.5)
)

// mustPolygon builds the closed polygon through pts, in the given order.
func mustPolygon(t *testing.T, pts ...geometry.Coordinate) *core.PlanarGraph {
	t.Helper()
	g := mustPath(t, pts...)
	_, err := g.InsertEdge(pts[len(pts)-1], pts[0])
	require.NoError(t, err, "closing edge")
	mustCheck(t, g)

	return g
}

// mustPath builds the polyline through pts.
func mustPath(t *testing.T, pts ...geometry.Coordinate) *core.PlanarGraph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i+1 < len(pts); i++ {
		_, err := g.InsertEdge(pts[i], pts[i+1])
		require.NoErrorf(t, err, "edge %v-%v", pts[i], pts[i+1])
	}
	mustCheck(t, g)

	return g
}

// mustSquare returns the unit square 0,0 → 1,0 → 1,1 → 0,1.
func mustSquare(t *testing.T) *core.PlanarGraph {
	t.Helper()

	return mustPolygon(t, P00, P10, P11, P01)
}

// mustWheel returns the unit square with a hub at its center joined to all corners.
func mustWheel(t *testing.T) *core.PlanarGraph {
	t.Helper()
	g := mustSquare(t)
	for _, c := range []geometry.Coordinate{P00, P10, P11, P01} {
		_, err := g.InsertEdge(PC, c)
		require.NoErrorf(t, err, "spoke to %v", c)
	}
	mustCheck(t, g)

	return g
}

// mustCheck fails the test on any DCEL invariant violation.
func mustCheck(t *testing.T, g *core.PlanarGraph) {
	t.Helper()
	require.NoError(t, g.Check())
}

// mustVertex resolves the vertex key at c.
func mustVertex(t *testing.T, g *core.PlanarGraph, c geometry.Coordinate) string {
	t.Helper()
	k, ok := g.VertexAt(c)
	require.Truef(t, ok, "no vertex at %v", c)

	return k
}

// halfEdgeSnapshot copies every half-edge record.
func halfEdgeSnapshot(g *core.PlanarGraph) map[string]core.HalfEdge {
	out := make(map[string]core.HalfEdge)
	for _, k := range g.HalfEdges() {
		h, _ := g.HalfEdge(k)
		out[k] = h
	}

	return out
}

// boundedFaces lists every face except the infinite one.
func boundedFaces(g *core.PlanarGraph) []string {
	var out []string
	for _, f := range g.Faces() {
		if f != g.InfiniteFace() {
			out = append(out, f)
		}
	}

	return out
}
