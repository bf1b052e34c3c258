// SPDX-License-Identifier: MIT

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

// mustPlus returns a hub at the origin with four unit spokes.
func mustPlus(t *testing.T) *core.PlanarGraph {
	t.Helper()
	g := core.NewGraph()
	for _, c := range []geometry.Coordinate{P10, P01, geometry.Pt(-1, 0), geometry.Pt(0, -1)} {
		_, err := g.InsertEdge(P00, c)
		require.NoError(t, err)
	}
	mustCheck(t, g)

	return g
}

// TestOutgoingEdges_Clockwise checks rotation order and the closing walk.
func TestOutgoingEdges_Clockwise(t *testing.T) {
	g := mustPlus(t)
	hub := mustVertex(t, g, P00)

	outs := g.OutgoingEdges(hub)
	require.Len(t, outs, 4)
	require.Equal(t, 4, g.Degree(hub))

	// Each successor turns clockwise by a quarter.
	for i, e := range outs {
		next := outs[(i+1)%len(outs)]
		turn := g.Angle(e) - g.Angle(next)
		if turn < 0 {
			turn += 2 * math.Pi
		}
		require.InDelta(t, math.Pi/2, turn, 1e-12)
	}

	// next(twin(e)) returns to the start after exactly deg steps.
	e := outs[0]
	for i := 0; i < len(outs); i++ {
		he, _ := g.HalfEdge(e)
		tw, _ := g.HalfEdge(he.Twin)
		e = tw.Next
	}
	require.Equal(t, outs[0], e)

	require.ElementsMatch(t,
		[]string{mustVertex(t, g, P10), mustVertex(t, g, P01), mustVertex(t, g, geometry.Pt(-1, 0)), mustVertex(t, g, geometry.Pt(0, -1))},
		g.AdjacentVertices(hub))
}

// TestNextClockwiseEdge checks the strict predecessor rule and the wrap.
func TestNextClockwiseEdge(t *testing.T) {
	g := mustPlus(t)
	hub := mustVertex(t, g, P00)
	to := func(c geometry.Coordinate) string {
		e, ok := g.EdgeBetween(hub, mustVertex(t, g, c))
		require.True(t, ok)

		return e
	}

	cases := []struct {
		name  string
		theta float64
		want  string
	}{
		{"between east and north", math.Pi / 4, to(P10)},
		{"exactly east", 0, to(geometry.Pt(0, -1))},
		{"below smallest wraps", -3 * math.Pi / 4, to(geometry.Pt(-1, 0))},
		{"exactly west", math.Pi, to(P01)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := g.NextClockwiseEdge(hub, tc.theta)
			require.True(t, ok)
			require.Equal(t, tc.want, got)
		})
	}

	iso, err := core.Begin(P00, P10)
	require.NoError(t, err)
	require.NoError(t, iso.RemoveVertex(mustVertex(t, iso, P10)))
	_, ok := iso.NextClockwiseEdge(mustVertex(t, iso, P00), 0)
	require.False(t, ok)
}

// TestBoundary checks boundary walks of the square's two faces.
func TestBoundary(t *testing.T) {
	g := mustSquare(t)
	f := boundedFaces(g)[0]

	vs := g.BoundaryVertices(f)
	require.Len(t, vs, 4)
	require.ElementsMatch(t, g.Vertices(), vs)
	require.InDelta(t, 1.0, geometry.SignedArea(g.BoundaryCoordinates(f)), 1e-12)
	require.InDelta(t, -1.0, geometry.SignedArea(g.BoundaryCoordinates(g.InfiniteFace())), 1e-12)

	for _, e := range g.BoundaryEdges(f) {
		he, _ := g.HalfEdge(e)
		require.Equal(t, f, he.Face)
	}
}

// TestSplitFaceKey checks the hypothetical split query.
func TestSplitFaceKey(t *testing.T) {
	g := mustSquare(t)
	f := boundedFaces(g)[0]

	require.Equal(t, f, g.SplitFaceKey(P00, P11))
	require.Equal(t, f, g.SplitFaceKey(P01, P10))
	require.Empty(t, g.SplitFaceKey(P00, P10), "already adjacent")
	require.Empty(t, g.SplitFaceKey(P00, geometry.Pt(7, 7)), "unknown coordinate")
	require.Empty(t, g.SplitFaceKey(P00, P00))

	_, err := g.InsertEdge(P00, P11)
	require.NoError(t, err)
	require.Empty(t, g.SplitFaceKey(P01, P10), "crosses the diagonal")
}

// TestSplitFaceKey_Outside checks splits through the infinite face.
func TestSplitFaceKey_Outside(t *testing.T) {
	g := mustPath(t, P00, P10, P11)
	require.Equal(t, g.InfiniteFace(), g.SplitFaceKey(P11, P00))
}

// TestLocateFace checks point location.
func TestLocateFace(t *testing.T) {
	g := mustSquare(t)
	f := boundedFaces(g)[0]

	require.Equal(t, f, g.LocateFace(geometry.Pt(0.5, 0.25)))
	require.Equal(t, g.InfiniteFace(), g.LocateFace(geometry.Pt(2, 2)))
	require.Equal(t, g.InfiniteFace(), g.LocateFace(geometry.Pt(-0.5, 0.5)))
}
