// SPDX-License-Identifier: MIT

package converters_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/fivecolor/converters"
	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

var square = []converters.Segment{
	{geometry.Pt(0, 0), geometry.Pt(1, 0)},
	{geometry.Pt(1, 1), geometry.Pt(0, 1)},
	{geometry.Pt(1, 0), geometry.Pt(1, 1)},
	{geometry.Pt(0, 1), geometry.Pt(0, 0)},
}

func TestFromSegments(t *testing.T) {
	g, err := converters.FromSegments(square)
	require.NoError(t, err)
	require.NoError(t, g.Check())
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 4, g.EdgeCount())
	require.Equal(t, 1, g.BoundedFaceCount())

	dup := append(append([]converters.Segment(nil), square...), converters.Segment{geometry.Pt(1, 0), geometry.Pt(0, 0)})
	g, err = converters.FromSegments(dup)
	require.NoError(t, err)
	require.Equal(t, 4, g.EdgeCount())
}

func TestFromSegments_Errors(t *testing.T) {
	_, err := converters.FromSegments([]converters.Segment{
		{geometry.Pt(0, 0), geometry.Pt(1, 0)},
		{geometry.Pt(5, 5), geometry.Pt(6, 5)},
	})
	require.ErrorIs(t, err, converters.ErrDisconnected)

	crossing := append(append([]converters.Segment(nil), square...),
		converters.Segment{geometry.Pt(0, 0), geometry.Pt(1, 1)},
		converters.Segment{geometry.Pt(1, 0), geometry.Pt(0, 1)},
	)
	_, err = converters.FromSegments(crossing)
	require.ErrorIs(t, err, core.ErrNoValidSplit)

	_, err = converters.FromSegments([]converters.Segment{{geometry.Pt(2, 2), geometry.Pt(2, 2)}})
	require.ErrorIs(t, err, core.ErrDegenerateEdge)
}

func TestToUndirected(t *testing.T) {
	g, err := converters.FromSegments(square)
	require.NoError(t, err)

	u, m := converters.ToUndirected(g)
	require.Equal(t, 4, u.Nodes().Len())
	require.Equal(t, 4, u.Edges().Len())
	require.Equal(t, g.Vertices(), m.Keys)
	for _, e := range g.Edges() {
		he, _ := g.HalfEdge(e)
		require.True(t, u.HasEdgeBetween(m.IDs[he.Origin], m.IDs[g.Destination(e)]))
	}
}

func TestComponents(t *testing.T) {
	g, err := converters.FromSegments(square)
	require.NoError(t, err)
	cc := converters.Components(g)
	require.Len(t, cc, 1)
	require.Equal(t, g.Vertices(), cc[0])

	require.Empty(t, converters.Components(core.NewGraph()))
}

func TestFromUndirected(t *testing.T) {
	u := simple.NewUndirectedGraph()
	pos := map[int64]geometry.Coordinate{
		0: geometry.Pt(0, 0), 1: geometry.Pt(2, 0), 2: geometry.Pt(1, 2), 3: geometry.Pt(1, 0.5),
	}
	for _, e := range [][2]int64{{0, 1}, {1, 2}, {2, 0}, {3, 0}, {3, 1}, {3, 2}} {
		u.SetEdge(u.NewEdge(simple.Node(e[0]), simple.Node(e[1])))
	}

	g, err := converters.FromUndirected(u, pos)
	require.NoError(t, err)
	require.NoError(t, g.Check())
	require.Equal(t, 4, g.VertexCount())
	require.Equal(t, 6, g.EdgeCount())
	require.Equal(t, 3, g.BoundedFaceCount())

	back, _ := converters.ToUndirected(g)
	require.Equal(t, 6, back.Edges().Len())
}

func TestFromUndirected_Errors(t *testing.T) {
	_, err := converters.FromUndirected(nil, nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)

	u := simple.NewUndirectedGraph()
	u.SetEdge(u.NewEdge(simple.Node(0), simple.Node(1)))
	_, err = converters.FromUndirected(u, map[int64]geometry.Coordinate{0: geometry.Pt(0, 0)})
	require.ErrorIs(t, err, converters.ErrMissingPosition)

	u.SetEdge(u.NewEdge(simple.Node(2), simple.Node(3)))
	pos := map[int64]geometry.Coordinate{
		0: geometry.Pt(0, 0), 1: geometry.Pt(1, 0), 2: geometry.Pt(5, 5), 3: geometry.Pt(6, 5),
	}
	_, err = converters.FromUndirected(u, pos)
	require.ErrorIs(t, err, converters.ErrDisconnected)
}
