package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fivecolor/geometry"
)

func TestConvexHull_DropsInteriorAndCollinear(t *testing.T) {
	pts := []geometry.Coordinate{
		geometry.Pt(1, 1), // interior
		geometry.Pt(0, 0),
		geometry.Pt(2, 0),
		geometry.Pt(1, 0), // on a hull edge
		geometry.Pt(2, 2),
		geometry.Pt(0, 2),
		geometry.Pt(0, 0), // duplicate
	}
	hull := geometry.ConvexHull(pts)
	require.Equal(t, []geometry.Coordinate{
		geometry.Pt(0, 0), geometry.Pt(2, 0), geometry.Pt(2, 2), geometry.Pt(0, 2),
	}, hull)
	require.False(t, geometry.IsClockwise(hull))
}

func TestConvexHull_Degenerate(t *testing.T) {
	two := []geometry.Coordinate{geometry.Pt(3, 3), geometry.Pt(1, 1)}
	require.Equal(t, two, geometry.ConvexHull(two))

	line := []geometry.Coordinate{geometry.Pt(1, 0), geometry.Pt(0, 0), geometry.Pt(2, 0)}
	require.Equal(t, []geometry.Coordinate{geometry.Pt(0, 0), geometry.Pt(2, 0)}, geometry.ConvexHull(line))
}

func TestDistances(t *testing.T) {
	a, b := geometry.Pt(0, 0), geometry.Pt(4, 0)
	require.InDelta(t, 3.0, geometry.PointToSegmentDistance(geometry.Pt(2, 3), a, b), 1e-12)
	require.InDelta(t, 5.0, geometry.PointToSegmentDistance(geometry.Pt(7, 4), a, b), 1e-12)
	require.InDelta(t, math.Sqrt2, geometry.PointToSegmentDistance(geometry.Pt(1, 1), a, a), 1e-12)

	set := []geometry.Coordinate{a, b, geometry.Pt(2, 3), geometry.Pt(1, -1)}
	require.InDelta(t, 1.0, geometry.MinDistance(set, a, b), 1e-12)
	require.True(t, math.IsInf(geometry.MinDistance([]geometry.Coordinate{a, b}, a, b), 1))
}
