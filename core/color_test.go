// SPDX-License-Identifier: MIT

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fivecolor/core"
)

func TestColorSet(t *testing.T) {
	s := core.NewColorSet(core.Blue, core.Red, core.Yellow)
	require.Equal(t, 3, s.Len())
	require.True(t, s.Has(core.Yellow))
	require.False(t, s.Has(core.Green))
	require.Equal(t, []core.Color{core.Red, core.Yellow, core.Blue}, s.Colors())
	require.Equal(t, "{Red,Yellow,Blue}", s.String())

	first, ok := s.First()
	require.True(t, ok)
	require.Equal(t, core.Red, first)

	require.Equal(t, core.NewColorSet(core.Red, core.Yellow), s.FirstN(2))
	require.Equal(t, s, s.FirstN(9))
	require.Equal(t, core.NewColorSet(core.Yellow, core.Blue), s.Minus(core.NewColorSet(core.Red)))
	require.Equal(t, core.NewColorSet(core.Yellow), s.Intersect(core.NewColorSet(core.Yellow, core.Green)))
	require.Equal(t, 5, core.AllColors.Len())

	_, ok = s.Single()
	require.False(t, ok)
	c, ok := core.NewColorSet(core.Purple).Single()
	require.True(t, ok)
	require.Equal(t, core.Purple, c)

	_, ok = core.ColorSet(0).First()
	require.False(t, ok)
	require.Equal(t, "{}", core.ColorSet(0).String())
	require.Equal(t, "Purple", core.Purple.String())
}

func TestRestrictColors(t *testing.T) {
	g := mustSquare(t)
	v := mustVertex(t, g, P00)
	require.Equal(t, core.AllColors, g.Candidates(v))

	got, err := g.RestrictColors(v, core.NewColorSet(core.Red, core.Green, core.Yellow))
	require.NoError(t, err)
	require.Equal(t, 3, got.Len())

	got, err = g.RestrictColors(v, core.NewColorSet(core.Green, core.Blue))
	require.NoError(t, err)
	require.Equal(t, core.NewColorSet(core.Green), got)
	c, ok := g.ColorOf(v)
	require.True(t, ok)
	require.Equal(t, core.Green, c)

	// A singleton never widens and never empties.
	_, err = g.RestrictColors(v, core.AllColors)
	require.NoError(t, err)
	_, err = g.RestrictColors(v, core.NewColorSet(core.Red))
	require.ErrorIs(t, err, core.ErrEmptyCandidates)
	require.Equal(t, core.NewColorSet(core.Green), g.Candidates(v))

	_, err = g.RestrictColors("v999", core.AllColors)
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	require.ErrorIs(t, g.SetCandidates(v, 0), core.ErrEmptyCandidates)
	require.NoError(t, g.SetCandidates(v, core.AllColors))
	require.Equal(t, core.AllColors, g.Candidates(v))
}

func TestMarks(t *testing.T) {
	g := mustSquare(t)
	a, b := mustVertex(t, g, P00), mustVertex(t, g, P10)
	require.NoError(t, g.SetMarks(a, b))
	m1, m2 := g.Marks()
	require.Equal(t, a, m1)
	require.Equal(t, b, m2)
	require.ErrorIs(t, g.SetMarks(a, "v999"), core.ErrVertexNotFound)
}
