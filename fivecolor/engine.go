// SPDX-License-Identifier: MIT

package fivecolor

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/trace"
)

// engine runs the coloring recursion and reports every decision.
type engine struct {
	log    *trace.Log
	logger *zap.Logger
}

// color colors every vertex of g. g must be a triangulation of the disc
// bounded by its outer cycle, with both marks colored.
func (e *engine) color(g *core.PlanarGraph, depth int) error {
	m1, m2 := g.Marks()
	_, ok1 := g.ColorOf(m1)
	_, ok2 := g.ColorOf(m2)
	if m1 == "" || m2 == "" || !ok1 || !ok2 {
		return errors.Wrapf(ErrNoMarks, "depth %d: marks %q %q", depth, m1, m2)
	}
	if g.VertexCount() <= 3 {
		return e.base(g, depth)
	}

	outer := g.BoundaryVertices(g.InfiniteFace())
	if i, j, ok := findChord(g, outer); ok {
		return e.chorded(g, outer, i, j, depth)
	}

	return e.chordless(g, outer, depth)
}

// base colors each uncolored vertex with its first candidate not taken by a
// colored neighbor.
func (e *engine) base(g *core.PlanarGraph, depth int) error {
	e.log.Narrate("base case on %d vertices", g.VertexCount())
	e.logger.Debug("base", zap.Int("depth", depth), zap.Int("vertices", g.VertexCount()))
	for _, v := range g.Vertices() {
		if err := e.pickFree(g, v); err != nil {
			return errors.Wrapf(err, "depth %d: base", depth)
		}
	}

	return nil
}

// pickFree colors v with its first candidate unused by colored neighbors.
// Already colored vertices are left alone.
func (e *engine) pickFree(g *core.PlanarGraph, v string) error {
	if _, ok := g.ColorOf(v); ok {
		return nil
	}
	var used core.ColorSet
	for _, w := range g.AdjacentVertices(v) {
		if c, ok := g.ColorOf(w); ok {
			used = used.Add(c)
		}
	}
	free := g.Candidates(v).Minus(used)
	if free.Len() == 0 {
		return errors.Wrapf(core.ErrEmptyCandidates, "%s: %s all taken by neighbors", v, g.Candidates(v))
	}

	return restrict(g, e.log, v, free.FirstN(1))
}

// findChord returns the positions i < j on the outer cycle of the first
// chord in cycle order: an edge between two boundary vertices that are not
// consecutive on the cycle.
func findChord(g *core.PlanarGraph, outer []string) (int, int, bool) {
	k := len(outer)
	pos := make(map[string]int, k)
	for i, v := range outer {
		pos[v] = i
	}
	for i, v := range outer {
		best := -1
		for _, w := range g.AdjacentVertices(v) {
			j, on := pos[w]
			if !on || j <= i+1 || (i == 0 && j == k-1) {
				continue
			}
			if best < 0 || j < best {
				best = j
			}
		}
		if best >= 0 {
			return i, best, true
		}
	}

	return 0, 0, false
}

// chorded splits g along the chord outer[i]–outer[j] and colors both sides,
// the side holding the marks first.
func (e *engine) chorded(g *core.PlanarGraph, outer []string, i, j, depth int) error {
	x, y := outer[i], outer[j]
	arcA := append([]string(nil), outer[i+1:j]...)
	arcB := append(append([]string(nil), outer[j+1:]...), outer[:i]...)

	m1, m2 := g.Marks()
	first, second := arcB, arcA
	if pathHasEdge(append(append([]string{x}, arcA...), y), m1, m2) {
		first, second = arcA, arcB
	}
	side1 := e.side(g, first, x, y)
	side2 := e.side(g, second, x, y)

	e.log.Narrate("chord %s-%s splits the graph into %d and %d vertices", x, y, len(side1), len(side2))
	e.logger.Debug("chord", zap.Int("depth", depth), zap.String("x", x), zap.String("y", y),
		zap.Int("side1", len(side1)), zap.Int("side2", len(side2)))

	g1, err := g.InducedSubgraph(side1)
	if err != nil {
		return errors.Wrapf(err, "depth %d: chord %s-%s: first side", depth, x, y)
	}
	e.log.FaceRestricted(side1)
	if err := e.color(g1, depth+1); err != nil {
		return err
	}
	if err := transfer(g, g1); err != nil {
		return errors.Wrapf(err, "depth %d", depth)
	}
	e.log.Pause()

	g2, err := g.InducedSubgraph(side2)
	if err != nil {
		return errors.Wrapf(err, "depth %d: chord %s-%s: second side", depth, x, y)
	}
	if err := g2.SetMarks(x, y); err != nil {
		return errors.Wrapf(err, "depth %d", depth)
	}
	e.log.FaceRestricted(side2)
	if err := e.color(g2, depth+1); err != nil {
		return err
	}
	if err := transfer(g, g2); err != nil {
		return errors.Wrapf(err, "depth %d", depth)
	}
	e.log.Pause()

	return nil
}

// side returns, in key order, x, y and every vertex reachable from arc
// without passing through x or y.
func (e *engine) side(g *core.PlanarGraph, arc []string, x, y string) []string {
	in := map[string]bool{x: true, y: true}
	queue := make([]string, 0, len(arc))
	for _, v := range arc {
		if !in[v] {
			in[v] = true
			queue = append(queue, v)
		}
	}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range g.AdjacentVertices(v) {
			if !in[w] {
				in[w] = true
				queue = append(queue, w)
			}
		}
	}
	out := make([]string, 0, len(in))
	for _, v := range g.Vertices() {
		if in[v] {
			out = append(out, v)
		}
	}

	return out
}

// pathHasEdge reports whether a and b are consecutive somewhere in path.
func pathHasEdge(path []string, a, b string) bool {
	for i := 0; i+1 < len(path); i++ {
		if (path[i] == a && path[i+1] == b) || (path[i] == b && path[i+1] == a) {
			return true
		}
	}

	return false
}

// chordless removes mark1's boundary neighbor vp after reserving two colors
// for it, colors the rest, and gives vp the reserved color its other boundary
// neighbor does not use.
func (e *engine) chordless(g *core.PlanarGraph, outer []string, depth int) error {
	m1, m2 := g.Marks()
	k := len(outer)
	at := func(v string) int {
		for i, w := range outer {
			if w == v {
				return i
			}
		}

		return -1
	}

	i1 := at(m1)
	if i1 < 0 {
		return errors.Wrapf(ErrNoMarks, "depth %d: mark %s is not on the outer cycle", depth, m1)
	}
	vp := outer[(i1+k-1)%k]
	if vp == m2 {
		vp = outer[(i1+1)%k]
	}
	ip := at(vp)
	u := outer[(ip+k-1)%k]
	if u == m1 {
		u = outer[(ip+1)%k]
	}

	c1, _ := g.ColorOf(m1)
	reserved := g.Candidates(vp).Remove(c1).FirstN(2)
	if reserved.Len() < 2 {
		return errors.Wrapf(core.ErrEmptyCandidates, "depth %d: %s cannot reserve two colors from %s", depth, vp, g.Candidates(vp))
	}
	if err := restrict(g, e.log, vp, reserved); err != nil {
		return errors.Wrapf(err, "depth %d", depth)
	}

	onOuter := make(map[string]bool, k)
	for _, v := range outer {
		onOuter[v] = true
	}
	var interior []string
	for _, w := range g.AdjacentVertices(vp) {
		if !onOuter[w] {
			interior = append(interior, w)
		}
	}

	e.log.Narrate("remove %s reserving %s; %d interior neighbors give those colors up", vp, reserved, len(interior))
	e.logger.Debug("reduce", zap.Int("depth", depth), zap.String("vertex", vp),
		zap.Stringer("reserved", reserved), zap.Int("interior", len(interior)))

	sub := g.Clone()
	if err := sub.RemoveVertex(vp); err != nil {
		return errors.Wrapf(err, "depth %d: remove %s", depth, vp)
	}
	for _, w := range interior {
		if err := restrict(sub, e.log, w, sub.Candidates(w).Minus(reserved).FirstN(3)); err != nil {
			return errors.Wrapf(err, "depth %d", depth)
		}
	}
	e.log.FaceRestricted(sub.Vertices())
	if err := e.color(sub, depth+1); err != nil {
		return err
	}
	if err := transfer(g, sub); err != nil {
		return errors.Wrapf(err, "depth %d", depth)
	}

	cu, ok := g.ColorOf(u)
	if !ok {
		return errors.Wrapf(ErrUncolored, "depth %d: boundary neighbor %s", depth, u)
	}
	if err := restrict(g, e.log, vp, reserved.Remove(cu).FirstN(1)); err != nil {
		return errors.Wrapf(err, "depth %d: final color of %s", depth, vp)
	}
	e.log.Pause()

	return nil
}

// greedy colors a graph without bounded faces, vertex by vertex in key
// order. Such graphs are paths (collinear input) or a single vertex.
func (e *engine) greedy(g *core.PlanarGraph) error {
	e.log.Narrate("no bounded face: greedy coloring of %d vertices", g.VertexCount())
	for _, v := range g.Vertices() {
		if err := g.SetCandidates(v, core.AllColors); err != nil {
			return errors.Wrap(err, "greedy")
		}
	}
	for _, v := range g.Vertices() {
		if err := e.pickFree(g, v); err != nil {
			return errors.Wrap(err, "greedy")
		}
	}

	return nil
}
