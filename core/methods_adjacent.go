// SPDX-License-Identifier: MIT

package core

import (
	"math"

	"github.com/katalvlaran/fivecolor/geometry"
)

// OutgoingEdges lists the half-edges leaving v in clockwise order, starting
// at the vertex's incident half-edge. Empty for isolated or unknown vertices.
//
// Implementation:
//   - Stage 1: start at Incident.
//   - Stage 2: step to next(twin(e)) until the start is reached again.
//
// Complexity: O(deg(v)).
func (g *PlanarGraph) OutgoingEdges(v string) []string {
	start := g.vertices[v].Incident
	if start == "" {
		return nil
	}
	var out []string
	e := start
	for steps := 0; steps <= len(g.halfEdges); steps++ {
		out = append(out, e)
		e = g.halfEdges[g.halfEdges[e].Twin].Next
		if e == start {
			return out
		}
	}

	return out
}

// AdjacentVertices lists the neighbors of v in clockwise order.
func (g *PlanarGraph) AdjacentVertices(v string) []string {
	outs := g.OutgoingEdges(v)
	nbrs := make([]string, len(outs))
	for i, e := range outs {
		nbrs[i] = g.Destination(e)
	}

	return nbrs
}

// Degree returns the number of edges at v.
func (g *PlanarGraph) Degree(v string) int { return len(g.OutgoingEdges(v)) }

// EdgeBetween returns the half-edge u→v, if the two vertices are adjacent.
func (g *PlanarGraph) EdgeBetween(u, v string) (string, bool) {
	for _, e := range g.OutgoingEdges(u) {
		if g.Destination(e) == v {
			return e, true
		}
	}

	return "", false
}

// Adjacent reports whether u and v share an edge.
func (g *PlanarGraph) Adjacent(u, v string) bool {
	_, ok := g.EdgeBetween(u, v)

	return ok
}

// NextClockwiseEdge returns the outgoing half-edge of v met first when
// sweeping clockwise from direction theta: the one with the largest angle
// strictly below theta, wrapping to the largest angle overall. A segment
// leaving v at theta enters the face on the left of that half-edge.
// ok=false when v has no edges.
// Complexity: O(deg(v)).
func (g *PlanarGraph) NextClockwiseEdge(v string, theta float64) (string, bool) {
	var (
		below, top          string
		belowAngle, topAngle = math.Inf(-1), math.Inf(-1)
	)
	for _, e := range g.OutgoingEdges(v) {
		a := g.Angle(e)
		if a < theta && a > belowAngle {
			below, belowAngle = e, a
		}
		if a > topAngle {
			top, topAngle = e, a
		}
	}
	if below != "" {
		return below, true
	}

	return top, top != ""
}

// BoundaryEdges lists the half-edges of face f's cycle, starting at the
// face's incident half-edge and following Next.
// Complexity: O(|cycle|).
func (g *PlanarGraph) BoundaryEdges(f string) []string {
	return g.cycle(g.faces[f].Incident)
}

// BoundaryVertices lists the origins of BoundaryEdges(f). A vertex appears
// once per visit, so cut vertices of the boundary walk may repeat.
func (g *PlanarGraph) BoundaryVertices(f string) []string {
	edges := g.BoundaryEdges(f)
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = g.halfEdges[e].Origin
	}

	return out
}

// BoundaryCoordinates lists the coordinates of BoundaryVertices(f).
func (g *PlanarGraph) BoundaryCoordinates(f string) []geometry.Coordinate {
	vs := g.BoundaryVertices(f)
	out := make([]geometry.Coordinate, len(vs))
	for i, v := range vs {
		out[i] = g.Coord(v)
	}

	return out
}

// LocateFace returns the bounded face whose boundary contains c strictly
// inside, or the infinite face.
// Complexity: O(E).
func (g *PlanarGraph) LocateFace(c geometry.Coordinate) string {
	for _, f := range g.Faces() {
		if f == g.infinite {
			continue
		}
		if geometry.PointInPolygon(g.BoundaryCoordinates(f), c) {
			return f
		}
	}

	return g.infinite
}

// SplitFaceKey returns the face that a new edge between c1 and c2 would
// split, or "" when no face admits it: a coordinate is not a vertex, the
// vertices coincide or are already adjacent, or the segment would cross or
// touch the face boundary.
func (g *PlanarGraph) SplitFaceKey(c1, c2 geometry.Coordinate) string {
	u, okU := g.index[c1]
	v, okV := g.index[c2]
	if !okU || !okV || u == v || g.Adjacent(u, v) {
		return ""
	}
	_, _, f, ok := g.splitCorners(u, v)
	if !ok {
		return ""
	}

	return f
}

// cycle follows Next from start until it closes.
func (g *PlanarGraph) cycle(start string) []string {
	if start == "" {
		return nil
	}
	var out []string
	e := start
	for steps := 0; steps <= len(g.halfEdges); steps++ {
		out = append(out, e)
		e = g.halfEdges[e].Next
		if e == start {
			return out
		}
	}

	return out
}

// cycleArea returns the shoelace area of the cycle through start.
func (g *PlanarGraph) cycleArea(start string) float64 {
	edges := g.cycle(start)
	pts := make([]geometry.Coordinate, len(edges))
	for i, e := range edges {
		pts[i] = g.Coord(g.halfEdges[e].Origin)
	}

	return geometry.SignedArea(pts)
}

// splitCorners finds, for a prospective edge u–v, the corners at u and v
// (outgoing half-edges) the segment would enter, and checks that both corners
// lie in one face whose boundary the segment does not cross.
func (g *PlanarGraph) splitCorners(u, v string) (eu, ev, face string, ok bool) {
	a, b := g.Coord(u), g.Coord(v)
	eu, okU := g.NextClockwiseEdge(u, geometry.Angle(a, b))
	ev, okV := g.NextClockwiseEdge(v, geometry.Angle(b, a))
	if !okU || !okV {
		return "", "", "", false
	}
	face = g.halfEdges[eu].Face
	if g.halfEdges[ev].Face != face {
		return "", "", "", false
	}
	if g.crossesBoundary(face, a, b) {
		return "", "", "", false
	}

	return eu, ev, face, true
}

// crossesBoundary reports whether segment a–b meets an edge of face f
// anywhere other than at a shared endpoint.
func (g *PlanarGraph) crossesBoundary(f string, a, b geometry.Coordinate) bool {
	for _, e := range g.BoundaryEdges(f) {
		p := g.Coord(g.halfEdges[e].Origin)
		q := g.Coord(g.Destination(e))
		if blocks(a, b, p, q) {
			return true
		}
	}

	return false
}

// blocks reports whether edge p–q obstructs segment a–b. Edges sharing one
// endpoint obstruct only when they overlap collinearly.
func blocks(a, b, p, q geometry.Coordinate) bool {
	sharedA := geometry.Equal(p, a) || geometry.Equal(q, a)
	sharedB := geometry.Equal(p, b) || geometry.Equal(q, b)
	switch {
	case sharedA && sharedB:
		return true
	case sharedA || sharedB:
		s, e := a, b
		if sharedB {
			s, e = b, a
		}
		o := q
		if geometry.Equal(q, s) {
			o = p
		}

		return geometry.Cross(s, e, o) == 0 && geometry.Dot(s, e, o) > 0
	default:
		return geometry.SegmentsIntersect(a, b, p, q, false)
	}
}
