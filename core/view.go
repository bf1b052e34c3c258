// SPDX-License-Identifier: MIT

package core

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/geometry"
)

// InducedSubgraph returns a new PlanarGraph over the kept vertices and every
// edge of g whose endpoints are both kept. Coordinates, candidate sets and
// the marks (when kept) are carried over.
//
// Implementation:
//   - Stage 1: copy kept vertices and half-edges with their links cleared.
//   - Stage 2: rebuild each rotation from g's clockwise outgoing order and
//     derive next/prev from it.
//   - Stage 3: walk every cycle. A counter-clockwise cycle is a bounded face;
//     it keeps its old key when it is exactly an old face's boundary and gets
//     a fresh key otherwise. The single non-counter-clockwise cycle is the
//     infinite face.
//
// The result shares g's key allocator. g is not modified.
//
// Errors: ErrVertexNotFound, ErrDisconnected (the kept vertices span more than
// one component).
// Complexity: O(V + E).
func (g *PlanarGraph) InducedSubgraph(keep []string) (*PlanarGraph, error) {
	keepSet := make(map[string]bool, len(keep))
	for _, v := range keep {
		if _, ok := g.vertices[v]; !ok {
			return nil, fmt.Errorf("InducedSubgraph: %q: %w", v, ErrVertexNotFound)
		}
		keepSet[v] = true
	}

	out := &PlanarGraph{
		ids:       g.ids,
		vertices:  make(map[string]Vertex, len(keepSet)),
		halfEdges: make(map[string]HalfEdge),
		faces:     make(map[string]Face),
		index:     make(map[geometry.Coordinate]string, len(keepSet)),
		infinite:  g.infinite,
	}
	if keepSet[g.mark1] {
		out.mark1 = g.mark1
	}
	if keepSet[g.mark2] {
		out.mark2 = g.mark2
	}

	// Stage 1
	for v := range keepSet {
		vx := g.vertices[v]
		vx.Incident = ""
		out.vertices[v] = vx
		out.index[vx.Coord] = v
	}
	for k, h := range g.halfEdges {
		if keepSet[h.Origin] && keepSet[g.Destination(k)] {
			out.halfEdges[k] = HalfEdge{Key: k, Origin: h.Origin, Twin: h.Twin}
		}
	}

	// Stage 2
	for v := range keepSet {
		var rot []string
		for _, e := range g.OutgoingEdges(v) {
			if _, ok := out.halfEdges[e]; ok {
				rot = append(rot, e)
			}
		}
		if len(rot) == 0 {
			if len(keepSet) > 1 {
				return nil, fmt.Errorf("InducedSubgraph: %q isolated: %w", v, ErrDisconnected)
			}
			continue
		}
		out.setVertexIncident(v, rot[0])
		for i, e := range rot {
			out.link(out.halfEdges[e].Twin, rot[(i+1)%len(rot)])
		}
	}

	// Stage 3
	out.faces[out.infinite] = Face{Key: out.infinite, Infinite: true}
	visited := make(map[string]bool, len(out.halfEdges))
	outer := 0
	for _, start := range out.HalfEdges() {
		if visited[start] {
			continue
		}
		cyc := out.cycle(start)
		for _, e := range cyc {
			visited[e] = true
		}
		if out.cycleArea(start) <= 0 {
			outer++
			if outer > 1 {
				return nil, fmt.Errorf("InducedSubgraph: %w", ErrDisconnected)
			}
			out.assignFace(start, out.infinite)
			continue
		}
		f, ok := g.intactFace(cyc)
		if !ok {
			f = out.ids.allocate(faceKeyPrefix)
		}
		out.faces[f] = Face{Key: f}
		out.assignFace(start, f)
	}

	return out, nil
}

// intactFace reports the bounded face of g whose boundary is exactly cyc.
func (g *PlanarGraph) intactFace(cyc []string) (string, bool) {
	f := g.halfEdges[cyc[0]].Face
	if g.faces[f].Infinite {
		return "", false
	}
	for _, e := range cyc {
		if g.halfEdges[e].Face != f {
			return "", false
		}
	}
	if len(g.BoundaryEdges(f)) != len(cyc) {
		return "", false
	}

	return f, true
}
