// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/fivecolor/geometry"
)

// InsertEdge adds the straight edge c1–c2 and returns the key of the
// half-edge c1→c2.
//
// Cases:
//   - Neither endpoint exists: allowed only on an empty graph; creates two
//     vertices whose half-edges both bound the infinite face.
//   - One endpoint exists: creates a pendant vertex inside the face entered
//     by the segment at the existing vertex. Face count is unchanged.
//   - Both exist: the segment must enter one face at both ends and cross no
//     edge of that face; the face is split in two. On the infinite face the
//     new counter-clockwise cycle becomes the new bounded face.
//
// All checks run before any record is touched, so a failing call leaves the
// graph unchanged.
//
// Errors: ErrDegenerateEdge, ErrDisconnected, ErrAlreadyAdjacent, ErrNoValidSplit.
// Complexity: O(deg(u) + deg(v) + |face|).
func (g *PlanarGraph) InsertEdge(c1, c2 geometry.Coordinate) (string, error) {
	if geometry.Equal(c1, c2) {
		return "", fmt.Errorf("InsertEdge(%v,%v): %w", c1, c2, ErrDegenerateEdge)
	}
	u, okU := g.index[c1]
	v, okV := g.index[c2]

	var (
		key string
		err error
	)
	switch {
	case !okU && !okV:
		key, err = g.insertFirst(c1, c2)
	case okU && !okV:
		key, err = g.insertPendant(u, c2)
	case !okU && okV:
		if key, err = g.insertPendant(v, c1); err == nil {
			key = g.halfEdges[key].Twin
		}
	default:
		key, err = g.insertSplit(u, v)
	}
	if err != nil {
		return "", fmt.Errorf("InsertEdge(%v,%v): %w", c1, c2, err)
	}

	return key, nil
}

// insertFirst seeds an empty graph with one edge.
func (g *PlanarGraph) insertFirst(c1, c2 geometry.Coordinate) (string, error) {
	if len(g.vertices) > 0 {
		return "", ErrDisconnected
	}
	a := g.addVertex(c1)
	b := g.addVertex(c2)
	h, t := g.addEdgePair(a, b, g.infinite)
	g.link(h, t)
	g.link(t, h)
	g.setVertexIncident(a, h)
	g.setVertexIncident(b, t)
	g.setFaceIncident(g.infinite, h)

	return h, nil
}

// insertPendant hangs a new vertex at c off existing vertex u.
func (g *PlanarGraph) insertPendant(u string, c geometry.Coordinate) (string, error) {
	a := g.Coord(u)
	corner, hasEdges := g.NextClockwiseEdge(u, geometry.Angle(a, c))
	face := g.infinite
	if hasEdges {
		face = g.halfEdges[corner].Face
		if g.crossesBoundary(face, a, c) {
			return "", ErrNoValidSplit
		}
	} else if len(g.vertices) > 1 {
		return "", ErrDisconnected
	}

	w := g.addVertex(c)
	h, t := g.addEdgePair(u, w, face)
	if hasEdges {
		g.link(g.halfEdges[corner].Prev, h)
		g.link(h, t)
		g.link(t, corner)
	} else {
		g.link(h, t)
		g.link(t, h)
		g.setVertexIncident(u, h)
		g.setFaceIncident(face, h)
	}
	g.setVertexIncident(w, t)

	return h, nil
}

// insertSplit joins two existing vertices, splitting the face between them.
func (g *PlanarGraph) insertSplit(u, v string) (string, error) {
	if g.Adjacent(u, v) {
		return "", ErrAlreadyAdjacent
	}
	eu, ev, face, ok := g.splitCorners(u, v)
	if !ok {
		return "", ErrNoValidSplit
	}

	pu, pv := g.halfEdges[eu].Prev, g.halfEdges[ev].Prev
	h, t := g.addEdgePair(u, v, face)
	g.link(pu, h)
	g.link(h, ev)
	g.link(pv, t)
	g.link(t, eu)

	// On the infinite face the counter-clockwise side is the enclosed region.
	keep, split := h, t
	if g.faces[face].Infinite && g.cycleArea(h) > 0 {
		keep, split = t, h
	}
	fresh := g.ids.allocate(faceKeyPrefix)
	g.faces[fresh] = Face{Key: fresh}
	g.assignFace(keep, face)
	g.assignFace(split, fresh)

	return h, nil
}

// RemoveEdge deletes the undirected edge holding half-edge key and merges
// its two faces. The infinite face survives a merge with a bounded face;
// otherwise the face on the left of key survives.
//
// Errors: ErrEdgeNotFound, ErrSameFaceOnBothSides (bridges; graph unchanged).
// Complexity: O(|merged face|).
func (g *PlanarGraph) RemoveEdge(key string) error {
	if err := g.removeEdge(key); err != nil {
		return fmt.Errorf("RemoveEdge(%s): %w", key, err)
	}

	return nil
}

func (g *PlanarGraph) removeEdge(key string) error {
	h, ok := g.halfEdges[key]
	if !ok {
		return ErrEdgeNotFound
	}
	t := g.halfEdges[h.Twin]
	if h.Face == t.Face {
		return ErrSameFaceOnBothSides
	}

	keep, drop := h.Face, t.Face
	if g.faces[drop].Infinite {
		keep, drop = drop, keep
	}

	g.link(h.Prev, t.Next)
	g.link(t.Prev, h.Next)
	if g.vertices[h.Origin].Incident == h.Key {
		g.setVertexIncident(h.Origin, t.Next)
	}
	if g.vertices[t.Origin].Incident == t.Key {
		g.setVertexIncident(t.Origin, h.Next)
	}
	delete(g.halfEdges, h.Key)
	delete(g.halfEdges, t.Key)
	delete(g.faces, drop)
	g.assignFace(t.Next, keep)

	return nil
}

// removeLeaf deletes vertex v of degree 1 together with its edge. When v's
// neighbor is left without edges it stays behind as the single isolated vertex.
func (g *PlanarGraph) removeLeaf(v string) error {
	outs := g.OutgoingEdges(v)
	if len(outs) != 1 {
		return ErrNotALeaf
	}
	h := g.halfEdges[outs[0]]
	t := g.halfEdges[h.Twin]
	u := t.Origin

	if t.Next == h.Key && h.Next == t.Key {
		// Single-edge graph.
		g.setVertexIncident(u, "")
		g.setFaceIncident(h.Face, "")
	} else {
		// prev(t) → t → h → next(h) collapses to prev(t) → next(h).
		g.link(t.Prev, h.Next)
		if g.vertices[u].Incident == t.Key {
			g.setVertexIncident(u, h.Next)
		}
		if g.faces[h.Face].Incident == h.Key || g.faces[h.Face].Incident == t.Key {
			g.setFaceIncident(h.Face, h.Next)
		}
	}
	delete(g.halfEdges, h.Key)
	delete(g.halfEdges, t.Key)
	g.deleteVertex(v)

	return nil
}

// isBridge reports whether err marks an edge that cannot be removed without
// splitting the graph.
func isBridge(err error) bool { return errors.Is(err, ErrSameFaceOnBothSides) }

func (g *PlanarGraph) addVertex(c geometry.Coordinate) string {
	k := g.ids.allocate(vertexKeyPrefix)
	g.vertices[k] = Vertex{Key: k, Coord: c, Candidates: AllColors}
	g.index[c] = k

	return k
}

func (g *PlanarGraph) deleteVertex(v string) {
	delete(g.index, g.vertices[v].Coord)
	delete(g.vertices, v)
	if g.mark1 == v {
		g.mark1 = ""
	}
	if g.mark2 == v {
		g.mark2 = ""
	}
}

// addEdgePair allocates twin half-edges u→v and v→u, both on face f.
func (g *PlanarGraph) addEdgePair(u, v, f string) (string, string) {
	h := g.ids.allocate(edgeKeyPrefix)
	t := g.ids.allocate(edgeKeyPrefix)
	g.halfEdges[h] = HalfEdge{Key: h, Origin: u, Twin: t, Face: f}
	g.halfEdges[t] = HalfEdge{Key: t, Origin: v, Twin: h, Face: f}

	return h, t
}

// link sets next(a) = b and prev(b) = a.
func (g *PlanarGraph) link(a, b string) {
	ha := g.halfEdges[a]
	ha.Next = b
	g.halfEdges[a] = ha
	hb := g.halfEdges[b]
	hb.Prev = a
	g.halfEdges[b] = hb
}

// assignFace labels the whole cycle through start with face f and makes
// start the face's incident half-edge.
func (g *PlanarGraph) assignFace(start, f string) {
	for _, e := range g.cycle(start) {
		he := g.halfEdges[e]
		he.Face = f
		g.halfEdges[e] = he
	}
	g.setFaceIncident(f, start)
}

func (g *PlanarGraph) setVertexIncident(v, e string) {
	vx := g.vertices[v]
	vx.Incident = e
	g.vertices[v] = vx
}

func (g *PlanarGraph) setFaceIncident(f, e string) {
	fc := g.faces[f]
	fc.Incident = e
	g.faces[f] = fc
}
