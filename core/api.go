package core

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/fivecolor/geometry"
)

// VertexCount returns the number of vertices.
func (g *PlanarGraph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of undirected edges.
func (g *PlanarGraph) EdgeCount() int { return len(g.halfEdges) / 2 }

// FaceCount returns the number of faces, the infinite face included.
func (g *PlanarGraph) FaceCount() int { return len(g.faces) }

// BoundedFaceCount returns the number of finite faces.
func (g *PlanarGraph) BoundedFaceCount() int { return len(g.faces) - 1 }

// InfiniteFace returns the key of the unbounded face.
func (g *PlanarGraph) InfiniteFace() string { return g.infinite }

// Vertex returns a copy of the vertex record stored under key.
func (g *PlanarGraph) Vertex(key string) (Vertex, bool) {
	v, ok := g.vertices[key]

	return v, ok
}

// HalfEdge returns a copy of the half-edge record stored under key.
func (g *PlanarGraph) HalfEdge(key string) (HalfEdge, bool) {
	h, ok := g.halfEdges[key]

	return h, ok
}

// Face returns a copy of the face record stored under key.
func (g *PlanarGraph) Face(key string) (Face, bool) {
	f, ok := g.faces[key]

	return f, ok
}

// VertexAt returns the key of the vertex located exactly at c.
func (g *PlanarGraph) VertexAt(c geometry.Coordinate) (string, bool) {
	k, ok := g.index[c]

	return k, ok
}

// Coord returns the coordinate of vertex v (zero value for unknown keys).
func (g *PlanarGraph) Coord(v string) geometry.Coordinate {
	return g.vertices[v].Coord
}

// Destination returns the origin of twin(e).
func (g *PlanarGraph) Destination(e string) string {
	return g.halfEdges[g.halfEdges[e].Twin].Origin
}

// Angle returns the direction of half-edge e, in (−π, π].
func (g *PlanarGraph) Angle(e string) float64 {
	h := g.halfEdges[e]

	return geometry.Angle(g.Coord(h.Origin), g.Coord(g.Destination(e)))
}

// Vertices returns all vertex keys in ascending key order.
func (g *PlanarGraph) Vertices() []string { return sortedKeys(g.vertices) }

// HalfEdges returns all half-edge keys in ascending key order.
func (g *PlanarGraph) HalfEdges() []string { return sortedKeys(g.halfEdges) }

// Faces returns all face keys in ascending key order.
func (g *PlanarGraph) Faces() []string { return sortedKeys(g.faces) }

// Edges returns one half-edge key per undirected edge (the lower key of each twin pair).
func (g *PlanarGraph) Edges() []string {
	out := make([]string, 0, g.EdgeCount())
	for _, k := range g.HalfEdges() {
		if lessKey(k, g.halfEdges[k].Twin) {
			out = append(out, k)
		}
	}

	return out
}

// SetMarks records the two pre-colored boundary vertices.
// Errors: ErrVertexNotFound.
func (g *PlanarGraph) SetMarks(m1, m2 string) error {
	for _, m := range []string{m1, m2} {
		if _, ok := g.vertices[m]; !ok {
			return fmt.Errorf("SetMarks(%s,%s): %q: %w", m1, m2, m, ErrVertexNotFound)
		}
	}
	g.mark1, g.mark2 = m1, m2

	return nil
}

// Marks returns the two pre-colored boundary vertices ("" when unset).
func (g *PlanarGraph) Marks() (string, string) { return g.mark1, g.mark2 }

// Candidates returns the candidate set of vertex v (empty for unknown keys).
func (g *PlanarGraph) Candidates(v string) ColorSet { return g.vertices[v].Candidates }

// ColorOf returns the color of v once its candidate set is a singleton.
func (g *PlanarGraph) ColorOf(v string) (Color, bool) {
	return g.vertices[v].Candidates.Single()
}

// SetCandidates replaces the candidate set of v. Used to start a new coloring
// run; within a run only RestrictColors narrows sets.
// Errors: ErrVertexNotFound, ErrEmptyCandidates.
func (g *PlanarGraph) SetCandidates(v string, set ColorSet) error {
	vx, ok := g.vertices[v]
	if !ok {
		return fmt.Errorf("SetCandidates(%s): %w", v, ErrVertexNotFound)
	}
	if set.Len() == 0 {
		return fmt.Errorf("SetCandidates(%s): %w", v, ErrEmptyCandidates)
	}
	vx.Candidates = set
	g.vertices[v] = vx

	return nil
}

// RestrictColors narrows cand(v) to cand(v) ∩ allowed and returns the result.
// A set never grows, so a vertex with one candidate stays colored.
// Errors: ErrVertexNotFound, ErrEmptyCandidates (graph unchanged).
func (g *PlanarGraph) RestrictColors(v string, allowed ColorSet) (ColorSet, error) {
	vx, ok := g.vertices[v]
	if !ok {
		return 0, fmt.Errorf("RestrictColors(%s): %w", v, ErrVertexNotFound)
	}
	next := vx.Candidates.Intersect(allowed)
	if next.Len() == 0 {
		return vx.Candidates, fmt.Errorf("RestrictColors(%s, %s ∩ %s): %w", v, vx.Candidates, allowed, ErrEmptyCandidates)
	}
	vx.Candidates = next
	g.vertices[v] = vx

	return next, nil
}

// sortedKeys returns the keys of m in lessKey order.
func sortedKeys[T any](m map[string]T) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return lessKey(out[i], out[j]) })

	return out
}

// lessKey orders allocator keys by prefix, then numerically ("e2" < "e10").
func lessKey(a, b string) bool {
	pa, na := splitKey(a)
	pb, nb := splitKey(b)
	if pa != pb {
		return pa < pb
	}
	if na != nb {
		return na < nb
	}

	return a < b
}

func splitKey(k string) (string, int) {
	i := strings.IndexFunc(k, func(r rune) bool { return r >= '0' && r <= '9' })
	if i < 0 {
		return k, -1
	}
	n, err := strconv.Atoi(k[i:])
	if err != nil {
		return k, -1
	}

	return k[:i], n
}
