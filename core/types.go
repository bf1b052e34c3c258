// Package core defines the DCEL record types, the PlanarGraph arena, sentinel
// errors, and the NewGraph/Begin constructors.
package core

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/katalvlaran/fivecolor/geometry"
)

// Sentinel errors for structural edits and queries.
var (
	// ErrDisconnected indicates an edit that would leave more than one component.
	ErrDisconnected = errors.New("core: graph must stay connected")

	// ErrAlreadyAdjacent indicates an edge between vertices that already share one.
	ErrAlreadyAdjacent = errors.New("core: vertices are already adjacent")

	// ErrNoValidSplit indicates that no face can take the new segment without crossing.
	ErrNoValidSplit = errors.New("core: no face admits the segment without crossing")

	// ErrNotALeaf indicates leaf removal on a vertex with more than one outgoing edge.
	ErrNotALeaf = errors.New("core: vertex is not a leaf")

	// ErrSameFaceOnBothSides indicates removal of an edge bounding one face on both sides.
	ErrSameFaceOnBothSides = errors.New("core: edge has the same face on both sides")

	// ErrVertexNotFound indicates an unknown vertex key.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an unknown half-edge key.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrFaceNotFound indicates an unknown face key.
	ErrFaceNotFound = errors.New("core: face not found")

	// ErrDegenerateEdge indicates an edge whose endpoints coincide.
	ErrDegenerateEdge = errors.New("core: edge endpoints coincide")

	// ErrEmptyCandidates indicates a restriction that would leave no candidate color.
	ErrEmptyCandidates = errors.New("core: candidate color set would become empty")

	// ErrCorrupted indicates a DCEL invariant violation found by Check.
	ErrCorrupted = errors.New("core: invariant violated")
)

// Key prefixes handed out by the allocator.
const (
	vertexKeyPrefix = "v"
	edgeKeyPrefix   = "e"
	faceKeyPrefix   = "f"
)

// Vertex is a point of the embedding.
type Vertex struct {
	// Key uniquely identifies the vertex.
	Key string

	// Coord is the exact position; no two vertices share one.
	Coord geometry.Coordinate

	// Candidates is the set of colors still assignable to the vertex.
	Candidates ColorSet

	// Incident is one half-edge leaving the vertex ("" for an isolated vertex).
	Incident string
}

// HalfEdge is one direction of an undirected edge.
type HalfEdge struct {
	Key    string
	Origin string // vertex the half-edge leaves
	Twin   string // opposite direction of the same edge
	Next   string // following half-edge around Face
	Prev   string // preceding half-edge around Face
	Face   string // face on the left
}

// Face is a region of the embedding.
type Face struct {
	Key string

	// Incident is one half-edge of the boundary cycle ("" while the graph has no edge).
	Incident string

	// Infinite marks the single unbounded face.
	Infinite bool
}

// idAllocator mints keys that are unique across a graph and all of its clones.
type idAllocator struct {
	next uint64
}

func (a *idAllocator) allocate(prefix string) string {
	return fmt.Sprintf("%s%d", prefix, atomic.AddUint64(&a.next, 1))
}

// PlanarGraph is the DCEL arena: key→record maps plus the infinite face key
// and the two mark vertices used by the coloring engine.
//
// Records are stored by value, so Clone only duplicates the maps.
type PlanarGraph struct {
	ids *idAllocator

	vertices  map[string]Vertex
	halfEdges map[string]HalfEdge
	faces     map[string]Face

	// index maps a coordinate to the vertex sitting there.
	index map[geometry.Coordinate]string

	infinite string

	mark1, mark2 string
}

// NewGraph returns an empty graph consisting of the infinite face only.
// Complexity: O(1).
func NewGraph() *PlanarGraph {
	g := &PlanarGraph{
		ids:       &idAllocator{},
		vertices:  make(map[string]Vertex),
		halfEdges: make(map[string]HalfEdge),
		faces:     make(map[string]Face),
		index:     make(map[geometry.Coordinate]string),
	}
	g.infinite = g.ids.allocate(faceKeyPrefix)
	g.faces[g.infinite] = Face{Key: g.infinite, Infinite: true}

	return g
}

// Begin returns a graph holding the two vertices c1, c2 joined by one edge.
// Both half-edges bound the infinite face.
// Errors: ErrDegenerateEdge if c1 == c2.
func Begin(c1, c2 geometry.Coordinate) (*PlanarGraph, error) {
	g := NewGraph()
	if _, err := g.InsertEdge(c1, c2); err != nil {
		return nil, fmt.Errorf("Begin: %w", err)
	}

	return g, nil
}
