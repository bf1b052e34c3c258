// Package core provides PlanarGraph, a doubly-connected edge list (DCEL) over
// a connected straight-line planar embedding, together with the structural
// edit operations that keep it a valid embedding.
//
// Records live in an arena addressed by opaque string keys ("v1", "e2", "f3"),
// never by pointers:
//
//   - Vertex    - coordinate, candidate ColorSet, one outgoing half-edge.
//   - HalfEdge  - origin, twin, next, prev, incident face (face on the LEFT).
//   - Face      - one boundary half-edge; exactly one face is Infinite.
//
// Orientation conventions:
//
//   - Bounded face cycles run counter-clockwise; the infinite face cycle has
//     non-positive shoelace area.
//   - next(twin(e)) is the clockwise successor of e around origin(e), so
//     OutgoingEdges lists a vertex's rotation clockwise.
//
// Edit operations:
//
//	Begin(c1, c2)                  // first two vertices and one edge
//	InsertEdge(c1, c2)             // new pendant vertex, or split a face
//	RemoveEdge(key)                // merge the two faces of a non-bridge edge
//	RemoveVertex(key)              // peel edges, then drop the remaining leaf
//
// Every edit is atomic: either it succeeds and all invariants hold, or it
// returns a sentinel error and the graph is unchanged. The graph never becomes
// disconnected.
//
// Copy-on-write branching:
//
//	Clone()                        // duplicate the key→record maps
//	InducedSubgraph(keep)          // consistent DCEL over a vertex subset
//
// Clones share one monotonic key allocator, so keys minted in any branch never
// collide with keys of a sibling or the parent.
//
// Errors:
//
//	ErrDisconnected         - the edit would create a second component.
//	ErrAlreadyAdjacent      - the two vertices already share an edge.
//	ErrNoValidSplit         - no face admits the new segment without crossing.
//	ErrNotALeaf             - leaf removal on a vertex of degree > 1.
//	ErrSameFaceOnBothSides  - the edge is a bridge.
//	ErrVertexNotFound, ErrEdgeNotFound, ErrFaceNotFound, ErrDegenerateEdge,
//	ErrEmptyCandidates, ErrCorrupted.
//
// PlanarGraph is not safe for concurrent mutation; branch with Clone instead.
package core
