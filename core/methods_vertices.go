package core

import "fmt"

// RemoveVertex deletes v together with all of its edges.
//
// Implementation:
//   - Stage 1: on a working copy, remove every outgoing edge that separates
//     two distinct faces; bridges are skipped.
//   - Stage 2: exactly one edge must remain, and v is removed as a leaf. A
//     vertex without edges (the lone vertex of a one-vertex graph) is simply
//     deleted.
//   - Stage 3: commit the working copy.
//
// Errors: ErrVertexNotFound, ErrNotALeaf (v is a cut vertex: more than one
// bridge remained). The graph is unchanged on error.
// Complexity: O(deg(v)·F) for the face relabelling plus O(V+E) for the copy.
func (g *PlanarGraph) RemoveVertex(v string) error {
	if _, ok := g.vertices[v]; !ok {
		return fmt.Errorf("RemoveVertex(%s): %w", v, ErrVertexNotFound)
	}

	work := g.Clone()
	if err := work.removeVertex(v); err != nil {
		return fmt.Errorf("RemoveVertex(%s): %w", v, err)
	}
	g.assign(work)

	return nil
}

func (g *PlanarGraph) removeVertex(v string) error {
	outs := g.OutgoingEdges(v)
	if len(outs) == 0 {
		if len(g.vertices) > 1 {
			return ErrCorrupted
		}
		g.deleteVertex(v)

		return nil
	}
	for _, e := range outs {
		if err := g.removeEdge(e); err != nil && !isBridge(err) {
			return err
		}
	}

	return g.removeLeaf(v)
}
