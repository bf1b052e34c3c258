package core

import "github.com/katalvlaran/fivecolor/geometry"

// Clone returns an independent copy of g. Records are values, so mutating the
// clone never affects g. The clone shares g's key allocator: keys minted on
// either side stay distinct.
// Complexity: O(V + E + F).
func (g *PlanarGraph) Clone() *PlanarGraph {
	out := &PlanarGraph{
		ids:       g.ids,
		vertices:  make(map[string]Vertex, len(g.vertices)),
		halfEdges: make(map[string]HalfEdge, len(g.halfEdges)),
		faces:     make(map[string]Face, len(g.faces)),
		index:     make(map[geometry.Coordinate]string, len(g.index)),
		infinite:  g.infinite,
		mark1:     g.mark1,
		mark2:     g.mark2,
	}
	for k, v := range g.vertices {
		out.vertices[k] = v
	}
	for k, h := range g.halfEdges {
		out.halfEdges[k] = h
	}
	for k, f := range g.faces {
		out.faces[k] = f
	}
	for c, k := range g.index {
		out.index[c] = k
	}

	return out
}

// assign replaces g's contents with those of o.
func (g *PlanarGraph) assign(o *PlanarGraph) {
	*g = *o
}
