package core

import "fmt"

// Check verifies every DCEL invariant and returns an error wrapping
// ErrCorrupted that names the first violation found.
//
// Verified:
//   - twin(twin(e)) = e, twin(e) ≠ e, next(prev(e)) = e, prev(next(e)) = e;
//   - origin(next(e)) = destination(e), face(next(e)) = face(e);
//   - every face cycle is labelled with its face; bounded cycles are
//     counter-clockwise, the single infinite cycle is not;
//   - incident pointers refer to records of the right vertex/face;
//   - the coordinate index is a bijection;
//   - the graph is connected and V − E + F = 2 (or F = 1 for V ≤ 1);
//   - no two edges cross or overlap.
//
// Complexity: O(E²) for the crossing scan, O(V + E) otherwise.
func (g *PlanarGraph) Check() error {
	if err := g.checkRecords(); err != nil {
		return fmt.Errorf("Check: %v: %w", err, ErrCorrupted)
	}
	if err := g.checkFaces(); err != nil {
		return fmt.Errorf("Check: %v: %w", err, ErrCorrupted)
	}
	if err := g.checkTopology(); err != nil {
		return fmt.Errorf("Check: %v: %w", err, ErrCorrupted)
	}

	return nil
}

func (g *PlanarGraph) checkRecords() error {
	if len(g.index) != len(g.vertices) {
		return fmt.Errorf("index holds %d coordinates for %d vertices", len(g.index), len(g.vertices))
	}
	for k, v := range g.vertices {
		if g.index[v.Coord] != k {
			return fmt.Errorf("vertex %s not indexed at %v", k, v.Coord)
		}
		if v.Incident == "" {
			if len(g.vertices) > 1 {
				return fmt.Errorf("vertex %s has no edge", k)
			}
			continue
		}
		if h, ok := g.halfEdges[v.Incident]; !ok || h.Origin != k {
			return fmt.Errorf("vertex %s incident %s does not leave it", k, v.Incident)
		}
	}
	for k, h := range g.halfEdges {
		t, ok := g.halfEdges[h.Twin]
		if !ok || h.Twin == k || t.Twin != k || t.Origin == h.Origin {
			return fmt.Errorf("half-edge %s has a broken twin", k)
		}
		if _, ok := g.vertices[h.Origin]; !ok {
			return fmt.Errorf("half-edge %s origin %s missing", k, h.Origin)
		}
		n, ok := g.halfEdges[h.Next]
		if !ok || n.Prev != k {
			return fmt.Errorf("half-edge %s next/prev mismatch", k)
		}
		p, ok := g.halfEdges[h.Prev]
		if !ok || p.Next != k {
			return fmt.Errorf("half-edge %s prev/next mismatch", k)
		}
		if n.Origin != t.Origin {
			return fmt.Errorf("half-edge %s next does not start at its destination", k)
		}
		if n.Face != h.Face {
			return fmt.Errorf("half-edge %s and its next lie on different faces", k)
		}
		if _, ok := g.faces[h.Face]; !ok {
			return fmt.Errorf("half-edge %s face %s missing", k, h.Face)
		}
	}

	return nil
}

func (g *PlanarGraph) checkFaces() error {
	infinite := 0
	covered := 0
	for k, f := range g.faces {
		if f.Infinite {
			infinite++
			if k != g.infinite {
				return fmt.Errorf("face %s is infinite but %s is registered", k, g.infinite)
			}
		}
		if f.Incident == "" {
			if len(g.halfEdges) > 0 || !f.Infinite {
				return fmt.Errorf("face %s has no boundary", k)
			}
			continue
		}
		cyc := g.cycle(f.Incident)
		for _, e := range cyc {
			if g.halfEdges[e].Face != k {
				return fmt.Errorf("face %s boundary holds %s of face %s", k, e, g.halfEdges[e].Face)
			}
		}
		covered += len(cyc)
		area := g.cycleArea(f.Incident)
		if f.Infinite && area > 0 {
			return fmt.Errorf("infinite face %s is counter-clockwise", k)
		}
		if !f.Infinite && area <= 0 {
			return fmt.Errorf("bounded face %s is not counter-clockwise", k)
		}
	}
	if infinite != 1 {
		return fmt.Errorf("%d infinite faces", infinite)
	}
	if covered != len(g.halfEdges) {
		return fmt.Errorf("face cycles cover %d of %d half-edges", covered, len(g.halfEdges))
	}

	return nil
}

func (g *PlanarGraph) checkTopology() error {
	v, e, f := g.VertexCount(), g.EdgeCount(), g.FaceCount()
	if v <= 1 {
		if f != 1 || e != 0 {
			return fmt.Errorf("V=%d E=%d F=%d", v, e, f)
		}

		return nil
	}
	if v-e+f != 2 {
		return fmt.Errorf("Euler: V=%d E=%d F=%d", v, e, f)
	}

	keys := g.Vertices()
	seen := map[string]bool{keys[0]: true}
	queue := []string{keys[0]}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, w := range g.AdjacentVertices(u) {
			if !seen[w] {
				seen[w] = true
				queue = append(queue, w)
			}
		}
	}
	if len(seen) != v {
		return fmt.Errorf("%d of %d vertices reachable", len(seen), v)
	}

	edges := g.Edges()
	for i := 0; i < len(edges); i++ {
		a, b := g.Coord(g.halfEdges[edges[i]].Origin), g.Coord(g.Destination(edges[i]))
		for j := i + 1; j < len(edges); j++ {
			p, q := g.Coord(g.halfEdges[edges[j]].Origin), g.Coord(g.Destination(edges[j]))
			if blocks(a, b, p, q) {
				return fmt.Errorf("edges %s and %s cross", edges[i], edges[j])
			}
		}
	}

	return nil
}
