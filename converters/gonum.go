// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("converters: nil graph")

	// ErrMissingPosition indicates a gonum node with no coordinate.
	ErrMissingPosition = errors.New("converters: node has no position")

	// ErrDisconnected indicates input that does not form one component.
	ErrDisconnected = errors.New("converters: input is not connected")
)

// Mapping relates PlanarGraph vertex keys to gonum node IDs.
type Mapping struct {
	IDs  map[string]int64 // vertex key → node ID
	Keys []string         // node ID → vertex key
}

// ToUndirected exports the vertices and edges of g. Node IDs follow the key
// order of g.Vertices(), so the export is deterministic.
// Complexity: O(V + E).
func ToUndirected(g *core.PlanarGraph) (*simple.UndirectedGraph, *Mapping) {
	u := simple.NewUndirectedGraph()
	m := &Mapping{IDs: make(map[string]int64, g.VertexCount()), Keys: g.Vertices()}
	for i, k := range m.Keys {
		m.IDs[k] = int64(i)
		u.AddNode(simple.Node(i))
	}
	for _, e := range g.Edges() {
		he, _ := g.HalfEdge(e)
		u.SetEdge(u.NewEdge(simple.Node(m.IDs[he.Origin]), simple.Node(m.IDs[g.Destination(e)])))
	}

	return u, m
}

// Components returns the vertex keys of every connected component, each
// sorted, components ordered by their smallest key.
func Components(g *core.PlanarGraph) [][]string {
	u, m := ToUndirected(g)
	var out [][]string
	for _, cc := range topo.ConnectedComponents(u) {
		ids := make([]int, len(cc))
		for i, n := range cc {
			ids[i] = int(n.ID())
		}
		sort.Ints(ids)
		keys := make([]string, len(ids))
		for i, id := range ids {
			keys[i] = m.Keys[id]
		}
		out = append(out, keys)
	}
	sort.Slice(out, func(i, j int) bool { return m.IDs[out[i][0]] < m.IDs[out[j][0]] })

	return out
}

// FromUndirected embeds u with straight edges at the coordinates given by
// pos. Edges are inserted in breadth-first order from the lowest node ID so
// the graph stays connected while it grows. An edgeless single node becomes
// an empty graph, since a PlanarGraph only creates vertices through edges.
//
// Errors: ErrNilGraph, ErrMissingPosition, ErrDisconnected, and core edit
// errors (crossing edges) wrapped with the offending node IDs.
func FromUndirected(u graph.Undirected, pos map[int64]geometry.Coordinate) (*core.PlanarGraph, error) {
	if u == nil {
		return nil, ErrNilGraph
	}
	nodes := graph.NodesOf(u.Nodes())
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	for _, n := range nodes {
		if _, ok := pos[n.ID()]; !ok {
			return nil, fmt.Errorf("FromUndirected: node %d: %w", n.ID(), ErrMissingPosition)
		}
	}

	g := core.NewGraph()
	if len(nodes) == 0 {
		return g, nil
	}
	seen := map[int64]bool{nodes[0].ID(): true}
	done := make(map[[2]int64]bool)
	queue := []int64{nodes[0].ID()}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		nbrs := graph.NodesOf(u.From(id))
		sort.Slice(nbrs, func(i, j int) bool { return nbrs[i].ID() < nbrs[j].ID() })
		for _, n := range nbrs {
			key := [2]int64{min(id, n.ID()), max(id, n.ID())}
			if done[key] {
				continue
			}
			done[key] = true
			if _, err := g.InsertEdge(pos[id], pos[n.ID()]); err != nil {
				return nil, fmt.Errorf("FromUndirected: edge %d-%d: %w", id, n.ID(), err)
			}
			if !seen[n.ID()] {
				seen[n.ID()] = true
				queue = append(queue, n.ID())
			}
		}
	}
	if len(seen) != len(nodes) {
		return nil, fmt.Errorf("FromUndirected: %d of %d nodes reachable: %w", len(seen), len(nodes), ErrDisconnected)
	}

	return g, nil
}
