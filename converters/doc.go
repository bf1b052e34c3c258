// Package converters provides adapters between core.PlanarGraph and gonum's
// graph packages, plus a builder that turns a loose list of straight segments
// into a PlanarGraph.
//
//	ToUndirected(g)        export the abstract graph as a gonum simple.UndirectedGraph
//	Components(g)          connected components via gonum/graph/topo
//	FromUndirected(u, pos) embed a gonum graph using per-node coordinates
//	FromSegments(segs)     insert segments in an order that keeps the graph connected
//
// Only topology and coordinates are exchanged; candidate colors and marks stay
// on the PlanarGraph side.
package converters
