// Package fivecolor is a toolkit for five-coloring connected planar
// straight-line graphs, one recorded decision at a time.
//
// What is in the box?
//
//	A doubly-connected edge list with atomic edits, a triangulator and a
//	recursive list-coloring engine that together color any connected planar
//	drawing with at most five colors:
//		• Geometry: orientation, segment intersection, convex hull, distances
//		• PlanarGraph: vertices, half-edges, faces; insert/remove with full
//		  face bookkeeping; clone and induced subgraphs
//		• Triangulation: hull completion and max-min-distance diagonals
//		• Coloring: pre-coloring of the outer face plus chord / chordless
//		  recursion on near-triangulations
//		• Trace: every decision is logged as a replayable step
//
// Everything is organized under these subpackages:
//
//	geometry/    - coordinates and exact-input predicates (gonum r2)
//	core/        - PlanarGraph (DCEL), color sets, structural checks
//	triangulate/ - Hullify, Triangulate, IsTriangulated
//	fivecolor/   - FiveColor, PreColor, Verify
//	trace/       - event log, recorder and zap sinks
//	converters/  - segment lists and gonum graphs in and out
//	builder/     - deterministic planar fixtures (wheels, grids, solids)
//
// Quick ASCII example:
//
//	    A───B
//	    │ ╲ │
//	    D───C
//
//	a square gains the diagonal A–C during triangulation, after which
//	A and C share no color with B or D.
//
//	go get github.com/katalvlaran/fivecolor
package fivecolor
