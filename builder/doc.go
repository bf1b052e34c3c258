// Package builder provides deterministic straight-line planar graph fixtures
// assembled from composable Constructors.
//
//	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithRadius(5)},
//		builder.Wheel(8))
//
// Components:
//
//   - Configuration: BuilderOption mutates a builderConfig (center, radius,
//     spacing, RNG). Option constructors panic on meaningless values.
//   - Topologies (impl_*.go): Cycle, Path, Star, Wheel, Grid, Polygon,
//     PlatonicSolid, RandomTree.
//   - Errors: sentinel values (ErrTooFewVertices, ErrNeedRandSource, ...)
//     wrapped as "Method: detail: %w".
//
// Layout rules:
//
//   - Ring layouts place vertex i at angle π/2 + 2πi/n around the center,
//     snapped to a 1e-9 lattice so symmetric points are exactly symmetric.
//   - Constructors insert edges in an order that keeps the graph connected,
//     as core.PlanarGraph requires.
//   - Constructors compose on one graph: coordinates shared by two
//     constructors name the same vertex, and an already present edge is
//     skipped.
package builder
