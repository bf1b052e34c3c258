// Package fivecolor colors a connected planar straight-line graph with at
// most five colors so that no two adjacent vertices share one.
//
// Pipeline:
//
//	FiveColor(g) = color(PreColor(Triangulate(Hullify(g))))
//
// The coloring engine works on candidate sets (core.ColorSet) and only ever
// narrows them. PreColor fixes two consecutive outer-boundary vertices (the
// marks) to Red and Blue and limits the rest of the outer boundary to three
// candidates. The recursion then keeps one invariant on every subgraph: the
// outer boundary is a simple cycle, both marks are colored, other boundary
// vertices hold at least three candidates and interior vertices five.
//
//   - Base case (three vertices): each uncolored vertex takes its first
//     candidate unused by its colored neighbors.
//   - Chorded case: an edge joining two non-consecutive boundary vertices
//     splits the graph. The side holding the marks is colored first; the
//     other side is then colored with the chord endpoints as its marks.
//   - Chordless case: the boundary neighbor vp of mark1 reserves two colors
//     other than mark1's, is removed, and its interior neighbors drop the
//     reserved colors. After the smaller graph is colored, vp takes the
//     reserved color its remaining boundary neighbor does not use.
//
// Collinear input has no bounded face after hull augmentation and is colored
// greedily instead (a path needs at most three colors).
//
// Every decision is recorded on a trace.Log in the order it is taken and
// replayed into the trace.Sink given with WithSink. Structural failures
// inside the pipeline are invariant violations and are returned wrapped with
// their core sentinel.
package fivecolor
