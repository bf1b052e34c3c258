// Package triangulate brings a connected planar straight-line graph into the
// form the five-coloring engine expects: the outer boundary is the convex
// hull and every bounded face is a triangle.
//
//	Hullify(g)        add every missing segment of the convex hull
//	Triangulate(g)    add diagonals until IsTriangulated holds
//
// Both operations only add edges, never remove vertices or edges, and return
// a new graph; the input is left untouched.
//
// Diagonal choice:
//
// For each bounded face with more than three boundary edges, every pair of
// non-adjacent boundary vertices whose segment splits exactly that face is
// scored by a ScoreFunc; the highest score wins and the earliest candidate
// wins ties. The default, MaxMinDistance, prefers diagonals that stay far
// from the remaining boundary vertices. FirstValid takes the first valid pair.
//
// Every inserted edge is recorded on the trace.Log given with WithLog.
package triangulate
