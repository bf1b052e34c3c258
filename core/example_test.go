// SPDX-License-Identifier: MIT

package core_test

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

// ExamplePlanarGraph_InsertEdge grows a triangle edge by edge and prints the
// face count after each step.
func ExamplePlanarGraph_InsertEdge() {
	g := core.NewGraph()
	pts := []geometry.Coordinate{geometry.Pt(0, 0), geometry.Pt(4, 0), geometry.Pt(2, 3)}
	for i := range pts {
		if _, err := g.InsertEdge(pts[i], pts[(i+1)%len(pts)]); err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("V=%d E=%d F=%d\n", g.VertexCount(), g.EdgeCount(), g.FaceCount())
	}
	fmt.Println(g.Check() == nil)
	// Output:
	// V=2 E=1 F=1
	// V=3 E=2 F=1
	// V=3 E=3 F=2
	// true
}

// ExamplePlanarGraph_RemoveVertex shows the atomic refusal for a cut vertex.
func ExamplePlanarGraph_RemoveVertex() {
	g := core.NewGraph()
	_, _ = g.InsertEdge(geometry.Pt(0, 0), geometry.Pt(1, 0))
	_, _ = g.InsertEdge(geometry.Pt(1, 0), geometry.Pt(2, 0))

	mid, _ := g.VertexAt(geometry.Pt(1, 0))
	err := g.RemoveVertex(mid)
	fmt.Println(err != nil, g.VertexCount())
	// Output:
	// true 3
}
