// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

// PlatonicName identifies one of the five Platonic solids.
type PlatonicName string

// Supported solids.
const (
	Tetrahedron  PlatonicName = "Tetrahedron"
	Cube         PlatonicName = "Cube"
	Octahedron   PlatonicName = "Octahedron"
	Dodecahedron PlatonicName = "Dodecahedron"
	Icosahedron  PlatonicName = "Icosahedron"
)

// Ring radii of the Schlegel layouts, as fractions of cfg.radius.
const (
	innerCubeRatio   = 0.5
	innerOctaRatio   = 0.25
	middleDodecRatio = 0.7
	innerDodecRatio  = 0.4
	middleIcosaRatio = 0.4
	innerIcosaRatio  = 0.15
)

// PlatonicSolid returns a Constructor that draws the Schlegel diagram of the
// named solid: the skeleton projected into one face, which becomes the outer
// boundary. All layouts are concentric rings around cfg.center.
//
//	Solid         V   E   bounded faces
//	Tetrahedron   4   6   3
//	Cube          8   12  5
//	Octahedron    6   12  7
//	Dodecahedron  20  30  11
//	Icosahedron   12  30  19
//
// Errors: ErrOptionViolation for an unknown name.
func PlatonicSolid(name PlatonicName) Constructor {
	return func(g *core.PlanarGraph, cfg builderConfig) error {
		var edges [][2]geometry.Coordinate
		switch name {
		case Tetrahedron:
			edges = tetrahedronEdges(cfg)
		case Cube:
			edges = cubeEdges(cfg)
		case Octahedron:
			edges = octahedronEdges(cfg)
		case Dodecahedron:
			edges = dodecahedronEdges(cfg)
		case Icosahedron:
			edges = icosahedronEdges(cfg)
		default:
			return fmt.Errorf("%s: unknown solid %q: %w", MethodPlatonicSolid, name, ErrOptionViolation)
		}
		for _, e := range edges {
			if err := connect(g, MethodPlatonicSolid, e[0], e[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// ringEdges lists the closed polygon through pts.
func ringEdges(pts []geometry.Coordinate) [][2]geometry.Coordinate {
	out := make([][2]geometry.Coordinate, len(pts))
	for i := range pts {
		out[i] = [2]geometry.Coordinate{pts[i], pts[(i+1)%len(pts)]}
	}

	return out
}

// tetrahedronEdges: outer triangle plus a center joined to all three.
func tetrahedronEdges(cfg builderConfig) [][2]geometry.Coordinate {
	outer := ringPoints(3, cfg.center, cfg.radius, 0)
	edges := ringEdges(outer)
	for _, p := range outer {
		edges = append(edges, [2]geometry.Coordinate{cfg.center, p})
	}

	return edges
}

// cubeEdges: two aligned squares joined radially.
func cubeEdges(cfg builderConfig) [][2]geometry.Coordinate {
	outer := ringPoints(4, cfg.center, cfg.radius, math.Pi/4)
	inner := ringPoints(4, cfg.center, cfg.radius*innerCubeRatio, math.Pi/4)
	edges := ringEdges(outer)
	for i := range outer {
		edges = append(edges, [2]geometry.Coordinate{outer[i], inner[i]})
	}

	return append(edges, ringEdges(inner)...)
}

// octahedronEdges: an outer triangle and a rotated inner triangle, each outer
// vertex joined to the two inner vertices flanking it.
func octahedronEdges(cfg builderConfig) [][2]geometry.Coordinate {
	outer := ringPoints(3, cfg.center, cfg.radius, 0)
	inner := ringPoints(3, cfg.center, cfg.radius*innerOctaRatio, math.Pi/3)
	edges := ringEdges(outer)
	for i := range outer {
		edges = append(edges,
			[2]geometry.Coordinate{outer[i], inner[i]},
			[2]geometry.Coordinate{outer[i], inner[(i+2)%3]})
	}

	return append(edges, ringEdges(inner)...)
}

// dodecahedronEdges: outer pentagon, a middle 10-ring and an inner pentagon.
// Outer vertex i meets middle vertex 2i, inner vertex i meets middle 2i+1.
func dodecahedronEdges(cfg builderConfig) [][2]geometry.Coordinate {
	outer := ringPoints(5, cfg.center, cfg.radius, 0)
	middle := ringPoints(10, cfg.center, cfg.radius*middleDodecRatio, 0)
	inner := ringPoints(5, cfg.center, cfg.radius*innerDodecRatio, math.Pi/5)
	edges := ringEdges(outer)
	for i := range outer {
		edges = append(edges, [2]geometry.Coordinate{outer[i], middle[2*i]})
	}
	edges = append(edges, ringEdges(middle)...)
	for i := range inner {
		edges = append(edges, [2]geometry.Coordinate{middle[2*i+1], inner[i]})
	}

	return append(edges, ringEdges(inner)...)
}

// icosahedronEdges: outer triangle, a middle hexagon and an inner triangle.
// Outer vertex i fans to middle 2i-1, 2i, 2i+1; inner vertex i (between
// outer i and i+1) fans to middle 2i, 2i+1, 2i+2.
func icosahedronEdges(cfg builderConfig) [][2]geometry.Coordinate {
	outer := ringPoints(3, cfg.center, cfg.radius, 0)
	middle := ringPoints(6, cfg.center, cfg.radius*middleIcosaRatio, 0)
	inner := ringPoints(3, cfg.center, cfg.radius*innerIcosaRatio, math.Pi/3)
	edges := ringEdges(outer)
	for i := range outer {
		for _, j := range []int{2*i + 5, 2 * i, 2*i + 1} {
			edges = append(edges, [2]geometry.Coordinate{outer[i], middle[j%6]})
		}
	}
	edges = append(edges, ringEdges(middle)...)
	for i := range inner {
		for _, j := range []int{2 * i, 2*i + 1, 2*i + 2} {
			edges = append(edges, [2]geometry.Coordinate{middle[j%6], inner[i]})
		}
	}

	return append(edges, ringEdges(inner)...)
}
