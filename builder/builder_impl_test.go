// Package builder_test contains functional tests for the planar fixture
// constructors: vertex, edge and face counts plus structural validity.
package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/fivecolor/builder"
	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        []builder.BuilderOption
		ctor        builder.Constructor
		wantV       int
		wantE       int
		wantF       int // bounded faces
		sampleCheck func(t *testing.T, g *core.PlanarGraph)
	}{
		{
			name: "Cycle(5)", ctor: builder.Cycle(5),
			wantV: 5, wantE: 5, wantF: 1,
			sampleCheck: func(t *testing.T, g *core.PlanarGraph) {
				top, ok := g.VertexAt(geometry.Pt(0, builder.DefaultRadius))
				if !ok {
					t.Fatal("Cycle: vertex 0 is not at the top of the ring")
				}
				if d := g.Degree(top); d != 2 {
					t.Errorf("Cycle: degree(top)=%d, want 2", d)
				}
			},
		},
		{
			name: "Path(4)", ctor: builder.Path(4),
			opts:  []builder.BuilderOption{builder.WithSpacing(2)},
			wantV: 4, wantE: 3, wantF: 0,
			sampleCheck: func(t *testing.T, g *core.PlanarGraph) {
				for _, x := range []float64{0, 2, 4, 6} {
					if _, ok := g.VertexAt(geometry.Pt(x, 0)); !ok {
						t.Errorf("Path: missing vertex at x=%v", x)
					}
				}
			},
		},
		{
			name: "Star(5)", ctor: builder.Star(5),
			wantV: 5, wantE: 4, wantF: 0,
			sampleCheck: func(t *testing.T, g *core.PlanarGraph) {
				hub, ok := g.VertexAt(geometry.Pt(0, 0))
				if !ok || g.Degree(hub) != 4 {
					t.Errorf("Star: hub missing or wrong degree")
				}
			},
		},
		{
			name: "Wheel(7)", ctor: builder.Wheel(7),
			wantV: 7, wantE: 12, wantF: 6,
			sampleCheck: func(t *testing.T, g *core.PlanarGraph) {
				for _, f := range g.Faces() {
					if f == g.InfiniteFace() {
						continue
					}
					if n := len(g.BoundaryVertices(f)); n != 3 {
						t.Errorf("Wheel: face %s has %d corners, want 3", f, n)
					}
				}
			},
		},
		{
			name: "Grid(3,4)", ctor: builder.Grid(3, 4),
			wantV: 12, wantE: 17, wantF: 6,
		},
		{
			name: "Polygon(dart)",
			ctor: builder.Polygon(geometry.Pt(0, 0), geometry.Pt(4, 0), geometry.Pt(2, 1), geometry.Pt(2, 4)),
			wantV: 4, wantE: 4, wantF: 1,
		},
		{
			name: "Tetrahedron", ctor: builder.PlatonicSolid(builder.Tetrahedron),
			wantV: 4, wantE: 6, wantF: 3,
		},
		{
			name: "Cube", ctor: builder.PlatonicSolid(builder.Cube),
			wantV: 8, wantE: 12, wantF: 5,
		},
		{
			name: "Octahedron", ctor: builder.PlatonicSolid(builder.Octahedron),
			wantV: 6, wantE: 12, wantF: 7,
		},
		{
			name: "Dodecahedron", ctor: builder.PlatonicSolid(builder.Dodecahedron),
			wantV: 20, wantE: 30, wantF: 11,
		},
		{
			name: "Icosahedron", ctor: builder.PlatonicSolid(builder.Icosahedron),
			wantV: 12, wantE: 30, wantF: 19,
		},
		{
			name: "RandomTree(25)", ctor: builder.RandomTree(25),
			opts:  []builder.BuilderOption{builder.WithSeed(7)},
			wantV: 25, wantE: 24, wantF: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			if err != nil {
				t.Fatalf("BuildGraph: %v", err)
			}
			if got := g.VertexCount(); got != tc.wantV {
				t.Errorf("vertices: got %d, want %d", got, tc.wantV)
			}
			if got := g.EdgeCount(); got != tc.wantE {
				t.Errorf("edges: got %d, want %d", got, tc.wantE)
			}
			if got := g.BoundedFaceCount(); got != tc.wantF {
				t.Errorf("bounded faces: got %d, want %d", got, tc.wantF)
			}
			if err := g.Check(); err != nil {
				t.Errorf("Check: %v", err)
			}
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

// TestBuilders_Compose verifies that constructors share coordinates.
func TestBuilders_Compose(t *testing.T) {
	t.Parallel()

	// The wheel rim is a cycle already present, so only the spokes are new.
	g, err := builder.BuildGraph(nil, builder.Cycle(6), builder.Wheel(7))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if g.VertexCount() != 7 || g.EdgeCount() != 12 {
		t.Errorf("compose: got V=%d E=%d, want 7 and 12", g.VertexCount(), g.EdgeCount())
	}

	// A random tree hung off a cycle adds exactly n leaves.
	g, err = builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(3)}, builder.Cycle(4), builder.RandomTree(5))
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}
	if g.VertexCount() != 9 || g.EdgeCount() != 9 {
		t.Errorf("tree on cycle: got V=%d E=%d, want 9 and 9", g.VertexCount(), g.EdgeCount())
	}
	if err := g.Check(); err != nil {
		t.Errorf("Check: %v", err)
	}
}

// TestBuilders_Deterministic verifies that a seed fixes the random layout.
func TestBuilders_Deterministic(t *testing.T) {
	t.Parallel()

	coords := func() []geometry.Coordinate {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(11)}, builder.RandomTree(30))
		if err != nil {
			t.Fatalf("BuildGraph: %v", err)
		}
		out := make([]geometry.Coordinate, 0, g.VertexCount())
		for _, v := range g.Vertices() {
			out = append(out, g.Coord(v))
		}

		return out
	}
	a, b := coords(), coords()
	if len(a) != len(b) {
		t.Fatalf("length mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !geometry.Equal(a[i], b[i]) {
			t.Errorf("vertex %d: %v vs %v", i, a[i], b[i])
		}
	}
}

// TestBuilders_Errors covers the sentinel errors of every constructor.
func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", nil, builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", nil, builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", nil, builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", nil, builder.Wheel(3), builder.ErrTooFewVertices},
		{"Grid(1,5)", nil, builder.Grid(1, 5), builder.ErrTooFewVertices},
		{"Polygon(2)", nil, builder.Polygon(geometry.Pt(0, 0), geometry.Pt(1, 0)), builder.ErrTooFewVertices},
		{"PlatonicSolid(unknown)", nil, builder.PlatonicSolid("Torus"), builder.ErrOptionViolation},
		{"RandomTree(1)", nil, builder.RandomTree(1), builder.ErrTooFewVertices},
		{"RandomTree without rng", nil, builder.RandomTree(5), builder.ErrNeedRandSource},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
		{
			"self-crossing polygon", nil,
			builder.Polygon(geometry.Pt(0, 0), geometry.Pt(2, 2), geometry.Pt(2, 0), geometry.Pt(0, 2)),
			core.ErrNoValidSplit,
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(tc.opts, tc.ctor)
			if !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}
}
