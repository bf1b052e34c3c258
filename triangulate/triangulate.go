package triangulate

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/fivecolor/core"
)

// IsTriangulated reports whether every bounded face of g has exactly three
// boundary edges. The infinite face is exempt.
func IsTriangulated(g *core.PlanarGraph) bool {
	for _, f := range g.Faces() {
		if f == g.InfiniteFace() {
			continue
		}
		if len(g.BoundaryEdges(f)) != 3 {
			return false
		}
	}

	return true
}

// Triangulate returns a copy of g in which every bounded face is a triangle.
//
// Implementation:
//   - Stage 1: scan bounded faces in key order for one with more than three
//     boundary edges.
//   - Stage 2: score every candidate diagonal of that face (see package doc)
//     and insert the best one.
//   - Stage 3: rescan from the start until no face qualifies.
//
// Only edges are added. Each insertion splits one face, so at most 3V−6 edges
// are ever present and the loop terminates.
//
// Errors: ErrNilGraph, ErrNoDiagonal and wrapped core errors; all of them mean
// g was not a valid embedding.
// Complexity: O(E·F·B²) in the worst case for boundary length B.
func Triangulate(g *core.PlanarGraph, opts ...Option) (*core.PlanarGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := resolve(opts)
	out := g.Clone()

	added := 0
	for {
		f, ok := nextOversizedFace(out)
		if !ok {
			break
		}
		a, b, ok := bestDiagonal(out, f, o.Score)
		if !ok {
			return nil, errors.Wrapf(ErrNoDiagonal, "face %s", f)
		}
		ca, cb := out.Coord(a), out.Coord(b)
		if _, err := out.InsertEdge(ca, cb); err != nil {
			return nil, errors.Wrapf(err, "diagonal %s-%s of face %s", a, b, f)
		}
		o.Log.EdgeAdded(ca, cb)
		o.Logger.Debug("diagonal", zap.String("face", f), zap.String("a", a), zap.String("b", b))
		added++
	}
	o.Logger.Debug("triangulated", zap.Int("added", added), zap.Int("faces", out.BoundedFaceCount()))

	return out, nil
}

// nextOversizedFace returns the first bounded face with more than three edges.
func nextOversizedFace(g *core.PlanarGraph) (string, bool) {
	for _, f := range g.Faces() {
		if f != g.InfiniteFace() && len(g.BoundaryEdges(f)) > 3 {
			return f, true
		}
	}

	return "", false
}

// bestDiagonal returns the highest-scoring valid diagonal of face f, earliest
// in boundary order on ties.
func bestDiagonal(g *core.PlanarGraph, f string, score ScoreFunc) (string, string, bool) {
	vs := g.BoundaryVertices(f)
	var (
		bestA, bestB string
		best         float64
		found        bool
	)
	for i := 0; i < len(vs); i++ {
		for j := i + 1; j < len(vs); j++ {
			a, b := vs[i], vs[j]
			if a == b || g.Adjacent(a, b) {
				continue
			}
			if g.SplitFaceKey(g.Coord(a), g.Coord(b)) != f {
				continue
			}
			s := score(g, f, a, b)
			if !found || s > best {
				bestA, bestB, best, found = a, b, s, true
			}
		}
	}

	return bestA, bestB, found
}
