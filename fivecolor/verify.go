package fivecolor

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/fivecolor/converters"
	"github.com/katalvlaran/fivecolor/core"
)

// Verify checks that every vertex of g holds exactly one color and that no
// edge joins two vertices of the same color.
//
// Errors: ErrUncolored, ErrConflict.
func Verify(g *core.PlanarGraph) error {
	for _, v := range g.Vertices() {
		if _, ok := g.ColorOf(v); !ok {
			return errors.Wrapf(ErrUncolored, "vertex %s holds %s", v, g.Candidates(v))
		}
	}

	u, m := converters.ToUndirected(g)
	edges := u.Edges()
	for edges.Next() {
		e := edges.Edge()
		a, b := m.Keys[e.From().ID()], m.Keys[e.To().ID()]
		ca, _ := g.ColorOf(a)
		cb, _ := g.ColorOf(b)
		if ca == cb {
			return errors.Wrapf(ErrConflict, "%s-%s are both %s", a, b, ca)
		}
	}

	return nil
}
