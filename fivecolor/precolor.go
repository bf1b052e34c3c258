package fivecolor

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/trace"
)

// PreColor prepares a triangulated graph with a simple outer cycle for the
// coloring recursion:
//
//   - mark1 and mark2 are the endpoints of the infinite face's incident
//     half-edge, so they are consecutive on the outer cycle;
//   - every vertex starts with all five candidates;
//   - other outer-cycle vertices keep the first three;
//   - mark1 becomes {Red} and mark2 {Blue}.
//
// Every narrowed set is recorded on log (which may be nil).
//
// Errors: ErrNoMarks when g has no edge.
func PreColor(g *core.PlanarGraph, log *trace.Log) error {
	inf, _ := g.Face(g.InfiniteFace())
	if inf.Incident == "" {
		return errors.Wrap(ErrNoMarks, "PreColor: graph has no edge")
	}
	he, _ := g.HalfEdge(inf.Incident)
	m1, m2 := he.Origin, g.Destination(inf.Incident)
	if err := g.SetMarks(m1, m2); err != nil {
		return errors.Wrap(err, "PreColor")
	}
	log.Narrate("pre-color: %s and %s are the marks; every vertex starts with all five colors", m1, m2)

	for _, v := range g.Vertices() {
		if err := g.SetCandidates(v, core.AllColors); err != nil {
			return errors.Wrap(err, "PreColor")
		}
	}
	outer := core.AllColors.FirstN(3)
	for _, v := range unique(g.BoundaryVertices(g.InfiniteFace())) {
		if v == m1 || v == m2 {
			continue
		}
		if err := restrict(g, log, v, outer); err != nil {
			return errors.Wrap(err, "PreColor")
		}
	}
	if err := restrict(g, log, m1, core.NewColorSet(core.Red)); err != nil {
		return errors.Wrap(err, "PreColor")
	}
	if err := restrict(g, log, m2, core.NewColorSet(core.Blue)); err != nil {
		return errors.Wrap(err, "PreColor")
	}

	return nil
}

// restrict narrows cand(v) to allowed and records the change, if any.
func restrict(g *core.PlanarGraph, log *trace.Log, v string, allowed core.ColorSet) error {
	before := g.Candidates(v)
	after, err := g.RestrictColors(v, allowed)
	if err != nil {
		return errors.Wrapf(err, "restrict %s to %s", v, allowed)
	}
	if after != before {
		log.ColorsUpdated(v, after)
	}

	return nil
}

// transfer narrows every vertex of g that also lives in sub to sub's set.
func transfer(g, sub *core.PlanarGraph) error {
	for _, v := range sub.Vertices() {
		if _, err := g.RestrictColors(v, sub.Candidates(v)); err != nil {
			return errors.Wrapf(err, "transfer %s", v)
		}
	}

	return nil
}

// unique drops repeated keys, keeping first occurrences.
func unique(keys []string) []string {
	seen := make(map[string]bool, len(keys))
	out := keys[:0:0]
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}

	return out
}
