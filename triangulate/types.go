// SPDX-License-Identifier: MIT

package triangulate

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
	"github.com/katalvlaran/fivecolor/trace"
)

var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("triangulate: nil graph")

	// ErrNoDiagonal indicates a bounded face with more than three edges that
	// admits no diagonal. It cannot happen on a valid embedding.
	ErrNoDiagonal = errors.New("triangulate: face admits no diagonal")
)

// ScoreFunc rates the diagonal a–b of face f; higher is better.
type ScoreFunc func(g *core.PlanarGraph, f, a, b string) float64

// MaxMinDistance scores a diagonal by the distance from it to the closest
// other boundary vertex of the face.
func MaxMinDistance(g *core.PlanarGraph, f, a, b string) float64 {
	return geometry.MinDistance(g.BoundaryCoordinates(f), g.Coord(a), g.Coord(b))
}

// FirstValid gives every diagonal the same score, so the first valid pair wins.
func FirstValid(*core.PlanarGraph, string, string, string) float64 { return 0 }

// Options configures Hullify and Triangulate.
type Options struct {
	// Log receives one KindEdgeAdded event per inserted edge (nil: no events).
	Log *trace.Log

	// Logger receives debug entries (default: no-op).
	Logger *zap.Logger

	// Score ranks diagonal candidates (default: MaxMinDistance).
	Score ScoreFunc
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults described on Options.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop(), Score: MaxMinDistance}
}

// WithLog records inserted edges on l.
func WithLog(l *trace.Log) Option {
	return func(o *Options) { o.Log = l }
}

// WithLogger sets the debug logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("triangulate: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// WithScore sets the diagonal scoring function. Panics on nil.
func WithScore(f ScoreFunc) Option {
	if f == nil {
		panic("triangulate: WithScore(nil)")
	}

	return func(o *Options) { o.Score = f }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
