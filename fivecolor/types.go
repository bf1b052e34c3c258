// SPDX-License-Identifier: MIT

package fivecolor

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
	"github.com/katalvlaran/fivecolor/trace"
	"github.com/katalvlaran/fivecolor/triangulate"
)

var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("fivecolor: nil graph")

	// ErrDisconnected indicates input with more than one component.
	ErrDisconnected = errors.New("fivecolor: graph is not connected")

	// ErrNoMarks indicates a coloring step on a graph without colored marks.
	ErrNoMarks = errors.New("fivecolor: marks are missing or uncolored")

	// ErrUncolored indicates a vertex left with more than one candidate.
	ErrUncolored = errors.New("fivecolor: vertex has no final color")

	// ErrConflict indicates two adjacent vertices with the same color.
	ErrConflict = errors.New("fivecolor: adjacent vertices share a color")
)

// Options configures FiveColor.
type Options struct {
	// Sink receives the recorded decisions once the run succeeds (nil: none).
	Sink trace.Sink

	// Logger receives debug and summary entries (default: no-op).
	Logger *zap.Logger

	// Score ranks triangulation diagonals (default: triangulate.MaxMinDistance).
	Score triangulate.ScoreFunc
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults described on Options.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop(), Score: triangulate.MaxMinDistance}
}

// WithSink replays the trace into s.
func WithSink(s trace.Sink) Option {
	return func(o *Options) { o.Sink = s }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("fivecolor: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// WithScore sets the triangulation diagonal score. Panics on nil.
func WithScore(f triangulate.ScoreFunc) Option {
	if f == nil {
		panic("fivecolor: WithScore(nil)")
	}

	return func(o *Options) { o.Score = f }
}

// Result is the outcome of FiveColor.
type Result struct {
	// Graph is the hull-augmented, triangulated input with every vertex
	// holding exactly one candidate color.
	Graph *core.PlanarGraph

	// Log holds every recorded decision, in order.
	Log *trace.Log
}

// Color returns the color of the vertex at c.
func (r *Result) Color(c geometry.Coordinate) (core.Color, bool) {
	v, ok := r.Graph.VertexAt(c)
	if !ok {
		return 0, false
	}

	return r.Graph.ColorOf(v)
}

// Colors returns the color of every vertex, by coordinate.
func (r *Result) Colors() map[geometry.Coordinate]core.Color {
	out := make(map[geometry.Coordinate]core.Color, r.Graph.VertexCount())
	for _, v := range r.Graph.Vertices() {
		if c, ok := r.Graph.ColorOf(v); ok {
			out[r.Graph.Coord(v)] = c
		}
	}

	return out
}

// Used returns the set of colors appearing in the result.
func (r *Result) Used() core.ColorSet {
	var s core.ColorSet
	for _, c := range r.Colors() {
		s = s.Add(c)
	}

	return s
}
