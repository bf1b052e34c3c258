// SPDX-License-Identifier: MIT

package trace

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Recorder is an in-memory Sink.
type Recorder struct {
	Resets int
	events []Event
}

// Reset discards recorded events.
func (r *Recorder) Reset() {
	r.Resets++
	r.events = nil
}

// Announce appends e.
func (r *Recorder) Announce(e Event) { r.events = append(r.events, e) }

// Events returns the events announced since the last Reset.
func (r *Recorder) Events() []Event { return append([]Event(nil), r.events...) }

// Kinds returns the kinds of Events, in order.
func (r *Recorder) Kinds() []Kind {
	out := make([]Kind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}

	return out
}

// ZapSink writes every event as one structured log entry.
type ZapSink struct {
	logger *zap.Logger
	level  zapcore.Level
}

// NewZapSink returns a sink logging at Debug level. A nil logger is replaced
// by zap.NewNop.
func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ZapSink{logger: logger, level: zapcore.DebugLevel}
}

// WithLevel returns a copy of s logging at lvl.
func (s *ZapSink) WithLevel(lvl zapcore.Level) *ZapSink {
	return &ZapSink{logger: s.logger, level: lvl}
}

// Reset logs the start of a new trace.
func (s *ZapSink) Reset() {
	s.logger.Log(s.level, "trace reset")
}

// Announce logs e with its kind-specific fields.
func (s *ZapSink) Announce(e Event) {
	fields := []zap.Field{zap.Int("seq", e.Seq), zap.Stringer("kind", e.Kind)}
	switch e.Kind {
	case KindEdgeAdded:
		fields = append(fields,
			zap.Float64s("from", []float64{e.From.X, e.From.Y}),
			zap.Float64s("to", []float64{e.To.X, e.To.Y}))
	case KindFaceRestricted:
		fields = append(fields, zap.Strings("vertices", e.Vertices))
	case KindColorsUpdated:
		fields = append(fields, zap.String("vertex", e.Vertex), zap.Stringer("colors", e.Colors))
	case KindNarration:
		fields = append(fields, zap.String("text", e.Text))
	}
	s.logger.Log(s.level, "step", fields...)
}

// Multi fans every call out to sinks, in order. Nil sinks are skipped.
func Multi(sinks ...Sink) Sink {
	var live multiSink
	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}

	return live
}

type multiSink []Sink

func (m multiSink) Reset() {
	for _, s := range m {
		s.Reset()
	}
}

func (m multiSink) Announce(e Event) {
	for _, s := range m {
		s.Announce(e)
	}
}
