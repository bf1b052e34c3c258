package trace

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

// Log is an ordered, append-only event list. The zero value is ready to use;
// a nil *Log records nothing.
type Log struct {
	events []Event
}

// NewLog returns an empty Log.
func NewLog() *Log { return &Log{} }

// EdgeAdded records an inserted edge.
func (l *Log) EdgeAdded(from, to geometry.Coordinate) {
	l.add(Event{Kind: KindEdgeAdded, From: from, To: to})
}

// FaceRestricted records that work continues on the given vertices only.
func (l *Log) FaceRestricted(vertices []string) {
	l.add(Event{Kind: KindFaceRestricted, Vertices: append([]string(nil), vertices...)})
}

// ColorsUpdated records the new candidate set of vertex v.
func (l *Log) ColorsUpdated(v string, colors core.ColorSet) {
	l.add(Event{Kind: KindColorsUpdated, Vertex: v, Colors: colors})
}

// Narrate records a formatted narration line.
func (l *Log) Narrate(format string, args ...any) {
	if l == nil {
		return
	}
	l.add(Event{Kind: KindNarration, Text: fmt.Sprintf(format, args...)})
}

// Pause records a replay breakpoint.
func (l *Log) Pause() {
	l.add(Event{Kind: KindPause})
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}

	return len(l.events)
}

// Events returns a copy of the recorded events.
func (l *Log) Events() []Event {
	if l == nil {
		return nil
	}

	return append([]Event(nil), l.events...)
}

// Drain resets sink once and announces every event in recording order.
// A nil sink is ignored.
func (l *Log) Drain(sink Sink) {
	if sink == nil {
		return
	}
	sink.Reset()
	for _, e := range l.Events() {
		sink.Announce(e)
	}
}

func (l *Log) add(e Event) {
	if l == nil {
		return
	}
	e.Seq = len(l.events) + 1
	l.events = append(l.events, e)
}
