// SPDX-License-Identifier: MIT

package trace

import (
	"fmt"

	"github.com/katalvlaran/fivecolor/core"
	"github.com/katalvlaran/fivecolor/geometry"
)

// Kind classifies an Event.
type Kind int

const (
	KindEdgeAdded Kind = iota
	KindFaceRestricted
	KindColorsUpdated
	KindNarration
	KindPause
)

var kindNames = [...]string{"edge-added", "face-restricted", "colors-updated", "narration", "pause"}

// String returns the kind name.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is one announced decision. Only the fields relevant to Kind are set.
type Event struct {
	// Seq is the 1-based position of the event in its Log.
	Seq  int
	Kind Kind

	// From and To are the endpoints of an added edge.
	From, To geometry.Coordinate

	// Vertices are the vertex keys of a restricted subgraph.
	Vertices []string

	// Vertex and Colors describe a candidate-set update.
	Vertex string
	Colors core.ColorSet

	// Text is the narration line.
	Text string
}

// Sink consumes announced events. Implementations decide how (or whether)
// events are rendered or stored.
type Sink interface {
	// Reset discards any state from a previous run.
	Reset()

	// Announce receives the next event.
	Announce(Event)
}
