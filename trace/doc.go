// Package trace records the decisions made while triangulating and coloring a
// planar graph, in the exact order they are taken, and replays them into a
// Sink.
//
// Event kinds:
//
//	KindEdgeAdded        an edge was inserted (From, To)
//	KindFaceRestricted   work narrowed to a subgraph (Vertices)
//	KindColorsUpdated    a candidate set changed (Vertex, Colors)
//	KindNarration        free text describing the current phase (Text)
//	KindPause            a replay breakpoint
//
// A *Log is append-only and nil-safe: every recording method on a nil *Log is
// a no-op, so algorithms can be called without tracing. Drain resets a sink
// once and announces every recorded event in order.
//
// Sinks shipped here:
//
//	Recorder   keeps events in memory (tests, replay/animation layers)
//	ZapSink    writes one structured zap entry per event
//	Multi      fans out to several sinks
package trace
