// Package netdef implements the layer-graph configuration engine.
//
// It turns an ordered sequence of textual (name, value) declarations into a
// validated graph of layers and data nodes, re-validates an already-built
// graph against later declaration passes, and persists the graph's structural
// skeleton (never its free-form settings) in a compact binary form.
//
// The engine is single-threaded: a Config must be owned by one goroutine at
// a time, and every operation is a bounded in-memory scan with no internal
// synchronization.
package netdef
