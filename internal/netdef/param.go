package netdef

import (
	"fmt"
)

// Shape3 is a fixed three-dimensional input shape in (channel, height, width)
// order, excluding the batch dimension.
type Shape3 [3]uint32

// Channel returns the channel dimension.
func (s Shape3) Channel() uint32 { return s[0] }

// Height returns the height dimension.
func (s Shape3) Height() uint32 { return s[1] }

// Width returns the width dimension.
func (s Shape3) Width() uint32 { return s[2] }

// String formats the shape the way declarations spell it: "c,h,w".
func (s Shape3) String() string {
	return fmt.Sprintf("%d,%d,%d", s[0], s[1], s[2])
}

// NetParam aggregates graph-level metadata: how many data nodes and layers
// the graph has, the fixed input shape, and whether the structure has been
// finalized.
//
// NumNodes and NumLayers are computed at finalization; InputShape is mutable
// only before finalization. Once finalized, Configure passes validate against
// the existing structure instead of growing it.
type NetParam struct {
	NumNodes   int32
	NumLayers  int32
	InputShape Shape3

	initEnd int32
}

// Finalized reports whether the graph structure is fixed.
func (p *NetParam) Finalized() bool { return p.initEnd != 0 }
