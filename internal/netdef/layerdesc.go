package netdef

import (
	"github.com/netforge-ml/netforge/internal/layer"
)

// LayerDesc describes one declared layer: its type, its shared-layer linkage,
// and the data nodes it reads and writes. A descriptor is immutable once the
// declaration that produced it has been accepted; re-validation passes only
// compare against it.
//
// This version supports one input and one output node per layer; the index
// sequences exist so the wire format can grow fan-in/fan-out later.
type LayerDesc struct {
	// Type is the layer kind from the catalog.
	Type layer.Type

	// PrimaryLayer is the index of the layer whose parameters this layer
	// reuses. Only meaningful when Type is layer.Shared; -1 otherwise.
	PrimaryLayer int32

	// NodesIn and NodesOut are the input and output data node indices.
	NodesIn  []int32
	NodesOut []int32
}

// Equal reports whether two descriptors declare the same layer: same type,
// same shared linkage and element-wise equal node index sequences.
func (d LayerDesc) Equal(o LayerDesc) bool {
	if d.Type != o.Type ||
		d.PrimaryLayer != o.PrimaryLayer ||
		len(d.NodesIn) != len(o.NodesIn) ||
		len(d.NodesOut) != len(o.NodesOut) {
		return false
	}
	for i := range d.NodesIn {
		if d.NodesIn[i] != o.NodesIn[i] {
			return false
		}
	}
	for i := range d.NodesOut {
		if d.NodesOut[i] != o.NodesOut[i] {
			return false
		}
	}
	return true
}
