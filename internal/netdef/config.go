package netdef

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/netforge-ml/netforge/internal/layer"
)

// Setting is one (name, value) declaration pair.
type Setting struct {
	Name  string
	Value string
}

// Config is one layer-graph configuration: the network parameters, the
// ordered layer descriptors, the tag registry for shared-layer linkage, and
// the free-form settings produced by the most recent Configure pass.
//
// The free-form settings (Global and LayerSettings) are cleared at the start
// of every Configure call and are never serialized; they exist only for the
// downstream layer-instantiation code.
type Config struct {
	// Param holds the graph-level metadata.
	Param NetParam

	// Layers holds one descriptor per declared layer, in declaration order.
	Layers []LayerDesc

	// Updater names the parameter update rule. Training metadata only: it
	// is overridable at any time and is not part of the serialized structure.
	Updater string

	// Global holds network-wide default settings from the latest pass.
	Global []Setting

	// LayerSettings holds, per layer index, the settings scoped to that
	// layer from the latest pass.
	LayerSettings [][]Setting

	// names maps a declared layer tag to the declaring layer's index.
	names map[string]int
}

// New returns an empty configuration ready for a first Configure pass.
func New() *Config {
	return &Config{
		Updater: "sgd",
		names:   make(map[string]int),
	}
}

// Scan mode during Configure. A layer declaration or a "netconfig: end"
// marker moves the scan into layerSeen; settings before that point are
// global defaults, settings after it belong to the latest layer.
const (
	scanOutside = iota
	scanStarted
	scanLayerSeen
)

// Configure consumes one full ordered declaration pass.
//
// On the first pass the graph is grown layer by layer and then finalized.
// On every later pass the graph is re-validated: each layer declaration must
// match the existing descriptor at its index, and nothing structural may
// change. Free-form settings are cleared and repopulated on every pass.
//
// Any failure aborts the whole call; the settings collections are then in an
// unspecified partial state but the graph structure itself is only mutated
// by a successful first pass.
func (c *Config) Configure(settings []Setting) error {
	c.clearSettings()

	mode := scanOutside
	topNode := int32(0)
	layerIndex := 0

	for _, s := range settings {
		switch {
		case s.Name == "input_shape":
			if c.Param.Finalized() {
				continue
			}
			shape, err := parseShape3(s.Value)
			if err != nil {
				return err
			}
			c.Param.InputShape = shape

		case s.Name == "updater":
			c.Updater = s.Value

		case s.Name == "netconfig":
			switch s.Value {
			case "start":
				mode = scanStarted
			case "end":
				mode = scanLayerSeen
			}

		case strings.HasPrefix(s.Name, "layer["):
			desc, err := c.parseLayerDecl(s.Name, s.Value, topNode, layerIndex)
			if err != nil {
				return err
			}
			mode = scanLayerSeen
			if !c.Param.Finalized() {
				if len(c.Layers) != layerIndex {
					return ErrConfigInconsistent
				}
				c.Layers = append(c.Layers, desc)
				c.LayerSettings = append(c.LayerSettings, nil)
			} else {
				if layerIndex >= len(c.Layers) || !desc.Equal(c.Layers[layerIndex]) {
					return ErrStructureMismatch
				}
			}
			if len(desc.NodesOut) != 0 {
				topNode = desc.NodesOut[0]
			}
			layerIndex++

		default:
			if mode == scanLayerSeen && layerIndex > 0 {
				if c.Layers[layerIndex-1].Type == layer.Shared {
					return ErrSharedLayerSetting
				}
				c.LayerSettings[layerIndex-1] = append(c.LayerSettings[layerIndex-1], s)
			} else {
				c.Global = append(c.Global, s)
			}
		}
	}

	if !c.Param.Finalized() {
		c.finalize()
	}
	return nil
}

// finalize freezes the graph structure: node count becomes the maximum
// referenced node index plus one, layer count the descriptor count.
func (c *Config) finalize() {
	c.Param.NumNodes = 0
	c.Param.NumLayers = int32(len(c.Layers))
	for _, d := range c.Layers {
		for _, n := range d.NodesIn {
			if n+1 > c.Param.NumNodes {
				c.Param.NumNodes = n + 1
			}
		}
		for _, n := range d.NodesOut {
			if n+1 > c.Param.NumNodes {
				c.Param.NumNodes = n + 1
			}
		}
	}
	c.Param.initEnd = 1
}

// clearSettings drops all free-form settings while keeping the per-layer
// slots sized to the layer count.
func (c *Config) clearSettings() {
	c.Global = nil
	for i := range c.LayerSettings {
		c.LayerSettings[i] = nil
	}
}

// parseShape3 parses an input_shape value: three comma-separated unsigned
// integers in (channel, height, width) order.
func parseShape3(val string) (Shape3, error) {
	var shape Shape3
	parts := strings.Split(val, ",")
	if len(parts) != 3 {
		return shape, fmt.Errorf("input_shape must be three comma-separated integers, for example 1,1,200: got %q", val)
	}
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return shape, fmt.Errorf("input_shape must be three comma-separated integers, for example 1,1,200: got %q", val)
		}
		shape[i] = uint32(v)
	}
	return shape, nil
}
