package conf

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/netforge-ml/netforge/internal/netdef"
)

// ParseYAML reads declarations from a YAML document.
//
// The document is either a single mapping or a sequence of mappings; every
// scalar (key: value) pair becomes one declaration. Decoding goes through
// yaml.Node rather than a map so that document order survives — the engine's
// grammar is order-sensitive. Repeated keys (for example the same setting on
// several layers) are expressed as separate mappings in a sequence.
func ParseYAML(data []byte) ([]netdef.Setting, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse yaml config: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]

	var settings []netdef.Setting
	switch root.Kind {
	case yaml.MappingNode:
		return appendMapping(settings, root)
	case yaml.SequenceNode:
		var err error
		for _, item := range root.Content {
			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("yaml config: line %d: expected a mapping", item.Line)
			}
			if settings, err = appendMapping(settings, item); err != nil {
				return nil, err
			}
		}
		return settings, nil
	default:
		return nil, fmt.Errorf("yaml config: expected a mapping or a sequence of mappings")
	}
}

// appendMapping appends the scalar pairs of one mapping node in order.
func appendMapping(settings []netdef.Setting, node *yaml.Node) ([]netdef.Setting, error) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		if key.Kind != yaml.ScalarNode || val.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("yaml config: line %d: keys and values must be scalars", key.Line)
		}
		settings = append(settings, netdef.Setting{Name: key.Value, Value: val.Value})
	}
	return settings, nil
}
