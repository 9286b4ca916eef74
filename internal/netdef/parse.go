package netdef

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/netforge-ml/netforge/internal/layer"
)

// parseLayerDecl turns one layer declaration into a descriptor.
//
// The name token takes one of two forms:
//
//	layer[A->B]  explicit input node A and output node B
//	layer[+B]    input = topNode, output = topNode + B
//
// The value token is "<type>" or "<type>:<tag>". A successful non-shared
// parse registers the tag (when present) against index; a shared parse
// resolves the tag through the registry instead.
func (c *Config) parseLayerDecl(name, val string, topNode int32, index int) (LayerDesc, error) {
	desc := LayerDesc{PrimaryLayer: -1}

	body, ok := strings.CutPrefix(name, "layer[")
	if !ok || !strings.HasSuffix(body, "]") {
		return desc, fmt.Errorf("invalid layer format %q", name)
	}
	body = strings.TrimSuffix(body, "]")

	if in, out, found := strings.Cut(body, "->"); found {
		a, errA := parseNodeIndex(in)
		b, errB := parseNodeIndex(out)
		if errA != nil || errB != nil {
			return desc, fmt.Errorf("invalid layer format %q", name)
		}
		desc.NodesIn = []int32{a}
		desc.NodesOut = []int32{b}
	} else if rel, found := strings.CutPrefix(body, "+"); found {
		b, err := parseNodeIndex(rel)
		if err != nil {
			return desc, fmt.Errorf("invalid layer format %q", name)
		}
		desc.NodesIn = []int32{topNode}
		desc.NodesOut = []int32{topNode + b}
	} else {
		return desc, fmt.Errorf("invalid layer format %q", name)
	}

	typeName, tag := val, ""
	if t, rest, found := strings.Cut(val, ":"); found && t != "" && rest != "" {
		typeName, tag = t, rest
	}
	lt, err := layer.TypeFromName(typeName)
	if err != nil {
		return desc, err
	}
	desc.Type = lt

	if lt == layer.Shared {
		if tag == "" {
			return desc, ErrSharedTagMissing
		}
		primary, ok := c.names[tag]
		if !ok {
			return desc, fmt.Errorf("shared layer tag %q is not defined before", tag)
		}
		desc.PrimaryLayer = int32(primary)
	} else if tag != "" {
		// Re-registering a tag at its own index keeps re-validation
		// passes idempotent.
		if prev, ok := c.names[tag]; ok && prev != index {
			return desc, fmt.Errorf("layer tag %q is already defined", tag)
		}
		c.names[tag] = index
	}
	return desc, nil
}

// parseNodeIndex parses one non-negative node index.
func parseNodeIndex(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid node index %q", s)
	}
	return int32(v), nil
}
