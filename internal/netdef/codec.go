package netdef

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/netforge-ml/netforge/internal/layer"
)

// Wire layout constants. All multi-byte values are little-endian.
const (
	// reservedWords is the number of zeroed int32 slots appended to the
	// parameter record so the format can grow without breaking old readers.
	reservedWords = 32
)

// paramRecord is the fixed-layout network parameter record, 152 bytes.
type paramRecord struct {
	NumNodes   int32
	NumLayers  int32
	InputShape [3]uint32
	InitEnd    int32
	Reserved   [reservedWords]int32
}

// Save writes the graph's structural skeleton to w: the fixed parameter
// record, then one record per layer in declaration order. Free-form settings,
// the updater name and the tag registry are never written.
func (c *Config) Save(w io.Writer) error {
	if c.Param.NumLayers != int32(len(c.Layers)) {
		return ErrModelInconsistent
	}
	rec := paramRecord{
		NumNodes:   c.Param.NumNodes,
		NumLayers:  c.Param.NumLayers,
		InputShape: c.Param.InputShape,
		InitEnd:    c.Param.initEnd,
	}
	if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
		return fmt.Errorf("failed to write net parameters: %w", err)
	}
	for i := range c.Layers {
		d := &c.Layers[i]
		if err := binary.Write(w, binary.LittleEndian, d.PrimaryLayer); err != nil {
			return fmt.Errorf("failed to write layer %d: %w", i, err)
		}
		if err := binary.Write(w, binary.LittleEndian, int32(d.Type)); err != nil {
			return fmt.Errorf("failed to write layer %d: %w", i, err)
		}
		if err := writeIndexVec(w, d.NodesIn); err != nil {
			return fmt.Errorf("failed to write layer %d: %w", i, err)
		}
		if err := writeIndexVec(w, d.NodesOut); err != nil {
			return fmt.Errorf("failed to write layer %d: %w", i, err)
		}
	}
	return nil
}

// Load reads a structural skeleton from r, replacing the receiver's graph.
// The loaded graph carries no free-form settings; it is ready for a
// re-validation Configure pass.
func (c *Config) Load(r io.Reader) error {
	var rec paramRecord
	if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidModel, err)
	}
	if rec.NumLayers < 0 {
		return fmt.Errorf("%w: negative layer count", ErrInvalidModel)
	}
	c.Param.NumNodes = rec.NumNodes
	c.Param.NumLayers = rec.NumLayers
	c.Param.InputShape = rec.InputShape
	c.Param.initEnd = rec.InitEnd

	c.Layers = make([]LayerDesc, rec.NumLayers)
	c.LayerSettings = make([][]Setting, rec.NumLayers)
	c.names = make(map[string]int)
	for i := range c.Layers {
		d := &c.Layers[i]
		if err := binary.Read(r, binary.LittleEndian, &d.PrimaryLayer); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidModel, err)
		}
		var t int32
		if err := binary.Read(r, binary.LittleEndian, &t); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidModel, err)
		}
		d.Type = layer.Type(t)
		var err error
		if d.NodesIn, err = readIndexVec(r); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidModel, err)
		}
		if d.NodesOut, err = readIndexVec(r); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidModel, err)
		}
	}
	c.clearSettings()
	return nil
}

// writeIndexVec writes a length-prefixed node index sequence.
func writeIndexVec(w io.Writer, v []int32) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(v))); err != nil {
		return err
	}
	return binary.Write(w, binary.LittleEndian, v)
}

// readIndexVec reads a length-prefixed node index sequence.
func readIndexVec(r io.Reader) ([]int32, error) {
	var n uint64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	// A corrupt length would otherwise ask for an enormous allocation.
	if n > 1<<20 {
		return nil, fmt.Errorf("index sequence length %d out of range", n)
	}
	v := make([]int32, n)
	if err := binary.Read(r, binary.LittleEndian, v); err != nil {
		return nil, err
	}
	return v, nil
}
