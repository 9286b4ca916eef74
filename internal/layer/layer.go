package layer

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned when a declaration names a layer type
// that is not in the catalog.
var ErrUnknownType = errors.New("unknown layer type")

// Type identifies a layer kind.
//
// Values are stable and explicit because they are written verbatim into
// structure files; never renumber an existing entry.
type Type int32

// The layer catalog.
const (
	None        Type = 0
	FullConnect Type = 1
	Softmax     Type = 2
	ReLU        Type = 3
	Sigmoid     Type = 4
	Tanh        Type = 5
	Softplus    Type = 6
	Flatten     Type = 7
	Dropout     Type = 8
	Conv        Type = 9
	MaxPooling  Type = 10
	AvgPooling  Type = 11
	SumPooling  Type = 12
	LRN         Type = 13

	// Shared marks a layer that reuses another layer's parameters
	// instead of owning its own.
	Shared Type = 14
)

var nameToType = map[string]Type{
	"fullc":       FullConnect,
	"softmax":     Softmax,
	"relu":        ReLU,
	"sigmoid":     Sigmoid,
	"tanh":        Tanh,
	"softplus":    Softplus,
	"flatten":     Flatten,
	"dropout":     Dropout,
	"conv":        Conv,
	"max_pooling": MaxPooling,
	"avg_pooling": AvgPooling,
	"sum_pooling": SumPooling,
	"lrn":         LRN,
	"shared":      Shared,
}

var typeToName = func() map[Type]string {
	m := make(map[Type]string, len(nameToType))
	for name, t := range nameToType {
		m[t] = name
	}
	return m
}()

// TypeFromName resolves a declared type name against the catalog.
func TypeFromName(name string) (Type, error) {
	t, ok := nameToType[name]
	if !ok {
		return None, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return t, nil
}

// String returns the catalog name of t, or a numeric form for
// values outside the catalog.
func (t Type) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return fmt.Sprintf("type(%d)", int32(t))
}

// Valid reports whether t is a catalog entry.
func (t Type) Valid() bool {
	_, ok := typeToName[t]
	return ok
}
