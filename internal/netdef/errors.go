package netdef

import (
	"errors"
)

// Common errors.
var (
	// ErrInvalidModel is returned when a structure file is short, truncated
	// or otherwise unreadable.
	ErrInvalidModel = errors.New("invalid model file")

	// ErrModelInconsistent is returned by Save when the recorded layer count
	// disagrees with the descriptor sequence.
	ErrModelInconsistent = errors.New("model inconsistent")

	// ErrStructureMismatch is returned when a re-validation pass declares a
	// layer that differs from the existing graph structure.
	ErrStructureMismatch = errors.New("config setting does not match existing network structure")

	// ErrSharedLayerSetting is returned when a setting is attached to a
	// shared layer; settings belong on the primary layer.
	ErrSharedLayerSetting = errors.New("please do not set parameters in shared layer, set them in primary layer")

	// ErrSharedTagMissing is returned when a shared layer omits the tag of
	// the layer it shares with.
	ErrSharedTagMissing = errors.New("shared layer must specify tag of layer to share with")

	// ErrConfigInconsistent signals an internal index-accounting bug during
	// the first configuration pass, not a user error.
	ErrConfigInconsistent = errors.New("network config inconsistent")
)
