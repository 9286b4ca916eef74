// Copyright 2025 NetForge ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package layer exposes the closed catalog of layer kinds.
package layer

import (
	"github.com/netforge-ml/netforge/internal/layer"
)

// Type identifies a layer kind.
type Type = layer.Type

// The layer catalog.
const (
	None        Type = layer.None
	FullConnect Type = layer.FullConnect
	Softmax     Type = layer.Softmax
	ReLU        Type = layer.ReLU
	Sigmoid     Type = layer.Sigmoid
	Tanh        Type = layer.Tanh
	Softplus    Type = layer.Softplus
	Flatten     Type = layer.Flatten
	Dropout     Type = layer.Dropout
	Conv        Type = layer.Conv
	MaxPooling  Type = layer.MaxPooling
	AvgPooling  Type = layer.AvgPooling
	SumPooling  Type = layer.SumPooling
	LRN         Type = layer.LRN
	Shared      Type = layer.Shared
)

// ErrUnknownType is returned for names outside the catalog.
var ErrUnknownType = layer.ErrUnknownType

// TypeFromName resolves a declared type name against the catalog.
func TypeFromName(name string) (Type, error) {
	return layer.TypeFromName(name)
}
