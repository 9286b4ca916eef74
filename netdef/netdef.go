// Copyright 2025 NetForge ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package netdef is the public API of the layer-graph configuration engine.
//
// A Config is built from an ordered sequence of textual declarations, then
// finalized; later Configure passes re-validate the same structure instead of
// growing it, and the structural skeleton round-trips through a compact
// binary form.
//
// Example:
//
//	cfg := netdef.New()
//	err := cfg.Configure([]netdef.Setting{
//	    {Name: "input_shape", Value: "1,1,200"},
//	    {Name: "layer[0->1]", Value: "fullc:fc1"},
//	    {Name: "lr", Value: "0.1"},
//	    {Name: "layer[1->2]", Value: "softmax"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = netdef.SaveFile(cfg, "model.netforge")
package netdef

import (
	"fmt"
	"os"

	"github.com/netforge-ml/netforge/internal/netdef"
)

// Config is one layer-graph configuration.
type Config = netdef.Config

// Setting is one (name, value) declaration pair.
type Setting = netdef.Setting

// NetParam aggregates graph-level metadata.
type NetParam = netdef.NetParam

// LayerDesc describes one declared layer.
type LayerDesc = netdef.LayerDesc

// Shape3 is a (channel, height, width) input shape.
type Shape3 = netdef.Shape3

// Errors surfaced by the engine.
var (
	ErrInvalidModel       = netdef.ErrInvalidModel
	ErrModelInconsistent  = netdef.ErrModelInconsistent
	ErrStructureMismatch  = netdef.ErrStructureMismatch
	ErrSharedLayerSetting = netdef.ErrSharedLayerSetting
	ErrSharedTagMissing   = netdef.ErrSharedTagMissing
)

// New returns an empty configuration ready for a first Configure pass.
func New() *Config {
	return netdef.New()
}

// SaveFile writes cfg's structural skeleton to path.
func SaveFile(cfg *Config, path string) error {
	//nolint:gosec // G304: the path comes from the caller by design.
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create model file: %w", err)
	}
	if err := cfg.Save(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads a structural skeleton from path into a fresh Config.
// The result carries no free-form settings and is ready for a re-validation
// Configure pass.
func LoadFile(path string) (*Config, error) {
	//nolint:gosec // G304: the path comes from the caller by design.
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	cfg := netdef.New()
	if err := cfg.Load(f); err != nil {
		return nil, err
	}
	return cfg, nil
}
