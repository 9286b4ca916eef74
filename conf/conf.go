// Copyright 2025 NetForge ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package conf reads ordered declaration sequences from configuration files.
//
// Example:
//
//	settings, err := conf.ParseFile("mnist.conf")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg := netdef.New()
//	if err := cfg.Configure(settings); err != nil {
//	    log.Fatal(err)
//	}
package conf

import (
	"io"

	"github.com/netforge-ml/netforge/internal/conf"
	"github.com/netforge-ml/netforge/netdef"
)

// Parse reads flat "key = value" declarations from r, preserving order.
func Parse(r io.Reader) ([]netdef.Setting, error) {
	return conf.Parse(r)
}

// ParseFile reads declarations from path; .yaml/.yml files are parsed as
// ordered YAML, everything else as flat text.
func ParseFile(path string) ([]netdef.Setting, error) {
	return conf.ParseFile(path)
}

// ParseYAML reads declarations from a YAML mapping or sequence of mappings,
// preserving document order.
func ParseYAML(data []byte) ([]netdef.Setting, error) {
	return conf.ParseYAML(data)
}
