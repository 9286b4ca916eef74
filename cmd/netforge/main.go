// Package main provides the NetForge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/netforge-ml/netforge/conf"
	"github.com/netforge-ml/netforge/netdef"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("NetForge %s\n", version)
	case "validate":
		err = runValidate(os.Args[2:])
	case "build":
		err = runBuild(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "netforge: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Println("NetForge - layer-graph configuration engine")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  validate <conf>           Parse a config file and validate the layer graph")
	fmt.Println("  build <conf> <model>      Validate a config file and save the graph structure")
	fmt.Println("  info <model>              Show the structure stored in a model file")
	fmt.Println("  version                   Show version")
}

// configure parses a config file and runs one Configure pass.
func configure(path string) (*netdef.Config, error) {
	settings, err := conf.ParseFile(path)
	if err != nil {
		return nil, err
	}
	cfg := netdef.New()
	if err := cfg.Configure(settings); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runValidate(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: netforge validate <conf>")
	}
	cfg, err := configure(args[0])
	if err != nil {
		return err
	}
	printSummary(cfg)
	return nil
}

func runBuild(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: netforge build <conf> <model>")
	}
	cfg, err := configure(args[0])
	if err != nil {
		return err
	}
	if err := netdef.SaveFile(cfg, args[1]); err != nil {
		return err
	}
	printSummary(cfg)
	fmt.Printf("saved structure to %s\n", args[1])
	return nil
}

func runInfo(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: netforge info <model>")
	}
	cfg, err := netdef.LoadFile(args[0])
	if err != nil {
		return err
	}
	printSummary(cfg)
	for i, d := range cfg.Layers {
		if d.PrimaryLayer >= 0 {
			fmt.Printf("  layer %d: %v -> %v  %s (shares layer %d)\n",
				i, d.NodesIn, d.NodesOut, d.Type, d.PrimaryLayer)
		} else {
			fmt.Printf("  layer %d: %v -> %v  %s\n", i, d.NodesIn, d.NodesOut, d.Type)
		}
	}
	return nil
}

func printSummary(cfg *netdef.Config) {
	fmt.Printf("nodes: %d, layers: %d, input shape: %s\n",
		cfg.Param.NumNodes, cfg.Param.NumLayers, cfg.Param.InputShape)
}
