// Command svgraster reads a polygon stream from stdin and rasterizes
// it to out.png (or debug.png in debug mode) in the current directory.
// Positional arguments: scale (default 1), vertical AA factor
// (default 1), debug flag (default 0).
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/vecraster/svgraster/internal/raster"
)

const baseSize = 900

type config struct {
	scale     int
	supersamp int
	debug     bool
}

func parseArgs(args []string) (config, error) {
	cfg := config{scale: 1, supersamp: 1}
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return cfg, fmt.Errorf("svgraster: invalid scale %q: %w", args[0], err)
		}
		cfg.scale = n
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return cfg, fmt.Errorf("svgraster: invalid AA factor %q: %w", args[1], err)
		}
		cfg.supersamp = n
	}
	if len(args) > 2 {
		n, err := strconv.Atoi(args[2])
		if err != nil {
			return cfg, fmt.Errorf("svgraster: invalid debug flag %q: %w", args[2], err)
		}
		cfg.debug = n != 0
	}
	return cfg, nil
}

func run(r io.Reader, args []string) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}

	name := "out.png"
	if cfg.debug {
		name = "debug.png"
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("svgraster: %w", err)
	}
	defer f.Close()

	size := baseSize * cfg.scale
	return raster.Run(r, f, size, size, cfg.supersamp, cfg.debug)
}

func main() {
	if err := run(os.Stdin, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
