// Command svginterp reads an instruction stream from stdin and writes
// the flattened polygon stream to stdout. An optional first argument
// sets the Bézier sampling rate (default 10).
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/vecraster/svgraster/internal/interp"
)

func parseArgs(args []string) (bezierSteps int, err error) {
	bezierSteps = interp.DefaultBezierSamples
	if len(args) == 0 {
		return bezierSteps, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("svginterp: invalid bezier sampling rate %q: %w", args[0], err)
	}
	return n, nil
}

func run(r io.Reader, w io.Writer, args []string) error {
	bezierSteps, err := parseArgs(args)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	if err := interp.Run(r, bw, bezierSteps); err != nil {
		return err
	}
	return bw.Flush()
}

func main() {
	if err := run(os.Stdin, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
