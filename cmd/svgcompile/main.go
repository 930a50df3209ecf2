// Command svgcompile reads an SVG document from stdin and writes the
// drawing instruction stream to stdout.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/vecraster/svgraster/internal/instr"
	"github.com/vecraster/svgraster/internal/svgparse"
)

func run(r io.Reader, w io.Writer) error {
	bw := bufio.NewWriter(w)
	enc := instr.NewEncoder(bw)
	if err := svgparse.Compile(r, enc); err != nil {
		return err
	}
	return bw.Flush()
}

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
