package raster

import (
	"fmt"
	"io"

	"github.com/vecraster/svgraster/internal/polygon"
)

// Run drains the polygon stream read from r into a width x height
// framebuffer (s-fold vertically supersampled unless debug is set,
// which plots raw vertices instead) and writes the resolved PNG to w.
func Run(r io.Reader, w io.Writer, width, height, s int, debug bool) error {
	if debug {
		s = 1
	}
	rz := New(width, height, s)
	dec := polygon.NewDecoder(r)

	for {
		p, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("raster: %w", err)
		}
		if debug {
			rz.DebugPlot(p)
		} else {
			rz.Fill(p)
		}
	}

	return rz.FB.EncodePNG(w)
}
