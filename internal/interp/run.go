package interp

import (
	"fmt"
	"io"

	"github.com/vecraster/svgraster/internal/instr"
	"github.com/vecraster/svgraster/internal/polygon"
)

// Run drains the instruction stream read from r, executing each
// instruction against a fresh Context, and writes the resulting
// polygon stream to w.
func Run(r io.Reader, w io.Writer, bezierSteps int) error {
	dec := instr.NewDecoder(r)
	enc := polygon.NewEncoder(w)
	ctx := NewContext(bezierSteps)

	// Exec's emit callback cannot return an error directly, so the
	// first encode failure is latched here and checked after each
	// instruction.
	var encErr error
	emit := func(p polygon.Polygon) {
		if encErr == nil {
			encErr = enc.Encode(p)
		}
	}

	for {
		ins, err := dec.Decode()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("interp: %w", err)
		}
		if err := ctx.Exec(ins, emit); err != nil {
			return fmt.Errorf("interp: %w", err)
		}
		if encErr != nil {
			return fmt.Errorf("interp: writing polygon: %w", encErr)
		}
	}
	return nil
}
