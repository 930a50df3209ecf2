// Package svgparse lowers a restricted SVG document into the drawing
// instruction stream consumed by the interpreter.
package svgparse

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/vecraster/svgraster/internal/instr"
)

var matrixRe = regexp.MustCompile(`matrix\(\s*([^,\s()]+)[,\s]+([^,\s()]+)[,\s]+([^,\s()]+)[,\s]+([^,\s()]+)[,\s]+([^,\s()]+)[,\s]+([^,\s()]+)\s*\)`)

// frame tracks, per open element, whatever bookkeeping its matching
// EndElement needs to unwind in reverse order.
type frame struct {
	pushedMatrix bool
}

// Compile reads one SVG document from r and writes the corresponding
// instruction stream to enc. Unrecognized elements and attributes are
// skipped (but their children are still visited).
func Compile(r io.Reader, enc *instr.Encoder) error {
	dec := xml.NewDecoder(r)
	var stack []frame

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("svgparse: reading xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			fr := frame{}
			name := t.Name.Local
			recognized := name == "svg" || name == "g" || name == "path"
			if recognized {
				if err := enc.Encode(instr.Instruction{Op: instr.OpSave}); err != nil {
					return err
				}
				if err := emitPaintAttrs(t.Attr, enc); err != nil {
					return err
				}
				if m, ok := findMatrix(t.Attr); ok {
					if err := enc.Encode(instr.Instruction{Op: instr.OpPushMatrix, Floats: m[:]}); err != nil {
						return err
					}
					fr.pushedMatrix = true
				}
				if name == "path" {
					if err := compilePath(t.Attr, enc); err != nil {
						return err
					}
				}
			}
			stack = append(stack, fr)

		case xml.EndElement:
			if len(stack) == 0 {
				return fmt.Errorf("svgparse: unbalanced end element %q", t.Name.Local)
			}
			fr := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			name := t.Name.Local
			if name == "svg" || name == "g" || name == "path" {
				if fr.pushedMatrix {
					if err := enc.Encode(instr.Instruction{Op: instr.OpPopMatrix}); err != nil {
						return err
					}
				}
				if err := enc.Encode(instr.Instruction{Op: instr.OpRestore}); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func emitPaintAttrs(attrs []xml.Attr, enc *instr.Encoder) error {
	for _, a := range attrs {
		switch a.Name.Local {
		case "fill":
			c := ParseColor(a.Value)
			if err := enc.Encode(instr.Instruction{Op: instr.OpFillColor, Color: c}); err != nil {
				return err
			}
		case "stroke":
			c := ParseColor(a.Value)
			if err := enc.Encode(instr.Instruction{Op: instr.OpStrokeColor, Color: c}); err != nil {
				return err
			}
		case "stroke-width":
			w, err := strconv.ParseFloat(strings.TrimSpace(a.Value), 64)
			if err != nil {
				continue // malformed width: ignore, per best-effort attribute handling
			}
			if err := enc.Encode(instr.Instruction{Op: instr.OpStrokeWidth, Floats: []float64{w}}); err != nil {
				return err
			}
		}
	}
	return nil
}

// findMatrix extracts the six coefficients of transform="matrix(...)".
// Any other transform function is silently ignored.
func findMatrix(attrs []xml.Attr) ([6]float64, bool) {
	for _, a := range attrs {
		if a.Name.Local != "transform" {
			continue
		}
		m := matrixRe.FindStringSubmatch(a.Value)
		if m == nil {
			return [6]float64{}, false
		}
		var out [6]float64
		for i := 0; i < 6; i++ {
			v, err := strconv.ParseFloat(m[i+1], 64)
			if err != nil {
				return [6]float64{}, false
			}
			out[i] = v
		}
		return out, true
	}
	return [6]float64{}, false
}

func compilePath(attrs []xml.Attr, enc *instr.Encoder) error {
	if err := enc.Encode(instr.Instruction{Op: instr.OpBeginPath}); err != nil {
		return err
	}
	for _, a := range attrs {
		if a.Name.Local != "d" {
			continue
		}
		ins, err := ParsePathData(a.Value)
		if err != nil {
			return fmt.Errorf("svgparse: parsing path data: %w", err)
		}
		for _, in := range ins {
			if err := enc.Encode(in); err != nil {
				return err
			}
		}
	}
	return enc.Encode(instr.Instruction{Op: instr.OpFillAndStroke})
}
