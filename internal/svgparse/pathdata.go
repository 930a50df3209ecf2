package svgparse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vecraster/svgraster/internal/instr"
)

// ErrBadPathCommand is returned for a path-data command letter outside
// the supported set (M/m L/l V/v H/h C/c S/s Z/z).
var ErrBadPathCommand = errors.New("svgparse: unsupported path command")

type dTokenKind int

const (
	dTokCommand dTokenKind = iota
	dTokNumber
)

type dToken struct {
	kind    dTokenKind
	command byte
	value   float64
}

// lexPathData tokenizes a path-data string into command letters and
// numbers; whitespace and commas are separators, per the grammar.
func lexPathData(d string) ([]dToken, error) {
	var toks []dToken
	i, n := 0, len(d)
	for i < n {
		c := d[i]
		switch {
		case isPathSpace(c):
			i++
		case isPathCommandLetter(c):
			toks = append(toks, dToken{kind: dTokCommand, command: c})
			i++
		case c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9'):
			start := i
			i++
			for i < n && d[i] >= '0' && d[i] <= '9' {
				i++
			}
			if i < n && d[i] == '.' {
				i++
				for i < n && d[i] >= '0' && d[i] <= '9' {
					i++
				}
			}
			if i < n && (d[i] == 'e' || d[i] == 'E') {
				j := i + 1
				if j < n && (d[j] == '+' || d[j] == '-') {
					j++
				}
				if j < n && d[j] >= '0' && d[j] <= '9' {
					i = j
					for i < n && d[i] >= '0' && d[i] <= '9' {
						i++
					}
				}
			}
			v, err := strconv.ParseFloat(d[start:i], 64)
			if err != nil {
				return nil, fmt.Errorf("svgparse: invalid number %q in path data: %w", d[start:i], err)
			}
			toks = append(toks, dToken{kind: dTokNumber, value: v})
		case (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z'):
			return nil, fmt.Errorf("svgparse: %w: %q", ErrBadPathCommand, string(c))
		default:
			return nil, fmt.Errorf("svgparse: unexpected character %q in path data", c)
		}
	}
	return toks, nil
}

func isPathSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ','
}

func isPathCommandLetter(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'V', 'v', 'H', 'h', 'C', 'c', 'S', 's', 'Z', 'z':
		return true
	default:
		return false
	}
}

// argCount gives the coordinate-tuple arity for each path command.
func argCount(command byte) int {
	switch command {
	case 'M', 'm', 'L', 'l':
		return 2
	case 'V', 'v', 'H', 'h':
		return 1
	case 'C', 'c':
		return 6
	case 'S', 's':
		return 4
	case 'Z', 'z':
		return 0
	default:
		return -1
	}
}

func opFor(command byte) instr.Op {
	switch command {
	case 'M':
		return instr.OpMoveTo
	case 'm':
		return instr.OpMoveToD
	case 'L':
		return instr.OpLineTo
	case 'l':
		return instr.OpLineToD
	case 'V':
		return instr.OpVLineTo
	case 'v':
		return instr.OpVLineToD
	case 'H':
		return instr.OpHLineTo
	case 'h':
		return instr.OpHLineToD
	case 'C':
		return instr.OpCurveTo
	case 'c':
		return instr.OpCurveToD
	case 'S':
		return instr.OpSCurveTo
	case 's':
		return instr.OpSCurveToD
	case 'Z', 'z':
		return instr.OpClosePath
	}
	panic("svgparse: opFor called with non-command byte")
}

// ParsePathData lowers a `d` attribute into instructions. A command
// letter followed by multiple coordinate tuples emits one instruction
// per tuple, each of the same kind as the letter (SVG's implicit
// command-repetition rule).
func ParsePathData(d string) ([]instr.Instruction, error) {
	toks, err := lexPathData(d)
	if err != nil {
		return nil, err
	}

	var out []instr.Instruction
	i := 0
	for i < len(toks) {
		tok := toks[i]
		if tok.kind != dTokCommand {
			return nil, fmt.Errorf("svgparse: expected path command, found number at token %d", i)
		}
		arity := argCount(tok.command)
		if arity < 0 {
			return nil, fmt.Errorf("svgparse: %w: %q", ErrBadPathCommand, string(tok.command))
		}
		i++
		op := opFor(tok.command)

		if arity == 0 {
			out = append(out, instr.Instruction{Op: op})
			continue
		}

		sawTuple := false
		for i+arity <= len(toks) && allNumbers(toks[i:i+arity]) {
			floats := make([]float64, arity)
			for k := 0; k < arity; k++ {
				floats[k] = toks[i+k].value
			}
			out = append(out, instr.Instruction{Op: op, Floats: floats})
			i += arity
			sawTuple = true
		}
		if !sawTuple {
			return nil, fmt.Errorf("svgparse: command %q missing its %d coordinate(s)", string(tok.command), arity)
		}
	}
	return out, nil
}

func allNumbers(toks []dToken) bool {
	for _, t := range toks {
		if t.kind != dTokNumber {
			return false
		}
	}
	return true
}
