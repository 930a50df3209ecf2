package instr

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrUnknownOpcode is returned when a record's leading integer does not
// name a known instruction.
var ErrUnknownOpcode = errors.New("instr: unknown opcode")

// NoneColor is the sentinel written and read in place of a color for
// "do not paint".
const NoneColor int32 = -1

// Instruction is one decoded record of the stream.
type Instruction struct {
	Op     Op
	Floats []float64 // coordinate/width payload, in wire order
	Color  int32     // valid for OpStrokeColor / OpFillColor; NoneColor means NONE
}

// Decoder reads instructions from the compiler's output.
type Decoder struct {
	sc   *bufio.Scanner
	line int
}

// NewDecoder wraps r as an instruction-stream reader.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	return &Decoder{sc: sc}
}

func (d *Decoder) nextLine() (string, bool) {
	for d.sc.Scan() {
		d.line++
		line := strings.TrimSpace(d.sc.Text())
		if line == "" {
			continue
		}
		return line, true
	}
	return "", false
}

// Decode reads the next instruction. It returns io.EOF once the stream is
// exhausted with no partial record pending.
func (d *Decoder) Decode() (Instruction, error) {
	head, ok := d.nextLine()
	if !ok {
		if err := d.sc.Err(); err != nil {
			return Instruction{}, fmt.Errorf("instr: reading opcode line: %w", err)
		}
		return Instruction{}, io.EOF
	}

	fields := strings.Fields(head)
	if len(fields) == 0 {
		return Instruction{}, fmt.Errorf("instr: line %d: empty opcode record", d.line)
	}
	code, err := strconv.Atoi(fields[0])
	if err != nil {
		return Instruction{}, fmt.Errorf("instr: line %d: %w", d.line, ErrUnknownOpcode)
	}
	op := Op(code)
	if op < OpStrokeWidth || op > OpFillAndStroke {
		return Instruction{}, fmt.Errorf("instr: line %d: opcode %d: %w", d.line, code, ErrUnknownOpcode)
	}

	ins := Instruction{Op: op}

	switch op {
	case OpStrokeColor, OpFillColor:
		payload, ok := d.nextLine()
		if !ok {
			return Instruction{}, fmt.Errorf("instr: line %d: missing color payload", d.line)
		}
		c, err := parseColorLiteral(payload)
		if err != nil {
			return Instruction{}, fmt.Errorf("instr: line %d: %w", d.line, err)
		}
		ins.Color = c
	case OpPushMatrix, OpStrokeWidth, OpMoveTo, OpMoveToD, OpLineTo, OpLineToD,
		OpVLineTo, OpVLineToD, OpHLineTo, OpHLineToD,
		OpCurveTo, OpCurveToD, OpSCurveTo, OpSCurveToD:
		n := op.NumPayload()
		payload, ok := d.nextLine()
		if !ok {
			return Instruction{}, fmt.Errorf("instr: line %d: missing payload for %s", d.line, op)
		}
		fs, err := parseFloats(payload, n)
		if err != nil {
			return Instruction{}, fmt.Errorf("instr: line %d: %w", d.line, err)
		}
		ins.Floats = fs
	case OpClosePath, OpSave, OpRestore, OpPopMatrix, OpBeginPath, OpFillAndStroke:
		// no payload line
	default:
		return Instruction{}, fmt.Errorf("instr: line %d: opcode %d: %w", d.line, code, ErrUnknownOpcode)
	}

	return ins, nil
}

func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Fields(s)
	if len(fields) != n {
		return nil, fmt.Errorf("instr: expected %d numbers, got %d", n, len(fields))
	}
	out := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("instr: invalid number %q: %w", f, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseColorLiteral(s string) (int32, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"), 16, 64)
	if err != nil {
		// Retry as decimal. Digit strings, and NoneColor's "-1", already
		// parse as hex above, so only strings that fail as hex get here.
		v, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("instr: invalid color literal %q: %w", s, err)
		}
		return int32(v), nil
	}
	return int32(v), nil
}

// Encoder writes instructions in wire format.
type Encoder struct {
	w io.Writer
}

// NewEncoder wraps w as an instruction-stream writer.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes one instruction record.
func (e *Encoder) Encode(ins Instruction) error {
	if _, err := fmt.Fprintf(e.w, "%d\t%s\n", int(ins.Op), ins.Op); err != nil {
		return err
	}
	switch ins.Op {
	case OpStrokeColor, OpFillColor:
		if ins.Color == NoneColor {
			_, err := fmt.Fprintf(e.w, "%d\n", ins.Color)
			return err
		}
		_, err := fmt.Fprintf(e.w, "0x%06x\n", uint32(ins.Color)&0xffffff)
		return err
	case OpPushMatrix, OpStrokeWidth, OpMoveTo, OpMoveToD, OpLineTo, OpLineToD,
		OpVLineTo, OpVLineToD, OpHLineTo, OpHLineToD,
		OpCurveTo, OpCurveToD, OpSCurveTo, OpSCurveToD:
		parts := make([]string, len(ins.Floats))
		for i, f := range ins.Floats {
			parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
		}
		_, err := fmt.Fprintln(e.w, strings.Join(parts, " "))
		return err
	default:
		return nil
	}
}
