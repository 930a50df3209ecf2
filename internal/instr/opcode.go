// Package instr defines the instruction stream emitted by the compiler
// and consumed by the interpreter.
package instr

import "fmt"

// Op identifies one drawing instruction.
type Op int

const (
	OpStrokeWidth Op = iota
	OpStrokeColor
	OpFillColor
	OpMoveTo
	OpMoveToD
	OpLineTo
	OpLineToD
	OpVLineTo
	OpVLineToD
	OpHLineTo
	OpHLineToD
	OpCurveTo
	OpCurveToD
	OpSCurveTo
	OpSCurveToD
	OpClosePath
	OpSave
	OpRestore
	OpPushMatrix
	OpPopMatrix
	OpBeginPath
	OpFillAndStroke
)

var names = [...]string{
	OpStrokeWidth:   "stroke_width",
	OpStrokeColor:   "stroke_color",
	OpFillColor:     "fill_color",
	OpMoveTo:        "move_to",
	OpMoveToD:       "move_to_d",
	OpLineTo:        "line_to",
	OpLineToD:       "line_to_d",
	OpVLineTo:       "v_line_to",
	OpVLineToD:      "v_line_to_d",
	OpHLineTo:       "h_line_to",
	OpHLineToD:      "h_line_to_d",
	OpCurveTo:       "curve_to",
	OpCurveToD:      "curve_to_d",
	OpSCurveTo:      "s_curve_to",
	OpSCurveToD:     "s_curve_to_d",
	OpClosePath:     "close_path",
	OpSave:          "save",
	OpRestore:       "restore",
	OpPushMatrix:    "push_matrix",
	OpPopMatrix:     "pop_matrix",
	OpBeginPath:     "begin_path",
	OpFillAndStroke: "fill_and_stroke",
}

// String returns the instruction's label, as emitted on the opcode line.
func (o Op) String() string {
	if int(o) < 0 || int(o) >= len(names) {
		return fmt.Sprintf("op(%d)", int(o))
	}
	return names[o]
}

// NumPayload reports how many whitespace-separated fields follow the
// opcode line for instructions with a fixed-arity payload. Variable-arity
// or payload-less instructions are handled directly by the codec.
func (o Op) NumPayload() int {
	switch o {
	case OpStrokeWidth, OpVLineTo, OpVLineToD, OpHLineTo, OpHLineToD:
		return 1
	case OpMoveTo, OpMoveToD, OpLineTo, OpLineToD:
		return 2
	case OpSCurveTo, OpSCurveToD:
		return 4
	case OpCurveTo, OpCurveToD:
		return 6
	case OpPushMatrix:
		return 6
	case OpStrokeColor, OpFillColor:
		return 1 // hex int, not a float
	default:
		return 0
	}
}
