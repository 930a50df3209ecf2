package interp

import (
	"errors"

	"github.com/vecraster/svgraster/internal/instr"
)

// ErrEmptyStyleStack is returned by Restore when only the root frame
// remains.
var ErrEmptyStyleStack = errors.New("interp: restore with empty style stack")

// NoneColor marks "do not paint" for Style.FillColor / Style.StrokeColor.
const NoneColor = instr.NoneColor

// Style is the paint state in effect for a path.
type Style struct {
	FillColor   int32
	StrokeColor int32
	StrokeWidth float64
}

func defaultStyle() Style {
	return Style{FillColor: 0x000000, StrokeColor: NoneColor, StrokeWidth: 1}
}

// StyleStack is a stack of Style frames; it always holds at least one
// frame (the root, seeded by NewStyleStack).
type StyleStack struct {
	frames []Style
}

// NewStyleStack returns a stack with exactly one default root frame.
func NewStyleStack() *StyleStack {
	return &StyleStack{frames: []Style{defaultStyle()}}
}

// Top returns a pointer to the current frame, for in-place mutation.
func (s *StyleStack) Top() *Style {
	return &s.frames[len(s.frames)-1]
}

// Save duplicates the top frame.
func (s *StyleStack) Save() {
	s.frames = append(s.frames, *s.Top())
}

// Restore discards the top frame. It is an error to restore the last
// remaining (root) frame.
func (s *StyleStack) Restore() error {
	if len(s.frames) <= 1 {
		return ErrEmptyStyleStack
	}
	s.frames = s.frames[:len(s.frames)-1]
	return nil
}
