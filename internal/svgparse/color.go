package svgparse

import (
	"strconv"

	"github.com/vecraster/svgraster/internal/instr"
)

// ParseColor parses a CSS-hex color string as used by fill/stroke
// attributes. "#RGB" expands by digit-doubling; "#RRGGBB" is taken
// verbatim; anything else yields instr.NoneColor.
func ParseColor(s string) int32 {
	if len(s) == 0 || s[0] != '#' {
		return instr.NoneColor
	}
	hex := s[1:]
	switch len(hex) {
	case 3:
		r, ok1 := hexDigit(hex[0])
		g, ok2 := hexDigit(hex[1])
		b, ok3 := hexDigit(hex[2])
		if !ok1 || !ok2 || !ok3 {
			return instr.NoneColor
		}
		return int32(r<<20 | r<<16 | g<<12 | g<<8 | b<<4 | b)
	case 6:
		v, err := strconv.ParseInt(hex, 16, 32)
		if err != nil {
			return instr.NoneColor
		}
		return int32(v)
	default:
		return instr.NoneColor
	}
}

func hexDigit(c byte) (int32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int32(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int32(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int32(c-'A') + 10, true
	default:
		return 0, false
	}
}
