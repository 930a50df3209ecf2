// Package interp maintains drawing state (style and transform stacks,
// the current path and its control-reflection point) and flattens
// instructions into polygons.
package interp

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Point is a location in user space.
type Point = vec.Vec2

// Matrix is an affine user-space transform, with fields (a,b,c,d,e,f)
// applied as x' = a*x + c*y + e, y' = b*x + d*y + f — the same layout
// as the SVG matrix(a,b,c,d,e,f) function.
type Matrix = matrix.Matrix

// Apply transforms p by m.
func Apply(m Matrix, p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Compose returns the matrix that applies inner first, then outer —
// i.e. Apply(Compose(outer, inner), p) == Apply(outer, Apply(inner, p)).
func Compose(outer, inner Matrix) Matrix {
	return Matrix{
		outer[0]*inner[0] + outer[2]*inner[1],
		outer[1]*inner[0] + outer[3]*inner[1],
		outer[0]*inner[2] + outer[2]*inner[3],
		outer[1]*inner[2] + outer[3]*inner[3],
		outer[0]*inner[4] + outer[2]*inner[5] + outer[4],
		outer[1]*inner[4] + outer[3]*inner[5] + outer[5],
	}
}
