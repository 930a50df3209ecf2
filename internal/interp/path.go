package interp

import "errors"

// ErrNoCurrentPoint is returned by commands that need a current point
// before any begin_path has run.
var ErrNoCurrentPoint = errors.New("interp: no current point (missing begin_path)")

// Path is the vertex list of the path under construction.
type Path struct {
	Verts []Point
}

// Reset clears the path and seeds it with the origin, per begin_path.
func (p *Path) Reset() {
	p.Verts = p.Verts[:0]
	p.Verts = append(p.Verts, Point{X: 0, Y: 0})
}

// Current returns the path's current point (its last vertex).
func (p *Path) Current() (Point, error) {
	if len(p.Verts) == 0 {
		return Point{}, ErrNoCurrentPoint
	}
	return p.Verts[len(p.Verts)-1], nil
}

// SetCurrent replaces the current point in place, for move_to.
func (p *Path) SetCurrent(pt Point) error {
	if len(p.Verts) == 0 {
		return ErrNoCurrentPoint
	}
	p.Verts[len(p.Verts)-1] = pt
	return nil
}

// Append adds a new vertex.
func (p *Path) Append(pt Point) {
	p.Verts = append(p.Verts, pt)
}

// Origin returns the first vertex of the path (the anchor close_path
// closes to); it is the current begin_path's (0,0) unless a move_to
// has since overwritten it.
func (p *Path) Origin() (Point, error) {
	if len(p.Verts) == 0 {
		return Point{}, ErrNoCurrentPoint
	}
	return p.Verts[0], nil
}

// Transform applies m to every vertex in place.
func (p *Path) Transform(m Matrix) {
	for i, v := range p.Verts {
		p.Verts[i] = Apply(m, v)
	}
}
