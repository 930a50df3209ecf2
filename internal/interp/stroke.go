package interp

import "math"

// jointSides is the vertex count of the regular polygon approximating
// a round joint at an interior stroke vertex.
const jointSides = 10

// strokeQuad returns the four device-space vertices of the offset quad
// for segment a->b at half-width r, in the order a+n, a-n, b-n, b+n
// where n is the unit normal rotated 90° CCW from (b-a). Segments at
// or below zero length produce no quad (ok=false).
func strokeQuad(a, b Point, r float64) (quad [4]Point, ok bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return quad, false
	}
	nx, ny := -dy/length*r, dx/length*r
	n := Point{X: nx, Y: ny}
	quad[0] = Point{X: a.X + n.X, Y: a.Y + n.Y}
	quad[1] = Point{X: a.X - n.X, Y: a.Y - n.Y}
	quad[2] = Point{X: b.X - n.X, Y: b.Y - n.Y}
	quad[3] = Point{X: b.X + n.X, Y: b.Y + n.Y}
	return quad, true
}

// strokeJoint returns the vertices of the regular jointSides-gon
// approximating a round joint centered at v with radius r.
func strokeJoint(v Point, r float64) [jointSides]Point {
	var poly [jointSides]Point
	for i := range poly {
		theta := 2 * math.Pi * float64(i) / jointSides
		poly[i] = Point{X: v.X + r*math.Cos(theta), Y: v.Y + r*math.Sin(theta)}
	}
	return poly
}

// tessellateStroke walks the (already device-transformed) path vertices
// and invokes emit once per segment quad and once per interior joint.
// No caps are emitted at the two free endpoints.
func tessellateStroke(verts []Point, width float64, emit func([]Point)) {
	if len(verts) < 2 || width <= 0 {
		return
	}
	r := width / 2
	for i := 0; i+1 < len(verts); i++ {
		if quad, ok := strokeQuad(verts[i], verts[i+1], r); ok {
			emit(quad[:])
		}
	}
	for i := 1; i < len(verts)-1; i++ {
		joint := strokeJoint(verts[i], r)
		emit(joint[:])
	}
}
