// Package raster renders a stream of colored device-space polygons
// into a straight-RGB-plus-alpha framebuffer via a scanline active-edge
// algorithm, then resolves and PNG-encodes the result.
package raster

import "golang.org/x/image/math/f32"

// edge is one side of a polygon, in device coordinates.
type edge struct {
	yStart, yEnd float32
	xAtYStart    float32
	dxdy         float32
	winding      int8
}

// buildEdges turns a closed polygon's vertex ring into its edge set.
// Winding is +1 if the original vertex pair descends (y_a > y_b), else
// -1; degenerate horizontal pairs still produce an edge (yStart ==
// yEnd), which the scanline loop simply never activates.
func buildEdges(verts []f32.Vec2, out []edge) []edge {
	n := len(verts)
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		out = append(out, makeEdge(a, b))
	}
	return out
}

func makeEdge(a, b f32.Vec2) edge {
	winding := int8(1)
	if a[1] <= b[1] {
		winding = -1
	}
	yStart, yEnd := a[1], b[1]
	x0, x1 := a[0], b[0]
	if yStart > yEnd {
		yStart, yEnd = yEnd, yStart
		x0, x1 = x1, x0
	}
	var dxdy float32
	if yEnd > yStart {
		dxdy = (x1 - x0) / (yEnd - yStart)
	}
	return edge{
		yStart:    yStart,
		yEnd:      yEnd,
		xAtYStart: x0,
		dxdy:      dxdy,
		winding:   winding,
	}
}
