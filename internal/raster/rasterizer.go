package raster

import (
	"cmp"
	"math"
	"slices"

	"github.com/vecraster/svgraster/internal/polygon"
)

// Rasterizer fills polygons into a Framebuffer. Create one instance
// and reuse it for a whole polygon stream; its edge/active-list
// buffers grow as needed but never shrink.
type Rasterizer struct {
	FB *Framebuffer

	edges  []edge
	active []activeEdge
}

type activeEdge struct {
	e   edge
	x   float32
}

// New returns a Rasterizer writing into a fresh w x h framebuffer with
// s-fold vertical supersampling.
func New(w, h, s int) *Rasterizer {
	return &Rasterizer{FB: NewFramebuffer(w, h, s)}
}

// Fill rasterizes one polygon into the framebuffer using the non-zero
// winding rule, horizontal box-filter coverage, and premultiplied
// source-over compositing (§4.3).
func (r *Rasterizer) Fill(p polygon.Polygon) {
	if len(p.Vertices) < 2 {
		return
	}
	cr, cg, cb := channels(p.Color)

	r.edges = r.edges[:0]
	r.edges = buildEdges(p.Vertices, r.edges)
	r.edges = scaleForSupersample(r.edges, r.FB.S)

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yStart, b.yStart)
	})

	r.active = r.active[:0]
	remaining := r.edges

	if len(remaining) == 0 {
		return
	}
	y := int(math.Ceil(float64(remaining[0].yStart))) - 1

	for len(r.active) > 0 || len(remaining) > 0 {
		y++
		fy := float32(y)

		// drop expired, advance survivors
		kept := r.active[:0]
		for _, a := range r.active {
			if a.e.yEnd <= fy {
				continue
			}
			a.x += a.e.dxdy
			kept = append(kept, a)
		}
		r.active = kept

		// activate newly-eligible edges
		for len(remaining) > 0 && remaining[0].yStart <= fy {
			e := remaining[0]
			remaining = remaining[1:]
			if e.yEnd <= fy {
				continue
			}
			x := e.xAtYStart + e.dxdy*(fy-e.yStart)
			r.active = append(r.active, activeEdge{e: e, x: x})
		}

		if len(r.active) == 0 {
			continue
		}

		slices.SortFunc(r.active, func(a, b activeEdge) int {
			return cmp.Compare(a.x, b.x)
		})

		winding := 0
		for i := range r.active {
			if winding != 0 {
				xL := r.active[i-1].x
				xR := r.active[i].x
				r.fillSpan(y, xL, xR, cr, cg, cb)
			}
			winding += int(r.active[i].e.winding)
		}
	}
}

// fillSpan applies horizontal box-filter coverage to every pixel
// column overlapping [xL, xR) on subpixel row y.
func (r *Rasterizer) fillSpan(y int, xL, xR, cr, cg, cb float32) {
	if xR <= xL {
		return
	}
	x0 := int(math.Ceil(float64(xL) - 0.5))
	x1 := int(math.Ceil(float64(xR) + 0.5))
	for xi := x0; xi < x1; xi++ {
		cov := overlap(float32(xi)-0.5, float32(xi)+0.5, xL, xR)
		if cov <= 0 {
			continue
		}
		r.FB.CompositePixel(xi, y, cr, cg, cb, cov)
	}
}

// overlap returns the clamped length of the intersection of [a0,a1]
// and [b0,b1].
func overlap(a0, a1, b0, b1 float32) float32 {
	lo := a0
	if b0 > lo {
		lo = b0
	}
	hi := a1
	if b1 < hi {
		hi = b1
	}
	if hi <= lo {
		return 0
	}
	v := hi - lo
	if v > 1 {
		v = 1
	}
	return v
}

// scaleForSupersample rewrites edges for an s-fold taller subpixel
// grid: y values scale by s, so the per-row slope shrinks by 1/s.
func scaleForSupersample(edges []edge, s int) []edge {
	if s == 1 {
		return edges
	}
	fs := float32(s)
	for i := range edges {
		edges[i].yStart *= fs
		edges[i].yEnd *= fs
		edges[i].dxdy /= fs
	}
	return edges
}

func channels(rgb24 int32) (r, g, b float32) {
	u := uint32(rgb24)
	r = float32((u>>16)&0xff) / 255
	g = float32((u>>8)&0xff) / 255
	b = float32(u&0xff) / 255
	return
}

// DebugPlot plots one opaque pixel per polygon vertex, bypassing
// antialiasing and compositing entirely, per the rasterizer's debug
// mode (§6.3).
func (r *Rasterizer) DebugPlot(p polygon.Polygon) {
	cr, cg, cb := channels(p.Color)
	for _, v := range p.Vertices {
		x := int(v[0])
		y := int(v[1]) * r.FB.S
		r.FB.PlotOpaque(x, y, cr, cg, cb)
	}
}
