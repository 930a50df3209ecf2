package raster

import (
	"image"
)

// Framebuffer accumulates straight (non-premultiplied) RGB with
// explicit alpha across W x (H*S) subpixel rows, then resolves into an
// H x W 8-bit image by averaging each group of S rows.
type Framebuffer struct {
	W, H int
	S    int // vertical supersampling factor
	pix  []float32
}

// NewFramebuffer allocates a framebuffer of w x h output pixels with s
// subpixel rows per output row.
func NewFramebuffer(w, h, s int) *Framebuffer {
	if s < 1 {
		s = 1
	}
	return &Framebuffer{
		W: w, H: h, S: s,
		pix: make([]float32, w*h*s*4),
	}
}

// at returns the slice index of pixel (x, subRow)'s first channel, or
// -1 if the coordinates fall outside the buffer.
func (f *Framebuffer) at(x, subRow int) int {
	if x < 0 || x >= f.W || subRow < 0 || subRow >= f.H*f.S {
		return -1
	}
	return (subRow*f.W + x) * 4
}

// CompositePixel blends (r,g,b) at coverage alpha over the existing
// pixel using premultiplied Porter-Duff source-over, computed in
// straight RGB with an explicit alpha channel (§4.3). Out-of-bounds
// coordinates are silently clipped.
func (f *Framebuffer) CompositePixel(x, subRow int, r, g, b, alpha float32) {
	if alpha <= 0 {
		return
	}
	i := f.at(x, subRow)
	if i < 0 {
		return
	}
	pr, pg, pb, pa := f.pix[i], f.pix[i+1], f.pix[i+2], f.pix[i+3]
	outA := alpha + pa*(1-alpha)
	if outA == 0 {
		return
	}
	f.pix[i] = (r*alpha + pr*pa*(1-alpha)) / outA
	f.pix[i+1] = (g*alpha + pg*pa*(1-alpha)) / outA
	f.pix[i+2] = (b*alpha + pb*pa*(1-alpha)) / outA
	f.pix[i+3] = outA
}

// PlotOpaque sets a pixel to fully-opaque (r,g,b), bypassing
// compositing — used by the rasterizer's debug vertex-plotting mode.
func (f *Framebuffer) PlotOpaque(x, subRow int, r, g, b float32) {
	i := f.at(x, subRow)
	if i < 0 {
		return
	}
	f.pix[i], f.pix[i+1], f.pix[i+2], f.pix[i+3] = r, g, b, 1
}

// Resolve averages every group of S subpixel rows and quantizes to
// 8-bit sRGB-ish components, producing the final output image.
func (f *Framebuffer) Resolve() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.W, f.H))
	inv := 1.0 / float32(f.S)
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			var r, g, b, a float32
			for k := 0; k < f.S; k++ {
				i := f.at(x, y*f.S+k)
				r += f.pix[i]
				g += f.pix[i+1]
				b += f.pix[i+2]
				a += f.pix[i+3]
			}
			r *= inv
			g *= inv
			b *= inv
			a *= inv
			o := img.PixOffset(x, y)
			img.Pix[o] = quantize(r)
			img.Pix[o+1] = quantize(g)
			img.Pix[o+2] = quantize(b)
			img.Pix[o+3] = quantize(a)
		}
	}
	return img
}

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	n := int(v * 255)
	if n >= 255 {
		return 255
	}
	return uint8(n)
}
