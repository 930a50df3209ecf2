package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
)

// EncodePNG resolves fb and writes it to w as a PNG.
func (f *Framebuffer) EncodePNG(w io.Writer) error {
	img := image.Image(f.Resolve())
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("raster: encoding png: %w", err)
	}
	return nil
}
