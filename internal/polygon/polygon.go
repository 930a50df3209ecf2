// Package polygon defines the colored-polygon stream emitted by the
// interpreter and consumed by the rasterizer.
package polygon

import "golang.org/x/image/math/f32"

// Polygon is one filled shape in device coordinates. Vertices use
// float32 (f32.Vec2), matching the rasterizer's edge/framebuffer
// precision (§3's Point and Edge are both specified as 32-bit floats).
type Polygon struct {
	Color    int32
	Vertices []f32.Vec2
}
