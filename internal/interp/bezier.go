package interp

// DefaultBezierSamples is the number of evenly-spaced samples used to
// flatten a cubic when the caller does not override it.
const DefaultBezierSamples = 10

// bezier1 evaluates one axis of a cubic Bézier at parameter t via
// repeated linear interpolation (one-variable De Casteljau form).
func bezier1(t, v0, v1, v2, v3 float64) float64 {
	a := v0 + (v1-v0)*t
	b := v1 + (v2-v1)*t
	c := v2 + (v3-v2)*t
	d := a + (b-a)*t
	e := b + (c-b)*t
	return d + (e-d)*t
}

func bezierPoint(t float64, p0, p1, p2, p3 Point) Point {
	return Point{
		X: bezier1(t, p0.X, p1.X, p2.X, p3.X),
		Y: bezier1(t, p0.Y, p1.Y, p2.Y, p3.Y),
	}
}

// flattenCubic appends samples=samples points, at t = i/samples for
// i = 1..samples, approximating the cubic from p0 through control
// points p1, p2 to endpoint p3. The final sample equals p3 exactly.
func flattenCubic(p0, p1, p2, p3 Point, samples int, out func(Point)) {
	if samples < 1 {
		samples = 1
	}
	for i := 1; i < samples; i++ {
		t := float64(i) / float64(samples)
		out(bezierPoint(t, p0, p1, p2, p3))
	}
	// At t = 1 the interpolations can round away from p3, so the
	// endpoint is emitted directly.
	out(p3)
}
