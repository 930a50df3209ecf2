package interp

import (
	"testing"

	"github.com/vecraster/svgraster/internal/instr"
	"github.com/vecraster/svgraster/internal/polygon"
)

func mustExec(t *testing.T, c *Context, ins instr.Instruction, emit func(polygon.Polygon)) {
	t.Helper()
	if emit == nil {
		emit = func(polygon.Polygon) {}
	}
	if err := c.Exec(ins, emit); err != nil {
		t.Fatalf("Exec(%s): %v", ins.Op, err)
	}
}

// TestExecCurveToSetsReflection is half of property P3: after
// curve_to x1 y1 x2 y2 x y, ControlReflection is (2x-x2, 2y-y2).
func TestExecCurveToSetsReflection(t *testing.T) {
	c := NewContext(5)
	mustExec(t, c, instr.Instruction{Op: instr.OpBeginPath}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpCurveTo, Floats: []float64{0, 10, 10, 10, 10, 0}}, nil)

	want := Point{X: 10, Y: -10} // reflect((10,10), (10,0))
	if c.Reflection != want {
		t.Errorf("Reflection = %+v, want %+v", c.Reflection, want)
	}
}

// TestExecSCurveToUsesReflectionAsFirstControl is the other half of
// P3: a subsequent s_curve_to with its first control unspecified
// flattens identically to an explicit curve_to whose first control is
// the prior segment's reflection.
func TestExecSCurveToUsesReflectionAsFirstControl(t *testing.T) {
	build := func(t *testing.T) *Context {
		c := NewContext(4)
		mustExec(t, c, instr.Instruction{Op: instr.OpBeginPath}, nil)
		mustExec(t, c, instr.Instruction{Op: instr.OpCurveTo, Floats: []float64{0, 10, 10, 10, 10, 0}}, nil)
		return c
	}

	cA := build(t)
	mustExec(t, cA, instr.Instruction{Op: instr.OpSCurveTo, Floats: []float64{20, 0, 20, 10}}, nil)

	cB := build(t)
	cur, err := cB.Path.Current()
	if err != nil {
		t.Fatal(err)
	}
	reflection := cB.Reflection
	flattenCubic(cur, reflection, Point{X: 20, Y: 0}, Point{X: 20, Y: 10}, cB.BezierSteps, cB.Path.Append)

	if len(cA.Path.Verts) != len(cB.Path.Verts) {
		t.Fatalf("got %d vertices, want %d", len(cA.Path.Verts), len(cB.Path.Verts))
	}
	for i := range cB.Path.Verts {
		if cA.Path.Verts[i] != cB.Path.Verts[i] {
			t.Errorf("vertex %d: s_curve_to gave %+v, explicit curve_to gave %+v", i, cA.Path.Verts[i], cB.Path.Verts[i])
		}
	}
}

// TestExecClosePathAnchorsToOrigin covers open question (3): with no
// preceding move_to, close_path closes to the begin_path origin.
func TestExecClosePathAnchorsToOrigin(t *testing.T) {
	c := NewContext(4)
	mustExec(t, c, instr.Instruction{Op: instr.OpBeginPath}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpLineTo, Floats: []float64{10, 0}}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpClosePath}, nil)

	want := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 0}}
	if len(c.Path.Verts) != len(want) {
		t.Fatalf("got %d vertices %v, want %d", len(c.Path.Verts), c.Path.Verts, len(want))
	}
	for i := range want {
		if c.Path.Verts[i] != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, c.Path.Verts[i], want[i])
		}
	}
}

// TestExecClosePathAnchorsToMoveTo covers the move_to-overwrites-origin
// case: close_path anchors to the most recent move_to's target.
func TestExecClosePathAnchorsToMoveTo(t *testing.T) {
	c := NewContext(4)
	mustExec(t, c, instr.Instruction{Op: instr.OpBeginPath}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpMoveTo, Floats: []float64{5, 5}}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpLineTo, Floats: []float64{10, 5}}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpClosePath}, nil)

	want := []Point{{X: 5, Y: 5}, {X: 10, Y: 5}, {X: 5, Y: 5}}
	if len(c.Path.Verts) != len(want) {
		t.Fatalf("got %d vertices %v, want %d", len(c.Path.Verts), c.Path.Verts, len(want))
	}
	for i := range want {
		if c.Path.Verts[i] != want[i] {
			t.Errorf("vertex %d = %+v, want %+v", i, c.Path.Verts[i], want[i])
		}
	}
}

func square(t *testing.T, c *Context) {
	t.Helper()
	mustExec(t, c, instr.Instruction{Op: instr.OpBeginPath}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpLineTo, Floats: []float64{10, 0}}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpLineTo, Floats: []float64{10, 10}}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpLineTo, Floats: []float64{0, 10}}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpClosePath}, nil)
}

// TestExecFillAndStrokeEmitsFillOnly covers the default style (fill
// black, stroke NONE): only a fill polygon is emitted.
func TestExecFillAndStrokeEmitsFillOnly(t *testing.T) {
	c := NewContext(4)
	square(t, c)

	var emitted []polygon.Polygon
	mustExec(t, c, instr.Instruction{Op: instr.OpFillAndStroke}, func(p polygon.Polygon) {
		emitted = append(emitted, p)
	})

	if len(emitted) != 1 {
		t.Fatalf("got %d polygons, want 1 (fill only)", len(emitted))
	}
	if emitted[0].Color != 0x000000 {
		t.Errorf("fill color = %x, want default black", emitted[0].Color)
	}
	if len(emitted[0].Vertices) != 5 {
		t.Errorf("got %d vertices, want 5 (begin + 3 lines + close)", len(emitted[0].Vertices))
	}
}

// TestExecFillAndStrokeEmitsStrokeOnly covers fill gated off by
// NoneColor, stroke gated on: only stroke geometry is emitted.
func TestExecFillAndStrokeEmitsStrokeOnly(t *testing.T) {
	c := NewContext(4)
	mustExec(t, c, instr.Instruction{Op: instr.OpFillColor, Color: NoneColor}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpStrokeColor, Color: 0x0000ff}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpStrokeWidth, Floats: []float64{2}}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpBeginPath}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpLineTo, Floats: []float64{10, 0}}, nil)

	var emitted []polygon.Polygon
	mustExec(t, c, instr.Instruction{Op: instr.OpFillAndStroke}, func(p polygon.Polygon) {
		emitted = append(emitted, p)
	})

	if len(emitted) != 1 {
		t.Fatalf("got %d polygons, want 1 (one stroke quad, no fill)", len(emitted))
	}
	if emitted[0].Color != 0x0000ff {
		t.Errorf("stroke color = %x, want 0x0000ff", emitted[0].Color)
	}
}

// TestExecFillAndStrokeZeroWidthSuppressesStroke covers the
// stroke_width <= 0 gate: a set stroke color with zero width emits
// nothing for the stroke.
func TestExecFillAndStrokeZeroWidthSuppressesStroke(t *testing.T) {
	c := NewContext(4)
	mustExec(t, c, instr.Instruction{Op: instr.OpFillColor, Color: NoneColor}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpStrokeColor, Color: 0x0000ff}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpStrokeWidth, Floats: []float64{0}}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpBeginPath}, nil)
	mustExec(t, c, instr.Instruction{Op: instr.OpLineTo, Floats: []float64{10, 0}}, nil)

	var emitted []polygon.Polygon
	mustExec(t, c, instr.Instruction{Op: instr.OpFillAndStroke}, func(p polygon.Polygon) {
		emitted = append(emitted, p)
	})

	if len(emitted) != 0 {
		t.Fatalf("got %d polygons, want 0 (fill NONE, stroke width 0)", len(emitted))
	}
}
