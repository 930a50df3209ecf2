package interp

import "testing"

func TestStrokeQuadZeroLengthSkipped(t *testing.T) {
	_, ok := strokeQuad(Point{X: 3, Y: 3}, Point{X: 3, Y: 3}, 1)
	if ok {
		t.Fatalf("zero-length segment produced a quad")
	}
}

func TestStrokeQuadVertexOrder(t *testing.T) {
	// Horizontal segment (0,0)->(10,0): the CCW normal of (1,0) is
	// (0,1), so the quad should offset above/below the segment.
	quad, ok := strokeQuad(Point{X: 0, Y: 0}, Point{X: 10, Y: 0}, 1)
	if !ok {
		t.Fatalf("expected a quad for a non-degenerate segment")
	}
	want := [4]Point{
		{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 10, Y: -1}, {X: 10, Y: 1},
	}
	for i := range want {
		if quad[i] != want[i] {
			t.Errorf("quad[%d] = %+v, want %+v", i, quad[i], want[i])
		}
	}
}

// TestTessellateStrokeJointsInteriorOnly verifies that tessellateStroke
// emits a joint polygon only for interior vertices (not the first or
// last), alongside one quad per non-degenerate segment.
func TestTessellateStrokeJointsInteriorOnly(t *testing.T) {
	verts := []Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	var quads, joints int
	tessellateStroke(verts, 2, func(poly []Point) {
		switch len(poly) {
		case 4:
			quads++
		case jointSides:
			joints++
		default:
			t.Fatalf("unexpected polygon size %d", len(poly))
		}
	})

	if quads != 3 {
		t.Errorf("got %d quads, want 3 (one per segment)", quads)
	}
	if joints != 2 {
		t.Errorf("got %d joints, want 2 (interior vertices only)", joints)
	}
}

func TestTessellateStrokeSkipsZeroLengthSegmentButKeepsJoint(t *testing.T) {
	// Middle segment is degenerate (repeated vertex); the interior
	// vertex at index 1 must still get a joint.
	verts := []Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 5, Y: 5}, {X: 10, Y: 0}}

	var quads, joints int
	tessellateStroke(verts, 2, func(poly []Point) {
		if len(poly) == 4 {
			quads++
		} else {
			joints++
		}
	})

	if quads != 2 {
		t.Errorf("got %d quads, want 2 (one segment is degenerate)", quads)
	}
	if joints != 2 {
		t.Errorf("got %d joints, want 2 (both interior vertices)", joints)
	}
}

func TestTessellateStrokeNoOpBelowTwoVertices(t *testing.T) {
	called := false
	tessellateStroke([]Point{{X: 0, Y: 0}}, 2, func([]Point) { called = true })
	if called {
		t.Errorf("tessellateStroke emitted geometry for a single-vertex path")
	}
}

func TestTessellateStrokeNoOpZeroWidth(t *testing.T) {
	called := false
	tessellateStroke([]Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, 0, func([]Point) { called = true })
	if called {
		t.Errorf("tessellateStroke emitted geometry for zero stroke width")
	}
}
