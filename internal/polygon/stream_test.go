package polygon

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"golang.org/x/image/math/f32"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	want := []Polygon{
		{Color: 0xff0000, Vertices: []f32.Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}},
		{Color: 0x00ff00, Vertices: []f32.Vec2{{1.5, 2.25}, {3.75, 4}}},
	}

	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	for _, p := range want {
		if err := enc.Encode(p); err != nil {
			t.Fatalf("Encode: %v", err)
		}
	}

	dec := NewDecoder(&buf)
	for i, p := range want {
		got, err := dec.Decode()
		if err != nil {
			t.Fatalf("Decode #%d: %v", i, err)
		}
		if got.Color != p.Color || len(got.Vertices) != len(p.Vertices) {
			t.Fatalf("#%d: got %+v, want %+v", i, got, p)
		}
		for k := range p.Vertices {
			if got.Vertices[k] != p.Vertices[k] {
				t.Errorf("#%d vertex %d: got %v, want %v", i, k, got.Vertices[k], p.Vertices[k])
			}
		}
	}
	if _, err := dec.Decode(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

// TestEncodeDropsSubMinimalPolygon matches the "polygons with fewer
// than two vertices are discarded" rule (§3).
func TestEncodeDropsSubMinimalPolygon(t *testing.T) {
	var buf bytes.Buffer
	enc := NewEncoder(&buf)
	if err := enc.Encode(Polygon{Color: 0xff0000, Vertices: []f32.Vec2{{1, 1}}}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("single-vertex polygon was encoded: %q", buf.String())
	}
}

func TestDecodeInvalidHeader(t *testing.T) {
	dec := NewDecoder(bytes.NewBufferString("not a header\n"))
	if _, err := dec.Decode(); !errors.Is(err, ErrInvalidPolygonHeader) {
		t.Errorf("got %v, want ErrInvalidPolygonHeader", err)
	}
}
