package polygon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/image/math/f32"
)

// ErrInvalidPolygonHeader is returned for a header line that is not
// "<color_hex> <vertex_count>".
var ErrInvalidPolygonHeader = errors.New("polygon: invalid header line")

// Encoder writes polygons in wire format.
type Encoder struct {
	w io.Writer
}

// NewEncoder wraps w as a polygon-stream writer.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes one polygon record. Polygons with fewer than two
// vertices are not written, matching the fill/stroke emission rule.
func (e *Encoder) Encode(p Polygon) error {
	if len(p.Vertices) < 2 {
		return nil
	}
	if _, err := fmt.Fprintf(e.w, "0x%06x %d\n", uint32(p.Color)&0xffffff, len(p.Vertices)); err != nil {
		return err
	}
	for _, v := range p.Vertices {
		if _, err := fmt.Fprintf(e.w, "%s %s\n",
			strconv.FormatFloat(float64(v[0]), 'g', -1, 32),
			strconv.FormatFloat(float64(v[1]), 'g', -1, 32)); err != nil {
			return err
		}
	}
	return nil
}

// Decoder reads polygons from the interpreter's output.
type Decoder struct {
	sc   *bufio.Scanner
	line int
}

// NewDecoder wraps r as a polygon-stream reader.
func NewDecoder(r io.Reader) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	return &Decoder{sc: sc}
}

func (d *Decoder) nextLine() (string, bool) {
	for d.sc.Scan() {
		d.line++
		line := strings.TrimSpace(d.sc.Text())
		if line == "" {
			continue
		}
		return line, true
	}
	return "", false
}

// Decode reads the next polygon, or io.EOF when the stream is exhausted.
func (d *Decoder) Decode() (Polygon, error) {
	head, ok := d.nextLine()
	if !ok {
		if err := d.sc.Err(); err != nil {
			return Polygon{}, fmt.Errorf("polygon: reading header: %w", err)
		}
		return Polygon{}, io.EOF
	}
	fields := strings.Fields(head)
	if len(fields) != 2 {
		return Polygon{}, fmt.Errorf("polygon: line %d: %w", d.line, ErrInvalidPolygonHeader)
	}
	color, err := strconv.ParseInt(strings.TrimPrefix(strings.TrimPrefix(fields[0], "0x"), "0X"), 16, 64)
	if err != nil {
		return Polygon{}, fmt.Errorf("polygon: line %d: invalid color: %w", d.line, err)
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil || n < 0 {
		return Polygon{}, fmt.Errorf("polygon: line %d: invalid vertex count: %w", d.line, err)
	}

	verts := make([]f32.Vec2, n)
	for i := 0; i < n; i++ {
		line, ok := d.nextLine()
		if !ok {
			return Polygon{}, fmt.Errorf("polygon: line %d: unexpected EOF reading vertex %d", d.line, i)
		}
		vf := strings.Fields(line)
		if len(vf) != 2 {
			return Polygon{}, fmt.Errorf("polygon: line %d: expected 2 coordinates, got %d", d.line, len(vf))
		}
		x, err := strconv.ParseFloat(vf[0], 32)
		if err != nil {
			return Polygon{}, fmt.Errorf("polygon: line %d: %w", d.line, err)
		}
		y, err := strconv.ParseFloat(vf[1], 32)
		if err != nil {
			return Polygon{}, fmt.Errorf("polygon: line %d: %w", d.line, err)
		}
		verts[i] = f32.Vec2{float32(x), float32(y)}
	}

	return Polygon{Color: int32(color), Vertices: verts}, nil
}
