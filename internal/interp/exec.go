package interp

import (
	"fmt"

	"golang.org/x/image/math/f32"

	"github.com/vecraster/svgraster/internal/instr"
	"github.com/vecraster/svgraster/internal/polygon"
)

// Exec executes one instruction against c, calling emit for every
// polygon produced by a fill_and_stroke.
func (c *Context) Exec(ins instr.Instruction, emit func(polygon.Polygon)) error {
	switch ins.Op {
	case instr.OpSave:
		c.Styles.Save()

	case instr.OpRestore:
		if err := c.Styles.Restore(); err != nil {
			return err
		}

	case instr.OpStrokeWidth:
		c.Styles.Top().StrokeWidth = ins.Floats[0]

	case instr.OpStrokeColor:
		c.Styles.Top().StrokeColor = ins.Color

	case instr.OpFillColor:
		c.Styles.Top().FillColor = ins.Color

	case instr.OpPushMatrix:
		f := ins.Floats
		c.Transforms.Push(Matrix{f[0], f[1], f[2], f[3], f[4], f[5]})

	case instr.OpPopMatrix:
		if err := c.Transforms.Pop(); err != nil {
			return err
		}

	case instr.OpBeginPath:
		c.Path.Reset()
		c.Reflection = Point{X: 0, Y: 0}

	case instr.OpMoveTo:
		if err := c.Path.SetCurrent(Point{X: ins.Floats[0], Y: ins.Floats[1]}); err != nil {
			return err
		}
		return c.resetReflection()

	case instr.OpMoveToD:
		cur, err := c.Path.Current()
		if err != nil {
			return err
		}
		if err := c.Path.SetCurrent(Point{X: cur.X + ins.Floats[0], Y: cur.Y + ins.Floats[1]}); err != nil {
			return err
		}
		return c.resetReflection()

	case instr.OpLineTo:
		c.Path.Append(Point{X: ins.Floats[0], Y: ins.Floats[1]})
		return c.resetReflection()

	case instr.OpLineToD:
		cur, err := c.Path.Current()
		if err != nil {
			return err
		}
		c.Path.Append(Point{X: cur.X + ins.Floats[0], Y: cur.Y + ins.Floats[1]})
		return c.resetReflection()

	case instr.OpHLineTo:
		cur, err := c.Path.Current()
		if err != nil {
			return err
		}
		c.Path.Append(Point{X: ins.Floats[0], Y: cur.Y})
		return c.resetReflection()

	case instr.OpHLineToD:
		cur, err := c.Path.Current()
		if err != nil {
			return err
		}
		c.Path.Append(Point{X: cur.X + ins.Floats[0], Y: cur.Y})
		return c.resetReflection()

	case instr.OpVLineTo:
		cur, err := c.Path.Current()
		if err != nil {
			return err
		}
		c.Path.Append(Point{X: cur.X, Y: ins.Floats[0]})
		return c.resetReflection()

	case instr.OpVLineToD:
		cur, err := c.Path.Current()
		if err != nil {
			return err
		}
		c.Path.Append(Point{X: cur.X, Y: cur.Y + ins.Floats[0]})
		return c.resetReflection()

	case instr.OpCurveTo:
		cur, err := c.Path.Current()
		if err != nil {
			return err
		}
		f := ins.Floats
		p1 := Point{X: f[0], Y: f[1]}
		p2 := Point{X: f[2], Y: f[3]}
		p3 := Point{X: f[4], Y: f[5]}
		flattenCubic(cur, p1, p2, p3, c.BezierSteps, c.Path.Append)
		c.Reflection = reflect(p2, p3)

	case instr.OpCurveToD:
		cur, err := c.Path.Current()
		if err != nil {
			return err
		}
		f := ins.Floats
		p1 := Point{X: cur.X + f[0], Y: cur.Y + f[1]}
		p2 := Point{X: cur.X + f[2], Y: cur.Y + f[3]}
		p3 := Point{X: cur.X + f[4], Y: cur.Y + f[5]}
		flattenCubic(cur, p1, p2, p3, c.BezierSteps, c.Path.Append)
		c.Reflection = reflect(p2, p3)

	case instr.OpSCurveTo:
		cur, err := c.Path.Current()
		if err != nil {
			return err
		}
		f := ins.Floats
		p2 := Point{X: f[0], Y: f[1]}
		p3 := Point{X: f[2], Y: f[3]}
		flattenCubic(cur, c.Reflection, p2, p3, c.BezierSteps, c.Path.Append)
		c.Reflection = reflect(p2, p3)

	case instr.OpSCurveToD:
		cur, err := c.Path.Current()
		if err != nil {
			return err
		}
		f := ins.Floats
		p2 := Point{X: cur.X + f[0], Y: cur.Y + f[1]}
		p3 := Point{X: cur.X + f[2], Y: cur.Y + f[3]}
		flattenCubic(cur, c.Reflection, p2, p3, c.BezierSteps, c.Path.Append)
		c.Reflection = reflect(p2, p3)

	case instr.OpClosePath:
		origin, err := c.Path.Origin()
		if err != nil {
			return err
		}
		c.Path.Append(origin)

	case instr.OpFillAndStroke:
		c.fillAndStroke(emit)

	default:
		return fmt.Errorf("interp: unhandled opcode %s", ins.Op)
	}
	return nil
}

// reflect implements the smooth-curve continuation identity: the
// reflection of control point p2 through endpoint p3.
func reflect(p2, p3 Point) Point {
	return Point{X: 2*p3.X - p2.X, Y: 2*p3.Y - p2.Y}
}

func (c *Context) fillAndStroke(emit func(polygon.Polygon)) {
	m := c.Transforms.Effective()
	c.Path.Transform(m)
	style := *c.Styles.Top()

	if len(c.Path.Verts) < 2 {
		return
	}

	if style.FillColor != NoneColor {
		emit(polygon.Polygon{Color: style.FillColor, Vertices: toDevice(c.Path.Verts)})
	}
	if style.StrokeColor != NoneColor && style.StrokeWidth > 0 {
		tessellateStroke(c.Path.Verts, style.StrokeWidth, func(verts []Point) {
			emit(polygon.Polygon{Color: style.StrokeColor, Vertices: toDevice(verts)})
		})
	}
}

func toDevice(verts []Point) []f32.Vec2 {
	out := make([]f32.Vec2, len(verts))
	for i, v := range verts {
		out[i] = f32.Vec2{float32(v.X), float32(v.Y)}
	}
	return out
}
