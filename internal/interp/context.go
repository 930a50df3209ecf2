package interp

// Context holds everything the interpreter needs to execute one
// instruction stream to completion.
type Context struct {
	Styles      *StyleStack
	Transforms  TransformStack
	Path        Path
	Reflection  Point
	BezierSteps int // samples per flattened cubic; DefaultBezierSamples if zero
}

// NewContext returns a Context with the root style frame seeded and an
// empty transform stack (identity), ready to execute begin_path.
func NewContext(bezierSteps int) *Context {
	if bezierSteps <= 0 {
		bezierSteps = DefaultBezierSamples
	}
	return &Context{
		Styles:      NewStyleStack(),
		BezierSteps: bezierSteps,
	}
}

// resetReflection points the control reflection at the current point,
// as every non-curve vertex command does.
func (c *Context) resetReflection() error {
	p, err := c.Path.Current()
	if err != nil {
		return err
	}
	c.Reflection = p
	return nil
}
