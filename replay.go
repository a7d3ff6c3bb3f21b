package graphics

import "github.com/gogpu/gg-graphics/surface"

// dispatch tells the replay loop how an operation reaches the context.
type dispatch uint8

const (
	// dispatchProperty assigns the command's single value to a context
	// property.
	dispatchProperty dispatch = iota

	// dispatchMethod calls a context method with the command's arguments.
	dispatchMethod
)

// opDispatch classifies every operation once. Style setters are property
// assignments; path and paint operations are method calls.
var opDispatch = [opCount]dispatch{
	OpSetLineWidth:   dispatchProperty,
	OpSetStrokeStyle: dispatchProperty,
	OpSetLineAlpha:   dispatchProperty,
	OpSetLineCap:     dispatchProperty,
	OpSetLineJoin:    dispatchProperty,
	OpSetMiterLimit:  dispatchProperty,
	OpSetFillStyle:   dispatchProperty,
	OpSetFillAlpha:   dispatchProperty,
	OpStroke:         dispatchMethod,
	OpFill:           dispatchMethod,
	OpBeginPath:      dispatchMethod,
	OpClosePath:      dispatchMethod,
	OpMoveTo:         dispatchMethod,
	OpLineTo:         dispatchMethod,
	OpRect:           dispatchMethod,
	OpArc:            dispatchMethod,
	OpBezierCurveTo:  dispatchMethod,
}

// IsProperty reports whether the operation is replayed as a property
// assignment rather than a method call.
func (o Op) IsProperty() bool {
	return o < opCount && opDispatch[o] == dispatchProperty
}

// Replay applies the whole command log to ctx, in recording order,
// starting from the first command. It ignores the raster cache.
func (g *Graphics) Replay(ctx surface.Context2D) {
	replay(ctx, g.commands)
}

func replay(ctx surface.Context2D, cmds []Command) {
	for _, cmd := range cmds {
		if cmd.Op().IsProperty() {
			assign(ctx, cmd)
		} else {
			call(ctx, cmd)
		}
	}
}

func assign(ctx surface.Context2D, cmd Command) {
	switch c := cmd.(type) {
	case SetLineWidthCommand:
		ctx.SetLineWidth(c.Width)
	case SetStrokeStyleCommand:
		ctx.SetStrokeStyle(c.Style)
	case SetLineAlphaCommand:
		ctx.SetLineAlpha(c.Alpha)
	case SetLineCapCommand:
		ctx.SetLineCap(c.Cap)
	case SetLineJoinCommand:
		ctx.SetLineJoin(c.Join)
	case SetMiterLimitCommand:
		ctx.SetMiterLimit(c.Limit)
	case SetFillStyleCommand:
		ctx.SetFillStyle(c.Style)
	case SetFillAlphaCommand:
		ctx.SetFillAlpha(c.Alpha)
	}
}

func call(ctx surface.Context2D, cmd Command) {
	switch c := cmd.(type) {
	case StrokeCommand:
		ctx.Stroke()
	case FillCommand:
		ctx.Fill()
	case BeginPathCommand:
		ctx.BeginPath()
	case ClosePathCommand:
		ctx.ClosePath()
	case MoveToCommand:
		ctx.MoveTo(c.X, c.Y)
	case LineToCommand:
		ctx.LineTo(c.X, c.Y)
	case RectCommand:
		ctx.Rect(c.X, c.Y, c.Width, c.Height)
	case ArcCommand:
		ctx.Arc(c.X, c.Y, c.Radius, c.StartAngle, c.EndAngle, c.Anticlockwise)
	case BezierCurveToCommand:
		ctx.BezierCurveTo(c.C1X, c.C1Y, c.C2X, c.C2Y, c.X, c.Y)
	}
}
