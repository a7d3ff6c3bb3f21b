package graphics

import "github.com/gogpu/gg-graphics/surface"

// Op identifies a recorded operation. The set is closed.
type Op uint8

const (
	// Style properties
	OpSetLineWidth   Op = iota // lineWidth
	OpSetStrokeStyle           // strokeStyle
	OpSetLineAlpha             // lineAlpha
	OpSetLineCap               // lineCap
	OpSetLineJoin              // lineJoin
	OpSetMiterLimit            // miterLimit
	OpSetFillStyle             // fillStyle
	OpSetFillAlpha             // fillAlpha

	// Painting
	OpStroke // stroke()
	OpFill   // fill()

	// Path construction
	OpBeginPath     // beginPath()
	OpClosePath     // closePath()
	OpMoveTo        // moveTo(x, y)
	OpLineTo        // lineTo(x, y)
	OpRect          // rect(x, y, w, h)
	OpArc           // arc(x, y, r, start, end, anticlockwise)
	OpBezierCurveTo // bezierCurveTo(c1x, c1y, c2x, c2y, x, y)

	opCount
)

// opNames maps Op values to the canvas property or method they drive.
var opNames = [...]string{
	OpSetLineWidth:   "lineWidth",
	OpSetStrokeStyle: "strokeStyle",
	OpSetLineAlpha:   "lineAlpha",
	OpSetLineCap:     "lineCap",
	OpSetLineJoin:    "lineJoin",
	OpSetMiterLimit:  "miterLimit",
	OpSetFillStyle:   "fillStyle",
	OpSetFillAlpha:   "fillAlpha",
	OpStroke:         "stroke",
	OpFill:           "fill",
	OpBeginPath:      "beginPath",
	OpClosePath:      "closePath",
	OpMoveTo:         "moveTo",
	OpLineTo:         "lineTo",
	OpRect:           "rect",
	OpArc:            "arc",
	OpBezierCurveTo:  "bezierCurveTo",
}

// String returns the canvas name of the operation.
func (o Op) String() string {
	if o < opCount {
		return opNames[o]
	}
	return "unknown"
}

// Command is a recorded drawing operation. Commands are values and are
// never modified after they are appended to a Graphics.
type Command interface {
	// Op returns the operation the command performs.
	Op() Op
}

// SetLineWidthCommand sets the stroke width.
type SetLineWidthCommand struct {
	Width float64
}

// Op implements Command.
func (SetLineWidthCommand) Op() Op { return OpSetLineWidth }

// SetStrokeStyleCommand sets the stroke paint.
type SetStrokeStyleCommand struct {
	Style surface.Paint
}

// Op implements Command.
func (SetStrokeStyleCommand) Op() Op { return OpSetStrokeStyle }

// SetLineAlphaCommand sets the stroke opacity.
type SetLineAlphaCommand struct {
	Alpha float64
}

// Op implements Command.
func (SetLineAlphaCommand) Op() Op { return OpSetLineAlpha }

// SetLineCapCommand sets the line cap.
type SetLineCapCommand struct {
	Cap surface.LineCap
}

// Op implements Command.
func (SetLineCapCommand) Op() Op { return OpSetLineCap }

// SetLineJoinCommand sets the line join.
type SetLineJoinCommand struct {
	Join surface.LineJoin
}

// Op implements Command.
func (SetLineJoinCommand) Op() Op { return OpSetLineJoin }

// SetMiterLimitCommand sets the miter limit.
type SetMiterLimitCommand struct {
	Limit float64
}

// Op implements Command.
func (SetMiterLimitCommand) Op() Op { return OpSetMiterLimit }

// SetFillStyleCommand sets the fill paint. Style may be nil.
type SetFillStyleCommand struct {
	Style surface.Paint
}

// Op implements Command.
func (SetFillStyleCommand) Op() Op { return OpSetFillStyle }

// SetFillAlphaCommand sets the fill opacity.
type SetFillAlphaCommand struct {
	Alpha float64
}

// Op implements Command.
func (SetFillAlphaCommand) Op() Op { return OpSetFillAlpha }

// StrokeCommand strokes the current path.
type StrokeCommand struct{}

// Op implements Command.
func (StrokeCommand) Op() Op { return OpStroke }

// FillCommand fills the current path.
type FillCommand struct{}

// Op implements Command.
func (FillCommand) Op() Op { return OpFill }

// BeginPathCommand discards the current path.
type BeginPathCommand struct{}

// Op implements Command.
func (BeginPathCommand) Op() Op { return OpBeginPath }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Op implements Command.
func (ClosePathCommand) Op() Op { return OpClosePath }

// MoveToCommand starts a subpath.
type MoveToCommand struct {
	X, Y float64
}

// Op implements Command.
func (MoveToCommand) Op() Op { return OpMoveTo }

// LineToCommand adds a line segment.
type LineToCommand struct {
	X, Y float64
}

// Op implements Command.
func (LineToCommand) Op() Op { return OpLineTo }

// RectCommand adds a closed rectangle.
type RectCommand struct {
	X, Y          float64
	Width, Height float64
}

// Op implements Command.
func (RectCommand) Op() Op { return OpRect }

// ArcCommand adds a circular arc.
type ArcCommand struct {
	X, Y          float64
	Radius        float64
	StartAngle    float64
	EndAngle      float64
	Anticlockwise bool
}

// Op implements Command.
func (ArcCommand) Op() Op { return OpArc }

// BezierCurveToCommand adds a cubic Bézier segment.
type BezierCurveToCommand struct {
	C1X, C1Y float64
	C2X, C2Y float64
	X, Y     float64
}

// Op implements Command.
func (BezierCurveToCommand) Op() Op { return OpBezierCurveTo }
