package graphics

import "math"

// kappa is the cubic Bézier control distance for a quarter ellipse.
const kappa = 0.5522847498307933

// BeginPath records a beginPath.
func (g *Graphics) BeginPath() *Graphics { return g.record(BeginPathCommand{}) }

// ClosePath records a closePath.
func (g *Graphics) ClosePath() *Graphics { return g.record(ClosePathCommand{}) }

// MoveTo records a moveTo.
func (g *Graphics) MoveTo(x, y float64) *Graphics {
	return g.record(MoveToCommand{X: x, Y: y})
}

// LineTo records a lineTo.
func (g *Graphics) LineTo(x, y float64) *Graphics {
	return g.record(LineToCommand{X: x, Y: y})
}

// BezierCurveTo records a bezierCurveTo.
func (g *Graphics) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) *Graphics {
	return g.record(BezierCurveToCommand{C1X: c1x, C1Y: c1y, C2X: c2x, C2Y: c2y, X: x, Y: y})
}

// Arc records an arc centred at (x, y).
func (g *Graphics) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) *Graphics {
	return g.record(ArcCommand{
		X:             x,
		Y:             y,
		Radius:        radius,
		StartAngle:    startAngle,
		EndAngle:      endAngle,
		Anticlockwise: anticlockwise,
	})
}

// DrawRect records a rectangle.
func (g *Graphics) DrawRect(x, y, width, height float64) *Graphics {
	return g.record(RectCommand{X: x, Y: y, Width: width, Height: height})
}

// DrawRoundRectComplex records a rectangle whose corners have their own
// radii, clockwise from the top-left. Radii are not validated; radii larger
// than the sides give a self-intersecting outline.
func (g *Graphics) DrawRoundRectComplex(x, y, width, height, topLeft, topRight, bottomRight, bottomLeft float64) *Graphics {
	const (
		up    = -math.Pi / 2
		right = 0
		down  = math.Pi / 2
		left  = math.Pi
	)
	g.MoveTo(x+topLeft, y)
	g.LineTo(x+width-topRight, y)
	g.Arc(x+width-topRight, y+topRight, topRight, up, right, false)
	g.LineTo(x+width, y+height-bottomRight)
	g.Arc(x+width-bottomRight, y+height-bottomRight, bottomRight, right, down, false)
	g.LineTo(x+bottomLeft, y+height)
	g.Arc(x+bottomLeft, y+height-bottomLeft, bottomLeft, down, left, false)
	g.LineTo(x, y+topLeft)
	g.Arc(x+topLeft, y+topLeft, topLeft, left, math.Pi*3/2, false)
	return g
}

// DrawRoundRect records a rectangle with four equal corner radii.
func (g *Graphics) DrawRoundRect(x, y, width, height, cornerSize float64) *Graphics {
	return g.DrawRoundRectComplex(x, y, width, height, cornerSize, cornerSize, cornerSize, cornerSize)
}

// DrawCircle records a circle of the given radius whose bounding box has
// its top-left corner at (x, y).
func (g *Graphics) DrawCircle(x, y, radius float64) *Graphics {
	return g.Arc(x+radius, y+radius, radius, 0, math.Pi*2, false)
}

// DrawEllipse records the ellipse inscribed in the width×height box at
// (x, y). Equal sides draw DrawCircle(x, y, width), whose box is twice as
// large.
func (g *Graphics) DrawEllipse(x, y, width, height float64) *Graphics {
	if width == height {
		return g.DrawCircle(x, y, width)
	}

	w, h := width/2, height/2
	cx, cy := x+w, y+h
	ox, oy := w*kappa, h*kappa

	g.MoveTo(cx+w, cy)
	g.BezierCurveTo(cx+w, cy-oy, cx+ox, cy-h, cx, cy-h)
	g.BezierCurveTo(cx-ox, cy-h, cx-w, cy-oy, cx-w, cy)
	g.BezierCurveTo(cx-w, cy+oy, cx-ox, cy+h, cx, cy+h)
	g.BezierCurveTo(cx+ox, cy+h, cx+w, cy+oy, cx+w, cy)
	return g
}
