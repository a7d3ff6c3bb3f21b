package graphics

import (
	"math"
	"testing"
)

func TestDrawCircle(t *testing.T) {
	g := newTestGraphics()
	g.DrawCircle(10, 20, 5)
	assertCommands(t, g, ArcCommand{X: 15, Y: 25, Radius: 5, StartAngle: 0, EndAngle: 2 * math.Pi, Anticlockwise: false})
}

func TestDrawEllipseWithEqualSidesIsCircle(t *testing.T) {
	a := newTestGraphics().DrawEllipse(0, 0, 10, 10)
	b := newTestGraphics().DrawCircle(0, 0, 10)
	assertCommands(t, a, b.Commands()...)
}

func TestDrawEllipse(t *testing.T) {
	g := newTestGraphics().DrawEllipse(0, 0, 20, 10)

	w, h := 10.0, 5.0
	ox, oy := w*kappa, h*kappa
	assertCommands(t, g,
		MoveToCommand{X: 20, Y: 5},
		BezierCurveToCommand{C1X: 20, C1Y: 5 - oy, C2X: 10 + ox, C2Y: 0, X: 10, Y: 0},
		BezierCurveToCommand{C1X: 10 - ox, C1Y: 0, C2X: 0, C2Y: 5 - oy, X: 0, Y: 5},
		BezierCurveToCommand{C1X: 0, C1Y: 5 + oy, C2X: 10 - ox, C2Y: 10, X: 10, Y: 10},
		BezierCurveToCommand{C1X: 10 + ox, C1Y: 10, C2X: 20, C2Y: 5 + oy, X: 20, Y: 5},
	)
}

func TestDrawRoundRectComplex(t *testing.T) {
	g := newTestGraphics().DrawRoundRectComplex(10, 20, 100, 50, 1, 2, 3, 4)
	assertCommands(t, g,
		MoveToCommand{X: 11, Y: 20},
		LineToCommand{X: 108, Y: 20},
		ArcCommand{X: 108, Y: 22, Radius: 2, StartAngle: -math.Pi / 2, EndAngle: 0},
		LineToCommand{X: 110, Y: 67},
		ArcCommand{X: 107, Y: 67, Radius: 3, StartAngle: 0, EndAngle: math.Pi / 2},
		LineToCommand{X: 14, Y: 70},
		ArcCommand{X: 14, Y: 66, Radius: 4, StartAngle: math.Pi / 2, EndAngle: math.Pi},
		LineToCommand{X: 10, Y: 21},
		ArcCommand{X: 11, Y: 21, Radius: 1, StartAngle: math.Pi, EndAngle: math.Pi * 3 / 2},
	)
}

func TestDrawRoundRect(t *testing.T) {
	a := newTestGraphics().DrawRoundRect(0, 0, 40, 30, 5)
	b := newTestGraphics().DrawRoundRectComplex(0, 0, 40, 30, 5, 5, 5, 5)
	assertCommands(t, a, b.Commands()...)
	if a.Len() != 9 {
		t.Errorf("Len() = %d, want 9", a.Len())
	}
}

func TestInputNotValidated(t *testing.T) {
	g := newTestGraphics()
	g.DrawCircle(0, 0, -5).DrawRect(math.NaN(), 0, -1, -1)

	cmds := g.Commands()
	if arc := cmds[0].(ArcCommand); arc.Radius != -5 {
		t.Errorf("arc radius = %v, want -5", arc.Radius)
	}
	if r := cmds[1].(RectCommand); !math.IsNaN(r.X) || r.Width != -1 {
		t.Errorf("rect = %+v, want NaN x and width -1", r)
	}
}

func TestPathCommands(t *testing.T) {
	g := newTestGraphics()
	g.BeginPath().MoveTo(1, 2).LineTo(3, 4).BezierCurveTo(1, 2, 3, 4, 5, 6).Arc(0, 0, 1, 0, math.Pi, true).ClosePath()
	assertCommands(t, g,
		BeginPathCommand{},
		MoveToCommand{X: 1, Y: 2},
		LineToCommand{X: 3, Y: 4},
		BezierCurveToCommand{C1X: 1, C1Y: 2, C2X: 3, C2Y: 4, X: 5, Y: 6},
		ArcCommand{Radius: 1, EndAngle: math.Pi, Anticlockwise: true},
		ClosePathCommand{},
	)
}
