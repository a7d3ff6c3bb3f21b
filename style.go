package graphics

import (
	"image"
	"math"

	"github.com/gogpu/gg-graphics/surface"
)

// Default style values.
const (
	DefaultLineWidth  = 1
	DefaultMiterLimit = 10
)

// StyleState is the current stroke and fill configuration. It mirrors the
// style commands as they are recorded and is never rebuilt from the log.
type StyleState struct {
	LineWidth   float64
	StrokeStyle surface.Paint
	LineAlpha   float64
	LineCap     surface.LineCap
	LineJoin    surface.LineJoin
	MiterLimit  float64
	FillStyle   surface.Paint
	FillAlpha   float64
}

// DefaultStyle returns the construction-time style: 1px black strokes,
// black fill, opaque alphas, miter limit 10, cap and join unset.
func DefaultStyle() StyleState {
	return StyleState{
		LineWidth:   DefaultLineWidth,
		StrokeStyle: surface.Black,
		LineAlpha:   1,
		MiterLimit:  DefaultMiterLimit,
		FillStyle:   surface.Black,
		FillAlpha:   1,
	}
}

// LineOption supplies an optional LineStyle attribute. Attributes that are
// not supplied are neither recorded nor changed.
type LineOption func(*lineOptions)

type lineOptions struct {
	cap        surface.LineCap
	join       surface.LineJoin
	miterLimit float64
	hasMiter   bool
}

// WithLineCap sets the line cap. LineCapUnset counts as not supplied.
func WithLineCap(c surface.LineCap) LineOption {
	return func(o *lineOptions) { o.cap = c }
}

// WithLineJoin sets the line join. LineJoinUnset counts as not supplied.
func WithLineJoin(j surface.LineJoin) LineOption {
	return func(o *lineOptions) { o.join = j }
}

// WithMiterLimit sets the miter limit.
func WithMiterLimit(limit float64) LineOption {
	return func(o *lineOptions) {
		o.miterLimit = limit
		o.hasMiter = true
	}
}

// LineStyle sets the stroke. A zero thickness means 1, a nil or empty
// colour means black and a zero alpha means 1. It records width, stroke
// style and alpha, then cap, join and miter limit when supplied.
func (g *Graphics) LineStyle(thickness float64, color surface.Paint, alpha float64, opts ...LineOption) *Graphics {
	var lo lineOptions
	for _, opt := range opts {
		opt(&lo)
	}

	thickness = orOne(thickness)
	if color == nil || color == surface.Color("") {
		color = surface.Black
	}
	alpha = orOne(alpha)

	g.style.LineWidth = thickness
	g.style.StrokeStyle = color
	g.style.LineAlpha = alpha
	g.record(
		SetLineWidthCommand{Width: thickness},
		SetStrokeStyleCommand{Style: color},
		SetLineAlphaCommand{Alpha: alpha},
	)

	if lo.cap != surface.LineCapUnset {
		g.style.LineCap = lo.cap
		g.record(SetLineCapCommand{Cap: lo.cap})
	}
	if lo.join != surface.LineJoinUnset {
		g.style.LineJoin = lo.join
		g.record(SetLineJoinCommand{Join: lo.join})
	}
	if lo.hasMiter {
		g.style.MiterLimit = lo.miterLimit
		g.record(SetMiterLimitCommand{Limit: lo.miterLimit})
	}
	return g
}

// BeginFill sets the fill paint and alpha. The paint is stored as given,
// nil included; a zero alpha means 1.
func (g *Graphics) BeginFill(fill surface.Paint, alpha float64) *Graphics {
	alpha = orOne(alpha)
	g.style.FillStyle = fill
	g.style.FillAlpha = alpha
	return g.record(SetFillStyleCommand{Style: fill}, SetFillAlphaCommand{Alpha: alpha})
}

// BeginLinearGradientFill fills with a linear gradient from (x0, y0) to
// (x1, y1). Stop i has offset ratios[i] and colour colors[i]; ratios must
// be at least as long as colors.
func (g *Graphics) BeginLinearGradientFill(x0, y0, x1, y1 float64, colors []surface.Color, ratios []float64) *Graphics {
	grad, err := g.paints.LinearGradient(x0, y0, x1, y1)
	if err != nil {
		g.setErr(err)
		return g.fillStyle(nil)
	}
	addStops(grad, colors, ratios)
	return g.fillStyle(grad)
}

// BeginRadialGradientFill fills with a radial gradient between the circles
// (x0, y0, r0) and (x1, y1, r1). Stops as for BeginLinearGradientFill.
func (g *Graphics) BeginRadialGradientFill(x0, y0, r0, x1, y1, r1 float64, colors []surface.Color, ratios []float64) *Graphics {
	grad, err := g.paints.RadialGradient(x0, y0, r0, x1, y1, r1)
	if err != nil {
		g.setErr(err)
		return g.fillStyle(nil)
	}
	addStops(grad, colors, ratios)
	return g.fillStyle(grad)
}

// BeginBitmapFill fills with img tiled from the origin. An empty
// repetition means surface.RepeatBoth.
func (g *Graphics) BeginBitmapFill(img image.Image, repetition surface.Repetition) *Graphics {
	if repetition == "" {
		repetition = surface.RepeatBoth
	}
	pat, err := g.paints.Pattern(img, repetition)
	if err != nil {
		g.setErr(err)
		return g.fillStyle(nil)
	}
	return g.fillStyle(pat)
}

// EndFill strokes and then fills the current path.
func (g *Graphics) EndFill() *Graphics {
	return g.record(StrokeCommand{}, FillCommand{})
}

func (g *Graphics) fillStyle(p surface.Paint) *Graphics {
	g.style.FillStyle = p
	return g.record(SetFillStyleCommand{Style: p})
}

func addStops(grad surface.Gradient, colors []surface.Color, ratios []float64) {
	for i, c := range colors {
		grad.AddColorStop(ratios[i], c)
	}
}

// orOne maps the falsy numbers 0 and NaN to 1.
func orOne(v float64) float64 {
	if v == 0 || math.IsNaN(v) {
		return 1
	}
	return v
}
