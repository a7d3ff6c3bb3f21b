package canvas

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	graphics "github.com/gogpu/gg-graphics"
	"github.com/gogpu/gg-graphics/internal/colorparse"
	"github.com/gogpu/gg-graphics/internal/geom"
	"github.com/gogpu/gg-graphics/internal/stroke"
	"github.com/gogpu/gg-graphics/surface"
)

// defaultMiterLimit is the canvas default miter limit.
const defaultMiterLimit = 10

// state is the style part of the context.
type state struct {
	lineWidth  float64
	strokeSrc  image.Image
	lineAlpha  float64
	lineCap    surface.LineCap
	lineJoin   surface.LineJoin
	miterLimit float64
	fillSrc    image.Image
	fillAlpha  float64
}

func defaultState() state {
	black := image.NewUniform(color.NRGBA{A: 0xff})
	return state{
		lineWidth:  1,
		strokeSrc:  black,
		lineAlpha:  1,
		lineCap:    surface.LineCapButt,
		lineJoin:   surface.LineJoinMiter,
		miterLimit: defaultMiterLimit,
		fillSrc:    black,
		fillAlpha:  1,
	}
}

// Context draws into an *image.RGBA. It implements surface.Context2D.
//
// Context is NOT thread-safe.
type Context struct {
	dst   *image.RGBA
	path  geom.Path
	state state
	z     *vector.Rasterizer
}

// NewContext returns a context drawing into dst with the canvas default
// state: 1px black butt/miter strokes, black fill, opaque alphas.
func NewContext(dst *image.RGBA) *Context {
	return &Context{dst: dst, state: defaultState()}
}

// SetLineWidth sets the stroke width. Non-positive and non-finite widths
// are ignored.
func (c *Context) SetLineWidth(width float64) {
	if !finite(width) || width <= 0 {
		graphics.Logger().Debug("canvas: ignored line width", "width", width)
		return
	}
	c.state.lineWidth = width
}

// SetStrokeStyle sets the stroke paint.
func (c *Context) SetStrokeStyle(p surface.Paint) {
	if src, ok := resolvePaint(p); ok {
		c.state.strokeSrc = src
	}
}

// SetLineAlpha sets the opacity applied to strokes.
func (c *Context) SetLineAlpha(alpha float64) {
	if a, ok := validAlpha(alpha); ok {
		c.state.lineAlpha = a
	}
}

// SetLineCap sets the line cap. LineCapUnset is ignored.
func (c *Context) SetLineCap(lc surface.LineCap) {
	if lc == surface.LineCapUnset || lc > surface.LineCapSquare {
		graphics.Logger().Debug("canvas: ignored line cap", "cap", lc)
		return
	}
	c.state.lineCap = lc
}

// SetLineJoin sets the line join. LineJoinUnset is ignored.
func (c *Context) SetLineJoin(lj surface.LineJoin) {
	if lj == surface.LineJoinUnset || lj > surface.LineJoinBevel {
		graphics.Logger().Debug("canvas: ignored line join", "join", lj)
		return
	}
	c.state.lineJoin = lj
}

// SetMiterLimit sets the miter limit. Non-positive and non-finite limits
// are ignored.
func (c *Context) SetMiterLimit(limit float64) {
	if !finite(limit) || limit <= 0 {
		graphics.Logger().Debug("canvas: ignored miter limit", "limit", limit)
		return
	}
	c.state.miterLimit = limit
}

// SetFillStyle sets the fill paint.
func (c *Context) SetFillStyle(p surface.Paint) {
	if src, ok := resolvePaint(p); ok {
		c.state.fillSrc = src
	}
}

// SetFillAlpha sets the opacity applied to fills.
func (c *Context) SetFillAlpha(alpha float64) {
	if a, ok := validAlpha(alpha); ok {
		c.state.fillAlpha = a
	}
}

// BeginPath discards the current path.
func (c *Context) BeginPath() { c.path.Reset() }

// ClosePath closes the current subpath.
func (c *Context) ClosePath() { c.path.Close() }

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	c.path.MoveTo(geom.Pt(x, y))
}

// LineTo adds a straight segment to (x, y).
func (c *Context) LineTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	c.path.LineTo(geom.Pt(x, y))
}

// Rect adds a closed rectangle subpath.
func (c *Context) Rect(x, y, w, h float64) {
	if !finite(x, y, w, h) {
		return
	}
	c.path.Rect(x, y, w, h)
}

// Arc adds a circular arc. A negative radius is ignored.
func (c *Context) Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool) {
	if !finite(x, y, radius, startAngle, endAngle) {
		return
	}
	if radius < 0 {
		graphics.Logger().Warn("canvas: ignored arc with negative radius", "radius", radius)
		return
	}
	c.path.Arc(x, y, radius, startAngle, endAngle, anticlockwise)
}

// BezierCurveTo adds a cubic Bézier segment.
func (c *Context) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	if !finite(c1x, c1y, c2x, c2y, x, y) {
		return
	}
	c.path.CubicTo(geom.Pt(c1x, c1y), geom.Pt(c2x, c2y), geom.Pt(x, y))
}

// Stroke outlines the current path. The path is kept.
func (c *Context) Stroke() {
	if c.path.Empty() {
		return
	}
	exp := stroke.NewExpander(stroke.Style{
		Width:      c.state.lineWidth,
		Cap:        c.state.lineCap,
		Join:       c.state.lineJoin,
		MiterLimit: c.state.miterLimit,
	})
	outline := exp.Expand(c.path.Elements())
	c.paint(outline, c.state.strokeSrc, c.state.lineAlpha)
}

// Fill fills the current path with the non-zero rule. Open subpaths are
// closed implicitly. The path is kept.
func (c *Context) Fill() {
	if c.path.Empty() {
		return
	}
	c.paint(c.path.Elements(), c.state.fillSrc, c.state.fillAlpha)
}

// DrawImage draws img unscaled with its top-left corner at (x, y) rounded
// to the nearest pixel.
func (c *Context) DrawImage(img image.Image, x, y float64) {
	if img == nil || !finite(x, y) {
		return
	}
	b := img.Bounds()
	at := image.Pt(int(math.Round(x)), int(math.Round(y)))
	r := image.Rectangle{Min: at, Max: at.Add(b.Size())}
	draw.Draw(c.dst, r, img, b.Min, draw.Over)
}

// paint composites src through the coverage of elems scaled by alpha.
func (c *Context) paint(elems []geom.Element, src image.Image, alpha float64) {
	if alpha == 0 || len(elems) == 0 {
		return
	}
	mask := c.coverage(elems)
	if alpha < 1 {
		for i, v := range mask.Pix {
			mask.Pix[i] = uint8(float64(v)*alpha + 0.5)
		}
	}
	draw.DrawMask(c.dst, c.dst.Rect, src, image.Point{}, mask, c.dst.Rect.Min, draw.Over)
}

// coverage rasterizes elems into an alpha mask the size of the target.
// Every subpath is closed before the next one starts.
func (c *Context) coverage(elems []geom.Element) *image.Alpha {
	size := c.dst.Rect.Size()
	if c.z == nil {
		c.z = vector.NewRasterizer(size.X, size.Y)
	} else {
		c.z.Reset(size.X, size.Y)
	}
	c.z.DrawOp = draw.Src

	// Path coordinates are in canvas space; the rasterizer starts at 0,0.
	ox, oy := float64(c.dst.Rect.Min.X), float64(c.dst.Rect.Min.Y)
	pt := func(p geom.Point) (float32, float32) {
		return float32(p.X - ox), float32(p.Y - oy)
	}

	open := false
	for _, el := range elems {
		switch el := el.(type) {
		case geom.MoveTo:
			if open {
				c.z.ClosePath()
			}
			c.z.MoveTo(pt(el.P))
			open = true
		case geom.LineTo:
			c.z.LineTo(pt(el.P))
		case geom.CubicTo:
			x1, y1 := pt(el.C1)
			x2, y2 := pt(el.C2)
			x3, y3 := pt(el.P)
			c.z.CubeTo(x1, y1, x2, y2, x3, y3)
		case geom.Close:
			c.z.ClosePath()
			open = false
		}
	}
	if open {
		c.z.ClosePath()
	}

	mask := image.NewAlpha(c.dst.Rect)
	c.z.Draw(mask, mask.Rect, image.Opaque, image.Point{})
	return mask
}

// CreateLinearGradient returns a gradient along the line (x0,y0)-(x1,y1).
func (c *Context) CreateLinearGradient(x0, y0, x1, y1 float64) surface.Gradient {
	return newLinearGradient(x0, y0, x1, y1)
}

// CreateRadialGradient returns a gradient between two circles.
func (c *Context) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) surface.Gradient {
	return newRadialGradient(x0, y0, r0, x1, y1, r1)
}

// CreatePattern returns a pattern that tiles img from the canvas origin.
func (c *Context) CreatePattern(img image.Image, repetition surface.Repetition) surface.Pattern {
	return newPattern(img, repetition)
}

// resolvePaint turns a Paint into a compositing source.
func resolvePaint(p surface.Paint) (image.Image, bool) {
	switch p := p.(type) {
	case surface.Color:
		col, ok := colorparse.Parse(string(p))
		if !ok {
			graphics.Logger().Debug("canvas: ignored colour", "color", string(p))
			return nil, false
		}
		return image.NewUniform(col), true
	case *linearGradient:
		return p, true
	case *radialGradient:
		return p, true
	case *pattern:
		return p, true
	}
	graphics.Logger().Debug("canvas: ignored paint", "paint", p)
	return nil, false
}

func validAlpha(alpha float64) (float64, bool) {
	if math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		graphics.Logger().Debug("canvas: ignored alpha", "alpha", alpha)
		return 0, false
	}
	return alpha, true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

var _ surface.Context2D = (*Context)(nil)
