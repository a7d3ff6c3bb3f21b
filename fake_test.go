package graphics

import (
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/gg-graphics/display"
	"github.com/gogpu/gg-graphics/surface"
)

// fakeContext records every call as a string.
type fakeContext struct {
	calls []string
}

func (c *fakeContext) add(format string, args ...any) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

func (c *fakeContext) SetLineWidth(w float64)          { c.add("lineWidth=%v", w) }
func (c *fakeContext) SetStrokeStyle(p surface.Paint)  { c.add("strokeStyle=%v", p) }
func (c *fakeContext) SetLineAlpha(a float64)          { c.add("lineAlpha=%v", a) }
func (c *fakeContext) SetLineCap(lc surface.LineCap)   { c.add("lineCap=%v", lc) }
func (c *fakeContext) SetLineJoin(lj surface.LineJoin) { c.add("lineJoin=%v", lj) }
func (c *fakeContext) SetMiterLimit(l float64)         { c.add("miterLimit=%v", l) }
func (c *fakeContext) SetFillStyle(p surface.Paint)    { c.add("fillStyle=%v", p) }
func (c *fakeContext) SetFillAlpha(a float64)          { c.add("fillAlpha=%v", a) }
func (c *fakeContext) BeginPath()                      { c.add("beginPath()") }
func (c *fakeContext) ClosePath()                      { c.add("closePath()") }
func (c *fakeContext) MoveTo(x, y float64)             { c.add("moveTo(%v,%v)", x, y) }
func (c *fakeContext) LineTo(x, y float64)             { c.add("lineTo(%v,%v)", x, y) }
func (c *fakeContext) Rect(x, y, w, h float64)         { c.add("rect(%v,%v,%v,%v)", x, y, w, h) }
func (c *fakeContext) Stroke()                         { c.add("stroke()") }
func (c *fakeContext) Fill()                           { c.add("fill()") }
func (c *fakeContext) DrawImage(img image.Image, x, y float64) {
	c.add("drawImage(%v,%v,%v)", img.Bounds().Size(), x, y)
}

func (c *fakeContext) Arc(x, y, r, start, end float64, anticlockwise bool) {
	c.add("arc(%v,%v,%v,%.4f,%.4f,%v)", x, y, r, start, end, anticlockwise)
}

func (c *fakeContext) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.add("bezierCurveTo(%v,%v,%v,%v,%v,%v)", c1x, c1y, c2x, c2y, x, y)
}

func (c *fakeContext) CreateLinearGradient(x0, y0, x1, y1 float64) surface.Gradient {
	return &fakeGradient{desc: fmt.Sprintf("linear(%v,%v,%v,%v)", x0, y0, x1, y1)}
}

func (c *fakeContext) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) surface.Gradient {
	return &fakeGradient{desc: fmt.Sprintf("radial(%v,%v,%v,%v,%v,%v)", x0, y0, r0, x1, y1, r1)}
}

func (c *fakeContext) CreatePattern(img image.Image, repetition surface.Repetition) surface.Pattern {
	return &fakePattern{img: img, repetition: repetition}
}

type fakeGradient struct {
	desc  string
	stops []string
}

func (g *fakeGradient) PaintKind() surface.PaintKind { return surface.PaintGradient }

func (g *fakeGradient) AddColorStop(offset float64, c surface.Color) {
	g.stops = append(g.stops, fmt.Sprintf("%v:%s", offset, c))
}

func (g *fakeGradient) String() string {
	return g.desc + "[" + strings.Join(g.stops, " ") + "]"
}

type fakePattern struct {
	img        image.Image
	repetition surface.Repetition
}

func (p *fakePattern) PaintKind() surface.PaintKind   { return surface.PaintPattern }
func (p *fakePattern) Repetition() surface.Repetition { return p.repetition }

// fakeSurface is a blank raster with a recording context.
type fakeSurface struct {
	pix    *image.RGBA
	ctx    *fakeContext
	urlErr error
}

func (s *fakeSurface) Width() int                   { return s.pix.Rect.Dx() }
func (s *fakeSurface) Height() int                  { return s.pix.Rect.Dy() }
func (s *fakeSurface) Image() image.Image           { return s.pix }
func (s *fakeSurface) Context2D() surface.Context2D { return s.ctx }
func (s *fakeSurface) Snapshot() *image.RGBA        { return s.pix }

func (s *fakeSurface) DataURL(mimeType string) (string, error) {
	if s.urlErr != nil {
		return "", s.urlErr
	}
	return surface.EncodeDataURL(s.pix, mimeType)
}

// fakeSurfaces is a surface.Factory that remembers what it made.
type fakeSurfaces struct {
	made   []*fakeSurface
	err    error
	urlErr error
}

func (f *fakeSurfaces) New(opts surface.Options) (surface.Surface, error) {
	if f.err != nil {
		return nil, f.err
	}
	s := &fakeSurface{
		pix:    image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height)),
		ctx:    &fakeContext{},
		urlErr: f.urlErr,
	}
	f.made = append(f.made, s)
	return s, nil
}

func fakeFactory(err error) surface.Factory {
	f := &fakeSurfaces{err: err}
	return f.New
}

// rawTarget is a display.Target with a raw context.
type rawTarget struct {
	ctx *fakeContext
}

func newRawTarget() *rawTarget { return &rawTarget{ctx: &fakeContext{}} }

func (t *rawTarget) Context2D() surface.Context2D { return t.ctx }

func (t *rawTarget) Compose(*display.Object, surface.Drawable) error {
	return fmt.Errorf("rawTarget: unexpected Compose")
}
