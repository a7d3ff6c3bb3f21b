package canvas

import (
	"image"
	"image/color"
	"math"
	"sort"

	graphics "github.com/gogpu/gg-graphics"
	"github.com/gogpu/gg-graphics/internal/colorparse"
	"github.com/gogpu/gg-graphics/surface"
)

// shaderBounds is the domain of procedural sources, as for image.Uniform.
var shaderBounds = image.Rectangle{Min: image.Point{X: -1e9, Y: -1e9}, Max: image.Point{X: 1e9, Y: 1e9}}

// colorStop is a parsed gradient stop.
type colorStop struct {
	offset float64
	color  color.NRGBA
}

// stops holds gradient stops ordered by offset. Stops sharing an offset keep
// insertion order.
type stops []colorStop

func (s *stops) add(offset float64, c surface.Color) {
	if math.IsNaN(offset) || offset < 0 || offset > 1 {
		graphics.Logger().Debug("canvas: ignored color stop offset", "offset", offset)
		return
	}
	col, ok := colorparse.Parse(string(c))
	if !ok {
		graphics.Logger().Debug("canvas: ignored color stop", "color", string(c))
		return
	}
	*s = append(*s, colorStop{offset: offset, color: col})
	sort.SliceStable(*s, func(i, j int) bool { return (*s)[i].offset < (*s)[j].offset })
}

// at returns the colour at t. Outside the stop range the end colours extend.
func (s stops) at(t float64) color.NRGBA {
	if len(s) == 0 {
		return color.NRGBA{}
	}
	idx := sort.Search(len(s), func(i int) bool { return s[i].offset > t })
	if idx == 0 {
		return s[0].color
	}
	if idx == len(s) {
		return s[len(s)-1].color
	}

	lo, hi := s[idx-1], s[idx]
	if hi.offset == lo.offset {
		return lo.color
	}
	return lerpColor(lo.color, hi.color, (t-lo.offset)/(hi.offset-lo.offset))
}

// lerpColor interpolates premultiplied sRGB components.
func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	aa, ba := float64(a.A), float64(b.A)
	alpha := aa + (ba-aa)*t
	if alpha <= 0 {
		return color.NRGBA{}
	}
	ch := func(x, y uint8) uint8 {
		px := float64(x) * aa
		py := float64(y) * ba
		v := (px + (py-px)*t) / alpha
		return uint8(math.Min(255, math.Max(0, math.Round(v))))
	}
	return color.NRGBA{
		R: ch(a.R, b.R),
		G: ch(a.G, b.G),
		B: ch(a.B, b.B),
		A: uint8(math.Round(alpha)),
	}
}

// linearGradient paints colours along the projection onto a line.
type linearGradient struct {
	x0, y0, x1, y1 float64
	stops          stops
}

func newLinearGradient(x0, y0, x1, y1 float64) *linearGradient {
	return &linearGradient{x0: x0, y0: y0, x1: x1, y1: y1}
}

func (g *linearGradient) PaintKind() surface.PaintKind { return surface.PaintGradient }

func (g *linearGradient) AddColorStop(offset float64, c surface.Color) { g.stops.add(offset, c) }

func (g *linearGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g *linearGradient) Bounds() image.Rectangle { return shaderBounds }

// At samples the gradient at the centre of pixel (x, y).
func (g *linearGradient) At(x, y int) color.Color {
	dx, dy := g.x1-g.x0, g.y1-g.y0
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		// A zero-length gradient paints nothing.
		return color.NRGBA{}
	}
	px := float64(x) + 0.5 - g.x0
	py := float64(y) + 0.5 - g.y0
	return g.stops.at((px*dx + py*dy) / lengthSq)
}

// radialGradient paints the cone between two circles.
type radialGradient struct {
	x0, y0, r0 float64
	x1, y1, r1 float64
	stops      stops
}

func newRadialGradient(x0, y0, r0, x1, y1, r1 float64) *radialGradient {
	if r0 < 0 || r1 < 0 {
		graphics.Logger().Warn("canvas: radial gradient with negative radius", "r0", r0, "r1", r1)
	}
	return &radialGradient{x0: x0, y0: y0, r0: r0, x1: x1, y1: y1, r1: r1}
}

func (g *radialGradient) PaintKind() surface.PaintKind { return surface.PaintGradient }

func (g *radialGradient) AddColorStop(offset float64, c surface.Color) { g.stops.add(offset, c) }

func (g *radialGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g *radialGradient) Bounds() image.Rectangle { return shaderBounds }

// At samples the gradient at the centre of pixel (x, y).
func (g *radialGradient) At(x, y int) color.Color {
	t, ok := g.param(float64(x)+0.5, float64(y)+0.5)
	if !ok {
		return color.NRGBA{}
	}
	return g.stops.at(t)
}

// param solves |p - c(t)| = r(t) for the largest t with r(t) >= 0, where
// c(t) and r(t) interpolate the start and end circles.
func (g *radialGradient) param(x, y float64) (float64, bool) {
	if g.r0 < 0 || g.r1 < 0 {
		return 0, false
	}
	cdx, cdy := g.x1-g.x0, g.y1-g.y0
	dr := g.r1 - g.r0
	if cdx == 0 && cdy == 0 && dr == 0 {
		return 0, false
	}

	pdx, pdy := x-g.x0, y-g.y0
	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + g.r0*dr
	c := pdx*pdx + pdy*pdy - g.r0*g.r0
	valid := func(t float64) bool { return g.r0+t*dr >= 0 }

	if a == 0 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		return t, valid(t)
	}

	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1, t2 := (b+sq)/a, (b-sq)/a
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	switch {
	case valid(t1):
		return t1, true
	case valid(t2):
		return t2, true
	}
	return 0, false
}

var (
	_ surface.Gradient = (*linearGradient)(nil)
	_ surface.Gradient = (*radialGradient)(nil)
	_ image.Image      = (*linearGradient)(nil)
	_ image.Image      = (*radialGradient)(nil)
)
