// Package termview composes graphics nodes onto a tcell screen.
//
// A terminal has no drawing context, so nodes reach it as images (see
// graphics.Graphics.Drawable). Each cell shows two pixels stacked
// vertically with the upper half block '▀': the foreground is the upper
// pixel and the background the lower one. Translucent pixels are blended
// over what the cell already shows.
package termview

import (
	"image"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	graphics "github.com/gogpu/gg-graphics"
	"github.com/gogpu/gg-graphics/display"
	"github.com/gogpu/gg-graphics/surface"
)

// HalfBlock is the rune drawn in every composed cell.
const HalfBlock = '▀'

// Target is a display.Target backed by a tcell screen. Object positions
// are in pixels; a cell is one pixel wide and two pixels tall.
type Target struct {
	screen     tcell.Screen
	background colorful.Color
}

// Option configures a Target.
type Option func(*Target)

// WithBackground sets the colour translucent pixels are blended over where
// a cell has no colour yet. The default is black.
func WithBackground(c color.Color) Option {
	return func(t *Target) {
		if cf, ok := colorful.MakeColor(c); ok {
			t.background = cf
		}
	}
}

// New returns a target drawing to screen. The screen must be initialized.
func New(screen tcell.Screen, opts ...Option) *Target {
	t := &Target{screen: screen}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Context2D returns nil: terminals compose drawables.
func (t *Target) Context2D() surface.Context2D { return nil }

// Compose draws d with its top-left pixel at the object's position. Cells
// outside the screen are skipped. The caller shows the screen.
func (t *Target) Compose(obj *display.Object, d surface.Drawable) error {
	if d == nil || d.Image() == nil {
		return display.ErrNoDrawable
	}
	img := d.Image()
	b := img.Bounds()
	ox, oy := int(math.Round(obj.X)), int(math.Round(obj.Y))

	w, h := t.screen.Size()
	x0, x1 := max(ox, 0), min(ox+b.Dx(), w)
	cy0, cy1 := max(floorDiv(oy, 2), 0), min(floorDiv(oy+b.Dy()+1, 2), h)

	for cy := cy0; cy < cy1; cy++ {
		for x := x0; x < x1; x++ {
			_, _, style, _ := t.screen.GetContent(x, cy)
			fg, bg, _ := style.Decompose()
			top := t.pixel(img, b, x-ox, 2*cy-oy, fg)
			bottom := t.pixel(img, b, x-ox, 2*cy+1-oy, bg)
			t.screen.SetContent(x, cy, HalfBlock, nil, tcell.StyleDefault.Foreground(top).Background(bottom))
		}
	}
	graphics.Logger().Debug("termview: composed", "id", obj.ID, "cells", (x1-x0)*(cy1-cy0))
	return nil
}

// pixel returns the colour of image pixel (ix, iy) over under. Pixels
// outside the image leave under unchanged.
func (t *Target) pixel(img image.Image, b image.Rectangle, ix, iy int, under tcell.Color) tcell.Color {
	if ix < 0 || iy < 0 || ix >= b.Dx() || iy >= b.Dy() {
		return under
	}
	c := img.At(b.Min.X+ix, b.Min.Y+iy)
	src, ok := colorful.MakeColor(c)
	if !ok {
		return under
	}

	_, _, _, a := c.RGBA()
	if a < 0xffff {
		src = t.base(under).BlendRgb(src, float64(a)/0xffff)
	}
	r, g, bl := src.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(bl))
}

// base returns the colour a translucent pixel is blended over.
func (t *Target) base(under tcell.Color) colorful.Color {
	if !under.Valid() {
		return t.background
	}
	r, g, b := under.RGB()
	if r < 0 {
		return t.background
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

var _ display.Target = (*Target)(nil)
