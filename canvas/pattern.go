package canvas

import (
	"image"
	"image/color"

	"github.com/gogpu/gg-graphics/surface"
)

// pattern tiles an image from the canvas origin.
type pattern struct {
	img        image.Image
	repetition surface.Repetition
	repeatX    bool
	repeatY    bool
}

func newPattern(img image.Image, repetition surface.Repetition) *pattern {
	p := &pattern{img: img, repetition: repetition}
	switch repetition {
	case surface.RepeatX:
		p.repeatX = true
	case surface.RepeatY:
		p.repeatY = true
	case surface.NoRepeat:
	default:
		p.repetition = surface.RepeatBoth
		p.repeatX, p.repeatY = true, true
	}
	return p
}

func (p *pattern) PaintKind() surface.PaintKind { return surface.PaintPattern }

// Repetition reports how the pattern tiles. Unknown values tile both ways.
func (p *pattern) Repetition() surface.Repetition { return p.repetition }

func (p *pattern) ColorModel() color.Model { return color.NRGBAModel }

func (p *pattern) Bounds() image.Rectangle { return shaderBounds }

func (p *pattern) At(x, y int) color.Color {
	if p.img == nil {
		return color.Transparent
	}
	b := p.img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return color.Transparent
	}

	if p.repeatX {
		x = mod(x, w)
	} else if x < 0 || x >= w {
		return color.Transparent
	}
	if p.repeatY {
		y = mod(y, h)
	} else if y < 0 || y >= h {
		return color.Transparent
	}
	return p.img.At(b.Min.X+x, b.Min.Y+y)
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}

var (
	_ surface.Pattern = (*pattern)(nil)
	_ image.Image     = (*pattern)(nil)
)
