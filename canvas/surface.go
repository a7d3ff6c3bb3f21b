package canvas

import (
	"fmt"
	"image"

	"github.com/gogpu/gg-graphics/surface"
)

// BackendName is the registry name of the software backend.
const BackendName = "software"

// Priority of the software backend in the surface registry.
const Priority = 10

func init() {
	surface.Register(BackendName, Priority, func(opts surface.Options) (surface.Surface, error) {
		return New(opts.Width, opts.Height)
	}, nil)
}

// Surface is an *image.RGBA with a drawing context.
type Surface struct {
	pix *image.RGBA
	ctx *Context
}

// New returns a transparent width×height surface.
func New(width, height int) (*Surface, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("canvas: invalid surface size %dx%d", width, height)
	}
	pix := image.NewRGBA(image.Rect(0, 0, width, height))
	return &Surface{pix: pix, ctx: NewContext(pix)}, nil
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.pix.Rect.Dx() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.pix.Rect.Dy() }

// Image returns the live backing store.
func (s *Surface) Image() image.Image { return s.pix }

// RGBA returns the live backing store.
func (s *Surface) RGBA() *image.RGBA { return s.pix }

// Context2D returns the surface's drawing context.
func (s *Surface) Context2D() surface.Context2D { return s.ctx }

// Snapshot returns a copy of the current pixels.
func (s *Surface) Snapshot() *image.RGBA {
	out := image.NewRGBA(s.pix.Rect)
	copy(out.Pix, s.pix.Pix)
	return out
}

// DataURL encodes the surface as a data URL.
func (s *Surface) DataURL(mimeType string) (string, error) {
	return surface.EncodeDataURL(s.pix, mimeType)
}

var _ surface.Surface = (*Surface)(nil)
