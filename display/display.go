// Package display is the minimal display-tree base that gg-graphics nodes
// build on: identity, position and size, a cached drawable, and the two
// kinds of render target.
//
// A target either exposes a raw surface.Context2D that nodes draw into
// directly, or it composes finished drawables itself (a DOM-like stage, a
// terminal). Nodes that cannot draw into a context hand the target a
// drawable through Object.Render.
package display

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strconv"
	"sync/atomic"

	"golang.org/x/image/draw"

	"github.com/gogpu/gg-graphics/surface"
)

// ErrNoDrawable is returned when an object is composed before it has a
// drawable.
var ErrNoDrawable = errors.New("display: object has no drawable")

// Target is a render target.
type Target interface {
	// Context2D returns the raw drawing context, or nil when the target
	// composes drawables instead.
	Context2D() surface.Context2D

	// Compose places d on the target at obj's position.
	Compose(obj *Object, d surface.Drawable) error
}

// DrawableSource produces the drawable an object is composed from.
type DrawableSource interface {
	Drawable(t Target) (surface.Drawable, error)
}

var uid atomic.Uint64

// UID returns a process-unique id made of prefix and a counter.
func UID(prefix string) string {
	return prefix + strconv.FormatUint(uid.Add(1), 10)
}

// Object is the state shared by display-tree nodes.
type Object struct {
	ID     string
	X, Y   float64
	Width  float64
	Height float64

	drawable surface.Drawable
}

// SetDrawable sets the drawable used on composition targets. A nil value
// clears it.
func (o *Object) SetDrawable(d surface.Drawable) { o.drawable = d }

// CurrentDrawable returns the drawable set with SetDrawable, if any.
func (o *Object) CurrentDrawable() surface.Drawable { return o.drawable }

// Drawable implements DrawableSource with the drawable set by SetDrawable.
func (o *Object) Drawable(Target) (surface.Drawable, error) {
	if o.drawable == nil {
		return nil, ErrNoDrawable
	}
	return o.drawable, nil
}

// Render is the default render path. It asks src for a drawable (o itself
// when src is nil) and either blits it into the target's context at the
// origin or hands it to the target for composition.
func (o *Object) Render(t Target, src DrawableSource) error {
	if src == nil {
		src = o
	}
	d, err := src.Drawable(t)
	if err != nil {
		return fmt.Errorf("display: render %s: %w", o.ID, err)
	}
	if ctx := t.Context2D(); ctx != nil {
		ctx.DrawImage(d.Image(), 0, 0)
		return nil
	}
	return t.Compose(o, d)
}

// CanvasTarget renders into a surface through its context.
type CanvasTarget struct {
	Surface surface.Surface
}

// Context2D returns the surface context.
func (c CanvasTarget) Context2D() surface.Context2D { return c.Surface.Context2D() }

// Compose draws d at the object's position.
func (c CanvasTarget) Compose(obj *Object, d surface.Drawable) error {
	c.Surface.Context2D().DrawImage(d.Image(), obj.X, obj.Y)
	return nil
}

// Stage is a composition target backed by an image. It has no drawing
// context, so nodes reach it only as drawables.
type Stage struct {
	dst *image.RGBA
	n   int
}

// NewStage returns a transparent width×height stage.
func NewStage(width, height int) *Stage {
	return &Stage{dst: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Context2D returns nil.
func (s *Stage) Context2D() surface.Context2D { return nil }

// Compose draws d source-over at the object's position, rounded to whole
// pixels.
func (s *Stage) Compose(obj *Object, d surface.Drawable) error {
	if d == nil || d.Image() == nil {
		return ErrNoDrawable
	}
	img := d.Image()
	b := img.Bounds()
	at := image.Pt(int(math.Round(obj.X)), int(math.Round(obj.Y)))
	draw.Draw(s.dst, image.Rectangle{Min: at, Max: at.Add(b.Size())}, img, b.Min, draw.Over)
	s.n++
	return nil
}

// Image returns the stage pixels.
func (s *Stage) Image() *image.RGBA { return s.dst }

// Composed returns how many drawables have been composed.
func (s *Stage) Composed() int { return s.n }

var (
	_ Target         = CanvasTarget{}
	_ Target         = (*Stage)(nil)
	_ DrawableSource = (*Object)(nil)
)
