package graphics

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gg-graphics/surface"
)

// Paints creates gradient and pattern handles for fills. Handles come from
// a 1×1 context that is created on first use and kept for the lifetime of
// the service. A failed creation is retried on the next use.
//
// A Paints is safe for concurrent use and may be shared by many Graphics
// values through WithPaints.
type Paints struct {
	factory surface.Factory

	mu  sync.Mutex
	ctx surface.Context2D
}

var defaultPaints = NewPaints(nil)

// DefaultPaints returns the process-wide service over the surface
// registry. Graphics values built without WithPaints or
// WithSurfaceFactory share it, and with it a single paint context.
func DefaultPaints() *Paints { return defaultPaints }

// NewPaints returns a service that allocates its context with factory, or
// with the surface registry when factory is nil.
func NewPaints(factory surface.Factory) *Paints {
	if factory == nil {
		factory = surface.NewSurfaceWithOptions
	}
	return &Paints{factory: factory}
}

// context returns the paint context, creating it if needed. p.mu must be
// held.
func (p *Paints) context() (surface.Context2D, error) {
	if p.ctx != nil {
		return p.ctx, nil
	}
	s, err := p.factory(surface.Options{Width: 1, Height: 1})
	if err != nil {
		return nil, fmt.Errorf("graphics: paint context: %w", err)
	}
	p.ctx = s.Context2D()
	return p.ctx, nil
}

// LinearGradient returns a new linear gradient from (x0, y0) to (x1, y1).
func (p *Paints) LinearGradient(x0, y0, x1, y1 float64) (surface.Gradient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ctx, err := p.context()
	if err != nil {
		return nil, err
	}
	return ctx.CreateLinearGradient(x0, y0, x1, y1), nil
}

// RadialGradient returns a new radial gradient between two circles.
func (p *Paints) RadialGradient(x0, y0, r0, x1, y1, r1 float64) (surface.Gradient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ctx, err := p.context()
	if err != nil {
		return nil, err
	}
	return ctx.CreateRadialGradient(x0, y0, r0, x1, y1, r1), nil
}

// Pattern returns a new image pattern.
func (p *Paints) Pattern(img image.Image, repetition surface.Repetition) (surface.Pattern, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	ctx, err := p.context()
	if err != nil {
		return nil, err
	}
	return ctx.CreatePattern(img, repetition), nil
}
