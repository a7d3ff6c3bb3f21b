package graphics

import "github.com/gogpu/gg-graphics/surface"

// Option configures a Graphics during creation.
//
// Example:
//
//	// Default: registry surfaces, DefaultPaints
//	g := graphics.New(graphics.WithSize(200, 100))
//
//	// Own surfaces and paint service for a group of nodes
//	paints := graphics.NewPaints(factory)
//	a := graphics.New(graphics.WithSurfaceFactory(factory), graphics.WithPaints(paints))
//	b := graphics.New(graphics.WithSurfaceFactory(factory), graphics.WithPaints(paints))
type Option func(*options)

type options struct {
	id            string
	width, height float64
	surfaces      surface.Factory
	paints        *Paints
}

// WithSize sets the node width and height, which size the raster cache.
func WithSize(width, height float64) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithSurfaceFactory sets the factory used to allocate cache surfaces.
// A nil factory keeps the registry default. Without WithPaints the node
// then gets its own paint service on f.
func WithSurfaceFactory(f surface.Factory) Option {
	return func(o *options) {
		if f != nil {
			o.surfaces = f
		}
	}
}

// WithPaints sets the gradient and pattern service. Without it a node
// uses DefaultPaints, or a service of its own when WithSurfaceFactory is
// given.
func WithPaints(p *Paints) Option {
	return func(o *options) {
		o.paints = p
	}
}

// WithID overrides the generated node id.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}
