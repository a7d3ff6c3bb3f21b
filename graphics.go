package graphics

import (
	"github.com/gogpu/gg-graphics/display"
	"github.com/gogpu/gg-graphics/surface"
)

// Graphics is a display node that records drawing commands and replays
// them at render time, optionally from a raster cache.
//
// Styling and path calls update the current StyleState and append
// commands to the log; they never draw. Render replays the whole log, or
// blits the cache when one exists. A cache is a frozen snapshot: commands
// recorded after Cache do not show until Uncache or Clear.
//
// Graphics is NOT thread-safe.
type Graphics struct {
	display.Object

	style    StyleState
	commands []Command
	cache    surface.Drawable
	surfaces surface.Factory
	paints   *Paints
	err      error
}

// New creates an empty Graphics with default style.
func New(opts ...Option) *Graphics {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	g := &Graphics{
		style:    DefaultStyle(),
		surfaces: o.surfaces,
		paints:   o.paints,
	}
	if g.surfaces == nil {
		g.surfaces = surface.NewSurfaceWithOptions
	}
	g.ID = o.id
	if g.ID == "" {
		g.ID = display.UID("Graphics")
	}
	g.Width, g.Height = o.width, o.height
	if g.paints == nil {
		g.paints = DefaultPaints()
		if o.surfaces != nil {
			g.paints = NewPaints(o.surfaces)
		}
	}
	return g
}

// Style returns the current style state.
func (g *Graphics) Style() StyleState { return g.style }

// Commands returns a copy of the command log.
func (g *Graphics) Commands() []Command {
	out := make([]Command, len(g.commands))
	copy(out, g.commands)
	return out
}

// Len returns the number of recorded commands.
func (g *Graphics) Len() int { return len(g.commands) }

// Err returns the first error met by a chained call, such as a failure to
// create a gradient. It is reset by Clear.
func (g *Graphics) Err() error { return g.err }

// Cached returns the raster cache, or nil.
func (g *Graphics) Cached() surface.Drawable { return g.cache }

func (g *Graphics) record(cmds ...Command) *Graphics {
	g.commands = append(g.commands, cmds...)
	return g
}

func (g *Graphics) setErr(err error) {
	if g.err == nil {
		g.err = err
	}
}
