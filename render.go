package graphics

import (
	"github.com/gogpu/gg-graphics/display"
	"github.com/gogpu/gg-graphics/surface"
)

// Render draws the node into t.
//
// When t has a raw context, the raster cache is blitted at the origin if
// present; otherwise the command log is replayed into the context. Targets
// without a context compose the node from its drawable, see Drawable.
func (g *Graphics) Render(t display.Target) error {
	ctx := t.Context2D()
	if ctx == nil {
		Logger().Debug("graphics: composing as drawable", "id", g.ID)
		return g.Object.Render(t, g)
	}
	if g.cache != nil {
		ctx.DrawImage(g.cache.Image(), 0, 0)
		return nil
	}
	g.Replay(ctx)
	return nil
}

// Drawable returns the image the node is composed from. On first use the
// node is converted with ToImage and the result kept as its drawable.
func (g *Graphics) Drawable(display.Target) (surface.Drawable, error) {
	if d := g.CurrentDrawable(); d != nil {
		return d, nil
	}
	img, err := g.ToImage("")
	if err != nil {
		return nil, err
	}
	g.SetDrawable(img)
	return img, nil
}

var _ display.DrawableSource = (*Graphics)(nil)
