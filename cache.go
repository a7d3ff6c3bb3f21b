package graphics

import (
	"fmt"
	"math"

	"github.com/gogpu/gg-graphics/surface"
)

// Cache rasterizes the command log into a new surface of the node's size
// and stores it as the raster cache. With toImage the raster is converted
// to a decoded image, which is stored instead. It returns the stored cache.
// On error the previous cache is kept.
//
// Fractional sizes are rounded up, so a 20.5 wide node gets a 21 pixel
// raster and no drawn pixel is cut off.
func (g *Graphics) Cache(toImage bool) (surface.Drawable, error) {
	w, h := g.pixelSize()
	s, err := g.surfaces(surface.Options{Width: w, Height: h})
	if err != nil {
		return nil, fmt.Errorf("graphics: cache %s: %w", g.ID, err)
	}
	g.Replay(s.Context2D())

	var cache surface.Drawable = s
	if toImage {
		img, err := g.encode(s, "")
		if err != nil {
			return nil, err
		}
		cache = img
	}
	g.cache = cache
	Logger().Debug("graphics: cache", "id", g.ID, "commands", len(g.commands), "width", w, "height", h)
	return cache, nil
}

// ToImage returns the node as a decoded image.
//
// An image cache is returned as is. Without a cache, one is built with
// Cache(true) and returned. A raster cache is encoded as mimeType
// (image/png when empty) into a new image sized like the node; the raster
// stays the cache.
func (g *Graphics) ToImage(mimeType string) (*surface.Image, error) {
	if img, ok := g.cache.(*surface.Image); ok {
		return img, nil
	}
	if g.cache == nil {
		d, err := g.Cache(true)
		if err != nil {
			return nil, err
		}
		return d.(*surface.Image), nil
	}
	return g.encode(g.cache, mimeType)
}

// encode round-trips d through a data URL and tags the image with the
// node size.
func (g *Graphics) encode(d surface.Drawable, mimeType string) (*surface.Image, error) {
	var (
		url string
		err error
	)
	if s, ok := d.(surface.Surface); ok {
		url, err = s.DataURL(mimeType)
	} else {
		url, err = surface.EncodeDataURL(d.Image(), mimeType)
	}
	if err != nil {
		return nil, fmt.Errorf("graphics: to image %s: %w", g.ID, err)
	}
	img, err := surface.ImageFromDataURL(url)
	if err != nil {
		return nil, fmt.Errorf("graphics: to image %s: %w", g.ID, err)
	}
	img.SetSize(g.pixelSize())
	return img, nil
}

// Uncache drops the raster cache. The command log is kept, so the next
// Render replays it.
func (g *Graphics) Uncache() {
	g.cache = nil
	Logger().Debug("graphics: uncache", "id", g.ID)
}

// Clear empties the command log, drops the cache and the composed
// drawable, resets the style to DefaultStyle and forgets any error. The
// id and size are kept.
func (g *Graphics) Clear() *Graphics {
	g.commands = nil
	g.cache = nil
	g.style = DefaultStyle()
	g.err = nil
	g.SetDrawable(nil)
	return g
}

// pixelSize rounds the node size up to whole pixels.
func (g *Graphics) pixelSize() (int, int) {
	return ceilPixels(g.Width), ceilPixels(g.Height)
}

func ceilPixels(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Ceil(v))
}
