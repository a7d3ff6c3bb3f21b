// Package canvas is the software implementation of surface.Surface and
// surface.Context2D.
//
// Paths are flattened and rasterized with golang.org/x/image/vector into a
// coverage mask, and composited source-over onto an *image.RGBA with
// golang.org/x/image/draw. Strokes are expanded into outlines first, so
// fills and strokes share one rasterizer.
//
// Importing the package registers the "software" backend:
//
//	import _ "github.com/gogpu/gg-graphics/canvas"
//
//	s, err := surface.NewSurface(320, 240)
//
// The context follows the HTML canvas rules for invalid input: values it
// cannot use are ignored and the previous state is kept. Ignored input is
// reported through graphics.Logger at debug level, or at warn level when it
// is almost certainly a caller bug.
package canvas
