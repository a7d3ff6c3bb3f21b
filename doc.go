// Package graphics provides a deferred vector drawing node.
//
// # Overview
//
// A Graphics records drawing calls as typed commands instead of drawing
// them. Render replays the recorded commands into a canvas-style
// surface.Context2D, or blits a raster cache built earlier with Cache.
// The API follows the HTML canvas vocabulary: strokes and fills, paths,
// rectangles, arcs, Bézier curves, gradients and image patterns.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg-graphics"
//	    _ "github.com/gogpu/gg-graphics/canvas" // software surfaces
//	)
//
//	g := graphics.New(graphics.WithSize(100, 100))
//	g.LineStyle(2, surface.Color("red"), 1).
//	    BeginFill(surface.Color("blue"), 0.5).
//	    DrawRect(0, 0, 10, 10).
//	    EndFill()
//
//	s, _ := surface.NewSurface(100, 100)
//	_ = g.Render(display.CanvasTarget{Surface: s})
//
// # Caching
//
// Cache rasterizes the log once; later renders blit the raster instead of
// replaying. The cache is a frozen snapshot: commands recorded afterwards
// are kept in the log but do not show until Uncache or Clear.
//
// # Render Targets
//
// A target with a raw context (display.CanvasTarget) receives the commands
// or the cached raster directly. A target without one (display.Stage,
// termview.Target) composes the node from an image made with ToImage.
//
// # Input
//
// Drawing input is not validated. Negative radii, oversized rounded
// corners and NaN coordinates are recorded as given and rendered as the
// context decides; the software canvas ignores what the HTML canvas
// ignores.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases clockwise on screen
package graphics
