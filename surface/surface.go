// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
)

// Drawable is anything that can be blitted into a Context2D at its natural
// size: a Surface or a decoded Image.
type Drawable interface {
	// Width returns the drawable width in pixels.
	Width() int

	// Height returns the drawable height in pixels.
	Height() int

	// Image returns the pixels backing the drawable. For surfaces this is
	// the live backing store, not a copy.
	Image() image.Image
}

// Surface is an off-screen 2D rendering target.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	Drawable

	// Context2D returns the surface's drawing context. Every call returns
	// the same context.
	Context2D() Context2D

	// Snapshot returns a copy of the current surface contents.
	Snapshot() *image.RGBA

	// DataURL encodes the surface as a data URL. An empty or unsupported
	// mimeType selects image/png.
	DataURL(mimeType string) (string, error)
}

// Context2D is an immediate-mode drawing context modelled on the HTML canvas
// 2D context, restricted to the operations gg-graphics records.
//
// Setters silently ignore values the context cannot use (a non-positive
// line width, an unparsable colour, an alpha outside [0, 1], an unset cap
// or join), leaving the previous value in place.
type Context2D interface {
	// Style properties.

	SetLineWidth(width float64)
	SetStrokeStyle(p Paint)
	SetLineAlpha(alpha float64)
	SetLineCap(c LineCap)
	SetLineJoin(j LineJoin)
	SetMiterLimit(limit float64)
	SetFillStyle(p Paint)
	SetFillAlpha(alpha float64)

	// Path construction.

	BeginPath()
	ClosePath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Rect(x, y, w, h float64)
	// Arc adds a circular arc centred at (x, y). Angles are in radians,
	// measured clockwise in screen space from the positive x axis.
	Arc(x, y, radius, startAngle, endAngle float64, anticlockwise bool)
	BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64)

	// Painting.

	// Stroke outlines the current path with the stroke paint.
	Stroke()
	// Fill fills the current path with the fill paint (non-zero rule).
	Fill()
	// DrawImage draws img with its top-left corner at (x, y), unscaled.
	DrawImage(img image.Image, x, y float64)

	// Paint factories.

	CreateLinearGradient(x0, y0, x1, y1 float64) Gradient
	CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) Gradient
	CreatePattern(img image.Image, repetition Repetition) Pattern
}

// Factory creates surfaces. [NewSurfaceWithOptions] is the registry-backed
// factory; tests inject their own.
type Factory func(opts Options) (Surface, error)
