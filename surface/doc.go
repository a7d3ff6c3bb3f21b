// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the rendering-surface contracts that gg-graphics
// records against and replays into.
//
// A [Surface] is an off-screen pixel target created by a [Factory]. Its
// [Context2D] is an HTML-canvas-like immediate drawing context: style
// properties (line width, stroke and fill paints, alphas, caps, joins,
// miter limit), path construction (BeginPath, MoveTo, LineTo, Rect, Arc,
// BezierCurveTo, ClosePath), painting (Stroke, Fill, DrawImage) and the
// paint factories (CreateLinearGradient, CreateRadialGradient,
// CreatePattern).
//
// # Paints
//
// A [Paint] is one of three things: a CSS [Color] string, a [Gradient]
// handle or a [Pattern] handle. Gradients and patterns are opaque values
// created by a Context2D and usable with any context of the same backend.
//
// # Registry
//
// Backends register themselves with [Register], following the database/sql
// driver pattern:
//
//	import _ "github.com/gogpu/gg-graphics/canvas" // registers "software"
//
//	s, err := surface.NewSurface(320, 240)
//
// # Images
//
// [Image] is a decoded image handle built from a data URL, with a width and
// height that can be set independently of the pixel data. [EncodeDataURL]
// produces data URLs for image/png, image/jpeg, image/bmp and image/tiff.
package surface
