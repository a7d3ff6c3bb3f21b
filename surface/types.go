// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int
}

// PaintKind distinguishes the three kinds of Paint.
type PaintKind uint8

const (
	// PaintColor is a CSS colour string.
	PaintColor PaintKind = iota

	// PaintGradient is a linear or radial gradient handle.
	PaintGradient

	// PaintPattern is an image pattern handle.
	PaintPattern
)

// Paint is a stroke or fill source.
type Paint interface {
	PaintKind() PaintKind
}

// Color is a CSS colour: a keyword ("red"), a hex form ("#f00", "#ff0000",
// "#ff000080"), rgb()/rgba() notation, or the legacy "0" meaning black.
type Color string

// Black is the default stroke and fill colour.
const Black Color = "0"

// PaintKind implements Paint.
func (Color) PaintKind() PaintKind { return PaintColor }

// Gradient is an opaque gradient handle created by a Context2D.
type Gradient interface {
	Paint

	// AddColorStop adds a stop at offset in [0, 1]. Stops sharing an offset
	// keep insertion order, so the last one added wins at that offset.
	AddColorStop(offset float64, c Color)
}

// Pattern is an opaque image pattern handle created by a Context2D.
type Pattern interface {
	Paint

	// Repetition reports how the pattern tiles.
	Repetition() Repetition
}

// Repetition controls pattern tiling.
type Repetition string

const (
	// RepeatBoth tiles in both directions. The empty Repetition means the same.
	RepeatBoth Repetition = "repeat"

	// RepeatX tiles horizontally only.
	RepeatX Repetition = "repeat-x"

	// RepeatY tiles vertically only.
	RepeatY Repetition = "repeat-y"

	// NoRepeat draws the image once.
	NoRepeat Repetition = "no-repeat"
)

// LineCap specifies the shape of line endpoints.
// The zero value leaves the context's cap unchanged.
type LineCap uint8

const (
	// LineCapUnset means no cap was chosen.
	LineCapUnset LineCap = iota

	// LineCapButt specifies a flat line cap (no extension).
	LineCapButt

	// LineCapRound specifies a semicircular line cap.
	LineCapRound

	// LineCapSquare specifies a square line cap (extends by half width).
	LineCapSquare
)

var lineCapNames = [...]string{
	LineCapUnset:  "",
	LineCapButt:   "butt",
	LineCapRound:  "round",
	LineCapSquare: "square",
}

// String returns the canvas name of the cap.
func (c LineCap) String() string {
	if int(c) < len(lineCapNames) {
		return lineCapNames[c]
	}
	return "unknown"
}

// LineJoin specifies the shape of line joins.
// The zero value leaves the context's join unchanged.
type LineJoin uint8

const (
	// LineJoinUnset means no join was chosen.
	LineJoinUnset LineJoin = iota

	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter

	// LineJoinRound specifies a rounded join.
	LineJoinRound

	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

var lineJoinNames = [...]string{
	LineJoinUnset: "",
	LineJoinMiter: "miter",
	LineJoinRound: "round",
	LineJoinBevel: "bevel",
}

// String returns the canvas name of the join.
func (j LineJoin) String() string {
	if int(j) < len(lineJoinNames) {
		return lineJoinNames[j]
	}
	return "unknown"
}
