// Package stroke converts stroked paths into fillable outlines.
//
// Each subpath is offset by half the line width on both sides. The result is
// a fill path where:
//  1. the forward offset runs along the subpath,
//  2. the end cap connects it to the backward offset,
//  3. the backward offset runs back reversed,
//  4. the start cap closes the outline.
//
// Closed subpaths produce two closed rings instead of caps. Joins between
// segments follow the canvas miter, round and bevel rules; curves are
// flattened to line segments first.
//
// The algorithm follows tiny-skia's stroker.rs and kurbo's stroke.rs.
package stroke
