// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"image/color"

	"github.com/gogpu/sketch"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	// White page, black hairlines
//	c := raster.New(800, 600)
//
//	// Dark page with a thick pink pen
//	c := raster.New(800, 600,
//	    raster.WithBackground(sketch.Number(0x1b1b1e)),
//	    raster.WithColor(sketch.Named("hotpink")),
//	    raster.WithLineWidth(4))
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	background color.Color
	color      color.Color
	stroke     sketch.Stroke
	tolerance  float64
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		background: sketch.White,
		color:      sketch.Black,
		stroke:     sketch.DefaultStroke(),
		tolerance:  0.1,
	}
}

// WithBackground sets the colour the canvas is cleared to on creation.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithColor sets the initial paint colour.
func WithColor(c color.Color) Option {
	return func(o *options) {
		o.color = c
	}
}

// WithLineWidth sets the initial stroke width in pixels.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		o.stroke.Width = w
	}
}

// WithStroke sets the initial stroke style, width included.
func WithStroke(s sketch.Stroke) Option {
	return func(o *options) {
		o.stroke = s.Clone()
	}
}

// WithTolerance sets how far, in pixels, a stroke outline may deviate from
// the exact offset curves. Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}
