// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster renders sketch paths into an in-memory RGBA image.
//
// A Canvas implements [sketch.Drawer]. Fills go straight to the
// golang.org/x/image/vector rasterizer, curves included. Strokes are
// expanded into fill outlines with the caps, joins and dashes of the current
// [sketch.Stroke] by the internal stroke package, then filled the same way.
// Both use the nonzero winding rule.
//
// Usage:
//
//	c := raster.New(400, 400, raster.WithBackground(sketch.Named("ivory")))
//	c.SetColor(sketch.Named("tomato"))
//	_ = sketch.FillPoints(c, sketch.Star(200, 200, 80, 180, 7, 0))
//	_ = c.SavePNG("star.png")
package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/internal/stroke"
)

// ErrNonFinite is returned by Fill and Stroke when the current path holds a
// NaN or infinite coordinate. The path is discarded.
var ErrNonFinite = errors.New("raster: non-finite coordinate in path")

// Canvas is a fixed-size RGBA drawing surface.
//
// Canvas is not safe for concurrent use.
type Canvas struct {
	img       *image.RGBA
	ras       *vector.Rasterizer
	path      *sketch.Path
	color     color.Color
	stroke    sketch.Stroke
	tolerance float64
}

// Ensure Canvas implements sketch.Drawer
var _ sketch.Drawer = (*Canvas)(nil)

// New creates a width x height canvas cleared to the background colour.
func New(width, height int, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:       vector.NewRasterizer(width, height),
		path:      sketch.NewPath(),
		color:     o.color,
		stroke:    o.stroke,
		tolerance: o.tolerance,
	}
	c.Clear(o.background)
	sketch.Logger().Debug("raster: canvas created", "width", width, "height", height)
	return c
}

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int {
	return c.img.Bounds().Dx()
}

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int {
	return c.img.Bounds().Dy()
}

// Image returns the backing image. It is not a copy.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear replaces every pixel with col and discards the current path.
func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
	c.path.Clear()
}

// SetColor sets the paint colour for subsequent fills and strokes.
func (c *Canvas) SetColor(col color.Color) {
	c.color = col
}

// Color returns the current paint colour.
func (c *Canvas) Color() color.Color {
	return c.color
}

// SetLineWidth sets the stroke width in pixels.
func (c *Canvas) SetLineWidth(w float64) {
	c.stroke.Width = w
}

// LineWidth returns the current stroke width.
func (c *Canvas) LineWidth() float64 {
	return c.stroke.Width
}

// SetStroke replaces the whole stroke style, width included.
func (c *Canvas) SetStroke(s sketch.Stroke) {
	c.stroke = s.Clone()
}

// StrokeStyle returns a copy of the current stroke style.
func (c *Canvas) StrokeStyle() sketch.Stroke {
	return c.stroke.Clone()
}

// SetLineCap sets the shape of the ends of open subpaths.
func (c *Canvas) SetLineCap(lineCap sketch.LineCap) {
	c.stroke.Cap = lineCap
}

// SetLineJoin sets the shape of stroke corners.
func (c *Canvas) SetLineJoin(join sketch.LineJoin) {
	c.stroke.Join = join
}

// SetDash sets alternating dash and gap lengths. No lengths, or all zero,
// restores solid lines.
func (c *Canvas) SetDash(lengths ...float64) {
	c.stroke.Dash = sketch.NewDash(lengths...)
}

func (c *Canvas) MoveTo(x, y float64) { c.path.MoveTo(x, y) }
func (c *Canvas) LineTo(x, y float64) { c.path.LineTo(x, y) }
func (c *Canvas) ClosePath()          { c.path.Close() }

func (c *Canvas) QuadraticTo(cx, cy, x, y float64) {
	c.path.QuadraticTo(cx, cy, x, y)
}

func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	c.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (c *Canvas) Arc(cx, cy, r, angle1, angle2 float64) {
	c.path.Arc(cx, cy, r, angle1, angle2)
}

// Fill paints the interior of the current path and starts a new one.
// Open subpaths are closed implicitly.
func (c *Canvas) Fill() error {
	defer c.path.Clear()
	if err := checkFinite(c.path); err != nil {
		return err
	}
	c.fill(c.path)
	return nil
}

// Stroke paints the outline of the current path with the current stroke
// style and starts a new one.
func (c *Canvas) Stroke() error {
	defer c.path.Clear()
	if err := checkFinite(c.path); err != nil {
		return err
	}
	if c.stroke.Width <= 0 {
		return nil
	}

	e := stroke.NewExpander(c.stroke)
	e.SetTolerance(c.tolerance)
	c.fill(e.Expand(c.path))
	return nil
}

// fill rasterises p with the nonzero rule and composites it.
func (c *Canvas) fill(p *sketch.Path) {
	if !p.HasCurrentPoint() {
		return
	}

	c.ras.Reset(c.Width(), c.Height())
	open := false
	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case sketch.MoveTo:
			if open {
				c.ras.ClosePath()
			}
			c.ras.MoveTo(f32(e.Point))
			open = true
		case sketch.LineTo:
			c.ras.LineTo(f32(e.Point))
			open = true
		case sketch.QuadTo:
			cx, cy := f32(e.Control)
			x, y := f32(e.Point)
			c.ras.QuadTo(cx, cy, x, y)
			open = true
		case sketch.CubicTo:
			c1x, c1y := f32(e.Control1)
			c2x, c2y := f32(e.Control2)
			x, y := f32(e.Point)
			c.ras.CubeTo(c1x, c1y, c2x, c2y, x, y)
			open = true
		case sketch.Close:
			if open {
				c.ras.ClosePath()
				open = false
			}
		}
	}
	if open {
		c.ras.ClosePath()
	}
	c.paint()
}

// paint composites the accumulated coverage in the current colour.
func (c *Canvas) paint() {
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(c.color), image.Point{})
}

// EncodePNG writes the canvas as PNG to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("raster: save png: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("raster: save png: %w", cerr)
		}
	}()

	if err := c.EncodePNG(f); err != nil {
		return fmt.Errorf("raster: encode %s: %w", path, err)
	}
	sketch.Logger().Debug("raster: png written", "path", path,
		"width", c.Width(), "height", c.Height())
	return nil
}

func f32(p sketch.Point) (float32, float32) {
	return float32(p.X), float32(p.Y)
}

func checkFinite(p *sketch.Path) error {
	bad := func(pts ...sketch.Point) bool {
		for _, pt := range pts {
			if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0) {
				return true
			}
		}
		return false
	}
	for _, elem := range p.Elements() {
		var found bool
		switch e := elem.(type) {
		case sketch.MoveTo:
			found = bad(e.Point)
		case sketch.LineTo:
			found = bad(e.Point)
		case sketch.QuadTo:
			found = bad(e.Control, e.Point)
		case sketch.CubicTo:
			found = bad(e.Control1, e.Control2, e.Point)
		}
		if found {
			return ErrNonFinite
		}
	}
	return nil
}
