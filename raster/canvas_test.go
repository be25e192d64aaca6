// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package raster

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/sketch"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func closeTo(a, b color.RGBA) bool {
	d := func(x, y uint8) bool { return max(x, y)-min(x, y) <= 1 }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func assertPixel(t *testing.T, c *Canvas, x, y int, want color.RGBA) {
	t.Helper()
	if got := c.Image().RGBAAt(x, y); !closeTo(got, want) {
		t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
	}
}

func TestNew(t *testing.T) {
	c := New(40, 30)
	if c.Width() != 40 || c.Height() != 30 {
		t.Fatalf("size = %dx%d, want 40x30", c.Width(), c.Height())
	}
	assertPixel(t, c, 0, 0, white)
	assertPixel(t, c, 39, 29, white)
	if c.LineWidth() != 1 {
		t.Errorf("default line width = %v, want 1", c.LineWidth())
	}

	dark := New(10, 10, WithBackground(sketch.Black), WithColor(sketch.Red), WithLineWidth(3))
	assertPixel(t, dark, 5, 5, black)
	if dark.LineWidth() != 3 {
		t.Errorf("line width = %v, want 3", dark.LineWidth())
	}
	if dark.Color() != sketch.Red {
		t.Errorf("color = %v, want red", dark.Color())
	}
}

func TestFill_Rectangle(t *testing.T) {
	c := New(50, 50)
	c.SetColor(sketch.Red)
	p := sketch.NewPath()
	p.Rectangle(10, 10, 20, 20)
	if err := sketch.FillPath(c, p); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{10, 10, red},
		{20, 20, red},
		{29, 29, red},
		{9, 20, white},
		{30, 20, white},
		{20, 5, white},
	}
	for _, tt := range tests {
		assertPixel(t, c, tt.x, tt.y, tt.want)
	}
}

func TestFill_ImplicitClose(t *testing.T) {
	c := New(50, 50)
	c.SetColor(sketch.Black)
	c.MoveTo(0, 0)
	c.LineTo(40, 0)
	c.LineTo(40, 40)
	c.LineTo(0, 40)
	if err := c.Fill(); err != nil {
		t.Fatal(err)
	}
	assertPixel(t, c, 20, 20, black)
	assertPixel(t, c, 45, 45, white)
}

func TestFill_Circle(t *testing.T) {
	c := New(100, 100)
	c.SetColor(sketch.Black)
	if err := sketch.DrawDots(c, []sketch.Point{sketch.Pt(50, 50)}, 20); err != nil {
		t.Fatal(err)
	}
	assertPixel(t, c, 50, 50, black)
	assertPixel(t, c, 50, 32, black)
	assertPixel(t, c, 50, 25, white)
	// Corner of the bounding square lies outside the disc.
	assertPixel(t, c, 33, 33, white)
}

func TestFill_Winding(t *testing.T) {
	outer := []sketch.Point{sketch.Pt(10, 10), sketch.Pt(90, 10), sketch.Pt(90, 90), sketch.Pt(10, 90)}
	inner := []sketch.Point{sketch.Pt(30, 30), sketch.Pt(70, 30), sketch.Pt(70, 70), sketch.Pt(30, 70)}
	reversed := []sketch.Point{inner[3], inner[2], inner[1], inner[0]}

	t.Run("opposite direction cuts a hole", func(t *testing.T) {
		c := New(100, 100)
		c.SetColor(sketch.Black)
		sketch.AddPoints(c, outer)
		c.ClosePath()
		sketch.AddPoints(c, reversed)
		c.ClosePath()
		if err := c.Fill(); err != nil {
			t.Fatal(err)
		}
		assertPixel(t, c, 20, 20, black)
		assertPixel(t, c, 50, 50, white)
	})

	t.Run("same direction stays solid", func(t *testing.T) {
		c := New(100, 100)
		c.SetColor(sketch.Black)
		sketch.AddPoints(c, outer)
		c.ClosePath()
		sketch.AddPoints(c, inner)
		c.ClosePath()
		if err := c.Fill(); err != nil {
			t.Fatal(err)
		}
		assertPixel(t, c, 20, 20, black)
		assertPixel(t, c, 50, 50, black)
	})
}

func TestFill_Translucent(t *testing.T) {
	c := New(20, 20)
	c.SetColor(sketch.RGBA(1, 0, 0, 0.5))
	if err := sketch.FillPoints(c, []sketch.Point{sketch.Pt(0, 0), sketch.Pt(20, 0), sketch.Pt(20, 20), sketch.Pt(0, 20)}); err != nil {
		t.Fatal(err)
	}
	got := c.Image().RGBAAt(10, 10)
	if got.R != 255 || got.A != 255 || got.G < 126 || got.G > 129 || got.G != got.B {
		t.Errorf("half red over white = %v, want about (255, 128, 128, 255)", got)
	}
}

func TestStroke_Line(t *testing.T) {
	c := New(100, 100)
	c.SetColor(sketch.Black)
	c.SetLineWidth(4)
	c.MoveTo(10, 50)
	c.LineTo(90, 50)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}

	// The stroke covers rows 48 through 51 completely.
	for y := 48; y <= 51; y++ {
		assertPixel(t, c, 50, y, black)
	}
	assertPixel(t, c, 50, 46, white)
	assertPixel(t, c, 50, 53, white)
	// Butt ends.
	assertPixel(t, c, 8, 50, white)
	assertPixel(t, c, 92, 50, white)
}

func TestStroke_ClosedOutlineKeepsCorners(t *testing.T) {
	c := New(100, 100)
	c.SetColor(sketch.Black)
	c.SetLineWidth(6)
	if err := sketch.StrokePoints(c, []sketch.Point{sketch.Pt(20, 20), sketch.Pt(80, 20), sketch.Pt(80, 80), sketch.Pt(20, 80)}, true); err != nil {
		t.Fatal(err)
	}

	// Segment overlaps at the corners must not cancel out.
	for _, pt := range [][2]int{{20, 20}, {79, 20}, {79, 79}, {20, 79}, {50, 20}, {80, 50}} {
		assertPixel(t, c, pt[0], pt[1], black)
	}
	// Round join: the corner of the would-be miter is at most grazed.
	if got := c.Image().RGBAAt(17, 17); got.R < 128 {
		t.Errorf("corner pixel (17, 17) = %v, want mostly background", got)
	}
	assertPixel(t, c, 16, 16, white)
	assertPixel(t, c, 50, 50, white)
}

func TestStroke_Caps(t *testing.T) {
	tests := []struct {
		cap        sketch.LineCap
		inked      []int
		background []int
	}{
		{sketch.LineCapButt, []int{10, 89}, []int{9, 90}},
		{sketch.LineCapSquare, []int{8, 91}, []int{6, 93}},
		{sketch.LineCapRound, []int{9, 90}, []int{7, 92}},
	}
	for _, tt := range tests {
		t.Run(tt.cap.String(), func(t *testing.T) {
			c := New(100, 100)
			c.SetLineWidth(4)
			c.SetLineCap(tt.cap)
			c.MoveTo(10, 50)
			c.LineTo(90, 50)
			if err := c.Stroke(); err != nil {
				t.Fatal(err)
			}
			for _, x := range tt.inked {
				assertPixel(t, c, x, 49, black)
			}
			for _, x := range tt.background {
				assertPixel(t, c, x, 49, white)
			}
		})
	}
}

func TestStroke_Joins(t *testing.T) {
	square := []sketch.Point{sketch.Pt(20, 20), sketch.Pt(80, 20), sketch.Pt(80, 80), sketch.Pt(20, 80)}
	tests := []struct {
		name   string
		stroke sketch.Stroke
		corner color.RGBA
	}{
		{"miter", sketch.DefaultStroke().WithJoin(sketch.LineJoinMiter), black},
		{"miter over limit", sketch.DefaultStroke().WithJoin(sketch.LineJoinMiter).WithMiterLimit(1), white},
		{"bevel", sketch.DefaultStroke().WithJoin(sketch.LineJoinBevel), white},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(100, 100, WithStroke(tt.stroke.WithWidth(6)))
			if err := sketch.StrokePoints(c, square, true); err != nil {
				t.Fatal(err)
			}
			// The outer corner of the top-left miter is the pixel at (17, 17).
			assertPixel(t, c, 17, 17, tt.corner)
			assertPixel(t, c, 20, 17, black)
			assertPixel(t, c, 16, 16, white)
		})
	}
}

func TestStroke_Dashed(t *testing.T) {
	c := New(100, 100)
	c.SetLineWidth(4)
	c.SetDash(10, 10)
	c.MoveTo(10, 50)
	c.LineTo(90, 50)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}
	for _, x := range []int{15, 35, 55, 75} {
		assertPixel(t, c, x, 50, black)
	}
	for _, x := range []int{25, 45, 65, 85} {
		assertPixel(t, c, x, 50, white)
	}

	// Dashing stays on until cleared.
	if !c.StrokeStyle().IsDashed() {
		t.Error("dash pattern lost after Stroke")
	}
	c.SetDash()
	if c.StrokeStyle().IsDashed() {
		t.Error("SetDash() did not restore solid lines")
	}
}

func TestStroke_Dotted(t *testing.T) {
	c := New(100, 100, WithStroke(sketch.DottedStroke(4)))
	c.MoveTo(10, 50)
	c.LineTo(90, 50)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}
	// Dots every 8 pixels from x = 10.
	assertPixel(t, c, 17, 49, black)
	assertPixel(t, c, 25, 49, black)
	assertPixel(t, c, 13, 49, white)
	assertPixel(t, c, 21, 49, white)
}

func TestStroke_Curve(t *testing.T) {
	c := New(100, 100)
	c.SetColor(sketch.Black)
	c.SetLineWidth(3)
	p := sketch.MultiCurve([]sketch.Point{sketch.Pt(10, 90), sketch.Pt(50, 10), sketch.Pt(90, 90)})
	if err := sketch.StrokePath(c, p); err != nil {
		t.Fatal(err)
	}
	// The quadratic's vertex at t = 0.5: midpoint of (30, 50) and (70, 50)
	// pulled towards (50, 10).
	mid := sketch.QuadraticPoint(sketch.Pt(30, 50), sketch.Pt(50, 10), sketch.Pt(70, 50), 0.5)
	assertPixel(t, c, int(mid.X), int(mid.Y), black)
	assertPixel(t, c, 50, 60, white)
}

func TestStroke_ZeroWidthIsNoop(t *testing.T) {
	c := New(20, 20)
	c.SetColor(sketch.Black)
	c.SetLineWidth(0)
	if err := sketch.StrokePoints(c, []sketch.Point{sketch.Pt(0, 10), sketch.Pt(20, 10)}, false); err != nil {
		t.Fatal(err)
	}
	assertPixel(t, c, 10, 10, white)

	// The path is still consumed.
	c.SetLineWidth(2)
	if err := c.Stroke(); err != nil {
		t.Fatal(err)
	}
	assertPixel(t, c, 10, 10, white)
}

func TestNonFinite(t *testing.T) {
	c := New(20, 20)
	nan := math.NaN()
	pts := []sketch.Point{sketch.Pt(0, 0), sketch.Pt(nan, 5), sketch.Pt(10, 10)}

	if err := sketch.FillPoints(c, pts); !errors.Is(err, ErrNonFinite) {
		t.Errorf("Fill error = %v, want ErrNonFinite", err)
	}
	if err := sketch.StrokePoints(c, []sketch.Point{sketch.Pt(0, 0), sketch.Pt(math.Inf(1), 0)}, false); !errors.Is(err, ErrNonFinite) {
		t.Errorf("Stroke error = %v, want ErrNonFinite", err)
	}
	// The bad path is discarded.
	if err := c.Fill(); err != nil {
		t.Errorf("Fill after error = %v, want nil", err)
	}
}

func TestClear(t *testing.T) {
	c := New(10, 10)
	c.MoveTo(0, 0)
	c.LineTo(10, 0)
	c.LineTo(10, 10)
	c.Clear(sketch.Blue)
	assertPixel(t, c, 3, 3, color.RGBA{0, 0, 255, 255})
	// Clear dropped the pending path.
	c.SetColor(sketch.Red)
	if err := c.Fill(); err != nil {
		t.Fatal(err)
	}
	assertPixel(t, c, 9, 1, color.RGBA{0, 0, 255, 255})
}

func TestEncodePNG(t *testing.T) {
	c := New(32, 16)
	c.SetColor(sketch.Red)
	p := sketch.NewPath()
	p.Rectangle(0, 0, 16, 16)
	if err := sketch.FillPath(c, p); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := c.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("PNG decode failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 16 {
		t.Errorf("expected 32x16, got %dx%d", b.Dx(), b.Dy())
	}
	if r, g, b, _ := img.At(4, 4).RGBA(); r != 0xffff || g != 0 || b != 0 {
		t.Errorf("decoded pixel = (%x, %x, %x), want red", r, g, b)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := New(8, 8).SavePNG(path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if _, err := png.Decode(f); err != nil {
		t.Errorf("saved file is not a PNG: %v", err)
	}

	if err := New(8, 8).SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory should fail")
	}
}
