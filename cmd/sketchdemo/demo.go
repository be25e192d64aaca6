package main

import (
	"math"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/scene"
)

// demoScene lays out one of each generator on an 800x600 page.
func demoScene() *scene.Scene {
	pts := func(xy ...float64) []scene.Point {
		out := make([]scene.Point, 0, len(xy)/2)
		for i := 0; i+1 < len(xy); i += 2 {
			out = append(out, scene.Point{X: xy[i], Y: xy[i+1]})
		}
		return out
	}

	return &scene.Scene{
		Width:      800,
		Height:     600,
		Seed:       1,
		Background: "#1b1b1e",
		Shapes: []scene.Shape{
			// Background grid
			{Kind: scene.KindGrid, W: 800, H: 600, Spacing: 40, Color: "#2c2c31"},

			// Organic shapes
			{Kind: scene.KindSplat, X: 150, Y: 150, Radius: 110, Inner: 60, Sides: 9, Variation: 0.5, Color: "hotpink", Opacity: scene.Fraction(0.85)},
			{Kind: scene.KindSplat, X: 150, Y: 150, Radius: 50, Inner: 30, Sides: 6, Variation: 0.8, Color: "random"},
			{Kind: scene.KindHeart, X: 650, Y: 150, W: 160, H: 150, Rotation: scene.Angle(-math.Pi / 12), Smooth: true, Color: "crimson"},

			// Regular shapes
			{Kind: scene.KindPolygon, X: 400, Y: 150, Radius: 80, Sides: 6, Rotation: scene.Angle(math.Pi / 6), Color: "gold", Style: scene.StyleStroke, LineWidth: 6, Join: sketch.LineJoinMiter},
			{Kind: scene.KindStar, X: 400, Y: 150, Radius: 60, Inner: 25, Sides: 5, Rotation: scene.Angle(-math.Pi / 2), Color: "#ffd70099"},
			{Kind: scene.KindRect, X: 560, Y: 330, W: 180, H: 110, Radius: 18, Color: "steelblue"},
			{Kind: scene.KindCircle, X: 650, Y: 385, Radius: 35, Color: "white", Style: scene.StyleStroke, LineWidth: 3, Dash: []float64{6, 4}},

			// Lines
			{Kind: scene.KindFractal, X: 40, Y: 470, To: scene.Point{X: 760, Y: 470}, Roughness: 0.6, Iterations: 8, Color: "white", LineWidth: 1.5},
			{Kind: scene.KindFractal, X: 40, Y: 540, To: scene.Point{X: 760, Y: 540}, Roughness: 0.5, Iterations: 5, Smooth: true, Color: "mediumseagreen", LineWidth: 3},
			{Kind: scene.KindCurve, Points: pts(60, 400, 160, 300, 260, 400, 360, 300, 460, 400), Color: "orange", Style: scene.StyleStroke, LineWidth: 4},
			{Kind: scene.KindLoop, Points: pts(220, 330, 300, 360, 260, 420, 180, 400), Color: "teal", Opacity: scene.Fraction(0.7)},

			// Scatter
			{Kind: scene.KindDots, X: 20, Y: 280, W: 760, H: 20, Count: 60, Radius: 2, Color: "random-grey"},
		},
	}
}
