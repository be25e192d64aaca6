// Package sketch provides procedural 2D shape generation and curve smoothing
// for generative drawings.
//
// # Overview
//
// sketch produces geometry, not pixels. Generators such as [Polygon], [Star],
// [Splat], [FractalLine] and [Heart] return ordered point sequences or
// smoothed [Path] values which a rendering backend then strokes or fills
// through the [Drawer] interface. The raster sub-package provides a software
// Drawer backed by golang.org/x/image/vector.
//
// # Quick Start
//
//	rnd := sketch.NewRandom(42)
//
//	// An organic blob, smoothed with closed-loop quadratic blending.
//	blob := sketch.Splat(rnd, 256, 256, 8, 120, 60, 0.5)
//
//	// A jagged line using midpoint displacement.
//	line := sketch.FractalLine(rnd, 20, 400, 492, 400, 0.6, 6)
//
//	c := raster.New(512, 512, raster.WithBackground(sketch.Named("ivory")))
//	c.SetColor(sketch.Named("steelblue"))
//	_ = sketch.FillPath(c, blob)
//	_ = sketch.StrokePoints(c, line, false)
//	_ = c.SavePNG("out.png")
//
// # Randomness
//
// Nothing in sketch reads process-wide entropy. Every generator that needs
// jitter takes a [*Random] explicitly, so a drawing is reproducible from its
// seed provided the generators are called in the same order.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increases towards +Y
//
// # Concurrency
//
// Point, Circle, Rect, Color, Matrix and the geometry functions are pure
// values and functions and may be used from any goroutine. Random and Path
// carry mutable state and must be owned by one goroutine at a time.
package sketch

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
