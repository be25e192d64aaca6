// Package stroke converts stroked sketch paths into filled outlines.
//
// Expansion is delegated to honnef.co/go/curve, a Go port of kurbo's stroker.
// A stroke becomes a FILL path where:
//   - The outer offset path goes forward
//   - The inner offset path is reversed
//   - Line caps connect the endpoints of open subpaths
//   - Line joins connect consecutive segments
//
// Closed subpaths produce two rings of opposite winding, so the outline must
// be filled with the nonzero rule.
//
// # Dashes
//
// A dashed style is cut into dashes first, curves included, and every dash is
// stroked as an open subpath. A dash of zero length has no direction; with
// round caps it is drawn as a disc of the stroke width and with square caps as
// an axis-aligned square. Butt caps draw nothing for it.
//
// # Usage
//
//	e := stroke.NewExpander(sketch.DefaultStroke().WithWidth(4))
//	e.SetTolerance(0.1)
//	outline := e.Expand(path)
package stroke
