package sketch

import "fmt"

// MultiCurve returns an open smooth path through the midpoints of
// consecutive points.
//
// The path starts at points[0], runs straight to the first midpoint, then
// uses every interior point as the control point of a quadratic segment
// ending at the next midpoint, and finishes with a straight line to the last
// point. Interior points shape the curve but are not passed through.
//
// MultiCurve panics if fewer than two points are given.
func MultiCurve(points []Point) *Path {
	mustSmooth("MultiCurve", points)
	n := len(points)

	path := NewPath()
	path.MoveTo(points[0].X, points[0].Y)
	mid := points[0].Midpoint(points[1])
	path.LineTo(mid.X, mid.Y)
	for i := 1; i < n-1; i++ {
		ctrl := points[i]
		mid := ctrl.Midpoint(points[i+1])
		path.QuadraticTo(ctrl.X, ctrl.Y, mid.X, mid.Y)
	}
	last := points[n-1]
	path.LineTo(last.X, last.Y)
	return path
}

// MultiLoop returns a closed smooth outline using the same midpoint scheme
// as MultiCurve, treating the points as a ring.
//
// The outline starts at the midpoint of the last and first points, passes
// through every midpoint including the wrap-around pair, and returns to its
// start, so there is no visible seam.
//
// MultiLoop panics if fewer than two points are given.
func MultiLoop(points []Point) *Path {
	mustSmooth("MultiLoop", points)
	n := len(points)

	first := points[0]
	last := points[n-1]
	start := last.Midpoint(first)

	path := NewPath()
	path.MoveTo(start.X, start.Y)
	for i := 0; i < n-1; i++ {
		ctrl := points[i]
		mid := ctrl.Midpoint(points[i+1])
		path.QuadraticTo(ctrl.X, ctrl.Y, mid.X, mid.Y)
	}
	path.QuadraticTo(last.X, last.Y, start.X, start.Y)
	path.Close()
	return path
}

func mustSmooth(fn string, points []Point) {
	if len(points) < 2 {
		panic(fmt.Sprintf("sketch: %s needs at least 2 points, got %d", fn, len(points)))
	}
}
