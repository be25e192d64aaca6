package sketch

import "math"

// Polyline is a flattened subpath.
type Polyline struct {
	Points []Point
	Closed bool
}

// defaultTolerance is used when Flatten is given a non-positive tolerance.
const defaultTolerance = 0.25

// maxCurveSteps bounds the number of segments a single curve flattens into.
const maxCurveSteps = 512

// Subpaths flattens the path into polylines, one per subpath. Curves are
// sampled at uniform parameter steps chosen so that each chord deviates from
// the curve by roughly tolerance at most.
func (p *Path) Subpaths(tolerance float64) []Polyline {
	if tolerance <= 0 {
		tolerance = defaultTolerance
	}

	var out []Polyline
	var cur *Polyline
	var current, start Point

	flush := func() {
		if cur != nil && len(cur.Points) > 0 {
			out = append(out, *cur)
		}
		cur = nil
	}
	ensure := func() {
		if cur == nil {
			cur = &Polyline{Points: []Point{current}}
		}
	}

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			current, start = e.Point, e.Point
			cur = &Polyline{Points: []Point{current}}
		case LineTo:
			ensure()
			cur.Points = append(cur.Points, e.Point)
			current = e.Point
		case QuadTo:
			ensure()
			n := curveSteps(tolerance, current, e.Control, e.Point)
			for i := 1; i <= n; i++ {
				cur.Points = append(cur.Points, QuadraticPoint(current, e.Control, e.Point, float64(i)/float64(n)))
			}
			current = e.Point
		case CubicTo:
			ensure()
			n := curveSteps(tolerance, current, e.Control1, e.Control2, e.Point)
			for i := 1; i <= n; i++ {
				cur.Points = append(cur.Points, BezierPoint(current, e.Control1, e.Control2, e.Point, float64(i)/float64(n)))
			}
			current = e.Point
		case Close:
			if cur != nil {
				cur.Closed = true
			}
			flush()
			current = start
		}
	}
	flush()
	return out
}

// curveSteps estimates how many uniform steps keep the chord error of a
// curve with the given control polygon under tolerance.
func curveSteps(tolerance float64, ctrl ...Point) int {
	var length float64
	for i := 1; i < len(ctrl); i++ {
		length += Dist(ctrl[i-1], ctrl[i])
	}
	n := int(math.Ceil(math.Sqrt(length / tolerance)))
	return max(1, min(n, maxCurveSteps))
}

// Flatten converts the path to a single point list with curves replaced by
// line segments. Subpath boundaries are not marked; closed subpaths repeat
// their first point at the end.
func (p *Path) Flatten(tolerance float64) []Point {
	var points []Point
	for _, sp := range p.Subpaths(tolerance) {
		points = append(points, sp.Points...)
		if sp.Closed && len(sp.Points) > 0 && sp.Points[len(sp.Points)-1] != sp.Points[0] {
			points = append(points, sp.Points[0])
		}
	}
	return points
}

// Bounds returns the tight bounding rectangle of the path. Curves
// contribute their extrema rather than their control points.
func (p *Path) Bounds() Rect {
	var b boundsBuilder
	var current, start Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			b.add(e.Point)
			current, start = e.Point, e.Point
		case LineTo:
			b.add(current, e.Point)
			current = e.Point
		case QuadTo:
			q := QuadBez{P0: current, P1: e.Control, P2: e.Point}
			b.addRect(q.BoundingBox())
			current = e.Point
		case CubicTo:
			c := CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point}
			b.addRect(c.BoundingBox())
			current = e.Point
		case Close:
			current = start
		}
	}
	return b.rect()
}

// BoundsOf returns the smallest rectangle containing every point.
func BoundsOf(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range points[1:] {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Area returns the signed area enclosed by the closed subpaths of the path,
// measured on the flattened outline. With Y pointing down, positive area
// means the outline runs clockwise on screen.
func (p *Path) Area() float64 {
	var area float64
	for _, sp := range p.Subpaths(defaultTolerance) {
		if !sp.Closed {
			continue
		}
		pts := sp.Points
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			area += 0.5 * (a.X*b.Y - b.X*a.Y)
		}
	}
	return area
}
