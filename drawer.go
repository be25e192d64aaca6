package sketch

// Drawer is the drawing surface sketch renders into. Path construction calls
// accumulate a current path; Stroke and Fill paint it and start a new one.
//
// sketch never touches pixels itself. A backend wraps its own context type
// in a Drawer, as the raster package does for golang.org/x/image/vector.
type Drawer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(cx, cy, x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	// Arc adds a circular arc from angle1 to angle2 around (cx, cy),
	// joined to the current point by a straight line if there is one.
	Arc(cx, cy, r, angle1, angle2 float64)
	ClosePath()

	Stroke() error
	Fill() error
}

// DrawTo replays the path's commands on d without painting.
func (p *Path) DrawTo(d Drawer) {
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			d.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			d.LineTo(e.Point.X, e.Point.Y)
		case QuadTo:
			d.QuadraticTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case CubicTo:
			d.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case Close:
			d.ClosePath()
		}
	}
}

// StrokePath draws the outline of path on d.
func StrokePath(d Drawer, path *Path) error {
	path.DrawTo(d)
	return d.Stroke()
}

// FillPath fills path on d.
func FillPath(d Drawer, path *Path) error {
	path.DrawTo(d)
	return d.Fill()
}

// AddPoints adds a polyline through points to the current path of d.
func AddPoints(d Drawer, points []Point) {
	for i, pt := range points {
		if i == 0 {
			d.MoveTo(pt.X, pt.Y)
		} else {
			d.LineTo(pt.X, pt.Y)
		}
	}
}

// StrokePoints strokes a polyline through points, optionally closing it.
func StrokePoints(d Drawer, points []Point, close bool) error {
	AddPoints(d, points)
	if close {
		d.ClosePath()
	}
	return d.Stroke()
}

// FillPoints fills the polygon through points.
func FillPoints(d Drawer, points []Point) error {
	AddPoints(d, points)
	d.ClosePath()
	return d.Fill()
}

// DrawDots fills a circle of the given radius at every point.
func DrawDots(d Drawer, points []Point, radius float64) error {
	for _, pt := range points {
		d.MoveTo(pt.X+radius, pt.Y)
		d.Arc(pt.X, pt.Y, radius, 0, TwoPi)
		d.ClosePath()
	}
	return d.Fill()
}
