package sketch

// Circle is a circle given by its centre and radius.
type Circle struct {
	X, Y, R float64
}

// Center returns the centre of the circle.
func (c Circle) Center() Point {
	return Point{X: c.X, Y: c.Y}
}

// ContainsPoint reports whether p lies inside or on the circle.
func (c Circle) ContainsPoint(p Point) bool {
	return Dist(p, c.Center()) <= c.R
}

// IntersectsCircle reports whether the two circles overlap.
// Circles that only touch do not intersect.
func (c Circle) IntersectsCircle(other Circle) bool {
	return Dist(c.Center(), other.Center()) < c.R+other.R
}
