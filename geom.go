package sketch

import "math"

// Geometry kernel. These functions do not validate their inputs: NaN and
// infinite coordinates propagate to the result.

// Dist returns the Euclidean distance between a and b.
func Dist(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DotProduct returns the dot product of the vectors p0→p1 and p2→p3.
func DotProduct(p0, p1, p2, p3 Point) float64 {
	dx0 := p1.X - p0.X
	dy0 := p1.Y - p0.Y
	dx1 := p3.X - p2.X
	dy1 := p3.Y - p2.Y
	return dx0*dx1 + dy0*dy1
}

// AngleBetween returns the unsigned angle between the vectors p0→p1 and
// p2→p3, in [0, π].
//
// The result is NaN when either vector has zero length; callers must guard
// against coincident endpoints.
func AngleBetween(p0, p1, p2, p3 Point) float64 {
	dp := DotProduct(p0, p1, p2, p3)
	mag0 := Dist(p0, p1)
	mag1 := Dist(p2, p3)
	return math.Acos(dp / mag0 / mag1)
}

// LerpPoint interpolates linearly between p0 and p1. t is not clamped, so
// values outside [0, 1] extrapolate along the line.
func LerpPoint(p0, p1 Point, t float64) Point {
	return Point{X: Lerp(p0.X, p1.X, t), Y: Lerp(p0.Y, p1.Y, t)}
}

// QuadraticPoint evaluates the quadratic Bezier curve p0, p1, p2 at t.
func QuadraticPoint(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	m0 := mt * mt
	m1 := 2 * mt * t
	m2 := t * t
	return Point{
		X: m0*p0.X + m1*p1.X + m2*p2.X,
		Y: m0*p0.Y + m1*p1.Y + m2*p2.Y,
	}
}

// BezierPoint evaluates the cubic Bezier curve p0, p1, p2, p3 at t.
func BezierPoint(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	m0 := mt * mt * mt
	m1 := 3 * mt * mt * t
	m2 := 3 * mt * t * t
	m3 := t * t * t
	return Point{
		X: m0*p0.X + m1*p1.X + m2*p2.X + m3*p3.X,
		Y: m0*p0.Y + m1*p1.Y + m2*p2.Y + m3*p3.Y,
	}
}

// SegmentIntersect returns the point where segment p0-p1 crosses segment
// p2-p3. ok is false when the lines are parallel or coincident, or when the
// crossing lies outside the segments.
//
// Both lines are solved in the form a·x + b·y = c. Containment is decided
// per segment from the ratios of the crossing along each axis: a segment
// accepts the crossing when its x ratio or its y ratio falls in [0, 1]. For
// an axis-aligned segment one ratio is always NaN or ±Inf, so the other
// axis alone decides.
func SegmentIntersect(p0, p1, p2, p3 Point) (pt Point, ok bool) {
	a1 := p1.Y - p0.Y
	b1 := p0.X - p1.X
	c1 := a1*p0.X + b1*p0.Y
	a2 := p3.Y - p2.Y
	b2 := p2.X - p3.X
	c2 := a2*p2.X + b2*p2.Y

	denominator := a1*b2 - a2*b1
	if denominator == 0 {
		return Point{}, false
	}

	x := (b2*c1 - b1*c2) / denominator
	y := (a1*c2 - a2*c1) / denominator

	rx0 := (x - p0.X) / (p1.X - p0.X)
	ry0 := (y - p0.Y) / (p1.Y - p0.Y)
	rx1 := (x - p2.X) / (p3.X - p2.X)
	ry1 := (y - p2.Y) / (p3.Y - p2.Y)

	if (unitRange(rx0) || unitRange(ry0)) && (unitRange(rx1) || unitRange(ry1)) {
		return Point{X: x, Y: y}, true
	}
	return Point{}, false
}

// unitRange reports whether r lies in [0, 1]. NaN is never in range.
func unitRange(r float64) bool {
	return r >= 0 && r <= 1
}

// TangentPointToCircle returns the point on c's boundary where a line from p
// touches the circle. anticlockwise selects which of the two tangent points
// is returned.
//
// The angular offset from the direction p→centre is acos(-r/d), where d is
// the distance from p to the centre. For p inside the circle that offset is
// undefined and the result is NaN.
func TangentPointToCircle(p Point, c Circle, anticlockwise bool) Point {
	d := Dist(p, c.Center())
	dir := -1.0
	if anticlockwise {
		dir = 1.0
	}
	offset := math.Acos(-c.R/d) * dir
	base := math.Atan2(c.Y-p.Y, c.X-p.X)
	angle := base + offset
	return Point{
		X: c.X + math.Cos(angle)*c.R,
		Y: c.Y + math.Sin(angle)*c.R,
	}
}
