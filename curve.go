package sketch

import "sort"

// QuadBez represents a quadratic Bezier curve with control points P0, P1, P2.
// P0 is the start point, P1 is the control point, P2 is the end point.
type QuadBez struct {
	P0, P1, P2 Point
}

// Eval evaluates the curve at parameter t.
func (q QuadBez) Eval(t float64) Point {
	return QuadraticPoint(q.P0, q.P1, q.P2, t)
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (q QuadBez) Subdivide() (QuadBez, QuadBez) {
	mid := q.Eval(0.5)
	return QuadBez{P0: q.P0, P1: q.P0.Lerp(q.P1, 0.5), P2: mid},
		QuadBez{P0: mid, P1: q.P1.Lerp(q.P2, 0.5), P2: q.P2}
}

// Extrema returns the parameter values in (0, 1) where the curve turns back
// in x or in y, sorted.
func (q QuadBez) Extrema() []float64 {
	var result []float64

	// B'(t) = 2[(P1-P0) + t(P2-2P1+P0)]
	d0 := q.P1.Sub(q.P0)
	dd := q.P2.Sub(q.P1).Sub(d0)

	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			result = append(result, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			result = append(result, t)
		}
	}

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (q QuadBez) BoundingBox() Rect {
	var b boundsBuilder
	b.add(q.P0, q.P2)
	for _, t := range q.Extrema() {
		b.add(q.Eval(t))
	}
	return b.rect()
}

// Raise elevates the quadratic to the equivalent cubic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		P0: q.P0,
		P1: q.P0.Lerp(q.P1, 2.0/3.0),
		P2: q.P2.Lerp(q.P1, 2.0/3.0),
		P3: q.P2,
	}
}

// CubicBez represents a cubic Bezier curve with control points P0, P1, P2, P3.
// P0 is the start point, P1 and P2 are control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Point
}

// Eval evaluates the curve at parameter t.
func (c CubicBez) Eval(t float64) Point {
	return BezierPoint(c.P0, c.P1, c.P2, c.P3, t)
}

// Subdivide splits the curve at t=0.5 into two halves using de Casteljau.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := c.P0.Midpoint(c.P1)
	p12 := c.P1.Midpoint(c.P2)
	p23 := c.P2.Midpoint(c.P3)
	p012 := p01.Midpoint(p12)
	p123 := p12.Midpoint(p23)
	mid := p012.Midpoint(p123)

	return CubicBez{P0: c.P0, P1: p01, P2: p012, P3: mid},
		CubicBez{P0: mid, P1: p123, P2: p23, P3: c.P3}
}

// Extrema returns the parameter values in [0, 1] where the derivative of x
// or of y vanishes, sorted. There are at most four.
func (c CubicBez) Extrema() []float64 {
	result := make([]float64, 0, 4)

	// The derivative is a quadratic in t; see the Bernstein form.
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result = append(result, solveQuadraticInUnitInterval(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)...)
	result = append(result, solveQuadraticInUnitInterval(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)

	sort.Float64s(result)
	return result
}

// BoundingBox returns the tight axis-aligned bounding box of the curve.
func (c CubicBez) BoundingBox() Rect {
	var b boundsBuilder
	b.add(c.P0, c.P3)
	for _, t := range c.Extrema() {
		b.add(c.Eval(t))
	}
	return b.rect()
}

// boundsBuilder accumulates the extent of a point set.
type boundsBuilder struct {
	min, max Point
	any      bool
}

func (b *boundsBuilder) add(pts ...Point) {
	for _, p := range pts {
		if !b.any {
			b.min, b.max, b.any = p, p, true
			continue
		}
		b.min = Pt(min(b.min.X, p.X), min(b.min.Y, p.Y))
		b.max = Pt(max(b.max.X, p.X), max(b.max.Y, p.Y))
	}
}

func (b *boundsBuilder) rect() Rect {
	if !b.any {
		return Rect{}
	}
	return Rect{X: b.min.X, Y: b.min.Y, W: b.max.X - b.min.X, H: b.max.Y - b.min.Y}
}

func (b *boundsBuilder) addRect(r Rect) {
	b.add(Pt(r.X, r.Y), Pt(r.X+r.W, r.Y+r.H))
}
