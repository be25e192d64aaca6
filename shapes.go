package sketch

import "math"

// Procedural shape generators. Each builds its outline around the origin and
// then places it at (x, y), so the same parameters always produce the same
// shape regardless of position.

// Splat shape constants.
const (
	splatCurve = 0.3 // angular overshoot of the lobe control points, in slices
	splatInner = 0.8 // shoulder radius as a fraction of the lobe's range
)

// fractalOffset is the initial jitter of FractalLine relative to its length.
const fractalOffset = 0.15

// Polygon returns the vertices of a regular polygon of radius r centred on
// (x, y). The first vertex lies at angle rotation and the outline is closed
// explicitly: the result has sides+1 points, the last equal to the first.
//
// sides must be at least 3; smaller values yield degenerate outlines.
func Polygon(x, y, r float64, sides int, rotation float64) []Point {
	points := make([]Point, 0, sides+1)
	for i := 0; i < sides; i++ {
		angle := TwoPi / float64(sides) * float64(i)
		points = append(points, Polar(angle, r))
	}
	points = append(points, Pt(r, 0))
	return place(points, x, y, rotation)
}

// Star returns the outline of a star with the given number of points centred
// on (x, y). Vertices alternate between the outer radius r1 (even indices)
// and the inner radius r0 (odd indices), π/points apart. The outline is
// closed explicitly, giving 2*points+1 points.
//
// points must be at least 2.
func Star(x, y, r0, r1 float64, points int, rotation float64) []Point {
	out := make([]Point, 0, points*2+1)
	for i := 0; i < points*2; i++ {
		r := r1
		if i%2 == 1 {
			r = r0
		}
		angle := math.Pi / float64(points) * float64(i)
		out = append(out, Polar(angle, r))
	}
	out = append(out, Pt(r1, 0))
	return place(out, x, y, rotation)
}

// SplatPoints returns the control points of an organic blob around the
// origin: numNodes lobes reaching out from innerRadius, each with its own
// jittered outer radius.
//
// variation is clamped to [0, 1] and scales how far a lobe's radius may
// stray from radius, by at most radius-innerRadius either way. Exactly one
// value is drawn from rnd per lobe, in lobe order. Each lobe contributes five
// points, so the result has 5*numNodes points.
//
// numNodes must be at least 1.
func SplatPoints(rnd *Random, numNodes int, radius, innerRadius, variation float64) []Point {
	points := make([]Point, 0, numNodes*5)
	slice := TwoPi / float64(numNodes*2)
	spread := radius - innerRadius
	variation = Clamp(variation, 0, 1)

	var angle float64
	for i := 0; i < numNodes; i++ {
		r := radius + variation*(rnd.Float(0, 1)*spread*2-spread)
		lobe := r - innerRadius
		points = append(points,
			Polar(angle-slice*(1+splatCurve), innerRadius),
			Polar(angle+slice*splatCurve, innerRadius),
			Polar(angle-slice*splatCurve, innerRadius+lobe*splatInner),
			Polar(angle+slice/2, r),
			Polar(angle+slice*(1+splatCurve), innerRadius+lobe*splatInner),
		)
		angle += slice * 2
	}
	return points
}

// Splat returns a closed, smoothed organic blob centred on (x, y). It is
// SplatPoints passed through MultiLoop.
func Splat(rnd *Random, x, y float64, numNodes int, radius, innerRadius, variation float64) *Path {
	points := SplatPoints(rnd, numNodes, radius, innerRadius, variation)
	path := MultiLoop(place(points, x, y, 0))
	Logger().Debug("splat", "nodes", numNodes, "points", len(points))
	return path
}

// FractalLine returns a jagged line from (x1, y1) to (x2, y2) built by
// midpoint displacement.
//
// Each of the iterations rounds inserts, between every pair of neighbouring
// points, their midpoint moved by a uniform offset in [-offset, offset] on
// each axis (x drawn before y). offset starts at 0.15 times the line's
// length and is multiplied by roughness after every round. Values of
// roughness below 1 settle into smooth undulation; 1 and above grow into
// noise. The result has 2^iterations + 1 points.
func FractalLine(rnd *Random, x1, y1, x2, y2, roughness float64, iterations int) []Point {
	path := []Point{Pt(x1, y1), Pt(x2, y2)}
	offset := Dist(path[0], path[1]) * fractalOffset

	for i := 0; i < iterations; i++ {
		next := make([]Point, 0, len(path)*2-1)
		for j := 0; j < len(path)-1; j++ {
			p0, p1 := path[j], path[j+1]
			mid := p0.Midpoint(p1)
			dx := rnd.Float(0, 1)*offset*2 - offset
			dy := rnd.Float(0, 1)*offset*2 - offset
			next = append(next, p0, mid.Translate(dx, dy))
		}
		next = append(next, path[len(path)-1])
		offset *= roughness
		path = next
	}
	return path
}

// Heart returns a heart outline of width scale w and height scale h centred
// on (x, y), point up, turned by rotation.
//
// The curve x = w·sin³a, y = h·(0.8125·cos a − 0.3125·cos 2a − 0.125·cos 3a
// − 0.0625·cos 4a) is sampled at floor(sqrt(w·h)) evenly spaced angles. The
// outline is not closed explicitly; close it when drawing. For w·h < 9 the
// sample count drops below 3 and the outline is degenerate.
func Heart(x, y, w, h, rotation float64) []Point {
	res := int(math.Sqrt(w * h))
	points := make([]Point, 0, max(res, 0))
	for i := 0; i < res; i++ {
		a := TwoPi * float64(i) / float64(res)
		px := w * math.Pow(math.Sin(a), 3)
		py := h * (0.8125*math.Cos(a) -
			0.3125*math.Cos(2*a) -
			0.125*math.Cos(3*a) -
			0.0625*math.Cos(4*a))
		points = append(points, Pt(px, -py))
	}
	return place(points, x, y, rotation)
}

// place rotates local-origin points about the origin and moves them to
// (x, y), in place.
func place(points []Point, x, y, rotation float64) []Point {
	m := Translate(x, y).Multiply(Rotate(rotation))
	for i, p := range points {
		points[i] = m.TransformPoint(p)
	}
	return points
}
