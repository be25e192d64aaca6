package sketch

import "math"

// solveQuadratic finds the real roots of ax^2 + bx + c = 0 in ascending
// order. A vanishing leading coefficient degrades to the linear equation,
// and the all-zero equation reports the single root 0.
//
// Based on the scaled, cancellation-free formulation used by kurbo.
func solveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		if isFinite(root) {
			return []float64{root}
		}
		if c == 0 && b == 0 {
			return []float64{0}
		}
		return nil
	}

	arg := sc1*sc1 - 4*sc0
	var root1 float64
	switch {
	case !isFinite(arg):
		// Discriminant overflow: x^2 + sc1*x dominates.
		root1 = -sc1
	case arg < 0:
		return nil
	case arg == 0:
		return []float64{-0.5 * sc1}
	default:
		root1 = -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	}

	root2 := sc0 / root1
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		root1, root2 = root2, root1
	}
	return []float64{root1, root2}
}

// solveQuadraticInUnitInterval returns the roots of ax^2 + bx + c = 0 that
// lie in [0, 1], snapping roots within 1e-12 of either end onto it.
func solveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12
	var result []float64
	for _, r := range solveQuadratic(a, b, c) {
		if r >= -eps && r <= 1+eps {
			result = append(result, Clamp(r, 0, 1))
		}
	}
	return result
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
