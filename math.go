package sketch

import "math"

// Angle constants.
const (
	TwoPi  = 2 * math.Pi
	HalfPi = math.Pi / 2
)

// epsilon is the tolerance used by ApproxEqual.
const epsilon = 1e-6

// Norm maps value from the range [lo, hi] onto [0, 1].
// Values outside the range map outside [0, 1]; reversed ranges invert.
func Norm(value, lo, hi float64) float64 {
	return (value - lo) / (hi - lo)
}

// Lerp interpolates between lo and hi. t is not clamped.
func Lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*t
}

// Map converts value from the source range to the destination range.
func Map(value, srcMin, srcMax, dstMin, dstMax float64) float64 {
	return Lerp(dstMin, dstMax, Norm(value, srcMin, srcMax))
}

// Clamp restricts value to [lo, hi]. The bounds may be given in either order.
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// ApproxEqual reports whether a and b differ by less than 1e-6.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}
