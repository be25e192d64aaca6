package sketch

// Rect represents an axis-aligned rectangle with its top-left corner at
// (X, Y).
type Rect struct {
	X, Y, W, H float64
}

// ContainsPoint reports whether p is inside the rectangle.
// All four edges count as inside.
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.Y >= r.Y && p.X <= r.X+r.W && p.Y <= r.Y+r.H
}

// Union returns the smallest rectangle containing both r and o. An empty
// (zero) rectangle is treated as absent.
func (r Rect) Union(o Rect) Rect {
	if r == (Rect{}) {
		return o
	}
	if o == (Rect{}) {
		return r
	}
	var b boundsBuilder
	b.addRect(r)
	b.addRect(o)
	return b.rect()
}
