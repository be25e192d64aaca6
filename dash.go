package sketch

import (
	"math"

	"honnef.co/go/curve"
)

// Dash defines a dash pattern for stroking.
// A dash pattern consists of alternating dash and gap lengths.
// For example, [5, 3] creates a pattern of 5 units dash, 3 units gap.
type Dash struct {
	// Array contains alternating dash/gap lengths.
	// An odd-length array is repeated to make it even ([5] means [5, 5]).
	Array []float64

	// Offset is the distance into the pattern at which the stroke starts.
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are taken as their absolute value.
//
// Examples:
//
//	NewDash(5, 3)        // 5 units dash, 3 units gap
//	NewDash(10, 5, 2, 5) // 10 dash, 5 gap, 2 dash, 5 gap
//	NewDash(5)           // equivalent to [5, 5]
//
// Returns nil if no lengths are provided or all lengths are zero.
func NewDash(lengths ...float64) *Dash {
	normalized := make([]float64, len(lengths))
	var total float64
	for i, l := range lengths {
		normalized[i] = math.Abs(l)
		total += normalized[i]
	}
	if total == 0 || !isFinite(total) {
		return nil
	}
	return &Dash{Array: normalized}
}

// WithOffset returns a new Dash with the given offset.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the total length of one complete pattern cycle.
// For odd-length arrays, this includes the repeat.
func (d *Dash) PatternLength() float64 {
	var total float64
	for _, l := range d.effectiveArray() {
		total += l
	}
	return total
}

// IsDashed returns true if this represents a dashed line (not solid).
func (d *Dash) IsDashed() bool {
	return d.PatternLength() > 0
}

// Clone creates a deep copy of the Dash.
func (d *Dash) Clone() *Dash {
	if d == nil {
		return nil
	}
	return &Dash{
		Array:  append([]float64(nil), d.Array...),
		Offset: d.Offset,
	}
}

// NormalizedOffset returns the offset reduced into [0, PatternLength).
func (d *Dash) NormalizedOffset() float64 {
	patternLen := d.PatternLength()
	if patternLen <= 0 {
		return 0
	}
	offset := math.Mod(d.Offset, patternLen)
	if offset < 0 {
		offset += patternLen
	}
	return offset
}

// Split cuts a flattened subpath into the polylines of its dashes. A closed
// subpath is walked around its closing edge too, and a dash running over the
// start joins the first one. Dashes are open unless one dash covers the whole
// closed subpath. A zero-length dash yields a polyline of two equal points.
//
// A nil or solid Dash returns the subpath unchanged.
func (d *Dash) Split(pl Polyline) []Polyline {
	if !d.IsDashed() || len(pl.Points) == 0 {
		return []Polyline{pl}
	}

	src := func(yield func(curve.PathElement) bool) {
		if !yield(curve.MoveTo(curvePt(pl.Points[0]))) {
			return
		}
		for _, p := range pl.Points[1:] {
			if !yield(curve.LineTo(curvePt(p))) {
				return
			}
		}
		if pl.Closed {
			yield(curve.ClosePath())
		}
	}

	var out []Polyline
	for el := range curve.Dash(src, d.NormalizedOffset(), d.Array) {
		switch el.Kind {
		case curve.MoveToKind:
			out = append(out, Polyline{Points: []Point{Pt(el.P0.X, el.P0.Y)}})
		case curve.LineToKind:
			last := &out[len(out)-1]
			last.Points = append(last.Points, Pt(el.P0.X, el.P0.Y))
		case curve.ClosePathKind:
			out[len(out)-1].Closed = true
		}
	}
	for i := range out {
		pts := out[i].Points
		for out[i].Closed && len(pts) > 1 && Dist(pts[0], pts[len(pts)-1]) < 1e-9 {
			pts = pts[:len(pts)-1]
		}
		out[i].Points = pts
	}

	// The dash that starts the walk is emitted last.
	if len(out) > 1 && d.startsOn() {
		out = append(out[len(out)-1:], out[:len(out)-1]...)
	}
	return out
}

// startsOn reports whether the walk begins inside a dash rather than a gap.
func (d *Dash) startsOn() bool {
	on, i := true, 0
	for left := d.Array[0] - d.NormalizedOffset(); left < 0; {
		i = (i + 1) % len(d.Array)
		left += d.Array[i]
		on = !on
	}
	return on
}

func curvePt(p Point) curve.Point {
	return curve.Pt(p.X, p.Y)
}

// effectiveArray returns the array with odd-length arrays duplicated.
func (d *Dash) effectiveArray() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	result := make([]float64, len(d.Array)*2)
	copy(result, d.Array)
	copy(result[len(d.Array):], d.Array)
	return result
}
