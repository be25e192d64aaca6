package stroke

import (
	"iter"
	"math"

	"honnef.co/go/curve"

	"github.com/gogpu/sketch"
)

// DefaultTolerance is the outline accuracy used unless SetTolerance is called.
const DefaultTolerance = 0.25

// dotEpsilon is how far apart the points of a subpath may be for it to
// still count as zero length. Dashing leaves rounding residue of this order.
const dotEpsilon = 1e-9

// Expander turns stroked paths into fill outlines for one stroke style.
type Expander struct {
	style     sketch.Stroke
	tolerance float64
}

// NewExpander creates an expander for style. The style is copied.
func NewExpander(style sketch.Stroke) *Expander {
	return &Expander{
		style:     style.Clone(),
		tolerance: DefaultTolerance,
	}
}

// SetTolerance sets the maximum distance between the exact offset curves and
// the outline. Non-positive values are ignored.
func (e *Expander) SetTolerance(tolerance float64) {
	if tolerance > 0 {
		e.tolerance = tolerance
	}
}

// Tolerance returns the current outline accuracy.
func (e *Expander) Tolerance() float64 {
	return e.tolerance
}

// Expand returns the outline of p stroked with the expander's style. The
// result is meant to be filled with the nonzero rule. A non-positive width
// yields an empty path.
func (e *Expander) Expand(p *sketch.Path) *sketch.Path {
	out := sketch.NewPath()
	if p == nil || e.style.Width <= 0 {
		return out
	}

	src := Elements(p)
	if e.style.IsDashed() {
		src = curve.Dash(src, e.style.Dash.NormalizedOffset(), dashPattern(e.style.Dash))
	}

	var dots []curve.Point
	lines := skipDots(src, func(pt curve.Point) { dots = append(dots, pt) })
	appendElements(out, curve.StrokePath(lines, curveStyle(e.style), curve.StrokeOpts{}, e.tolerance))

	hw := e.style.Width / 2
	for _, pt := range dots {
		switch e.style.Cap {
		case sketch.LineCapRound:
			appendElements(out, curve.Circle{Center: pt, Radius: hw}.PathElements(e.tolerance))
		case sketch.LineCapSquare:
			appendElements(out, curve.Rect{X0: pt.X - hw, Y0: pt.Y - hw, X1: pt.X + hw, Y1: pt.Y + hw}.PathElements(e.tolerance))
		}
	}

	sketch.Logger().Debug("stroke: expanded",
		"width", e.style.Width, "dashed", e.style.IsDashed(), "dots", len(dots))
	return out
}

// Elements returns the path as a sequence of curve elements. Every subpath
// starts with a move, including one that continues after a close.
func Elements(p *sketch.Path) iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		var start curve.Point
		closed := false
		for _, elem := range p.Elements() {
			if _, ok := elem.(sketch.MoveTo); !ok && closed {
				if _, isClose := elem.(sketch.Close); !isClose {
					if !yield(curve.MoveTo(start)) {
						return
					}
				}
			}
			closed = false

			var el curve.PathElement
			switch e := elem.(type) {
			case sketch.MoveTo:
				start = pt(e.Point)
				el = curve.MoveTo(start)
			case sketch.LineTo:
				el = curve.LineTo(pt(e.Point))
			case sketch.QuadTo:
				el = curve.QuadTo(pt(e.Control), pt(e.Point))
			case sketch.CubicTo:
				el = curve.CubicTo(pt(e.Control1), pt(e.Control2), pt(e.Point))
			case sketch.Close:
				el = curve.ClosePath()
				closed = true
			default:
				continue
			}
			if !yield(el) {
				return
			}
		}
	}
}

// skipDots passes the subpaths of seq through except those of zero length,
// whose location is handed to dot instead. A bare move is dropped silently.
func skipDots(seq iter.Seq[curve.PathElement], dot func(curve.Point)) iter.Seq[curve.PathElement] {
	return func(yield func(curve.PathElement) bool) {
		var buf []curve.PathElement
		var start curve.Point
		degenerate := true
		at := func(pts ...curve.Point) bool {
			for _, p := range pts {
				if math.Abs(p.X-start.X) > dotEpsilon || math.Abs(p.Y-start.Y) > dotEpsilon {
					return false
				}
			}
			return true
		}

		flush := func() bool {
			defer func() {
				buf = buf[:0]
				degenerate = true
			}()
			if len(buf) < 2 {
				return true
			}
			if degenerate {
				dot(start)
				return true
			}
			for _, el := range buf {
				if !yield(el) {
					return false
				}
			}
			return true
		}

		afterClose := false
		for el := range seq {
			if afterClose && el.Kind == curve.LineToKind && at(el.P0) {
				// The dasher can trail a closed dash with a line back to its start.
				continue
			}
			afterClose = el.Kind == curve.ClosePathKind

			switch el.Kind {
			case curve.MoveToKind:
				if !flush() {
					return
				}
				start = el.P0
			case curve.LineToKind:
				degenerate = degenerate && at(el.P0)
			case curve.QuadToKind:
				degenerate = degenerate && at(el.P0, el.P1)
			case curve.CubicToKind:
				degenerate = degenerate && at(el.P0, el.P1, el.P2)
			}
			buf = append(buf, el)
		}
		flush()
	}
}

func appendElements(dst *sketch.Path, seq iter.Seq[curve.PathElement]) {
	for el := range seq {
		switch el.Kind {
		case curve.MoveToKind:
			dst.MoveTo(el.P0.X, el.P0.Y)
		case curve.LineToKind:
			dst.LineTo(el.P0.X, el.P0.Y)
		case curve.QuadToKind:
			dst.QuadraticTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y)
		case curve.CubicToKind:
			dst.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		case curve.ClosePathKind:
			dst.Close()
		}
	}
}

func curveStyle(s sketch.Stroke) curve.Stroke {
	return curve.DefaultStroke.
		WithWidth(s.Width).
		WithJoin(curveJoin(s.Join)).
		WithMiterLimit(s.MiterLimit).
		WithCaps(curveCap(s.Cap))
}

func curveJoin(j sketch.LineJoin) curve.Join {
	switch j {
	case sketch.LineJoinMiter:
		return curve.MiterJoin
	case sketch.LineJoinBevel:
		return curve.BevelJoin
	default:
		return curve.RoundJoin
	}
}

func curveCap(c sketch.LineCap) curve.Cap {
	switch c {
	case sketch.LineCapRound:
		return curve.RoundCap
	case sketch.LineCapSquare:
		return curve.SquareCap
	default:
		return curve.ButtCap
	}
}

func dashPattern(d *sketch.Dash) []float64 {
	pattern := make([]float64, len(d.Array))
	for i, l := range d.Array {
		pattern[i] = math.Abs(l)
	}
	return pattern
}

func pt(p sketch.Point) curve.Point {
	return curve.Pt(p.X, p.Y)
}
