package scene

import (
	"fmt"
	"image/color"

	"github.com/gogpu/sketch"
)

// Canvas is what a scene renders into. raster.Canvas implements it.
type Canvas interface {
	sketch.Drawer
	Clear(c color.Color)
	SetColor(c color.Color)
	SetLineWidth(w float64)
}

// StrokeStyler is implemented by canvases that support caps, joins and
// dashes. Shapes pass their full stroke style to such canvases.
type StrokeStyler interface {
	SetStroke(s sketch.Stroke)
}

// Render clears c to the scene background and draws every shape in order.
// All randomness comes from a single Random seeded with s.Seed, so the same
// scene always renders the same picture.
func (s *Scene) Render(c Canvas) error {
	return s.RenderWith(c, sketch.NewRandom(s.Seed))
}

// RenderWith is Render with a caller-supplied random source, for drawing
// several variations of one scene.
func (s *Scene) RenderWith(c Canvas, rnd *sketch.Random) error {
	bg, err := sketch.ParseColor(s.background())
	if err != nil {
		return err
	}
	c.Clear(bg)

	for i := range s.Shapes {
		sh := &s.Shapes[i]
		if err := sh.Draw(c, rnd); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, sh.Kind, err)
		}
	}
	sketch.Logger().Debug("scene: rendered", "shapes", len(s.Shapes), "seed", s.Seed)
	return nil
}

// Draw paints a single shape. Missing style, colour, opacity and line
// width take their defaults; other parameters are assumed to pass Validate.
func (sh *Shape) Draw(c Canvas, rnd *sketch.Random) error {
	n := *sh
	n.normalize()
	sh = &n

	col, err := sh.color(rnd)
	if err != nil {
		return err
	}
	c.SetColor(col)
	c.SetLineWidth(sh.LineWidth)
	if ss, ok := c.(StrokeStyler); ok {
		ss.SetStroke(sh.stroke())
	}

	switch sh.Kind {
	case KindPolygon:
		return sh.paintOutline(c, sketch.Polygon(sh.X, sh.Y, sh.Radius, sh.Sides, sh.Rotation.Radians()))
	case KindStar:
		return sh.paintOutline(c, sketch.Star(sh.X, sh.Y, sh.Inner, sh.Radius, sh.Sides, sh.Rotation.Radians()))
	case KindSplat:
		return sh.paint(c, sketch.Splat(rnd, sh.X, sh.Y, sh.Sides, sh.Radius, sh.Inner, sh.Variation))
	case KindFractal:
		pts := sketch.FractalLine(rnd, sh.X, sh.Y, sh.To.X, sh.To.Y, sh.Roughness, sh.Iterations)
		if sh.Smooth {
			return sh.paint(c, sketch.MultiCurve(pts))
		}
		return sh.paintPolyline(c, pts, false)
	case KindHeart:
		pts := sketch.Heart(sh.X, sh.Y, sh.W, sh.H, sh.Rotation.Radians())
		if sh.Smooth {
			return sh.paint(c, sketch.MultiLoop(pts))
		}
		return sh.paintPolyline(c, pts, true)
	case KindCircle:
		p := sketch.NewPath()
		p.Circle(sh.X, sh.Y, sh.Radius)
		return sh.paint(c, p)
	case KindRect:
		p := sketch.NewPath()
		if sh.Radius > 0 {
			p.RoundedRectangle(sh.X, sh.Y, sh.W, sh.H, sh.Radius)
		} else {
			p.Rectangle(sh.X, sh.Y, sh.W, sh.H)
		}
		return sh.paint(c, p)
	case KindGrid:
		p := sketch.NewPath()
		p.Grid(sh.X, sh.Y, sh.W, sh.H, sh.Spacing, sh.Spacing)
		return sketch.StrokePath(c, p)
	case KindDots:
		return sketch.DrawDots(c, sh.dotPoints(rnd), sh.Radius)
	case KindCurve:
		return sh.paint(c, sketch.MultiCurve(toPoints(sh.Points)))
	case KindLoop:
		return sh.paint(c, sketch.MultiLoop(toPoints(sh.Points)))
	case KindPolyline:
		return sh.paintPolyline(c, toPoints(sh.Points), sh.Closed)
	}
	return fmt.Errorf("%w %q", ErrUnknownKind, sh.Kind)
}

// color resolves the shape colour, drawing from rnd for the random kinds.
func (sh *Shape) color(rnd *sketch.Random) (sketch.Color, error) {
	var col sketch.Color
	switch sh.Color {
	case "random":
		col = sketch.RandomRGB(rnd)
	case "random-grey":
		col = sketch.RandomGrey(rnd)
	default:
		var err error
		if col, err = sketch.ParseColor(sh.Color); err != nil {
			return sketch.Color{}, err
		}
	}
	if sh.Opacity != nil {
		col.A *= *sh.Opacity
	}
	return col, nil
}

// stroke returns the shape's stroke style.
func (sh *Shape) stroke() sketch.Stroke {
	st := sketch.DefaultStroke().
		WithWidth(sh.LineWidth).
		WithCap(sh.Cap).
		WithJoin(sh.Join).
		WithMiterLimit(sh.MiterLimit)
	if d := sketch.NewDash(sh.Dash...); d != nil {
		st.Dash = d.WithOffset(sh.DashOffset)
	}
	return st
}

// dotPoints returns the explicit points, or Count uniform draws inside the
// shape's rectangle.
func (sh *Shape) dotPoints(rnd *sketch.Random) []sketch.Point {
	if len(sh.Points) > 0 {
		return toPoints(sh.Points)
	}
	pts := make([]sketch.Point, sh.Count)
	for i := range pts {
		pts[i] = sketch.Pt(rnd.Float(sh.X, sh.X+sh.W), rnd.Float(sh.Y, sh.Y+sh.H))
	}
	return pts
}

func (sh *Shape) paint(c Canvas, p *sketch.Path) error {
	if sh.Style == StyleStroke {
		return sketch.StrokePath(c, p)
	}
	return sketch.FillPath(c, p)
}

// paintOutline paints a generator outline whose last point repeats its
// first.
func (sh *Shape) paintOutline(c Canvas, pts []sketch.Point) error {
	return sh.paintPolyline(c, pts[:len(pts)-1], true)
}

func (sh *Shape) paintPolyline(c Canvas, pts []sketch.Point, closed bool) error {
	if sh.Style == StyleStroke {
		return sketch.StrokePoints(c, pts, closed)
	}
	return sketch.FillPoints(c, pts)
}
