// Package scene describes sketches as data. A Scene is a canvas size, a
// seed and a list of shapes; Render draws it through any canvas that
// implements sketch.Drawer plus colour and line width setters.
//
// Scenes are usually read from YAML:
//
//	width: 600
//	height: 400
//	seed: 7
//	background: "#1b1b1e"
//	shapes:
//	  - kind: splat
//	    x: 300
//	    y: 200
//	    radius: 120
//	    inner: 60
//	    sides: 9
//	    variation: 0.5
//	    color: hotpink
//	  - kind: fractal
//	    x: 20
//	    y: 380
//	    to: [580, 380]
//	    roughness: 0.6
//	    iterations: 7
//	    color: white
//	    line_width: 2
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
)

// Default canvas size for scenes that leave it out.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

var (
	// ErrUnknownKind is returned for a shape whose kind is not recognised.
	ErrUnknownKind = errors.New("scene: unknown shape kind")

	// ErrInvalidShape is returned for a shape whose parameters cannot
	// produce a drawing, such as a polygon with two sides.
	ErrInvalidShape = errors.New("scene: invalid shape")
)

// Kind names a shape generator.
type Kind string

// Shape kinds.
const (
	KindPolygon  Kind = "polygon"
	KindStar     Kind = "star"
	KindSplat    Kind = "splat"
	KindFractal  Kind = "fractal"
	KindHeart    Kind = "heart"
	KindCircle   Kind = "circle"
	KindRect     Kind = "rect"
	KindGrid     Kind = "grid"
	KindDots     Kind = "dots"
	KindCurve    Kind = "curve"
	KindLoop     Kind = "loop"
	KindPolyline Kind = "polyline"
)

// Style selects how a shape is painted.
type Style string

const (
	StyleFill   Style = "fill"
	StyleStroke Style = "stroke"
)

// Scene is a complete sketch description.
type Scene struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Seed       uint64  `yaml:"seed"`
	Background string  `yaml:"background"`
	Shapes     []Shape `yaml:"shapes"`
}

// Shape is one drawing instruction. Which fields matter depends on Kind:
//
//	polygon   x, y, radius, sides, rotation
//	star      x, y, radius (outer), inner, sides (points), rotation
//	splat     x, y, radius, inner, sides (lobes), variation
//	fractal   x, y, to, roughness, iterations, smooth
//	heart     x, y, w, h, rotation, smooth
//	circle    x, y, radius
//	rect      x, y, w, h, radius (corner)
//	grid      x, y, w, h, spacing
//	dots      points, or count random points in x, y, w, h; radius
//	curve     points (open smooth curve)
//	loop      points (closed smooth curve)
//	polyline  points, closed
//
// Stroked shapes also honour cap, join, miter_limit, dash and dash_offset.
type Shape struct {
	Kind       Kind    `yaml:"kind"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	To         Point   `yaml:"to,omitempty"`
	W          float64 `yaml:"w,omitempty"`
	H          float64 `yaml:"h,omitempty"`
	Radius     float64 `yaml:"radius,omitempty"`
	Inner      float64 `yaml:"inner,omitempty"`
	Sides      int     `yaml:"sides,omitempty"`
	Rotation   Angle   `yaml:"rotation,omitempty"`
	Variation  float64 `yaml:"variation,omitempty"`
	Roughness  float64 `yaml:"roughness,omitempty"`
	Iterations int     `yaml:"iterations,omitempty"`
	Spacing    float64 `yaml:"spacing,omitempty"`
	Count      int     `yaml:"count,omitempty"`
	Points     []Point `yaml:"points,omitempty,flow"`
	Closed     bool    `yaml:"closed,omitempty"`
	Smooth     bool    `yaml:"smooth,omitempty"`

	// Color is a hex string, a CSS colour name, "random" or "random-grey".
	Color string `yaml:"color,omitempty"`
	// Opacity in [0, 1]; absent means opaque.
	Opacity   *float64 `yaml:"opacity,omitempty"`
	Style     Style    `yaml:"style,omitempty"`
	LineWidth float64  `yaml:"line_width,omitempty"`

	// Stroke styling. Canvases without StrokeStyler support ignore these.
	Cap        sketch.LineCap  `yaml:"cap,omitempty"`
	Join       sketch.LineJoin `yaml:"join,omitempty"`
	MiterLimit float64         `yaml:"miter_limit,omitempty"`
	Dash       []float64       `yaml:"dash,omitempty,flow"`
	DashOffset float64         `yaml:"dash_offset,omitempty"`
}

// Load reads a scene from a YAML file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene from YAML, fills in defaults and validates it.
// Unknown fields are rejected.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	s.normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Encode writes the scene as YAML.
func (s *Scene) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close scene encoder: %w", err)
	}
	return nil
}

// Save writes the scene to a YAML file.
func (s *Scene) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close scene file: %w", cerr)
		}
	}()
	return s.Encode(f)
}

// Fraction returns a pointer to v, for optional fields such as
// Shape.Opacity.
func Fraction(v float64) *float64 {
	return &v
}

func (s *Scene) normalize() {
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	s.Background = s.background()
	for i := range s.Shapes {
		s.Shapes[i].normalize()
	}
}

func (s *Scene) background() string {
	if s.Background == "" {
		return "white"
	}
	return s.Background
}

func (sh *Shape) normalize() {
	if sh.Style == "" {
		sh.Style = StyleFill
		switch sh.Kind {
		case KindFractal, KindGrid, KindCurve, KindPolyline:
			sh.Style = StyleStroke
		}
	}
	if sh.LineWidth <= 0 {
		sh.LineWidth = 1
	}
	if sh.Opacity == nil {
		sh.Opacity = Fraction(1)
	}
	if sh.Color == "" {
		sh.Color = "black"
	}
	if sh.MiterLimit <= 0 {
		sh.MiterLimit = sketch.DefaultStroke().MiterLimit
	}
}

// Validate reports the first shape that cannot be drawn. Unknown colour
// names are not an error: they are drawn black, and a warning is logged.
func (s *Scene) Validate() error {
	if _, err := sketch.ParseColor(s.background()); err != nil {
		return fmt.Errorf("scene background: %w", err)
	}
	for i := range s.Shapes {
		if err := s.Shapes[i].validate(); err != nil {
			return fmt.Errorf("shape %d (%s): %w", i, s.Shapes[i].Kind, err)
		}
	}
	return nil
}

func (sh *Shape) validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidShape, fmt.Sprintf(format, args...))
	}

	switch sh.Style {
	case "", StyleFill, StyleStroke:
	default:
		return invalid("style %q is neither fill nor stroke", sh.Style)
	}

	if o := sh.Opacity; o != nil && !(*o >= 0 && *o <= 1) {
		return invalid("opacity %v outside [0, 1]", *o)
	}

	for _, l := range sh.Dash {
		if l < 0 {
			return invalid("negative dash length %v", l)
		}
	}
	if len(sh.Dash) > 0 && sketch.NewDash(sh.Dash...) == nil {
		return invalid("dash pattern has no length")
	}

	switch sh.Color {
	case "", "random", "random-grey":
	default:
		if _, err := sketch.ParseColor(sh.Color); err != nil {
			return err
		}
		if sh.Color[0] != '#' {
			if _, ok := sketch.LookupName(sh.Color); !ok {
				sketch.Logger().Warn("scene: unknown colour name, using black", "name", sh.Color)
			}
		}
	}

	switch sh.Kind {
	case KindPolygon:
		if sh.Sides < 3 {
			return invalid("polygon needs at least 3 sides, got %d", sh.Sides)
		}
		if sh.Radius <= 0 {
			return invalid("radius must be positive")
		}
	case KindStar:
		if sh.Sides < 2 {
			return invalid("star needs at least 2 points, got %d", sh.Sides)
		}
		if sh.Radius <= 0 || sh.Inner <= 0 {
			return invalid("star radii must be positive")
		}
	case KindSplat:
		if sh.Sides < 1 {
			return invalid("splat needs at least 1 lobe, got %d", sh.Sides)
		}
		if sh.Radius <= 0 || sh.Inner < 0 {
			return invalid("splat radius must be positive")
		}
	case KindFractal:
		if sh.Iterations < 0 {
			return invalid("negative iterations")
		}
	case KindHeart, KindRect:
		if sh.W <= 0 || sh.H <= 0 {
			return invalid("w and h must be positive")
		}
		if sh.Kind == KindHeart && sh.Smooth && sh.W*sh.H < 4 {
			return invalid("heart too small to smooth")
		}
	case KindCircle:
		if sh.Radius <= 0 {
			return invalid("radius must be positive")
		}
	case KindGrid:
		if sh.W <= 0 || sh.H <= 0 || sh.Spacing <= 0 {
			return invalid("w, h and spacing must be positive")
		}
	case KindDots:
		if sh.Radius <= 0 {
			return invalid("dot radius must be positive")
		}
		if len(sh.Points) == 0 && (sh.Count <= 0 || sh.W <= 0 || sh.H <= 0) {
			return invalid("dots need points, or a count and an area")
		}
	case KindCurve, KindLoop:
		if len(sh.Points) < 2 {
			return invalid("%s needs at least 2 points, got %d", sh.Kind, len(sh.Points))
		}
	case KindPolyline:
		if len(sh.Points) < 2 {
			return invalid("polyline needs at least 2 points, got %d", len(sh.Points))
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, sh.Kind)
	}
	return nil
}
