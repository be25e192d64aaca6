package sketch

import "fmt"

// LineCap specifies the shape of the ends of open subpaths.
type LineCap int

const (
	// LineCapButt ends the stroke flat at the endpoint.
	LineCapButt LineCap = iota
	// LineCapRound ends the stroke with a half disc.
	LineCapRound
	// LineCapSquare extends the stroke by half its width past the endpoint.
	LineCapSquare
)

var lineCapNames = [...]string{"butt", "round", "square"}

func (c LineCap) String() string {
	if c >= 0 && int(c) < len(lineCapNames) {
		return lineCapNames[c]
	}
	return fmt.Sprintf("LineCap(%d)", int(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c LineCap) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *LineCap) UnmarshalText(text []byte) error {
	for i, name := range lineCapNames {
		if string(text) == name {
			*c = LineCap(i)
			return nil
		}
	}
	return fmt.Errorf("unknown line cap %q", text)
}

// LineJoin specifies the shape where two segments of a stroke meet.
type LineJoin int

const (
	// LineJoinRound fills the corner with a disc.
	LineJoinRound LineJoin = iota
	// LineJoinMiter extends the outer edges until they meet, falling back
	// to a bevel beyond the miter limit.
	LineJoinMiter
	// LineJoinBevel cuts the corner off with a straight edge.
	LineJoinBevel
)

var lineJoinNames = [...]string{"round", "miter", "bevel"}

func (j LineJoin) String() string {
	if j >= 0 && int(j) < len(lineJoinNames) {
		return lineJoinNames[j]
	}
	return fmt.Sprintf("LineJoin(%d)", int(j))
}

// MarshalText implements encoding.TextMarshaler.
func (j LineJoin) MarshalText() ([]byte, error) {
	return []byte(j.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *LineJoin) UnmarshalText(text []byte) error {
	for i, name := range lineJoinNames {
		if string(text) == name {
			*j = LineJoin(i)
			return nil
		}
	}
	return fmt.Errorf("unknown line join %q", text)
}

// Stroke defines the style for stroking paths.
type Stroke struct {
	// Width is the line width in pixels. Default: 1.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinRound
	Join LineJoin

	// MiterLimit is the ratio of miter length to line width above which a
	// miter join becomes a bevel. Default: 4.0
	MiterLimit float64

	// Dash is the dash pattern for the stroke.
	// nil means a solid line.
	Dash *Dash
}

// DefaultStroke returns a solid 1-pixel stroke with butt caps and round
// joins.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinRound,
		MiterLimit: 4.0,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
// A value of 1.0 effectively disables miter joins.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// WithDash returns a copy of the Stroke with the given dash pattern.
// Pass nil to return to solid lines.
func (s Stroke) WithDash(dash *Dash) Stroke {
	s.Dash = dash.Clone()
	return s
}

// WithDashPattern returns a copy of the Stroke with a dash pattern
// created from the given lengths.
//
// Example:
//
//	stroke.WithDashPattern(5, 3) // 5 units dash, 3 units gap
func (s Stroke) WithDashPattern(lengths ...float64) Stroke {
	s.Dash = NewDash(lengths...)
	return s
}

// IsDashed returns true if this stroke has a dash pattern.
func (s Stroke) IsDashed() bool {
	return s.Dash.IsDashed()
}

// Clone creates a deep copy of the Stroke.
func (s Stroke) Clone() Stroke {
	s.Dash = s.Dash.Clone()
	return s
}

// DottedStroke returns a round-capped stroke of the given width whose
// dashes have zero length, so that each one renders as a dot.
func DottedStroke(width float64) Stroke {
	return DefaultStroke().
		WithWidth(width).
		WithCap(LineCapRound).
		WithDashPattern(0, 2*width)
}
