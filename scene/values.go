package scene

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/sketch"
)

// Angle is a rotation in radians. In YAML it is either a bare number of
// radians or a string with a "deg" or "turn" suffix, such as "45deg".
type Angle float64

// UnmarshalYAML implements yaml.Unmarshaler for Angle.
func (a *Angle) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}

	unit := 1.0
	switch {
	case strings.HasSuffix(s, "deg"):
		s, unit = strings.TrimSuffix(s, "deg"), math.Pi/180
	case strings.HasSuffix(s, "turn"):
		s, unit = strings.TrimSuffix(s, "turn"), sketch.TwoPi
	case strings.HasSuffix(s, "rad"):
		s = strings.TrimSuffix(s, "rad")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fmt.Errorf("invalid angle %q: %w", value.Value, err)
	}
	*a = Angle(v * unit)
	return nil
}

// Radians returns the angle as a float64.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Point is a sketch.Point that reads from YAML as either a two-element
// sequence ([x, y]) or a mapping ({x: .., y: ..}).
type Point sketch.Point

// UnmarshalYAML implements yaml.Unmarshaler for Point.
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := value.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: point needs 2 coordinates, got %d", value.Line, len(xy))
		}
		*p = Point{X: xy[0], Y: xy[1]}
		return nil
	case yaml.MappingNode:
		var xy struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
		}
		if err := value.Decode(&xy); err != nil {
			return err
		}
		*p = Point{X: xy.X, Y: xy.Y}
		return nil
	default:
		return fmt.Errorf("line %d: point must be [x, y] or {x, y}", value.Line)
	}
}

// MarshalYAML writes the point as a flow sequence.
func (p Point) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []float64{p.X, p.Y} {
		n.Content = append(n.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Value: strconv.FormatFloat(v, 'g', -1, 64),
		})
	}
	return n, nil
}

func toPoints(ps []Point) []sketch.Point {
	out := make([]sketch.Point, len(ps))
	for i, p := range ps {
		out[i] = sketch.Point(p)
	}
	return out
}
