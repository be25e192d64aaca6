package scene

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/gogpu/sketch"
)

// approx compares floats and angles to within 1e-12.
var approx = cmp.Options{
	cmpopts.EquateApprox(0, 1e-12),
	cmp.Comparer(func(a, b Angle) bool { return math.Abs(float64(a-b)) <= 1e-12 }),
}

const sample = `
width: 320
height: 200
seed: 42
background: "#102030"
shapes:
  - kind: polygon
    x: 100
    y: 100
    radius: 40
    sides: 6
    rotation: 30deg
    color: gold
  - kind: fractal
    x: 0
    y: 150
    to: [320, 150]
    roughness: 0.5
    iterations: 4
  - kind: loop
    points:
      - [10, 10]
      - {x: 50, y: 10}
      - [30, 40]
    style: stroke
    line_width: 3
    opacity: 0.5
    cap: round
    dash: [4, 2]
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	want := &Scene{
		Width:      320,
		Height:     200,
		Seed:       42,
		Background: "#102030",
		Shapes: []Shape{
			{
				Kind: KindPolygon, X: 100, Y: 100, Radius: 40, Sides: 6,
				Rotation: Angle(math.Pi / 6), Color: "gold",
				Style: StyleFill, LineWidth: 1, Opacity: Fraction(1), MiterLimit: 4,
			},
			{
				Kind: KindFractal, Y: 150, To: Point{X: 320, Y: 150},
				Roughness: 0.5, Iterations: 4, Color: "black",
				Style: StyleStroke, LineWidth: 1, Opacity: Fraction(1), MiterLimit: 4,
			},
			{
				Kind:   KindLoop,
				Points: []Point{{X: 10, Y: 10}, {X: 50, Y: 10}, {X: 30, Y: 40}},
				Color:  "black", Style: StyleStroke, LineWidth: 3, Opacity: Fraction(0.5),
				Cap: sketch.LineCapRound, Dash: []float64{4, 2}, MiterLimit: 4,
			},
		},
	}
	if d := cmp.Diff(want, s, approx); d != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", d)
	}
}

func TestParse_Defaults(t *testing.T) {
	s, err := Parse([]byte("shapes:\n  - kind: circle\n    radius: 5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Width != DefaultWidth || s.Height != DefaultHeight {
		t.Errorf("size = %dx%d, want defaults", s.Width, s.Height)
	}
	if s.Background != "white" {
		t.Errorf("background = %q, want white", s.Background)
	}

	empty, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(empty): %v", err)
	}
	if len(empty.Shapes) != 0 || empty.Width != DefaultWidth {
		t.Errorf("Parse(empty) = %+v", empty)
	}
}

func TestParse_Opacity(t *testing.T) {
	s, err := Parse([]byte("shapes:\n  - kind: circle\n    radius: 5\n    opacity: 0\n  - kind: circle\n    radius: 5\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := *s.Shapes[0].Opacity; got != 0 {
		t.Errorf("explicit opacity 0 became %v", got)
	}
	if got := *s.Shapes[1].Opacity; got != 1 {
		t.Errorf("absent opacity = %v, want 1", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown kind",
			yaml:    "shapes:\n  - kind: blob\n",
			wantErr: ErrUnknownKind,
			wantMsg: "shape 0 (blob)",
		},
		{
			name:    "polygon with two sides",
			yaml:    "shapes:\n  - kind: polygon\n    radius: 4\n    sides: 2\n",
			wantErr: ErrInvalidShape,
		},
		{
			name:    "star without inner radius",
			yaml:    "shapes:\n  - kind: star\n    radius: 4\n    sides: 5\n",
			wantErr: ErrInvalidShape,
		},
		{
			name:    "curve with one point",
			yaml:    "shapes:\n  - kind: curve\n    points: [[1, 2]]\n",
			wantErr: ErrInvalidShape,
		},
		{
			name:    "dots without points or area",
			yaml:    "shapes:\n  - kind: dots\n    radius: 2\n    count: 10\n",
			wantErr: ErrInvalidShape,
		},
		{
			name:    "bad style",
			yaml:    "shapes:\n  - kind: circle\n    radius: 2\n    style: hatch\n",
			wantErr: ErrInvalidShape,
		},
		{
			name:    "bad hex colour",
			yaml:    "shapes:\n  - kind: circle\n    radius: 2\n    color: \"#12345\"\n",
			wantErr: sketch.ErrInvalidHex,
		},
		{
			name:    "bad background",
			yaml:    "background: \"#zz\"\n",
			wantErr: sketch.ErrInvalidHex,
			wantMsg: "scene background",
		},
		{
			name:    "unknown field",
			yaml:    "shapes:\n  - kind: circle\n    radius: 2\n    colour: red\n",
			wantMsg: "field colour not found",
		},
		{
			name:    "point with three coordinates",
			yaml:    "shapes:\n  - kind: curve\n    points: [[1, 2, 3], [4, 5]]\n",
			wantMsg: "point needs 2 coordinates",
		},
		{
			name:    "bad line cap",
			yaml:    "shapes:\n  - kind: curve\n    points: [[1, 2], [3, 4]]\n    cap: pointy\n",
			wantMsg: "unknown line cap",
		},
		{
			name:    "negative dash",
			yaml:    "shapes:\n  - kind: curve\n    points: [[1, 2], [3, 4]]\n    dash: [3, -1]\n",
			wantErr: ErrInvalidShape,
		},
		{
			name:    "empty dash",
			yaml:    "shapes:\n  - kind: curve\n    points: [[1, 2], [3, 4]]\n    dash: [0, 0]\n",
			wantErr: ErrInvalidShape,
		},
		{
			name:    "opacity above one",
			yaml:    "shapes:\n  - kind: circle\n    radius: 5\n    opacity: 1.5\n",
			wantErr: ErrInvalidShape,
		},
		{
			name:    "negative opacity",
			yaml:    "shapes:\n  - kind: circle\n    radius: 5\n    opacity: -0.1\n",
			wantErr: ErrInvalidShape,
		},
		{
			name:    "bad angle",
			yaml:    "shapes:\n  - kind: heart\n    w: 4\n    h: 4\n    rotation: sideways\n",
			wantMsg: "invalid angle",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse succeeded, want error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestAngle(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.5", 1.5},
		{"90deg", math.Pi / 2},
		{"0.25turn", math.Pi / 2},
		{"2rad", 2},
		{"-45deg", -math.Pi / 4},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			s, err := Parse([]byte("shapes:\n  - kind: heart\n    w: 9\n    h: 9\n    rotation: " + tt.in + "\n"))
			if err != nil {
				t.Fatal(err)
			}
			if got := s.Shapes[0].Rotation.Radians(); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("rotation = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	s, err := Parse([]byte(sample))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "[10, 10]") {
		t.Errorf("points not written as flow sequences:\n%s", buf.String())
	}

	again, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("re-parse: %v\n%s", err, buf.String())
	}
	if d := cmp.Diff(s, again, approx); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.yaml")
	if err := os.WriteFile(src, []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(src)
	if err != nil {
		t.Fatal(err)
	}
	dst := filepath.Join(dir, "out.yaml")
	if err := s.Save(dst); err != nil {
		t.Fatal(err)
	}
	again, err := Load(dst)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(s, again, approx); d != "" {
		t.Errorf("Save/Load mismatch (-want +got):\n%s", d)
	}

	if err := s.Save(filepath.Join(dir, "no-such-dir", "out.yaml")); err == nil {
		t.Error("Save into a missing directory succeeded")
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}
