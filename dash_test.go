package sketch

import (
	"math"
	"testing"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name    string
		lengths []float64
		want    *Dash
	}{
		{"empty", nil, nil},
		{"all zero", []float64{0, 0}, nil},
		{"simple", []float64{5, 3}, &Dash{Array: []float64{5, 3}}},
		{"negative taken as absolute", []float64{-5, 3}, &Dash{Array: []float64{5, 3}}},
		{"odd", []float64{5}, &Dash{Array: []float64{5}}},
		{"zero dash", []float64{0, 4}, &Dash{Array: []float64{0, 4}}},
		{"infinite", []float64{math.Inf(1), 1}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, NewDash(tt.lengths...))
		})
	}
}

func TestDash_PatternLength(t *testing.T) {
	tests := []struct {
		dash *Dash
		want float64
	}{
		{nil, 0},
		{NewDash(5, 3), 8},
		{NewDash(5), 10},
		{NewDash(1, 2, 3), 12},
	}
	for _, tt := range tests {
		if got := tt.dash.PatternLength(); got != tt.want {
			t.Errorf("%v.PatternLength() = %v, want %v", tt.dash, got, tt.want)
		}
	}
}

func TestDash_NormalizedOffset(t *testing.T) {
	d := NewDash(5, 3)
	tests := []struct {
		offset, want float64
	}{
		{0, 0},
		{3, 3},
		{8, 0},
		{19, 3},
		{-3, 5},
	}
	for _, tt := range tests {
		if got := d.WithOffset(tt.offset).NormalizedOffset(); !near(got, tt.want, 1e-12) {
			t.Errorf("offset %v normalized to %v, want %v", tt.offset, got, tt.want)
		}
	}
	if (*Dash)(nil).NormalizedOffset() != 0 || (*Dash)(nil).WithOffset(3) != nil {
		t.Error("nil dash should stay inert")
	}
}

func TestDash_Split(t *testing.T) {
	line := Polyline{Points: []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}}
	tests := []struct {
		name string
		dash *Dash
		pl   Polyline
		want []Polyline
	}{
		{
			name: "solid",
			dash: nil,
			pl:   line,
			want: []Polyline{line},
		},
		{
			name: "across a corner",
			dash: NewDash(6, 2),
			pl:   line,
			want: []Polyline{
				{Points: []Point{Pt(0, 0), Pt(6, 0)}},
				{Points: []Point{Pt(8, 0), Pt(10, 0), Pt(10, 4)}},
				{Points: []Point{Pt(10, 6), Pt(10, 10)}},
			},
		},
		{
			name: "offset starts in a gap",
			dash: NewDash(6, 2).WithOffset(7),
			pl:   line,
			want: []Polyline{
				{Points: []Point{Pt(1, 0), Pt(7, 0)}},
				{Points: []Point{Pt(9, 0), Pt(10, 0), Pt(10, 5)}},
				{Points: []Point{Pt(10, 7), Pt(10, 10)}},
			},
		},
		{
			name: "closed walks the closing edge",
			dash: NewDash(15, 5),
			pl:   Polyline{Points: []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}, Closed: true},
			want: []Polyline{
				{Points: []Point{Pt(0, 0), Pt(10, 0), Pt(10, 5)}},
				{Points: []Point{Pt(10, 10), Pt(0, 10), Pt(0, 5)}},
			},
		},
		{
			name: "dash over the start joins the first",
			dash: NewDash(10, 10).WithOffset(5),
			pl:   Polyline{Points: []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}, Closed: true},
			want: []Polyline{
				{Points: []Point{Pt(0, 5), Pt(0, 0), Pt(5, 0)}},
				{Points: []Point{Pt(10, 5), Pt(10, 10), Pt(5, 10)}},
			},
		},
		{
			name: "unbroken loop stays closed",
			dash: NewDash(50, 10),
			pl:   Polyline{Points: []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}, Closed: true},
			want: []Polyline{
				{Points: []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}, Closed: true},
			},
		},
		{
			name: "zero-length dashes",
			dash: NewDash(0, 5),
			pl:   Polyline{Points: []Point{Pt(0, 0), Pt(12, 0)}},
			want: []Polyline{
				{Points: []Point{Pt(0, 0), Pt(0, 0)}},
				{Points: []Point{Pt(5, 0), Pt(5, 0)}},
				{Points: []Point{Pt(10, 0), Pt(10, 0)}},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, tt.dash.Split(tt.pl), approx)
		})
	}
}

func TestDash_Clone(t *testing.T) {
	d := NewDash(1, 2).WithOffset(3)
	c := d.Clone()
	diff(t, d, c)
	c.Array[0] = 7
	if d.Array[0] != 1 {
		t.Error("Clone shares the array")
	}
	if (*Dash)(nil).Clone() != nil {
		t.Error("nil Clone should be nil")
	}
}
