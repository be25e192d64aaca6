package sketch

// Recorder is a Drawer that keeps every painted path instead of rendering
// it. It is useful for tests and for exporting geometry to another backend.
type Recorder struct {
	current *Path
	strokes []*Path
	fills   []*Path
}

// Ensure Recorder implements Drawer
var _ Drawer = (*Recorder)(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{current: NewPath()}
}

func (r *Recorder) MoveTo(x, y float64) { r.current.MoveTo(x, y) }
func (r *Recorder) LineTo(x, y float64) { r.current.LineTo(x, y) }
func (r *Recorder) ClosePath()          { r.current.Close() }

func (r *Recorder) QuadraticTo(cx, cy, x, y float64) {
	r.current.QuadraticTo(cx, cy, x, y)
}

func (r *Recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.current.CubicTo(c1x, c1y, c2x, c2y, x, y)
}

func (r *Recorder) Arc(cx, cy, r0, angle1, angle2 float64) {
	r.current.Arc(cx, cy, r0, angle1, angle2)
}

// Stroke records the current path as stroked and starts a new one.
func (r *Recorder) Stroke() error {
	r.strokes = append(r.strokes, r.current)
	r.current = NewPath()
	return nil
}

// Fill records the current path as filled and starts a new one.
func (r *Recorder) Fill() error {
	r.fills = append(r.fills, r.current)
	r.current = NewPath()
	return nil
}

// Strokes returns the stroked paths in order.
func (r *Recorder) Strokes() []*Path { return r.strokes }

// Fills returns the filled paths in order.
func (r *Recorder) Fills() []*Path { return r.fills }
