// Package canvas defines a small HTML-canvas-like 2D drawing contract and the
// shared path and transform state that every backend builds on.
//
// Backends only have to rasterise device-space polygons: Base keeps the
// transform stack, the current paints and the current path, flattens arcs and
// hands finished subpaths to a Painter.
package canvas

import (
	"image/color"
	"math"
)

// Context is a full-viewport 2D drawing surface.
type Context interface {
	Size() (width, height int)
	// Resize resets the pixel dimensions of the surface, clearing it.
	Resize(width, height int)

	Save()
	Restore()
	Translate(x, y float64)
	Scale(sx, sy float64)
	Rotate(theta float64)

	SetFillPaint(p Paint)
	SetStrokePaint(p Paint)
	SetLineWidth(w float64)

	FillRect(x, y, w, h float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Arc adds a clockwise arc around (cx, cy) from angle start to end.
	Arc(cx, cy, r, start, end float64)
	ClosePath()
	Fill()
	Stroke()
}

// Subpath is a device-space polyline.
type Subpath struct {
	Points []Point
	Closed bool
}

// Painter rasterises device-space geometry for a Base.
type Painter interface {
	FillPath(subpaths []Subpath, paint Paint)
	StrokePath(subpaths []Subpath, paint Paint, width float64)
}

type state struct {
	matrix    Matrix
	fill      Paint
	stroke    Paint
	lineWidth float64
}

// Base implements every Context method except Size and Resize.
type Base struct {
	painter Painter
	state
	stack []state
	path  []Subpath
}

// Init resets the drawing state and attaches the backend painter.
func (b *Base) Init(p Painter) {
	b.painter = p
	b.Reset()
}

// Reset restores the default drawing state, as resizing a canvas does.
func (b *Base) Reset() {
	b.state = state{
		matrix:    Identity(),
		fill:      Solid(color.NRGBA{A: 255}),
		stroke:    Solid(color.NRGBA{A: 255}),
		lineWidth: 1,
	}
	b.stack = b.stack[:0]
	b.path = nil
}

// Matrix returns the current transform.
func (b *Base) Matrix() Matrix { return b.matrix }

// Depth returns the number of saved states.
func (b *Base) Depth() int { return len(b.stack) }

func (b *Base) Save() {
	b.stack = append(b.stack, b.state)
}

func (b *Base) Restore() {
	if len(b.stack) == 0 {
		return
	}
	b.state = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
}

func (b *Base) Translate(x, y float64) { b.matrix = b.matrix.Translate(x, y) }

func (b *Base) Scale(sx, sy float64) { b.matrix = b.matrix.Scale(sx, sy) }

func (b *Base) Rotate(theta float64) { b.matrix = b.matrix.Rotate(theta) }

func (b *Base) SetFillPaint(p Paint) {
	if p != nil {
		b.fill = p
	}
}

func (b *Base) SetStrokePaint(p Paint) {
	if p != nil {
		b.stroke = p
	}
}

func (b *Base) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 0) && !math.IsNaN(w) {
		b.lineWidth = w
	}
}

func (b *Base) FillRect(x, y, w, h float64) {
	rect := Subpath{
		Points: []Point{
			b.matrix.ApplyPoint(Point{X: x, Y: y}),
			b.matrix.ApplyPoint(Point{X: x + w, Y: y}),
			b.matrix.ApplyPoint(Point{X: x + w, Y: y + h}),
			b.matrix.ApplyPoint(Point{X: x, Y: y + h}),
		},
		Closed: true,
	}
	b.painter.FillPath([]Subpath{rect}, b.fill.Transform(b.matrix))
}

func (b *Base) BeginPath() {
	b.path = nil
}

func (b *Base) MoveTo(x, y float64) {
	b.moveToDevice(b.matrix.ApplyPoint(Point{X: x, Y: y}))
}

func (b *Base) LineTo(x, y float64) {
	b.lineToDevice(b.matrix.ApplyPoint(Point{X: x, Y: y}))
}

func (b *Base) ClosePath() {
	if cur := b.current(); cur != nil && len(cur.Points) > 0 {
		cur.Closed = true
	}
}

func (b *Base) Arc(cx, cy, r, start, end float64) {
	if r < 0 || math.IsNaN(r) {
		return
	}
	sweep := end - start
	switch {
	case sweep >= 2*math.Pi:
		sweep = 2 * math.Pi
	case sweep < 0:
		sweep = math.Mod(sweep, 2*math.Pi) + 2*math.Pi
	}
	segments := int(math.Ceil(sweep / (2 * math.Pi) * arcSegments(r*b.matrix.ScaleFactor())))
	if segments < 1 {
		segments = 1
	}
	for i := 0; i <= segments; i++ {
		a := start + sweep*float64(i)/float64(segments)
		p := b.matrix.ApplyPoint(Point{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
		if i == 0 {
			if cur := b.current(); cur == nil || cur.Closed {
				b.moveToDevice(p)
				continue
			}
		}
		b.lineToDevice(p)
	}
}

func (b *Base) Fill() {
	subpaths := b.collect(3)
	if len(subpaths) == 0 {
		return
	}
	b.painter.FillPath(subpaths, b.fill.Transform(b.matrix))
}

func (b *Base) Stroke() {
	subpaths := b.collect(2)
	if len(subpaths) == 0 {
		return
	}
	b.painter.StrokePath(subpaths, b.stroke.Transform(b.matrix), b.lineWidth*b.matrix.ScaleFactor())
}

func (b *Base) current() *Subpath {
	if len(b.path) == 0 {
		return nil
	}
	return &b.path[len(b.path)-1]
}

func (b *Base) moveToDevice(p Point) {
	b.path = append(b.path, Subpath{Points: []Point{p}})
}

func (b *Base) lineToDevice(p Point) {
	cur := b.current()
	switch {
	case cur == nil:
		b.moveToDevice(p)
	case cur.Closed:
		// Drawing after ClosePath continues from the closed subpath's start.
		b.path = append(b.path, Subpath{Points: []Point{cur.Points[0], p}})
	default:
		cur.Points = append(cur.Points, p)
	}
}

// collect copies out the subpaths with at least minPoints points.
func (b *Base) collect(minPoints int) []Subpath {
	out := make([]Subpath, 0, len(b.path))
	for _, sp := range b.path {
		if len(sp.Points) < minPoints {
			continue
		}
		out = append(out, Subpath{Points: append([]Point(nil), sp.Points...), Closed: sp.Closed})
	}
	return out
}

// arcSegments is the segment count for a full circle of device radius r.
func arcSegments(r float64) float64 {
	return math.Max(12, math.Min(96, r))
}
