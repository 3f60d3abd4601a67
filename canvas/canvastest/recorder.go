// Package canvastest provides a canvas.Context that records painted geometry.
package canvastest

import "landing3d/canvas"

// OpKind tells fills from strokes.
type OpKind int

const (
	OpFill OpKind = iota
	OpStroke
)

// Op is one recorded painter call in device space.
type Op struct {
	Kind     OpKind
	Subpaths []canvas.Subpath
	Paint    canvas.Paint
	Width    float64
}

// Recorder is a canvas.Context that keeps every painter call.
type Recorder struct {
	canvas.Base
	Ops     []Op
	Resizes int

	width, height int
}

// NewRecorder returns an empty recorder sized width x height.
func NewRecorder(width, height int) *Recorder {
	r := &Recorder{width: width, height: height}
	r.Base.Init(r)
	return r
}

func (r *Recorder) Size() (int, int) { return r.width, r.height }

func (r *Recorder) Resize(width, height int) {
	r.width, r.height = width, height
	r.Resizes++
	r.Base.Reset()
}

func (r *Recorder) FillPath(subpaths []canvas.Subpath, paint canvas.Paint) {
	r.Ops = append(r.Ops, Op{Kind: OpFill, Subpaths: subpaths, Paint: paint})
}

func (r *Recorder) StrokePath(subpaths []canvas.Subpath, paint canvas.Paint, width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStroke, Subpaths: subpaths, Paint: paint, Width: width})
}

// Clear forgets recorded ops.
func (r *Recorder) Clear() {
	r.Ops = r.Ops[:0]
}

// Count returns the number of recorded ops of kind k.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}
