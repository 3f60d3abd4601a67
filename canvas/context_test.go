package canvas_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing3d/canvas"
	"landing3d/canvas/canvastest"
)

func TestMatrixComposition(t *testing.T) {
	m := canvas.Identity().Translate(10, 20).Scale(2, 2).Rotate(math.Pi / 2)

	x, y := m.Apply(1, 0)
	assert.InDelta(t, 10, x, 1e-9)
	assert.InDelta(t, 22, y, 1e-9)
	assert.InDelta(t, 2, m.ScaleFactor(), 1e-9)
}

func TestFillRectUsesCurrentTransform(t *testing.T) {
	rec := canvastest.NewRecorder(100, 100)
	rec.Translate(5, 5)
	rec.Scale(2, 2)
	rec.FillRect(0, 0, 10, 10)

	require.Len(t, rec.Ops, 1)
	pts := rec.Ops[0].Subpaths[0].Points
	assert.Equal(t, canvas.Point{X: 5, Y: 5}, pts[0])
	assert.Equal(t, canvas.Point{X: 25, Y: 25}, pts[2])
}

func TestSaveRestore(t *testing.T) {
	rec := canvastest.NewRecorder(100, 100)
	rec.Save()
	rec.Translate(30, 0)
	rec.Restore()
	rec.Restore() // empty stack is a no-op

	assert.Equal(t, canvas.Identity(), rec.Matrix())
	assert.Zero(t, rec.Depth())
}

func TestArcIsClosedPolyline(t *testing.T) {
	rec := canvastest.NewRecorder(100, 100)
	rec.BeginPath()
	rec.Arc(50, 50, 20, 0, 2*math.Pi)
	rec.Fill()

	require.Len(t, rec.Ops, 1)
	pts := rec.Ops[0].Subpaths[0].Points
	require.GreaterOrEqual(t, len(pts), 13)
	for _, p := range pts {
		assert.InDelta(t, 20, math.Hypot(p.X-50, p.Y-50), 1e-9)
	}
	assert.InDelta(t, pts[0].X, pts[len(pts)-1].X, 1e-9)
}

func TestDegeneratePathsAreSkipped(t *testing.T) {
	rec := canvastest.NewRecorder(100, 100)
	rec.BeginPath()
	rec.MoveTo(0, 0)
	rec.LineTo(10, 0)
	rec.Fill()
	assert.Empty(t, rec.Ops)

	rec.Stroke()
	require.Len(t, rec.Ops, 1)
	assert.Equal(t, canvastest.OpStroke, rec.Ops[0].Kind)
}

func TestStrokeWidthScales(t *testing.T) {
	rec := canvastest.NewRecorder(100, 100)
	rec.Scale(3, 3)
	rec.SetLineWidth(2)
	rec.BeginPath()
	rec.MoveTo(0, 0)
	rec.LineTo(1, 1)
	rec.Stroke()

	require.Len(t, rec.Ops, 1)
	assert.InDelta(t, 6, rec.Ops[0].Width, 1e-9)
}

func TestGradients(t *testing.T) {
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.NRGBA{A: 255}

	lg := canvas.NewLinearGradient(0, 0, 0, 100, white, black)
	assert.Equal(t, white, lg.ColorAt(40, -5))
	assert.Equal(t, black, lg.ColorAt(40, 200))
	assert.Equal(t, uint8(128), lg.ColorAt(0, 50).R)

	rg := canvas.NewRadialGradient(0, 0, 0, 10, white, black)
	moved := rg.Transform(canvas.Identity().Translate(50, 50).Scale(2, 2))
	assert.Equal(t, white, moved.ColorAt(50, 50))
	assert.Equal(t, black, moved.ColorAt(70, 50))
}

func TestWithAlpha(t *testing.T) {
	c := color.NRGBA{R: 1, G: 2, B: 3, A: 255}
	assert.Equal(t, uint8(0), canvas.WithAlpha(c, -1).A)
	assert.Equal(t, uint8(255), canvas.WithAlpha(c, 4).A)
	assert.Equal(t, uint8(128), canvas.WithAlpha(c, 0.5).A)
}

func TestMatrixMultiplyAppliesRightFirst(t *testing.T) {
	move := canvas.Identity().Translate(10, 0)
	grow := canvas.Identity().Scale(3, 3)

	x, y := move.Multiply(grow).Apply(1, 1)
	assert.InDelta(t, 13, x, 1e-9)
	assert.InDelta(t, 3, y, 1e-9)

	x, y = grow.Multiply(move).Apply(1, 1)
	assert.InDelta(t, 33, x, 1e-9)
	assert.InDelta(t, 3, y, 1e-9)

	assert.Equal(t, move.Scale(3, 3), move.Multiply(grow))
	assert.InDelta(t, 1, canvas.Identity().Rotate(1.2).ScaleFactor(), 1e-9)
}
