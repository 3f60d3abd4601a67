package raster

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing3d/canvas"
)

func rgbaAt(s *Surface, x, y int) color.RGBA {
	return s.Image().RGBAAt(x, y)
}

func TestFillRectSolid(t *testing.T) {
	s := New(40, 30)
	s.SetFillPaint(canvas.Solid(color.NRGBA{R: 200, G: 10, B: 20, A: 255}))
	s.FillRect(0, 0, 40, 30)

	assert.Equal(t, color.RGBA{R: 200, G: 10, B: 20, A: 255}, rgbaAt(s, 20, 15))
	assert.Equal(t, color.RGBA{R: 200, G: 10, B: 20, A: 255}, rgbaAt(s, 1, 28))
}

func TestFillRectLinearGradient(t *testing.T) {
	s := New(10, 100)
	top := color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	bottom := color.NRGBA{R: 10, G: 10, B: 10, A: 255}
	s.SetFillPaint(canvas.NewLinearGradient(0, 0, 0, 100, top, bottom))
	s.FillRect(0, 0, 10, 100)

	upper := rgbaAt(s, 5, 1)
	lower := rgbaAt(s, 5, 98)
	assert.Greater(t, upper.R, uint8(240))
	assert.Less(t, lower.R, uint8(20))
	assert.Equal(t, uint8(255), upper.A)
}

func TestCircleFill(t *testing.T) {
	s := New(50, 50)
	s.SetFillPaint(canvas.Solid(color.NRGBA{G: 255, A: 255}))
	s.BeginPath()
	s.Arc(25, 25, 10, 0, 2*math.Pi)
	s.Fill()

	assert.Equal(t, uint8(255), rgbaAt(s, 25, 25).G)
	assert.Zero(t, rgbaAt(s, 2, 2).A)
}

func TestStrokeDrawsOnlyOutline(t *testing.T) {
	s := New(50, 50)
	s.SetStrokePaint(canvas.Solid(color.NRGBA{B: 255, A: 255}))
	s.SetLineWidth(2)
	s.BeginPath()
	s.MoveTo(10, 10)
	s.LineTo(40, 10)
	s.LineTo(40, 40)
	s.LineTo(10, 40)
	s.ClosePath()
	s.Stroke()

	assert.Greater(t, rgbaAt(s, 25, 10).B, uint8(100))
	assert.Zero(t, rgbaAt(s, 25, 25).A)
}

func TestResizeClears(t *testing.T) {
	s := New(20, 20)
	s.SetFillPaint(canvas.Solid(color.NRGBA{R: 255, A: 255}))
	s.Translate(3, 3)
	s.FillRect(0, 0, 20, 20)

	s.Resize(8, 6)
	w, h := s.Size()
	require.Equal(t, 8, w)
	require.Equal(t, 6, h)
	assert.Zero(t, rgbaAt(s, 4, 4).A)
	assert.Equal(t, canvas.Identity(), s.Matrix())
}

func TestZeroSizedSurfaceIgnoresDrawing(t *testing.T) {
	s := New(0, 0)
	s.FillRect(0, 0, 10, 10)
	s.BeginPath()
	s.Arc(0, 0, 5, 0, 2*math.Pi)
	s.Fill()
	s.Stroke()

	w, h := s.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)

	s.Resize(-4, 3)
	w, _ = s.Size()
	assert.Zero(t, w)
}
