// Package raster is a software canvas backend that rasterises into an
// *image.RGBA with rasterx.
package raster

import (
	"image"
	"image/color"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"landing3d/canvas"
)

// Surface is a canvas.Context backed by an in-memory RGBA image.
type Surface struct {
	canvas.Base

	img     *image.RGBA
	scanner *rasterx.ScannerGV
	filler  *rasterx.Filler
	stroker *rasterx.Stroker
}

// New creates a transparent surface of the given size.
func New(width, height int) *Surface {
	s := &Surface{}
	s.Base.Init(s)
	s.allocate(width, height)
	return s
}

// Image returns the backing image. It is replaced on Resize.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Resize(width, height int) {
	s.allocate(width, height)
	s.Base.Reset()
}

func (s *Surface) allocate(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		s.scanner, s.filler, s.stroker = nil, nil, nil
		return
	}
	s.scanner = rasterx.NewScannerGV(width, height, s.img, s.img.Bounds())
	s.filler = rasterx.NewFiller(width, height, s.scanner)
	s.stroker = rasterx.NewStroker(width, height, s.scanner)
}

func (s *Surface) FillPath(subpaths []canvas.Subpath, paint canvas.Paint) {
	if s.filler == nil {
		return
	}
	s.filler.Clear()
	s.filler.SetWinding(true)
	for _, sp := range subpaths {
		s.filler.Start(toFixed(sp.Points[0]))
		for _, p := range sp.Points[1:] {
			s.filler.Line(toFixed(p))
		}
		s.filler.Stop(true)
	}
	s.filler.SetColor(colorSource(paint))
	s.filler.Draw()
	s.filler.Clear()
}

func (s *Surface) StrokePath(subpaths []canvas.Subpath, paint canvas.Paint, width float64) {
	if s.stroker == nil || width <= 0 {
		return
	}
	s.stroker.Clear()
	s.stroker.SetStroke(fixed.Int26_6(width*64), 4<<6, rasterx.ButtCap, rasterx.ButtCap, rasterx.RoundGap, rasterx.Round)
	for _, sp := range subpaths {
		s.stroker.Start(toFixed(sp.Points[0]))
		for _, p := range sp.Points[1:] {
			s.stroker.Line(toFixed(p))
		}
		s.stroker.Stop(sp.Closed)
	}
	s.stroker.SetColor(colorSource(paint))
	s.stroker.Draw()
	s.stroker.Clear()
}

// colorSource turns a paint into what rasterx scanners accept: a flat colour
// or a per-pixel colour function sampled at pixel centres.
func colorSource(paint canvas.Paint) interface{} {
	if solid, ok := paint.(canvas.Solid); ok {
		return color.NRGBA(solid)
	}
	return rasterx.ColorFunc(func(x, y int) color.Color {
		return paint.ColorAt(float64(x)+0.5, float64(y)+0.5)
	})
}

func toFixed(p canvas.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X, p.Y)
}
