// Package ebitencanvas draws canvas paths onto ebiten images.
package ebitencanvas

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"landing3d/canvas"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface is a canvas.Context that paints into whatever ebiten image is bound
// for the current frame.
type Surface struct {
	canvas.Base

	dst           *ebiten.Image
	width, height int

	vertices []ebiten.Vertex
	indices  []uint16
}

// New returns an unbound surface. Drawing is dropped until Bind is called.
func New() *Surface {
	s := &Surface{}
	s.Base.Init(s)
	return s
}

// Bind targets dst for subsequent drawing.
func (s *Surface) Bind(dst *ebiten.Image) {
	s.dst = dst
}

func (s *Surface) Size() (int, int) {
	if s.dst != nil {
		b := s.dst.Bounds()
		return b.Dx(), b.Dy()
	}
	return s.width, s.height
}

// Resize records the logical size. The screen image itself is sized by the
// game's Layout.
func (s *Surface) Resize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	s.Base.Reset()
}

func (s *Surface) FillPath(subpaths []canvas.Subpath, paint canvas.Paint) {
	if s.dst == nil {
		return
	}
	if rg, ok := paint.(*canvas.RadialGradient); ok {
		s.fillFan(subpaths, rg)
		return
	}
	path := buildPath(subpaths, true)
	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	s.colorize(paint)
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		FillRule:       ebiten.FillRuleNonZero,
		AntiAlias:      true,
	})
}

func (s *Surface) StrokePath(subpaths []canvas.Subpath, paint canvas.Paint, width float64) {
	if s.dst == nil || width <= 0 {
		return
	}
	path := buildPath(subpaths, false)
	s.vertices, s.indices = path.AppendVerticesAndIndicesForStroke(s.vertices[:0], s.indices[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapButt,
	})
	s.colorize(paint)
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
		AntiAlias:      true,
	})
}

// fillFan draws each subpath as a triangle fan around the gradient centre so
// the colour varies radially between vertices. Valid for shapes that are
// star-shaped around the centre, which is how radial shading is used here.
func (s *Surface) fillFan(subpaths []canvas.Subpath, rg *canvas.RadialGradient) {
	for _, sp := range subpaths {
		s.vertices = s.vertices[:0]
		s.indices = s.indices[:0]
		s.vertices = append(s.vertices, ebiten.Vertex{DstX: float32(rg.X), DstY: float32(rg.Y)})
		for _, p := range sp.Points {
			s.vertices = append(s.vertices, ebiten.Vertex{DstX: float32(p.X), DstY: float32(p.Y)})
		}
		n := len(sp.Points)
		for i := 0; i < n; i++ {
			s.indices = append(s.indices, 0, uint16(1+i), uint16(1+(i+1)%n))
		}
		s.colorize(rg)
		s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{
			ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
			AntiAlias:      true,
		})
	}
}

func (s *Surface) colorize(paint canvas.Paint) {
	for i := range s.vertices {
		v := &s.vertices[i]
		c := paint.ColorAt(float64(v.DstX), float64(v.DstY))
		a := float32(c.A) / 0xff
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(c.R) / 0xff * a
		v.ColorG = float32(c.G) / 0xff * a
		v.ColorB = float32(c.B) / 0xff * a
		v.ColorA = a
	}
}

func buildPath(subpaths []canvas.Subpath, closeAll bool) *vector.Path {
	var path vector.Path
	for _, sp := range subpaths {
		path.MoveTo(float32(sp.Points[0].X), float32(sp.Points[0].Y))
		for _, p := range sp.Points[1:] {
			path.LineTo(float32(p.X), float32(p.Y))
		}
		if closeAll || sp.Closed {
			path.Close()
		}
	}
	return &path
}
