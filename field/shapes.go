package field

import (
	"image/color"
	"math"

	"landing3d/canvas"
)

var (
	sphereHighlight = color.NRGBA{R: 0xff, G: 0xff, B: 0xff}
	sphereShade     = color.NRGBA{}
)

const (
	sphereHighlightAlpha = 0.3
	sphereShadeAlpha     = 0.1
)

// depthScale maps depth to on-screen scale; nearer (smaller z) is larger.
func (r *Renderer) depthScale(z float64) float64 {
	d := r.cfg.FocalLength + z
	if d <= 0 {
		return 0
	}
	return r.cfg.FocalLength / d
}

// depthAlpha fades particles out as they near the respawn depth.
func (r *Renderer) depthAlpha(z float64) float64 {
	a := (z - r.cfg.RespawnDepth) / r.cfg.FadeRange
	return math.Max(0, math.Min(1, a))
}

// drawParticle paints p in local space: translated to its screen position,
// scaled by depth and rotated. Unknown shapes draw nothing.
func (r *Renderer) drawParticle(ctx canvas.Context, p *Particle) {
	scale := r.depthScale(p.Z)
	alpha := r.depthAlpha(p.Z)
	if scale == 0 || alpha == 0 || !p.Shape.Valid() {
		return
	}

	ctx.Save()
	defer ctx.Restore()

	ctx.Translate(p.X, p.Y)
	ctx.Scale(scale, scale)
	ctx.Rotate(p.Rotation)
	ctx.SetFillPaint(canvas.Solid(canvas.WithAlpha(p.Color, alpha)))
	ctx.SetStrokePaint(canvas.Solid(canvas.WithAlpha(p.Color, alpha*r.cfg.OutlineAlpha)))
	ctx.SetLineWidth(r.cfg.OutlineWidth)

	switch p.Shape {
	case ShapeCube:
		drawCube(ctx, p.Size)
	case ShapeSphere:
		drawSphere(ctx, p.Size, alpha)
	case ShapePyramid:
		drawPyramid(ctx, p.Size)
	case ShapeCylinder:
		drawCylinder(ctx, p.Size)
	}
}

func polygon(ctx canvas.Context, pts ...canvas.Point) {
	ctx.BeginPath()
	ctx.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		ctx.LineTo(pt.X, pt.Y)
	}
	ctx.ClosePath()
}

func circle(ctx canvas.Context, cx, cy, r float64) {
	ctx.BeginPath()
	ctx.Arc(cx, cy, r, 0, 2*math.Pi)
	ctx.ClosePath()
}

// drawCube is a front square plus a slanted top and right face.
func drawCube(ctx canvas.Context, size float64) {
	h := size / 2

	polygon(ctx,
		canvas.Point{X: -h, Y: -h}, canvas.Point{X: h, Y: -h},
		canvas.Point{X: h * 1.2, Y: -h * 1.2}, canvas.Point{X: -h * 1.2, Y: -h * 1.2})
	ctx.Fill()

	polygon(ctx,
		canvas.Point{X: h, Y: -h}, canvas.Point{X: h, Y: h},
		canvas.Point{X: h * 1.2, Y: h * 0.8}, canvas.Point{X: h * 1.2, Y: -h * 1.2})
	ctx.Fill()

	polygon(ctx,
		canvas.Point{X: -h, Y: -h}, canvas.Point{X: h, Y: -h},
		canvas.Point{X: h, Y: h}, canvas.Point{X: -h, Y: h})
	ctx.Fill()
	ctx.Stroke()
}

// drawSphere is a disc with a radial highlight overlay. The overlay fades
// with the body so it never outlives it near the respawn depth.
func drawSphere(ctx canvas.Context, size, alpha float64) {
	r := size / 2

	circle(ctx, 0, 0, r)
	ctx.Fill()
	ctx.Stroke()

	ctx.SetFillPaint(canvas.NewRadialGradient(0, 0, 0, r,
		canvas.WithAlpha(sphereHighlight, sphereHighlightAlpha*alpha),
		canvas.WithAlpha(sphereShade, sphereShadeAlpha*alpha)))
	ctx.Fill()
}

// drawPyramid is a front triangle with two inner side facets.
func drawPyramid(ctx canvas.Context, size float64) {
	base := size
	height := size * 1.2

	polygon(ctx,
		canvas.Point{X: -base / 2, Y: height / 2}, canvas.Point{X: base / 2, Y: height / 2},
		canvas.Point{X: 0, Y: -height / 2})
	ctx.Fill()
	ctx.Stroke()

	polygon(ctx,
		canvas.Point{X: -base / 2, Y: height / 2}, canvas.Point{X: 0, Y: -height / 2},
		canvas.Point{X: -base / 4, Y: height / 4})
	ctx.Fill()

	polygon(ctx,
		canvas.Point{X: base / 2, Y: height / 2}, canvas.Point{X: 0, Y: -height / 2},
		canvas.Point{X: base / 4, Y: height / 4})
	ctx.Fill()
}

// drawCylinder is two end caps joined by a side strip.
func drawCylinder(ctx canvas.Context, size float64) {
	r := size / 2
	height := size

	circle(ctx, 0, -height/2, r)
	ctx.Fill()
	ctx.Stroke()

	circle(ctx, 0, height/2, r)
	ctx.Fill()

	polygon(ctx,
		canvas.Point{X: r, Y: -height / 2}, canvas.Point{X: r, Y: height / 2},
		canvas.Point{X: r * 0.8, Y: height / 2}, canvas.Point{X: r * 0.8, Y: -height / 2})
	ctx.Fill()
}
