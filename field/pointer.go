package field

import (
	"image/color"
	"math"

	"landing3d/canvas"
)

// follower eases a dot-and-rings marker toward the last pointer position.
type follower struct {
	x, y   float64
	tx, ty float64
	ease    float64
	active  bool
	pressed bool
}

// pressedScale shrinks the rings while the pointer button is held.
const pressedScale = 0.8

func (f *follower) target(x, y float64) {
	if !f.active {
		f.x, f.y = x, y
		f.active = true
	}
	f.tx, f.ty = x, y
}

func (f *follower) update() {
	if !f.active {
		return
	}
	f.x += (f.tx - f.x) * f.ease
	f.y += (f.ty - f.y) * f.ease
}

func (f *follower) draw(ctx canvas.Context, accents []color.NRGBA) {
	if !f.active {
		return
	}
	dot := accents[0]
	ring := accents[len(accents)-1]
	k := 1.0
	if f.pressed {
		k = pressedScale
	}

	ctx.SetFillPaint(canvas.Solid(dot))
	ctx.BeginPath()
	ctx.Arc(f.x, f.y, 2, 0, 2*math.Pi)
	ctx.Fill()

	ctx.SetLineWidth(2)
	ctx.SetStrokePaint(canvas.Solid(canvas.WithAlpha(ring, 0.7)))
	ctx.BeginPath()
	ctx.Arc(f.x, f.y, 10*k, 0, 2*math.Pi)
	ctx.Stroke()

	ctx.SetLineWidth(1)
	ctx.SetStrokePaint(canvas.Solid(canvas.WithAlpha(ring, 0.3)))
	ctx.BeginPath()
	ctx.Arc(f.x, f.y, 20*k, 0, 2*math.Pi)
	ctx.Stroke()
}
