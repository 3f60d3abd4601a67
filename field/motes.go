package field

import (
	"image/color"
	"math"

	"landing3d/canvas"
)

const (
	moteMinRadius  = 1.0
	moteMaxRadius  = 4.0
	moteMinOpacity = 0.1
	moteMaxOpacity = 0.6
)

// mote is a flat translucent dot drifting over the field.
type mote struct {
	x, y    float64
	vx, vy  float64
	radius  float64
	opacity float64
	color   color.NRGBA
}

// moteLayer is a fixed set of motes; like particles they are never added or removed.
type moteLayer struct {
	motes []mote
}

func newMoteLayer(s sampler, n int, width, height float64, accents []color.NRGBA) *moteLayer {
	l := &moteLayer{motes: make([]mote, n)}
	for i := range l.motes {
		l.motes[i] = mote{
			x:       s.rng.Float64() * width,
			y:       s.rng.Float64() * height,
			vx:      s.symmetric(s.cfg.MaxDrift),
			vy:      s.symmetric(s.cfg.MaxDrift),
			radius:  s.between(moteMinRadius, moteMaxRadius),
			opacity: s.between(moteMinOpacity, moteMaxOpacity),
			color:   accents[s.rng.IntN(len(accents))],
		}
	}
	return l
}

func (l *moteLayer) recolor(rng Rand, accents []color.NRGBA) {
	for i := range l.motes {
		l.motes[i].color = accents[rng.IntN(len(accents))]
	}
}

func (l *moteLayer) update(width, height float64) {
	for i := range l.motes {
		m := &l.motes[i]
		m.x += m.vx
		m.y += m.vy
		m.vx = bounce(m.x, width, m.vx)
		m.vy = bounce(m.y, height, m.vy)
	}
}

func (l *moteLayer) draw(ctx canvas.Context) {
	for i := range l.motes {
		m := &l.motes[i]
		ctx.SetFillPaint(canvas.Solid(canvas.WithAlpha(m.color, m.opacity)))
		ctx.BeginPath()
		ctx.Arc(m.x, m.y, m.radius, 0, 2*math.Pi)
		ctx.Fill()
	}
}
