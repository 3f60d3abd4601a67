package canvas

import (
	"image/color"
	"math"
)

// Paint yields the colour of a device-space pixel.
type Paint interface {
	// ColorAt returns the colour at device coordinates (x, y).
	ColorAt(x, y float64) color.NRGBA
	// Transform returns the paint with its geometry mapped through m.
	Transform(m Matrix) Paint
}

// Solid is a single colour paint.
type Solid color.NRGBA

func (s Solid) ColorAt(x, y float64) color.NRGBA { return color.NRGBA(s) }

func (s Solid) Transform(Matrix) Paint { return s }

// WithAlpha returns c with its alpha replaced by a (0..1, clamped).
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(math.Round(clamp01(a) * 255))
	return c
}

// ColorStop is one gradient stop. Offsets run 0..1 and must be ascending.
type ColorStop struct {
	Offset float64
	Color  color.NRGBA
}

// LinearGradient varies colour along the line from (X0, Y0) to (X1, Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []ColorStop
}

// NewLinearGradient builds a two-stop linear gradient.
func NewLinearGradient(x0, y0, x1, y1 float64, from, to color.NRGBA) *LinearGradient {
	return &LinearGradient{
		X0: x0, Y0: y0, X1: x1, Y1: y1,
		Stops: []ColorStop{{Offset: 0, Color: from}, {Offset: 1, Color: to}},
	}
}

func (g *LinearGradient) ColorAt(x, y float64) color.NRGBA {
	dx := g.X1 - g.X0
	dy := g.Y1 - g.Y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return sampleStops(g.Stops, 0)
	}
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / lenSq
	return sampleStops(g.Stops, t)
}

func (g *LinearGradient) Transform(m Matrix) Paint {
	out := *g
	out.X0, out.Y0 = m.Apply(g.X0, g.Y0)
	out.X1, out.Y1 = m.Apply(g.X1, g.Y1)
	return &out
}

// RadialGradient varies colour between two concentric circles of radius R0 and R1.
type RadialGradient struct {
	X, Y, R0, R1 float64
	Stops        []ColorStop
}

// NewRadialGradient builds a two-stop concentric radial gradient.
func NewRadialGradient(x, y, r0, r1 float64, inner, outer color.NRGBA) *RadialGradient {
	return &RadialGradient{
		X: x, Y: y, R0: r0, R1: r1,
		Stops: []ColorStop{{Offset: 0, Color: inner}, {Offset: 1, Color: outer}},
	}
}

func (g *RadialGradient) ColorAt(x, y float64) color.NRGBA {
	span := g.R1 - g.R0
	if span <= 0 {
		return sampleStops(g.Stops, 1)
	}
	d := math.Hypot(x-g.X, y-g.Y)
	return sampleStops(g.Stops, (d-g.R0)/span)
}

func (g *RadialGradient) Transform(m Matrix) Paint {
	out := *g
	out.X, out.Y = m.Apply(g.X, g.Y)
	k := m.ScaleFactor()
	out.R0 = g.R0 * k
	out.R1 = g.R1 * k
	return &out
}

func sampleStops(stops []ColorStop, t float64) color.NRGBA {
	switch len(stops) {
	case 0:
		return color.NRGBA{}
	case 1:
		return stops[0].Color
	}
	t = clamp01(t)
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if t > hi.Offset {
			continue
		}
		span := hi.Offset - lo.Offset
		if span <= 0 {
			return hi.Color
		}
		return lerpColor(lo.Color, hi.Color, (t-lo.Offset)/span)
	}
	return stops[len(stops)-1].Color
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t))
	}
	return color.NRGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
