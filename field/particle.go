package field

import (
	"image/color"
	"math"
)

// Shape is the outline a particle is drawn with.
type Shape uint8

const (
	ShapeCube Shape = iota
	ShapeSphere
	ShapePyramid
	ShapeCylinder

	shapeCount
)

func (s Shape) String() string {
	switch s {
	case ShapeCube:
		return "cube"
	case ShapeSphere:
		return "sphere"
	case ShapePyramid:
		return "pyramid"
	case ShapeCylinder:
		return "cylinder"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the drawable shapes.
func (s Shape) Valid() bool {
	return s < shapeCount
}

// Particle is one pseudo-3D shape in the field. X and Y are screen
// coordinates, Z is synthetic depth that decreases as the particle approaches.
type Particle struct {
	X, Y, Z float64
	Size    float64
	Shape   Shape
	Color   color.NRGBA

	SpeedX, SpeedY, SpeedZ float64

	Rotation float64
	Spin     float64
}

// advance moves the particle one tick and bounces it off the viewport edges.
// It reports whether the particle crossed respawnDepth.
func (p *Particle) advance(width, height, respawnDepth float64) bool {
	p.X += p.SpeedX
	p.Y += p.SpeedY
	p.Z -= p.SpeedZ
	p.Rotation += p.Spin

	p.SpeedX = bounce(p.X, width, p.SpeedX)
	p.SpeedY = bounce(p.Y, height, p.SpeedY)

	return p.Z < respawnDepth
}

// bounce inverts speed when pos has left [0, limit], always pointing it back inside.
func bounce(pos, limit, speed float64) float64 {
	switch {
	case pos < 0 && speed < 0:
		return -speed
	case pos > limit && speed > 0:
		return -speed
	}
	return speed
}

// sampler draws fresh particles.
type sampler struct {
	cfg *Config
	rng Rand
}

func (s sampler) particle(width, height float64, palette []color.NRGBA) Particle {
	cfg := s.cfg
	return Particle{
		X:        s.rng.Float64() * width,
		Y:        s.rng.Float64() * height,
		Z:        s.between(cfg.MinSpawnDepth, cfg.MaxSpawnDepth),
		Size:     s.between(cfg.MinSize, cfg.MaxSize),
		Shape:    Shape(s.rng.IntN(int(shapeCount))),
		Color:    palette[s.rng.IntN(len(palette))],
		SpeedX:   s.symmetric(cfg.MaxDrift),
		SpeedY:   s.symmetric(cfg.MaxDrift),
		SpeedZ:   s.between(cfg.MinSpeedZ, cfg.MaxSpeedZ),
		Rotation: s.between(0, 2*math.Pi),
		Spin:     s.symmetric(cfg.MaxSpin),
	}
}

func (s sampler) between(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s sampler) symmetric(bound float64) float64 {
	return (s.rng.Float64() - 0.5) * 2 * bound
}
