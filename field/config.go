package field

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid field config")

// Config holds particle field tuning. Environment overrides use the
// LANDING3D_ prefix.
type Config struct {
	// ParticleCount is the fixed pool size
	ParticleCount int `env:"LANDING3D_PARTICLES"`

	// MinSpawnDepth and MaxSpawnDepth bound the depth of a freshly sampled particle
	MinSpawnDepth float64 `env:"LANDING3D_MIN_SPAWN_DEPTH"`
	MaxSpawnDepth float64 `env:"LANDING3D_MAX_SPAWN_DEPTH"`

	// RespawnDepth is the depth below which a particle has passed the camera
	RespawnDepth float64 `env:"LANDING3D_RESPAWN_DEPTH"`

	// FocalLength sets scale = FocalLength / (FocalLength + z)
	FocalLength float64 `env:"LANDING3D_FOCAL_LENGTH"`

	// FadeRange is the depth span above RespawnDepth over which alpha ramps 0..1
	FadeRange float64 `env:"LANDING3D_FADE_RANGE"`

	MinSize float64 `env:"LANDING3D_MIN_SIZE"`
	MaxSize float64 `env:"LANDING3D_MAX_SIZE"`

	// MaxDrift bounds the screen-space speed per tick on each axis
	MaxDrift float64 `env:"LANDING3D_MAX_DRIFT"`

	// MinSpeedZ and MaxSpeedZ bound the approach speed per tick
	MinSpeedZ float64 `env:"LANDING3D_MIN_SPEED_Z"`
	MaxSpeedZ float64 `env:"LANDING3D_MAX_SPEED_Z"`

	// MaxSpin bounds the rotation delta per tick, in radians
	MaxSpin float64 `env:"LANDING3D_MAX_SPIN"`

	// OutlineAlpha multiplies the fill alpha for shape outlines
	OutlineAlpha float64 `env:"LANDING3D_OUTLINE_ALPHA"`
	OutlineWidth float64 `env:"LANDING3D_OUTLINE_WIDTH"`

	// Motes enables the flat drifting dot layer
	Motes     bool `env:"LANDING3D_MOTES"`
	MoteCount int  `env:"LANDING3D_MOTE_COUNT"`

	// Pointer enables the eased pointer follower
	Pointer     bool    `env:"LANDING3D_POINTER"`
	PointerEase float64 `env:"LANDING3D_POINTER_EASE"`

	Theme string `env:"LANDING3D_THEME"`

	// Seed fixes the random source; 0 seeds from the clock
	Seed uint64 `env:"LANDING3D_SEED"`
}

// DefaultConfig returns the landing page tuning.
func DefaultConfig() Config {
	return Config{
		ParticleCount: 50,
		MinSpawnDepth: 50,
		MaxSpawnDepth: 150,
		RespawnDepth:  -50,
		FocalLength:   100,
		FadeRange:     100,
		MinSize:       10,
		MaxSize:       25,
		MaxDrift:      0.25,
		MinSpeedZ:     0.1,
		MaxSpeedZ:     0.3,
		MaxSpin:       0.01,
		OutlineAlpha:  0.5,
		OutlineWidth:  1,
		Motes:         false,
		MoteCount:     50,
		Pointer:       false,
		PointerEase:   0.1,
		Theme:         DefaultTheme.Name,
	}
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"min spawn depth", c.MinSpawnDepth},
		{"max spawn depth", c.MaxSpawnDepth},
		{"respawn depth", c.RespawnDepth},
		{"focal length", c.FocalLength},
		{"fade range", c.FadeRange},
		{"min size", c.MinSize},
		{"max size", c.MaxSize},
		{"max drift", c.MaxDrift},
		{"min depth speed", c.MinSpeedZ},
		{"max depth speed", c.MaxSpeedZ},
		{"max spin", c.MaxSpin},
		{"outline alpha", c.OutlineAlpha},
		{"outline width", c.OutlineWidth},
		{"pointer ease", c.PointerEase},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s %g is not finite", ErrInvalidConfig, f.name, f.value)
		}
	}

	switch {
	case c.ParticleCount < 0:
		return fmt.Errorf("%w: particle count %d is negative", ErrInvalidConfig, c.ParticleCount)
	case c.MaxSpawnDepth < c.MinSpawnDepth:
		return fmt.Errorf("%w: spawn depth range [%g, %g] is empty", ErrInvalidConfig, c.MinSpawnDepth, c.MaxSpawnDepth)
	case c.MinSpawnDepth <= c.RespawnDepth:
		return fmt.Errorf("%w: spawn depth %g must be above respawn depth %g", ErrInvalidConfig, c.MinSpawnDepth, c.RespawnDepth)
	case c.FocalLength+c.RespawnDepth <= 0:
		return fmt.Errorf("%w: focal length %g puts the respawn depth behind the camera", ErrInvalidConfig, c.FocalLength)
	case c.FadeRange <= 0:
		return fmt.Errorf("%w: fade range %g must be positive", ErrInvalidConfig, c.FadeRange)
	case c.MinSize <= 0 || c.MaxSize < c.MinSize:
		return fmt.Errorf("%w: size range [%g, %g]", ErrInvalidConfig, c.MinSize, c.MaxSize)
	case c.MaxDrift < 0 || c.MaxSpin < 0:
		return fmt.Errorf("%w: drift and spin bounds must not be negative", ErrInvalidConfig)
	case c.MinSpeedZ <= 0 || c.MaxSpeedZ < c.MinSpeedZ:
		return fmt.Errorf("%w: depth speed range [%g, %g]", ErrInvalidConfig, c.MinSpeedZ, c.MaxSpeedZ)
	case c.OutlineAlpha < 0 || c.OutlineAlpha > 1:
		return fmt.Errorf("%w: outline alpha %g must be in [0, 1]", ErrInvalidConfig, c.OutlineAlpha)
	case c.OutlineWidth <= 0:
		return fmt.Errorf("%w: outline width %g must be positive", ErrInvalidConfig, c.OutlineWidth)
	case c.MoteCount < 0:
		return fmt.Errorf("%w: mote count %d is negative", ErrInvalidConfig, c.MoteCount)
	case c.PointerEase <= 0 || c.PointerEase > 1:
		return fmt.Errorf("%w: pointer ease %g must be in (0, 1]", ErrInvalidConfig, c.PointerEase)
	}
	return nil
}
