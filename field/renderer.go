// Package field animates a depth-sorted field of pseudo-3D shapes over a
// full-viewport canvas.
//
// A Renderer owns a fixed pool of particles. Every tick it repaints the
// background gradient, sorts the pool far-to-near, moves each particle,
// bounces it off the viewport edges, respawns it once it has passed the
// camera and draws it scaled and faded by depth. Frame pacing, the random
// source and the drawing surface are injected so the field runs the same way
// in a window, headless, or under test.
package field

import (
	"context"
	"fmt"
	"image/color"
	"math/rand/v2"
	"sort"
	"time"

	"go.uber.org/zap"

	"landing3d/canvas"
)

// Stats counts renderer activity since construction.
type Stats struct {
	Frames   uint64
	Respawns uint64
}

// Renderer is the particle field. It is not safe for concurrent use; every
// method must run on the host's frame thread.
type Renderer struct {
	cfg      Config
	viewport Viewport
	frames   Scheduler
	rng      Rand
	logger   *zap.Logger

	surface       canvas.Context
	width, height int

	pool    []Particle
	motes   *moteLayer
	pointer follower
	theme   Theme

	running    bool
	generation uint64
	stats      Stats
}

// NewRenderer builds a renderer. A nil rng is seeded from cfg.Seed, a nil
// logger discards output. Nothing is drawn until Initialize binds a surface.
func NewRenderer(cfg Config, viewport Viewport, frames Scheduler, rng Rand, logger *zap.Logger) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	theme, err := ThemeByName(cfg.Theme)
	if err != nil {
		return nil, fmt.Errorf("new renderer: %w", err)
	}
	if rng == nil {
		rng = NewRand(cfg.Seed)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if viewport == nil {
		viewport = ViewportFunc(func() (int, int) { return 0, 0 })
	}
	if frames == nil {
		frames = &FrameQueue{}
	}
	return &Renderer{
		cfg:      cfg,
		viewport: viewport,
		frames:   frames,
		rng:      rng,
		logger:   logger,
		theme:    theme,
		pointer:  follower{ease: cfg.PointerEase},
	}, nil
}

// NewRand returns a PCG source for seed, or a clock-seeded one when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Initialize binds the renderer to surface, sizes it to the viewport and fills
// the pool on first use. A nil surface leaves the renderer disabled; the field
// is decorative, so this is not an error.
func (r *Renderer) Initialize(surface canvas.Context) bool {
	if surface == nil {
		r.logger.Debug("particle field disabled: no drawing surface")
		return false
	}
	r.surface = surface
	w, h := r.viewport.Size()
	r.Resize(w, h)

	if r.pool == nil {
		s := r.sampler()
		r.pool = make([]Particle, r.cfg.ParticleCount)
		for i := range r.pool {
			r.pool[i] = s.particle(float64(r.width), float64(r.height), r.theme.Palette)
		}
		if r.cfg.Motes {
			r.motes = newMoteLayer(s, r.cfg.MoteCount, float64(r.width), float64(r.height), r.accents())
		}
	}

	r.logger.Info("particle field initialized",
		zap.Int("particles", len(r.pool)),
		zap.Int("width", r.width),
		zap.Int("height", r.height),
		zap.String("theme", r.theme.Name))
	return true
}

// Enabled reports whether a surface is bound.
func (r *Renderer) Enabled() bool {
	return r.surface != nil
}

// Resize resets the surface to width x height. Particles keep their positions;
// the next tick bounces against the new bounds.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = max(width, 0), max(height, 0)
	if r.surface != nil {
		r.surface.Resize(r.width, r.height)
	}
}

// Size returns the current drawing area.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Tick advances the field one frame and repaints it.
func (r *Renderer) Tick() {
	if r.surface == nil {
		return
	}
	ctx := r.surface
	w, h := float64(r.width), float64(r.height)

	ctx.SetFillPaint(canvas.NewLinearGradient(0, 0, 0, h, r.theme.Top, r.theme.Bottom))
	ctx.FillRect(0, 0, w, h)

	// Far particles first; equal depths keep pool order so ties never flicker.
	sort.SliceStable(r.pool, func(i, j int) bool {
		return r.pool[i].Z > r.pool[j].Z
	})

	s := r.sampler()
	for i := range r.pool {
		if r.pool[i].advance(w, h, r.cfg.RespawnDepth) {
			r.pool[i] = s.particle(w, h, r.theme.Palette)
			r.stats.Respawns++
		}
	}
	for i := range r.pool {
		r.drawParticle(ctx, &r.pool[i])
	}

	if r.motes != nil {
		r.motes.update(w, h)
		ctx.Save()
		r.motes.draw(ctx)
		ctx.Restore()
	}
	if r.cfg.Pointer {
		r.pointer.update()
		ctx.Save()
		r.pointer.draw(ctx, r.accents())
		ctx.Restore()
	}

	r.stats.Frames++
}

// Start runs Tick once per frame on the injected scheduler until ctx is
// cancelled. The callback chain ends at the first frame after cancellation.
// Starting again replaces the current loop; the old chain exits without
// ticking, so frames never tick twice.
func (r *Renderer) Start(ctx context.Context) {
	if r.surface == nil {
		return
	}
	r.generation++
	gen := r.generation
	r.running = true

	var frame func()
	frame = func() {
		if gen != r.generation {
			return
		}
		if ctx.Err() != nil {
			r.running = false
			r.logger.Debug("particle field stopped", zap.Uint64("frames", r.stats.Frames))
			return
		}
		r.Tick()
		r.frames.RequestFrame(frame)
	}
	r.frames.RequestFrame(frame)
}

// Running reports whether a Start loop is scheduled.
func (r *Renderer) Running() bool {
	return r.running
}

// Particles returns a copy of the pool in its current (depth-sorted) order.
func (r *Renderer) Particles() []Particle {
	return append([]Particle(nil), r.pool...)
}

// Stats returns frame and respawn counters.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Theme returns the active theme.
func (r *Renderer) Theme() Theme {
	return r.theme
}

// SetTheme switches the background immediately and the palette for later
// respawns. Motes are recoloured; particles keep their colour until respawn.
func (r *Renderer) SetTheme(t Theme) error {
	if len(t.Palette) == 0 {
		return fmt.Errorf("set theme %q: empty palette", t.Name)
	}
	r.theme = t
	if r.motes != nil {
		r.motes.recolor(r.rng, r.accents())
	}
	r.logger.Info("theme changed", zap.String("theme", t.Name))
	return nil
}

// ToggleTheme cycles through the built-in themes and returns the new name.
func (r *Renderer) ToggleTheme() string {
	next := r.theme.next()
	// Built-in themes always carry a palette.
	_ = r.SetTheme(next)
	return next.Name
}

// SetPointer moves the pointer follower's target.
func (r *Renderer) SetPointer(x, y float64) {
	r.pointer.target(x, y)
}

// SetPointerPressed shrinks the follower's rings while pressed is true.
func (r *Renderer) SetPointerPressed(pressed bool) {
	r.pointer.pressed = pressed
}

func (r *Renderer) sampler() sampler {
	return sampler{cfg: &r.cfg, rng: r.rng}
}

func (r *Renderer) accents() []color.NRGBA {
	if len(r.theme.Accents) > 0 {
		return r.theme.Accents
	}
	return r.theme.Palette
}
