// Package host runs a particle field in an ebiten window.
package host

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"landing3d/canvas/ebitencanvas"
	"landing3d/field"
	"landing3d/profile"
)

// Config holds window settings.
type Config struct {
	// ScreenWidth and ScreenHeight are the initial window size in pixels
	ScreenWidth  int    `env:"LANDING3D_WIDTH"`
	ScreenHeight int    `env:"LANDING3D_HEIGHT"`
	Title        string `env:"LANDING3D_TITLE"`

	// ShowStats starts with the F1 overlay visible
	ShowStats bool `env:"LANDING3D_SHOW_STATS"`

	// Profile enables frame-rate-drop profiling
	Profile bool `env:"LANDING3D_PROFILE"`
}

// DefaultConfig returns a 1024x768 window.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  1024,
		ScreenHeight: 768,
		Title:        "Owami Network",
	}
}

// Game adapts a field.Renderer to ebiten's game loop. Layout feeds viewport
// changes to the renderer and Draw flushes the renderer's frame callbacks.
type Game struct {
	cfg      Config
	renderer *field.Renderer
	surface  *ebitencanvas.Surface
	frames   *field.FrameQueue
	logger   *zap.Logger
	cancel   context.CancelFunc

	width, height int
	showStats     bool

	cursorSeen     bool
	lastCursorX    int
	lastCursorY    int
	monitor        *profile.Monitor
	fpsSampleTimer time.Time
}

// NewGame builds the renderer and starts its frame loop. profiler may be nil.
func NewGame(cfg Config, fieldCfg field.Config, profiler *profile.Profiler, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	g := &Game{
		cfg:       cfg,
		surface:   ebitencanvas.New(),
		frames:    &field.FrameQueue{},
		logger:    logger,
		width:     cfg.ScreenWidth,
		height:    cfg.ScreenHeight,
		showStats: cfg.ShowStats,
	}

	renderer, err := field.NewRenderer(fieldCfg, g, g.frames, nil, logger.Named("field"))
	if err != nil {
		return nil, fmt.Errorf("create particle field: %w", err)
	}
	g.renderer = renderer
	g.renderer.Initialize(g.surface)

	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel
	g.renderer.Start(ctx)

	now := time.Now()
	if profiler != nil {
		g.monitor = profile.NewMonitor(profiler, now)
	}
	g.fpsSampleTimer = now
	return g, nil
}

// Size is the viewport the renderer binds to.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}

// Close stops the frame loop.
func (g *Game) Close() {
	g.cancel()
}

// Renderer exposes the particle field.
func (g *Game) Renderer() *field.Renderer {
	return g.renderer
}

// Update handles input: F1 toggles stats, T toggles the theme, Escape quits.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.cancel()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.showStats = !g.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		name := g.renderer.ToggleTheme()
		g.logger.Debug("theme toggled", zap.String("theme", name))
	}

	x, y := ebiten.CursorPosition()
	switch {
	case !g.cursorSeen:
		g.cursorSeen = true
	case x != g.lastCursorX || y != g.lastCursorY:
		g.renderer.SetPointer(float64(x), float64(y))
	}
	g.lastCursorX, g.lastCursorY = x, y
	g.renderer.SetPointerPressed(ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	g.sampleFrameRate()
	return nil
}

func (g *Game) sampleFrameRate() {
	if g.monitor == nil {
		return
	}
	now := time.Now()
	if now.Sub(g.fpsSampleTimer) < time.Second {
		return
	}
	g.fpsSampleTimer = now
	fps := ebiten.ActualFPS()
	stats := g.renderer.Stats()
	reason := fmt.Sprintf("fps%.0f-frames%d", fps, stats.Frames)
	g.monitor.Observe(fps, now, reason)
}

// Draw runs the renderer's pending frame callback against screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Bind(screen)
	g.frames.Flush()
	g.surface.Bind(nil)

	if g.showStats {
		stats := g.renderer.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"FPS: %0.1f  TPS: %0.1f\nParticles: %d  Respawns: %d\nTheme: %s  Size: %dx%d\n[F1] stats  [T] theme  [Esc] quit",
			ebiten.ActualFPS(), ebiten.ActualTPS(),
			len(g.renderer.Particles()), stats.Respawns,
			g.renderer.Theme().Name, g.width, g.height))
	}
}

// Layout makes the canvas cover the whole window and forwards size changes.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.renderer.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
