// Package profile captures CPU profiles and execution traces when the frame
// rate drops.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrCooldown is returned when a capture was taken too recently.
	ErrCooldown = errors.New("profile capture on cooldown")
	// ErrBusy is returned while another capture is running.
	ErrBusy = errors.New("profile capture already running")
)

// Config controls where and how often captures happen.
type Config struct {
	Dir      string        `env:"LANDING3D_PROFILE_DIR"`
	Cooldown time.Duration `env:"LANDING3D_PROFILE_COOLDOWN"`
	Duration time.Duration `env:"LANDING3D_PROFILE_DURATION"`

	// MinFPS is the frame rate under which the host asks for a capture
	MinFPS float64 `env:"LANDING3D_PROFILE_MIN_FPS"`

	// Warmup ignores frame drops right after start
	Warmup time.Duration `env:"LANDING3D_PROFILE_WARMUP"`
}

// DefaultConfig captures 5s into ./profiles at most every 10s when under 45 FPS.
func DefaultConfig() Config {
	return Config{
		Dir:      "profiles",
		Cooldown: 10 * time.Second,
		Duration: 5 * time.Second,
		MinFPS:   45,
		Warmup:   3 * time.Second,
	}
}

// Profiler writes <dir>/fps-drop-<time>-<reason>.{cpu.prof,trace}.
type Profiler struct {
	cfg    Config
	logger *zap.Logger
	now    func() time.Time

	mu          sync.Mutex
	busy        bool
	lastCapture time.Time
	wg          sync.WaitGroup
}

// New creates the capture directory and returns a profiler.
func New(cfg Config, logger *zap.Logger) (*Profiler, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Profiler{cfg: cfg, logger: logger, now: time.Now}, nil
}

// Config returns the profiler settings.
func (p *Profiler) Config() Config {
	return p.cfg
}

// Capture starts a background CPU profile and trace. It returns the base path
// of the files being written.
func (p *Profiler) Capture(reason string) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	now := p.now()
	if p.busy {
		return "", ErrBusy
	}
	if !p.lastCapture.IsZero() && now.Sub(p.lastCapture) < p.cfg.Cooldown {
		return "", fmt.Errorf("%w: last capture %v ago", ErrCooldown, now.Sub(p.lastCapture).Round(time.Millisecond))
	}
	p.busy = true
	p.lastCapture = now

	base := filepath.Join(p.cfg.Dir, fmt.Sprintf("fps-drop-%s-%s", now.Format("20060102-150405"), reason))

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.busy = false
			p.mu.Unlock()
		}()
		p.capture(base)
	}()
	return base, nil
}

// Wait blocks until any running capture has finished.
func (p *Profiler) Wait() {
	p.wg.Wait()
}

// Busy reports whether a capture is running.
func (p *Profiler) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

func (p *Profiler) capture(base string) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := p.captureCPU(base + ".cpu.prof"); err != nil {
			p.logger.Warn("cpu profile failed", zap.Error(err))
		}
	}()
	go func() {
		defer wg.Done()
		if err := p.captureTrace(base + ".trace"); err != nil {
			p.logger.Warn("trace failed", zap.Error(err))
		}
	}()
	wg.Wait()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Info("profile captured",
		zap.String("cpu", base+".cpu.prof"),
		zap.String("trace", base+".trace"),
		zap.Uint64("heap_alloc_kb", m.HeapAlloc/1024),
		zap.Uint32("num_gc", m.NumGC))
}

func (p *Profiler) captureCPU(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cpu profile: %w", err)
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return fmt.Errorf("start cpu profile: %w", err)
	}
	time.Sleep(p.cfg.Duration)
	pprof.StopCPUProfile()
	return nil
}

func (p *Profiler) captureTrace(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trace: %w", err)
	}
	defer f.Close()

	if err := trace.Start(f); err != nil {
		return fmt.Errorf("start trace: %w", err)
	}
	time.Sleep(p.cfg.Duration)
	trace.Stop()
	return nil
}

// Monitor decides when a frame-rate sample warrants a capture.
type Monitor struct {
	profiler *Profiler
	started  time.Time
}

// NewMonitor starts the warm-up window at start.
func NewMonitor(p *Profiler, start time.Time) *Monitor {
	return &Monitor{profiler: p, started: start}
}

// Observe feeds one frame-rate sample taken at now. It reports whether a
// capture was started.
func (m *Monitor) Observe(fps float64, now time.Time, reason string) bool {
	cfg := m.profiler.cfg
	if fps >= cfg.MinFPS || now.Sub(m.started) < cfg.Warmup {
		return false
	}
	if _, err := m.profiler.Capture(reason); err != nil {
		return false
	}
	m.profiler.logger.Warn("frame rate drop, capturing profile", zap.Float64("fps", fps))
	return true
}
