// Package snapshot renders a particle field headlessly and writes frames as
// PNG files.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"landing3d/canvas/raster"
	"landing3d/field"
)

// ErrInvalidOptions is returned for option values that cannot produce a frame.
var ErrInvalidOptions = errors.New("invalid snapshot options")

// Options selects what to render and where to write it.
type Options struct {
	Width  int
	Height int

	// Frames is the number of ticks to run; the last one is always written
	Frames int
	// Every also writes each Every-th frame when positive
	Every int
	// Scale resizes written images; 1 keeps the canvas size
	Scale float64

	Out string
}

// DefaultOptions renders 300 frames at 1280x720 into ./snapshots.
func DefaultOptions() Options {
	return Options{
		Width:  1280,
		Height: 720,
		Frames: 300,
		Scale:  1,
		Out:    "snapshots",
	}
}

func (o Options) validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalidOptions, o.Width, o.Height)
	case o.Frames <= 0:
		return fmt.Errorf("%w: frames %d", ErrInvalidOptions, o.Frames)
	case o.Every < 0:
		return fmt.Errorf("%w: every %d", ErrInvalidOptions, o.Every)
	case o.Scale <= 0:
		return fmt.Errorf("%w: scale %v", ErrInvalidOptions, o.Scale)
	case o.Out == "":
		return fmt.Errorf("%w: empty output directory", ErrInvalidOptions)
	}
	return nil
}

// Run ticks a fresh field opts.Frames times and returns the written paths in
// frame order. Cancelling ctx stops between frames.
func Run(ctx context.Context, opts Options, cfg field.Config, logger *zap.Logger) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(opts.Out, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	surface := raster.New(opts.Width, opts.Height)
	frames := &field.FrameQueue{}
	viewport := field.ViewportFunc(func() (int, int) { return opts.Width, opts.Height })

	r, err := field.NewRenderer(cfg, viewport, frames, nil, logger.Named("field"))
	if err != nil {
		return nil, fmt.Errorf("create particle field: %w", err)
	}
	r.Initialize(surface)

	loopCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	r.Start(loopCtx)

	var written []string
	for frame := 1; frame <= opts.Frames; frame++ {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		frames.Flush()

		if frame != opts.Frames && (opts.Every == 0 || frame%opts.Every != 0) {
			continue
		}
		path := filepath.Join(opts.Out, fmt.Sprintf("frame-%05d.png", frame))
		if err := writePNG(path, scaled(surface.Image(), opts.Scale)); err != nil {
			return written, err
		}
		written = append(written, path)
		logger.Debug("frame written", zap.String("path", path), zap.Int("frame", frame))
	}

	stats := r.Stats()
	logger.Info("snapshot complete",
		zap.Int("files", len(written)),
		zap.Uint64("frames", stats.Frames),
		zap.Uint64("respawns", stats.Respawns))
	return written, nil
}

func scaled(src *image.RGBA, factor float64) image.Image {
	if factor == 1 {
		return src
	}
	b := src.Bounds()
	w := max(1, int(float64(b.Dx())*factor+0.5))
	h := max(1, int(float64(b.Dy())*factor+0.5))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
