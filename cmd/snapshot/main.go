// Command snapshot renders the particle field without a window and writes
// PNG frames.
package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"landing3d/field"
	"landing3d/internal/config"
	"landing3d/internal/snapshot"
)

func main() {
	cfg := field.DefaultConfig()
	// Snapshots are reproducible unless a seed is asked for.
	cfg.Seed = 1
	if err := config.ParseEnv(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command. cfg supplies the flag defaults.
func newRootCmd(cfg field.Config) *cobra.Command {
	opts := snapshot.DefaultOptions()
	var debug bool

	cmd := &cobra.Command{
		Use:          "snapshot",
		Short:        "Render the particle field to PNG files",
		Long:         "Runs the particle field headlessly for a number of frames and writes the last frame, and optionally every Nth frame, as PNG.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := config.NewLogger(debug)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			paths, err := snapshot.Run(ctx, opts, cfg, logger)
			if err != nil {
				return fmt.Errorf("snapshot: %w", err)
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			logger.Debug("done", zap.Strings("files", paths))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.Width, "width", opts.Width, "canvas width in pixels")
	flags.IntVar(&opts.Height, "height", opts.Height, "canvas height in pixels")
	flags.IntVar(&opts.Frames, "frames", opts.Frames, "number of frames to render")
	flags.IntVar(&opts.Every, "every", opts.Every, "also write every Nth frame (0 writes only the last)")
	flags.Float64Var(&opts.Scale, "scale", opts.Scale, "output scale factor")
	flags.StringVarP(&opts.Out, "out", "o", opts.Out, "output directory")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 seeds from the clock)")
	flags.StringVar(&cfg.Theme, "theme", cfg.Theme, "colour theme (default, african)")
	flags.BoolVar(&cfg.Motes, "motes", cfg.Motes, "draw the flat mote layer")
	flags.IntVar(&cfg.ParticleCount, "particles", cfg.ParticleCount, "number of particles")
	flags.BoolVar(&debug, "debug", false, "verbose logging")
	return cmd
}
