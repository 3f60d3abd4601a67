package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"landing3d/field"
	"landing3d/host"
	"landing3d/internal/config"
	"landing3d/profile"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	hostCfg := host.DefaultConfig()
	fieldCfg := field.DefaultConfig()
	profCfg := profile.DefaultConfig()
	if err := config.ParseEnv(&hostCfg, &fieldCfg, &profCfg); err != nil {
		return err
	}

	debug := flag.Bool("debug", false, "Verbose development logging")
	flag.IntVar(&hostCfg.ScreenWidth, "width", hostCfg.ScreenWidth, "Initial window width")
	flag.IntVar(&hostCfg.ScreenHeight, "height", hostCfg.ScreenHeight, "Initial window height")
	flag.BoolVar(&hostCfg.ShowStats, "stats", hostCfg.ShowStats, "Show the stats overlay on start")
	flag.BoolVar(&hostCfg.Profile, "profile", hostCfg.Profile, "Capture CPU profiles when the frame rate drops")
	flag.IntVar(&fieldCfg.ParticleCount, "particles", fieldCfg.ParticleCount, "Number of particles")
	flag.StringVar(&fieldCfg.Theme, "theme", fieldCfg.Theme, "Colour theme (default, african)")
	flag.BoolVar(&fieldCfg.Motes, "motes", fieldCfg.Motes, "Draw the flat mote layer")
	flag.BoolVar(&fieldCfg.Pointer, "pointer", fieldCfg.Pointer, "Draw the pointer follower")
	flag.Uint64Var(&fieldCfg.Seed, "seed", fieldCfg.Seed, "Random seed (0 seeds from the clock)")
	flag.Parse()

	logger, err := config.NewLogger(*debug)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	var profiler *profile.Profiler
	if hostCfg.Profile {
		profiler, err = profile.New(profCfg, logger.Named("profile"))
		if err != nil {
			return err
		}
		defer profiler.Wait()
	}

	g, err := host.NewGame(hostCfg, fieldCfg, profiler, logger)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(hostCfg.ScreenWidth, hostCfg.ScreenHeight)
	ebiten.SetWindowTitle(hostCfg.Title)
	ebiten.SetWindowResizable(true)

	logger.Info("starting window",
		zap.Int("width", hostCfg.ScreenWidth),
		zap.Int("height", hostCfg.ScreenHeight),
		zap.Int("particles", fieldCfg.ParticleCount))

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
