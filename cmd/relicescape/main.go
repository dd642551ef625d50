// Command relicescape runs the Relic Escape adventure, or plays a recorded
// run back without a window.
package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/relicescape/internal/application/game"
	"github.com/younwookim/relicescape/internal/application/scene/playing"
	"github.com/younwookim/relicescape/internal/infrastructure/config"
	"github.com/younwookim/relicescape/internal/infrastructure/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String("config", "", "settings directory (default: built-in configs)")
	recordPath := flag.String("record", "", "record input to file (e.g., -record replay.json)")
	replayPath := flag.String("replay", "", "play a recorded run back headless and report the result")
	seedFlag := flag.Int64("seed", 0, "override the settings seed (0 keeps it)")
	flag.Parse()

	cfg, err := loadConfig(*configDir)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.Settings.Logging)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if *replayPath != "" {
		result, err := runReplay(cfg, *configDir, *replayPath, log)
		if err != nil {
			return err
		}
		log.Info("replay finished",
			zap.String("state", result.State.String()),
			zap.Int("frames", result.Frames),
			zap.Int("health", result.Health))
		return nil
	}

	seed := pickSeed(*seedFlag, cfg.Settings.Seed)
	display := cfg.Settings.Display

	scene := playing.New(cfg, seed, log, *recordPath)
	scene.RecordConfig(*configDir)

	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, log)
	g.SetDT(1.0 / float64(display.Framerate))
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth, display.ScreenHeight)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	log.Info("starting", zap.Int64("seed", seed), zap.String("config", configSource(*configDir)))
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// loadConfig reads settings from dir, or from the embedded configs when dir
// is empty. Data tables missing from dir fall back to the built-in copy.
func loadConfig(dir string) (*config.GameConfig, error) {
	var loader *config.Loader
	if dir == "" {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			return nil, fmt.Errorf("open embedded configs: %w", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	} else {
		loader = config.NewLoader(dir)
	}

	cfg, err := loader.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// pickSeed prefers the flag, then the settings, then the wall clock.
func pickSeed(flagSeed, settingsSeed int64) int64 {
	switch {
	case flagSeed != 0:
		return flagSeed
	case settingsSeed != 0:
		return settingsSeed
	default:
		return time.Now().UnixNano()
	}
}

func configSource(dir string) string {
	if dir == "" {
		return "embedded"
	}
	return dir
}
