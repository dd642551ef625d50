package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/younwookim/relicescape/internal/application/replay"
	"github.com/younwookim/relicescape/internal/application/sim"
	"github.com/younwookim/relicescape/internal/application/state"
	"github.com/younwookim/relicescape/internal/infrastructure/config"
)

// replayResult summarizes where a played-back run ended.
type replayResult struct {
	State  state.GameState
	Frames int
	Health int
	Pos    [2]float64
}

// runReplay loads path and steps a fresh simulation through every recorded
// frame at the configured framerate. Without an explicit configDir the
// settings directory stored in the recording is used, falling back to cfg.
func runReplay(cfg *config.GameConfig, configDir, path string, log *zap.Logger) (replayResult, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return replayResult{}, fmt.Errorf("load replay %s: %w", path, err)
	}
	if configDir == "" && data.Config != "" {
		cfg, err = loadConfig(data.Config)
		if err != nil {
			return replayResult{}, fmt.Errorf("recorded config: %w", err)
		}
	}
	if data.Version != replay.Version {
		log.Warn("replay version mismatch",
			zap.String("file", data.Version),
			zap.String("expected", replay.Version))
	}

	log.Info("replaying",
		zap.String("path", path),
		zap.Int64("seed", data.Seed),
		zap.String("recorded_config", configSource(data.Config)),
		zap.Int("frames", len(data.Frames)))

	return playBack(cfg, replay.NewReplayer(*data), log), nil
}

func playBack(cfg *config.GameConfig, r *replay.Replayer, log *zap.Logger) replayResult {
	s := sim.New(cfg, r.Seed(), log, sim.Hooks{
		OnTransition: func(from, to state.GameState, _ string) {
			log.Debug("replay transition",
				zap.Int("frame", r.CurrentFrame()),
				zap.Stringer("from", from),
				zap.Stringer("to", to))
		},
	})

	dt := 1.0 / float64(cfg.Settings.Display.Framerate)
	for {
		current, previous, ok := r.Next()
		if !ok {
			break
		}
		s.Update(dt, current, previous)
	}

	p := s.Player()
	return replayResult{
		State:  s.State(),
		Frames: s.Frame(),
		Health: p.Health,
		Pos:    [2]float64{p.Pos.X, p.Pos.Y},
	}
}
