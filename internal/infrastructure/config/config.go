package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads a TOML settings file on top of the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML settings. Keys absent from data keep their default.
func Parse(data []byte) (*Settings, error) {
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in settings.
func Default() *Settings {
	return defaults()
}

// Validate rejects settings the simulation cannot run with.
func (s *Settings) Validate() error {
	var errs []error
	if s.World.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("world.tile_size must be positive, got %d", s.World.TileSize))
	}
	if s.World.Width < 4 || s.World.Height < 4 {
		errs = append(errs, fmt.Errorf("world must be at least 4x4 tiles, got %dx%d", s.World.Width, s.World.Height))
	}
	if s.Player.MaxHealth <= 0 {
		errs = append(errs, fmt.Errorf("player.max_health must be positive, got %d", s.Player.MaxHealth))
	}
	if s.Display.Framerate <= 0 {
		errs = append(errs, fmt.Errorf("display.framerate must be positive, got %d", s.Display.Framerate))
	}
	if s.Hazards.LavaInterval <= 0 {
		errs = append(errs, fmt.Errorf("hazards.lava_interval must be positive, got %g", s.Hazards.LavaInterval))
	}
	return errors.Join(errs...)
}

func defaults() *Settings {
	return &Settings{
		Display: DisplayConfig{
			Title:          "Relic Escape",
			ScreenWidth:    1280,
			ScreenHeight:   960,
			Framerate:      60,
			ShakeIntensity: 0.5,
			ShakeDecay:     0.85,
		},
		World: WorldConfig{
			TileSize: 64,
			Width:    20,
			Height:   15,
			PushStep: 2,
		},
		Player: PlayerConfig{
			MaxHealth:      100,
			Speed:          150,
			Size:           32,
			AttackRange:    50,
			AttackCooldown: 0.5,
			HurtDuration:   0.3,
			SlowModifier:   0.4,
			StartWeapon:    "Wooden Stick",
			StartDamage:    10,
		},
		Interact: InteractConfig{
			PickupRadius: 50,
			ObjectRadius: 60,
		},
		Timers: TimersConfig{
			Message:         3,
			Dialogue:        5,
			Transition:      2,
			TypewriterDelay: 0.05,
			CutscenePause:   5,
			HitFlash:        0.2,
		},
		Spawns: SpawnsConfig{
			ForestRespawn:  10,
			DesertScorpion: 8,
			InfernoMinion:  15,
		},
		Hazards: HazardsConfig{
			QuicksandSlow: 0.5,
			LavaDamage:    10,
			LavaInterval:  1,
		},
		Drops: DropsConfig{
			CoinChance:   0.3,
			PotionChance: 0.4,
			ChestCoins:   3,
			ChestScatter: 20,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
