package config

// Settings is the root of relicescape.toml.
// Durations are seconds, distances are world pixels.
type Settings struct {
	Display  DisplayConfig  `toml:"display"`
	World    WorldConfig    `toml:"world"`
	Player   PlayerConfig   `toml:"player"`
	Interact InteractConfig `toml:"interact"`
	Timers   TimersConfig   `toml:"timers"`
	Spawns   SpawnsConfig   `toml:"spawns"`
	Hazards  HazardsConfig  `toml:"hazards"`
	Drops    DropsConfig    `toml:"drops"`
	Logging  LoggingConfig  `toml:"logging"`
	Seed     int64          `toml:"seed"` // 0 = seed from wall clock
}

type DisplayConfig struct {
	Title          string  `toml:"title"`
	ScreenWidth    int     `toml:"screen_width"`
	ScreenHeight   int     `toml:"screen_height"`
	Framerate      int     `toml:"framerate"`
	ShakeIntensity float64 `toml:"shake_intensity"` // pixels per point of damage taken
	ShakeDecay     float64 `toml:"shake_decay"`     // per-frame multiplier
}

type WorldConfig struct {
	TileSize int     `toml:"tile_size"`
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	PushStep float64 `toml:"push_step"` // push-back distance per blocking tile per frame
}

type PlayerConfig struct {
	MaxHealth      int     `toml:"max_health"`
	Speed          float64 `toml:"speed"`
	Size           float64 `toml:"size"`
	AttackRange    float64 `toml:"attack_range"`
	AttackCooldown float64 `toml:"attack_cooldown"`
	HurtDuration   float64 `toml:"hurt_duration"`
	SlowModifier   float64 `toml:"slow_modifier"`
	StartWeapon    string  `toml:"start_weapon"`
	StartDamage    int     `toml:"start_damage"` // percent of target max health
}

type InteractConfig struct {
	PickupRadius float64 `toml:"pickup_radius"`
	ObjectRadius float64 `toml:"object_radius"`
}

type TimersConfig struct {
	Message         float64 `toml:"message"`
	Dialogue        float64 `toml:"dialogue"`
	Transition      float64 `toml:"transition"`
	TypewriterDelay float64 `toml:"typewriter_delay"`
	CutscenePause   float64 `toml:"cutscene_pause"`
	HitFlash        float64 `toml:"hit_flash"`
}

type SpawnsConfig struct {
	ForestRespawn  float64 `toml:"forest_respawn"`
	DesertScorpion float64 `toml:"desert_scorpion"`
	InfernoMinion  float64 `toml:"inferno_minion"`
}

type HazardsConfig struct {
	QuicksandSlow float64 `toml:"quicksand_slow"`
	LavaDamage    int     `toml:"lava_damage"`
	LavaInterval  float64 `toml:"lava_interval"`
}

type DropsConfig struct {
	CoinChance   float64 `toml:"coin_chance"`   // scorpion kill → Desert Coin
	PotionChance float64 `toml:"potion_chance"` // inferno minion kill → Health Potion
	ChestCoins   int     `toml:"chest_coins"`
	ChestScatter int     `toml:"chest_scatter"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// GameConfig holds every loaded configuration.
type GameConfig struct {
	Settings *Settings
	Tables   *Tables
}
