package system

import (
	"github.com/younwookim/relicescape/internal/domain/entity"
	"github.com/younwookim/relicescape/internal/infrastructure/config"
)

// HazardSystem applies tile hazards: quicksand slows, lava burns.
type HazardSystem struct {
	config    *config.HazardsConfig
	lavaTimer float64
}

// NewHazardSystem creates a hazard system. Each level owns its own instance.
func NewHazardSystem(cfg *config.HazardsConfig) *HazardSystem {
	return &HazardSystem{config: cfg}
}

// ApplyQuicksand slows the player while it overlaps a tile of kind.
func (s *HazardSystem) ApplyQuicksand(player *entity.Player, grid *entity.Grid, kind entity.TileKind) bool {
	if len(Overlaps(&player.Body, grid, kind)) == 0 {
		return false
	}
	player.Slow(s.config.QuicksandSlow)
	return true
}

// ApplyLava burns the player standing on a tile of kind once per interval.
// The interval clock runs while off lava too, so stepping in after a pause
// burns immediately. Resistance stops the clock entirely. It returns the
// damage dealt this frame.
func (s *HazardSystem) ApplyLava(player *entity.Player, grid *entity.Grid, kind entity.TileKind, resistant bool, dt float64) int {
	if resistant || player.IsDead() {
		return 0
	}

	s.lavaTimer += dt
	if s.lavaTimer < s.config.LavaInterval {
		return 0
	}
	if len(Overlaps(&player.Body, grid, kind)) == 0 {
		return 0
	}

	before := player.Health
	player.TakeDamage(s.config.LavaDamage)
	s.lavaTimer = 0
	return before - player.Health
}
