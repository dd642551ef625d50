package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/relicescape/internal/domain/entity"
	"github.com/younwookim/relicescape/internal/infrastructure/config"
)

func createTestHazardsConfig() *config.HazardsConfig {
	return &config.HazardsConfig{
		QuicksandSlow: 0.5,
		LavaDamage:    10,
		LavaInterval:  1,
	}
}

func TestHazardSystem_ApplyQuicksand(t *testing.T) {
	sys := NewHazardSystem(createTestHazardsConfig())
	grid := createTestGrid()
	grid.Fill(3, 3, 2, 2, entity.TileQuicksand)

	p := createTestPlayer()
	p.Pos = entity.Vec2{X: 250, Y: 250}
	assert.True(t, sys.ApplyQuicksand(p, grid, entity.TileQuicksand))
	assert.Equal(t, 0.5, p.SlowTimer)

	q := createTestPlayer()
	assert.False(t, sys.ApplyQuicksand(q, grid, entity.TileQuicksand))
	assert.Zero(t, q.SlowTimer)
}

func TestHazardSystem_ApplyLava(t *testing.T) {
	newLava := func() (*HazardSystem, *entity.Grid, *entity.Player) {
		grid := createTestGrid()
		grid.Fill(3, 3, 14, 2, entity.TileQuicksand)
		p := createTestPlayer()
		p.Pos = entity.Vec2{X: 300, Y: 220}
		return NewHazardSystem(createTestHazardsConfig()), grid, p
	}

	t.Run("burns once per interval", func(t *testing.T) {
		sys, grid, p := newLava()

		total := 0
		for i := 0; i < 10; i++ {
			total += sys.ApplyLava(p, grid, entity.TileQuicksand, false, 0.25)
		}

		assert.Equal(t, 20, total)
		assert.Equal(t, 80, p.Health)
	})

	t.Run("resistance prevents damage", func(t *testing.T) {
		sys, grid, p := newLava()

		for i := 0; i < 10; i++ {
			assert.Zero(t, sys.ApplyLava(p, grid, entity.TileQuicksand, true, 0.5))
		}
		assert.Equal(t, 100, p.Health)
	})

	t.Run("off lava takes no damage", func(t *testing.T) {
		sys, grid, p := newLava()
		p.Pos = entity.Vec2{X: 600, Y: 450}

		for i := 0; i < 10; i++ {
			assert.Zero(t, sys.ApplyLava(p, grid, entity.TileQuicksand, false, 0.5))
		}
		assert.Equal(t, 100, p.Health)
	})
}
