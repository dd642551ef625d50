package level

import (
	"go.uber.org/zap"

	"github.com/younwookim/relicescape/internal/domain/entity"
)

const potionHeal = 30

// Lava reuses the quicksand tile kind; the inferno treats it as burning ground.
const lavaTile = entity.TileQuicksand

func (l *Level) buildInferno() {
	g := l.Grid
	g.Fill(0, 0, g.Width, g.Height, entity.TileStone)
	g.Border(entity.TileStatue)

	g.Fill(7, 5, 6, 5, entity.TilePyramid)

	g.Fill(3, 3, 14, 2, lavaTile)
	g.Fill(3, 10, 14, 2, lavaTile)
	g.Fill(3, 5, 2, 5, lavaTile)
	g.Fill(15, 5, 2, 5, lavaTile)

	// Safe crossings
	g.Fill(5, 3, 1, 8, entity.TileStone)
	g.Fill(12, 3, 1, 8, entity.TileStone)

	g.Set(10, 2, entity.TilePath)
	g.Set(10, 1, entity.TilePath)
	l.Exit = entity.TileCoord{X: 10, Y: 13}
	g.Set(l.Exit.X, l.Exit.Y, entity.TileExit)

	ts := float64(g.TileSize)
	for _, c := range []entity.TileCoord{{X: 2, Y: 7}, {X: 17, Y: 7}} {
		g.Set(c.X, c.Y, entity.TileChest)
		l.Objects = append(l.Objects, entity.NewObject(entity.ObjectChest, g.TileOrigin(c.X, c.Y), ts))
	}

	def := l.cfg.Tables.Bestiary.Boss
	l.Boss = entity.NewBoss(def.Name, g.TileOrigin(10, 7), entity.BossStats{
		EnemyStats: entity.EnemyStats{
			MaxHealth:      def.Health,
			Size:           def.Size,
			Speed:          def.Speed,
			DetectionRange: def.DetectionRange,
			AttackRange:    def.AttackRange,
			Damage:         def.Damage,
			Cooldown:       def.Cooldown,
		},
		SpecialRadius:   def.SpecialRadius,
		SpecialDamage:   def.SpecialDamage,
		SpecialCooldown: def.SpecialCooldown,
	})

	l.drop(entity.ItemFireResistancePotion, g.TileOrigin(10, 3))
}

// strikeInferno lets the boss take the swing before any minion.
func (l *Level) strikeInferno() {
	if hit, ok := l.combat.StrikeBoss(l.player, l.Boss); ok {
		l.events.Message("Boss hit! -%d damage", hit.Damage)
	} else if hit, ok := l.combat.StrikeEnemies(l.player, l.Enemies); ok && hit.Killed {
		m := l.Enemies[hit.Index]
		if m.Minion && l.combat.Roll(l.cfg.Settings.Drops.PotionChance) {
			l.drop(entity.ItemHealthPotion, m.Pos)
		}
	}

	if l.Boss != nil && l.Boss.IsDead() && !l.bossDefeated {
		l.bossDefeated = true
		l.drop(entity.ItemInfernalCore, l.Boss.Pos)
		l.events.Message("Boss defeated! The Infernal Core appeared! Press E to claim it!")
		l.log.Info("boss defeated", zap.String("boss", l.Boss.Name))
	}
}

// summonMinions calls two scorpions to the arena flanks.
func (l *Level) summonMinions() {
	l.pruneDead()
	for _, c := range []entity.TileCoord{{X: 5, Y: 7}, {X: 14, Y: 7}} {
		m := l.newEnemy(entity.EnemyScorpion, l.Grid.TileOrigin(c.X, c.Y), false)
		m.Minion = true
		l.Enemies = append(l.Enemies, m)
	}
	l.events.Message("Fire minions summoned!")
	l.log.Debug("minions summoned", zap.Int("enemies", len(l.Enemies)))
}
