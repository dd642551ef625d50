package system

import (
	"math"
	"math/rand"

	"github.com/younwookim/relicescape/internal/domain/entity"
)

// Damage converts a weapon percent into hit points against a target with
// maxHealth, rounding up so every hit deals at least one point.
func Damage(maxHealth, percent int) int {
	if maxHealth <= 0 || percent <= 0 {
		return 0
	}
	return int(math.Ceil(float64(maxHealth*percent) / 100))
}

// Hit describes the single target a swing connected with.
type Hit struct {
	Index  int
	Damage int
	Killed bool
}

// KeyPolicy decides whether a slain enemy of kind drops a key while the
// player holds keys keys.
type KeyPolicy func(kind entity.EnemyKind, keys int) bool

// ForestKeyPolicy hands out the three forest keys in a fixed order:
// snake, spider, snake.
func ForestKeyPolicy(kind entity.EnemyKind, keys int) bool {
	switch keys {
	case 0, 2:
		return kind == entity.EnemySnake
	case 1:
		return kind == entity.EnemySpider
	}
	return false
}

// AlwaysKeyPolicy drops a key from every enemy still carrying one.
func AlwaysKeyPolicy(entity.EnemyKind, int) bool {
	return true
}

// CombatSystem resolves player swings and loot rolls.
type CombatSystem struct {
	hitFlash float64
	rng      *rand.Rand
}

// NewCombatSystem creates a combat system. hitFlash is how long a struck
// dummy flashes.
func NewCombatSystem(hitFlash float64, rng *rand.Rand) *CombatSystem {
	return &CombatSystem{hitFlash: hitFlash, rng: rng}
}

// strike walks n targets in order and lets the first live one in range take
// the swing. Later targets are skipped once the swing has landed.
func (s *CombatSystem) strike(player *entity.Player, n int, body func(int) *entity.Body, apply func(int) (int, bool)) (Hit, bool) {
	if !player.CanHit() {
		return Hit{}, false
	}
	for i := 0; i < n; i++ {
		if player.AttackHit {
			break
		}
		b := body(i)
		if b.IsDead() || player.Pos.Dist(b.Pos) >= player.Stats.AttackRange {
			continue
		}
		dmg, killed := apply(i)
		player.AttackHit = true
		return Hit{Index: i, Damage: dmg, Killed: killed}, true
	}
	return Hit{}, false
}

// StrikeEnemies applies the current swing to the first enemy in reach.
// A kill marks the enemy as slain this frame.
func (s *CombatSystem) StrikeEnemies(player *entity.Player, enemies []*entity.Enemy) (Hit, bool) {
	return s.strike(player, len(enemies),
		func(i int) *entity.Body { return &enemies[i].Body },
		func(i int) (int, bool) {
			e := enemies[i]
			dmg := Damage(e.MaxHealth, player.Weapon.Damage)
			killed := e.TakeDamage(dmg)
			if killed {
				e.JustKilled = true
			}
			return dmg, killed
		})
}

// StrikeBoss applies the current swing to the boss when it is in reach.
func (s *CombatSystem) StrikeBoss(player *entity.Player, boss *entity.Boss) (Hit, bool) {
	if boss == nil {
		return Hit{}, false
	}
	return s.strike(player, 1,
		func(int) *entity.Body { return &boss.Body },
		func(int) (int, bool) {
			dmg := Damage(boss.MaxHealth, player.Weapon.Damage)
			return dmg, boss.TakeDamage(dmg)
		})
}

// StrikeDummies applies the current swing to the first dummy in reach.
// Dummies take the weapon percent as flat damage.
func (s *CombatSystem) StrikeDummies(player *entity.Player, dummies []*entity.TrainingDummy) (Hit, bool) {
	return s.strike(player, len(dummies),
		func(i int) *entity.Body { return &dummies[i].Body },
		func(i int) (int, bool) {
			dmg := player.Weapon.Damage
			return dmg, dummies[i].Hit(dmg, s.hitFlash)
		})
}

// DropKey consumes the enemy's key flag when policy allows a drop.
func (s *CombatSystem) DropKey(e *entity.Enemy, keys int, policy KeyPolicy) bool {
	if !e.DropsKey || !policy(e.Kind, keys) {
		return false
	}
	e.DropsKey = false
	return true
}

// Roll reports success with probability chance.
func (s *CombatSystem) Roll(chance float64) bool {
	return s.rng.Float64() < chance
}

// Scatter returns pos shifted by an independent offset in [-spread, spread)
// on each axis.
func (s *CombatSystem) Scatter(pos entity.Vec2, spread int) entity.Vec2 {
	if spread <= 0 {
		return pos
	}
	return pos.Add(entity.Vec2{
		X: float64(s.rng.Intn(2*spread) - spread),
		Y: float64(s.rng.Intn(2*spread) - spread),
	})
}
