package system

import (
	"math/rand"

	"github.com/younwookim/relicescape/internal/domain/entity"
	"github.com/younwookim/relicescape/internal/infrastructure/config"
)

// AISystem drives enemies and the boss toward the player.
type AISystem struct {
	wander *config.WanderDef
	rng    *rand.Rand
}

// NewAISystem creates an AI system. rng drives wandering and must be seeded
// by the caller for reproducible runs.
func NewAISystem(wander *config.WanderDef, rng *rand.Rand) *AISystem {
	return &AISystem{wander: wander, rng: rng}
}

// UpdateEnemy chases and bites the player inside detection range and wanders
// otherwise. It returns the health the player lost.
func (s *AISystem) UpdateEnemy(e *entity.Enemy, player *entity.Player, dt float64) int {
	if e.IsDead() {
		return 0
	}
	if e.CooldownTimer > 0 {
		e.CooldownTimer -= dt
	}

	dist := e.Pos.Dist(player.Pos)
	if dist >= e.Stats.DetectionRange {
		s.wanderStep(e, dt)
		return 0
	}

	chase(&e.Body, player.Pos, e.Stats.Speed, dt)

	if dist < e.Stats.AttackRange && e.CooldownTimer <= 0 && !player.IsDead() {
		e.CooldownTimer = e.Stats.Cooldown
		return hurt(player, e.Stats.Damage)
	}
	return 0
}

// UpdateBoss chases the player inside detection range with a melee attack
// and an area special on separate cooldowns. Outside the range it idles.
func (s *AISystem) UpdateBoss(b *entity.Boss, player *entity.Player, dt float64) int {
	if b.IsDead() {
		return 0
	}
	if b.CooldownTimer > 0 {
		b.CooldownTimer -= dt
	}
	if b.SpecialTimer > 0 {
		b.SpecialTimer -= dt
	}

	dist := b.Pos.Dist(player.Pos)
	if dist >= b.Stats.DetectionRange {
		b.State = entity.StateIdle
		return 0
	}

	chase(&b.Body, player.Pos, b.Stats.Speed, dt)

	lost := 0
	if dist < b.Stats.AttackRange && b.CooldownTimer <= 0 && !player.IsDead() {
		b.CooldownTimer = b.Stats.Cooldown
		lost += hurt(player, b.Stats.Damage)
	}
	if dist < b.Stats.SpecialRadius && b.SpecialTimer <= 0 && !player.IsDead() {
		b.SpecialTimer = b.Stats.SpecialCooldown
		lost += hurt(player, b.Stats.SpecialDamage)
	}
	return lost
}

func chase(body *entity.Body, target entity.Vec2, speed, dt float64) {
	dir := target.Sub(body.Pos)
	if dir.IsZero() {
		return
	}
	dir = dir.Normalize()
	body.Pos = body.Pos.Add(dir.Scale(speed * dt))
	body.Facing = entity.FacingToward(dir, body.Facing)
	body.State = entity.StateWalking
}

func (s *AISystem) wanderStep(e *entity.Enemy, dt float64) {
	w := s.wander

	e.WanderTimer -= dt
	if e.WanderTimer <= 0 {
		r := int(w.Radius)
		e.WanderTarget = e.Pos.Add(entity.Vec2{
			X: float64(s.rng.Intn(2*r+1) - r),
			Y: float64(s.rng.Intn(2*r+1) - r),
		})
		e.WanderTimer = float64(w.MinDelay + s.rng.Intn(w.MaxDelay-w.MinDelay))
	}

	dir := e.WanderTarget.Sub(e.Pos)
	if dir.Len() <= w.ArriveDistance {
		e.State = entity.StateIdle
		return
	}
	dir = dir.Normalize()
	e.Pos = e.Pos.Add(dir.Scale(e.Stats.Speed * w.SpeedFactor * dt))
	e.Facing = entity.FacingToward(dir, e.Facing)
	e.State = entity.StateWalking
}

func hurt(player *entity.Player, amount int) int {
	before := player.Health
	player.TakeDamage(amount)
	return before - player.Health
}
