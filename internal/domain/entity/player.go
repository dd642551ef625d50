package entity

// Weapon is the held melee weapon. Damage is a percent of the target's max health.
type Weapon struct {
	Name   string
	Damage int
}

// PlayerStats are the tunables a player is created with.
type PlayerStats struct {
	MaxHealth    int
	Speed        float64
	Size         float64
	AttackRange  float64
	AttackDelay  float64
	HurtDuration float64
	SlowModifier float64
	Weapon       Weapon
}

// Player represents the player entity
type Player struct {
	Body
	Stats PlayerStats

	Speed         float64
	SpeedModifier float64

	// Timers (seconds remaining)
	AttackCooldown float64
	HurtTimer      float64
	SlowTimer      float64

	Attacking bool
	AttackHit bool // a target already took the current swing
	Moved     bool // moved at least once since creation

	Weapon    Weapon
	Relics    []ItemKind
	Inventory *Inventory
}

// NewPlayer creates a new player at pos
func NewPlayer(pos Vec2, stats PlayerStats) *Player {
	return &Player{
		Body:          NewBody(pos, stats.Size, stats.MaxHealth),
		Stats:         stats,
		Speed:         stats.Speed,
		SpeedModifier: 1,
		Weapon:        stats.Weapon,
		Inventory:     NewInventory(),
	}
}

// TakeDamage applies damage; a surviving player flinches for HurtDuration.
func (p *Player) TakeDamage(amount int) bool {
	if p.IsDead() || amount <= 0 {
		return false
	}
	if p.Body.TakeDamage(amount) {
		p.Attacking = false
		return true
	}
	p.State = StateHurt
	p.HurtTimer = p.Stats.HurtDuration
	return false
}

// IsHurt reports whether the player is stunned by a recent hit.
func (p *Player) IsHurt() bool {
	return p.State == StateHurt
}

// Slow applies the quicksand slow for duration seconds.
func (p *Player) Slow(duration float64) {
	if duration > p.SlowTimer {
		p.SlowTimer = duration
	}
}

// StartAttack begins a swing if the cooldown allows it.
func (p *Player) StartAttack() bool {
	if p.AttackCooldown > 0 || p.IsDead() {
		return false
	}
	p.Attacking = true
	p.AttackHit = false
	p.AttackCooldown = p.Stats.AttackDelay
	p.State = StateAttacking
	return true
}

// CanHit reports whether the current swing may still damage a target.
func (p *Player) CanHit() bool {
	return p.Attacking && !p.AttackHit
}

// Equip takes a relic. A weapon replaces the held weapon; other relics are
// only archived.
func (p *Player) Equip(kind ItemKind, damage int, weapon bool) {
	if weapon {
		p.Weapon = Weapon{Name: kind.String(), Damage: damage}
	}
	if !p.HasRelic(kind) {
		p.Relics = append(p.Relics, kind)
	}
}

// HasRelic reports whether the relic was ever collected.
func (p *Player) HasRelic(kind ItemKind) bool {
	for _, r := range p.Relics {
		if r == kind {
			return true
		}
	}
	return false
}
