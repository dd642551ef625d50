package entity

// EnemyKind identifies a regular enemy species.
type EnemyKind int

const (
	EnemySnake EnemyKind = iota
	EnemySpider
	EnemyScorpion
)

func (k EnemyKind) String() string {
	switch k {
	case EnemySnake:
		return "Snake"
	case EnemySpider:
		return "Spider"
	case EnemyScorpion:
		return "Scorpion"
	default:
		return "Unknown"
	}
}

// Key returns the bestiary table key of the kind.
func (k EnemyKind) Key() string {
	switch k {
	case EnemySnake:
		return "snake"
	case EnemySpider:
		return "spider"
	case EnemyScorpion:
		return "scorpion"
	default:
		return ""
	}
}

// EnemyStats are per-species combat and movement values.
type EnemyStats struct {
	MaxHealth      int
	Size           float64
	Speed          float64
	DetectionRange float64
	AttackRange    float64
	Damage         int
	Cooldown       float64
}

// Enemy is a hostile creature that chases and bites the player.
type Enemy struct {
	Body
	Kind  EnemyKind
	Stats EnemyStats

	CooldownTimer float64
	DropsKey      bool
	Minion        bool // summoned by the boss
	JustKilled    bool // died during the current frame

	WanderTarget Vec2
	WanderTimer  float64
}

// NewEnemy creates an enemy at pos.
func NewEnemy(kind EnemyKind, pos Vec2, stats EnemyStats) *Enemy {
	return &Enemy{
		Body:         NewBody(pos, stats.Size, stats.MaxHealth),
		Kind:         kind,
		Stats:        stats,
		WanderTarget: pos,
	}
}

// Respawn brings a dead enemy back at pos carrying a key again.
func (e *Enemy) Respawn(pos Vec2) {
	e.Revive(pos)
	e.CooldownTimer = 0
	e.DropsKey = true
	e.JustKilled = false
	e.WanderTarget = pos
	e.WanderTimer = 0
}

// BossStats extends enemy stats with the area special attack.
type BossStats struct {
	EnemyStats
	SpecialRadius   float64
	SpecialDamage   int
	SpecialCooldown float64
}

// Boss is the guardian of the final level.
type Boss struct {
	Body
	Name  string
	Stats BossStats

	CooldownTimer float64
	SpecialTimer  float64
}

// NewBoss creates a boss at pos.
func NewBoss(name string, pos Vec2, stats BossStats) *Boss {
	return &Boss{
		Body:  NewBody(pos, stats.Size, stats.MaxHealth),
		Name:  name,
		Stats: stats,
	}
}

// DummyKind is the look of a training dummy.
type DummyKind int

const (
	DummyScarecrow DummyKind = iota
	DummyPumpkin
)

func (k DummyKind) String() string {
	switch k {
	case DummyScarecrow:
		return "Scarecrow"
	case DummyPumpkin:
		return "Pumpkin"
	default:
		return "Unknown"
	}
}

// Key returns the bestiary table key of the kind.
func (k DummyKind) Key() string {
	switch k {
	case DummyScarecrow:
		return "scarecrow"
	case DummyPumpkin:
		return "pumpkin"
	default:
		return ""
	}
}

// TrainingDummy is a stationary target for practicing attacks.
type TrainingDummy struct {
	Body
	Kind      DummyKind
	FlashTime float64 // hit flash remaining
}

// NewTrainingDummy creates a dummy at pos.
func NewTrainingDummy(kind DummyKind, pos Vec2, size float64, health int) *TrainingDummy {
	return &TrainingDummy{
		Body: NewBody(pos, size, health),
		Kind: kind,
	}
}

// Hit damages the dummy and starts its flash.
func (d *TrainingDummy) Hit(amount int, flash float64) bool {
	if d.IsDead() {
		return false
	}
	d.FlashTime = flash
	return d.TakeDamage(amount)
}

// Update fades the hit flash.
func (d *TrainingDummy) Update(dt float64) {
	if d.FlashTime > 0 {
		d.FlashTime -= dt
	}
}
