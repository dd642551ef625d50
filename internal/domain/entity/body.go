package entity

// State is the lifecycle state shared by the player, enemies and the boss.
type State int

const (
	StateIdle State = iota
	StateWalking
	StateAttacking
	StateHurt
	StateDead
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateWalking:
		return "Walking"
	case StateAttacking:
		return "Attacking"
	case StateHurt:
		return "Hurt"
	case StateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Facing is the cardinal direction an entity looks at.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingDown:
		return "Down"
	case FacingUp:
		return "Up"
	case FacingLeft:
		return "Left"
	case FacingRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// FacingToward picks the facing for a movement direction along its dominant axis.
// A zero direction keeps current.
func FacingToward(dir Vec2, current Facing) Facing {
	switch {
	case dir.IsZero():
		return current
	case abs(dir.X) >= abs(dir.Y):
		if dir.X < 0 {
			return FacingLeft
		}
		return FacingRight
	case dir.Y < 0:
		return FacingUp
	default:
		return FacingDown
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Body is the positioned, damageable part of a living entity.
// Pos is the top-left corner of a Size×Size box.
type Body struct {
	Pos       Vec2
	Size      float64
	Health    int
	MaxHealth int
	State     State
	Facing    Facing
}

// NewBody creates a body at full health.
func NewBody(pos Vec2, size float64, maxHealth int) Body {
	return Body{
		Pos:       pos,
		Size:      size,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		State:     StateIdle,
	}
}

// Bounds returns the body's box in world space.
func (b *Body) Bounds() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Size, H: b.Size}
}

// IsDead reports whether the body reached the terminal Dead state.
func (b *Body) IsDead() bool {
	return b.State == StateDead
}

// TakeDamage subtracts amount from health. Dead is terminal: further damage is ignored.
// It reports whether this call killed the body.
func (b *Body) TakeDamage(amount int) bool {
	if b.State == StateDead || amount <= 0 {
		return false
	}
	b.Health -= amount
	if b.Health <= 0 {
		b.Health = 0
		b.State = StateDead
		return true
	}
	return false
}

// Heal restores health up to MaxHealth. Dead bodies stay dead.
func (b *Body) Heal(amount int) {
	if b.State == StateDead || amount <= 0 {
		return
	}
	b.Health = min(b.Health+amount, b.MaxHealth)
}

// Revive returns a body to full health and Idle at pos.
func (b *Body) Revive(pos Vec2) {
	b.Pos = pos
	b.Health = b.MaxHealth
	b.State = StateIdle
}
