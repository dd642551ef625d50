package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/relicescape/internal/domain/entity"
)

// testRNG returns a seeded RNG for deterministic tests
func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func createTestPlayer() *entity.Player {
	return entity.NewPlayer(entity.Vec2{X: 128, Y: 448}, entity.PlayerStats{
		MaxHealth:    100,
		Speed:        150,
		Size:         32,
		AttackRange:  50,
		AttackDelay:  0.5,
		HurtDuration: 0.3,
		SlowModifier: 0.4,
		Weapon:       entity.Weapon{Name: "Wooden Stick", Damage: 10},
	})
}

func held(actions ...Action) InputState {
	return InputState(0).With(actions...)
}

func TestInputState(t *testing.T) {
	s := held(ActionUp, ActionAttack)

	assert.True(t, s.Down(ActionUp))
	assert.True(t, s.Down(ActionAttack))
	assert.False(t, s.Down(ActionDown))
	assert.Equal(t, ActionDigit7, DigitAction(7))
	assert.Equal(t, ActionSlot3, SlotAction(2))
}

func TestFrame_Pressed(t *testing.T) {
	tests := []struct {
		name     string
		current  InputState
		previous InputState
		want     bool
	}{
		{"rising edge", held(ActionInteract), 0, true},
		{"held", held(ActionInteract), held(ActionInteract), false},
		{"released", 0, held(ActionInteract), false},
		{"idle", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Frame{Current: tt.current, Previous: tt.previous}
			assert.Equal(t, tt.want, f.Pressed(ActionInteract))
		})
	}
}

func TestNewInputSystem(t *testing.T) {
	sys := NewInputSystem()

	require.NotNil(t, sys)
	for a := Action(0); a < actionCount; a++ {
		assert.NotEmpty(t, sys.bindings[a], "action %d has no key", a)
	}
}

func TestInputSystem_HandleMovement(t *testing.T) {
	sys := NewInputSystem()

	t.Run("diagonal is normalized", func(t *testing.T) {
		p := createTestPlayer()
		start := p.Pos

		sys.UpdatePlayer(p, Frame{Current: held(ActionRight, ActionDown)}, 0.1)

		step := 150 * 0.1 / math.Sqrt2
		assert.InDelta(t, start.X+step, p.Pos.X, 1e-9)
		assert.InDelta(t, start.Y+step, p.Pos.Y, 1e-9)
		assert.Equal(t, entity.StateWalking, p.State)
		assert.True(t, p.Moved)
	})

	t.Run("opposite keys cancel", func(t *testing.T) {
		p := createTestPlayer()
		start := p.Pos

		sys.UpdatePlayer(p, Frame{Current: held(ActionLeft, ActionRight)}, 0.1)

		assert.Equal(t, start, p.Pos)
		assert.Equal(t, entity.StateIdle, p.State)
		assert.False(t, p.Moved)
	})

	t.Run("slow modifier applies", func(t *testing.T) {
		p := createTestPlayer()
		p.Slow(0.5)
		start := p.Pos

		sys.UpdatePlayer(p, Frame{Current: held(ActionUp)}, 0.1)

		assert.Equal(t, 0.4, p.SpeedModifier)
		assert.InDelta(t, start.Y-150*0.4*0.1, p.Pos.Y, 1e-9)
		assert.Equal(t, entity.FacingUp, p.Facing)
	})

	t.Run("modifier returns to one after slow ends", func(t *testing.T) {
		p := createTestPlayer()
		p.SpeedModifier = 0.4

		sys.UpdatePlayer(p, Frame{}, 0.1)

		assert.Equal(t, 1.0, p.SpeedModifier)
	})
}

func TestInputSystem_HurtIgnoresInput(t *testing.T) {
	sys := NewInputSystem()
	p := createTestPlayer()
	p.TakeDamage(10)
	start := p.Pos

	sys.UpdatePlayer(p, Frame{Current: held(ActionRight, ActionAttack)}, 0.1)

	assert.Equal(t, start, p.Pos)
	assert.False(t, p.Attacking)
	assert.Equal(t, entity.StateHurt, p.State)

	// Flinch ends after 0.3s
	sys.UpdatePlayer(p, Frame{}, 0.25)
	assert.Equal(t, entity.StateIdle, p.State)
}

func TestInputSystem_HandleAttack(t *testing.T) {
	sys := NewInputSystem()

	t.Run("edge triggered", func(t *testing.T) {
		p := createTestPlayer()

		sys.UpdatePlayer(p, Frame{Current: held(ActionAttack)}, 0.016)
		require.True(t, p.Attacking)
		assert.Equal(t, entity.StateAttacking, p.State)
		assert.InDelta(t, 0.5, p.AttackCooldown, 1e-9)

		// Holding the key does not restart the swing
		p.AttackHit = true
		sys.UpdatePlayer(p, Frame{Current: held(ActionAttack), Previous: held(ActionAttack)}, 0.016)
		assert.True(t, p.AttackHit)
	})

	t.Run("cooldown blocks new swing", func(t *testing.T) {
		p := createTestPlayer()
		p.AttackCooldown = 0.3

		sys.UpdatePlayer(p, Frame{Current: held(ActionAttack)}, 0.016)

		assert.False(t, p.Attacking)
	})

	t.Run("swing ends with cooldown", func(t *testing.T) {
		p := createTestPlayer()
		sys.UpdatePlayer(p, Frame{Current: held(ActionAttack)}, 0.016)
		p.AttackHit = true

		for i := 0; i < 40; i++ {
			sys.UpdatePlayer(p, Frame{}, 0.016)
		}

		assert.False(t, p.Attacking)
		assert.False(t, p.AttackHit)
		assert.Equal(t, entity.StateIdle, p.State)
	})

	t.Run("dead player is frozen", func(t *testing.T) {
		p := createTestPlayer()
		p.TakeDamage(200)
		start := p.Pos

		sys.UpdatePlayer(p, Frame{Current: held(ActionRight, ActionAttack)}, 0.1)

		assert.Equal(t, start, p.Pos)
		assert.Equal(t, entity.StateDead, p.State)
	})
}
