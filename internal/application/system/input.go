package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/relicescape/internal/domain/entity"
)

// Action is a logical input the simulation reacts to.
type Action uint8

const (
	ActionUp Action = iota
	ActionDown
	ActionLeft
	ActionRight
	ActionAttack
	ActionInteract
	ActionDigit0
	ActionDigit1
	ActionDigit2
	ActionDigit3
	ActionDigit4
	ActionDigit5
	ActionDigit6
	ActionDigit7
	ActionDigit8
	ActionDigit9
	ActionToggleSign
	ActionBackspace
	ActionSubmit
	ActionCloseShop
	ActionSlot1
	ActionSlot2
	ActionSlot3
	ActionRestart
	actionCount
)

// DigitAction returns the action for digit d (0-9).
func DigitAction(d int) Action {
	return ActionDigit0 + Action(d)
}

// SlotAction returns the purchase action for shop slot i (0-based).
func SlotAction(i int) Action {
	return ActionSlot1 + Action(i)
}

// InputState is a snapshot of held actions, one bit per Action.
type InputState uint64

// With returns s with the given actions held.
func (s InputState) With(actions ...Action) InputState {
	for _, a := range actions {
		s |= 1 << a
	}
	return s
}

// Down reports whether a is held in this snapshot.
func (s InputState) Down(a Action) bool {
	return s&(1<<a) != 0
}

// Frame pairs the current snapshot with the previous frame's.
type Frame struct {
	Current  InputState
	Previous InputState
}

// Down reports whether a is held this frame.
func (f Frame) Down(a Action) bool {
	return f.Current.Down(a)
}

// Pressed reports whether a went down this frame: down now and up previously.
func (f Frame) Pressed(a Action) bool {
	return f.Current.Down(a) && !f.Previous.Down(a)
}

// Direction is the raw movement vector from held direction actions.
func (f Frame) Direction() entity.Vec2 {
	var d entity.Vec2
	if f.Down(ActionUp) {
		d.Y--
	}
	if f.Down(ActionDown) {
		d.Y++
	}
	if f.Down(ActionLeft) {
		d.X--
	}
	if f.Down(ActionRight) {
		d.X++
	}
	return d
}

var digitKeys = [10]ebiten.Key{
	ebiten.KeyDigit0, ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

var numpadKeys = [10]ebiten.Key{
	ebiten.KeyNumpad0, ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3, ebiten.KeyNumpad4,
	ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9,
}

// InputSystem reads the keyboard and drives the player from it.
type InputSystem struct {
	bindings map[Action][]ebiten.Key
}

// NewInputSystem creates an input system with the default key bindings
func NewInputSystem() *InputSystem {
	b := map[Action][]ebiten.Key{
		ActionUp:         {ebiten.KeyW, ebiten.KeyArrowUp},
		ActionDown:       {ebiten.KeyS, ebiten.KeyArrowDown},
		ActionLeft:       {ebiten.KeyA, ebiten.KeyArrowLeft},
		ActionRight:      {ebiten.KeyD, ebiten.KeyArrowRight},
		ActionAttack:     {ebiten.KeySpace},
		ActionInteract:   {ebiten.KeyE},
		ActionToggleSign: {ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
		ActionBackspace:  {ebiten.KeyBackspace},
		ActionSubmit:     {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
		ActionCloseShop:  {ebiten.KeyTab},
		ActionSlot1:      {ebiten.KeyDigit1},
		ActionSlot2:      {ebiten.KeyDigit2},
		ActionSlot3:      {ebiten.KeyDigit3},
		ActionRestart:    {ebiten.KeyR},
	}
	for d := range digitKeys {
		b[DigitAction(d)] = []ebiten.Key{digitKeys[d], numpadKeys[d]}
	}
	return &InputSystem{bindings: b}
}

// Poll reads the held actions from the keyboard.
func (s *InputSystem) Poll() InputState {
	var st InputState
	for a := Action(0); a < actionCount; a++ {
		for _, k := range s.bindings[a] {
			if ebiten.IsKeyPressed(k) {
				st = st.With(a)
				break
			}
		}
	}
	return st
}

// UpdatePlayer advances the player's timers, movement and attack from input.
func (s *InputSystem) UpdatePlayer(player *entity.Player, frame Frame, dt float64) {
	if player.IsDead() {
		return
	}

	s.updateTimers(player, dt)

	// Hurt players ignore input until the flinch ends
	if player.IsHurt() {
		return
	}

	s.handleMovement(player, frame, dt)
	s.handleAttack(player, frame)
}

func (s *InputSystem) updateTimers(player *entity.Player, dt float64) {
	if player.AttackCooldown > 0 {
		player.AttackCooldown -= dt
	}

	if player.HurtTimer > 0 {
		player.HurtTimer -= dt
		if player.HurtTimer <= 0 && player.State == entity.StateHurt {
			player.State = entity.StateIdle
		}
	}

	if player.SlowTimer > 0 {
		player.SlowTimer -= dt
		player.SpeedModifier = player.Stats.SlowModifier
	} else {
		player.SpeedModifier = 1
	}
}

func (s *InputSystem) handleMovement(player *entity.Player, frame Frame, dt float64) {
	dir := frame.Direction()
	if dir.IsZero() {
		player.State = entity.StateIdle
		return
	}

	dir = dir.Normalize()
	player.Pos = player.Pos.Add(dir.Scale(player.Speed * player.SpeedModifier * dt))
	player.Facing = entity.FacingToward(dir, player.Facing)
	player.State = entity.StateWalking
	player.Moved = true
}

func (s *InputSystem) handleAttack(player *entity.Player, frame Frame) {
	if frame.Pressed(ActionAttack) && player.StartAttack() {
		return
	}
	if player.AttackCooldown <= 0 {
		player.Attacking = false
		player.AttackHit = false
	}
	if player.Attacking {
		player.State = entity.StateAttacking
	}
}
