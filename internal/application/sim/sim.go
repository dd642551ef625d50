// Package sim runs the level progression of Relic Escape: it owns the player
// and every level, moves between them, and exposes what the host needs to
// draw a frame.
package sim

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/younwookim/relicescape/internal/application/level"
	"github.com/younwookim/relicescape/internal/application/state"
	"github.com/younwookim/relicescape/internal/application/system"
	"github.com/younwookim/relicescape/internal/domain/entity"
	"github.com/younwookim/relicescape/internal/infrastructure/config"
)

// Hooks are optional host callbacks fired while events are dispatched.
// OnTransition receives the narration or notice text that came with the
// request, empty for timed and restart transitions.
type Hooks struct {
	OnMessage        func(text string)
	OnDialogue       func(speaker, text string)
	OnDamageFeedback func(amount int)
	OnTransition     func(from, to state.GameState, text string)
}

// Dialogue is the NPC line currently on screen.
type Dialogue struct {
	Speaker string
	Text    string
}

// Simulation is the whole game below the host. It is not safe for
// concurrent use.
type Simulation struct {
	cfg   *config.GameConfig
	log   *zap.Logger
	hooks Hooks
	seed  int64
	rng   *rand.Rand

	state  state.GameState
	frame  int
	player *entity.Player
	levels [4]*level.Level
	events *system.EventQueue

	message       string
	messageTimer  float64
	dialogue      *Dialogue
	dialogueTimer float64

	transitionTimer float64
	narration       *Typewriter
	afterNarration  state.GameState
}

// New creates a simulation seeded with seed and starts the tutorial.
func New(cfg *config.GameConfig, seed int64, log *zap.Logger, hooks Hooks) *Simulation {
	s := &Simulation{
		cfg:    cfg,
		log:    log,
		hooks:  hooks,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		events: &system.EventQueue{},
	}
	s.reset()
	return s
}

// NewPlayer creates a player from the [player] settings.
func NewPlayer(s *config.Settings) *entity.Player {
	pc := s.Player
	return entity.NewPlayer(entity.Vec2{}, entity.PlayerStats{
		MaxHealth:    pc.MaxHealth,
		Speed:        pc.Speed,
		Size:         pc.Size,
		AttackRange:  pc.AttackRange,
		AttackDelay:  pc.AttackCooldown,
		HurtDuration: pc.HurtDuration,
		SlowModifier: pc.SlowModifier,
		Weapon:       entity.Weapon{Name: pc.StartWeapon, Damage: pc.StartDamage},
	})
}

// reset builds a fresh player and fresh levels and enters the tutorial.
func (s *Simulation) reset() {
	s.player = NewPlayer(s.cfg.Settings)
	for k := range s.levels {
		s.levels[k] = level.New(level.Kind(k), s.player, s.cfg, s.rng, s.log, s.events)
	}

	s.state = state.StateTutorial
	s.message, s.messageTimer = "", 0
	s.dialogue, s.dialogueTimer = nil, 0
	s.transitionTimer = 0
	s.narration = nil

	s.levels[level.KindTutorial].Enter()
	s.dispatch()
}

// Update advances the game by one frame of dt seconds. current and previous
// are the held actions of this frame and the last.
func (s *Simulation) Update(dt float64, current, previous system.InputState) {
	frame := system.Frame{Current: current, Previous: previous}
	s.frame++
	s.tickUI(dt)

	switch {
	case s.state.IsPlaying():
		s.updatePlaying(dt, frame)
	case s.state.IsTransition():
		s.updateTransition(dt)
	case s.state == state.StateCutscene:
		if s.narration.Update(dt) {
			s.player.Inventory.Clear(entity.ItemKey)
			s.setState(s.afterNarration, "")
		}
	case s.state == state.StateVictory:
		s.narration.Update(dt)
	case s.state == state.StateGameOver:
		if frame.Pressed(system.ActionRestart) {
			s.restart()
		}
	}
}

func (s *Simulation) updatePlaying(dt float64, frame system.Frame) {
	lv := s.Level()
	lv.Update(dt, frame)
	s.dispatch()

	if s.player.IsDead() && s.state.IsPlaying() {
		s.log.Info("player died", zap.Stringer("level", lv.Kind), zap.Int("frame", s.frame))
		s.setState(state.StateGameOver, "")
	}
}

func (s *Simulation) updateTransition(dt float64) {
	s.transitionTimer -= dt
	if s.transitionTimer > 0 {
		return
	}
	dest, _ := s.state.Destination()
	s.setState(dest, "")
	s.Level().Enter()
	s.dispatch()
}

func (s *Simulation) tickUI(dt float64) {
	if s.messageTimer > 0 {
		s.messageTimer -= dt
		if s.messageTimer <= 0 {
			s.message = ""
		}
	}
	if s.dialogueTimer > 0 {
		s.dialogueTimer -= dt
		if s.dialogueTimer <= 0 {
			s.dialogue = nil
		}
	}
}

// dispatch applies and forwards every queued event in emission order.
func (s *Simulation) dispatch() {
	timers := s.cfg.Settings.Timers
	for _, ev := range s.events.Drain() {
		switch e := ev.(type) {
		case system.MessageEvent:
			s.message = e.Text
			s.messageTimer = timers.Message
			if s.hooks.OnMessage != nil {
				s.hooks.OnMessage(e.Text)
			}
		case system.DialogueEvent:
			s.dialogue = &Dialogue{Speaker: e.Speaker, Text: e.Text}
			s.dialogueTimer = timers.Dialogue
			if s.hooks.OnDialogue != nil {
				s.hooks.OnDialogue(e.Speaker, e.Text)
			}
		case system.DamageFeedbackEvent:
			if s.hooks.OnDamageFeedback != nil {
				s.hooks.OnDamageFeedback(e.Amount)
			}
		case system.TransitionEvent:
			s.transition(e)
		}
	}
}

// transition follows a level's exit request. Requests that do not fit the
// current state are ignored.
func (s *Simulation) transition(e system.TransitionEvent) {
	if !s.state.IsPlaying() {
		return
	}
	timers := s.cfg.Settings.Timers

	switch e.To {
	case state.StateTransition:
		if s.state == state.StateTutorial {
			s.setState(state.StateTransition, e.Text)
		}
	case state.StateCutscene:
		switch s.state {
		case state.StateLevel1:
			s.afterNarration = state.StateLevel2Transition
		case state.StateLevel2:
			s.afterNarration = state.StateLevel3Transition
		default:
			s.afterNarration = state.StateGameOver
		}
		s.narration = NewTypewriter(e.Text, timers.TypewriterDelay, timers.CutscenePause)
		s.setState(state.StateCutscene, e.Text)
	case state.StateVictory:
		if s.state == state.StateLevel3 {
			s.narration = NewTypewriter(e.Text, timers.TypewriterDelay, timers.CutscenePause)
			s.setState(state.StateVictory, e.Text)
		}
	}
}

func (s *Simulation) setState(to state.GameState, text string) {
	from := s.state
	s.state = to
	if to.IsTransition() {
		s.transitionTimer = s.cfg.Settings.Timers.Transition
	}

	s.log.Info("state changed",
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Int("frame", s.frame))
	if s.hooks.OnTransition != nil {
		s.hooks.OnTransition(from, to, text)
	}
}

// restart rebuilds the player and every level and returns to the tutorial.
// The random stream continues so a recorded run replays identically.
func (s *Simulation) restart() {
	s.log.Info("restart", zap.Int("frame", s.frame))
	from := s.state
	s.reset()
	if s.hooks.OnTransition != nil {
		s.hooks.OnTransition(from, s.state, "")
	}
}

// State returns the current progression state.
func (s *Simulation) State() state.GameState { return s.state }

// Frame returns the number of frames simulated so far.
func (s *Simulation) Frame() int { return s.frame }

// Seed returns the seed the simulation was created with.
func (s *Simulation) Seed() int64 { return s.seed }

// Player returns the current player.
func (s *Simulation) Player() *entity.Player { return s.player }

// Level returns the level the current state plays or leads to, nil for
// states without one.
func (s *Simulation) Level() *level.Level {
	st := s.state
	if dest, ok := st.Destination(); ok {
		st = dest
	}
	switch st {
	case state.StateTutorial:
		return s.levels[level.KindTutorial]
	case state.StateLevel1:
		return s.levels[level.KindForest]
	case state.StateLevel2:
		return s.levels[level.KindDesert]
	case state.StateLevel3:
		return s.levels[level.KindInferno]
	}
	return nil
}

// LevelOf returns the level of kind.
func (s *Simulation) LevelOf(kind level.Kind) *level.Level {
	if kind < 0 || int(kind) >= len(s.levels) {
		return nil
	}
	return s.levels[kind]
}

// Message returns the notice on screen, empty when none.
func (s *Simulation) Message() string { return s.message }

// Dialogue returns the NPC line on screen, nil when none.
func (s *Simulation) Dialogue() *Dialogue { return s.dialogue }

// Narration returns the cutscene or victory typewriter, nil outside them.
func (s *Simulation) Narration() *Typewriter {
	if s.state != state.StateCutscene && s.state != state.StateVictory {
		return nil
	}
	return s.narration
}
