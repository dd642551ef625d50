package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/younwookim/relicescape/internal/application/level"
	"github.com/younwookim/relicescape/internal/application/state"
	"github.com/younwookim/relicescape/internal/application/system"
	"github.com/younwookim/relicescape/internal/domain/entity"
	"github.com/younwookim/relicescape/internal/infrastructure/config"
)

const frameDT = 1.0 / 60

type hookLog struct {
	messages    []string
	speakers    []string
	damage      []int
	transitions [][2]state.GameState
	texts       []string
}

func createTestSim(t *testing.T) (*Simulation, *hookLog) {
	t.Helper()

	cfg, err := config.DefaultGameConfig()
	require.NoError(t, err)

	h := &hookLog{}
	s := New(cfg, 12345, zap.NewNop(), Hooks{
		OnMessage:        func(text string) { h.messages = append(h.messages, text) },
		OnDialogue:       func(speaker, _ string) { h.speakers = append(h.speakers, speaker) },
		OnDamageFeedback: func(amount int) { h.damage = append(h.damage, amount) },
		OnTransition: func(from, to state.GameState, text string) {
			h.transitions = append(h.transitions, [2]state.GameState{from, to})
			h.texts = append(h.texts, text)
		},
	})
	return s, h
}

func idle(s *Simulation, dt float64) {
	s.Update(dt, 0, 0)
}

func press(s *Simulation, a system.Action) {
	s.Update(frameDT, system.InputState(0).With(a), 0)
}

// runUntil idles in dt steps until the simulation reaches want.
func runUntil(t *testing.T, s *Simulation, want state.GameState, dt float64, limit int) {
	t.Helper()
	for i := 0; i < limit && s.State() != want; i++ {
		idle(s, dt)
	}
	require.Equal(t, want, s.State())
}

func finishTutorial(t *testing.T, s *Simulation) {
	t.Helper()
	lv := s.Level()
	require.Equal(t, level.KindTutorial, lv.Kind)

	p := s.Player()
	p.Inventory.Add(entity.ItemWateringCan, 3)
	for _, d := range lv.Dummies {
		d.TakeDamage(100)
	}
	p.Pos = lv.Grid.TileOrigin(lv.Exit.X, lv.Exit.Y)
	idle(s, frameDT)
	require.Equal(t, state.StateTransition, s.State())
}

func TestNew_StartsInTutorial(t *testing.T) {
	s, _ := createTestSim(t)

	assert.Equal(t, state.StateTutorial, s.State())
	assert.Equal(t, int64(12345), s.Seed())
	assert.Equal(t, entity.Vec2{X: 128, Y: 448}, s.Player().Pos)
	assert.Equal(t, 100, s.Player().Health)
	assert.Equal(t, "Wooden Stick", s.Player().Weapon.Name)
	require.NotNil(t, s.Level())
	assert.Equal(t, level.KindTutorial, s.Level().Kind)
	assert.Nil(t, s.Narration())
}

func TestSimulation_FullRun(t *testing.T) {
	s, h := createTestSim(t)
	p := s.Player()

	finishTutorial(t, s)
	assert.Equal(t, level.KindForest, s.Level().Kind, "transition shows the next level")

	idle(s, 1)
	assert.Equal(t, state.StateTransition, s.State())
	idle(s, 1)
	require.Equal(t, state.StateLevel1, s.State())
	assert.Equal(t, entity.Vec2{X: 128, Y: 128}, p.Pos)
	assert.Equal(t, "Kill the snake first, you will know why...", s.Message())

	// Whispering Woods
	forest := s.Level()
	p.Equip(entity.ItemSpiritvineBlade, 50, true)
	p.Inventory.Add(entity.ItemKey, 3)
	p.Pos = forest.Grid.TileOrigin(forest.Exit.X, forest.Exit.Y)
	idle(s, frameDT)
	require.Equal(t, state.StateCutscene, s.State())
	require.NotNil(t, s.Narration())

	idle(s, 0.05)
	snap := s.Snapshot()
	assert.Equal(t, "W", snap.Narration)
	assert.Equal(t, 1, snap.NarrationRevealed)
	assert.Equal(t, s.Narration().Len(), snap.NarrationLen)
	assert.Greater(t, snap.NarrationLen, 1)
	runUntil(t, s, state.StateLevel2Transition, 0.05, 1000)
	assert.Zero(t, p.Inventory.Count(entity.ItemKey), "keys do not carry over")

	runUntil(t, s, state.StateLevel2, 0.5, 10)
	assert.Equal(t, entity.Vec2{X: 128, Y: 128}, p.Pos)

	// Desert of Echoes
	desert := s.Level()
	require.Equal(t, level.KindDesert, desert.Kind)
	p.Equip(entity.ItemScrollOfAntimatter, 75, false)
	p.Inventory.Add(entity.ItemKey, 2)
	p.Pos = desert.Grid.TileOrigin(desert.Exit.X, desert.Exit.Y)
	idle(s, frameDT)
	require.Equal(t, state.StateCutscene, s.State())
	runUntil(t, s, state.StateLevel3Transition, 0.05, 1000)
	assert.Zero(t, p.Inventory.Count(entity.ItemKey))

	runUntil(t, s, state.StateLevel3, 0.5, 10)
	assert.Equal(t, entity.Vec2{X: 640, Y: 128}, p.Pos)

	// Infernal Depths
	inferno := s.Level()
	require.Equal(t, level.KindInferno, inferno.Kind)
	boss := inferno.Boss
	boss.CooldownTimer, boss.SpecialTimer = 1000, 1000
	boss.Health = 1
	p.Pos = boss.Pos
	press(s, system.ActionAttack)
	require.True(t, inferno.BossDefeated())

	idle(s, frameDT)
	press(s, system.ActionInteract)
	require.True(t, p.HasRelic(entity.ItemInfernalCore))

	p.Pos = inferno.Grid.TileOrigin(inferno.Exit.X, inferno.Exit.Y)
	idle(s, frameDT)
	require.Equal(t, state.StateVictory, s.State())

	for i := 0; i < 1000; i++ {
		idle(s, 0.05)
	}
	assert.Equal(t, state.StateVictory, s.State(), "victory is terminal")
	assert.Contains(t, s.Snapshot().Narration, "ultimate Relic Hunter")

	var path []state.GameState
	for _, tr := range h.transitions {
		path = append(path, tr[1])
	}
	assert.Equal(t, []state.GameState{
		state.StateTransition, state.StateLevel1,
		state.StateCutscene, state.StateLevel2Transition, state.StateLevel2,
		state.StateCutscene, state.StateLevel3Transition, state.StateLevel3,
		state.StateVictory,
	}, path)

	require.Len(t, h.texts, len(path))
	assert.Empty(t, h.texts[1], "timed transitions carry no text")
	assert.Contains(t, h.texts[2], "Desert of Echoes")
	assert.Contains(t, h.texts[5], "Infernal Depths")
	assert.Contains(t, h.texts[8], "ULTIMATE VICTORY")
}

func TestSimulation_GameOverAndRestart(t *testing.T) {
	s, h := createTestSim(t)
	old := s.Player()
	old.Inventory.Add(entity.ItemWateringCan, 2)

	old.TakeDamage(1000)
	idle(s, frameDT)
	require.Equal(t, state.StateGameOver, s.State())
	assert.Nil(t, s.Level())

	// Held restart from the previous frame does not count
	r := system.InputState(0).With(system.ActionRestart)
	s.Update(frameDT, r, r)
	assert.Equal(t, state.StateGameOver, s.State())

	press(s, system.ActionRestart)
	require.Equal(t, state.StateTutorial, s.State())
	assert.NotSame(t, old, s.Player())
	assert.Equal(t, 100, s.Player().Health)
	assert.Zero(t, s.Player().Inventory.Count(entity.ItemWateringCan))
	assert.Len(t, s.Level().Drops, 3, "levels rebuilt")
	assert.Same(t, s.Player(), s.Level().Player())

	last := h.transitions[len(h.transitions)-1]
	assert.Equal(t, [2]state.GameState{state.StateGameOver, state.StateTutorial}, last)
}

func TestSimulation_GameOverFromEnemy(t *testing.T) {
	s, h := createTestSim(t)
	finishTutorial(t, s)
	runUntil(t, s, state.StateLevel1, 0.5, 10)

	forest := s.Level()
	p := s.Player()
	p.Pos = forest.Grid.TileOrigin(8, 6)
	p.Health = 3
	snake := forest.Enemies[0]
	snake.Pos = p.Pos.Add(entity.Vec2{X: 5})
	snake.CooldownTimer = 0

	idle(s, frameDT)

	assert.Equal(t, state.StateGameOver, s.State())
	assert.Equal(t, []int{3}, h.damage)
}

func TestSimulation_MessageExpires(t *testing.T) {
	s, h := createTestSim(t)

	press(s, system.ActionRight)
	require.Equal(t, "Good! Now try attacking with SPACE", s.Message())
	assert.Contains(t, h.messages, "Good! Now try attacking with SPACE")

	idle(s, 2.9)
	assert.NotEmpty(t, s.Message())
	idle(s, 0.2)
	assert.Empty(t, s.Message())
}

func TestSimulation_Dialogue(t *testing.T) {
	s, h := createTestSim(t)
	npc := s.Level().NPCs[0]
	s.Player().Pos = npc.Pos.Add(entity.Vec2{X: -30})

	press(s, system.ActionInteract)
	require.NotNil(t, s.Dialogue())
	assert.Equal(t, "Old Gardener", s.Dialogue().Speaker)
	assert.Equal(t, []string{"Old Gardener"}, h.speakers)

	idle(s, 4.9)
	assert.NotNil(t, s.Dialogue())
	idle(s, 0.2)
	assert.Nil(t, s.Dialogue())
}

func TestSimulation_IgnoresOutOfPlaceTransitions(t *testing.T) {
	s, _ := createTestSim(t)

	s.events.Push(system.TransitionEvent{To: state.StateVictory, Text: "too early"})
	s.dispatch()

	assert.Equal(t, state.StateTutorial, s.State())
	assert.Nil(t, s.Narration())
}

func TestSimulation_Deterministic(t *testing.T) {
	run := func() entity.Vec2 {
		s, _ := createTestSim(t)
		finishTutorial(t, s)
		runUntil(t, s, state.StateLevel1, 0.5, 10)
		for i := 0; i < 600; i++ {
			idle(s, frameDT)
		}
		return s.Level().Enemies[1].Pos
	}

	assert.Equal(t, run(), run())
}

func TestSnapshot(t *testing.T) {
	s, _ := createTestSim(t)

	snap := s.Snapshot()

	assert.Equal(t, state.StateTutorial, snap.State)
	assert.Equal(t, "Sunflower Garden", snap.LevelName)
	require.NotNil(t, snap.Grid)
	assert.Equal(t, entity.TileCoord{X: 18, Y: 7}, snap.Exit)
	assert.Len(t, snap.Dummies, 3)
	assert.Len(t, snap.NPCs, 1)
	assert.Len(t, snap.Drops, 3)
	assert.Nil(t, snap.Boss)
	assert.Nil(t, snap.Puzzle)
	assert.Equal(t, 100, snap.Player.Health)
	assert.Equal(t, entity.Rect{X: 128, Y: 448, W: 32, H: 32}, snap.Player.Box)

	snap.Player.Inventory[entity.ItemKey] = 9
	assert.Zero(t, s.Player().Inventory.Count(entity.ItemKey), "snapshot is a copy")
}

func TestSnapshot_UITimers(t *testing.T) {
	s, _ := createTestSim(t)

	press(s, system.ActionRight)
	idle(s, 1)

	snap := s.Snapshot()
	require.NotEmpty(t, snap.Message)
	assert.InDelta(t, 2.0, snap.MessageRemaining, 1e-9)
	assert.Nil(t, snap.Dialogue)
	assert.Zero(t, snap.DialogueRemaining)
	assert.Zero(t, snap.NarrationLen)

	npc := s.Level().NPCs[0]
	s.Player().Pos = npc.Pos.Add(entity.Vec2{X: -30})
	press(s, system.ActionInteract)
	idle(s, 1.5)

	snap = s.Snapshot()
	require.NotNil(t, snap.Dialogue)
	assert.InDelta(t, 3.5, snap.DialogueRemaining, 1e-9)

	idle(s, 4)
	snap = s.Snapshot()
	assert.Empty(t, snap.Message)
	assert.Zero(t, snap.MessageRemaining)
	assert.Nil(t, snap.Dialogue)
	assert.Zero(t, snap.DialogueRemaining)
}

func TestSnapshot_Desert(t *testing.T) {
	s, _ := createTestSim(t)
	s.state = state.StateLevel2

	snap := s.Snapshot()

	assert.Equal(t, "Desert of Echoes", snap.LevelName)
	require.NotNil(t, snap.Puzzle)
	assert.NotEmpty(t, snap.Puzzle.Question)
	require.NotNil(t, snap.Shop)
	assert.Len(t, snap.Shop.Slots, 3)
	assert.Len(t, snap.Enemies, 4)
}
