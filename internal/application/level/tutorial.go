package level

import "github.com/younwookim/relicescape/internal/domain/entity"

const tutorialCans = 3

const gardenerDialogue = "Welcome to the Sunflower Garden!\nCollect 3 Watering Cans and\ndefeat training dummies to complete tutorial."

func (l *Level) buildTutorial() {
	g := l.Grid
	g.Border(entity.TileFence)
	g.Fill(1, 7, 9, 1, entity.TilePath)
	for _, c := range []entity.TileCoord{{X: 5, Y: 3}, {X: 14, Y: 3}, {X: 5, Y: 10}, {X: 14, Y: 10}} {
		g.Fill(c.X, c.Y, 3, 2, entity.TileFlower)
	}
	g.Set(2, 5, entity.TileSign)
	g.Set(10, 5, entity.TileSign)
	l.Exit = entity.TileCoord{X: 18, Y: 7}
	g.Set(l.Exit.X, l.Exit.Y, entity.TileExit)

	size := l.cfg.Settings.Player.Size
	dummy := func(kind entity.DummyKind, x, y int) *entity.TrainingDummy {
		def, _ := l.cfg.Tables.Dummy(kind.Key())
		return entity.NewTrainingDummy(kind, g.TileOrigin(x, y), size, def.Health)
	}
	l.Dummies = []*entity.TrainingDummy{
		dummy(entity.DummyScarecrow, 12, 7),
		dummy(entity.DummyPumpkin, 10, 4),
		dummy(entity.DummyPumpkin, 10, 10),
	}

	l.NPCs = []*entity.NPC{{
		Name:     "Old Gardener",
		Pos:      g.TileOrigin(15, 7),
		Size:     size,
		Dialogue: gardenerDialogue,
	}}

	for _, c := range []entity.TileCoord{{X: 6, Y: 4}, {X: 15, Y: 4}, {X: 11, Y: 11}} {
		l.drop(entity.ItemWateringCan, g.TileOrigin(c.X, c.Y))
	}
}

// tutorialProgress coaches the first walk and the first swing.
func (l *Level) tutorialProgress() {
	if !l.moved && l.player.State == entity.StateWalking {
		l.moved = true
		l.events.Message("Good! Now try attacking with SPACE")
	}
	if !l.attacked && l.player.Attacking {
		l.attacked = true
		l.events.Message("Perfect! Find items and press E to pick up")
	}
}

func (l *Level) strikeDummies() {
	hit, ok := l.combat.StrikeDummies(l.player, l.Dummies)
	if !ok {
		return
	}
	l.events.Message("Hit! -%d damage", hit.Damage)
	if hit.Killed && !l.dummyDefeated {
		l.dummyDefeated = true
		l.events.Message("Dummy defeated! Great job!")
	}
}

// tutorialCompletion unlocks the exit once every can is collected and every
// dummy is down, and rewards the Garden Spade.
func (l *Level) tutorialCompletion() {
	if l.canExit || l.player.Inventory.Count(entity.ItemWateringCan) < tutorialCans {
		return
	}
	for _, d := range l.Dummies {
		if !d.IsDead() {
			return
		}
	}

	l.canExit = true
	l.drop(entity.ItemGardenSpade, l.Grid.TileOrigin(16, 8))
	l.events.Message("Tutorial complete! Garden Spade appeared! Head to the exit!")
	l.log.Info("tutorial complete")
}
