package level

import (
	"go.uber.org/zap"

	"github.com/younwookim/relicescape/internal/application/system"
	"github.com/younwookim/relicescape/internal/domain/entity"
)

const desertKeys = 2

func (l *Level) buildDesert() {
	g := l.Grid
	g.Fill(0, 0, g.Width, g.Height, entity.TileSand)
	g.Border(entity.TileCactus)

	g.Fill(9, 7, 3, 1, entity.TilePyramid)
	g.Set(10, 6, entity.TilePyramid)
	g.Set(10, 8, entity.TilePyramid)
	l.Exit = entity.TileCoord{X: 10, Y: 9}
	g.Set(l.Exit.X, l.Exit.Y, entity.TileExit)

	g.Fill(3, 3, 2, 2, entity.TileQuicksand)
	g.Fill(15, 3, 2, 2, entity.TileQuicksand)
	g.Fill(5, 10, 3, 2, entity.TileQuicksand)
	g.Fill(12, 11, 2, 2, entity.TileQuicksand)

	for _, c := range []entity.TileCoord{{X: 4, Y: 4}, {X: 7, Y: 5}, {X: 13, Y: 4}, {X: 16, Y: 6}, {X: 6, Y: 12}, {X: 14, Y: 12}} {
		g.Set(c.X, c.Y, entity.TileStatue)
	}

	g.Fill(2, 2, 3, 2, entity.TileCactus)
	g.Fill(15, 2, 3, 2, entity.TileCactus)
	g.Fill(3, 12, 4, 2, entity.TileCactus)
	g.Fill(13, 12, 4, 2, entity.TileCactus)

	g.Set(17, 3, entity.TileShop)
	chests := []entity.TileCoord{{X: 5, Y: 5}, {X: 15, Y: 5}, {X: 8, Y: 12}}
	ts := float64(g.TileSize)
	for _, c := range chests {
		g.Set(c.X, c.Y, entity.TileChest)
		l.Objects = append(l.Objects, entity.NewObject(entity.ObjectChest, g.TileOrigin(c.X, c.Y), ts))
	}

	l.Enemies = []*entity.Enemy{
		l.newEnemy(entity.EnemyScorpion, g.TileOrigin(5, 3), true),
		l.newEnemy(entity.EnemyScorpion, g.TileOrigin(15, 3), true),
		l.newEnemy(entity.EnemyScorpion, g.TileOrigin(4, 11), false),
		l.newEnemy(entity.EnemyScorpion, g.TileOrigin(13, 12), false),
	}

	l.Puzzle = entity.GenerateMathPuzzle(g.TileOrigin(10, 5), ts, l.rng)
	l.Shop = entity.NewShop(g.TileOrigin(17, 3), ts, entity.ItemDesertCoin, l.shopSlots())
}

func (l *Level) shopSlots() []entity.ShopSlot {
	slots := make([]entity.ShopSlot, 0, len(l.cfg.Tables.Shop))
	for _, def := range l.cfg.Tables.Shop {
		var effect entity.ShopEffect
		switch def.Effect {
		case "heal":
			effect = entity.EffectHeal
		case "speed":
			effect = entity.EffectSpeed
		case "damage":
			effect = entity.EffectDamage
		default:
			continue
		}
		slots = append(slots, entity.ShopSlot{Name: def.Name, Price: def.Price, Effect: effect, Amount: def.Amount})
	}
	return slots
}

// updatePuzzle opens the puzzle for a player carrying both keys and feeds
// it input while active.
func (l *Level) updatePuzzle(frame system.Frame) {
	p := l.Puzzle
	if p == nil {
		return
	}

	keys := l.player.Inventory.Count(entity.ItemKey)
	if !p.Solved && system.Near(l.player.Pos, p.Pos, l.cfg.Settings.Interact.ObjectRadius) {
		switch {
		case keys < desertKeys:
			l.events.Message("Need %d keys to solve puzzle (%d/%d)", desertKeys, keys, desertKeys)
		case frame.Pressed(system.ActionInteract):
			p.Activate()
		case !p.Active:
			l.events.Message("Press E to solve puzzle (%d keys required)", desertKeys)
		}
	}

	switch system.HandlePuzzleInput(p, frame) {
	case system.PuzzleSolved:
		l.drop(entity.ItemScrollOfAntimatter, p.Pos.Add(entity.Vec2{Y: -50}))
		l.events.Message("Puzzle solved! Scroll of Antimatter appeared!")
		l.log.Info("puzzle solved", zap.String("question", p.Question()))
	case system.PuzzleWrong:
		l.events.Message("Wrong answer! Try again.")
	}
}

// updateShop opens the shop on interact and processes purchases.
func (l *Level) updateShop(frame system.Frame) {
	s := l.Shop
	if s == nil {
		return
	}

	if system.Near(l.player.Pos, s.Pos, l.cfg.Settings.Interact.ObjectRadius) {
		if frame.Pressed(system.ActionInteract) {
			s.Open = true
			l.events.Message("Shop opened! Press 1-%d to buy, TAB to close", len(s.Slots))
		} else if !s.Open {
			l.events.Message("Press E to open shop")
		}
	}

	res := system.HandleShopInput(s, l.player, frame)
	if res.Slot < 0 {
		return
	}
	if !res.Purchased {
		l.events.Message("Not enough %ss!", s.Currency)
		return
	}

	slot := s.Slots[res.Slot]
	switch slot.Effect {
	case entity.EffectHeal:
		l.events.Message("%s purchased! +%d HP", slot.Name, slot.Amount)
	case entity.EffectSpeed:
		l.events.Message("%s purchased! Movement increased!", slot.Name)
	case entity.EffectDamage:
		l.events.Message("%s purchased! +%d%% damage!", slot.Name, slot.Amount)
	}
	l.log.Info("shop purchase",
		zap.String("item", slot.Name),
		zap.Int("price", slot.Price),
		zap.Int("coins_left", l.player.Inventory.Count(s.Currency)))
}

// spawnFromQuicksand raises a keyless scorpion from a random quicksand tile.
func (l *Level) spawnFromQuicksand() {
	tiles := l.Grid.Find(entity.TileQuicksand)
	if len(tiles) == 0 {
		return
	}
	l.pruneDead()

	c := tiles[l.rng.Intn(len(tiles))]
	l.Enemies = append(l.Enemies, l.newEnemy(entity.EnemyScorpion, l.Grid.TileOrigin(c.X, c.Y), false))
	l.events.Message("Scorpion emerged from quicksand!")
	l.log.Debug("scorpion spawned", zap.Int("x", c.X), zap.Int("y", c.Y), zap.Int("enemies", len(l.Enemies)))
}
