package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/relicescape/internal/domain/entity"
)

func press(actions ...Action) Frame {
	return Frame{Current: held(actions...)}
}

func TestNear(t *testing.T) {
	a := entity.Vec2{X: 0, Y: 0}

	assert.True(t, Near(a, entity.Vec2{X: 30, Y: 40}, 60))
	assert.False(t, Near(a, entity.Vec2{X: 36, Y: 48}, 60), "boundary is exclusive")
}

func TestHandlePuzzleInput(t *testing.T) {
	t.Run("inactive puzzle ignores keys", func(t *testing.T) {
		p := entity.NewMathPuzzle(entity.Vec2{}, 64, 7, 3, entity.OpSubtract)

		assert.Equal(t, PuzzleNone, HandlePuzzleInput(p, press(DigitAction(4), ActionSubmit)))
		assert.Zero(t, p.Entry)
		assert.Equal(t, PuzzleNone, HandlePuzzleInput(nil, press(ActionSubmit)))
	})

	t.Run("digits then submit solves", func(t *testing.T) {
		p := entity.NewMathPuzzle(entity.Vec2{}, 64, 7, 3, entity.OpSubtract)
		p.Activate()

		assert.Equal(t, PuzzleNone, HandlePuzzleInput(p, press(DigitAction(4))))
		assert.Equal(t, PuzzleSolved, HandlePuzzleInput(p, press(ActionSubmit)))
		assert.True(t, p.Solved)
		assert.False(t, p.Active)
	})

	t.Run("negative answer", func(t *testing.T) {
		p := entity.NewMathPuzzle(entity.Vec2{}, 64, 2, 9, entity.OpSubtract)
		p.Activate()

		HandlePuzzleInput(p, press(DigitAction(7)))
		HandlePuzzleInput(p, press(ActionToggleSign))
		assert.Equal(t, PuzzleSolved, HandlePuzzleInput(p, press(ActionSubmit)))
	})

	t.Run("wrong answer resets entry", func(t *testing.T) {
		p := entity.NewMathPuzzle(entity.Vec2{}, 64, 4, 5, entity.OpAdd)
		p.Activate()

		HandlePuzzleInput(p, press(DigitAction(1)))
		HandlePuzzleInput(p, press(DigitAction(2)))
		HandlePuzzleInput(p, press(ActionBackspace))
		require.Equal(t, 1, p.Entry)

		assert.Equal(t, PuzzleWrong, HandlePuzzleInput(p, press(ActionSubmit)))
		assert.True(t, p.Active)
		assert.Zero(t, p.Entry)
	})

	t.Run("held digit is entered once", func(t *testing.T) {
		p := entity.NewMathPuzzle(entity.Vec2{}, 64, 4, 5, entity.OpAdd)
		p.Activate()
		d := held(DigitAction(9))

		HandlePuzzleInput(p, Frame{Current: d})
		HandlePuzzleInput(p, Frame{Current: d, Previous: d})

		assert.Equal(t, 9, p.Entry)
	})
}

func TestHandleShopInput(t *testing.T) {
	newShop := func() *entity.Shop {
		return entity.NewShop(entity.Vec2{}, 64, entity.ItemDesertCoin, []entity.ShopSlot{
			{Name: "Health Potion", Price: 3, Effect: entity.EffectHeal, Amount: 30},
			{Name: "Speed Boost", Price: 5, Effect: entity.EffectSpeed, Amount: 200},
			{Name: "Damage Boost", Price: 7, Effect: entity.EffectDamage, Amount: 20},
		})
	}

	t.Run("closed shop ignores keys", func(t *testing.T) {
		s := newShop()
		p := createTestPlayer()
		p.Inventory.Add(entity.ItemDesertCoin, 10)

		res := HandleShopInput(s, p, press(ActionSlot1))

		assert.Equal(t, -1, res.Slot)
		assert.Equal(t, 10, p.Inventory.Count(entity.ItemDesertCoin))
	})

	t.Run("buys pressed slot", func(t *testing.T) {
		s := newShop()
		s.Open = true
		p := createTestPlayer()
		p.Inventory.Add(entity.ItemDesertCoin, 5)

		res := HandleShopInput(s, p, press(ActionSlot2))

		assert.Equal(t, ShopResult{Slot: 1, Purchased: true}, res)
		assert.Equal(t, 200.0, p.Speed)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		s := newShop()
		s.Open = true
		p := createTestPlayer()
		p.Inventory.Add(entity.ItemDesertCoin, 5)

		res := HandleShopInput(s, p, press(ActionSlot3))

		assert.Equal(t, ShopResult{Slot: 2}, res)
		assert.Equal(t, 10, p.Weapon.Damage)
	})

	t.Run("close key closes", func(t *testing.T) {
		s := newShop()
		s.Open = true

		res := HandleShopInput(s, createTestPlayer(), press(ActionCloseShop, ActionSlot1))

		assert.True(t, res.Closed)
		assert.False(t, s.Open)
		assert.Equal(t, -1, res.Slot)
	})
}
