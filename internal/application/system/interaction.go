package system

import "github.com/younwookim/relicescape/internal/domain/entity"

// Near reports whether b lies strictly within radius of a.
func Near(a, b entity.Vec2, radius float64) bool {
	return a.Dist(b) < radius
}

// PuzzleOutcome is what a frame of puzzle input did.
type PuzzleOutcome int

const (
	PuzzleNone PuzzleOutcome = iota
	PuzzleWrong
	PuzzleSolved
)

// HandlePuzzleInput feeds this frame's pressed keys into an active puzzle.
// Digits are applied in ascending order before sign, backspace and submit.
func HandlePuzzleInput(p *entity.MathPuzzle, frame Frame) PuzzleOutcome {
	if p == nil || !p.Active {
		return PuzzleNone
	}

	for d := 0; d <= 9; d++ {
		if frame.Pressed(DigitAction(d)) {
			p.InputDigit(d)
		}
	}
	if frame.Pressed(ActionToggleSign) {
		p.ToggleSign()
	}
	if frame.Pressed(ActionBackspace) {
		p.Backspace()
	}
	if !frame.Pressed(ActionSubmit) {
		return PuzzleNone
	}
	if p.Submit() {
		return PuzzleSolved
	}
	return PuzzleWrong
}

// ShopResult is what a frame of shop input did.
type ShopResult struct {
	Closed    bool
	Slot      int // -1 when no slot key was pressed
	Purchased bool
}

// HandleShopInput closes an open shop or buys the first slot pressed this
// frame. A closed shop ignores input.
func HandleShopInput(shop *entity.Shop, player *entity.Player, frame Frame) ShopResult {
	res := ShopResult{Slot: -1}
	if shop == nil || !shop.Open {
		return res
	}

	if frame.Pressed(ActionCloseShop) {
		shop.Open = false
		res.Closed = true
		return res
	}

	for i := range shop.Slots {
		if i > int(ActionSlot3-ActionSlot1) {
			break
		}
		if frame.Pressed(SlotAction(i)) {
			res.Slot = i
			res.Purchased = shop.Buy(i, player)
			return res
		}
	}
	return res
}
