package entity

import (
	"math"
	"slices"
)

// ItemKind is the closed set of collectible items.
type ItemKind int

const (
	ItemWateringCan ItemKind = iota
	ItemGardenSpade
	ItemKey
	ItemSpiritvineBlade
	ItemDesertCoin
	ItemScrollOfAntimatter
	ItemFireResistancePotion
	ItemHealthPotion
	ItemInfernalCore
)

var itemNames = [...]string{
	ItemWateringCan:          "Watering Can",
	ItemGardenSpade:          "Garden Spade",
	ItemKey:                  "Key",
	ItemSpiritvineBlade:      "Spiritvine Blade",
	ItemDesertCoin:           "Desert Coin",
	ItemScrollOfAntimatter:   "Scroll of Antimatter",
	ItemFireResistancePotion: "Fire Resistance Potion",
	ItemHealthPotion:         "Health Potion",
	ItemInfernalCore:         "Infernal Core",
}

// String returns the display name of the item
func (k ItemKind) String() string {
	if k < 0 || int(k) >= len(itemNames) {
		return "Unknown"
	}
	return itemNames[k]
}

var relicKinds = []ItemKind{
	ItemGardenSpade,
	ItemSpiritvineBlade,
	ItemScrollOfAntimatter,
	ItemInfernalCore,
}

// RelicKinds returns every item that is equipped or archived on pickup
// instead of going to the inventory.
func RelicKinds() []ItemKind {
	return slices.Clone(relicKinds)
}

// IsRelic reports whether kind is one of RelicKinds.
func (k ItemKind) IsRelic() bool {
	return slices.Contains(relicKinds, k)
}

// Inventory is a multiset of items counted by kind.
type Inventory struct {
	counts map[ItemKind]int
}

// NewInventory creates an empty inventory.
func NewInventory() *Inventory {
	return &Inventory{counts: make(map[ItemKind]int)}
}

// Add stores n items of kind.
func (inv *Inventory) Add(kind ItemKind, n int) {
	if n <= 0 {
		return
	}
	inv.counts[kind] += n
}

// Count returns how many items of kind are held.
func (inv *Inventory) Count(kind ItemKind) int {
	return inv.counts[kind]
}

// Has reports whether at least one item of kind is held.
func (inv *Inventory) Has(kind ItemKind) bool {
	return inv.counts[kind] > 0
}

// Remove takes n items of kind. It removes nothing and returns false
// when fewer than n are held.
func (inv *Inventory) Remove(kind ItemKind, n int) bool {
	if n <= 0 || inv.counts[kind] < n {
		return false
	}
	inv.counts[kind] -= n
	if inv.counts[kind] == 0 {
		delete(inv.counts, kind)
	}
	return true
}

// Clear drops every item of kind.
func (inv *Inventory) Clear(kind ItemKind) {
	delete(inv.counts, kind)
}

// Counts returns a copy of the per-kind counts.
func (inv *Inventory) Counts() map[ItemKind]int {
	out := make(map[ItemKind]int, len(inv.counts))
	for k, n := range inv.counts {
		out[k] = n
	}
	return out
}

const (
	dropSize      = 24
	dropBobSpeed  = 3
	dropBobHeight = 5
)

// ItemDrop is an item lying in the world waiting to be picked up.
type ItemDrop struct {
	Kind     ItemKind
	Pos      Vec2
	bobPhase float64
}

// NewItemDrop creates a drop at pos.
func NewItemDrop(kind ItemKind, pos Vec2) *ItemDrop {
	return &ItemDrop{Kind: kind, Pos: pos}
}

// Update advances the bob animation.
func (d *ItemDrop) Update(dt float64) {
	d.bobPhase += dt * dropBobSpeed
}

// Bounds returns the drop's box including the bob offset.
func (d *ItemDrop) Bounds() Rect {
	return Rect{
		X: d.Pos.X,
		Y: d.Pos.Y + math.Sin(d.bobPhase)*dropBobHeight,
		W: dropSize,
		H: dropSize,
	}
}
