package entity

// ShopEffect is what a purchase does to the player.
type ShopEffect int

const (
	EffectHeal   ShopEffect = iota // restore Amount health
	EffectSpeed                    // set base speed to Amount
	EffectDamage                   // add Amount percent to the weapon
)

// ShopSlot is one purchasable upgrade.
type ShopSlot struct {
	Name   string
	Price  int
	Effect ShopEffect
	Amount int
}

// Shop sells upgrades for a currency item.
type Shop struct {
	Pos      Vec2
	Size     float64
	Currency ItemKind
	Slots    []ShopSlot
	Open     bool
}

// NewShop creates a closed shop.
func NewShop(pos Vec2, size float64, currency ItemKind, slots []ShopSlot) *Shop {
	return &Shop{Pos: pos, Size: size, Currency: currency, Slots: slots}
}

// Buy purchases slot i for p. It returns false, changing nothing, when the
// shop is closed, the slot does not exist, or p cannot afford it.
func (s *Shop) Buy(i int, p *Player) bool {
	if !s.Open || i < 0 || i >= len(s.Slots) {
		return false
	}
	slot := s.Slots[i]
	if !p.Inventory.Remove(s.Currency, slot.Price) {
		return false
	}
	switch slot.Effect {
	case EffectHeal:
		p.Heal(slot.Amount)
	case EffectSpeed:
		p.Speed = float64(slot.Amount)
	case EffectDamage:
		p.Weapon.Damage += slot.Amount
	}
	return true
}
