package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlayer() *Player {
	return NewPlayer(Vec2{X: 128, Y: 448}, PlayerStats{
		MaxHealth:    100,
		Speed:        150,
		Size:         32,
		AttackRange:  50,
		AttackDelay:  0.5,
		HurtDuration: 0.3,
		SlowModifier: 0.4,
		Weapon:       Weapon{Name: "Wooden Stick", Damage: 10},
	})
}

func TestNewPlayer(t *testing.T) {
	p := testPlayer()

	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 150.0, p.Speed)
	assert.Equal(t, 1.0, p.SpeedModifier)
	assert.Equal(t, "Wooden Stick", p.Weapon.Name)
	assert.NotNil(t, p.Inventory)
}

func TestPlayer_TakeDamage(t *testing.T) {
	t.Run("survivor flinches", func(t *testing.T) {
		p := testPlayer()
		p.TakeDamage(20)

		assert.Equal(t, 80, p.Health)
		assert.Equal(t, StateHurt, p.State)
		assert.Equal(t, 0.3, p.HurtTimer)
	})

	t.Run("lethal damage is terminal", func(t *testing.T) {
		p := testPlayer()
		p.Attacking = true

		assert.True(t, p.TakeDamage(150))
		assert.Equal(t, 0, p.Health)
		assert.Equal(t, StateDead, p.State)
		assert.False(t, p.Attacking)

		assert.False(t, p.TakeDamage(10))
		assert.Equal(t, StateDead, p.State)
		assert.Equal(t, 0, p.Health)
	})
}

func TestPlayer_StartAttack(t *testing.T) {
	p := testPlayer()

	require.True(t, p.StartAttack())
	assert.True(t, p.CanHit())
	assert.Equal(t, 0.5, p.AttackCooldown)

	p.AttackHit = true
	assert.False(t, p.CanHit())
	assert.False(t, p.StartAttack(), "cooldown blocks a second swing")

	p.AttackCooldown = 0
	require.True(t, p.StartAttack())
	assert.True(t, p.CanHit(), "new swing clears the hit flag")
}

func TestPlayer_Equip(t *testing.T) {
	p := testPlayer()

	p.Equip(ItemSpiritvineBlade, 50, true)
	assert.Equal(t, Weapon{Name: "Spiritvine Blade", Damage: 50}, p.Weapon)
	assert.True(t, p.HasRelic(ItemSpiritvineBlade))

	p.Equip(ItemScrollOfAntimatter, 75, false)
	assert.Equal(t, "Spiritvine Blade", p.Weapon.Name, "relics do not replace the weapon")
	assert.True(t, p.HasRelic(ItemScrollOfAntimatter))

	p.Equip(ItemScrollOfAntimatter, 75, false)
	assert.Len(t, p.Relics, 2)
}

func TestInventory(t *testing.T) {
	inv := NewInventory()
	inv.Add(ItemDesertCoin, 3)
	inv.Add(ItemDesertCoin, 2)
	inv.Add(ItemKey, 1)
	inv.Add(ItemKey, 0)

	assert.Equal(t, 5, inv.Count(ItemDesertCoin))
	assert.True(t, inv.Has(ItemKey))
	assert.False(t, inv.Has(ItemHealthPotion))

	assert.False(t, inv.Remove(ItemDesertCoin, 6))
	assert.Equal(t, 5, inv.Count(ItemDesertCoin), "failed removal leaves count intact")

	assert.True(t, inv.Remove(ItemDesertCoin, 5))
	assert.Zero(t, inv.Count(ItemDesertCoin))

	inv.Clear(ItemKey)
	assert.Empty(t, inv.Counts())
}

func TestItemKind(t *testing.T) {
	assert.Equal(t, "Fire Resistance Potion", ItemFireResistancePotion.String())
	assert.Equal(t, "Unknown", ItemKind(-1).String())

	assert.True(t, ItemGardenSpade.IsRelic())
	assert.True(t, ItemInfernalCore.IsRelic())
	assert.False(t, ItemKey.IsRelic())
	assert.False(t, ItemHealthPotion.IsRelic())

	relics := RelicKinds()
	assert.Len(t, relics, 4)
	relics[0] = ItemKey
	assert.False(t, ItemKey.IsRelic(), "RelicKinds returns a copy")
}
