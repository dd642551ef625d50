package config

import (
	"embed"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/younwookim/relicescape/internal/domain/entity"
)

//go:embed data/*.yaml
var embedded embed.FS

var builtin = func() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}()

// EnemyDef is one bestiary row.
type EnemyDef struct {
	Kind           string  `yaml:"kind"`
	Health         int     `yaml:"health"`
	Speed          float64 `yaml:"speed"`
	DetectionRange float64 `yaml:"detection_range"`
	AttackRange    float64 `yaml:"attack_range"`
	Damage         int     `yaml:"damage"`
	Cooldown       float64 `yaml:"cooldown"`
}

type BossDef struct {
	Name            string  `yaml:"name"`
	Health          int     `yaml:"health"`
	Speed           float64 `yaml:"speed"`
	Size            float64 `yaml:"size"`
	DetectionRange  float64 `yaml:"detection_range"`
	AttackRange     float64 `yaml:"attack_range"`
	Damage          int     `yaml:"damage"`
	Cooldown        float64 `yaml:"cooldown"`
	SpecialRadius   float64 `yaml:"special_radius"`
	SpecialDamage   int     `yaml:"special_damage"`
	SpecialCooldown float64 `yaml:"special_cooldown"`
}

type DummyDef struct {
	Kind   string `yaml:"kind"`
	Health int    `yaml:"health"`
}

// WanderDef tunes idle roaming of enemies outside detection range.
type WanderDef struct {
	Radius         float64 `yaml:"radius"`
	MinDelay       int     `yaml:"min_delay"`
	MaxDelay       int     `yaml:"max_delay"` // exclusive
	SpeedFactor    float64 `yaml:"speed_factor"`
	ArriveDistance float64 `yaml:"arrive_distance"`
}

type Bestiary struct {
	Enemies []EnemyDef `yaml:"enemies"`
	Boss    BossDef    `yaml:"boss"`
	Dummies []DummyDef `yaml:"dummies"`
	Wander  WanderDef  `yaml:"wander"`
}

// ItemDef describes a relic. Damage is a percent of target max health; a
// weapon replaces the held weapon when picked up.
type ItemDef struct {
	Name   string `yaml:"name"`
	Damage int    `yaml:"damage"`
	Weapon bool   `yaml:"weapon"`
}

// ShopSlotDef is one purchasable upgrade.
type ShopSlotDef struct {
	Name   string `yaml:"name"`
	Price  int    `yaml:"price"`
	Effect string `yaml:"effect"` // heal, speed, damage
	Amount int    `yaml:"amount"`
}

// Tables holds the static game data tables.
type Tables struct {
	Bestiary Bestiary
	Items    []ItemDef
	Shop     []ShopSlotDef

	enemies map[string]EnemyDef
	dummies map[string]DummyDef
	items   map[string]ItemDef
}

// Enemy returns the bestiary row for kind.
func (t *Tables) Enemy(kind string) (EnemyDef, bool) {
	def, ok := t.enemies[kind]
	return def, ok
}

// Dummy returns the training dummy row for kind.
func (t *Tables) Dummy(kind string) (DummyDef, bool) {
	def, ok := t.dummies[kind]
	return def, ok
}

// Item returns the item row by display name.
func (t *Tables) Item(name string) (ItemDef, bool) {
	def, ok := t.items[name]
	return def, ok
}

func (t *Tables) index() error {
	t.enemies = make(map[string]EnemyDef, len(t.Bestiary.Enemies))
	for _, e := range t.Bestiary.Enemies {
		if e.Health <= 0 {
			return fmt.Errorf("enemy %q: health must be positive", e.Kind)
		}
		t.enemies[e.Kind] = e
	}
	t.dummies = make(map[string]DummyDef, len(t.Bestiary.Dummies))
	for _, d := range t.Bestiary.Dummies {
		t.dummies[d.Kind] = d
	}
	t.items = make(map[string]ItemDef, len(t.Items))
	for _, it := range t.Items {
		t.items[it.Name] = it
	}
	for _, kind := range entity.RelicKinds() {
		def, ok := t.items[kind.String()]
		if !ok {
			return fmt.Errorf("items: missing row for %q", kind)
		}
		if def.Damage <= 0 {
			return fmt.Errorf("item %q: damage must be positive", def.Name)
		}
	}
	for _, s := range t.Shop {
		switch s.Effect {
		case "heal", "speed", "damage":
		default:
			return fmt.Errorf("shop slot %q: unknown effect %q", s.Name, s.Effect)
		}
	}
	if t.Bestiary.Wander.MaxDelay <= t.Bestiary.Wander.MinDelay {
		return fmt.Errorf("wander: max_delay %d must exceed min_delay %d",
			t.Bestiary.Wander.MaxDelay, t.Bestiary.Wander.MinDelay)
	}
	return nil
}

type itemsFile struct {
	Items []ItemDef `yaml:"items"`
}

type shopFile struct {
	Slots []ShopSlotDef `yaml:"slots"`
}

func parseBestiary(raw []byte) (Bestiary, error) {
	var b Bestiary
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return Bestiary{}, err
	}
	return b, nil
}

func parseItems(raw []byte) ([]ItemDef, error) {
	var f itemsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return f.Items, nil
}

func parseShop(raw []byte) ([]ShopSlotDef, error) {
	var f shopFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, err
	}
	return f.Slots, nil
}

// DefaultTables parses the tables compiled into the binary.
func DefaultTables() (*Tables, error) {
	return NewFSLoader(builtin, "builtin").LoadTables()
}
