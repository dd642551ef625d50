package sim

import (
	"github.com/younwookim/relicescape/internal/application/state"
	"github.com/younwookim/relicescape/internal/domain/entity"
)

// ActorView is a drawable living entity.
type ActorView struct {
	Name      string
	Box       entity.Rect
	Health    int
	MaxHealth int
	State     entity.State
	Facing    entity.Facing
	Flash     bool
}

// PlayerView adds what the HUD shows about the player.
type PlayerView struct {
	ActorView
	Attacking bool
	Weapon    entity.Weapon
	Relics    []entity.ItemKind
	Inventory map[entity.ItemKind]int
}

// DropView is an item lying in the world.
type DropView struct {
	Kind entity.ItemKind
	Box  entity.Rect
}

// ObjectView is a vine, chest or NPC marker.
type ObjectView struct {
	Name      string
	Box       entity.Rect
	Activated bool
}

// PuzzleView is the math lock as the player sees it.
type PuzzleView struct {
	Box      entity.Rect
	Question string
	Entry    int
	Active   bool
	Solved   bool
}

// ShopView is the shop counter and its catalog.
type ShopView struct {
	Box      entity.Rect
	Open     bool
	Currency entity.ItemKind
	Slots    []entity.ShopSlot
}

// Snapshot is a read-only copy of one frame for the host to draw.
type Snapshot struct {
	Frame     int
	State     state.GameState
	LevelName string

	Grid    *entity.Grid
	Exit    entity.TileCoord
	Player  PlayerView
	Enemies []ActorView
	Boss    *ActorView
	Dummies []ActorView
	Objects []ObjectView
	NPCs    []ObjectView
	Drops   []DropView
	Puzzle  *PuzzleView
	Shop    *ShopView

	Message           string
	MessageRemaining  float64
	Dialogue          *Dialogue
	DialogueRemaining float64

	// Narration is the revealed part of the cutscene or victory text.
	Narration         string
	NarrationRevealed int
	NarrationLen      int
}

// Snapshot copies the drawable state of the current frame. Grid is shared
// and must not be modified.
func (s *Simulation) Snapshot() Snapshot {
	p := s.player
	snap := Snapshot{
		Frame: s.frame,
		State: s.state,
		Player: PlayerView{
			ActorView: actor("Player", &p.Body),
			Attacking: p.Attacking,
			Weapon:    p.Weapon,
			Relics:    append([]entity.ItemKind(nil), p.Relics...),
			Inventory: p.Inventory.Counts(),
		},
		Message: s.message,
	}
	if s.message != "" {
		snap.MessageRemaining = max(s.messageTimer, 0)
	}
	if s.dialogue != nil {
		d := *s.dialogue
		snap.Dialogue = &d
		snap.DialogueRemaining = max(s.dialogueTimer, 0)
	}
	if n := s.Narration(); n != nil {
		snap.Narration = n.Text()
		snap.NarrationRevealed = n.Revealed()
		snap.NarrationLen = n.Len()
	}

	lv := s.Level()
	if lv == nil {
		return snap
	}
	snap.LevelName = lv.Kind.String()
	snap.Grid = lv.Grid
	snap.Exit = lv.Exit

	for _, e := range lv.Enemies {
		if e.IsDead() {
			continue
		}
		snap.Enemies = append(snap.Enemies, actor(e.Kind.String(), &e.Body))
	}
	if b := lv.Boss; b != nil && !b.IsDead() {
		v := actor(b.Name, &b.Body)
		snap.Boss = &v
	}
	for _, d := range lv.Dummies {
		v := actor(d.Kind.String(), &d.Body)
		v.Flash = d.FlashTime > 0
		snap.Dummies = append(snap.Dummies, v)
	}
	for _, o := range lv.Objects {
		snap.Objects = append(snap.Objects, ObjectView{Name: o.Kind.String(), Box: o.Bounds(), Activated: o.Activated})
	}
	for _, n := range lv.NPCs {
		snap.NPCs = append(snap.NPCs, ObjectView{Name: n.Name, Box: n.Bounds(), Activated: n.TalkedTo})
	}
	for _, d := range lv.Drops {
		snap.Drops = append(snap.Drops, DropView{Kind: d.Kind, Box: d.Bounds()})
	}
	if pz := lv.Puzzle; pz != nil {
		snap.Puzzle = &PuzzleView{
			Box:      entity.Rect{X: pz.Pos.X, Y: pz.Pos.Y, W: pz.Size, H: pz.Size},
			Question: pz.Question(),
			Entry:    pz.Value(),
			Active:   pz.Active,
			Solved:   pz.Solved,
		}
	}
	if sh := lv.Shop; sh != nil {
		snap.Shop = &ShopView{
			Box:      entity.Rect{X: sh.Pos.X, Y: sh.Pos.Y, W: sh.Size, H: sh.Size},
			Open:     sh.Open,
			Currency: sh.Currency,
			Slots:    append([]entity.ShopSlot(nil), sh.Slots...),
		}
	}
	return snap
}

func actor(name string, b *entity.Body) ActorView {
	return ActorView{
		Name:      name,
		Box:       b.Bounds(),
		Health:    b.Health,
		MaxHealth: b.MaxHealth,
		State:     b.State,
		Facing:    b.Facing,
	}
}
