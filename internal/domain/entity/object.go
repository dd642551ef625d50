package entity

// ObjectKind identifies an interactive world object.
type ObjectKind int

const (
	ObjectVine ObjectKind = iota
	ObjectChest
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectVine:
		return "Vine"
	case ObjectChest:
		return "Chest"
	default:
		return "Unknown"
	}
}

// InteractiveObject is a vine or chest that reacts once to the interact action.
type InteractiveObject struct {
	Kind        ObjectKind
	Pos         Vec2
	Size        float64
	Activated   bool
	RequiredKey int // keys needed to open; 0 means none
}

// NewObject creates an inactive object.
func NewObject(kind ObjectKind, pos Vec2, size float64) *InteractiveObject {
	return &InteractiveObject{Kind: kind, Pos: pos, Size: size}
}

// Bounds returns the object's box in world space.
func (o *InteractiveObject) Bounds() Rect {
	return Rect{X: o.Pos.X, Y: o.Pos.Y, W: o.Size, H: o.Size}
}

// NPC is a friendly character with a line of dialogue.
type NPC struct {
	Name     string
	Pos      Vec2
	Size     float64
	Dialogue string
	TalkedTo bool
}

// Bounds returns the NPC's box in world space.
func (n *NPC) Bounds() Rect {
	return Rect{X: n.Pos.X, Y: n.Pos.Y, W: n.Size, H: n.Size}
}
