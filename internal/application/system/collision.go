package system

import "github.com/younwookim/relicescape/internal/domain/entity"

// BlockingFunc decides whether tile (x, y) of the given kind stops movement.
type BlockingFunc func(x, y int, kind entity.TileKind) bool

// DefaultBlocking blocks fence, sign, tree, water, cactus and statue tiles.
func DefaultBlocking(_, _ int, kind entity.TileKind) bool {
	return kind.Blocking()
}

// CollisionSystem keeps bodies out of blocking tiles and inside the play area.
type CollisionSystem struct {
	pushStep float64
}

// NewCollisionSystem creates a collision system that pushes pushStep pixels per overlapping tile
func NewCollisionSystem(pushStep float64) *CollisionSystem {
	return &CollisionSystem{pushStep: pushStep}
}

// Resolve nudges body away from every blocking tile in the 3×3 neighbourhood
// of the tile under its position. Each overlapping tile pushes pushStep pixels
// along the direction from the tile centre to the body centre. It reports
// whether any push happened.
func (s *CollisionSystem) Resolve(body *entity.Body, grid *entity.Grid, blocking BlockingFunc) bool {
	if blocking == nil {
		blocking = DefaultBlocking
	}

	center := grid.TileAt(body.Pos)
	bounds := body.Bounds()
	pushed := false

	for y := center.Y - 1; y <= center.Y+1; y++ {
		for x := center.X - 1; x <= center.X+1; x++ {
			kind, ok := grid.At(x, y)
			if !ok || !blocking(x, y, kind) {
				continue
			}

			tile := grid.TileRect(x, y)
			if !bounds.Intersects(tile) {
				continue
			}

			dir := bounds.Center().Sub(tile.Center())
			if dir.IsZero() {
				continue
			}
			body.Pos = body.Pos.Add(dir.Normalize().Scale(s.pushStep))
			pushed = true
		}
	}

	return pushed
}

// Clamp keeps body inside [tile, (W-2)·tile] on both axes.
func (s *CollisionSystem) Clamp(body *entity.Body, grid *entity.Grid) {
	ts := float64(grid.TileSize)
	body.Pos.X = clamp(body.Pos.X, ts, float64(grid.Width-2)*ts)
	body.Pos.Y = clamp(body.Pos.Y, ts, float64(grid.Height-2)*ts)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Overlaps returns the coordinates of every tile of kind the body overlaps.
func Overlaps(body *entity.Body, grid *entity.Grid, kind entity.TileKind) []entity.TileCoord {
	bounds := body.Bounds()
	ts := float64(grid.TileSize)
	x0, y0 := int(bounds.X/ts), int(bounds.Y/ts)
	x1, y1 := int((bounds.X+bounds.W)/ts), int((bounds.Y+bounds.H)/ts)

	var out []entity.TileCoord
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			k, ok := grid.At(x, y)
			if ok && k == kind && bounds.Intersects(grid.TileRect(x, y)) {
				out = append(out, entity.TileCoord{X: x, Y: y})
			}
		}
	}
	return out
}
