package entity

// TileKind represents the type of a tile
type TileKind int

const (
	TileGrass TileKind = iota
	TileFlower
	TileFence
	TilePath
	TileSign
	TileExit
	TileTree
	TileWater
	TileStone
	TileChest
	TileSand
	TileCactus
	TilePyramid
	TileQuicksand
	TileStatue
	TileShop
)

var tileNames = [...]string{
	TileGrass:     "Grass",
	TileFlower:    "Flower",
	TileFence:     "Fence",
	TilePath:      "Path",
	TileSign:      "Sign",
	TileExit:      "Exit",
	TileTree:      "Tree",
	TileWater:     "Water",
	TileStone:     "Stone",
	TileChest:     "Chest",
	TileSand:      "Sand",
	TileCactus:    "Cactus",
	TilePyramid:   "Pyramid",
	TileQuicksand: "Quicksand",
	TileStatue:    "Statue",
	TileShop:      "Shop",
}

func (k TileKind) String() string {
	if k < 0 || int(k) >= len(tileNames) {
		return "Unknown"
	}
	return tileNames[k]
}

// Blocking reports whether the tile stops movement under the default rule.
func (k TileKind) Blocking() bool {
	switch k {
	case TileFence, TileSign, TileTree, TileWater, TileCactus, TileStatue:
		return true
	}
	return false
}

// TileCoord addresses a tile by column and row.
type TileCoord struct {
	X, Y int
}

// Grid is the tile map of a level, indexed [y][x].
type Grid struct {
	Width    int
	Height   int
	TileSize int
	tiles    [][]TileKind
}

// NewGrid creates a grid filled with ground.
func NewGrid(width, height, tileSize int, ground TileKind) *Grid {
	tiles := make([][]TileKind, height)
	for y := range tiles {
		row := make([]TileKind, width)
		for x := range row {
			row[x] = ground
		}
		tiles[y] = row
	}
	return &Grid{Width: width, Height: height, TileSize: tileSize, tiles: tiles}
}

// InBounds reports whether (x, y) addresses a tile of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at (x, y). ok is false outside the grid.
func (g *Grid) At(x, y int) (TileKind, bool) {
	if !g.InBounds(x, y) {
		return TileGrass, false
	}
	return g.tiles[y][x], true
}

// Set writes a tile. Writes outside the grid are ignored.
func (g *Grid) Set(x, y int, kind TileKind) {
	if !g.InBounds(x, y) {
		return
	}
	g.tiles[y][x] = kind
}

// Fill writes kind into the w×h rectangle at (x, y), clipped to the grid.
func (g *Grid) Fill(x, y, w, h int, kind TileKind) {
	for ty := y; ty < y+h; ty++ {
		for tx := x; tx < x+w; tx++ {
			g.Set(tx, ty, kind)
		}
	}
}

// Border writes kind around the outermost ring of tiles.
func (g *Grid) Border(kind TileKind) {
	for x := 0; x < g.Width; x++ {
		g.Set(x, 0, kind)
		g.Set(x, g.Height-1, kind)
	}
	for y := 0; y < g.Height; y++ {
		g.Set(0, y, kind)
		g.Set(g.Width-1, y, kind)
	}
}

// TileAt converts a world position to the tile containing it.
func (g *Grid) TileAt(p Vec2) TileCoord {
	return TileCoord{X: int(p.X) / g.TileSize, Y: int(p.Y) / g.TileSize}
}

// TileRect returns the world rectangle covered by tile (x, y).
func (g *Grid) TileRect(x, y int) Rect {
	ts := float64(g.TileSize)
	return Rect{X: float64(x) * ts, Y: float64(y) * ts, W: ts, H: ts}
}

// TileOrigin returns the world position of the top-left corner of tile (x, y).
func (g *Grid) TileOrigin(x, y int) Vec2 {
	ts := float64(g.TileSize)
	return Vec2{X: float64(x) * ts, Y: float64(y) * ts}
}

// Find returns every tile coordinate holding kind, row-major.
func (g *Grid) Find(kind TileKind) []TileCoord {
	var out []TileCoord
	for y, row := range g.tiles {
		for x, k := range row {
			if k == kind {
				out = append(out, TileCoord{X: x, Y: y})
			}
		}
	}
	return out
}
