package level

import (
	"go.uber.org/zap"

	"github.com/younwookim/relicescape/internal/domain/entity"
)

const forestKeys = 3

var bridgeTile = entity.TileCoord{X: 2, Y: 10}

func (l *Level) buildForest() {
	g := l.Grid
	g.Border(entity.TileTree)
	g.Fill(1, 10, 14, 1, entity.TileWater)
	for _, c := range []entity.TileCoord{{X: 3, Y: 3}, {X: 5, Y: 4}, {X: 10, Y: 3}, {X: 12, Y: 5}, {X: 4, Y: 7}, {X: 11, Y: 8}} {
		g.Set(c.X, c.Y, entity.TileTree)
	}
	g.Set(13, 13, entity.TileChest)
	l.Exit = entity.TileCoord{X: 14, Y: 13}
	g.Set(l.Exit.X, l.Exit.Y, entity.TileExit)

	l.Enemies = []*entity.Enemy{
		l.newEnemy(entity.EnemySnake, l.validSpawn(6, 5), true),
		l.newEnemy(entity.EnemySpider, l.validSpawn(10, 6), true),
	}

	ts := float64(g.TileSize)
	vine := entity.NewObject(entity.ObjectVine, g.TileOrigin(2, 9), ts)
	chest := entity.NewObject(entity.ObjectChest, g.TileOrigin(13, 13), ts)
	chest.RequiredKey = forestKeys
	l.Objects = []*entity.InteractiveObject{vine, chest}
}

// validSpawn returns tile (x, y) if it is open ground, else the first open
// neighbour, else (x, y) regardless.
func (l *Level) validSpawn(x, y int) entity.Vec2 {
	if l.openGround(x, y) {
		return l.Grid.TileOrigin(x, y)
	}
	for nx := x - 1; nx <= x+1; nx++ {
		for ny := y - 1; ny <= y+1; ny++ {
			if l.openGround(nx, ny) {
				return l.Grid.TileOrigin(nx, ny)
			}
		}
	}
	return l.Grid.TileOrigin(x, y)
}

func (l *Level) openGround(x, y int) bool {
	kind, ok := l.Grid.At(x, y)
	return ok && !l.blocking(x, y, kind)
}

// pushVine drops the vine stone into the river and opens the bridge tile.
func (l *Level) pushVine(o *entity.InteractiveObject) {
	o.Pos.Y = float64(bridgeTile.Y*l.Grid.TileSize) - 16
	o.Activated = true
	l.bridgeBuilt = true
	l.Grid.Set(bridgeTile.X, bridgeTile.Y, entity.TileStone)
	l.events.Message("Stone pushed! Bridge created!")
	l.log.Info("bridge built")
}

// respawnForest revives every enemy that died before this frame at a random
// open tile in the northern woods, carrying a key again.
func (l *Level) respawnForest() {
	revived := 0
	for _, e := range l.Enemies {
		if !e.IsDead() || e.JustKilled {
			continue
		}
		e.Respawn(l.randomForestTile())
		revived++
	}
	if revived > 0 {
		l.log.Debug("enemies respawned", zap.Int("count", revived))
	}
}

func (l *Level) randomForestTile() entity.Vec2 {
	w := l.Grid.Width
	for {
		x := 2 + l.rng.Intn(w-4)
		y := 2 + l.rng.Intn(6)
		if l.openGround(x, y) {
			return l.Grid.TileOrigin(x, y)
		}
	}
}
