// Package game hosts the scene stack inside ebiten's run loop.
package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/younwookim/relicescape/internal/application/scene"
)

// Game implements ebiten.Game by forwarding to the current scene.
type Game struct {
	current scene.Scene
	log     *zap.Logger
	screenW int
	screenH int
	dt      float64
	ticks   uint64
	closed  bool
}

// New creates a Game showing initial. OnEnter runs immediately.
func New(initial scene.Scene, screenW, screenH int, log *zap.Logger) *Game {
	g := &Game{
		current: initial,
		log:     log,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0,
	}
	g.current.OnEnter()
	return g
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.closed {
		return ebiten.Termination
	}
	g.ticks++

	next, err := g.current.Update(g.dt)
	if err != nil {
		g.close()
		if errors.Is(err, scene.ErrQuit) {
			g.log.Info("quit requested", zap.Uint64("ticks", g.ticks))
			return ebiten.Termination
		}
		return fmt.Errorf("scene update at tick %d: %w", g.ticks, err)
	}

	if next != nil {
		g.log.Debug("switching scene",
			zap.String("from", fmt.Sprintf("%T", g.current)),
			zap.String("to", fmt.Sprintf("%T", next)))
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// close runs the current scene's OnExit once.
func (g *Game) close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}

// Close ends the current scene. It is safe to call after a quit.
func (g *Game) Close() {
	g.close()
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout implements ebiten.Game with a fixed logical screen.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the fixed step handed to scenes each tick.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Ticks returns how many times Update has run.
func (g *Game) Ticks() uint64 {
	return g.ticks
}
