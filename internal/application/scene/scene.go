// Package scene defines the screens the host game switches between.
package scene

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrQuit is returned from Update to end the game without an error.
var ErrQuit = errors.New("quit")

// Scene is one screen of the host. The scene manager forwards ebiten's
// Update and Draw to the current scene.
type Scene interface {
	// Update advances the scene by dt seconds. A non-nil next scene replaces
	// this one after the call; a non-nil error stops the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene.
	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced or the game ends.
	OnExit()
}
