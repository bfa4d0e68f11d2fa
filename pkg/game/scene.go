package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one fixed tick.
	// deltaTime is the tick length in seconds; input holds the actions
	// collected at the top of this tick.
	Update(deltaTime float64, input InputFrame)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}
