// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/brickbreak/internal/application/scene"
	"github.com/younwookim/brickbreak/internal/application/system"
	"github.com/younwookim/brickbreak/internal/infrastructure/clock"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	timer   *system.DeltaTimer
	screenW int
	screenH int
	lastDT  float64
	closed  bool
}

// New creates a new Game with the given initial scene.
// Frame delta time is measured on c. The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, c clock.Clock, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		timer:   system.NewDeltaTimer(c),
		screenW: screenW,
		screenH: screenH,
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.lastDT = g.timer.Tick()

	next, err := g.current.Update(g.lastDT)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// LastDT returns the delta time passed to the scene on the last Update
func (g *Game) LastDT() float64 {
	return g.lastDT
}

// Close exits the current scene. Only the first call has an effect.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}
