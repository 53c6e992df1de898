package entity

import "gonum.org/v1/gonum/spatial/r2"

// Ball is the bouncing ball.
// Pos is in arena-plane coordinates (x right, y toward the paddle),
// Vel is in units per second.
type Ball struct {
	Pos r2.Vec
	Vel r2.Vec
}

// NewBall creates a ball at rest at the spawn position
func NewBall(spawn r2.Vec) Ball {
	return Ball{Pos: spawn}
}

// Speed returns the velocity magnitude
func (b Ball) Speed() float64 {
	return r2.Norm(b.Vel)
}

// AtRest returns true if the ball has no velocity (waiting for launch)
func (b Ball) AtRest() bool {
	return b.Vel.X == 0 && b.Vel.Y == 0
}

// Paddle is the player-controlled paddle. Only X moves.
type Paddle struct {
	X float64
	Y float64
}

// Camera holds the eye height above the arena plane
type Camera struct {
	Height float64
}

// RenderOptions are the surface options toggled by the player
type RenderOptions struct {
	Texture  bool
	Color    bool
	Lighting bool
}

// GameState is the complete mutable simulation state.
// It is owned by the playing scene and passed explicitly to every system.
type GameState struct {
	Ball    Ball
	Paddle  Paddle
	Camera  Camera
	Options RenderOptions
}

// NewGameState creates the initial state with the ball at rest on spawn
func NewGameState(spawn r2.Vec, paddle Paddle, camera Camera) *GameState {
	return &GameState{
		Ball:    NewBall(spawn),
		Paddle:  paddle,
		Camera:  camera,
		Options: RenderOptions{Texture: true, Color: true, Lighting: true},
	}
}
