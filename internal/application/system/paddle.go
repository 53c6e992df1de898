package system

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/brickbreak/internal/domain/entity"
	"github.com/younwookim/brickbreak/internal/infrastructure/config"
)

// Direction is a horizontal paddle move
type Direction int

const (
	DirectionLeft  Direction = -1
	DirectionRight Direction = 1
)

// PaddleController applies move and launch actions
type PaddleController struct {
	config *config.PhysicsConfig
}

// NewPaddleController creates a new paddle controller
func NewPaddleController(cfg *config.PhysicsConfig) *PaddleController {
	return &PaddleController{config: cfg}
}

// Limits returns the travel range [min, max] of the paddle for an arena of the given width
func (c *PaddleController) Limits(arenaWidth int) (minX, maxX float64) {
	w := float64(arenaWidth)
	return -w + c.config.Paddle.LeftMargin, w - c.config.Paddle.RightMargin
}

// Move steps the paddle one increment in dir.
// The move only happens while the paddle is inside its travel range,
// and the result never leaves that range.
func (c *PaddleController) Move(paddle entity.Paddle, dir Direction, arenaWidth int) entity.Paddle {
	minX, maxX := c.Limits(arenaWidth)
	step := c.config.Paddle.Step

	switch dir {
	case DirectionRight:
		if paddle.X <= maxX {
			paddle.X = min(paddle.X+step, maxX)
		}
	case DirectionLeft:
		if paddle.X >= minX {
			paddle.X = max(paddle.X-step, minX)
		}
	}
	return paddle
}

// Launch sets the ball velocity to the launch vector, whatever it was before
func (c *PaddleController) Launch(ball entity.Ball) entity.Ball {
	ball.Vel = r2.Vec{X: c.config.Ball.LaunchVX, Y: c.config.Ball.LaunchVY}
	return ball
}
