package system

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/brickbreak/internal/domain/entity"
	"github.com/younwookim/brickbreak/internal/infrastructure/config"
)

// Contact reports which collision rules fired during one Advance call
type Contact uint8

const (
	ContactTop Contact = 1 << iota
	ContactRight
	ContactLeft
	ContactMiss
	ContactPaddle
)

// ContactNone means the ball moved freely
const ContactNone Contact = 0

// Has returns true if all bits of c2 are set in c
func (c Contact) Has(c2 Contact) bool {
	return c&c2 == c2
}

// Wall returns true if the ball reflected off any arena wall
func (c Contact) Wall() bool {
	return c&(ContactTop|ContactRight|ContactLeft) != 0
}

// PhysicsSystem integrates the ball and resolves its collisions
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Advance moves the ball by dt seconds and resolves collisions.
// It has no side effects: the new ball state is returned along with
// the rules that fired. A negative dt is treated as zero.
func (s *PhysicsSystem) Advance(ball entity.Ball, paddle entity.Paddle, bounds entity.ArenaBounds, dt float64) (entity.Ball, Contact) {
	if dt < 0 {
		dt = 0
	}

	// Explicit Euler, before any collision check
	ball.Pos = r2.Add(ball.Pos, r2.Scale(dt, ball.Vel))

	contact := s.resolveArena(&ball, bounds)

	if s.inPaddleZone(ball, paddle) {
		// No latch: a ball lingering in the zone reflects again next tick
		ball.Vel.Y = -ball.Vel.Y
		contact |= ContactPaddle
	}

	return ball, contact
}

// resolveArena applies the first matching boundary rule
func (s *PhysicsSystem) resolveArena(ball *entity.Ball, bounds entity.ArenaBounds) Contact {
	nudge := s.config.Collision.WallNudge

	switch {
	case ball.Pos.Y <= bounds.Top:
		ball.Vel.Y = -ball.Vel.Y
		ball.Pos.X += nudge
		return ContactTop
	case ball.Pos.X >= bounds.Right:
		ball.Vel.X = -ball.Vel.X
		ball.Pos.Y -= nudge
		return ContactRight
	case ball.Pos.X <= bounds.Left:
		ball.Vel.X = -ball.Vel.X
		ball.Pos.Y -= nudge
		return ContactLeft
	case ball.Pos.Y >= bounds.Bottom:
		*ball = entity.NewBall(s.Spawn())
		return ContactMiss
	}
	return ContactNone
}

// inPaddleZone checks the paddle's asymmetric collision extents
func (s *PhysicsSystem) inPaddleZone(ball entity.Ball, paddle entity.Paddle) bool {
	c := s.config.Collision
	return ball.Pos.Y >= paddle.Y-c.PaddleReach &&
		ball.Pos.X <= paddle.X+c.PaddleRight &&
		ball.Pos.X >= paddle.X-c.PaddleLeft
}

// Spawn returns the ball spawn position
func (s *PhysicsSystem) Spawn() r2.Vec {
	return r2.Vec{X: s.config.Ball.SpawnX, Y: s.config.Ball.SpawnY}
}

// Bounds derives the arena bounds of a level using the configured insets
func (s *PhysicsSystem) Bounds(level *entity.Level) entity.ArenaBounds {
	in := s.config.Collision.Insets
	return level.Bounds(entity.BoundsInsets{
		Right:  in.Right,
		Left:   in.Left,
		Bottom: in.Bottom,
		Top:    in.Top,
	})
}
