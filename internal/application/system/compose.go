package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/younwookim/brickbreak/internal/domain/entity"
	"github.com/younwookim/brickbreak/internal/domain/render"
	"github.com/younwookim/brickbreak/internal/infrastructure/config"
)

// ballSpinAxis is the vertical axis the ball spins around
var ballSpinAxis = mgl32.Vec3{0, 1, 0}

// Composer turns the level and game state into draw commands.
//
// Cell (row, col) is placed at (2*col - W, plane, 2*row - H): grid rows run
// along world Z and the ball/paddle arena plane maps x to X and y to Z.
// The camera looks down at the origin from (0, height, eyeZ) with -Z as up.
type Composer struct {
	config     *config.RenderConfig
	eyeZ       float32
	projection mgl32.Mat4
	spin       float32 // degrees
}

// NewComposer creates a composer. The projection is built once here.
func NewComposer(cfg *config.RenderConfig, camera config.CameraConfig) *Composer {
	f := cfg.Frustum
	return &Composer{
		config:     cfg,
		eyeZ:       float32(camera.EyeZ),
		projection: mgl32.Frustum(f.Left, f.Right, f.Bottom, f.Top, f.Near, f.Far),
	}
}

// Projection returns the constant perspective projection
func (c *Composer) Projection() mgl32.Mat4 {
	return c.projection
}

// View returns the look-at transform for the current camera height
func (c *Composer) View(camera entity.Camera) mgl32.Mat4 {
	eye := mgl32.Vec3{0, float32(camera.Height), c.eyeZ}
	return mgl32.LookAtV(eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 0, -1})
}

// Spin returns the current ball spin angle in degrees
func (c *Composer) Spin() float32 {
	return c.spin
}

// Compose emits one frame of draw commands in a fixed order:
// every non-empty cell row-major, the ball, then the left and right paddle halves.
// Each call advances the ball spin by one step.
func (c *Composer) Compose(level *entity.Level, state *entity.GameState) []render.DrawCommand {
	view := c.View(state.Camera)
	cmds := make([]render.DrawCommand, 0, level.Width*level.Height+3)

	emit := func(role render.Role, model mgl32.Mat4) {
		cmds = append(cmds, render.DrawCommand{
			Role:      role,
			Model:     model,
			ModelView: view.Mul4(model),
		})
	}

	w := float32(level.Width)
	h := float32(level.Height)
	for cell := range level.Cells() {
		role, plane := render.RoleWall, c.config.Planes.Wall
		if cell.Kind == entity.CellBrick {
			role, plane = render.RoleBrick, c.config.Planes.Brick
		}
		emit(role, mgl32.Translate3D(2*float32(cell.Col)-w, plane, 2*float32(cell.Row)-h))
	}

	ball := state.Ball.Pos
	spin := mgl32.HomogRotate3D(mgl32.DegToRad(c.spin), ballSpinAxis)
	emit(render.RoleBall, mgl32.Translate3D(float32(ball.X), c.config.Planes.Ball, float32(ball.Y)).Mul4(spin))

	px := float32(state.Paddle.X)
	pz := float32(state.Paddle.Y)
	gap := c.config.PaddleHalfGap
	emit(render.RolePaddle, mgl32.Translate3D(px-gap, c.config.Planes.Paddle, pz))
	emit(render.RolePaddle, mgl32.Translate3D(px+gap, c.config.Planes.Paddle, pz))

	c.spin = float32(math.Mod(float64(c.spin+c.config.SpinStep), 360))

	return cmds
}
