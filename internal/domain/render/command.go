package render

import "github.com/go-gl/mathgl/mgl32"

// Role identifies which game mesh a draw command uses
type Role int

const (
	RoleWall Role = iota
	RoleBrick
	RoleBall
	RolePaddle
	roleCount
)

// Roles lists every role in draw order
var Roles = [roleCount]Role{RoleWall, RoleBrick, RoleBall, RolePaddle}

// String returns the string representation of the role
func (r Role) String() string {
	switch r {
	case RoleWall:
		return "Wall"
	case RoleBrick:
		return "Brick"
	case RoleBall:
		return "Ball"
	case RolePaddle:
		return "Paddle"
	default:
		return "Unknown"
	}
}

// DrawCommand is one mesh placement for a single frame
type DrawCommand struct {
	Role Role
	// Model places the mesh in world space
	Model mgl32.Mat4
	// ModelView is View * Model, the transform handed to the renderer
	ModelView mgl32.Mat4
}

// Translation returns the translation component of the model transform
func (c DrawCommand) Translation() mgl32.Vec3 {
	return c.Model.Col(3).Vec3()
}
