package system

import (
	"github.com/younwookim/brickbreak/internal/domain/entity"
	"github.com/younwookim/brickbreak/internal/infrastructure/config"
)

// ControlSystem applies player actions to the game state
type ControlSystem struct {
	config *config.PhysicsConfig
	paddle *PaddleController
}

// NewControlSystem creates a new control system
func NewControlSystem(cfg *config.PhysicsConfig) *ControlSystem {
	return &ControlSystem{
		config: cfg,
		paddle: NewPaddleController(cfg),
	}
}

// Apply mutates state for one action.
// It returns false for actions that do not touch the game state (pause, save).
func (s *ControlSystem) Apply(state *entity.GameState, arenaWidth int, action Action) bool {
	switch action {
	case ActionMoveLeft:
		state.Paddle = s.paddle.Move(state.Paddle, DirectionLeft, arenaWidth)
	case ActionMoveRight:
		state.Paddle = s.paddle.Move(state.Paddle, DirectionRight, arenaWidth)
	case ActionLaunch:
		state.Ball = s.paddle.Launch(state.Ball)
	case ActionCameraUp:
		state.Camera.Height += s.config.Camera.Step
	case ActionCameraDown:
		// Height 0 would put the eye on the up axis
		state.Camera.Height = max(state.Camera.Height-s.config.Camera.Step, s.config.Camera.Step)
	case ActionToggleTexture:
		state.Options.Texture = !state.Options.Texture
	case ActionToggleColor:
		state.Options.Color = !state.Options.Color
	case ActionToggleLighting:
		state.Options.Lighting = !state.Options.Lighting
	default:
		return false
	}
	return true
}

// OptionsChanged returns true if the action flips a render option
func OptionsChanged(action Action) bool {
	return action == ActionToggleTexture || action == ActionToggleColor || action == ActionToggleLighting
}
