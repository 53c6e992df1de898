package system

import "fmt"

// Action is a named player intent, decoupled from the key that produced it
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionLaunch
	ActionCameraUp
	ActionCameraDown
	ActionToggleTexture
	ActionToggleColor
	ActionToggleLighting
	ActionPause
	ActionSaveRecording
	actionCount
)

var actionNames = [actionCount]string{
	ActionMoveLeft:       "move_left",
	ActionMoveRight:      "move_right",
	ActionLaunch:         "launch",
	ActionCameraUp:       "camera_up",
	ActionCameraDown:     "camera_down",
	ActionToggleTexture:  "toggle_texture",
	ActionToggleColor:    "toggle_color",
	ActionToggleLighting: "toggle_lighting",
	ActionPause:          "pause",
	ActionSaveRecording:  "save_recording",
}

// String returns the binding name of the action, as used in controls.yaml and replays
func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ParseAction resolves a binding name to an action
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Actions returns every action in declaration order
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// ActionNames converts actions to their binding names
func ActionNames(actions []Action) []string {
	if len(actions) == 0 {
		return nil
	}
	names := make([]string, len(actions))
	for i, a := range actions {
		names[i] = a.String()
	}
	return names
}

// ParseActions converts binding names back to actions
func ParseActions(names []string) ([]Action, error) {
	if len(names) == 0 {
		return nil, nil
	}
	actions := make([]Action, len(names))
	for i, n := range names {
		a, err := ParseAction(n)
		if err != nil {
			return nil, err
		}
		actions[i] = a
	}
	return actions, nil
}
