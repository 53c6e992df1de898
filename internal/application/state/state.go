package state

// Mode is the current play phase
type Mode int

const (
	ModeServing Mode = iota // Ball at rest on spawn, waiting for launch
	ModePlaying
	ModePaused
)

// String returns the string representation of the mode
func (m Mode) String() string {
	switch m {
	case ModeServing:
		return "Serving"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Resolve returns the running mode for the ball state
func Resolve(ballAtRest bool) Mode {
	if ballAtRest {
		return ModeServing
	}
	return ModePlaying
}

// Update returns the mode after a tick. Pause is sticky; otherwise the mode follows the ball.
func (m Mode) Update(ballAtRest bool) Mode {
	if m == ModePaused {
		return m
	}
	return Resolve(ballAtRest)
}

// TogglePause enters or leaves the paused mode
func (m Mode) TogglePause(ballAtRest bool) Mode {
	if m == ModePaused {
		return Resolve(ballAtRest)
	}
	return ModePaused
}

// Simulating returns true if the simulation advances in this mode
func (m Mode) Simulating() bool {
	return m != ModePaused
}
