package system

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/brickbreak/internal/infrastructure/config"
)

type binding struct {
	action Action
	keys   []ebiten.Key
	repeat bool
}

// InputSystem turns keyboard state into actions using the configured bindings
type InputSystem struct {
	bindings []binding
	repeat   config.RepeatConfig
	// pressDuration reports how many ticks a key has been held (0 if released)
	pressDuration func(ebiten.Key) int
}

// NewInputSystem creates a new input system from the controls config
func NewInputSystem(cfg *config.ControlsConfig) (*InputSystem, error) {
	s := &InputSystem{
		repeat:        cfg.Repeat,
		pressDuration: inpututil.KeyPressDuration,
	}
	if s.repeat.Interval <= 0 {
		s.repeat.Interval = 1
	}

	// Bindings are kept in action order so Poll output is deterministic
	for _, action := range Actions() {
		bc, ok := cfg.Bindings[action.String()]
		if !ok {
			continue
		}
		b := binding{action: action, repeat: bc.Repeat}
		for _, name := range bc.Keys {
			key, err := ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("binding %s: %w", action, err)
			}
			b.keys = append(b.keys, key)
		}
		s.bindings = append(s.bindings, b)
	}

	for name := range cfg.Bindings {
		if _, err := ParseAction(name); err != nil {
			return nil, fmt.Errorf("invalid controls: %w", err)
		}
	}

	return s, nil
}

// Poll returns the actions triggered this tick. Each action appears at most once.
func (s *InputSystem) Poll() []Action {
	var actions []Action
	for _, b := range s.bindings {
		for _, key := range b.keys {
			if s.triggered(key, b.repeat) {
				actions = append(actions, b.action)
				break
			}
		}
	}
	return actions
}

// triggered reports a key press, or an auto-repeat while held for repeating bindings
func (s *InputSystem) triggered(key ebiten.Key, repeat bool) bool {
	d := s.pressDuration(key)
	if d == 1 {
		return true
	}
	if !repeat || d < s.repeat.Delay || s.repeat.Delay <= 0 {
		return false
	}
	return (d-s.repeat.Delay)%s.repeat.Interval == 0
}

// ParseKey resolves an ebiten key name, ignoring case
func ParseKey(name string) (ebiten.Key, error) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}
