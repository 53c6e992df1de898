package playing

import (
	"fmt"

	"github.com/younwookim/brickbreak/internal/application/replay"
	"github.com/younwookim/brickbreak/internal/application/system"
)

// ActionSource supplies the actions triggered in each frame
type ActionSource interface {
	Poll() []system.Action
}

// ReplaySource plays back the actions of a recording, one frame per Poll
type ReplaySource struct {
	frames [][]system.Action
	next   int
}

// NewReplaySource resolves every recorded action name up front
func NewReplaySource(r *replay.Replayer) (*ReplaySource, error) {
	src := &ReplaySource{frames: make([][]system.Action, 0, r.TotalFrames())}
	for {
		input, ok := r.GetInput()
		if !ok {
			break
		}
		actions, err := system.ParseActions(input.Actions)
		if err != nil {
			return nil, fmt.Errorf("replay frame %d: %w", r.CurrentFrame()-1, err)
		}
		src.frames = append(src.frames, actions)
	}
	r.Reset()
	return src, nil
}

// Poll returns the actions of the next recorded frame
func (s *ReplaySource) Poll() []system.Action {
	if s.next >= len(s.frames) {
		return nil
	}
	actions := s.frames[s.next]
	s.next++
	return actions
}

// Done returns true once every recorded frame has been played
func (s *ReplaySource) Done() bool {
	return s.next >= len(s.frames)
}
