package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// ReplayInput is the recorded input for one frame
type ReplayInput struct {
	DT      float64
	Actions []string
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{
		data:  data,
		frame: 0,
	}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	if err := data.Validate(); err != nil {
		return nil, fmt.Errorf("invalid replay %s: %w", filename, err)
	}

	return &data, nil
}

// Validate checks frame numbering and delta times
func (d *ReplayData) Validate() error {
	if d.Version != Version {
		return fmt.Errorf("unsupported version %q", d.Version)
	}
	for i, f := range d.Frames {
		if f.F != i {
			return fmt.Errorf("frame %d has number %d", i, f.F)
		}
		if f.DT < 0 {
			return fmt.Errorf("frame %d has negative dt %v", i, f.DT)
		}
	}
	return nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (ReplayInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return ReplayInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++

	return ReplayInput{
		DT:      fi.DT,
		Actions: fi.A,
	}, true
}

// Deltas returns the recorded delta time of every frame, in order
func (r *Replayer) Deltas() []float64 {
	deltas := make([]float64, len(r.data.Frames))
	for i, f := range r.data.Frames {
		deltas[i] = f.DT
	}
	return deltas
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Done returns true once every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Stage returns the stage the replay was recorded on
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Final returns the recorded end state, or nil if the replay has none
func (r *Replayer) Final() *FinalState {
	return r.data.Final
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// CreateTestReplayData creates replay data for testing (idle player at a fixed frame rate)
func CreateTestReplayData(frames int, dt float64) ReplayData {
	data := ReplayData{
		Version:   Version,
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{
			F:  i,
			DT: dt,
		}
	}
	if frames > 0 {
		data.Frames[0].DT = 0
	}

	return data
}
