package system

import (
	"time"

	"github.com/younwookim/brickbreak/internal/infrastructure/clock"
)

// DeltaTimer measures the time between successive ticks
type DeltaTimer struct {
	clock   clock.Clock
	last    time.Duration
	started bool
}

// NewDeltaTimer creates a delta timer reading from c
func NewDeltaTimer(c clock.Clock) *DeltaTimer {
	return &DeltaTimer{clock: c}
}

// Tick returns the seconds elapsed since the previous Tick.
// The first call returns 0. A clock reading that goes backwards yields 0.
func (t *DeltaTimer) Tick() float64 {
	now := t.clock.Now()
	if !t.started {
		t.started = true
		t.last = now
		return 0
	}

	elapsed := now - t.last
	t.last = now
	if elapsed < 0 {
		return 0
	}
	return elapsed.Seconds()
}
