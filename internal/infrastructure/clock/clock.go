// Package clock provides the monotonic time sources used to derive frame delta time.
package clock

import (
	"math"
	"time"
)

// Clock reports monotonic elapsed time
type Clock interface {
	Now() time.Duration
}

// System is the wall clock. Readings come from time.Since, which is monotonic.
type System struct {
	start time.Time
}

// NewSystem creates a system clock starting at zero
func NewSystem() *System {
	return &System{start: time.Now()}
}

// Now returns the time elapsed since the clock was created
func (c *System) Now() time.Duration {
	return time.Since(c.start)
}

// Fake is a manually advanced clock for tests
type Fake struct {
	now time.Duration
}

// NewFake creates a fake clock at zero
func NewFake() *Fake {
	return &Fake{}
}

// Now returns the current fake time
func (c *Fake) Now() time.Duration {
	return c.now
}

// Advance moves the fake time forward by d
func (c *Fake) Advance(d time.Duration) {
	c.now += d
}

// Scripted replays a recorded sequence of frame deltas.
// Each call to Now advances by the next delta; once the script is
// exhausted time stops.
type Scripted struct {
	deltas []time.Duration
	next   int
	now    time.Duration
}

// NewScripted creates a scripted clock from deltas in seconds
func NewScripted(deltas []float64) *Scripted {
	d := make([]time.Duration, len(deltas))
	for i, s := range deltas {
		d[i] = Seconds(s)
	}
	return &Scripted{deltas: d}
}

// Now advances to the next scripted reading and returns it
func (c *Scripted) Now() time.Duration {
	if c.next < len(c.deltas) {
		c.now += c.deltas[c.next]
		c.next++
	}
	return c.now
}

// Done returns true once every delta has been consumed
func (c *Scripted) Done() bool {
	return c.next >= len(c.deltas)
}

// Seconds converts a delta in seconds back to a duration, rounding to the nanosecond
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
