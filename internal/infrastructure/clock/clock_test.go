package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem_Monotonic(t *testing.T) {
	c := NewSystem()

	a := c.Now()
	b := c.Now()

	assert.GreaterOrEqual(t, a, time.Duration(0))
	assert.GreaterOrEqual(t, b, a)
}

func TestFake(t *testing.T) {
	c := NewFake()
	assert.Equal(t, time.Duration(0), c.Now())

	c.Advance(16 * time.Millisecond)
	c.Advance(4 * time.Millisecond)

	assert.Equal(t, 20*time.Millisecond, c.Now())
	assert.Equal(t, 20*time.Millisecond, c.Now(), "reading does not advance")
}

func TestScripted(t *testing.T) {
	c := NewScripted([]float64{0, 0.016, 0.017})

	assert.False(t, c.Done())
	assert.Equal(t, time.Duration(0), c.Now())
	assert.Equal(t, 16*time.Millisecond, c.Now())
	assert.Equal(t, 33*time.Millisecond, c.Now())
	assert.True(t, c.Done())

	// Exhausted: time stops
	assert.Equal(t, 33*time.Millisecond, c.Now())
}

func TestSeconds(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
	}{
		{"zero", 0},
		{"frame", 16666667 * time.Nanosecond},
		{"odd", 1234567 * time.Nanosecond},
		{"long", 2*time.Second + 3*time.Nanosecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.d, Seconds(tt.d.Seconds()))
		})
	}
}
