package telemetry

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowTicks int

	tick            int
	simTime         float64
	windowStartTick int
	windowStartTime float64

	// Counters for current window
	launches      int
	wallBounces   int
	paddleBounces int
	misses        int
	maxDT         float64
}

// NewCollector creates a collector flushing every windowTicks ticks
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowTicks: windowTicks}
}

// RecordTick advances the collector by one simulation tick of dt seconds
func (c *Collector) RecordTick(dt float64) {
	c.tick++
	c.simTime += dt
	c.maxDT = max(c.maxDT, dt)
}

// RecordLaunch records a ball launch.
func (c *Collector) RecordLaunch() {
	c.launches++
}

// RecordWallBounce records a reflection off the top or a side wall.
func (c *Collector) RecordWallBounce() {
	c.wallBounces++
}

// RecordPaddleBounce records a reflection off the paddle.
func (c *Collector) RecordPaddleBounce() {
	c.paddleBounces++
}

// RecordMiss records the ball leaving through the bottom.
func (c *Collector) RecordMiss() {
	c.misses++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush() bool {
	return c.tick-c.windowStartTick >= c.windowTicks
}

// Pending returns true if ticks were recorded since the last flush
func (c *Collector) Pending() bool {
	return c.tick > c.windowStartTick
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush() WindowStats {
	ticks := c.tick - c.windowStartTick
	var meanDT float64
	if ticks > 0 {
		meanDT = (c.simTime - c.windowStartTime) / float64(ticks)
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   c.tick,
		SimTimeSec:      c.simTime,
		Ticks:           ticks,
		Launches:        c.launches,
		WallBounces:     c.wallBounces,
		PaddleBounces:   c.paddleBounces,
		Misses:          c.misses,
		MeanDT:          meanDT,
		MaxDT:           c.maxDT,
	}

	// Reset for next window
	c.windowStartTick = c.tick
	c.windowStartTime = c.simTime
	c.launches = 0
	c.wallBounces = 0
	c.paddleBounces = 0
	c.misses = 0
	c.maxDT = 0

	return stats
}

// WindowTicks returns the number of ticks per window.
func (c *Collector) WindowTicks() int {
	return c.windowTicks
}
