// Package telemetry aggregates per-window session statistics and writes them as CSV.
package telemetry

// WindowStats holds aggregated statistics for a window of ticks
type WindowStats struct {
	WindowStartTick int     `csv:"-"`
	WindowEndTick   int     `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	Ticks int `csv:"ticks"`

	// Events during window
	Launches      int `csv:"launches"`
	WallBounces   int `csv:"wall_bounces"`
	PaddleBounces int `csv:"paddle_bounces"`
	Misses        int `csv:"misses"`

	// Frame timing
	MeanDT float64 `csv:"mean_dt"`
	MaxDT  float64 `csv:"max_dt"`
}
