package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display"`
	Ball      BallConfig      `json:"ball"`
	Paddle    PaddleConfig    `json:"paddle"`
	Collision CollisionConfig `json:"collision"`
	Camera    CameraConfig    `json:"camera"`
	Telemetry TelemetryConfig `json:"telemetry"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

// BallConfig configures spawn position and launch velocity (units/sec)
type BallConfig struct {
	SpawnX   float64 `json:"spawnX"`
	SpawnY   float64 `json:"spawnY"`
	LaunchVX float64 `json:"launchVX"`
	LaunchVY float64 `json:"launchVY"`
}

// PaddleConfig configures paddle start and movement gates.
// The paddle may move right while X <= W-RightMargin and left while X >= -W+LeftMargin.
type PaddleConfig struct {
	StartX      float64 `json:"startX"`
	StartY      float64 `json:"startY"`
	Step        float64 `json:"step"`
	RightMargin float64 `json:"rightMargin"`
	LeftMargin  float64 `json:"leftMargin"`
}

type CollisionConfig struct {
	WallNudge   float64      `json:"wallNudge"`   // Positional nudge applied after a wall reflection
	PaddleReach float64      `json:"paddleReach"` // Ball Y >= paddle Y - reach is inside the paddle zone
	PaddleRight float64      `json:"paddleRight"` // Zone extends to paddle X + right
	PaddleLeft  float64      `json:"paddleLeft"`  // Zone extends to paddle X - left
	Insets      InsetsConfig `json:"insets"`
}

// InsetsConfig shifts the arena bounds relative to the grid size
type InsetsConfig struct {
	Right  float64 `json:"right"`
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
}

type CameraConfig struct {
	Height float64 `json:"height"`
	Step   float64 `json:"step"`
	EyeZ   float64 `json:"eyeZ"`
}

type TelemetryConfig struct {
	WindowTicks int `json:"windowTicks"` // Ticks aggregated per CSV row
}
