package config

// RenderConfig is the root config for render.json
type RenderConfig struct {
	Frustum       FrustumConfig         `json:"frustum"`
	Planes        PlanesConfig          `json:"planes"`
	PaddleHalfGap float32               `json:"paddleHalfGap"` // Paddle halves are drawn at X-gap and X+gap
	SpinStep      float32               `json:"spinStep"`      // Ball spin added per frame (degrees)
	Light         [3]float32            `json:"light"`         // Direction toward the light, view space
	Background    [4]uint8              `json:"background"`
	Meshes        map[string]MeshConfig `json:"meshes"`
}

// FrustumConfig holds the fixed perspective frustum
type FrustumConfig struct {
	Left   float32 `json:"left"`
	Right  float32 `json:"right"`
	Bottom float32 `json:"bottom"`
	Top    float32 `json:"top"`
	Near   float32 `json:"near"`
	Far    float32 `json:"far"`
}

// PlanesConfig holds the vertical offset of each mesh family
type PlanesConfig struct {
	Wall   float32 `json:"wall"`
	Brick  float32 `json:"brick"`
	Ball   float32 `json:"ball"`
	Paddle float32 `json:"paddle"`
}

// MeshConfig describes one game mesh
type MeshConfig struct {
	Kind    string   `json:"kind"` // "quad", "cube" or "sphere"
	Slices  int      `json:"slices,omitempty"`
	Stacks  int      `json:"stacks,omitempty"`
	Color   [4]uint8 `json:"color"`
	Texture string   `json:"texture,omitempty"`
}
