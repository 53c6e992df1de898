package config

// ControlsConfig is the root config for controls.yaml
type ControlsConfig struct {
	Repeat   RepeatConfig             `yaml:"repeat"`
	Bindings map[string]BindingConfig `yaml:"bindings"`
}

// RepeatConfig controls key auto-repeat, in ticks
type RepeatConfig struct {
	Delay    int `yaml:"delay"`    // Ticks a key must be held before repeating
	Interval int `yaml:"interval"` // Ticks between repeats
}

// BindingConfig maps one action to keys
type BindingConfig struct {
	Keys   []string `yaml:"keys"`             // ebiten key names, case-insensitive
	Repeat bool     `yaml:"repeat,omitempty"` // Fire repeatedly while held
}
