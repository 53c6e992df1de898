package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics  *PhysicsConfig
	Render   *RenderConfig
	Controls *ControlsConfig
}

// Loader loads game configuration files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadPhysics loads physics.json
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := l.readJSON("physics.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadRender loads render.json
func (l *Loader) LoadRender() (*RenderConfig, error) {
	var cfg RenderConfig
	if err := l.readJSON("render.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadControls loads controls.yaml.
// If overridePath is not empty, that file is read from disk and merged on top:
// only the keys present in it replace the defaults.
func (l *Loader) LoadControls(overridePath string) (*ControlsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "controls.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read controls.yaml: %w", err)
	}

	var cfg ControlsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse controls.yaml: %w", err)
	}

	if overridePath != "" {
		data, err := os.ReadFile(overridePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read controls override %s: %w", overridePath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse controls override %s: %w", overridePath, err)
		}
	}

	return &cfg, nil
}

// LoadStage loads a stage JSON file
func (l *Loader) LoadStage(name string) (*StageConfig, error) {
	var cfg StageConfig
	if err := l.readJSON("stages/"+name+".json", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load stage %s: %w", name, err)
	}
	return &cfg, nil
}

// LoadAll loads all base configurations (physics, render, controls)
func (l *Loader) LoadAll(controlsOverride string) (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	render, err := l.LoadRender()
	if err != nil {
		return nil, err
	}

	controls, err := l.LoadControls(controlsOverride)
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:  physics,
		Render:   render,
		Controls: controls,
	}, nil
}

func (l *Loader) readJSON(path string, v any) error {
	data, err := fs.ReadFile(l.fsys, path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
