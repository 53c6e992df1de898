// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/brickbreak/internal/application/scene"
	"github.com/younwookim/brickbreak/internal/application/state"
	"github.com/younwookim/brickbreak/internal/application/system"
	"github.com/younwookim/brickbreak/internal/domain/entity"
	"github.com/younwookim/brickbreak/internal/domain/render"
	"github.com/younwookim/brickbreak/internal/infrastructure/config"
	"github.com/younwookim/brickbreak/internal/infrastructure/telemetry"
)

// FrameRenderer is a renderer that presents the queued frame onto the screen
type FrameRenderer interface {
	render.Renderer
	Flush(screen *ebiten.Image)
}

// Options configures the optional parts of the scene
type Options struct {
	// Renderer draws the scene. Nil runs headless.
	Renderer FrameRenderer
	// RecordPath enables input recording, saved on exit
	RecordPath string
	// Telemetry receives one record per window. Nil disables it.
	Telemetry *telemetry.Output
}

// Playing is the main gameplay scene
type Playing struct {
	config *config.GameConfig
	level  *entity.Level
	bounds entity.ArenaBounds
	state  *entity.GameState
	mode   state.Mode
	frame  int

	physicsSystem *system.PhysicsSystem
	controlSystem *system.ControlSystem
	composer      *system.Composer
	input         ActionSource

	renderer   FrameRenderer
	meshes     *system.MeshSet
	background color.RGBA

	collector *telemetry.Collector
	output    *telemetry.Output

	// Input recording
	recorder       *Recorder
	recordFilename string
	saveRequested  bool

	exited bool
}

// New creates a new Playing scene
func New(cfg *config.GameConfig, level *entity.Level, input ActionSource, opts Options) (*Playing, error) {
	physics := system.NewPhysicsSystem(cfg.Physics)
	bg := cfg.Render.Background

	p := &Playing{
		config: cfg,
		level:  level,
		bounds: physics.Bounds(level),
		state: entity.NewGameState(
			physics.Spawn(),
			entity.Paddle{X: cfg.Physics.Paddle.StartX, Y: cfg.Physics.Paddle.StartY},
			entity.Camera{Height: cfg.Physics.Camera.Height},
		),
		mode:           state.ModeServing,
		physicsSystem:  physics,
		controlSystem:  system.NewControlSystem(cfg.Physics),
		composer:       system.NewComposer(cfg.Render, cfg.Physics.Camera),
		input:          input,
		renderer:       opts.Renderer,
		background:     color.RGBA{R: bg[0], G: bg[1], B: bg[2], A: bg[3]},
		collector:      telemetry.NewCollector(cfg.Physics.Telemetry.WindowTicks),
		output:         opts.Telemetry,
		recordFilename: opts.RecordPath,
	}

	if p.renderer != nil {
		meshes, err := system.NewMeshSet(p.renderer, cfg.Render)
		if err != nil {
			return nil, fmt.Errorf("failed to create meshes: %w", err)
		}
		meshes.ApplyOptions(p.state.Options)
		p.meshes = meshes
	}

	// Initialize recorder if recording is enabled
	if opts.RecordPath != "" {
		p.recorder = NewRecorder(level.Name)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	return p, nil
}

// Update polls input and advances the game by dt (implements scene.Scene).
// A finite input source that has run out ends the game.
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if src, ok := p.input.(interface{ Done() bool }); ok && src.Done() {
		return nil, ebiten.Termination
	}

	p.Tick(dt, p.input.Poll())
	return nil, nil // nil = stay on this scene
}

// Tick applies the frame's actions and advances the simulation by dt seconds
func (p *Playing) Tick(dt float64, actions []system.Action) {
	// Record input if recording is enabled
	if p.recorder != nil {
		p.recorder.RecordFrame(dt, actions)
	}

	for _, action := range actions {
		p.handleAction(action)
	}

	if p.mode.Simulating() {
		ball, contact := p.physicsSystem.Advance(p.state.Ball, p.state.Paddle, p.bounds, dt)
		p.state.Ball = ball
		p.recordContact(contact)
		p.collector.RecordTick(dt)
		p.flushTelemetry(false)
	}

	p.mode = p.mode.Update(p.state.Ball.AtRest())
	p.frame++

	// Saved after the tick so the stored end state includes this frame
	if p.saveRequested {
		p.saveRequested = false
		p.saveRecording()
	}
}

func (p *Playing) handleAction(action system.Action) {
	switch action {
	case system.ActionPause:
		p.mode = p.mode.TogglePause(p.state.Ball.AtRest())
		return
	case system.ActionSaveRecording:
		p.saveRequested = true
		return
	}

	if !p.mode.Simulating() {
		return
	}
	if !p.controlSystem.Apply(p.state, p.level.Width, action) {
		return
	}

	if action == system.ActionLaunch {
		p.collector.RecordLaunch()
	}
	if system.OptionsChanged(action) && p.meshes != nil {
		p.meshes.ApplyOptions(p.state.Options)
	}
}

func (p *Playing) recordContact(contact system.Contact) {
	if contact.Wall() {
		p.collector.RecordWallBounce()
	}
	if contact.Has(system.ContactPaddle) {
		p.collector.RecordPaddleBounce()
	}
	if contact.Has(system.ContactMiss) {
		p.collector.RecordMiss()
	}
}

// flushTelemetry writes the current window when it is full, or any pending ticks when force is set
func (p *Playing) flushTelemetry(force bool) {
	if !p.collector.ShouldFlush() && !(force && p.collector.Pending()) {
		return
	}
	if err := p.output.WriteWindow(p.collector.Flush()); err != nil {
		log.Printf("Failed to write telemetry: %v", err)
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	p.recorder.SetFinal(p.state)
	if err := p.recorder.Save(p.recordFilename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", p.recordFilename, p.recorder.FrameCount())
	}
}

// State returns the live game state
func (p *Playing) State() *entity.GameState {
	return p.state
}

// Mode returns the current play mode
func (p *Playing) Mode() state.Mode {
	return p.mode
}

// Frame returns the number of ticks played
func (p *Playing) Frame() int {
	return p.frame
}

// Compose returns the draw commands for the current state
func (p *Playing) Compose() []render.DrawCommand {
	return p.composer.Compose(p.level, p.state)
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.background)

	if p.renderer != nil && p.meshes != nil && !p.meshes.Released() {
		p.meshes.Draw(p.renderer, p.Compose(), p.composer.Projection())
		p.renderer.Flush(screen)
	}

	p.drawHUD(screen)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	opts := p.state.Options
	msg := fmt.Sprintf("%s  camera %.2f\ntexture %s  color %s  lighting %s\nball (%.1f, %.1f)  paddle %.1f",
		p.mode, p.state.Camera.Height,
		onOff(opts.Texture), onOff(opts.Color), onOff(opts.Lighting),
		p.state.Ball.Pos.X, p.state.Ball.Pos.Y, p.state.Paddle.X)
	if p.mode == state.ModePaused {
		msg += "\n\nPAUSED"
	}
	ebitenutil.DebugPrint(screen, msg)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// OnEnter is called when the scene becomes active
func (p *Playing) OnEnter() {
	log.Printf("Stage %s: %dx%d, %d walls, %d bricks",
		p.level.Name, p.level.Width, p.level.Height,
		p.level.Count(entity.CellWall), p.level.Count(entity.CellBrick))
}

// OnExit saves the recording, flushes telemetry and releases the meshes.
// Only the first call has an effect.
func (p *Playing) OnExit() {
	if p.exited {
		return
	}
	p.exited = true

	if p.recorder != nil {
		p.saveRecording()
		p.recorder.Stop()
	}

	p.flushTelemetry(true)
	if err := p.output.Close(); err != nil {
		log.Printf("Failed to close telemetry: %v", err)
	}

	if p.meshes != nil {
		p.meshes.Release()
	}
}

// IsTermination reports whether err is the normal end-of-game signal
func IsTermination(err error) bool {
	return errors.Is(err, ebiten.Termination)
}
