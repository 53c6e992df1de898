package playing

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gocarina/gocsv"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/younwookim/brickbreak/internal/application/replay"
	"github.com/younwookim/brickbreak/internal/application/scene"
	"github.com/younwookim/brickbreak/internal/application/state"
	"github.com/younwookim/brickbreak/internal/application/system"
	"github.com/younwookim/brickbreak/internal/domain/entity"
	"github.com/younwookim/brickbreak/internal/domain/render"
	"github.com/younwookim/brickbreak/internal/infrastructure/config"
	"github.com/younwookim/brickbreak/internal/infrastructure/telemetry"
)

const epsilon = 1e-9

// createTestConfig creates a minimal config for testing
func createTestConfig() *config.GameConfig {
	return &config.GameConfig{
		Physics: &config.PhysicsConfig{
			Display: config.DisplayConfig{
				ScreenWidth:  800,
				ScreenHeight: 600,
				Framerate:    60,
			},
			Ball: config.BallConfig{
				SpawnX:   0,
				SpawnY:   6,
				LaunchVX: -15,
				LaunchVY: -15,
			},
			Paddle: config.PaddleConfig{
				StartX:      0,
				StartY:      13,
				Step:        0.7,
				RightMargin: 6,
				LeftMargin:  4,
			},
			Collision: config.CollisionConfig{
				WallNudge:   0.2,
				PaddleReach: 6.5,
				PaddleRight: 3.5,
				PaddleLeft:  4.5,
				Insets: config.InsetsConfig{
					Right:  1.5,
					Left:   1.0,
					Bottom: 9.0,
					Top:    7.0,
				},
			},
			Camera: config.CameraConfig{
				Height: 30,
				Step:   0.05,
				EyeZ:   25,
			},
			Telemetry: config.TelemetryConfig{WindowTicks: 2},
		},
		Render: &config.RenderConfig{
			Frustum: config.FrustumConfig{
				Left: -0.05, Right: 0.05, Bottom: -0.05, Top: 0.05, Near: 0.1, Far: 1000,
			},
			Planes: config.PlanesConfig{
				Wall:   0,
				Brick:  -1,
				Ball:   -8,
				Paddle: 1,
			},
			PaddleHalfGap: 1,
			SpinStep:      0.1,
			Background:    [4]uint8{0, 0, 0, 255},
			Meshes: map[string]config.MeshConfig{
				"wall":   {Kind: "cube", Color: [4]uint8{255, 255, 255, 255}, Texture: "wall.png"},
				"brick":  {Kind: "cube", Color: [4]uint8{255, 255, 255, 255}, Texture: "brick.png"},
				"ball":   {Kind: "sphere", Slices: 12, Stacks: 12, Color: [4]uint8{0, 255, 0, 255}},
				"paddle": {Kind: "cube", Color: [4]uint8{255, 0, 0, 255}},
			},
		},
	}
}

// createTestLevel creates a 15x19 level with a wall ring and one brick row
func createTestLevel(t *testing.T) *entity.Level {
	t.Helper()
	const w, h = 15, 19
	cells := make([]entity.CellKind, w*h)
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			switch {
			case row == 0 || col == 0 || col == w-1:
				cells[row*w+col] = entity.CellWall
			case row == 2:
				cells[row*w+col] = entity.CellBrick
			}
		}
	}
	level, err := entity.NewLevel("test", w, h, cells)
	require.NoError(t, err)
	return level
}

func createTestPlaying(t *testing.T, opts Options) *Playing {
	t.Helper()
	p, err := New(createTestConfig(), createTestLevel(t), &scriptedSource{}, opts)
	require.NoError(t, err)
	return p
}

// scriptedSource returns one scripted frame of actions per Poll
type scriptedSource struct {
	frames [][]system.Action
	next   int
}

func (s *scriptedSource) Poll() []system.Action {
	if s.next >= len(s.frames) {
		return nil
	}
	actions := s.frames[s.next]
	s.next++
	return actions
}

type fakeMesh struct {
	options  render.SurfaceOption
	releases int
}

func (m *fakeMesh) SetColor(color.RGBA) {}
func (m *fakeMesh) SetTexture(render.Texture) {}
func (m *fakeMesh) Enable(opt render.SurfaceOption) { m.options |= opt }
func (m *fakeMesh) Disable(opt render.SurfaceOption) { m.options &^= opt }
func (m *fakeMesh) Release() { m.releases++ }

type fakeTexture struct{}

func (fakeTexture) Size() (int, int) { return 32, 32 }

type fakeRenderer struct {
	meshes  []*fakeMesh
	draws   int
	flushes int
}

func (r *fakeRenderer) CreateMesh(render.MeshSpec) render.Mesh {
	m := &fakeMesh{}
	r.meshes = append(r.meshes, m)
	return m
}

func (r *fakeRenderer) LoadTexture(string) (render.Texture, error) {
	return fakeTexture{}, nil
}

func (r *fakeRenderer) Draw(render.Mesh, mgl32.Mat4, mgl32.Mat4) {
	r.draws++
}

func (r *fakeRenderer) Flush(*ebiten.Image) {
	r.flushes++
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := createTestPlaying(t, Options{})

	require.NotNil(t, p)
	assert.Equal(t, state.ModeServing, p.Mode())
	assert.Equal(t, r2.Vec{X: 0, Y: 6}, p.State().Ball.Pos)
	assert.True(t, p.State().Ball.AtRest())
	assert.Equal(t, entity.Paddle{X: 0, Y: 13}, p.State().Paddle)
	assert.Equal(t, 30.0, p.State().Camera.Height)
	assert.Equal(t, entity.ArenaBounds{Top: -26, Bottom: 10, Left: -16, Right: 13.5}, p.bounds)
	assert.Nil(t, p.recorder)
	assert.Nil(t, p.meshes)
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p := createTestPlaying(t, Options{})

	next, err := p.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
	assert.Equal(t, 1, p.Frame())
}

func TestPlaying_Update_EndsWhenReplayRunsOut(t *testing.T) {
	data := replay.CreateTestReplayData(2, 0.1)
	src, err := NewReplaySource(replay.NewReplayer(data))
	require.NoError(t, err)

	p, err := New(createTestConfig(), createTestLevel(t), src, Options{})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err := p.Update(0.1)
		require.NoError(t, err)
	}

	_, err = p.Update(0.1)
	assert.ErrorIs(t, err, ebiten.Termination)
	assert.True(t, IsTermination(err))
	assert.Equal(t, 2, p.Frame())
}

func TestPlaying_Tick_Launch(t *testing.T) {
	p := createTestPlaying(t, Options{})

	p.Tick(0.1, []system.Action{system.ActionLaunch})

	ball := p.State().Ball
	assert.InDelta(t, -1.5, ball.Pos.X, epsilon)
	assert.InDelta(t, 4.5, ball.Pos.Y, epsilon)
	assert.Equal(t, r2.Vec{X: -15, Y: -15}, ball.Vel)
	assert.Equal(t, state.ModePlaying, p.Mode())
}

func TestPlaying_Tick_AtRestStaysServing(t *testing.T) {
	p := createTestPlaying(t, Options{})

	for i := 0; i < 10; i++ {
		p.Tick(1.0/60.0, nil)
	}

	assert.Equal(t, r2.Vec{X: 0, Y: 6}, p.State().Ball.Pos)
	assert.Equal(t, state.ModeServing, p.Mode())
}

func TestPlaying_Tick_MovesPaddle(t *testing.T) {
	p := createTestPlaying(t, Options{})

	p.Tick(0, []system.Action{system.ActionMoveRight, system.ActionMoveRight})
	assert.InDelta(t, 1.4, p.State().Paddle.X, epsilon)

	p.Tick(0, []system.Action{system.ActionMoveLeft})
	assert.InDelta(t, 0.7, p.State().Paddle.X, epsilon)
}

func TestPlaying_Tick_Pause(t *testing.T) {
	p := createTestPlaying(t, Options{})
	p.Tick(0.1, []system.Action{system.ActionLaunch})
	before := p.State().Ball

	p.Tick(0.1, []system.Action{system.ActionPause})
	assert.Equal(t, state.ModePaused, p.Mode())
	assert.Equal(t, before, p.State().Ball, "ball frozen while paused")

	t.Run("actions are ignored while paused", func(t *testing.T) {
		p.Tick(0.1, []system.Action{system.ActionMoveRight, system.ActionCameraUp, system.ActionToggleColor})

		assert.Equal(t, 0.0, p.State().Paddle.X)
		assert.Equal(t, 30.0, p.State().Camera.Height)
		assert.True(t, p.State().Options.Color)
		assert.Equal(t, before, p.State().Ball)
	})

	t.Run("resume", func(t *testing.T) {
		p.Tick(0.1, []system.Action{system.ActionPause})

		assert.Equal(t, state.ModePlaying, p.Mode())
		assert.InDelta(t, before.Pos.X-1.5, p.State().Ball.Pos.X, epsilon)
	})
}

func TestPlaying_Tick_Miss(t *testing.T) {
	p := createTestPlaying(t, Options{})
	p.State().Ball = entity.Ball{Pos: r2.Vec{X: -5, Y: 9.9}, Vel: r2.Vec{X: 0, Y: 15}}
	p.State().Paddle.X = 10

	p.Tick(0.1, nil)

	assert.Equal(t, r2.Vec{X: 0, Y: 6}, p.State().Ball.Pos)
	assert.True(t, p.State().Ball.AtRest())
	assert.Equal(t, state.ModeServing, p.Mode())
}

func TestPlaying_Tick_Camera(t *testing.T) {
	p := createTestPlaying(t, Options{})

	p.Tick(0, []system.Action{system.ActionCameraUp, system.ActionCameraUp})
	assert.InDelta(t, 30.1, p.State().Camera.Height, epsilon)

	p.Tick(0, []system.Action{system.ActionCameraDown})
	assert.InDelta(t, 30.05, p.State().Camera.Height, epsilon)
}

func TestPlaying_Tick_ToggleOptionsUpdatesMeshes(t *testing.T) {
	r := &fakeRenderer{}
	p := createTestPlaying(t, Options{Renderer: r})
	require.Len(t, r.meshes, len(render.Roles))

	for _, m := range r.meshes {
		assert.True(t, m.options&render.OptionTexture != 0)
		assert.True(t, m.options&render.OptionCullBackfaces != 0)
	}

	p.Tick(0, []system.Action{system.ActionToggleTexture, system.ActionToggleLighting})

	assert.False(t, p.State().Options.Texture)
	assert.False(t, p.State().Options.Lighting)
	for _, m := range r.meshes {
		assert.Zero(t, m.options&render.OptionTexture)
		assert.Zero(t, m.options&render.OptionLighting)
		assert.NotZero(t, m.options&render.OptionColor)
	}
}

func TestPlaying_Compose(t *testing.T) {
	p := createTestPlaying(t, Options{})
	level := createTestLevel(t)

	cmds := p.Compose()

	cells := level.Count(entity.CellWall) + level.Count(entity.CellBrick)
	assert.Len(t, cmds, cells+3, "every cell, the ball and two paddle halves")
}

func TestPlaying_Telemetry(t *testing.T) {
	dir := t.TempDir()
	out, err := telemetry.NewOutput(dir)
	require.NoError(t, err)

	p := createTestPlaying(t, Options{Telemetry: out})

	p.Tick(0.1, []system.Action{system.ActionLaunch})
	for i := 0; i < 4; i++ {
		p.Tick(0.1, nil)
	}
	p.OnExit()

	content, err := os.ReadFile(filepath.Join(dir, "telemetry.csv"))
	require.NoError(t, err)

	var rows []telemetry.WindowStats
	require.NoError(t, gocsv.UnmarshalBytes(content, &rows))
	require.Len(t, rows, 3, "two full windows and the pending tick")

	assert.Equal(t, 1, rows[0].Launches)
	assert.Equal(t, 2, rows[0].Ticks)
	assert.Equal(t, 2, rows[1].Ticks)
	assert.Equal(t, 1, rows[2].Ticks)
	assert.Equal(t, 5, rows[2].WindowEndTick)
	assert.InDelta(t, 0.5, rows[2].SimTimeSec, epsilon)
}

func TestPlaying_WithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	p := createTestPlaying(t, Options{RecordPath: path})

	require.NotNil(t, p.recorder)

	_, err := p.Update(1.0 / 60.0)
	require.NoError(t, err)

	assert.Equal(t, 1, p.recorder.FrameCount())
	assert.True(t, p.recorder.IsRecording())
}

func TestPlaying_OnExitStopsRecording(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	p := createTestPlaying(t, Options{RecordPath: path})

	p.Tick(0, nil)
	p.Tick(0.1, []system.Action{system.ActionLaunch})
	p.OnExit()

	assert.False(t, p.recorder.IsRecording())

	p.Tick(0.1, []system.Action{system.ActionMoveLeft})

	data := p.recorder.GetData()
	require.Len(t, data.Frames, 2, "ticks after exit are not recorded")
	assert.Equal(t, []string{"launch"}, data.Frames[1].A)

	saved, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, saved.Frames, 2)
}

func TestPlaying_OnExitWithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	p := createTestPlaying(t, Options{RecordPath: path})

	p.Tick(0, nil)
	p.Tick(0.1, []system.Action{system.ActionLaunch, system.ActionMoveRight})
	p.Tick(0.1, nil)
	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)

	assert.Equal(t, "test", data.Stage)
	require.Len(t, data.Frames, 3)
	assert.Equal(t, []string{"launch", "move_right"}, data.Frames[1].A)
	assert.Equal(t, 0.1, data.Frames[2].DT)

	require.NotNil(t, data.Final)
	assert.Equal(t, p.State().Ball.Pos.X, data.Final.BallX)
	assert.Equal(t, p.State().Ball.Pos.Y, data.Final.BallY)
	assert.Equal(t, p.State().Paddle.X, data.Final.PaddleX)
}

func TestPlaying_ReplayReproducesRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	script := [][]system.Action{
		nil,
		{system.ActionLaunch},
		{system.ActionMoveLeft},
		{system.ActionMoveLeft},
		nil,
		{system.ActionPause},
		nil,
		{system.ActionPause},
		{system.ActionMoveRight},
	}
	deltas := []float64{0, 0.016, 0.017, 0.0165, 0.2, 0.016, 0.5, 0.016, 0.033}

	recorded := createTestPlaying(t, Options{RecordPath: path})
	for i, actions := range script {
		recorded.Tick(deltas[i], actions)
	}
	recorded.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	r := replay.NewReplayer(*data)
	src, err := NewReplaySource(r)
	require.NoError(t, err)

	replayed, err := New(createTestConfig(), createTestLevel(t), src, Options{})
	require.NoError(t, err)
	for _, dt := range r.Deltas() {
		_, err := replayed.Update(dt)
		require.NoError(t, err)
	}

	assert.Equal(t, *recorded.State(), *replayed.State())
	assert.Equal(t, recorded.Mode(), replayed.Mode())
	assert.Equal(t, data.Final.BallX, replayed.State().Ball.Pos.X)
}

func TestPlaying_OnEnter(t *testing.T) {
	p := createTestPlaying(t, Options{})

	assert.NotPanics(t, func() {
		p.OnEnter()
	})
}

func TestPlaying_OnExit_ReleasesMeshesOnce(t *testing.T) {
	r := &fakeRenderer{}
	p := createTestPlaying(t, Options{Renderer: r})

	p.OnExit()
	p.OnExit()

	for _, m := range r.meshes {
		assert.Equal(t, 1, m.releases)
	}
	assert.True(t, p.meshes.Released())
}

func TestNewPlaying_BadMeshConfig(t *testing.T) {
	cfg := createTestConfig()
	delete(cfg.Render.Meshes, "ball")

	_, err := New(cfg, createTestLevel(t), &scriptedSource{}, Options{Renderer: &fakeRenderer{}})

	assert.Error(t, err)
}

func TestPlaying_SaveRecordingMidGame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.json")
	p := createTestPlaying(t, Options{RecordPath: path})

	p.Tick(0.1, []system.Action{system.ActionLaunch})
	p.Tick(0.1, []system.Action{system.ActionSaveRecording})

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)

	require.Len(t, data.Frames, 2)
	require.NotNil(t, data.Final)
	assert.Equal(t, p.State().Ball.Pos.X, data.Final.BallX, "end state includes the saving frame")
	assert.InDelta(t, -3.0, data.Final.BallX, epsilon)
	assert.Equal(t, state.ModePlaying, p.Mode(), "saving does not pause")
}

func TestPlaying_SaveRecordingWithoutRecorder(t *testing.T) {
	p := createTestPlaying(t, Options{})

	assert.NotPanics(t, func() {
		p.Tick(0.1, []system.Action{system.ActionSaveRecording})
	})
	assert.Equal(t, 1, p.Frame())
}

func TestRecorder_StopAndIsRecording(t *testing.T) {
	r := NewRecorder("test")

	assert.True(t, r.IsRecording())

	r.Stop()

	assert.False(t, r.IsRecording())
}

func TestRecorder_DoesNotRecordWhenStopped(t *testing.T) {
	r := NewRecorder("test")
	r.RecordFrame(0, nil)
	r.Stop()

	r.RecordFrame(0.1, []system.Action{system.ActionLaunch})

	assert.Equal(t, 1, r.FrameCount())
	data := r.GetData()
	assert.Equal(t, replay.Version, data.Version)
	assert.Equal(t, "test", data.Stage)
	assert.Equal(t, 0, data.Frames[0].F)
}
