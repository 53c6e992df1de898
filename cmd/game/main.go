package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/brickbreak/internal/application/game"
	"github.com/younwookim/brickbreak/internal/application/replay"
	"github.com/younwookim/brickbreak/internal/application/scene/playing"
	"github.com/younwookim/brickbreak/internal/application/system"
	"github.com/younwookim/brickbreak/internal/domain/entity"
	"github.com/younwookim/brickbreak/internal/infrastructure/clock"
	"github.com/younwookim/brickbreak/internal/infrastructure/config"
	"github.com/younwookim/brickbreak/internal/infrastructure/raster"
	"github.com/younwookim/brickbreak/internal/infrastructure/telemetry"
)

// newLoader returns a loader over configDir, or over the embedded configs when it is empty
func newLoader(configDir string) (*config.Loader, error) {
	if configDir != "" {
		return config.NewLoader(configDir), nil
	}
	fsys, err := fs.Sub(gameFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// newAssets returns the embedded textures. Texture paths in render.json are relative to it.
func newAssets() (fs.FS, error) {
	fsys, err := fs.Sub(gameFS, "assets")
	if err != nil {
		return nil, fmt.Errorf("failed to get assets subfs: %w", err)
	}
	return fsys, nil
}

// loadLevel loads and converts a stage by name
func loadLevel(loader *config.Loader, name string) (*entity.Level, error) {
	stageCfg, err := loader.LoadStage(name)
	if err != nil {
		return nil, err
	}
	level, err := system.LoadLevel(stageCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build stage %s: %w", name, err)
	}
	return level, nil
}

// newInput returns the action source and frame clock for a run.
// A replay drives both from the recording; otherwise the keyboard and wall clock are used.
func newInput(cfg *config.GameConfig, data *replay.ReplayData) (playing.ActionSource, clock.Clock, error) {
	if data == nil {
		input, err := system.NewInputSystem(cfg.Controls)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create input: %w", err)
		}
		return input, clock.NewSystem(), nil
	}

	r := replay.NewReplayer(*data)
	src, err := playing.NewReplaySource(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load replay input: %w", err)
	}
	return src, clock.NewScripted(r.Deltas()), nil
}

func main() {
	// Parse command line flags
	stageFlag := flag.String("stage", "classic", "Stage to play (name of a file in configs/stages)")
	controlsFlag := flag.String("controls", "", "YAML file overriding the default key bindings")
	configDirFlag := flag.String("config-dir", "", "Load configs from this directory instead of the embedded ones")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json, or -record auto)")
	replayFlag := flag.String("replay", "", "Play back a recorded session")
	verifyFlag := flag.Bool("verify", false, "With -replay: simulate without a window and check the recorded end state")
	telemetryFlag := flag.String("telemetry", "", "Write per-window telemetry CSV into this directory")
	flag.Parse()

	recordFilename := *recordFlag
	if recordFilename == "auto" {
		recordFilename = playing.GenerateFilename()
	}

	// Load configurations
	loader, err := newLoader(*configDirFlag)
	if err != nil {
		log.Fatalf("Failed to create config loader: %v", err)
	}
	cfg, err := loader.LoadAll(*controlsFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// A replay always runs on the stage it was recorded on
	stageName := *stageFlag
	var data *replay.ReplayData
	if *replayFlag != "" {
		data, err = replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		stageName = data.Stage
		log.Printf("Replaying %s: %d frames on stage %s", *replayFlag, len(data.Frames), stageName)
	}

	level, err := loadLevel(loader, stageName)
	if err != nil {
		log.Fatalf("Failed to load stage: %v", err)
	}

	if *verifyFlag {
		if data == nil {
			log.Fatalf("-verify requires -replay")
		}
		if err := verifyReplay(cfg, level, data); err != nil {
			log.Printf("Replay verification failed: %v", err)
			os.Exit(1)
		}
		log.Printf("Replay verified: %d frames", len(data.Frames))
		return
	}

	display := cfg.Physics.Display
	assets, err := newAssets()
	if err != nil {
		log.Fatalf("Failed to load assets: %v", err)
	}
	renderer := raster.NewRenderer(assets, display.ScreenWidth, display.ScreenHeight, mgl32.Vec3(cfg.Render.Light))

	out, err := telemetry.NewOutput(*telemetryFlag)
	if err != nil {
		log.Fatalf("Failed to create telemetry output: %v", err)
	}
	if out != nil {
		log.Printf("Telemetry enabled: %s", out.Dir())
	}

	source, clk, err := newInput(cfg, data)
	if err != nil {
		log.Fatalf("Failed to set up input: %v", err)
	}

	scn, err := playing.New(cfg, level, source, playing.Options{
		Renderer:   renderer,
		RecordPath: recordFilename,
		Telemetry:  out,
	})
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	g := game.New(scn, clk, display.ScreenWidth, display.ScreenHeight)

	// Set up ebiten
	scale := max(display.Scale, 1)
	ebiten.SetWindowSize(display.ScreenWidth*scale, display.ScreenHeight*scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	err = ebiten.RunGame(g)
	g.Close()
	if err != nil && !playing.IsTermination(err) {
		log.Printf("Game exited with error: %v", err)
		os.Exit(1)
	}
}
