package main

import (
	"fmt"

	"github.com/younwookim/brickbreak/internal/application/game"
	"github.com/younwookim/brickbreak/internal/application/replay"
	"github.com/younwookim/brickbreak/internal/application/scene/playing"
	"github.com/younwookim/brickbreak/internal/domain/entity"
	"github.com/younwookim/brickbreak/internal/infrastructure/clock"
	"github.com/younwookim/brickbreak/internal/infrastructure/config"
)

// Simulate runs a recorded session through the game loop without a window
// and returns the scene in its final state.
func Simulate(cfg *config.GameConfig, level *entity.Level, data *replay.ReplayData) (*playing.Playing, error) {
	r := replay.NewReplayer(*data)
	src, err := playing.NewReplaySource(r)
	if err != nil {
		return nil, fmt.Errorf("failed to load replay input: %w", err)
	}

	p, err := playing.New(cfg, level, src, playing.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	display := cfg.Physics.Display
	g := game.New(p, clock.NewScripted(r.Deltas()), display.ScreenWidth, display.ScreenHeight)
	defer g.Close()

	for {
		err := g.Update()
		if playing.IsTermination(err) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("replay stopped at frame %d: %w", p.Frame(), err)
		}
	}

	return p, nil
}

// CompareFinal checks a replayed end state against the one stored in the recording
func CompareFinal(want *replay.FinalState, got *entity.GameState) error {
	if want == nil {
		return fmt.Errorf("replay has no recorded end state")
	}
	if got.Ball.Pos.X != want.BallX || got.Ball.Pos.Y != want.BallY || got.Paddle.X != want.PaddleX {
		return fmt.Errorf("end state mismatch: recorded ball (%v, %v) paddle %v, replayed ball (%v, %v) paddle %v",
			want.BallX, want.BallY, want.PaddleX,
			got.Ball.Pos.X, got.Ball.Pos.Y, got.Paddle.X)
	}
	return nil
}

// verifyReplay simulates a recording and compares its end state
func verifyReplay(cfg *config.GameConfig, level *entity.Level, data *replay.ReplayData) error {
	p, err := Simulate(cfg, level, data)
	if err != nil {
		return err
	}
	return CompareFinal(data.Final, p.State())
}
