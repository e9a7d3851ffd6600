package powerpong

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/powerpong/internal/config"
)

func TestRunHeadlessStopsAtFrameLimit(t *testing.T) {
	cfg := config.DefaultPowerPongConfig()
	cfg.Gameplay.AutoMode = false // overridden by the runner

	var frames []uint64
	res := RunHeadless(cfg, RunOptions{
		Seed:      3,
		MaxFrames: 500,
		OnEvent: func(frame uint64, _ Event) {
			frames = append(frames, frame)
		},
	})

	assert.LessOrEqual(t, res.Stats.Frames, uint64(500))
	assert.Equal(t, int64(3), res.Seed)
	assert.True(t, res.Final.AutoMode)
	assert.Equal(t, res.End == EndGameOver, res.LivesLeft <= 0)
	if res.End == EndFrameLimit {
		assert.Equal(t, uint64(500), res.Stats.Frames)
	}
	for i := 1; i < len(frames); i++ {
		assert.LessOrEqual(t, frames[i-1], frames[i], "events arrive in frame order")
	}
}

func TestRunHeadlessEndsOnGameOver(t *testing.T) {
	cfg := config.DefaultPowerPongConfig()
	cfg.Gameplay.Lives = 1
	cfg.Paddle.Step = 0 // paddle cannot chase the ball
	cfg.Paddle.MinLen = 1
	cfg.Paddle.StartLen = 1
	cfg.Paddle.MaxLen = 1

	lost := 0
	res := RunHeadless(cfg, RunOptions{
		Seed: 9,
		OnEvent: func(_ uint64, e Event) {
			if e.Kind == EventLifeLost {
				lost++
			}
		},
	})

	assert.Equal(t, EndGameOver, res.End)
	assert.Equal(t, 0, res.LivesLeft)
	assert.Equal(t, 1, lost)
	assert.Equal(t, 1, res.Stats.LivesLost)
}
