package powerpong

import "github.com/vovakirdan/powerpong/internal/config"

// DefaultMaxFrames bounds a headless run when no limit is given. The
// computer paddle can keep a single ball alive indefinitely.
const DefaultMaxFrames = 200_000

// EndReason says why a headless run stopped.
type EndReason string

const (
	EndGameOver   EndReason = "game_over"
	EndFrameLimit EndReason = "frame_limit"
	EndQuit       EndReason = "quit" // Player left an interactive game
)

// RunOptions controls a headless run.
type RunOptions struct {
	Seed      int64
	MaxFrames int // 0 means DefaultMaxFrames

	// OnEvent, if set, is called for every event in frame order.
	OnEvent func(frame uint64, e Event)
}

// RunResult summarizes a finished headless run.
type RunResult struct {
	Seed      int64
	End       EndReason
	Stats     Stats
	Score     int // Score of the life in play when the run stopped
	LivesLeft int
	Final     Snapshot
}

// RunHeadless plays one game with the computer paddle and no rendering.
func RunHeadless(cfg config.PowerPongConfig, opts RunOptions) RunResult {
	limit := opts.MaxFrames
	if limit <= 0 {
		limit = DefaultMaxFrames
	}

	sim := NewSimulation(cfg, NewRandom(opts.Seed))
	sim.AutoMode = true

	end := EndFrameLimit
	for frame := 0; frame < limit; frame++ {
		events := sim.Update(0)
		if opts.OnEvent != nil {
			for _, e := range events {
				opts.OnEvent(sim.Frame, e)
			}
		}
		if sim.GameOver() {
			end = EndGameOver
			break
		}
	}

	return newRunResult(sim, opts.Seed, end)
}

func newRunResult(s *SimulationState, seed int64, end EndReason) RunResult {
	return RunResult{
		Seed:      seed,
		End:       end,
		Stats:     s.Stats,
		Score:     s.Score,
		LivesLeft: s.Lives,
		Final:     s.Snapshot(),
	}
}
