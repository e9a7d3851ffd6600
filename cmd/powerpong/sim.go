package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/powerpong/internal/games/powerpong"
	"github.com/vovakirdan/powerpong/internal/storage"
)

var (
	flagSimRuns   int
	flagSimFrames int
	flagSimRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless games with the computer paddle",
	Long: `Play games without a terminal UI. The computer moves the paddle and
every game runs until it is over or hits the frame limit.

Run i uses seed+i, so a fixed --seed reproduces the whole batch.

Examples:
  powerpong sim
  powerpong sim --runs 20 --seed 1 --record
  powerpong sim --frames 5000 -v   # log every event`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of games to play")
	simCmd.Flags().IntVar(&flagSimFrames, "frames", powerpong.DefaultMaxFrames, "Frame limit per game")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save every game to the run journal")
}

func runSim(cmd *cobra.Command, args []string) {
	logger := newLogger("powerpong-sim")

	cfg, err := loadConfig()
	if err != nil {
		logger.Error("cannot load config", "error", err)
		os.Exit(1)
	}

	var store *storage.Store
	if flagSimRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Error("cannot open run journal", "error", err)
			os.Exit(1)
		}
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	best := 0
	for i := range flagSimRuns {
		opts := powerpong.RunOptions{
			Seed:      seed + int64(i),
			MaxFrames: flagSimFrames,
		}
		if flagVerbose {
			runLogger := logger.With("run", i+1)
			opts.OnEvent = func(frame uint64, e powerpong.Event) {
				switch e.Kind {
				case powerpong.EventReward:
					runLogger.Debug(e.Kind.String(), "frame", frame, "reward", e.Reward)
				case powerpong.EventPowerUp:
					runLogger.Debug(e.Kind.String(), "frame", frame, "powerup", e.PowerUp)
				default:
					runLogger.Debug(e.Kind.String(), "frame", frame)
				}
			}
		}

		res := powerpong.RunHeadless(cfg, opts)
		best = max(best, res.Stats.BestScore)

		logger.Info("run finished",
			"run", i+1,
			"seed", res.Seed,
			"end", res.End,
			"frames", res.Stats.Frames,
			"hits", res.Stats.Hits,
			"best", res.Stats.BestScore,
			"lives_lost", res.Stats.LivesLost,
		)

		if store == nil {
			continue
		}
		rec, err := storage.NewRunRecord(res, "sim")
		if err != nil {
			logger.Error("cannot encode run", "error", err)
			continue
		}
		id, err := store.SaveRun(rec)
		if err != nil {
			logger.Error("cannot save run", "error", err)
			continue
		}
		logger.Debug("run saved", "id", id)
	}

	fmt.Printf("Best score over %d run(s): %d\n", flagSimRuns, best)
}
