// Package powerpong implements a single-paddle Pong with multiple balls and
// power-ups. The right paddle is played by the player or by the computer;
// every few hits a reward adds a ball, drops a power-up or awards points.
package powerpong

import (
	"github.com/vovakirdan/powerpong/internal/config"
	"github.com/vovakirdan/powerpong/internal/core"
	"github.com/vovakirdan/powerpong/internal/registry"
)

// GameID is the registry identifier.
const GameID = "powerpong"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts SimulationState to the platform's Game interface.
type Game struct {
	sim     *SimulationState
	cfg     *config.PowerPongConfig // Fixed config; nil loads from disk on Reset
	runtime core.RuntimeConfig
	clock   *FrameClock
	paused  bool
	quit    bool
}

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.PowerPongConfig) *Game {
	return &Game{cfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Power Pong"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	var cfg config.PowerPongConfig
	if g.cfg != nil {
		cfg = *g.cfg
	} else {
		loaded, err := config.LoadPowerPong(configPath)
		if err != nil {
			loaded = config.DefaultPowerPongConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&loaded, difficultyPreset)
		}
		cfg = loaded
	}

	g.sim = NewSimulation(cfg, NewRandom(runtime.Seed))
	g.clock = NewFrameClock(nil)
	g.paused = false
	g.quit = false
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *SimulationState {
	return g.sim
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionQuit) {
		g.quit = true
	}
	if g.quit {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.sim.GameOver() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if g.sim.GameOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionToggleAuto) {
		g.sim.AutoMode = !g.sim.AutoMode
	}

	g.clock.Tick()
	g.sim.Update(in.Direction())

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.sim.Score,
		Lives:    g.sim.Lives,
		GameOver: g.sim.GameOver(),
		Paused:   g.paused,
		Quit:     g.quit,
	}
}

// Result summarizes the game so far. A game still in progress reports
// EndQuit.
func (g *Game) Result() RunResult {
	end := EndQuit
	if g.sim.GameOver() {
		end = EndGameOver
	}
	return newRunResult(g.sim, g.runtime.Seed, end)
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
