package powerpong

import (
	"testing"

	"github.com/vovakirdan/powerpong/internal/config"
)

// scriptedSampler replays fixed values. An exhausted queue returns min for
// integers and 0 for floats.
type scriptedSampler struct {
	ints   []int
	floats []float64
}

func (s *scriptedSampler) UniformInt(min, max int) int {
	if len(s.ints) == 0 {
		return min
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedSampler) UnitFloat() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// newTestSim builds a manual-mode simulation with the default configuration.
// The first float is consumed by the opening life.
func newTestSim(t *testing.T, rng *scriptedSampler) *SimulationState {
	t.Helper()
	return newTestSimWith(t, config.DefaultPowerPongConfig(), rng)
}

func newTestSimWith(t *testing.T, cfg config.PowerPongConfig, rng *scriptedSampler) *SimulationState {
	t.Helper()
	s := NewSimulation(cfg, rng)
	s.AutoMode = false
	return s
}

// placeBalls replaces every ball in play.
func placeBalls(s *SimulationState, balls ...Ball) {
	s.Balls.Clear()
	for _, b := range balls {
		s.Balls.Spawn(b)
	}
}

// hitOnce puts a single ball one step from the paddle plane, level with the
// paddle centre, and runs a frame.
func hitOnce(s *SimulationState) []Event {
	placeBalls(s, Ball{X: s.bounds.BallXMax - 1, Y: s.Paddle.Y, Angle: 0})
	return s.Update(0)
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
