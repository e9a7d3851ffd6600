package powerpong

import (
	"github.com/vovakirdan/powerpong/internal/config"
	"github.com/vovakirdan/powerpong/internal/core"
)

// EventKind identifies something that happened during a frame.
type EventKind int

const (
	EventHit      EventKind = iota // Ball returned by the paddle
	EventMiss                      // Ball got past the paddle
	EventBallLost                  // Ball removed (miss with others in play, or DestroyBall)
	EventLifeLost                  // Lives decremented
	EventReward                    // Reward cascade ran
	EventPowerUp                   // Power-up collected
)

// String returns a short name for logs.
func (k EventKind) String() string {
	switch k {
	case EventHit:
		return "hit"
	case EventMiss:
		return "miss"
	case EventBallLost:
		return "ball_lost"
	case EventLifeLost:
		return "life_lost"
	case EventReward:
		return "reward"
	case EventPowerUp:
		return "powerup"
	default:
		return "unknown"
	}
}

// Event is one entry of a frame's event list.
type Event struct {
	Kind    EventKind
	Reward  RewardKind  // Set for EventReward
	PowerUp PowerUpType // Set for EventPowerUp
}

// Stats accumulates counters over a whole game.
type Stats struct {
	Frames    uint64
	Hits      int
	Misses    int
	LivesLost int
	BestScore int // Highest score reached in any life
	Rewards   [RewardKindCount]int
	PowerUps  [PowerUpTypeCount]int
}

// ballOutcome tells the frame loop how to move its cursor.
type ballOutcome int

const (
	ballKept      ballOutcome = iota // Advance to the next slot
	ballRemoved                      // Slot now holds another ball; do not advance
	lifeRestarted                    // Pool was rebuilt; stop the sweep
)

// SimulationState is the whole mutable state of one game.
// It is owned by a single goroutine and is not safe for concurrent use.
type SimulationState struct {
	cfg    config.PowerPongConfig
	bounds Bounds
	rng    Sampler

	Balls    *core.Pool[Ball]
	PowerUps *core.Pool[PowerUp]
	Paddle   Paddle

	Score         int // Hits since the current life started, plus bonuses
	Lives         int
	PastScore     int // Score at the last reward
	RequiredScore int // Hits needed past PastScore for the next reward
	AutoMode      bool

	Frame uint64
	Stats Stats

	events []Event
}

// NewSimulation creates a game and starts its first life.
func NewSimulation(cfg config.PowerPongConfig, rng Sampler) *SimulationState {
	s := &SimulationState{
		cfg:           cfg,
		bounds:        NewBounds(cfg),
		rng:           rng,
		Balls:         core.NewPool[Ball](cfg.Ball.MaxCount),
		PowerUps:      core.NewPool[PowerUp](cfg.PowerUps.MaxCount),
		Lives:         cfg.Gameplay.Lives,
		RequiredScore: cfg.Rewards.Increment,
		AutoMode:      cfg.Gameplay.AutoMode,
		events:        make([]Event, 0, 16),
	}
	s.StartLife()
	return s
}

// Config returns the configuration the simulation was built with.
func (s *SimulationState) Config() config.PowerPongConfig {
	return s.cfg
}

// Bounds returns the derived movement limits.
func (s *SimulationState) Bounds() Bounds {
	return s.bounds
}

// GameOver reports whether every life has been used.
func (s *SimulationState) GameOver() bool {
	return s.Lives <= 0
}

// NextRewardAt returns the score that triggers the next reward.
func (s *SimulationState) NextRewardAt() int {
	return s.PastScore + s.RequiredScore
}

// StartLife resets the arena for a new life: one ball at the centre, a fresh
// paddle, zero score and no power-ups. Lives are not touched.
func (s *SimulationState) StartLife() {
	a := s.cfg.Arena

	s.Balls.Clear()
	s.Balls.Spawn(Ball{X: a.Width / 2, Y: a.Height / 2, Angle: s.rng.UnitFloat()})

	s.Paddle.X = a.Width - s.cfg.Paddle.Width/2
	s.Paddle.Y = a.Height / 2
	s.Paddle.Length = s.cfg.Paddle.StartLen

	s.Score = 0
	s.PastScore = 0
	// PastScore is already zero here, so this never changes RequiredScore.
	s.RequiredScore += s.PastScore

	s.PowerUps.Clear()
}

// SpawnBall adds a ball. It returns false when the ball pool is full.
func (s *SimulationState) SpawnBall(x, y, angle float64) bool {
	return s.Balls.Spawn(Ball{X: x, Y: y, Angle: angle})
}

// SpawnPowerUp adds a power-up of a random type. It returns false, without
// rolling a type, when the power-up pool is full.
func (s *SimulationState) SpawnPowerUp(x, y float64) bool {
	if s.PowerUps.Full() {
		return false
	}
	t := PowerUpType(s.rng.UniformInt(0, int(PowerUpTypeCount)-1))
	return s.PowerUps.Spawn(PowerUp{X: x, Y: y, Type: t})
}

// Update advances the game by one frame.
//
// dir is the player's paddle intent (-1, 0, +1); it is ignored in auto mode.
// The returned events alias internal storage and are valid until the next
// call.
func (s *SimulationState) Update(dir int) []Event {
	s.events = s.events[:0]
	s.Frame++
	s.Stats.Frames++

	if s.AutoMode {
		s.autoAim()
	} else {
		s.Paddle.Dir = dir
	}
	s.movePaddle()

sweep:
	for i := 0; i < s.Balls.Len(); {
		switch s.updateBall(i) {
		case ballKept:
			i++
		case ballRemoved:
			// The last ball was swapped into slot i; run it next.
		case lifeRestarted:
			break sweep
		}
	}

	s.checkReward()

	// Covers the last ball going away through a power-up instead of a miss.
	if s.Balls.Len() == 0 {
		s.StartLife()
		s.loseLife()
	}

	if s.Score > s.Stats.BestScore {
		s.Stats.BestScore = s.Score
	}
	return s.events
}

// autoAim steers toward the first ball only, whatever else is in play.
// Inside the paddle's span the previous direction is kept.
func (s *SimulationState) autoAim() {
	if s.Balls.Len() == 0 {
		return
	}
	target := s.Balls.At(0).Y
	if s.Paddle.Top() > target {
		s.Paddle.Dir = -1
	} else if s.Paddle.Bottom() < target {
		s.Paddle.Dir = 1
	}
}

func (s *SimulationState) movePaddle() {
	s.Paddle.Y += s.cfg.Paddle.Step * float64(s.Paddle.Dir)

	minY, maxY := s.bounds.PaddleLimits(s.Paddle.Length)
	s.Paddle.Y = core.ClampF(s.Paddle.Y, minY, maxY)
}

// updateBall runs the fixed per-ball sequence: move, top/bottom walls, left
// wall, paddle plane, power-ups. Later steps see the changes of earlier ones.
func (s *SimulationState) updateBall(i int) ballOutcome {
	ball := s.Balls.At(i)

	moveBall(ball, s.cfg.Ball.Step)
	bounceVertical(ball, s.bounds)
	bounceLeftWall(ball, s.bounds)

	if reachedPaddlePlane(*ball, s.bounds) {
		if PaddleCovers(*ball, s.Paddle, s.cfg.Ball.Size) {
			s.onBallHitPaddle(i)
		} else if outcome := s.onBallMissPaddle(i); outcome != ballKept {
			return outcome
		}
	}

	return s.collectPowerUps(i)
}

// collectPowerUps applies and removes every power-up touching ball i.
// The cursor advances after a removal, so the power-up swapped into the
// freed slot is not tested against this ball until the next frame.
func (s *SimulationState) collectPowerUps(i int) ballOutcome {
	size, puSize := s.cfg.Ball.Size, s.cfg.PowerUps.Size

	for p := 0; p < s.PowerUps.Len(); p++ {
		pu := *s.PowerUps.At(p)
		if !Overlaps(*s.Balls.At(i), pu, size, puSize) {
			continue
		}

		removed := s.activatePowerUp(pu.Type, i)
		s.PowerUps.Destroy(p)
		s.Stats.PowerUps[pu.Type]++
		s.emit(Event{Kind: EventPowerUp, PowerUp: pu.Type})

		if removed {
			return ballRemoved
		}
	}
	return ballKept
}

func (s *SimulationState) loseLife() {
	s.Lives--
	s.Stats.LivesLost++
	s.emit(Event{Kind: EventLifeLost})
}

func (s *SimulationState) emit(e Event) {
	s.events = append(s.events, e)
}
