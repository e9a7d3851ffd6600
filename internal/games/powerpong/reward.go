package powerpong

import (
	"math"

	"github.com/vovakirdan/powerpong/internal/core"
)

// RewardKind is the outcome of the reward cascade.
type RewardKind int

const (
	RewardExtraBall   RewardKind = iota // Extra ball at the arena centre
	RewardPowerUp                       // Power-up somewhere in the arena
	RewardBonusPoints                   // Flat score bonus
	RewardKindCount                     // Sentinel for counting kinds
)

// String returns the name of the reward.
func (k RewardKind) String() string {
	switch k {
	case RewardExtraBall:
		return "extra_ball"
	case RewardPowerUp:
		return "power_up"
	case RewardBonusPoints:
		return "bonus_points"
	default:
		return "unknown"
	}
}

// onBallHitPaddle scores a hit, shrinks the paddle and sends the ball back.
func (s *SimulationState) onBallHitPaddle(i int) {
	ball := s.Balls.At(i)
	p := s.cfg.Paddle

	s.Score++
	s.Stats.Hits++
	s.Paddle.Length = core.ClampF(s.Paddle.Length-p.Shrink, p.MinLen, p.MaxLen)
	ball.Angle = math.Pi - ball.Angle
	ball.X = s.bounds.PaddleHitX

	s.emit(Event{Kind: EventHit})
}

// onBallMissPaddle handles a ball that got past the paddle.
//
// With one ball in play and lives left a new life starts. With one ball and
// no lives left only the counter drops; the ball stays where it is. With
// several balls in play the missed ball is removed and nothing else changes.
func (s *SimulationState) onBallMissPaddle(i int) ballOutcome {
	s.Stats.Misses++
	s.emit(Event{Kind: EventMiss})

	switch n := s.Balls.Len(); {
	case n == 1 && s.Lives > 0:
		s.StartLife()
		s.loseLife()
		return lifeRestarted
	case n == 1:
		s.loseLife()
		return ballKept
	default:
		s.Balls.Destroy(i)
		s.emit(Event{Kind: EventBallLost})
		return ballRemoved
	}
}

// checkReward runs the reward cascade when the score lands exactly on the
// threshold. A score that jumps past it in one frame skips the reward.
func (s *SimulationState) checkReward() {
	if s.Score != s.PastScore+s.RequiredScore {
		return
	}
	s.PastScore = s.Score
	s.triggerReward()
}

// triggerReward rolls for an extra ball, then a power-up, and falls back to
// bonus points. Spawns into a full pool are dropped but still count as the
// reward that was rolled.
func (s *SimulationState) triggerReward() {
	a, r := s.cfg.Arena, s.cfg.Rewards

	var kind RewardKind
	switch {
	case CalculateChance(s.rng, r.ExtraBallChance):
		kind = RewardExtraBall
		s.SpawnBall(a.Width/2, a.Height/2, s.rng.UnitFloat())
	case CalculateChance(s.rng, r.PowerUpChance):
		kind = RewardPowerUp
		x := float64(s.rng.UniformInt(int(a.Border*4), int(a.Width-a.Border*2)))
		y := float64(s.rng.UniformInt(int(a.Border*4), int(a.Height-a.Border*2)))
		s.SpawnPowerUp(x, y)
	default:
		kind = RewardBonusPoints
		s.Score += r.BonusPoints
	}

	s.Stats.Rewards[kind]++
	s.emit(Event{Kind: EventReward, Reward: kind})
}

// activatePowerUp applies a power-up's effect to ball i.
// It returns true when the ball was removed from the pool.
func (s *SimulationState) activatePowerUp(t PowerUpType, i int) bool {
	a, p := s.cfg.Arena, s.cfg.Paddle
	ball := s.Balls.At(i)

	switch t {
	case PowerUpPaddleMax:
		s.Paddle.Length = p.MaxLen
	case PowerUpPaddleMin:
		s.Paddle.Length = p.MinLen
	case PowerUpBallRandomDirection:
		ball.Angle = s.rng.UnitFloat()
	case PowerUpBallRandomLocation:
		ball.X = float64(s.rng.UniformInt(int(a.Border*2), int(a.Width-a.Border*2)))
		ball.Y = float64(s.rng.UniformInt(int(a.Border*2), int(a.Height-a.Border*2)))
	case PowerUpDestroyBall:
		if s.Balls.Len() == 1 {
			// The angle is rolled even though the ball is about to go;
			// it keeps the angle stream in step.
			ball.Angle = s.rng.UnitFloat()
		}
		s.Balls.Destroy(i)
		s.emit(Event{Kind: EventBallLost})
		return true
	}
	return false
}
