package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the invariants the simulation relies on.
func (c PowerPongConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must have a positive size, got %gx%g", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case c.Arena.Border < 0 || c.Arena.Margin < 0:
		return fmt.Errorf("%w: border and margin must not be negative", ErrInvalidConfig)
	case c.Ball.Size <= 0 || c.Ball.Step <= 0:
		return fmt.Errorf("%w: ball size and step must be positive", ErrInvalidConfig)
	case c.Ball.MaxCount < 1:
		return fmt.Errorf("%w: ball.max_count must be at least 1, got %d", ErrInvalidConfig, c.Ball.MaxCount)
	case c.PowerUps.Size <= 0:
		return fmt.Errorf("%w: powerups.size must be positive", ErrInvalidConfig)
	case c.PowerUps.MaxCount < 1:
		return fmt.Errorf("%w: powerups.max_count must be at least 1, got %d", ErrInvalidConfig, c.PowerUps.MaxCount)
	case c.Paddle.Width <= 0 || c.Paddle.Step < 0 || c.Paddle.Shrink < 0:
		return fmt.Errorf("%w: paddle width must be positive and step/shrink not negative", ErrInvalidConfig)
	case c.Paddle.MinLen <= 0 || c.Paddle.MinLen > c.Paddle.StartLen || c.Paddle.StartLen > c.Paddle.MaxLen:
		return fmt.Errorf("%w: paddle lengths must satisfy 0 < min_len <= start_len <= max_len, got %g/%g/%g",
			ErrInvalidConfig, c.Paddle.MinLen, c.Paddle.StartLen, c.Paddle.MaxLen)
	case c.Rewards.Increment < 1:
		return fmt.Errorf("%w: rewards.increment must be at least 1", ErrInvalidConfig)
	case c.Rewards.ExtraBallChance < 1 || c.Rewards.PowerUpChance < 1:
		return fmt.Errorf("%w: reward chances must be at least 1", ErrInvalidConfig)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: gameplay.lives must be at least 1", ErrInvalidConfig)
	}

	// Power-up spawn ranges are [border*4, size-border*2] on both axes.
	if c.Arena.Border*4 > c.Arena.Width-c.Arena.Border*2 || c.Arena.Border*4 > c.Arena.Height-c.Arena.Border*2 {
		return fmt.Errorf("%w: arena too small for its border", ErrInvalidConfig)
	}
	return nil
}
