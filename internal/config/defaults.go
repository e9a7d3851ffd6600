package config

import (
	_ "embed"
)

//go:embed defaults/powerpong.yaml
var defaultPowerPongYAML []byte

// DefaultPowerPongConfig returns the default Power Pong configuration.
// It mirrors defaults/powerpong.yaml and is used when the embedded file
// cannot be parsed.
func DefaultPowerPongConfig() PowerPongConfig {
	return PowerPongConfig{
		Arena: ArenaConfig{
			Width:  640,
			Height: 480,
			Border: 10,
			Margin: 20,
		},
		Ball: BallConfig{
			Size:     8,
			Step:     6,
			MaxCount: 5,
		},
		Paddle: PaddleConfig{
			Width:    10,
			StartLen: 120,
			MinLen:   30,
			MaxLen:   200,
			Step:     8,
			Shrink:   5,
		},
		PowerUps: PowerUpConfig{
			Size:     20,
			MaxCount: 5,
		},
		Rewards: RewardConfig{
			Increment:       5,
			ExtraBallChance: 16,
			PowerUpChance:   10,
			BonusPoints:     2,
		},
		Gameplay: GameplayConfig{
			Lives:    3,
			AutoMode: true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPowerPongYAML
}
