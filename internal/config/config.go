// Package config provides YAML-based game configuration loading and
// difficulty presets for Power Pong.
package config

// PowerPongConfig contains all configuration for the Power Pong game.
// Distances are in arena units; the renderer scales them to terminal cells.
type PowerPongConfig struct {
	Arena    ArenaConfig    `yaml:"arena"`
	Ball     BallConfig     `yaml:"ball"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	PowerUps PowerUpConfig  `yaml:"powerups"`
	Rewards  RewardConfig   `yaml:"rewards"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// ArenaConfig defines the play area.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Border float64 `yaml:"border"` // Wall thickness on every side
	Margin float64 `yaml:"margin"` // Extra space above the top wall for the HUD
}

// BallConfig defines ball size, speed and pool capacity.
type BallConfig struct {
	Size     float64 `yaml:"size"`
	Step     float64 `yaml:"step"` // Distance travelled per frame
	MaxCount int     `yaml:"max_count"`
}

// PaddleConfig defines the paddle geometry and movement.
type PaddleConfig struct {
	Width    float64 `yaml:"width"`
	StartLen float64 `yaml:"start_len"`
	MinLen   float64 `yaml:"min_len"`
	MaxLen   float64 `yaml:"max_len"`
	Step     float64 `yaml:"step"`   // Distance moved per frame
	Shrink   float64 `yaml:"shrink"` // Length lost on every hit
}

// PowerUpConfig defines power-up size and pool capacity.
type PowerUpConfig struct {
	Size     float64 `yaml:"size"`
	MaxCount int     `yaml:"max_count"`
}

// RewardConfig defines the reward cascade.
type RewardConfig struct {
	Increment       int `yaml:"increment"`         // Hits between rewards
	ExtraBallChance int `yaml:"extra_ball_chance"` // Upper bound of the extra ball roll
	PowerUpChance   int `yaml:"power_up_chance"`   // Upper bound of the power-up roll
	BonusPoints     int `yaml:"bonus_points"`      // Awarded when both rolls fail
}

// GameplayConfig defines session rules.
type GameplayConfig struct {
	Lives    int  `yaml:"lives"`
	AutoMode bool `yaml:"auto_mode"` // Computer moves the paddle
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Unknown strings map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// LivesForPreset returns the starting lives for a difficulty preset.
// The empty preset keeps whatever the config says.
func LivesForPreset(preset DifficultyPreset, configured int) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 1
	default:
		return configured
	}
}
