package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// HomeDirName is the per-user directory that holds configs and the run journal.
const HomeDirName = ".powerpong"

// LoadPowerPong loads Power Pong configuration.
// Search order: customPath -> ~/.powerpong/configs/powerpong.yaml -> ./configs/powerpong.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it
// changes. A custom path that cannot be read, parsed or validated is an
// error; the other locations are skipped silently when they fail.
func LoadPowerPong(customPath string) (PowerPongConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PowerPongConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return PowerPongConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath("powerpong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "powerpong.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultPowerPongYAML)
	if err != nil {
		return DefaultPowerPongConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (PowerPongConfig, error) {
	cfg := DefaultPowerPongConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PowerPongConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PowerPongConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, HomeDirName, "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *PowerPongConfig, preset DifficultyPreset) {
	cfg.Gameplay.Lives = LivesForPreset(preset, cfg.Gameplay.Lives)
	if preset == DifficultyHard {
		cfg.Gameplay.AutoMode = false
	}
}
