package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.defender/configs/defender.yaml -> ./configs/defender.yaml -> embedded default
//
// Files are decoded over the built-in defaults, so a partial file only
// overrides the keys it names.
func Load(customPath string) (DefenderConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultDefenderConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(data)
		if err != nil {
			return DefaultDefenderConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("defender.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "defender.yaml")); err == nil {
		if cfg, err := decode(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := decode(defaultDefenderYAML)
	if err != nil {
		return DefaultDefenderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decode parses YAML over the hardcoded defaults and validates the result.
func decode(data []byte) (DefenderConfig, error) {
	cfg := DefaultDefenderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".defender", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *DefenderConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Obstacle.BaseDescent *= 0.75
		cfg.Obstacle.BaseInterval += 250 * time.Millisecond
	case DifficultyHard:
		cfg.Obstacle.BaseDescent *= 1.25
		cfg.Obstacle.MinInterval = cfg.Obstacle.MinInterval * 4 / 5
		cfg.Scoring.Lives = max(cfg.Scoring.Lives-2, 1)
	case DifficultyFixed:
		// No progression: level-one interval and speed for the whole run
		cfg.Obstacle.BaseInterval = max(cfg.Obstacle.BaseInterval-cfg.Obstacle.IntervalStep, cfg.Obstacle.MinInterval)
		cfg.Obstacle.BaseDescent += cfg.Obstacle.DescentPerLevel
		cfg.Obstacle.IntervalStep = 0
		cfg.Obstacle.DescentPerLevel = 0
	}
}
