// Package config provides YAML-based game configuration loading and
// difficulty management for the defender game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// DefenderConfig contains all configuration for the game.
type DefenderConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Ship       ShipConfig       `yaml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Obstacle   ObstacleConfig   `yaml:"obstacle"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Input      InputConfig      `yaml:"input"`
}

// FieldConfig defines the play field bounds in world units (y-up).
type FieldConfig struct {
	MinX     float64 `yaml:"min_x"`     // Left boundary for ship and obstacle spawns
	MaxX     float64 `yaml:"max_x"`     // Right boundary for ship and obstacle spawns
	SpawnY   float64 `yaml:"spawn_y"`   // Obstacles enter here; also the top of the collision band
	FloorY   float64 `yaml:"floor_y"`   // Obstacles below this cost a life
	CeilingY float64 `yaml:"ceiling_y"` // Projectiles above this are culled
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Y     float64 `yaml:"y"`     // Fixed vertical position
	Speed float64 `yaml:"speed"` // Horizontal units per second
}

// ProjectileConfig defines auto-fire projectiles.
type ProjectileConfig struct {
	Speed        float64       `yaml:"speed"`         // Upward units per second
	SpawnOffset  float64       `yaml:"spawn_offset"`  // Spawn height above the ship
	FireInterval time.Duration `yaml:"fire_interval"` // Time between shots
}

// ObstacleConfig defines falling obstacles and their difficulty curve.
type ObstacleConfig struct {
	BaseInterval    time.Duration `yaml:"base_interval"`     // Spawn interval before level reduction
	IntervalStep    time.Duration `yaml:"interval_step"`     // Interval reduction per level
	MinInterval     time.Duration `yaml:"min_interval"`      // Spawn interval floor
	BaseDescent     float64       `yaml:"base_descent"`      // Units per second before level scaling
	DescentPerLevel float64       `yaml:"descent_per_level"` // Extra units per second per level
	HitRadius       float64       `yaml:"hit_radius"`        // Projectile/obstacle match distance
}

// ScoringConfig defines score, levels and lives.
type ScoringConfig struct {
	PointsPerHit   int `yaml:"points_per_hit"`
	PointsPerLevel int `yaml:"points_per_level"`
	Lives          int `yaml:"lives"`
}

// InputConfig defines platform input handling.
type InputConfig struct {
	// HoldTimeout is how long a direction key counts as held after its last
	// press event. Terminals report autorepeat, not releases.
	HoldTimeout time.Duration `yaml:"hold_timeout"`
}

// ErrInvalidConfig is returned by Validate for unusable values.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks that the configuration can drive a simulation.
func (c DefenderConfig) Validate() error {
	switch {
	case c.Field.MaxX <= c.Field.MinX:
		return fmt.Errorf("%w: field.max_x must exceed field.min_x", ErrInvalidConfig)
	case c.Field.SpawnY <= c.Field.FloorY:
		return fmt.Errorf("%w: field.spawn_y must exceed field.floor_y", ErrInvalidConfig)
	case c.Field.CeilingY <= c.Ship.Y:
		return fmt.Errorf("%w: field.ceiling_y must be above ship.y", ErrInvalidConfig)
	case c.Ship.Speed <= 0:
		return fmt.Errorf("%w: ship.speed must be positive", ErrInvalidConfig)
	case c.Projectile.Speed <= 0:
		return fmt.Errorf("%w: projectile.speed must be positive", ErrInvalidConfig)
	case c.Projectile.FireInterval <= 0:
		return fmt.Errorf("%w: projectile.fire_interval must be positive", ErrInvalidConfig)
	case c.Obstacle.MinInterval <= 0 || c.Obstacle.BaseInterval < c.Obstacle.MinInterval:
		return fmt.Errorf("%w: obstacle intervals must satisfy 0 < min_interval <= base_interval", ErrInvalidConfig)
	case c.Obstacle.IntervalStep < 0 || c.Obstacle.DescentPerLevel < 0:
		return fmt.Errorf("%w: obstacle level scaling must not be negative", ErrInvalidConfig)
	case c.Obstacle.BaseDescent <= 0:
		return fmt.Errorf("%w: obstacle.base_descent must be positive", ErrInvalidConfig)
	case c.Obstacle.HitRadius <= 0:
		return fmt.Errorf("%w: obstacle.hit_radius must be positive", ErrInvalidConfig)
	case c.Scoring.PointsPerHit < 0:
		return fmt.Errorf("%w: scoring.points_per_hit must not be negative", ErrInvalidConfig)
	case c.Scoring.PointsPerLevel <= 0:
		return fmt.Errorf("%w: scoring.points_per_level must be positive", ErrInvalidConfig)
	case c.Scoring.Lives <= 0:
		return fmt.Errorf("%w: scoring.lives must be positive", ErrInvalidConfig)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset.
// An empty string selects normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}
