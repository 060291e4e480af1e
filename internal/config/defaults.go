package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/defender.yaml
var defaultDefenderYAML []byte

// DefaultDefenderConfig returns the built-in configuration.
// It matches defaults/defender.yaml and is the fallback when the embedded
// YAML cannot be decoded.
func DefaultDefenderConfig() DefenderConfig {
	return DefenderConfig{
		Field: FieldConfig{
			MinX:     -5,
			MaxX:     5,
			SpawnY:   10,
			FloorY:   -5,
			CeilingY: 15,
		},
		Ship: ShipConfig{
			Y:     -4,
			Speed: 10,
		},
		Projectile: ProjectileConfig{
			Speed:        8,
			SpawnOffset:  0.5,
			FireInterval: 500 * time.Millisecond,
		},
		Obstacle: ObstacleConfig{
			BaseInterval:    1000 * time.Millisecond,
			IntervalStep:    50 * time.Millisecond,
			MinInterval:     300 * time.Millisecond,
			BaseDescent:     1.8,
			DescentPerLevel: 0.2,
			HitRadius:       0.5,
		},
		Scoring: ScoringConfig{
			PointsPerHit:   100,
			PointsPerLevel: 1000,
			Lives:          5,
		},
		Input: InputConfig{
			HoldTimeout: 180 * time.Millisecond,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDefenderYAML
}
