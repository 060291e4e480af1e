package config

import "time"

// SpawnInterval returns the obstacle spawn interval at the given level:
// max(base - level*step, min).
func (o ObstacleConfig) SpawnInterval(level int) time.Duration {
	interval := o.BaseInterval - time.Duration(level)*o.IntervalStep
	if interval < o.MinInterval {
		return o.MinInterval
	}
	return interval
}

// DescentRate returns the obstacle fall speed in units per second at the
// given level. It grows linearly with the level.
func (o ObstacleConfig) DescentRate(level int) float64 {
	return o.BaseDescent + float64(level)*o.DescentPerLevel
}

// LevelFor returns the level reached at the given score: score/PointsPerLevel + 1.
func (s ScoringConfig) LevelFor(score int) int {
	if s.PointsPerLevel <= 0 || score < 0 {
		return 1
	}
	return score/s.PointsPerLevel + 1
}
