package defender

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
)

// spawnTimer fires when it has never fired or when more than one interval
// has passed since it last fired. Missed intervals are not caught up.
type spawnTimer struct {
	last  time.Duration
	fired bool
}

func (t *spawnTimer) due(now, interval time.Duration) bool {
	return !t.fired || now-t.last > interval
}

func (t *spawnTimer) mark(now time.Duration) {
	t.last = now
	t.fired = true
}

// Spawner creates obstacles and projectiles on two independent timers
// measured against the simulation clock.
type Spawner struct {
	cfg         *config.DefenderConfig
	rng         *rand.Rand
	obstacles   spawnTimer
	projectiles spawnTimer
}

// NewSpawner creates a spawner whose obstacle positions come from seed.
func NewSpawner(cfg *config.DefenderConfig, seed int64) *Spawner {
	return &Spawner{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Reset rearms both timers so they fire on the next call to Spawn.
// The RNG keeps its sequence so consecutive runs differ.
func (s *Spawner) Reset() {
	s.obstacles = spawnTimer{}
	s.projectiles = spawnTimer{}
}

// ObstacleInterval returns the obstacle spawn interval at level.
func (s *Spawner) ObstacleInterval(level int) time.Duration {
	return s.cfg.Obstacle.SpawnInterval(level)
}

// FireInterval returns the auto-fire interval. It does not depend on level.
func (s *Spawner) FireInterval() time.Duration {
	return s.cfg.Projectile.FireInterval
}

// Spawn adds at most one obstacle and one projectile to w at clock time now.
// It reports which of the two timers fired.
func (s *Spawner) Spawn(w *World, now time.Duration, level int) (obstacle, projectile bool) {
	if s.obstacles.due(now, s.ObstacleInterval(level)) {
		field := s.cfg.Field
		x := field.MinX + s.rng.Float64()*(field.MaxX-field.MinX)
		w.addObstacle(core.V(x, field.SpawnY))
		s.obstacles.mark(now)
		obstacle = true
	}

	if s.projectiles.due(now, s.FireInterval()) {
		pos := core.V(w.ShipX, s.cfg.Ship.Y+s.cfg.Projectile.SpawnOffset)
		vel := core.V(0, s.cfg.Projectile.Speed)
		w.addProjectile(pos, vel)
		s.projectiles.mark(now)
		projectile = true
	}

	return obstacle, projectile
}
