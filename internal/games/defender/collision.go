package defender

import "github.com/vovakirdan/space-defender/internal/config"

// TickEvents summarizes what the collision pass did in one tick.
type TickEvents struct {
	Hits    int // Obstacles destroyed by projectiles
	Misses  int // Obstacles that crossed the floor
	Expired int // Projectiles that left the top of the field
}

// resolve culls off-field entities and matches projectiles against obstacles.
//
// Order: projectiles above the ceiling are dropped, obstacles below the floor
// are dropped at the cost of one life each, then hits are matched. Projectiles
// are scanned oldest first; a projectile is consumed by its first hit and each
// obstacle can be hit once. Only obstacles inside the collision band (at or
// below the spawn line) can be hit.
func resolve(w *World, cfg *config.DefenderConfig, ledger *Ledger) TickEvents {
	var ev TickEvents
	field := cfg.Field

	projectiles := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		if p.Pos.Y > field.CeilingY {
			ev.Expired++
			continue
		}
		projectiles = append(projectiles, p)
	}
	w.Projectiles = projectiles

	obstacles := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if o.Pos.Y < field.FloorY {
			ev.Misses++
			ledger.LoseLife()
			continue
		}
		obstacles = append(obstacles, o)
	}
	w.Obstacles = obstacles

	if len(w.Projectiles) == 0 || len(w.Obstacles) == 0 {
		return ev
	}

	hit := make([]bool, len(w.Obstacles))
	radius := cfg.Obstacle.HitRadius

	survivors := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		consumed := false
		for i, o := range w.Obstacles {
			if hit[i] || o.Pos.Y > field.SpawnY {
				continue
			}
			if p.Pos.DistanceTo(o.Pos) < radius {
				hit[i] = true
				consumed = true
				ev.Hits++
				ledger.AddScore(cfg.Scoring.PointsPerHit)
				break
			}
		}
		if !consumed {
			survivors = append(survivors, p)
		}
	}
	w.Projectiles = survivors

	if ev.Hits > 0 {
		remaining := w.Obstacles[:0]
		for i, o := range w.Obstacles {
			if !hit[i] {
				remaining = append(remaining, o)
			}
		}
		w.Obstacles = remaining
	}

	return ev
}
