package defender

import "github.com/vovakirdan/space-defender/internal/core"

// Projectile is an auto-fired shot travelling straight up.
type Projectile struct {
	ID  uint64    // Monotonic per run
	Pos core.Vec2 // Current position
	Vel core.Vec2 // Constant velocity
}

// Obstacle is a falling hazard. It has no stable identity.
type Obstacle struct {
	Pos core.Vec2
}

// World holds the mutable entities of one run.
// Slices are kept in spawn order, oldest first.
type World struct {
	Projectiles []Projectile
	Obstacles   []Obstacle
	ShipX       float64
	nextID      uint64
}

// reset clears all entities and recenters the ship.
func (w *World) reset() {
	w.Projectiles = w.Projectiles[:0]
	w.Obstacles = w.Obstacles[:0]
	w.ShipX = 0
	w.nextID = 0
}

// addProjectile appends a projectile with the next ID.
func (w *World) addProjectile(pos, vel core.Vec2) Projectile {
	p := Projectile{ID: w.nextID, Pos: pos, Vel: vel}
	w.nextID++
	w.Projectiles = append(w.Projectiles, p)
	return p
}

// addObstacle appends an obstacle.
func (w *World) addObstacle(pos core.Vec2) {
	w.Obstacles = append(w.Obstacles, Obstacle{Pos: pos})
}
