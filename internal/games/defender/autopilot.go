package defender

import (
	"math"

	"github.com/vovakirdan/space-defender/internal/core"
)

// Autopilot steers the ship under the lowest obstacle in the collision band.
// It drives the headless simulator and produces the same key edges a
// player would.
type Autopilot struct {
	// Deadzone is how close to the target the ship must be before it stops.
	Deadzone float64
}

// Steer appends the key edges needed to move toward the current target.
func (a Autopilot) Steer(s Snapshot, spawnY float64, in *core.InputFrame) {
	want := a.direction(s, spawnY)
	if want == s.Intent {
		return
	}
	if s.Intent != core.DirNone {
		in.Release(s.Intent)
	}
	if want != core.DirNone {
		in.Press(want)
	}
}

func (a Autopilot) direction(s Snapshot, spawnY float64) core.Direction {
	target, ok := lowestObstacle(s.Obstacles, spawnY)
	if !ok {
		return core.DirNone
	}

	dx := target.X - s.ShipPos.X
	if math.Abs(dx) <= a.Deadzone {
		return core.DirNone
	}
	if dx < 0 {
		return core.DirLeft
	}
	return core.DirRight
}

// lowestObstacle returns the position of the obstacle closest to the floor.
func lowestObstacle(obstacles []Obstacle, spawnY float64) (core.Vec2, bool) {
	found := false
	var best core.Vec2
	for _, o := range obstacles {
		if o.Pos.Y > spawnY {
			continue
		}
		if !found || o.Pos.Y < best.Y {
			best = o.Pos
			found = true
		}
	}
	return best, found
}
