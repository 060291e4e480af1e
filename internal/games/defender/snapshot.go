package defender

import (
	"time"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/registry"
)

// Snapshot is a read-only copy of the game for rendering, the headless
// simulator and tests. Mutating it has no effect on the game.
type Snapshot struct {
	State       State
	Progress    Progress
	Ship        registry.Ship
	ShipPos     core.Vec2
	Intent      core.Direction
	Projectiles []Projectile
	Obstacles   []Obstacle
	Clock       time.Duration
	Tick        uint64
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:       g.state,
		Progress:    g.ledger.Progress(),
		Ship:        g.ship,
		ShipPos:     core.V(g.world.ShipX, g.cfg.Ship.Y),
		Intent:      g.intent.Value(),
		Projectiles: append([]Projectile(nil), g.world.Projectiles...),
		Obstacles:   append([]Obstacle(nil), g.world.Obstacles...),
		Clock:       g.clock,
		Tick:        g.tick,
	}
}
