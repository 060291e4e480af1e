package defender

import (
	"time"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
)

// integrate advances the ship, every projectile and every obstacle by dt.
// Motion is plain kinematics on the measured delta, so results depend on
// frame timing unless the caller feeds a fixed step.
func integrate(w *World, cfg *config.DefenderConfig, intent core.Direction, level int, dt time.Duration) {
	secs := dt.Seconds()
	if secs <= 0 {
		return
	}

	// Ship: hard clamp at the field edges, no bounce
	x := w.ShipX + float64(intent)*cfg.Ship.Speed*secs
	w.ShipX = core.ClampF(x, cfg.Field.MinX, cfg.Field.MaxX)

	for i := range w.Projectiles {
		p := &w.Projectiles[i]
		p.Pos = p.Pos.Add(p.Vel.Scale(secs))
	}

	fall := cfg.Obstacle.DescentRate(level) * secs
	for i := range w.Obstacles {
		w.Obstacles[i].Pos.Y -= fall
	}
}
