// Package defender implements the arcade shooter simulation: a ship that
// auto-fires at obstacles falling from the top of the field.
//
// The package is pure game logic. It never touches the terminal; the
// platform feeds it an InputFrame and a frame delta, then asks it to render
// into a core.Screen.
package defender

import (
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/profile"
	"github.com/vovakirdan/space-defender/internal/registry"
)

// State is the orchestrator lifecycle state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// ErrNotInMenu is returned by Start when a run is already active.
var ErrNotInMenu = errors.New("defender: start is only allowed from the menu")

// Options carries the collaborators of a Game. All fields are optional.
type Options struct {
	Runtime   core.RuntimeConfig
	BestScore int             // Best score loaded at startup
	Saver     BestScoreSaver  // Receives new high scores
	Logger    *log.Logger     // nil discards
	Player    profile.Profile // Shown in the menu and HUD
}

// Game is the frame orchestrator. It owns the world, the ledger, the spawner
// and the intent, and is the only place the frame delta enters the simulation.
type Game struct {
	cfg     config.DefenderConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	player  profile.Profile

	state   State
	ledger  *Ledger
	spawner *Spawner
	intent  Intent
	world   World
	ship    registry.Ship

	// Menu selection, index into registry.List()
	cursor int

	clock time.Duration // Simulation time of the current run
	tick  uint64        // Simulation ticks of the current run
}

// New creates a game in the menu state.
func New(cfg config.DefenderConfig, opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		cfg:     cfg,
		runtime: opts.Runtime,
		logger:  logger,
		player:  opts.Player,
		state:   StateMenu,
	}
	g.ledger = NewLedger(cfg.Scoring, opts.BestScore, opts.Saver, logger)
	g.spawner = NewSpawner(&g.cfg, opts.Runtime.Seed)
	return g
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Progress returns a copy of the ledger state.
func (g *Game) Progress() Progress {
	return g.ledger.Progress()
}

// Ship returns the ship of the current run. Zero in the menu before the
// first start.
func (g *Game) Ship() registry.Ship {
	return g.ship
}

// Player returns the player profile.
func (g *Game) Player() profile.Profile {
	return g.player
}

// Config returns the game configuration.
func (g *Game) Config() config.DefenderConfig {
	return g.cfg
}

// Start begins a run with the given ship. Only valid from the menu.
func (g *Game) Start(shipID int) error {
	if g.state != StateMenu {
		return ErrNotInMenu
	}
	ship, err := registry.Get(shipID)
	if err != nil {
		return err
	}

	g.ship = ship
	g.resetRun()
	g.state = StatePlaying
	g.logger.Info("run started", "ship", ship.Name, "player", g.player.DisplayName())
	return nil
}

// TogglePause switches between Playing and Paused.
// It reports false and does nothing in any other state.
func (g *Game) TogglePause() bool {
	switch g.state {
	case StatePlaying:
		g.ledger.TogglePause()
		g.state = StatePaused
	case StatePaused:
		g.ledger.TogglePause()
		g.state = StatePlaying
	default:
		return false
	}
	g.logger.Debug("pause toggled", "state", g.state)
	return true
}

// Restart begins a new run with the same ship from GameOver or Paused.
func (g *Game) Restart() bool {
	if g.state != StateGameOver && g.state != StatePaused {
		return false
	}
	g.resetRun()
	g.state = StatePlaying
	g.logger.Info("run restarted", "ship", g.ship.Name)
	return true
}

// ExitToMenu abandons the run from Paused or GameOver.
func (g *Game) ExitToMenu() bool {
	if g.state != StatePaused && g.state != StateGameOver {
		return false
	}
	g.resetRun()
	g.state = StateMenu
	return true
}

// Press applies a direction key-down. Ignored outside Playing.
func (g *Game) Press(dir core.Direction) {
	if g.state != StatePlaying {
		return
	}
	g.intent.Press(dir)
}

// Release applies a direction key-up in every state, so a key let go
// during a pause does not stick.
func (g *Game) Release(dir core.Direction) {
	g.intent.Release(dir)
}

// Intent returns the current movement direction.
func (g *Game) Intent() core.Direction {
	return g.intent.Value()
}

// resetRun clears the world and starts the ledger over.
func (g *Game) resetRun() {
	g.ledger.Reset()
	g.world.reset()
	g.spawner.Reset()
	g.intent.Reset()
	g.clock = 0
	g.tick = 0
}

// Step applies one frame of input and, while Playing, advances the
// simulation by dt. Outside Playing the world is frozen.
func (g *Game) Step(in core.InputFrame, dt time.Duration) TickEvents {
	g.applyInput(in)

	if g.state != StatePlaying || dt <= 0 {
		return TickEvents{}
	}

	g.clock += dt
	g.tick++

	level := g.ledger.Level()
	g.spawner.Spawn(&g.world, g.clock, level)
	integrate(&g.world, &g.cfg, g.intent.Value(), level, dt)
	ev := resolve(&g.world, &g.cfg, g.ledger)

	if ev.Misses > 0 {
		g.logger.Debug("obstacle missed", "lives", g.ledger.Lives())
	}

	g.reconcile()
	return ev
}

// reconcile moves a finished run to GameOver.
func (g *Game) reconcile() {
	if g.state == StatePlaying && g.ledger.GameOver() {
		g.state = StateGameOver
		g.intent.Reset()
	}
}

// applyInput replays directional edges in arrival order, then one-shot actions.
func (g *Game) applyInput(in core.InputFrame) {
	for _, e := range in.Edges {
		switch {
		case g.state == StateMenu && e.Pressed:
			g.moveCursor(int(e.Dir))
		case e.Pressed:
			g.Press(e.Dir)
		default:
			g.Release(e.Dir)
		}
	}

	switch g.state {
	case StateMenu:
		if in.Has(core.ActionConfirm) {
			if ship, ok := g.selected(); ok {
				if err := g.Start(ship.ID); err != nil {
					g.logger.Warn("could not start run", "ship", ship.ID, "error", err)
				}
			}
		}
	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.TogglePause()
		}
	case StatePaused:
		switch {
		case in.Has(core.ActionPause), in.Has(core.ActionConfirm):
			g.TogglePause()
		case in.Has(core.ActionRestart):
			g.Restart()
		case in.Has(core.ActionBack):
			g.ExitToMenu()
		}
	case StateGameOver:
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			g.Restart()
		case in.Has(core.ActionBack):
			g.ExitToMenu()
		}
	}
}

// moveCursor shifts the menu selection, wrapping at both ends.
func (g *Game) moveCursor(delta int) {
	n := len(registry.List())
	if n == 0 || delta == 0 {
		return
	}
	g.cursor = ((g.cursor+delta)%n + n) % n
}

// selected returns the ship under the menu cursor.
func (g *Game) selected() (registry.Ship, bool) {
	ships := registry.List()
	if len(ships) == 0 {
		return registry.Ship{}, false
	}
	return ships[core.Clamp(g.cursor, 0, len(ships)-1)], true
}

// Select places the menu cursor on the ship with the given ID.
func (g *Game) Select(shipID int) bool {
	for i, s := range registry.List() {
		if s.ID == shipID {
			g.cursor = i
			return true
		}
	}
	return false
}
