package tui

import (
	"time"

	"github.com/vovakirdan/space-defender/internal/core"
)

// heldKeys synthesizes key-up edges for direction keys.
// Terminals only report presses and autorepeats, so a key counts as held
// until no event for it arrives within the timeout.
type heldKeys struct {
	timeout  time.Duration
	lastSeen map[core.Direction]time.Time
}

func newHeldKeys(timeout time.Duration) *heldKeys {
	return &heldKeys{
		timeout:  timeout,
		lastSeen: make(map[core.Direction]time.Time),
	}
}

// Observe records a key event for dir at now.
// It reports true when this is a fresh press rather than an autorepeat.
func (h *heldKeys) Observe(dir core.Direction, now time.Time) bool {
	_, held := h.lastSeen[dir]
	h.lastSeen[dir] = now
	return !held
}

// Expire returns the directions released by now, left before right.
func (h *heldKeys) Expire(now time.Time) []core.Direction {
	var released []core.Direction
	for _, dir := range []core.Direction{core.DirLeft, core.DirRight} {
		last, held := h.lastSeen[dir]
		if held && now.Sub(last) > h.timeout {
			delete(h.lastSeen, dir)
			released = append(released, dir)
		}
	}
	return released
}

// Held reports whether dir is currently held.
func (h *heldKeys) Held(dir core.Direction) bool {
	_, held := h.lastSeen[dir]
	return held
}
