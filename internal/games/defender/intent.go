package defender

import "github.com/vovakirdan/space-defender/internal/core"

// Intent turns directional key edges into a movement direction.
//
// A press makes its direction current. Releasing the current direction falls
// back to the other key if that one is still held, otherwise to none.
// Releasing a key that is not current leaves the intent alone.
type Intent struct {
	dir       core.Direction
	heldLeft  bool
	heldRight bool
}

// Value returns the current direction.
func (in *Intent) Value() core.Direction {
	return in.dir
}

// Press handles a key-down edge.
func (in *Intent) Press(dir core.Direction) {
	if dir == core.DirNone {
		return
	}
	in.setHeld(dir, true)
	in.dir = dir
}

// Release handles a key-up edge.
func (in *Intent) Release(dir core.Direction) {
	if dir == core.DirNone {
		return
	}
	in.setHeld(dir, false)
	if in.dir != dir {
		return
	}
	if in.held(dir.Opposite()) {
		in.dir = dir.Opposite()
	} else {
		in.dir = core.DirNone
	}
}

// Reset forgets all held keys.
func (in *Intent) Reset() {
	*in = Intent{}
}

func (in *Intent) held(dir core.Direction) bool {
	if dir == core.DirLeft {
		return in.heldLeft
	}
	return in.heldRight
}

func (in *Intent) setHeld(dir core.Direction, v bool) {
	if dir == core.DirLeft {
		in.heldLeft = v
	} else {
		in.heldRight = v
	}
}
