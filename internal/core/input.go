package core

// Action represents a semantic one-shot action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, M - return to the ship menu
	ActionRestart        // R - restart the run
	ActionQuit           // Q, Ctrl+C - exit the program
	ActionPause          // P, Escape - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Direction is a horizontal movement sign: -1 (left), 0 (none) or 1 (right).
type Direction int

const (
	DirNone  Direction = 0
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// Opposite returns the other horizontal direction.
func (d Direction) Opposite() Direction {
	return -d
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// KeyEdge is a press or release of a directional key.
type KeyEdge struct {
	Dir     Direction
	Pressed bool
}

// InputFrame collects the input that arrived between two simulation ticks.
// One-shot actions are unordered; directional edges keep arrival order so a
// press followed by a release within one frame is replayed faithfully.
type InputFrame struct {
	Actions map[Action]bool
	Edges   []KeyEdge
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Press records a key-down edge for dir.
func (f *InputFrame) Press(dir Direction) {
	f.Edges = append(f.Edges, KeyEdge{Dir: dir, Pressed: true})
}

// Release records a key-up edge for dir.
func (f *InputFrame) Release(dir Direction) {
	f.Edges = append(f.Edges, KeyEdge{Dir: dir, Pressed: false})
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Edges) == 0
}

// Clear resets all actions and edges for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Edges = f.Edges[:0]
}
