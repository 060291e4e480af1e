package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-defender/internal/core"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Confirm},
		{k.Pause, k.Restart, k.Back},
		{k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("b", "m"),
			key.WithHelp("b", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message into a direction or a one-shot action.
// At most one of the results is set.
func (k KeyMap) MapKey(msg tea.KeyMsg) (core.Direction, core.Action) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.DirNone, core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.DirLeft, core.ActionNone
	case key.Matches(msg, k.Right):
		return core.DirRight, core.ActionNone
	case key.Matches(msg, k.Confirm):
		return core.DirNone, core.ActionConfirm
	case key.Matches(msg, k.Pause):
		return core.DirNone, core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.DirNone, core.ActionRestart
	case key.Matches(msg, k.Back):
		return core.DirNone, core.ActionBack
	}
	return core.DirNone, core.ActionNone
}
