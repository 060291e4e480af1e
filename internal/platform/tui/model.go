package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(1)

// Model is the Bubble Tea model driving one defender game.
type Model struct {
	game     *defender.Game
	screen   *core.Screen
	runtime  core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	held     *heldKeys
	input    core.InputFrame
	lastTick time.Time
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model around game. holdTimeout controls how long a
// direction key counts as held after its last key event.
func NewModel(game *defender.Game, rt core.RuntimeConfig, holdTimeout time.Duration, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	return Model{
		game:    game,
		screen:  core.NewScreen(rt.ScreenW, max(rt.ScreenH-1, 1)),
		runtime: rt,
		keys:    DefaultKeyMap(),
		help:    h,
		held:    newHeldKeys(holdTimeout),
		input:   core.NewInputFrame(),
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey turns a key into input for the next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	}

	dir, action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case dir != core.DirNone && m.game.State() == defender.StateMenu:
		// Menu navigation moves once per key event, repeats included
		m.input.Press(dir)
	case dir != core.DirNone && m.game.State() == defender.StatePlaying:
		if m.held.Observe(dir, now) {
			m.input.Press(dir)
		}
	case dir != core.DirNone:
		// Paused or over: the key becomes a fresh press once play resumes
	case action != core.ActionNone:
		m.input.Set(action)
	}

	return m, nil
}

// handleTick releases expired keys and advances the game by the frame delta.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, dir := range m.held.Expire(now) {
		m.input.Release(dir)
	}

	var measured time.Duration
	if !m.lastTick.IsZero() {
		measured = now.Sub(m.lastTick)
	}
	m.lastTick = now

	before := m.game.State()
	m.game.Step(m.input, m.runtime.FrameDelta(measured))
	if after := m.game.State(); after != before {
		m.logger.Debug("state changed", "from", before, "to", after)
	}

	m.input.Clear()
	return m, tickCmd(m.runtime.FrameInterval())
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".defender", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("defender_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game followed by the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game *defender.Game, rt core.RuntimeConfig, holdTimeout time.Duration, logger *log.Logger) error {
	model := NewModel(game, rt, holdTimeout, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
