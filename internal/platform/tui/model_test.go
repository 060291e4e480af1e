package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/games/defender"
)

func newTestModel(t *testing.T) (Model, *defender.Game) {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1, FixedStep: 100 * time.Millisecond}
	g := defender.New(config.DefaultDefenderConfig(), defender.Options{Runtime: rt})
	return NewModel(g, rt, 180*time.Millisecond, nil), g
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelMenuToPlaying(t *testing.T) {
	m, g := newTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(time.Now()))

	if g.State() != defender.StatePlaying {
		t.Fatalf("state = %v, expected Playing", g.State())
	}
	if g.Ship().ID != 2 {
		t.Errorf("Ship().ID = %d, expected 2", g.Ship().ID)
	}
	if g.Intent() != core.DirNone {
		t.Errorf("menu key leaked into intent: %v", g.Intent())
	}
}

func TestModelHeldDirection(t *testing.T) {
	m, g := newTestModel(t)
	if err := g.Start(1); err != nil {
		t.Fatal(err)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg(time.Now()))
	if got := g.Snapshot().ShipPos.X; got >= 0 {
		t.Fatalf("ShipX = %f, expected the ship to move left", got)
	}

	// No repeat within the hold timeout: the key is released
	m = update(t, m, TickMsg(time.Now().Add(time.Second)))
	if g.Intent() != core.DirNone {
		t.Errorf("Intent() = %v after hold timeout, expected None", g.Intent())
	}
	_ = m
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if next.(Model).View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 25})

	view := m.View()
	if !strings.Contains(view, "Choose your ship") {
		t.Error("menu not rendered")
	}
	if !strings.Contains(view, "quit") {
		t.Error("help line not rendered")
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(3, 1, 'x', core.ColorRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen produced %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") || !strings.Contains(lines[1], "x") {
		t.Errorf("unexpected output %q", out)
	}
}
