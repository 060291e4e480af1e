package defender

import (
	"fmt"
	"math"

	"github.com/vovakirdan/space-defender/internal/core"
	"github.com/vovakirdan/space-defender/internal/registry"
)

const (
	minScreenW = 30
	minScreenH = 12

	hudRows   = 2 // Status line and separator
	fieldTop  = hudRows
	starEvery = 47 // Roughly one star per this many cells
)

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		return
	}

	if g.state == StateMenu {
		g.renderMenu(dst)
		return
	}

	g.renderHUD(dst)
	g.renderField(dst)

	switch g.state {
	case StatePaused:
		g.renderOverlay(dst, "PAUSED", core.ColorBrightYellow,
			"P  Resume",
			"R  Restart",
			"B  Back to Menu",
		)
	case StateGameOver:
		p := g.ledger.Progress()
		lines := []string{fmt.Sprintf("Final Score: %d", p.Score)}
		if p.Score > 0 && p.Score == p.HighScore {
			lines = append(lines, "New high score!")
		}
		lines = append(lines, "", "R  Play Again", "B  Back to Menu")
		g.renderOverlay(dst, "GAME OVER", core.ColorBrightRed, lines...)
	}
}

// renderHUD draws the status line: score, high score, player, lives, level.
func (g *Game) renderHUD(dst *core.Screen) {
	p := g.ledger.Progress()

	left := fmt.Sprintf(" Score: %d  High: %d  Player: %s", p.Score, p.HighScore, g.player.DisplayName())
	dst.DrawText(0, 0, left)

	right := fmt.Sprintf("Level %d  ", p.Level)
	lives := ""
	for i := 0; i < p.Lives; i++ {
		lives += "♥"
	}
	x := dst.Width() - len([]rune(right)) - len([]rune(lives)) - 1
	dst.DrawTextColored(x, 0, lives, core.ColorRed)
	dst.DrawText(x+len([]rune(lives))+1, 0, right)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderField draws stars, obstacles, projectiles and the ship.
func (g *Game) renderField(dst *core.Screen) {
	bottom := dst.Height() - 2
	g.renderStars(dst, fieldTop, bottom)
	dst.DrawHLine(0, dst.Height()-1, dst.Width(), '▔', core.ColorGray)

	for _, o := range g.world.Obstacles {
		if x, y, ok := g.toCell(dst, o.Pos); ok {
			dst.SetColored(x, y, '●', core.ColorWhite)
		}
	}
	for _, p := range g.world.Projectiles {
		if x, y, ok := g.toCell(dst, p.Pos); ok {
			dst.SetColored(x, y, '|', core.ColorBrightRed)
		}
	}

	if x, y, ok := g.toCell(dst, core.V(g.world.ShipX, g.cfg.Ship.Y)); ok {
		drawShip(dst, x, y, g.ship)
	}
}

// drawShip draws a three-cell hull centered on (x, y).
func drawShip(dst *core.Screen, x, y int, ship registry.Ship) {
	glyph := ship.Glyph
	if glyph == 0 {
		glyph = 'A'
	}
	dst.SetColored(x-1, y, '/', ship.Color)
	dst.SetColored(x, y, glyph, ship.Color)
	dst.SetColored(x+1, y, '\\', ship.Color)
}

// renderStars scatters a static starfield derived from the seed and the cell
// position, so it stays put between frames.
func (g *Game) renderStars(dst *core.Screen, top, bottom int) {
	seed := uint64(g.runtime.Seed)
	for y := top; y <= bottom; y++ {
		for x := 0; x < dst.Width(); x++ {
			h := seed ^ uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xC2B2AE3D27D4EB4F
			h ^= h >> 29
			h *= 0xBF58476D1CE4E5B9
			h ^= h >> 32
			if h%starEvery == 0 {
				dst.SetColored(x, y, '.', core.ColorGray)
			}
		}
	}
}

// toCell maps a world position to a screen cell inside the field area.
// The spawn line maps to the first field row and the floor to the last.
func (g *Game) toCell(dst *core.Screen, pos core.Vec2) (x, y int, ok bool) {
	field := g.cfg.Field
	bottom := dst.Height() - 2
	rows := bottom - fieldTop
	cols := dst.Width() - 3

	fy := (field.SpawnY - pos.Y) / (field.SpawnY - field.FloorY)
	fx := (pos.X - field.MinX) / (field.MaxX - field.MinX)

	y = fieldTop + int(math.Round(fy*float64(rows)))
	x = 1 + int(math.Round(fx*float64(cols)))
	if y < fieldTop || y > bottom || x < 0 || x >= dst.Width() {
		return 0, 0, false
	}
	return x, y, true
}

// renderOverlay draws a centered box with a title and lines below it.
func (g *Game) renderOverlay(dst *core.Screen, title string, c core.Color, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 6
	height := len(lines) + 4

	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-height)/2, width, height)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorDefault)
	}
}

// renderMenu draws the ship selection screen.
func (g *Game) renderMenu(dst *core.Screen) {
	y := dst.Height()/2 - 6

	dst.DrawTextCentered(y, "S P A C E   D E F E N D E R", core.ColorBrightYellow)
	dst.DrawTextCentered(y+2, fmt.Sprintf("Welcome, %s!", g.player.DisplayName()), core.ColorDefault)
	if best := g.ledger.Progress().HighScore; best > 0 {
		dst.DrawTextCentered(y+3, fmt.Sprintf("Best score: %d", best), core.ColorGray)
	}
	dst.DrawTextCentered(y+5, "Choose your ship", core.ColorDefault)

	ships := registry.List()
	cursor := core.Clamp(g.cursor, 0, max(len(ships)-1, 0))

	const slot = 12
	left := (dst.Width() - slot*len(ships)) / 2
	for i, s := range ships {
		cx := left + i*slot + slot/2
		drawShip(dst, cx, y+7, s)

		name := s.Name
		c := core.ColorGray
		if i == cursor {
			name = "[" + name + "]"
			c = core.ColorBrightWhite
		}
		dst.DrawTextColored(cx-len([]rune(name))/2, y+8, name, c)
	}

	dst.DrawTextCentered(y+11, "←/→ choose   Enter start   Q quit", core.ColorGray)
}
