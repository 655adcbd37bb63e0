package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Board layout: one HUD row, then the bordered playfield with two screen
// columns per grid cell so cells look square in a terminal.
const (
	cellWidth = 2
	hudRows   = 1
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// BoardSize returns the screen size needed to draw a grid.
func BoardSize(g core.Grid) (width, height int) {
	return g.Width*cellWidth + 2, g.Height + 2 + hudRows
}

// cellOrigin returns the screen column and row of a grid cell.
func cellOrigin(c core.Cell) (x, y int) {
	return 1 + c.X*cellWidth, hudRows + 1 + c.Y
}

// DrawBoard paints a snapshot and HUD into the screen buffer.
func DrawBoard(s *core.Screen, snap game.Snapshot, stats game.Stats) {
	w, h := BoardSize(snap.Grid)
	s.Resize(w, h)
	s.Clear()

	hud := fmt.Sprintf("Score: %d  Size: %d  Speed: %.2f  FPS: %.0f", snap.Score, snap.Size, snap.Speed, stats.FPS)
	s.DrawText(0, 0, hud, core.ColorWhite)

	s.DrawBox(core.NewRect(0, hudRows, w, h-hudRows), core.ColorGray)

	if snap.Grid.Contains(snap.Food) {
		drawCell(s, snap.Food, "()", core.ColorBrightRed)
	}
	for _, c := range snap.Body {
		drawCell(s, c, "██", core.ColorGreen)
	}
	if snap.Alive {
		drawCell(s, snap.Head, "██", core.ColorBrightGreen)
	} else {
		drawCell(s, snap.Head, "XX", core.ColorRed)
	}
}

func drawCell(s *core.Screen, c core.Cell, glyph string, color core.Color) {
	x, y := cellOrigin(c)
	s.DrawText(x, y, glyph, color)
}

// DrawPrompt overlays the game-over dialog in the middle of the screen.
func DrawPrompt(s *core.Screen, score int) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", score),
		"Play again? [y/n]",
	}
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2

	r := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.FillRect(r, ' ', core.ColorDefault)
	s.DrawBox(r, core.ColorYellow)
	for i, l := range lines {
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightRed
		}
		s.DrawTextCentered(r.Y+1+i, l, color)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
