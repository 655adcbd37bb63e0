package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// pngBlock is the pixel size of one grid cell in PNG screenshots.
const pngBlock = 16

// DefaultScreenshotDir returns ~/.snake/screenshots, or a relative
// directory if the home directory is unknown.
func DefaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".snake", "screenshots")
}

// SaveScreenshot writes the text screen and a PNG of the snapshot to dir.
// It returns the base path shared by both files, without extension.
func SaveScreenshot(dir string, screen *core.Screen, snap game.Snapshot, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot dir: %w", err)
	}

	base := filepath.Join(dir, "snake_"+at.Format("20060102_150405"))
	if err := os.WriteFile(base+".txt", []byte(screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("failed to write text screenshot: %w", err)
	}
	if err := RenderPNG(snap).SavePNG(base + ".png"); err != nil {
		return "", fmt.Errorf("failed to write png screenshot: %w", err)
	}
	return base, nil
}

// RenderPNG draws a snapshot onto an image context.
func RenderPNG(snap game.Snapshot) *gg.Context {
	width := snap.Grid.Width * pngBlock
	height := snap.Grid.Height * pngBlock
	dc := gg.NewContext(width, height)

	dc.SetRGB(0.08, 0.08, 0.1)
	dc.Clear()

	dc.SetRGB(0.18, 0.18, 0.2)
	dc.SetLineWidth(1)
	for x := 0; x <= width; x += pngBlock {
		dc.DrawLine(float64(x), 0, float64(x), float64(height))
		dc.Stroke()
	}
	for y := 0; y <= height; y += pngBlock {
		dc.DrawLine(0, float64(y), float64(width), float64(y))
		dc.Stroke()
	}

	if snap.Grid.Contains(snap.Food) {
		dc.SetRGB(0.9, 0.2, 0.2)
		r := float64(pngBlock) / 2
		dc.DrawCircle(float64(snap.Food.X*pngBlock)+r, float64(snap.Food.Y*pngBlock)+r, r-2)
		dc.Fill()
	}

	dc.SetRGB(0.2, 0.65, 0.3)
	for _, c := range snap.Body {
		fillBlock(dc, c)
	}
	if snap.Alive {
		dc.SetRGB(0.4, 0.95, 0.45)
	} else {
		dc.SetRGB(0.8, 0.1, 0.1)
	}
	fillBlock(dc, snap.Head)

	dc.SetRGB(1, 1, 1)
	dc.DrawString(fmt.Sprintf("score %d", snap.Score), 4, 14)
	return dc
}

func fillBlock(dc *gg.Context, c core.Cell) {
	dc.DrawRectangle(float64(c.X*pngBlock)+1, float64(c.Y*pngBlock)+1, pngBlock-2, pngBlock-2)
	dc.Fill()
}
