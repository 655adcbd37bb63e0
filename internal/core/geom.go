// Package core provides fundamental types and utilities for the snake game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// NoCell marks "no position", e.g. food that could not be placed.
var NoCell = Cell{X: -1, Y: -1}

// Grid describes the playfield dimensions. Opposite edges are identified,
// so coordinates wrap around instead of hitting walls.
type Grid struct {
	Width  int
	Height int
}

// NewGrid creates a grid with the given dimensions.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height}
}

// Area returns the number of cells on the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Contains returns true if the cell lies inside the grid.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Center returns the center cell (integer division, like the spawn point).
func (g Grid) Center() Cell {
	return Cell{X: g.Width / 2, Y: g.Height / 2}
}

// Wrap maps a sub-cell position back onto the torus.
// The result lies in [0, Width) x [0, Height).
func (g Grid) Wrap(x, y float64) (float64, float64) {
	return wrapF(x, float64(g.Width)), wrapF(y, float64(g.Height))
}

// CellAt truncates a sub-cell position to the cell that contains it.
func CellAt(x, y float64) Cell {
	return Cell{X: int(x), Y: int(y)}
}

func wrapF(v, extent float64) float64 {
	v = math.Mod(v+extent, extent)
	if v < 0 {
		// more than one extent below zero
		v += extent
	}
	if v >= extent {
		// rounding of v+extent can land exactly on the edge
		v = 0
	}
	return v
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
