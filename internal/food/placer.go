// Package food places food on free grid cells.
package food

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrGridFull is returned when no free cell is left to place food on.
// Filling the whole grid is not a supported game state.
var ErrGridFull = errors.New("food: no free cell on grid")

// Occupancy answers which cells are taken.
type Occupancy interface {
	// Occupies reports whether the cell is taken.
	Occupies(c core.Cell) bool
	// Size returns how many distinct cells are taken.
	Size() int
}

// Placer draws uniformly random free cells using rejection sampling.
// It owns its random source so tests can seed it deterministically.
type Placer struct {
	grid core.Grid
	rng  *rand.Rand
}

// NewPlacer creates a placer for the grid backed by the given random source.
func NewPlacer(grid core.Grid, rng *rand.Rand) *Placer {
	return &Placer{grid: grid, rng: rng}
}

// NewSeededPlacer creates a placer with its own source seeded with seed.
func NewSeededPlacer(grid core.Grid, seed int64) *Placer {
	return NewPlacer(grid, rand.New(rand.NewSource(seed)))
}

// Place returns a random cell that occ does not occupy.
//
// Sampling retries without bound; this terminates quickly as long as the
// snake covers a small fraction of the grid. A completely full grid returns
// ErrGridFull instead of spinning.
func (p *Placer) Place(occ Occupancy) (core.Cell, error) {
	if occ.Size() >= p.grid.Area() {
		return core.NoCell, ErrGridFull
	}
	for {
		c := core.Cell{
			X: p.rng.Intn(p.grid.Width),
			Y: p.rng.Intn(p.grid.Height),
		}
		if !occ.Occupies(c) {
			return c, nil
		}
	}
}
