package game

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is an immutable copy of the shared round state, taken under the game lock.
type Snapshot struct {
	Round     uuid.UUID
	Grid      core.Grid
	Head      core.Cell
	Body      []core.Cell // head-exclusive, front is nearest the head
	Alive     bool
	Food      core.Cell // core.NoCell when the grid is full
	Score     int
	Size      int
	Speed     float64
	Phase     Phase
	Direction core.Direction
}

// Occupied reports whether c is the head or a body segment.
func (s Snapshot) Occupied(c core.Cell) bool {
	if c == s.Head {
		return true
	}
	for _, b := range s.Body {
		if b == c {
			return true
		}
	}
	return false
}

// Stats is the once-per-second HUD payload.
type Stats struct {
	Score int
	FPS   float64
}
