// Package snake implements the snake's motion and self-collision rules on a
// toroidal grid. A Snake is not safe for concurrent use; the game coordinator
// serializes all access behind its own lock.
package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Defaults applied by New and Reset.
const (
	DefaultSpeed     = 0.2
	DefaultDirection = core.DirUp
)

// Snake holds one snake's state.
//
// The head is tracked with sub-cell precision so that speeds below one cell per
// tick accumulate before the body moves. body excludes the head; body[0] is the
// most recently vacated head cell and the last element is the tail.
type Snake struct {
	grid         core.Grid
	initialSpeed float64

	direction core.Direction
	speed     float64
	headX     float64
	headY     float64
	body      []core.Cell
	size      int
	alive     bool
	growing   bool
}

// New creates a snake centered on the grid, heading up at DefaultSpeed.
func New(grid core.Grid) *Snake {
	return NewWithSpeed(grid, DefaultSpeed)
}

// NewWithSpeed creates a centered snake with a custom starting speed (cells per tick).
func NewWithSpeed(grid core.Grid, speed float64) *Snake {
	s := &Snake{
		grid:         grid,
		initialSpeed: speed,
	}
	s.Reset()
	return s
}

// Reset restores the start-of-round state. The body slice is reused.
func (s *Snake) Reset() {
	center := s.grid.Center()
	s.headX = float64(center.X)
	s.headY = float64(center.Y)
	s.body = s.body[:0]
	s.size = 1
	s.alive = true
	s.growing = false
	s.speed = s.initialSpeed
	s.direction = DefaultDirection
}

// ChangeDirection turns the snake. Reversing into the neck is ignored unless
// the snake is a lone head.
func (s *Snake) ChangeDirection(d core.Direction) bool {
	if d == s.direction.Opposite() && s.size != 1 {
		return false
	}
	s.direction = d
	return true
}

// Update advances the snake by elapsed ticks. It reports whether the head
// entered a new cell.
func (s *Snake) Update(elapsed float64) bool {
	prev := s.Head()
	s.updateHead(elapsed)
	cur := s.Head()

	// Sub-cell motion: the body only follows once the head leaves its cell.
	if cur == prev {
		return false
	}
	s.updateBody(cur, prev)
	return true
}

func (s *Snake) updateHead(elapsed float64) {
	dx, dy := s.direction.Delta()
	step := s.speed * elapsed
	s.headX, s.headY = s.grid.Wrap(s.headX+dx*step, s.headY+dy*step)
}

func (s *Snake) updateBody(head, prev core.Cell) {
	// push_front(prev)
	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = prev

	if s.growing {
		s.growing = false
		s.size++
	} else {
		s.body = s.body[:len(s.body)-1]
	}

	if s.size != len(s.body)+1 {
		panic(fmt.Sprintf("snake: size %d does not match body length %d", s.size, len(s.body)))
	}

	for _, c := range s.body {
		if c == head {
			s.alive = false
		}
	}
}

// GrowBody marks the snake to keep its tail on the next body update.
func (s *Snake) GrowBody() {
	s.growing = true
}

// SnakeCell reports whether (x, y) is occupied by a body segment.
// The head cell is not considered.
func (s *Snake) SnakeCell(x, y int) bool {
	for _, c := range s.body {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}

// Occupies reports whether the cell holds the head or any body segment.
func (s *Snake) Occupies(c core.Cell) bool {
	return c == s.Head() || s.SnakeCell(c.X, c.Y)
}

// Head returns the cell containing the head.
func (s *Snake) Head() core.Cell {
	return core.CellAt(s.headX, s.headY)
}

// Body returns a copy of the trailing segments, most recent first.
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Size returns the number of segments including the head.
func (s *Snake) Size() int { return s.size }

// Alive reports whether the snake has not collided with itself this round.
func (s *Snake) Alive() bool { return s.alive }

// Growing reports whether a growth is pending for the next body update.
func (s *Snake) Growing() bool { return s.growing }

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction { return s.direction }

// Speed returns the speed in cells per tick.
func (s *Snake) Speed() float64 { return s.speed }

// SetSpeed replaces the speed, clamped to [0, 1] cells per tick so the head
// never skips a cell.
func (s *Snake) SetSpeed(v float64) {
	s.speed = core.ClampF(v, 0, 1)
}

// Grid returns the grid the snake moves on.
func (s *Snake) Grid() core.Grid { return s.grid }
