// Package game coordinates a snake round: the per-tick simulation, food,
// score and the round lifecycle, plus the engine that schedules ticks and
// frames on separate goroutines.
package game

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/food"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// tickQuantum is the fixed elapsed value passed to the snake each tick.
// Speeds are therefore expressed in cells per tick.
const tickQuantum = 1.0

// Game owns the snake, the food cell and the score.
// Every field below mu is shared between the tick and frame goroutines.
type Game struct {
	grid   core.Grid
	motion config.MotionConfig
	logger *log.Logger

	mu     sync.Mutex
	snake  *snake.Snake
	placer *food.Placer
	food   core.Cell
	score  int
	phase  Phase
	round  uuid.UUID
}

// New creates a game ready for its first round. A zero rt.Seed seeds food
// placement from the clock. A nil logger discards output.
func New(cfg config.SnakeConfig, rt core.RuntimeConfig, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := rt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	grid := core.NewGrid(cfg.Grid.Width, cfg.Grid.Height)
	g := &Game{
		grid:   grid,
		motion: cfg.Motion,
		logger: logger,
		snake:  snake.NewWithSpeed(grid, cfg.Motion.InitialSpeed),
		placer: food.NewSeededPlacer(grid, seed),
	}
	g.mu.Lock()
	g.startRoundLocked()
	g.mu.Unlock()
	return g
}

// startRoundLocked puts the game in the start-of-round state. Caller holds mu.
func (g *Game) startRoundLocked() {
	g.snake.Reset()
	g.score = 0
	g.round = uuid.New()
	g.placeFoodLocked()
	g.phase = PhaseRunning
	g.logger.Info("round started", "round", g.round, "width", g.grid.Width, "height", g.grid.Height, "food", g.food)
}

func (g *Game) placeFoodLocked() {
	c, err := g.placer.Place(g.snake)
	if errors.Is(err, food.ErrGridFull) {
		g.logger.Warn("no free cell for food", "round", g.round, "size", g.snake.Size())
		c = core.NoCell
	}
	g.food = c
}

// Tick advances the simulation one step. It reports true exactly when this
// tick killed the snake; the phase is then PhaseDeadPendingDecision.
func (g *Game) Tick() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhaseRunning || !g.snake.Alive() {
		return false
	}

	g.snake.Update(tickQuantum)
	if !g.snake.Alive() {
		g.phase = PhaseDeadPendingDecision
		g.logger.Info("snake died", "round", g.round, "score", g.score, "size", g.snake.Size())
		return true
	}

	if g.snake.Head() == g.food {
		g.score++
		g.snake.GrowBody()
		g.snake.SetSpeed(min(g.snake.Speed()+g.motion.SpeedIncrement, g.motion.MaxSpeed))
		g.placeFoodLocked()
		g.logger.Debug("food eaten", "score", g.score, "speed", g.snake.Speed(), "next", g.food)
	}
	return false
}

// Reset starts a new round. It is a no-op once the game is terminated.
func (g *Game) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == PhaseTerminated {
		return
	}
	g.phase = PhaseResetting
	g.startRoundLocked()
}

// ChangeDirection forwards a turn to the snake. Reversals are dropped silently.
func (g *Game) ChangeDirection(d core.Direction) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snake.ChangeDirection(d)
}

// HandleEvent applies one input event and reports whether it requests quit.
func (g *Game) HandleEvent(ev core.Event) (quit bool) {
	switch ev.Kind {
	case core.EventQuit:
		return true
	case core.EventDirection:
		g.ChangeDirection(ev.Dir)
	}
	return false
}

// Terminate moves the game to its final phase. Tick and Reset do nothing afterwards.
func (g *Game) Terminate() {
	g.mu.Lock()
	g.phase = PhaseTerminated
	g.mu.Unlock()
}

// Snapshot returns a consistent copy of the round state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	return Snapshot{
		Round:     g.round,
		Grid:      g.grid,
		Head:      g.snake.Head(),
		Body:      g.snake.Body(),
		Alive:     g.snake.Alive(),
		Food:      g.food,
		Score:     g.score,
		Size:      g.snake.Size(),
		Speed:     g.snake.Speed(),
		Phase:     g.phase,
		Direction: g.snake.Direction(),
	}
}

// Score returns the current score.
func (g *Game) Score() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.score
}

// Size returns the snake length including the head.
func (g *Game) Size() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snake.Size()
}

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.phase
}

// RoundID identifies the current round in logs and snapshots.
func (g *Game) RoundID() uuid.UUID {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.round
}

// Grid returns the playfield dimensions.
func (g *Game) Grid() core.Grid { return g.grid }
