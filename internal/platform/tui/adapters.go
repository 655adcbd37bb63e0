package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// frameMsg carries a snapshot from the engine's frame task.
type frameMsg game.Snapshot

// statsMsg carries the once-per-second HUD payload.
type statsMsg game.Stats

// promptMsg asks the model to show the game-over overlay. The answer is
// sent on reply, which is buffered so the model never blocks.
type promptMsg struct {
	score int
	reply chan<- bool
}

// sender is the part of *tea.Program the adapters need.
type sender interface {
	Send(msg tea.Msg)
}

// ChannelController buffers input events from the Bubble Tea loop until the
// engine polls them.
type ChannelController struct {
	events chan core.Event

	mu      sync.Mutex
	dropped int
}

// NewChannelController creates a controller holding up to size pending events.
func NewChannelController(size int) *ChannelController {
	return &ChannelController{events: make(chan core.Event, size)}
}

// Push queues an event without blocking. Events beyond the buffer are dropped
// and counted; it returns false in that case.
func (c *ChannelController) Push(ev core.Event) bool {
	select {
	case c.events <- ev:
		return true
	default:
		c.mu.Lock()
		c.dropped++
		c.mu.Unlock()
		return false
	}
}

// Poll drains every queued event.
func (c *ChannelController) Poll() []core.Event {
	var evs []core.Event
	for {
		select {
		case ev := <-c.events:
			evs = append(evs, ev)
		default:
			return evs
		}
	}
}

// Dropped returns how many events were discarded on a full buffer.
func (c *ChannelController) Dropped() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped
}

// programRenderer forwards engine output to the Bubble Tea program.
type programRenderer struct {
	p sender
}

func (r programRenderer) Render(s game.Snapshot) {
	r.p.Send(frameMsg(s))
}

func (r programRenderer) RenderStats(s game.Stats) {
	r.p.Send(statsMsg(s))
}

// programPrompter shows the game-over overlay and waits for the answer.
type programPrompter struct {
	p    sender
	done <-chan struct{} // closed when the program has exited
}

func (pp programPrompter) Prompt(ctx context.Context, score int) (bool, error) {
	select {
	case <-pp.done:
		return false, game.ErrPromptClosed
	default:
	}

	reply := make(chan bool, 1)
	pp.p.Send(promptMsg{score: score, reply: reply})

	select {
	case replay := <-reply:
		return replay, nil
	case <-ctx.Done():
		return false, ctx.Err()
	case <-pp.done:
		return false, game.ErrPromptClosed
	}
}
