package game

import (
	"context"
	"errors"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrPromptClosed is returned by a Prompter whose display went away before
// the player answered.
var ErrPromptClosed = errors.New("prompt closed")

// Controller produces input events. Poll must not block.
type Controller interface {
	Poll() []core.Event
}

// Renderer consumes snapshots once per frame and stats once per second.
// Both calls are expected to return quickly.
type Renderer interface {
	Render(Snapshot)
	RenderStats(Stats)
}

// Prompter asks whether to play another round after a death.
// Prompt blocks until the player answers or ctx is done. An error means "quit".
type Prompter interface {
	Prompt(ctx context.Context, score int) (bool, error)
}

// PrompterFunc adapts a function to Prompter.
type PrompterFunc func(ctx context.Context, score int) (bool, error)

// Prompt calls f.
func (f PrompterFunc) Prompt(ctx context.Context, score int) (bool, error) {
	return f(ctx, score)
}
