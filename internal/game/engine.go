package game

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Options configures engine scheduling.
type Options struct {
	TickInterval time.Duration    // Simulation period
	FrameBudget  time.Duration    // Target render frame duration
	Clock        func() time.Time // Frame clock; nil uses time.Now
}

// OptionsFromRuntime converts the runtime tick and frame rates in Hz to periods.
// Non-positive rates leave the period zero, which NewEngine replaces with 60 Hz.
func OptionsFromRuntime(rt core.RuntimeConfig) Options {
	var opts Options
	if rt.TickRate > 0 {
		opts.TickInterval = time.Second / time.Duration(rt.TickRate)
	}
	if rt.FrameRate > 0 {
		opts.FrameBudget = time.Second / time.Duration(rt.FrameRate)
	}
	return opts
}

// Engine runs a Game on two goroutines: a tick task that advances the
// simulation on its own period, and a frame task that polls input and
// renders at the frame rate. A death hands off to a short-lived
// end-of-round task; ticking resumes only after its decision is applied.
type Engine struct {
	game     *Game
	prompter Prompter
	opts     Options
	logger   *log.Logger

	running atomic.Bool
	mu      sync.Mutex
	stopped bool // set by Stop, checked by Run under mu
	cancel  context.CancelFunc
	prompts sync.WaitGroup
}

// NewEngine creates an engine. A nil logger discards output.
func NewEngine(g *Game, prompter Prompter, opts Options, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second / 60
	}
	if opts.FrameBudget <= 0 {
		opts.FrameBudget = time.Second / 60
	}
	return &Engine{
		game:     g,
		prompter: prompter,
		opts:     opts,
		logger:   logger,
	}
}

// Run blocks until the player quits, a prompt declines or fails, Stop is
// called, or ctx is done. No goroutine started by Run outlives it, and the
// game is terminated on return. Run must be called at most once; if Stop
// was already called it returns immediately.
func (e *Engine) Run(ctx context.Context, ctrl Controller, r Renderer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	e.mu.Lock()
	if e.stopped {
		e.mu.Unlock()
		e.game.Terminate()
		e.logger.Info("engine stopped before start")
		return nil
	}
	e.cancel = cancel
	e.running.Store(true)
	e.mu.Unlock()

	defer func() {
		e.Stop()
		e.prompts.Wait()
		e.game.Terminate()
		e.logger.Info("engine stopped", "round", e.game.RoundID(), "score", e.game.Score())
	}()

	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error { return e.tickLoop(gctx) })
	grp.Go(func() error { return e.frameLoop(gctx, ctrl, r) })
	return grp.Wait()
}

// Stop clears the running flag and wakes every task. Safe to call from any
// goroutine, any number of times, including before Run.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.stopped = true
	e.running.Store(false)
	cancel := e.cancel
	e.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Running reports whether Run is active and no stop was requested.
func (e *Engine) Running() bool {
	return e.running.Load()
}

func (e *Engine) tickLoop(ctx context.Context) error {
	ticker := time.NewTicker(e.opts.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if !e.running.Load() {
			return nil
		}
		if !e.game.Tick() {
			continue
		}

		replay, decided := e.awaitDecision(ctx, e.game.Score())
		switch {
		case !decided:
			e.logger.Info("round decision interrupted", "round", e.game.RoundID())
			return nil
		case !replay:
			e.logger.Info("player quit", "round", e.game.RoundID())
			e.Stop()
			return nil
		}
		e.game.Reset()
		ticker.Reset(e.opts.TickInterval)
	}
}

// awaitDecision runs the prompt on its own goroutine and waits for the answer
// or cancellation. The goroutine is joined before returning. decided is false
// when the engine was stopped or cancelled before an answer was applied.
func (e *Engine) awaitDecision(ctx context.Context, score int) (replay, decided bool) {
	decision := make(chan bool, 1)
	e.prompts.Add(1)
	go func() {
		defer e.prompts.Done()
		replay, err := e.prompter.Prompt(ctx, score)
		if err != nil {
			e.logger.Warn("end-of-round prompt failed, quitting", "error", err)
			replay = false
		}
		decision <- replay
	}()

	select {
	case replay = <-decision:
		decided = true
	case <-ctx.Done():
	}
	e.prompts.Wait()
	if !decided || !e.running.Load() || ctx.Err() != nil {
		return false, false
	}
	e.logger.Info("round decision", "replay", replay, "score", score)
	return replay, true
}

func (e *Engine) frameLoop(ctx context.Context, ctrl Controller, r Renderer) error {
	pacer := NewFramePacer(e.opts.FrameBudget, e.opts.Clock)
	idle := time.NewTimer(0)
	defer idle.Stop()

	for e.running.Load() {
		pacer.Begin()
		for _, ev := range ctrl.Poll() {
			if e.game.HandleEvent(ev) {
				e.logger.Info("quit requested", "phase", e.game.Phase())
				e.Stop()
				return nil
			}
		}
		snap := e.game.Snapshot()
		r.Render(snap)
		if pacer.End() {
			r.RenderStats(Stats{Score: snap.Score, FPS: pacer.FPS()})
		}

		idle.Reset(pacer.Remaining())
		select {
		case <-ctx.Done():
			return nil
		case <-idle.C:
		}
	}
	return nil
}
