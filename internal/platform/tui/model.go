package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// inputBuffer is how many key presses may queue between two engine frames.
const inputBuffer = 64

// Options configures the terminal front end.
type Options struct {
	ScreenshotDir  string // Empty uses DefaultScreenshotDir
	Logger         *log.Logger
	ProgramOptions []tea.ProgramOption // Appended after the defaults
}

// Model is the Bubble Tea model that displays engine snapshots and feeds
// key presses back to the engine.
type Model struct {
	keys   *KeyMapper
	help   help.Model
	ctrl   *ChannelController
	screen *core.Screen
	logger *log.Logger

	snap     game.Snapshot
	haveSnap bool
	stats    game.Stats
	prompt   *promptMsg

	width, height int
	status        string
	statusSeq     int
	shotDir       string
	now           func() time.Time
	quitting      bool
}

// NewModel creates a model for the given grid.
func NewModel(grid core.Grid, ctrl *ChannelController, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dir := opts.ScreenshotDir
	if dir == "" {
		dir = DefaultScreenshotDir()
	}
	w, h := BoardSize(grid)
	return Model{
		keys:    NewKeyMapper(DefaultKeyMap()),
		help:    help.New(),
		ctrl:    ctrl,
		screen:  core.NewScreen(w, h),
		logger:  logger,
		shotDir: dir,
		now:     time.Now,
	}
}

// Init implements tea.Model. The engine drives updates, so there is nothing to start.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width

	case frameMsg:
		m.snap = game.Snapshot(msg)
		m.haveSnap = true

	case statsMsg:
		m.stats = game.Stats(msg)

	case promptMsg:
		m.prompt = &msg

	case clearStatusMsg:
		if int(msg) == m.statusSeq {
			m.status = ""
		}
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt != nil {
		if replay, ok := m.keys.MapPromptKey(msg); ok {
			m.prompt.reply <- replay
			m.prompt = nil
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Keys().Screenshot) {
		return m.saveScreenshot()
	}

	ev := m.keys.MapKey(msg)
	switch ev.Kind {
	case core.EventQuit:
		m.ctrl.Push(ev)
		m.quitting = true
		return m, tea.Quit
	case core.EventDirection:
		m.ctrl.Push(ev)
	}
	return m, nil
}

// saveScreenshot writes the current board to disk and shows the result.
func (m Model) saveScreenshot() (tea.Model, tea.Cmd) {
	if !m.haveSnap {
		return m, nil
	}
	DrawBoard(m.screen, m.snap, m.stats)
	base, err := SaveScreenshot(m.shotDir, m.screen, m.snap, m.now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		m.status = "screenshot failed: " + err.Error()
	} else {
		m.logger.Info("screenshot saved", "path", base)
		m.status = "saved " + base + ".{txt,png}"
	}
	m.statusSeq++
	return m, clearStatusCmd(m.statusSeq)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.haveSnap {
		return "Starting..."
	}

	bw, bh := BoardSize(m.snap.Grid)
	if m.width > 0 && (m.width < bw || m.height < bh+1) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", bw, bh+1, m.width, m.height)
	}

	DrawBoard(m.screen, m.snap, m.stats)
	footer := m.help.ShortHelpView(m.keys.Keys().ShortHelp())
	if m.prompt != nil {
		DrawPrompt(m.screen, m.prompt.score)
		footer = m.help.ShortHelpView(m.keys.Keys().PromptHelp())
	}
	if m.status != "" {
		footer = m.status
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the engine and the Bubble Tea program and blocks until both
// have finished. Whichever side ends first brings the other down.
func Run(ctx context.Context, g *game.Game, engineOpts game.Options, opts Options) error {
	ctrl := NewChannelController(inputBuffer)
	model := NewModel(g.Grid(), ctrl, opts)

	progOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, opts.ProgramOptions...)
	p := tea.NewProgram(model, progOpts...)

	done := make(chan struct{})
	engine := game.NewEngine(g, programPrompter{p: p, done: done}, engineOpts, opts.Logger)

	var grp errgroup.Group
	grp.Go(func() error {
		defer p.Quit()
		return engine.Run(ctx, ctrl, programRenderer{p: p})
	})

	_, err := p.Run()
	close(done)
	engine.Stop()
	if werr := grp.Wait(); err == nil {
		err = werr
	}
	if n := ctrl.Dropped(); n > 0 {
		model.logger.Warn("input events dropped", "count", n)
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		// Cancelled from outside, e.g. by a signal.
		return nil
	}
	return err
}
