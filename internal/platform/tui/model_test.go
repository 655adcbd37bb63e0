package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

func newTestModel(t *testing.T) (Model, *ChannelController) {
	t.Helper()
	ctrl := NewChannelController(8)
	m := NewModel(testSnapshot().Grid, ctrl, Options{ScreenshotDir: t.TempDir()})
	m.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return m, ctrl
}

func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModelShowsFrames(t *testing.T) {
	m, _ := newTestModel(t)
	if v := m.View(); v != "Starting..." {
		t.Errorf("View() before first frame = %q", v)
	}

	m, _ = update(m, frameMsg(testSnapshot()))
	m, _ = update(m, statsMsg(game.Stats{Score: 1, FPS: 59}))
	v := m.View()
	if !strings.Contains(v, "Score: 1") || !strings.Contains(v, "FPS: 59") {
		t.Errorf("View() = %q, expected HUD", v)
	}
}

func TestModelForwardsDirections(t *testing.T) {
	m, ctrl := newTestModel(t)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyLeft})
	update(m, runeKey("x"))

	evs := ctrl.Poll()
	if len(evs) != 1 || evs[0] != core.DirectionEvent(core.DirLeft) {
		t.Errorf("Poll() = %v, expected a single left turn", evs)
	}
}

func TestModelQuit(t *testing.T) {
	m, ctrl := newTestModel(t)
	m, cmd := update(m, runeKey("q"))

	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key did not return tea.Quit")
	}
	if evs := ctrl.Poll(); len(evs) != 1 || evs[0].Kind != core.EventQuit {
		t.Errorf("Poll() = %v, expected quit event", evs)
	}
	if v := m.View(); v != "" {
		t.Errorf("View() after quit = %q, expected empty", v)
	}
}

func TestModelPrompt(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want bool
	}{
		{"replay", runeKey("y"), true},
		{"decline", runeKey("n"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ctrl := newTestModel(t)
			m, _ = update(m, frameMsg(testSnapshot()))

			reply := make(chan bool, 1)
			m, _ = update(m, promptMsg{score: 5, reply: reply})
			if v := m.View(); !strings.Contains(v, "GAME OVER") {
				t.Errorf("View() = %q, expected game-over overlay", v)
			}

			// Direction keys are swallowed while the prompt is open.
			m, _ = update(m, tea.KeyMsg{Type: tea.KeyUp})
			m, _ = update(m, tt.key)

			select {
			case got := <-reply:
				if got != tt.want {
					t.Errorf("reply = %v, expected %v", got, tt.want)
				}
			default:
				t.Fatal("prompt was not answered")
			}
			if m.prompt != nil {
				t.Error("prompt still open after answer")
			}
			if evs := ctrl.Poll(); len(evs) != 0 {
				t.Errorf("Poll() = %v, expected no events during prompt", evs)
			}
		})
	}
}

func TestModelTooSmall(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(m, frameMsg(testSnapshot()))
	m, _ = update(m, tea.WindowSizeMsg{Width: 5, Height: 3})

	if v := m.View(); !strings.HasPrefix(v, "Terminal too small") {
		t.Errorf("View() = %q, expected size warning", v)
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = update(m, frameMsg(testSnapshot()))
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlS})

	if !strings.HasPrefix(m.status, "saved ") {
		t.Fatalf("status = %q, expected saved message", m.status)
	}
	if cmd == nil {
		t.Fatal("screenshot returned no status timer")
	}

	m, _ = update(m, clearStatusMsg(m.statusSeq))
	if m.status != "" {
		t.Errorf("status = %q after expiry, expected empty", m.status)
	}
}
