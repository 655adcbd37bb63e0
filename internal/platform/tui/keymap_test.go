package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Event
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.DirectionEvent(core.DirUp)},
		{"w", runeKey("w"), core.DirectionEvent(core.DirUp)},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.DirectionEvent(core.DirDown)},
		{"s", runeKey("s"), core.DirectionEvent(core.DirDown)},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.DirectionEvent(core.DirLeft)},
		{"h", runeKey("h"), core.DirectionEvent(core.DirLeft)},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.DirectionEvent(core.DirRight)},
		{"d", runeKey("d"), core.DirectionEvent(core.DirRight)},
		{"q", runeKey("q"), core.QuitEvent()},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.QuitEvent()},
		{"unbound", runeKey("x"), core.Event{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapPromptKey(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		wantReplay bool
		wantOK     bool
	}{
		{"y", runeKey("y"), true, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, true, true},
		{"n", runeKey("n"), false, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, false, true},
		{"q", runeKey("q"), false, true},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			replay, ok := km.MapPromptKey(tt.msg)
			if replay != tt.wantReplay || ok != tt.wantOK {
				t.Errorf("MapPromptKey(%q) = (%v, %v), expected (%v, %v)",
					tt.msg.String(), replay, ok, tt.wantReplay, tt.wantOK)
			}
		})
	}
}
