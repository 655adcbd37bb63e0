package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMap defines the key bindings for play and the game-over prompt.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Replay     key.Binding
	Decline    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Screenshot, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Replay, k.Decline, k.Screenshot, k.Quit},
	}
}

// PromptHelp returns the bindings shown on the game-over overlay.
func (k KeyMap) PromptHelp() []key.Binding {
	return []key.Binding{k.Replay, k.Decline}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Replay: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y/enter", "play again"),
		),
		Decline: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an input event.
// Keys that mean nothing during play map to an EventNone event.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Event {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.QuitEvent()
	case key.Matches(msg, km.keys.Up):
		return core.DirectionEvent(core.DirUp)
	case key.Matches(msg, km.keys.Down):
		return core.DirectionEvent(core.DirDown)
	case key.Matches(msg, km.keys.Left):
		return core.DirectionEvent(core.DirLeft)
	case key.Matches(msg, km.keys.Right):
		return core.DirectionEvent(core.DirRight)
	}
	return core.Event{}
}

// MapPromptKey translates a key on the game-over prompt to an answer.
// ok is false for keys that do not answer the prompt.
func (km *KeyMapper) MapPromptKey(msg tea.KeyMsg) (replay, ok bool) {
	switch {
	case key.Matches(msg, km.keys.Replay):
		return true, true
	case key.Matches(msg, km.keys.Decline), key.Matches(msg, km.keys.Quit):
		return false, true
	}
	return false, false
}
