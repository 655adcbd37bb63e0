package core

// EventKind classifies an input event.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventDirection
)

// Event is a discrete input produced by a controller.
// Dir is only meaningful for EventDirection.
type Event struct {
	Kind EventKind
	Dir  Direction
}

// QuitEvent returns a quit request.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}

// DirectionEvent returns a direction key press.
func DirectionEvent(d Direction) Event {
	return Event{Kind: EventDirection, Dir: d}
}

func (e Event) String() string {
	switch e.Kind {
	case EventQuit:
		return "quit"
	case EventDirection:
		return "dir:" + e.Dir.String()
	default:
		return "none"
	}
}
