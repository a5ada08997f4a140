package component

import (
	"fmt"
	"strings"
)

type InputKind uint8

const (
	InputUnknown InputKind = iota
	InputKeyDown
	InputKeyUp
	InputQuit
)

// InputEvent is a single raw transition from the platform. Repeat marks
// auto-repeat events generated while a key stays held.
type InputEvent struct {
	Kind      InputKind
	Direction Direction
	Repeat    bool
}

func KeyDown(d Direction) InputEvent {
	return InputEvent{Kind: InputKeyDown, Direction: d}
}

func KeyUp(d Direction) InputEvent {
	return InputEvent{Kind: InputKeyUp, Direction: d}
}

func Quit() InputEvent {
	return InputEvent{Kind: InputQuit}
}

func (e InputEvent) String() string {
	switch e.Kind {
	case InputKeyDown, InputKeyUp:
		s := "down:" + e.Direction.String()
		if e.Kind == InputKeyUp {
			s = "up:" + e.Direction.String()
		}
		if e.Repeat {
			s += ":repeat"
		}
		return s
	case InputQuit:
		return "quit"
	}
	return "unknown"
}

// ParseInputEvent reads the textual form used by input scripts:
// "down:<dir>", "up:<dir>", an optional ":repeat" suffix, or "quit".
func ParseInputEvent(s string) (InputEvent, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), ":")
	if len(parts) == 1 && parts[0] == "quit" {
		return Quit(), nil
	}
	if len(parts) < 2 || len(parts) > 3 {
		return InputEvent{}, fmt.Errorf("malformed input event %q", s)
	}

	var evt InputEvent
	switch parts[0] {
	case "down":
		evt.Kind = InputKeyDown
	case "up":
		evt.Kind = InputKeyUp
	default:
		return InputEvent{}, fmt.Errorf("unknown input kind %q", parts[0])
	}

	d, err := ParseDirection(parts[1])
	if err != nil {
		return InputEvent{}, err
	}
	evt.Direction = d

	if len(parts) == 3 {
		if parts[2] != "repeat" {
			return InputEvent{}, fmt.Errorf("unknown input flag %q", parts[2])
		}
		evt.Repeat = true
	}
	return evt, nil
}
