package triangle

import (
	"fmt"
	"log/slog"
)

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
	KeyEnter
	KeyEscape
	KeyQ
	KeyF1
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyNone:   "None",
	KeyTab:    "Tab",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeySpace:  "Space",
	KeyEnter:  "Enter",
	KeyEscape: "Escape",
	KeyQ:      "Q",
	KeyF1:     "F1",
}

func (k Key) String() string {
	if k >= 0 && k < KeyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Action is what happened to a key.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

func (a Action) String() string {
	switch a {
	case Release:
		return "Release"
	case Press:
		return "Press"
	case Repeat:
		return "Repeat"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// ModifierKey is a bit set of held modifiers.
type ModifierKey int

const (
	ModShift ModifierKey = 1 << iota
	ModControl
	ModAlt
	ModSuper
)

// KeyEvent is one key transition delivered by the window.
// Scancode is platform specific and only useful for logging.
type KeyEvent struct {
	Key      Key
	Scancode int
	Action   Action
	Mods     ModifierKey
}

// IsPress reports whether e is a press of k.
func (e KeyEvent) IsPress(k Key) bool {
	return e.Key == k && e.Action == Press
}

// LogValue implements slog.LogValuer.
func (e KeyEvent) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("key", e.Key.String()),
		slog.Int("scancode", e.Scancode),
		slog.String("action", e.Action.String()),
		slog.Int("mods", int(e.Mods)),
	)
}
