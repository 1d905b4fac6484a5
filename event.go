package gui

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEventKind is returned when parsing an event kind name fails.
var ErrUnknownEventKind = errors.New("unknown event kind")

// EventKind classifies window events.
type EventKind uint8

const (
	EventKey EventKind = iota
	EventChar
	EventIME
	EventMouseButton
	EventCursorMoved
	EventScroll
	EventResize
	EventFocus
	EventClose
	eventKindCount
)

var eventKindNames = [eventKindCount]string{
	EventKey:         "key",
	EventChar:        "char",
	EventIME:         "ime",
	EventMouseButton: "mouse",
	EventCursorMoved: "cursor",
	EventScroll:      "scroll",
	EventResize:      "resize",
	EventFocus:       "focus",
	EventClose:       "close",
}

func (k EventKind) String() string {
	if k < eventKindCount {
		return eventKindNames[k]
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// ParseEventKind maps a config name such as "key" or "ime" to its kind.
func ParseEventKind(name string) (EventKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range eventKindNames {
		if n == name {
			return EventKind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEventKind, name)
}

// EventKindSet is a set of event kinds, used as an allow-list.
type EventKindSet uint16

// NewEventKindSet returns a set holding kinds.
func NewEventKindSet(kinds ...EventKind) EventKindSet {
	var s EventKindSet
	for _, k := range kinds {
		s = s.Add(k)
	}
	return s
}

// KeyboardEventKinds is the default allow-list: key, character and IME events.
func KeyboardEventKinds() EventKindSet {
	return NewEventKindSet(EventKey, EventChar, EventIME)
}

// AllEventKinds selects every event kind.
func AllEventKinds() EventKindSet {
	return EventKindSet(1<<eventKindCount - 1)
}

func (s EventKindSet) Has(k EventKind) bool {
	return k < eventKindCount && s&(1<<k) != 0
}

// Add returns s with k included.
func (s EventKindSet) Add(k EventKind) EventKindSet {
	if k >= eventKindCount {
		return s
	}
	return s | 1<<k
}

// Kinds lists the members in declaration order.
func (s EventKindSet) Kinds() []EventKind {
	var out []EventKind
	for k := EventKind(0); k < eventKindCount; k++ {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

func (s EventKindSet) String() string {
	if s == AllEventKinds() {
		return "[all]"
	}
	kinds := s.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return "[" + strings.Join(names, " ") + "]"
}

// ParseEventKindSet parses a list of kind names. The name "all" selects every kind.
func ParseEventKindSet(names []string) (EventKindSet, error) {
	var s EventKindSet
	for _, n := range names {
		if strings.EqualFold(strings.TrimSpace(n), "all") {
			s |= AllEventKinds()
			continue
		}
		k, err := ParseEventKind(n)
		if err != nil {
			return 0, err
		}
		s = s.Add(k)
	}
	return s, nil
}

// Event is one window event delivered by a backend.
// String renders the event deterministically for display in debug logs.
type Event interface {
	Kind() EventKind
	String() string
}

// KeyAction distinguishes press, release and auto-repeat.
type KeyAction uint8

const (
	KeyPress KeyAction = iota
	KeyRelease
	KeyRepeat
)

func (a KeyAction) String() string {
	switch a {
	case KeyPress:
		return "Pressed"
	case KeyRelease:
		return "Released"
	case KeyRepeat:
		return "Repeated"
	}
	return fmt.Sprintf("KeyAction(%d)", uint8(a))
}

// Modifiers is a bitmask of held modifier keys.
type Modifiers uint8

const (
	ModifierShift Modifiers = 1 << iota
	ModifierCtrl
	ModifierAlt
	ModifierSuper
)

func (m Modifiers) String() string {
	if m == 0 {
		return "(empty)"
	}
	var parts []string
	if m&ModifierShift != 0 {
		parts = append(parts, "SHIFT")
	}
	if m&ModifierCtrl != 0 {
		parts = append(parts, "CTRL")
	}
	if m&ModifierAlt != 0 {
		parts = append(parts, "ALT")
	}
	if m&ModifierSuper != 0 {
		parts = append(parts, "SUPER")
	}
	return strings.Join(parts, " | ")
}

// KeyEvent reports a physical key transition.
type KeyEvent struct {
	Key      Key
	Action   KeyAction
	Mods     Modifiers
	Scancode int
}

func (KeyEvent) Kind() EventKind { return EventKey }

func (e KeyEvent) String() string {
	return fmt.Sprintf("KeyboardInput { key: %s, action: %s, mods: %s, scancode: %d }",
		e.Key, e.Action, e.Mods, e.Scancode)
}

// CharEvent reports one typed Unicode character.
type CharEvent struct {
	Rune rune
}

func (CharEvent) Kind() EventKind { return EventChar }

func (e CharEvent) String() string {
	return fmt.Sprintf("ReceivedCharacter(%q)", e.Rune)
}

// IMEPhase is the stage of an input method composition.
type IMEPhase uint8

const (
	IMEEnabled IMEPhase = iota
	IMEPreedit
	IMECommit
	IMEDisabled
)

// IMEEvent reports input method composition. Cursor is the rune index of the
// caret inside a Preedit text, or -1 when the IME reports none.
type IMEEvent struct {
	Phase  IMEPhase
	Text   string
	Cursor int
}

func (IMEEvent) Kind() EventKind { return EventIME }

func (e IMEEvent) String() string {
	switch e.Phase {
	case IMEEnabled:
		return "Ime(Enabled)"
	case IMEPreedit:
		if e.Cursor < 0 {
			return fmt.Sprintf("Ime(Preedit(%q, None))", e.Text)
		}
		return fmt.Sprintf("Ime(Preedit(%q, Some((%d, %d))))", e.Text, e.Cursor, e.Cursor)
	case IMECommit:
		return fmt.Sprintf("Ime(Commit(%q))", e.Text)
	case IMEDisabled:
		return "Ime(Disabled)"
	}
	return fmt.Sprintf("Ime(IMEPhase(%d))", uint8(e.Phase))
}

// MouseButtonEvent reports a button transition at the pointer position.
type MouseButtonEvent struct {
	Button  MouseButton
	Pressed bool
	X, Y    float32
}

func (MouseButtonEvent) Kind() EventKind { return EventMouseButton }

func (e MouseButtonEvent) String() string {
	state := "Released"
	if e.Pressed {
		state = "Pressed"
	}
	return fmt.Sprintf("MouseInput { button: %s, state: %s, position: (%g, %g) }",
		e.Button, state, e.X, e.Y)
}

// CursorMovedEvent reports a pointer move in logical pixels.
type CursorMovedEvent struct {
	X, Y float32
}

func (CursorMovedEvent) Kind() EventKind { return EventCursorMoved }

func (e CursorMovedEvent) String() string {
	return fmt.Sprintf("CursorMoved { position: (%g, %g) }", e.X, e.Y)
}

// ScrollEvent reports wheel motion in lines.
type ScrollEvent struct {
	DX, DY float32
}

func (ScrollEvent) Kind() EventKind { return EventScroll }

func (e ScrollEvent) String() string {
	return fmt.Sprintf("MouseWheel { delta: LineDelta(%g, %g) }", e.DX, e.DY)
}

// ResizeEvent reports the new framebuffer size.
type ResizeEvent struct {
	Width, Height int
}

func (ResizeEvent) Kind() EventKind { return EventResize }

func (e ResizeEvent) String() string {
	return fmt.Sprintf("Resized(%dx%d)", e.Width, e.Height)
}

// FocusEvent reports the window gaining or losing keyboard focus.
type FocusEvent struct {
	Focused bool
}

func (FocusEvent) Kind() EventKind { return EventFocus }

func (e FocusEvent) String() string {
	return fmt.Sprintf("Focused(%t)", e.Focused)
}

// CloseEvent reports that the user asked to close the window.
type CloseEvent struct{}

func (CloseEvent) Kind() EventKind { return EventClose }

func (CloseEvent) String() string { return "CloseRequested" }
