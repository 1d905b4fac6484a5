package gui_test

import (
	"errors"
	"testing"

	gui "github.com/go-theft-auto/gui-examples"
)

func TestEventStrings(t *testing.T) {
	tests := []struct {
		name string
		ev   gui.Event
		want string
	}{
		{
			"key press",
			gui.KeyEvent{Key: gui.KeyA, Action: gui.KeyPress, Scancode: 30},
			"KeyboardInput { key: A, action: Pressed, mods: (empty), scancode: 30 }",
		},
		{
			"key with modifiers",
			gui.KeyEvent{Key: gui.KeyA, Action: gui.KeyRelease, Mods: gui.ModifierShift | gui.ModifierCtrl, Scancode: 30},
			"KeyboardInput { key: A, action: Released, mods: SHIFT | CTRL, scancode: 30 }",
		},
		{"char", gui.CharEvent{Rune: 'a'}, "ReceivedCharacter('a')"},
		{"ime enabled", gui.IMEEvent{Phase: gui.IMEEnabled}, "Ime(Enabled)"},
		{"ime preedit", gui.IMEEvent{Phase: gui.IMEPreedit, Text: "ka", Cursor: -1}, `Ime(Preedit("ka", None))`},
		{"ime preedit cursor", gui.IMEEvent{Phase: gui.IMEPreedit, Text: "ka", Cursor: 2}, `Ime(Preedit("ka", Some((2, 2))))`},
		{"ime commit", gui.IMEEvent{Phase: gui.IMECommit, Text: "か"}, `Ime(Commit("か"))`},
		{"ime disabled", gui.IMEEvent{Phase: gui.IMEDisabled}, "Ime(Disabled)"},
		{"resize", gui.ResizeEvent{Width: 1280, Height: 720}, "Resized(1280x720)"},
		{"focus", gui.FocusEvent{Focused: false}, "Focused(false)"},
		{"close", gui.CloseEvent{}, "CloseRequested"},
		{"scroll", gui.ScrollEvent{DX: 0, DY: -1.5}, "MouseWheel { delta: LineDelta(0, -1.5) }"},
		{"cursor", gui.CursorMovedEvent{X: 10, Y: 20.5}, "CursorMoved { position: (10, 20.5) }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEventKinds(t *testing.T) {
	tests := []struct {
		ev   gui.Event
		want gui.EventKind
	}{
		{gui.KeyEvent{}, gui.EventKey},
		{gui.CharEvent{}, gui.EventChar},
		{gui.IMEEvent{}, gui.EventIME},
		{gui.MouseButtonEvent{}, gui.EventMouseButton},
		{gui.CursorMovedEvent{}, gui.EventCursorMoved},
		{gui.ScrollEvent{}, gui.EventScroll},
		{gui.ResizeEvent{}, gui.EventResize},
		{gui.FocusEvent{}, gui.EventFocus},
		{gui.CloseEvent{}, gui.EventClose},
	}
	for _, tt := range tests {
		if got := tt.ev.Kind(); got != tt.want {
			t.Errorf("%T.Kind() = %v, want %v", tt.ev, got, tt.want)
		}
	}
}

func TestParseEventKindSet(t *testing.T) {
	set, err := gui.ParseEventKindSet([]string{"key", " CHAR ", "ime"})
	if err != nil {
		t.Fatalf("ParseEventKindSet: %v", err)
	}
	if set != gui.KeyboardEventKinds() {
		t.Errorf("set = %v, want %v", set, gui.KeyboardEventKinds())
	}
	if set.String() != "[key char ime]" {
		t.Errorf("String() = %q", set.String())
	}
	if set.Has(gui.EventMouseButton) {
		t.Error("keyboard set should not contain mouse events")
	}

	all, err := gui.ParseEventKindSet([]string{"All"})
	if err != nil {
		t.Fatalf("ParseEventKindSet(all): %v", err)
	}
	if all != gui.AllEventKinds() || all.String() != "[all]" {
		t.Errorf("all = %v", all)
	}
	for _, k := range []gui.EventKind{gui.EventKey, gui.EventResize, gui.EventClose} {
		if !all.Has(k) {
			t.Errorf("all should contain %v", k)
		}
	}

	if _, err := gui.ParseEventKindSet([]string{"key", "joystick"}); !errors.Is(err, gui.ErrUnknownEventKind) {
		t.Errorf("unknown kind error = %v, want ErrUnknownEventKind", err)
	}
}

func TestEmptyEventKindSet(t *testing.T) {
	set, err := gui.ParseEventKindSet(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Kinds()) != 0 || set.String() != "[]" {
		t.Errorf("empty set = %v", set)
	}
}
