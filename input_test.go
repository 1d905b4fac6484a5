package gui_test

import (
	"testing"

	gui "github.com/go-theft-auto/gui-examples"
)

func TestInputApplyKeys(t *testing.T) {
	in := gui.NewInputState()

	in.Apply(gui.KeyEvent{Key: gui.KeyA, Action: gui.KeyPress, Mods: gui.ModifierCtrl})
	if !in.KeyPressed(gui.KeyA) || !in.KeyDown(gui.KeyA) {
		t.Error("press should mark key pressed and down")
	}
	if !in.ModCtrl || in.ModShift {
		t.Errorf("modifiers ctrl=%v shift=%v, want true false", in.ModCtrl, in.ModShift)
	}

	in.Reset()
	if in.KeyPressed(gui.KeyA) || !in.KeyDown(gui.KeyA) {
		t.Error("Reset should clear presses but keep held keys")
	}

	// Backend repeats do not re-press.
	in.Apply(gui.KeyEvent{Key: gui.KeyA, Action: gui.KeyRepeat, Mods: gui.ModifierCtrl})
	if in.KeyPressed(gui.KeyA) {
		t.Error("repeat event should not count as a press")
	}

	in.Apply(gui.KeyEvent{Key: gui.KeyA, Action: gui.KeyRelease})
	if in.KeyDown(gui.KeyA) || !in.KeyReleased(gui.KeyA) {
		t.Error("release should clear down and mark released")
	}
	if in.ModCtrl {
		t.Error("release without mods should clear ctrl")
	}
}

func TestInputApplyMouse(t *testing.T) {
	in := gui.NewInputState()

	in.Apply(gui.CursorMovedEvent{X: 10, Y: 20})
	if in.MouseX != 10 || in.MouseY != 20 {
		t.Errorf("mouse at (%v, %v), want (10, 20)", in.MouseX, in.MouseY)
	}

	in.Apply(gui.MouseButtonEvent{Button: gui.MouseButtonLeft, Pressed: true, X: 30, Y: 40})
	if !in.MouseClicked(gui.MouseButtonLeft) || in.MouseX != 30 {
		t.Error("button press should click at the event position")
	}

	in.Apply(gui.ScrollEvent{DY: 1})
	in.Apply(gui.ScrollEvent{DY: 2})
	if in.MouseWheelY != 3 {
		t.Errorf("wheel = %v, want accumulated 3", in.MouseWheelY)
	}
	in.Reset()
	if in.MouseWheelY != 0 || in.MouseClicked(gui.MouseButtonLeft) || !in.MouseDown(gui.MouseButtonLeft) {
		t.Error("Reset should clear wheel and clicks but keep held buttons")
	}
}

func TestInputFocusLossReleasesEverything(t *testing.T) {
	in := gui.NewInputState()
	in.Apply(gui.KeyEvent{Key: gui.KeyLeftShift, Action: gui.KeyPress, Mods: gui.ModifierShift})
	in.Apply(gui.MouseButtonEvent{Button: gui.MouseButtonRight, Pressed: true})

	in.Apply(gui.FocusEvent{Focused: false})
	if in.KeyDown(gui.KeyLeftShift) || in.MouseDown(gui.MouseButtonRight) || in.ModShift {
		t.Error("losing focus should release keys, buttons and modifiers")
	}
}

func TestInputApplyChars(t *testing.T) {
	in := gui.NewInputState()
	in.Apply(gui.CharEvent{Rune: 'h'})
	in.Apply(gui.CharEvent{Rune: 'i'})
	if string(in.InputChars) != "hi" {
		t.Errorf("chars = %q, want %q", string(in.InputChars), "hi")
	}
	in.ConsumeInputChars()
	if in.HasInputChars() {
		t.Error("ConsumeInputChars should drop chars")
	}
}

func TestInputApplyIME(t *testing.T) {
	in := gui.NewInputState()

	in.Apply(gui.IMEEvent{Phase: gui.IMEEnabled})
	if !in.IMEActive {
		t.Error("Enabled should activate the IME")
	}

	in.Apply(gui.IMEEvent{Phase: gui.IMEPreedit, Text: "かん", Cursor: 2})
	if in.Preedit != "かん" || in.PreeditCursor != 2 {
		t.Errorf("preedit = %q cursor %d", in.Preedit, in.PreeditCursor)
	}
	in.Reset()
	if in.Preedit != "かん" {
		t.Error("preedit should survive Reset")
	}

	in.Apply(gui.IMEEvent{Phase: gui.IMECommit, Text: "漢"})
	if string(in.InputChars) != "漢" || in.Preedit != "" || in.PreeditCursor != -1 {
		t.Errorf("after commit chars=%q preedit=%q cursor=%d", string(in.InputChars), in.Preedit, in.PreeditCursor)
	}

	in.Apply(gui.IMEEvent{Phase: gui.IMEPreedit, Text: "x", Cursor: -1})
	in.Apply(gui.IMEEvent{Phase: gui.IMEDisabled})
	if in.IMEActive || in.Preedit != "" {
		t.Error("Disabled should clear the IME state")
	}
}

func TestKeyRepeated(t *testing.T) {
	in := gui.NewInputState()
	in.SetKey(gui.KeyBackspace, true)
	if !in.KeyRepeated(gui.KeyBackspace) {
		t.Error("initial press should repeat")
	}
	in.Reset()

	in.UpdateKeyRepeat(0.2)
	if in.KeyRepeated(gui.KeyBackspace) {
		t.Error("no repeat before the delay")
	}

	// 0.2s held so far; 20 more frames cross the 0.4s delay.
	fired := false
	for range 20 {
		in.UpdateKeyRepeat(0.016)
		fired = fired || in.KeyRepeated(gui.KeyBackspace)
	}
	if !fired {
		t.Error("held key should repeat after the delay")
	}
}

func TestKeyNames(t *testing.T) {
	tests := map[gui.Key]string{
		gui.KeyA:         "A",
		gui.KeyZ:         "Z",
		gui.Key5:         "Key5",
		gui.KeyF12:       "F12",
		gui.KeyKeypad0:   "Numpad0",
		gui.KeyLeftShift: "LShift",
		gui.KeyEnter:     "Enter",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Key(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}
