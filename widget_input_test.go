package gui_test

import (
	"testing"

	gui "github.com/go-theft-auto/gui-examples"
)

// focusedField draws a force-focused field for one frame so later frames
// deliver keys to it.
func focusedField(ui *gui.GUI, input *gui.InputState, value *string) {
	runFrame(ui, input, func(ctx *gui.Context) {
		ctx.InputText("##field", value, gui.ForceFocus())
	})
}

func typeRunes(input *gui.InputState, s string) {
	for _, r := range s {
		input.AddInputChar(r)
	}
}

func press(input *gui.InputState, key gui.Key) {
	input.SetKey(key, true)
}

func TestInputTextForceFocusThenType(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	text := ""

	// Characters arriving with the focusing frame are not inserted.
	typeRunes(input, "x")
	focusedField(ui, input, &text)
	if text != "" {
		t.Errorf("text after focusing frame = %q, want empty", text)
	}

	typeRunes(input, "hello")
	var changed, capture bool
	runFrame(ui, input, func(ctx *gui.Context) {
		changed = ctx.InputText("##field", &text, gui.ForceFocus())
		capture = ctx.WantCaptureKeyboard
	})
	if text != "hello" || !changed {
		t.Errorf("text = %q changed=%v, want %q true", text, changed, "hello")
	}
	if !capture {
		t.Error("focused field should capture the keyboard")
	}
}

func TestInputTextUnfocusedIgnoresChars(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	text := "keep"

	typeRunes(input, "abc")
	runFrame(ui, input, func(ctx *gui.Context) {
		if ctx.InputText("##field", &text) {
			t.Error("unfocused field reported a change")
		}
	})
	if text != "keep" {
		t.Errorf("text = %q, want %q", text, "keep")
	}
}

func TestInputTextClickFocus(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	text := ""

	// "Label" is 80px wide plus 4px spacing, so the box starts at x=84.
	input.SetMousePos(100, 10)
	input.SetMouseButton(gui.MouseButtonLeft, true)
	runFrame(ui, input, func(ctx *gui.Context) {
		ctx.InputText("Label", &text)
	})
	input.SetMouseButton(gui.MouseButtonLeft, false)

	typeRunes(input, "ok")
	runFrame(ui, input, func(ctx *gui.Context) {
		ctx.InputText("Label", &text)
	})
	if text != "ok" {
		t.Errorf("text = %q, want %q", text, "ok")
	}

	// A click elsewhere drops focus.
	input.SetMousePos(700, 500)
	input.SetMouseButton(gui.MouseButtonLeft, true)
	var focused bool
	runFrame(ui, input, func(ctx *gui.Context) {
		ctx.InputText("Label", &text)
		focused = ctx.HasWidgetFocus()
	})
	if focused {
		t.Error("click outside should clear focus")
	}
}

func TestInputTextLabelClickDoesNotFocus(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	text := ""

	input.SetMousePos(20, 10)
	input.SetMouseButton(gui.MouseButtonLeft, true)
	var focused bool
	runFrame(ui, input, func(ctx *gui.Context) {
		ctx.InputText("Label", &text)
		focused = ctx.HasWidgetFocus()
	})
	if focused {
		t.Error("click on the label should not focus the box")
	}
}

func TestInputTextBackspace(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	text := "abc"

	focusedField(ui, input, &text)
	press(input, gui.KeyBackspace)
	focusedField(ui, input, &text)
	if text != "ab" {
		t.Errorf("text = %q, want %q", text, "ab")
	}
}

func TestInputTextEnterReleasesFocus(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	text := ""

	runFrame(ui, input, func(ctx *gui.Context) {
		ctx.InputText("##field", &text, gui.ForceFocus())
	})
	press(input, gui.KeyEnter)
	var focused bool
	runFrame(ui, input, func(ctx *gui.Context) {
		ctx.InputText("##field", &text)
		focused = ctx.HasWidgetFocus()
	})
	if focused {
		t.Error("Enter should release focus")
	}
	input.SetKey(gui.KeyEnter, false)

	typeRunes(input, "z")
	runFrame(ui, input, func(ctx *gui.Context) {
		ctx.InputText("##field", &text)
	})
	if text != "" {
		t.Errorf("text after release = %q, want empty", text)
	}
}

func TestInputTextSelectAllBackspace(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	text := "hello world"

	focusedField(ui, input, &text)

	input.ModCtrl = true
	press(input, gui.KeyA)
	focusedField(ui, input, &text)
	input.ModCtrl = false
	input.SetKey(gui.KeyA, false)

	press(input, gui.KeyBackspace)
	focusedField(ui, input, &text)
	if text != "" {
		t.Errorf("text = %q, want empty", text)
	}
}

func TestInputTextUndo(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	text := "ab"

	focusedField(ui, input, &text)
	typeRunes(input, "c")
	focusedField(ui, input, &text)
	if text != "abc" {
		t.Fatalf("text = %q, want %q", text, "abc")
	}

	input.ModCtrl = true
	press(input, gui.KeyZ)
	focusedField(ui, input, &text)
	if text != "ab" {
		t.Errorf("after undo text = %q, want %q", text, "ab")
	}
}

func TestInputTextClipboard(t *testing.T) {
	clip := &gui.MemoryClipboard{}
	gui.SetClipboardProvider(clip)
	defer gui.SetClipboardProvider(nil)

	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	src := "copied"

	focusedField(ui, input, &src)
	input.ModCtrl = true
	press(input, gui.KeyA)
	focusedField(ui, input, &src)
	input.SetKey(gui.KeyA, false)
	press(input, gui.KeyC)
	focusedField(ui, input, &src)
	input.SetKey(gui.KeyC, false)
	input.ModCtrl = false

	if got := clip.GetText(); got != "copied" {
		t.Fatalf("clipboard = %q, want %q", got, "copied")
	}

	ui2 := gui.New(&mockRenderer{})
	input2 := gui.NewInputState()
	dst := "x"
	focusedField(ui2, input2, &dst)
	input2.ModCtrl = true
	press(input2, gui.KeyV)
	focusedField(ui2, input2, &dst)
	if dst != "xcopied" {
		t.Errorf("pasted text = %q, want %q", dst, "xcopied")
	}
}

func TestInputTextIMEPreeditAndCommit(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	text := ""

	focusedField(ui, input, &text)

	input.Apply(gui.IMEEvent{Phase: gui.IMEEnabled})
	input.Apply(gui.IMEEvent{Phase: gui.IMEPreedit, Text: "にほ", Cursor: -1})
	var caret gui.Vec2
	var caretSet bool
	runFrame(ui, input, func(ctx *gui.Context) {
		ctx.InputText("##field", &text, gui.ForceFocus())
		caret, caretSet = ctx.TextCursorPos()
	})
	if text != "" {
		t.Errorf("preedit must not change the text, got %q", text)
	}
	// Box at (0,0): text starts after 4px padding, box is 16+8 high.
	if !caretSet || caret != (gui.Vec2{X: 4, Y: 24}) {
		t.Errorf("text cursor = %+v set=%v, want {4 24} true", caret, caretSet)
	}

	input.Apply(gui.IMEEvent{Phase: gui.IMECommit, Text: "日本"})
	focusedField(ui, input, &text)
	if text != "日本" {
		t.Errorf("text after commit = %q, want %q", text, "日本")
	}
	if input.Preedit != "" {
		t.Errorf("preedit after commit = %q, want empty", input.Preedit)
	}
}

func TestInputTextPreeditCursorIsRuneIndex(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	text := ""

	focusedField(ui, input, &text)

	input.Apply(gui.IMEEvent{Phase: gui.IMEEnabled})
	input.Apply(gui.IMEEvent{Phase: gui.IMEPreedit, Text: "にほん", Cursor: 2})
	var caret, want gui.Vec2
	runFrame(ui, input, func(ctx *gui.Context) {
		ctx.InputText("##field", &text, gui.ForceFocus())
		caret, _ = ctx.TextCursorPos()
		want = gui.Vec2{X: 4 + ctx.MeasureText("にほ").X, Y: 24}
	})
	if caret != want {
		t.Errorf("caret inside preedit = %+v, want %+v", caret, want)
	}
}

func TestInputTextNoCaretWhenUnfocused(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	text := "abc"

	runFrame(ui, input, func(ctx *gui.Context) {
		ctx.InputText("##field", &text)
		if _, ok := ctx.TextCursorPos(); ok {
			t.Error("unfocused field should not report a text cursor")
		}
	})
}
