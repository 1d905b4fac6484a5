/*
Package gui is a small immediate-mode GUI. The UI is rebuilt every frame:
widgets are plain method calls on a Context that draw into a DrawList and
return what happened (clicked, changed) directly.

# Frame loop

Hosts fold platform events into an InputState, then run one frame:

	input := gui.NewInputState()
	ui := gui.New(renderer, gui.WithStyle(gui.DarkStyle()))

	for running {
	    for _, ev := range pollEvents() {
	        input.Apply(ev)
	    }
	    ctx := ui.Begin(input, gui.Vec2{X: w, Y: h}, dt)
	    ctx.Window(func() {
	        ctx.HStack()(func() {
	            ctx.Text("please input here")
	            ctx.InputText("##input", &text)
	        })
	    })
	    if err := ui.End(); err != nil {
	        return err
	    }
	    input.Reset()
	}

The platform package wraps this loop for the bundled backends.

# Events

Every platform event is one of the Event variants (KeyEvent, CharEvent,
IMEEvent, MouseButtonEvent, ...). Each has a Kind, used by EventKindSet
filters, and a stable debug String:

	KeyboardInput { key: A, action: Pressed, mods: (empty), scancode: 30 }
	ReceivedCharacter('a')
	Ime(Preedit("ni", Some((2, 2))))

# Identity and state

Widget IDs hash the label, the enclosing PushID scopes and the call order,
so two buttons labelled "ok" in one scope stay distinct. Use WithID or a
"##suffix" label when a widget's position in the frame is not stable.

Widgets keep cross-frame state (caret, scroll offset, open headers) in
FrameStore values or the GUI's StateStore. Entries not touched for a frame
are dropped.

# Layout

VStack and HStack place items along one axis with a gap; Panel adds padding,
a background and an optional title; Window fills the display. Scrollable
clips to a viewport and, with StickToBottom, follows appended content.
Custom widgets call ItemPos, draw, then AdvanceCursor with their size.

# Text input

InputText takes keyboard focus on click (or ForceFocus) and supports:

	Left/Right        move one character (Ctrl: one word)
	Home/End          start/end of line
	Shift+movement    extend selection
	Ctrl+A            select all
	Ctrl+C/X/V        copy/cut/paste through the installed ClipboardProvider
	Ctrl+Z            undo
	Ctrl+Shift+Z/Y    redo
	Enter/Escape      release focus

While an input method is composing, the preedit text is drawn underlined at
the caret and TextCursorPos reports where hosts should place the candidate
window.

# Fonts

Without a FontProvider text uses the built-in 8x8 bitmap font scaled by
Style.FontScale. The fontatlas package provides a TrueType provider.
*/
package gui
