package gui

// InputText draws a single-line text field bound to value and reports
// whether the text changed this frame.
//
// A click inside the field takes keyboard focus and a click elsewhere
// drops it. While focused the field accepts typed and IME-committed
// characters, shows the IME preedit at the caret, and supports selection,
// clipboard (Ctrl+C/X/V) and undo (Ctrl+Z, Ctrl+Shift+Z, Ctrl+Y).
// Enter and Escape release focus.
func (ctx *Context) InputText(label string, value *string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	state := GetState(ctx, id, InputTextState{
		CursorPos:      len([]rune(*value)),
		SelectionStart: -1,
		SelectionEnd:   -1,
	})

	// The key that moved focus here must not also edit the text.
	justFocused := false
	if GetOpt(o, OptForceFocus) && !ctx.IsFocused(id) {
		ctx.SetFocused(id)
		justFocused = true
	}

	x := pos.X
	if visible := visibleLabel(label); visible != "" {
		ctx.addText(x, pos.Y+ctx.style.InputPadding, visible, ctx.style.TextColor)
		x += ctx.MeasureText(visible).X + ctx.style.ItemSpacing
	}

	w := float32(200)
	if ow := GetOpt(o, OptWidth); ow > 0 {
		w = ow
	}
	h := ctx.lineHeight() + ctx.style.InputPadding*2
	rect := Rect{X: x, Y: pos.Y, W: w, H: h}

	runes := []rune(*value)
	state.CursorPos = min(max(state.CursorPos, 0), len(runes))

	textX := x + ctx.style.InputPadding
	textY := pos.Y + ctx.style.InputPadding

	if ctx.Input != nil && ctx.Input.MouseClicked(MouseButtonLeft) {
		if ctx.isClicked(id, rect) {
			if !ctx.IsFocused(id) {
				justFocused = true
			}
			ctx.SetFocused(id)
			state.CursorBlinkTime = 0
			state.CursorPos = caretFromX(ctx, runes, ctx.Input.MouseX-textX+state.ScrollOffset)
			state.ClearSelection()
		} else if ctx.IsFocused(id) {
			ctx.ClearFocus()
		}
	}

	editing := ctx.IsFocused(id)
	state.Editing = editing

	changed := false
	if editing && ctx.Input != nil {
		ctx.WantCaptureKeyboard = true
		if !justFocused {
			changed = ctx.processInputTextKeyboard(value, &state, &runes)
		}
		if !state.Editing {
			ctx.ClearFocus()
			editing = false
		}
	}

	bg := ctx.style.InputBgColor
	border := ctx.style.InputBorderColor
	if editing {
		bg = ctx.style.InputFocusedBgColor
		border = ctx.style.FocusColor
	}
	ctx.DrawList.AddRect(x, pos.Y, w, h, bg)
	ctx.DrawList.AddRectOutline(x, pos.Y, w, h, border, 1)

	maxWidth := w - ctx.style.InputPadding*2
	caretW := ctx.MeasureText(string(runes[:state.CursorPos])).X
	if caretW-state.ScrollOffset > maxWidth {
		state.ScrollOffset = caretW - maxWidth + 10
	}
	if caretW < state.ScrollOffset {
		state.ScrollOffset = caretW
	}
	state.ScrollOffset = maxf(state.ScrollOffset, 0)

	ctx.DrawList.PushClipRect(textX, pos.Y, textX+maxWidth, pos.Y+h)
	if editing && state.HasSelection() {
		s, e := state.GetSelectedRange()
		sx := ctx.MeasureText(string(runes[:s])).X - state.ScrollOffset
		ex := ctx.MeasureText(string(runes[:e])).X - state.ScrollOffset
		ctx.DrawList.AddRect(textX+sx, pos.Y+2, ex-sx, h-4, ctx.style.SelectedBgColor)
	}

	caretX := textX + caretW - state.ScrollOffset
	switch {
	case *value == "" && !editing:
		if hint := GetOpt(o, OptHint); hint != "" {
			ctx.addText(textX, textY, hint, ctx.style.TextDisabledColor)
		}
	case editing && ctx.Input != nil && ctx.Input.Preedit != "":
		// Composition text is shown inline at the caret, underlined, and
		// pushes the rest of the line right.
		before := string(runes[:state.CursorPos])
		after := string(runes[state.CursorPos:])
		pre := ctx.Input.Preedit
		preW := ctx.MeasureText(pre).X
		ctx.addText(textX-state.ScrollOffset, textY, before, ctx.style.TextColor)
		ctx.addText(caretX, textY, pre, ctx.style.PreeditColor)
		ctx.DrawList.AddLine(caretX, textY+ctx.lineHeight(), caretX+preW, textY+ctx.lineHeight(), ctx.style.PreeditColor, 1)
		ctx.addText(caretX+preW, textY, after, ctx.style.TextColor)
		if c := ctx.Input.PreeditCursor; c >= 0 && c <= len([]rune(pre)) {
			caretX += ctx.MeasureText(string([]rune(pre)[:c])).X
		}
	default:
		ctx.addText(textX-state.ScrollOffset, textY, *value, ctx.style.TextColor)
	}
	ctx.DrawList.PopClipRect()

	if editing {
		state.CursorBlinkTime += ctx.DeltaTime
		if int(state.CursorBlinkTime*2)%2 == 0 {
			ctx.DrawList.AddLine(caretX, pos.Y+2, caretX, pos.Y+h-2, ctx.style.TextColor, 1)
		}
		ctx.SetTextCursorPos(Vec2{X: caretX, Y: pos.Y + h})
	}

	SetState(ctx, id, state)
	ctx.advanceCursor(Vec2{x - pos.X + w, h})
	return changed
}

// visibleLabel strips an ImGui-style "##suffix" used only to make IDs unique.
func visibleLabel(label string) string {
	for i := 0; i+1 < len(label); i++ {
		if label[i] == '#' && label[i+1] == '#' {
			return label[:i]
		}
	}
	return label
}

func caretFromX(ctx *Context, runes []rune, x float32) int {
	pos := 0
	for i := 1; i <= len(runes); i++ {
		w := ctx.MeasureText(string(runes[:i])).X
		prev := ctx.MeasureText(string(runes[:i-1])).X
		if x < (prev+w)/2 {
			break
		}
		pos = i
	}
	return pos
}

// processInputTextKeyboard applies this frame's keys and characters to the
// field and reports whether the text changed. It clears state.Editing on
// Enter or Escape.
func (ctx *Context) processInputTextKeyboard(value *string, state *InputTextState, runes *[]rune) bool {
	in := ctx.Input
	textLen := len(*runes)
	changed := false

	set := func(s string) {
		*value = s
		*runes = []rune(s)
	}
	deleteSelection := func() bool {
		if !state.HasSelection() {
			return false
		}
		start, end := state.GetSelectedRange()
		state.PushUndo(*value)
		set(string((*runes)[:start]) + string((*runes)[end:]))
		state.CursorPos = start
		state.ClearSelection()
		return true
	}
	insert := func(rs []rune) {
		deleteSelection()
		state.PushUndo(*value)
		head := string((*runes)[:state.CursorPos])
		tail := string((*runes)[state.CursorPos:])
		set(head + string(rs) + tail)
		state.CursorPos += len(rs)
	}
	restore := func(s string, ok bool) bool {
		if !ok {
			return false
		}
		set(s)
		state.CursorPos = len(*runes)
		state.ClearSelection()
		return true
	}

	if in.ModCtrl {
		switch {
		case in.KeyPressed(KeyA):
			state.SelectAll(textLen)
			return false
		case in.KeyPressed(KeyC):
			if state.HasSelection() {
				s, e := state.GetSelectedRange()
				ClipboardSetText(string((*runes)[s:e]))
			}
			return false
		case in.KeyPressed(KeyX):
			if state.HasSelection() {
				s, e := state.GetSelectedRange()
				ClipboardSetText(string((*runes)[s:e]))
				return deleteSelection()
			}
			return false
		case in.KeyPressed(KeyV):
			if clip := ClipboardGetText(); clip != "" {
				insert([]rune(clip))
				return true
			}
			return false
		case in.KeyPressed(KeyZ) && in.ModShift, in.KeyPressed(KeyY):
			return restore(state.Redo())
		case in.KeyPressed(KeyZ):
			return restore(state.Undo(*value))
		}
	}

	// move puts the caret at to, extending the selection while Shift is held.
	move := func(to int) {
		from := state.CursorPos
		state.CursorPos = to
		if in.ModShift {
			if state.SelectionStart < 0 {
				state.SelectionStart = from
			}
			state.SelectionEnd = to
		} else {
			state.ClearSelection()
		}
		state.CursorBlinkTime = 0
	}

	if in.KeyRepeated(KeyLeft) {
		to := max(state.CursorPos-1, 0)
		if in.ModCtrl {
			to = findWordBoundaryLeft(*runes, state.CursorPos)
		}
		move(to)
	}
	if in.KeyRepeated(KeyRight) {
		to := min(state.CursorPos+1, textLen)
		if in.ModCtrl {
			to = findWordBoundaryRight(*runes, state.CursorPos)
		}
		move(to)
	}
	if in.KeyPressed(KeyHome) {
		move(0)
	}
	if in.KeyPressed(KeyEnd) {
		move(textLen)
	}

	if in.KeyRepeated(KeyBackspace) {
		switch {
		case deleteSelection():
			changed = true
		case state.CursorPos > 0:
			state.PushUndo(*value)
			set(string((*runes)[:state.CursorPos-1]) + string((*runes)[state.CursorPos:]))
			state.CursorPos--
			changed = true
		}
		state.CursorBlinkTime = 0
	}
	if in.KeyRepeated(KeyDelete) {
		switch {
		case deleteSelection():
			changed = true
		case state.CursorPos < len(*runes):
			state.PushUndo(*value)
			set(string((*runes)[:state.CursorPos]) + string((*runes)[state.CursorPos+1:]))
			changed = true
		}
		state.CursorBlinkTime = 0
	}

	if in.KeyPressed(KeyEscape) || in.KeyPressed(KeyEnter) || in.KeyPressed(KeyKeypadEnter) {
		state.Editing = false
		return changed
	}

	var typed []rune
	for _, ch := range in.InputChars {
		if ch >= 32 && ch != 127 {
			typed = append(typed, ch)
		}
	}
	if len(typed) > 0 {
		insert(typed)
		state.CursorBlinkTime = 0
		changed = true
	}
	return changed
}

func findWordBoundaryLeft(runes []rune, pos int) int {
	if pos <= 0 {
		return 0
	}
	pos--
	for pos > 0 && isWhitespace(runes[pos]) {
		pos--
	}
	for pos > 0 && !isWhitespace(runes[pos-1]) {
		pos--
	}
	return pos
}

func findWordBoundaryRight(runes []rune, pos int) int {
	n := len(runes)
	for pos < n && !isWhitespace(runes[pos]) {
		pos++
	}
	for pos < n && isWhitespace(runes[pos]) {
		pos++
	}
	return pos
}

func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
