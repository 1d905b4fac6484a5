package gui

import "strings"

// widgetID derives a widget's ID from WithID if given, otherwise its label.
func (ctx *Context) widgetID(label string, o options) ID {
	if optID := GetOpt(o, OptID); optID != "" {
		return ctx.GetID(optID)
	}
	return ctx.GetID(label)
}

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.TextColor)
}

func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, color)
	ctx.advanceCursor(ctx.MeasureText(text))
}

func (ctx *Context) TextDisabled(text string) {
	ctx.TextColored(text, ctx.style.TextDisabledColor)
}

// TextLines draws newline-separated text as one item, one line per row.
func (ctx *Context) TextLines(text string) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	pos := ctx.ItemPos()
	lineH := ctx.lineHeight()
	var w float32
	for i, line := range lines {
		ctx.addText(pos.X, pos.Y+float32(i)*lineH, line, ctx.style.TextColor)
		w = maxf(w, ctx.MeasureText(line).X)
	}
	ctx.advanceCursor(Vec2{w, float32(len(lines)) * lineH})
}

// TextWrapped draws text word-wrapped to maxWidth (0 = layout width).
func (ctx *Context) TextWrapped(text string, maxWidth float32) {
	if maxWidth <= 0 {
		maxWidth = ctx.AvailableWidth()
	}
	lines := WrapText(ctx, text, maxWidth, WrapWord)
	if len(lines) == 0 {
		return
	}

	pos := ctx.ItemPos()
	lineH := ctx.lineHeight()
	for i, line := range lines {
		ctx.addText(pos.X, pos.Y+float32(i)*lineH, line, ctx.style.TextColor)
	}
	ctx.advanceCursor(Vec2{maxWidth, float32(len(lines)) * lineH})
}

// LabelText draws a label and value side by side.
func (ctx *Context) LabelText(label, value string) {
	ctx.HStack()(func() {
		ctx.TextDisabled(label)
		ctx.Text(value)
	})
}

// Button draws a button and reports whether it was clicked this frame.
func (ctx *Context) Button(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	text := visibleLabel(label)

	textSize := ctx.MeasureText(text)
	size := Vec2{
		X: textSize.X + ctx.style.ButtonPadding*2,
		Y: textSize.Y + ctx.style.ButtonPadding*2,
	}
	if w := GetOpt(o, OptWidth); w > 0 {
		size.X = w
	}
	if h := GetOpt(o, OptHeight); h > 0 {
		size.Y = h
	}
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	disabled := GetOpt(o, OptDisabled)
	bg := ctx.style.ButtonColor
	textColor := ctx.style.TextColor
	switch {
	case disabled:
		bg = ctx.style.ButtonDisabledColor
		textColor = ctx.style.TextDisabledColor
	case ctx.isPressed(id, rect):
		bg = ctx.style.ButtonActiveColor
	case ctx.isHovered(id, rect):
		bg = ctx.style.ButtonHoveredColor
	}

	ctx.DrawList.AddRect(pos.X, pos.Y, size.X, size.Y, bg)
	ctx.addText(pos.X+(size.X-textSize.X)/2, pos.Y+(size.Y-textSize.Y)/2, text, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)
	ctx.advanceCursor(size)
	return clicked
}

// SmallButton is a Button with minimal padding.
func (ctx *Context) SmallButton(label string, opts ...Option) bool {
	saved := ctx.style.ButtonPadding
	ctx.style.ButtonPadding = 2
	clicked := ctx.Button(label, opts...)
	ctx.style.ButtonPadding = saved
	return clicked
}

// Selectable draws a list row that highlights when selected or hovered.
func (ctx *Context) Selectable(label string, selected bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	text := visibleLabel(label)
	w := ctx.MeasureText(text).X + ctx.style.ItemSpacing*2
	if ow := GetOpt(o, OptWidth); ow > 0 {
		w = ow
	}
	h := ctx.lineHeight()
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	disabled := GetOpt(o, OptDisabled)
	textColor := ctx.style.TextColor
	switch {
	case disabled:
		textColor = ctx.style.TextDisabledColor
	case selected:
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.SelectedBgColor)
		ctx.DrawList.AddRect(pos.X, pos.Y, 3, h, ctx.style.FocusColor)
		textColor = ctx.style.SelectedTextColor
	case ctx.isHovered(id, rect):
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.HoveredBgColor)
	}
	ctx.addText(pos.X+ctx.style.ItemSpacing, pos.Y, text, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)
	ctx.advanceCursor(Vec2{w, h})
	return clicked
}

// Checkbox toggles *value on click and reports whether it changed.
func (ctx *Context) Checkbox(label string, value *bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	text := visibleLabel(label)
	box := ctx.lineHeight()
	totalW := box + ctx.style.ItemSpacing + ctx.MeasureText(text).X
	rect := Rect{X: pos.X, Y: pos.Y, W: totalW, H: box}
	disabled := GetOpt(o, OptDisabled)

	boxColor := ctx.style.InputBgColor
	if !disabled && ctx.isHovered(id, rect) {
		boxColor = ctx.style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, box, box, boxColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, box, box, ctx.style.InputBorderColor, 1)

	if *value {
		inset := box * 0.2
		x1, y1 := pos.X+inset, pos.Y+inset
		x2, y2 := pos.X+box-inset, pos.Y+box-inset
		ctx.DrawList.AddLine(x1, y1, x2, y2, ctx.style.TextColor, 2)
		ctx.DrawList.AddLine(x1, y2, x2, y1, ctx.style.TextColor, 2)
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(pos.X+box+ctx.style.ItemSpacing, pos.Y, text, textColor)

	changed := false
	if !disabled && ctx.isClicked(id, rect) {
		*value = !*value
		changed = true
	}
	ctx.advanceCursor(Vec2{totalW, box})
	return changed
}

// RadioButton draws one option of a group and reports whether it was clicked.
func (ctx *Context) RadioButton(label string, active bool, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	box := ctx.lineHeight()
	totalW := box + ctx.style.ItemSpacing + ctx.MeasureText(label).X
	rect := Rect{X: pos.X, Y: pos.Y, W: totalW, H: box}
	disabled := GetOpt(o, OptDisabled)

	boxColor := ctx.style.InputBgColor
	if !disabled && ctx.isHovered(id, rect) {
		boxColor = ctx.style.InputFocusedBgColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, box, box, boxColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, box, box, ctx.style.InputBorderColor, 1)
	if active {
		inset := box * 0.25
		ctx.DrawList.AddRect(pos.X+inset, pos.Y+inset, box-inset*2, box-inset*2, ctx.style.SelectedBgColor)
	}

	textColor := ctx.style.TextColor
	if disabled {
		textColor = ctx.style.TextDisabledColor
	}
	ctx.addText(pos.X+box+ctx.style.ItemSpacing, pos.Y, label, textColor)

	clicked := !disabled && ctx.isClicked(id, rect)
	ctx.advanceCursor(Vec2{totalW, box})
	return clicked
}

// RadioGroup draws one RadioButton per item and updates *selected.
func (ctx *Context) RadioGroup(label string, selected *int, items []string) bool {
	changed := false
	ctx.PushID(label)
	ctx.HStack()(func() {
		for i, item := range items {
			if ctx.RadioButton(item, *selected == i) && *selected != i {
				*selected = i
				changed = true
			}
		}
	})
	ctx.PopID()
	return changed
}

// ProgressBar draws a bar filled to fraction (clamped to 0..1).
func (ctx *Context) ProgressBar(fraction float32, opts ...Option) {
	pos := ctx.ItemPos()
	o := applyOptions(opts)

	w := ctx.AvailableWidth()
	if ow := GetOpt(o, OptWidth); ow > 0 {
		w = ow
	}
	h := ctx.lineHeight()
	if oh := GetOpt(o, OptHeight); oh > 0 {
		h = oh
	}

	fraction = clampf(fraction, 0, 1)
	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, ctx.style.InputBgColor)
	if fill := w * fraction; fill > 0 {
		ctx.DrawList.AddRect(pos.X, pos.Y, fill, h, ctx.style.SelectedBgColor)
	}
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, w, h, ctx.style.InputBorderColor, 1)
	ctx.advanceCursor(Vec2{w, h})
}

// Tooltip draws text next to the mouse on the foreground list. Call it
// after a widget when that widget reports hover.
func (ctx *Context) Tooltip(text string) {
	if ctx.Input == nil {
		return
	}
	dl := ctx.ForegroundDrawList
	if dl == nil {
		dl = ctx.DrawList
	}

	const pad = 4
	size := ctx.MeasureText(text)
	w, h := size.X+pad*2, size.Y+pad*2

	x := ctx.Input.MouseX + 12
	y := ctx.Input.MouseY + 12
	if x+w > ctx.DisplaySize.X {
		x = maxf(0, ctx.DisplaySize.X-w)
	}
	if y+h > ctx.DisplaySize.Y {
		y = maxf(0, ctx.DisplaySize.Y-h)
	}

	dl.AddRect(x, y, w, h, ctx.style.PanelColor)
	dl.AddRectOutline(x, y, w, h, ctx.style.PanelBorderColor, 1)
	ctx.AddTextTo(dl, x+pad, y+pad, text, ctx.style.TextColor)
}

// CollapsingHeader draws a clickable header and reports whether its section
// is open. Headers start closed unless DefaultOpen is given.
func (ctx *Context) CollapsingHeader(label string, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	state := GetState(ctx, id, CollapsingHeaderState{Open: GetOpt(o, OptDefaultOpen)})

	w := ctx.AvailableWidth()
	h := ctx.lineHeight()
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	bg := ctx.style.ButtonColor
	if ctx.isHovered(id, rect) {
		bg = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, w, h, bg)

	arrow := "+"
	if state.Open {
		arrow = "-"
	}
	ctx.addText(pos.X+2, pos.Y, arrow, ctx.style.TextColor)
	ctx.addText(pos.X+ctx.MeasureText(arrow).X+6, pos.Y, label, ctx.style.TextColor)

	if ctx.isClicked(id, rect) {
		state.Open = !state.Open
	}
	SetState(ctx, id, state)

	ctx.advanceCursor(Vec2{w, h})
	return state.Open
}

// TreeNode is a CollapsingHeader that indents its contents. Call TreePop
// when it returns true.
func (ctx *Context) TreeNode(label string, opts ...Option) bool {
	open := ctx.CollapsingHeader(label, opts...)
	if open {
		ctx.Indent(ctx.style.ItemSpacing * 2)
	}
	return open
}

func (ctx *Context) TreePop() {
	ctx.Unindent(ctx.style.ItemSpacing * 2)
}

// BulletText draws a small square marker followed by text.
func (ctx *Context) BulletText(text string) {
	ctx.HStack()(func() {
		pos := ctx.ItemPos()
		size := ctx.lineHeight() * 0.3
		ctx.DrawList.AddRect(pos.X+size/2, pos.Y+ctx.lineHeight()/2-size/2, size, size, ctx.style.TextColor)
		ctx.advanceCursor(Vec2{size * 2, ctx.lineHeight()})
		ctx.Text(text)
	})
}
