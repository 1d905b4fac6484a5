package gui

var scrollableStore = NewFrameStore[ScrollableState]()

const (
	scrollWheelStep    = 30
	userScrollCooldown = 0.3 // seconds before ScrollTo may move the view again
	defaultFocusPad    = 40
)

// Scrollable clips its contents to a viewport and scrolls them with the mouse
// wheel, the scrollbar, or PageUp/PageDown/Home/End while hovered. A height
// of 0 fills the rest of the parent layout.
//
//	ctx.Scrollable("log", 0, StickToBottom(), EnableHorizontal())(func() {
//	    for _, line := range lines {
//	        ctx.Text(line)
//	    }
//	})
func (ctx *Context) Scrollable(name string, height float32, opts ...Option) func(func()) {
	return func(contents func()) {
		o := applyOptions(opts)

		ctx.beginItem()
		id := ctx.GetID(name)
		if ctx.scrollableByName == nil {
			ctx.scrollableByName = make(map[string]ID)
		}
		ctx.scrollableByName[name] = id

		stick := GetOpt(o, OptStickToBottom)
		horizontal := GetOpt(o, OptHorizontalScroll)
		visibility := GetOpt(o, OptScrollbarVisibility)
		state := scrollableStore.Get(id, ScrollableState{StuckToBottom: true, UserScrollTime: 1})

		x, y := ctx.cursor.X, ctx.cursor.Y
		w := ctx.AvailableWidth()
		if ow := GetOpt(o, OptWidth); ow > 0 {
			w = ow
		}
		if height <= 0 {
			height = ctx.AvailableHeight()
		}

		// Scrollbar visibility is decided from last frame's content size.
		barW := float32(0)
		if visibility == ScrollbarAlways || (visibility == ScrollbarAuto && state.ContentHeight > height) {
			barW = ctx.style.ScrollbarSize
		}
		viewW := w - barW
		barH := float32(0)
		if horizontal && visibility != ScrollbarNever && state.ContentWidth > viewW {
			barH = ctx.style.ScrollbarSize
		}
		viewH := height - barH
		viewport := Rect{X: x, Y: y, W: w, H: height}

		ctx.DrawList.PushClipRect(x, y, x+viewW, y+viewH)
		ctx.cursor = Vec2{X: x, Y: y - state.ScrollY}
		if horizontal {
			ctx.cursor.X -= state.ScrollX
		}
		ctx.pushScrollable(id, ctx.cursor.Y, y, viewH)
		ctx.pushScope(id)

		layoutW := viewW
		if horizontal {
			// Rows may be as wide as they like; the viewport clips them.
			layoutW = maxf(viewW, state.ContentWidth)
		}
		ctx.pushLayoutWith(&Layout{
			Type:   LayoutVertical,
			Width:  layoutW,
			Height: viewH,
			Gap:    ctx.style.ItemSpacing,
		})
		contents()
		bounds := ctx.popLayout()

		ctx.PopID()
		focusY, focusPad, focusSet := ctx.popScrollable()
		ctx.DrawList.PopClipRect()

		state.ContentHeight = bounds.H
		state.ContentWidth = bounds.W
		state.ViewportHeight = viewH
		maxY := maxf(0, state.ContentHeight-viewH)
		maxX := maxf(0, state.ContentWidth-viewW)

		if focusSet && state.UserScrollTime >= userScrollCooldown {
			state.ScrollY = scrollToShow(state.ScrollY, focusY, focusPad, viewH, maxY)
		}
		if focus := GetOpt(o, OptFocus); focus.Set {
			state.ScrollY = scrollToShow(state.ScrollY, focus.Y, focus.Padding, viewH, maxY)
		}

		userScrolled := false
		if ctx.Input != nil && ctx.isHovered(id, viewport) {
			in := ctx.Input
			wheelX, wheelY := in.MouseWheelX, in.MouseWheelY
			if horizontal && in.ModShift && wheelX == 0 {
				wheelX, wheelY = wheelY, 0
			}
			if wheelY != 0 {
				state.ScrollY = clampf(state.ScrollY-wheelY*scrollWheelStep, 0, maxY)
				userScrolled = true
			}
			if horizontal && wheelX != 0 {
				state.ScrollX = clampf(state.ScrollX-wheelX*scrollWheelStep, 0, maxX)
				userScrolled = true
			}

			// Keys belong to the focused widget when there is one.
			if !ctx.HasWidgetFocus() {
				page := viewH * 0.8
				switch {
				case in.KeyPressed(KeyPageDown):
					state.ScrollY = clampf(state.ScrollY+page, 0, maxY)
					userScrolled = true
				case in.KeyPressed(KeyPageUp):
					state.ScrollY = clampf(state.ScrollY-page, 0, maxY)
					userScrolled = true
				case in.KeyPressed(KeyHome):
					state.ScrollY = 0
					userScrolled = true
				case in.KeyPressed(KeyEnd):
					state.ScrollY = maxY
					userScrolled = true
				}
			}
		}

		if barW > 0 && state.ContentHeight > viewH {
			userScrolled = ctx.verticalScrollbar(id, state, x+viewW, y, barW, viewH, maxY) || userScrolled
		}
		if barH > 0 && maxX > 0 {
			userScrolled = ctx.horizontalScrollbar(id, state, x, y+viewH, viewW, barH, maxX) || userScrolled
		}

		state.ScrollY = clampf(state.ScrollY, 0, maxY)
		state.ScrollX = clampf(state.ScrollX, 0, maxX)

		if userScrolled {
			state.UserScrollTime = 0
			state.StuckToBottom = state.ScrollY >= maxY-1
		} else {
			state.UserScrollTime += ctx.DeltaTime
		}
		if stick && state.StuckToBottom {
			state.ScrollY = maxY
		}

		ctx.cursor = Vec2{X: x, Y: y}
		ctx.placeItem(Vec2{X: w, Y: height})
	}
}

// scrollToShow returns the scroll offset that brings content y into a
// viewport of height viewH, keeping pad pixels of margin.
func scrollToShow(scroll, y, pad, viewH, maxScroll float32) float32 {
	if pad <= 0 {
		pad = defaultFocusPad
	}
	pad = minf(pad, viewH/2)
	switch {
	case y < scroll+pad:
		return clampf(y-pad, 0, maxScroll)
	case y > scroll+viewH-pad:
		return clampf(y-viewH+pad, 0, maxScroll)
	}
	return scroll
}

func (ctx *Context) verticalScrollbar(id ID, s *ScrollableState, x, y, w, h, maxScroll float32) bool {
	thumbH := maxf(20, h*h/s.ContentHeight)
	track := h - thumbH
	thumbY := y
	if maxScroll > 0 {
		thumbY += s.ScrollY / maxScroll * track
	}
	thumb := Rect{X: x, Y: thumbY, W: w, H: thumbH}
	hovered := ctx.isHovered(id, thumb)
	moved := false

	if in := ctx.Input; in != nil {
		if hovered && in.MouseClicked(MouseButtonLeft) {
			s.Dragging = true
			s.DragStartY = in.MouseY
			s.DragStartScr = s.ScrollY
		}
		if s.Dragging {
			if in.MouseDown(MouseButtonLeft) {
				if track > 0 {
					s.ScrollY = clampf(s.DragStartScr+(in.MouseY-s.DragStartY)*maxScroll/track, 0, maxScroll)
				}
				moved = true
			} else {
				s.Dragging = false
			}
		}
		if !hovered && !s.Dragging && in.MouseClicked(MouseButtonLeft) &&
			ctx.isHovered(id, Rect{X: x, Y: y, W: w, H: h}) {
			if in.MouseY < thumbY {
				s.ScrollY = clampf(s.ScrollY-h, 0, maxScroll)
			} else {
				s.ScrollY = clampf(s.ScrollY+h, 0, maxScroll)
			}
			moved = true
		}
	}

	color := ctx.style.ScrollbarGrabColor
	if hovered || s.Dragging {
		color = ctx.style.ScrollbarGrabHovered
	}
	ctx.DrawList.AddRect(x, y, w, h, ctx.style.ScrollbarBgColor)
	ctx.DrawList.AddRect(x, thumbY, w, thumbH, color)
	return moved
}

func (ctx *Context) horizontalScrollbar(id ID, s *ScrollableState, x, y, w, h, maxScroll float32) bool {
	thumbW := maxf(20, w*w/s.ContentWidth)
	track := w - thumbW
	thumbX := x
	if maxScroll > 0 {
		thumbX += s.ScrollX / maxScroll * track
	}
	thumb := Rect{X: thumbX, Y: y, W: thumbW, H: h}
	hovered := ctx.isHovered(id, thumb)
	moved := false

	if in := ctx.Input; in != nil {
		if hovered && in.MouseClicked(MouseButtonLeft) {
			s.DraggingX = true
			s.DragStartX = in.MouseX
			s.DragStartScrX = s.ScrollX
		}
		if s.DraggingX {
			if in.MouseDown(MouseButtonLeft) {
				if track > 0 {
					s.ScrollX = clampf(s.DragStartScrX+(in.MouseX-s.DragStartX)*maxScroll/track, 0, maxScroll)
				}
				moved = true
			} else {
				s.DraggingX = false
			}
		}
	}

	color := ctx.style.ScrollbarGrabColor
	if hovered || s.DraggingX {
		color = ctx.style.ScrollbarGrabHovered
	}
	ctx.DrawList.AddRect(x, y, w, h, ctx.style.ScrollbarBgColor)
	ctx.DrawList.AddRect(thumbX, y, thumbW, h, color)
	return moved
}

// GetScrollableState returns the state of the Scrollable drawn under name in
// the last frame, or nil.
func (ctx *Context) GetScrollableState(name string) *ScrollableState {
	id, ok := ctx.scrollableByName[name]
	if !ok {
		return nil
	}
	return scrollableStore.GetIfExists(id)
}

// EnsureScrollVisible scrolls the named Scrollable so content y is visible
// with pad pixels of margin. It has no effect before the first draw.
func (ctx *Context) EnsureScrollVisible(name string, y, pad float32) {
	s := ctx.GetScrollableState(name)
	if s == nil {
		return
	}
	maxY := maxf(0, s.ContentHeight-s.ViewportHeight)
	s.ScrollY = scrollToShow(s.ScrollY, y, pad, s.ViewportHeight, maxY)
	s.StuckToBottom = s.ScrollY >= maxY-1
}
