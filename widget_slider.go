package gui

import (
	"fmt"
	"strings"
)

var sliderStore = NewFrameStore[SliderState]()

// SliderFloat draws a horizontal slider for *value in [minVal, maxVal] and
// reports whether the value changed. Drag the grab, use the wheel while
// hovered, or Left/Right while hovered.
//
//	if ctx.SliderFloat("font scale", &scale, 1, 4, gui.WithStep(0.5)) {
//	    style.FontScale = scale
//	}
func (ctx *Context) SliderFloat(label string, value *float32, minVal, maxVal float32, opts ...Option) bool {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)
	state := sliderStore.Get(id, SliderState{})

	labelW := float32(0)
	if label != "" {
		labelW = ctx.MeasureText(label).X + ctx.style.ItemSpacing
		ctx.addText(pos.X, pos.Y, label, ctx.style.TextColor)
	}
	trackW := float32(150)
	if ow := GetOpt(o, OptWidth); ow > 0 {
		trackW = ow
	}
	h := ctx.lineHeight()
	trackH := h * 0.5
	const grabW = 12

	trackX := pos.X + labelW
	rect := Rect{X: trackX, Y: pos.Y, W: trackW, H: h}
	hovered := ctx.isHovered(id, rect)

	step := GetOpt(o, OptStep)
	nudge := step
	if nudge == 0 {
		nudge = (maxVal - minVal) / 100
	}
	set := func(v float32) bool {
		if step > 0 {
			v = minVal + float32(int((v-minVal)/step+0.5))*step
		}
		v = clampf(v, minVal, maxVal)
		if v == *value {
			return false
		}
		*value = v
		return true
	}

	changed := false
	if in := ctx.Input; in != nil && !GetOpt(o, OptDisabled) {
		if hovered && in.MouseClicked(MouseButtonLeft) {
			state.Dragging = true
			state.DragStartX = in.MouseX
			state.DragStartValue = *value
			ctx.activeID = id
		}
		if state.Dragging {
			if in.MouseDown(MouseButtonLeft) {
				ratio := clampf((in.MouseX-trackX-grabW/2)/(trackW-grabW), 0, 1)
				changed = set(minVal+ratio*(maxVal-minVal)) || changed
			} else {
				state.Dragging = false
				if ctx.activeID == id {
					ctx.activeID = 0
				}
			}
		}
		if hovered {
			if in.MouseWheelY != 0 {
				changed = set(*value+in.MouseWheelY*nudge) || changed
			}
			if !ctx.HasWidgetFocus() {
				if in.KeyRepeated(KeyLeft) {
					changed = set(*value-nudge) || changed
				}
				if in.KeyRepeated(KeyRight) {
					changed = set(*value+nudge) || changed
				}
			}
		}
	}

	ratio := float32(0)
	if maxVal > minVal {
		ratio = clampf((*value-minVal)/(maxVal-minVal), 0, 1)
	}
	trackY := pos.Y + (h-trackH)/2
	ctx.DrawList.AddRect(trackX, trackY, trackW, trackH, ctx.style.SliderTrackColor)
	if fill := ratio * trackW; fill > 0 {
		ctx.DrawList.AddRect(trackX, trackY, fill, trackH, ctx.style.SliderFillColor)
	}

	grab := ctx.style.SliderGrabColor
	switch {
	case state.Dragging:
		grab = ctx.style.SliderGrabActive
	case hovered:
		grab = ctx.style.SliderGrabHovered
	}
	grabX := trackX + ratio*(trackW-grabW)
	ctx.DrawList.AddRect(grabX, pos.Y, grabW, h, grab)
	ctx.DrawList.AddRectOutline(grabX, pos.Y, grabW, h, ctx.style.InputBorderColor, 1)

	text := formatSliderValue(GetOpt(o, OptFormat), *value)
	ctx.addText(trackX+trackW+ctx.style.ItemSpacing, pos.Y, text, ctx.style.TextColor)

	ctx.advanceCursor(Vec2{labelW + trackW + ctx.style.ItemSpacing + ctx.MeasureText(text).X, h})
	return changed
}

func formatSliderValue(format string, v float32) string {
	switch {
	case format == "":
		return fmt.Sprintf("%.2f", v)
	case strings.Contains(format, "%d"):
		return fmt.Sprintf(format, int(v))
	}
	return fmt.Sprintf(format, v)
}

// SliderInt is SliderFloat with whole steps.
func (ctx *Context) SliderInt(label string, value *int, minVal, maxVal int, opts ...Option) bool {
	f := float32(*value)
	opts = append(opts, WithStep(1))
	if _, ok := ApplyAndCheck(opts, OptFormat); !ok {
		opts = append(opts, WithFormat("%d"))
	}
	if !ctx.SliderFloat(label, &f, float32(minVal), float32(maxVal), opts...) {
		return false
	}
	*value = int(f)
	return true
}
