package gui

import "fmt"

// Plot draws values as a polyline scaled to fit a box of the given height
// and the available width. The vertical range fits the data unless
// WithPlotYRange is given. Hovering shows the value under the mouse.
//
//	ctx.Plot("frame ms", frameTimes, 80, gui.WithPlotGridLines(4))
func (ctx *Context) Plot(label string, values []float32, height float32, opts ...Option) {
	pos := ctx.ItemPos()
	o := applyOptions(opts)
	id := ctx.widgetID(label, o)

	w := ctx.AvailableWidth()
	if ow := GetOpt(o, OptWidth); ow > 0 {
		w = ow
	}
	if height <= 0 {
		height = ctx.lineHeight() * 4
	}

	ctx.DrawList.AddRect(pos.X, pos.Y, w, height, ctx.style.PlotBgColor)
	if n := GetOpt(o, OptPlotGridLines); n > 0 {
		for i := 1; i < n; i++ {
			y := pos.Y + height*float32(i)/float32(n)
			ctx.DrawList.AddLine(pos.X, y, pos.X+w, y, ctx.style.PlotGridColor, 1)
		}
	}

	yMin, yMax := plotRange(values, GetOpt(o, OptPlotYMin), GetOpt(o, OptPlotYMax))
	span := yMax - yMin

	if len(values) >= 2 {
		color := GetOpt(o, OptPlotColor)
		if color == 0 {
			color = ctx.style.PlotLineColor
		}
		step := w / float32(len(values)-1)
		points := make([]Vec2, len(values))
		for i, v := range values {
			points[i] = Vec2{
				X: pos.X + float32(i)*step,
				Y: pos.Y + height - clampf((v-yMin)/span, 0, 1)*height,
			}
		}
		ctx.DrawList.PushClipRect(pos.X, pos.Y, pos.X+w, pos.Y+height)
		ctx.DrawList.AddPolyline(points, color, 1.5)
		ctx.DrawList.PopClipRect()

		rect := Rect{X: pos.X, Y: pos.Y, W: w, H: height}
		if ctx.isHovered(id, rect) {
			i := int((ctx.Input.MouseX-pos.X)/step + 0.5)
			i = min(max(i, 0), len(values)-1)
			x := points[i].X
			ctx.DrawList.AddLine(x, pos.Y, x, pos.Y+height, ctx.style.TextDisabledColor, 1)
			ctx.Tooltip(fmt.Sprintf("%s[%d] = %.3f", label, i, values[i]))
		}
	}

	dim := ctx.style.TextDisabledColor
	ctx.addText(pos.X+2, pos.Y+2, fmt.Sprintf("%.2f", yMax), dim)
	ctx.addText(pos.X+2, pos.Y+height-ctx.lineHeight()-2, fmt.Sprintf("%.2f", yMin), dim)
	if label != "" {
		lw := ctx.MeasureText(label).X
		ctx.addText(pos.X+w-lw-4, pos.Y+2, label, ctx.style.TextColor)
	}
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, w, height, ctx.style.BorderColor, 1)

	ctx.advanceCursor(Vec2{w, height})
}

// plotRange returns the vertical axis range. A fixed range is used when
// lo < hi; otherwise the data range padded by 10%.
func plotRange(values []float32, lo, hi float32) (float32, float32) {
	if lo < hi {
		return lo, hi
	}
	if len(values) == 0 {
		return 0, 1
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = minf(lo, v)
		hi = maxf(hi, v)
	}
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad
}
