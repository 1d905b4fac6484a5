package gui

// ListClipper computes which rows of a uniform-height list intersect a
// viewport, so long lists only emit geometry for what is visible.
type ListClipper struct {
	Start, End int // visible rows, End exclusive
	Pitch      float32
	Total      int
}

// NewListClipper returns the visible range of total rows of the given pitch
// for a viewport of height viewH scrolled by scrollY. One row of slack is
// kept on each side for partially visible rows.
func NewListClipper(total int, pitch, viewH, scrollY float32) ListClipper {
	c := ListClipper{Pitch: pitch, Total: total}
	if total <= 0 || pitch <= 0 {
		return c
	}
	c.Start = min(max(int(scrollY/pitch)-1, 0), total)
	c.End = min(c.Start+int(viewH/pitch)+3, total)
	return c
}

func (c ListClipper) Contains(i int) bool {
	return i >= c.Start && i < c.End
}

func (c ListClipper) ContentHeight() float32 {
	return float32(c.Total) * c.Pitch
}

// ListClipped draws count rows with row(i), skipping rows outside the
// innermost Scrollable's viewport. Every row must be one line high. Skipped
// rows are replaced by spacers so the content height and scroll range stay
// exact; width is the spacer width, which matters for horizontal scrolling.
func (ctx *Context) ListClipped(count int, width float32, row func(i int)) {
	if count <= 0 {
		return
	}
	sc := ctx.currentScrollable()
	if sc == nil {
		for i := range count {
			row(i)
		}
		return
	}

	gap := ctx.style.ItemSpacing
	if l := ctx.currentLayout(); l != nil {
		gap = l.gap(ctx.style.ItemSpacing)
	}
	lineH := ctx.lineHeight()
	pitch := lineH + gap

	// Rows start at the cursor, which may already be below other content.
	first := ctx.cursor.Y
	if l := ctx.currentLayout(); l != nil && l.ItemCount > 0 && !l.gapped {
		first += gap
	}
	c := NewListClipper(count, pitch, sc.viewportH, sc.viewportY-first)

	if c.Start > 0 {
		ctx.Dummy(Vec2{X: width, Y: float32(c.Start)*pitch - gap})
	}
	for i := c.Start; i < c.End; i++ {
		row(i)
	}
	if rest := count - c.End; rest > 0 {
		ctx.Dummy(Vec2{X: width, Y: float32(rest)*pitch - gap})
	}
}
