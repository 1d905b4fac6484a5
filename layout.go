package gui

// LayoutType is the main axis of a layout.
type LayoutType uint8

const (
	LayoutVertical LayoutType = iota
	LayoutHorizontal
)

// Layout is one container on the layout stack.
type Layout struct {
	Type LayoutType

	// StartX, StartY is where the first item goes (inside any padding).
	StartX, StartY float32

	// Width, Height is the outer size available to the container.
	Width, Height float32
	// MaxWidth, MaxHeight is the content size accumulated so far.
	MaxWidth, MaxHeight float32

	Gap      float32
	GapX     float32
	GapY     float32
	Padding  float32
	PaddingX float32
	PaddingY float32

	Align   Alignment
	Justify Justification

	ItemCount int
	gapped    bool // gap before the next item already applied

	HeightConstraint float32 // 0 = unlimited
}

type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

type Justification uint8

const (
	JustifyStart Justification = iota
	JustifyCenter
	JustifyEnd
	JustifyBetween
)

func (l *Layout) padX() float32 {
	if l.PaddingX != 0 {
		return l.PaddingX
	}
	return l.Padding
}

func (l *Layout) padY() float32 {
	if l.PaddingY != 0 {
		return l.PaddingY
	}
	return l.Padding
}

// gap returns the spacing on the main axis, falling back to def.
func (l *Layout) gap(def float32) float32 {
	g := l.GapY
	if l.Type == LayoutHorizontal {
		g = l.GapX
	}
	if g == 0 {
		g = l.Gap
	}
	if g == 0 {
		g = def
	}
	return g
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets the spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

func GapX(pixels float32) LayoutOption {
	return func(l *Layout) { l.GapX = pixels }
}

func GapY(pixels float32) LayoutOption {
	return func(l *Layout) { l.GapY = pixels }
}

func Padding(pixels float32) LayoutOption {
	return func(l *Layout) { l.Padding = pixels }
}

func PaddingXY(x, y float32) LayoutOption {
	return func(l *Layout) {
		l.PaddingX = x
		l.PaddingY = y
	}
}

func Align(a Alignment) LayoutOption {
	return func(l *Layout) { l.Align = a }
}

func Justify(j Justification) LayoutOption {
	return func(l *Layout) { l.Justify = j }
}

// Width fixes the container width. 0 inherits the parent's.
func Width(w float32) LayoutOption {
	return func(l *Layout) { l.Width = w }
}

// Height fixes the container height. 0 inherits the parent's.
func Height(h float32) LayoutOption {
	return func(l *Layout) { l.Height = h }
}

// MaxHeight caps a Panel's height. Overflowing content is not clipped;
// wrap it in a Scrollable.
func MaxHeight(h float32) LayoutOption {
	return func(l *Layout) { l.HeightConstraint = h }
}

// pushLayoutWith places layout at the cursor. Zero sizes inherit the
// parent's inner size.
func (ctx *Context) pushLayoutWith(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	if layout.Width == 0 {
		layout.Width = ctx.currentLayoutWidth()
	}
	if layout.Height == 0 {
		layout.Height = ctx.currentLayoutHeight()
	}
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout removes the innermost layout and returns its content bounds.
// The parent is not updated.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}
	l := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]
	return Rect{X: l.StartX, Y: l.StartY, W: l.MaxWidth, H: l.MaxHeight}
}

// endLayout pops the innermost layout and advances the parent past it as
// a single item.
func (ctx *Context) endLayout() Rect {
	bounds := ctx.popLayout()
	ctx.cursor = Vec2{X: bounds.X, Y: bounds.Y}
	ctx.placeItem(Vec2{X: bounds.W, Y: bounds.H})
	return bounds
}

// placeItem advances past an item whose gap was already applied. Without a
// parent layout the cursor simply moves below the item.
func (ctx *Context) placeItem(size Vec2) {
	if ctx.currentLayout() == nil {
		ctx.cursor.Y += size.Y
		return
	}
	ctx.AdvanceCursor(size)
}

func (ctx *Context) stack(typ LayoutType, opts []LayoutOption, contents func()) {
	layout := &Layout{Type: typ, Gap: ctx.style.ItemSpacing}
	for _, opt := range opts {
		opt(layout)
	}
	ctx.beginItem()
	ctx.pushLayoutWith(layout)
	contents()
	ctx.endLayout()
}

// VStack lays out its contents top to bottom.
//
//	ctx.VStack(Gap(8))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		ctx.stack(LayoutVertical, opts, contents)
	}
}

// HStack lays out its contents left to right.
//
//	ctx.HStack()(func() {
//	    ctx.Text("please input here")
//	    ctx.InputText("##input", &text)
//	})
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		ctx.stack(LayoutHorizontal, opts, contents)
	}
}

// Row is HStack with default options.
func (ctx *Context) Row(contents func()) {
	ctx.HStack()(contents)
}

// Panel draws a padded container with an optional title bar. The background
// is inserted behind the contents once their size is known.
//
//	ctx.Panel("Settings", Gap(8), Padding(12))(func() {
//	    ctx.Checkbox("vsync", &vsync)
//	})
func (ctx *Context) Panel(title string, opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		layout := &Layout{
			Type:    LayoutVertical,
			Padding: ctx.style.PanelPadding,
			Gap:     ctx.style.ItemSpacing,
		}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.panel(title, layout, ctx.style.PanelColor, contents)
	}
}

// Window fills the whole display with a root panel. Apps wrap their
// top-level UI in it.
func (ctx *Context) Window(contents func()) {
	ctx.cursor = Vec2{}
	layout := &Layout{
		Type:    LayoutVertical,
		Padding: ctx.style.PanelPadding,
		Gap:     ctx.style.ItemSpacing,
		Width:   ctx.DisplaySize.X,
		Height:  ctx.DisplaySize.Y,
	}
	ctx.panel("", layout, ctx.style.WindowColor, contents)
}

func (ctx *Context) panel(title string, layout *Layout, bg uint32, contents func()) {
	padX, padY := layout.padX(), layout.padY()

	// 0 means size to content.
	userWidth := layout.Width
	userHeight := layout.Height

	ctx.beginItem()
	startX, startY := ctx.cursor.X, ctx.cursor.Y

	headerH := float32(0)
	if title != "" {
		headerH = ctx.lineHeight() + padY*2
	}

	ctx.cursor.X += padX
	ctx.cursor.Y += padY + headerH
	ctx.pushLayoutWith(layout)
	contents()
	bounds := ctx.popLayout()

	panelW := bounds.W + padX*2
	panelH := bounds.H + padY*2 + headerH
	if userWidth > 0 && panelW < userWidth {
		panelW = userWidth
	}
	if userHeight > 0 && panelH < userHeight {
		panelH = userHeight
	}
	if layout.HeightConstraint > 0 && panelH > layout.HeightConstraint {
		panelH = layout.HeightConstraint
	}

	ctx.DrawList.InsertRect(startX, startY, panelW, panelH, bg)

	if title != "" {
		headerBg := ctx.style.PanelHeaderBgColor
		if headerBg == 0 {
			headerBg = ctx.style.ButtonColor
		}
		ctx.DrawList.AddRect(startX, startY, panelW, headerH, headerBg)

		headerText := ctx.style.PanelHeaderTextColor
		if headerText == 0 {
			headerText = ctx.style.TextColor
		}
		ctx.addText(startX+padX, startY+(headerH-ctx.lineHeight())/2, title, headerText)
	}

	if ctx.style.BorderSize > 0 && title != "" {
		ctx.DrawList.AddRectOutline(startX, startY, panelW, panelH,
			ctx.style.PanelBorderColor, ctx.style.BorderSize)
	}

	if ctx.Input != nil {
		if (Rect{X: startX, Y: startY, W: panelW, H: panelH}).Contains(ctx.mousePos()) {
			ctx.WantCaptureMouse = true
		}
	}

	ctx.cursor = Vec2{X: startX, Y: startY}
	ctx.placeItem(Vec2{X: panelW, Y: panelH})
}

// Spacing adds vertical space without counting as an item.
func (ctx *Context) Spacing(pixels float32) {
	ctx.cursor.Y += pixels
}

// Separator draws a horizontal rule across the layout.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	w := ctx.AvailableWidth()
	ctx.DrawList.AddLine(pos.X, pos.Y+2, pos.X+w, pos.Y+2, ctx.style.SeparatorColor, 1)
	ctx.advanceCursor(Vec2{X: w, Y: 4})
}

// Dummy reserves an empty item of the given size.
func (ctx *Context) Dummy(size Vec2) {
	ctx.beginItem()
	ctx.advanceCursor(size)
}

func (ctx *Context) Indent(pixels float32) {
	ctx.cursor.X += pixels
}

func (ctx *Context) Unindent(pixels float32) {
	ctx.cursor.X -= pixels
}
