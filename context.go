package gui

// Context holds all state for building one frame of UI.
// It is a dedicated type rather than a context.Context so widgets can reach
// layout, style and input without lookups.
type Context struct {
	DrawList *DrawList
	// ForegroundDrawList is rendered after DrawList (tooltips).
	ForegroundDrawList *DrawList

	style      Style
	styleStack []Style

	cursor      Vec2
	layoutStack []*Layout

	// Input is read-only during the frame.
	Input *InputState

	stateStore StateStore

	rootID    ID
	idStack   []idScope
	idCounter uint32

	DisplaySize Vec2
	DPIScale    float32

	FrameCount uint64
	DeltaTime  float32

	focusedID ID // widget owning the keyboard
	activeID  ID // widget being dragged or pressed

	// FontTextureID is the built-in bitmap font atlas used without a FontProvider.
	FontTextureID uint32
	fontProvider  FontProvider

	// Set by widgets during the frame so the host can decide who gets input.
	WantCaptureMouse    bool
	WantCaptureKeyboard bool

	glyphBuffer      []GlyphQuad
	textMeasureCache map[string]Vec2

	scrollableStack  []*scrollableContext
	scrollableByName map[string]ID

	// Screen position of the caret of the focused text field, for IME placement.
	textCursorPos Vec2
	textCursorSet bool
}

// NewContext creates a Context with default settings.
func NewContext() *Context {
	return &Context{
		styleStack:       make([]Style, 0, 8),
		layoutStack:      make([]*Layout, 0, 16),
		idStack:          make([]idScope, 0, 32),
		rootID:           ID(contextSeq.Add(1) << 48),
		glyphBuffer:      make([]GlyphQuad, 0, 256),
		textMeasureCache: make(map[string]Vec2, 64),
		DPIScale:         1.0,
		style:            DefaultStyle(),
	}
}

func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle replaces the base style and drops the text measure cache, since
// font metrics may have changed.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
	clear(ctx.textMeasureCache)
}

// PushStyle temporarily overrides the style until PopStyle.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// StyleColorField names a color in Style for PushStyleColor.
type StyleColorField int

const (
	StyleColorText StyleColorField = iota
	StyleColorButton
	StyleColorButtonHovered
	StyleColorButtonActive
	StyleColorPanel
	StyleColorSelected
)

// PushStyleColor overrides one color until PopStyle.
func (ctx *Context) PushStyleColor(field StyleColorField, color uint32) {
	ctx.PushStyle(ctx.style)
	switch field {
	case StyleColorText:
		ctx.style.TextColor = color
	case StyleColorButton:
		ctx.style.ButtonColor = color
	case StyleColorButtonHovered:
		ctx.style.ButtonHoveredColor = color
	case StyleColorButtonActive:
		ctx.style.ButtonActiveColor = color
	case StyleColorPanel:
		ctx.style.PanelColor = color
	case StyleColorSelected:
		ctx.style.SelectedBgColor = color
	}
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	nextFrame(ctx.rootID)

	ctx.FrameCount++
	ctx.cursor = Vec2{}
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.idCounter = 0
	ctx.scrollableStack = ctx.scrollableStack[:0]
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime

	ctx.WantCaptureMouse = false
	ctx.WantCaptureKeyboard = false
	ctx.textCursorSet = false

	clear(ctx.textMeasureCache)
}

func (ctx *Context) mousePos() Vec2 {
	return Vec2{ctx.Input.MouseX, ctx.Input.MouseY}
}

// isHovered reports whether the mouse is over rect and rect is not scrolled
// out of the enclosing Scrollable.
func (ctx *Context) isHovered(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(ctx.mousePos()) && ctx.IsInsideScrollableViewport(rect.Y, rect.H)
}

func (ctx *Context) IsHovered(id ID, rect Rect) bool {
	return ctx.isHovered(id, rect)
}

// isClicked reports a left press over rect this frame.
func (ctx *Context) isClicked(id ID, rect Rect) bool {
	if ctx.Input == nil || !ctx.Input.MouseClicked(MouseButtonLeft) {
		return false
	}
	hovered := ctx.isHovered(id, rect)
	if guiVerbose() {
		guiLogger().Debug("click", "id", id, "rect", rect, "mouse", ctx.mousePos(), "hit", hovered)
	}
	return hovered
}

func (ctx *Context) IsClicked(id ID, rect Rect) bool {
	return ctx.isClicked(id, rect)
}

// isPressed reports the left button held over rect.
func (ctx *Context) isPressed(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return ctx.isHovered(id, rect) && ctx.Input.MouseDown(MouseButtonLeft)
}

// SetFocused gives id the keyboard.
func (ctx *Context) SetFocused(id ID) {
	ctx.focusedID = id
}

func (ctx *Context) IsFocused(id ID) bool {
	return id != 0 && ctx.focusedID == id
}

func (ctx *Context) ClearFocus() {
	ctx.focusedID = 0
}

// HasWidgetFocus reports whether any widget owns the keyboard.
func (ctx *Context) HasWidgetFocus() bool {
	return ctx.focusedID != 0
}

// SetTextCursorPos records where the focused text field draws its caret.
func (ctx *Context) SetTextCursorPos(p Vec2) {
	ctx.textCursorPos = p
	ctx.textCursorSet = true
}

// TextCursorPos returns the caret position recorded this frame, if a text
// field is being edited. Hosts use it to place the IME candidate window.
func (ctx *Context) TextCursorPos() (Vec2, bool) {
	return ctx.textCursorPos, ctx.textCursorSet
}

func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

func (ctx *Context) lineHeight() float32 {
	if f := ctx.activeFont(); f != nil {
		return f.LineHeight(ctx.style.FontScale)
	}
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of one line of text in the current style.
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// MeasureText returns the size of text in the current style. Results are
// cached for the rest of the frame.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}

	var size Vec2
	if f := ctx.activeFont(); f != nil {
		fs := f.MeasureText(text, ctx.style.FontScale)
		size = Vec2{X: fs.X, Y: fs.Y}
	} else {
		n := 0
		for range text {
			n++
		}
		size = Vec2{
			X: float32(n) * ctx.style.CharWidth * ctx.style.FontScale,
			Y: ctx.style.CharHeight * ctx.style.FontScale,
		}
	}

	if ctx.textMeasureCache != nil {
		ctx.textMeasureCache[text] = size
	}
	return size
}

func (ctx *Context) activeFont() Font {
	if ctx.fontProvider != nil {
		return ctx.fontProvider.ActiveFont()
	}
	return nil
}

// SetFontProvider switches text rendering to fp. nil selects the built-in font.
func (ctx *Context) SetFontProvider(fp FontProvider) {
	if ctx.fontProvider != fp {
		clear(ctx.textMeasureCache)
	}
	ctx.fontProvider = fp
}

func (ctx *Context) FontProvider() FontProvider {
	return ctx.fontProvider
}

// SetFont activates a font of the provider by name. Without a provider it
// does nothing.
func (ctx *Context) SetFont(name string) error {
	if ctx.fontProvider == nil {
		return nil
	}
	clear(ctx.textMeasureCache)
	return ctx.fontProvider.SetActiveFont(name)
}

// scrollableContext is a Scrollable currently being drawn.
type scrollableContext struct {
	id            ID
	contentOrigin float32 // screen Y of content row 0
	viewportY     float32
	viewportH     float32
	focusY        float32 // content-relative Y requested by ScrollTo
	padding       float32
	hasSet        bool
}

func (ctx *Context) pushScrollable(id ID, contentOriginY, viewportY, viewportH float32) {
	ctx.scrollableStack = append(ctx.scrollableStack, &scrollableContext{
		id:            id,
		contentOrigin: contentOriginY,
		viewportY:     viewportY,
		viewportH:     viewportH,
	})
}

func (ctx *Context) popScrollable() (focusY, padding float32, ok bool) {
	n := len(ctx.scrollableStack)
	if n == 0 {
		return 0, 0, false
	}
	sc := ctx.scrollableStack[n-1]
	ctx.scrollableStack = ctx.scrollableStack[:n-1]
	return sc.focusY, sc.padding, sc.hasSet
}

func (ctx *Context) currentScrollable() *scrollableContext {
	if n := len(ctx.scrollableStack); n > 0 {
		return ctx.scrollableStack[n-1]
	}
	return nil
}

// IsInsideScrollableViewport reports whether a span at screen y with height h
// is at least partly visible in the innermost Scrollable. Outside any
// Scrollable it is always true.
func (ctx *Context) IsInsideScrollableViewport(y, h float32) bool {
	sc := ctx.currentScrollable()
	if sc == nil {
		return true
	}
	return y+h > sc.viewportY && y < sc.viewportY+sc.viewportH
}

// ScrollTo asks the innermost Scrollable to bring screen Y into view, with
// padding above and below.
func (ctx *Context) ScrollTo(screenY float32, padding float32) {
	sc := ctx.currentScrollable()
	if sc == nil {
		return
	}
	sc.focusY = screenY - sc.contentOrigin
	sc.padding = padding
	sc.hasSet = true
}

func (ctx *Context) currentLayout() *Layout {
	if n := len(ctx.layoutStack); n > 0 {
		return ctx.layoutStack[n-1]
	}
	return nil
}

// currentLayoutWidth is the inner width available to items.
func (ctx *Context) currentLayoutWidth() float32 {
	if l := ctx.currentLayout(); l != nil {
		return l.Width - 2*l.padX()
	}
	return ctx.DisplaySize.X
}

func (ctx *Context) CurrentLayoutWidth() float32 {
	return ctx.currentLayoutWidth()
}

func (ctx *Context) currentLayoutHeight() float32 {
	if l := ctx.currentLayout(); l != nil {
		return l.Height - 2*l.padY()
	}
	return ctx.DisplaySize.Y
}

// AvailableWidth is the width from the cursor to the right edge of the
// current layout.
func (ctx *Context) AvailableWidth() float32 {
	if l := ctx.currentLayout(); l != nil {
		return maxf(0, l.StartX+ctx.currentLayoutWidth()-ctx.cursor.X)
	}
	return maxf(0, ctx.DisplaySize.X-ctx.cursor.X)
}

// AvailableHeight is the height from the cursor to the bottom of the
// current layout.
func (ctx *Context) AvailableHeight() float32 {
	if l := ctx.currentLayout(); l != nil {
		return maxf(0, l.StartY+ctx.currentLayoutHeight()-ctx.cursor.Y)
	}
	return maxf(0, ctx.DisplaySize.Y-ctx.cursor.Y)
}

func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddText draws text at a screen position with the active font.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// AddTextTo draws text into dl, binding the font atlas around the glyphs.
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil || text == "" {
		return
	}
	if f := ctx.activeFont(); f != nil {
		quads := f.GetGlyphQuads(text, x, y, ctx.style.FontScale)
		ctx.glyphBuffer = ctx.glyphBuffer[:0]
		for _, q := range quads {
			ctx.glyphBuffer = append(ctx.glyphBuffer, GlyphQuad(q))
		}
		dl.SetTexture(f.TextureID())
		dl.AddGlyphQuads(ctx.glyphBuffer, color)
		dl.SetTexture(0)
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// beginItem adds the layout gap before every item but the first. Repeated
// calls before the item is placed add it once.
func (ctx *Context) beginItem() {
	l := ctx.currentLayout()
	if l == nil || l.ItemCount == 0 || l.gapped {
		return
	}
	l.gapped = true
	gap := l.gap(ctx.style.ItemSpacing)
	if l.Type == LayoutVertical {
		ctx.cursor.Y += gap
	} else {
		ctx.cursor.X += gap
	}
}

// ItemPos applies the gap and returns where the next item goes. Custom
// widgets call it, draw, then AdvanceCursor with their size.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

func (ctx *Context) advanceCursor(size Vec2) {
	ctx.AdvanceCursor(size)
}

// AdvanceCursor moves past an item of the given size and grows the layout's
// content bounds.
func (ctx *Context) AdvanceCursor(size Vec2) {
	l := ctx.currentLayout()
	if l == nil {
		ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
		return
	}
	if l.Type == LayoutVertical {
		l.MaxWidth = maxf(l.MaxWidth, ctx.cursor.X-l.StartX+size.X)
		ctx.cursor.Y += size.Y
		l.MaxHeight = ctx.cursor.Y - l.StartY
	} else {
		ctx.cursor.X += size.X
		l.MaxWidth = ctx.cursor.X - l.StartX
		l.MaxHeight = maxf(l.MaxHeight, size.Y)
	}
	l.ItemCount++
	l.gapped = false
}
