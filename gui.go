package gui

// Renderer draws finished draw lists. Backends implement it.
type Renderer interface {
	Render(dl *DrawList) error
	// FontTextureID is the texture holding BuiltinFontAtlas.
	FontTextureID() uint32
	Resize(width, height int)
}

// TextureUploader creates single-channel coverage textures, used for font
// atlases. Renderers that can host a FontProvider implement it.
type TextureUploader interface {
	CreateAlphaTexture(width, height int, pixels []byte) (uint32, error)
}

// GUI owns a Context and drives it once per frame.
type GUI struct {
	renderer     Renderer
	stateStore   StateStore
	style        Style
	ctx          *Context
	fontProvider FontProvider
}

type GUIOption func(*GUI)

func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

func WithStateStore(store StateStore) GUIOption {
	return func(g *GUI) { g.stateStore = store }
}

func WithFontProvider(fp FontProvider) GUIOption {
	return func(g *GUI) { g.fontProvider = fp }
}

func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer:   renderer,
		stateStore: make(MapStateStore),
		style:      DefaultStyle(),
		ctx:        NewContext(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Begin starts a frame and returns the Context to build it with.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx
	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList()

	ctx.Input = input
	ctx.stateStore = g.stateStore
	ctx.style = g.style
	ctx.FontTextureID = g.renderer.FontTextureID()
	ctx.SetFontProvider(g.fontProvider)

	ctx.Reset(displaySize, deltaTime)
	return ctx
}

// End renders the frame's draw lists, foreground last, and returns them to
// the pool.
func (g *GUI) End() error {
	ctx := g.ctx
	if ctx.DrawList == nil {
		return nil
	}
	defer func() {
		ReleaseDrawList(ctx.DrawList)
		ReleaseDrawList(ctx.ForegroundDrawList)
		ctx.DrawList = nil
		ctx.ForegroundDrawList = nil
	}()

	ctx.DrawList.Finalize()
	ctx.ForegroundDrawList.Finalize()
	if err := g.renderer.Render(ctx.DrawList); err != nil {
		return err
	}
	if fg := ctx.ForegroundDrawList; len(fg.CmdBuffer) > 0 {
		return g.renderer.Render(fg)
	}
	return nil
}

// Context returns the GUI's context. Draw lists are only valid between
// Begin and End.
func (g *GUI) Context() *Context {
	return g.ctx
}

func (g *GUI) Style() Style {
	return g.style
}

// SetStyle takes effect at the next Begin.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}

// SetFontProvider takes effect at the next Begin. nil selects the built-in
// bitmap font.
func (g *GUI) SetFontProvider(fp FontProvider) {
	g.fontProvider = fp
}

func (g *GUI) FontProvider() FontProvider {
	return g.fontProvider
}
