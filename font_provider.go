package gui

// FontProvider supplies proportional fonts to a Context. Without one, text
// is drawn with the built-in 8x8 bitmap font.
//
// The fontatlas package provides the implementation used by the examples:
//
//	atlas, err := fontatlas.New(uploader, fontatlas.Options{Size: 16})
//	ui.SetFontProvider(atlas)
type FontProvider interface {
	// ActiveFont returns the font used for rendering, or nil.
	ActiveFont() Font

	SetActiveFont(name string) error
}

// Font is one rasterized font backed by a texture atlas.
type Font interface {
	// TextureID is the alpha atlas texture, as returned by TextureUploader.
	TextureID() uint32

	HasGlyph(r rune) bool

	MeasureText(text string, scale float32) FontVec2

	// GetGlyphQuads lays out text with its top-left corner at x, y. The
	// returned slice may be reused by the next call.
	GetGlyphQuads(text string, x, y, scale float32) []FontGlyphQuad

	LineHeight(scale float32) float32
}

// FontVec2 is a size reported by a Font.
type FontVec2 struct {
	X, Y float32
}

// FontGlyphQuad is one positioned glyph. It has the same layout as GlyphQuad
// so it converts directly.
type FontGlyphQuad struct {
	X0, Y0 float32
	X1, Y1 float32
	U0, V0 float32
	U1, V1 float32
}
