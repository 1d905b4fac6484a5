package fontatlas

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	gui "github.com/go-theft-auto/gui-examples"
	"github.com/go-theft-auto/gui-examples/logger"
)

const (
	atlasSize   = 1024
	glyphMargin = 1
	missingRune = '?'
)

// glyph is one rasterized rune. Offsets are relative to the pen position on
// the baseline, in atlas pixels.
type glyph struct {
	face       int
	x, y, w, h int
	offX, offY float32
	advance    float32
	u0, v0     float32
	u1, v1     float32
	drawable   bool
}

// Font is one family rasterized into its own atlas texture. It implements
// gui.Font and is used from the UI thread only.
type Font struct {
	name     string
	updater  TextureUpdater
	texture  uint32
	refScale float32

	faces      []font.Face
	sources    []*sfnt.Font
	buf        sfnt.Buffer
	ascent     float32
	lineHeight float32

	pix        *image.Alpha
	penX, penY int
	rowH       int
	full       bool
	dirty      bool

	glyphs  map[rune]*glyph
	missing map[rune]struct{}
	quads   []gui.FontGlyphQuad
}

func newFont(uploader gui.TextureUploader, opts Options, faces []font.Face, sources []*sfnt.Font) (*Font, error) {
	if len(faces) == 0 {
		return nil, ErrNoFaces
	}
	m := faces[0].Metrics()
	f := &Font{
		name:       opts.Name,
		refScale:   opts.ReferenceScale,
		faces:      faces,
		sources:    sources,
		ascent:     float32(m.Ascent.Ceil()),
		lineHeight: float32(m.Height.Ceil()),
		pix:        image.NewAlpha(image.Rect(0, 0, atlasSize, atlasSize)),
		penX:       glyphMargin,
		penY:       glyphMargin,
		glyphs:     make(map[rune]*glyph),
		missing:    make(map[rune]struct{}),
	}
	if u, ok := uploader.(TextureUpdater); ok {
		f.updater = u
	}

	for r := rune(32); r < 127; r++ {
		f.rasterize(r)
	}
	for r := rune(0xA0); r <= 0xFF; r++ {
		f.rasterize(r)
	}
	for _, r := range opts.Runes {
		f.rasterize(r)
	}
	if f.glyphs[missingRune] == nil {
		return nil, fmt.Errorf("%w: %q has no glyph for %q", ErrNoFaces, opts.Name, missingRune)
	}

	id, err := uploader.CreateAlphaTexture(atlasSize, atlasSize, f.pix.Pix)
	if err != nil {
		return nil, fmt.Errorf("fontatlas: upload atlas: %w", err)
	}
	f.texture = id
	f.dirty = false
	return f, nil
}

// Name is the name the font was registered under.
func (f *Font) Name() string { return f.name }

// Close releases the font faces. The texture belongs to the uploader.
func (f *Font) Close() {
	closeFaces(f.faces)
	f.faces = nil
	f.sources = nil
}

func (f *Font) TextureID() uint32 { return f.texture }

// HasGlyph reports whether any face of the family can draw r.
func (f *Font) HasGlyph(r rune) bool {
	if _, ok := f.glyphs[r]; ok {
		return true
	}
	return f.faceFor(r) >= 0
}

func (f *Font) LineHeight(scale float32) float32 {
	return f.lineHeight * f.scale(scale)
}

// MeasureText returns the widest line and the total height of text.
func (f *Font) MeasureText(text string, scale float32) gui.FontVec2 {
	s := f.scale(scale)
	var width, lineW float32
	lines := 1
	prev, prevFace := rune(-1), -1
	for _, r := range text {
		if r == '\n' {
			width = max(width, lineW)
			lineW = 0
			lines++
			prev, prevFace = -1, -1
			continue
		}
		g := f.lookup(r)
		if g == nil {
			continue
		}
		lineW += f.kern(prev, prevFace, r, g.face) + g.advance
		prev, prevFace = r, g.face
	}
	f.flush()
	width = max(width, lineW)
	return gui.FontVec2{X: width * s, Y: float32(lines) * f.lineHeight * s}
}

// GetGlyphQuads lays text out from the top-left corner x, y. The returned
// slice is reused by the next call.
func (f *Font) GetGlyphQuads(text string, x, y, scale float32) []gui.FontGlyphQuad {
	s := f.scale(scale)
	f.quads = f.quads[:0]
	penX := x
	baseline := y + f.ascent*s
	prev, prevFace := rune(-1), -1
	for _, r := range text {
		if r == '\n' {
			penX = x
			baseline += f.lineHeight * s
			prev, prevFace = -1, -1
			continue
		}
		g := f.lookup(r)
		if g == nil {
			continue
		}
		penX += f.kern(prev, prevFace, r, g.face) * s
		if g.drawable {
			x0 := penX + g.offX*s
			y0 := baseline + g.offY*s
			f.quads = append(f.quads, gui.FontGlyphQuad{
				X0: x0, Y0: y0,
				X1: x0 + float32(g.w)*s, Y1: y0 + float32(g.h)*s,
				U0: g.u0, V0: g.v0,
				U1: g.u1, V1: g.v1,
			})
		}
		penX += g.advance * s
		prev, prevFace = r, g.face
	}
	f.flush()
	return f.quads
}

func (f *Font) scale(scale float32) float32 {
	if scale <= 0 {
		return 1
	}
	return scale / f.refScale
}

// lookup returns the glyph for r, rasterizing it when possible and
// substituting missingRune otherwise.
func (f *Font) lookup(r rune) *glyph {
	if g, ok := f.glyphs[r]; ok {
		return g
	}
	if _, ok := f.missing[r]; !ok && f.updater != nil {
		if g := f.rasterize(r); g != nil {
			return g
		}
	}
	return f.glyphs[missingRune]
}

func (f *Font) kern(prev rune, prevFace int, r rune, face int) float32 {
	if prev < 0 || prevFace != face {
		return 0
	}
	return fixedToFloat(f.faces[face].Kern(prev, r))
}

// faceFor returns the index of the first face that has a glyph for r, or -1.
func (f *Font) faceFor(r rune) int {
	for i, src := range f.sources {
		idx, err := src.GlyphIndex(&f.buf, r)
		if err == nil && idx != 0 {
			return i
		}
	}
	return -1
}

// rasterize draws r into the atlas and records it. It returns nil when no
// face has r or the atlas is full.
func (f *Font) rasterize(r rune) *glyph {
	faceIdx := f.faceFor(r)
	if faceIdx < 0 {
		f.missing[r] = struct{}{}
		return nil
	}
	face := f.faces[faceIdx]
	dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		f.missing[r] = struct{}{}
		return nil
	}

	g := &glyph{
		face:    faceIdx,
		advance: fixedToFloat(advance),
		offX:    float32(dr.Min.X),
		offY:    float32(dr.Min.Y),
		w:       dr.Dx(),
		h:       dr.Dy(),
	}
	if g.w > 0 && g.h > 0 && mask != nil {
		x, y, placed := f.place(g.w, g.h)
		if !placed {
			if !f.full {
				logger.L().Warn("font atlas full", "font", f.name, "rune", string(r))
				f.full = true
			}
			f.missing[r] = struct{}{}
			return nil
		}
		draw.Draw(f.pix, image.Rect(x, y, x+g.w, y+g.h), mask, maskp, draw.Src)
		g.x, g.y = x, y
		g.u0 = float32(x) / atlasSize
		g.v0 = float32(y) / atlasSize
		g.u1 = float32(x+g.w) / atlasSize
		g.v1 = float32(y+g.h) / atlasSize
		g.drawable = true
		f.dirty = true
	}
	f.glyphs[r] = g
	return g
}

// place reserves a w by h cell using shelf packing.
func (f *Font) place(w, h int) (int, int, bool) {
	if f.penX+w+glyphMargin > atlasSize {
		f.penX = glyphMargin
		f.penY += f.rowH + glyphMargin
		f.rowH = 0
	}
	if f.penY+h+glyphMargin > atlasSize || w+2*glyphMargin > atlasSize {
		return 0, 0, false
	}
	x, y := f.penX, f.penY
	f.penX += w + glyphMargin
	f.rowH = max(f.rowH, h)
	return x, y, true
}

// flush uploads glyphs added since the last upload.
func (f *Font) flush() {
	if !f.dirty || f.updater == nil || f.texture == 0 {
		return
	}
	f.dirty = false
	if err := f.updater.UpdateAlphaTexture(f.texture, atlasSize, atlasSize, f.pix.Pix); err != nil {
		logger.L().Warn("font atlas update failed", "font", f.name, "err", err)
	}
}

func fixedToFloat(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

var _ gui.Font = (*Font)(nil)
var _ gui.FontProvider = (*Atlas)(nil)
