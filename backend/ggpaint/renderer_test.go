package ggpaint

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gui "github.com/go-theft-auto/gui-examples"
)

var (
	black = color.NRGBA{A: 255}
	red   = color.NRGBA{R: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func pixel(r *Renderer, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(r.Image().At(x, y)).(color.NRGBA)
}

func newTarget(t *testing.T) *Renderer {
	t.Helper()
	r := New(64, 64)
	r.Clear([4]float32{0, 0, 0, 1})
	return r
}

func render(t *testing.T, r *Renderer, build func(dl *gui.DrawList)) {
	t.Helper()
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)
	build(dl)
	dl.Finalize()
	require.NoError(t, r.Render(dl))
}

func TestRenderRect(t *testing.T) {
	r := newTarget(t)
	render(t, r, func(dl *gui.DrawList) {
		dl.AddRect(10, 10, 20, 20, gui.RGBA(255, 0, 0, 255))
	})

	assert.Equal(t, red, pixel(r, 20, 20))
	assert.Equal(t, black, pixel(r, 5, 5))
	assert.Equal(t, black, pixel(r, 40, 20))
}

func TestRenderRespectsClip(t *testing.T) {
	r := newTarget(t)
	render(t, r, func(dl *gui.DrawList) {
		dl.PushClipRect(0, 0, 15, 64)
		dl.AddRect(10, 10, 20, 20, gui.RGBA(255, 0, 0, 255))
		dl.PopClipRect()
	})

	assert.Equal(t, red, pixel(r, 12, 20))
	assert.Equal(t, black, pixel(r, 20, 20))
}

func TestRenderTransparentSkipped(t *testing.T) {
	r := newTarget(t)
	render(t, r, func(dl *gui.DrawList) {
		dl.AddRect(0, 0, 64, 64, gui.RGBA(255, 0, 0, 0))
	})
	assert.Equal(t, black, pixel(r, 32, 32))
}

func TestRenderGlyphQuad(t *testing.T) {
	r := newTarget(t)
	id, err := r.CreateAlphaTexture(2, 2, []byte{255, 255, 255, 255})
	require.NoError(t, err)

	render(t, r, func(dl *gui.DrawList) {
		dl.SetTexture(id)
		dl.AddGlyphQuads([]gui.GlyphQuad{{X0: 30, Y0: 30, X1: 34, Y1: 34, U1: 1, V1: 1}}, gui.RGBA(255, 255, 255, 255))
		dl.PushClipRect(0, 0, 42, 64)
		dl.AddGlyphQuads([]gui.GlyphQuad{{X0: 40, Y0: 30, X1: 44, Y1: 34, U1: 1, V1: 1}}, gui.RGBA(255, 255, 255, 255))
		dl.PopClipRect()
		dl.SetTexture(0)
	})

	assert.Equal(t, white, pixel(r, 32, 32))
	assert.Equal(t, black, pixel(r, 36, 32))
	assert.Equal(t, white, pixel(r, 40, 32))
	assert.Equal(t, black, pixel(r, 43, 32), "clipped half of the glyph")
}

func TestRenderUnknownTexture(t *testing.T) {
	r := newTarget(t)
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)
	dl.SetTexture(999)
	dl.AddGlyphQuads([]gui.GlyphQuad{{X1: 4, Y1: 4, U1: 1, V1: 1}}, gui.RGBA(255, 255, 255, 255))
	dl.Finalize()

	assert.ErrorIs(t, r.Render(dl), ErrUnknownTexture)
}

func TestTextures(t *testing.T) {
	r := New(8, 8)
	assert.NotZero(t, r.FontTextureID())

	_, err := r.CreateAlphaTexture(4, 4, make([]byte, 3))
	assert.Error(t, err)

	id, err := r.CreateAlphaTexture(2, 1, []byte{0, 0})
	require.NoError(t, err)
	assert.NotEqual(t, r.FontTextureID(), id)

	require.NoError(t, r.UpdateAlphaTexture(id, 2, 1, []byte{255, 255}))
	assert.Equal(t, []byte{255, 255}, r.textures[id].pix)

	assert.Error(t, r.UpdateAlphaTexture(id, 4, 4, make([]byte, 16)))
	assert.ErrorIs(t, r.UpdateAlphaTexture(42, 2, 1, []byte{0, 0}), ErrUnknownTexture)
}

func TestUpdateDropsTintedGlyphs(t *testing.T) {
	r := newTarget(t)
	id, err := r.CreateAlphaTexture(1, 1, []byte{255})
	require.NoError(t, err)
	quad := []gui.GlyphQuad{{X0: 0, Y0: 0, X1: 8, Y1: 8, U1: 1, V1: 1}}

	render(t, r, func(dl *gui.DrawList) {
		dl.SetTexture(id)
		dl.AddGlyphQuads(quad, gui.RGBA(255, 255, 255, 255))
	})
	assert.Len(t, r.tinted, 1)

	require.NoError(t, r.UpdateAlphaTexture(id, 1, 1, []byte{0}))
	assert.Empty(t, r.tinted)
}

func TestResize(t *testing.T) {
	r := New(16, 16)
	r.Resize(32, 24)
	assert.Equal(t, 32, r.Context().Width())
	assert.Equal(t, 24, r.Context().Height())

	r.Resize(0, 10)
	assert.Equal(t, 32, r.Context().Width())
}

func TestGUIFrame(t *testing.T) {
	r := New(200, 100)
	r.Clear([4]float32{0, 0, 0, 1})
	ui := gui.New(r)

	ctx := ui.Begin(gui.NewInputState(), gui.Vec2{X: 200, Y: 100}, 1.0/60)
	ctx.Window(func() {
		ctx.Text("hi")
	})
	require.NoError(t, ui.End())

	win := gui.DefaultStyle().WindowColor
	wr, wg, wb, wa := gui.UnpackRGBA(win)
	assert.Equal(t, color.NRGBA{R: wr, G: wg, B: wb, A: wa}, pixel(r, 150, 80))
}

func TestClipPolygon(t *testing.T) {
	square := []gg.Point{gg.Pt(0, 0), gg.Pt(10, 0), gg.Pt(10, 10), gg.Pt(0, 10)}

	got := clipPolygon(nil, square, [4]float32{5, -1, 20, 20})
	require.Len(t, got, 4)
	for _, p := range got {
		assert.GreaterOrEqual(t, p.X, 5.0)
		assert.LessOrEqual(t, p.X, 10.0)
	}

	assert.Empty(t, clipPolygon(nil, square, [4]float32{20, 20, 30, 30}))
	assert.Len(t, clipPolygon(nil, square, [4]float32{-5, -5, 50, 50}), 4)
}
