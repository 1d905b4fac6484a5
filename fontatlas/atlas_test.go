package fontatlas_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"

	gui "github.com/go-theft-auto/gui-examples"
	"github.com/go-theft-auto/gui-examples/fontatlas"
)

type fakeUploader struct {
	created int
	width   int
	height  int
	pix     []byte
	err     error
}

func (u *fakeUploader) CreateAlphaTexture(width, height int, pixels []byte) (uint32, error) {
	if u.err != nil {
		return 0, u.err
	}
	u.created++
	u.width, u.height = width, height
	u.pix = append([]byte(nil), pixels...)
	return uint32(u.created), nil
}

type updatingUploader struct {
	fakeUploader
	updates int
}

func (u *updatingUploader) UpdateAlphaTexture(id uint32, width, height int, pixels []byte) error {
	u.updates++
	u.pix = append(u.pix[:0], pixels...)
	return nil
}

func newFont(t *testing.T, u gui.TextureUploader, opts fontatlas.Options) gui.Font {
	t.Helper()
	a, err := fontatlas.New(u, opts)
	require.NoError(t, err)
	f := a.ActiveFont()
	require.NotNil(t, f)
	return f
}

func TestNewUploadsAtlas(t *testing.T) {
	u := &fakeUploader{}
	f := newFont(t, u, fontatlas.Options{})

	assert.Equal(t, 1, u.created)
	assert.Equal(t, 1024, u.width)
	assert.Equal(t, 1024, u.height)
	assert.Len(t, u.pix, 1024*1024)
	assert.Equal(t, uint32(1), f.TextureID())

	covered := 0
	for _, p := range u.pix {
		if p > 0 {
			covered++
		}
	}
	assert.Positive(t, covered, "atlas holds no glyph coverage")
}

func TestLineHeightScale(t *testing.T) {
	f := newFont(t, &fakeUploader{}, fontatlas.Options{})

	lh := f.LineHeight(2)
	assert.Positive(t, lh)
	assert.InDelta(t, 2*lh, f.LineHeight(4), 0.001)
	assert.InDelta(t, lh/2, f.LineHeight(1), 0.001)
	assert.InDelta(t, lh, f.LineHeight(0), 0.001)
}

func TestMeasureText(t *testing.T) {
	f := newFont(t, &fakeUploader{}, fontatlas.Options{})
	lh := f.LineHeight(2)

	empty := f.MeasureText("", 2)
	assert.Zero(t, empty.X)
	assert.InDelta(t, lh, empty.Y, 0.001)

	assert.Greater(t, f.MeasureText("WWW", 2).X, f.MeasureText("iii", 2).X)

	two := f.MeasureText("ab\ncdef", 2)
	assert.InDelta(t, 2*lh, two.Y, 0.001)
	assert.InDelta(t, f.MeasureText("cdef", 2).X, two.X, 0.001)

	assert.InDelta(t, 2*f.MeasureText("hello", 2).X, f.MeasureText("hello", 4).X, 0.01)
}

func TestGetGlyphQuads(t *testing.T) {
	f := newFont(t, &fakeUploader{}, fontatlas.Options{})

	quads := f.GetGlyphQuads("a b", 10, 20, 2)
	require.Len(t, quads, 2, "space has no quad")

	for i, q := range quads {
		assert.Greater(t, q.X1, q.X0, "quad %d width", i)
		assert.Greater(t, q.Y1, q.Y0, "quad %d height", i)
		assert.GreaterOrEqual(t, q.Y0, float32(20), "quad %d above the line", i)
		for _, uv := range []float32{q.U0, q.V0, q.U1, q.V1} {
			assert.True(t, uv >= 0 && uv <= 1, "quad %d uv %v", i, uv)
		}
	}
	assert.Greater(t, quads[1].X0, quads[0].X1, "space advances the pen")

	// The slice is reused by the next call.
	x0 := quads[0].X0
	moved := f.GetGlyphQuads("a", 110, 20, 2)
	require.Len(t, moved, 1)
	assert.InDelta(t, x0+100, moved[0].X0, 0.001)
}

func TestMissingGlyphDrawsMark(t *testing.T) {
	f := newFont(t, &fakeUploader{}, fontatlas.Options{})
	mark := f.GetGlyphQuads("?", 0, 0, 2)[0]

	assert.False(t, f.HasGlyph('日'))
	got := f.GetGlyphQuads("日", 0, 0, 2)
	require.Len(t, got, 1)
	assert.Equal(t, mark, got[0])

	// Without in-place texture updates, glyphs outside the preloaded set
	// also fall back to the mark.
	assert.True(t, f.HasGlyph('Ω'))
	got = f.GetGlyphQuads("Ω", 0, 0, 2)
	require.Len(t, got, 1)
	assert.Equal(t, mark, got[0])
}

func TestGlyphAddedOnDemand(t *testing.T) {
	u := &updatingUploader{}
	f := newFont(t, u, fontatlas.Options{})
	mark := f.GetGlyphQuads("?", 0, 0, 2)[0]
	assert.Zero(t, u.updates)

	got := f.GetGlyphQuads("Ω", 0, 0, 2)
	require.Len(t, got, 1)
	assert.NotEqual(t, mark.U0, got[0].U0)
	assert.Equal(t, 1, u.updates)

	f.GetGlyphQuads("ΩΩ", 0, 0, 2)
	f.MeasureText("Ω", 2)
	assert.Equal(t, 1, u.updates, "cached glyphs do not re-upload")
	assert.Equal(t, 1, u.created)
}

func TestCustomFaceComesFirst(t *testing.T) {
	f := newFont(t, &fakeUploader{}, fontatlas.Options{Data: gomono.TTF})

	assert.InDelta(t, f.MeasureText("WWW", 2).X, f.MeasureText("iii", 2).X, 0.001)
	assert.False(t, f.HasGlyph('日'))
}

func TestRunesPreloaded(t *testing.T) {
	f := newFont(t, &fakeUploader{}, fontatlas.Options{Runes: []rune("Ω")})
	mark := f.GetGlyphQuads("?", 0, 0, 2)[0]

	got := f.GetGlyphQuads("Ω", 0, 0, 2)
	require.Len(t, got, 1)
	assert.NotEqual(t, mark, got[0])
}

func TestNewErrors(t *testing.T) {
	_, err := fontatlas.New(&fakeUploader{}, fontatlas.Options{NoFallback: true})
	assert.ErrorIs(t, err, fontatlas.ErrNoFaces)

	_, err = fontatlas.New(&fakeUploader{}, fontatlas.Options{Data: []byte("not a font")})
	assert.Error(t, err)

	_, err = fontatlas.New(&fakeUploader{}, fontatlas.Options{Path: filepath.Join(t.TempDir(), "missing.ttf")})
	assert.Error(t, err)

	boom := errors.New("no gl context")
	_, err = fontatlas.New(&fakeUploader{err: boom}, fontatlas.Options{})
	assert.ErrorIs(t, err, boom)
}

func TestSetActiveFont(t *testing.T) {
	a, err := fontatlas.New(&fakeUploader{}, fontatlas.Options{})
	require.NoError(t, err)
	small := a.ActiveFont().LineHeight(2)

	_, err = a.Add(fontatlas.Options{Name: "large", Size: 32})
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "large"}, a.Names())

	require.NoError(t, a.SetActiveFont("large"))
	assert.Greater(t, a.ActiveFont().LineHeight(2), small)

	assert.ErrorIs(t, a.SetActiveFont("serif"), fontatlas.ErrUnknownFont)
	assert.Equal(t, "large", a.Font("large").Name())

	require.NoError(t, a.SetActiveFont(""))
	assert.InDelta(t, small, a.ActiveFont().LineHeight(2), 0.001)
}

func TestContextUsesAtlas(t *testing.T) {
	a, err := fontatlas.New(&fakeUploader{}, fontatlas.Options{})
	require.NoError(t, err)

	ctx := gui.NewContext()
	ctx.SetStyle(gui.DefaultStyle())
	ctx.SetFontProvider(a)

	assert.InDelta(t, a.ActiveFont().LineHeight(2), ctx.LineHeight(), 0.001)
	assert.InDelta(t, a.ActiveFont().MeasureText("hello", 2).X, ctx.MeasureText("hello").X, 0.001)
}
