// Package ggpaint replays gui draw lists onto a gg 2D context. It backs the
// WebGPU host, which presents the context through ggcanvas, and renders
// frames off screen in tests.
package ggpaint

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"

	gui "github.com/go-theft-auto/gui-examples"
)

// ErrUnknownTexture is returned for texture IDs the renderer never created.
var ErrUnknownTexture = errors.New("ggpaint: unknown texture")

// maxTinted bounds the cache of colored glyph images.
const maxTinted = 4096

type alphaTexture struct {
	width, height int
	pix           []byte
}

type tintKey struct {
	texture uint32
	src     image.Rectangle
	color   uint32
}

// Renderer implements gui.Renderer and gui.TextureUploader on top of a
// gg.Context. Textures are single-channel coverage maps tinted by vertex
// color, matching the GPU backends.
type Renderer struct {
	dc       *gg.Context
	textures map[uint32]*alphaTexture
	nextID   uint32
	fontTex  uint32
	tinted   map[tintKey]*gg.ImageBuf
	poly     []gg.Point
	clipped  []gg.Point
}

// New creates a renderer drawing into a fresh width by height context.
func New(width, height int) *Renderer {
	return NewForContext(gg.NewContext(width, height))
}

// NewForContext draws into dc, typically the context of a ggcanvas.Canvas.
func NewForContext(dc *gg.Context) *Renderer {
	r := &Renderer{
		dc:       dc,
		textures: make(map[uint32]*alphaTexture),
		tinted:   make(map[tintKey]*gg.ImageBuf),
	}
	w, h, pix := gui.BuiltinFontAtlas()
	r.fontTex, _ = r.CreateAlphaTexture(w, h, pix)
	return r
}

// Context returns the target context.
func (r *Renderer) Context() *gg.Context { return r.dc }

// SetContext retargets the renderer. Textures are kept.
func (r *Renderer) SetContext(dc *gg.Context) { r.dc = dc }

// Image returns the current frame.
func (r *Renderer) Image() image.Image { return r.dc.Image() }

// Clear fills the target with c, given as RGBA in [0, 1].
func (r *Renderer) Clear(c [4]float32) {
	r.dc.ClearWithColor(gg.RGBA{R: float64(c[0]), G: float64(c[1]), B: float64(c[2]), A: float64(c[3])})
}

func (r *Renderer) FontTextureID() uint32 { return r.fontTex }

// Resize resizes the target context. Failures leave the old size.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	_ = r.dc.Resize(width, height)
}

func (r *Renderer) CreateAlphaTexture(width, height int, pixels []byte) (uint32, error) {
	if width <= 0 || height <= 0 || len(pixels) < width*height {
		return 0, fmt.Errorf("ggpaint: texture %dx%d with %d bytes", width, height, len(pixels))
	}
	r.nextID++
	r.textures[r.nextID] = &alphaTexture{
		width:  width,
		height: height,
		pix:    append([]byte(nil), pixels[:width*height]...),
	}
	return r.nextID, nil
}

func (r *Renderer) UpdateAlphaTexture(id uint32, width, height int, pixels []byte) error {
	tex, ok := r.textures[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTexture, id)
	}
	if width != tex.width || height != tex.height || len(pixels) < width*height {
		return fmt.Errorf("ggpaint: update %d to %dx%d with %d bytes", id, width, height, len(pixels))
	}
	copy(tex.pix, pixels)
	for k := range r.tinted {
		if k.texture == id {
			delete(r.tinted, k)
		}
	}
	return nil
}

// Render draws dl over the current contents.
func (r *Renderer) Render(dl *gui.DrawList) error {
	bounds := [4]float32{0, 0, float32(r.dc.Width()), float32(r.dc.Height())}
	for i := range dl.CmdBuffer {
		cmd := &dl.CmdBuffer[i]
		if cmd.ElemCount == 0 {
			continue
		}
		clip := intersect(cmd.ClipRect, bounds)
		if clip[2] <= clip[0] || clip[3] <= clip[1] {
			continue
		}
		var tex *alphaTexture
		if cmd.TextureID != 0 {
			t, ok := r.textures[cmd.TextureID]
			if !ok {
				return fmt.Errorf("%w: %d", ErrUnknownTexture, cmd.TextureID)
			}
			tex = t
		}

		idx := dl.IdxBuffer[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount]
		vtx := dl.VtxBuffer[cmd.VertexOffset:]
		for j := 0; j+2 < len(idx); {
			// Quads are emitted as a,b,c,a,c,d.
			if j+5 < len(idx) && idx[j+3] == idx[j] && idx[j+4] == idx[j+2] {
				a, b, c, d := vtx[idx[j]], vtx[idx[j+1]], vtx[idx[j+2]], vtx[idx[j+5]]
				if tex != nil {
					r.drawGlyph(cmd.TextureID, tex, a, c, clip)
				} else {
					r.fillPolygon(clip, a.Color, a, b, c, d)
				}
				j += 6
				continue
			}
			a, b, c := vtx[idx[j]], vtx[idx[j+1]], vtx[idx[j+2]]
			r.fillPolygon(clip, a.Color, a, b, c)
			j += 3
		}
	}
	return nil
}

func (r *Renderer) fillPolygon(clip [4]float32, c uint32, verts ...gui.Vertex) {
	cr, cg, cb, ca := gui.UnpackRGBA(c)
	if ca == 0 {
		return
	}
	r.poly = r.poly[:0]
	for _, v := range verts {
		r.poly = append(r.poly, gg.Pt(float64(v.Pos[0]), float64(v.Pos[1])))
	}
	r.clipped = clipPolygon(r.clipped[:0], r.poly, clip)
	if len(r.clipped) < 3 {
		return
	}
	r.dc.SetColor(color.NRGBA{R: cr, G: cg, B: cb, A: ca})
	r.dc.MoveTo(r.clipped[0].X, r.clipped[0].Y)
	for _, p := range r.clipped[1:] {
		r.dc.LineTo(p.X, p.Y)
	}
	r.dc.ClosePath()
	_ = r.dc.Fill()
}

// drawGlyph blits the texture region between the top-left vertex a and the
// bottom-right vertex c, tinted by a's color and cut to clip.
func (r *Renderer) drawGlyph(id uint32, tex *alphaTexture, a, c gui.Vertex, clip [4]float32) {
	if a.Color>>24 == 0 {
		return
	}
	x0, y0, x1, y1 := a.Pos[0], a.Pos[1], c.Pos[0], c.Pos[1]
	if x1 <= x0 || y1 <= y0 {
		return
	}
	src := image.Rect(
		int(math.Round(float64(a.TexCoord[0]*float32(tex.width)))),
		int(math.Round(float64(a.TexCoord[1]*float32(tex.height)))),
		int(math.Round(float64(c.TexCoord[0]*float32(tex.width)))),
		int(math.Round(float64(c.TexCoord[1]*float32(tex.height)))),
	).Intersect(image.Rect(0, 0, tex.width, tex.height))
	if src.Empty() {
		return
	}

	ix0, iy0 := max(x0, clip[0]), max(y0, clip[1])
	ix1, iy1 := min(x1, clip[2]), min(y1, clip[3])
	if ix1 <= ix0 || iy1 <= iy0 {
		return
	}
	sx := float32(src.Dx()) / (x1 - x0)
	sy := float32(src.Dy()) / (y1 - y0)
	sub := image.Rect(
		int((ix0-x0)*sx), int((iy0-y0)*sy),
		int(math.Ceil(float64((ix1-x0)*sx))), int(math.Ceil(float64((iy1-y0)*sy))),
	)
	if sub.Empty() {
		return
	}

	interp := gg.InterpBilinear
	if x1-x0 == float32(src.Dx()) && y1-y0 == float32(src.Dy()) {
		interp = gg.InterpNearest
	}
	r.dc.DrawImageEx(r.tint(id, tex, src, a.Color), gg.DrawImageOptions{
		X:             float64(ix0),
		Y:             float64(iy0),
		DstWidth:      float64(ix1 - ix0),
		DstHeight:     float64(iy1 - iy0),
		SrcRect:       &sub,
		Interpolation: interp,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
}

// tint returns the src region of tex as an image of color c with the
// texture as its alpha.
func (r *Renderer) tint(id uint32, tex *alphaTexture, src image.Rectangle, c uint32) *gg.ImageBuf {
	key := tintKey{texture: id, src: src, color: c}
	if img, ok := r.tinted[key]; ok {
		return img
	}
	if len(r.tinted) >= maxTinted {
		clear(r.tinted)
	}
	cr, cg, cb, ca := gui.UnpackRGBA(c)
	img := image.NewNRGBA(image.Rect(0, 0, src.Dx(), src.Dy()))
	for y := 0; y < src.Dy(); y++ {
		row := tex.pix[(src.Min.Y+y)*tex.width+src.Min.X:]
		for x := 0; x < src.Dx(); x++ {
			o := img.PixOffset(x, y)
			img.Pix[o] = cr
			img.Pix[o+1] = cg
			img.Pix[o+2] = cb
			img.Pix[o+3] = uint8(uint16(row[x]) * uint16(ca) / 255)
		}
	}
	buf := gg.ImageBufFromImage(img)
	r.tinted[key] = buf
	return buf
}

func intersect(a, b [4]float32) [4]float32 {
	return [4]float32{max(a[0], b[0]), max(a[1], b[1]), min(a[2], b[2]), min(a[3], b[3])}
}

var (
	_ gui.Renderer        = (*Renderer)(nil)
	_ gui.TextureUploader = (*Renderer)(nil)
)
