package gui

import (
	"math"
	"sync"
)

// maxCmdVertices is the most vertices one command can address with uint16 indices.
const maxCmdVertices = math.MaxUint16 + 1

// noClip is the clip rectangle used when nothing is pushed.
var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// Lists are rebuilt every frame, so their buffers are pooled.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList returns a cleared list from the pool.
// Pair it with ReleaseDrawList.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates one frame of indexed triangles. Consecutive primitives
// sharing a texture and clip rect are batched into a single DrawCmd; index
// values are relative to the command's VertexOffset.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    uint32
	cmdOffset    uint32 // first vertex of the open command
	idxCmdOffset uint32 // first index of the open command
}

// Clear empties the list and keeps its capacity.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = noClip
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect restricts later primitives to the given rectangle intersected
// with the current clip.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	c := dl.currentClip
	dl.currentClip = [4]float32{maxf(x1, c[0]), maxf(y1, c[1]), minf(x2, c[2]), minf(y2, c[3])}
	dl.splitDraw()
}

func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.currentClip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.splitDraw()
}

// ClipRect returns the active clip rectangle as x1, y1, x2, y2.
func (dl *DrawList) ClipRect() [4]float32 {
	return dl.currentClip
}

// SetTexture switches the texture for subsequent primitives. Texture 0 draws
// untextured geometry.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw closes the open command and opens a new one with the current
// texture and clip rect.
func (dl *DrawList) splitDraw() {
	dl.closeCmd()
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) closeCmd() {
	if len(dl.CmdBuffer) > 0 {
		last := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		last.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}
}

// addVertices appends verts and returns the index of the first one relative
// to the open command. A new command is opened when the uint16 range would
// overflow.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > maxCmdVertices {
		dl.splitDraw()
	}
	start := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return start
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// addQuad emits two triangles for the corners given clockwise from top-left.
func (dl *DrawList) addQuad(a, b, c, d Vertex) {
	i := dl.addVertices(a, b, c, d)
	dl.addIndices(i, i+1, i+2, i, i+2, i+3)
}

func invisible(color uint32) bool {
	return color&0xFF000000 == 0
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if invisible(color) {
		return
	}
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRectOutline draws the four edges of a rectangle inside its bounds.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if invisible(color) {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a segment as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if invisible(color) {
		return
	}
	dx, dy := x2-x1, y2-y1
	inv := float32(1)
	if l := math.Hypot(float64(dx), float64(dy)); l > 0 {
		inv = float32(1 / l)
	}
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	dl.addQuad(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
}

// AddPolyline draws connected segments through points.
func (dl *DrawList) AddPolyline(points []Vec2, color uint32, thickness float32) {
	for i := 1; i < len(points); i++ {
		dl.AddLine(points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, color, thickness)
	}
}

func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if invisible(color) {
		return
	}
	i := dl.addVertices(
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)
	dl.addIndices(i, i+1, i+2)
}

// AddText draws text with the built-in bitmap font. The caller binds the
// built-in font texture. charWidth and charHeight are the cell size at scale 1.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, fontScale float32, charWidth, charHeight float32) {
	if invisible(color) || text == "" {
		return
	}
	cw := charWidth * fontScale
	ch := charHeight * fontScale

	col := 0
	for _, r := range text {
		u0, v0, u1, v1 := BuiltinGlyphUV(r)
		px := x + float32(col)*cw
		dl.addQuad(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y + ch}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y + ch}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		col++
	}
}

// GlyphQuad is one positioned glyph from a proportional font atlas.
type GlyphQuad struct {
	X0, Y0 float32 // screen top-left
	X1, Y1 float32 // screen bottom-right
	U0, V0 float32
	U1, V1 float32
}

// AddGlyphQuads draws glyphs produced by a FontProvider. The caller binds the
// provider's atlas texture.
func (dl *DrawList) AddGlyphQuads(quads []GlyphQuad, color uint32) {
	if invisible(color) {
		return
	}
	for _, q := range quads {
		dl.addQuad(
			Vertex{Pos: [2]float32{q.X0, q.Y0}, TexCoord: [2]float32{q.U0, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y0}, TexCoord: [2]float32{q.U1, q.V0}, Color: color},
			Vertex{Pos: [2]float32{q.X1, q.Y1}, TexCoord: [2]float32{q.U1, q.V1}, Color: color},
			Vertex{Pos: [2]float32{q.X0, q.Y1}, TexCoord: [2]float32{q.U0, q.V1}, Color: color},
		)
	}
}

// InsertRect puts a filled rectangle behind everything drawn so far. Panels
// use it to paint their background once the content size is known.
func (dl *DrawList) InsertRect(x, y, w, h float32, color uint32) {
	if invisible(color) {
		return
	}

	verts := []Vertex{
		{Pos: [2]float32{x, y}, Color: color},
		{Pos: [2]float32{x + w, y}, Color: color},
		{Pos: [2]float32{x + w, y + h}, Color: color},
		{Pos: [2]float32{x, y + h}, Color: color},
	}
	dl.VtxBuffer = append(verts, dl.VtxBuffer...)
	dl.IdxBuffer = append([]uint16{0, 1, 2, 0, 2, 3}, dl.IdxBuffer...)

	// Index values stay relative to each command's base vertex; only the
	// offsets move.
	for i := range dl.CmdBuffer {
		dl.CmdBuffer[i].VertexOffset += 4
		dl.CmdBuffer[i].IndexOffset += 6
	}
	dl.cmdOffset += 4
	dl.idxCmdOffset += 6

	bg := DrawCmd{ElemCount: 6, ClipRect: dl.currentClip}
	open := len(dl.CmdBuffer) > 0
	dl.CmdBuffer = append([]DrawCmd{bg}, dl.CmdBuffer...)
	if !open {
		// The background must not become the open command.
		dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
			ClipRect:     dl.currentClip,
			TextureID:    dl.textureID,
			VertexOffset: dl.cmdOffset,
			IndexOffset:  dl.idxCmdOffset,
		})
	}
}

// Finalize closes the open command and drops empty ones. Call it once all
// primitives are added.
func (dl *DrawList) Finalize() {
	dl.closeCmd()
	kept := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			kept = append(kept, cmd)
		}
	}
	dl.CmdBuffer = kept
}
