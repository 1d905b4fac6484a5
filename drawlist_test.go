package gui_test

import (
	"testing"

	gui "github.com/go-theft-auto/gui-examples"
)

func TestInsertRectOnEmptyList(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.InsertRect(0, 0, 10, 10, gui.ColorWhite)
	dl.AddRect(20, 20, 5, 5, gui.ColorWhite)
	dl.Finalize()

	if len(dl.VtxBuffer) != 8 || len(dl.IdxBuffer) != 12 {
		t.Fatalf("buffers = %d verts %d idx, want 8 12", len(dl.VtxBuffer), len(dl.IdxBuffer))
	}
	if dl.VtxBuffer[0].Pos != [2]float32{0, 0} {
		t.Errorf("background should come first, got %v", dl.VtxBuffer[0].Pos)
	}
	var elems uint32
	for _, cmd := range dl.CmdBuffer {
		elems += cmd.ElemCount
	}
	if elems != 12 {
		t.Errorf("commands cover %d indices, want 12", elems)
	}
}

func TestInsertRectBehindContent(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(20, 20, 5, 5, gui.ColorRed)
	dl.InsertRect(0, 0, 100, 100, gui.ColorBlue)
	dl.Finalize()

	if dl.VtxBuffer[0].Color != gui.ColorBlue {
		t.Error("inserted rect should be drawn first")
	}
	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("commands = %d, want 2", len(dl.CmdBuffer))
	}
	content := dl.CmdBuffer[1]
	if content.VertexOffset != 4 || content.IndexOffset != 6 || content.ElemCount != 6 {
		t.Errorf("content command = %+v, want offsets 4/6 and 6 indices", content)
	}
}

func TestInvisibleRectSkipped(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, gui.RGBA(255, 255, 255, 0))
	dl.InsertRect(0, 0, 10, 10, 0)
	if len(dl.VtxBuffer) != 0 {
		t.Errorf("transparent rects emitted %d vertices", len(dl.VtxBuffer))
	}
}

func TestClipRectIntersection(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.PushClipRect(0, 0, 100, 100)
	dl.PushClipRect(50, 50, 200, 200)
	if got := dl.ClipRect(); got != [4]float32{50, 50, 100, 100} {
		t.Errorf("nested clip = %v, want [50 50 100 100]", got)
	}
	dl.AddRect(60, 60, 10, 10, gui.ColorWhite)
	dl.PopClipRect()
	if got := dl.ClipRect(); got != [4]float32{0, 0, 100, 100} {
		t.Errorf("clip after pop = %v", got)
	}
	dl.AddRect(10, 10, 10, 10, gui.ColorWhite)
	dl.PopClipRect()
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("commands = %d, want 2", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ClipRect != [4]float32{50, 50, 100, 100} {
		t.Errorf("first command clip = %v", dl.CmdBuffer[0].ClipRect)
	}
}

func TestTextureSwitchSplitsCommands(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	dl.AddRect(0, 0, 1, 1, gui.ColorWhite)
	dl.SetTexture(7)
	dl.AddRect(0, 0, 1, 1, gui.ColorWhite)
	dl.SetTexture(0)
	dl.AddRect(0, 0, 1, 1, gui.ColorWhite)
	dl.Finalize()

	if len(dl.CmdBuffer) != 3 || dl.CmdBuffer[1].TextureID != 7 {
		t.Errorf("commands = %+v, want 3 with the middle one textured", dl.CmdBuffer)
	}
}

func TestVertexOverflowSplitsCommand(t *testing.T) {
	dl := gui.AcquireDrawList()
	defer gui.ReleaseDrawList(dl)

	// 16385 quads need 65540 vertices, past the uint16 index range.
	const quads = 16385
	for i := range quads {
		dl.AddRect(float32(i%100), 0, 1, 1, gui.ColorWhite)
	}
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("commands = %d, want 2", len(dl.CmdBuffer))
	}
	for _, cmd := range dl.CmdBuffer {
		end := cmd.IndexOffset + cmd.ElemCount
		for _, idx := range dl.IdxBuffer[cmd.IndexOffset:end] {
			if int(cmd.VertexOffset)+int(idx) >= len(dl.VtxBuffer) {
				t.Fatalf("index %d out of range for command at vertex %d", idx, cmd.VertexOffset)
			}
		}
	}
	if dl.CmdBuffer[1].VertexOffset != 65536 {
		t.Errorf("second command starts at vertex %d, want 65536", dl.CmdBuffer[1].VertexOffset)
	}
}
