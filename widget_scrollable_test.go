package gui_test

import (
	"fmt"
	"strings"
	"testing"

	gui "github.com/go-theft-auto/gui-examples"
)

// drawLines draws n one-line rows into a 100px Scrollable named "list". Each
// row is 16px high with 4px between rows.
func drawLines(ui *gui.GUI, input *gui.InputState, n int, opts ...gui.Option) *gui.ScrollableState {
	runFrame(ui, input, func(ctx *gui.Context) {
		ctx.Scrollable("list", 100, opts...)(func() {
			for i := range n {
				ctx.Text(fmt.Sprintf("line %d", i))
			}
		})
	})
	return ui.Context().GetScrollableState("list")
}

func contentHeight(n int) float32 {
	return float32(n*16 + (n-1)*4)
}

func TestScrollableMeasuresContent(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	s := drawLines(ui, input, 50)
	if s == nil {
		t.Fatal("expected scrollable state after drawing")
	}
	if s.ContentHeight != contentHeight(50) {
		t.Errorf("ContentHeight = %v, want %v", s.ContentHeight, contentHeight(50))
	}
	if s.ViewportHeight != 100 {
		t.Errorf("ViewportHeight = %v, want 100", s.ViewportHeight)
	}
	if s.ScrollY != 0 {
		t.Errorf("ScrollY = %v, want 0 without StickToBottom", s.ScrollY)
	}
}

func TestScrollableMouseWheel(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	input.SetMousePos(50, 50)

	drawLines(ui, input, 50)
	input.SetMouseWheel(0, -3)
	s := drawLines(ui, input, 50)
	if s.ScrollY != 90 {
		t.Errorf("ScrollY after wheel = %v, want 90", s.ScrollY)
	}

	// The wheel outside the viewport does nothing.
	input.SetMousePos(50, 300)
	input.SetMouseWheel(0, -3)
	s = drawLines(ui, input, 50)
	if s.ScrollY != 90 {
		t.Errorf("ScrollY after wheel outside = %v, want 90", s.ScrollY)
	}
}

func TestScrollableStickToBottom(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	stick := gui.StickToBottom()

	s := drawLines(ui, input, 60, stick)
	maxY := contentHeight(60) - 100
	if s.ScrollY != maxY {
		t.Fatalf("first frame ScrollY = %v, want %v", s.ScrollY, maxY)
	}

	// Scrolling up unpins the view.
	input.SetMousePos(50, 50)
	input.SetMouseWheel(0, 3)
	s = drawLines(ui, input, 60, stick)
	if s.ScrollY != maxY-90 || s.StuckToBottom {
		t.Fatalf("after wheel up ScrollY = %v stuck=%v, want %v false", s.ScrollY, s.StuckToBottom, maxY-90)
	}

	// New content no longer moves the view.
	s = drawLines(ui, input, 70, stick)
	if s.ScrollY != maxY-90 {
		t.Errorf("ScrollY after growth = %v, want %v", s.ScrollY, maxY-90)
	}

	// End scrolls to the bottom and pins it again.
	press(input, gui.KeyEnd)
	s = drawLines(ui, input, 70, stick)
	input.SetKey(gui.KeyEnd, false)
	if !s.StuckToBottom {
		t.Fatal("End should re-pin the view")
	}
	s = drawLines(ui, input, 80, stick)
	if want := contentHeight(80) - 100; s.ScrollY != want {
		t.Errorf("ScrollY after re-pin and growth = %v, want %v", s.ScrollY, want)
	}
}

func TestScrollableKeysIgnoredWhileFieldFocused(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	input.SetMousePos(50, 50)
	text := ""

	draw := func() *gui.ScrollableState {
		runFrame(ui, input, func(ctx *gui.Context) {
			ctx.Scrollable("list", 100)(func() {
				ctx.InputText("##f", &text, gui.ForceFocus())
				for i := range 50 {
					ctx.Text(fmt.Sprintf("line %d", i))
				}
			})
		})
		return ui.Context().GetScrollableState("list")
	}
	draw()
	press(input, gui.KeyEnd)
	if s := draw(); s.ScrollY != 0 {
		t.Errorf("End with a focused field scrolled to %v", s.ScrollY)
	}
}

func TestScrollableClampsWhenContentShrinks(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	input.SetMousePos(50, 50)

	drawLines(ui, input, 50)
	press(input, gui.KeyEnd)
	s := drawLines(ui, input, 50)
	input.SetKey(gui.KeyEnd, false)
	if s.ScrollY != contentHeight(50)-100 {
		t.Fatalf("ScrollY after End = %v, want %v", s.ScrollY, contentHeight(50)-100)
	}

	s = drawLines(ui, input, 10)
	if want := contentHeight(10) - 100; s.ScrollY != want {
		t.Errorf("ScrollY after shrink = %v, want %v", s.ScrollY, want)
	}
}

func TestEnsureScrollVisible(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	drawLines(ui, input, 50)
	ui.Context().EnsureScrollVisible("list", 500, 16)
	s := ui.Context().GetScrollableState("list")
	if s.ScrollY != 416 {
		t.Errorf("ScrollY = %v, want 416", s.ScrollY)
	}

	// Already visible: no movement.
	ui.Context().EnsureScrollVisible("list", 450, 16)
	if s.ScrollY != 416 {
		t.Errorf("ScrollY = %v, want unchanged 416", s.ScrollY)
	}

	// Unknown names are ignored.
	ui.Context().EnsureScrollVisible("missing", 10, 0)
}

func TestScrollableHorizontal(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	input.SetMousePos(50, 50)
	long := strings.Repeat("x", 100) // 1600px

	draw := func() *gui.ScrollableState {
		runFrame(ui, input, func(ctx *gui.Context) {
			ctx.Scrollable("wide", 100, gui.EnableHorizontal())(func() {
				ctx.Text(long)
			})
		})
		return ui.Context().GetScrollableState("wide")
	}

	s := draw()
	if s.ContentWidth != 1600 {
		t.Fatalf("ContentWidth = %v, want 1600", s.ContentWidth)
	}

	input.ModShift = true
	input.SetMouseWheel(0, -2)
	s = draw()
	input.ModShift = false
	if s.ScrollX != 60 || s.ScrollY != 0 {
		t.Errorf("Shift+wheel scrolled to (%v, %v), want (60, 0)", s.ScrollX, s.ScrollY)
	}
}

func TestListClipped(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()
	input.SetMousePos(50, 50)

	var drawn []int
	draw := func() *gui.ScrollableState {
		drawn = drawn[:0]
		runFrame(ui, input, func(ctx *gui.Context) {
			ctx.Scrollable("rows", 100)(func() {
				ctx.ListClipped(1000, 100, func(i int) {
					drawn = append(drawn, i)
					ctx.Text(fmt.Sprintf("row %d", i))
				})
			})
		})
		return ui.Context().GetScrollableState("rows")
	}

	s := draw()
	if s.ContentHeight != contentHeight(1000) {
		t.Errorf("ContentHeight = %v, want %v", s.ContentHeight, contentHeight(1000))
	}
	if len(drawn) == 0 || drawn[0] != 0 || len(drawn) > 10 {
		t.Errorf("rows drawn at top = %v", drawn)
	}

	press(input, gui.KeyEnd)
	draw()
	input.SetKey(gui.KeyEnd, false)
	s = draw()
	if s.ContentHeight != contentHeight(1000) {
		t.Errorf("ContentHeight at bottom = %v, want %v", s.ContentHeight, contentHeight(1000))
	}
	if len(drawn) == 0 || drawn[len(drawn)-1] != 999 || len(drawn) > 10 {
		t.Errorf("rows drawn at bottom = %v", drawn)
	}
}

func TestListClippedOutsideScrollableDrawsAll(t *testing.T) {
	ui := gui.New(&mockRenderer{})
	input := gui.NewInputState()

	n := 0
	runFrame(ui, input, func(ctx *gui.Context) {
		ctx.ListClipped(25, 100, func(i int) {
			n++
			ctx.Text("row")
		})
	})
	if n != 25 {
		t.Errorf("rows drawn = %d, want 25", n)
	}
}

func TestNewListClipper(t *testing.T) {
	tests := []struct {
		name               string
		total              int
		scrollY            float32
		wantStart, wantEnd int
	}{
		{"top", 100, 0, 0, 8},
		{"middle", 100, 400, 19, 27},
		{"bottom", 100, 1900, 94, 100},
		{"short", 3, 0, 0, 3},
		{"empty", 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := gui.NewListClipper(tt.total, 20, 100, tt.scrollY)
			if c.Start != tt.wantStart || c.End != tt.wantEnd {
				t.Errorf("range = [%d, %d), want [%d, %d)", c.Start, c.End, tt.wantStart, tt.wantEnd)
			}
		})
	}
}
