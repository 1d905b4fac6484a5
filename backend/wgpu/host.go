// Package wgpu hosts the gui in a gogpu window. Draw lists are painted by
// ggpaint into a ggcanvas and presented through the WebGPU surface.
package wgpu

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	gui "github.com/go-theft-auto/gui-examples"
	"github.com/go-theft-auto/gui-examples/backend/ggpaint"
	"github.com/go-theft-auto/gui-examples/config"
	"github.com/go-theft-auto/gui-examples/logger"
	"github.com/go-theft-auto/gui-examples/platform"
)

// Host owns the gogpu application and the canvas the gui is painted into.
type Host struct {
	app      *gogpu.App
	cfg      config.WindowConfig
	renderer *ggpaint.Renderer
	canvas   *ggcanvas.Canvas
	events   eventQueue

	width, height int
	err           error
}

// NewHost creates the application window. The renderer is usable right away
// for font uploads; it is attached to the GPU canvas on the first frame.
func NewHost(cfg config.WindowConfig, vsync bool) (*Host, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("wgpu: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithVSync(vsync).
		WithContinuousRender(true))
	logger.L().Info("window created", "backend", config.BackendWGPU,
		"title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "vsync", vsync)

	gui.SetClipboardProvider(clipboard{app: app})
	return &Host{
		app:      app,
		cfg:      cfg,
		renderer: ggpaint.New(cfg.Width, cfg.Height),
		width:    cfg.Width,
		height:   cfg.Height,
	}, nil
}

// Renderer is the gui renderer and font texture uploader of the window.
func (h *Host) Renderer() *ggpaint.Renderer {
	return h.renderer
}

// Size returns the window size requested at creation.
func (h *Host) Size() (width, height int) {
	return h.cfg.Width, h.cfg.Height
}

// Run feeds window events to loop and renders frames until the window
// closes or loop asks to quit. The first frame error stops the app and is
// returned.
func (h *Host) Run(loop *platform.Loop) error {
	h.installCallbacks()
	loop.Resize(h.width, h.height)
	loop.SetPixelsPerPoint(float32(h.app.ScaleFactor()))

	h.app.OnDraw(func(dc *gogpu.Context) {
		if h.err != nil {
			return
		}
		if err := h.draw(dc, loop); err != nil {
			h.err = err
			logger.L().Error("frame failed", "backend", config.BackendWGPU, "error", err)
			h.app.Quit()
		}
	})
	h.app.OnClose(func() {
		if h.canvas != nil {
			_ = h.canvas.Close()
		}
		gg.CloseAccelerator()
		gui.SetClipboardProvider(nil)
	})

	if err := h.app.Run(); err != nil {
		return fmt.Errorf("wgpu: run: %w", err)
	}
	return h.err
}

func (h *Host) draw(dc *gogpu.Context, loop *platform.Loop) error {
	w, ht := dc.Width(), dc.Height()
	if w <= 0 || ht <= 0 {
		return nil
	}
	if h.canvas == nil {
		provider := h.app.GPUContextProvider()
		if provider == nil {
			return nil
		}
		canvas, err := ggcanvas.New(provider, w, ht)
		if err != nil {
			return fmt.Errorf("wgpu: create canvas: %w", err)
		}
		h.canvas = canvas
		h.renderer.SetContext(canvas.Context())
		logger.L().Info("renderer created", "backend", config.BackendWGPU, "width", w, "height", ht)
	}
	if w != h.width || ht != h.height {
		if err := h.canvas.Resize(w, ht); err != nil {
			return fmt.Errorf("wgpu: resize canvas: %w", err)
		}
		h.renderer.SetContext(h.canvas.Context())
		h.width, h.height = w, ht
		h.events.push(gui.ResizeEvent{Width: w, Height: ht})
		loop.SetPixelsPerPoint(float32(h.app.ScaleFactor()))
	}

	h.events.drain(loop.HandleEvent)
	if loop.ShouldClose() {
		h.app.Quit()
		return nil
	}

	h.renderer.Clear(platform.ClearColor)
	if err := loop.Frame(); err != nil {
		return err
	}
	h.canvas.MarkDirty()
	return h.canvas.RenderTo(dc.AsTextureDrawer())
}

func (h *Host) installCallbacks() {
	src := h.app.EventSource()
	src.OnKeyPress(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		h.events.push(gui.KeyEvent{Key: mapKey(key), Action: gui.KeyPress, Mods: mapMods(mods)})
	})
	src.OnKeyRelease(func(key gpucontext.Key, mods gpucontext.Modifiers) {
		h.events.push(gui.KeyEvent{Key: mapKey(key), Action: gui.KeyRelease, Mods: mapMods(mods)})
	})
	src.OnTextInput(func(text string) {
		for _, r := range text {
			h.events.push(gui.CharEvent{Rune: r})
		}
	})
	src.OnMouseMove(func(x, y float64) {
		h.events.push(gui.CursorMovedEvent{X: float32(x), Y: float32(y)})
	})
	src.OnMousePress(func(button gpucontext.MouseButton, x, y float64) {
		if b, ok := mapMouseButton(button); ok {
			h.events.push(gui.MouseButtonEvent{Button: b, Pressed: true, X: float32(x), Y: float32(y)})
		}
	})
	src.OnMouseRelease(func(button gpucontext.MouseButton, x, y float64) {
		if b, ok := mapMouseButton(button); ok {
			h.events.push(gui.MouseButtonEvent{Button: b, X: float32(x), Y: float32(y)})
		}
	})
	src.OnScroll(func(dx, dy float64) {
		h.events.push(gui.ScrollEvent{DX: float32(dx), DY: float32(dy)})
	})
	src.OnFocus(func(focused bool) {
		h.events.push(gui.FocusEvent{Focused: focused})
	})
	src.OnIMECompositionStart(func() {
		h.events.push(gui.IMEEvent{Phase: gui.IMEEnabled})
	})
	src.OnIMECompositionUpdate(func(state gpucontext.IMEState) {
		h.events.push(imePreedit(state))
	})
	src.OnIMECompositionEnd(func(committed string) {
		if committed != "" {
			h.events.push(gui.IMEEvent{Phase: gui.IMECommit, Text: committed})
		}
		h.events.push(gui.IMEEvent{Phase: gui.IMEDisabled})
	})
}

func imePreedit(state gpucontext.IMEState) gui.IMEEvent {
	cursor := state.CursorPos
	if n := len([]rune(state.CompositionText)); cursor < 0 || cursor > n {
		cursor = n
	}
	return gui.IMEEvent{Phase: gui.IMEPreedit, Text: state.CompositionText, Cursor: cursor}
}

// eventQueue buffers window events until the next frame. Callbacks may run
// outside the draw callback.
type eventQueue struct {
	mu      sync.Mutex
	pending []gui.Event
	spare   []gui.Event
}

func (q *eventQueue) push(ev gui.Event) {
	q.mu.Lock()
	q.pending = append(q.pending, ev)
	q.mu.Unlock()
}

// drain hands queued events to fn in arrival order.
func (q *eventQueue) drain(fn func(gui.Event)) {
	q.mu.Lock()
	batch := q.pending
	q.pending = q.spare[:0]
	q.mu.Unlock()

	for i, ev := range batch {
		fn(ev)
		batch[i] = nil
	}
	q.mu.Lock()
	q.spare = batch
	q.mu.Unlock()
}

type clipboard struct {
	app *gogpu.App
}

func (c clipboard) GetText() string {
	text, err := c.app.ClipboardRead()
	if err != nil {
		logger.L().Warn("clipboard read failed", "error", err)
	}
	return text
}

func (c clipboard) SetText(text string) {
	if err := c.app.ClipboardWrite(text); err != nil {
		logger.L().Warn("clipboard write failed", "error", err)
	}
}
