package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/gui-examples"
	"github.com/go-theft-auto/gui-examples/config"
	"github.com/go-theft-auto/gui-examples/logger"
	"github.com/go-theft-auto/gui-examples/platform"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

// Host owns the GLFW window, its GL context and the renderer.
type Host struct {
	window   *glfw.Window
	renderer *Renderer
	vsync    bool

	emit     func(gui.Event)
	lastIME  gui.Vec2
	imeShown bool
}

// NewHost initializes GLFW, opens the window and creates the renderer.
// Call Close when done.
func NewHost(cfg config.WindowConfig, vsync bool) (*Host, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("opengl: glfw init: %w", err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("opengl: create window: %w", err)
	}
	window.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	logger.L().Info("window created", "backend", config.BackendOpenGL,
		"title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "vsync", vsync)

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("opengl: gl init: %w", err)
	}

	w, h := window.GetSize()
	renderer, err := NewRenderer(w, h)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, err
	}
	logger.L().Info("renderer created", "backend", config.BackendOpenGL, "gl", gl.GoStr(gl.GetString(gl.VERSION)))

	host := &Host{window: window, renderer: renderer, vsync: vsync}
	host.updateFramebufferScale()
	gui.SetClipboardProvider(clipboard{window: window})
	return host, nil
}

// Renderer is the gui renderer and font texture uploader of the window.
func (h *Host) Renderer() *Renderer {
	return h.renderer
}

// Size returns the window size in logical pixels.
func (h *Host) Size() (width, height int) {
	return h.window.GetSize()
}

// ContentScale returns the monitor scale of the window, used as pixels per
// point.
func (h *Host) ContentScale() float32 {
	x, _ := h.window.GetContentScale()
	if x <= 0 {
		return 1
	}
	return x
}

// Run translates window callbacks into gui events for loop and renders
// frames until the window closes.
func (h *Host) Run(loop *platform.Loop) error {
	h.emit = loop.HandleEvent
	h.installCallbacks(loop)

	w, ht := h.window.GetSize()
	loop.Resize(w, ht)
	loop.SetPixelsPerPoint(h.ContentScale())

	for !h.window.ShouldClose() && !loop.ShouldClose() {
		glfw.PollEvents()

		fw, fh := h.window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fw), int32(fh))
		c := platform.ClearColor
		gl.ClearColor(c[0], c[1], c[2], c[3])
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := loop.Frame(); err != nil {
			return err
		}
		h.placeIME(loop)
		h.window.SwapBuffers()
	}
	return nil
}

// Close frees the renderer and the window.
func (h *Host) Close() {
	gui.SetClipboardProvider(nil)
	h.renderer.Delete()
	h.window.Destroy()
	glfw.Terminate()
}

func (h *Host) installCallbacks(loop *platform.Loop) {
	h.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		h.emit(gui.KeyEvent{Key: mapKey(key), Action: mapAction(action), Mods: mapMods(mods), Scancode: scancode})
	})
	h.window.SetCharCallback(func(_ *glfw.Window, char rune) {
		h.emit(gui.CharEvent{Rune: char})
	})
	h.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := mapMouseButton(button)
		if !ok {
			return
		}
		x, y := w.GetCursorPos()
		h.emit(gui.MouseButtonEvent{Button: b, Pressed: action == glfw.Press, X: float32(x), Y: float32(y)})
	})
	h.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		h.emit(gui.CursorMovedEvent{X: float32(x), Y: float32(y)})
	})
	h.window.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		h.emit(gui.ScrollEvent{DX: float32(dx), DY: float32(dy)})
	})
	h.window.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		h.emit(gui.ResizeEvent{Width: width, Height: height})
	})
	h.window.SetFramebufferSizeCallback(func(*glfw.Window, int, int) {
		h.updateFramebufferScale()
	})
	h.window.SetContentScaleCallback(func(_ *glfw.Window, x, _ float32) {
		loop.SetPixelsPerPoint(x)
	})
	h.window.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		h.emit(gui.FocusEvent{Focused: focused})
	})
	h.window.SetCloseCallback(func(*glfw.Window) {
		h.emit(gui.CloseEvent{})
	})
}

func (h *Host) updateFramebufferScale() {
	w, _ := h.window.GetSize()
	fw, _ := h.window.GetFramebufferSize()
	if w > 0 {
		h.renderer.SetFramebufferScale(float32(fw) / float32(w))
	}
}

// placeIME reports where the candidate window belongs. GLFW 3.3 has no API
// to move it, so the position is only logged.
func (h *Host) placeIME(loop *platform.Loop) {
	pos, ok := loop.IMEPosition()
	if ok == h.imeShown && pos == h.lastIME {
		return
	}
	h.lastIME, h.imeShown = pos, ok
	if ok {
		logger.L().Debug("ime position", "x", pos.X, "y", pos.Y)
	}
}

type clipboard struct {
	window *glfw.Window
}

func (c clipboard) GetText() string {
	return c.window.GetClipboardString()
}

func (c clipboard) SetText(text string) {
	c.window.SetClipboardString(text)
}
