//go:build js && wasm

package webgl

import (
	"fmt"
	"syscall/js"

	gui "github.com/go-theft-auto/gui-examples"
	"github.com/go-theft-auto/gui-examples/logger"
	"github.com/go-theft-auto/gui-examples/platform"
)

// DefaultCanvasID is the canvas element the host draws into.
const DefaultCanvasID = "the_canvas_id"

// Host binds a canvas element, its WebGL context and DOM input to a loop.
type Host struct {
	doc      js.Value
	canvas   js.Value
	gl       js.Value
	ime      js.Value
	renderer *Renderer

	width, height int
	dpr           float32
	composing     bool
	lastIME       gui.Vec2

	emit      func(gui.Event)
	listeners []listener
	funcs     []js.Func
	done      chan error
}

// NewHost looks up the canvas by id and creates the renderer.
func NewHost(canvasID string) (*Host, error) {
	if canvasID == "" {
		canvasID = DefaultCanvasID
	}
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", canvasID)
	if canvas.IsNull() {
		return nil, fmt.Errorf("webgl: no canvas %q", canvasID)
	}
	gl := canvas.Call("getContext", "webgl", map[string]any{"alpha": false, "antialias": false})
	if gl.IsNull() {
		return nil, ErrNoWebGL
	}

	h := &Host{doc: doc, canvas: canvas, gl: gl, done: make(chan error, 1)}
	h.measure()
	renderer, err := NewRenderer(gl, h.width, h.height)
	if err != nil {
		return nil, err
	}
	renderer.SetScale(h.dpr)
	h.renderer = renderer
	h.ime = h.createIMEInput()
	gui.SetClipboardProvider(&clipboard{})

	logger.L().Info("renderer created", "backend", "webgl",
		"canvas", canvasID, "width", h.width, "height", h.height, "dpr", h.dpr)
	return h, nil
}

// Renderer is the gui renderer and font texture uploader of the canvas.
func (h *Host) Renderer() *Renderer {
	return h.renderer
}

// PixelsPerPoint is the device pixel ratio.
func (h *Host) PixelsPerPoint() float32 {
	return h.dpr
}

// Run installs DOM listeners and renders on animation frames. It blocks
// until a frame fails or the loop asks to close.
func (h *Host) Run(loop *platform.Loop) error {
	h.emit = loop.HandleEvent
	h.installListeners()
	defer h.release()

	loop.Resize(h.width, h.height)
	loop.SetPixelsPerPoint(h.dpr)

	var frame js.Func
	frame = js.FuncOf(func(js.Value, []js.Value) any {
		if err := h.frame(loop); err != nil {
			h.done <- err
			return nil
		}
		if loop.ShouldClose() {
			h.done <- nil
			return nil
		}
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	h.funcs = append(h.funcs, frame)
	js.Global().Call("requestAnimationFrame", frame)
	return <-h.done
}

func (h *Host) frame(loop *platform.Loop) error {
	if h.measure() {
		h.renderer.SetScale(h.dpr)
		loop.SetPixelsPerPoint(h.dpr)
		h.emit(gui.ResizeEvent{Width: h.width, Height: h.height})
	}
	gl := h.gl
	gl.Call("viewport", 0, 0, h.canvas.Get("width").Int(), h.canvas.Get("height").Int())
	c := platform.ClearColor
	gl.Call("clearColor", c[0], c[1], c[2], c[3])
	gl.Call("clear", gl.Get("COLOR_BUFFER_BIT"))

	if err := loop.Frame(); err != nil {
		return err
	}
	h.placeIME(loop)
	return nil
}

// measure syncs the canvas backing store with its CSS size and reports
// whether anything changed.
func (h *Host) measure() bool {
	dpr := float32(js.Global().Get("devicePixelRatio").Float())
	if dpr <= 0 {
		dpr = 1
	}
	w := h.canvas.Get("clientWidth").Int()
	ht := h.canvas.Get("clientHeight").Int()
	if w == h.width && ht == h.height && dpr == h.dpr {
		return false
	}
	h.width, h.height, h.dpr = w, ht, dpr
	h.canvas.Set("width", int(float32(w)*dpr))
	h.canvas.Set("height", int(float32(ht)*dpr))
	return true
}

// createIMEInput adds the hidden textarea that receives keyboard focus, so
// the browser shows its IME next to the text cursor.
func (h *Host) createIMEInput() js.Value {
	ta := h.doc.Call("createElement", "textarea")
	style := ta.Get("style")
	style.Set("position", "absolute")
	style.Set("opacity", "0")
	style.Set("width", "1px")
	style.Set("height", "1px")
	style.Set("left", "0px")
	style.Set("top", "0px")
	style.Set("pointerEvents", "none")
	ta.Set("autocapitalize", "off")
	ta.Set("spellcheck", false)
	h.doc.Get("body").Call("appendChild", ta)
	return ta
}

func (h *Host) placeIME(loop *platform.Loop) {
	pos, ok := loop.IMEPosition()
	if !ok || pos == h.lastIME {
		return
	}
	h.lastIME = pos
	rect := h.canvas.Call("getBoundingClientRect")
	style := h.ime.Get("style")
	style.Set("left", fmt.Sprintf("%.0fpx", rect.Get("left").Float()+float64(pos.X)))
	style.Set("top", fmt.Sprintf("%.0fpx", rect.Get("top").Float()+float64(pos.Y)))
}

func (h *Host) listen(target js.Value, event string, fn func(e js.Value)) {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		fn(args[0])
		return nil
	})
	h.listeners = append(h.listeners, listener{target: target, event: event, fn: f})
	target.Call("addEventListener", event, f)
}

type listener struct {
	target js.Value
	event  string
	fn     js.Func
}

func (h *Host) installListeners() {
	h.listen(h.canvas, "mousedown", func(e js.Value) {
		if b, ok := mapButton(e.Get("button").Int()); ok {
			x, y := h.eventPos(e)
			h.emit(gui.MouseButtonEvent{Button: b, Pressed: true, X: x, Y: y})
		}
		h.ime.Call("focus")
		e.Call("preventDefault")
	})
	h.listen(js.Global(), "mouseup", func(e js.Value) {
		if b, ok := mapButton(e.Get("button").Int()); ok {
			x, y := h.eventPos(e)
			h.emit(gui.MouseButtonEvent{Button: b, X: x, Y: y})
		}
	})
	h.listen(js.Global(), "mousemove", func(e js.Value) {
		x, y := h.eventPos(e)
		h.emit(gui.CursorMovedEvent{X: x, Y: y})
	})
	h.listen(h.canvas, "wheel", func(e js.Value) {
		// Browsers report pixels with down positive; gui scrolls in lines
		// with up positive.
		h.emit(gui.ScrollEvent{
			DX: -float32(e.Get("deltaX").Float()) / 50,
			DY: -float32(e.Get("deltaY").Float()) / 50,
		})
		e.Call("preventDefault")
	})
	h.listen(h.canvas, "contextmenu", func(e js.Value) {
		e.Call("preventDefault")
	})

	h.listen(h.ime, "keydown", func(e js.Value) { h.onKey(e, true) })
	h.listen(h.ime, "keyup", func(e js.Value) { h.onKey(e, false) })
	h.listen(h.ime, "input", func(e js.Value) {
		if h.composing || e.Get("isComposing").Truthy() {
			return
		}
		for _, r := range h.ime.Get("value").String() {
			h.emit(gui.CharEvent{Rune: r})
		}
		h.ime.Set("value", "")
	})
	h.listen(h.ime, "compositionstart", func(js.Value) {
		h.composing = true
		h.emit(gui.IMEEvent{Phase: gui.IMEEnabled})
	})
	h.listen(h.ime, "compositionupdate", func(e js.Value) {
		text := e.Get("data").String()
		h.emit(gui.IMEEvent{Phase: gui.IMEPreedit, Text: text, Cursor: len([]rune(text))})
	})
	h.listen(h.ime, "compositionend", func(e js.Value) {
		h.composing = false
		h.emit(gui.IMEEvent{Phase: gui.IMECommit, Text: e.Get("data").String()})
		h.emit(gui.IMEEvent{Phase: gui.IMEDisabled})
		h.ime.Set("value", "")
	})
	h.listen(h.ime, "focus", func(js.Value) { h.emit(gui.FocusEvent{Focused: true}) })
	h.listen(h.ime, "blur", func(js.Value) { h.emit(gui.FocusEvent{Focused: false}) })
}

func (h *Host) onKey(e js.Value, down bool) {
	if e.Get("isComposing").Truthy() {
		return
	}
	key := mapCode(e.Get("code").String())
	if key == gui.KeyNone {
		return
	}
	action := gui.KeyRelease
	if down {
		action = gui.KeyPress
		if e.Get("repeat").Truthy() {
			action = gui.KeyRepeat
		}
	}
	mods := mapMods(e.Get("shiftKey").Truthy(), e.Get("ctrlKey").Truthy(),
		e.Get("altKey").Truthy(), e.Get("metaKey").Truthy())
	h.emit(gui.KeyEvent{Key: key, Action: action, Mods: mods})

	// Keep Tab and editing keys inside the canvas; printable keys still
	// reach the textarea as input events.
	switch key {
	case gui.KeyTab, gui.KeyBackspace, gui.KeyEnter, gui.KeyUp, gui.KeyDown,
		gui.KeyLeft, gui.KeyRight, gui.KeyPageUp, gui.KeyPageDown:
		e.Call("preventDefault")
	}
}

func (h *Host) eventPos(e js.Value) (float32, float32) {
	rect := h.canvas.Call("getBoundingClientRect")
	x := e.Get("clientX").Float() - rect.Get("left").Float()
	y := e.Get("clientY").Float() - rect.Get("top").Float()
	return float32(x), float32(y)
}

func (h *Host) release() {
	gui.SetClipboardProvider(nil)
	for _, l := range h.listeners {
		l.target.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}
	h.listeners = nil
	for _, f := range h.funcs {
		f.Release()
	}
	h.funcs = nil
}

// clipboard writes through the async Clipboard API. Reads return the last
// text copied from this page since browsers only allow async reads.
type clipboard struct {
	last string
}

func (c *clipboard) GetText() string {
	return c.last
}

func (c *clipboard) SetText(text string) {
	c.last = text
	cb := js.Global().Get("navigator").Get("clipboard")
	if cb.Truthy() {
		cb.Call("writeText", text)
	}
}
