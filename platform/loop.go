// Package platform is the per-frame glue between a window backend, the gui
// toolkit and an example app. Backends translate native events into
// gui.Event values, hand them to HandleEvent, and call Frame once per
// redraw.
package platform

import (
	"fmt"
	"time"

	gui "github.com/go-theft-auto/gui-examples"
	"github.com/go-theft-auto/gui-examples/config"
	"github.com/go-theft-auto/gui-examples/logger"
)

// ClearColor is the framebuffer clear color, opaque black.
var ClearColor = [4]float32{0, 0, 0, 1}

// DefaultName is the FrameInfo name when WithName is not given.
const DefaultName = "egui_example"

// FrameInfo describes the frame an app is asked to build.
type FrameInfo struct {
	Name string

	// CPUUsage is the time the previous frame spent building and
	// rendering. HasCPUUsage is false on the first frame.
	CPUUsage    time.Duration
	HasCPUUsage bool

	PixelsPerPoint float32

	// Time is seconds since the loop started.
	Time float64
}

// App builds the UI once per frame.
type App interface {
	Update(ctx *gui.Context, info FrameInfo)
}

// EventSink is implemented by apps that want raw window events.
type EventSink interface {
	Feed(ev gui.Event)
}

// StyleNamer is implemented by apps that show which style preset is active,
// so a config reload can keep them in step.
type StyleNamer interface {
	SetStyleName(name string) error
}

// Option configures a Loop.
type Option func(*Loop)

// WithEventFilter sets the kinds forwarded to an EventSink app. The default
// is gui.KeyboardEventKinds.
func WithEventFilter(kinds gui.EventKindSet) Option {
	return func(l *Loop) { l.filter = kinds }
}

func WithName(name string) Option {
	return func(l *Loop) { l.name = name }
}

func WithPixelsPerPoint(ppp float32) Option {
	return func(l *Loop) { l.ppp = ppp }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) { l.now = now }
}

// WithDisplaySize sets the initial logical display size.
func WithDisplaySize(width, height int) Option {
	return func(l *Loop) {
		l.width = width
		l.height = height
	}
}

// WithReloads installs a source of reloaded configs, polled at the start of
// every frame. config.Watcher.Poll fits.
func WithReloads(poll func() (*config.Config, bool)) Option {
	return func(l *Loop) { l.reloads = poll }
}

// Loop runs frames for one window.
type Loop struct {
	ui    *gui.GUI
	app   App
	input *gui.InputState

	filter  gui.EventKindSet
	name    string
	ppp     float32
	now     func() time.Time
	reloads func() (*config.Config, bool)

	width, height int

	start    time.Time
	lastTime float64
	frames   uint64

	lastCPU time.Duration
	hasCPU  bool

	closeRequested bool

	imePos    gui.Vec2
	imeActive bool
}

// NewLoop creates a loop driving app through ui.
func NewLoop(ui *gui.GUI, app App, opts ...Option) *Loop {
	l := &Loop{
		ui:     ui,
		app:    app,
		input:  gui.NewInputState(),
		filter: gui.KeyboardEventKinds(),
		name:   DefaultName,
		ppp:    1,
		now:    time.Now,
		width:  1280,
		height: 720,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.start = l.now()
	return l
}

// HandleEvent folds ev into the input state and forwards it to the app
// when the filter allows its kind.
func (l *Loop) HandleEvent(ev gui.Event) {
	l.input.Apply(ev)

	switch e := ev.(type) {
	case gui.CloseEvent:
		if !l.closeRequested {
			logger.L().Info("close requested")
		}
		l.closeRequested = true
	case gui.ResizeEvent:
		l.Resize(e.Width, e.Height)
	}

	if sink, ok := l.app.(EventSink); ok && l.filter.Has(ev.Kind()) {
		sink.Feed(ev)
	}
}

// Resize sets the display size in logical pixels and tells the renderer.
func (l *Loop) Resize(width, height int) {
	if width == l.width && height == l.height {
		return
	}
	l.width, l.height = width, height
	l.ui.Resize(width, height)
	logger.L().Debug("resize", "width", width, "height", height)
}

// Frame builds and renders one frame.
func (l *Loop) Frame() error {
	if l.reloads != nil {
		if cfg, ok := l.reloads(); ok {
			if err := l.ApplyConfig(cfg); err != nil {
				logger.L().Warn("apply reloaded config", "err", err)
			}
		}
	}

	frameStart := l.now()
	t := frameStart.Sub(l.start).Seconds()
	dt := float32(t - l.lastTime)
	if dt <= 0 {
		dt = 1.0 / 60
	}
	l.lastTime = t
	l.input.UpdateKeyRepeat(dt)

	info := FrameInfo{
		Name:           l.name,
		CPUUsage:       l.lastCPU,
		HasCPUUsage:    l.hasCPU,
		PixelsPerPoint: l.ppp,
		Time:           t,
	}

	ctx := l.ui.Begin(l.input, gui.Vec2{X: float32(l.width), Y: float32(l.height)}, dt)
	ctx.DPIScale = l.ppp
	l.app.Update(ctx, info)
	l.imePos, l.imeActive = ctx.TextCursorPos()
	err := l.ui.End()

	l.lastCPU = l.now().Sub(frameStart)
	l.hasCPU = true
	l.frames++
	l.input.Reset()

	if err != nil {
		return fmt.Errorf("frame %d: %w", l.frames, err)
	}
	return nil
}

// ApplyConfig applies the settings that can change while running: the
// event filter and the style.
func (l *Loop) ApplyConfig(cfg *config.Config) error {
	filter, err := cfg.EventFilter()
	if err != nil {
		return err
	}
	style, err := cfg.GUIStyle()
	if err != nil {
		return err
	}
	l.SetEventFilter(filter)
	l.ui.SetStyle(style)
	if sn, ok := l.app.(StyleNamer); ok {
		if err := sn.SetStyleName(cfg.Style); err != nil {
			return fmt.Errorf("apply style: %w", err)
		}
	}
	return nil
}

// SetEventFilter replaces the kinds forwarded to the app.
func (l *Loop) SetEventFilter(kinds gui.EventKindSet) {
	l.filter = kinds
}

func (l *Loop) EventFilter() gui.EventKindSet {
	return l.filter
}

// ShouldClose reports whether a CloseEvent arrived.
func (l *Loop) ShouldClose() bool {
	return l.closeRequested
}

// IMEPosition returns where the focused text field drew its caret in the
// last frame. ok is false when no text field is being edited.
func (l *Loop) IMEPosition() (pos gui.Vec2, ok bool) {
	return l.imePos, l.imeActive
}

func (l *Loop) Input() *gui.InputState {
	return l.input
}

func (l *Loop) GUI() *gui.GUI {
	return l.ui
}

func (l *Loop) DisplaySize() (width, height int) {
	return l.width, l.height
}

func (l *Loop) PixelsPerPoint() float32 {
	return l.ppp
}

// SetPixelsPerPoint updates the scale reported to the app, e.g. when the
// window moves to another monitor.
func (l *Loop) SetPixelsPerPoint(ppp float32) {
	l.ppp = ppp
}
