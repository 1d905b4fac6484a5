// Package demo is a widget gallery: a tour of the toolkit's widgets plus
// live frame statistics.
package demo

import (
	"fmt"

	gui "github.com/go-theft-auto/gui-examples"
	"github.com/go-theft-auto/gui-examples/platform"
)

const historyLen = 120

// App is the gallery. Its state lives here; the toolkit keeps none of it.
type App struct {
	setStyle func(gui.Style)

	name     string
	greeting string
	clicks   int
	enabled  bool
	vsync    bool
	scale    float32
	count    int
	progress float32
	styleIdx int

	frameMS []float32 // CPU time of recent frames, oldest first
	lastCPU string
}

// NewApp creates the gallery. setStyle applies a style picked in the UI
// from the next frame on; GUI.SetStyle fits. It may be nil.
func NewApp(setStyle func(gui.Style)) *App {
	return &App{
		setStyle: setStyle,
		greeting: "Hello",
		enabled:  true,
		vsync:    true,
		scale:    1,
		count:    3,
		frameMS:  make([]float32, 0, historyLen),
	}
}

// SetStyleName selects a style preset by name, e.g. from a config reload.
func (a *App) SetStyleName(name string) error {
	style, err := gui.StyleByName(name)
	if err != nil {
		return err
	}
	for i, n := range gui.StyleNames {
		if n == name {
			a.styleIdx = i
		}
	}
	if a.setStyle != nil {
		a.setStyle(style)
	}
	return nil
}

func (a *App) Update(ctx *gui.Context, info platform.FrameInfo) {
	a.record(info)

	ctx.Window(func() {
		ctx.TextColored("Widget gallery", ctx.Style().TextHighlightColor)
		ctx.Separator()

		a.inputs(ctx)
		a.controls(ctx)
		a.stats(ctx, info)
		a.appearance(ctx)
	})
}

func (a *App) record(info platform.FrameInfo) {
	if !info.HasCPUUsage {
		return
	}
	ms := float32(info.CPUUsage.Seconds() * 1000)
	if len(a.frameMS) == historyLen {
		copy(a.frameMS, a.frameMS[1:])
		a.frameMS = a.frameMS[:historyLen-1]
	}
	a.frameMS = append(a.frameMS, ms)
	a.lastCPU = fmt.Sprintf("%.2f ms", ms)
}

// FrameTimes returns the recorded CPU frame times in milliseconds.
func (a *App) FrameTimes() []float32 {
	return a.frameMS
}

func (a *App) Clicks() int {
	return a.clicks
}

func (a *App) inputs(ctx *gui.Context) {
	if !ctx.CollapsingHeader("Text input", gui.DefaultOpen()) {
		return
	}
	ctx.HStack()(func() {
		ctx.InputText("Your name", &a.name, gui.WithHint("type here"))
	})
	ctx.HStack()(func() {
		ctx.InputText("Greeting", &a.greeting)
	})
	if a.name != "" {
		ctx.Text(fmt.Sprintf("%s, %s!", a.greeting, a.name))
	} else {
		ctx.TextDisabled("Click a field and type. Ctrl+Z undoes.")
	}
	ctx.TextWrapped("Fields accept IME composition: the preedit text is shown underlined at the caret until it is committed.", 0)
}

func (a *App) controls(ctx *gui.Context) {
	if !ctx.CollapsingHeader("Controls", gui.DefaultOpen()) {
		return
	}
	ctx.HStack()(func() {
		if ctx.Button("Click me") {
			a.clicks++
		}
		if ctx.SmallButton("reset") {
			a.clicks = 0
		}
		ctx.Text(fmt.Sprintf("clicked %d times", a.clicks))
	})
	ctx.Checkbox("Enabled", &a.enabled)
	ctx.Checkbox("Pretend vsync", &a.vsync, gui.WithDisabled(!a.enabled))
	ctx.HStack()(func() {
		ctx.SliderFloat("Scale", &a.scale, 0.5, 3, gui.WithStep(0.25), gui.WithFormat("%.2f"))
	})
	ctx.HStack()(func() {
		ctx.SliderInt("Count", &a.count, 0, 10)
	})
	for i := range a.count {
		ctx.BulletText(fmt.Sprintf("item %d", i+1))
	}

	a.progress += 0.002
	if a.progress > 1 {
		a.progress = 0
	}
	ctx.ProgressBar(a.progress, gui.WithWidth(300))
}

func (a *App) stats(ctx *gui.Context, info platform.FrameInfo) {
	if !ctx.CollapsingHeader("Frame statistics", gui.DefaultOpen()) {
		return
	}
	cpu := "n/a"
	if info.HasCPUUsage {
		cpu = a.lastCPU
	}
	ctx.LabelText("App", info.Name)
	ctx.LabelText("CPU usage", cpu)
	ctx.LabelText("Pixels per point", fmt.Sprintf("%.2f", info.PixelsPerPoint))
	ctx.LabelText("Time", fmt.Sprintf("%.1f s", info.Time))
	ctx.Plot("frame ms", a.frameMS, 80, gui.WithPlotGridLines(4))
}

func (a *App) appearance(ctx *gui.Context) {
	if !ctx.CollapsingHeader("Appearance") {
		return
	}
	if ctx.RadioGroup("style", &a.styleIdx, gui.StyleNames) {
		style, err := gui.StyleByName(gui.StyleNames[a.styleIdx])
		if err != nil {
			return
		}
		ctx.SetStyle(style)
		if a.setStyle != nil {
			a.setStyle(style)
		}
	}
}

var (
	_ platform.App        = (*App)(nil)
	_ platform.StyleNamer = (*App)(nil)
)
