// Command gen renders each widget with sample data into an offscreen
// canvas and saves PNG screenshots. No window or GPU is needed.
//
// Usage:
//
//	go run ./doc/gen/ --out doc/imgs
//	go run ./doc/gen/ --font /usr/share/fonts/noto/NotoSansCJK.otf --style dark
package main

import (
	"fmt"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	gui "github.com/go-theft-auto/gui-examples"
	"github.com/go-theft-auto/gui-examples/backend/ggpaint"
	"github.com/go-theft-auto/gui-examples/fontatlas"
	"github.com/go-theft-auto/gui-examples/keydebug"
	"github.com/go-theft-auto/gui-examples/logger"
	"github.com/go-theft-auto/gui-examples/platform"
)

var (
	outFlag   string
	fontFlag  string
	styleFlag string
)

var rootCmd = &cobra.Command{
	Use:          "gen",
	Short:        "Render widget screenshots",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(*cobra.Command, []string) error {
		return run()
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outFlag, "out", "o", filepath.Join("doc", "imgs"), "Output directory")
	rootCmd.Flags().StringVar(&fontFlag, "font", "", "OTF/TTF font used ahead of Go Regular")
	rootCmd.Flags().StringVar(&styleFlag, "style", "default", "Style preset (default, dark, light)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                 // filename without extension
	width  int                    // viewport width
	height int                    // viewport height
	draw   func(ctx *gui.Context) // widget drawing function
	frames int                    // frames to render (0 = default 2)
}

func run() error {
	style, err := gui.StyleByName(styleFlag)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outFlag, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(s, style); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		logger.L().Info("screenshot", "file", s.name+".png", "width", s.width, "height", s.height)
	}
	fmt.Printf("Generated %d screenshots in %s/\n", len(shots), outFlag)
	return nil
}

func capture(s screenshot, style gui.Style) error {
	// Fresh renderer and GUI per screenshot so no state leaks between them.
	renderer := ggpaint.New(s.width, s.height)
	ui := gui.New(renderer, gui.WithStyle(style))
	atlas, err := fontatlas.New(renderer, fontatlas.Options{Path: fontFlag})
	if err != nil {
		return err
	}
	ui.SetFontProvider(atlas)

	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}
	displaySize := gui.Vec2{X: float32(s.width), Y: float32(s.height)}
	for range frames {
		renderer.Clear(platform.ClearColor)
		ctx := ui.Begin(gui.NewInputState(), displaySize, 1.0/60.0)
		s.draw(ctx)
		if err := ui.End(); err != nil {
			return err
		}
	}

	f, err := os.Create(filepath.Join(outFlag, s.name+".png"))
	if err != nil {
		return err
	}
	if err := png.Encode(f, renderer.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	// Shared state for widgets that need pointers.
	var (
		checked     = true
		unchecked   = false
		radioIdx    = 1
		inputText   = "Hello, world!"
		sliderFloat = float32(0.65)
		sliderInt   = 7
	)

	wave := make([]float32, 120)
	for i := range wave {
		wave[i] = 16 + 4*float32(math.Sin(float64(i)/8))
	}

	events := keydebug.New()
	for _, ev := range []gui.Event{
		gui.KeyEvent{Key: gui.KeyA, Action: gui.KeyPress, Scancode: 30},
		gui.CharEvent{Rune: 'a'},
		gui.KeyEvent{Key: gui.KeyA, Action: gui.KeyRelease, Scancode: 30},
		gui.IMEEvent{Phase: gui.IMEEnabled},
		gui.IMEEvent{Phase: gui.IMEPreedit, Text: "にほん", Cursor: 3},
		gui.IMEEvent{Phase: gui.IMECommit, Text: "日本"},
	} {
		events.Feed(ev)
	}

	return []screenshot{
		{
			name: "text", width: 400, height: 200,
			draw: func(ctx *gui.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.VStack(gui.Gap(6))(func() {
					ctx.Text("Plain text")
					ctx.TextColored("Colored text", gui.ColorGreen)
					ctx.TextDisabled("Disabled text")
					ctx.TextWrapped("This is wrapped text that will break across lines when it reaches the edge of the available width.", 380)
					ctx.LabelText("Label:", "Value")
					ctx.BulletText("Bullet item")
				})
			},
		},
		{
			name: "button", width: 400, height: 120,
			draw: func(ctx *gui.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.VStack(gui.Gap(8))(func() {
					ctx.Button("Standard Button")
					ctx.HStack(gui.Gap(8))(func() {
						ctx.SmallButton("Small A")
						ctx.SmallButton("Small B")
						ctx.SmallButton("Small C")
					})
				})
			},
		},
		{
			name: "checkbox", width: 300, height: 80,
			draw: func(ctx *gui.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.VStack(gui.Gap(6))(func() {
					ctx.Checkbox("Enabled feature", &checked)
					ctx.Checkbox("Disabled feature", &unchecked)
				})
			},
		},
		{
			name: "radio_group", width: 300, height: 120,
			draw: func(ctx *gui.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.RadioGroup("Quality", &radioIdx, []string{"Low", "Medium", "High"})
			},
		},
		{
			name: "input_text", width: 400, height: 80,
			draw: func(ctx *gui.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.InputText("Name", &inputText, gui.WithWidth(300))
			},
		},
		{
			name: "slider", width: 400, height: 100,
			draw: func(ctx *gui.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.VStack(gui.Gap(6))(func() {
					ctx.SliderFloat("Volume", &sliderFloat, 0, 1)
					ctx.SliderInt("Level", &sliderInt, 0, 10)
				})
			},
		},
		{
			name: "progress_bar", width: 400, height: 100,
			draw: func(ctx *gui.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.VStack(gui.Gap(8))(func() {
					ctx.ProgressBar(0.25, gui.WithWidth(370))
					ctx.ProgressBar(0.65, gui.WithWidth(370))
					ctx.ProgressBar(1.0, gui.WithWidth(370))
				})
			},
		},
		{
			name: "collapsing_header", width: 400, height: 150,
			draw: func(ctx *gui.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.VStack(gui.Gap(4))(func() {
					if ctx.CollapsingHeader("Open Header", gui.DefaultOpen()) {
						ctx.Text("  Visible content inside header")
					}
					ctx.CollapsingHeader("Closed Header")
				})
			},
		},
		{
			name: "tree_node", width: 400, height: 180,
			draw: func(ctx *gui.Context) {
				ctx.SetCursorPos(12, 12)
				if ctx.TreeNode("Root", gui.DefaultOpen()) {
					ctx.Text("Child 1")
					if ctx.TreeNode("Child 2", gui.DefaultOpen()) {
						ctx.Text("Nested item A")
						ctx.Text("Nested item B")
						ctx.TreePop()
					}
					ctx.TreePop()
				}
			},
		},
		{
			name: "selectable", width: 400, height: 150,
			draw: func(ctx *gui.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.VStack(gui.Gap(2))(func() {
					ctx.Selectable("Keyboard", true, gui.WithID("sel_0"))
					ctx.Selectable("Text input", false, gui.WithID("sel_1"))
					ctx.Selectable("IME", false, gui.WithID("sel_2"))
				})
			},
		},
		{
			name: "panel", width: 350, height: 250,
			draw: func(ctx *gui.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.Panel("Settings", gui.Width(320), gui.Padding(12))(func() {
					ctx.Text("Configure the window")
					ctx.Separator()
					ctx.LabelText("Backend:", "opengl")
					ctx.LabelText("Style:", styleFlag)
					ctx.Button("Apply")
				})
			},
		},
		{
			name: "scrollable", width: 400, height: 200,
			draw: func(ctx *gui.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.Scrollable("demo_scroll", 170, gui.ShowScrollbar(true))(func() {
					for i := 0; i < 20; i++ {
						ctx.Text(fmt.Sprintf("Line %d: Scrollable content", i+1))
					}
				})
			},
		},
		{
			name: "plot", width: 400, height: 140,
			draw: func(ctx *gui.Context) {
				ctx.SetCursorPos(12, 12)
				ctx.Plot("Frame time (ms)", wave, 100, gui.WithPlotYRange(0, 24), gui.WithPlotGridLines(4))
			},
		},
		{
			name: "keyboard_events", width: 520, height: 260, frames: 3,
			draw: func(ctx *gui.Context) {
				ctx.Window(func() {
					events.Render(ctx)
				})
			},
		},
	}
}
