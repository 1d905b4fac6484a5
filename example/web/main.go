//go:build js && wasm

// Command web runs the keyboard event debugger in a browser canvas:
//
//	GOOS=js GOARCH=wasm go build -o web/gui.wasm ./example/web
//
// The page must contain <canvas id="the_canvas_id"> and load wasm_exec.js.
// Add ?app=demo to the URL for the widget gallery.
package main

import (
	"fmt"
	"net/url"
	"os"
	"syscall/js"

	gui "github.com/go-theft-auto/gui-examples"
	"github.com/go-theft-auto/gui-examples/backend/webgl"
	"github.com/go-theft-auto/gui-examples/config"
	"github.com/go-theft-auto/gui-examples/demo"
	"github.com/go-theft-auto/gui-examples/fontatlas"
	"github.com/go-theft-auto/gui-examples/keydebug"
	"github.com/go-theft-auto/gui-examples/logger"
	"github.com/go-theft-auto/gui-examples/platform"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.DefaultConfig()
	query, _ := url.ParseQuery(js.Global().Get("location").Get("search").String())
	if app := query.Get("app"); app != "" {
		cfg.App = app
	}
	if style := query.Get("style"); style != "" {
		cfg.Style = style
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := logger.Init(logger.Config{Level: cfg.Log.Level}); err != nil {
		return err
	}

	filter, err := cfg.EventFilter()
	if err != nil {
		return err
	}
	style, err := cfg.GUIStyle()
	if err != nil {
		return err
	}

	host, err := webgl.NewHost(webgl.DefaultCanvasID)
	if err != nil {
		return err
	}
	ui := gui.New(host.Renderer(), gui.WithStyle(style))
	if atlas, err := fontatlas.New(host.Renderer(), fontatlas.Options{Size: cfg.Font.Size}); err != nil {
		logger.L().Warn("using built-in font", "error", err)
	} else {
		ui.SetFontProvider(atlas)
	}

	var app platform.App = keydebug.NewApp()
	if cfg.App == config.AppDemo {
		app = demo.NewApp(ui.SetStyle)
	}
	loop := platform.NewLoop(ui, app,
		platform.WithEventFilter(filter),
		platform.WithPixelsPerPoint(host.PixelsPerPoint()))

	logger.L().Info("starting", "app", cfg.App, "backend", "webgl")
	return host.Run(loop)
}
