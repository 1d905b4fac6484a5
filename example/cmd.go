//go:build !js

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	gui "github.com/go-theft-auto/gui-examples"
	"github.com/go-theft-auto/gui-examples/config"
	"github.com/go-theft-auto/gui-examples/demo"
	"github.com/go-theft-auto/gui-examples/fontatlas"
	"github.com/go-theft-auto/gui-examples/keydebug"
	"github.com/go-theft-auto/gui-examples/logger"
	"github.com/go-theft-auto/gui-examples/platform"
)

var (
	configFlag  string
	backendFlag string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "gui-examples",
	Short: "Run the gui example apps in a desktop window",
	Long: `Open a window running one of the example apps.

Without a subcommand the app named in the config is started (the keyboard
event debugger by default). Settings are read from --config when given; the
event filter and style are reloaded when the file changes.

Examples:
  gui-examples                          # keyboard debugger on OpenGL
  gui-examples demo --backend wgpu      # widget demo on WebGPU
  gui-examples --config gui.yaml -v     # config file, debug logging`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runApp("")
	},
}

var keyboardCmd = &cobra.Command{
	Use:   "keyboard",
	Short: "Show every keyboard, text and IME event the window receives",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runApp(config.AppKeyboard)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show the widget gallery",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runApp(config.AppDemo)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVarP(&backendFlag, "backend", "b", "", "Override backend (opengl, wgpu)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Debug logging")
	rootCmd.AddCommand(keyboardCmd, demoCmd)
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(app string) (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}
	if backendFlag != "" {
		cfg.Backend = backendFlag
	}
	if app != "" {
		cfg.App = app
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runApp(app string) error {
	cfg, err := loadConfig(app)
	if err != nil {
		return err
	}

	if err := logger.Init(logger.Config{Level: cfg.Log.Level, File: cfg.Log.File}); err != nil {
		logger.L().Warn("log file unavailable", "error", err)
	}
	defer logger.Close()
	if verboseFlag {
		logger.SetLevel(slog.LevelDebug)
	}
	gui.SetVerbose(verboseFlag)
	log := logger.L()

	var watcher *config.Watcher
	if configFlag != "" {
		watcher, err = config.Watch(configFlag)
		if err != nil {
			log.Warn("config reload disabled", "error", err)
		} else {
			defer watcher.Close()
		}
	}

	filter, err := cfg.EventFilter()
	if err != nil {
		return err
	}
	style, err := cfg.GUIStyle()
	if err != nil {
		return err
	}

	win, err := openWindow(cfg)
	if err != nil {
		return err
	}
	defer win.close()

	ui := gui.New(win.renderer, gui.WithStyle(style))
	atlas, err := fontatlas.New(win.renderer, fontatlas.Options{Path: cfg.Font.Path, Size: cfg.Font.Size})
	if err != nil {
		log.Warn("using built-in font", "error", err)
	} else {
		ui.SetFontProvider(atlas)
	}

	var a platform.App
	switch cfg.App {
	case config.AppDemo:
		a = demo.NewApp(ui.SetStyle)
	default:
		a = keydebug.NewApp()
	}

	opts := []platform.Option{
		platform.WithEventFilter(filter),
		platform.WithPixelsPerPoint(win.pixelsPerPoint),
		platform.WithDisplaySize(cfg.Window.Width, cfg.Window.Height),
	}
	if watcher != nil {
		opts = append(opts, platform.WithReloads(watcher.Poll))
	}
	loop := platform.NewLoop(ui, a, opts...)

	log.Info("starting", "app", cfg.App, "backend", cfg.Backend, "events", filter.String())
	if err := win.run(loop); err != nil {
		return fmt.Errorf("%s: %w", cfg.Backend, err)
	}
	log.Info("window closed")
	return nil
}
