// Package config loads the YAML configuration of the example hosts.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	gui "github.com/go-theft-auto/gui-examples"
)

var (
	ErrUnknownBackend = errors.New("unknown backend")
	ErrUnknownApp     = errors.New("unknown app")
)

// Backends and apps accepted in the config and on the command line.
const (
	BackendOpenGL = "opengl"
	BackendWGPU   = "wgpu"

	AppKeyboard = "keyboard"
	AppDemo     = "demo"
)

const (
	defaultTitle    = "gui examples"
	defaultWidth    = 1280
	defaultHeight   = 720
	defaultFontSize = 16
)

// Config is the root configuration structure.
type Config struct {
	Window  WindowConfig `yaml:"window"`
	Backend string       `yaml:"backend"` // opengl, wgpu
	App     string       `yaml:"app"`     // keyboard, demo
	Font    FontConfig   `yaml:"font"`
	Events  []string     `yaml:"events"` // event kinds fed to the app; [all] for every kind
	Style   string       `yaml:"style"`  // default, dark, light
	Log     LogConfig    `yaml:"log"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  *bool  `yaml:"vsync,omitempty"` // defaults to true
}

// FontConfig names an optional OTF/TTF registered ahead of the built-in
// fallback, e.g. a CJK font.
type FontConfig struct {
	Path string  `yaml:"path,omitempty"`
	Size float64 `yaml:"size,omitempty"`
}

type LogConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error
	File  string `yaml:"file,omitempty"`
}

// DefaultConfig returns a config with defaults filled in.
func DefaultConfig() *Config {
	vsync := true
	return &Config{
		Window: WindowConfig{
			Title:  defaultTitle,
			Width:  defaultWidth,
			Height: defaultHeight,
			VSync:  &vsync,
		},
		Backend: BackendOpenGL,
		App:     AppKeyboard,
		Font:    FontConfig{Size: defaultFontSize},
		Events:  []string{"key", "char", "ime"},
		Style:   "default",
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. A missing file is not an error: the
// defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Window.Title == "" {
		c.Window.Title = defaultTitle
	}
	if c.Window.VSync == nil {
		vsync := true
		c.Window.VSync = &vsync
	}
	if c.Backend == "" {
		c.Backend = BackendOpenGL
	}
	if c.App == "" {
		c.App = AppKeyboard
	}
	if c.Font.Size == 0 {
		c.Font.Size = defaultFontSize
	}
	if len(c.Events) == 0 {
		c.Events = []string{"key", "char", "ime"}
	}
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	c.App = strings.ToLower(strings.TrimSpace(c.App))
}

// Validate rejects unknown names and non-positive sizes.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendOpenGL, BackendWGPU:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	switch c.App {
	case AppKeyboard, AppDemo:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownApp, c.App)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("font size must be positive, got %g", c.Font.Size)
	}
	if _, err := c.EventFilter(); err != nil {
		return err
	}
	if _, err := gui.StyleByName(c.Style); err != nil {
		return err
	}
	return nil
}

// EventFilter parses Events into the allow-list applied by the frame loop.
func (c *Config) EventFilter() (gui.EventKindSet, error) {
	return gui.ParseEventKindSet(c.Events)
}

// GUIStyle returns the configured style preset.
func (c *Config) GUIStyle() (gui.Style, error) {
	return gui.StyleByName(c.Style)
}

// VSyncEnabled reports the vsync setting, true when unset.
func (c *Config) VSyncEnabled() bool {
	return c.Window.VSync == nil || *c.Window.VSync
}
