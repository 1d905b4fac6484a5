//go:build !js

package main

import (
	gui "github.com/go-theft-auto/gui-examples"
	"github.com/go-theft-auto/gui-examples/backend/opengl"
	"github.com/go-theft-auto/gui-examples/backend/wgpu"
	"github.com/go-theft-auto/gui-examples/config"
	"github.com/go-theft-auto/gui-examples/fontatlas"
	"github.com/go-theft-auto/gui-examples/platform"
)

// renderer is what both desktop backends offer: draw list rendering and
// updatable alpha textures for the font atlas.
type renderer interface {
	gui.Renderer
	gui.TextureUploader
	fontatlas.TextureUpdater
}

type window struct {
	renderer       renderer
	pixelsPerPoint float32
	run            func(*platform.Loop) error
	close          func()
}

func openWindow(cfg *config.Config) (*window, error) {
	switch cfg.Backend {
	case config.BackendWGPU:
		h, err := wgpu.NewHost(cfg.Window, cfg.VSyncEnabled())
		if err != nil {
			return nil, err
		}
		return &window{renderer: h.Renderer(), pixelsPerPoint: 1, run: h.Run, close: func() {}}, nil
	default:
		h, err := opengl.NewHost(cfg.Window, cfg.VSyncEnabled())
		if err != nil {
			return nil, err
		}
		return &window{renderer: h.Renderer(), pixelsPerPoint: h.ContentScale(), run: h.Run, close: h.Close}, nil
	}
}
