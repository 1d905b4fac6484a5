package gui

import (
	"log/slog"
	"sync/atomic"

	"github.com/go-theft-auto/gui-examples/logger"
)

var verbose atomic.Bool

// SetVerbose enables debug logging of widget interaction (hit tests, focus
// changes) through the process logger. It is off by default since it logs
// every frame.
func SetVerbose(v bool) {
	verbose.Store(v)
}

func guiVerbose() bool {
	return verbose.Load()
}

// guiLogger returns the process logger tagged with the gui component.
func guiLogger() *slog.Logger {
	return logger.L().With("component", "gui")
}
