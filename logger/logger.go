// Package logger provides the process-wide slog logger used by the hosts,
// the frame loop and the config layer.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Config describes logger settings.
type Config struct {
	Level string // debug, info, warn or error
	File  string // optional; log lines are written there as well as to stderr
}

var (
	mu    sync.RWMutex
	level = new(slog.LevelVar)
	base  = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	file  *os.File

	// stderr is swapped by tests.
	stderr io.Writer = os.Stderr
)

// Init rebuilds the logger from cfg. It may be called again, e.g. after a
// config reload; a previously opened log file is closed.
func Init(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	level.Set(ParseLevel(cfg.Level))

	if file != nil {
		file.Close()
		file = nil
	}

	writers := []io.Writer{stderr}
	var initErr error
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			initErr = fmt.Errorf("logger: create log dir: %w", err)
		} else if f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err != nil {
			initErr = fmt.Errorf("logger: open log file: %w", err)
		} else {
			file = f
			writers = append(writers, f)
		}
	}

	base = slog.New(slog.NewTextHandler(io.MultiWriter(writers...), &slog.HandlerOptions{Level: level}))
	return initErr
}

// L returns the application logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return base
}

// SetLevel changes the level without rebuilding the handler.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// Level returns the current level.
func Level() slog.Level {
	return level.Level()
}

// Close closes the log file opened by Init, if any.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}

// ParseLevel maps a level name to a slog level. Unknown names are info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
