package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelDebug, ParseLevel(" DEBUG "))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("chatty"))
}

func withStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	saved := stderr
	stderr = &buf
	t.Cleanup(func() {
		stderr = saved
		_ = Close()
		_ = Init(Config{})
	})
	return &buf
}

func TestInitFiltersByLevel(t *testing.T) {
	buf := withStderr(t)
	require.NoError(t, Init(Config{Level: "warn"}))

	L().Info("hidden")
	L().Warn("shown", "k", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "k=1")
}

func TestSetLevel(t *testing.T) {
	buf := withStderr(t)
	require.NoError(t, Init(Config{Level: "info"}))

	L().Debug("before")
	SetLevel(slog.LevelDebug)
	L().Debug("after")

	assert.Equal(t, slog.LevelDebug, Level())
	assert.NotContains(t, buf.String(), "before")
	assert.Contains(t, buf.String(), "after")
}

func TestInitWritesFile(t *testing.T) {
	withStderr(t)
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	require.NoError(t, Init(Config{Level: "info", File: path}))

	L().Info("to file")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")
}
