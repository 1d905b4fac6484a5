package demo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gui "github.com/go-theft-auto/gui-examples"
	"github.com/go-theft-auto/gui-examples/config"
	"github.com/go-theft-auto/gui-examples/platform"
)

type countingRenderer struct{ renders int }

func (r *countingRenderer) Render(*gui.DrawList) error { r.renders++; return nil }
func (r *countingRenderer) FontTextureID() uint32      { return 1 }
func (r *countingRenderer) Resize(int, int)            {}

func TestGalleryRunsFrames(t *testing.T) {
	r := &countingRenderer{}
	ui := gui.New(r)
	app := NewApp(ui.SetStyle)
	loop := platform.NewLoop(ui, app)

	for range 5 {
		require.NoError(t, loop.Frame())
	}
	assert.GreaterOrEqual(t, r.renders, 5)
	assert.Len(t, app.FrameTimes(), 4, "the first frame has no CPU usage")
}

func TestFrameHistoryIsBounded(t *testing.T) {
	app := NewApp(nil)
	for i := range historyLen + 10 {
		app.record(platform.FrameInfo{HasCPUUsage: true, CPUUsage: time.Duration(i) * time.Millisecond})
	}
	times := app.FrameTimes()
	require.Len(t, times, historyLen)
	assert.Equal(t, float32(10), times[0])
	assert.Equal(t, float32(historyLen+9), times[len(times)-1])
}

func TestConfigReloadMovesStyleSelection(t *testing.T) {
	ui := gui.New(&countingRenderer{})
	app := NewApp(ui.SetStyle)
	cfg := config.DefaultConfig()
	cfg.Style = "light"

	pending := cfg
	loop := platform.NewLoop(ui, app, platform.WithReloads(func() (*config.Config, bool) {
		c := pending
		pending = nil
		return c, c != nil
	}))
	require.NoError(t, loop.Frame())
	assert.Equal(t, "light", gui.StyleNames[app.styleIdx])
}

func TestSetStyleName(t *testing.T) {
	var got gui.Style
	app := NewApp(func(s gui.Style) { got = s })

	require.NoError(t, app.SetStyleName("light"))
	assert.Equal(t, gui.LightStyle(), got)
	assert.Equal(t, "light", gui.StyleNames[app.styleIdx])

	assert.ErrorIs(t, app.SetStyleName("neon"), gui.ErrUnknownStyle)
}
