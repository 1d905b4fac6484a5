package platform

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gui "github.com/go-theft-auto/gui-examples"
	"github.com/go-theft-auto/gui-examples/config"
)

type fakeRenderer struct {
	renders     int
	resizes     [][2]int
	failRenders bool
}

func (r *fakeRenderer) Render(*gui.DrawList) error {
	r.renders++
	if r.failRenders {
		return errors.New("device lost")
	}
	return nil
}

func (r *fakeRenderer) FontTextureID() uint32 { return 1 }

func (r *fakeRenderer) Resize(w, h int) { r.resizes = append(r.resizes, [2]int{w, h}) }

// recorder is an app that keeps what the loop gave it.
type recorder struct {
	infos  []FrameInfo
	fed    []gui.Event
	update func(ctx *gui.Context)
}

func (r *recorder) Update(ctx *gui.Context, info FrameInfo) {
	r.infos = append(r.infos, info)
	if r.update != nil {
		r.update(ctx)
	}
}

func (r *recorder) Feed(ev gui.Event) { r.fed = append(r.fed, ev) }

// updateOnly does not implement EventSink.
type updateOnly struct{ frames int }

func (u *updateOnly) Update(*gui.Context, FrameInfo) { u.frames++ }

// stepClock advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	now := time.Unix(1000, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestDefaultFilterForwardsKeyboardOnly(t *testing.T) {
	app := &recorder{}
	l := NewLoop(gui.New(&fakeRenderer{}), app)

	l.HandleEvent(gui.KeyEvent{Key: gui.KeyA, Action: gui.KeyPress})
	l.HandleEvent(gui.CursorMovedEvent{X: 5, Y: 6})
	l.HandleEvent(gui.CharEvent{Rune: 'a'})
	l.HandleEvent(gui.MouseButtonEvent{Button: gui.MouseButtonLeft, Pressed: true, X: 5, Y: 6})
	l.HandleEvent(gui.IMEEvent{Phase: gui.IMEEnabled})

	require.Len(t, app.fed, 3)
	assert.Equal(t, gui.EventKey, app.fed[0].Kind())
	assert.Equal(t, gui.EventChar, app.fed[1].Kind())
	assert.Equal(t, gui.EventIME, app.fed[2].Kind())

	// Filtered events still reach the input state.
	assert.Equal(t, float32(5), l.Input().MouseX)
	assert.Equal(t, float32(6), l.Input().MouseY)
	assert.True(t, l.Input().MouseDown(gui.MouseButtonLeft))
}

func TestAllEventsFilter(t *testing.T) {
	app := &recorder{}
	l := NewLoop(gui.New(&fakeRenderer{}), app, WithEventFilter(gui.AllEventKinds()))

	l.HandleEvent(gui.CursorMovedEvent{X: 1, Y: 1})
	l.HandleEvent(gui.FocusEvent{Focused: true})
	assert.Len(t, app.fed, 2)

	l.SetEventFilter(gui.NewEventKindSet(gui.EventChar))
	l.HandleEvent(gui.CursorMovedEvent{X: 2, Y: 2})
	l.HandleEvent(gui.CharEvent{Rune: 'q'})
	assert.Len(t, app.fed, 3)
	assert.Equal(t, gui.NewEventKindSet(gui.EventChar), l.EventFilter())
}

func TestAppWithoutSinkStillRuns(t *testing.T) {
	app := &updateOnly{}
	l := NewLoop(gui.New(&fakeRenderer{}), app)
	l.HandleEvent(gui.CharEvent{Rune: 'a'})
	require.NoError(t, l.Frame())
	assert.Equal(t, 1, app.frames)
}

func TestCloseEvent(t *testing.T) {
	l := NewLoop(gui.New(&fakeRenderer{}), &recorder{})
	assert.False(t, l.ShouldClose())
	l.HandleEvent(gui.CloseEvent{})
	assert.True(t, l.ShouldClose())
}

func TestResizeEvent(t *testing.T) {
	r := &fakeRenderer{}
	l := NewLoop(gui.New(r), &recorder{}, WithDisplaySize(800, 600))

	l.HandleEvent(gui.ResizeEvent{Width: 800, Height: 600})
	assert.Empty(t, r.resizes, "same size is not a resize")

	l.HandleEvent(gui.ResizeEvent{Width: 1024, Height: 768})
	assert.Equal(t, [][2]int{{1024, 768}}, r.resizes)
	w, h := l.DisplaySize()
	assert.Equal(t, 1024, w)
	assert.Equal(t, 768, h)

	var display gui.Vec2
	app := &recorder{update: func(ctx *gui.Context) { display = ctx.DisplaySize }}
	l.app = app
	require.NoError(t, l.Frame())
	assert.Equal(t, gui.Vec2{X: 1024, Y: 768}, display)
}

func TestFrameInfo(t *testing.T) {
	app := &recorder{}
	l := NewLoop(gui.New(&fakeRenderer{}), app,
		WithClock(stepClock(10*time.Millisecond)),
		WithPixelsPerPoint(2),
	)

	for range 3 {
		require.NoError(t, l.Frame())
	}
	require.Len(t, app.infos, 3)

	first := app.infos[0]
	assert.Equal(t, DefaultName, first.Name)
	assert.Equal(t, float32(2), first.PixelsPerPoint)
	assert.False(t, first.HasCPUUsage, "no CPU usage before a frame completed")

	// Every clock read advances 10ms: one read at frame start, one at the end.
	assert.True(t, app.infos[1].HasCPUUsage)
	assert.Equal(t, 10*time.Millisecond, app.infos[1].CPUUsage)
	assert.Greater(t, app.infos[2].Time, app.infos[1].Time)
	assert.InDelta(t, 0.02, app.infos[2].Time-app.infos[1].Time, 1e-9)
}

func TestWithName(t *testing.T) {
	app := &recorder{}
	l := NewLoop(gui.New(&fakeRenderer{}), app, WithName("keyboard"))
	require.NoError(t, l.Frame())
	assert.Equal(t, "keyboard", app.infos[0].Name)
}

func TestFrameResetsPerFrameInput(t *testing.T) {
	var chars []string
	app := &recorder{update: func(ctx *gui.Context) {
		chars = append(chars, string(ctx.Input.InputChars))
	}}
	l := NewLoop(gui.New(&fakeRenderer{}), app)

	l.HandleEvent(gui.CharEvent{Rune: 'a'})
	require.NoError(t, l.Frame())
	require.NoError(t, l.Frame())
	assert.Equal(t, []string{"a", ""}, chars)
}

func TestIMEPosition(t *testing.T) {
	text := ""
	app := &recorder{update: func(ctx *gui.Context) {
		ctx.InputText("##ime", &text, gui.ForceFocus())
	}}
	l := NewLoop(gui.New(&fakeRenderer{}), app)

	_, ok := l.IMEPosition()
	assert.False(t, ok)

	require.NoError(t, l.Frame())
	pos, ok := l.IMEPosition()
	require.True(t, ok)
	assert.Equal(t, gui.Vec2{X: 4, Y: 24}, pos)

	app.update = func(*gui.Context) {}
	require.NoError(t, l.Frame())
	_, ok = l.IMEPosition()
	assert.False(t, ok, "no field, no IME position")
}

func TestFrameWrapsRenderError(t *testing.T) {
	l := NewLoop(gui.New(&fakeRenderer{failRenders: true}), &recorder{})
	err := l.Frame()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device lost")
}

func TestReloadsApplyFilterAndStyle(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Events = []string{"all"}
	cfg.Style = "light"

	pending := cfg
	poll := func() (*config.Config, bool) {
		c := pending
		pending = nil
		return c, c != nil
	}

	var style gui.Style
	app := &recorder{update: func(ctx *gui.Context) { style = ctx.Style() }}
	l := NewLoop(gui.New(&fakeRenderer{}), app, WithReloads(poll))
	require.NoError(t, l.Frame())

	assert.Equal(t, gui.AllEventKinds(), l.EventFilter())
	assert.Equal(t, gui.LightStyle(), style)
}

type styledRecorder struct {
	recorder
	styles []string
}

func (r *styledRecorder) SetStyleName(name string) error {
	r.styles = append(r.styles, name)
	return nil
}

func TestApplyConfigUpdatesStyleNamer(t *testing.T) {
	app := &styledRecorder{}
	l := NewLoop(gui.New(&fakeRenderer{}), app)
	cfg := config.DefaultConfig()
	cfg.Style = "dark"
	require.NoError(t, l.ApplyConfig(cfg))
	assert.Equal(t, []string{"dark"}, app.styles)

	cfg.Events = []string{"nope"}
	cfg.Style = "light"
	require.Error(t, l.ApplyConfig(cfg))
	assert.Equal(t, []string{"dark"}, app.styles, "nothing applied on error")
}

func TestApplyConfigRejectsBadValues(t *testing.T) {
	l := NewLoop(gui.New(&fakeRenderer{}), &recorder{})
	cfg := config.DefaultConfig()
	cfg.Events = []string{"nope"}
	assert.ErrorIs(t, l.ApplyConfig(cfg), gui.ErrUnknownEventKind)
	assert.Equal(t, gui.KeyboardEventKinds(), l.EventFilter(), "filter unchanged on error")
}
