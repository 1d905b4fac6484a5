package keydebug

import (
	gui "github.com/go-theft-auto/gui-examples"
	"github.com/go-theft-auto/gui-examples/platform"
)

// App shows a Panel in a full-window root. The frame loop feeds it the
// events its filter allows.
type App struct {
	panel *Panel
}

func NewApp() *App {
	return &App{panel: New()}
}

func (a *App) Panel() *Panel {
	return a.panel
}

func (a *App) Update(ctx *gui.Context, _ platform.FrameInfo) {
	ctx.Window(func() {
		a.panel.Render(ctx)
	})
}

func (a *App) Feed(ev gui.Event) {
	a.panel.Feed(ev)
}

var (
	_ platform.App       = (*App)(nil)
	_ platform.EventSink = (*App)(nil)
)
