// Package keydebug is a keyboard debugger: a text field to type into and a
// scrolling log of every keyboard, character and IME event the window
// delivered, in arrival order.
package keydebug

import (
	gui "github.com/go-theft-auto/gui-examples"
)

// Panel holds the typed text and the event log. It is not safe for
// concurrent use; feed it from the thread that renders.
type Panel struct {
	inputText string
	eventLog  []string

	focused bool // the text field has been given focus once

	// Widest entry measured so far, for the horizontal scroll range of
	// rows that are clipped away.
	widest   float32
	measured int
}

// New returns a panel with an empty text field and an empty log.
func New() *Panel {
	return &Panel{}
}

// Feed appends the rendering of ev to the log. Every event is recorded,
// repeats included.
func (p *Panel) Feed(ev gui.Event) {
	p.eventLog = append(p.eventLog, ev.String())
}

// Clear empties the log. The typed text is kept.
func (p *Panel) Clear() {
	p.eventLog = p.eventLog[:0]
	p.widest = 0
	p.measured = 0
}

// Entries returns a copy of the log, oldest first.
func (p *Panel) Entries() []string {
	out := make([]string, len(p.eventLog))
	copy(out, p.eventLog)
	return out
}

func (p *Panel) Len() int {
	return len(p.eventLog)
}

func (p *Panel) Text() string {
	return p.inputText
}

func (p *Panel) SetText(s string) {
	p.inputText = s
}

// Render draws the input row and, below it, the log filling the rest of
// the layout. The log follows the newest entry until the user scrolls
// away.
func (p *Panel) Render(ctx *gui.Context) {
	ctx.HStack()(func() {
		ctx.Text("please input here")
		var opts []gui.Option
		if !p.focused {
			opts = append(opts, gui.ForceFocus())
			p.focused = true
		}
		ctx.InputText("##input", &p.inputText, opts...)
		if ctx.Button("clear logs") {
			p.Clear()
		}
	})

	for ; p.measured < len(p.eventLog); p.measured++ {
		if w := ctx.MeasureText(p.eventLog[p.measured]).X; w > p.widest {
			p.widest = w
		}
	}

	ctx.Scrollable("event log", 0, gui.StickToBottom(), gui.EnableHorizontal())(func() {
		ctx.ListClipped(len(p.eventLog), p.widest, func(i int) {
			ctx.Text(p.eventLog[i])
		})
	})
}
