package wgpu

import (
	"sync"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/stretchr/testify/assert"

	gui "github.com/go-theft-auto/gui-examples"
)

func TestMapKey(t *testing.T) {
	assert.Equal(t, gui.KeyA, mapKey(gpucontext.KeyA))
	assert.Equal(t, gui.KeyZ, mapKey(gpucontext.KeyZ))
	assert.Equal(t, gui.Key7, mapKey(gpucontext.Key7))
	assert.Equal(t, gui.KeyF12, mapKey(gpucontext.KeyF12))
	assert.Equal(t, gui.KeySpace, mapKey(gpucontext.KeySpace))
	assert.Equal(t, gui.KeyLeftCtrl, mapKey(gpucontext.KeyLeftControl))
	assert.Equal(t, gui.KeyGraveAccent, mapKey(gpucontext.KeyGrave))
	assert.Equal(t, gui.KeyKeypad0, mapKey(gpucontext.KeyNumpad0))
	assert.Equal(t, gui.KeyKeypad9, mapKey(gpucontext.KeyNumpad9))
	assert.Equal(t, gui.KeyKeypadEnter, mapKey(gpucontext.KeyNumpadEnter))
	assert.Equal(t, gui.KeyNone, mapKey(gpucontext.KeyUnknown))
	assert.Equal(t, gui.KeyNone, mapKey(gpucontext.Key(255)))
}

func TestMapMods(t *testing.T) {
	assert.Equal(t, gui.Modifiers(0), mapMods(0))
	assert.Equal(t, gui.ModifierShift|gui.ModifierCtrl, mapMods(gpucontext.ModShift|gpucontext.ModControl))
	assert.Equal(t, gui.ModifierAlt|gui.ModifierSuper, mapMods(gpucontext.ModAlt|gpucontext.ModSuper))
}

func TestMapMouseButton(t *testing.T) {
	b, ok := mapMouseButton(gpucontext.MouseButtonMiddle)
	assert.True(t, ok)
	assert.Equal(t, gui.MouseButtonMiddle, b)
}

func TestIMEPreedit(t *testing.T) {
	ev := imePreedit(gpucontext.IMEState{Composing: true, CompositionText: "にほん", CursorPos: 2})
	assert.Equal(t, gui.IMEEvent{Phase: gui.IMEPreedit, Text: "にほん", Cursor: 2}, ev)

	ev = imePreedit(gpucontext.IMEState{CompositionText: "ab", CursorPos: 9})
	assert.Equal(t, 2, ev.Cursor)
}

func TestEventQueueOrder(t *testing.T) {
	var q eventQueue
	q.push(gui.CharEvent{Rune: 'a'})
	q.push(gui.CharEvent{Rune: 'b'})

	var got []gui.Event
	q.drain(func(ev gui.Event) { got = append(got, ev) })
	assert.Equal(t, []gui.Event{gui.CharEvent{Rune: 'a'}, gui.CharEvent{Rune: 'b'}}, got)

	got = nil
	q.drain(func(ev gui.Event) { got = append(got, ev) })
	assert.Empty(t, got)

	q.push(gui.CloseEvent{})
	q.drain(func(ev gui.Event) { got = append(got, ev) })
	assert.Equal(t, []gui.Event{gui.CloseEvent{}}, got)
}

func TestEventQueueConcurrentPush(t *testing.T) {
	var q eventQueue
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.push(gui.ScrollEvent{DY: 1})
			}
		}()
	}

	n := 0
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	for {
		select {
		case <-done:
			q.drain(func(gui.Event) { n++ })
			assert.Equal(t, 800, n)
			return
		default:
			q.drain(func(gui.Event) { n++ })
		}
	}
}
