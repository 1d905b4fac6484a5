package webgl

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gui "github.com/go-theft-auto/gui-examples"
)

func TestMapCode(t *testing.T) {
	tests := []struct {
		code string
		want gui.Key
	}{
		{"KeyA", gui.KeyA},
		{"KeyZ", gui.KeyZ},
		{"Digit0", gui.Key0},
		{"Digit9", gui.Key9},
		{"Numpad4", gui.KeyKeypad4},
		{"NumpadEnter", gui.KeyKeypadEnter},
		{"F1", gui.KeyF1},
		{"F12", gui.KeyF12},
		{"F13", gui.KeyNone},
		{"F", gui.KeyNone},
		{"ArrowUp", gui.KeyUp},
		{"Backquote", gui.KeyGraveAccent},
		{"ControlRight", gui.KeyRightCtrl},
		{"MetaLeft", gui.KeyLeftSuper},
		{"Keya", gui.KeyNone},
		{"KeyAB", gui.KeyNone},
		{"", gui.KeyNone},
		{"IntlBackslash", gui.KeyNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapCode(tt.code), "code %q", tt.code)
	}
}

func TestMapMods(t *testing.T) {
	assert.Equal(t, gui.Modifiers(0), mapMods(false, false, false, false))
	assert.Equal(t, gui.ModifierShift|gui.ModifierSuper, mapMods(true, false, false, true))
	assert.Equal(t, gui.ModifierCtrl|gui.ModifierAlt, mapMods(false, true, true, false))
}

func TestMapButton(t *testing.T) {
	b, ok := mapButton(1)
	assert.True(t, ok)
	assert.Equal(t, gui.MouseButtonMiddle, b)

	b, ok = mapButton(2)
	assert.True(t, ok)
	assert.Equal(t, gui.MouseButtonRight, b)

	_, ok = mapButton(3)
	assert.False(t, ok)
}

func TestScissorBox(t *testing.T) {
	x, y, w, h, ok := scissorBox([4]float32{10, 20, 110, 70}, 2, 800, 600)
	assert.True(t, ok)
	assert.Equal(t, [4]int32{20, 460, 200, 100}, [4]int32{x, y, w, h})

	x, y, w, h, ok = scissorBox([4]float32{-1e9, -1e9, 1e9, 1e9}, 1, 800, 600)
	assert.True(t, ok)
	assert.Equal(t, [4]int32{0, 0, 800, 600}, [4]int32{x, y, w, h})

	_, _, _, _, ok = scissorBox([4]float32{900, 0, 950, 10}, 1, 800, 600)
	assert.False(t, ok)
}
