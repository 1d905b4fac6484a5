package opengl

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"

	gui "github.com/go-theft-auto/gui-examples"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		in   glfw.Key
		want gui.Key
	}{
		{glfw.KeyA, gui.KeyA},
		{glfw.KeyM, gui.KeyM},
		{glfw.KeyZ, gui.KeyZ},
		{glfw.Key0, gui.Key0},
		{glfw.Key9, gui.Key9},
		{glfw.KeyF1, gui.KeyF1},
		{glfw.KeyF12, gui.KeyF12},
		{glfw.KeyKP0, gui.KeyKeypad0},
		{glfw.KeyKP7, gui.KeyKeypad7},
		{glfw.KeyKPEnter, gui.KeyKeypadEnter},
		{glfw.KeyEnter, gui.KeyEnter},
		{glfw.KeyBackspace, gui.KeyBackspace},
		{glfw.KeyLeftControl, gui.KeyLeftCtrl},
		{glfw.KeyRightSuper, gui.KeyRightSuper},
		{glfw.KeyGraveAccent, gui.KeyGraveAccent},
		{glfw.KeyF13, gui.KeyNone},
		{glfw.KeyUnknown, gui.KeyNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mapKey(tt.in), "glfw key %d", tt.in)
	}
}

func TestMapAction(t *testing.T) {
	assert.Equal(t, gui.KeyPress, mapAction(glfw.Press))
	assert.Equal(t, gui.KeyRelease, mapAction(glfw.Release))
	assert.Equal(t, gui.KeyRepeat, mapAction(glfw.Repeat))
}

func TestMapMods(t *testing.T) {
	assert.Equal(t, gui.Modifiers(0), mapMods(0))
	assert.Equal(t, gui.ModifierCtrl|gui.ModifierShift, mapMods(glfw.ModControl|glfw.ModShift))
	assert.Equal(t, gui.ModifierAlt|gui.ModifierSuper, mapMods(glfw.ModAlt|glfw.ModSuper))
	assert.Equal(t, gui.ModifierShift, mapMods(glfw.ModShift|glfw.ModCapsLock))
}

func TestMapMouseButton(t *testing.T) {
	b, ok := mapMouseButton(glfw.MouseButtonRight)
	assert.True(t, ok)
	assert.Equal(t, gui.MouseButtonRight, b)

	_, ok = mapMouseButton(glfw.MouseButton4)
	assert.False(t, ok)
}

func TestScissorBox(t *testing.T) {
	x, y, w, h, ok := scissorBox([4]float32{10, 20, 110, 70}, 1, 600)
	assert.True(t, ok)
	assert.Equal(t, [4]int32{10, 530, 100, 50}, [4]int32{x, y, w, h})

	x, y, w, h, ok = scissorBox([4]float32{10, 20, 110, 70}, 2, 1200)
	assert.True(t, ok)
	assert.Equal(t, [4]int32{20, 1060, 200, 100}, [4]int32{x, y, w, h})

	x, y, w, h, ok = scissorBox([4]float32{-1e9, -1e9, 1e9, 1e9}, 1, 600)
	assert.True(t, ok)
	assert.Equal(t, [4]int32{0, 0, 1 << 24, 600}, [4]int32{x, y, w, h})

	_, _, _, _, ok = scissorBox([4]float32{50, 50, 40, 60}, 1, 600)
	assert.False(t, ok)
}
