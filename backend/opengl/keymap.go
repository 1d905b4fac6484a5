package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	gui "github.com/go-theft-auto/gui-examples"
)

var glfwKeys = map[glfw.Key]gui.Key{
	glfw.KeyTab:       gui.KeyTab,
	glfw.KeyLeft:      gui.KeyLeft,
	glfw.KeyRight:     gui.KeyRight,
	glfw.KeyUp:        gui.KeyUp,
	glfw.KeyDown:      gui.KeyDown,
	glfw.KeyPageUp:    gui.KeyPageUp,
	glfw.KeyPageDown:  gui.KeyPageDown,
	glfw.KeyHome:      gui.KeyHome,
	glfw.KeyEnd:       gui.KeyEnd,
	glfw.KeyInsert:    gui.KeyInsert,
	glfw.KeyDelete:    gui.KeyDelete,
	glfw.KeyBackspace: gui.KeyBackspace,
	glfw.KeySpace:     gui.KeySpace,
	glfw.KeyEnter:     gui.KeyEnter,
	glfw.KeyEscape:    gui.KeyEscape,

	glfw.KeyApostrophe:   gui.KeyApostrophe,
	glfw.KeyComma:        gui.KeyComma,
	glfw.KeyMinus:        gui.KeyMinus,
	glfw.KeyPeriod:       gui.KeyPeriod,
	glfw.KeySlash:        gui.KeySlash,
	glfw.KeySemicolon:    gui.KeySemicolon,
	glfw.KeyEqual:        gui.KeyEqual,
	glfw.KeyLeftBracket:  gui.KeyLeftBracket,
	glfw.KeyBackslash:    gui.KeyBackslash,
	glfw.KeyRightBracket: gui.KeyRightBracket,
	glfw.KeyGraveAccent:  gui.KeyGraveAccent,

	glfw.KeyCapsLock:    gui.KeyCapsLock,
	glfw.KeyScrollLock:  gui.KeyScrollLock,
	glfw.KeyNumLock:     gui.KeyNumLock,
	glfw.KeyPrintScreen: gui.KeyPrintScreen,
	glfw.KeyPause:       gui.KeyPause,

	glfw.KeyKPDecimal:  gui.KeyKeypadDecimal,
	glfw.KeyKPDivide:   gui.KeyKeypadDivide,
	glfw.KeyKPMultiply: gui.KeyKeypadMultiply,
	glfw.KeyKPSubtract: gui.KeyKeypadSubtract,
	glfw.KeyKPAdd:      gui.KeyKeypadAdd,
	glfw.KeyKPEnter:    gui.KeyKeypadEnter,

	glfw.KeyLeftShift:    gui.KeyLeftShift,
	glfw.KeyLeftControl:  gui.KeyLeftCtrl,
	glfw.KeyLeftAlt:      gui.KeyLeftAlt,
	glfw.KeyLeftSuper:    gui.KeyLeftSuper,
	glfw.KeyRightShift:   gui.KeyRightShift,
	glfw.KeyRightControl: gui.KeyRightCtrl,
	glfw.KeyRightAlt:     gui.KeyRightAlt,
	glfw.KeyRightSuper:   gui.KeyRightSuper,
	glfw.KeyMenu:         gui.KeyMenu,
}

// mapKey converts a GLFW key to a gui key. Unknown keys map to KeyNone.
func mapKey(key glfw.Key) gui.Key {
	switch {
	case key >= glfw.KeyA && key <= glfw.KeyZ:
		return gui.KeyA + gui.Key(key-glfw.KeyA)
	case key >= glfw.Key0 && key <= glfw.Key9:
		return gui.Key0 + gui.Key(key-glfw.Key0)
	case key >= glfw.KeyF1 && key <= glfw.KeyF12:
		return gui.KeyF1 + gui.Key(key-glfw.KeyF1)
	case key >= glfw.KeyKP0 && key <= glfw.KeyKP9:
		return gui.KeyKeypad0 + gui.Key(key-glfw.KeyKP0)
	}
	if k, ok := glfwKeys[key]; ok {
		return k
	}
	return gui.KeyNone
}

func mapAction(action glfw.Action) gui.KeyAction {
	switch action {
	case glfw.Release:
		return gui.KeyRelease
	case glfw.Repeat:
		return gui.KeyRepeat
	}
	return gui.KeyPress
}

func mapMods(mods glfw.ModifierKey) gui.Modifiers {
	var m gui.Modifiers
	if mods&glfw.ModShift != 0 {
		m |= gui.ModifierShift
	}
	if mods&glfw.ModControl != 0 {
		m |= gui.ModifierCtrl
	}
	if mods&glfw.ModAlt != 0 {
		m |= gui.ModifierAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= gui.ModifierSuper
	}
	return m
}

// mapMouseButton reports false for buttons the gui does not track.
func mapMouseButton(button glfw.MouseButton) (gui.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return gui.MouseButtonLeft, true
	case glfw.MouseButtonRight:
		return gui.MouseButtonRight, true
	case glfw.MouseButtonMiddle:
		return gui.MouseButtonMiddle, true
	}
	return 0, false
}
