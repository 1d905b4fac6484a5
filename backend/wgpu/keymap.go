package wgpu

import (
	"github.com/gogpu/gpucontext"

	gui "github.com/go-theft-auto/gui-examples"
)

var gpuKeys = map[gpucontext.Key]gui.Key{
	gpucontext.KeyA: gui.KeyA, gpucontext.KeyB: gui.KeyB, gpucontext.KeyC: gui.KeyC,
	gpucontext.KeyD: gui.KeyD, gpucontext.KeyE: gui.KeyE, gpucontext.KeyF: gui.KeyF,
	gpucontext.KeyG: gui.KeyG, gpucontext.KeyH: gui.KeyH, gpucontext.KeyI: gui.KeyI,
	gpucontext.KeyJ: gui.KeyJ, gpucontext.KeyK: gui.KeyK, gpucontext.KeyL: gui.KeyL,
	gpucontext.KeyM: gui.KeyM, gpucontext.KeyN: gui.KeyN, gpucontext.KeyO: gui.KeyO,
	gpucontext.KeyP: gui.KeyP, gpucontext.KeyQ: gui.KeyQ, gpucontext.KeyR: gui.KeyR,
	gpucontext.KeyS: gui.KeyS, gpucontext.KeyT: gui.KeyT, gpucontext.KeyU: gui.KeyU,
	gpucontext.KeyV: gui.KeyV, gpucontext.KeyW: gui.KeyW, gpucontext.KeyX: gui.KeyX,
	gpucontext.KeyY: gui.KeyY, gpucontext.KeyZ: gui.KeyZ,

	gpucontext.Key0: gui.Key0, gpucontext.Key1: gui.Key1, gpucontext.Key2: gui.Key2,
	gpucontext.Key3: gui.Key3, gpucontext.Key4: gui.Key4, gpucontext.Key5: gui.Key5,
	gpucontext.Key6: gui.Key6, gpucontext.Key7: gui.Key7, gpucontext.Key8: gui.Key8,
	gpucontext.Key9: gui.Key9,

	gpucontext.KeyF1: gui.KeyF1, gpucontext.KeyF2: gui.KeyF2, gpucontext.KeyF3: gui.KeyF3,
	gpucontext.KeyF4: gui.KeyF4, gpucontext.KeyF5: gui.KeyF5, gpucontext.KeyF6: gui.KeyF6,
	gpucontext.KeyF7: gui.KeyF7, gpucontext.KeyF8: gui.KeyF8, gpucontext.KeyF9: gui.KeyF9,
	gpucontext.KeyF10: gui.KeyF10, gpucontext.KeyF11: gui.KeyF11, gpucontext.KeyF12: gui.KeyF12,

	gpucontext.KeyEscape:    gui.KeyEscape,
	gpucontext.KeyEnter:     gui.KeyEnter,
	gpucontext.KeyTab:       gui.KeyTab,
	gpucontext.KeyBackspace: gui.KeyBackspace,
	gpucontext.KeySpace:     gui.KeySpace,
	gpucontext.KeyInsert:    gui.KeyInsert,
	gpucontext.KeyDelete:    gui.KeyDelete,
	gpucontext.KeyHome:      gui.KeyHome,
	gpucontext.KeyEnd:       gui.KeyEnd,
	gpucontext.KeyPageUp:    gui.KeyPageUp,
	gpucontext.KeyPageDown:  gui.KeyPageDown,
	gpucontext.KeyLeft:      gui.KeyLeft,
	gpucontext.KeyRight:     gui.KeyRight,
	gpucontext.KeyUp:        gui.KeyUp,
	gpucontext.KeyDown:      gui.KeyDown,

	gpucontext.KeyLeftShift:    gui.KeyLeftShift,
	gpucontext.KeyRightShift:   gui.KeyRightShift,
	gpucontext.KeyLeftControl:  gui.KeyLeftCtrl,
	gpucontext.KeyRightControl: gui.KeyRightCtrl,
	gpucontext.KeyLeftAlt:      gui.KeyLeftAlt,
	gpucontext.KeyRightAlt:     gui.KeyRightAlt,
	gpucontext.KeyLeftSuper:    gui.KeyLeftSuper,
	gpucontext.KeyRightSuper:   gui.KeyRightSuper,

	gpucontext.KeyMinus:        gui.KeyMinus,
	gpucontext.KeyEqual:        gui.KeyEqual,
	gpucontext.KeyLeftBracket:  gui.KeyLeftBracket,
	gpucontext.KeyRightBracket: gui.KeyRightBracket,
	gpucontext.KeyBackslash:    gui.KeyBackslash,
	gpucontext.KeySemicolon:    gui.KeySemicolon,
	gpucontext.KeyApostrophe:   gui.KeyApostrophe,
	gpucontext.KeyGrave:        gui.KeyGraveAccent,
	gpucontext.KeyComma:        gui.KeyComma,
	gpucontext.KeyPeriod:       gui.KeyPeriod,
	gpucontext.KeySlash:        gui.KeySlash,

	gpucontext.KeyNumpadDecimal:  gui.KeyKeypadDecimal,
	gpucontext.KeyNumpadDivide:   gui.KeyKeypadDivide,
	gpucontext.KeyNumpadMultiply: gui.KeyKeypadMultiply,
	gpucontext.KeyNumpadSubtract: gui.KeyKeypadSubtract,
	gpucontext.KeyNumpadAdd:      gui.KeyKeypadAdd,
	gpucontext.KeyNumpadEnter:    gui.KeyKeypadEnter,

	gpucontext.KeyCapsLock:    gui.KeyCapsLock,
	gpucontext.KeyScrollLock:  gui.KeyScrollLock,
	gpucontext.KeyNumLock:     gui.KeyNumLock,
	gpucontext.KeyPrintScreen: gui.KeyPrintScreen,
	gpucontext.KeyPause:       gui.KeyPause,
}

func mapKey(key gpucontext.Key) gui.Key {
	if key >= gpucontext.KeyNumpad0 && key <= gpucontext.KeyNumpad9 {
		return gui.KeyKeypad0 + gui.Key(key-gpucontext.KeyNumpad0)
	}
	if k, ok := gpuKeys[key]; ok {
		return k
	}
	return gui.KeyNone
}

func mapMods(mods gpucontext.Modifiers) gui.Modifiers {
	var m gui.Modifiers
	if mods&gpucontext.ModShift != 0 {
		m |= gui.ModifierShift
	}
	if mods&gpucontext.ModControl != 0 {
		m |= gui.ModifierCtrl
	}
	if mods&gpucontext.ModAlt != 0 {
		m |= gui.ModifierAlt
	}
	if mods&gpucontext.ModSuper != 0 {
		m |= gui.ModifierSuper
	}
	return m
}

func mapMouseButton(button gpucontext.MouseButton) (gui.MouseButton, bool) {
	switch button {
	case gpucontext.MouseButtonLeft:
		return gui.MouseButtonLeft, true
	case gpucontext.MouseButtonRight:
		return gui.MouseButtonRight, true
	case gpucontext.MouseButtonMiddle:
		return gui.MouseButtonMiddle, true
	}
	return 0, false
}
