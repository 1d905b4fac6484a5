package webgl

import (
	"strconv"
	"strings"

	gui "github.com/go-theft-auto/gui-examples"
)

// domKeys maps KeyboardEvent.code values that are not covered by the
// letter, digit, function and numpad ranges.
var domKeys = map[string]gui.Key{
	"Tab":         gui.KeyTab,
	"ArrowLeft":   gui.KeyLeft,
	"ArrowRight":  gui.KeyRight,
	"ArrowUp":     gui.KeyUp,
	"ArrowDown":   gui.KeyDown,
	"PageUp":      gui.KeyPageUp,
	"PageDown":    gui.KeyPageDown,
	"Home":        gui.KeyHome,
	"End":         gui.KeyEnd,
	"Insert":      gui.KeyInsert,
	"Delete":      gui.KeyDelete,
	"Backspace":   gui.KeyBackspace,
	"Space":       gui.KeySpace,
	"Enter":       gui.KeyEnter,
	"Escape":      gui.KeyEscape,
	"Quote":       gui.KeyApostrophe,
	"Comma":       gui.KeyComma,
	"Minus":       gui.KeyMinus,
	"Period":      gui.KeyPeriod,
	"Slash":       gui.KeySlash,
	"Semicolon":   gui.KeySemicolon,
	"Equal":       gui.KeyEqual,
	"BracketLeft": gui.KeyLeftBracket,
	"Backslash":   gui.KeyBackslash,

	"BracketRight": gui.KeyRightBracket,
	"Backquote":    gui.KeyGraveAccent,
	"CapsLock":     gui.KeyCapsLock,
	"ScrollLock":   gui.KeyScrollLock,
	"NumLock":      gui.KeyNumLock,
	"PrintScreen":  gui.KeyPrintScreen,
	"Pause":        gui.KeyPause,

	"NumpadDecimal":  gui.KeyKeypadDecimal,
	"NumpadDivide":   gui.KeyKeypadDivide,
	"NumpadMultiply": gui.KeyKeypadMultiply,
	"NumpadSubtract": gui.KeyKeypadSubtract,
	"NumpadAdd":      gui.KeyKeypadAdd,
	"NumpadEnter":    gui.KeyKeypadEnter,

	"ShiftLeft":    gui.KeyLeftShift,
	"ControlLeft":  gui.KeyLeftCtrl,
	"AltLeft":      gui.KeyLeftAlt,
	"MetaLeft":     gui.KeyLeftSuper,
	"ShiftRight":   gui.KeyRightShift,
	"ControlRight": gui.KeyRightCtrl,
	"AltRight":     gui.KeyRightAlt,
	"MetaRight":    gui.KeyRightSuper,
	"ContextMenu":  gui.KeyMenu,
}

// mapCode converts a KeyboardEvent.code to a gui key. Codes are layout
// independent, so "KeyA" is the key right of Caps Lock on every layout.
func mapCode(code string) gui.Key {
	if k, ok := domKeys[code]; ok {
		return k
	}
	if rest, ok := strings.CutPrefix(code, "Key"); ok && len(rest) == 1 && rest[0] >= 'A' && rest[0] <= 'Z' {
		return gui.KeyA + gui.Key(rest[0]-'A')
	}
	if rest, ok := strings.CutPrefix(code, "Digit"); ok && len(rest) == 1 && rest[0] >= '0' && rest[0] <= '9' {
		return gui.Key0 + gui.Key(rest[0]-'0')
	}
	if rest, ok := strings.CutPrefix(code, "Numpad"); ok && len(rest) == 1 && rest[0] >= '0' && rest[0] <= '9' {
		return gui.KeyKeypad0 + gui.Key(rest[0]-'0')
	}
	if rest, ok := strings.CutPrefix(code, "F"); ok {
		if n, err := strconv.Atoi(rest); err == nil && n >= 1 && n <= 12 {
			return gui.KeyF1 + gui.Key(n-1)
		}
	}
	return gui.KeyNone
}

func mapMods(shift, ctrl, alt, meta bool) gui.Modifiers {
	var m gui.Modifiers
	if shift {
		m |= gui.ModifierShift
	}
	if ctrl {
		m |= gui.ModifierCtrl
	}
	if alt {
		m |= gui.ModifierAlt
	}
	if meta {
		m |= gui.ModifierSuper
	}
	return m
}

// mapButton converts MouseEvent.button, where 1 is the middle button.
func mapButton(button int) (gui.MouseButton, bool) {
	switch button {
	case 0:
		return gui.MouseButtonLeft, true
	case 1:
		return gui.MouseButtonMiddle, true
	case 2:
		return gui.MouseButtonRight, true
	}
	return 0, false
}

// scissorBox converts a top-left origin clip rect in CSS pixels to a
// bottom-left origin scissor box in canvas pixels.
func scissorBox(clip [4]float32, scale, fbWidth, fbHeight float32) (x, y, w, h int32, ok bool) {
	x1 := max(clip[0]*scale, 0)
	y1 := max(clip[1]*scale, 0)
	x2 := min(clip[2]*scale, fbWidth)
	y2 := min(clip[3]*scale, fbHeight)
	if x2 <= x1 || y2 <= y1 {
		return 0, 0, 0, 0, false
	}
	return int32(x1), int32(fbHeight - y2), int32(x2 - x1), int32(y2 - y1), true
}
