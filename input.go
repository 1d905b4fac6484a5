package gui

import (
	"fmt"
	"unicode/utf8"
)

// MouseButton represents a mouse button.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonCount
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	}
	return fmt.Sprintf("Other(%d)", int(b))
}

// Key is a backend-independent key code.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyApostrophe
	KeyComma
	KeyMinus
	KeyPeriod
	KeySlash
	KeySemicolon
	KeyEqual
	KeyLeftBracket
	KeyBackslash
	KeyRightBracket
	KeyGraveAccent

	KeyCapsLock
	KeyScrollLock
	KeyNumLock
	KeyPrintScreen
	KeyPause

	KeyKeypad0
	KeyKeypad1
	KeyKeypad2
	KeyKeypad3
	KeyKeypad4
	KeyKeypad5
	KeyKeypad6
	KeyKeypad7
	KeyKeypad8
	KeyKeypad9
	KeyKeypadDecimal
	KeyKeypadDivide
	KeyKeypadMultiply
	KeyKeypadSubtract
	KeyKeypadAdd
	KeyKeypadEnter

	KeyLeftShift
	KeyLeftCtrl
	KeyLeftAlt
	KeyLeftSuper
	KeyRightShift
	KeyRightCtrl
	KeyRightAlt
	KeyRightSuper
	KeyMenu

	KeyCount
)

// Key repeat timing in seconds.
const (
	KeyRepeatDelay    float32 = 0.4
	KeyRepeatInterval float32 = 0.03
)

var keyNames = [KeyCount]string{
	KeyNone:      "--",
	KeyTab:       "Tab",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyInsert:    "Insert",
	KeyDelete:    "Delete",
	KeyBackspace: "Backspace",
	KeySpace:     "Space",
	KeyEnter:     "Enter",
	KeyEscape:    "Escape",

	KeyApostrophe:   "Apostrophe",
	KeyComma:        "Comma",
	KeyMinus:        "Minus",
	KeyPeriod:       "Period",
	KeySlash:        "Slash",
	KeySemicolon:    "Semicolon",
	KeyEqual:        "Equals",
	KeyLeftBracket:  "LBracket",
	KeyBackslash:    "Backslash",
	KeyRightBracket: "RBracket",
	KeyGraveAccent:  "Grave",

	KeyCapsLock:    "CapsLock",
	KeyScrollLock:  "ScrollLock",
	KeyNumLock:     "NumLock",
	KeyPrintScreen: "Snapshot",
	KeyPause:       "Pause",

	KeyKeypadDecimal:  "NumpadDecimal",
	KeyKeypadDivide:   "NumpadDivide",
	KeyKeypadMultiply: "NumpadMultiply",
	KeyKeypadSubtract: "NumpadSubtract",
	KeyKeypadAdd:      "NumpadAdd",
	KeyKeypadEnter:    "NumpadEnter",

	KeyLeftShift:  "LShift",
	KeyLeftCtrl:   "LControl",
	KeyLeftAlt:    "LAlt",
	KeyLeftSuper:  "LWin",
	KeyRightShift: "RShift",
	KeyRightCtrl:  "RControl",
	KeyRightAlt:   "RAlt",
	KeyRightSuper: "RWin",
	KeyMenu:       "Apps",
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('A' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = "Key" + string(rune('0'+int(k-Key0)))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = fmt.Sprintf("F%d", int(k-KeyF1)+1)
	}
	for k := KeyKeypad0; k <= KeyKeypad9; k++ {
		keyNames[k] = "Numpad" + string(rune('0'+int(k-KeyKeypad0)))
	}
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if k < 0 || k >= KeyCount || keyNames[k] == "" {
		return "?"
	}
	return keyNames[k]
}

func (k Key) String() string { return KeyName(k) }

// InputState holds input for the current frame. Backends feed it through
// Apply, or the Set* methods directly.
type InputState struct {
	MouseX, MouseY float32

	mouseDown    [MouseButtonCount]bool
	mouseClicked [MouseButtonCount]bool // pressed this frame
	mouseUp      [MouseButtonCount]bool // released this frame

	MouseWheelX float32
	MouseWheelY float32

	keyDown    [KeyCount]bool
	keyPressed [KeyCount]bool
	keyUp      [KeyCount]bool

	keyHoldTime [KeyCount]float32

	// InputChars holds the characters typed this frame, including IME commits.
	InputChars []rune

	ModCtrl  bool
	ModShift bool
	ModAlt   bool
	ModSuper bool

	// Preedit is the IME composition in progress. It persists across frames
	// until the IME commits or is disabled.
	Preedit       string
	PreeditCursor int
	IMEActive     bool
}

func NewInputState() *InputState {
	return &InputState{
		InputChars:    make([]rune, 0, 16),
		PreeditCursor: -1,
	}
}

// Reset clears per-frame input state. Held keys, buttons and the IME
// composition survive.
func (s *InputState) Reset() {
	clear(s.mouseClicked[:])
	clear(s.mouseUp[:])
	clear(s.keyPressed[:])
	clear(s.keyUp[:])
	s.InputChars = s.InputChars[:0]
	s.MouseWheelX = 0
	s.MouseWheelY = 0
}

// Apply folds one window event into the input state.
func (s *InputState) Apply(ev Event) {
	switch e := ev.(type) {
	case KeyEvent:
		s.setModifiers(e.Mods)
		switch e.Action {
		case KeyPress:
			s.SetKey(e.Key, true)
		case KeyRelease:
			s.SetKey(e.Key, false)
		case KeyRepeat:
			// Repeats are synthesized from hold time.
		}
	case CharEvent:
		s.AddInputChar(e.Rune)
	case IMEEvent:
		s.applyIME(e)
	case MouseButtonEvent:
		s.SetMousePos(e.X, e.Y)
		s.SetMouseButton(e.Button, e.Pressed)
	case CursorMovedEvent:
		s.SetMousePos(e.X, e.Y)
	case ScrollEvent:
		s.MouseWheelX += e.DX
		s.MouseWheelY += e.DY
	case FocusEvent:
		if !e.Focused {
			s.releaseAll()
		}
	}
}

func (s *InputState) applyIME(e IMEEvent) {
	switch e.Phase {
	case IMEEnabled:
		s.IMEActive = true
	case IMEPreedit:
		s.Preedit = e.Text
		s.PreeditCursor = e.Cursor
	case IMECommit:
		for len(e.Text) > 0 {
			r, size := utf8.DecodeRuneInString(e.Text)
			s.AddInputChar(r)
			e.Text = e.Text[size:]
		}
		s.Preedit = ""
		s.PreeditCursor = -1
	case IMEDisabled:
		s.IMEActive = false
		s.Preedit = ""
		s.PreeditCursor = -1
	}
}

func (s *InputState) setModifiers(m Modifiers) {
	s.ModShift = m&ModifierShift != 0
	s.ModCtrl = m&ModifierCtrl != 0
	s.ModAlt = m&ModifierAlt != 0
	s.ModSuper = m&ModifierSuper != 0
}

// releaseAll drops held keys and buttons, e.g. when the window loses focus
// and release events will never arrive.
func (s *InputState) releaseAll() {
	for k := Key(0); k < KeyCount; k++ {
		s.SetKey(k, false)
	}
	for b := MouseButton(0); b < MouseButtonCount; b++ {
		s.SetMouseButton(b, false)
	}
	s.setModifiers(0)
}

func (s *InputState) SetMousePos(x, y float32) {
	s.MouseX = x
	s.MouseY = y
}

func (s *InputState) SetMouseButton(button MouseButton, down bool) {
	if button < 0 || button >= MouseButtonCount {
		return
	}

	wasDown := s.mouseDown[button]
	s.mouseDown[button] = down

	if down && !wasDown {
		s.mouseClicked[button] = true
	}
	if !down && wasDown {
		s.mouseUp[button] = true
	}
}

func (s *InputState) SetKey(key Key, down bool) {
	if key < 0 || key >= KeyCount {
		return
	}

	wasDown := s.keyDown[key]
	s.keyDown[key] = down

	if down && !wasDown {
		s.keyPressed[key] = true
		s.keyHoldTime[key] = 0
	}
	if !down && wasDown {
		s.keyUp[key] = true
		s.keyHoldTime[key] = 0
	}
}

// UpdateKeyRepeat advances hold times. Call once per frame with the frame delta.
func (s *InputState) UpdateKeyRepeat(dt float32) {
	for key := Key(0); key < KeyCount; key++ {
		if s.keyDown[key] {
			s.keyHoldTime[key] += dt
		}
	}
}

func (s *InputState) SetMouseWheel(x, y float32) {
	s.MouseWheelX = x
	s.MouseWheelY = y
}

func (s *InputState) AddInputChar(ch rune) {
	s.InputChars = append(s.InputChars, ch)
}

func (s *InputState) MouseDown(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseDown[button]
}

// MouseClicked reports a press during this frame.
func (s *InputState) MouseClicked(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseClicked[button]
}

func (s *InputState) MouseReleased(button MouseButton) bool {
	if button < 0 || button >= MouseButtonCount {
		return false
	}
	return s.mouseUp[button]
}

func (s *InputState) KeyDown(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyDown[key]
}

// KeyPressed reports a press during this frame.
func (s *InputState) KeyPressed(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyPressed[key]
}

func (s *InputState) KeyReleased(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	return s.keyUp[key]
}

// KeyRepeated reports true on the initial press, then after KeyRepeatDelay,
// then every KeyRepeatInterval while the key stays down.
func (s *InputState) KeyRepeated(key Key) bool {
	if key < 0 || key >= KeyCount {
		return false
	}
	if s.keyPressed[key] {
		return true
	}
	if !s.keyDown[key] {
		return false
	}

	holdTime := s.keyHoldTime[key]
	if holdTime < KeyRepeatDelay {
		return false
	}

	// Fire when an interval boundary was crossed since the previous (~60fps) frame.
	timeSinceDelay := holdTime - KeyRepeatDelay
	repeatCount := int(timeSinceDelay / KeyRepeatInterval)
	prevRepeatCount := int((timeSinceDelay - 0.016) / KeyRepeatInterval)
	return repeatCount > prevRepeatCount
}

func (s *InputState) HasInputChars() bool {
	return len(s.InputChars) > 0
}

// ConsumeInputChars drops this frame's typed characters so later widgets do
// not see a character that already triggered a shortcut.
func (s *InputState) ConsumeInputChars() {
	s.InputChars = s.InputChars[:0]
}
