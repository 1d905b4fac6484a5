package gui

// StateStore persists widget state between frames. Each GUI owns one.
type StateStore interface {
	Get(id ID) (any, bool)
	Set(id ID, value any)
	Delete(id ID)
}

// MapStateStore is the default in-memory StateStore.
type MapStateStore map[ID]any

func (m MapStateStore) Get(id ID) (any, bool) {
	v, ok := m[id]
	return v, ok
}

func (m MapStateStore) Set(id ID, value any) {
	m[id] = value
}

func (m MapStateStore) Delete(id ID) {
	delete(m, id)
}

// GetState returns the value stored for id, or defaultVal when it is missing
// or has a different type.
func GetState[T any](ctx *Context, id ID, defaultVal T) T {
	if v, ok := ctx.stateStore.Get(id); ok {
		if typed, ok := v.(T); ok {
			return typed
		}
	}
	return defaultVal
}

func SetState[T any](ctx *Context, id ID, value T) {
	ctx.stateStore.Set(id, value)
}

func DeleteState(ctx *Context, id ID) {
	ctx.stateStore.Delete(id)
}

func absf32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// InputTextState is the editing state of one text field.
// Positions are rune indices.
type InputTextState struct {
	// Editing is true while the field owns the keyboard.
	Editing bool

	CursorPos int

	// SelectionStart is the anchor and SelectionEnd follows the cursor.
	// -1 means no selection.
	SelectionStart int
	SelectionEnd   int

	// ScrollOffset shifts text that is wider than the field.
	ScrollOffset float32

	UndoStack []string
	UndoIndex int

	CursorBlinkTime float32
}

func (s *InputTextState) HasSelection() bool {
	return s.SelectionStart >= 0 && s.SelectionStart != s.SelectionEnd
}

// GetSelectedRange returns the selection ordered so start <= end, or -1, -1.
func (s *InputTextState) GetSelectedRange() (start, end int) {
	if !s.HasSelection() {
		return -1, -1
	}
	if s.SelectionStart < s.SelectionEnd {
		return s.SelectionStart, s.SelectionEnd
	}
	return s.SelectionEnd, s.SelectionStart
}

func (s *InputTextState) ClearSelection() {
	s.SelectionStart = -1
	s.SelectionEnd = -1
}

func (s *InputTextState) SelectAll(textLen int) {
	s.SelectionStart = 0
	s.SelectionEnd = textLen
	s.CursorPos = textLen
}

const maxUndoSize = 50

// PushUndo records text before an edit. Recording drops any redo history.
func (s *InputTextState) PushUndo(text string) {
	if s.UndoIndex < len(s.UndoStack) {
		s.UndoStack = s.UndoStack[:s.UndoIndex]
	}
	if n := len(s.UndoStack); n > 0 && s.UndoStack[n-1] == text {
		return
	}
	s.UndoStack = append(s.UndoStack, text)
	if len(s.UndoStack) > maxUndoSize {
		s.UndoStack = s.UndoStack[1:]
	}
	s.UndoIndex = len(s.UndoStack)
}

// Undo returns the text before the last recorded edit.
func (s *InputTextState) Undo(currentText string) (string, bool) {
	// Keep the current text reachable by Redo.
	if n := len(s.UndoStack); s.UndoIndex == n && n > 0 && s.UndoStack[n-1] != currentText {
		s.UndoStack = append(s.UndoStack, currentText)
	}
	if s.UndoIndex == 0 {
		return "", false
	}
	s.UndoIndex--
	return s.UndoStack[s.UndoIndex], true
}

func (s *InputTextState) Redo() (string, bool) {
	if s.UndoIndex >= len(s.UndoStack)-1 {
		return "", false
	}
	s.UndoIndex++
	return s.UndoStack[s.UndoIndex], true
}

func (s *InputTextState) CanUndo() bool { return s.UndoIndex > 0 }

func (s *InputTextState) CanRedo() bool { return s.UndoIndex < len(s.UndoStack)-1 }

// CollapsingHeaderState tracks whether a header is expanded.
type CollapsingHeaderState struct {
	Open bool
}

// SliderState tracks a grab drag in progress.
type SliderState struct {
	Dragging       bool
	DragStartX     float32
	DragStartValue float32
}

// ScrollableState is the persistent state of one Scrollable.
type ScrollableState struct {
	ScrollY       float32
	ScrollX       float32
	ContentHeight float32
	ContentWidth  float32

	// ViewportHeight excludes the horizontal scrollbar.
	ViewportHeight float32

	// Thumb drags; exactly one axis is dragged at a time.
	Dragging      bool
	DraggingX     bool
	DragStartY    float32
	DragStartX    float32
	DragStartScr  float32
	DragStartScrX float32

	// StuckToBottom is consulted only with StickToBottom. It starts true and
	// follows whether the user left the view at the bottom.
	StuckToBottom bool

	UserScrollTime float32 // seconds since the last user scroll
}
