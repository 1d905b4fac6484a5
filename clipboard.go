package gui

import "sync"

// ClipboardProvider is the system clipboard as seen by text fields.
// Backends install one at startup; without it copy and paste are no-ops.
type ClipboardProvider interface {
	GetText() string
	SetText(text string)
}

var (
	clipboardMu       sync.RWMutex
	clipboardProvider ClipboardProvider
)

func SetClipboardProvider(cp ClipboardProvider) {
	clipboardMu.Lock()
	clipboardProvider = cp
	clipboardMu.Unlock()
}

func ClipboardGetText() string {
	clipboardMu.RLock()
	cp := clipboardProvider
	clipboardMu.RUnlock()
	if cp == nil {
		return ""
	}
	return cp.GetText()
}

func ClipboardSetText(text string) {
	clipboardMu.RLock()
	cp := clipboardProvider
	clipboardMu.RUnlock()
	if cp != nil {
		cp.SetText(text)
	}
}

// MemoryClipboard keeps the clipboard in process. Backends without system
// clipboard access use it.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

func (c *MemoryClipboard) GetText() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.text
}

func (c *MemoryClipboard) SetText(text string) {
	c.mu.Lock()
	c.text = text
	c.mu.Unlock()
}
