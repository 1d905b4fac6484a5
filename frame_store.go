package gui

import "sync"

// Cleanable is implemented by stores that drop entries nobody touched
// during the previous frame of their Context.
type Cleanable interface {
	Cleanup(tag, currentFrame uint64)
}

var (
	registryMu       sync.Mutex
	registeredStores []Cleanable
	contextFrames    = make(map[uint64]uint64) // frame counter per context tag
)

func registerStore(store Cleanable) {
	registryMu.Lock()
	registeredStores = append(registeredStores, store)
	registryMu.Unlock()
}

// idTag is the owning Context of an ID, kept in its top 16 bits.
func idTag(id ID) uint64 {
	return uint64(id) >> 48
}

// nextFrame advances the frame counter of the Context owning root and sweeps
// that Context's entries from every registered store. Other contexts are
// untouched, so GUIs drawn alternately keep their state.
func nextFrame(root ID) {
	tag := idTag(root)
	registryMu.Lock()
	contextFrames[tag]++
	frame := contextFrames[tag]
	stores := registeredStores
	registryMu.Unlock()

	for _, store := range stores {
		store.Cleanup(tag, frame)
	}
}

func frameOf(id ID) uint64 {
	registryMu.Lock()
	defer registryMu.Unlock()
	return contextFrames[idTag(id)]
}

type stateEntry[T any] struct {
	value     T
	lastFrame uint64
}

// FrameStore is typed per-widget state keyed by ID. An entry survives as long
// as its widget is drawn every frame; one missed frame and it is dropped.
//
// Widgets declare one store per state type at package level:
//
//	var scrollableStore = NewFrameStore[ScrollableState]()
type FrameStore[T any] struct {
	mu     sync.Mutex
	states map[ID]*stateEntry[T]
}

// NewFrameStore creates a store swept at the start of every frame.
func NewFrameStore[T any]() *FrameStore[T] {
	s := &FrameStore[T]{states: make(map[ID]*stateEntry[T])}
	registerStore(s)
	return s
}

// Get returns the state for id, creating it from defaultVal on first use,
// and marks it as used this frame. The pointer stays valid until the entry
// is cleaned up.
func (s *FrameStore[T]) Get(id ID, defaultVal T) *T {
	frame := frameOf(id)
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.states[id]
	if !ok {
		entry = &stateEntry[T]{value: defaultVal}
		s.states[id] = entry
	}
	entry.lastFrame = frame
	return &entry.value
}

// GetIfExists returns the state for id without creating or touching it.
func (s *FrameStore[T]) GetIfExists(id ID) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.states[id]; ok {
		return &entry.value
	}
	return nil
}

func (s *FrameStore[T]) Set(id ID, value T) {
	*s.Get(id, value) = value
}

func (s *FrameStore[T]) Delete(id ID) {
	s.mu.Lock()
	delete(s.states, id)
	s.mu.Unlock()
}

// Cleanup drops entries of the tagged Context last used before its
// previous frame.
func (s *FrameStore[T]) Cleanup(tag, frame uint64) {
	if frame < 2 {
		return
	}
	threshold := frame - 1
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.states {
		if idTag(id) == tag && entry.lastFrame < threshold {
			delete(s.states, id)
		}
	}
}

func (s *FrameStore[T]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

func (s *FrameStore[T]) Clear() {
	s.mu.Lock()
	clear(s.states)
	s.mu.Unlock()
}
