package gui

import (
	"encoding/binary"
	"hash/fnv"
	"sync/atomic"
)

// ID identifies a widget across frames. The same call sequence produces the
// same IDs every frame.
type ID uint64

// contextSeq gives every Context a distinct tag, stored in the top 16 bits of
// each of its IDs, so package-level stores are not shared between GUIs.
var contextSeq atomic.Uint64

const idHashMask = 1<<48 - 1

// idScope is one PushID level. The call counter restarts inside a scope and
// resumes on PopID, so widgets drawn conditionally inside a scope do not
// shift the IDs of widgets after it.
type idScope struct {
	id           ID
	savedCounter uint32
}

func (ctx *Context) parentID() ID {
	if n := len(ctx.idStack); n > 0 {
		return ctx.idStack[n-1].id
	}
	return ctx.rootID
}

func (ctx *Context) pushScope(id ID) {
	ctx.idStack = append(ctx.idStack, idScope{id: id, savedCounter: ctx.idCounter})
	ctx.idCounter = 0
}

// mixID hashes the parent, the per-frame call counter and a discriminator.
// The counter keeps repeated labels in a loop apart.
func (ctx *Context) mixID(discriminator []byte) ID {
	ctx.idCounter++
	var buf [12]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(ctx.parentID()))
	binary.LittleEndian.PutUint32(buf[8:], ctx.idCounter)

	h := fnv.New64a()
	h.Write(buf[:])
	h.Write(discriminator)
	// The tag is never 0, so neither is the ID.
	return ID(h.Sum64()&idHashMask) | ctx.rootID
}

// GetID returns the ID for a labelled widget in the current ID scope.
func (ctx *Context) GetID(label string) ID {
	return ctx.mixID([]byte(label))
}

// GetIDFromInt returns an ID for an indexed item.
func (ctx *Context) GetIDFromInt(n int) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	return ctx.mixID(buf[:])
}

// PushID opens a nested ID scope.
func (ctx *Context) PushID(label string) {
	ctx.pushScope(ctx.GetID(label))
}

func (ctx *Context) PushIDInt(n int) {
	ctx.pushScope(ctx.GetIDFromInt(n))
}

func (ctx *Context) PopID() {
	n := len(ctx.idStack)
	if n == 0 {
		return
	}
	ctx.idCounter = ctx.idStack[n-1].savedCounter
	ctx.idStack = ctx.idStack[:n-1]
}

// CurrentID returns the innermost scope ID.
func (ctx *Context) CurrentID() ID {
	return ctx.parentID()
}
