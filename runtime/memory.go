package runtime

import (
	"sync"
	"sync/atomic"

	"github.com/wippyai/wasm-engine/wasm"
)

// PageSize is the WebAssembly linear memory page size.
const PageSize = 65536

// Memory is a linear byte buffer. Loads and stores read the buffer pointer
// with acquire semantics and index it without locking; Grow serialises
// behind a mutex. Shared memories reserve their maximum up front so the
// buffer never moves while other threads access it.
type Memory struct {
	buf     atomic.Pointer[[]byte]
	size    atomic.Uint64 // current size in bytes
	growMu  sync.Mutex
	typ     wasm.MemoryType
	maxSize uint64 // bytes
}

// NewMemory allocates a memory of the given type at its minimum size.
func NewMemory(typ wasm.MemoryType) *Memory {
	maxPages := wasm.MemoryMaxPages32
	if typ.Memory64 {
		maxPages = wasm.MemoryMaxPages64
	}
	if typ.HasMax && typ.Max < maxPages {
		maxPages = typ.Max
	}
	m := &Memory{typ: typ, maxSize: maxPages * PageSize}

	initial := typ.Min * PageSize
	var buf []byte
	if typ.Shared {
		// The backing store must stay put; reserve the maximum.
		buf = make([]byte, m.maxSize)
	} else {
		buf = make([]byte, initial)
	}
	m.buf.Store(&buf)
	m.size.Store(initial)
	return m
}

func (m *Memory) Type() wasm.MemoryType { return m.typ }

// SizeInBytes is the current byte size; every access bound-checks against
// it.
func (m *Memory) SizeInBytes() uint64 { return m.size.Load() }

// PageCount is the current size in pages.
func (m *Memory) PageCount() uint64 { return m.size.Load() / PageSize }

// Is64 reports whether addresses are 64-bit.
func (m *Memory) Is64() bool { return m.typ.Memory64 }

// Shared reports whether the memory may be accessed from several threads.
func (m *Memory) Shared() bool { return m.typ.Shared }

// Bytes returns the current backing store. The caller must bound-check
// against SizeInBytes, which may be smaller than the slice for shared
// memories.
func (m *Memory) Bytes() []byte { return *m.buf.Load() }

// Grow extends the memory by delta pages. It returns the previous page
// count, or false when the grow is not permitted.
func (m *Memory) Grow(delta uint64) (uint64, bool) {
	m.growMu.Lock()
	defer m.growMu.Unlock()

	old := m.size.Load()
	if delta == 0 {
		return old / PageSize, true
	}
	newSize := old + delta*PageSize
	if newSize < old || newSize > m.maxSize {
		return 0, false
	}

	if !m.typ.Shared {
		buf := make([]byte, newSize)
		copy(buf, *m.buf.Load())
		m.buf.Store(&buf)
	}
	// Shared memories already reserve maxSize; new bytes are zero.
	m.size.Store(newSize)
	return old / PageSize, true
}

// Read copies length bytes starting at offset.
func (m *Memory) Read(offset, length uint64) ([]byte, bool) {
	if offset+length < offset || offset+length > m.SizeInBytes() {
		return nil, false
	}
	out := make([]byte, length)
	copy(out, m.Bytes()[offset:])
	return out, true
}

// Write copies data into memory at offset.
func (m *Memory) Write(offset uint64, data []byte) bool {
	end := offset + uint64(len(data))
	if end < offset || end > m.SizeInBytes() {
		return false
	}
	copy(m.Bytes()[offset:], data)
	return true
}
