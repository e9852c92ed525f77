package runtime

import (
	"sync"
	"unsafe"

	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

// Table is a resizable array of references with a fixed element type.
type Table struct {
	mu    sync.Mutex
	typ   wasm.TableType
	elems []types.Reference
}

// NewTable allocates a table at its minimum size, filled with init
// (normally the null reference).
func NewTable(typ wasm.TableType, init types.Reference) *Table {
	elems := make([]types.Reference, typ.Min)
	if init != nil {
		for i := range elems {
			elems[i] = init
		}
	}
	return &Table{typ: typ, elems: elems}
}

func (t *Table) Type() wasm.TableType { return t.typ }

// Size returns the current element count.
func (t *Table) Size() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return uint64(len(t.elems))
}

// Get reads element i.
func (t *Table) Get(i uint64) (types.Reference, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i >= uint64(len(t.elems)) {
		return nil, false
	}
	return t.elems[i], true
}

// Set writes element i.
func (t *Table) Set(i uint64, ref types.Reference) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if i >= uint64(len(t.elems)) {
		return false
	}
	t.elems[i] = ref
	return true
}

// Grow appends delta copies of init, returning the previous size or false.
func (t *Table) Grow(delta uint64, init types.Reference) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	old := uint64(len(t.elems))
	newLen := old + delta
	if newLen < old || (t.typ.HasMax && newLen > t.typ.Max) || newLen > 1<<32 {
		return 0, false
	}
	for i := uint64(0); i < delta; i++ {
		t.elems = append(t.elems, init)
	}
	return old, true
}

// Fill sets n elements starting at start to ref.
func (t *Table) Fill(start, n uint64, ref types.Reference) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if start+n < start || start+n > uint64(len(t.elems)) {
		return false
	}
	for i := uint64(0); i < n; i++ {
		t.elems[start+i] = ref
	}
	return true
}

// Copy moves n elements from src[srcOff] to t[dstOff], handling overlap.
// Distinct tables lock in address order so concurrent opposite-direction
// copies cannot deadlock.
func (t *Table) Copy(dstOff uint64, src *Table, srcOff, n uint64) bool {
	if src == t {
		t.mu.Lock()
		defer t.mu.Unlock()
	} else {
		first, second := t, src
		if uintptr(unsafe.Pointer(src)) < uintptr(unsafe.Pointer(t)) {
			first, second = src, t
		}
		first.mu.Lock()
		defer first.mu.Unlock()
		second.mu.Lock()
		defer second.mu.Unlock()
	}
	if dstOff+n < dstOff || dstOff+n > uint64(len(t.elems)) ||
		srcOff+n < srcOff || srcOff+n > uint64(len(src.elems)) {
		return false
	}
	copy(t.elems[dstOff:dstOff+n], src.elems[srcOff:srcOff+n])
	return true
}

// Init copies n references from an element segment instance.
func (t *Table) Init(dstOff uint64, seg *ElemInstance, srcOff, n uint64) bool {
	refs := seg.Refs()
	if srcOff+n < srcOff || srcOff+n > uint64(len(refs)) {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if dstOff+n < dstOff || dstOff+n > uint64(len(t.elems)) {
		return false
	}
	copy(t.elems[dstOff:dstOff+n], refs[srcOff:srcOff+n])
	return true
}
