package runtime

import (
	"sync/atomic"

	"github.com/wippyai/wasm-engine/types"
)

// DataInstance is an instantiated data segment: backing bytes for
// memory.init plus a drop bit.
type DataInstance struct {
	data    []byte
	dropped atomic.Bool
}

func NewDataInstance(data []byte) *DataInstance {
	return &DataInstance{data: data}
}

// Bytes returns the segment's bytes; a dropped segment reads as empty.
func (d *DataInstance) Bytes() []byte {
	if d.dropped.Load() {
		return nil
	}
	return d.data
}

// Drop shrinks the segment to zero length. Idempotent.
func (d *DataInstance) Drop() { d.dropped.Store(true) }

// ElemInstance is an instantiated element segment: resolved references for
// table.init plus a drop bit.
type ElemInstance struct {
	refs    []types.Reference
	dropped atomic.Bool
}

func NewElemInstance(refs []types.Reference) *ElemInstance {
	return &ElemInstance{refs: refs}
}

// Refs returns the segment's references; a dropped segment reads as empty.
func (e *ElemInstance) Refs() []types.Reference {
	if e.dropped.Load() {
		return nil
	}
	return e.refs
}

// Drop shrinks the segment to zero length. Idempotent.
func (e *ElemInstance) Drop() { e.dropped.Store(true) }
