package translator

import (
	"sort"

	"github.com/wippyai/wasm-engine/bytecode"
	"github.com/wippyai/wasm-engine/types"
)

// frame assigns byte offsets within one function's activation:
//
//	[ parameters | locals | operand slots | call scratch ]
//
// Parameters and locals get fixed offsets up front; operand slots are
// handed out by a forward single-pass allocator in three size classes
// (4, 8, 16 bytes) that always picks the lowest free offset, so hot values
// keep stable offsets for the JIT's register hints.
type frame struct {
	localOffsets []uint32
	operandBase  uint32
	top          uint32 // high-water mark of the operand region

	free map[uint32][]uint32 // size class -> sorted free offsets
	used map[uint32]uint32   // offset -> size class
}

func newFrame(ft *types.FunctionType, locals []types.ValType) *frame {
	f := &frame{
		free: make(map[uint32][]uint32),
		used: make(map[uint32]uint32),
	}
	f.localOffsets = append(f.localOffsets, ft.ParamOffsets...)
	pos := ft.ParamsSize
	for _, l := range locals {
		sz := l.Kind.StackSize()
		pos = alignUp(pos, sz)
		f.localOffsets = append(f.localOffsets, pos)
		pos += sz
	}
	f.operandBase = alignUp(pos, 16)
	f.top = f.operandBase
	return f
}

func alignUp(v, a uint32) uint32 { return (v + a - 1) &^ (a - 1) }

// alloc returns the lowest free operand slot of the kind's size class.
func (f *frame) alloc(k types.Kind) bytecode.StackOffset {
	size := k.StackSize()
	if list := f.free[size]; len(list) > 0 {
		off := list[0]
		f.free[size] = list[1:]
		f.used[off] = size
		return bytecode.StackOffset(off)
	}
	off := alignUp(f.top, size)
	f.top = off + size
	f.used[off] = size
	return bytecode.StackOffset(off)
}

// release returns an operand slot to its free list; local and parameter
// offsets are never released.
func (f *frame) release(off bytecode.StackOffset) {
	o := uint32(off)
	if o < f.operandBase {
		return
	}
	size, ok := f.used[o]
	if !ok {
		return
	}
	delete(f.used, o)
	list := append(f.free[size], o)
	sort.Slice(list, func(i, j int) bool { return list[i] < list[j] })
	f.free[size] = list
}

// frameSize is the params+locals+operands extent, 16-aligned.
func (f *frame) frameSize() uint32 { return alignUp(f.top, 16) }
