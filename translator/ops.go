package translator

import (
	"github.com/wippyai/wasm-engine/bytecode"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

// miscInstruction lowers 0xFC-prefixed operations.
func (co *compiler) miscInstruction(sub uint32) error {
	if spec, ok := miscOps[sub]; ok {
		if co.reachable() {
			co.emitOp(spec)
		}
		return nil
	}

	switch sub {
	case wasm.MiscMemoryInit:
		dataIdx := co.rU32()
		memIdx := co.rU32()
		if !co.reachable() {
			return nil
		}
		n, s, d := co.pop(), co.pop(), co.pop()
		pc := co.buf.EmitIndex2(bytecode.OpMemoryInit, memIdx, dataIdx, d.off, s.off, n.off)
		co.markTrap(pc)
		co.releaseAll([]stackEntry{n, s, d})
	case wasm.MiscDataDrop:
		idx := co.rU32()
		if co.reachable() {
			co.buf.EmitIndex(bytecode.OpDataDrop, idx)
		}
	case wasm.MiscMemoryCopy:
		dstMem := co.rU32()
		srcMem := co.rU32()
		if !co.reachable() {
			return nil
		}
		n, s, d := co.pop(), co.pop(), co.pop()
		pc := co.buf.EmitIndex2(bytecode.OpMemoryCopy, dstMem, srcMem, d.off, s.off, n.off)
		co.markTrap(pc)
		co.releaseAll([]stackEntry{n, s, d})
	case wasm.MiscMemoryFill:
		memIdx := co.rU32()
		if !co.reachable() {
			return nil
		}
		n, v, d := co.pop(), co.pop(), co.pop()
		pc := co.buf.EmitIndex2(bytecode.OpMemoryFill, memIdx, 0, d.off, v.off, n.off)
		co.markTrap(pc)
		co.releaseAll([]stackEntry{n, v, d})
	case wasm.MiscTableInit:
		elemIdx := co.rU32()
		tableIdx := co.rU32()
		if !co.reachable() {
			return nil
		}
		n, s, d := co.pop(), co.pop(), co.pop()
		pc := co.buf.EmitIndex2(bytecode.OpTableInit, tableIdx, elemIdx, d.off, s.off, n.off)
		co.markTrap(pc)
		co.releaseAll([]stackEntry{n, s, d})
	case wasm.MiscElemDrop:
		idx := co.rU32()
		if co.reachable() {
			co.buf.EmitIndex(bytecode.OpElemDrop, idx)
		}
	case wasm.MiscTableCopy:
		dstT := co.rU32()
		srcT := co.rU32()
		if !co.reachable() {
			return nil
		}
		n, s, d := co.pop(), co.pop(), co.pop()
		pc := co.buf.EmitIndex2(bytecode.OpTableCopy, dstT, srcT, d.off, s.off, n.off)
		co.markTrap(pc)
		co.releaseAll([]stackEntry{n, s, d})
	case wasm.MiscTableGrow:
		idx := co.rU32()
		if !co.reachable() {
			return nil
		}
		n, v := co.pop(), co.pop()
		dst := co.push(types.I32())
		co.buf.EmitIndex(bytecode.OpTableGrow, idx, v.off, n.off, dst.off)
		co.releaseAll([]stackEntry{n, v})
	case wasm.MiscTableSize:
		idx := co.rU32()
		if co.reachable() {
			dst := co.push(types.I32())
			co.buf.EmitIndex(bytecode.OpTableSize, idx, dst.off)
		}
	case wasm.MiscTableFill:
		idx := co.rU32()
		if !co.reachable() {
			return nil
		}
		n, v, i := co.pop(), co.pop(), co.pop()
		pc := co.buf.EmitIndex(bytecode.OpTableFill, idx, i.off, v.off, n.off)
		co.markTrap(pc)
		co.releaseAll([]stackEntry{n, v, i})
	default:
		return co.fail("unknown misc opcode %#x", sub)
	}
	return nil
}

// simd lane metadata: extract result kinds and memory-lane opcodes.
var simdExtract = map[uint32]loadSpec{
	0x15: {bytecode.OpI8x16ExtractLaneS, types.KindI32},
	0x16: {bytecode.OpI8x16ExtractLaneU, types.KindI32},
	0x18: {bytecode.OpI16x8ExtractLaneS, types.KindI32},
	0x19: {bytecode.OpI16x8ExtractLaneU, types.KindI32},
	0x1B: {bytecode.OpI32x4ExtractLane, types.KindI32},
	0x1D: {bytecode.OpI64x2ExtractLane, types.KindI64},
	0x1F: {bytecode.OpF32x4ExtractLane, types.KindF32},
	0x21: {bytecode.OpF64x2ExtractLane, types.KindF64},
}

var simdReplace = map[uint32]bytecode.Opcode{
	0x17: bytecode.OpI8x16ReplaceLane,
	0x1A: bytecode.OpI16x8ReplaceLane,
	0x1C: bytecode.OpI32x4ReplaceLane,
	0x1E: bytecode.OpI64x2ReplaceLane,
	0x20: bytecode.OpF32x4ReplaceLane,
	0x22: bytecode.OpF64x2ReplaceLane,
}

var simdLoads = map[uint32]bytecode.Opcode{
	0x00: bytecode.OpV128Load,
	0x01: bytecode.OpV128Load8x8S,
	0x02: bytecode.OpV128Load8x8U,
	0x03: bytecode.OpV128Load16x4S,
	0x04: bytecode.OpV128Load16x4U,
	0x05: bytecode.OpV128Load32x2S,
	0x06: bytecode.OpV128Load32x2U,
	0x07: bytecode.OpV128Load8Splat,
	0x08: bytecode.OpV128Load16Splat,
	0x09: bytecode.OpV128Load32Splat,
	0x0A: bytecode.OpV128Load64Splat,
	0x5C: bytecode.OpV128Load32Zero,
	0x5D: bytecode.OpV128Load64Zero,
}

var simdLoadLane = map[uint32]bytecode.Opcode{
	0x54: bytecode.OpV128Load8Lane,
	0x55: bytecode.OpV128Load16Lane,
	0x56: bytecode.OpV128Load32Lane,
	0x57: bytecode.OpV128Load64Lane,
}

var simdStoreLane = map[uint32]bytecode.Opcode{
	0x58: bytecode.OpV128Store8Lane,
	0x59: bytecode.OpV128Store16Lane,
	0x5A: bytecode.OpV128Store32Lane,
	0x5B: bytecode.OpV128Store64Lane,
}

// simdInstruction lowers 0xFD-prefixed operations.
func (co *compiler) simdInstruction(sub uint32) error {
	if spec, ok := simdOps[sub]; ok {
		if co.reachable() {
			co.emitOp(spec)
		}
		return nil
	}
	if op, ok := simdLoads[sub]; ok {
		memIdx, offset := co.memArg()
		if co.reachable() {
			co.emitLoad(loadSpec{op: op, out: types.KindV128}, memIdx, offset)
		}
		return nil
	}
	if op, ok := simdLoadLane[sub]; ok {
		memIdx, offset := co.memArg()
		lane := co.rByte()
		if !co.reachable() {
			return nil
		}
		v := co.pop()
		addr := co.pop()
		dst := co.push(types.V128())
		pc := co.buf.EmitMemLane(op, uint16(lane), uint16(memIdx), offset, addr.off, v.off, dst.off)
		co.markTrap(pc)
		co.frame.release(v.off)
		co.frame.release(addr.off)
		return nil
	}
	if op, ok := simdStoreLane[sub]; ok {
		memIdx, offset := co.memArg()
		lane := co.rByte()
		if !co.reachable() {
			return nil
		}
		v := co.pop()
		addr := co.pop()
		pc := co.buf.EmitMemLane(op, uint16(lane), uint16(memIdx), offset, addr.off, v.off)
		co.markTrap(pc)
		co.frame.release(v.off)
		co.frame.release(addr.off)
		return nil
	}
	if spec, ok := simdExtract[sub]; ok {
		lane := co.rByte()
		if co.reachable() {
			v := co.pop()
			dst := co.push(types.ValType{Kind: spec.out})
			co.buf.EmitLane(spec.op, uint16(lane), v.off, dst.off)
			co.frame.release(v.off)
		}
		return nil
	}
	if op, ok := simdReplace[sub]; ok {
		lane := co.rByte()
		if co.reachable() {
			x := co.pop()
			v := co.pop()
			dst := co.push(types.V128())
			co.buf.EmitLane(op, uint16(lane), v.off, x.off, dst.off)
			co.frame.release(x.off)
			co.frame.release(v.off)
		}
		return nil
	}

	switch sub {
	case 0x0B: // v128.store
		memIdx, offset := co.memArg()
		if co.reachable() {
			co.emitStore(storeSpec{op: bytecode.OpV128Store}, memIdx, offset)
		}
	case 0x0C: // v128.const
		b := co.rBytes(16)
		if co.reachable() {
			dst := co.push(types.V128())
			co.buf.EmitConst128(dst.off, le64(b), le64(b[8:]))
		}
	case 0x0D: // i8x16.shuffle
		var lanes [16]byte
		copy(lanes[:], co.rBytes(16))
		if co.reachable() {
			b := co.pop()
			a := co.pop()
			dst := co.push(types.V128())
			co.buf.EmitShuffle(a.off, b.off, dst.off, lanes)
			co.frame.release(b.off)
			co.frame.release(a.off)
		}
	default:
		return co.fail("unknown SIMD opcode %#x", sub)
	}
	return nil
}

// castHeap encodes a cast target: non-negative module type index, or the
// negative abstract heap code straight from the binary format.
func castHeap(heap int64) int32 { return int32(heap) }

// gcInstruction lowers 0xFB-prefixed operations.
func (co *compiler) gcInstruction(sub uint32) error {
	switch sub {
	case wasm.GCStructNew:
		typeIdx := co.rU32()
		if !co.reachable() {
			return nil
		}
		st := co.m.Types[typeIdx].Struct
		srcs := co.popN(len(st.Fields))
		offs := make([]bytecode.StackOffset, len(srcs))
		for i, s := range srcs {
			offs[i] = s.off
		}
		dst := co.push(types.RefOf(co.m.Types[typeIdx], false))
		pc := co.buf.EmitStructNew(dst.off, typeIdx, offs)
		co.markTrap(pc)
		co.releaseAll(srcs)
	case wasm.GCStructNewDefault:
		typeIdx := co.rU32()
		if co.reachable() {
			dst := co.push(types.RefOf(co.m.Types[typeIdx], false))
			co.buf.EmitIndex(bytecode.OpStructNewDefault, typeIdx, dst.off)
		}
	case wasm.GCStructGet, wasm.GCStructGetS, wasm.GCStructGetU:
		typeIdx := co.rU32()
		field := co.rU32()
		if !co.reachable() {
			return nil
		}
		st := co.m.Types[typeIdx].Struct
		ref := co.pop()
		dst := co.push(st.Fields[field].Type.StackType())
		op := bytecode.OpStructGet
		if sub == wasm.GCStructGetS {
			op = bytecode.OpStructGetS
		} else if sub == wasm.GCStructGetU {
			op = bytecode.OpStructGetU
		}
		pc := co.buf.EmitStructGet(op, ref.off, dst.off, uint16(field))
		co.markTrap(pc)
		co.frame.release(ref.off)
	case wasm.GCStructSet:
		_ = co.rU32() // type index; the object knows its layout
		field := co.rU32()
		if !co.reachable() {
			return nil
		}
		val := co.pop()
		ref := co.pop()
		pc := co.buf.EmitStructSet(ref.off, val.off, uint16(field))
		co.markTrap(pc)
		co.frame.release(val.off)
		co.frame.release(ref.off)
	case wasm.GCArrayNew:
		typeIdx := co.rU32()
		if !co.reachable() {
			return nil
		}
		n := co.pop()
		v := co.pop()
		dst := co.push(types.RefOf(co.m.Types[typeIdx], false))
		pc := co.buf.EmitIndex(bytecode.OpArrayNew, typeIdx, v.off, n.off, dst.off)
		co.markTrap(pc)
		co.frame.release(n.off)
		co.frame.release(v.off)
	case wasm.GCArrayNewDefault:
		typeIdx := co.rU32()
		if !co.reachable() {
			return nil
		}
		n := co.pop()
		dst := co.push(types.RefOf(co.m.Types[typeIdx], false))
		pc := co.buf.EmitIndex(bytecode.OpArrayNewDefault, typeIdx, n.off, dst.off)
		co.markTrap(pc)
		co.frame.release(n.off)
	case wasm.GCArrayNewFixed:
		typeIdx := co.rU32()
		n := co.rU32()
		if !co.reachable() {
			return nil
		}
		srcs := co.popN(int(n))
		offs := make([]bytecode.StackOffset, len(srcs))
		for i, s := range srcs {
			offs[i] = s.off
		}
		dst := co.push(types.RefOf(co.m.Types[typeIdx], false))
		pc := co.buf.EmitArrayNewFixed(dst.off, typeIdx, offs)
		co.markTrap(pc)
		co.releaseAll(srcs)
	case wasm.GCArrayNewData, wasm.GCArrayNewElem:
		typeIdx := co.rU32()
		segIdx := co.rU32()
		if !co.reachable() {
			return nil
		}
		n := co.pop()
		off := co.pop()
		dst := co.push(types.RefOf(co.m.Types[typeIdx], false))
		op := bytecode.OpArrayNewData
		if sub == wasm.GCArrayNewElem {
			op = bytecode.OpArrayNewElem
		}
		pc := co.buf.EmitIndex2(op, typeIdx, segIdx, off.off, n.off, dst.off)
		co.markTrap(pc)
		co.frame.release(n.off)
		co.frame.release(off.off)
	case wasm.GCArrayGet, wasm.GCArrayGetS, wasm.GCArrayGetU:
		typeIdx := co.rU32()
		if !co.reachable() {
			return nil
		}
		at := co.m.Types[typeIdx].Array
		i := co.pop()
		ref := co.pop()
		dst := co.push(at.Element.Type.StackType())
		op := bytecode.OpArrayGet
		if sub == wasm.GCArrayGetS {
			op = bytecode.OpArrayGetS
		} else if sub == wasm.GCArrayGetU {
			op = bytecode.OpArrayGetU
		}
		pc := co.buf.Emit(op, ref.off, i.off, dst.off)
		co.markTrap(pc)
		co.frame.release(i.off)
		co.frame.release(ref.off)
	case wasm.GCArraySet:
		_ = co.rU32()
		if !co.reachable() {
			return nil
		}
		v := co.pop()
		i := co.pop()
		ref := co.pop()
		pc := co.buf.Emit(bytecode.OpArraySet, ref.off, i.off, v.off)
		co.markTrap(pc)
		co.releaseAll([]stackEntry{v, i, ref})
	case wasm.GCArrayLen:
		if !co.reachable() {
			return nil
		}
		ref := co.pop()
		dst := co.push(types.I32())
		pc := co.buf.Emit(bytecode.OpArrayLen, ref.off, dst.off)
		co.markTrap(pc)
		co.frame.release(ref.off)
	case wasm.GCArrayFill:
		_ = co.rU32()
		if !co.reachable() {
			return nil
		}
		n, v, i, ref := co.pop(), co.pop(), co.pop(), co.pop()
		pc := co.buf.Emit(bytecode.OpArrayFill, ref.off, i.off, v.off, n.off)
		co.markTrap(pc)
		co.releaseAll([]stackEntry{n, v, i, ref})
	case wasm.GCArrayCopy:
		_ = co.rU32()
		_ = co.rU32()
		if !co.reachable() {
			return nil
		}
		n, srcI, srcRef, dstI, dstRef := co.pop(), co.pop(), co.pop(), co.pop(), co.pop()
		pc := co.buf.Emit(bytecode.OpArrayCopy, dstRef.off, dstI.off, srcRef.off, srcI.off, n.off)
		co.markTrap(pc)
		co.releaseAll([]stackEntry{n, srcI, srcRef, dstI, dstRef})
	case wasm.GCArrayInitData, wasm.GCArrayInitElem:
		_ = co.rU32()
		segIdx := co.rU32()
		if !co.reachable() {
			return nil
		}
		n, srcOff, dstI, ref := co.pop(), co.pop(), co.pop(), co.pop()
		op := bytecode.OpArrayInitData
		if sub == wasm.GCArrayInitElem {
			op = bytecode.OpArrayInitElem
		}
		pc := co.buf.EmitIndex2(op, 0, segIdx, ref.off, dstI.off, srcOff.off, n.off)
		co.markTrap(pc)
		co.releaseAll([]stackEntry{n, srcOff, dstI, ref})
	case wasm.GCRefTest, wasm.GCRefTestNull:
		heap := co.rS33()
		if !co.reachable() {
			return nil
		}
		ref := co.pop()
		dst := co.push(types.I32())
		co.buf.EmitCast(bytecode.OpRefTest, castHeap(heap), sub == wasm.GCRefTestNull, ref.off, dst.off)
		co.frame.release(ref.off)
	case wasm.GCRefCast, wasm.GCRefCastNull:
		heap := co.rS33()
		if !co.reachable() {
			return nil
		}
		ref := co.stack[len(co.stack)-1]
		pc := co.buf.EmitCast(bytecode.OpRefCast, castHeap(heap), sub == wasm.GCRefCastNull, ref.off)
		co.markTrap(pc)
		// The value stays in place; only its static type narrows.
		co.stack[len(co.stack)-1].typ = co.heapValType(heap, sub == wasm.GCRefCastNull)
	case wasm.GCBrOnCast, wasm.GCBrOnCastFail:
		flags := co.rByte()
		label := co.rU32()
		_ = co.rS33() // source heap type
		heap2 := co.rS33()
		if !co.reachable() {
			return nil
		}
		co.brOnCast(sub == wasm.GCBrOnCastFail, label, heap2, flags&wasm.CastFlagsSecondNull != 0)
	case wasm.GCAnyConvertExtern, wasm.GCExternConvertAny:
		if !co.reachable() {
			return nil
		}
		v := co.pop()
		op := bytecode.OpAnyConvertExtern
		t := types.Ref(types.HeapAny, true)
		if sub == wasm.GCExternConvertAny {
			op = bytecode.OpExternConvertAny
			t = types.Ref(types.HeapExtern, true)
		}
		dst := co.push(t)
		co.buf.Emit(op, v.off, dst.off)
		co.frame.release(v.off)
	case wasm.GCRefI31:
		if !co.reachable() {
			return nil
		}
		v := co.pop()
		dst := co.push(types.Ref(types.HeapI31, false))
		co.buf.Emit(bytecode.OpRefI31, v.off, dst.off)
		co.frame.release(v.off)
	case wasm.GCI31GetS, wasm.GCI31GetU:
		if !co.reachable() {
			return nil
		}
		v := co.pop()
		dst := co.push(types.I32())
		op := bytecode.OpI31GetS
		if sub == wasm.GCI31GetU {
			op = bytecode.OpI31GetU
		}
		pc := co.buf.Emit(op, v.off, dst.off)
		co.markTrap(pc)
		co.frame.release(v.off)
	default:
		return co.fail("unknown GC opcode %#x", sub)
	}
	return nil
}

// brOnCast lowers br_on_cast / br_on_cast_fail with a branch-on-success
// stub, mirroring brOnNull.
func (co *compiler) brOnCast(onFail bool, depth uint32, heap int64, nullable bool) {
	ref := co.stack[len(co.stack)-1]

	// RefTest into a scratch flag, then branch on it. The branch carries
	// the ref itself.
	flag := co.frame.alloc(types.KindI32)
	co.buf.EmitCast(bytecode.OpRefTest, castHeap(heap), nullable, ref.off, flag)

	branchWhen := bytecode.OpJumpIfTrue
	if onFail {
		branchWhen = bytecode.OpJumpIfFalse
	}
	if co.branchMovesNeeded(depth) {
		inverse := bytecode.OpJumpIfFalse
		if onFail {
			inverse = bytecode.OpJumpIfTrue
		}
		skip := co.buf.EmitJump(inverse, 0, flag)
		co.branchTo(depth)
		co.buf.PatchJump(skip, co.buf.Len())
	} else {
		co.emitCondBranch(branchWhen, flag, depth)
	}
	co.frame.release(flag)

	// Fall-through type: on br_on_cast the value failed the cast, on
	// br_on_cast_fail it passed.
	if !onFail {
		return
	}
	co.stack[len(co.stack)-1].typ = co.heapValType(heap, nullable)
}

// atomic load/store opcode maps (0xFE prefix).
var atomicLoads = map[uint32]loadSpec{
	wasm.AtomicI32Load:    {bytecode.OpI32AtomicLoad, types.KindI32},
	wasm.AtomicI64Load:    {bytecode.OpI64AtomicLoad, types.KindI64},
	wasm.AtomicI32Load8U:  {bytecode.OpI32AtomicLoad8U, types.KindI32},
	wasm.AtomicI32Load16U: {bytecode.OpI32AtomicLoad16U, types.KindI32},
	wasm.AtomicI64Load8U:  {bytecode.OpI64AtomicLoad8U, types.KindI64},
	wasm.AtomicI64Load16U: {bytecode.OpI64AtomicLoad16U, types.KindI64},
	wasm.AtomicI64Load32U: {bytecode.OpI64AtomicLoad32U, types.KindI64},
}

var atomicStores = map[uint32]storeSpec{
	wasm.AtomicI32Store:   {bytecode.OpI32AtomicStore},
	wasm.AtomicI64Store:   {bytecode.OpI64AtomicStore},
	wasm.AtomicI32Store8:  {bytecode.OpI32AtomicStore8},
	wasm.AtomicI32Store16: {bytecode.OpI32AtomicStore16},
	wasm.AtomicI64Store8:  {bytecode.OpI64AtomicStore8},
	wasm.AtomicI64Store16: {bytecode.OpI64AtomicStore16},
	wasm.AtomicI64Store32: {bytecode.OpI64AtomicStore32},
}

// rmwOut gives the result kind of an RMW sub-opcode; both the plain RMW
// cycle and the cmpxchg row follow the same 7-entry width pattern.
func rmwOut(idx uint32) types.Kind {
	switch idx % 7 {
	case 0, 2, 3:
		return types.KindI32
	default:
		return types.KindI64
	}
}

// atomicInstruction lowers 0xFE-prefixed operations.
func (co *compiler) atomicInstruction(sub uint32) error {
	if ls, ok := atomicLoads[sub]; ok {
		memIdx, offset := co.memArg()
		if co.reachable() {
			co.emitLoad(ls, memIdx, offset)
		}
		return nil
	}
	if ss, ok := atomicStores[sub]; ok {
		memIdx, offset := co.memArg()
		if co.reachable() {
			co.emitStore(ss, memIdx, offset)
		}
		return nil
	}
	if op, ok := atomicRmwOps[sub]; ok {
		memIdx, offset := co.memArg()
		if !co.reachable() {
			return nil
		}
		if sub >= 0x48 { // cmpxchg: addr, expected, replacement
			repl := co.pop()
			expect := co.pop()
			addr := co.pop()
			dst := co.push(types.ValType{Kind: rmwOut(sub - 0x48)})
			pc := co.buf.EmitMemAccess(op, uint16(memIdx), offset, addr.off, expect.off, repl.off, dst.off)
			co.markTrap(pc)
			co.releaseAll([]stackEntry{repl, expect, addr})
		} else {
			val := co.pop()
			addr := co.pop()
			dst := co.push(types.ValType{Kind: rmwOut(sub - wasm.AtomicRmwFirst)})
			pc := co.buf.EmitMemAccess(op, uint16(memIdx), offset, addr.off, val.off, dst.off)
			co.markTrap(pc)
			co.releaseAll([]stackEntry{val, addr})
		}
		return nil
	}

	switch sub {
	case wasm.AtomicWait32, wasm.AtomicWait64:
		memIdx, offset := co.memArg()
		if !co.reachable() {
			return nil
		}
		timeout := co.pop()
		expect := co.pop()
		addr := co.pop()
		dst := co.push(types.I32())
		op := bytecode.OpMemoryAtomicWait32
		if sub == wasm.AtomicWait64 {
			op = bytecode.OpMemoryAtomicWait64
		}
		pc := co.buf.EmitMemAccess(op, uint16(memIdx), offset, addr.off, expect.off, timeout.off, dst.off)
		co.markTrap(pc)
		co.releaseAll([]stackEntry{timeout, expect, addr})
	case wasm.AtomicNotify:
		memIdx, offset := co.memArg()
		if !co.reachable() {
			return nil
		}
		count := co.pop()
		addr := co.pop()
		dst := co.push(types.I32())
		pc := co.buf.EmitMemAccess(bytecode.OpMemoryAtomicNotify, uint16(memIdx), offset, addr.off, count.off, dst.off)
		co.markTrap(pc)
		co.releaseAll([]stackEntry{count, addr})
	case wasm.AtomicFence:
		_ = co.rByte() // reserved flag
		if co.reachable() {
			co.buf.Emit(bytecode.OpAtomicFence)
		}
	default:
		return co.fail("unknown atomic opcode %#x", sub)
	}
	return nil
}
