package bytecode

import "encoding/binary"

// StackOffset is a byte offset into the current frame. Offsets address the
// merged parameter/local/operand region; the translator guarantees they fit
// in 16 bits.
type StackOffset = uint16

var le = binary.LittleEndian

// alignUp8 pads a record length to the 8-byte instruction alignment.
func alignUp8(n uint32) uint32 { return (n + 7) &^ 7 }

// Buffer accumulates an instruction stream.
type Buffer struct {
	code []byte
}

func (b *Buffer) Bytes() []byte { return b.code }
func (b *Buffer) Len() int      { return len(b.code) }

// reserve appends a zeroed record of the given encoded size (already
// aligned) with the opcode written, returning its pc.
func (b *Buffer) reserve(op Opcode, size uint32) int {
	pc := len(b.code)
	b.code = append(b.code, make([]byte, size)...)
	le.PutUint16(b.code[pc:], uint16(op))
	return pc
}

func (b *Buffer) putU16(pc int, at uint32, v uint16) { le.PutUint16(b.code[pc+int(at):], v) }
func (b *Buffer) putU32(pc int, at uint32, v uint32) { le.PutUint32(b.code[pc+int(at):], v) }
func (b *Buffer) putU64(pc int, at uint32, v uint64) { le.PutUint64(b.code[pc+int(at):], v) }
func (b *Buffer) putI32(pc int, at uint32, v int32) { le.PutUint32(b.code[pc+int(at):], uint32(v)) }

// Emit appends a fixed-shape instruction with up to four stack offsets in
// its shape's offset fields.
func (b *Buffer) Emit(op Opcode, offs ...StackOffset) int {
	info := &instrTable[op]
	if info.size == 0 || len(offs) > len(info.offs) {
		panic("bytecode: Emit with wrong shape for " + info.name)
	}
	pc := b.reserve(op, info.size)
	for i, o := range offs {
		b.putU16(pc, info.offs[i], o)
	}
	return pc
}

// EmitConst32 appends a 32-bit constant load.
func (b *Buffer) EmitConst32(dst StackOffset, v uint32) int {
	pc := b.Emit(OpConst32, dst)
	b.putU32(pc, 4, v)
	return pc
}

// EmitConst64 appends a 64-bit constant load.
func (b *Buffer) EmitConst64(dst StackOffset, v uint64) int {
	pc := b.Emit(OpConst64, dst)
	b.putU64(pc, 8, v)
	return pc
}

// EmitConst128 appends a 128-bit constant load.
func (b *Buffer) EmitConst128(dst StackOffset, lo, hi uint64) int {
	pc := b.Emit(OpConst128, dst)
	b.putU64(pc, 8, lo)
	b.putU64(pc, 16, hi)
	return pc
}

// EmitJump appends an unconditional jump with the given delta (often a
// placeholder later fixed by PatchJump).
func (b *Buffer) EmitJump(op Opcode, delta int32, offs ...StackOffset) int {
	pc := b.Emit(op, offs...)
	b.putI32(pc, jumpDeltaPos(op), delta)
	return pc
}

// jumpDeltaPos returns the byte position of an opcode's jump delta field.
func jumpDeltaPos(op Opcode) uint32 {
	switch op {
	case OpJump, OpJumpIfTrue, OpJumpIfFalse, OpBrOnNull, OpBrOnNonNull:
		return 4
	case OpBrOnCast, OpBrOnCastFail:
		return 12
	}
	panic("bytecode: not a jump: " + instrTable[op].name)
}

// PatchJump rewrites the jump delta of the instruction at pc to land on
// target.
func (b *Buffer) PatchJump(pc int, target int) {
	op := Opcode(le.Uint16(b.code[pc:]))
	b.putI32(pc, jumpDeltaPos(op), int32(target-pc))
}

// JumpTarget returns the pc the jump at pc currently lands on.
func (b *Buffer) JumpTarget(pc int) int {
	op := Opcode(le.Uint16(b.code[pc:]))
	return pc + int(int32(le.Uint32(b.code[pc+int(jumpDeltaPos(op)):])))
}

// EmitMemAccess appends a load/store-family instruction: offset immediate,
// memory index, and the shape's stack offsets.
func (b *Buffer) EmitMemAccess(op Opcode, memIdx uint16, offset uint64, offs ...StackOffset) int {
	pc := b.Emit(op, offs...)
	memPos, offPos := memAccessPos(op)
	b.putU16(pc, memPos, memIdx)
	b.putU64(pc, offPos, offset)
	return pc
}

// memAccessPos returns the (memIdx, offset-immediate) field positions for a
// memory-access opcode.
func memAccessPos(op Opcode) (uint32, uint32) {
	switch shapeClass(op) {
	case classLoad, classStore:
		return 6, 8
	case classLoadLane:
		return 10, 16
	case classStoreLane:
		return 8, 16
	case classRmw, classNotify:
		return 8, 16
	case classCmpxchg, classWait:
		return 10, 16
	}
	panic("bytecode: not a memory access: " + instrTable[op].name)
}

// EmitLane appends a lane-indexed SIMD instruction.
func (b *Buffer) EmitLane(op Opcode, lane uint16, offs ...StackOffset) int {
	pc := b.Emit(op, offs...)
	b.putU16(pc, lanePos(op), lane)
	return pc
}

func lanePos(op Opcode) uint32 {
	switch op {
	case OpI8x16ExtractLaneS, OpI8x16ExtractLaneU, OpI16x8ExtractLaneS, OpI16x8ExtractLaneU,
		OpI32x4ExtractLane, OpI64x2ExtractLane, OpF32x4ExtractLane, OpF64x2ExtractLane:
		return 6
	case OpI8x16ReplaceLane, OpI16x8ReplaceLane, OpI32x4ReplaceLane, OpI64x2ReplaceLane,
		OpF32x4ReplaceLane, OpF64x2ReplaceLane:
		return 8
	}
	panic("bytecode: not a lane op: " + instrTable[op].name)
}

// EmitMemLane appends a SIMD load-lane/store-lane instruction.
func (b *Buffer) EmitMemLane(op Opcode, lane uint16, memIdx uint16, offset uint64, offs ...StackOffset) int {
	pc := b.Emit(op, offs...)
	switch shapeClass(op) {
	case classLoadLane:
		b.putU16(pc, 8, lane)
	case classStoreLane:
		b.putU16(pc, 6, lane)
	default:
		panic("bytecode: not a mem-lane op")
	}
	memPos, offPos := memAccessPos(op)
	b.putU16(pc, memPos, memIdx)
	b.putU64(pc, offPos, offset)
	return pc
}

// EmitShuffle appends i8x16.shuffle with its 16 lane selectors.
func (b *Buffer) EmitShuffle(src0, src1, dst StackOffset, lanes [16]byte) int {
	pc := b.Emit(OpI8x16Shuffle, src0, src1, dst)
	copy(b.code[pc+8:], lanes[:])
	return pc
}

// EmitSelect appends select with the byte width of the selected value.
func (b *Buffer) EmitSelect(cond, src0, src1, dst StackOffset, valSize uint16) int {
	pc := b.Emit(OpSelect, cond, src0, src1, dst)
	b.putU16(pc, 10, valSize)
	return pc
}

// EmitIndex appends an instruction whose only immediate is a 32-bit index
// (globals, ref.func, data/elem drop, table.size, struct.new_default).
func (b *Buffer) EmitIndex(op Opcode, index uint32, offs ...StackOffset) int {
	pc := b.Emit(op, offs...)
	b.putU32(pc, indexPos(op), index)
	return pc
}

func indexPos(op Opcode) uint32 {
	switch op {
	case OpDataDrop, OpElemDrop:
		return 4
	case OpGlobalGet32, OpGlobalGet64, OpGlobalGet128, OpGlobalGetRef,
		OpGlobalSet32, OpGlobalSet64, OpGlobalSet128, OpGlobalSetRef,
		OpRefFunc, OpTableSize, OpStructNewDefault:
		return 4
	case OpTableGet, OpTableSet, OpTableGrow, OpTableFill,
		OpArrayNew, OpArrayNewDefault:
		return 8
	}
	panic("bytecode: no single index field: " + instrTable[op].name)
}

// EmitIndex2 appends an instruction carrying two 32-bit indices
// (table.copy/init, memory.init, array.new_data/elem, array.init_data/elem).
func (b *Buffer) EmitIndex2(op Opcode, idx0, idx1 uint32, offs ...StackOffset) int {
	pc := b.Emit(op, offs...)
	switch op {
	case OpTableCopy, OpTableInit, OpArrayNewData, OpArrayNewElem:
		b.putU32(pc, 8, idx0)
		b.putU32(pc, 12, idx1)
	case OpArrayInitData, OpArrayInitElem:
		// ref/idx/src/n offsets occupy 2..10; only the segment fits inline.
		b.putU32(pc, 12, idx1)
	case OpMemoryInit:
		b.putU16(pc, 8, uint16(idx0))
		b.putU32(pc, 12, idx1)
	case OpMemoryCopy:
		b.putU16(pc, 8, uint16(idx0))
		b.putU16(pc, 10, uint16(idx1))
	case OpMemoryFill, OpMemorySize, OpMemoryGrow:
		b.putU16(pc, memIdxPosSmall(op), uint16(idx0))
	default:
		panic("bytecode: no index pair field: " + instrTable[op].name)
	}
	return pc
}

func memIdxPosSmall(op Opcode) uint32 {
	switch op {
	case OpMemorySize:
		return 4
	case OpMemoryGrow:
		return 6
	case OpMemoryFill:
		return 8
	}
	panic("bytecode: unexpected op")
}

// EmitStructGet appends struct.get/_s/_u with its field index.
func (b *Buffer) EmitStructGet(op Opcode, ref, dst StackOffset, field uint16) int {
	pc := b.Emit(op, ref, dst)
	b.putU16(pc, 6, field)
	return pc
}

// EmitStructSet appends struct.set with its field index.
func (b *Buffer) EmitStructSet(ref, val StackOffset, field uint16) int {
	pc := b.Emit(OpStructSet, ref, val)
	b.putU16(pc, 6, field)
	return pc
}

// EmitCast appends ref.test/ref.cast/br_on_cast*: nullability flag plus the
// heap encoding (negative abstract heap kind, non-negative type index).
func (b *Buffer) EmitCast(op Opcode, heap int32, nullable bool, offs ...StackOffset) int {
	pc := b.Emit(op, offs...)
	var flags uint16
	if nullable {
		flags = 1
	}
	switch op {
	case OpRefTest:
		b.putU16(pc, 6, flags)
		b.putI32(pc, 8, heap)
	case OpRefCast, OpBrOnCast, OpBrOnCastFail:
		b.putU16(pc, 4, flags)
		b.putI32(pc, 8, heap)
	default:
		panic("bytecode: not a cast op: " + instrTable[op].name)
	}
	return pc
}

// EmitBrTable appends a br_table header plus a zeroed delta table; entry
// count includes the default target as its last entry. Deltas are patched
// with PatchBrTableEntry.
func (b *Buffer) EmitBrTable(src StackOffset, entries uint32) int {
	size := alignUp8(8 + 4*entries)
	pc := b.reserve(OpBrTable, size)
	b.putU16(pc, 2, src)
	b.putU32(pc, 4, entries)
	return pc
}

// PatchBrTableEntry points entry i of the br_table at pc to target.
func (b *Buffer) PatchBrTableEntry(pc int, i uint32, target int) {
	b.putI32(pc, 8+4*i, int32(target-pc))
}

// EmitCall appends a call-family instruction. The trailing offsets are the
// parameter sources followed by the result destinations; indirect and ref
// calls also carry the callee operand's offset in their header.
func (b *Buffer) EmitCall(op Opcode, funcIdx uint32, params, results []StackOffset) int {
	n := uint32(len(params) + len(results))
	pc := b.reserve(op, alignUp8(12+2*n))
	b.putU16(pc, 2, uint16(len(params)))
	b.putU16(pc, 4, uint16(len(results)))
	b.putU32(pc, 8, funcIdx)
	putOffsetList(b, pc, 12, params, results)
	return pc
}

// EmitCallIndirect appends call_indirect/return_call_indirect.
func (b *Buffer) EmitCallIndirect(op Opcode, callee StackOffset, tableIdx, typeIdx uint32, params, results []StackOffset) int {
	n := uint32(len(params) + len(results))
	pc := b.reserve(op, alignUp8(16+2*n))
	b.putU16(pc, 2, uint16(len(params)))
	b.putU16(pc, 4, uint16(len(results)))
	b.putU16(pc, 6, callee)
	b.putU32(pc, 8, tableIdx)
	b.putU32(pc, 12, typeIdx)
	putOffsetList(b, pc, 16, params, results)
	return pc
}

// EmitCallRef appends call_ref/return_call_ref.
func (b *Buffer) EmitCallRef(op Opcode, callee StackOffset, typeIdx uint32, params, results []StackOffset) int {
	n := uint32(len(params) + len(results))
	pc := b.reserve(op, alignUp8(12+2*n))
	b.putU16(pc, 2, uint16(len(params)))
	b.putU16(pc, 4, uint16(len(results)))
	b.putU16(pc, 6, callee)
	b.putU32(pc, 8, typeIdx)
	putOffsetList(b, pc, 12, params, results)
	return pc
}

// EmitEnd appends the function epilogue listing where each result lives.
func (b *Buffer) EmitEnd(results []StackOffset) int {
	pc := b.reserve(OpEnd, alignUp8(4+2*uint32(len(results))))
	b.putU16(pc, 2, uint16(len(results)))
	putOffsetList(b, pc, 4, results, nil)
	return pc
}

// EmitThrow appends throw with its payload source offsets.
func (b *Buffer) EmitThrow(tagIdx uint32, payload []StackOffset) int {
	pc := b.reserve(OpThrow, alignUp8(8+2*uint32(len(payload))))
	b.putU16(pc, 2, uint16(len(payload)))
	b.putU32(pc, 4, tagIdx)
	putOffsetList(b, pc, 8, payload, nil)
	return pc
}

// EmitStructNew appends struct.new with its field sources in declaration
// order.
func (b *Buffer) EmitStructNew(dst StackOffset, typeIdx uint32, fields []StackOffset) int {
	pc := b.reserve(OpStructNew, alignUp8(12+2*uint32(len(fields))))
	b.putU16(pc, 2, uint16(len(fields)))
	b.putU16(pc, 4, dst)
	b.putU32(pc, 8, typeIdx)
	putOffsetList(b, pc, 12, fields, nil)
	return pc
}

// EmitArrayNewFixed appends array.new_fixed with its element sources.
func (b *Buffer) EmitArrayNewFixed(dst StackOffset, typeIdx uint32, elems []StackOffset) int {
	pc := b.reserve(OpArrayNewFixed, alignUp8(12+2*uint32(len(elems))))
	b.putU16(pc, 2, uint16(len(elems)))
	b.putU16(pc, 4, dst)
	b.putU32(pc, 8, typeIdx)
	putOffsetList(b, pc, 12, elems, nil)
	return pc
}

func putOffsetList(b *Buffer, pc int, at uint32, a, c []StackOffset) {
	for i, o := range a {
		b.putU16(pc, at+uint32(2*i), o)
	}
	for i, o := range c {
		b.putU16(pc, at+uint32(2*(len(a)+i)), o)
	}
}
