package interp

import (
	"github.com/wippyai/wasm-engine/bytecode"
	"github.com/wippyai/wasm-engine/runtime"
)

// memAccess resolves a memory-access instruction: effective address and
// bounds check. ok is false after an out-of-bounds trap was recorded.
func (ec *ExecutionContext) memAccess(in bytecode.Instr, inst *runtime.Instance, fr frameView, width uint64) (*runtime.Memory, uint64, bool) {
	memIdx, offset := in.MemArg()
	mem := inst.Memory(uint32(memIdx))

	var addr uint64
	if mem.Is64() {
		addr = fr.u64(fr.abs(in.Off(2)))
	} else {
		addr = uint64(fr.u32(fr.abs(in.Off(2))))
	}

	ea := addr + offset
	end := ea + width
	if ea < addr || end < ea || end > mem.SizeInBytes() {
		ec.trap = runtime.NewTrap(runtime.TrapOutOfBoundsMemAccess)
		return nil, 0, false
	}
	return mem, ea, true
}

// execMemory handles plain loads/stores, SIMD memory forms, and the bulk
// memory operations.
func (ec *ExecutionContext) execMemory(op bytecode.Opcode, in bytecode.Instr, inst *runtime.Instance, fr frameView) bool {
	switch op {
	case bytecode.OpI32Load:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 4); ok {
			fr.setU32(fr.abs(in.Off(4)), le.Uint32(mem.Bytes()[ea:]))
		}
	case bytecode.OpI32Load8S:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 1); ok {
			fr.setI32(fr.abs(in.Off(4)), int32(int8(mem.Bytes()[ea])))
		}
	case bytecode.OpI32Load8U:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 1); ok {
			fr.setU32(fr.abs(in.Off(4)), uint32(mem.Bytes()[ea]))
		}
	case bytecode.OpI32Load16S:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 2); ok {
			fr.setI32(fr.abs(in.Off(4)), int32(int16(le.Uint16(mem.Bytes()[ea:]))))
		}
	case bytecode.OpI32Load16U:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 2); ok {
			fr.setU32(fr.abs(in.Off(4)), uint32(le.Uint16(mem.Bytes()[ea:])))
		}
	case bytecode.OpI64Load:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 8); ok {
			fr.setU64(fr.abs(in.Off(4)), le.Uint64(mem.Bytes()[ea:]))
		}
	case bytecode.OpI64Load8S:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 1); ok {
			fr.setI64(fr.abs(in.Off(4)), int64(int8(mem.Bytes()[ea])))
		}
	case bytecode.OpI64Load8U:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 1); ok {
			fr.setU64(fr.abs(in.Off(4)), uint64(mem.Bytes()[ea]))
		}
	case bytecode.OpI64Load16S:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 2); ok {
			fr.setI64(fr.abs(in.Off(4)), int64(int16(le.Uint16(mem.Bytes()[ea:]))))
		}
	case bytecode.OpI64Load16U:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 2); ok {
			fr.setU64(fr.abs(in.Off(4)), uint64(le.Uint16(mem.Bytes()[ea:])))
		}
	case bytecode.OpI64Load32S:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 4); ok {
			fr.setI64(fr.abs(in.Off(4)), int64(int32(le.Uint32(mem.Bytes()[ea:]))))
		}
	case bytecode.OpI64Load32U:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 4); ok {
			fr.setU64(fr.abs(in.Off(4)), uint64(le.Uint32(mem.Bytes()[ea:])))
		}
	case bytecode.OpF32Load:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 4); ok {
			fr.setU32(fr.abs(in.Off(4)), le.Uint32(mem.Bytes()[ea:]))
		}
	case bytecode.OpF64Load:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 8); ok {
			fr.setU64(fr.abs(in.Off(4)), le.Uint64(mem.Bytes()[ea:]))
		}
	case bytecode.OpV128Load:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 16); ok {
			copy(fr.v128(fr.abs(in.Off(4))), mem.Bytes()[ea:ea+16])
		}

	case bytecode.OpI32Store:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 4); ok {
			le.PutUint32(mem.Bytes()[ea:], fr.u32(fr.abs(in.Off(4))))
		}
	case bytecode.OpI32Store8:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 1); ok {
			mem.Bytes()[ea] = byte(fr.u32(fr.abs(in.Off(4))))
		}
	case bytecode.OpI32Store16:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 2); ok {
			le.PutUint16(mem.Bytes()[ea:], uint16(fr.u32(fr.abs(in.Off(4)))))
		}
	case bytecode.OpI64Store:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 8); ok {
			le.PutUint64(mem.Bytes()[ea:], fr.u64(fr.abs(in.Off(4))))
		}
	case bytecode.OpI64Store8:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 1); ok {
			mem.Bytes()[ea] = byte(fr.u64(fr.abs(in.Off(4))))
		}
	case bytecode.OpI64Store16:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 2); ok {
			le.PutUint16(mem.Bytes()[ea:], uint16(fr.u64(fr.abs(in.Off(4)))))
		}
	case bytecode.OpI64Store32:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 4); ok {
			le.PutUint32(mem.Bytes()[ea:], uint32(fr.u64(fr.abs(in.Off(4)))))
		}
	case bytecode.OpF32Store:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 4); ok {
			le.PutUint32(mem.Bytes()[ea:], fr.u32(fr.abs(in.Off(4))))
		}
	case bytecode.OpF64Store:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 8); ok {
			le.PutUint64(mem.Bytes()[ea:], fr.u64(fr.abs(in.Off(4))))
		}
	case bytecode.OpV128Store:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 16); ok {
			copy(mem.Bytes()[ea:ea+16], fr.v128(fr.abs(in.Off(4))))
		}

	case bytecode.OpV128Load8Splat:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 1); ok {
			dst := fr.v128(fr.abs(in.Off(4)))
			b := mem.Bytes()[ea]
			for i := range dst {
				dst[i] = b
			}
		}
	case bytecode.OpV128Load16Splat:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 2); ok {
			dst := fr.v128(fr.abs(in.Off(4)))
			v := le.Uint16(mem.Bytes()[ea:])
			for i := 0; i < 8; i++ {
				le.PutUint16(dst[2*i:], v)
			}
		}
	case bytecode.OpV128Load32Splat:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 4); ok {
			dst := fr.v128(fr.abs(in.Off(4)))
			v := le.Uint32(mem.Bytes()[ea:])
			for i := 0; i < 4; i++ {
				le.PutUint32(dst[4*i:], v)
			}
		}
	case bytecode.OpV128Load64Splat:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 8); ok {
			dst := fr.v128(fr.abs(in.Off(4)))
			v := le.Uint64(mem.Bytes()[ea:])
			le.PutUint64(dst, v)
			le.PutUint64(dst[8:], v)
		}
	case bytecode.OpV128Load32Zero:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 4); ok {
			dst := fr.v128(fr.abs(in.Off(4)))
			clear16(dst)
			le.PutUint32(dst, le.Uint32(mem.Bytes()[ea:]))
		}
	case bytecode.OpV128Load64Zero:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 8); ok {
			dst := fr.v128(fr.abs(in.Off(4)))
			clear16(dst)
			le.PutUint64(dst, le.Uint64(mem.Bytes()[ea:]))
		}
	case bytecode.OpV128Load8x8S, bytecode.OpV128Load8x8U:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 8); ok {
			dst := fr.v128(fr.abs(in.Off(4)))
			src := mem.Bytes()[ea : ea+8]
			for i := 0; i < 8; i++ {
				var v uint16
				if op == bytecode.OpV128Load8x8S {
					v = uint16(int16(int8(src[i])))
				} else {
					v = uint16(src[i])
				}
				le.PutUint16(dst[2*i:], v)
			}
		}
	case bytecode.OpV128Load16x4S, bytecode.OpV128Load16x4U:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 8); ok {
			dst := fr.v128(fr.abs(in.Off(4)))
			src := mem.Bytes()[ea : ea+8]
			for i := 0; i < 4; i++ {
				var v uint32
				if op == bytecode.OpV128Load16x4S {
					v = uint32(int32(int16(le.Uint16(src[2*i:]))))
				} else {
					v = uint32(le.Uint16(src[2*i:]))
				}
				le.PutUint32(dst[4*i:], v)
			}
		}
	case bytecode.OpV128Load32x2S, bytecode.OpV128Load32x2U:
		if mem, ea, ok := ec.memAccess(in, inst, fr, 8); ok {
			dst := fr.v128(fr.abs(in.Off(4)))
			src := mem.Bytes()[ea : ea+8]
			for i := 0; i < 2; i++ {
				var v uint64
				if op == bytecode.OpV128Load32x2S {
					v = uint64(int64(int32(le.Uint32(src[4*i:]))))
				} else {
					v = uint64(le.Uint32(src[4*i:]))
				}
				le.PutUint64(dst[8*i:], v)
			}
		}

	case bytecode.OpV128Load8Lane, bytecode.OpV128Load16Lane,
		bytecode.OpV128Load32Lane, bytecode.OpV128Load64Lane:
		width := laneWidth(op)
		if mem, ea, ok := ec.memAccess(in, inst, fr, width); ok {
			dst := fr.v128(fr.abs(in.Off(6)))
			copy(dst, fr.v128(fr.abs(in.Off(4))))
			copy(dst[uint64(in.Lane())*width:], mem.Bytes()[ea:ea+width])
		}
	case bytecode.OpV128Store8Lane, bytecode.OpV128Store16Lane,
		bytecode.OpV128Store32Lane, bytecode.OpV128Store64Lane:
		width := laneWidth(op)
		if mem, ea, ok := ec.memAccess(in, inst, fr, width); ok {
			src := fr.v128(fr.abs(in.Off(4)))
			copy(mem.Bytes()[ea:ea+width], src[uint64(in.Lane())*width:])
		}

	case bytecode.OpMemorySize:
		mem := inst.Memory(uint32(in.U16(4)))
		if mem.Is64() {
			fr.setU64(fr.abs(in.Off(2)), mem.PageCount())
		} else {
			fr.setU32(fr.abs(in.Off(2)), uint32(mem.PageCount()))
		}
	case bytecode.OpMemoryGrow:
		mem := inst.Memory(uint32(in.U16(6)))
		var delta uint64
		if mem.Is64() {
			delta = fr.u64(fr.abs(in.Off(2)))
		} else {
			delta = uint64(fr.u32(fr.abs(in.Off(2))))
		}
		old, ok := mem.Grow(delta)
		if !ok {
			old = ^uint64(0)
		}
		if mem.Is64() {
			fr.setU64(fr.abs(in.Off(4)), old)
		} else {
			fr.setU32(fr.abs(in.Off(4)), uint32(old))
		}

	case bytecode.OpMemoryInit:
		mem := inst.Memory(uint32(in.U16(8)))
		seg := inst.Data(in.U32(12))
		d := ec.memOperand(mem, fr, in.Off(2))
		s := uint64(fr.u32(fr.abs(in.Off(4))))
		n := uint64(fr.u32(fr.abs(in.Off(6))))
		data := seg.Bytes()
		if s+n < s || s+n > uint64(len(data)) || !boundsOK(mem, d, n) {
			ec.trap = runtime.NewTrap(runtime.TrapOutOfBoundsMemAccess)
			break
		}
		copy(mem.Bytes()[d:d+n], data[s:s+n])
	case bytecode.OpDataDrop:
		inst.Data(in.U32(4)).Drop()
	case bytecode.OpMemoryCopy:
		dstMem := inst.Memory(uint32(in.U16(8)))
		srcMem := inst.Memory(uint32(in.U16(10)))
		d := ec.memOperand(dstMem, fr, in.Off(2))
		s := ec.memOperand(srcMem, fr, in.Off(4))
		n := ec.memOperand(dstMem, fr, in.Off(6))
		if !boundsOK(dstMem, d, n) || !boundsOK(srcMem, s, n) {
			ec.trap = runtime.NewTrap(runtime.TrapOutOfBoundsMemAccess)
			break
		}
		copy(dstMem.Bytes()[d:d+n], srcMem.Bytes()[s:s+n])
	case bytecode.OpMemoryFill:
		mem := inst.Memory(uint32(in.U16(8)))
		d := ec.memOperand(mem, fr, in.Off(2))
		v := byte(fr.u32(fr.abs(in.Off(4))))
		n := ec.memOperand(mem, fr, in.Off(6))
		if !boundsOK(mem, d, n) {
			ec.trap = runtime.NewTrap(runtime.TrapOutOfBoundsMemAccess)
			break
		}
		buf := mem.Bytes()[d : d+n]
		for i := range buf {
			buf[i] = v
		}

	default:
		return false
	}
	return true
}

// memOperand reads an address/count operand at the memory's index width.
func (ec *ExecutionContext) memOperand(mem *runtime.Memory, fr frameView, off bytecode.StackOffset) uint64 {
	if mem.Is64() {
		return fr.u64(fr.abs(off))
	}
	return uint64(fr.u32(fr.abs(off)))
}

func boundsOK(mem *runtime.Memory, start, n uint64) bool {
	end := start + n
	return end >= start && end <= mem.SizeInBytes()
}

func laneWidth(op bytecode.Opcode) uint64 {
	switch op {
	case bytecode.OpV128Load8Lane, bytecode.OpV128Store8Lane:
		return 1
	case bytecode.OpV128Load16Lane, bytecode.OpV128Store16Lane:
		return 2
	case bytecode.OpV128Load32Lane, bytecode.OpV128Store32Lane:
		return 4
	default:
		return 8
	}
}

func clear16(b []byte) {
	for i := range b[:16] {
		b[i] = 0
	}
}
