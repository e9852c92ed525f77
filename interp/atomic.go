package interp

import (
	"sync/atomic"
	"unsafe"

	"github.com/wippyai/wasm-engine/bytecode"
	"github.com/wippyai/wasm-engine/runtime"
)

// Atomic access helpers. Addresses are naturally aligned (checked before
// use); sub-word operations CAS the containing 32-bit word.

func ptr32(b []byte, ea uint64) *uint32 { return (*uint32)(unsafe.Pointer(&b[ea])) }
func ptr64(b []byte, ea uint64) *uint64 { return (*uint64)(unsafe.Pointer(&b[ea])) }

func atomicLoad(b []byte, ea uint64, width int) uint64 {
	switch width {
	case 8:
		return atomic.LoadUint64(ptr64(b, ea))
	case 4:
		return uint64(atomic.LoadUint32(ptr32(b, ea)))
	default:
		word := ea &^ 3
		shift := (ea - word) * 8
		w := atomic.LoadUint32(ptr32(b, word))
		if width == 1 {
			return uint64(w >> shift & 0xFF)
		}
		return uint64(w >> shift & 0xFFFF)
	}
}

func atomicStore(b []byte, ea uint64, width int, v uint64) {
	switch width {
	case 8:
		atomic.StoreUint64(ptr64(b, ea), v)
	case 4:
		atomic.StoreUint32(ptr32(b, ea), uint32(v))
	default:
		rmwSubWord(b, ea, width, func(uint64) uint64 { return v })
	}
}

// rmwSubWord CASes a byte or halfword inside its aligned 32-bit word and
// returns the old narrow value.
func rmwSubWord(b []byte, ea uint64, width int, f func(old uint64) uint64) uint64 {
	word := ea &^ 3
	shift := (ea - word) * 8
	mask := uint32(0xFF)
	if width == 2 {
		mask = 0xFFFF
	}
	p := ptr32(b, word)
	for {
		old := atomic.LoadUint32(p)
		narrow := uint64(old >> shift & mask)
		repl := uint32(f(narrow)) & mask
		next := old&^(mask<<shift) | repl<<shift
		if atomic.CompareAndSwapUint32(p, old, next) {
			return narrow
		}
	}
}

// rmw applies f atomically at (b, ea) and returns the previous value.
func rmw(b []byte, ea uint64, width int, f func(old uint64) uint64) uint64 {
	switch width {
	case 8:
		p := ptr64(b, ea)
		for {
			old := atomic.LoadUint64(p)
			if atomic.CompareAndSwapUint64(p, old, f(old)) {
				return old
			}
		}
	case 4:
		p := ptr32(b, ea)
		for {
			old := atomic.LoadUint32(p)
			if atomic.CompareAndSwapUint32(p, old, uint32(f(uint64(old)))) {
				return uint64(old)
			}
		}
	default:
		return rmwSubWord(b, ea, width, f)
	}
}

// atomicAccess resolves and alignment-checks an atomic instruction.
func (ec *ExecutionContext) atomicAccess(in bytecode.Instr, inst *runtime.Instance, fr frameView, width int) (*runtime.Memory, uint64, bool) {
	mem, ea, ok := ec.memAccess(in, inst, fr, uint64(width))
	if !ok {
		return nil, 0, false
	}
	if ea%uint64(width) != 0 {
		ec.trap = runtime.NewTrap(runtime.TrapUnalignedAtomic)
		return nil, 0, false
	}
	return mem, ea, true
}

// execAtomic handles the threads-proposal instruction family.
func (ec *ExecutionContext) execAtomic(op bytecode.Opcode, in bytecode.Instr, inst *runtime.Instance, fr frameView) bool {
	switch {
	case op >= bytecode.OpI32AtomicLoad && op <= bytecode.OpI64AtomicLoad32U:
		width, is64 := atomicLoadShape(op)
		if mem, ea, ok := ec.atomicAccess(in, inst, fr, width); ok {
			v := atomicLoad(mem.Bytes(), ea, width)
			if is64 {
				fr.setU64(fr.abs(in.Off(4)), v)
			} else {
				fr.setU32(fr.abs(in.Off(4)), uint32(v))
			}
		}
		return true

	case op >= bytecode.OpI32AtomicStore && op <= bytecode.OpI64AtomicStore32:
		width, is64 := atomicStoreShape(op)
		if mem, ea, ok := ec.atomicAccess(in, inst, fr, width); ok {
			var v uint64
			if is64 {
				v = fr.u64(fr.abs(in.Off(4)))
			} else {
				v = uint64(fr.u32(fr.abs(in.Off(4))))
			}
			atomicStore(mem.Bytes(), ea, width, v)
		}
		return true

	case op >= bytecode.OpI32AtomicRmwAdd && op <= bytecode.OpI64AtomicRmw32XchgU:
		idx := uint32(op - bytecode.OpI32AtomicRmwAdd)
		kind, width, is64 := idx/7, rmwWidth(idx%7), idx%7 >= 3
		mem, ea, ok := ec.atomicAccess(in, inst, fr, width)
		if !ok {
			return true
		}
		var val uint64
		if is64 {
			val = fr.u64(fr.abs(in.Off(4)))
		} else {
			val = uint64(fr.u32(fr.abs(in.Off(4))))
		}
		old := rmw(mem.Bytes(), ea, width, func(o uint64) uint64 {
			switch kind {
			case 0:
				return o + val
			case 1:
				return o - val
			case 2:
				return o & val
			case 3:
				return o | val
			case 4:
				return o ^ val
			default:
				return val
			}
		})
		if is64 {
			fr.setU64(fr.abs(in.Off(6)), old)
		} else {
			fr.setU32(fr.abs(in.Off(6)), uint32(old))
		}
		return true

	case op >= bytecode.OpI32AtomicRmwCmpxchg && op <= bytecode.OpI64AtomicRmw32CmpxchgU:
		idx := uint32(op - bytecode.OpI32AtomicRmwCmpxchg)
		width, is64 := rmwWidth(idx), idx >= 3
		mem, ea, ok := ec.atomicAccess(in, inst, fr, width)
		if !ok {
			return true
		}
		var expect, repl uint64
		if is64 {
			expect = fr.u64(fr.abs(in.Off(4)))
			repl = fr.u64(fr.abs(in.Off(6)))
		} else {
			expect = uint64(fr.u32(fr.abs(in.Off(4))))
			repl = uint64(fr.u32(fr.abs(in.Off(6))))
		}
		if width < 8 {
			expect &= (1 << (8 * uint(width))) - 1
		}
		old := rmw(mem.Bytes(), ea, width, func(o uint64) uint64 {
			if o == expect {
				return repl
			}
			return o
		})
		if is64 {
			fr.setU64(fr.abs(in.Off(8)), old)
		} else {
			fr.setU32(fr.abs(in.Off(8)), uint32(old))
		}
		return true
	}

	switch op {
	case bytecode.OpMemoryAtomicWait32, bytecode.OpMemoryAtomicWait64:
		width := 4
		if op == bytecode.OpMemoryAtomicWait64 {
			width = 8
		}
		mem, ea, ok := ec.atomicAccess(in, inst, fr, width)
		if !ok {
			return true
		}
		var expect uint64
		if width == 8 {
			expect = fr.u64(fr.abs(in.Off(4)))
		} else {
			expect = uint64(fr.u32(fr.abs(in.Off(4))))
		}
		timeout := fr.i64(fr.abs(in.Off(6)))
		res := runtime.AtomicWait(mem, ea, func() bool {
			return atomicLoad(mem.Bytes(), ea, width) == expect
		}, timeout)
		fr.setI32(fr.abs(in.Off(8)), int32(res))

	case bytecode.OpMemoryAtomicNotify:
		mem, ea, ok := ec.atomicAccess(in, inst, fr, 4)
		if !ok {
			return true
		}
		count := fr.u32(fr.abs(in.Off(4)))
		fr.setU32(fr.abs(in.Off(6)), runtime.AtomicNotify(mem, ea, count))

	case bytecode.OpAtomicFence:
		// Every atomic above is sequentially consistent through
		// sync/atomic; the fence needs no additional ordering.

	default:
		return false
	}
	return true
}

func rmwWidth(slot uint32) int {
	switch slot {
	case 0, 6:
		return 4
	case 1, 4:
		return 1
	case 2, 5:
		return 2
	default:
		return 8
	}
}

func atomicLoadShape(op bytecode.Opcode) (int, bool) {
	switch op {
	case bytecode.OpI32AtomicLoad:
		return 4, false
	case bytecode.OpI32AtomicLoad8U:
		return 1, false
	case bytecode.OpI32AtomicLoad16U:
		return 2, false
	case bytecode.OpI64AtomicLoad:
		return 8, true
	case bytecode.OpI64AtomicLoad8U:
		return 1, true
	case bytecode.OpI64AtomicLoad16U:
		return 2, true
	default:
		return 4, true // i64.atomic.load32_u
	}
}

func atomicStoreShape(op bytecode.Opcode) (int, bool) {
	switch op {
	case bytecode.OpI32AtomicStore:
		return 4, false
	case bytecode.OpI32AtomicStore8:
		return 1, false
	case bytecode.OpI32AtomicStore16:
		return 2, false
	case bytecode.OpI64AtomicStore:
		return 8, true
	case bytecode.OpI64AtomicStore8:
		return 1, true
	case bytecode.OpI64AtomicStore16:
		return 2, true
	default:
		return 4, true // i64.atomic.store32
	}
}
