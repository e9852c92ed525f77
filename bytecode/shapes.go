package bytecode

// shape classes group opcodes that share a memory-access field layout.
type class uint8

const (
	classOther class = iota
	classLoad
	classStore
	classLoadLane
	classStoreLane
	classRmw
	classCmpxchg
	classWait
	classNotify
)

func shapeClass(op Opcode) class {
	switch {
	case op >= OpI32Load && op <= OpV128Load64Zero:
		return classLoad
	case op >= OpI32AtomicLoad && op <= OpI64AtomicLoad32U:
		return classLoad
	case op >= OpI32Store && op <= OpV128Store:
		return classStore
	case op >= OpI32AtomicStore && op <= OpI64AtomicStore32:
		return classStore
	case op >= OpV128Load8Lane && op <= OpV128Load64Lane:
		return classLoadLane
	case op >= OpV128Store8Lane && op <= OpV128Store64Lane:
		return classStoreLane
	case op >= OpI32AtomicRmwAdd && op <= OpI64AtomicRmw32XchgU:
		return classRmw
	case op >= OpI32AtomicRmwCmpxchg && op <= OpI64AtomicRmw32CmpxchgU:
		return classCmpxchg
	case op == OpMemoryAtomicWait32 || op == OpMemoryAtomicWait64:
		return classWait
	case op == OpMemoryAtomicNotify:
		return classNotify
	}
	return classOther
}

// IsMemoryAccess reports whether op reads or writes linear memory through an
// offset immediate.
func IsMemoryAccess(op Opcode) bool {
	return shapeClass(op) != classOther
}

// CanTrap reports whether the instruction may raise a trap the unwinder has
// to consider. The translator registers every such pc inside an active try.
func CanTrap(op Opcode) bool {
	if IsMemoryAccess(op) {
		return true
	}
	switch op {
	case OpUnreachable,
		OpI32DivS, OpI32DivU, OpI32RemS, OpI32RemU,
		OpI64DivS, OpI64DivU, OpI64RemS, OpI64RemU,
		OpI32TruncF32S, OpI32TruncF32U, OpI32TruncF64S, OpI32TruncF64U,
		OpI64TruncF32S, OpI64TruncF32U, OpI64TruncF64S, OpI64TruncF64U,
		OpCall, OpCallIndirect, OpCallRef,
		OpReturnCall, OpReturnCallIndirect, OpReturnCallRef,
		OpThrow, OpThrowRef,
		OpMemoryInit, OpMemoryCopy, OpMemoryFill,
		OpTableGet, OpTableSet, OpTableFill, OpTableCopy, OpTableInit,
		OpRefCast, OpRefAsNonNull,
		OpStructGet, OpStructGetS, OpStructGetU, OpStructSet,
		OpStructNew, OpStructNewDefault,
		OpArrayNew, OpArrayNewDefault, OpArrayNewFixed,
		OpArrayNewData, OpArrayNewElem,
		OpArrayGet, OpArrayGetS, OpArrayGetU, OpArraySet, OpArrayLen,
		OpArrayCopy, OpArrayFill, OpArrayInitData, OpArrayInitElem,
		OpI31GetS, OpI31GetU:
		return true
	}
	return false
}
