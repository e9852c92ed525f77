package bytecode

// Opcode tags every instruction record. The numeric values are internal to
// the engine and carry no relation to the binary-format opcodes.
type Opcode uint16

const (
	// Control and data movement

	OpUnreachable Opcode = iota
	OpJump
	OpJumpIfTrue
	OpJumpIfFalse
	OpBrTable
	OpSelect
	OpCall
	OpCallIndirect
	OpCallRef
	OpReturnCall
	OpReturnCallIndirect
	OpReturnCallRef
	OpEnd
	OpThrow
	OpThrowRef
	OpMove32
	OpMove64
	OpMove128
	OpConst32
	OpConst64
	OpConst128

	// i32 arithmetic, logic, comparison

	OpI32Add
	OpI32Sub
	OpI32Mul
	OpI32DivS
	OpI32DivU
	OpI32RemS
	OpI32RemU
	OpI32And
	OpI32Or
	OpI32Xor
	OpI32Shl
	OpI32ShrS
	OpI32ShrU
	OpI32Rotl
	OpI32Rotr
	OpI32Eq
	OpI32Ne
	OpI32LtS
	OpI32LtU
	OpI32LeS
	OpI32LeU
	OpI32GtS
	OpI32GtU
	OpI32GeS
	OpI32GeU
	OpI32Clz
	OpI32Ctz
	OpI32Popcnt
	OpI32Eqz
	OpI32Extend8S
	OpI32Extend16S

	// i64 arithmetic, logic, comparison

	OpI64Add
	OpI64Sub
	OpI64Mul
	OpI64DivS
	OpI64DivU
	OpI64RemS
	OpI64RemU
	OpI64And
	OpI64Or
	OpI64Xor
	OpI64Shl
	OpI64ShrS
	OpI64ShrU
	OpI64Rotl
	OpI64Rotr
	OpI64Eq
	OpI64Ne
	OpI64LtS
	OpI64LtU
	OpI64LeS
	OpI64LeU
	OpI64GtS
	OpI64GtU
	OpI64GeS
	OpI64GeU
	OpI64Clz
	OpI64Ctz
	OpI64Popcnt
	OpI64Eqz
	OpI64Extend8S
	OpI64Extend16S
	OpI64Extend32S

	// f32 arithmetic and comparison

	OpF32Add
	OpF32Sub
	OpF32Mul
	OpF32Div
	OpF32Min
	OpF32Max
	OpF32Copysign
	OpF32Eq
	OpF32Ne
	OpF32Lt
	OpF32Le
	OpF32Gt
	OpF32Ge
	OpF32Abs
	OpF32Neg
	OpF32Ceil
	OpF32Floor
	OpF32Trunc
	OpF32Nearest
	OpF32Sqrt

	// f64 arithmetic and comparison

	OpF64Add
	OpF64Sub
	OpF64Mul
	OpF64Div
	OpF64Min
	OpF64Max
	OpF64Copysign
	OpF64Eq
	OpF64Ne
	OpF64Lt
	OpF64Le
	OpF64Gt
	OpF64Ge
	OpF64Abs
	OpF64Neg
	OpF64Ceil
	OpF64Floor
	OpF64Trunc
	OpF64Nearest
	OpF64Sqrt

	// Conversions

	OpI32WrapI64
	OpI64ExtendI32S
	OpI64ExtendI32U
	OpF32ConvertI32S
	OpF32ConvertI32U
	OpF32ConvertI64S
	OpF32ConvertI64U
	OpF64ConvertI32S
	OpF64ConvertI32U
	OpF64ConvertI64S
	OpF64ConvertI64U
	OpF32DemoteF64
	OpF64PromoteF32
	OpI32TruncF32S
	OpI32TruncF32U
	OpI32TruncF64S
	OpI32TruncF64U
	OpI64TruncF32S
	OpI64TruncF32U
	OpI64TruncF64S
	OpI64TruncF64U
	OpI32TruncSatF32S
	OpI32TruncSatF32U
	OpI32TruncSatF64S
	OpI32TruncSatF64U
	OpI64TruncSatF32S
	OpI64TruncSatF32U
	OpI64TruncSatF64S
	OpI64TruncSatF64U
	OpI32ReinterpretF32
	OpI64ReinterpretF64
	OpF32ReinterpretI32
	OpF64ReinterpretI64

	// Memory loads

	OpI32Load
	OpI32Load8S
	OpI32Load8U
	OpI32Load16S
	OpI32Load16U
	OpI64Load
	OpI64Load8S
	OpI64Load8U
	OpI64Load16S
	OpI64Load16U
	OpI64Load32S
	OpI64Load32U
	OpF32Load
	OpF64Load
	OpV128Load
	OpV128Load8Splat
	OpV128Load16Splat
	OpV128Load32Splat
	OpV128Load64Splat
	OpV128Load8x8S
	OpV128Load8x8U
	OpV128Load16x4S
	OpV128Load16x4U
	OpV128Load32x2S
	OpV128Load32x2U
	OpV128Load32Zero
	OpV128Load64Zero
	OpV128Load8Lane
	OpV128Load16Lane
	OpV128Load32Lane
	OpV128Load64Lane

	// Memory stores

	OpI32Store
	OpI32Store8
	OpI32Store16
	OpI64Store
	OpI64Store8
	OpI64Store16
	OpI64Store32
	OpF32Store
	OpF64Store
	OpV128Store
	OpV128Store8Lane
	OpV128Store16Lane
	OpV128Store32Lane
	OpV128Store64Lane

	// Memory management

	OpMemorySize
	OpMemoryGrow
	OpMemoryInit
	OpMemoryCopy
	OpMemoryFill
	OpDataDrop

	// Tables

	OpTableGet
	OpTableSet
	OpTableGrow
	OpTableSize
	OpTableFill
	OpTableCopy
	OpTableInit
	OpElemDrop

	// Globals

	OpGlobalGet32
	OpGlobalGet64
	OpGlobalGet128
	OpGlobalGetRef
	OpGlobalSet32
	OpGlobalSet64
	OpGlobalSet128
	OpGlobalSetRef

	// References

	OpRefFunc
	OpRefNull
	OpRefIsNull
	OpRefEq
	OpRefAsNonNull
	OpRefI31
	OpI31GetS
	OpI31GetU
	OpRefTest
	OpRefCast
	OpBrOnCast
	OpBrOnCastFail
	OpBrOnNull
	OpBrOnNonNull
	OpAnyConvertExtern
	OpExternConvertAny

	// GC structs and arrays

	OpStructNew
	OpStructNewDefault
	OpStructGet
	OpStructGetS
	OpStructGetU
	OpStructSet
	OpArrayNew
	OpArrayNewDefault
	OpArrayNewFixed
	OpArrayNewData
	OpArrayNewElem
	OpArrayGet
	OpArrayGetS
	OpArrayGetU
	OpArraySet
	OpArrayLen
	OpArrayCopy
	OpArrayFill
	OpArrayInitData
	OpArrayInitElem

	// SIMD splat, lanes, shuffle

	OpI8x16Splat
	OpI16x8Splat
	OpI32x4Splat
	OpI64x2Splat
	OpF32x4Splat
	OpF64x2Splat
	OpI8x16ExtractLaneS
	OpI8x16ExtractLaneU
	OpI16x8ExtractLaneS
	OpI16x8ExtractLaneU
	OpI32x4ExtractLane
	OpI64x2ExtractLane
	OpF32x4ExtractLane
	OpF64x2ExtractLane
	OpI8x16ReplaceLane
	OpI16x8ReplaceLane
	OpI32x4ReplaceLane
	OpI64x2ReplaceLane
	OpF32x4ReplaceLane
	OpF64x2ReplaceLane
	OpI8x16Shuffle
	OpI8x16Swizzle

	// SIMD i8x16

	OpI8x16Add
	OpI8x16Sub
	OpI8x16AddSatS
	OpI8x16AddSatU
	OpI8x16SubSatS
	OpI8x16SubSatU
	OpI8x16MinS
	OpI8x16MinU
	OpI8x16MaxS
	OpI8x16MaxU
	OpI8x16AvgrU
	OpI8x16Eq
	OpI8x16Ne
	OpI8x16LtS
	OpI8x16LtU
	OpI8x16LeS
	OpI8x16LeU
	OpI8x16GtS
	OpI8x16GtU
	OpI8x16GeS
	OpI8x16GeU
	OpI8x16NarrowI16x8S
	OpI8x16NarrowI16x8U
	OpI8x16Shl
	OpI8x16ShrS
	OpI8x16ShrU
	OpI8x16Abs
	OpI8x16Neg
	OpI8x16Popcnt
	OpI8x16AllTrue
	OpI8x16Bitmask

	// SIMD i16x8

	OpI16x8Add
	OpI16x8Sub
	OpI16x8Mul
	OpI16x8AddSatS
	OpI16x8AddSatU
	OpI16x8SubSatS
	OpI16x8SubSatU
	OpI16x8MinS
	OpI16x8MinU
	OpI16x8MaxS
	OpI16x8MaxU
	OpI16x8AvgrU
	OpI16x8Q15MulrSatS
	OpI16x8Eq
	OpI16x8Ne
	OpI16x8LtS
	OpI16x8LtU
	OpI16x8LeS
	OpI16x8LeU
	OpI16x8GtS
	OpI16x8GtU
	OpI16x8GeS
	OpI16x8GeU
	OpI16x8NarrowI32x4S
	OpI16x8NarrowI32x4U
	OpI16x8ExtMulLowI8x16S
	OpI16x8ExtMulHighI8x16S
	OpI16x8ExtMulLowI8x16U
	OpI16x8ExtMulHighI8x16U
	OpI16x8Shl
	OpI16x8ShrS
	OpI16x8ShrU
	OpI16x8Abs
	OpI16x8Neg
	OpI16x8AllTrue
	OpI16x8Bitmask
	OpI16x8ExtAddPairwiseI8x16S
	OpI16x8ExtAddPairwiseI8x16U
	OpI16x8ExtendLowI8x16S
	OpI16x8ExtendHighI8x16S
	OpI16x8ExtendLowI8x16U
	OpI16x8ExtendHighI8x16U

	// SIMD i32x4

	OpI32x4Add
	OpI32x4Sub
	OpI32x4Mul
	OpI32x4MinS
	OpI32x4MinU
	OpI32x4MaxS
	OpI32x4MaxU
	OpI32x4DotI16x8S
	OpI32x4Eq
	OpI32x4Ne
	OpI32x4LtS
	OpI32x4LtU
	OpI32x4LeS
	OpI32x4LeU
	OpI32x4GtS
	OpI32x4GtU
	OpI32x4GeS
	OpI32x4GeU
	OpI32x4ExtMulLowI16x8S
	OpI32x4ExtMulHighI16x8S
	OpI32x4ExtMulLowI16x8U
	OpI32x4ExtMulHighI16x8U
	OpI32x4Shl
	OpI32x4ShrS
	OpI32x4ShrU
	OpI32x4Abs
	OpI32x4Neg
	OpI32x4AllTrue
	OpI32x4Bitmask
	OpI32x4ExtAddPairwiseI16x8S
	OpI32x4ExtAddPairwiseI16x8U
	OpI32x4ExtendLowI16x8S
	OpI32x4ExtendHighI16x8S
	OpI32x4ExtendLowI16x8U
	OpI32x4ExtendHighI16x8U
	OpI32x4TruncSatF32x4S
	OpI32x4TruncSatF32x4U
	OpI32x4TruncSatF64x2SZero
	OpI32x4TruncSatF64x2UZero

	// SIMD i64x2

	OpI64x2Add
	OpI64x2Sub
	OpI64x2Mul
	OpI64x2Eq
	OpI64x2Ne
	OpI64x2LtS
	OpI64x2LeS
	OpI64x2GtS
	OpI64x2GeS
	OpI64x2ExtMulLowI32x4S
	OpI64x2ExtMulHighI32x4S
	OpI64x2ExtMulLowI32x4U
	OpI64x2ExtMulHighI32x4U
	OpI64x2Shl
	OpI64x2ShrS
	OpI64x2ShrU
	OpI64x2Abs
	OpI64x2Neg
	OpI64x2AllTrue
	OpI64x2Bitmask
	OpI64x2ExtendLowI32x4S
	OpI64x2ExtendHighI32x4S
	OpI64x2ExtendLowI32x4U
	OpI64x2ExtendHighI32x4U

	// SIMD f32x4

	OpF32x4Add
	OpF32x4Sub
	OpF32x4Mul
	OpF32x4Div
	OpF32x4Min
	OpF32x4Max
	OpF32x4PMin
	OpF32x4PMax
	OpF32x4Eq
	OpF32x4Ne
	OpF32x4Lt
	OpF32x4Le
	OpF32x4Gt
	OpF32x4Ge
	OpF32x4Abs
	OpF32x4Neg
	OpF32x4Sqrt
	OpF32x4Ceil
	OpF32x4Floor
	OpF32x4Trunc
	OpF32x4Nearest
	OpF32x4ConvertI32x4S
	OpF32x4ConvertI32x4U
	OpF32x4DemoteF64x2Zero

	// SIMD f64x2

	OpF64x2Add
	OpF64x2Sub
	OpF64x2Mul
	OpF64x2Div
	OpF64x2Min
	OpF64x2Max
	OpF64x2PMin
	OpF64x2PMax
	OpF64x2Eq
	OpF64x2Ne
	OpF64x2Lt
	OpF64x2Le
	OpF64x2Gt
	OpF64x2Ge
	OpF64x2Abs
	OpF64x2Neg
	OpF64x2Sqrt
	OpF64x2Ceil
	OpF64x2Floor
	OpF64x2Trunc
	OpF64x2Nearest
	OpF64x2ConvertLowI32x4S
	OpF64x2ConvertLowI32x4U
	OpF64x2PromoteLowF32x4

	// SIMD bitwise

	OpV128And
	OpV128Or
	OpV128Xor
	OpV128AndNot
	OpV128Not
	OpV128AnyTrue
	OpV128Bitselect

	// Relaxed SIMD

	OpI8x16RelaxedSwizzle
	OpI32x4RelaxedTruncF32x4S
	OpI32x4RelaxedTruncF32x4U
	OpI32x4RelaxedTruncF64x2SZero
	OpI32x4RelaxedTruncF64x2UZero
	OpF32x4RelaxedMadd
	OpF32x4RelaxedNmadd
	OpF64x2RelaxedMadd
	OpF64x2RelaxedNmadd
	OpI8x16RelaxedLaneSelect
	OpI16x8RelaxedLaneSelect
	OpI32x4RelaxedLaneSelect
	OpI64x2RelaxedLaneSelect
	OpF32x4RelaxedMin
	OpF32x4RelaxedMax
	OpF64x2RelaxedMin
	OpF64x2RelaxedMax
	OpI16x8RelaxedQ15MulrS
	OpI16x8RelaxedDotI8x16I7x16S
	OpI32x4RelaxedDotI8x16I7x16AddS

	// Atomic loads and stores

	OpI32AtomicLoad
	OpI32AtomicLoad8U
	OpI32AtomicLoad16U
	OpI64AtomicLoad
	OpI64AtomicLoad8U
	OpI64AtomicLoad16U
	OpI64AtomicLoad32U
	OpI32AtomicStore
	OpI32AtomicStore8
	OpI32AtomicStore16
	OpI64AtomicStore
	OpI64AtomicStore8
	OpI64AtomicStore16
	OpI64AtomicStore32

	// Atomic read-modify-write

	OpI32AtomicRmwAdd
	OpI32AtomicRmw8AddU
	OpI32AtomicRmw16AddU
	OpI64AtomicRmwAdd
	OpI64AtomicRmw8AddU
	OpI64AtomicRmw16AddU
	OpI64AtomicRmw32AddU
	OpI32AtomicRmwSub
	OpI32AtomicRmw8SubU
	OpI32AtomicRmw16SubU
	OpI64AtomicRmwSub
	OpI64AtomicRmw8SubU
	OpI64AtomicRmw16SubU
	OpI64AtomicRmw32SubU
	OpI32AtomicRmwAnd
	OpI32AtomicRmw8AndU
	OpI32AtomicRmw16AndU
	OpI64AtomicRmwAnd
	OpI64AtomicRmw8AndU
	OpI64AtomicRmw16AndU
	OpI64AtomicRmw32AndU
	OpI32AtomicRmwOr
	OpI32AtomicRmw8OrU
	OpI32AtomicRmw16OrU
	OpI64AtomicRmwOr
	OpI64AtomicRmw8OrU
	OpI64AtomicRmw16OrU
	OpI64AtomicRmw32OrU
	OpI32AtomicRmwXor
	OpI32AtomicRmw8XorU
	OpI32AtomicRmw16XorU
	OpI64AtomicRmwXor
	OpI64AtomicRmw8XorU
	OpI64AtomicRmw16XorU
	OpI64AtomicRmw32XorU
	OpI32AtomicRmwXchg
	OpI32AtomicRmw8XchgU
	OpI32AtomicRmw16XchgU
	OpI64AtomicRmwXchg
	OpI64AtomicRmw8XchgU
	OpI64AtomicRmw16XchgU
	OpI64AtomicRmw32XchgU
	OpI32AtomicRmwCmpxchg
	OpI32AtomicRmw8CmpxchgU
	OpI32AtomicRmw16CmpxchgU
	OpI64AtomicRmwCmpxchg
	OpI64AtomicRmw8CmpxchgU
	OpI64AtomicRmw16CmpxchgU
	OpI64AtomicRmw32CmpxchgU

	// Atomic synchronization

	OpMemoryAtomicWait32
	OpMemoryAtomicWait64
	OpMemoryAtomicNotify
	OpAtomicFence

	// OpcodeCount is the number of defined opcodes; it sizes the per-opcode
	// info table (instrTable). The interpreter dispatches with a switch on
	// the opcode; there is no handler address table.
	OpcodeCount
)
