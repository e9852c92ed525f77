package bytecode

// instrInfo describes an opcode's fixed encoding: its name, the encoded
// size in bytes (0 for variable-length forms, which are measured by
// Instr.Size from their header fields), and the byte positions of the stack
// offset fields within the record.
type instrInfo struct {
	name string
	offs []uint32
	size uint32
}

var instrTable = [OpcodeCount]instrInfo{
	// Control and data movement
	OpUnreachable: {name: "Unreachable", size: 8, offs: nil},
	OpJump: {name: "Jump", size: 8, offs: nil},
	OpJumpIfTrue: {name: "JumpIfTrue", size: 8, offs: []uint32{2}},
	OpJumpIfFalse: {name: "JumpIfFalse", size: 8, offs: []uint32{2}},
	OpBrTable: {name: "BrTable"},
	OpSelect: {name: "Select", size: 16, offs: []uint32{2, 4, 6, 8}},
	OpCall: {name: "Call"},
	OpCallIndirect: {name: "CallIndirect"},
	OpCallRef: {name: "CallRef"},
	OpReturnCall: {name: "ReturnCall"},
	OpReturnCallIndirect: {name: "ReturnCallIndirect"},
	OpReturnCallRef: {name: "ReturnCallRef"},
	OpEnd: {name: "End"},
	OpThrow: {name: "Throw"},
	OpThrowRef: {name: "ThrowRef", size: 8, offs: []uint32{2}},
	OpMove32: {name: "Move32", size: 8, offs: []uint32{2, 4}},
	OpMove64: {name: "Move64", size: 8, offs: []uint32{2, 4}},
	OpMove128: {name: "Move128", size: 8, offs: []uint32{2, 4}},
	OpConst32: {name: "Const32", size: 8, offs: []uint32{2}},
	OpConst64: {name: "Const64", size: 16, offs: []uint32{2}},
	OpConst128: {name: "Const128", size: 24, offs: []uint32{2}},
	// i32 arithmetic, logic, comparison
	OpI32Add: {name: "I32Add", size: 8, offs: []uint32{2, 4, 6}},
	OpI32Sub: {name: "I32Sub", size: 8, offs: []uint32{2, 4, 6}},
	OpI32Mul: {name: "I32Mul", size: 8, offs: []uint32{2, 4, 6}},
	OpI32DivS: {name: "I32DivS", size: 8, offs: []uint32{2, 4, 6}},
	OpI32DivU: {name: "I32DivU", size: 8, offs: []uint32{2, 4, 6}},
	OpI32RemS: {name: "I32RemS", size: 8, offs: []uint32{2, 4, 6}},
	OpI32RemU: {name: "I32RemU", size: 8, offs: []uint32{2, 4, 6}},
	OpI32And: {name: "I32And", size: 8, offs: []uint32{2, 4, 6}},
	OpI32Or: {name: "I32Or", size: 8, offs: []uint32{2, 4, 6}},
	OpI32Xor: {name: "I32Xor", size: 8, offs: []uint32{2, 4, 6}},
	OpI32Shl: {name: "I32Shl", size: 8, offs: []uint32{2, 4, 6}},
	OpI32ShrS: {name: "I32ShrS", size: 8, offs: []uint32{2, 4, 6}},
	OpI32ShrU: {name: "I32ShrU", size: 8, offs: []uint32{2, 4, 6}},
	OpI32Rotl: {name: "I32Rotl", size: 8, offs: []uint32{2, 4, 6}},
	OpI32Rotr: {name: "I32Rotr", size: 8, offs: []uint32{2, 4, 6}},
	OpI32Eq: {name: "I32Eq", size: 8, offs: []uint32{2, 4, 6}},
	OpI32Ne: {name: "I32Ne", size: 8, offs: []uint32{2, 4, 6}},
	OpI32LtS: {name: "I32LtS", size: 8, offs: []uint32{2, 4, 6}},
	OpI32LtU: {name: "I32LtU", size: 8, offs: []uint32{2, 4, 6}},
	OpI32LeS: {name: "I32LeS", size: 8, offs: []uint32{2, 4, 6}},
	OpI32LeU: {name: "I32LeU", size: 8, offs: []uint32{2, 4, 6}},
	OpI32GtS: {name: "I32GtS", size: 8, offs: []uint32{2, 4, 6}},
	OpI32GtU: {name: "I32GtU", size: 8, offs: []uint32{2, 4, 6}},
	OpI32GeS: {name: "I32GeS", size: 8, offs: []uint32{2, 4, 6}},
	OpI32GeU: {name: "I32GeU", size: 8, offs: []uint32{2, 4, 6}},
	OpI32Clz: {name: "I32Clz", size: 8, offs: []uint32{2, 4}},
	OpI32Ctz: {name: "I32Ctz", size: 8, offs: []uint32{2, 4}},
	OpI32Popcnt: {name: "I32Popcnt", size: 8, offs: []uint32{2, 4}},
	OpI32Eqz: {name: "I32Eqz", size: 8, offs: []uint32{2, 4}},
	OpI32Extend8S: {name: "I32Extend8S", size: 8, offs: []uint32{2, 4}},
	OpI32Extend16S: {name: "I32Extend16S", size: 8, offs: []uint32{2, 4}},
	// i64 arithmetic, logic, comparison
	OpI64Add: {name: "I64Add", size: 8, offs: []uint32{2, 4, 6}},
	OpI64Sub: {name: "I64Sub", size: 8, offs: []uint32{2, 4, 6}},
	OpI64Mul: {name: "I64Mul", size: 8, offs: []uint32{2, 4, 6}},
	OpI64DivS: {name: "I64DivS", size: 8, offs: []uint32{2, 4, 6}},
	OpI64DivU: {name: "I64DivU", size: 8, offs: []uint32{2, 4, 6}},
	OpI64RemS: {name: "I64RemS", size: 8, offs: []uint32{2, 4, 6}},
	OpI64RemU: {name: "I64RemU", size: 8, offs: []uint32{2, 4, 6}},
	OpI64And: {name: "I64And", size: 8, offs: []uint32{2, 4, 6}},
	OpI64Or: {name: "I64Or", size: 8, offs: []uint32{2, 4, 6}},
	OpI64Xor: {name: "I64Xor", size: 8, offs: []uint32{2, 4, 6}},
	OpI64Shl: {name: "I64Shl", size: 8, offs: []uint32{2, 4, 6}},
	OpI64ShrS: {name: "I64ShrS", size: 8, offs: []uint32{2, 4, 6}},
	OpI64ShrU: {name: "I64ShrU", size: 8, offs: []uint32{2, 4, 6}},
	OpI64Rotl: {name: "I64Rotl", size: 8, offs: []uint32{2, 4, 6}},
	OpI64Rotr: {name: "I64Rotr", size: 8, offs: []uint32{2, 4, 6}},
	OpI64Eq: {name: "I64Eq", size: 8, offs: []uint32{2, 4, 6}},
	OpI64Ne: {name: "I64Ne", size: 8, offs: []uint32{2, 4, 6}},
	OpI64LtS: {name: "I64LtS", size: 8, offs: []uint32{2, 4, 6}},
	OpI64LtU: {name: "I64LtU", size: 8, offs: []uint32{2, 4, 6}},
	OpI64LeS: {name: "I64LeS", size: 8, offs: []uint32{2, 4, 6}},
	OpI64LeU: {name: "I64LeU", size: 8, offs: []uint32{2, 4, 6}},
	OpI64GtS: {name: "I64GtS", size: 8, offs: []uint32{2, 4, 6}},
	OpI64GtU: {name: "I64GtU", size: 8, offs: []uint32{2, 4, 6}},
	OpI64GeS: {name: "I64GeS", size: 8, offs: []uint32{2, 4, 6}},
	OpI64GeU: {name: "I64GeU", size: 8, offs: []uint32{2, 4, 6}},
	OpI64Clz: {name: "I64Clz", size: 8, offs: []uint32{2, 4}},
	OpI64Ctz: {name: "I64Ctz", size: 8, offs: []uint32{2, 4}},
	OpI64Popcnt: {name: "I64Popcnt", size: 8, offs: []uint32{2, 4}},
	OpI64Eqz: {name: "I64Eqz", size: 8, offs: []uint32{2, 4}},
	OpI64Extend8S: {name: "I64Extend8S", size: 8, offs: []uint32{2, 4}},
	OpI64Extend16S: {name: "I64Extend16S", size: 8, offs: []uint32{2, 4}},
	OpI64Extend32S: {name: "I64Extend32S", size: 8, offs: []uint32{2, 4}},
	// f32 arithmetic and comparison
	OpF32Add: {name: "F32Add", size: 8, offs: []uint32{2, 4, 6}},
	OpF32Sub: {name: "F32Sub", size: 8, offs: []uint32{2, 4, 6}},
	OpF32Mul: {name: "F32Mul", size: 8, offs: []uint32{2, 4, 6}},
	OpF32Div: {name: "F32Div", size: 8, offs: []uint32{2, 4, 6}},
	OpF32Min: {name: "F32Min", size: 8, offs: []uint32{2, 4, 6}},
	OpF32Max: {name: "F32Max", size: 8, offs: []uint32{2, 4, 6}},
	OpF32Copysign: {name: "F32Copysign", size: 8, offs: []uint32{2, 4, 6}},
	OpF32Eq: {name: "F32Eq", size: 8, offs: []uint32{2, 4, 6}},
	OpF32Ne: {name: "F32Ne", size: 8, offs: []uint32{2, 4, 6}},
	OpF32Lt: {name: "F32Lt", size: 8, offs: []uint32{2, 4, 6}},
	OpF32Le: {name: "F32Le", size: 8, offs: []uint32{2, 4, 6}},
	OpF32Gt: {name: "F32Gt", size: 8, offs: []uint32{2, 4, 6}},
	OpF32Ge: {name: "F32Ge", size: 8, offs: []uint32{2, 4, 6}},
	OpF32Abs: {name: "F32Abs", size: 8, offs: []uint32{2, 4}},
	OpF32Neg: {name: "F32Neg", size: 8, offs: []uint32{2, 4}},
	OpF32Ceil: {name: "F32Ceil", size: 8, offs: []uint32{2, 4}},
	OpF32Floor: {name: "F32Floor", size: 8, offs: []uint32{2, 4}},
	OpF32Trunc: {name: "F32Trunc", size: 8, offs: []uint32{2, 4}},
	OpF32Nearest: {name: "F32Nearest", size: 8, offs: []uint32{2, 4}},
	OpF32Sqrt: {name: "F32Sqrt", size: 8, offs: []uint32{2, 4}},
	// f64 arithmetic and comparison
	OpF64Add: {name: "F64Add", size: 8, offs: []uint32{2, 4, 6}},
	OpF64Sub: {name: "F64Sub", size: 8, offs: []uint32{2, 4, 6}},
	OpF64Mul: {name: "F64Mul", size: 8, offs: []uint32{2, 4, 6}},
	OpF64Div: {name: "F64Div", size: 8, offs: []uint32{2, 4, 6}},
	OpF64Min: {name: "F64Min", size: 8, offs: []uint32{2, 4, 6}},
	OpF64Max: {name: "F64Max", size: 8, offs: []uint32{2, 4, 6}},
	OpF64Copysign: {name: "F64Copysign", size: 8, offs: []uint32{2, 4, 6}},
	OpF64Eq: {name: "F64Eq", size: 8, offs: []uint32{2, 4, 6}},
	OpF64Ne: {name: "F64Ne", size: 8, offs: []uint32{2, 4, 6}},
	OpF64Lt: {name: "F64Lt", size: 8, offs: []uint32{2, 4, 6}},
	OpF64Le: {name: "F64Le", size: 8, offs: []uint32{2, 4, 6}},
	OpF64Gt: {name: "F64Gt", size: 8, offs: []uint32{2, 4, 6}},
	OpF64Ge: {name: "F64Ge", size: 8, offs: []uint32{2, 4, 6}},
	OpF64Abs: {name: "F64Abs", size: 8, offs: []uint32{2, 4}},
	OpF64Neg: {name: "F64Neg", size: 8, offs: []uint32{2, 4}},
	OpF64Ceil: {name: "F64Ceil", size: 8, offs: []uint32{2, 4}},
	OpF64Floor: {name: "F64Floor", size: 8, offs: []uint32{2, 4}},
	OpF64Trunc: {name: "F64Trunc", size: 8, offs: []uint32{2, 4}},
	OpF64Nearest: {name: "F64Nearest", size: 8, offs: []uint32{2, 4}},
	OpF64Sqrt: {name: "F64Sqrt", size: 8, offs: []uint32{2, 4}},
	// Conversions
	OpI32WrapI64: {name: "I32WrapI64", size: 8, offs: []uint32{2, 4}},
	OpI64ExtendI32S: {name: "I64ExtendI32S", size: 8, offs: []uint32{2, 4}},
	OpI64ExtendI32U: {name: "I64ExtendI32U", size: 8, offs: []uint32{2, 4}},
	OpF32ConvertI32S: {name: "F32ConvertI32S", size: 8, offs: []uint32{2, 4}},
	OpF32ConvertI32U: {name: "F32ConvertI32U", size: 8, offs: []uint32{2, 4}},
	OpF32ConvertI64S: {name: "F32ConvertI64S", size: 8, offs: []uint32{2, 4}},
	OpF32ConvertI64U: {name: "F32ConvertI64U", size: 8, offs: []uint32{2, 4}},
	OpF64ConvertI32S: {name: "F64ConvertI32S", size: 8, offs: []uint32{2, 4}},
	OpF64ConvertI32U: {name: "F64ConvertI32U", size: 8, offs: []uint32{2, 4}},
	OpF64ConvertI64S: {name: "F64ConvertI64S", size: 8, offs: []uint32{2, 4}},
	OpF64ConvertI64U: {name: "F64ConvertI64U", size: 8, offs: []uint32{2, 4}},
	OpF32DemoteF64: {name: "F32DemoteF64", size: 8, offs: []uint32{2, 4}},
	OpF64PromoteF32: {name: "F64PromoteF32", size: 8, offs: []uint32{2, 4}},
	OpI32TruncF32S: {name: "I32TruncF32S", size: 8, offs: []uint32{2, 4}},
	OpI32TruncF32U: {name: "I32TruncF32U", size: 8, offs: []uint32{2, 4}},
	OpI32TruncF64S: {name: "I32TruncF64S", size: 8, offs: []uint32{2, 4}},
	OpI32TruncF64U: {name: "I32TruncF64U", size: 8, offs: []uint32{2, 4}},
	OpI64TruncF32S: {name: "I64TruncF32S", size: 8, offs: []uint32{2, 4}},
	OpI64TruncF32U: {name: "I64TruncF32U", size: 8, offs: []uint32{2, 4}},
	OpI64TruncF64S: {name: "I64TruncF64S", size: 8, offs: []uint32{2, 4}},
	OpI64TruncF64U: {name: "I64TruncF64U", size: 8, offs: []uint32{2, 4}},
	OpI32TruncSatF32S: {name: "I32TruncSatF32S", size: 8, offs: []uint32{2, 4}},
	OpI32TruncSatF32U: {name: "I32TruncSatF32U", size: 8, offs: []uint32{2, 4}},
	OpI32TruncSatF64S: {name: "I32TruncSatF64S", size: 8, offs: []uint32{2, 4}},
	OpI32TruncSatF64U: {name: "I32TruncSatF64U", size: 8, offs: []uint32{2, 4}},
	OpI64TruncSatF32S: {name: "I64TruncSatF32S", size: 8, offs: []uint32{2, 4}},
	OpI64TruncSatF32U: {name: "I64TruncSatF32U", size: 8, offs: []uint32{2, 4}},
	OpI64TruncSatF64S: {name: "I64TruncSatF64S", size: 8, offs: []uint32{2, 4}},
	OpI64TruncSatF64U: {name: "I64TruncSatF64U", size: 8, offs: []uint32{2, 4}},
	OpI32ReinterpretF32: {name: "I32ReinterpretF32", size: 8, offs: []uint32{2, 4}},
	OpI64ReinterpretF64: {name: "I64ReinterpretF64", size: 8, offs: []uint32{2, 4}},
	OpF32ReinterpretI32: {name: "F32ReinterpretI32", size: 8, offs: []uint32{2, 4}},
	OpF64ReinterpretI64: {name: "F64ReinterpretI64", size: 8, offs: []uint32{2, 4}},
	// Memory loads
	OpI32Load: {name: "I32Load", size: 16, offs: []uint32{2, 4}},
	OpI32Load8S: {name: "I32Load8S", size: 16, offs: []uint32{2, 4}},
	OpI32Load8U: {name: "I32Load8U", size: 16, offs: []uint32{2, 4}},
	OpI32Load16S: {name: "I32Load16S", size: 16, offs: []uint32{2, 4}},
	OpI32Load16U: {name: "I32Load16U", size: 16, offs: []uint32{2, 4}},
	OpI64Load: {name: "I64Load", size: 16, offs: []uint32{2, 4}},
	OpI64Load8S: {name: "I64Load8S", size: 16, offs: []uint32{2, 4}},
	OpI64Load8U: {name: "I64Load8U", size: 16, offs: []uint32{2, 4}},
	OpI64Load16S: {name: "I64Load16S", size: 16, offs: []uint32{2, 4}},
	OpI64Load16U: {name: "I64Load16U", size: 16, offs: []uint32{2, 4}},
	OpI64Load32S: {name: "I64Load32S", size: 16, offs: []uint32{2, 4}},
	OpI64Load32U: {name: "I64Load32U", size: 16, offs: []uint32{2, 4}},
	OpF32Load: {name: "F32Load", size: 16, offs: []uint32{2, 4}},
	OpF64Load: {name: "F64Load", size: 16, offs: []uint32{2, 4}},
	OpV128Load: {name: "V128Load", size: 16, offs: []uint32{2, 4}},
	OpV128Load8Splat: {name: "V128Load8Splat", size: 16, offs: []uint32{2, 4}},
	OpV128Load16Splat: {name: "V128Load16Splat", size: 16, offs: []uint32{2, 4}},
	OpV128Load32Splat: {name: "V128Load32Splat", size: 16, offs: []uint32{2, 4}},
	OpV128Load64Splat: {name: "V128Load64Splat", size: 16, offs: []uint32{2, 4}},
	OpV128Load8x8S: {name: "V128Load8x8S", size: 16, offs: []uint32{2, 4}},
	OpV128Load8x8U: {name: "V128Load8x8U", size: 16, offs: []uint32{2, 4}},
	OpV128Load16x4S: {name: "V128Load16x4S", size: 16, offs: []uint32{2, 4}},
	OpV128Load16x4U: {name: "V128Load16x4U", size: 16, offs: []uint32{2, 4}},
	OpV128Load32x2S: {name: "V128Load32x2S", size: 16, offs: []uint32{2, 4}},
	OpV128Load32x2U: {name: "V128Load32x2U", size: 16, offs: []uint32{2, 4}},
	OpV128Load32Zero: {name: "V128Load32Zero", size: 16, offs: []uint32{2, 4}},
	OpV128Load64Zero: {name: "V128Load64Zero", size: 16, offs: []uint32{2, 4}},
	OpV128Load8Lane: {name: "V128Load8Lane", size: 24, offs: []uint32{2, 4, 6}},
	OpV128Load16Lane: {name: "V128Load16Lane", size: 24, offs: []uint32{2, 4, 6}},
	OpV128Load32Lane: {name: "V128Load32Lane", size: 24, offs: []uint32{2, 4, 6}},
	OpV128Load64Lane: {name: "V128Load64Lane", size: 24, offs: []uint32{2, 4, 6}},
	// Memory stores
	OpI32Store: {name: "I32Store", size: 16, offs: []uint32{2, 4}},
	OpI32Store8: {name: "I32Store8", size: 16, offs: []uint32{2, 4}},
	OpI32Store16: {name: "I32Store16", size: 16, offs: []uint32{2, 4}},
	OpI64Store: {name: "I64Store", size: 16, offs: []uint32{2, 4}},
	OpI64Store8: {name: "I64Store8", size: 16, offs: []uint32{2, 4}},
	OpI64Store16: {name: "I64Store16", size: 16, offs: []uint32{2, 4}},
	OpI64Store32: {name: "I64Store32", size: 16, offs: []uint32{2, 4}},
	OpF32Store: {name: "F32Store", size: 16, offs: []uint32{2, 4}},
	OpF64Store: {name: "F64Store", size: 16, offs: []uint32{2, 4}},
	OpV128Store: {name: "V128Store", size: 16, offs: []uint32{2, 4}},
	OpV128Store8Lane: {name: "V128Store8Lane", size: 24, offs: []uint32{2, 4}},
	OpV128Store16Lane: {name: "V128Store16Lane", size: 24, offs: []uint32{2, 4}},
	OpV128Store32Lane: {name: "V128Store32Lane", size: 24, offs: []uint32{2, 4}},
	OpV128Store64Lane: {name: "V128Store64Lane", size: 24, offs: []uint32{2, 4}},
	// Memory management
	OpMemorySize: {name: "MemorySize", size: 8, offs: []uint32{2}},
	OpMemoryGrow: {name: "MemoryGrow", size: 8, offs: []uint32{2, 4}},
	OpMemoryInit: {name: "MemoryInit", size: 16, offs: []uint32{2, 4, 6}},
	OpMemoryCopy: {name: "MemoryCopy", size: 16, offs: []uint32{2, 4, 6}},
	OpMemoryFill: {name: "MemoryFill", size: 16, offs: []uint32{2, 4, 6}},
	OpDataDrop: {name: "DataDrop", size: 8, offs: nil},
	// Tables
	OpTableGet: {name: "TableGet", size: 16, offs: []uint32{2, 4}},
	OpTableSet: {name: "TableSet", size: 16, offs: []uint32{2, 4}},
	OpTableGrow: {name: "TableGrow", size: 16, offs: []uint32{2, 4, 6}},
	OpTableSize: {name: "TableSize", size: 8, offs: []uint32{2}},
	OpTableFill: {name: "TableFill", size: 16, offs: []uint32{2, 4, 6}},
	OpTableCopy: {name: "TableCopy", size: 16, offs: []uint32{2, 4, 6}},
	OpTableInit: {name: "TableInit", size: 16, offs: []uint32{2, 4, 6}},
	OpElemDrop: {name: "ElemDrop", size: 8, offs: nil},
	// Globals
	OpGlobalGet32: {name: "GlobalGet32", size: 8, offs: []uint32{2}},
	OpGlobalGet64: {name: "GlobalGet64", size: 8, offs: []uint32{2}},
	OpGlobalGet128: {name: "GlobalGet128", size: 8, offs: []uint32{2}},
	OpGlobalGetRef: {name: "GlobalGetRef", size: 8, offs: []uint32{2}},
	OpGlobalSet32: {name: "GlobalSet32", size: 8, offs: []uint32{2}},
	OpGlobalSet64: {name: "GlobalSet64", size: 8, offs: []uint32{2}},
	OpGlobalSet128: {name: "GlobalSet128", size: 8, offs: []uint32{2}},
	OpGlobalSetRef: {name: "GlobalSetRef", size: 8, offs: []uint32{2}},
	// References
	OpRefFunc: {name: "RefFunc", size: 8, offs: []uint32{2}},
	OpRefNull: {name: "RefNull", size: 8, offs: []uint32{2}},
	OpRefIsNull: {name: "RefIsNull", size: 8, offs: []uint32{2, 4}},
	OpRefEq: {name: "RefEq", size: 8, offs: []uint32{2, 4, 6}},
	OpRefAsNonNull: {name: "RefAsNonNull", size: 8, offs: []uint32{2, 4}},
	OpRefI31: {name: "RefI31", size: 8, offs: []uint32{2, 4}},
	OpI31GetS: {name: "I31GetS", size: 8, offs: []uint32{2, 4}},
	OpI31GetU: {name: "I31GetU", size: 8, offs: []uint32{2, 4}},
	OpRefTest: {name: "RefTest", size: 16, offs: []uint32{2, 4}},
	OpRefCast: {name: "RefCast", size: 16, offs: []uint32{2}},
	OpBrOnCast: {name: "BrOnCast", size: 16, offs: []uint32{2}},
	OpBrOnCastFail: {name: "BrOnCastFail", size: 16, offs: []uint32{2}},
	OpBrOnNull: {name: "BrOnNull", size: 8, offs: []uint32{2}},
	OpBrOnNonNull: {name: "BrOnNonNull", size: 8, offs: []uint32{2}},
	OpAnyConvertExtern: {name: "AnyConvertExtern", size: 8, offs: []uint32{2, 4}},
	OpExternConvertAny: {name: "ExternConvertAny", size: 8, offs: []uint32{2, 4}},
	// GC structs and arrays
	OpStructNew: {name: "StructNew"},
	OpStructNewDefault: {name: "StructNewDefault", size: 8, offs: []uint32{2}},
	OpStructGet: {name: "StructGet", size: 8, offs: []uint32{2, 4}},
	OpStructGetS: {name: "StructGetS", size: 8, offs: []uint32{2, 4}},
	OpStructGetU: {name: "StructGetU", size: 8, offs: []uint32{2, 4}},
	OpStructSet: {name: "StructSet", size: 8, offs: []uint32{2, 4}},
	OpArrayNew: {name: "ArrayNew", size: 16, offs: []uint32{2, 4, 6}},
	OpArrayNewDefault: {name: "ArrayNewDefault", size: 16, offs: []uint32{2, 4}},
	OpArrayNewFixed: {name: "ArrayNewFixed"},
	OpArrayNewData: {name: "ArrayNewData", size: 16, offs: []uint32{2, 4, 6}},
	OpArrayNewElem: {name: "ArrayNewElem", size: 16, offs: []uint32{2, 4, 6}},
	OpArrayGet: {name: "ArrayGet", size: 8, offs: []uint32{2, 4, 6}},
	OpArrayGetS: {name: "ArrayGetS", size: 8, offs: []uint32{2, 4, 6}},
	OpArrayGetU: {name: "ArrayGetU", size: 8, offs: []uint32{2, 4, 6}},
	OpArraySet: {name: "ArraySet", size: 8, offs: []uint32{2, 4, 6}},
	OpArrayLen: {name: "ArrayLen", size: 8, offs: []uint32{2, 4}},
	OpArrayCopy: {name: "ArrayCopy", size: 16, offs: []uint32{2, 4, 6, 8, 10}},
	OpArrayFill: {name: "ArrayFill", size: 16, offs: []uint32{2, 4, 6, 8}},
	OpArrayInitData: {name: "ArrayInitData", size: 16, offs: []uint32{2, 4, 6, 8}},
	OpArrayInitElem: {name: "ArrayInitElem", size: 16, offs: []uint32{2, 4, 6, 8}},
	// SIMD splat, lanes, shuffle
	OpI8x16Splat: {name: "I8x16Splat", size: 8, offs: []uint32{2, 4}},
	OpI16x8Splat: {name: "I16x8Splat", size: 8, offs: []uint32{2, 4}},
	OpI32x4Splat: {name: "I32x4Splat", size: 8, offs: []uint32{2, 4}},
	OpI64x2Splat: {name: "I64x2Splat", size: 8, offs: []uint32{2, 4}},
	OpF32x4Splat: {name: "F32x4Splat", size: 8, offs: []uint32{2, 4}},
	OpF64x2Splat: {name: "F64x2Splat", size: 8, offs: []uint32{2, 4}},
	OpI8x16ExtractLaneS: {name: "I8x16ExtractLaneS", size: 8, offs: []uint32{2, 4}},
	OpI8x16ExtractLaneU: {name: "I8x16ExtractLaneU", size: 8, offs: []uint32{2, 4}},
	OpI16x8ExtractLaneS: {name: "I16x8ExtractLaneS", size: 8, offs: []uint32{2, 4}},
	OpI16x8ExtractLaneU: {name: "I16x8ExtractLaneU", size: 8, offs: []uint32{2, 4}},
	OpI32x4ExtractLane: {name: "I32x4ExtractLane", size: 8, offs: []uint32{2, 4}},
	OpI64x2ExtractLane: {name: "I64x2ExtractLane", size: 8, offs: []uint32{2, 4}},
	OpF32x4ExtractLane: {name: "F32x4ExtractLane", size: 8, offs: []uint32{2, 4}},
	OpF64x2ExtractLane: {name: "F64x2ExtractLane", size: 8, offs: []uint32{2, 4}},
	OpI8x16ReplaceLane: {name: "I8x16ReplaceLane", size: 16, offs: []uint32{2, 4, 6}},
	OpI16x8ReplaceLane: {name: "I16x8ReplaceLane", size: 16, offs: []uint32{2, 4, 6}},
	OpI32x4ReplaceLane: {name: "I32x4ReplaceLane", size: 16, offs: []uint32{2, 4, 6}},
	OpI64x2ReplaceLane: {name: "I64x2ReplaceLane", size: 16, offs: []uint32{2, 4, 6}},
	OpF32x4ReplaceLane: {name: "F32x4ReplaceLane", size: 16, offs: []uint32{2, 4, 6}},
	OpF64x2ReplaceLane: {name: "F64x2ReplaceLane", size: 16, offs: []uint32{2, 4, 6}},
	OpI8x16Shuffle: {name: "I8x16Shuffle", size: 24, offs: []uint32{2, 4, 6}},
	OpI8x16Swizzle: {name: "I8x16Swizzle", size: 8, offs: []uint32{2, 4, 6}},
	// SIMD i8x16
	OpI8x16Add: {name: "I8x16Add", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16Sub: {name: "I8x16Sub", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16AddSatS: {name: "I8x16AddSatS", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16AddSatU: {name: "I8x16AddSatU", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16SubSatS: {name: "I8x16SubSatS", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16SubSatU: {name: "I8x16SubSatU", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16MinS: {name: "I8x16MinS", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16MinU: {name: "I8x16MinU", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16MaxS: {name: "I8x16MaxS", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16MaxU: {name: "I8x16MaxU", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16AvgrU: {name: "I8x16AvgrU", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16Eq: {name: "I8x16Eq", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16Ne: {name: "I8x16Ne", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16LtS: {name: "I8x16LtS", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16LtU: {name: "I8x16LtU", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16LeS: {name: "I8x16LeS", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16LeU: {name: "I8x16LeU", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16GtS: {name: "I8x16GtS", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16GtU: {name: "I8x16GtU", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16GeS: {name: "I8x16GeS", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16GeU: {name: "I8x16GeU", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16NarrowI16x8S: {name: "I8x16NarrowI16x8S", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16NarrowI16x8U: {name: "I8x16NarrowI16x8U", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16Shl: {name: "I8x16Shl", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16ShrS: {name: "I8x16ShrS", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16ShrU: {name: "I8x16ShrU", size: 8, offs: []uint32{2, 4, 6}},
	OpI8x16Abs: {name: "I8x16Abs", size: 8, offs: []uint32{2, 4}},
	OpI8x16Neg: {name: "I8x16Neg", size: 8, offs: []uint32{2, 4}},
	OpI8x16Popcnt: {name: "I8x16Popcnt", size: 8, offs: []uint32{2, 4}},
	OpI8x16AllTrue: {name: "I8x16AllTrue", size: 8, offs: []uint32{2, 4}},
	OpI8x16Bitmask: {name: "I8x16Bitmask", size: 8, offs: []uint32{2, 4}},
	// SIMD i16x8
	OpI16x8Add: {name: "I16x8Add", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8Sub: {name: "I16x8Sub", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8Mul: {name: "I16x8Mul", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8AddSatS: {name: "I16x8AddSatS", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8AddSatU: {name: "I16x8AddSatU", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8SubSatS: {name: "I16x8SubSatS", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8SubSatU: {name: "I16x8SubSatU", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8MinS: {name: "I16x8MinS", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8MinU: {name: "I16x8MinU", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8MaxS: {name: "I16x8MaxS", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8MaxU: {name: "I16x8MaxU", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8AvgrU: {name: "I16x8AvgrU", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8Q15MulrSatS: {name: "I16x8Q15MulrSatS", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8Eq: {name: "I16x8Eq", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8Ne: {name: "I16x8Ne", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8LtS: {name: "I16x8LtS", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8LtU: {name: "I16x8LtU", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8LeS: {name: "I16x8LeS", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8LeU: {name: "I16x8LeU", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8GtS: {name: "I16x8GtS", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8GtU: {name: "I16x8GtU", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8GeS: {name: "I16x8GeS", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8GeU: {name: "I16x8GeU", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8NarrowI32x4S: {name: "I16x8NarrowI32x4S", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8NarrowI32x4U: {name: "I16x8NarrowI32x4U", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8ExtMulLowI8x16S: {name: "I16x8ExtMulLowI8x16S", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8ExtMulHighI8x16S: {name: "I16x8ExtMulHighI8x16S", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8ExtMulLowI8x16U: {name: "I16x8ExtMulLowI8x16U", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8ExtMulHighI8x16U: {name: "I16x8ExtMulHighI8x16U", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8Shl: {name: "I16x8Shl", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8ShrS: {name: "I16x8ShrS", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8ShrU: {name: "I16x8ShrU", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8Abs: {name: "I16x8Abs", size: 8, offs: []uint32{2, 4}},
	OpI16x8Neg: {name: "I16x8Neg", size: 8, offs: []uint32{2, 4}},
	OpI16x8AllTrue: {name: "I16x8AllTrue", size: 8, offs: []uint32{2, 4}},
	OpI16x8Bitmask: {name: "I16x8Bitmask", size: 8, offs: []uint32{2, 4}},
	OpI16x8ExtAddPairwiseI8x16S: {name: "I16x8ExtAddPairwiseI8x16S", size: 8, offs: []uint32{2, 4}},
	OpI16x8ExtAddPairwiseI8x16U: {name: "I16x8ExtAddPairwiseI8x16U", size: 8, offs: []uint32{2, 4}},
	OpI16x8ExtendLowI8x16S: {name: "I16x8ExtendLowI8x16S", size: 8, offs: []uint32{2, 4}},
	OpI16x8ExtendHighI8x16S: {name: "I16x8ExtendHighI8x16S", size: 8, offs: []uint32{2, 4}},
	OpI16x8ExtendLowI8x16U: {name: "I16x8ExtendLowI8x16U", size: 8, offs: []uint32{2, 4}},
	OpI16x8ExtendHighI8x16U: {name: "I16x8ExtendHighI8x16U", size: 8, offs: []uint32{2, 4}},
	// SIMD i32x4
	OpI32x4Add: {name: "I32x4Add", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4Sub: {name: "I32x4Sub", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4Mul: {name: "I32x4Mul", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4MinS: {name: "I32x4MinS", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4MinU: {name: "I32x4MinU", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4MaxS: {name: "I32x4MaxS", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4MaxU: {name: "I32x4MaxU", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4DotI16x8S: {name: "I32x4DotI16x8S", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4Eq: {name: "I32x4Eq", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4Ne: {name: "I32x4Ne", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4LtS: {name: "I32x4LtS", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4LtU: {name: "I32x4LtU", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4LeS: {name: "I32x4LeS", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4LeU: {name: "I32x4LeU", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4GtS: {name: "I32x4GtS", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4GtU: {name: "I32x4GtU", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4GeS: {name: "I32x4GeS", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4GeU: {name: "I32x4GeU", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4ExtMulLowI16x8S: {name: "I32x4ExtMulLowI16x8S", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4ExtMulHighI16x8S: {name: "I32x4ExtMulHighI16x8S", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4ExtMulLowI16x8U: {name: "I32x4ExtMulLowI16x8U", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4ExtMulHighI16x8U: {name: "I32x4ExtMulHighI16x8U", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4Shl: {name: "I32x4Shl", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4ShrS: {name: "I32x4ShrS", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4ShrU: {name: "I32x4ShrU", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4Abs: {name: "I32x4Abs", size: 8, offs: []uint32{2, 4}},
	OpI32x4Neg: {name: "I32x4Neg", size: 8, offs: []uint32{2, 4}},
	OpI32x4AllTrue: {name: "I32x4AllTrue", size: 8, offs: []uint32{2, 4}},
	OpI32x4Bitmask: {name: "I32x4Bitmask", size: 8, offs: []uint32{2, 4}},
	OpI32x4ExtAddPairwiseI16x8S: {name: "I32x4ExtAddPairwiseI16x8S", size: 8, offs: []uint32{2, 4}},
	OpI32x4ExtAddPairwiseI16x8U: {name: "I32x4ExtAddPairwiseI16x8U", size: 8, offs: []uint32{2, 4}},
	OpI32x4ExtendLowI16x8S: {name: "I32x4ExtendLowI16x8S", size: 8, offs: []uint32{2, 4}},
	OpI32x4ExtendHighI16x8S: {name: "I32x4ExtendHighI16x8S", size: 8, offs: []uint32{2, 4}},
	OpI32x4ExtendLowI16x8U: {name: "I32x4ExtendLowI16x8U", size: 8, offs: []uint32{2, 4}},
	OpI32x4ExtendHighI16x8U: {name: "I32x4ExtendHighI16x8U", size: 8, offs: []uint32{2, 4}},
	OpI32x4TruncSatF32x4S: {name: "I32x4TruncSatF32x4S", size: 8, offs: []uint32{2, 4}},
	OpI32x4TruncSatF32x4U: {name: "I32x4TruncSatF32x4U", size: 8, offs: []uint32{2, 4}},
	OpI32x4TruncSatF64x2SZero: {name: "I32x4TruncSatF64x2SZero", size: 8, offs: []uint32{2, 4}},
	OpI32x4TruncSatF64x2UZero: {name: "I32x4TruncSatF64x2UZero", size: 8, offs: []uint32{2, 4}},
	// SIMD i64x2
	OpI64x2Add: {name: "I64x2Add", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2Sub: {name: "I64x2Sub", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2Mul: {name: "I64x2Mul", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2Eq: {name: "I64x2Eq", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2Ne: {name: "I64x2Ne", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2LtS: {name: "I64x2LtS", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2LeS: {name: "I64x2LeS", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2GtS: {name: "I64x2GtS", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2GeS: {name: "I64x2GeS", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2ExtMulLowI32x4S: {name: "I64x2ExtMulLowI32x4S", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2ExtMulHighI32x4S: {name: "I64x2ExtMulHighI32x4S", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2ExtMulLowI32x4U: {name: "I64x2ExtMulLowI32x4U", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2ExtMulHighI32x4U: {name: "I64x2ExtMulHighI32x4U", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2Shl: {name: "I64x2Shl", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2ShrS: {name: "I64x2ShrS", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2ShrU: {name: "I64x2ShrU", size: 8, offs: []uint32{2, 4, 6}},
	OpI64x2Abs: {name: "I64x2Abs", size: 8, offs: []uint32{2, 4}},
	OpI64x2Neg: {name: "I64x2Neg", size: 8, offs: []uint32{2, 4}},
	OpI64x2AllTrue: {name: "I64x2AllTrue", size: 8, offs: []uint32{2, 4}},
	OpI64x2Bitmask: {name: "I64x2Bitmask", size: 8, offs: []uint32{2, 4}},
	OpI64x2ExtendLowI32x4S: {name: "I64x2ExtendLowI32x4S", size: 8, offs: []uint32{2, 4}},
	OpI64x2ExtendHighI32x4S: {name: "I64x2ExtendHighI32x4S", size: 8, offs: []uint32{2, 4}},
	OpI64x2ExtendLowI32x4U: {name: "I64x2ExtendLowI32x4U", size: 8, offs: []uint32{2, 4}},
	OpI64x2ExtendHighI32x4U: {name: "I64x2ExtendHighI32x4U", size: 8, offs: []uint32{2, 4}},
	// SIMD f32x4
	OpF32x4Add: {name: "F32x4Add", size: 8, offs: []uint32{2, 4, 6}},
	OpF32x4Sub: {name: "F32x4Sub", size: 8, offs: []uint32{2, 4, 6}},
	OpF32x4Mul: {name: "F32x4Mul", size: 8, offs: []uint32{2, 4, 6}},
	OpF32x4Div: {name: "F32x4Div", size: 8, offs: []uint32{2, 4, 6}},
	OpF32x4Min: {name: "F32x4Min", size: 8, offs: []uint32{2, 4, 6}},
	OpF32x4Max: {name: "F32x4Max", size: 8, offs: []uint32{2, 4, 6}},
	OpF32x4PMin: {name: "F32x4PMin", size: 8, offs: []uint32{2, 4, 6}},
	OpF32x4PMax: {name: "F32x4PMax", size: 8, offs: []uint32{2, 4, 6}},
	OpF32x4Eq: {name: "F32x4Eq", size: 8, offs: []uint32{2, 4, 6}},
	OpF32x4Ne: {name: "F32x4Ne", size: 8, offs: []uint32{2, 4, 6}},
	OpF32x4Lt: {name: "F32x4Lt", size: 8, offs: []uint32{2, 4, 6}},
	OpF32x4Le: {name: "F32x4Le", size: 8, offs: []uint32{2, 4, 6}},
	OpF32x4Gt: {name: "F32x4Gt", size: 8, offs: []uint32{2, 4, 6}},
	OpF32x4Ge: {name: "F32x4Ge", size: 8, offs: []uint32{2, 4, 6}},
	OpF32x4Abs: {name: "F32x4Abs", size: 8, offs: []uint32{2, 4}},
	OpF32x4Neg: {name: "F32x4Neg", size: 8, offs: []uint32{2, 4}},
	OpF32x4Sqrt: {name: "F32x4Sqrt", size: 8, offs: []uint32{2, 4}},
	OpF32x4Ceil: {name: "F32x4Ceil", size: 8, offs: []uint32{2, 4}},
	OpF32x4Floor: {name: "F32x4Floor", size: 8, offs: []uint32{2, 4}},
	OpF32x4Trunc: {name: "F32x4Trunc", size: 8, offs: []uint32{2, 4}},
	OpF32x4Nearest: {name: "F32x4Nearest", size: 8, offs: []uint32{2, 4}},
	OpF32x4ConvertI32x4S: {name: "F32x4ConvertI32x4S", size: 8, offs: []uint32{2, 4}},
	OpF32x4ConvertI32x4U: {name: "F32x4ConvertI32x4U", size: 8, offs: []uint32{2, 4}},
	OpF32x4DemoteF64x2Zero: {name: "F32x4DemoteF64x2Zero", size: 8, offs: []uint32{2, 4}},
	// SIMD f64x2
	OpF64x2Add: {name: "F64x2Add", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2Sub: {name: "F64x2Sub", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2Mul: {name: "F64x2Mul", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2Div: {name: "F64x2Div", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2Min: {name: "F64x2Min", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2Max: {name: "F64x2Max", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2PMin: {name: "F64x2PMin", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2PMax: {name: "F64x2PMax", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2Eq: {name: "F64x2Eq", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2Ne: {name: "F64x2Ne", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2Lt: {name: "F64x2Lt", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2Le: {name: "F64x2Le", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2Gt: {name: "F64x2Gt", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2Ge: {name: "F64x2Ge", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2Abs: {name: "F64x2Abs", size: 8, offs: []uint32{2, 4}},
	OpF64x2Neg: {name: "F64x2Neg", size: 8, offs: []uint32{2, 4}},
	OpF64x2Sqrt: {name: "F64x2Sqrt", size: 8, offs: []uint32{2, 4}},
	OpF64x2Ceil: {name: "F64x2Ceil", size: 8, offs: []uint32{2, 4}},
	OpF64x2Floor: {name: "F64x2Floor", size: 8, offs: []uint32{2, 4}},
	OpF64x2Trunc: {name: "F64x2Trunc", size: 8, offs: []uint32{2, 4}},
	OpF64x2Nearest: {name: "F64x2Nearest", size: 8, offs: []uint32{2, 4}},
	OpF64x2ConvertLowI32x4S: {name: "F64x2ConvertLowI32x4S", size: 8, offs: []uint32{2, 4}},
	OpF64x2ConvertLowI32x4U: {name: "F64x2ConvertLowI32x4U", size: 8, offs: []uint32{2, 4}},
	OpF64x2PromoteLowF32x4: {name: "F64x2PromoteLowF32x4", size: 8, offs: []uint32{2, 4}},
	// SIMD bitwise
	OpV128And: {name: "V128And", size: 8, offs: []uint32{2, 4, 6}},
	OpV128Or: {name: "V128Or", size: 8, offs: []uint32{2, 4, 6}},
	OpV128Xor: {name: "V128Xor", size: 8, offs: []uint32{2, 4, 6}},
	OpV128AndNot: {name: "V128AndNot", size: 8, offs: []uint32{2, 4, 6}},
	OpV128Not: {name: "V128Not", size: 8, offs: []uint32{2, 4}},
	OpV128AnyTrue: {name: "V128AnyTrue", size: 8, offs: []uint32{2, 4}},
	OpV128Bitselect: {name: "V128Bitselect", size: 16, offs: []uint32{2, 4, 6, 8}},
	// Relaxed SIMD
	OpI8x16RelaxedSwizzle: {name: "I8x16RelaxedSwizzle", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4RelaxedTruncF32x4S: {name: "I32x4RelaxedTruncF32x4S", size: 8, offs: []uint32{2, 4}},
	OpI32x4RelaxedTruncF32x4U: {name: "I32x4RelaxedTruncF32x4U", size: 8, offs: []uint32{2, 4}},
	OpI32x4RelaxedTruncF64x2SZero: {name: "I32x4RelaxedTruncF64x2SZero", size: 8, offs: []uint32{2, 4}},
	OpI32x4RelaxedTruncF64x2UZero: {name: "I32x4RelaxedTruncF64x2UZero", size: 8, offs: []uint32{2, 4}},
	OpF32x4RelaxedMadd: {name: "F32x4RelaxedMadd", size: 16, offs: []uint32{2, 4, 6, 8}},
	OpF32x4RelaxedNmadd: {name: "F32x4RelaxedNmadd", size: 16, offs: []uint32{2, 4, 6, 8}},
	OpF64x2RelaxedMadd: {name: "F64x2RelaxedMadd", size: 16, offs: []uint32{2, 4, 6, 8}},
	OpF64x2RelaxedNmadd: {name: "F64x2RelaxedNmadd", size: 16, offs: []uint32{2, 4, 6, 8}},
	OpI8x16RelaxedLaneSelect: {name: "I8x16RelaxedLaneSelect", size: 16, offs: []uint32{2, 4, 6, 8}},
	OpI16x8RelaxedLaneSelect: {name: "I16x8RelaxedLaneSelect", size: 16, offs: []uint32{2, 4, 6, 8}},
	OpI32x4RelaxedLaneSelect: {name: "I32x4RelaxedLaneSelect", size: 16, offs: []uint32{2, 4, 6, 8}},
	OpI64x2RelaxedLaneSelect: {name: "I64x2RelaxedLaneSelect", size: 16, offs: []uint32{2, 4, 6, 8}},
	OpF32x4RelaxedMin: {name: "F32x4RelaxedMin", size: 8, offs: []uint32{2, 4, 6}},
	OpF32x4RelaxedMax: {name: "F32x4RelaxedMax", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2RelaxedMin: {name: "F64x2RelaxedMin", size: 8, offs: []uint32{2, 4, 6}},
	OpF64x2RelaxedMax: {name: "F64x2RelaxedMax", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8RelaxedQ15MulrS: {name: "I16x8RelaxedQ15MulrS", size: 8, offs: []uint32{2, 4, 6}},
	OpI16x8RelaxedDotI8x16I7x16S: {name: "I16x8RelaxedDotI8x16I7x16S", size: 8, offs: []uint32{2, 4, 6}},
	OpI32x4RelaxedDotI8x16I7x16AddS: {name: "I32x4RelaxedDotI8x16I7x16AddS", size: 16, offs: []uint32{2, 4, 6, 8}},
	// Atomic loads and stores
	OpI32AtomicLoad: {name: "I32AtomicLoad", size: 16, offs: []uint32{2, 4}},
	OpI32AtomicLoad8U: {name: "I32AtomicLoad8U", size: 16, offs: []uint32{2, 4}},
	OpI32AtomicLoad16U: {name: "I32AtomicLoad16U", size: 16, offs: []uint32{2, 4}},
	OpI64AtomicLoad: {name: "I64AtomicLoad", size: 16, offs: []uint32{2, 4}},
	OpI64AtomicLoad8U: {name: "I64AtomicLoad8U", size: 16, offs: []uint32{2, 4}},
	OpI64AtomicLoad16U: {name: "I64AtomicLoad16U", size: 16, offs: []uint32{2, 4}},
	OpI64AtomicLoad32U: {name: "I64AtomicLoad32U", size: 16, offs: []uint32{2, 4}},
	OpI32AtomicStore: {name: "I32AtomicStore", size: 16, offs: []uint32{2, 4}},
	OpI32AtomicStore8: {name: "I32AtomicStore8", size: 16, offs: []uint32{2, 4}},
	OpI32AtomicStore16: {name: "I32AtomicStore16", size: 16, offs: []uint32{2, 4}},
	OpI64AtomicStore: {name: "I64AtomicStore", size: 16, offs: []uint32{2, 4}},
	OpI64AtomicStore8: {name: "I64AtomicStore8", size: 16, offs: []uint32{2, 4}},
	OpI64AtomicStore16: {name: "I64AtomicStore16", size: 16, offs: []uint32{2, 4}},
	OpI64AtomicStore32: {name: "I64AtomicStore32", size: 16, offs: []uint32{2, 4}},
	// Atomic read-modify-write
	OpI32AtomicRmwAdd: {name: "I32AtomicRmwAdd", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmw8AddU: {name: "I32AtomicRmw8AddU", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmw16AddU: {name: "I32AtomicRmw16AddU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmwAdd: {name: "I64AtomicRmwAdd", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw8AddU: {name: "I64AtomicRmw8AddU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw16AddU: {name: "I64AtomicRmw16AddU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw32AddU: {name: "I64AtomicRmw32AddU", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmwSub: {name: "I32AtomicRmwSub", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmw8SubU: {name: "I32AtomicRmw8SubU", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmw16SubU: {name: "I32AtomicRmw16SubU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmwSub: {name: "I64AtomicRmwSub", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw8SubU: {name: "I64AtomicRmw8SubU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw16SubU: {name: "I64AtomicRmw16SubU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw32SubU: {name: "I64AtomicRmw32SubU", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmwAnd: {name: "I32AtomicRmwAnd", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmw8AndU: {name: "I32AtomicRmw8AndU", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmw16AndU: {name: "I32AtomicRmw16AndU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmwAnd: {name: "I64AtomicRmwAnd", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw8AndU: {name: "I64AtomicRmw8AndU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw16AndU: {name: "I64AtomicRmw16AndU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw32AndU: {name: "I64AtomicRmw32AndU", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmwOr: {name: "I32AtomicRmwOr", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmw8OrU: {name: "I32AtomicRmw8OrU", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmw16OrU: {name: "I32AtomicRmw16OrU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmwOr: {name: "I64AtomicRmwOr", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw8OrU: {name: "I64AtomicRmw8OrU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw16OrU: {name: "I64AtomicRmw16OrU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw32OrU: {name: "I64AtomicRmw32OrU", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmwXor: {name: "I32AtomicRmwXor", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmw8XorU: {name: "I32AtomicRmw8XorU", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmw16XorU: {name: "I32AtomicRmw16XorU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmwXor: {name: "I64AtomicRmwXor", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw8XorU: {name: "I64AtomicRmw8XorU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw16XorU: {name: "I64AtomicRmw16XorU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw32XorU: {name: "I64AtomicRmw32XorU", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmwXchg: {name: "I32AtomicRmwXchg", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmw8XchgU: {name: "I32AtomicRmw8XchgU", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmw16XchgU: {name: "I32AtomicRmw16XchgU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmwXchg: {name: "I64AtomicRmwXchg", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw8XchgU: {name: "I64AtomicRmw8XchgU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw16XchgU: {name: "I64AtomicRmw16XchgU", size: 24, offs: []uint32{2, 4, 6}},
	OpI64AtomicRmw32XchgU: {name: "I64AtomicRmw32XchgU", size: 24, offs: []uint32{2, 4, 6}},
	OpI32AtomicRmwCmpxchg: {name: "I32AtomicRmwCmpxchg", size: 24, offs: []uint32{2, 4, 6, 8}},
	OpI32AtomicRmw8CmpxchgU: {name: "I32AtomicRmw8CmpxchgU", size: 24, offs: []uint32{2, 4, 6, 8}},
	OpI32AtomicRmw16CmpxchgU: {name: "I32AtomicRmw16CmpxchgU", size: 24, offs: []uint32{2, 4, 6, 8}},
	OpI64AtomicRmwCmpxchg: {name: "I64AtomicRmwCmpxchg", size: 24, offs: []uint32{2, 4, 6, 8}},
	OpI64AtomicRmw8CmpxchgU: {name: "I64AtomicRmw8CmpxchgU", size: 24, offs: []uint32{2, 4, 6, 8}},
	OpI64AtomicRmw16CmpxchgU: {name: "I64AtomicRmw16CmpxchgU", size: 24, offs: []uint32{2, 4, 6, 8}},
	OpI64AtomicRmw32CmpxchgU: {name: "I64AtomicRmw32CmpxchgU", size: 24, offs: []uint32{2, 4, 6, 8}},
	// Atomic synchronization
	OpMemoryAtomicWait32: {name: "MemoryAtomicWait32", size: 24, offs: []uint32{2, 4, 6, 8}},
	OpMemoryAtomicWait64: {name: "MemoryAtomicWait64", size: 24, offs: []uint32{2, 4, 6, 8}},
	OpMemoryAtomicNotify: {name: "MemoryAtomicNotify", size: 24, offs: []uint32{2, 4, 6}},
	OpAtomicFence: {name: "AtomicFence", size: 8, offs: nil},
}
