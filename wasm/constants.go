package wasm

// WebAssembly binary format magic number and version.
const (
	// Magic is the WebAssembly binary magic number ("\0asm" in little-endian).
	Magic uint32 = 0x6D736100

	// Version is the supported WebAssembly binary format version.
	Version uint32 = 0x01
)

// Section IDs. Sections must appear in increasing order by ID (except
// custom sections).
const (
	SectionCustom    byte = 0
	SectionType      byte = 1
	SectionImport    byte = 2
	SectionFunction  byte = 3
	SectionTable     byte = 4
	SectionMemory    byte = 5
	SectionGlobal    byte = 6
	SectionExport    byte = 7
	SectionStart     byte = 8
	SectionElement   byte = 9
	SectionCode      byte = 10
	SectionData      byte = 11
	SectionDataCount byte = 12
	SectionTag       byte = 13
)

// Import/export descriptor kinds.
const (
	KindFunc   byte = 0
	KindTable  byte = 1
	KindMemory byte = 2
	KindGlobal byte = 3
	KindTag    byte = 4
)

// Value type encodings. Core types use 0x7F-0x7B, reference types 0x63-0x74.
const (
	ValI32           byte = 0x7F
	ValI64           byte = 0x7E
	ValF32           byte = 0x7D
	ValF64           byte = 0x7C
	ValV128          byte = 0x7B
	ValI8            byte = 0x78 // packed, field types only
	ValI16           byte = 0x77 // packed, field types only
	ValFuncRef       byte = 0x70
	ValExternRef     byte = 0x6F
	ValRefNull       byte = 0x63 // (ref null ht)
	ValRef           byte = 0x64 // (ref ht)
	ValNullFuncRef   byte = 0x73
	ValNullExternRef byte = 0x72
	ValNullRef       byte = 0x71
	ValEqRef         byte = 0x6D
	ValI31Ref        byte = 0x6C
	ValStructRef     byte = 0x6B
	ValArrayRef      byte = 0x6A
	ValAnyRef        byte = 0x6E
	ValExnRef        byte = 0x69
	ValNullExnRef    byte = 0x74
)

// Abstract heap types as s33 values (the value-type byte sign-extended).
const (
	HeapTypeFunc     int64 = -16 // 0x70
	HeapTypeExtern   int64 = -17 // 0x6F
	HeapTypeAny      int64 = -18 // 0x6E
	HeapTypeEq       int64 = -19 // 0x6D
	HeapTypeI31      int64 = -20 // 0x6C
	HeapTypeStruct   int64 = -21 // 0x6B
	HeapTypeArray    int64 = -22 // 0x6A
	HeapTypeExn      int64 = -23 // 0x69
	HeapTypeNone     int64 = -15 // 0x71
	HeapTypeNoExtern int64 = -14 // 0x72
	HeapTypeNoFunc   int64 = -13 // 0x73
	HeapTypeNoExn    int64 = -12 // 0x74
)

// BlockTypeVoid is the block type byte for an empty block signature.
const BlockTypeVoid int64 = -64 // 0x40

// Control flow opcodes.
const (
	OpUnreachable        byte = 0x00
	OpNop                byte = 0x01
	OpBlock              byte = 0x02
	OpLoop               byte = 0x03
	OpIf                 byte = 0x04
	OpElse               byte = 0x05
	OpTry                byte = 0x06
	OpCatch              byte = 0x07
	OpThrow              byte = 0x08
	OpRethrow            byte = 0x09
	OpThrowRef           byte = 0x0A
	OpEnd                byte = 0x0B
	OpBr                 byte = 0x0C
	OpBrIf               byte = 0x0D
	OpBrTable            byte = 0x0E
	OpReturn             byte = 0x0F
	OpCall               byte = 0x10
	OpCallIndirect       byte = 0x11
	OpReturnCall         byte = 0x12
	OpReturnCallIndirect byte = 0x13
	OpCallRef            byte = 0x14
	OpReturnCallRef      byte = 0x15
	OpDelegate           byte = 0x18
	OpCatchAll           byte = 0x19
	OpTryTable           byte = 0x1F
)

// Reference opcodes.
const (
	OpRefNull      byte = 0xD0
	OpRefIsNull    byte = 0xD1
	OpRefFunc      byte = 0xD2
	OpRefAsNonNull byte = 0xD3
	OpRefEq        byte = 0xD4
	OpBrOnNull     byte = 0xD5
	OpBrOnNonNull  byte = 0xD6
)

// Parametric opcodes.
const (
	OpDrop       byte = 0x1A
	OpSelect     byte = 0x1B
	OpSelectType byte = 0x1C
)

// Variable access opcodes.
const (
	OpLocalGet  byte = 0x20
	OpLocalSet  byte = 0x21
	OpLocalTee  byte = 0x22
	OpGlobalGet byte = 0x23
	OpGlobalSet byte = 0x24
)

// Table access opcodes.
const (
	OpTableGet byte = 0x25
	OpTableSet byte = 0x26
)

// Memory access opcodes.
const (
	OpI32Load    byte = 0x28
	OpI64Load    byte = 0x29
	OpF32Load    byte = 0x2A
	OpF64Load    byte = 0x2B
	OpI32Load8S  byte = 0x2C
	OpI32Load8U  byte = 0x2D
	OpI32Load16S byte = 0x2E
	OpI32Load16U byte = 0x2F
	OpI64Load8S  byte = 0x30
	OpI64Load8U  byte = 0x31
	OpI64Load16S byte = 0x32
	OpI64Load16U byte = 0x33
	OpI64Load32S byte = 0x34
	OpI64Load32U byte = 0x35
	OpI32Store   byte = 0x36
	OpI64Store   byte = 0x37
	OpF32Store   byte = 0x38
	OpF64Store   byte = 0x39
	OpI32Store8  byte = 0x3A
	OpI32Store16 byte = 0x3B
	OpI64Store8  byte = 0x3C
	OpI64Store16 byte = 0x3D
	OpI64Store32 byte = 0x3E
	OpMemorySize byte = 0x3F
	OpMemoryGrow byte = 0x40
)

// Constant opcodes.
const (
	OpI32Const byte = 0x41
	OpI64Const byte = 0x42
	OpF32Const byte = 0x43
	OpF64Const byte = 0x44
)

// Numeric opcodes occupy the contiguous range 0x45..0xC4; the translator
// dispatches on them directly without named constants for every entry.
const (
	OpI32Eqz       byte = 0x45
	OpI64Eqz       byte = 0x50
	OpI32Clz       byte = 0x67
	OpI64Clz       byte = 0x79
	OpF32Abs       byte = 0x8B
	OpF64Abs       byte = 0x99
	OpI32WrapI64   byte = 0xA7
	OpI32Extend8S  byte = 0xC0
	OpI32Extend16S byte = 0xC1
	OpI64Extend8S  byte = 0xC2
	OpI64Extend16S byte = 0xC3
	OpI64Extend32S byte = 0xC4
)

// Multi-byte opcode prefixes, each followed by a LEB128 sub-opcode.
const (
	OpPrefixGC     byte = 0xFB
	OpPrefixMisc   byte = 0xFC
	OpPrefixSIMD   byte = 0xFD
	OpPrefixAtomic byte = 0xFE
)

// Misc sub-opcodes (0xFC prefix).
const (
	MiscI32TruncSatF32S uint32 = 0x00
	MiscI32TruncSatF32U uint32 = 0x01
	MiscI32TruncSatF64S uint32 = 0x02
	MiscI32TruncSatF64U uint32 = 0x03
	MiscI64TruncSatF32S uint32 = 0x04
	MiscI64TruncSatF32U uint32 = 0x05
	MiscI64TruncSatF64S uint32 = 0x06
	MiscI64TruncSatF64U uint32 = 0x07
	MiscMemoryInit      uint32 = 0x08
	MiscDataDrop        uint32 = 0x09
	MiscMemoryCopy      uint32 = 0x0A
	MiscMemoryFill      uint32 = 0x0B
	MiscTableInit       uint32 = 0x0C
	MiscElemDrop        uint32 = 0x0D
	MiscTableCopy       uint32 = 0x0E
	MiscTableGrow       uint32 = 0x0F
	MiscTableSize       uint32 = 0x10
	MiscTableFill       uint32 = 0x11
)

// GC sub-opcodes (0xFB prefix).
const (
	GCStructNew        uint32 = 0x00
	GCStructNewDefault uint32 = 0x01
	GCStructGet        uint32 = 0x02
	GCStructGetS       uint32 = 0x03
	GCStructGetU       uint32 = 0x04
	GCStructSet        uint32 = 0x05
	GCArrayNew         uint32 = 0x06
	GCArrayNewDefault  uint32 = 0x07
	GCArrayNewFixed    uint32 = 0x08
	GCArrayNewData     uint32 = 0x09
	GCArrayNewElem     uint32 = 0x0A
	GCArrayGet         uint32 = 0x0B
	GCArrayGetS        uint32 = 0x0C
	GCArrayGetU        uint32 = 0x0D
	GCArraySet         uint32 = 0x0E
	GCArrayLen         uint32 = 0x0F
	GCArrayFill        uint32 = 0x10
	GCArrayCopy        uint32 = 0x11
	GCArrayInitData    uint32 = 0x12
	GCArrayInitElem    uint32 = 0x13
	GCRefTest          uint32 = 0x14
	GCRefTestNull      uint32 = 0x15
	GCRefCast          uint32 = 0x16
	GCRefCastNull      uint32 = 0x17
	GCBrOnCast         uint32 = 0x18
	GCBrOnCastFail     uint32 = 0x19
	GCAnyConvertExtern uint32 = 0x1A
	GCExternConvertAny uint32 = 0x1B
	GCRefI31           uint32 = 0x1C
	GCI31GetS          uint32 = 0x1D
	GCI31GetU          uint32 = 0x1E
)

// Atomic sub-opcodes (0xFE prefix).
const (
	AtomicNotify     uint32 = 0x00
	AtomicWait32     uint32 = 0x01
	AtomicWait64     uint32 = 0x02
	AtomicFence      uint32 = 0x03
	AtomicI32Load    uint32 = 0x10
	AtomicI64Load    uint32 = 0x11
	AtomicI32Load8U  uint32 = 0x12
	AtomicI32Load16U uint32 = 0x13
	AtomicI64Load8U  uint32 = 0x14
	AtomicI64Load16U uint32 = 0x15
	AtomicI64Load32U uint32 = 0x16
	AtomicI32Store   uint32 = 0x17
	AtomicI64Store   uint32 = 0x18
	AtomicI32Store8  uint32 = 0x19
	AtomicI32Store16 uint32 = 0x1A
	AtomicI64Store8  uint32 = 0x1B
	AtomicI64Store16 uint32 = 0x1C
	AtomicI64Store32 uint32 = 0x1D
	// RMW operations occupy 0x1E..0x4E; see the translator's atomic table.
	AtomicRmwFirst uint32 = 0x1E
	AtomicRmwLast  uint32 = 0x4E
)

// Cast flags for br_on_cast and br_on_cast_fail.
const (
	CastFlagsNone       byte = 0x00
	CastFlagsFirstNull  byte = 0x01
	CastFlagsSecondNull byte = 0x02
	CastFlagsBothNull   byte = 0x03
)

// Catch clause kinds for try_table.
const (
	CatchKindCatch       byte = 0x00
	CatchKindCatchRef    byte = 0x01
	CatchKindCatchAll    byte = 0x02
	CatchKindCatchAllRef byte = 0x03
)

// Limits flags.
const (
	LimitsNoMax    byte = 0x00
	LimitsHasMax   byte = 0x01
	LimitsShared   byte = 0x02
	LimitsMemory64 byte = 0x04
)

// Memory page limits.
const (
	PageSize         uint64 = 65536
	MemoryMaxPages32 uint64 = 65536           // 2^16 pages (4 GiB)
	MemoryMaxPages64 uint64 = 281474976710656 // 2^48 pages
)

// Type section encodings.
const (
	FuncTypeByte   byte = 0x60
	StructTypeByte byte = 0x5F
	ArrayTypeByte  byte = 0x5E
	RecTypeByte    byte = 0x4E
	SubTypeByte    byte = 0x50
	SubFinalByte   byte = 0x4F
)

// Field mutability for globals and GC struct/array fields.
const (
	FieldImmutable byte = 0x00
	FieldMutable   byte = 0x01
)

// Element segment flag bits.
const (
	ElemFlagPassive      uint32 = 0x01
	ElemFlagExplicitIdx  uint32 = 0x02
	ElemFlagExpressions  uint32 = 0x04
)
