package translator

import (
	"github.com/wippyai/wasm-engine/bytecode"
	"github.com/wippyai/wasm-engine/types"
)

// opSpec describes a uniform value operation: its bytecode opcode, input
// arity, and result kind (KindVoid when the operation leaves no value).
type opSpec struct {
	op  bytecode.Opcode
	in  uint8
	out types.Kind
}

// coreOps maps single-byte numeric/comparison/conversion opcodes.
var coreOps = map[byte]opSpec{
	0x45: {op: bytecode.OpI32Eqz, in: 1, out: types.KindI32},
	0x46: {op: bytecode.OpI32Eq, in: 2, out: types.KindI32},
	0x47: {op: bytecode.OpI32Ne, in: 2, out: types.KindI32},
	0x48: {op: bytecode.OpI32LtS, in: 2, out: types.KindI32},
	0x49: {op: bytecode.OpI32LtU, in: 2, out: types.KindI32},
	0x4A: {op: bytecode.OpI32GtS, in: 2, out: types.KindI32},
	0x4B: {op: bytecode.OpI32GtU, in: 2, out: types.KindI32},
	0x4C: {op: bytecode.OpI32LeS, in: 2, out: types.KindI32},
	0x4D: {op: bytecode.OpI32LeU, in: 2, out: types.KindI32},
	0x4E: {op: bytecode.OpI32GeS, in: 2, out: types.KindI32},
	0x4F: {op: bytecode.OpI32GeU, in: 2, out: types.KindI32},
	0x50: {op: bytecode.OpI64Eqz, in: 1, out: types.KindI32},
	0x51: {op: bytecode.OpI64Eq, in: 2, out: types.KindI32},
	0x52: {op: bytecode.OpI64Ne, in: 2, out: types.KindI32},
	0x53: {op: bytecode.OpI64LtS, in: 2, out: types.KindI32},
	0x54: {op: bytecode.OpI64LtU, in: 2, out: types.KindI32},
	0x55: {op: bytecode.OpI64GtS, in: 2, out: types.KindI32},
	0x56: {op: bytecode.OpI64GtU, in: 2, out: types.KindI32},
	0x57: {op: bytecode.OpI64LeS, in: 2, out: types.KindI32},
	0x58: {op: bytecode.OpI64LeU, in: 2, out: types.KindI32},
	0x59: {op: bytecode.OpI64GeS, in: 2, out: types.KindI32},
	0x5A: {op: bytecode.OpI64GeU, in: 2, out: types.KindI32},
	0x5B: {op: bytecode.OpF32Eq, in: 2, out: types.KindI32},
	0x5C: {op: bytecode.OpF32Ne, in: 2, out: types.KindI32},
	0x5D: {op: bytecode.OpF32Lt, in: 2, out: types.KindI32},
	0x5E: {op: bytecode.OpF32Gt, in: 2, out: types.KindI32},
	0x5F: {op: bytecode.OpF32Le, in: 2, out: types.KindI32},
	0x60: {op: bytecode.OpF32Ge, in: 2, out: types.KindI32},
	0x61: {op: bytecode.OpF64Eq, in: 2, out: types.KindI32},
	0x62: {op: bytecode.OpF64Ne, in: 2, out: types.KindI32},
	0x63: {op: bytecode.OpF64Lt, in: 2, out: types.KindI32},
	0x64: {op: bytecode.OpF64Gt, in: 2, out: types.KindI32},
	0x65: {op: bytecode.OpF64Le, in: 2, out: types.KindI32},
	0x66: {op: bytecode.OpF64Ge, in: 2, out: types.KindI32},
	0x67: {op: bytecode.OpI32Clz, in: 1, out: types.KindI32},
	0x68: {op: bytecode.OpI32Ctz, in: 1, out: types.KindI32},
	0x69: {op: bytecode.OpI32Popcnt, in: 1, out: types.KindI32},
	0x6A: {op: bytecode.OpI32Add, in: 2, out: types.KindI32},
	0x6B: {op: bytecode.OpI32Sub, in: 2, out: types.KindI32},
	0x6C: {op: bytecode.OpI32Mul, in: 2, out: types.KindI32},
	0x6D: {op: bytecode.OpI32DivS, in: 2, out: types.KindI32},
	0x6E: {op: bytecode.OpI32DivU, in: 2, out: types.KindI32},
	0x6F: {op: bytecode.OpI32RemS, in: 2, out: types.KindI32},
	0x70: {op: bytecode.OpI32RemU, in: 2, out: types.KindI32},
	0x71: {op: bytecode.OpI32And, in: 2, out: types.KindI32},
	0x72: {op: bytecode.OpI32Or, in: 2, out: types.KindI32},
	0x73: {op: bytecode.OpI32Xor, in: 2, out: types.KindI32},
	0x74: {op: bytecode.OpI32Shl, in: 2, out: types.KindI32},
	0x75: {op: bytecode.OpI32ShrS, in: 2, out: types.KindI32},
	0x76: {op: bytecode.OpI32ShrU, in: 2, out: types.KindI32},
	0x77: {op: bytecode.OpI32Rotl, in: 2, out: types.KindI32},
	0x78: {op: bytecode.OpI32Rotr, in: 2, out: types.KindI32},
	0x79: {op: bytecode.OpI64Clz, in: 1, out: types.KindI64},
	0x7A: {op: bytecode.OpI64Ctz, in: 1, out: types.KindI64},
	0x7B: {op: bytecode.OpI64Popcnt, in: 1, out: types.KindI64},
	0x7C: {op: bytecode.OpI64Add, in: 2, out: types.KindI64},
	0x7D: {op: bytecode.OpI64Sub, in: 2, out: types.KindI64},
	0x7E: {op: bytecode.OpI64Mul, in: 2, out: types.KindI64},
	0x7F: {op: bytecode.OpI64DivS, in: 2, out: types.KindI64},
	0x80: {op: bytecode.OpI64DivU, in: 2, out: types.KindI64},
	0x81: {op: bytecode.OpI64RemS, in: 2, out: types.KindI64},
	0x82: {op: bytecode.OpI64RemU, in: 2, out: types.KindI64},
	0x83: {op: bytecode.OpI64And, in: 2, out: types.KindI64},
	0x84: {op: bytecode.OpI64Or, in: 2, out: types.KindI64},
	0x85: {op: bytecode.OpI64Xor, in: 2, out: types.KindI64},
	0x86: {op: bytecode.OpI64Shl, in: 2, out: types.KindI64},
	0x87: {op: bytecode.OpI64ShrS, in: 2, out: types.KindI64},
	0x88: {op: bytecode.OpI64ShrU, in: 2, out: types.KindI64},
	0x89: {op: bytecode.OpI64Rotl, in: 2, out: types.KindI64},
	0x8A: {op: bytecode.OpI64Rotr, in: 2, out: types.KindI64},
	0x8B: {op: bytecode.OpF32Abs, in: 1, out: types.KindF32},
	0x8C: {op: bytecode.OpF32Neg, in: 1, out: types.KindF32},
	0x8D: {op: bytecode.OpF32Ceil, in: 1, out: types.KindF32},
	0x8E: {op: bytecode.OpF32Floor, in: 1, out: types.KindF32},
	0x8F: {op: bytecode.OpF32Trunc, in: 1, out: types.KindF32},
	0x90: {op: bytecode.OpF32Nearest, in: 1, out: types.KindF32},
	0x91: {op: bytecode.OpF32Sqrt, in: 1, out: types.KindF32},
	0x92: {op: bytecode.OpF32Add, in: 2, out: types.KindF32},
	0x93: {op: bytecode.OpF32Sub, in: 2, out: types.KindF32},
	0x94: {op: bytecode.OpF32Mul, in: 2, out: types.KindF32},
	0x95: {op: bytecode.OpF32Div, in: 2, out: types.KindF32},
	0x96: {op: bytecode.OpF32Min, in: 2, out: types.KindF32},
	0x97: {op: bytecode.OpF32Max, in: 2, out: types.KindF32},
	0x98: {op: bytecode.OpF32Copysign, in: 2, out: types.KindF32},
	0x99: {op: bytecode.OpF64Abs, in: 1, out: types.KindF64},
	0x9A: {op: bytecode.OpF64Neg, in: 1, out: types.KindF64},
	0x9B: {op: bytecode.OpF64Ceil, in: 1, out: types.KindF64},
	0x9C: {op: bytecode.OpF64Floor, in: 1, out: types.KindF64},
	0x9D: {op: bytecode.OpF64Trunc, in: 1, out: types.KindF64},
	0x9E: {op: bytecode.OpF64Nearest, in: 1, out: types.KindF64},
	0x9F: {op: bytecode.OpF64Sqrt, in: 1, out: types.KindF64},
	0xA0: {op: bytecode.OpF64Add, in: 2, out: types.KindF64},
	0xA1: {op: bytecode.OpF64Sub, in: 2, out: types.KindF64},
	0xA2: {op: bytecode.OpF64Mul, in: 2, out: types.KindF64},
	0xA3: {op: bytecode.OpF64Div, in: 2, out: types.KindF64},
	0xA4: {op: bytecode.OpF64Min, in: 2, out: types.KindF64},
	0xA5: {op: bytecode.OpF64Max, in: 2, out: types.KindF64},
	0xA6: {op: bytecode.OpF64Copysign, in: 2, out: types.KindF64},
	0xA7: {op: bytecode.OpI32WrapI64, in: 1, out: types.KindI32},
	0xA8: {op: bytecode.OpI32TruncF32S, in: 1, out: types.KindI32},
	0xA9: {op: bytecode.OpI32TruncF32U, in: 1, out: types.KindI32},
	0xAA: {op: bytecode.OpI32TruncF64S, in: 1, out: types.KindI32},
	0xAB: {op: bytecode.OpI32TruncF64U, in: 1, out: types.KindI32},
	0xAC: {op: bytecode.OpI64ExtendI32S, in: 1, out: types.KindI64},
	0xAD: {op: bytecode.OpI64ExtendI32U, in: 1, out: types.KindI64},
	0xAE: {op: bytecode.OpI64TruncF32S, in: 1, out: types.KindI64},
	0xAF: {op: bytecode.OpI64TruncF32U, in: 1, out: types.KindI64},
	0xB0: {op: bytecode.OpI64TruncF64S, in: 1, out: types.KindI64},
	0xB1: {op: bytecode.OpI64TruncF64U, in: 1, out: types.KindI64},
	0xB2: {op: bytecode.OpF32ConvertI32S, in: 1, out: types.KindF32},
	0xB3: {op: bytecode.OpF32ConvertI32U, in: 1, out: types.KindF32},
	0xB4: {op: bytecode.OpF32ConvertI64S, in: 1, out: types.KindF32},
	0xB5: {op: bytecode.OpF32ConvertI64U, in: 1, out: types.KindF32},
	0xB6: {op: bytecode.OpF32DemoteF64, in: 1, out: types.KindF32},
	0xB7: {op: bytecode.OpF64ConvertI32S, in: 1, out: types.KindF64},
	0xB8: {op: bytecode.OpF64ConvertI32U, in: 1, out: types.KindF64},
	0xB9: {op: bytecode.OpF64ConvertI64S, in: 1, out: types.KindF64},
	0xBA: {op: bytecode.OpF64ConvertI64U, in: 1, out: types.KindF64},
	0xBB: {op: bytecode.OpF64PromoteF32, in: 1, out: types.KindF64},
	0xBC: {op: bytecode.OpI32ReinterpretF32, in: 1, out: types.KindI32},
	0xBD: {op: bytecode.OpI64ReinterpretF64, in: 1, out: types.KindI64},
	0xBE: {op: bytecode.OpF32ReinterpretI32, in: 1, out: types.KindF32},
	0xBF: {op: bytecode.OpF64ReinterpretI64, in: 1, out: types.KindF64},
	0xC0: {op: bytecode.OpI32Extend8S, in: 1, out: types.KindI32},
	0xC1: {op: bytecode.OpI32Extend16S, in: 1, out: types.KindI32},
	0xC2: {op: bytecode.OpI64Extend8S, in: 1, out: types.KindI64},
	0xC3: {op: bytecode.OpI64Extend16S, in: 1, out: types.KindI64},
	0xC4: {op: bytecode.OpI64Extend32S, in: 1, out: types.KindI64},
}

// miscOps maps 0xFC-prefixed saturating truncations.
var miscOps = map[uint32]opSpec{
	0x00: {op: bytecode.OpI32TruncSatF32S, in: 1, out: types.KindI32},
	0x01: {op: bytecode.OpI32TruncSatF32U, in: 1, out: types.KindI32},
	0x02: {op: bytecode.OpI32TruncSatF64S, in: 1, out: types.KindI32},
	0x03: {op: bytecode.OpI32TruncSatF64U, in: 1, out: types.KindI32},
	0x04: {op: bytecode.OpI64TruncSatF32S, in: 1, out: types.KindI64},
	0x05: {op: bytecode.OpI64TruncSatF32U, in: 1, out: types.KindI64},
	0x06: {op: bytecode.OpI64TruncSatF64S, in: 1, out: types.KindI64},
	0x07: {op: bytecode.OpI64TruncSatF64U, in: 1, out: types.KindI64},
}

// simdOps maps 0xFD-prefixed vector operations that take only stack
// operands (loads, stores, lane and shuffle forms are lowered separately).
var simdOps = map[uint32]opSpec{
	0x00E: {op: bytecode.OpI8x16Swizzle, in: 2, out: types.KindV128},
	0x00F: {op: bytecode.OpI8x16Splat, in: 1, out: types.KindV128},
	0x010: {op: bytecode.OpI16x8Splat, in: 1, out: types.KindV128},
	0x011: {op: bytecode.OpI32x4Splat, in: 1, out: types.KindV128},
	0x012: {op: bytecode.OpI64x2Splat, in: 1, out: types.KindV128},
	0x013: {op: bytecode.OpF32x4Splat, in: 1, out: types.KindV128},
	0x014: {op: bytecode.OpF64x2Splat, in: 1, out: types.KindV128},
	0x023: {op: bytecode.OpI8x16Eq, in: 2, out: types.KindV128},
	0x024: {op: bytecode.OpI8x16Ne, in: 2, out: types.KindV128},
	0x025: {op: bytecode.OpI8x16LtS, in: 2, out: types.KindV128},
	0x026: {op: bytecode.OpI8x16LtU, in: 2, out: types.KindV128},
	0x027: {op: bytecode.OpI8x16GtS, in: 2, out: types.KindV128},
	0x028: {op: bytecode.OpI8x16GtU, in: 2, out: types.KindV128},
	0x029: {op: bytecode.OpI8x16LeS, in: 2, out: types.KindV128},
	0x02A: {op: bytecode.OpI8x16LeU, in: 2, out: types.KindV128},
	0x02B: {op: bytecode.OpI8x16GeS, in: 2, out: types.KindV128},
	0x02C: {op: bytecode.OpI8x16GeU, in: 2, out: types.KindV128},
	0x02D: {op: bytecode.OpI16x8Eq, in: 2, out: types.KindV128},
	0x02E: {op: bytecode.OpI16x8Ne, in: 2, out: types.KindV128},
	0x02F: {op: bytecode.OpI16x8LtS, in: 2, out: types.KindV128},
	0x030: {op: bytecode.OpI16x8LtU, in: 2, out: types.KindV128},
	0x031: {op: bytecode.OpI16x8GtS, in: 2, out: types.KindV128},
	0x032: {op: bytecode.OpI16x8GtU, in: 2, out: types.KindV128},
	0x033: {op: bytecode.OpI16x8LeS, in: 2, out: types.KindV128},
	0x034: {op: bytecode.OpI16x8LeU, in: 2, out: types.KindV128},
	0x035: {op: bytecode.OpI16x8GeS, in: 2, out: types.KindV128},
	0x036: {op: bytecode.OpI16x8GeU, in: 2, out: types.KindV128},
	0x037: {op: bytecode.OpI32x4Eq, in: 2, out: types.KindV128},
	0x038: {op: bytecode.OpI32x4Ne, in: 2, out: types.KindV128},
	0x039: {op: bytecode.OpI32x4LtS, in: 2, out: types.KindV128},
	0x03A: {op: bytecode.OpI32x4LtU, in: 2, out: types.KindV128},
	0x03B: {op: bytecode.OpI32x4GtS, in: 2, out: types.KindV128},
	0x03C: {op: bytecode.OpI32x4GtU, in: 2, out: types.KindV128},
	0x03D: {op: bytecode.OpI32x4LeS, in: 2, out: types.KindV128},
	0x03E: {op: bytecode.OpI32x4LeU, in: 2, out: types.KindV128},
	0x03F: {op: bytecode.OpI32x4GeS, in: 2, out: types.KindV128},
	0x040: {op: bytecode.OpI32x4GeU, in: 2, out: types.KindV128},
	0x041: {op: bytecode.OpF32x4Eq, in: 2, out: types.KindV128},
	0x042: {op: bytecode.OpF32x4Ne, in: 2, out: types.KindV128},
	0x043: {op: bytecode.OpF32x4Lt, in: 2, out: types.KindV128},
	0x044: {op: bytecode.OpF32x4Gt, in: 2, out: types.KindV128},
	0x045: {op: bytecode.OpF32x4Le, in: 2, out: types.KindV128},
	0x046: {op: bytecode.OpF32x4Ge, in: 2, out: types.KindV128},
	0x047: {op: bytecode.OpF64x2Eq, in: 2, out: types.KindV128},
	0x048: {op: bytecode.OpF64x2Ne, in: 2, out: types.KindV128},
	0x049: {op: bytecode.OpF64x2Lt, in: 2, out: types.KindV128},
	0x04A: {op: bytecode.OpF64x2Gt, in: 2, out: types.KindV128},
	0x04B: {op: bytecode.OpF64x2Le, in: 2, out: types.KindV128},
	0x04C: {op: bytecode.OpF64x2Ge, in: 2, out: types.KindV128},
	0x04D: {op: bytecode.OpV128Not, in: 1, out: types.KindV128},
	0x04E: {op: bytecode.OpV128And, in: 2, out: types.KindV128},
	0x04F: {op: bytecode.OpV128AndNot, in: 2, out: types.KindV128},
	0x050: {op: bytecode.OpV128Or, in: 2, out: types.KindV128},
	0x051: {op: bytecode.OpV128Xor, in: 2, out: types.KindV128},
	0x052: {op: bytecode.OpV128Bitselect, in: 3, out: types.KindV128},
	0x053: {op: bytecode.OpV128AnyTrue, in: 1, out: types.KindI32},
	0x05E: {op: bytecode.OpF32x4DemoteF64x2Zero, in: 1, out: types.KindV128},
	0x05F: {op: bytecode.OpF64x2PromoteLowF32x4, in: 1, out: types.KindV128},
	0x060: {op: bytecode.OpI8x16Abs, in: 1, out: types.KindV128},
	0x061: {op: bytecode.OpI8x16Neg, in: 1, out: types.KindV128},
	0x062: {op: bytecode.OpI8x16Popcnt, in: 1, out: types.KindV128},
	0x063: {op: bytecode.OpI8x16AllTrue, in: 1, out: types.KindI32},
	0x064: {op: bytecode.OpI8x16Bitmask, in: 1, out: types.KindI32},
	0x065: {op: bytecode.OpI8x16NarrowI16x8S, in: 2, out: types.KindV128},
	0x066: {op: bytecode.OpI8x16NarrowI16x8U, in: 2, out: types.KindV128},
	0x067: {op: bytecode.OpF32x4Ceil, in: 1, out: types.KindV128},
	0x068: {op: bytecode.OpF32x4Floor, in: 1, out: types.KindV128},
	0x069: {op: bytecode.OpF32x4Trunc, in: 1, out: types.KindV128},
	0x06A: {op: bytecode.OpF32x4Nearest, in: 1, out: types.KindV128},
	0x06B: {op: bytecode.OpI8x16Shl, in: 2, out: types.KindV128},
	0x06C: {op: bytecode.OpI8x16ShrS, in: 2, out: types.KindV128},
	0x06D: {op: bytecode.OpI8x16ShrU, in: 2, out: types.KindV128},
	0x06E: {op: bytecode.OpI8x16Add, in: 2, out: types.KindV128},
	0x06F: {op: bytecode.OpI8x16AddSatS, in: 2, out: types.KindV128},
	0x070: {op: bytecode.OpI8x16AddSatU, in: 2, out: types.KindV128},
	0x071: {op: bytecode.OpI8x16Sub, in: 2, out: types.KindV128},
	0x072: {op: bytecode.OpI8x16SubSatS, in: 2, out: types.KindV128},
	0x073: {op: bytecode.OpI8x16SubSatU, in: 2, out: types.KindV128},
	0x074: {op: bytecode.OpF64x2Ceil, in: 1, out: types.KindV128},
	0x075: {op: bytecode.OpF64x2Floor, in: 1, out: types.KindV128},
	0x076: {op: bytecode.OpI8x16MinS, in: 2, out: types.KindV128},
	0x077: {op: bytecode.OpI8x16MinU, in: 2, out: types.KindV128},
	0x078: {op: bytecode.OpI8x16MaxS, in: 2, out: types.KindV128},
	0x079: {op: bytecode.OpI8x16MaxU, in: 2, out: types.KindV128},
	0x07A: {op: bytecode.OpF64x2Trunc, in: 1, out: types.KindV128},
	0x07B: {op: bytecode.OpI8x16AvgrU, in: 2, out: types.KindV128},
	0x07C: {op: bytecode.OpI16x8ExtAddPairwiseI8x16S, in: 1, out: types.KindV128},
	0x07D: {op: bytecode.OpI16x8ExtAddPairwiseI8x16U, in: 1, out: types.KindV128},
	0x07E: {op: bytecode.OpI32x4ExtAddPairwiseI16x8S, in: 1, out: types.KindV128},
	0x07F: {op: bytecode.OpI32x4ExtAddPairwiseI16x8U, in: 1, out: types.KindV128},
	0x080: {op: bytecode.OpI16x8Abs, in: 1, out: types.KindV128},
	0x081: {op: bytecode.OpI16x8Neg, in: 1, out: types.KindV128},
	0x082: {op: bytecode.OpI16x8Q15MulrSatS, in: 2, out: types.KindV128},
	0x083: {op: bytecode.OpI16x8AllTrue, in: 1, out: types.KindI32},
	0x084: {op: bytecode.OpI16x8Bitmask, in: 1, out: types.KindI32},
	0x085: {op: bytecode.OpI16x8NarrowI32x4S, in: 2, out: types.KindV128},
	0x086: {op: bytecode.OpI16x8NarrowI32x4U, in: 2, out: types.KindV128},
	0x087: {op: bytecode.OpI16x8ExtendLowI8x16S, in: 1, out: types.KindV128},
	0x088: {op: bytecode.OpI16x8ExtendHighI8x16S, in: 1, out: types.KindV128},
	0x089: {op: bytecode.OpI16x8ExtendLowI8x16U, in: 1, out: types.KindV128},
	0x08A: {op: bytecode.OpI16x8ExtendHighI8x16U, in: 1, out: types.KindV128},
	0x08B: {op: bytecode.OpI16x8Shl, in: 2, out: types.KindV128},
	0x08C: {op: bytecode.OpI16x8ShrS, in: 2, out: types.KindV128},
	0x08D: {op: bytecode.OpI16x8ShrU, in: 2, out: types.KindV128},
	0x08E: {op: bytecode.OpI16x8Add, in: 2, out: types.KindV128},
	0x08F: {op: bytecode.OpI16x8AddSatS, in: 2, out: types.KindV128},
	0x090: {op: bytecode.OpI16x8AddSatU, in: 2, out: types.KindV128},
	0x091: {op: bytecode.OpI16x8Sub, in: 2, out: types.KindV128},
	0x092: {op: bytecode.OpI16x8SubSatS, in: 2, out: types.KindV128},
	0x093: {op: bytecode.OpI16x8SubSatU, in: 2, out: types.KindV128},
	0x094: {op: bytecode.OpF64x2Nearest, in: 1, out: types.KindV128},
	0x095: {op: bytecode.OpI16x8Mul, in: 2, out: types.KindV128},
	0x096: {op: bytecode.OpI16x8MinS, in: 2, out: types.KindV128},
	0x097: {op: bytecode.OpI16x8MinU, in: 2, out: types.KindV128},
	0x098: {op: bytecode.OpI16x8MaxS, in: 2, out: types.KindV128},
	0x099: {op: bytecode.OpI16x8MaxU, in: 2, out: types.KindV128},
	0x09B: {op: bytecode.OpI16x8AvgrU, in: 2, out: types.KindV128},
	0x09C: {op: bytecode.OpI16x8ExtMulLowI8x16S, in: 2, out: types.KindV128},
	0x09D: {op: bytecode.OpI16x8ExtMulHighI8x16S, in: 2, out: types.KindV128},
	0x09E: {op: bytecode.OpI16x8ExtMulLowI8x16U, in: 2, out: types.KindV128},
	0x09F: {op: bytecode.OpI16x8ExtMulHighI8x16U, in: 2, out: types.KindV128},
	0x0A0: {op: bytecode.OpI32x4Abs, in: 1, out: types.KindV128},
	0x0A1: {op: bytecode.OpI32x4Neg, in: 1, out: types.KindV128},
	0x0A3: {op: bytecode.OpI32x4AllTrue, in: 1, out: types.KindI32},
	0x0A4: {op: bytecode.OpI32x4Bitmask, in: 1, out: types.KindI32},
	0x0A7: {op: bytecode.OpI32x4ExtendLowI16x8S, in: 1, out: types.KindV128},
	0x0A8: {op: bytecode.OpI32x4ExtendHighI16x8S, in: 1, out: types.KindV128},
	0x0A9: {op: bytecode.OpI32x4ExtendLowI16x8U, in: 1, out: types.KindV128},
	0x0AA: {op: bytecode.OpI32x4ExtendHighI16x8U, in: 1, out: types.KindV128},
	0x0AB: {op: bytecode.OpI32x4Shl, in: 2, out: types.KindV128},
	0x0AC: {op: bytecode.OpI32x4ShrS, in: 2, out: types.KindV128},
	0x0AD: {op: bytecode.OpI32x4ShrU, in: 2, out: types.KindV128},
	0x0AE: {op: bytecode.OpI32x4Add, in: 2, out: types.KindV128},
	0x0B1: {op: bytecode.OpI32x4Sub, in: 2, out: types.KindV128},
	0x0B5: {op: bytecode.OpI32x4Mul, in: 2, out: types.KindV128},
	0x0B6: {op: bytecode.OpI32x4MinS, in: 2, out: types.KindV128},
	0x0B7: {op: bytecode.OpI32x4MinU, in: 2, out: types.KindV128},
	0x0B8: {op: bytecode.OpI32x4MaxS, in: 2, out: types.KindV128},
	0x0B9: {op: bytecode.OpI32x4MaxU, in: 2, out: types.KindV128},
	0x0BA: {op: bytecode.OpI32x4DotI16x8S, in: 2, out: types.KindV128},
	0x0BC: {op: bytecode.OpI32x4ExtMulLowI16x8S, in: 2, out: types.KindV128},
	0x0BD: {op: bytecode.OpI32x4ExtMulHighI16x8S, in: 2, out: types.KindV128},
	0x0BE: {op: bytecode.OpI32x4ExtMulLowI16x8U, in: 2, out: types.KindV128},
	0x0BF: {op: bytecode.OpI32x4ExtMulHighI16x8U, in: 2, out: types.KindV128},
	0x0C0: {op: bytecode.OpI64x2Abs, in: 1, out: types.KindV128},
	0x0C1: {op: bytecode.OpI64x2Neg, in: 1, out: types.KindV128},
	0x0C3: {op: bytecode.OpI64x2AllTrue, in: 1, out: types.KindI32},
	0x0C4: {op: bytecode.OpI64x2Bitmask, in: 1, out: types.KindI32},
	0x0C7: {op: bytecode.OpI64x2ExtendLowI32x4S, in: 1, out: types.KindV128},
	0x0C8: {op: bytecode.OpI64x2ExtendHighI32x4S, in: 1, out: types.KindV128},
	0x0C9: {op: bytecode.OpI64x2ExtendLowI32x4U, in: 1, out: types.KindV128},
	0x0CA: {op: bytecode.OpI64x2ExtendHighI32x4U, in: 1, out: types.KindV128},
	0x0CB: {op: bytecode.OpI64x2Shl, in: 2, out: types.KindV128},
	0x0CC: {op: bytecode.OpI64x2ShrS, in: 2, out: types.KindV128},
	0x0CD: {op: bytecode.OpI64x2ShrU, in: 2, out: types.KindV128},
	0x0CE: {op: bytecode.OpI64x2Add, in: 2, out: types.KindV128},
	0x0D1: {op: bytecode.OpI64x2Sub, in: 2, out: types.KindV128},
	0x0D5: {op: bytecode.OpI64x2Mul, in: 2, out: types.KindV128},
	0x0D6: {op: bytecode.OpI64x2Eq, in: 2, out: types.KindV128},
	0x0D7: {op: bytecode.OpI64x2Ne, in: 2, out: types.KindV128},
	0x0D8: {op: bytecode.OpI64x2LtS, in: 2, out: types.KindV128},
	0x0D9: {op: bytecode.OpI64x2GtS, in: 2, out: types.KindV128},
	0x0DA: {op: bytecode.OpI64x2LeS, in: 2, out: types.KindV128},
	0x0DB: {op: bytecode.OpI64x2GeS, in: 2, out: types.KindV128},
	0x0DC: {op: bytecode.OpI64x2ExtMulLowI32x4S, in: 2, out: types.KindV128},
	0x0DD: {op: bytecode.OpI64x2ExtMulHighI32x4S, in: 2, out: types.KindV128},
	0x0DE: {op: bytecode.OpI64x2ExtMulLowI32x4U, in: 2, out: types.KindV128},
	0x0DF: {op: bytecode.OpI64x2ExtMulHighI32x4U, in: 2, out: types.KindV128},
	0x0E0: {op: bytecode.OpF32x4Abs, in: 1, out: types.KindV128},
	0x0E1: {op: bytecode.OpF32x4Neg, in: 1, out: types.KindV128},
	0x0E3: {op: bytecode.OpF32x4Sqrt, in: 1, out: types.KindV128},
	0x0E4: {op: bytecode.OpF32x4Add, in: 2, out: types.KindV128},
	0x0E5: {op: bytecode.OpF32x4Sub, in: 2, out: types.KindV128},
	0x0E6: {op: bytecode.OpF32x4Mul, in: 2, out: types.KindV128},
	0x0E7: {op: bytecode.OpF32x4Div, in: 2, out: types.KindV128},
	0x0E8: {op: bytecode.OpF32x4Min, in: 2, out: types.KindV128},
	0x0E9: {op: bytecode.OpF32x4Max, in: 2, out: types.KindV128},
	0x0EA: {op: bytecode.OpF32x4PMin, in: 2, out: types.KindV128},
	0x0EB: {op: bytecode.OpF32x4PMax, in: 2, out: types.KindV128},
	0x0EC: {op: bytecode.OpF64x2Abs, in: 1, out: types.KindV128},
	0x0ED: {op: bytecode.OpF64x2Neg, in: 1, out: types.KindV128},
	0x0EF: {op: bytecode.OpF64x2Sqrt, in: 1, out: types.KindV128},
	0x0F0: {op: bytecode.OpF64x2Add, in: 2, out: types.KindV128},
	0x0F1: {op: bytecode.OpF64x2Sub, in: 2, out: types.KindV128},
	0x0F2: {op: bytecode.OpF64x2Mul, in: 2, out: types.KindV128},
	0x0F3: {op: bytecode.OpF64x2Div, in: 2, out: types.KindV128},
	0x0F4: {op: bytecode.OpF64x2Min, in: 2, out: types.KindV128},
	0x0F5: {op: bytecode.OpF64x2Max, in: 2, out: types.KindV128},
	0x0F6: {op: bytecode.OpF64x2PMin, in: 2, out: types.KindV128},
	0x0F7: {op: bytecode.OpF64x2PMax, in: 2, out: types.KindV128},
	0x0F8: {op: bytecode.OpI32x4TruncSatF32x4S, in: 1, out: types.KindV128},
	0x0F9: {op: bytecode.OpI32x4TruncSatF32x4U, in: 1, out: types.KindV128},
	0x0FA: {op: bytecode.OpF32x4ConvertI32x4S, in: 1, out: types.KindV128},
	0x0FB: {op: bytecode.OpF32x4ConvertI32x4U, in: 1, out: types.KindV128},
	0x0FC: {op: bytecode.OpI32x4TruncSatF64x2SZero, in: 1, out: types.KindV128},
	0x0FD: {op: bytecode.OpI32x4TruncSatF64x2UZero, in: 1, out: types.KindV128},
	0x0FE: {op: bytecode.OpF64x2ConvertLowI32x4S, in: 1, out: types.KindV128},
	0x0FF: {op: bytecode.OpF64x2ConvertLowI32x4U, in: 1, out: types.KindV128},
	0x100: {op: bytecode.OpI8x16RelaxedSwizzle, in: 2, out: types.KindV128},
	0x101: {op: bytecode.OpI32x4RelaxedTruncF32x4S, in: 1, out: types.KindV128},
	0x102: {op: bytecode.OpI32x4RelaxedTruncF32x4U, in: 1, out: types.KindV128},
	0x103: {op: bytecode.OpI32x4RelaxedTruncF64x2SZero, in: 1, out: types.KindV128},
	0x104: {op: bytecode.OpI32x4RelaxedTruncF64x2UZero, in: 1, out: types.KindV128},
	0x105: {op: bytecode.OpF32x4RelaxedMadd, in: 3, out: types.KindV128},
	0x106: {op: bytecode.OpF32x4RelaxedNmadd, in: 3, out: types.KindV128},
	0x107: {op: bytecode.OpF64x2RelaxedMadd, in: 3, out: types.KindV128},
	0x108: {op: bytecode.OpF64x2RelaxedNmadd, in: 3, out: types.KindV128},
	0x109: {op: bytecode.OpI8x16RelaxedLaneSelect, in: 3, out: types.KindV128},
	0x10A: {op: bytecode.OpI16x8RelaxedLaneSelect, in: 3, out: types.KindV128},
	0x10B: {op: bytecode.OpI32x4RelaxedLaneSelect, in: 3, out: types.KindV128},
	0x10C: {op: bytecode.OpI64x2RelaxedLaneSelect, in: 3, out: types.KindV128},
	0x10D: {op: bytecode.OpF32x4RelaxedMin, in: 2, out: types.KindV128},
	0x10E: {op: bytecode.OpF32x4RelaxedMax, in: 2, out: types.KindV128},
	0x10F: {op: bytecode.OpF64x2RelaxedMin, in: 2, out: types.KindV128},
	0x110: {op: bytecode.OpF64x2RelaxedMax, in: 2, out: types.KindV128},
	0x111: {op: bytecode.OpI16x8RelaxedQ15MulrS, in: 2, out: types.KindV128},
	0x112: {op: bytecode.OpI16x8RelaxedDotI8x16I7x16S, in: 2, out: types.KindV128},
	0x113: {op: bytecode.OpI32x4RelaxedDotI8x16I7x16AddS, in: 3, out: types.KindV128},
}

// atomicRmwOps maps 0xFE-prefixed read-modify-write operations; the
// cmpxchg forms take three operands, the rest two.
var atomicRmwOps = map[uint32]bytecode.Opcode{
	0x1E: bytecode.OpI32AtomicRmwAdd,
	0x1F: bytecode.OpI64AtomicRmwAdd,
	0x20: bytecode.OpI32AtomicRmw8AddU,
	0x21: bytecode.OpI32AtomicRmw16AddU,
	0x22: bytecode.OpI64AtomicRmw8AddU,
	0x23: bytecode.OpI64AtomicRmw16AddU,
	0x24: bytecode.OpI64AtomicRmw32AddU,
	0x25: bytecode.OpI32AtomicRmwSub,
	0x26: bytecode.OpI64AtomicRmwSub,
	0x27: bytecode.OpI32AtomicRmw8SubU,
	0x28: bytecode.OpI32AtomicRmw16SubU,
	0x29: bytecode.OpI64AtomicRmw8SubU,
	0x2A: bytecode.OpI64AtomicRmw16SubU,
	0x2B: bytecode.OpI64AtomicRmw32SubU,
	0x2C: bytecode.OpI32AtomicRmwAnd,
	0x2D: bytecode.OpI64AtomicRmwAnd,
	0x2E: bytecode.OpI32AtomicRmw8AndU,
	0x2F: bytecode.OpI32AtomicRmw16AndU,
	0x30: bytecode.OpI64AtomicRmw8AndU,
	0x31: bytecode.OpI64AtomicRmw16AndU,
	0x32: bytecode.OpI64AtomicRmw32AndU,
	0x33: bytecode.OpI32AtomicRmwOr,
	0x34: bytecode.OpI64AtomicRmwOr,
	0x35: bytecode.OpI32AtomicRmw8OrU,
	0x36: bytecode.OpI32AtomicRmw16OrU,
	0x37: bytecode.OpI64AtomicRmw8OrU,
	0x38: bytecode.OpI64AtomicRmw16OrU,
	0x39: bytecode.OpI64AtomicRmw32OrU,
	0x3A: bytecode.OpI32AtomicRmwXor,
	0x3B: bytecode.OpI64AtomicRmwXor,
	0x3C: bytecode.OpI32AtomicRmw8XorU,
	0x3D: bytecode.OpI32AtomicRmw16XorU,
	0x3E: bytecode.OpI64AtomicRmw8XorU,
	0x3F: bytecode.OpI64AtomicRmw16XorU,
	0x40: bytecode.OpI64AtomicRmw32XorU,
	0x41: bytecode.OpI32AtomicRmwXchg,
	0x42: bytecode.OpI64AtomicRmwXchg,
	0x43: bytecode.OpI32AtomicRmw8XchgU,
	0x44: bytecode.OpI32AtomicRmw16XchgU,
	0x45: bytecode.OpI64AtomicRmw8XchgU,
	0x46: bytecode.OpI64AtomicRmw16XchgU,
	0x47: bytecode.OpI64AtomicRmw32XchgU,
	0x48: bytecode.OpI32AtomicRmwCmpxchg,
	0x49: bytecode.OpI64AtomicRmwCmpxchg,
	0x4A: bytecode.OpI32AtomicRmw8CmpxchgU,
	0x4B: bytecode.OpI32AtomicRmw16CmpxchgU,
	0x4C: bytecode.OpI64AtomicRmw8CmpxchgU,
	0x4D: bytecode.OpI64AtomicRmw16CmpxchgU,
	0x4E: bytecode.OpI64AtomicRmw32CmpxchgU,
}
