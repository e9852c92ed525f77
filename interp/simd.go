package interp

import (
	"math"
	"math/bits"

	"github.com/wippyai/wasm-engine/bytecode"
)

// Vector helpers compute into a staging buffer so an output may alias an
// input without tearing.

func vbin8(dst, a, b []byte, f func(x, y byte) byte) {
	var t [16]byte
	for i := 0; i < 16; i++ {
		t[i] = f(a[i], b[i])
	}
	copy(dst, t[:])
}

func vbin16(dst, a, b []byte, f func(x, y uint16) uint16) {
	var t [16]byte
	for i := 0; i < 8; i++ {
		le.PutUint16(t[2*i:], f(le.Uint16(a[2*i:]), le.Uint16(b[2*i:])))
	}
	copy(dst, t[:])
}

func vbin32(dst, a, b []byte, f func(x, y uint32) uint32) {
	var t [16]byte
	for i := 0; i < 4; i++ {
		le.PutUint32(t[4*i:], f(le.Uint32(a[4*i:]), le.Uint32(b[4*i:])))
	}
	copy(dst, t[:])
}

func vbin64(dst, a, b []byte, f func(x, y uint64) uint64) {
	var t [16]byte
	le.PutUint64(t[:], f(le.Uint64(a), le.Uint64(b)))
	le.PutUint64(t[8:], f(le.Uint64(a[8:]), le.Uint64(b[8:])))
	copy(dst, t[:])
}

func vbinf32(dst, a, b []byte, f func(x, y float32) float32) {
	vbin32(dst, a, b, func(x, y uint32) uint32 {
		return math.Float32bits(f(math.Float32frombits(x), math.Float32frombits(y)))
	})
}

func vbinf64(dst, a, b []byte, f func(x, y float64) float64) {
	vbin64(dst, a, b, func(x, y uint64) uint64 {
		return math.Float64bits(f(math.Float64frombits(x), math.Float64frombits(y)))
	})
}

func vun8(dst, a []byte, f func(x byte) byte) {
	var t [16]byte
	for i := 0; i < 16; i++ {
		t[i] = f(a[i])
	}
	copy(dst, t[:])
}

func vun16(dst, a []byte, f func(x uint16) uint16) {
	var t [16]byte
	for i := 0; i < 8; i++ {
		le.PutUint16(t[2*i:], f(le.Uint16(a[2*i:])))
	}
	copy(dst, t[:])
}

func vun32(dst, a []byte, f func(x uint32) uint32) {
	var t [16]byte
	for i := 0; i < 4; i++ {
		le.PutUint32(t[4*i:], f(le.Uint32(a[4*i:])))
	}
	copy(dst, t[:])
}

func vun64(dst, a []byte, f func(x uint64) uint64) {
	var t [16]byte
	le.PutUint64(t[:], f(le.Uint64(a)))
	le.PutUint64(t[8:], f(le.Uint64(a[8:])))
	copy(dst, t[:])
}

func vunf32(dst, a []byte, f func(x float32) float32) {
	vun32(dst, a, func(x uint32) uint32 {
		return math.Float32bits(f(math.Float32frombits(x)))
	})
}

func vunf64(dst, a []byte, f func(x float64) float64) {
	vun64(dst, a, func(x uint64) uint64 {
		return math.Float64bits(f(math.Float64frombits(x)))
	})
}

func mask8(b bool) byte {
	if b {
		return 0xFF
	}
	return 0
}

func mask16(b bool) uint16 {
	if b {
		return 0xFFFF
	}
	return 0
}

func mask32(b bool) uint32 {
	if b {
		return 0xFFFFFFFF
	}
	return 0
}

func mask64(b bool) uint64 {
	if b {
		return ^uint64(0)
	}
	return 0
}

// Integer saturation helpers.

func sat8s(v int32) byte {
	if v < math.MinInt8 {
		v = math.MinInt8
	} else if v > math.MaxInt8 {
		v = math.MaxInt8
	}
	return byte(int8(v))
}

func sat8u(v int32) byte {
	if v < 0 {
		v = 0
	} else if v > math.MaxUint8 {
		v = math.MaxUint8
	}
	return byte(v)
}

func sat16s(v int32) uint16 {
	if v < math.MinInt16 {
		v = math.MinInt16
	} else if v > math.MaxInt16 {
		v = math.MaxInt16
	}
	return uint16(int16(v))
}

func sat16u(v int32) uint16 {
	if v < 0 {
		v = 0
	} else if v > math.MaxUint16 {
		v = math.MaxUint16
	}
	return uint16(v)
}

func i8(x byte) int32    { return int32(int8(x)) }
func i16v(x uint16) int32 { return int32(int16(x)) }

// execSIMD handles vector value operations. Memory forms live in
// execMemory.
func (ec *ExecutionContext) execSIMD(op bytecode.Opcode, in bytecode.Instr, fr frameView) bool {
	o := func(at uint32) int { return fr.abs(in.Off(at)) }
	v := func(at uint32) []byte { return fr.v128(fr.abs(in.Off(at))) }

	switch op {
	// splats
	case bytecode.OpI8x16Splat:
		x := byte(fr.u32(o(2)))
		vun8(v(4), v(4), func(byte) byte { return x })
	case bytecode.OpI16x8Splat:
		x := uint16(fr.u32(o(2)))
		vun16(v(4), v(4), func(uint16) uint16 { return x })
	case bytecode.OpI32x4Splat:
		x := fr.u32(o(2))
		vun32(v(4), v(4), func(uint32) uint32 { return x })
	case bytecode.OpI64x2Splat:
		x := fr.u64(o(2))
		vun64(v(4), v(4), func(uint64) uint64 { return x })
	case bytecode.OpF32x4Splat:
		x := fr.u32(o(2))
		vun32(v(4), v(4), func(uint32) uint32 { return x })
	case bytecode.OpF64x2Splat:
		x := fr.u64(o(2))
		vun64(v(4), v(4), func(uint64) uint64 { return x })

	// lane access
	case bytecode.OpI8x16ExtractLaneS:
		fr.setI32(o(4), int32(int8(v(2)[in.Lane()])))
	case bytecode.OpI8x16ExtractLaneU:
		fr.setU32(o(4), uint32(v(2)[in.Lane()]))
	case bytecode.OpI16x8ExtractLaneS:
		fr.setI32(o(4), int32(int16(le.Uint16(v(2)[2*in.Lane():]))))
	case bytecode.OpI16x8ExtractLaneU:
		fr.setU32(o(4), uint32(le.Uint16(v(2)[2*in.Lane():])))
	case bytecode.OpI32x4ExtractLane:
		fr.setU32(o(4), le.Uint32(v(2)[4*in.Lane():]))
	case bytecode.OpI64x2ExtractLane:
		fr.setU64(o(4), le.Uint64(v(2)[8*in.Lane():]))
	case bytecode.OpF32x4ExtractLane:
		fr.setU32(o(4), le.Uint32(v(2)[4*in.Lane():]))
	case bytecode.OpF64x2ExtractLane:
		fr.setU64(o(4), le.Uint64(v(2)[8*in.Lane():]))
	case bytecode.OpI8x16ReplaceLane:
		dst := v(6)
		copy(dst, v(2))
		dst[in.Lane()] = byte(fr.u32(o(4)))
	case bytecode.OpI16x8ReplaceLane:
		dst := v(6)
		copy(dst, v(2))
		le.PutUint16(dst[2*in.Lane():], uint16(fr.u32(o(4))))
	case bytecode.OpI32x4ReplaceLane, bytecode.OpF32x4ReplaceLane:
		dst := v(6)
		copy(dst, v(2))
		le.PutUint32(dst[4*in.Lane():], fr.u32(o(4)))
	case bytecode.OpI64x2ReplaceLane, bytecode.OpF64x2ReplaceLane:
		dst := v(6)
		copy(dst, v(2))
		le.PutUint64(dst[8*in.Lane():], fr.u64(o(4)))

	case bytecode.OpI8x16Shuffle:
		a, b := v(2), v(4)
		lanes := in.Bytes(8, 16)
		var t [16]byte
		for i, l := range lanes {
			if l < 16 {
				t[i] = a[l]
			} else {
				t[i] = b[l-16]
			}
		}
		copy(v(6), t[:])
	case bytecode.OpI8x16Swizzle, bytecode.OpI8x16RelaxedSwizzle:
		a, s := v(2), v(4)
		var t [16]byte
		for i := 0; i < 16; i++ {
			if s[i] < 16 {
				t[i] = a[s[i]]
			}
		}
		copy(v(6), t[:])

	// v128 bitwise
	case bytecode.OpV128And:
		vbin64(v(6), v(2), v(4), func(x, y uint64) uint64 { return x & y })
	case bytecode.OpV128Or:
		vbin64(v(6), v(2), v(4), func(x, y uint64) uint64 { return x | y })
	case bytecode.OpV128Xor:
		vbin64(v(6), v(2), v(4), func(x, y uint64) uint64 { return x ^ y })
	case bytecode.OpV128AndNot:
		vbin64(v(6), v(2), v(4), func(x, y uint64) uint64 { return x &^ y })
	case bytecode.OpV128Not:
		vun64(v(4), v(2), func(x uint64) uint64 { return ^x })
	case bytecode.OpV128AnyTrue:
		a := v(2)
		fr.setBool(o(4), le.Uint64(a)|le.Uint64(a[8:]) != 0)
	case bytecode.OpV128Bitselect,
		bytecode.OpI8x16RelaxedLaneSelect, bytecode.OpI16x8RelaxedLaneSelect,
		bytecode.OpI32x4RelaxedLaneSelect, bytecode.OpI64x2RelaxedLaneSelect:
		a, b, c := v(2), v(4), v(6)
		var t [16]byte
		for i := 0; i < 16; i++ {
			t[i] = a[i]&c[i] | b[i]&^c[i]
		}
		copy(v(8), t[:])

	default:
		return ec.execSIMDInt(op, in, fr) || ec.execSIMDFloat(op, in, fr)
	}
	return true
}

// execSIMDInt covers the integer lane families.
func (ec *ExecutionContext) execSIMDInt(op bytecode.Opcode, in bytecode.Instr, fr frameView) bool {
	o := func(at uint32) int { return fr.abs(in.Off(at)) }
	v := func(at uint32) []byte { return fr.v128(fr.abs(in.Off(at))) }

	switch op {
	// ---- i8x16
	case bytecode.OpI8x16Add:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return x + y })
	case bytecode.OpI8x16Sub:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return x - y })
	case bytecode.OpI8x16AddSatS:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return sat8s(i8(x) + i8(y)) })
	case bytecode.OpI8x16AddSatU:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return sat8u(int32(x) + int32(y)) })
	case bytecode.OpI8x16SubSatS:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return sat8s(i8(x) - i8(y)) })
	case bytecode.OpI8x16SubSatU:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return sat8u(int32(x) - int32(y)) })
	case bytecode.OpI8x16MinS:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte {
			if i8(x) < i8(y) {
				return x
			}
			return y
		})
	case bytecode.OpI8x16MinU:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte {
			if x < y {
				return x
			}
			return y
		})
	case bytecode.OpI8x16MaxS:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte {
			if i8(x) > i8(y) {
				return x
			}
			return y
		})
	case bytecode.OpI8x16MaxU:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte {
			if x > y {
				return x
			}
			return y
		})
	case bytecode.OpI8x16AvgrU:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return byte((int32(x) + int32(y) + 1) / 2) })
	case bytecode.OpI8x16Eq:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return mask8(x == y) })
	case bytecode.OpI8x16Ne:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return mask8(x != y) })
	case bytecode.OpI8x16LtS:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return mask8(i8(x) < i8(y)) })
	case bytecode.OpI8x16LtU:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return mask8(x < y) })
	case bytecode.OpI8x16LeS:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return mask8(i8(x) <= i8(y)) })
	case bytecode.OpI8x16LeU:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return mask8(x <= y) })
	case bytecode.OpI8x16GtS:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return mask8(i8(x) > i8(y)) })
	case bytecode.OpI8x16GtU:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return mask8(x > y) })
	case bytecode.OpI8x16GeS:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return mask8(i8(x) >= i8(y)) })
	case bytecode.OpI8x16GeU:
		vbin8(v(6), v(2), v(4), func(x, y byte) byte { return mask8(x >= y) })
	case bytecode.OpI8x16NarrowI16x8S, bytecode.OpI8x16NarrowI16x8U:
		a, b := v(2), v(4)
		var t [16]byte
		for i := 0; i < 8; i++ {
			x, y := i16v(le.Uint16(a[2*i:])), i16v(le.Uint16(b[2*i:]))
			if op == bytecode.OpI8x16NarrowI16x8S {
				t[i], t[i+8] = sat8s(x), sat8s(y)
			} else {
				t[i], t[i+8] = sat8u(x), sat8u(y)
			}
		}
		copy(v(6), t[:])
	case bytecode.OpI8x16Shl:
		s := fr.u32(o(4)) & 7
		vun8(v(6), v(2), func(x byte) byte { return x << s })
	case bytecode.OpI8x16ShrS:
		s := fr.u32(o(4)) & 7
		vun8(v(6), v(2), func(x byte) byte { return byte(int8(x) >> s) })
	case bytecode.OpI8x16ShrU:
		s := fr.u32(o(4)) & 7
		vun8(v(6), v(2), func(x byte) byte { return x >> s })
	case bytecode.OpI8x16Abs:
		vun8(v(4), v(2), func(x byte) byte {
			if i8(x) < 0 {
				return byte(-int8(x))
			}
			return x
		})
	case bytecode.OpI8x16Neg:
		vun8(v(4), v(2), func(x byte) byte { return byte(-int8(x)) })
	case bytecode.OpI8x16Popcnt:
		vun8(v(4), v(2), func(x byte) byte { return byte(bits.OnesCount8(x)) })
	case bytecode.OpI8x16AllTrue:
		a := v(2)
		all := true
		for i := 0; i < 16; i++ {
			all = all && a[i] != 0
		}
		fr.setBool(o(4), all)
	case bytecode.OpI8x16Bitmask:
		a := v(2)
		var m uint32
		for i := 0; i < 16; i++ {
			if a[i]&0x80 != 0 {
				m |= 1 << i
			}
		}
		fr.setU32(o(4), m)

	// ---- i16x8
	case bytecode.OpI16x8Add:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return x + y })
	case bytecode.OpI16x8Sub:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return x - y })
	case bytecode.OpI16x8Mul:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return x * y })
	case bytecode.OpI16x8AddSatS:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return sat16s(i16v(x) + i16v(y)) })
	case bytecode.OpI16x8AddSatU:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return sat16u(int32(x) + int32(y)) })
	case bytecode.OpI16x8SubSatS:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return sat16s(i16v(x) - i16v(y)) })
	case bytecode.OpI16x8SubSatU:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return sat16u(int32(x) - int32(y)) })
	case bytecode.OpI16x8MinS:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 {
			if i16v(x) < i16v(y) {
				return x
			}
			return y
		})
	case bytecode.OpI16x8MinU:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 {
			if x < y {
				return x
			}
			return y
		})
	case bytecode.OpI16x8MaxS:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 {
			if i16v(x) > i16v(y) {
				return x
			}
			return y
		})
	case bytecode.OpI16x8MaxU:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 {
			if x > y {
				return x
			}
			return y
		})
	case bytecode.OpI16x8AvgrU:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return uint16((int32(x) + int32(y) + 1) / 2) })
	case bytecode.OpI16x8Q15MulrSatS, bytecode.OpI16x8RelaxedQ15MulrS:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 {
			return sat16s(int32((int64(i16v(x))*int64(i16v(y)) + 0x4000) >> 15))
		})
	case bytecode.OpI16x8Eq:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return mask16(x == y) })
	case bytecode.OpI16x8Ne:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return mask16(x != y) })
	case bytecode.OpI16x8LtS:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return mask16(i16v(x) < i16v(y)) })
	case bytecode.OpI16x8LtU:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return mask16(x < y) })
	case bytecode.OpI16x8LeS:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return mask16(i16v(x) <= i16v(y)) })
	case bytecode.OpI16x8LeU:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return mask16(x <= y) })
	case bytecode.OpI16x8GtS:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return mask16(i16v(x) > i16v(y)) })
	case bytecode.OpI16x8GtU:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return mask16(x > y) })
	case bytecode.OpI16x8GeS:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return mask16(i16v(x) >= i16v(y)) })
	case bytecode.OpI16x8GeU:
		vbin16(v(6), v(2), v(4), func(x, y uint16) uint16 { return mask16(x >= y) })
	case bytecode.OpI16x8NarrowI32x4S, bytecode.OpI16x8NarrowI32x4U:
		a, b := v(2), v(4)
		var t [16]byte
		for i := 0; i < 4; i++ {
			x, y := int32(le.Uint32(a[4*i:])), int32(le.Uint32(b[4*i:]))
			if op == bytecode.OpI16x8NarrowI32x4S {
				le.PutUint16(t[2*i:], sat16s(x))
				le.PutUint16(t[2*i+8:], sat16s(y))
			} else {
				le.PutUint16(t[2*i:], sat16u(x))
				le.PutUint16(t[2*i+8:], sat16u(y))
			}
		}
		copy(v(6), t[:])
	case bytecode.OpI16x8ExtMulLowI8x16S, bytecode.OpI16x8ExtMulHighI8x16S,
		bytecode.OpI16x8ExtMulLowI8x16U, bytecode.OpI16x8ExtMulHighI8x16U:
		a, b := v(2), v(4)
		base := 0
		if op == bytecode.OpI16x8ExtMulHighI8x16S || op == bytecode.OpI16x8ExtMulHighI8x16U {
			base = 8
		}
		signed := op == bytecode.OpI16x8ExtMulLowI8x16S || op == bytecode.OpI16x8ExtMulHighI8x16S
		var t [16]byte
		for i := 0; i < 8; i++ {
			var p int32
			if signed {
				p = i8(a[base+i]) * i8(b[base+i])
			} else {
				p = int32(a[base+i]) * int32(b[base+i])
			}
			le.PutUint16(t[2*i:], uint16(p))
		}
		copy(v(6), t[:])
	case bytecode.OpI16x8Shl:
		s := fr.u32(o(4)) & 15
		vun16(v(6), v(2), func(x uint16) uint16 { return x << s })
	case bytecode.OpI16x8ShrS:
		s := fr.u32(o(4)) & 15
		vun16(v(6), v(2), func(x uint16) uint16 { return uint16(int16(x) >> s) })
	case bytecode.OpI16x8ShrU:
		s := fr.u32(o(4)) & 15
		vun16(v(6), v(2), func(x uint16) uint16 { return x >> s })
	case bytecode.OpI16x8Abs:
		vun16(v(4), v(2), func(x uint16) uint16 {
			if i16v(x) < 0 {
				return uint16(-int16(x))
			}
			return x
		})
	case bytecode.OpI16x8Neg:
		vun16(v(4), v(2), func(x uint16) uint16 { return uint16(-int16(x)) })
	case bytecode.OpI16x8AllTrue:
		a := v(2)
		all := true
		for i := 0; i < 8; i++ {
			all = all && le.Uint16(a[2*i:]) != 0
		}
		fr.setBool(o(4), all)
	case bytecode.OpI16x8Bitmask:
		a := v(2)
		var m uint32
		for i := 0; i < 8; i++ {
			if le.Uint16(a[2*i:])&0x8000 != 0 {
				m |= 1 << i
			}
		}
		fr.setU32(o(4), m)
	case bytecode.OpI16x8ExtAddPairwiseI8x16S, bytecode.OpI16x8ExtAddPairwiseI8x16U:
		a := v(2)
		var t [16]byte
		for i := 0; i < 8; i++ {
			var s int32
			if op == bytecode.OpI16x8ExtAddPairwiseI8x16S {
				s = i8(a[2*i]) + i8(a[2*i+1])
			} else {
				s = int32(a[2*i]) + int32(a[2*i+1])
			}
			le.PutUint16(t[2*i:], uint16(s))
		}
		copy(v(4), t[:])
	case bytecode.OpI16x8ExtendLowI8x16S, bytecode.OpI16x8ExtendHighI8x16S,
		bytecode.OpI16x8ExtendLowI8x16U, bytecode.OpI16x8ExtendHighI8x16U:
		a := v(2)
		base := 0
		if op == bytecode.OpI16x8ExtendHighI8x16S || op == bytecode.OpI16x8ExtendHighI8x16U {
			base = 8
		}
		signed := op == bytecode.OpI16x8ExtendLowI8x16S || op == bytecode.OpI16x8ExtendHighI8x16S
		var t [16]byte
		for i := 0; i < 8; i++ {
			var x uint16
			if signed {
				x = uint16(int16(int8(a[base+i])))
			} else {
				x = uint16(a[base+i])
			}
			le.PutUint16(t[2*i:], x)
		}
		copy(v(4), t[:])
	case bytecode.OpI16x8RelaxedDotI8x16I7x16S:
		a, b := v(2), v(4)
		var t [16]byte
		for i := 0; i < 8; i++ {
			p := i8(a[2*i])*i8(b[2*i]) + i8(a[2*i+1])*i8(b[2*i+1])
			le.PutUint16(t[2*i:], sat16s(p))
		}
		copy(v(6), t[:])

	// ---- i32x4
	case bytecode.OpI32x4Add:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 { return x + y })
	case bytecode.OpI32x4Sub:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 { return x - y })
	case bytecode.OpI32x4Mul:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 { return x * y })
	case bytecode.OpI32x4MinS:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 {
			if int32(x) < int32(y) {
				return x
			}
			return y
		})
	case bytecode.OpI32x4MinU:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 {
			if x < y {
				return x
			}
			return y
		})
	case bytecode.OpI32x4MaxS:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 {
			if int32(x) > int32(y) {
				return x
			}
			return y
		})
	case bytecode.OpI32x4MaxU:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 {
			if x > y {
				return x
			}
			return y
		})
	case bytecode.OpI32x4DotI16x8S:
		a, b := v(2), v(4)
		var t [16]byte
		for i := 0; i < 4; i++ {
			p := i16v(le.Uint16(a[4*i:]))*i16v(le.Uint16(b[4*i:])) +
				i16v(le.Uint16(a[4*i+2:]))*i16v(le.Uint16(b[4*i+2:]))
			le.PutUint32(t[4*i:], uint32(p))
		}
		copy(v(6), t[:])
	case bytecode.OpI32x4RelaxedDotI8x16I7x16AddS:
		a, b, c := v(2), v(4), v(6)
		var t [16]byte
		for i := 0; i < 4; i++ {
			var p int32
			for j := 0; j < 4; j++ {
				p += i8(a[4*i+j]) * i8(b[4*i+j])
			}
			le.PutUint32(t[4*i:], uint32(p+int32(le.Uint32(c[4*i:]))))
		}
		copy(v(8), t[:])
	case bytecode.OpI32x4Eq:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 { return mask32(x == y) })
	case bytecode.OpI32x4Ne:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 { return mask32(x != y) })
	case bytecode.OpI32x4LtS:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 { return mask32(int32(x) < int32(y)) })
	case bytecode.OpI32x4LtU:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 { return mask32(x < y) })
	case bytecode.OpI32x4LeS:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 { return mask32(int32(x) <= int32(y)) })
	case bytecode.OpI32x4LeU:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 { return mask32(x <= y) })
	case bytecode.OpI32x4GtS:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 { return mask32(int32(x) > int32(y)) })
	case bytecode.OpI32x4GtU:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 { return mask32(x > y) })
	case bytecode.OpI32x4GeS:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 { return mask32(int32(x) >= int32(y)) })
	case bytecode.OpI32x4GeU:
		vbin32(v(6), v(2), v(4), func(x, y uint32) uint32 { return mask32(x >= y) })
	case bytecode.OpI32x4ExtMulLowI16x8S, bytecode.OpI32x4ExtMulHighI16x8S,
		bytecode.OpI32x4ExtMulLowI16x8U, bytecode.OpI32x4ExtMulHighI16x8U:
		a, b := v(2), v(4)
		base := 0
		if op == bytecode.OpI32x4ExtMulHighI16x8S || op == bytecode.OpI32x4ExtMulHighI16x8U {
			base = 8
		}
		signed := op == bytecode.OpI32x4ExtMulLowI16x8S || op == bytecode.OpI32x4ExtMulHighI16x8S
		var t [16]byte
		for i := 0; i < 4; i++ {
			var p int64
			if signed {
				p = int64(i16v(le.Uint16(a[base+2*i:]))) * int64(i16v(le.Uint16(b[base+2*i:])))
			} else {
				p = int64(le.Uint16(a[base+2*i:])) * int64(le.Uint16(b[base+2*i:]))
			}
			le.PutUint32(t[4*i:], uint32(p))
		}
		copy(v(6), t[:])
	case bytecode.OpI32x4Shl:
		s := fr.u32(o(4)) & 31
		vun32(v(6), v(2), func(x uint32) uint32 { return x << s })
	case bytecode.OpI32x4ShrS:
		s := fr.u32(o(4)) & 31
		vun32(v(6), v(2), func(x uint32) uint32 { return uint32(int32(x) >> s) })
	case bytecode.OpI32x4ShrU:
		s := fr.u32(o(4)) & 31
		vun32(v(6), v(2), func(x uint32) uint32 { return x >> s })
	case bytecode.OpI32x4Abs:
		vun32(v(4), v(2), func(x uint32) uint32 {
			if int32(x) < 0 {
				return uint32(-int32(x))
			}
			return x
		})
	case bytecode.OpI32x4Neg:
		vun32(v(4), v(2), func(x uint32) uint32 { return uint32(-int32(x)) })
	case bytecode.OpI32x4AllTrue:
		a := v(2)
		all := true
		for i := 0; i < 4; i++ {
			all = all && le.Uint32(a[4*i:]) != 0
		}
		fr.setBool(o(4), all)
	case bytecode.OpI32x4Bitmask:
		a := v(2)
		var m uint32
		for i := 0; i < 4; i++ {
			if le.Uint32(a[4*i:])&0x80000000 != 0 {
				m |= 1 << i
			}
		}
		fr.setU32(o(4), m)
	case bytecode.OpI32x4ExtAddPairwiseI16x8S, bytecode.OpI32x4ExtAddPairwiseI16x8U:
		a := v(2)
		var t [16]byte
		for i := 0; i < 4; i++ {
			var s int64
			if op == bytecode.OpI32x4ExtAddPairwiseI16x8S {
				s = int64(i16v(le.Uint16(a[4*i:]))) + int64(i16v(le.Uint16(a[4*i+2:])))
			} else {
				s = int64(le.Uint16(a[4*i:])) + int64(le.Uint16(a[4*i+2:]))
			}
			le.PutUint32(t[4*i:], uint32(s))
		}
		copy(v(4), t[:])
	case bytecode.OpI32x4ExtendLowI16x8S, bytecode.OpI32x4ExtendHighI16x8S,
		bytecode.OpI32x4ExtendLowI16x8U, bytecode.OpI32x4ExtendHighI16x8U:
		a := v(2)
		base := 0
		if op == bytecode.OpI32x4ExtendHighI16x8S || op == bytecode.OpI32x4ExtendHighI16x8U {
			base = 8
		}
		signed := op == bytecode.OpI32x4ExtendLowI16x8S || op == bytecode.OpI32x4ExtendHighI16x8S
		var t [16]byte
		for i := 0; i < 4; i++ {
			var x uint32
			if signed {
				x = uint32(int32(i16v(le.Uint16(a[base+2*i:]))))
			} else {
				x = uint32(le.Uint16(a[base+2*i:]))
			}
			le.PutUint32(t[4*i:], x)
		}
		copy(v(4), t[:])
	case bytecode.OpI32x4TruncSatF32x4S, bytecode.OpI32x4RelaxedTruncF32x4S:
		vun32(v(4), v(2), func(x uint32) uint32 {
			return uint32(satS32(float64(math.Float32frombits(x))))
		})
	case bytecode.OpI32x4TruncSatF32x4U, bytecode.OpI32x4RelaxedTruncF32x4U:
		vun32(v(4), v(2), func(x uint32) uint32 {
			return satU32(float64(math.Float32frombits(x)))
		})
	case bytecode.OpI32x4TruncSatF64x2SZero, bytecode.OpI32x4RelaxedTruncF64x2SZero,
		bytecode.OpI32x4TruncSatF64x2UZero, bytecode.OpI32x4RelaxedTruncF64x2UZero:
		a := v(2)
		var t [16]byte
		for i := 0; i < 2; i++ {
			f := math.Float64frombits(le.Uint64(a[8*i:]))
			if op == bytecode.OpI32x4TruncSatF64x2SZero || op == bytecode.OpI32x4RelaxedTruncF64x2SZero {
				le.PutUint32(t[4*i:], uint32(satS32(f)))
			} else {
				le.PutUint32(t[4*i:], satU32(f))
			}
		}
		copy(v(4), t[:])

	// ---- i64x2
	case bytecode.OpI64x2Add:
		vbin64(v(6), v(2), v(4), func(x, y uint64) uint64 { return x + y })
	case bytecode.OpI64x2Sub:
		vbin64(v(6), v(2), v(4), func(x, y uint64) uint64 { return x - y })
	case bytecode.OpI64x2Mul:
		vbin64(v(6), v(2), v(4), func(x, y uint64) uint64 { return x * y })
	case bytecode.OpI64x2Eq:
		vbin64(v(6), v(2), v(4), func(x, y uint64) uint64 { return mask64(x == y) })
	case bytecode.OpI64x2Ne:
		vbin64(v(6), v(2), v(4), func(x, y uint64) uint64 { return mask64(x != y) })
	case bytecode.OpI64x2LtS:
		vbin64(v(6), v(2), v(4), func(x, y uint64) uint64 { return mask64(int64(x) < int64(y)) })
	case bytecode.OpI64x2LeS:
		vbin64(v(6), v(2), v(4), func(x, y uint64) uint64 { return mask64(int64(x) <= int64(y)) })
	case bytecode.OpI64x2GtS:
		vbin64(v(6), v(2), v(4), func(x, y uint64) uint64 { return mask64(int64(x) > int64(y)) })
	case bytecode.OpI64x2GeS:
		vbin64(v(6), v(2), v(4), func(x, y uint64) uint64 { return mask64(int64(x) >= int64(y)) })
	case bytecode.OpI64x2ExtMulLowI32x4S, bytecode.OpI64x2ExtMulHighI32x4S,
		bytecode.OpI64x2ExtMulLowI32x4U, bytecode.OpI64x2ExtMulHighI32x4U:
		a, b := v(2), v(4)
		base := 0
		if op == bytecode.OpI64x2ExtMulHighI32x4S || op == bytecode.OpI64x2ExtMulHighI32x4U {
			base = 8
		}
		signed := op == bytecode.OpI64x2ExtMulLowI32x4S || op == bytecode.OpI64x2ExtMulHighI32x4S
		var t [16]byte
		for i := 0; i < 2; i++ {
			var p uint64
			if signed {
				p = uint64(int64(int32(le.Uint32(a[base+4*i:]))) * int64(int32(le.Uint32(b[base+4*i:]))))
			} else {
				p = uint64(le.Uint32(a[base+4*i:])) * uint64(le.Uint32(b[base+4*i:]))
			}
			le.PutUint64(t[8*i:], p)
		}
		copy(v(6), t[:])
	case bytecode.OpI64x2Shl:
		s := fr.u32(o(4)) & 63
		vun64(v(6), v(2), func(x uint64) uint64 { return x << s })
	case bytecode.OpI64x2ShrS:
		s := fr.u32(o(4)) & 63
		vun64(v(6), v(2), func(x uint64) uint64 { return uint64(int64(x) >> s) })
	case bytecode.OpI64x2ShrU:
		s := fr.u32(o(4)) & 63
		vun64(v(6), v(2), func(x uint64) uint64 { return x >> s })
	case bytecode.OpI64x2Abs:
		vun64(v(4), v(2), func(x uint64) uint64 {
			if int64(x) < 0 {
				return uint64(-int64(x))
			}
			return x
		})
	case bytecode.OpI64x2Neg:
		vun64(v(4), v(2), func(x uint64) uint64 { return uint64(-int64(x)) })
	case bytecode.OpI64x2AllTrue:
		a := v(2)
		fr.setBool(o(4), le.Uint64(a) != 0 && le.Uint64(a[8:]) != 0)
	case bytecode.OpI64x2Bitmask:
		a := v(2)
		var m uint32
		if le.Uint64(a)&(1<<63) != 0 {
			m |= 1
		}
		if le.Uint64(a[8:])&(1<<63) != 0 {
			m |= 2
		}
		fr.setU32(o(4), m)
	case bytecode.OpI64x2ExtendLowI32x4S, bytecode.OpI64x2ExtendHighI32x4S,
		bytecode.OpI64x2ExtendLowI32x4U, bytecode.OpI64x2ExtendHighI32x4U:
		a := v(2)
		base := 0
		if op == bytecode.OpI64x2ExtendHighI32x4S || op == bytecode.OpI64x2ExtendHighI32x4U {
			base = 8
		}
		signed := op == bytecode.OpI64x2ExtendLowI32x4S || op == bytecode.OpI64x2ExtendHighI32x4S
		var t [16]byte
		for i := 0; i < 2; i++ {
			var x uint64
			if signed {
				x = uint64(int64(int32(le.Uint32(a[base+4*i:]))))
			} else {
				x = uint64(le.Uint32(a[base+4*i:]))
			}
			le.PutUint64(t[8*i:], x)
		}
		copy(v(4), t[:])

	default:
		return false
	}
	return true
}

// execSIMDFloat covers the float lane families.
func (ec *ExecutionContext) execSIMDFloat(op bytecode.Opcode, in bytecode.Instr, fr frameView) bool {
	v := func(at uint32) []byte { return fr.v128(fr.abs(in.Off(at))) }

	switch op {
	// ---- f32x4
	case bytecode.OpF32x4Add:
		vbinf32(v(6), v(2), v(4), func(x, y float32) float32 { return x + y })
	case bytecode.OpF32x4Sub:
		vbinf32(v(6), v(2), v(4), func(x, y float32) float32 { return x - y })
	case bytecode.OpF32x4Mul:
		vbinf32(v(6), v(2), v(4), func(x, y float32) float32 { return x * y })
	case bytecode.OpF32x4Div:
		vbinf32(v(6), v(2), v(4), func(x, y float32) float32 { return x / y })
	case bytecode.OpF32x4Min, bytecode.OpF32x4RelaxedMin:
		vbinf32(v(6), v(2), v(4), fmin32)
	case bytecode.OpF32x4Max, bytecode.OpF32x4RelaxedMax:
		vbinf32(v(6), v(2), v(4), fmax32)
	case bytecode.OpF32x4PMin:
		vbinf32(v(6), v(2), v(4), func(x, y float32) float32 {
			if y < x {
				return y
			}
			return x
		})
	case bytecode.OpF32x4PMax:
		vbinf32(v(6), v(2), v(4), func(x, y float32) float32 {
			if x < y {
				return y
			}
			return x
		})
	case bytecode.OpF32x4Eq:
		vbin32(v(6), v(2), v(4), cmpF32(func(x, y float32) bool { return x == y }))
	case bytecode.OpF32x4Ne:
		vbin32(v(6), v(2), v(4), cmpF32(func(x, y float32) bool { return x != y }))
	case bytecode.OpF32x4Lt:
		vbin32(v(6), v(2), v(4), cmpF32(func(x, y float32) bool { return x < y }))
	case bytecode.OpF32x4Le:
		vbin32(v(6), v(2), v(4), cmpF32(func(x, y float32) bool { return x <= y }))
	case bytecode.OpF32x4Gt:
		vbin32(v(6), v(2), v(4), cmpF32(func(x, y float32) bool { return x > y }))
	case bytecode.OpF32x4Ge:
		vbin32(v(6), v(2), v(4), cmpF32(func(x, y float32) bool { return x >= y }))
	case bytecode.OpF32x4Abs:
		vunf32(v(4), v(2), func(x float32) float32 { return float32(math.Abs(float64(x))) })
	case bytecode.OpF32x4Neg:
		vunf32(v(4), v(2), func(x float32) float32 { return -x })
	case bytecode.OpF32x4Sqrt:
		vunf32(v(4), v(2), func(x float32) float32 { return float32(math.Sqrt(float64(x))) })
	case bytecode.OpF32x4Ceil:
		vunf32(v(4), v(2), func(x float32) float32 { return float32(math.Ceil(float64(x))) })
	case bytecode.OpF32x4Floor:
		vunf32(v(4), v(2), func(x float32) float32 { return float32(math.Floor(float64(x))) })
	case bytecode.OpF32x4Trunc:
		vunf32(v(4), v(2), func(x float32) float32 { return float32(math.Trunc(float64(x))) })
	case bytecode.OpF32x4Nearest:
		vunf32(v(4), v(2), func(x float32) float32 { return float32(math.RoundToEven(float64(x))) })
	case bytecode.OpF32x4ConvertI32x4S:
		vun32(v(4), v(2), func(x uint32) uint32 { return math.Float32bits(float32(int32(x))) })
	case bytecode.OpF32x4ConvertI32x4U:
		vun32(v(4), v(2), func(x uint32) uint32 { return math.Float32bits(float32(x)) })
	case bytecode.OpF32x4DemoteF64x2Zero:
		a := v(2)
		var t [16]byte
		le.PutUint32(t[:], math.Float32bits(float32(math.Float64frombits(le.Uint64(a)))))
		le.PutUint32(t[4:], math.Float32bits(float32(math.Float64frombits(le.Uint64(a[8:])))))
		copy(v(4), t[:])
	case bytecode.OpF32x4RelaxedMadd:
		vmaddF32(v(8), v(2), v(4), v(6), false)
	case bytecode.OpF32x4RelaxedNmadd:
		vmaddF32(v(8), v(2), v(4), v(6), true)

	// ---- f64x2
	case bytecode.OpF64x2Add:
		vbinf64(v(6), v(2), v(4), func(x, y float64) float64 { return x + y })
	case bytecode.OpF64x2Sub:
		vbinf64(v(6), v(2), v(4), func(x, y float64) float64 { return x - y })
	case bytecode.OpF64x2Mul:
		vbinf64(v(6), v(2), v(4), func(x, y float64) float64 { return x * y })
	case bytecode.OpF64x2Div:
		vbinf64(v(6), v(2), v(4), func(x, y float64) float64 { return x / y })
	case bytecode.OpF64x2Min, bytecode.OpF64x2RelaxedMin:
		vbinf64(v(6), v(2), v(4), fmin64)
	case bytecode.OpF64x2Max, bytecode.OpF64x2RelaxedMax:
		vbinf64(v(6), v(2), v(4), fmax64)
	case bytecode.OpF64x2PMin:
		vbinf64(v(6), v(2), v(4), func(x, y float64) float64 {
			if y < x {
				return y
			}
			return x
		})
	case bytecode.OpF64x2PMax:
		vbinf64(v(6), v(2), v(4), func(x, y float64) float64 {
			if x < y {
				return y
			}
			return x
		})
	case bytecode.OpF64x2Eq:
		vbin64(v(6), v(2), v(4), cmpF64(func(x, y float64) bool { return x == y }))
	case bytecode.OpF64x2Ne:
		vbin64(v(6), v(2), v(4), cmpF64(func(x, y float64) bool { return x != y }))
	case bytecode.OpF64x2Lt:
		vbin64(v(6), v(2), v(4), cmpF64(func(x, y float64) bool { return x < y }))
	case bytecode.OpF64x2Le:
		vbin64(v(6), v(2), v(4), cmpF64(func(x, y float64) bool { return x <= y }))
	case bytecode.OpF64x2Gt:
		vbin64(v(6), v(2), v(4), cmpF64(func(x, y float64) bool { return x > y }))
	case bytecode.OpF64x2Ge:
		vbin64(v(6), v(2), v(4), cmpF64(func(x, y float64) bool { return x >= y }))
	case bytecode.OpF64x2Abs:
		vunf64(v(4), v(2), math.Abs)
	case bytecode.OpF64x2Neg:
		vunf64(v(4), v(2), func(x float64) float64 { return -x })
	case bytecode.OpF64x2Sqrt:
		vunf64(v(4), v(2), math.Sqrt)
	case bytecode.OpF64x2Ceil:
		vunf64(v(4), v(2), math.Ceil)
	case bytecode.OpF64x2Floor:
		vunf64(v(4), v(2), math.Floor)
	case bytecode.OpF64x2Trunc:
		vunf64(v(4), v(2), math.Trunc)
	case bytecode.OpF64x2Nearest:
		vunf64(v(4), v(2), math.RoundToEven)
	case bytecode.OpF64x2ConvertLowI32x4S:
		a := v(2)
		var t [16]byte
		le.PutUint64(t[:], math.Float64bits(float64(int32(le.Uint32(a)))))
		le.PutUint64(t[8:], math.Float64bits(float64(int32(le.Uint32(a[4:])))))
		copy(v(4), t[:])
	case bytecode.OpF64x2ConvertLowI32x4U:
		a := v(2)
		var t [16]byte
		le.PutUint64(t[:], math.Float64bits(float64(le.Uint32(a))))
		le.PutUint64(t[8:], math.Float64bits(float64(le.Uint32(a[4:]))))
		copy(v(4), t[:])
	case bytecode.OpF64x2PromoteLowF32x4:
		a := v(2)
		var t [16]byte
		le.PutUint64(t[:], math.Float64bits(float64(math.Float32frombits(le.Uint32(a)))))
		le.PutUint64(t[8:], math.Float64bits(float64(math.Float32frombits(le.Uint32(a[4:])))))
		copy(v(4), t[:])
	case bytecode.OpF64x2RelaxedMadd:
		vmaddF64(v(8), v(2), v(4), v(6), false)
	case bytecode.OpF64x2RelaxedNmadd:
		vmaddF64(v(8), v(2), v(4), v(6), true)

	default:
		return false
	}
	return true
}

func cmpF32(f func(x, y float32) bool) func(x, y uint32) uint32 {
	return func(x, y uint32) uint32 {
		return mask32(f(math.Float32frombits(x), math.Float32frombits(y)))
	}
}

func cmpF64(f func(x, y float64) bool) func(x, y uint64) uint64 {
	return func(x, y uint64) uint64 {
		return mask64(f(math.Float64frombits(x), math.Float64frombits(y)))
	}
}

func vmaddF32(dst, a, b, c []byte, negate bool) {
	var t [16]byte
	for i := 0; i < 4; i++ {
		x := math.Float32frombits(le.Uint32(a[4*i:]))
		y := math.Float32frombits(le.Uint32(b[4*i:]))
		z := math.Float32frombits(le.Uint32(c[4*i:]))
		r := x*y + z
		if negate {
			r = -(x * y) + z
		}
		le.PutUint32(t[4*i:], math.Float32bits(r))
	}
	copy(dst, t[:])
}

func vmaddF64(dst, a, b, c []byte, negate bool) {
	var t [16]byte
	for i := 0; i < 2; i++ {
		x := math.Float64frombits(le.Uint64(a[8*i:]))
		y := math.Float64frombits(le.Uint64(b[8*i:]))
		z := math.Float64frombits(le.Uint64(c[8*i:]))
		r := x*y + z
		if negate {
			r = -(x * y) + z
		}
		le.PutUint64(t[8*i:], math.Float64bits(r))
	}
	copy(dst, t[:])
}
