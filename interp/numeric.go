package interp

import (
	"math"
	"math/bits"

	"github.com/wippyai/wasm-engine/bytecode"
	"github.com/wippyai/wasm-engine/runtime"
)

// execNumeric handles scalar arithmetic, comparison and conversion
// opcodes. It returns false when op is not in its range.
func (ec *ExecutionContext) execNumeric(op bytecode.Opcode, in bytecode.Instr, fr frameView) bool {
	o := func(at uint32) int { return fr.abs(in.Off(at)) }
	trap := func(code runtime.TrapCode) { ec.trap = runtime.NewTrap(code) }

	switch op {
	// i32 binary
	case bytecode.OpI32Add:
		fr.setI32(o(6), fr.i32(o(2))+fr.i32(o(4)))
	case bytecode.OpI32Sub:
		fr.setI32(o(6), fr.i32(o(2))-fr.i32(o(4)))
	case bytecode.OpI32Mul:
		fr.setI32(o(6), fr.i32(o(2))*fr.i32(o(4)))
	case bytecode.OpI32DivS:
		a, b := fr.i32(o(2)), fr.i32(o(4))
		switch {
		case b == 0:
			trap(runtime.TrapIntegerDivideByZero)
		case a == math.MinInt32 && b == -1:
			trap(runtime.TrapIntegerOverflow)
		default:
			fr.setI32(o(6), a/b)
		}
	case bytecode.OpI32DivU:
		a, b := fr.u32(o(2)), fr.u32(o(4))
		if b == 0 {
			trap(runtime.TrapIntegerDivideByZero)
		} else {
			fr.setU32(o(6), a/b)
		}
	case bytecode.OpI32RemS:
		a, b := fr.i32(o(2)), fr.i32(o(4))
		switch {
		case b == 0:
			trap(runtime.TrapIntegerDivideByZero)
		case a == math.MinInt32 && b == -1:
			fr.setI32(o(6), 0)
		default:
			fr.setI32(o(6), a%b)
		}
	case bytecode.OpI32RemU:
		a, b := fr.u32(o(2)), fr.u32(o(4))
		if b == 0 {
			trap(runtime.TrapIntegerDivideByZero)
		} else {
			fr.setU32(o(6), a%b)
		}
	case bytecode.OpI32And:
		fr.setU32(o(6), fr.u32(o(2))&fr.u32(o(4)))
	case bytecode.OpI32Or:
		fr.setU32(o(6), fr.u32(o(2))|fr.u32(o(4)))
	case bytecode.OpI32Xor:
		fr.setU32(o(6), fr.u32(o(2))^fr.u32(o(4)))
	case bytecode.OpI32Shl:
		fr.setU32(o(6), fr.u32(o(2))<<(fr.u32(o(4))&31))
	case bytecode.OpI32ShrS:
		fr.setI32(o(6), fr.i32(o(2))>>(fr.u32(o(4))&31))
	case bytecode.OpI32ShrU:
		fr.setU32(o(6), fr.u32(o(2))>>(fr.u32(o(4))&31))
	case bytecode.OpI32Rotl:
		fr.setU32(o(6), bits.RotateLeft32(fr.u32(o(2)), int(fr.u32(o(4))&31)))
	case bytecode.OpI32Rotr:
		fr.setU32(o(6), bits.RotateLeft32(fr.u32(o(2)), -int(fr.u32(o(4))&31)))
	case bytecode.OpI32Eq:
		fr.setBool(o(6), fr.u32(o(2)) == fr.u32(o(4)))
	case bytecode.OpI32Ne:
		fr.setBool(o(6), fr.u32(o(2)) != fr.u32(o(4)))
	case bytecode.OpI32LtS:
		fr.setBool(o(6), fr.i32(o(2)) < fr.i32(o(4)))
	case bytecode.OpI32LtU:
		fr.setBool(o(6), fr.u32(o(2)) < fr.u32(o(4)))
	case bytecode.OpI32LeS:
		fr.setBool(o(6), fr.i32(o(2)) <= fr.i32(o(4)))
	case bytecode.OpI32LeU:
		fr.setBool(o(6), fr.u32(o(2)) <= fr.u32(o(4)))
	case bytecode.OpI32GtS:
		fr.setBool(o(6), fr.i32(o(2)) > fr.i32(o(4)))
	case bytecode.OpI32GtU:
		fr.setBool(o(6), fr.u32(o(2)) > fr.u32(o(4)))
	case bytecode.OpI32GeS:
		fr.setBool(o(6), fr.i32(o(2)) >= fr.i32(o(4)))
	case bytecode.OpI32GeU:
		fr.setBool(o(6), fr.u32(o(2)) >= fr.u32(o(4)))

	// i32 unary
	case bytecode.OpI32Clz:
		fr.setU32(o(4), uint32(bits.LeadingZeros32(fr.u32(o(2)))))
	case bytecode.OpI32Ctz:
		fr.setU32(o(4), uint32(bits.TrailingZeros32(fr.u32(o(2)))))
	case bytecode.OpI32Popcnt:
		fr.setU32(o(4), uint32(bits.OnesCount32(fr.u32(o(2)))))
	case bytecode.OpI32Eqz:
		fr.setBool(o(4), fr.u32(o(2)) == 0)
	case bytecode.OpI32Extend8S:
		fr.setI32(o(4), int32(int8(fr.u32(o(2)))))
	case bytecode.OpI32Extend16S:
		fr.setI32(o(4), int32(int16(fr.u32(o(2)))))

	// i64 binary
	case bytecode.OpI64Add:
		fr.setI64(o(6), fr.i64(o(2))+fr.i64(o(4)))
	case bytecode.OpI64Sub:
		fr.setI64(o(6), fr.i64(o(2))-fr.i64(o(4)))
	case bytecode.OpI64Mul:
		fr.setI64(o(6), fr.i64(o(2))*fr.i64(o(4)))
	case bytecode.OpI64DivS:
		a, b := fr.i64(o(2)), fr.i64(o(4))
		switch {
		case b == 0:
			trap(runtime.TrapIntegerDivideByZero)
		case a == math.MinInt64 && b == -1:
			trap(runtime.TrapIntegerOverflow)
		default:
			fr.setI64(o(6), a/b)
		}
	case bytecode.OpI64DivU:
		a, b := fr.u64(o(2)), fr.u64(o(4))
		if b == 0 {
			trap(runtime.TrapIntegerDivideByZero)
		} else {
			fr.setU64(o(6), a/b)
		}
	case bytecode.OpI64RemS:
		a, b := fr.i64(o(2)), fr.i64(o(4))
		switch {
		case b == 0:
			trap(runtime.TrapIntegerDivideByZero)
		case a == math.MinInt64 && b == -1:
			fr.setI64(o(6), 0)
		default:
			fr.setI64(o(6), a%b)
		}
	case bytecode.OpI64RemU:
		a, b := fr.u64(o(2)), fr.u64(o(4))
		if b == 0 {
			trap(runtime.TrapIntegerDivideByZero)
		} else {
			fr.setU64(o(6), a%b)
		}
	case bytecode.OpI64And:
		fr.setU64(o(6), fr.u64(o(2))&fr.u64(o(4)))
	case bytecode.OpI64Or:
		fr.setU64(o(6), fr.u64(o(2))|fr.u64(o(4)))
	case bytecode.OpI64Xor:
		fr.setU64(o(6), fr.u64(o(2))^fr.u64(o(4)))
	case bytecode.OpI64Shl:
		fr.setU64(o(6), fr.u64(o(2))<<(fr.u64(o(4))&63))
	case bytecode.OpI64ShrS:
		fr.setI64(o(6), fr.i64(o(2))>>(fr.u64(o(4))&63))
	case bytecode.OpI64ShrU:
		fr.setU64(o(6), fr.u64(o(2))>>(fr.u64(o(4))&63))
	case bytecode.OpI64Rotl:
		fr.setU64(o(6), bits.RotateLeft64(fr.u64(o(2)), int(fr.u64(o(4))&63)))
	case bytecode.OpI64Rotr:
		fr.setU64(o(6), bits.RotateLeft64(fr.u64(o(2)), -int(fr.u64(o(4))&63)))
	case bytecode.OpI64Eq:
		fr.setBool(o(6), fr.u64(o(2)) == fr.u64(o(4)))
	case bytecode.OpI64Ne:
		fr.setBool(o(6), fr.u64(o(2)) != fr.u64(o(4)))
	case bytecode.OpI64LtS:
		fr.setBool(o(6), fr.i64(o(2)) < fr.i64(o(4)))
	case bytecode.OpI64LtU:
		fr.setBool(o(6), fr.u64(o(2)) < fr.u64(o(4)))
	case bytecode.OpI64LeS:
		fr.setBool(o(6), fr.i64(o(2)) <= fr.i64(o(4)))
	case bytecode.OpI64LeU:
		fr.setBool(o(6), fr.u64(o(2)) <= fr.u64(o(4)))
	case bytecode.OpI64GtS:
		fr.setBool(o(6), fr.i64(o(2)) > fr.i64(o(4)))
	case bytecode.OpI64GtU:
		fr.setBool(o(6), fr.u64(o(2)) > fr.u64(o(4)))
	case bytecode.OpI64GeS:
		fr.setBool(o(6), fr.i64(o(2)) >= fr.i64(o(4)))
	case bytecode.OpI64GeU:
		fr.setBool(o(6), fr.u64(o(2)) >= fr.u64(o(4)))

	// i64 unary
	case bytecode.OpI64Clz:
		fr.setU64(o(4), uint64(bits.LeadingZeros64(fr.u64(o(2)))))
	case bytecode.OpI64Ctz:
		fr.setU64(o(4), uint64(bits.TrailingZeros64(fr.u64(o(2)))))
	case bytecode.OpI64Popcnt:
		fr.setU64(o(4), uint64(bits.OnesCount64(fr.u64(o(2)))))
	case bytecode.OpI64Eqz:
		fr.setBool(o(4), fr.u64(o(2)) == 0)
	case bytecode.OpI64Extend8S:
		fr.setI64(o(4), int64(int8(fr.u64(o(2)))))
	case bytecode.OpI64Extend16S:
		fr.setI64(o(4), int64(int16(fr.u64(o(2)))))
	case bytecode.OpI64Extend32S:
		fr.setI64(o(4), int64(int32(fr.u64(o(2)))))

	// f32
	case bytecode.OpF32Add:
		fr.setF32(o(6), fr.f32(o(2))+fr.f32(o(4)))
	case bytecode.OpF32Sub:
		fr.setF32(o(6), fr.f32(o(2))-fr.f32(o(4)))
	case bytecode.OpF32Mul:
		fr.setF32(o(6), fr.f32(o(2))*fr.f32(o(4)))
	case bytecode.OpF32Div:
		fr.setF32(o(6), fr.f32(o(2))/fr.f32(o(4)))
	case bytecode.OpF32Min:
		fr.setF32(o(6), fmin32(fr.f32(o(2)), fr.f32(o(4))))
	case bytecode.OpF32Max:
		fr.setF32(o(6), fmax32(fr.f32(o(2)), fr.f32(o(4))))
	case bytecode.OpF32Copysign:
		fr.setF32(o(6), float32(math.Copysign(float64(fr.f32(o(2))), float64(fr.f32(o(4))))))
	case bytecode.OpF32Eq:
		fr.setBool(o(6), fr.f32(o(2)) == fr.f32(o(4)))
	case bytecode.OpF32Ne:
		fr.setBool(o(6), fr.f32(o(2)) != fr.f32(o(4)))
	case bytecode.OpF32Lt:
		fr.setBool(o(6), fr.f32(o(2)) < fr.f32(o(4)))
	case bytecode.OpF32Le:
		fr.setBool(o(6), fr.f32(o(2)) <= fr.f32(o(4)))
	case bytecode.OpF32Gt:
		fr.setBool(o(6), fr.f32(o(2)) > fr.f32(o(4)))
	case bytecode.OpF32Ge:
		fr.setBool(o(6), fr.f32(o(2)) >= fr.f32(o(4)))
	case bytecode.OpF32Abs:
		fr.setF32(o(4), float32(math.Abs(float64(fr.f32(o(2))))))
	case bytecode.OpF32Neg:
		fr.setF32(o(4), -fr.f32(o(2)))
	case bytecode.OpF32Ceil:
		fr.setF32(o(4), float32(math.Ceil(float64(fr.f32(o(2))))))
	case bytecode.OpF32Floor:
		fr.setF32(o(4), float32(math.Floor(float64(fr.f32(o(2))))))
	case bytecode.OpF32Trunc:
		fr.setF32(o(4), float32(math.Trunc(float64(fr.f32(o(2))))))
	case bytecode.OpF32Nearest:
		fr.setF32(o(4), float32(math.RoundToEven(float64(fr.f32(o(2))))))
	case bytecode.OpF32Sqrt:
		fr.setF32(o(4), float32(math.Sqrt(float64(fr.f32(o(2))))))

	// f64
	case bytecode.OpF64Add:
		fr.setF64(o(6), fr.f64(o(2))+fr.f64(o(4)))
	case bytecode.OpF64Sub:
		fr.setF64(o(6), fr.f64(o(2))-fr.f64(o(4)))
	case bytecode.OpF64Mul:
		fr.setF64(o(6), fr.f64(o(2))*fr.f64(o(4)))
	case bytecode.OpF64Div:
		fr.setF64(o(6), fr.f64(o(2))/fr.f64(o(4)))
	case bytecode.OpF64Min:
		fr.setF64(o(6), fmin64(fr.f64(o(2)), fr.f64(o(4))))
	case bytecode.OpF64Max:
		fr.setF64(o(6), fmax64(fr.f64(o(2)), fr.f64(o(4))))
	case bytecode.OpF64Copysign:
		fr.setF64(o(6), math.Copysign(fr.f64(o(2)), fr.f64(o(4))))
	case bytecode.OpF64Eq:
		fr.setBool(o(6), fr.f64(o(2)) == fr.f64(o(4)))
	case bytecode.OpF64Ne:
		fr.setBool(o(6), fr.f64(o(2)) != fr.f64(o(4)))
	case bytecode.OpF64Lt:
		fr.setBool(o(6), fr.f64(o(2)) < fr.f64(o(4)))
	case bytecode.OpF64Le:
		fr.setBool(o(6), fr.f64(o(2)) <= fr.f64(o(4)))
	case bytecode.OpF64Gt:
		fr.setBool(o(6), fr.f64(o(2)) > fr.f64(o(4)))
	case bytecode.OpF64Ge:
		fr.setBool(o(6), fr.f64(o(2)) >= fr.f64(o(4)))
	case bytecode.OpF64Abs:
		fr.setF64(o(4), math.Abs(fr.f64(o(2))))
	case bytecode.OpF64Neg:
		fr.setF64(o(4), -fr.f64(o(2)))
	case bytecode.OpF64Ceil:
		fr.setF64(o(4), math.Ceil(fr.f64(o(2))))
	case bytecode.OpF64Floor:
		fr.setF64(o(4), math.Floor(fr.f64(o(2))))
	case bytecode.OpF64Trunc:
		fr.setF64(o(4), math.Trunc(fr.f64(o(2))))
	case bytecode.OpF64Nearest:
		fr.setF64(o(4), math.RoundToEven(fr.f64(o(2))))
	case bytecode.OpF64Sqrt:
		fr.setF64(o(4), math.Sqrt(fr.f64(o(2))))

	// conversions
	case bytecode.OpI32WrapI64:
		fr.setU32(o(4), uint32(fr.u64(o(2))))
	case bytecode.OpI64ExtendI32S:
		fr.setI64(o(4), int64(fr.i32(o(2))))
	case bytecode.OpI64ExtendI32U:
		fr.setU64(o(4), uint64(fr.u32(o(2))))
	case bytecode.OpF32ConvertI32S:
		fr.setF32(o(4), float32(fr.i32(o(2))))
	case bytecode.OpF32ConvertI32U:
		fr.setF32(o(4), float32(fr.u32(o(2))))
	case bytecode.OpF32ConvertI64S:
		fr.setF32(o(4), float32(fr.i64(o(2))))
	case bytecode.OpF32ConvertI64U:
		fr.setF32(o(4), float32(fr.u64(o(2))))
	case bytecode.OpF64ConvertI32S:
		fr.setF64(o(4), float64(fr.i32(o(2))))
	case bytecode.OpF64ConvertI32U:
		fr.setF64(o(4), float64(fr.u32(o(2))))
	case bytecode.OpF64ConvertI64S:
		fr.setF64(o(4), float64(fr.i64(o(2))))
	case bytecode.OpF64ConvertI64U:
		fr.setF64(o(4), float64(fr.u64(o(2))))
	case bytecode.OpF32DemoteF64:
		fr.setF32(o(4), float32(fr.f64(o(2))))
	case bytecode.OpF64PromoteF32:
		fr.setF64(o(4), float64(fr.f32(o(2))))
	case bytecode.OpI32ReinterpretF32, bytecode.OpF32ReinterpretI32:
		fr.setU32(o(4), fr.u32(o(2)))
	case bytecode.OpI64ReinterpretF64, bytecode.OpF64ReinterpretI64:
		fr.setU64(o(4), fr.u64(o(2)))

	// trapping truncations
	case bytecode.OpI32TruncF32S:
		if v, code := truncS32(float64(fr.f32(o(2)))); code != runtime.TrapNone {
			trap(code)
		} else {
			fr.setI32(o(4), v)
		}
	case bytecode.OpI32TruncF32U:
		if v, code := truncU32(float64(fr.f32(o(2)))); code != runtime.TrapNone {
			trap(code)
		} else {
			fr.setU32(o(4), v)
		}
	case bytecode.OpI32TruncF64S:
		if v, code := truncS32(fr.f64(o(2))); code != runtime.TrapNone {
			trap(code)
		} else {
			fr.setI32(o(4), v)
		}
	case bytecode.OpI32TruncF64U:
		if v, code := truncU32(fr.f64(o(2))); code != runtime.TrapNone {
			trap(code)
		} else {
			fr.setU32(o(4), v)
		}
	case bytecode.OpI64TruncF32S:
		if v, code := truncS64(float64(fr.f32(o(2)))); code != runtime.TrapNone {
			trap(code)
		} else {
			fr.setI64(o(4), v)
		}
	case bytecode.OpI64TruncF32U:
		if v, code := truncU64(float64(fr.f32(o(2)))); code != runtime.TrapNone {
			trap(code)
		} else {
			fr.setU64(o(4), v)
		}
	case bytecode.OpI64TruncF64S:
		if v, code := truncS64(fr.f64(o(2))); code != runtime.TrapNone {
			trap(code)
		} else {
			fr.setI64(o(4), v)
		}
	case bytecode.OpI64TruncF64U:
		if v, code := truncU64(fr.f64(o(2))); code != runtime.TrapNone {
			trap(code)
		} else {
			fr.setU64(o(4), v)
		}

	// saturating truncations
	case bytecode.OpI32TruncSatF32S:
		fr.setI32(o(4), satS32(float64(fr.f32(o(2)))))
	case bytecode.OpI32TruncSatF32U:
		fr.setU32(o(4), satU32(float64(fr.f32(o(2)))))
	case bytecode.OpI32TruncSatF64S:
		fr.setI32(o(4), satS32(fr.f64(o(2))))
	case bytecode.OpI32TruncSatF64U:
		fr.setU32(o(4), satU32(fr.f64(o(2))))
	case bytecode.OpI64TruncSatF32S:
		fr.setI64(o(4), satS64(float64(fr.f32(o(2)))))
	case bytecode.OpI64TruncSatF32U:
		fr.setU64(o(4), satU64(float64(fr.f32(o(2)))))
	case bytecode.OpI64TruncSatF64S:
		fr.setI64(o(4), satS64(fr.f64(o(2))))
	case bytecode.OpI64TruncSatF64U:
		fr.setU64(o(4), satU64(fr.f64(o(2))))

	default:
		return false
	}
	return true
}

// WebAssembly float min/max: NaN propagates, -0 orders below +0.

func fmin64(a, b float64) float64 {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return math.NaN()
	case a == b:
		if math.Signbit(a) {
			return a
		}
		return b
	case a < b:
		return a
	default:
		return b
	}
}

func fmax64(a, b float64) float64 {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return math.NaN()
	case a == b:
		if math.Signbit(a) {
			return b
		}
		return a
	case a > b:
		return a
	default:
		return b
	}
}

func fmin32(a, b float32) float32 { return float32(fmin64(float64(a), float64(b))) }
func fmax32(a, b float32) float32 { return float32(fmax64(float64(a), float64(b))) }

// Trapping float-to-int truncations. The range checks are exclusive of the
// first out-of-range representable float on each side.

func truncS32(f float64) (int32, runtime.TrapCode) {
	if math.IsNaN(f) {
		return 0, runtime.TrapInvalidConversionToInteger
	}
	f = math.Trunc(f)
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, runtime.TrapIntegerOverflow
	}
	return int32(f), runtime.TrapNone
}

func truncU32(f float64) (uint32, runtime.TrapCode) {
	if math.IsNaN(f) {
		return 0, runtime.TrapInvalidConversionToInteger
	}
	f = math.Trunc(f)
	if f < 0 || f > math.MaxUint32 {
		return 0, runtime.TrapIntegerOverflow
	}
	return uint32(f), runtime.TrapNone
}

func truncS64(f float64) (int64, runtime.TrapCode) {
	if math.IsNaN(f) {
		return 0, runtime.TrapInvalidConversionToInteger
	}
	f = math.Trunc(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, runtime.TrapIntegerOverflow
	}
	return int64(f), runtime.TrapNone
}

func truncU64(f float64) (uint64, runtime.TrapCode) {
	if math.IsNaN(f) {
		return 0, runtime.TrapInvalidConversionToInteger
	}
	f = math.Trunc(f)
	if f < 0 || f >= math.MaxUint64 {
		return 0, runtime.TrapIntegerOverflow
	}
	return uint64(f), runtime.TrapNone
}

// Saturating variants clamp instead of trapping; NaN becomes zero.

func satS32(f float64) int32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= math.MinInt32:
		return math.MinInt32
	case f >= math.MaxInt32:
		return math.MaxInt32
	default:
		return int32(f)
	}
}

func satU32(f float64) uint32 {
	switch {
	case math.IsNaN(f) || f <= -1:
		return 0
	case f >= math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(f)
	}
}

func satS64(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f <= math.MinInt64:
		return math.MinInt64
	case f >= math.MaxInt64:
		return math.MaxInt64
	default:
		return int64(f)
	}
}

func satU64(f float64) uint64 {
	switch {
	case math.IsNaN(f) || f <= -1:
		return 0
	case f >= math.MaxUint64:
		return math.MaxUint64
	default:
		return uint64(f)
	}
}
