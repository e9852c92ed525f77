package runtime

import (
	"math"

	"github.com/wippyai/wasm-engine/errors"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

// evalConstExpr runs a constant initialiser expression against an instance
// under construction. The expression grammar covers the const operators,
// ref.null/ref.func, global.get of imported globals, and the extended
// integer add/sub/mul.
func evalConstExpr(expr wasm.ConstExpr, inst *Instance, want types.ValType) (types.Value, error) {
	var stack []types.Value
	push := func(v types.Value) { stack = append(stack, v) }
	pop := func() types.Value {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v
	}
	fail := func(detail string) (types.Value, error) {
		return types.Value{}, errors.New(errors.PhaseInstantiate, errors.KindInvalidData).
			Context("constant expression").
			Detail("%s", detail).
			Build()
	}

	b := []byte(expr)
	pos := 0
	for pos < len(b) {
		op := b[pos]
		pos++
		switch op {
		case wasm.OpEnd:
			if len(stack) != 1 {
				return fail("expression does not leave one value")
			}
			return stack[0], nil
		case wasm.OpI32Const:
			v, n, err := wasm.ReadS32(b[pos:])
			if err != nil {
				return types.Value{}, err
			}
			pos += n
			push(types.NewI32(v))
		case wasm.OpI64Const:
			v, n, err := wasm.ReadS64(b[pos:])
			if err != nil {
				return types.Value{}, err
			}
			pos += n
			push(types.NewI64(v))
		case wasm.OpF32Const:
			push(types.NewF32(math.Float32frombits(le.Uint32(b[pos:]))))
			pos += 4
		case wasm.OpF64Const:
			push(types.NewF64(math.Float64frombits(le.Uint64(b[pos:]))))
			pos += 8
		case wasm.OpRefNull:
			_, n, err := wasm.ReadS33(b[pos:])
			if err != nil {
				return types.Value{}, err
			}
			pos += n
			push(types.NewRef(nil))
		case wasm.OpRefFunc:
			idx, n, err := wasm.ReadU32(b[pos:])
			if err != nil {
				return types.Value{}, err
			}
			pos += n
			push(types.NewRef(inst.funcs[idx]))
		case wasm.OpGlobalGet:
			idx, n, err := wasm.ReadU32(b[pos:])
			if err != nil {
				return types.Value{}, err
			}
			pos += n
			if int(idx) >= len(inst.globals) {
				return fail("global.get out of range")
			}
			push(inst.globals[idx].Get())
		case 0x6A, 0x6B, 0x6C: // i32 add, sub, mul
			if len(stack) < 2 {
				return fail("stack underflow")
			}
			rhs, lhs := pop().I32(), pop().I32()
			switch op {
			case 0x6A:
				push(types.NewI32(lhs + rhs))
			case 0x6B:
				push(types.NewI32(lhs - rhs))
			default:
				push(types.NewI32(lhs * rhs))
			}
		case 0x7C, 0x7D, 0x7E: // i64 add, sub, mul
			if len(stack) < 2 {
				return fail("stack underflow")
			}
			rhs, lhs := pop().I64(), pop().I64()
			switch op {
			case 0x7C:
				push(types.NewI64(lhs + rhs))
			case 0x7D:
				push(types.NewI64(lhs - rhs))
			default:
				push(types.NewI64(lhs * rhs))
			}
		case wasm.OpPrefixSIMD:
			sub, n, err := wasm.ReadU32(b[pos:])
			if err != nil || sub != 0x0C {
				return fail("unsupported SIMD constant")
			}
			pos += n
			push(types.NewV128(le.Uint64(b[pos:]), le.Uint64(b[pos+8:])))
			pos += 16
		default:
			return fail("unsupported constant opcode")
		}
	}
	return fail("missing end")
}
