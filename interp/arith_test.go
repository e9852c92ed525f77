package interp_test

import (
	"math"
	"testing"

	"github.com/wippyai/wasm-engine/interp"
	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

// compile1 builds an exported function "f" that pushes every parameter and
// then runs one opcode sequence.
func compile1(t *testing.T, store *runtime.Store, params, results []types.ValType, code []byte) *runtime.Instance {
	t.Helper()
	b := newMod(store)
	ft := b.funcType(params, results)
	var full []byte
	for i := range params {
		full = append(full, localGet(uint32(i))...)
	}
	full = append(full, code...)
	full = append(full, wasm.OpEnd)
	f := b.addFunc(ft, nil, full...)
	b.exportFunc("f", f)
	return b.instantiate(t, nil)
}

func TestI32DivTraps(t *testing.T) {
	store := runtime.NewStore(interp.New())
	inst := compile1(t, store,
		[]types.ValType{types.I32(), types.I32()}, []types.ValType{types.I32()},
		[]byte{0x6D}) // i32.div_s

	if _, err := inst.Invoke("f", types.NewI32(math.MinInt32), types.NewI32(-1)); err == nil {
		t.Fatal("expected overflow trap")
	} else {
		wantTrap(t, err, runtime.TrapIntegerOverflow)
	}

	_, err := inst.Invoke("f", types.NewI32(7), types.NewI32(0))
	wantTrap(t, err, runtime.TrapIntegerDivideByZero)

	got, err := inst.Invoke("f", types.NewI32(-7), types.NewI32(2))
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, -3)
}

func TestI64RemMinByMinusOne(t *testing.T) {
	store := runtime.NewStore(interp.New())
	inst := compile1(t, store,
		[]types.ValType{types.I64(), types.I64()}, []types.ValType{types.I64()},
		[]byte{0x81}) // i64.rem_s

	got, err := inst.Invoke("f", types.NewI64(math.MinInt64), types.NewI64(-1))
	if err != nil {
		t.Fatal(err)
	}
	if got[0].I64() != 0 {
		t.Fatalf("rem = %d, want 0", got[0].I64())
	}
}

func TestReinterpretRoundTrip(t *testing.T) {
	store := runtime.NewStore(interp.New())
	// f32.reinterpret_i32 then i32.reinterpret_f32
	inst := compile1(t, store,
		[]types.ValType{types.I32()}, []types.ValType{types.I32()},
		[]byte{0xBE, 0xBC})

	for _, bits := range []uint32{0, 1, 0x7FC00001, 0xFFFFFFFF, 0x80000000} {
		got, err := inst.Invoke("f", types.NewI32(int32(bits)))
		if err != nil {
			t.Fatal(err)
		}
		if uint32(got[0].I32()) != bits {
			t.Errorf("round trip of %#x = %#x", bits, uint32(got[0].I32()))
		}
	}
}

func TestTruncSatLaws(t *testing.T) {
	store := runtime.NewStore(interp.New())

	// i32.trunc_sat_f32_u
	instU := compile1(t, store,
		[]types.ValType{types.F32()}, []types.ValType{types.I32()},
		append([]byte{wasm.OpPrefixMisc}, u32(uint32(wasm.MiscI32TruncSatF32U))...))

	tests := []struct {
		in   float32
		want uint32
	}{
		{float32(math.NaN()), 0},
		{float32(math.Inf(1)), 0xFFFFFFFF},
		{-1.5, 0},
		{3.9, 3},
	}
	for _, tt := range tests {
		got, err := instU.Invoke("f", types.NewF32(tt.in))
		if err != nil {
			t.Fatal(err)
		}
		if uint32(got[0].I32()) != tt.want {
			t.Errorf("trunc_sat_u(%g) = %d, want %d", tt.in, uint32(got[0].I32()), tt.want)
		}
	}

	// i32.trunc_sat_f32_s of -inf saturates to INT32_MIN
	instS := compile1(t, store,
		[]types.ValType{types.F32()}, []types.ValType{types.I32()},
		append([]byte{wasm.OpPrefixMisc}, u32(uint32(wasm.MiscI32TruncSatF32S))...))
	got, err := instS.Invoke("f", types.NewF32(float32(math.Inf(-1))))
	if err != nil {
		t.Fatal(err)
	}
	if got[0].I32() != math.MinInt32 {
		t.Errorf("trunc_sat_s(-inf) = %d", got[0].I32())
	}
}

func TestTruncTraps(t *testing.T) {
	store := runtime.NewStore(interp.New())
	inst := compile1(t, store,
		[]types.ValType{types.F64()}, []types.ValType{types.I32()},
		[]byte{0xAA}) // i32.trunc_f64_s

	_, err := inst.Invoke("f", types.NewF64(math.NaN()))
	wantTrap(t, err, runtime.TrapInvalidConversionToInteger)

	_, err = inst.Invoke("f", types.NewF64(math.MaxInt32+1))
	wantTrap(t, err, runtime.TrapIntegerOverflow)

	got, err := inst.Invoke("f", types.NewF64(-2.9))
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, -2)
}

func TestFloatMinNaNAndSignedZero(t *testing.T) {
	store := runtime.NewStore(interp.New())
	inst := compile1(t, store,
		[]types.ValType{types.F64(), types.F64()}, []types.ValType{types.F64()},
		[]byte{0xA4}) // f64.min

	got, err := inst.Invoke("f", types.NewF64(1), types.NewF64(math.NaN()))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsNaN(got[0].F64()) {
		t.Errorf("min(1, NaN) = %g", got[0].F64())
	}

	got, err = inst.Invoke("f", types.NewF64(math.Copysign(0, -1)), types.NewF64(0))
	if err != nil {
		t.Fatal(err)
	}
	if !math.Signbit(got[0].F64()) {
		t.Error("min(-0, +0) should be -0")
	}
}

func TestI32Extend8S(t *testing.T) {
	store := runtime.NewStore(interp.New())
	inst := compile1(t, store,
		[]types.ValType{types.I32()}, []types.ValType{types.I32()},
		[]byte{wasm.OpI32Extend8S})

	got, err := inst.Invoke("f", types.NewI32(0x80))
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, -128)
}

func TestI64Arithmetic(t *testing.T) {
	store := runtime.NewStore(interp.New())
	inst := compile1(t, store,
		[]types.ValType{types.I64(), types.I64()}, []types.ValType{types.I64()},
		[]byte{0x7C}) // i64.add

	got, err := inst.Invoke("f", types.NewI64(math.MaxInt64), types.NewI64(1))
	if err != nil {
		t.Fatal(err)
	}
	if got[0].I64() != math.MinInt64 {
		t.Errorf("wraparound add = %d", got[0].I64())
	}
}

func TestRotl(t *testing.T) {
	store := runtime.NewStore(interp.New())
	inst := compile1(t, store,
		[]types.ValType{types.I32(), types.I32()}, []types.ValType{types.I32()},
		[]byte{0x77}) // i32.rotl

	rotlArg := uint32(0x80000001)
	got, err := inst.Invoke("f", types.NewI32(int32(rotlArg)), types.NewI32(1))
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 3)
}
