package interp_test

import (
	"math"
	"testing"

	"github.com/wippyai/wasm-engine/interp"
	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

func simdOp(sub uint32) []byte {
	return append([]byte{wasm.OpPrefixSIMD}, u32(sub)...)
}

func v128Const(lanes [16]byte) []byte {
	out := simdOp(0x0C)
	return append(out, lanes[:]...)
}

func i32x4(a, b, c, d uint32) [16]byte {
	var out [16]byte
	for i, v := range []uint32{a, b, c, d} {
		out[4*i] = byte(v)
		out[4*i+1] = byte(v >> 8)
		out[4*i+2] = byte(v >> 16)
		out[4*i+3] = byte(v >> 24)
	}
	return out
}

func f32x4(a, b, c, d float32) [16]byte {
	return i32x4(math.Float32bits(a), math.Float32bits(b), math.Float32bits(c), math.Float32bits(d))
}

// laneProbe compiles: v = op(const A, const B); return extract_lane i32 v[lane]
func laneProbe(t *testing.T, store *runtime.Store, a, b [16]byte, op uint32) *runtime.Instance {
	t.Helper()
	bld := newMod(store)
	// One export per lane; lane immediates are compile-time constants.
	for lane := 0; lane < 4; lane++ {
		f := bld.addFunc(bld.funcType(nil, []types.ValType{types.I32()}), nil, body(
			v128Const(a),
			v128Const(b),
			simdOp(op),
			simdOp(0x1B), byte(lane), // i32x4.extract_lane
			wasm.OpEnd,
		)...)
		bld.exportFunc(laneName(lane), f)
	}
	return bld.instantiate(t, nil)
}

func laneName(lane int) string {
	return string(rune('a' + lane))
}

func TestI32x4Add(t *testing.T) {
	store := runtime.NewStore(interp.New())
	inst := laneProbe(t, store, i32x4(1, 2, 3, 4), i32x4(10, 20, 30, 40), 0xAE)

	want := []int32{11, 22, 33, 44}
	for lane := 0; lane < 4; lane++ {
		got, err := inst.Invoke(laneName(lane))
		if err != nil {
			t.Fatal(err)
		}
		wantI32(t, got, want[lane])
	}
}

func TestF32x4MinNaNAndSignedZero(t *testing.T) {
	store := runtime.NewStore(interp.New())
	nan := float32(math.NaN())
	negZero := float32(math.Copysign(0, -1))
	inst := laneProbe(t, store,
		f32x4(nan, 1, negZero, 3),
		f32x4(0, 2, 0, nan),
		0xE8) // f32x4.min

	// lanes 0 and 3 must be NaN
	for _, lane := range []int{0, 3} {
		got, err := inst.Invoke(laneName(lane))
		if err != nil {
			t.Fatal(err)
		}
		bits := uint32(got[0].I32())
		if bits&0x7F800000 != 0x7F800000 || bits&0x007FFFFF == 0 {
			t.Errorf("lane %d: %#x is not a NaN", lane, bits)
		}
	}
	// lane 1: min(1,2) = 1
	got, _ := inst.Invoke(laneName(1))
	if math.Float32frombits(uint32(got[0].I32())) != 1 {
		t.Error("lane 1 wrong")
	}
	// lane 2: min(-0, +0) = -0
	got, _ = inst.Invoke(laneName(2))
	if uint32(got[0].I32()) != 0x80000000 {
		t.Errorf("lane 2 = %#x, want -0", uint32(got[0].I32()))
	}
}

func TestLaneReplaceExtractLaw(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	// f(lane_value) = extract[1]( replace[1](v, x) ), and extract[2] unchanged
	ft := b.funcType([]types.ValType{types.I32()}, []types.ValType{types.I32()})
	repl := b.addFunc(ft, nil, body(
		v128Const(i32x4(5, 6, 7, 8)),
		localGet(0),
		simdOp(0x1C), byte(1), // i32x4.replace_lane 1
		simdOp(0x1B), byte(1), // i32x4.extract_lane 1
		wasm.OpEnd,
	)...)
	b.exportFunc("replaced", repl)
	other := b.addFunc(ft, nil, body(
		v128Const(i32x4(5, 6, 7, 8)),
		localGet(0),
		simdOp(0x1C), byte(1),
		simdOp(0x1B), byte(2), // untouched lane
		wasm.OpEnd,
	)...)
	b.exportFunc("other", other)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("replaced", types.NewI32(1234))
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 1234)

	got, err = inst.Invoke("other", types.NewI32(1234))
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 7)
}

func TestI8x16SplatAllTrueBitmask(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	ft := b.funcType([]types.ValType{types.I32()}, []types.ValType{types.I32()})
	allTrue := b.addFunc(ft, nil, body(
		localGet(0),
		simdOp(0x0F), // i8x16.splat
		simdOp(0x63), // i8x16.all_true
		wasm.OpEnd,
	)...)
	b.exportFunc("all_true", allTrue)
	bitmask := b.addFunc(ft, nil, body(
		localGet(0),
		simdOp(0x0F),
		simdOp(0x64), // i8x16.bitmask
		wasm.OpEnd,
	)...)
	b.exportFunc("bitmask", bitmask)
	inst := b.instantiate(t, nil)

	got, _ := inst.Invoke("all_true", types.NewI32(7))
	wantI32(t, got, 1)
	got, _ = inst.Invoke("all_true", types.NewI32(0))
	wantI32(t, got, 0)
	got, _ = inst.Invoke("bitmask", types.NewI32(-1))
	wantI32(t, got, 0xFFFF)
}

func TestShuffle(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	var a, bb [16]byte
	for i := range a {
		a[i] = byte(i)       // 0..15
		bb[i] = byte(16 + i) // 16..31
	}
	// shuffle picking lane 31 (b[15]) into lane 0, rest from a reversed
	var sel [16]byte
	sel[0] = 31
	for i := 1; i < 16; i++ {
		sel[i] = byte(15 - i)
	}
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		v128Const(a),
		v128Const(bb),
		simdOp(0x0D), sel[:],
		simdOp(0x15), byte(0), // i8x16.extract_lane_s 0
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("f")
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 31)
}

func TestV128BitwiseAndMemory(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	b.addMemory(1)
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		// store v128 at 32, load it back, xor with itself, any_true == 0
		i32Const(32),
		v128Const(i32x4(0xFFFF0000, 1, 2, 3)),
		simdOp(0x0B), memArg(4, 0), // v128.store
		i32Const(32),
		simdOp(0x00), memArg(4, 0), // v128.load
		i32Const(32),
		simdOp(0x00), memArg(4, 0),
		simdOp(0x51), // v128.xor
		simdOp(0x53), // v128.any_true
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("f")
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 0)
}
