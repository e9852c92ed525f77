package interp_test

import (
	"testing"

	"github.com/wippyai/wasm-engine/interp"
	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

const blockVoid = byte(0x40)
const blockI32 = byte(0x7F)

func TestIfElse(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	ft := b.funcType([]types.ValType{types.I32()}, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		localGet(0),
		byte(wasm.OpIf), blockI32,
		i32Const(10),
		byte(wasm.OpElse),
		i32Const(20),
		wasm.OpEnd,
		wasm.OpEnd,
	)...)
	b.exportFunc("pick", f)
	inst := b.instantiate(t, nil)

	got, _ := inst.Invoke("pick", types.NewI32(1))
	wantI32(t, got, 10)
	got, _ = inst.Invoke("pick", types.NewI32(0))
	wantI32(t, got, 20)
}

func TestLoopCountdown(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	ft := b.funcType([]types.ValType{types.I32()}, []types.ValType{types.I32()})
	// sum = 0; while (n != 0) { sum += n; n-- } return sum
	f := b.addFunc(ft, []types.ValType{types.I32()}, body(
		byte(wasm.OpBlock), blockVoid,
		byte(wasm.OpLoop), blockVoid,
		localGet(0),
		byte(0x45), // i32.eqz
		byte(wasm.OpBrIf), u32(1),
		localGet(1), localGet(0), byte(0x6A), // sum + n
		byte(wasm.OpLocalSet), u32(1),
		localGet(0), i32Const(1), byte(0x6B), // n - 1
		byte(wasm.OpLocalSet), u32(0),
		byte(wasm.OpBr), u32(0),
		wasm.OpEnd,
		wasm.OpEnd,
		localGet(1),
		wasm.OpEnd,
	)...)
	b.exportFunc("sum", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("sum", types.NewI32(10))
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 55)
}

func TestBlockWithResultAndBr(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	ft := b.funcType([]types.ValType{types.I32()}, []types.ValType{types.I32()})
	// block (result i32): if arg != 0 br with 7 else fall through with 9
	f := b.addFunc(ft, nil, body(
		byte(wasm.OpBlock), blockI32,
		i32Const(7),
		localGet(0),
		byte(wasm.OpBrIf), u32(0),
		byte(wasm.OpDrop),
		i32Const(9),
		wasm.OpEnd,
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	got, _ := inst.Invoke("f", types.NewI32(1))
	wantI32(t, got, 7)
	got, _ = inst.Invoke("f", types.NewI32(0))
	wantI32(t, got, 9)
}

func TestBrTable(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	ft := b.funcType([]types.ValType{types.I32()}, []types.ValType{types.I32()})
	// br_table over three blocks returning 100, 101, default 999
	f := b.addFunc(ft, nil, body(
		byte(wasm.OpBlock), blockVoid,
		byte(wasm.OpBlock), blockVoid,
		byte(wasm.OpBlock), blockVoid,
		localGet(0),
		byte(wasm.OpBrTable), u32(2), u32(0), u32(1), u32(2),
		wasm.OpEnd,
		i32Const(100),
		byte(wasm.OpReturn),
		wasm.OpEnd,
		i32Const(101),
		byte(wasm.OpReturn),
		wasm.OpEnd,
		i32Const(999),
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	tests := []struct{ in, want int32 }{{0, 100}, {1, 101}, {2, 999}, {50, 999}}
	for _, tt := range tests {
		got, err := inst.Invoke("f", types.NewI32(tt.in))
		if err != nil {
			t.Fatal(err)
		}
		wantI32(t, got, tt.want)
	}
}

func TestSelect(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	ft := b.funcType([]types.ValType{types.I32()}, []types.ValType{types.I64()})
	f := b.addFunc(ft, nil, body(
		i64Const(111), i64Const(222),
		localGet(0),
		byte(wasm.OpSelect),
		wasm.OpEnd,
	)...)
	b.exportFunc("sel", f)
	inst := b.instantiate(t, nil)

	got, _ := inst.Invoke("sel", types.NewI32(1))
	if got[0].I64() != 111 {
		t.Fatalf("select(true) = %d", got[0].I64())
	}
	got, _ = inst.Invoke("sel", types.NewI32(0))
	if got[0].I64() != 222 {
		t.Fatalf("select(false) = %d", got[0].I64())
	}
}

func TestGlobals(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	b.m.Globals = append(b.m.Globals, wasm.Global{
		Type: wasm.GlobalType{Type: types.I32(), Mutable: true},
		Init: wasm.ConstExpr(append(i32Const(40), wasm.OpEnd)),
	})
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		byte(wasm.OpGlobalGet), u32(0),
		i32Const(2), byte(0x6A),
		byte(wasm.OpGlobalSet), u32(0),
		byte(wasm.OpGlobalGet), u32(0),
		wasm.OpEnd,
	)...)
	b.exportFunc("bump", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("bump")
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 42)
	got, _ = inst.Invoke("bump")
	wantI32(t, got, 44)
}

func TestTailCall(t *testing.T) {
	store := runtime.NewStore(interp.New(), runtime.WithMaxCallDepth(30))
	b := newMod(store)
	ft := b.funcType([]types.ValType{types.I32(), types.I32()}, []types.ValType{types.I32()})
	// fact-like accumulator via return_call: f(n, acc) = n==0 ? acc : f(n-1, acc+n)
	f := b.addFunc(ft, nil, body(
		localGet(0),
		byte(0x45), // eqz
		byte(wasm.OpIf), blockVoid,
		localGet(1),
		byte(wasm.OpReturn),
		wasm.OpEnd,
		localGet(0), i32Const(1), byte(0x6B),
		localGet(1), localGet(0), byte(0x6A),
		byte(wasm.OpReturnCall), u32(0),
		wasm.OpEnd,
	)...)
	b.exportFunc("sum", f)
	inst := b.instantiate(t, nil)

	// 1000 iterations would overflow the 30-deep call stack if return_call
	// consumed activation levels.
	got, err := inst.Invoke("sum", types.NewI32(1000), types.NewI32(0))
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 500500)
}
