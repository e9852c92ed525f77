package interp_test

import (
	"testing"

	"github.com/wippyai/wasm-engine/interp"
	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

// tagModule builds a module with tag 0 carrying one i32 and tag 1 empty.
func tagModule(store *runtime.Store) *modBuilder {
	b := newMod(store)
	i32Tag := b.funcType([]types.ValType{types.I32()}, nil)
	emptyTag := b.funcType(nil, nil)
	b.addTag(i32Tag)
	b.addTag(emptyTag)
	return b
}

func TestThrowCaughtByMatchingTag(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := tagModule(store)
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		byte(wasm.OpTry), blockI32,
		i32Const(42),
		byte(wasm.OpThrow), u32(0),
		byte(wasm.OpCatch), u32(0),
		// payload (42) is on the stack
		wasm.OpEnd,
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("f")
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 42)
}

func TestThrowOfDifferentTagPropagates(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := tagModule(store)
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		byte(wasm.OpTry), blockI32,
		byte(wasm.OpThrow), u32(1), // tag U, no payload
		byte(wasm.OpCatch), u32(0),
		wasm.OpEnd,
		i32Const(0),
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	_, err := inst.Invoke("f")
	wantTrap(t, err, runtime.TrapUncaughtException)
	trap := err.(*runtime.Trap)
	if trap.Exception == nil || trap.Exception.Tag.Index() != 1 {
		t.Fatalf("expected escaping exception with tag 1, got %+v", trap.Exception)
	}
}

func TestCatchAllRecoversOtherTags(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := tagModule(store)
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		byte(wasm.OpTry), blockI32,
		byte(wasm.OpThrow), u32(1),
		byte(wasm.OpCatch), u32(0),
		byte(wasm.OpCatchAll),
		i32Const(7),
		wasm.OpEnd,
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("f")
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 7)
}

func TestCatchAllRecoversTrap(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := tagModule(store)
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		byte(wasm.OpTry), blockI32,
		i32Const(1), i32Const(0),
		byte(0x6D), // i32.div_s traps
		byte(wasm.OpCatchAll),
		i32Const(-1),
		wasm.OpEnd,
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("f")
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, -1)
}

func TestExceptionCrossesFrames(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := tagModule(store)
	thrower := b.addFunc(b.funcType(nil, nil), nil, body(
		i32Const(99),
		byte(wasm.OpThrow), u32(0),
		wasm.OpEnd,
	)...)
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		byte(wasm.OpTry), blockI32,
		byte(wasm.OpCall), u32(thrower),
		i32Const(0),
		byte(wasm.OpCatch), u32(0),
		wasm.OpEnd,
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("f")
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 99)
}

func TestNestedTryInnerMismatchOuterCatches(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := tagModule(store)
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		byte(wasm.OpTry), blockI32,
		byte(wasm.OpTry), blockVoid,
		i32Const(5),
		byte(wasm.OpThrow), u32(0),
		byte(wasm.OpCatch), u32(1), // wrong tag: skip
		wasm.OpEnd,
		i32Const(0),
		byte(wasm.OpCatch), u32(0),
		wasm.OpEnd,
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("f")
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 5)
}

func TestRethrow(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := tagModule(store)
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		byte(wasm.OpTry), blockI32,
		byte(wasm.OpTry), blockI32,
		i32Const(11),
		byte(wasm.OpThrow), u32(0),
		byte(wasm.OpCatchAll),
		byte(wasm.OpRethrow), u32(0),
		wasm.OpEnd,
		byte(wasm.OpCatch), u32(0),
		wasm.OpEnd,
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("f")
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 11)
}

func TestTryTableRoutesToLabel(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := tagModule(store)
	ft := b.funcType(nil, []types.ValType{types.I32()})
	// block (result i32) { try_table catch 0 -> label 0 { throw 0(33); 0 } }
	f := b.addFunc(ft, nil, body(
		byte(wasm.OpBlock), blockI32,
		byte(wasm.OpTryTable), blockI32,
		u32(1),                                  // one clause
		wasm.CatchKindCatch, u32(0), u32(0),     // catch tag 0 -> label 0 (the block)
		i32Const(33),
		byte(wasm.OpThrow), u32(0),
		wasm.OpEnd, // try_table
		wasm.OpEnd, // block
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("f")
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 33)
}
