package interp_test

import (
	"testing"

	"github.com/wippyai/wasm-engine/interp"
	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

// indirectModule: table of 4 funcrefs, element 0 = add(i32,i32)->i32,
// element 1 = noop()->(), element 2 left null.
func indirectModule(t *testing.T, store *runtime.Store) *runtime.Instance {
	t.Helper()
	b := newMod(store)
	b.addTable(4)

	addFT := b.funcType([]types.ValType{types.I32(), types.I32()}, []types.ValType{types.I32()})
	noopFT := b.funcType(nil, nil)

	add := b.addFunc(addFT, nil, body(localGet(0), localGet(1), byte(0x6A), wasm.OpEnd)...)
	noop := b.addFunc(noopFT, nil, body(wasm.OpEnd)...)

	refFunc := func(idx uint32) wasm.ConstExpr {
		e := append([]byte{wasm.OpRefFunc}, u32(idx)...)
		return wasm.ConstExpr(append(e, wasm.OpEnd))
	}
	b.m.Elements = append(b.m.Elements, wasm.ElementSegment{
		Mode:   wasm.SegmentActive,
		Offset: wasm.ConstExpr(append(i32Const(0), wasm.OpEnd)),
		Type:   types.FuncRef(),
		Inits:  []wasm.ConstExpr{refFunc(add), refFunc(noop)},
	})

	// dispatch(i: i32, a: i32, b: i32) -> i32 via call_indirect of addFT
	dispFT := b.funcType([]types.ValType{types.I32(), types.I32(), types.I32()}, []types.ValType{types.I32()})
	disp := b.addFunc(dispFT, nil, body(
		localGet(1), localGet(2), localGet(0),
		byte(wasm.OpCallIndirect), u32(addFT), u32(0),
		wasm.OpEnd,
	)...)
	b.exportFunc("dispatch", disp)
	return b.instantiate(t, nil)
}

func TestCallIndirect(t *testing.T) {
	store := runtime.NewStore(interp.New())
	inst := indirectModule(t, store)

	got, err := inst.Invoke("dispatch", types.NewI32(0), types.NewI32(30), types.NewI32(12))
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 42)
}

func TestCallIndirectOutOfRange(t *testing.T) {
	store := runtime.NewStore(interp.New())
	inst := indirectModule(t, store)

	_, err := inst.Invoke("dispatch", types.NewI32(5), types.NewI32(1), types.NewI32(2))
	wantTrap(t, err, runtime.TrapUndefinedElement)
}

func TestCallIndirectNullElement(t *testing.T) {
	store := runtime.NewStore(interp.New())
	inst := indirectModule(t, store)

	_, err := inst.Invoke("dispatch", types.NewI32(2), types.NewI32(1), types.NewI32(2))
	wantTrap(t, err, runtime.TrapUninitializedElement)
}

func TestCallIndirectTypeMismatch(t *testing.T) {
	store := runtime.NewStore(interp.New())
	inst := indirectModule(t, store)

	// element 1 is noop: ()->(), expected (i32,i32)->i32
	_, err := inst.Invoke("dispatch", types.NewI32(1), types.NewI32(1), types.NewI32(2))
	wantTrap(t, err, runtime.TrapIndirectCallTypeMismatch)
}

func TestCallRef(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	addFT := b.funcType([]types.ValType{types.I32(), types.I32()}, []types.ValType{types.I32()})
	add := b.addFunc(addFT, nil, body(localGet(0), localGet(1), byte(0x6A), wasm.OpEnd)...)

	mainFT := b.funcType(nil, []types.ValType{types.I32()})
	main := b.addFunc(mainFT, nil, body(
		i32Const(20), i32Const(22),
		byte(wasm.OpRefFunc), u32(add),
		byte(wasm.OpCallRef), u32(addFT),
		wasm.OpEnd,
	)...)
	b.exportFunc("main", main)
	// ref.func requires the function to be declared; an element declaration
	// mirrors what toolchains emit.
	b.m.Elements = append(b.m.Elements, wasm.ElementSegment{
		Mode:  wasm.SegmentDeclared,
		Type:  types.FuncRef(),
		Inits: []wasm.ConstExpr{wasm.ConstExpr(append(append([]byte{wasm.OpRefFunc}, u32(add)...), wasm.OpEnd))},
	})
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("main")
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 42)
}

func TestCallRefNullTraps(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	voidFT := b.funcType(nil, nil)
	main := b.addFunc(voidFT, nil, body(
		byte(wasm.OpRefNull), []byte{0x70}, // funcref
		byte(wasm.OpCallRef), u32(voidFT),
		wasm.OpEnd,
	)...)
	b.exportFunc("main", main)
	inst := b.instantiate(t, nil)

	_, err := inst.Invoke("main")
	wantTrap(t, err, runtime.TrapNullAccess)
}

func TestMultiValueResults(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	pairFT := b.funcType([]types.ValType{types.I32(), types.I32()},
		[]types.ValType{types.I32(), types.I32()})
	// swap(a, b) = (b, a)
	swap := b.addFunc(pairFT, nil, body(localGet(1), localGet(0), wasm.OpEnd)...)

	mainFT := b.funcType(nil, []types.ValType{types.I32()})
	main := b.addFunc(mainFT, nil, body(
		i32Const(1), i32Const(2),
		byte(wasm.OpCall), u32(swap),
		byte(0x6B), // i32.sub: 2 - 1
		wasm.OpEnd,
	)...)
	b.exportFunc("main", main)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("main")
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 1)
}
