package interp_test

import (
	"testing"

	"github.com/wippyai/wasm-engine/interp"
	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

// storeThenLoadInstance builds memory(1) plus a function storing then loading an
// i32 at the given address operand.
func storeThenLoadInstance(t *testing.T, store *runtime.Store) *runtime.Instance {
	t.Helper()
	b := newMod(store)
	b.addMemory(1)
	ft := b.funcType([]types.ValType{types.I32(), types.I32()}, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		localGet(0), localGet(1),
		byte(wasm.OpI32Store), memArg(2, 0),
		localGet(0),
		byte(wasm.OpI32Load), memArg(2, 0),
		wasm.OpEnd,
	)...)
	b.exportFunc("store_then_load", f)
	return b.instantiate(t, nil)
}

func TestStoreThenLoad(t *testing.T) {
	store := runtime.NewStore(interp.New())
	inst := storeThenLoadInstance(t, store)

	storeVal := uint32(0xDEADBEEF)
	got, err := inst.Invoke("store_then_load", types.NewI32(0), types.NewI32(int32(storeVal)))
	if err != nil {
		t.Fatal(err)
	}
	if uint32(got[0].I32()) != 0xDEADBEEF {
		t.Fatalf("loaded %#x", uint32(got[0].I32()))
	}
}

func TestLoadOutOfBoundsTrapsAndPreservesMemory(t *testing.T) {
	store := runtime.NewStore(interp.New())
	inst := storeThenLoadInstance(t, store)

	_, err := inst.Invoke("store_then_load", types.NewI32(65536), types.NewI32(1))
	wantTrap(t, err, runtime.TrapOutOfBoundsMemAccess)

	// Partial out-of-bounds at the page boundary also traps.
	_, err = inst.Invoke("store_then_load", types.NewI32(65533), types.NewI32(1))
	wantTrap(t, err, runtime.TrapOutOfBoundsMemAccess)

	mem := exportedMemoryOf(t, inst)
	data, ok := mem.Read(65532, 4)
	if !ok {
		t.Fatal("read failed")
	}
	for i, v := range data {
		if v != 0 {
			t.Errorf("byte %d modified by trapped store: %#x", i, v)
		}
	}
}

func exportedMemoryOf(t *testing.T, inst *runtime.Instance) *runtime.Memory {
	t.Helper()
	return inst.Memory(0)
}

func TestLoadWithOffsetImmediate(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	b.addMemory(1)
	ft := b.funcType([]types.ValType{types.I32()}, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		localGet(0),
		byte(wasm.OpI32Load8U), memArg(0, 65535),
		wasm.OpEnd,
	)...)
	b.exportFunc("peek_last", f)
	inst := b.instantiate(t, nil)

	if _, err := inst.Invoke("peek_last", types.NewI32(0)); err != nil {
		t.Fatalf("in-bounds with offset: %v", err)
	}
	_, err := inst.Invoke("peek_last", types.NewI32(1))
	wantTrap(t, err, runtime.TrapOutOfBoundsMemAccess)
}

func TestSignExtendingLoads(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	b.addMemory(1)
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		i32Const(0), i32Const(-1),
		byte(wasm.OpI32Store8), memArg(0, 0),
		i32Const(0),
		byte(wasm.OpI32Load8S), memArg(0, 0),
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

func TestMemoryGrow(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	b.addMemory(1)
	ft := b.funcType([]types.ValType{types.I32()}, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		localGet(0),
		byte(wasm.OpMemoryGrow), u32(0),
		wasm.OpEnd,
	)...)
	b.exportFunc("grow", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("grow", types.NewI32(2))
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 1) // previous page count

	mem := inst.Memory(0)
	if mem.PageCount() != 3 {
		t.Fatalf("pages = %d, want 3", mem.PageCount())
	}
	// Fresh bytes are zero.
	data, ok := mem.Read(2*65536, 16)
	if !ok {
		t.Fatal("read of grown region failed")
	}
	for _, v := range data {
		if v != 0 {
			t.Fatal("grown memory not zeroed")
		}
	}

	// Past the max (min+4): grow fails with -1 and size is unchanged.
	got, err = inst.Invoke("grow", types.NewI32(1000))
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, -1)
	if mem.PageCount() != 3 {
		t.Fatalf("failed grow changed size to %d", mem.PageCount())
	}
}

func TestMemoryFillAndCopy(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	b.addMemory(1)
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		// fill [8, 12) with 0x41
		i32Const(8), i32Const(0x41), i32Const(4),
		byte(wasm.OpPrefixMisc), u32(uint32(wasm.MiscMemoryFill)), u32(0),
		// copy [8,12) to [100,104)
		i32Const(100), i32Const(8), i32Const(4),
		byte(wasm.OpPrefixMisc), u32(uint32(wasm.MiscMemoryCopy)), u32(0), u32(0),
		i32Const(100),
		byte(wasm.OpI32Load), memArg(2, 0),
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("f")
	if err != nil {
		t.Fatal(err)
	}
	if uint32(got[0].I32()) != 0x41414141 {
		t.Fatalf("copied word = %#x", uint32(got[0].I32()))
	}
}

func TestActiveDataSegment(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	b.addMemory(1)
	b.m.Datas = append(b.m.Datas, wasm.DataSegment{
		Mode:   wasm.SegmentActive,
		Offset: wasm.ConstExpr(append(i32Const(16), wasm.OpEnd)),
		Data:   []byte{1, 2, 3, 4},
	})
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		i32Const(16),
		byte(wasm.OpI32Load), memArg(2, 0),
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("f")
	if err != nil {
		t.Fatal(err)
	}
	if uint32(got[0].I32()) != 0x04030201 {
		t.Fatalf("segment word = %#x", uint32(got[0].I32()))
	}
}
