package interp_test

import (
	"testing"

	"github.com/wippyai/wasm-engine/interp"
	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

func gcOp(sub uint32) []byte {
	return append([]byte{wasm.OpPrefixGC}, u32(sub)...)
}

// pointModule defines struct {x: i32, y: i32 mut} as type 0.
func pointModule(store *runtime.Store) *modBuilder {
	b := newMod(store)
	point := &types.CompositeType{
		Kind: types.CompStruct,
		Struct: types.NewStructType([]types.FieldType{
			{Type: types.I32()},
			{Type: types.I32(), Mutable: true},
		}),
		Final: true,
	}
	g := store.Types().Intern([]*types.CompositeType{point})
	b.m.Types = append(b.m.Types, g.Types[0])
	b.m.Groups = append(b.m.Groups, g)
	return b
}

func TestStructNewGetSet(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := pointModule(store)
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, []types.ValType{types.RefOf(b.m.Types[0], true)}, body(
		i32Const(3), i32Const(4),
		gcOp(wasm.GCStructNew), u32(0),
		byte(wasm.OpLocalSet), u32(0),
		// p.y = p.x + p.y
		localGet(0),
		localGet(0), gcOp(wasm.GCStructGet), u32(0), u32(0),
		localGet(0), gcOp(wasm.GCStructGet), u32(0), u32(1),
		byte(0x6A),
		gcOp(wasm.GCStructSet), u32(0), u32(1),
		localGet(0), gcOp(wasm.GCStructGet), u32(0), u32(1),
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

func TestStructGetNullTraps(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := pointModule(store)
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		byte(wasm.OpRefNull), s32(0), // (ref null 0)
		gcOp(wasm.GCStructGet), u32(0), u32(0),
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	_, err := inst.Invoke("f")
	wantTrap(t, err, runtime.TrapNullAccess)
}

// byteArrayModule defines array of mutable i8 as type 0.
func byteArrayModule(store *runtime.Store) *modBuilder {
	b := newMod(store)
	arr := &types.CompositeType{
		Kind:  types.CompArray,
		Array: types.NewArrayType(types.FieldType{Type: types.I8(), Mutable: true}),
		Final: true,
	}
	g := store.Types().Intern([]*types.CompositeType{arr})
	b.m.Types = append(b.m.Types, g.Types[0])
	b.m.Groups = append(b.m.Groups, g)
	return b
}

func TestArrayNewGetSetLen(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := byteArrayModule(store)
	arrRef := types.RefOf(b.m.Types[0], true)
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, []types.ValType{arrRef}, body(
		// a = array.new(0xFF, 8); a[3] = 0x80; return len + a[3]_s
		i32Const(0xFF), i32Const(8),
		gcOp(wasm.GCArrayNew), u32(0),
		byte(wasm.OpLocalSet), u32(0),
		localGet(0), i32Const(3), i32Const(0x80),
		gcOp(wasm.GCArraySet), u32(0),
		localGet(0), gcOp(wasm.GCArrayLen),
		localGet(0), i32Const(3),
		gcOp(wasm.GCArrayGetS), u32(0),
		byte(0x6A),
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("f")
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 8-128)
}

func TestArrayOutOfBounds(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := byteArrayModule(store)
	ft := b.funcType([]types.ValType{types.I32()}, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		i32Const(0), i32Const(4),
		gcOp(wasm.GCArrayNewDefault), u32(0),
		localGet(0),
		gcOp(wasm.GCArrayGetU), u32(0),
		wasm.OpEnd,
	)...)
	b.exportFunc("f", f)
	inst := b.instantiate(t, nil)

	if _, err := inst.Invoke("f", types.NewI32(3)); err != nil {
		t.Fatalf("in bounds: %v", err)
	}
	_, err := inst.Invoke("f", types.NewI32(4))
	wantTrap(t, err, runtime.TrapOutOfBoundsArrayAccess)
}

func TestI31RoundTrip(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	ft := b.funcType([]types.ValType{types.I32()}, []types.ValType{types.I32()})
	fs := b.addFunc(ft, nil, body(
		localGet(0),
		gcOp(wasm.GCRefI31),
		gcOp(wasm.GCI31GetS),
		wasm.OpEnd,
	)...)
	b.exportFunc("s", fs)
	fu := b.addFunc(ft, nil, body(
		localGet(0),
		gcOp(wasm.GCRefI31),
		gcOp(wasm.GCI31GetU),
		wasm.OpEnd,
	)...)
	b.exportFunc("u", fu)
	inst := b.instantiate(t, nil)

	got, _ := inst.Invoke("s", types.NewI32(-1))
	wantI32(t, got, -1)
	got, _ = inst.Invoke("u", types.NewI32(-1))
	wantI32(t, got, 0x7FFFFFFF)
}

func TestRefTestAndCast(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := pointModule(store)
	anyNull := types.Ref(types.HeapAny, true)
	ft := b.funcType([]types.ValType{types.I32()}, []types.ValType{types.I32()})
	// build either a struct or an i31 and ref.test it against struct
	f := b.addFunc(ft, []types.ValType{anyNull}, body(
		localGet(0),
		byte(wasm.OpIf), blockVoid,
		i32Const(1), i32Const(2),
		gcOp(wasm.GCStructNew), u32(0),
		byte(wasm.OpLocalSet), u32(1),
		byte(wasm.OpElse),
		i32Const(5),
		gcOp(wasm.GCRefI31),
		byte(wasm.OpLocalSet), u32(1),
		wasm.OpEnd,
		localGet(1),
		gcOp(wasm.GCRefTest), s32(int32(wasm.HeapTypeStruct)),
		wasm.OpEnd,
	)...)
	b.exportFunc("is_struct", f)

	// ref.cast to struct traps on an i31
	g := b.addFunc(b.funcType(nil, nil), nil, body(
		i32Const(5),
		gcOp(wasm.GCRefI31),
		gcOp(wasm.GCRefCast), s32(int32(wasm.HeapTypeStruct)),
		byte(wasm.OpDrop),
		wasm.OpEnd,
	)...)
	b.exportFunc("bad_cast", g)
	inst := b.instantiate(t, nil)

	got, _ := inst.Invoke("is_struct", types.NewI32(1))
	wantI32(t, got, 1)
	got, _ = inst.Invoke("is_struct", types.NewI32(0))
	wantI32(t, got, 0)

	_, err := inst.Invoke("bad_cast")
	wantTrap(t, err, runtime.TrapBadCast)
}
