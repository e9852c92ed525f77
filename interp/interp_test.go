package interp_test

import (
	"testing"

	"github.com/wippyai/wasm-engine/interp"
	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

// modBuilder assembles a wasm.Module directly against a store's type
// store, with raw expression bytes as function bodies.
type modBuilder struct {
	store *runtime.Store
	m     *wasm.Module
}

func newMod(store *runtime.Store) *modBuilder {
	return &modBuilder{store: store, m: &wasm.Module{}}
}

func (b *modBuilder) funcType(params, results []types.ValType) uint32 {
	comp := &types.CompositeType{
		Kind:  types.CompFunc,
		Func:  types.NewFunctionType(params, results),
		Final: true,
	}
	g := b.store.Types().Intern([]*types.CompositeType{comp})
	idx := uint32(len(b.m.Types))
	b.m.Types = append(b.m.Types, g.Types[0])
	b.m.Groups = append(b.m.Groups, g)
	return idx
}

func (b *modBuilder) addFunc(typeIdx uint32, locals []types.ValType, body ...byte) uint32 {
	idx := uint32(len(b.m.Funcs))
	b.m.Funcs = append(b.m.Funcs, wasm.FuncDesc{Type: b.m.Types[typeIdx], TypeIndex: typeIdx})
	b.m.Code = append(b.m.Code, wasm.FuncBody{Locals: locals, Body: body})
	return idx
}

func (b *modBuilder) exportFunc(name string, idx uint32) {
	b.m.Exports = append(b.m.Exports, wasm.Export{Name: name, Kind: wasm.KindFunc, Index: idx})
}

func (b *modBuilder) addMemory(minPages uint64) {
	b.m.Memories = append(b.m.Memories, wasm.MemoryType{Min: minPages, Max: minPages + 4, HasMax: true})
}

func (b *modBuilder) addTable(minElems uint64) {
	b.m.Tables = append(b.m.Tables, wasm.TableType{Elem: types.FuncRef(), Min: minElems})
}

func (b *modBuilder) addTag(typeIdx uint32) {
	b.m.Tags = append(b.m.Tags, wasm.TagType{Type: b.m.Types[typeIdx].Func, TypeIndex: typeIdx})
}

func (b *modBuilder) instantiate(t *testing.T, imports runtime.Imports) *runtime.Instance {
	t.Helper()
	inst, err := b.store.Instantiate(b.m, imports)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	return inst
}

// body assembles raw expression bytes.
func body(parts ...any) []byte {
	var out []byte
	for _, p := range parts {
		switch v := p.(type) {
		case byte:
			out = append(out, v)
		case int:
			out = append(out, byte(v))
		case []byte:
			out = append(out, v...)
		default:
			panic("unsupported body part")
		}
	}
	return out
}

func u32(v uint32) []byte { return wasm.AppendU32(nil, v) }
func s32(v int32) []byte  { return wasm.AppendS32(nil, v) }
func s64(v int64) []byte  { return wasm.AppendS64(nil, v) }

func localGet(i uint32) []byte { return append([]byte{wasm.OpLocalGet}, u32(i)...) }
func i32Const(v int32) []byte  { return append([]byte{wasm.OpI32Const}, s32(v)...) }
func i64Const(v int64) []byte  { return append([]byte{wasm.OpI64Const}, s64(v)...) }

// memArg encodes align + offset.
func memArg(align, offset uint32) []byte {
	return append(u32(align), u32(offset)...)
}

func wantI32(t *testing.T, got []types.Value, want int32) {
	t.Helper()
	if len(got) != 1 {
		t.Fatalf("want 1 result, got %d", len(got))
	}
	if got[0].I32() != want {
		t.Fatalf("result = %d, want %d", got[0].I32(), want)
	}
}

func wantTrap(t *testing.T, err error, code runtime.TrapCode) {
	t.Helper()
	trap, ok := err.(*runtime.Trap)
	if !ok {
		t.Fatalf("want trap %v, got error %v", code, err)
	}
	if trap.Code != code {
		t.Fatalf("trap = %v, want %v", trap.Code, code)
	}
}

func TestInvokeAdd(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	ft := b.funcType([]types.ValType{types.I32(), types.I32()}, []types.ValType{types.I32()})
	f := b.addFunc(ft, nil, body(
		localGet(0), localGet(1), byte(0x6A), // i32.add
		wasm.OpEnd,
	)...)
	b.exportFunc("add", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("add", types.NewI32(2), types.NewI32(3))
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 5)
}

func TestLocalsDefaultToZero(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	ft := b.funcType(nil, []types.ValType{types.I32()})
	f := b.addFunc(ft, []types.ValType{types.I32(), types.I64()}, body(
		localGet(0),
		wasm.OpEnd,
	)...)
	b.exportFunc("zero", f)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("zero")
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 0)
}

func TestUnreachableTraps(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	ft := b.funcType(nil, nil)
	f := b.addFunc(ft, nil, body(wasm.OpUnreachable, wasm.OpEnd)...)
	b.exportFunc("boom", f)
	inst := b.instantiate(t, nil)

	_, err := inst.Invoke("boom")
	wantTrap(t, err, runtime.TrapUnreachable)
}

func TestDirectCallPassesArgumentsBitForBit(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	binFT := b.funcType([]types.ValType{types.I64(), types.F64()}, []types.ValType{types.I64()})
	// callee: return its first argument
	callee := b.addFunc(binFT, nil, body(localGet(0), wasm.OpEnd)...)
	mainFT := b.funcType(nil, []types.ValType{types.I64()})
	main := b.addFunc(mainFT, nil, body(
		i64Const(-1234567890123),
		byte(0x44), []byte{0, 0, 0, 0, 0, 0, 0xF8, 0x7F}, // f64.const NaN payload
		byte(wasm.OpCall), u32(callee),
		wasm.OpEnd,
	)...)
	b.exportFunc("main", main)
	inst := b.instantiate(t, nil)

	got, err := inst.Invoke("main")
	if err != nil {
		t.Fatal(err)
	}
	if got[0].I64() != -1234567890123 {
		t.Fatalf("callee saw %d", got[0].I64())
	}
}

func TestHostFunctionRoundTrip(t *testing.T) {
	store := runtime.NewStore(interp.New())
	double := runtime.NewHostFunction(store,
		[]types.ValType{types.I32()}, []types.ValType{types.I32()},
		func(_ *runtime.Store, args []types.Value) ([]types.Value, error) {
			return []types.Value{types.NewI32(args[0].I32() * 2)}, nil
		})

	b := newMod(store)
	hostFT := b.funcType([]types.ValType{types.I32()}, []types.ValType{types.I32()})
	b.m.Imports = append(b.m.Imports, wasm.Import{
		Module: "env", Name: "double", Kind: wasm.KindFunc, FuncTypeIndex: hostFT,
	})
	b.m.Funcs = append(b.m.Funcs, wasm.FuncDesc{Type: b.m.Types[hostFT], TypeIndex: hostFT, Imported: true})
	b.m.NumImportedFuncs = 1

	main := b.addFunc(hostFT, nil, body(
		localGet(0),
		byte(wasm.OpCall), u32(0),
		wasm.OpEnd,
	)...)
	b.exportFunc("main", main)

	imports := runtime.Imports{}.Add("env", "double", runtime.FuncExtern(double))
	inst := b.instantiate(t, imports)

	got, err := inst.Invoke("main", types.NewI32(21))
	if err != nil {
		t.Fatal(err)
	}
	wantI32(t, got, 42)
}

func TestStackOverflowTrap(t *testing.T) {
	store := runtime.NewStore(interp.New(), runtime.WithMaxCallDepth(50))
	b := newMod(store)
	ft := b.funcType(nil, nil)
	// self-recursive function
	f := b.addFunc(ft, nil, body(byte(wasm.OpCall), u32(0), wasm.OpEnd)...)
	b.exportFunc("rec", f)
	inst := b.instantiate(t, nil)

	_, err := inst.Invoke("rec")
	wantTrap(t, err, runtime.TrapStackOverflow)
}

func TestTerminationFlag(t *testing.T) {
	store := runtime.NewStore(interp.New())
	b := newMod(store)
	ft := b.funcType(nil, nil)
	f := b.addFunc(ft, nil, body(wasm.OpEnd)...)
	b.exportFunc("noop", f)
	inst := b.instantiate(t, nil)

	store.Terminate()
	_, err := inst.Invoke("noop")
	wantTrap(t, err, runtime.TrapTerminated)

	store.ClearTermination()
	if _, err := inst.Invoke("noop"); err != nil {
		t.Fatalf("after clearing termination: %v", err)
	}
}
