// Package testbed runs the same encoded modules under this engine and
// under wazero and compares observable behavior.
package testbed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tetratelabs/wazero"

	"github.com/wippyai/wasm-engine/interp"
	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

// buildArith assembles a module exporting a few scalar functions and a
// memory round trip, then encodes it to binary.
func buildArith(t *testing.T, ts *types.TypeStore) []byte {
	t.Helper()

	ft := func(params, results []types.ValType) (*types.CompositeType, *types.RecGroup) {
		c := &types.CompositeType{Kind: types.CompFunc, Func: types.NewFunctionType(params, results), Final: true}
		g := ts.Intern([]*types.CompositeType{c})
		return g.Types[0], g
	}
	i32 := types.I32()
	binT, binG := ft([]types.ValType{i32, i32}, []types.ValType{i32})
	memT, memG := ft([]types.ValType{i32, i32}, []types.ValType{i32})

	m := &wasm.Module{
		Types:  []*types.CompositeType{binT, memT},
		Groups: []*types.RecGroup{binG, memG},
		Funcs: []wasm.FuncDesc{
			{Type: binT},
			{Type: binT, TypeIndex: 0},
			{Type: memT, TypeIndex: 1},
		},
		Memories: []wasm.MemoryType{{Min: 1, Max: 2, HasMax: true}},
		Code: []wasm.FuncBody{
			{Body: []byte{wasm.OpLocalGet, 0, wasm.OpLocalGet, 1, 0x6A, wasm.OpEnd}}, // add
			{Body: []byte{wasm.OpLocalGet, 0, wasm.OpLocalGet, 1, 0x6D, wasm.OpEnd}}, // div_s
			{Body: []byte{ // store then load
				wasm.OpLocalGet, 0, wasm.OpLocalGet, 1,
				wasm.OpI32Store, 2, 0,
				wasm.OpLocalGet, 0,
				wasm.OpI32Load, 2, 0,
				wasm.OpEnd,
			}},
		},
		Exports: []wasm.Export{
			{Name: "add", Kind: wasm.KindFunc, Index: 0},
			{Name: "div_s", Kind: wasm.KindFunc, Index: 1},
			{Name: "store_load", Kind: wasm.KindFunc, Index: 2},
		},
	}

	bin, err := wasm.Encode(m)
	require.NoError(t, err)
	return bin
}

func instantiateBoth(t *testing.T, bin []byte) (*runtime.Instance, func(string, ...uint64) ([]uint64, error), func()) {
	t.Helper()

	// This engine decodes against its own store's canonical types.
	store := runtime.NewStore(interp.New())
	mod, err := wasm.Decode(bin, store.Types())
	require.NoError(t, err)
	inst, err := store.Instantiate(mod, nil)
	require.NoError(t, err)

	// wazero.
	ctx := context.Background()
	r := wazero.NewRuntime(ctx)
	wmod, err := r.Instantiate(ctx, bin)
	require.NoError(t, err)

	call := func(fn string, args ...uint64) ([]uint64, error) {
		return wmod.ExportedFunction(fn).Call(ctx, args...)
	}
	cleanup := func() { _ = r.Close(ctx) }
	return inst, call, cleanup
}

func TestDifferentialAdd(t *testing.T) {
	ts := types.NewTypeStore()
	bin := buildArith(t, ts)
	inst, wcall, done := instantiateBoth(t, bin)
	defer done()

	cases := [][2]int32{{2, 3}, {-5, 5}, {1 << 30, 1 << 30}, {-1, -1}}
	for _, c := range cases {
		ours, err := inst.Invoke("add", types.NewI32(c[0]), types.NewI32(c[1]))
		require.NoError(t, err)

		theirs, err := wcall("add", uint64(uint32(c[0])), uint64(uint32(c[1])))
		require.NoError(t, err)

		require.Equal(t, uint32(theirs[0]), uint32(ours[0].I32()),
			"add(%d, %d) diverges", c[0], c[1])
	}
}

func TestDifferentialDivTraps(t *testing.T) {
	ts := types.NewTypeStore()
	bin := buildArith(t, ts)
	inst, wcall, done := instantiateBoth(t, bin)
	defer done()

	// Both engines agree on the quotient.
	dividend := int32(-40)
	ours, err := inst.Invoke("div_s", types.NewI32(dividend), types.NewI32(4))
	require.NoError(t, err)
	theirs, err := wcall("div_s", uint64(uint32(dividend)), 4)
	require.NoError(t, err)
	require.Equal(t, uint32(theirs[0]), uint32(ours[0].I32()))

	// Both engines trap on divide by zero.
	_, ourErr := inst.Invoke("div_s", types.NewI32(1), types.NewI32(0))
	require.Error(t, ourErr)
	var trap *runtime.Trap
	require.ErrorAs(t, ourErr, &trap)
	require.Equal(t, runtime.TrapIntegerDivideByZero, trap.Code)

	_, theirErr := wcall("div_s", 1, 0)
	require.Error(t, theirErr)
}

func TestDifferentialMemory(t *testing.T) {
	ts := types.NewTypeStore()
	bin := buildArith(t, ts)
	inst, wcall, done := instantiateBoth(t, bin)
	defer done()

	storeVal := uint32(0xDEADBEEF)
	ours, err := inst.Invoke("store_load", types.NewI32(128), types.NewI32(int32(storeVal)))
	require.NoError(t, err)
	theirs, err := wcall("store_load", 128, uint64(storeVal))
	require.NoError(t, err)
	require.Equal(t, uint32(theirs[0]), uint32(ours[0].I32()))

	// Out of bounds traps in both engines.
	_, ourErr := inst.Invoke("store_load", types.NewI32(65536), types.NewI32(1))
	require.Error(t, ourErr)
	_, theirErr := wcall("store_load", 65536, 1)
	require.Error(t, theirErr)
}
