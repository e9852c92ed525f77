package wasm

import (
	"testing"

	"github.com/wippyai/wasm-engine/types"
)

func TestLEB128RoundTrip(t *testing.T) {
	u32s := []uint32{0, 1, 127, 128, 255, 624485, 0xFFFFFFFF}
	for _, want := range u32s {
		enc := appendU32(nil, want)
		got, n, err := readU32(enc)
		if err != nil || n != len(enc) || got != want {
			t.Errorf("u32 %d: got %d (n=%d, err=%v)", want, got, n, err)
		}
	}

	s64s := []int64{0, 1, -1, 63, 64, -64, -65, 624485, -624485, 1<<62 - 1, -(1 << 62)}
	for _, want := range s64s {
		enc := appendS64(nil, want)
		got, n, err := readS64(enc)
		if err != nil || n != len(enc) || got != want {
			t.Errorf("s64 %d: got %d (n=%d, err=%v)", want, got, n, err)
		}
	}
}

func TestReadU32Overflow(t *testing.T) {
	if _, _, err := readU32([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x01}); err != ErrOverflow {
		t.Errorf("expected overflow, got %v", err)
	}
	if _, _, err := readU32([]byte{0x80, 0x80}); err != ErrUnexpectedEOF {
		t.Errorf("expected EOF, got %v", err)
	}
}

// buildTestModule creates a small module exercising most sections.
func buildTestModule(ts *types.TypeStore) *Module {
	addComp := &types.CompositeType{
		Kind: types.CompFunc,
		Func: types.NewFunctionType(
			[]types.ValType{types.I32(), types.I32()},
			[]types.ValType{types.I32()}),
		Final: true,
	}
	g := ts.Intern([]*types.CompositeType{addComp})

	m := &Module{
		Types:  []*types.CompositeType{g.Types[0]},
		Groups: []*types.RecGroup{g},
		Funcs:  []FuncDesc{{Type: g.Types[0]}},
		Code: []FuncBody{{
			Locals: []types.ValType{types.I64(), types.I64(), types.I32()},
			Body:   []byte{OpLocalGet, 0, OpLocalGet, 1, 0x6A, OpEnd},
		}},
		Memories: []MemoryType{{Min: 1, Max: 4, HasMax: true}},
		Tables:   []TableType{{Elem: types.FuncRef(), Min: 2}},
		Globals: []Global{{
			Type: GlobalType{Type: types.I32(), Mutable: true},
			Init: ConstExpr{OpI32Const, 41, OpEnd},
		}},
		Exports: []Export{
			{Name: "add", Kind: KindFunc, Index: 0},
			{Name: "mem", Kind: KindMemory, Index: 0},
		},
		Datas: []DataSegment{{
			Mode:   SegmentActive,
			Offset: ConstExpr{OpI32Const, 8, OpEnd},
			Data:   []byte{1, 2, 3},
		}},
	}
	return m
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ts := types.NewTypeStore()
	m := buildTestModule(ts)

	bin, err := Encode(m)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Decode(bin, ts)
	if err != nil {
		t.Fatal(err)
	}

	if len(got.Types) != 1 || got.Types[0].Kind != types.CompFunc {
		t.Fatalf("types: %+v", got.Types)
	}
	// Interning must map the decoded group back to the original.
	if got.Groups[0] != m.Groups[0] {
		t.Error("decoded group not canonicalised to the encoder's group")
	}
	if len(got.Funcs) != 1 || len(got.Code) != 1 {
		t.Fatalf("funcs/code: %d/%d", len(got.Funcs), len(got.Code))
	}
	if len(got.Code[0].Locals) != 3 {
		t.Errorf("locals: %v", got.Code[0].Locals)
	}
	if string(got.Code[0].Body) != string(m.Code[0].Body) {
		t.Errorf("body: %x vs %x", got.Code[0].Body, m.Code[0].Body)
	}
	if len(got.Memories) != 1 || got.Memories[0].Min != 1 || !got.Memories[0].HasMax || got.Memories[0].Max != 4 {
		t.Errorf("memories: %+v", got.Memories)
	}
	if len(got.Tables) != 1 || got.Tables[0].Min != 2 {
		t.Errorf("tables: %+v", got.Tables)
	}
	if len(got.Globals) != 1 || !got.Globals[0].Type.Mutable {
		t.Errorf("globals: %+v", got.Globals)
	}
	if idx, ok := got.ExportIndex("add", KindFunc); !ok || idx != 0 {
		t.Errorf("export add: %d, %v", idx, ok)
	}
	if len(got.Datas) != 1 || string(got.Datas[0].Data) != "\x01\x02\x03" {
		t.Errorf("datas: %+v", got.Datas)
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	ts := types.NewTypeStore()
	if _, err := Decode([]byte{1, 2, 3, 4, 5, 6, 7, 8}, ts); err == nil {
		t.Fatal("expected error")
	}
}

func TestDecodeRejectsTruncatedSection(t *testing.T) {
	ts := types.NewTypeStore()
	m := buildTestModule(ts)
	bin, err := Encode(m)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(bin[:len(bin)-3], ts); err == nil {
		t.Fatal("expected error for truncated module")
	}
}

func TestRecursiveTypeRoundTrip(t *testing.T) {
	ts := types.NewTypeStore()
	node := &types.CompositeType{Kind: types.CompStruct}
	node.Struct = types.NewStructType([]types.FieldType{
		{Type: types.I32()},
		{Type: types.RefOf(node, true), Mutable: true},
	})
	g := ts.Intern([]*types.CompositeType{node})

	m := &Module{
		Types:  []*types.CompositeType{g.Types[0]},
		Groups: []*types.RecGroup{g},
	}
	bin, err := Encode(m)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(bin, ts)
	if err != nil {
		t.Fatal(err)
	}
	if got.Groups[0] != g {
		t.Error("self-referential struct group did not canonicalise")
	}
}
