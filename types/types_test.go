package types

import (
	"math"
	"testing"
)

func TestValueRoundTrip(t *testing.T) {
	if got := NewI32(-5).I32(); got != -5 {
		t.Errorf("i32: got %d", got)
	}
	if got := NewI64(math.MinInt64).I64(); got != math.MinInt64 {
		t.Errorf("i64: got %d", got)
	}
	if got := NewF32(1.5).F32(); got != 1.5 {
		t.Errorf("f32: got %g", got)
	}
	if got := NewF64(math.Copysign(0, -1)).F64(); math.Signbit(got) != true {
		t.Errorf("f64 -0: signbit lost")
	}
	lo, hi := NewV128(0x0102030405060708, 0x090a0b0c0d0e0f10).V128()
	if lo != 0x0102030405060708 || hi != 0x090a0b0c0d0e0f10 {
		t.Errorf("v128: got %x %x", lo, hi)
	}
	if !NewRef(nil).IsNull() {
		t.Error("nil ref should be null")
	}
	if NewRef(I31(7)).IsNull() {
		t.Error("i31 ref should not be null")
	}
}

func TestNaNBitsPreserved(t *testing.T) {
	bits := uint32(0x7fc00001) // non-canonical quiet NaN payload
	v := NewF32(math.Float32frombits(bits))
	if got := math.Float32bits(v.F32()); got != bits {
		t.Errorf("NaN payload: got %08x, want %08x", got, bits)
	}
}

func TestI31SignAndZeroExtend(t *testing.T) {
	neg := I31(-1 & 0x7fffffff)
	if neg.GetS() != -1 {
		t.Errorf("GetS: got %d, want -1", neg.GetS())
	}
	if neg.GetU() != 0x7fffffff {
		t.Errorf("GetU: got %d, want %d", neg.GetU(), 0x7fffffff)
	}
}

func TestPackedWidensToI32(t *testing.T) {
	for _, k := range []Kind{KindI8, KindI16} {
		if k.StackKind() != KindI32 {
			t.Errorf("%v.StackKind() = %v", k, k.StackKind())
		}
		if k.StackSize() != 4 {
			t.Errorf("%v.StackSize() = %d", k, k.StackSize())
		}
	}
	if KindI8.FieldSize() != 1 || KindI16.FieldSize() != 2 {
		t.Error("packed field sizes wrong")
	}
}

func TestFunctionTypeLayout(t *testing.T) {
	ft := NewFunctionType(
		[]ValType{I32(), I64(), F32(), V128(), I32()},
		[]ValType{I64()},
	)
	// i32@0, i64@8 (aligned), f32@16, v128@32 (aligned), i32@48
	want := []uint32{0, 8, 16, 32, 48}
	for i, o := range ft.ParamOffsets {
		if o != want[i] {
			t.Errorf("param %d offset = %d, want %d", i, o, want[i])
		}
	}
	if ft.ParamsSize != 56 {
		t.Errorf("ParamsSize = %d, want 56", ft.ParamsSize)
	}
	if ft.ResultsSize != 8 {
		t.Errorf("ResultsSize = %d, want 8", ft.ResultsSize)
	}
}

func TestStructLayout(t *testing.T) {
	st := NewStructType([]FieldType{
		{Type: I8()},
		{Type: I32(), Mutable: true},
		{Type: I16()},
		{Type: F64()},
	})
	want := []uint32{0, 4, 8, 16}
	for i, o := range st.FieldOffsets {
		if o != want[i] {
			t.Errorf("field %d offset = %d, want %d", i, o, want[i])
		}
	}
	if st.Size != 24 {
		t.Errorf("Size = %d, want 24", st.Size)
	}
}

func newFuncComp(params, results []ValType) *CompositeType {
	return &CompositeType{Kind: CompFunc, Func: NewFunctionType(params, results)}
}

func TestInternDeduplicates(t *testing.T) {
	ts := NewTypeStore()

	g1 := ts.Intern([]*CompositeType{newFuncComp([]ValType{I32()}, []ValType{I32()})})
	g2 := ts.Intern([]*CompositeType{newFuncComp([]ValType{I32()}, []ValType{I32()})})
	if g1 != g2 {
		t.Error("identical groups should intern to the same RecGroup")
	}

	g3 := ts.Intern([]*CompositeType{newFuncComp([]ValType{I64()}, []ValType{I32()})})
	if g3 == g1 {
		t.Error("different signatures must not be merged")
	}
}

func TestInternRecursiveGroup(t *testing.T) {
	ts := NewTypeStore()

	// struct node { next: ref null node }
	build := func() []*CompositeType {
		node := &CompositeType{Kind: CompStruct}
		node.Struct = NewStructType([]FieldType{
			{Type: RefOf(node, true), Mutable: true},
		})
		return []*CompositeType{node}
	}

	g1 := ts.Intern(build())
	g2 := ts.Intern(build())
	if g1 != g2 {
		t.Error("structurally equal recursive groups should intern together")
	}
	if g1.Types[0].Group != g1 {
		t.Error("interned member must point back at its group")
	}
}

func TestInternGroupNeverChanges(t *testing.T) {
	ts := NewTypeStore()
	c := newFuncComp(nil, nil)
	g := ts.Intern([]*CompositeType{c})
	if c.Group != g || c.Index != 0 {
		t.Fatal("membership not assigned")
	}
	// Re-interning an equal group returns the canonical one and does not
	// touch the original membership.
	ts.Intern([]*CompositeType{newFuncComp(nil, nil)})
	if c.Group != g || c.Index != 0 {
		t.Error("canonical membership changed after re-intern")
	}
}

func TestSubtypeLattice(t *testing.T) {
	ts := NewTypeStore()
	st := &CompositeType{Kind: CompStruct, Struct: NewStructType(nil)}
	ts.Intern([]*CompositeType{st})

	tests := []struct {
		name string
		sub  ValType
		sup  ValType
		want bool
	}{
		{"i31 <= eq", Ref(HeapI31, false), Ref(HeapEq, false), true},
		{"eq <= any", Ref(HeapEq, false), Ref(HeapAny, false), true},
		{"struct comp <= struct", RefOf(st, false), Ref(HeapStruct, false), true},
		{"struct comp <= eq", RefOf(st, false), Ref(HeapEq, false), true},
		{"struct comp !<= func", RefOf(st, false), Ref(HeapFunc, false), false},
		{"none <= struct comp", Ref(HeapNone, true), RefOf(st, true), true},
		{"nofunc !<= any", Ref(HeapNoFunc, false), Ref(HeapAny, false), false},
		{"func !<= any", Ref(HeapFunc, false), Ref(HeapAny, false), false},
		{"nullable !<= non-null", Ref(HeapAny, true), Ref(HeapAny, false), false},
		{"non-null <= nullable", Ref(HeapAny, false), Ref(HeapAny, true), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSubType(tt.sub, tt.sup); got != tt.want {
				t.Errorf("IsSubType(%v, %v) = %v, want %v", tt.sub, tt.sup, got, tt.want)
			}
		})
	}
}

func TestSubtypeChain(t *testing.T) {
	ts := NewTypeStore()
	base := &CompositeType{Kind: CompStruct, Struct: NewStructType([]FieldType{{Type: I32()}})}
	derived := &CompositeType{
		Kind:   CompStruct,
		Struct: NewStructType([]FieldType{{Type: I32()}, {Type: I64()}}),
		Parent: base,
	}
	ts.Intern([]*CompositeType{base, derived})

	if !IsSubType(RefOf(derived, false), RefOf(base, false)) {
		t.Error("derived should be a subtype of base")
	}
	if IsSubType(RefOf(base, false), RefOf(derived, false)) {
		t.Error("base must not be a subtype of derived")
	}
}

func TestRefMatches(t *testing.T) {
	if !RefMatches(nil, RefType{Heap: HeapAny, Nullable: true}) {
		t.Error("null should match nullable target")
	}
	if RefMatches(nil, RefType{Heap: HeapAny, Nullable: false}) {
		t.Error("null must not match non-nullable target")
	}
	if !RefMatches(I31(1), RefType{Heap: HeapEq, Nullable: false}) {
		t.Error("i31 should match eq")
	}
	if RefMatches(I31(1), RefType{Heap: HeapFunc, Nullable: true}) {
		t.Error("i31 must not match func")
	}
}
