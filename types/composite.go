package types

// CompKind discriminates composite (group-member) types.
type CompKind uint8

const (
	CompFunc CompKind = iota
	CompStruct
	CompArray
)

func (k CompKind) String() string {
	switch k {
	case CompFunc:
		return "func"
	case CompStruct:
		return "struct"
	case CompArray:
		return "array"
	}
	return "comp?"
}

// CompositeType is one member of a recursive type group. Exactly one of
// Func, Struct, Array is non-nil, matching Kind. Parent is the declared
// supertype, if any; Final forbids further subtyping.
//
// A composite's Group/Index are assigned once by TypeStore.Intern and never
// change afterwards.
type CompositeType struct {
	Func   *FunctionType
	Struct *StructType
	Array  *ArrayType
	Parent *CompositeType
	Group  *RecGroup
	Index  int
	Kind   CompKind
	Final  bool
}

// MatchesSupertype reports whether t equals want or declares it somewhere on
// its supertype chain.
func (t *CompositeType) MatchesSupertype(want *CompositeType) bool {
	for c := t; c != nil; c = c.Parent {
		if sameComposite(c, want) {
			return true
		}
	}
	return false
}

// FunctionType is a function signature with its precomputed frame layout for
// the parameter and result regions. Offsets are byte offsets from the frame
// base; the result region overlays the start of the frame (results are only
// written when parameters are dead).
type FunctionType struct {
	Params  []ValType
	Results []ValType

	ParamOffsets  []uint32
	ResultOffsets []uint32
	ParamsSize    uint32
	ResultsSize   uint32
}

// NewFunctionType builds a signature and computes its stack layout.
func NewFunctionType(params, results []ValType) *FunctionType {
	ft := &FunctionType{Params: params, Results: results}
	ft.ParamOffsets, ft.ParamsSize = layoutValues(params)
	ft.ResultOffsets, ft.ResultsSize = layoutValues(results)
	return ft
}

// layoutValues assigns naturally aligned consecutive byte offsets.
func layoutValues(vals []ValType) ([]uint32, uint32) {
	offsets := make([]uint32, len(vals))
	var pos uint32
	for i, v := range vals {
		a := v.Kind.StackAlign()
		pos = alignUp(pos, a)
		offsets[i] = pos
		pos += v.Kind.StackSize()
	}
	return offsets, alignUp(pos, 8)
}

func alignUp(v, a uint32) uint32 {
	if a == 0 {
		return v
	}
	return (v + a - 1) &^ (a - 1)
}

// EqualSignature compares parameter and result lists structurally.
func (ft *FunctionType) EqualSignature(o *FunctionType) bool {
	if len(ft.Params) != len(o.Params) || len(ft.Results) != len(o.Results) {
		return false
	}
	for i := range ft.Params {
		if !ft.Params[i].Equal(o.Params[i]) {
			return false
		}
	}
	for i := range ft.Results {
		if !ft.Results[i].Equal(o.Results[i]) {
			return false
		}
	}
	return true
}

// StructType describes a GC struct: field storage types plus the byte layout
// used by struct objects.
type StructType struct {
	Fields       []FieldType
	FieldOffsets []uint32
	Size         uint32
}

// NewStructType computes field offsets with natural alignment.
func NewStructType(fields []FieldType) *StructType {
	st := &StructType{Fields: fields, FieldOffsets: make([]uint32, len(fields))}
	var pos uint32
	for i, f := range fields {
		sz := f.Type.Kind.FieldSize()
		pos = alignUp(pos, sz)
		st.FieldOffsets[i] = pos
		pos += sz
	}
	st.Size = alignUp(pos, 8)
	return st
}

// ArrayType describes a GC array: one element storage type.
type ArrayType struct {
	Element     FieldType
	ElementSize uint32
}

func NewArrayType(elem FieldType) *ArrayType {
	return &ArrayType{Element: elem, ElementSize: elem.Type.Kind.FieldSize()}
}

// RecGroup is an interned, immutable recursive type group. Members refer to
// each other by pointer; identity of the group is canonical identity of all
// its members.
type RecGroup struct {
	Types []*CompositeType
	hash  uint64
	id    uint64
}

// ID is the store-unique canonical id of the group.
func (g *RecGroup) ID() uint64 { return g.id }
