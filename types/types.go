package types

import "fmt"

// HeapKind identifies the heap-type component of a reference type. Concrete
// (module-defined) types use HeapComposite plus a *CompositeType.
type HeapKind int8

const (
	HeapAny HeapKind = iota
	HeapEq
	HeapI31
	HeapStruct
	HeapArray
	HeapNone
	HeapFunc
	HeapNoFunc
	HeapExtern
	HeapNoExtern
	HeapExn
	HeapNoExn
	HeapComposite
)

func (h HeapKind) String() string {
	switch h {
	case HeapAny:
		return "any"
	case HeapEq:
		return "eq"
	case HeapI31:
		return "i31"
	case HeapStruct:
		return "struct"
	case HeapArray:
		return "array"
	case HeapNone:
		return "none"
	case HeapFunc:
		return "func"
	case HeapNoFunc:
		return "nofunc"
	case HeapExtern:
		return "extern"
	case HeapNoExtern:
		return "noextern"
	case HeapExn:
		return "exn"
	case HeapNoExn:
		return "noexn"
	case HeapComposite:
		return "composite"
	}
	return fmt.Sprintf("heap(%d)", int8(h))
}

// IsBottom reports whether h is one of the uninhabited bottom types.
func (h HeapKind) IsBottom() bool {
	return h == HeapNone || h == HeapNoFunc || h == HeapNoExtern || h == HeapNoExn
}

// RefType is the reference-type half of a ValType.
type RefType struct {
	Composite *CompositeType // non-nil iff Heap == HeapComposite
	Heap      HeapKind
	Nullable  bool
}

func (r RefType) String() string {
	n := ""
	if r.Nullable {
		n = "null "
	}
	if r.Heap == HeapComposite {
		return fmt.Sprintf("(ref %s%s)", n, r.Composite.Kind)
	}
	return fmt.Sprintf("(ref %s%s)", n, r.Heap)
}

// ValType is a full value type: a kind plus, for references, the ref type.
type ValType struct {
	Ref  RefType
	Kind Kind
}

func I32() ValType  { return ValType{Kind: KindI32} }
func I64() ValType  { return ValType{Kind: KindI64} }
func F32() ValType  { return ValType{Kind: KindF32} }
func F64() ValType  { return ValType{Kind: KindF64} }
func V128() ValType { return ValType{Kind: KindV128} }
func I8() ValType   { return ValType{Kind: KindI8} }
func I16() ValType  { return ValType{Kind: KindI16} }

// Ref builds a reference type over an abstract heap kind.
func Ref(heap HeapKind, nullable bool) ValType {
	return ValType{Kind: KindRef, Ref: RefType{Heap: heap, Nullable: nullable}}
}

// RefOf builds a reference type over a concrete composite type.
func RefOf(ct *CompositeType, nullable bool) ValType {
	return ValType{Kind: KindRef, Ref: RefType{Heap: HeapComposite, Composite: ct, Nullable: nullable}}
}

// FuncRef and ExternRef are the classic MVP reference types.
func FuncRef() ValType   { return Ref(HeapFunc, true) }
func ExternRef() ValType { return Ref(HeapExtern, true) }

func (t ValType) IsRef() bool    { return t.Kind == KindRef }
func (t ValType) IsPacked() bool { return t.Kind.IsPacked() }

// StackType returns the type t has on the operand stack (packed widens to i32).
func (t ValType) StackType() ValType {
	if t.IsPacked() {
		return I32()
	}
	return t
}

func (t ValType) String() string {
	if t.Kind == KindRef {
		return t.Ref.String()
	}
	return t.Kind.String()
}

// Equal is structural equality; concrete composites compare by canonical
// group identity, which interning reduces to pointer equality.
func (t ValType) Equal(o ValType) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.Kind != KindRef {
		return true
	}
	return t.Ref.Nullable == o.Ref.Nullable &&
		t.Ref.Heap == o.Ref.Heap &&
		sameComposite(t.Ref.Composite, o.Ref.Composite)
}

func sameComposite(a, b *CompositeType) bool {
	if a == nil || b == nil {
		return a == b
	}
	// After interning, equal composites share a group.
	return a == b || (a.Group == b.Group && a.Index == b.Index)
}

// FieldType is a struct field or array element: a storage type plus
// mutability.
type FieldType struct {
	Type    ValType
	Mutable bool
}
