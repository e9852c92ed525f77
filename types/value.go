package types

import (
	"fmt"
	"math"
)

// Kind identifies a value or storage kind.
type Kind uint8

const (
	KindVoid Kind = iota
	KindI32
	KindI64
	KindF32
	KindF64
	KindV128
	// Packed storage kinds, valid only inside struct fields and array
	// elements. They widen to i32 on the operand stack.
	KindI8
	KindI16
	KindRef
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "void"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindV128:
		return "v128"
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindRef:
		return "ref"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// IsPacked reports whether k is a packed storage kind.
func (k Kind) IsPacked() bool {
	return k == KindI8 || k == KindI16
}

// StackKind returns the kind a value of kind k has on the operand stack.
func (k Kind) StackKind() Kind {
	if k.IsPacked() {
		return KindI32
	}
	return k
}

// StackSize returns the byte width of kind k on the operand stack.
func (k Kind) StackSize() uint32 {
	switch k.StackKind() {
	case KindI32, KindF32:
		return 4
	case KindI64, KindF64, KindRef:
		return 8
	case KindV128:
		return 16
	}
	return 0
}

// StackAlign returns the natural alignment of kind k on the operand stack.
func (k Kind) StackAlign() uint32 {
	return k.StackSize()
}

// FieldSize returns the byte width of kind k inside a struct or array.
func (k Kind) FieldSize() uint32 {
	switch k {
	case KindI8:
		return 1
	case KindI16:
		return 2
	default:
		return k.StackSize()
	}
}

// RefKind identifies the concrete class of a non-null reference.
type RefKind uint8

const (
	RefKindFunc RefKind = iota
	RefKindExtern
	RefKindException
	RefKindStruct
	RefKindArray
	RefKindI31
)

// Reference is implemented by every heap object the engine can hold a
// reference to: functions, host externs, exception packages, structs,
// arrays, and boxed 31-bit integers. A nil Reference is the null reference.
type Reference interface {
	RefKind() RefKind
}

// Typed is implemented by references whose class carries a composite type
// (functions, structs, arrays); it is consulted by ref.cast and ref.test.
type Typed interface {
	Reference
	CompositeType() *CompositeType
}

// I31 is a boxed 31-bit integer reference.
type I31 int32

func (I31) RefKind() RefKind { return RefKindI31 }

// GetS returns the sign-extended payload.
func (i I31) GetS() int32 { return int32(i) << 1 >> 1 }

// GetU returns the zero-extended payload.
func (i I31) GetU() int32 { return int32(uint32(i<<1) >> 1) }

// Value is a tagged union over the WebAssembly value kinds.
type Value struct {
	lo   uint64
	hi   uint64 // high half of a v128
	ref  Reference
	kind Kind
}

func NewI32(v int32) Value  { return Value{lo: uint64(uint32(v)), kind: KindI32} }
func NewI64(v int64) Value  { return Value{lo: uint64(v), kind: KindI64} }
func NewF32(v float32) Value {
	return Value{lo: uint64(math.Float32bits(v)), kind: KindF32}
}
func NewF64(v float64) Value {
	return Value{lo: math.Float64bits(v), kind: KindF64}
}
func NewV128(lo, hi uint64) Value { return Value{lo: lo, hi: hi, kind: KindV128} }

// NewRef wraps a reference; ref may be nil for the null reference.
func NewRef(ref Reference) Value { return Value{ref: ref, kind: KindRef} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) I32() int32         { return int32(uint32(v.lo)) }
func (v Value) I64() int64         { return int64(v.lo) }
func (v Value) F32() float32       { return math.Float32frombits(uint32(v.lo)) }
func (v Value) F64() float64       { return math.Float64frombits(v.lo) }
func (v Value) V128() (uint64, uint64) { return v.lo, v.hi }
func (v Value) Ref() Reference     { return v.ref }

// Bits returns the low 64 bits of the scalar payload.
func (v Value) Bits() uint64 { return v.lo }

// IsNull reports whether v is a null reference.
func (v Value) IsNull() bool { return v.kind == KindRef && v.ref == nil }

func (v Value) String() string {
	switch v.kind {
	case KindI32:
		return fmt.Sprintf("i32:%d", v.I32())
	case KindI64:
		return fmt.Sprintf("i64:%d", v.I64())
	case KindF32:
		return fmt.Sprintf("f32:%g", v.F32())
	case KindF64:
		return fmt.Sprintf("f64:%g", v.F64())
	case KindV128:
		return fmt.Sprintf("v128:0x%016x%016x", v.hi, v.lo)
	case KindRef:
		if v.ref == nil {
			return "ref:null"
		}
		return fmt.Sprintf("ref:%T", v.ref)
	}
	return "void"
}
