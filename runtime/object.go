package runtime

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/wasm-engine/types"
)

var le = binary.LittleEndian

// StructObject is a GC struct instance. Scalar fields live in data at the
// type's field offsets; reference fields live in refs indexed by field
// position. A struct never outlives the recursive group defining its
// layout, which the *CompositeType keeps alive.
type StructObject struct {
	typ  *types.CompositeType
	data []byte
	refs []types.Reference
}

func NewStructObject(typ *types.CompositeType) *StructObject {
	st := typ.Struct
	return &StructObject{
		typ:  typ,
		data: make([]byte, st.Size),
		refs: make([]types.Reference, len(st.Fields)),
	}
}

func (o *StructObject) RefKind() types.RefKind               { return types.RefKindStruct }
func (o *StructObject) CompositeType() *types.CompositeType  { return o.typ }
func (o *StructObject) StructType() *types.StructType        { return o.typ.Struct }

// GetField reads field i onto a 64-bit payload, widening packed fields
// with the given signedness.
func (o *StructObject) GetField(i int, signed bool) uint64 {
	f := o.typ.Struct.Fields[i]
	off := o.typ.Struct.FieldOffsets[i]
	return readField(o.data[off:], f.Type.Kind, signed)
}

// SetField writes a 64-bit payload into field i, narrowing packed fields.
func (o *StructObject) SetField(i int, v uint64) {
	f := o.typ.Struct.Fields[i]
	off := o.typ.Struct.FieldOffsets[i]
	writeField(o.data[off:], f.Type.Kind, v)
}

// GetField128 reads a v128 field.
func (o *StructObject) GetField128(i int) (uint64, uint64) {
	off := o.typ.Struct.FieldOffsets[i]
	return le.Uint64(o.data[off:]), le.Uint64(o.data[off+8:])
}

// SetField128 writes a v128 field.
func (o *StructObject) SetField128(i int, lo, hi uint64) {
	off := o.typ.Struct.FieldOffsets[i]
	le.PutUint64(o.data[off:], lo)
	le.PutUint64(o.data[off+8:], hi)
}

func (o *StructObject) GetRef(i int) types.Reference     { return o.refs[i] }
func (o *StructObject) SetRef(i int, r types.Reference) { o.refs[i] = r }

// ArrayObject is a GC array instance with the same scalar/reference split
// as StructObject.
type ArrayObject struct {
	typ  *types.CompositeType
	data []byte
	refs []types.Reference
	n    uint32
}

// NewArrayObject allocates an array of n elements; ok is false when the
// byte size overflows.
func NewArrayObject(typ *types.CompositeType, n uint32) (*ArrayObject, bool) {
	at := typ.Array
	size := uint64(at.ElementSize) * uint64(n)
	if size > math.MaxInt32 {
		return nil, false
	}
	o := &ArrayObject{typ: typ, n: n}
	if at.Element.Type.IsRef() {
		o.refs = make([]types.Reference, n)
	} else {
		o.data = make([]byte, size)
	}
	return o, true
}

func (o *ArrayObject) RefKind() types.RefKind              { return types.RefKindArray }
func (o *ArrayObject) CompositeType() *types.CompositeType { return o.typ }
func (o *ArrayObject) ArrayType() *types.ArrayType         { return o.typ.Array }
func (o *ArrayObject) Len() uint32                         { return o.n }

// IsRefArray reports whether elements are references.
func (o *ArrayObject) IsRefArray() bool { return o.typ.Array.Element.Type.IsRef() }

func (o *ArrayObject) Get(i uint32, signed bool) uint64 {
	at := o.typ.Array
	return readField(o.data[uint64(i)*uint64(at.ElementSize):], at.Element.Type.Kind, signed)
}

func (o *ArrayObject) Set(i uint32, v uint64) {
	at := o.typ.Array
	writeField(o.data[uint64(i)*uint64(at.ElementSize):], at.Element.Type.Kind, v)
}

func (o *ArrayObject) Get128(i uint32) (uint64, uint64) {
	off := uint64(i) * 16
	return le.Uint64(o.data[off:]), le.Uint64(o.data[off+8:])
}

func (o *ArrayObject) Set128(i uint32, lo, hi uint64) {
	off := uint64(i) * 16
	le.PutUint64(o.data[off:], lo)
	le.PutUint64(o.data[off+8:], hi)
}

func (o *ArrayObject) GetRef(i uint32) types.Reference    { return o.refs[i] }
func (o *ArrayObject) SetRef(i uint32, r types.Reference) { o.refs[i] = r }

// CopyFrom copies n elements from src[srcIdx] into o[dstIdx]; bounds are
// checked by the caller. Overlapping self-copy is handled by Go's copy.
func (o *ArrayObject) CopyFrom(dstIdx uint32, src *ArrayObject, srcIdx, n uint32) {
	if o.IsRefArray() {
		copy(o.refs[dstIdx:dstIdx+n], src.refs[srcIdx:srcIdx+n])
		return
	}
	es := uint64(o.typ.Array.ElementSize)
	copy(o.data[uint64(dstIdx)*es:uint64(dstIdx+n)*es], src.data[uint64(srcIdx)*es:uint64(srcIdx+n)*es])
}

// InitData copies raw bytes from a data segment into scalar elements.
func (o *ArrayObject) InitData(dstIdx uint32, src []byte) {
	es := uint64(o.typ.Array.ElementSize)
	copy(o.data[uint64(dstIdx)*es:], src)
}

// readField widens a stored field onto a 64-bit payload.
func readField(b []byte, k types.Kind, signed bool) uint64 {
	switch k {
	case types.KindI8:
		if signed {
			return uint64(uint32(int32(int8(b[0]))))
		}
		return uint64(b[0])
	case types.KindI16:
		if signed {
			return uint64(uint32(int32(int16(le.Uint16(b)))))
		}
		return uint64(le.Uint16(b))
	case types.KindI32, types.KindF32:
		return uint64(le.Uint32(b))
	default:
		return le.Uint64(b)
	}
}

// writeField narrows a 64-bit payload into a stored field.
func writeField(b []byte, k types.Kind, v uint64) {
	switch k {
	case types.KindI8:
		b[0] = byte(v)
	case types.KindI16:
		le.PutUint16(b, uint16(v))
	case types.KindI32, types.KindF32:
		le.PutUint32(b, uint32(v))
	default:
		le.PutUint64(b, v)
	}
}

// ExternRef wraps an arbitrary host value as an extern reference.
type ExternRef struct {
	Value any
}

func (*ExternRef) RefKind() types.RefKind { return types.RefKindExtern }
