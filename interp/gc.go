package interp

import (
	"github.com/wippyai/wasm-engine/bytecode"
	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/types"
)

// execTable handles the table instruction family.
func (ec *ExecutionContext) execTable(op bytecode.Opcode, in bytecode.Instr, inst *runtime.Instance, fr frameView) bool {
	oob := func() { ec.trap = runtime.NewTrap(runtime.TrapOutOfBoundsTableAccess) }

	switch op {
	case bytecode.OpTableGet:
		table := inst.Table(in.U32(8))
		ref, ok := table.Get(uint64(fr.u32(fr.abs(in.Off(2)))))
		if !ok {
			oob()
			break
		}
		fr.setRef(fr.abs(in.Off(4)), ref)
	case bytecode.OpTableSet:
		table := inst.Table(in.U32(8))
		if !table.Set(uint64(fr.u32(fr.abs(in.Off(2)))), fr.ref(fr.abs(in.Off(4)))) {
			oob()
		}
	case bytecode.OpTableGrow:
		table := inst.Table(in.U32(8))
		init := fr.ref(fr.abs(in.Off(2)))
		delta := uint64(fr.u32(fr.abs(in.Off(4))))
		old, ok := table.Grow(delta, init)
		if !ok {
			fr.setI32(fr.abs(in.Off(6)), -1)
		} else {
			fr.setU32(fr.abs(in.Off(6)), uint32(old))
		}
	case bytecode.OpTableSize:
		fr.setU32(fr.abs(in.Off(2)), uint32(inst.Table(in.U32(4)).Size()))
	case bytecode.OpTableFill:
		table := inst.Table(in.U32(8))
		start := uint64(fr.u32(fr.abs(in.Off(2))))
		ref := fr.ref(fr.abs(in.Off(4)))
		n := uint64(fr.u32(fr.abs(in.Off(6))))
		if !table.Fill(start, n, ref) {
			oob()
		}
	case bytecode.OpTableCopy:
		dst := inst.Table(in.U32(8))
		src := inst.Table(in.U32(12))
		d := uint64(fr.u32(fr.abs(in.Off(2))))
		s := uint64(fr.u32(fr.abs(in.Off(4))))
		n := uint64(fr.u32(fr.abs(in.Off(6))))
		if !dst.Copy(d, src, s, n) {
			oob()
		}
	case bytecode.OpTableInit:
		table := inst.Table(in.U32(8))
		seg := inst.Elem(in.U32(12))
		d := uint64(fr.u32(fr.abs(in.Off(2))))
		s := uint64(fr.u32(fr.abs(in.Off(4))))
		n := uint64(fr.u32(fr.abs(in.Off(6))))
		if !table.Init(d, seg, s, n) {
			oob()
		}
	case bytecode.OpElemDrop:
		inst.Elem(in.U32(4)).Drop()
	default:
		return false
	}
	return true
}

// execGC handles struct and array objects.
func (ec *ExecutionContext) execGC(op bytecode.Opcode, in bytecode.Instr, inst *runtime.Instance, fr frameView) bool {
	null := func() { ec.trap = runtime.NewTrap(runtime.TrapNullAccess) }
	oob := func() { ec.trap = runtime.NewTrap(runtime.TrapOutOfBoundsArrayAccess) }

	switch op {
	case bytecode.OpStructNew:
		ct := inst.Type(in.U32(8))
		obj := runtime.NewStructObject(ct)
		offs := in.OffsetList()
		for i, f := range ct.Struct.Fields {
			src := fr.abs(offs[i])
			if f.Type.IsRef() {
				obj.SetRef(i, fr.ref(src))
			} else if f.Type.Kind == types.KindV128 {
				obj.SetField128(i, fr.u64(src), fr.u64(src+8))
			} else {
				obj.SetField(i, fr.u64(src))
			}
		}
		fr.setRef(fr.abs(in.Off(4)), obj)
	case bytecode.OpStructNewDefault:
		fr.setRef(fr.abs(in.Off(2)), runtime.NewStructObject(inst.Type(in.U32(4))))

	case bytecode.OpStructGet, bytecode.OpStructGetS, bytecode.OpStructGetU:
		ref := fr.ref(fr.abs(in.Off(2)))
		if ref == nil {
			null()
			break
		}
		obj := ref.(*runtime.StructObject)
		i := int(in.U16(6))
		f := obj.StructType().Fields[i]
		dst := fr.abs(in.Off(4))
		switch {
		case f.Type.IsRef():
			fr.setRef(dst, obj.GetRef(i))
		case f.Type.Kind == types.KindV128:
			lo, hi := obj.GetField128(i)
			fr.setU64(dst, lo)
			fr.setU64(dst+8, hi)
		case f.Type.Kind.StackSize() == 4:
			fr.setU32(dst, uint32(obj.GetField(i, op == bytecode.OpStructGetS)))
		default:
			fr.setU64(dst, obj.GetField(i, op == bytecode.OpStructGetS))
		}
	case bytecode.OpStructSet:
		ref := fr.ref(fr.abs(in.Off(2)))
		if ref == nil {
			null()
			break
		}
		obj := ref.(*runtime.StructObject)
		i := int(in.U16(6))
		f := obj.StructType().Fields[i]
		src := fr.abs(in.Off(4))
		switch {
		case f.Type.IsRef():
			obj.SetRef(i, fr.ref(src))
		case f.Type.Kind == types.KindV128:
			obj.SetField128(i, fr.u64(src), fr.u64(src+8))
		case f.Type.Kind.StackSize() == 4:
			obj.SetField(i, uint64(fr.u32(src)))
		default:
			obj.SetField(i, fr.u64(src))
		}

	case bytecode.OpArrayNew, bytecode.OpArrayNewDefault:
		ct := inst.Type(in.U32(8))
		var n uint32
		var valOff int
		if op == bytecode.OpArrayNew {
			valOff = fr.abs(in.Off(2))
			n = fr.u32(fr.abs(in.Off(4)))
		} else {
			n = fr.u32(fr.abs(in.Off(2)))
		}
		obj, ok := runtime.NewArrayObject(ct, n)
		if !ok {
			ec.trap = runtime.NewTrap(runtime.TrapArraySizeOverflow)
			break
		}
		if op == bytecode.OpArrayNew {
			fillArray(obj, fr, valOff, 0, n)
		}
		dstOff := in.Off(6)
		if op == bytecode.OpArrayNewDefault {
			dstOff = in.Off(4)
		}
		fr.setRef(fr.abs(dstOff), obj)

	case bytecode.OpArrayNewFixed:
		ct := inst.Type(in.U32(8))
		offs := in.OffsetList()
		obj, ok := runtime.NewArrayObject(ct, uint32(len(offs)))
		if !ok {
			ec.trap = runtime.NewTrap(runtime.TrapArraySizeOverflow)
			break
		}
		for i, off := range offs {
			storeArrayElem(obj, uint32(i), fr, fr.abs(off))
		}
		fr.setRef(fr.abs(in.Off(4)), obj)

	case bytecode.OpArrayNewData:
		ct := inst.Type(in.U32(8))
		seg := inst.Data(in.U32(12))
		src := fr.u32(fr.abs(in.Off(2)))
		n := fr.u32(fr.abs(in.Off(4)))
		es := ct.Array.ElementSize
		need := uint64(src) + uint64(n)*uint64(es)
		if need > uint64(len(seg.Bytes())) {
			ec.trap = runtime.NewTrap(runtime.TrapOutOfBoundsMemAccess)
			break
		}
		obj, ok := runtime.NewArrayObject(ct, n)
		if !ok {
			ec.trap = runtime.NewTrap(runtime.TrapArraySizeOverflow)
			break
		}
		obj.InitData(0, seg.Bytes()[src:need])
		fr.setRef(fr.abs(in.Off(6)), obj)

	case bytecode.OpArrayNewElem:
		ct := inst.Type(in.U32(8))
		seg := inst.Elem(in.U32(12))
		src := fr.u32(fr.abs(in.Off(2)))
		n := fr.u32(fr.abs(in.Off(4)))
		refs := seg.Refs()
		if uint64(src)+uint64(n) > uint64(len(refs)) {
			ec.trap = runtime.NewTrap(runtime.TrapOutOfBoundsTableAccess)
			break
		}
		obj, ok := runtime.NewArrayObject(ct, n)
		if !ok {
			ec.trap = runtime.NewTrap(runtime.TrapArraySizeOverflow)
			break
		}
		for i := uint32(0); i < n; i++ {
			obj.SetRef(i, refs[src+i])
		}
		fr.setRef(fr.abs(in.Off(6)), obj)

	case bytecode.OpArrayGet, bytecode.OpArrayGetS, bytecode.OpArrayGetU:
		ref := fr.ref(fr.abs(in.Off(2)))
		if ref == nil {
			null()
			break
		}
		obj := ref.(*runtime.ArrayObject)
		i := fr.u32(fr.abs(in.Off(4)))
		if i >= obj.Len() {
			oob()
			break
		}
		dst := fr.abs(in.Off(6))
		elem := obj.ArrayType().Element.Type
		switch {
		case elem.IsRef():
			fr.setRef(dst, obj.GetRef(i))
		case elem.Kind == types.KindV128:
			lo, hi := obj.Get128(i)
			fr.setU64(dst, lo)
			fr.setU64(dst+8, hi)
		case elem.Kind.StackSize() == 4:
			fr.setU32(dst, uint32(obj.Get(i, op == bytecode.OpArrayGetS)))
		default:
			fr.setU64(dst, obj.Get(i, op == bytecode.OpArrayGetS))
		}

	case bytecode.OpArraySet:
		ref := fr.ref(fr.abs(in.Off(2)))
		if ref == nil {
			null()
			break
		}
		obj := ref.(*runtime.ArrayObject)
		i := fr.u32(fr.abs(in.Off(4)))
		if i >= obj.Len() {
			oob()
			break
		}
		storeArrayElem(obj, i, fr, fr.abs(in.Off(6)))

	case bytecode.OpArrayLen:
		ref := fr.ref(fr.abs(in.Off(2)))
		if ref == nil {
			null()
			break
		}
		fr.setU32(fr.abs(in.Off(4)), ref.(*runtime.ArrayObject).Len())

	case bytecode.OpArrayFill:
		ref := fr.ref(fr.abs(in.Off(2)))
		if ref == nil {
			null()
			break
		}
		obj := ref.(*runtime.ArrayObject)
		i := fr.u32(fr.abs(in.Off(4)))
		n := fr.u32(fr.abs(in.Off(8)))
		if uint64(i)+uint64(n) > uint64(obj.Len()) {
			oob()
			break
		}
		fillArray(obj, fr, fr.abs(in.Off(6)), i, n)

	case bytecode.OpArrayCopy:
		dstRef := fr.ref(fr.abs(in.Off(2)))
		srcRef := fr.ref(fr.abs(in.Off(6)))
		if dstRef == nil || srcRef == nil {
			null()
			break
		}
		dst := dstRef.(*runtime.ArrayObject)
		src := srcRef.(*runtime.ArrayObject)
		d := fr.u32(fr.abs(in.Off(4)))
		s := fr.u32(fr.abs(in.Off(8)))
		n := fr.u32(fr.abs(in.Off(10)))
		if uint64(d)+uint64(n) > uint64(dst.Len()) || uint64(s)+uint64(n) > uint64(src.Len()) {
			oob()
			break
		}
		dst.CopyFrom(d, src, s, n)

	case bytecode.OpArrayInitData:
		ref := fr.ref(fr.abs(in.Off(2)))
		if ref == nil {
			null()
			break
		}
		obj := ref.(*runtime.ArrayObject)
		seg := inst.Data(in.U32(12))
		d := fr.u32(fr.abs(in.Off(4)))
		s := fr.u32(fr.abs(in.Off(6)))
		n := fr.u32(fr.abs(in.Off(8)))
		es := obj.ArrayType().ElementSize
		if uint64(d)+uint64(n) > uint64(obj.Len()) {
			oob()
			break
		}
		if uint64(s)+uint64(n)*uint64(es) > uint64(len(seg.Bytes())) {
			ec.trap = runtime.NewTrap(runtime.TrapOutOfBoundsMemAccess)
			break
		}
		obj.InitData(d, seg.Bytes()[s:uint64(s)+uint64(n)*uint64(es)])

	case bytecode.OpArrayInitElem:
		ref := fr.ref(fr.abs(in.Off(2)))
		if ref == nil {
			null()
			break
		}
		obj := ref.(*runtime.ArrayObject)
		seg := inst.Elem(in.U32(12))
		d := fr.u32(fr.abs(in.Off(4)))
		s := fr.u32(fr.abs(in.Off(6)))
		n := fr.u32(fr.abs(in.Off(8)))
		refs := seg.Refs()
		if uint64(d)+uint64(n) > uint64(obj.Len()) {
			oob()
			break
		}
		if uint64(s)+uint64(n) > uint64(len(refs)) {
			ec.trap = runtime.NewTrap(runtime.TrapOutOfBoundsTableAccess)
			break
		}
		for i := uint32(0); i < n; i++ {
			obj.SetRef(d+i, refs[s+i])
		}

	default:
		return false
	}
	return true
}

// storeArrayElem writes one element from a frame slot.
func storeArrayElem(obj *runtime.ArrayObject, i uint32, fr frameView, src int) {
	elem := obj.ArrayType().Element.Type
	switch {
	case elem.IsRef():
		obj.SetRef(i, fr.ref(src))
	case elem.Kind == types.KindV128:
		obj.Set128(i, fr.u64(src), fr.u64(src+8))
	case elem.Kind.StackSize() == 4:
		obj.Set(i, uint64(fr.u32(src)))
	default:
		obj.Set(i, fr.u64(src))
	}
}

// fillArray writes the same frame value into elements [start, start+n).
func fillArray(obj *runtime.ArrayObject, fr frameView, src int, start, n uint32) {
	for i := uint32(0); i < n; i++ {
		storeArrayElem(obj, start+i, fr, src)
	}
}
