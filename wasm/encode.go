package wasm

import (
	"encoding/binary"

	"github.com/wippyai/wasm-engine/errors"
	"github.com/wippyai/wasm-engine/types"
)

// Encode serializes a Module back to the binary format. It writes one
// canonical encoding; Decode(Encode(m)) is structurally equal to m.
func Encode(m *Module) ([]byte, error) {
	e := &encoder{m: m, typeIndex: make(map[*types.CompositeType]uint32, len(m.Types))}
	for i, ct := range m.Types {
		e.typeIndex[ct] = uint32(i)
	}
	return e.run()
}

type encoder struct {
	m         *Module
	typeIndex map[*types.CompositeType]uint32
	err       error
}

func (e *encoder) fail(detail string) {
	if e.err == nil {
		e.err = errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Context("encode").
			Detail("%s", detail).
			Build()
	}
}

func (e *encoder) run() ([]byte, error) {
	out := binary.LittleEndian.AppendUint32(nil, Magic)
	out = binary.LittleEndian.AppendUint32(out, Version)

	out = e.section(out, SectionType, len(e.m.Groups), e.typeSec)
	out = e.section(out, SectionImport, len(e.m.Imports), e.importSec)
	out = e.section(out, SectionFunction, len(e.m.Funcs)-e.m.NumImportedFuncs, e.functionSec)
	out = e.section(out, SectionTable, len(e.m.Tables)-e.m.NumImportedTables, e.tableSec)
	out = e.section(out, SectionMemory, len(e.m.Memories)-e.m.NumImportedMemories, e.memorySec)
	out = e.section(out, SectionTag, len(e.m.Tags)-e.m.NumImportedTags, e.tagSec)
	out = e.section(out, SectionGlobal, len(e.m.Globals)-e.m.NumImportedGlobals, e.globalSec)
	out = e.section(out, SectionExport, len(e.m.Exports), e.exportSec)
	if e.m.Start != nil {
		out = e.section(out, SectionStart, 1, func(b []byte) []byte {
			return appendU32(b, *e.m.Start)
		})
	}
	out = e.section(out, SectionElement, len(e.m.Elements), e.elementSec)
	if len(e.m.Datas) > 0 {
		out = e.section(out, SectionDataCount, 1, func(b []byte) []byte {
			return appendU32(b, uint32(len(e.m.Datas)))
		})
	}
	out = e.section(out, SectionCode, len(e.m.Code), e.codeSec)
	out = e.section(out, SectionData, len(e.m.Datas), e.dataSec)

	return out, e.err
}

// section appends one section if it has content. Writers that carry their
// own entry counting (start, datacount) receive the raw buffer.
func (e *encoder) section(out []byte, id byte, n int, write func([]byte) []byte) []byte {
	if n <= 0 {
		return out
	}
	body := write(nil)
	out = append(out, id)
	out = appendU32(out, uint32(len(body)))
	return append(out, body...)
}

func (e *encoder) typeSec(out []byte) []byte {
	out = appendU32(out, uint32(len(e.m.Groups)))
	for _, g := range e.m.Groups {
		if len(g.Types) != 1 || g.Types[0].Parent != nil || !g.Types[0].Final {
			out = append(out, RecTypeByte)
			out = appendU32(out, uint32(len(g.Types)))
			for _, ct := range g.Types {
				out = e.subType(out, ct)
			}
			continue
		}
		out = e.compType(out, g.Types[0])
	}
	return out
}

func (e *encoder) subType(out []byte, ct *types.CompositeType) []byte {
	if ct.Parent == nil && ct.Final {
		return e.compType(out, ct)
	}
	if ct.Final {
		out = append(out, SubFinalByte)
	} else {
		out = append(out, SubTypeByte)
	}
	if ct.Parent != nil {
		out = appendU32(out, 1)
		out = appendU32(out, e.typeIndex[ct.Parent])
	} else {
		out = appendU32(out, 0)
	}
	return e.compType(out, ct)
}

func (e *encoder) compType(out []byte, ct *types.CompositeType) []byte {
	switch ct.Kind {
	case types.CompFunc:
		out = append(out, FuncTypeByte)
		out = appendU32(out, uint32(len(ct.Func.Params)))
		for _, p := range ct.Func.Params {
			out = e.valType(out, p)
		}
		out = appendU32(out, uint32(len(ct.Func.Results)))
		for _, r := range ct.Func.Results {
			out = e.valType(out, r)
		}
	case types.CompStruct:
		out = append(out, StructTypeByte)
		out = appendU32(out, uint32(len(ct.Struct.Fields)))
		for _, f := range ct.Struct.Fields {
			out = e.fieldType(out, f)
		}
	case types.CompArray:
		out = append(out, ArrayTypeByte)
		out = e.fieldType(out, ct.Array.Element)
	}
	return out
}

func (e *encoder) fieldType(out []byte, f types.FieldType) []byte {
	out = e.valType(out, f.Type)
	if f.Mutable {
		return append(out, FieldMutable)
	}
	return append(out, FieldImmutable)
}

func (e *encoder) valType(out []byte, vt types.ValType) []byte {
	switch vt.Kind {
	case types.KindI32:
		return append(out, ValI32)
	case types.KindI64:
		return append(out, ValI64)
	case types.KindF32:
		return append(out, ValF32)
	case types.KindF64:
		return append(out, ValF64)
	case types.KindV128:
		return append(out, ValV128)
	case types.KindI8:
		return append(out, ValI8)
	case types.KindI16:
		return append(out, ValI16)
	case types.KindRef:
		return e.refValType(out, vt.Ref)
	}
	e.fail("unencodable value type")
	return out
}

func (e *encoder) refValType(out []byte, r types.RefType) []byte {
	if r.Heap == types.HeapComposite {
		if r.Nullable {
			out = append(out, ValRefNull)
		} else {
			out = append(out, ValRef)
		}
		idx, ok := e.typeIndex[r.Composite]
		if !ok {
			e.fail("reference to composite type outside module")
			return out
		}
		return appendS64(out, int64(idx))
	}

	heap := heapTypeCode(r.Heap)
	if r.Nullable {
		// Nullable abstract refs use the shorthand byte.
		return append(out, byte(heap+0x80))
	}
	out = append(out, ValRef)
	return appendS64(out, heap)
}

func heapTypeCode(h types.HeapKind) int64 {
	switch h {
	case types.HeapFunc:
		return HeapTypeFunc
	case types.HeapExtern:
		return HeapTypeExtern
	case types.HeapAny:
		return HeapTypeAny
	case types.HeapEq:
		return HeapTypeEq
	case types.HeapI31:
		return HeapTypeI31
	case types.HeapStruct:
		return HeapTypeStruct
	case types.HeapArray:
		return HeapTypeArray
	case types.HeapExn:
		return HeapTypeExn
	case types.HeapNone:
		return HeapTypeNone
	case types.HeapNoExtern:
		return HeapTypeNoExtern
	case types.HeapNoFunc:
		return HeapTypeNoFunc
	default:
		return HeapTypeNoExn
	}
}

func (e *encoder) importSec(out []byte) []byte {
	out = appendU32(out, uint32(len(e.m.Imports)))
	for _, imp := range e.m.Imports {
		out = appendU32(out, uint32(len(imp.Module)))
		out = append(out, imp.Module...)
		out = appendU32(out, uint32(len(imp.Name)))
		out = append(out, imp.Name...)
		out = append(out, imp.Kind)
		switch imp.Kind {
		case KindFunc:
			out = appendU32(out, imp.FuncTypeIndex)
		case KindTable:
			out = e.tableType(out, imp.Table)
		case KindMemory:
			out = e.memoryType(out, imp.Memory)
		case KindGlobal:
			out = e.valType(out, imp.Global.Type)
			out = append(out, mutByte(imp.Global.Mutable))
		case KindTag:
			out = append(out, 0)
			out = appendU32(out, imp.TagTypeIndex)
		}
	}
	return out
}

func mutByte(m bool) byte {
	if m {
		return FieldMutable
	}
	return FieldImmutable
}

func (e *encoder) functionSec(out []byte) []byte {
	defined := e.m.Funcs[e.m.NumImportedFuncs:]
	out = appendU32(out, uint32(len(defined)))
	for _, f := range defined {
		out = appendU32(out, f.TypeIndex)
	}
	return out
}

func (e *encoder) tableSec(out []byte) []byte {
	defined := e.m.Tables[e.m.NumImportedTables:]
	out = appendU32(out, uint32(len(defined)))
	for _, t := range defined {
		out = e.tableType(out, t)
	}
	return out
}

func (e *encoder) tableType(out []byte, t TableType) []byte {
	out = e.valType(out, t.Elem)
	return e.limits(out, t.Min, t.Max, t.HasMax, t.Shared, false)
}

func (e *encoder) memorySec(out []byte) []byte {
	defined := e.m.Memories[e.m.NumImportedMemories:]
	out = appendU32(out, uint32(len(defined)))
	for _, t := range defined {
		out = e.memoryType(out, t)
	}
	return out
}

func (e *encoder) memoryType(out []byte, t MemoryType) []byte {
	return e.limits(out, t.Min, t.Max, t.HasMax, t.Shared, t.Memory64)
}

func (e *encoder) limits(out []byte, minV, maxV uint64, hasMax, shared, is64 bool) []byte {
	var flags byte
	if hasMax {
		flags |= LimitsHasMax
	}
	if shared {
		flags |= LimitsShared
	}
	if is64 {
		flags |= LimitsMemory64
	}
	out = append(out, flags)
	out = appendU64(out, minV)
	if hasMax {
		out = appendU64(out, maxV)
	}
	return out
}

func (e *encoder) tagSec(out []byte) []byte {
	defined := e.m.Tags[e.m.NumImportedTags:]
	out = appendU32(out, uint32(len(defined)))
	for _, t := range defined {
		out = append(out, 0)
		out = appendU32(out, t.TypeIndex)
	}
	return out
}

func (e *encoder) globalSec(out []byte) []byte {
	defined := e.m.Globals[e.m.NumImportedGlobals:]
	out = appendU32(out, uint32(len(defined)))
	for _, g := range defined {
		out = e.valType(out, g.Type.Type)
		out = append(out, mutByte(g.Type.Mutable))
		out = append(out, g.Init...)
	}
	return out
}

func (e *encoder) exportSec(out []byte) []byte {
	out = appendU32(out, uint32(len(e.m.Exports)))
	for _, x := range e.m.Exports {
		out = appendU32(out, uint32(len(x.Name)))
		out = append(out, x.Name...)
		out = append(out, x.Kind)
		out = appendU32(out, x.Index)
	}
	return out
}

func (e *encoder) elementSec(out []byte) []byte {
	out = appendU32(out, uint32(len(e.m.Elements)))
	for _, seg := range e.m.Elements {
		// Always encode in expression form with an explicit type.
		switch seg.Mode {
		case SegmentActive:
			out = appendU32(out, ElemFlagExplicitIdx|ElemFlagExpressions)
			out = appendU32(out, seg.TableIndex)
			out = append(out, seg.Offset...)
		case SegmentPassive:
			out = appendU32(out, ElemFlagPassive|ElemFlagExpressions)
		case SegmentDeclared:
			out = appendU32(out, ElemFlagPassive|ElemFlagExplicitIdx|ElemFlagExpressions)
		}
		out = e.valType(out, seg.Type)
		out = appendU32(out, uint32(len(seg.Inits)))
		for _, init := range seg.Inits {
			out = append(out, init...)
		}
	}
	return out
}

func (e *encoder) codeSec(out []byte) []byte {
	out = appendU32(out, uint32(len(e.m.Code)))
	for _, fb := range e.m.Code {
		body := encodeLocals(fb.Locals, e)
		body = append(body, fb.Body...)
		out = appendU32(out, uint32(len(body)))
		out = append(out, body...)
	}
	return out
}

func encodeLocals(locals []types.ValType, e *encoder) []byte {
	var runs [][2]int // (start, length) of equal-typed runs
	for i := 0; i < len(locals); {
		j := i + 1
		for j < len(locals) && locals[j].Equal(locals[i]) {
			j++
		}
		runs = append(runs, [2]int{i, j - i})
		i = j
	}
	out := appendU32(nil, uint32(len(runs)))
	for _, r := range runs {
		out = appendU32(out, uint32(r[1]))
		out = e.valType(out, locals[r[0]])
	}
	return out
}

func (e *encoder) dataSec(out []byte) []byte {
	out = appendU32(out, uint32(len(e.m.Datas)))
	for _, seg := range e.m.Datas {
		switch {
		case seg.Mode == SegmentPassive:
			out = appendU32(out, 1)
		case seg.MemoryIndex != 0:
			out = appendU32(out, 2)
			out = appendU32(out, seg.MemoryIndex)
			out = append(out, seg.Offset...)
		default:
			out = appendU32(out, 0)
			out = append(out, seg.Offset...)
		}
		out = appendU32(out, uint32(len(seg.Data)))
		out = append(out, seg.Data...)
	}
	return out
}
