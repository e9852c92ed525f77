package wasm

import (
	"encoding/binary"
	"fmt"

	"github.com/wippyai/wasm-engine/errors"
	"github.com/wippyai/wasm-engine/types"
)

// Decode parses a binary module and resolves its types through ts.
func Decode(data []byte, ts *types.TypeStore) (*Module, error) {
	d := &decoder{data: data, ts: ts, m: &Module{}}
	if err := d.run(); err != nil {
		return nil, err
	}
	return d.m, nil
}

type decoder struct {
	data []byte
	pos  int
	ts   *types.TypeStore
	m    *Module
}

func (d *decoder) fail(context, format string, args ...any) error {
	return errors.New(errors.PhaseDecode, errors.KindInvalidData).
		Context(context).
		Detail("%s (at 0x%x)", fmt.Sprintf(format, args...), d.pos).
		Build()
}

func (d *decoder) remaining() int { return len(d.data) - d.pos }

func (d *decoder) byte() (byte, error) {
	if d.remaining() < 1 {
		return 0, ErrUnexpectedEOF
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

func (d *decoder) bytes(n int) ([]byte, error) {
	if n < 0 || d.remaining() < n {
		return nil, ErrUnexpectedEOF
	}
	b := d.data[d.pos : d.pos+n]
	d.pos += n
	return b, nil
}

func (d *decoder) u32() (uint32, error) {
	v, n, err := readU32(d.data[d.pos:])
	d.pos += n
	return v, err
}

func (d *decoder) u64() (uint64, error) {
	v, n, err := readU64(d.data[d.pos:])
	d.pos += n
	return v, err
}

func (d *decoder) s32() (int32, error) {
	v, n, err := readS32(d.data[d.pos:])
	d.pos += n
	return v, err
}

func (d *decoder) s64() (int64, error) {
	v, n, err := readS64(d.data[d.pos:])
	d.pos += n
	return v, err
}

func (d *decoder) s33() (int64, error) {
	v, n, err := readS33(d.data[d.pos:])
	d.pos += n
	return v, err
}

func (d *decoder) name() (string, error) {
	n, err := d.u32()
	if err != nil {
		return "", err
	}
	b, err := d.bytes(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (d *decoder) run() error {
	hdr, err := d.bytes(8)
	if err != nil {
		return d.fail("header", "truncated header")
	}
	if binary.LittleEndian.Uint32(hdr) != Magic {
		return d.fail("header", "bad magic")
	}
	if binary.LittleEndian.Uint32(hdr[4:]) != Version {
		return d.fail("header", "unsupported version %d", binary.LittleEndian.Uint32(hdr[4:]))
	}

	lastSection := byte(0)
	for d.remaining() > 0 {
		id, err := d.byte()
		if err != nil {
			return err
		}
		size, err := d.u32()
		if err != nil {
			return d.fail("section", "bad section size")
		}
		body, err := d.bytes(int(size))
		if err != nil {
			return d.fail("section", "section %d overruns module", id)
		}
		if id != SectionCustom {
			if sectionRank(id) <= lastSection {
				return d.fail("section", "section %d out of order", id)
			}
			lastSection = sectionRank(id)
		}

		sub := &decoder{data: body, ts: d.ts, m: d.m}
		switch id {
		case SectionCustom:
			err = sub.customSection()
		case SectionType:
			err = sub.typeSection()
		case SectionImport:
			err = sub.importSection()
		case SectionFunction:
			err = sub.functionSection()
		case SectionTable:
			err = sub.tableSection()
		case SectionMemory:
			err = sub.memorySection()
		case SectionTag:
			err = sub.tagSection()
		case SectionGlobal:
			err = sub.globalSection()
		case SectionExport:
			err = sub.exportSection()
		case SectionStart:
			err = sub.startSection()
		case SectionElement:
			err = sub.elementSection()
		case SectionDataCount:
			_, err = sub.u32()
		case SectionCode:
			err = sub.codeSection()
		case SectionData:
			err = sub.dataSection()
		default:
			return d.fail("section", "unknown section id %d", id)
		}
		if err != nil {
			return err
		}
	}

	if len(d.m.Code) != len(d.m.Funcs)-d.m.NumImportedFuncs {
		return d.fail("code", "function/code section count mismatch")
	}
	return nil
}

// sectionRank maps section ids to their required order. The tag section
// (id 13) sits between memory and global; datacount (id 12) between element
// and code.
func sectionRank(id byte) byte {
	switch id {
	case SectionTag:
		return SectionMemory*2 + 1
	case SectionDataCount:
		return SectionElement*2 + 1
	default:
		return id * 2
	}
}

// typeSection parses recursive groups and interns them.
func (d *decoder) typeSection() error {
	count, err := d.u32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		b, err := d.byte()
		if err != nil {
			return err
		}
		groupLen := uint32(1)
		if b == RecTypeByte {
			if groupLen, err = d.u32(); err != nil {
				return err
			}
		} else {
			d.pos-- // single subtype, re-read its head below
		}

		// Placeholders first so intra-group references resolve.
		base := len(d.m.Types)
		members := make([]*types.CompositeType, groupLen)
		for j := range members {
			members[j] = &types.CompositeType{}
			d.m.Types = append(d.m.Types, members[j])
		}
		for j := range members {
			if err := d.subType(members[j]); err != nil {
				return err
			}
		}

		group := d.ts.Intern(members)
		d.m.Groups = append(d.m.Groups, group)
		// A pre-existing canonical group supersedes our placeholders.
		for j := range group.Types {
			d.m.Types[base+j] = group.Types[j]
		}
	}
	return nil
}

func (d *decoder) subType(into *types.CompositeType) error {
	b, err := d.byte()
	if err != nil {
		return err
	}
	final := true
	if b == SubTypeByte || b == SubFinalByte {
		final = b == SubFinalByte
		n, err := d.u32()
		if err != nil {
			return err
		}
		if n > 1 {
			return d.fail("type", "multiple supertypes")
		}
		for k := uint32(0); k < n; k++ {
			parent, err := d.u32()
			if err != nil {
				return err
			}
			if int(parent) >= len(d.m.Types) {
				return d.fail("type", "supertype index %d out of range", parent)
			}
			into.Parent = d.m.Types[parent]
		}
		if b, err = d.byte(); err != nil {
			return err
		}
	}
	into.Final = final

	switch b {
	case FuncTypeByte:
		params, err := d.valTypeVec()
		if err != nil {
			return err
		}
		results, err := d.valTypeVec()
		if err != nil {
			return err
		}
		into.Kind = types.CompFunc
		into.Func = types.NewFunctionType(params, results)
	case StructTypeByte:
		n, err := d.u32()
		if err != nil {
			return err
		}
		fields := make([]types.FieldType, n)
		for k := range fields {
			if fields[k], err = d.fieldType(); err != nil {
				return err
			}
		}
		into.Kind = types.CompStruct
		into.Struct = types.NewStructType(fields)
	case ArrayTypeByte:
		elem, err := d.fieldType()
		if err != nil {
			return err
		}
		into.Kind = types.CompArray
		into.Array = types.NewArrayType(elem)
	default:
		return d.fail("type", "unknown composite type 0x%02x", b)
	}
	return nil
}

func (d *decoder) valTypeVec() ([]types.ValType, error) {
	n, err := d.u32()
	if err != nil {
		return nil, err
	}
	out := make([]types.ValType, n)
	for i := range out {
		if out[i], err = d.valType(); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (d *decoder) valType() (types.ValType, error) {
	b, err := d.byte()
	if err != nil {
		return types.ValType{}, err
	}
	return d.valTypeFrom(b)
}

func (d *decoder) valTypeFrom(b byte) (types.ValType, error) {
	switch b {
	case ValI32:
		return types.I32(), nil
	case ValI64:
		return types.I64(), nil
	case ValF32:
		return types.F32(), nil
	case ValF64:
		return types.F64(), nil
	case ValV128:
		return types.V128(), nil
	case ValI8:
		return types.I8(), nil
	case ValI16:
		return types.I16(), nil
	case ValRefNull, ValRef:
		heap, err := d.s33()
		if err != nil {
			return types.ValType{}, err
		}
		return d.refType(heap, b == ValRefNull)
	}
	// Abstract shorthand encodings share the heap-type numbering: the
	// value-type byte is the heap type's s33 value plus 0x80.
	if b >= 0x69 && b <= 0x74 {
		return d.refType(int64(b) - 0x80, true)
	}
	return types.ValType{}, d.fail("type", "unknown value type 0x%02x", b)
}

func (d *decoder) refType(heap int64, nullable bool) (types.ValType, error) {
	if heap >= 0 {
		if int(heap) >= len(d.m.Types) {
			return types.ValType{}, d.fail("type", "heap type index %d out of range", heap)
		}
		return types.RefOf(d.m.Types[heap], nullable), nil
	}
	var h types.HeapKind
	switch heap {
	case HeapTypeFunc:
		h = types.HeapFunc
	case HeapTypeExtern:
		h = types.HeapExtern
	case HeapTypeAny:
		h = types.HeapAny
	case HeapTypeEq:
		h = types.HeapEq
	case HeapTypeI31:
		h = types.HeapI31
	case HeapTypeStruct:
		h = types.HeapStruct
	case HeapTypeArray:
		h = types.HeapArray
	case HeapTypeExn:
		h = types.HeapExn
	case HeapTypeNone:
		h = types.HeapNone
	case HeapTypeNoExtern:
		h = types.HeapNoExtern
	case HeapTypeNoFunc:
		h = types.HeapNoFunc
	case HeapTypeNoExn:
		h = types.HeapNoExn
	default:
		return types.ValType{}, d.fail("type", "unknown heap type %d", heap)
	}
	return types.Ref(h, nullable), nil
}

func (d *decoder) fieldType() (types.FieldType, error) {
	vt, err := d.valType()
	if err != nil {
		return types.FieldType{}, err
	}
	mut, err := d.byte()
	if err != nil {
		return types.FieldType{}, err
	}
	if mut != FieldImmutable && mut != FieldMutable {
		return types.FieldType{}, d.fail("type", "bad mutability 0x%02x", mut)
	}
	return types.FieldType{Type: vt, Mutable: mut == FieldMutable}, nil
}

func (d *decoder) funcTypeAt(idx uint32) (*types.CompositeType, error) {
	if int(idx) >= len(d.m.Types) {
		return nil, d.fail("type", "type index %d out of range", idx)
	}
	ct := d.m.Types[idx]
	if ct.Kind != types.CompFunc {
		return nil, d.fail("type", "type %d is not a function type", idx)
	}
	return ct, nil
}

func (d *decoder) importSection() error {
	count, err := d.u32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		var imp Import
		if imp.Module, err = d.name(); err != nil {
			return err
		}
		if imp.Name, err = d.name(); err != nil {
			return err
		}
		if imp.Kind, err = d.byte(); err != nil {
			return err
		}
		switch imp.Kind {
		case KindFunc:
			if imp.FuncTypeIndex, err = d.u32(); err != nil {
				return err
			}
			ct, err := d.funcTypeAt(imp.FuncTypeIndex)
			if err != nil {
				return err
			}
			d.m.Funcs = append(d.m.Funcs, FuncDesc{Type: ct, TypeIndex: imp.FuncTypeIndex, Imported: true})
			d.m.NumImportedFuncs++
		case KindTable:
			if imp.Table, err = d.tableType(); err != nil {
				return err
			}
			d.m.Tables = append(d.m.Tables, imp.Table)
			d.m.NumImportedTables++
		case KindMemory:
			if imp.Memory, err = d.memoryType(); err != nil {
				return err
			}
			d.m.Memories = append(d.m.Memories, imp.Memory)
			d.m.NumImportedMemories++
		case KindGlobal:
			if imp.Global, err = d.globalType(); err != nil {
				return err
			}
			d.m.Globals = append(d.m.Globals, Global{Type: imp.Global})
			d.m.NumImportedGlobals++
		case KindTag:
			if _, err = d.byte(); err != nil { // attribute, always 0
				return err
			}
			if imp.TagTypeIndex, err = d.u32(); err != nil {
				return err
			}
			ct, err := d.funcTypeAt(imp.TagTypeIndex)
			if err != nil {
				return err
			}
			d.m.Tags = append(d.m.Tags, TagType{Type: ct.Func, TypeIndex: imp.TagTypeIndex})
			d.m.NumImportedTags++
		default:
			return d.fail("import", "unknown import kind %d", imp.Kind)
		}
		d.m.Imports = append(d.m.Imports, imp)
	}
	return nil
}

func (d *decoder) functionSection() error {
	count, err := d.u32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		idx, err := d.u32()
		if err != nil {
			return err
		}
		ct, err := d.funcTypeAt(idx)
		if err != nil {
			return err
		}
		d.m.Funcs = append(d.m.Funcs, FuncDesc{Type: ct, TypeIndex: idx})
	}
	return nil
}

func (d *decoder) tableType() (TableType, error) {
	vt, err := d.valType()
	if err != nil {
		return TableType{}, err
	}
	if !vt.IsRef() {
		return TableType{}, d.fail("table", "element type must be a reference")
	}
	var t TableType
	t.Elem = vt
	t.Min, t.Max, t.HasMax, t.Shared, _, err = d.limits()
	return t, err
}

func (d *decoder) memoryType() (MemoryType, error) {
	var t MemoryType
	var err error
	t.Min, t.Max, t.HasMax, t.Shared, t.Memory64, err = d.limits()
	if err != nil {
		return t, err
	}
	limit := MemoryMaxPages32
	if t.Memory64 {
		limit = MemoryMaxPages64
	}
	if t.Min > limit || (t.HasMax && (t.Max > limit || t.Max < t.Min)) {
		return t, d.fail("memory", "limits out of range")
	}
	if t.Shared && !t.HasMax {
		return t, d.fail("memory", "shared memory requires a maximum")
	}
	return t, nil
}

func (d *decoder) limits() (minV, maxV uint64, hasMax, shared, is64 bool, err error) {
	flags, err := d.byte()
	if err != nil {
		return
	}
	hasMax = flags&LimitsHasMax != 0
	shared = flags&LimitsShared != 0
	is64 = flags&LimitsMemory64 != 0
	if flags &^ (LimitsHasMax | LimitsShared | LimitsMemory64) != 0 {
		err = d.fail("limits", "unknown flags 0x%02x", flags)
		return
	}
	if minV, err = d.u64(); err != nil {
		return
	}
	if hasMax {
		maxV, err = d.u64()
	}
	return
}

func (d *decoder) globalType() (GlobalType, error) {
	vt, err := d.valType()
	if err != nil {
		return GlobalType{}, err
	}
	mut, err := d.byte()
	if err != nil {
		return GlobalType{}, err
	}
	return GlobalType{Type: vt, Mutable: mut == FieldMutable}, nil
}

func (d *decoder) tagSection() error {
	count, err := d.u32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		if _, err := d.byte(); err != nil { // attribute
			return err
		}
		idx, err := d.u32()
		if err != nil {
			return err
		}
		ct, err := d.funcTypeAt(idx)
		if err != nil {
			return err
		}
		d.m.Tags = append(d.m.Tags, TagType{Type: ct.Func, TypeIndex: idx})
	}
	return nil
}

func (d *decoder) globalSection() error {
	count, err := d.u32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		gt, err := d.globalType()
		if err != nil {
			return err
		}
		init, err := d.constExpr()
		if err != nil {
			return err
		}
		d.m.Globals = append(d.m.Globals, Global{Type: gt, Init: init})
	}
	return nil
}

func (d *decoder) tableSection() error {
	count, err := d.u32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		t, err := d.tableType()
		if err != nil {
			return err
		}
		d.m.Tables = append(d.m.Tables, t)
	}
	return nil
}

func (d *decoder) memorySection() error {
	count, err := d.u32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		t, err := d.memoryType()
		if err != nil {
			return err
		}
		d.m.Memories = append(d.m.Memories, t)
	}
	return nil
}

func (d *decoder) exportSection() error {
	count, err := d.u32()
	if err != nil {
		return err
	}
	seen := make(map[string]bool, count)
	for i := uint32(0); i < count; i++ {
		var e Export
		if e.Name, err = d.name(); err != nil {
			return err
		}
		if seen[e.Name] {
			return d.fail("export", "duplicate export %q", e.Name)
		}
		seen[e.Name] = true
		if e.Kind, err = d.byte(); err != nil {
			return err
		}
		if e.Index, err = d.u32(); err != nil {
			return err
		}
		d.m.Exports = append(d.m.Exports, e)
	}
	return nil
}

func (d *decoder) startSection() error {
	idx, err := d.u32()
	if err != nil {
		return err
	}
	d.m.Start = &idx
	return nil
}

func (d *decoder) elementSection() error {
	count, err := d.u32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		flags, err := d.u32()
		if err != nil {
			return err
		}
		var seg ElementSegment
		seg.Type = types.FuncRef()

		switch {
		case flags&ElemFlagPassive == 0:
			seg.Mode = SegmentActive
			if flags&ElemFlagExplicitIdx != 0 {
				if seg.TableIndex, err = d.u32(); err != nil {
					return err
				}
			}
			if seg.Offset, err = d.constExpr(); err != nil {
				return err
			}
		case flags&ElemFlagExplicitIdx != 0:
			seg.Mode = SegmentDeclared
		default:
			seg.Mode = SegmentPassive
		}

		hasKindOrType := flags&(ElemFlagPassive|ElemFlagExplicitIdx) != 0
		if flags&ElemFlagExpressions != 0 {
			if hasKindOrType {
				if seg.Type, err = d.valType(); err != nil {
					return err
				}
			}
			n, err := d.u32()
			if err != nil {
				return err
			}
			seg.Inits = make([]ConstExpr, n)
			for j := range seg.Inits {
				if seg.Inits[j], err = d.constExpr(); err != nil {
					return err
				}
			}
		} else {
			if hasKindOrType {
				kind, err := d.byte()
				if err != nil {
					return err
				}
				if kind != 0 {
					return d.fail("element", "unknown elemkind %d", kind)
				}
			}
			n, err := d.u32()
			if err != nil {
				return err
			}
			seg.Inits = make([]ConstExpr, n)
			for j := range seg.Inits {
				idx, err := d.u32()
				if err != nil {
					return err
				}
				expr := append([]byte{OpRefFunc}, appendU32(nil, idx)...)
				seg.Inits[j] = append(expr, OpEnd)
			}
		}
		d.m.Elements = append(d.m.Elements, seg)
	}
	return nil
}

func (d *decoder) codeSection() error {
	count, err := d.u32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		size, err := d.u32()
		if err != nil {
			return err
		}
		body, err := d.bytes(int(size))
		if err != nil {
			return d.fail("code", "body %d overruns section", i)
		}
		fb, err := decodeFuncBody(body, d)
		if err != nil {
			return err
		}
		d.m.Code = append(d.m.Code, fb)
	}
	return nil
}

func decodeFuncBody(body []byte, parent *decoder) (FuncBody, error) {
	d := &decoder{data: body, ts: parent.ts, m: parent.m}
	nDecls, err := d.u32()
	if err != nil {
		return FuncBody{}, err
	}
	var locals []types.ValType
	for i := uint32(0); i < nDecls; i++ {
		n, err := d.u32()
		if err != nil {
			return FuncBody{}, err
		}
		vt, err := d.valType()
		if err != nil {
			return FuncBody{}, err
		}
		for j := uint32(0); j < n; j++ {
			locals = append(locals, vt)
		}
	}
	return FuncBody{Locals: locals, Body: body[d.pos:]}, nil
}

func (d *decoder) dataSection() error {
	count, err := d.u32()
	if err != nil {
		return err
	}
	for i := uint32(0); i < count; i++ {
		flags, err := d.u32()
		if err != nil {
			return err
		}
		var seg DataSegment
		switch flags {
		case 0:
			seg.Mode = SegmentActive
		case 1:
			seg.Mode = SegmentPassive
		case 2:
			seg.Mode = SegmentActive
			if seg.MemoryIndex, err = d.u32(); err != nil {
				return err
			}
		default:
			return d.fail("data", "unknown flags %d", flags)
		}
		if seg.Mode == SegmentActive {
			if seg.Offset, err = d.constExpr(); err != nil {
				return err
			}
		}
		n, err := d.u32()
		if err != nil {
			return err
		}
		if seg.Data, err = d.bytes(int(n)); err != nil {
			return d.fail("data", "segment %d overruns section", i)
		}
		d.m.Datas = append(d.m.Datas, seg)
	}
	return nil
}

// constExpr scans one constant expression, returning the raw bytes
// including the terminating end opcode.
func (d *decoder) constExpr() (ConstExpr, error) {
	start := d.pos
	for {
		op, err := d.byte()
		if err != nil {
			return nil, err
		}
		switch op {
		case OpEnd:
			return ConstExpr(d.data[start:d.pos]), nil
		case OpI32Const:
			_, err = d.s32()
		case OpI64Const:
			_, err = d.s64()
		case OpF32Const:
			_, err = d.bytes(4)
		case OpF64Const:
			_, err = d.bytes(8)
		case OpRefNull:
			_, err = d.s33()
		case OpRefFunc, OpGlobalGet:
			_, err = d.u32()
		case 0x6A, 0x6B, 0x6C, 0x7C, 0x7D, 0x7E:
			// extended const: i32/i64 add, sub, mul
		case OpPrefixSIMD:
			var sub uint32
			if sub, err = d.u32(); err == nil {
				if sub != 0x0C { // v128.const
					return nil, d.fail("const", "non-constant SIMD op %#x", sub)
				}
				_, err = d.bytes(16)
			}
		case OpPrefixGC:
			var sub uint32
			if sub, err = d.u32(); err == nil {
				switch sub {
				case GCStructNew, GCStructNewDefault, GCArrayNewFixed:
					if _, err = d.u32(); err == nil && sub == GCArrayNewFixed {
						_, err = d.u32()
					}
				case GCArrayNew, GCArrayNewDefault:
					_, err = d.u32()
				case GCRefI31:
				default:
					return nil, d.fail("const", "non-constant GC op %#x", sub)
				}
			}
		default:
			return nil, d.fail("const", "non-constant opcode 0x%02x", op)
		}
		if err != nil {
			return nil, err
		}
	}
}

// customSection understands the "name" section's function-name subsection;
// all other custom content is skipped.
func (d *decoder) customSection() error {
	name, err := d.name()
	if err != nil {
		return err
	}
	if name != "name" {
		return nil
	}
	for d.remaining() > 0 {
		id, err := d.byte()
		if err != nil {
			return err
		}
		size, err := d.u32()
		if err != nil {
			return err
		}
		body, err := d.bytes(int(size))
		if err != nil {
			return nil // tolerate truncated name data
		}
		if id != 1 { // function names
			continue
		}
		sub := &decoder{data: body, ts: d.ts, m: d.m}
		n, err := sub.u32()
		if err != nil {
			continue
		}
		names := make(map[uint32]string, n)
		for i := uint32(0); i < n; i++ {
			idx, err := sub.u32()
			if err != nil {
				break
			}
			fname, err := sub.name()
			if err != nil {
				break
			}
			names[idx] = fname
		}
		d.m.Names = names
	}
	return nil
}
