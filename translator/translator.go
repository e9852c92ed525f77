package translator

import (
	"math"

	"github.com/wippyai/wasm-engine/bytecode"
	"github.com/wippyai/wasm-engine/errors"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

// CompileModule translates every defined function body of m.
func CompileModule(m *wasm.Module) ([]*Compiled, error) {
	out := make([]*Compiled, len(m.Code))
	for i := range m.Code {
		fidx := uint32(m.NumImportedFuncs + i)
		c, err := compileFunc(m, fidx)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// stackEntry is one compile-time operand: its type and assigned slot.
type stackEntry struct {
	typ types.ValType
	off bytecode.StackOffset
}

type blockKind uint8

const (
	kindBlock blockKind = iota
	kindLoop
	kindIf
	kindTry
	kindTryTable
)

// ctrlFrame tracks one structured control construct during translation.
type ctrlFrame struct {
	kind    blockKind
	params  []types.ValType
	results []types.ValType

	// savedStack is the compile stack at entry, params included (for
	// loops: with params rehomed to their phi slots).
	savedStack []stackEntry
	// phiSlots are the merge slots: block/if/try results, loop params.
	phiSlots []bytecode.StackOffset

	startPC    int   // loop branch target
	endPatches []int // forward jumps to land on the end
	elsePatch  int   // pending JumpIfFalse of an if; -1 when resolved

	// dead marks a frame opened on an unreachable path.
	dead bool
	// unreachable marks that the current point in this frame is dead.
	unreachable bool

	// tryIdx indexes Compiled.TryTable for try frames.
	tryIdx uint32
	// exnSlot holds the caught exception for legacy catch/rethrow.
	exnSlot bytecode.StackOffset
	// inHandler is true once a legacy try switched from body to handlers.
	inHandler bool
	// ttClauses are try_table catch clauses resolved at entry.
	ttClauses []ttClause
}

func (f *ctrlFrame) entryHeight() int { return len(f.savedStack) - len(f.params) }

// branch target values: loop labels take params, all others results.
func (f *ctrlFrame) branchTypes() []types.ValType {
	if f.kind == kindLoop {
		return f.params
	}
	return f.results
}

type compiler struct {
	m    *wasm.Module
	ft   *types.FunctionType
	body []byte
	pos  int

	buf   bytecode.Buffer
	frame *frame
	stack []stackEntry
	ctrl  []*ctrlFrame

	c        *Compiled
	tryStack []uint32
}

func compileFunc(m *wasm.Module, fidx uint32) (*Compiled, error) {
	desc := m.Funcs[fidx]
	body := m.Code[fidx-uint32(m.NumImportedFuncs)]
	ft := desc.Type.Func

	co := &compiler{
		m:    m,
		ft:   ft,
		body: body.Body,
		c: &Compiled{
			FuncIndex: fidx,
			Locals:    body.Locals,
			Name:      m.Names[fidx],
		},
	}
	co.frame = newFrame(ft, body.Locals)
	co.c.LocalOffsets = co.frame.localOffsets

	// The function body behaves like a block returning the results.
	outer := &ctrlFrame{kind: kindBlock, results: ft.Results, elsePatch: -1}
	outer.phiSlots = co.allocPhi(ft.Results)
	co.ctrl = []*ctrlFrame{outer}

	if err := co.run(); err != nil {
		return nil, err
	}

	co.c.Code = co.buf.Bytes()
	co.c.FrameSize = co.frame.frameSize()
	if co.c.FrameSize+co.c.ScratchSize > math.MaxUint16 {
		return nil, errors.New(errors.PhaseTranslate, errors.KindOverflow).
			Detail("frame of function %d exceeds the 64KiB offset space", fidx).
			Build()
	}
	return co.c, nil
}

func (co *compiler) fail(format string, args ...any) error {
	return errors.New(errors.PhaseTranslate, errors.KindInvalidData).
		Detail(format+" (body offset 0x%x)", append(args, co.pos)...).
		Build()
}

// --- body reading -------------------------------------------------------

func (co *compiler) rByte() byte {
	b := co.body[co.pos]
	co.pos++
	return b
}

func (co *compiler) rU32() uint32 {
	v, n, err := wasm.ReadU32(co.body[co.pos:])
	if err != nil {
		panic(err)
	}
	co.pos += n
	return v
}

func (co *compiler) rU64() uint64 {
	v, n, err := wasm.ReadU64(co.body[co.pos:])
	if err != nil {
		panic(err)
	}
	co.pos += n
	return v
}

func (co *compiler) rS32() int32 {
	v, n, err := wasm.ReadS32(co.body[co.pos:])
	if err != nil {
		panic(err)
	}
	co.pos += n
	return v
}

func (co *compiler) rS64() int64 {
	v, n, err := wasm.ReadS64(co.body[co.pos:])
	if err != nil {
		panic(err)
	}
	co.pos += n
	return v
}

func (co *compiler) rS33() int64 {
	v, n, err := wasm.ReadS33(co.body[co.pos:])
	if err != nil {
		panic(err)
	}
	co.pos += n
	return v
}

func (co *compiler) rBytes(n int) []byte {
	b := co.body[co.pos : co.pos+n]
	co.pos += n
	return b
}

// rValType parses a value type from the body (ref.null, select_t).
func (co *compiler) rValType() types.ValType {
	b := co.rByte()
	switch b {
	case wasm.ValI32:
		return types.I32()
	case wasm.ValI64:
		return types.I64()
	case wasm.ValF32:
		return types.F32()
	case wasm.ValF64:
		return types.F64()
	case wasm.ValV128:
		return types.V128()
	case wasm.ValRef, wasm.ValRefNull:
		return co.heapValType(co.rS33(), b == wasm.ValRefNull)
	default:
		return co.heapValType(int64(b)-0x80, true)
	}
}

func (co *compiler) heapValType(heap int64, nullable bool) types.ValType {
	if heap >= 0 {
		return types.RefOf(co.m.Types[heap], nullable)
	}
	var h types.HeapKind
	switch heap {
	case wasm.HeapTypeFunc:
		h = types.HeapFunc
	case wasm.HeapTypeExtern:
		h = types.HeapExtern
	case wasm.HeapTypeAny:
		h = types.HeapAny
	case wasm.HeapTypeEq:
		h = types.HeapEq
	case wasm.HeapTypeI31:
		h = types.HeapI31
	case wasm.HeapTypeStruct:
		h = types.HeapStruct
	case wasm.HeapTypeArray:
		h = types.HeapArray
	case wasm.HeapTypeExn:
		h = types.HeapExn
	case wasm.HeapTypeNone:
		h = types.HeapNone
	case wasm.HeapTypeNoExtern:
		h = types.HeapNoExtern
	case wasm.HeapTypeNoFunc:
		h = types.HeapNoFunc
	default:
		h = types.HeapNoExn
	}
	return types.Ref(h, nullable)
}

// blockSig decodes a block type into its parameter and result lists.
func (co *compiler) blockSig() (params, results []types.ValType) {
	bt := co.rS33()
	switch {
	case bt == wasm.BlockTypeVoid:
		return nil, nil
	case bt >= 0:
		ft := co.m.Types[bt].Func
		return ft.Params, ft.Results
	default:
		return nil, []types.ValType{co.shorthandType(bt)}
	}
}

// shorthandType resolves single-result block encodings: scalar kinds or an
// abstract/concrete heap type.
func (co *compiler) shorthandType(bt int64) types.ValType {
	switch bt {
	case -1:
		return types.I32()
	case -2:
		return types.I64()
	case -3:
		return types.F32()
	case -4:
		return types.F64()
	case -5:
		return types.V128()
	default:
		return co.heapValType(bt, true)
	}
}

// --- stack helpers ------------------------------------------------------

func (co *compiler) push(t types.ValType) stackEntry {
	e := stackEntry{typ: t.StackType(), off: co.frame.alloc(t.Kind.StackKind())}
	co.stack = append(co.stack, e)
	return e
}

func (co *compiler) pushAt(t types.ValType, off bytecode.StackOffset) {
	co.stack = append(co.stack, stackEntry{typ: t.StackType(), off: off})
}

func (co *compiler) pop() stackEntry {
	e := co.stack[len(co.stack)-1]
	co.stack = co.stack[:len(co.stack)-1]
	return e
}

func (co *compiler) popN(n int) []stackEntry {
	es := co.stack[len(co.stack)-n:]
	co.stack = co.stack[:len(co.stack)-n]
	return append([]stackEntry(nil), es...)
}

func (co *compiler) releaseAll(es []stackEntry) {
	for _, e := range es {
		co.frame.release(e.off)
	}
}

func (co *compiler) top() *ctrlFrame { return co.ctrl[len(co.ctrl)-1] }

func (co *compiler) label(depth uint32) *ctrlFrame {
	return co.ctrl[len(co.ctrl)-1-int(depth)]
}

func (co *compiler) reachable() bool { return !co.top().unreachable }

func (co *compiler) allocPhi(ts []types.ValType) []bytecode.StackOffset {
	slots := make([]bytecode.StackOffset, len(ts))
	for i, t := range ts {
		slots[i] = co.frame.alloc(t.Kind.StackKind())
	}
	return slots
}

func moveOp(k types.Kind) bytecode.Opcode {
	switch k.StackKind() {
	case types.KindI32, types.KindF32:
		return bytecode.OpMove32
	case types.KindV128:
		return bytecode.OpMove128
	default:
		return bytecode.OpMove64
	}
}

func (co *compiler) emitMove(t types.ValType, src, dst bytecode.StackOffset) {
	if src != dst {
		co.buf.Emit(moveOp(t.Kind), src, dst)
	}
}

// markTrap records pc as a trap point of the innermost active try.
func (co *compiler) markTrap(pc int) {
	if len(co.tryStack) == 0 {
		return
	}
	co.c.TrapPoints = append(co.c.TrapPoints, TrapPoint{
		PC:  pc,
		Try: co.tryStack[len(co.tryStack)-1],
	})
}

// emitOp emits a uniform value operation from an opSpec.
func (co *compiler) emitOp(spec opSpec) {
	srcs := co.popN(int(spec.in))
	offs := make([]bytecode.StackOffset, 0, spec.in+1)
	for _, s := range srcs {
		offs = append(offs, s.off)
	}
	var pc int
	if spec.out == types.KindVoid {
		pc = co.buf.Emit(spec.op, offs...)
	} else {
		dst := co.push(types.ValType{Kind: spec.out})
		pc = co.buf.Emit(spec.op, append(offs, dst.off)...)
	}
	if bytecode.CanTrap(spec.op) {
		co.markTrap(pc)
	}
	co.releaseAll(srcs)
}

// --- branches -----------------------------------------------------------

// branchTo moves the label's branch values into its phi slots and emits the
// jump; forward jumps are registered for patching.
func (co *compiler) branchTo(depth uint32) {
	fr := co.label(depth)
	ts := fr.branchTypes()
	n := len(ts)
	vals := co.stack[len(co.stack)-n:]
	for i, v := range vals {
		co.emitMove(ts[i], v.off, fr.phiSlots[i])
	}
	if fr.kind == kindLoop {
		co.buf.EmitJump(bytecode.OpJump, int32(fr.startPC-co.buf.Len()))
		return
	}
	pc := co.buf.EmitJump(bytecode.OpJump, 0)
	fr.endPatches = append(fr.endPatches, pc)
}

// branchMovesNeeded reports whether a branch to the label has to move any
// values before jumping.
func (co *compiler) branchMovesNeeded(depth uint32) bool {
	fr := co.label(depth)
	ts := fr.branchTypes()
	n := len(ts)
	vals := co.stack[len(co.stack)-n:]
	for i, v := range vals {
		if v.off != fr.phiSlots[i] {
			return true
		}
	}
	return false
}

// jumpTo emits a plain jump to the label without value moves.
func (co *compiler) jumpTo(depth uint32) {
	fr := co.label(depth)
	if fr.kind == kindLoop {
		co.buf.EmitJump(bytecode.OpJump, int32(fr.startPC-co.buf.Len()))
		return
	}
	pc := co.buf.EmitJump(bytecode.OpJump, 0)
	fr.endPatches = append(fr.endPatches, pc)
}

// --- main loop ----------------------------------------------------------

func (co *compiler) run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = errors.Translate("function body", e)
				return
			}
			panic(r)
		}
	}()

	for co.pos < len(co.body) {
		op := co.rByte()
		if done, err := co.instruction(op); err != nil || done {
			return err
		}
	}
	return co.fail("body ran past its end opcode")
}

// instruction translates one wasm instruction; it returns true after the
// final end.
func (co *compiler) instruction(op byte) (bool, error) {
	switch op {
	case wasm.OpNop:
	case wasm.OpUnreachable:
		if co.reachable() {
			pc := co.buf.Emit(bytecode.OpUnreachable)
			co.markTrap(pc)
			co.top().unreachable = true
		}

	case wasm.OpBlock, wasm.OpLoop:
		co.enterBlock(op == wasm.OpLoop)
	case wasm.OpIf:
		co.enterIf()
	case wasm.OpElse:
		co.enterElse()
	case wasm.OpTry:
		co.enterTry()
	case wasm.OpCatch, wasm.OpCatchAll:
		co.enterCatch(op == wasm.OpCatchAll)
	case wasm.OpDelegate:
		co.delegate(co.rU32())
	case wasm.OpTryTable:
		co.enterTryTable()
	case wasm.OpEnd:
		done := len(co.ctrl) == 1
		co.endBlock()
		if done {
			return true, nil
		}

	case wasm.OpBr:
		depth := co.rU32()
		if co.reachable() {
			co.branchTo(depth)
			co.top().unreachable = true
		}
	case wasm.OpBrIf:
		depth := co.rU32()
		if !co.reachable() {
			break
		}
		cond := co.pop()
		hintPC := co.buf.Len()
		if co.branchMovesNeeded(depth) {
			skip := co.buf.EmitJump(bytecode.OpJumpIfFalse, 0, cond.off)
			co.branchTo(depth)
			co.buf.PatchJump(skip, co.buf.Len())
		} else {
			fr := co.label(depth)
			if fr.kind == kindLoop {
				co.buf.EmitJump(bytecode.OpJumpIfTrue, int32(fr.startPC-co.buf.Len()), cond.off)
			} else {
				pc := co.buf.EmitJump(bytecode.OpJumpIfTrue, 0, cond.off)
				fr.endPatches = append(fr.endPatches, pc)
			}
		}
		co.c.RegHints = append(co.c.RegHints, RegHint{PC: hintPC, Operand: 0, Reg: 0})
		co.frame.release(cond.off)
	case wasm.OpBrTable:
		co.brTable()

	case wasm.OpReturn:
		if co.reachable() {
			co.emitReturn()
			co.top().unreachable = true
		}

	case wasm.OpCall:
		co.call(bytecode.OpCall, co.rU32())
	case wasm.OpReturnCall:
		co.call(bytecode.OpReturnCall, co.rU32())
		co.top().unreachable = true
	case wasm.OpCallIndirect:
		typeIdx := co.rU32()
		tableIdx := co.rU32()
		co.callIndirect(bytecode.OpCallIndirect, typeIdx, tableIdx)
	case wasm.OpReturnCallIndirect:
		typeIdx := co.rU32()
		tableIdx := co.rU32()
		co.callIndirect(bytecode.OpReturnCallIndirect, typeIdx, tableIdx)
		co.top().unreachable = true
	case wasm.OpCallRef:
		co.callRef(bytecode.OpCallRef, co.rU32())
	case wasm.OpReturnCallRef:
		co.callRef(bytecode.OpReturnCallRef, co.rU32())
		co.top().unreachable = true

	case wasm.OpThrow:
		tag := co.rU32()
		if co.reachable() {
			ft := co.m.Tags[tag].Type
			srcs := co.popN(len(ft.Params))
			offs := make([]bytecode.StackOffset, len(srcs))
			for i, s := range srcs {
				offs[i] = s.off
			}
			pc := co.buf.EmitThrow(tag, offs)
			co.markTrap(pc)
			co.releaseAll(srcs)
			co.top().unreachable = true
		}
	case wasm.OpThrowRef:
		if co.reachable() {
			ref := co.pop()
			pc := co.buf.Emit(bytecode.OpThrowRef, ref.off)
			co.markTrap(pc)
			co.frame.release(ref.off)
			co.top().unreachable = true
		}
	case wasm.OpRethrow:
		depth := co.rU32()
		if co.reachable() {
			fr := co.label(depth)
			pc := co.buf.Emit(bytecode.OpThrowRef, fr.exnSlot)
			co.markTrap(pc)
			co.top().unreachable = true
		}

	case wasm.OpDrop:
		if co.reachable() {
			co.frame.release(co.pop().off)
		}
	case wasm.OpSelect, wasm.OpSelectType:
		var t types.ValType
		explicit := op == wasm.OpSelectType
		if explicit {
			n := co.rU32()
			for i := uint32(0); i < n; i++ {
				t = co.rValType()
			}
		}
		if !co.reachable() {
			break
		}
		cond := co.pop()
		v2 := co.pop()
		v1 := co.pop()
		if !explicit {
			t = v1.typ
		}
		dst := co.push(t)
		co.buf.EmitSelect(cond.off, v1.off, v2.off, dst.off, uint16(t.Kind.StackSize()))
		co.frame.release(cond.off)
		co.frame.release(v2.off)
		co.frame.release(v1.off)

	case wasm.OpLocalGet:
		idx := co.rU32()
		if co.reachable() {
			t := co.localType(idx)
			dst := co.push(t)
			co.emitMove(t, bytecode.StackOffset(co.frame.localOffsets[idx]), dst.off)
		}
	case wasm.OpLocalSet:
		idx := co.rU32()
		if co.reachable() {
			v := co.pop()
			co.emitMove(v.typ, v.off, bytecode.StackOffset(co.frame.localOffsets[idx]))
			co.frame.release(v.off)
		}
	case wasm.OpLocalTee:
		idx := co.rU32()
		if co.reachable() {
			v := co.stack[len(co.stack)-1]
			co.emitMove(v.typ, v.off, bytecode.StackOffset(co.frame.localOffsets[idx]))
		}

	case wasm.OpGlobalGet:
		idx := co.rU32()
		if co.reachable() {
			t := co.globalType(idx)
			dst := co.push(t)
			co.buf.EmitIndex(globalOp(t.Kind, false), idx, dst.off)
		}
	case wasm.OpGlobalSet:
		idx := co.rU32()
		if co.reachable() {
			v := co.pop()
			co.buf.EmitIndex(globalOp(v.typ.Kind, true), idx, v.off)
			co.frame.release(v.off)
		}

	case wasm.OpTableGet:
		idx := co.rU32()
		if co.reachable() {
			i := co.pop()
			dst := co.push(co.m.Tables[idx].Elem)
			pc := co.buf.EmitIndex(bytecode.OpTableGet, idx, i.off, dst.off)
			co.markTrap(pc)
			co.frame.release(i.off)
		}
	case wasm.OpTableSet:
		idx := co.rU32()
		if co.reachable() {
			v := co.pop()
			i := co.pop()
			pc := co.buf.EmitIndex(bytecode.OpTableSet, idx, i.off, v.off)
			co.markTrap(pc)
			co.frame.release(v.off)
			co.frame.release(i.off)
		}

	case wasm.OpI32Const:
		v := co.rS32()
		if co.reachable() {
			dst := co.push(types.I32())
			co.buf.EmitConst32(dst.off, uint32(v))
		}
	case wasm.OpI64Const:
		v := co.rS64()
		if co.reachable() {
			dst := co.push(types.I64())
			co.buf.EmitConst64(dst.off, uint64(v))
		}
	case wasm.OpF32Const:
		bits := le32(co.rBytes(4))
		if co.reachable() {
			dst := co.push(types.F32())
			co.buf.EmitConst32(dst.off, bits)
		}
	case wasm.OpF64Const:
		bits := le64(co.rBytes(8))
		if co.reachable() {
			dst := co.push(types.F64())
			co.buf.EmitConst64(dst.off, bits)
		}

	case wasm.OpMemorySize:
		idx := co.rU32()
		if co.reachable() {
			dst := co.push(co.memIndexType(idx))
			co.buf.EmitIndex2(bytecode.OpMemorySize, idx, 0, dst.off)
		}
	case wasm.OpMemoryGrow:
		idx := co.rU32()
		if co.reachable() {
			d := co.pop()
			dst := co.push(co.memIndexType(idx))
			co.buf.EmitIndex2(bytecode.OpMemoryGrow, idx, 0, d.off, dst.off)
			co.frame.release(d.off)
		}

	case wasm.OpRefNull:
		heap := co.rS33()
		if co.reachable() {
			dst := co.push(co.heapValType(heap, true))
			co.buf.Emit(bytecode.OpRefNull, dst.off)
		}
	case wasm.OpRefIsNull:
		if co.reachable() {
			v := co.pop()
			dst := co.push(types.I32())
			co.buf.Emit(bytecode.OpRefIsNull, v.off, dst.off)
			co.frame.release(v.off)
		}
	case wasm.OpRefFunc:
		idx := co.rU32()
		if co.reachable() {
			dst := co.push(types.RefOf(co.m.Funcs[idx].Type, false))
			co.buf.EmitIndex(bytecode.OpRefFunc, idx, dst.off)
		}
	case wasm.OpRefEq:
		if co.reachable() {
			b := co.pop()
			a := co.pop()
			dst := co.push(types.I32())
			co.buf.Emit(bytecode.OpRefEq, a.off, b.off, dst.off)
			co.frame.release(b.off)
			co.frame.release(a.off)
		}
	case wasm.OpRefAsNonNull:
		if co.reachable() {
			v := co.pop()
			t := v.typ
			t.Ref.Nullable = false
			dst := co.push(t)
			pc := co.buf.Emit(bytecode.OpRefAsNonNull, v.off, dst.off)
			co.markTrap(pc)
			co.frame.release(v.off)
		}
	case wasm.OpBrOnNull:
		depth := co.rU32()
		if co.reachable() {
			co.brOnNull(depth, bytecode.OpBrOnNull)
		}
	case wasm.OpBrOnNonNull:
		depth := co.rU32()
		if co.reachable() {
			co.brOnNull(depth, bytecode.OpBrOnNonNull)
		}

	case wasm.OpPrefixMisc:
		return false, co.miscInstruction(co.rU32())
	case wasm.OpPrefixSIMD:
		return false, co.simdInstruction(co.rU32())
	case wasm.OpPrefixGC:
		return false, co.gcInstruction(co.rU32())
	case wasm.OpPrefixAtomic:
		return false, co.atomicInstruction(co.rU32())

	default:
		if spec, ok := coreOps[op]; ok {
			if co.reachable() {
				co.emitOp(spec)
			}
			break
		}
		if ls, ok := loadOps[op]; ok {
			memIdx, offset := co.memArg()
			if co.reachable() {
				co.emitLoad(ls, memIdx, offset)
			}
			break
		}
		if ss, ok := storeOps[op]; ok {
			memIdx, offset := co.memArg()
			if co.reachable() {
				co.emitStore(ss, memIdx, offset)
			}
			break
		}
		return false, co.fail("unknown opcode 0x%02x", op)
	}
	return false, nil
}

func (co *compiler) localType(idx uint32) types.ValType {
	if int(idx) < len(co.ft.Params) {
		return co.ft.Params[idx]
	}
	return co.c.Locals[int(idx)-len(co.ft.Params)]
}

func (co *compiler) globalType(idx uint32) types.ValType {
	return co.m.Globals[idx].Type.Type
}

func (co *compiler) memIndexType(idx uint32) types.ValType {
	if co.m.Memories[idx].Memory64 {
		return types.I64()
	}
	return types.I32()
}

func globalOp(k types.Kind, set bool) bytecode.Opcode {
	switch k.StackKind() {
	case types.KindI32, types.KindF32:
		if set {
			return bytecode.OpGlobalSet32
		}
		return bytecode.OpGlobalGet32
	case types.KindV128:
		if set {
			return bytecode.OpGlobalSet128
		}
		return bytecode.OpGlobalGet128
	case types.KindRef:
		if set {
			return bytecode.OpGlobalSetRef
		}
		return bytecode.OpGlobalGetRef
	default:
		if set {
			return bytecode.OpGlobalSet64
		}
		return bytecode.OpGlobalGet64
	}
}

func le32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func le64(b []byte) uint64 {
	return uint64(le32(b)) | uint64(le32(b[4:]))<<32
}
