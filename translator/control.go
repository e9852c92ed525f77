package translator

import (
	"github.com/wippyai/wasm-engine/bytecode"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

// ttClause is a try_table catch clause pending until the block ends.
type ttClause struct {
	kind   byte
	tag    uint32
	target *ctrlFrame
}

func (co *compiler) pushFrame(fr *ctrlFrame) {
	fr.elsePatch = -1
	co.ctrl = append(co.ctrl, fr)
}

func (co *compiler) snapshot() []stackEntry {
	return append([]stackEntry(nil), co.stack...)
}

func (co *compiler) enterBlock(isLoop bool) {
	params, results := co.blockSig()
	if !co.reachable() {
		co.pushFrame(&ctrlFrame{kind: kindBlock, dead: true, unreachable: true})
		return
	}

	fr := &ctrlFrame{params: params, results: results}
	if isLoop {
		fr.kind = kindLoop
		fr.phiSlots = co.allocPhi(params)
		// Rehome the incoming params so every backward branch writes the
		// same slots.
		vals := co.popN(len(params))
		for i, v := range vals {
			co.emitMove(params[i], v.off, fr.phiSlots[i])
			co.frame.release(v.off)
			co.pushAt(params[i], fr.phiSlots[i])
		}
		fr.savedStack = co.snapshot()
		fr.startPC = co.buf.Len()
	} else {
		fr.kind = kindBlock
		fr.phiSlots = co.allocPhi(results)
		fr.savedStack = co.snapshot()
	}
	co.pushFrame(fr)
}

func (co *compiler) enterIf() {
	params, results := co.blockSig()
	if !co.reachable() {
		co.pushFrame(&ctrlFrame{kind: kindIf, dead: true, unreachable: true})
		return
	}

	cond := co.pop()
	fr := &ctrlFrame{kind: kindIf, params: params, results: results}
	fr.phiSlots = co.allocPhi(results)
	fr.savedStack = co.snapshot()
	co.pushFrame(fr)

	fr.elsePatch = co.buf.EmitJump(bytecode.OpJumpIfFalse, 0, cond.off)
	co.c.RegHints = append(co.c.RegHints, RegHint{PC: fr.elsePatch, Operand: 0, Reg: 0})
	co.frame.release(cond.off)
}

func (co *compiler) enterElse() {
	fr := co.top()
	if fr.dead {
		return
	}

	// Close the then-branch: results to phi, jump over the else body.
	if !fr.unreachable {
		n := len(fr.results)
		vals := co.stack[len(co.stack)-n:]
		for i, v := range vals {
			co.emitMove(fr.results[i], v.off, fr.phiSlots[i])
		}
		co.releaseAll(vals)
		pc := co.buf.EmitJump(bytecode.OpJump, 0)
		fr.endPatches = append(fr.endPatches, pc)
	}

	co.buf.PatchJump(fr.elsePatch, co.buf.Len())
	fr.elsePatch = -1
	co.stack = append([]stackEntry(nil), fr.savedStack...)
	fr.unreachable = false
}

func (co *compiler) currentTry() uint32 {
	if len(co.tryStack) == 0 {
		return TryBlockNone
	}
	return co.tryStack[len(co.tryStack)-1]
}

func (co *compiler) enterTry() {
	params, results := co.blockSig()
	if !co.reachable() {
		co.pushFrame(&ctrlFrame{kind: kindTry, dead: true, unreachable: true})
		return
	}

	fr := &ctrlFrame{kind: kindTry, params: params, results: results}
	fr.phiSlots = co.allocPhi(results)
	fr.savedStack = co.snapshot()
	fr.exnSlot = co.frame.alloc(types.KindRef)

	fr.tryIdx = uint32(len(co.c.TryTable))
	co.c.TryTable = append(co.c.TryTable, TryBlock{
		Parent: co.currentTry(),
		Begin:  co.buf.Len(),
	})
	co.tryStack = append(co.tryStack, fr.tryIdx)
	co.pushFrame(fr)
}

// closeTry seals the protected region of a try frame.
func (co *compiler) closeTry(fr *ctrlFrame) {
	co.c.TryTable[fr.tryIdx].End = co.buf.Len()
	co.tryStack = co.tryStack[:len(co.tryStack)-1]
}

func (co *compiler) enterCatch(all bool) {
	var tag uint32
	if !all {
		tag = co.rU32()
	}
	fr := co.top()
	if fr.dead {
		return
	}

	// Close the previous region (try body or earlier handler).
	if !fr.unreachable {
		n := len(fr.results)
		vals := co.stack[len(co.stack)-n:]
		for i, v := range vals {
			co.emitMove(fr.results[i], v.off, fr.phiSlots[i])
		}
		co.releaseAll(vals)
		pc := co.buf.EmitJump(bytecode.OpJump, 0)
		fr.endPatches = append(fr.endPatches, pc)
	}
	if !fr.inHandler {
		co.closeTry(fr)
		fr.inHandler = true
	}

	co.stack = append([]stackEntry(nil), fr.savedStack[:fr.entryHeight()]...)
	fr.unreachable = false

	catch := CatchBlock{TagIndex: CatchAll, Ref: true, RefOffset: fr.exnSlot}
	if !all {
		catch.TagIndex = tag
		for _, t := range co.m.Tags[tag].Type.Params {
			e := co.push(t)
			catch.PayloadOffsets = append(catch.PayloadOffsets, e.off)
		}
	}
	catch.Handler = co.buf.Len()
	co.c.TryTable[fr.tryIdx].Catches = append(co.c.TryTable[fr.tryIdx].Catches, catch)
}

// delegate closes a try, rerouting its exceptions to the try enclosing the
// label.
func (co *compiler) delegate(depth uint32) {
	fr := co.top()
	if fr.dead {
		co.endBlock()
		return
	}
	tryIdx := fr.tryIdx

	parent := TryBlockNone
	// The label is resolved outside the try frame itself.
	for i := len(co.ctrl) - 2 - int(depth); i >= 0; i-- {
		if co.ctrl[i].kind == kindTry && !co.ctrl[i].inHandler && !co.ctrl[i].dead {
			parent = co.ctrl[i].tryIdx
			break
		}
	}
	co.endBlock()
	co.c.TryTable[tryIdx].Parent = parent
}

func (co *compiler) enterTryTable() {
	params, results := co.blockSig()
	n := co.rU32()
	type rawClause struct {
		kind  byte
		tag   uint32
		label uint32
	}
	raw := make([]rawClause, n)
	for i := range raw {
		raw[i].kind = co.rByte()
		if raw[i].kind == wasm.CatchKindCatch || raw[i].kind == wasm.CatchKindCatchRef {
			raw[i].tag = co.rU32()
		}
		raw[i].label = co.rU32()
	}
	if !co.reachable() {
		co.pushFrame(&ctrlFrame{kind: kindTryTable, dead: true, unreachable: true})
		return
	}

	fr := &ctrlFrame{kind: kindTryTable, params: params, results: results}
	fr.phiSlots = co.allocPhi(results)
	fr.savedStack = co.snapshot()
	for _, rc := range raw {
		fr.ttClauses = append(fr.ttClauses, ttClause{
			kind:   rc.kind,
			tag:    rc.tag,
			target: co.label(rc.label),
		})
	}

	fr.tryIdx = uint32(len(co.c.TryTable))
	co.c.TryTable = append(co.c.TryTable, TryBlock{
		Parent: co.currentTry(),
		Begin:  co.buf.Len(),
	})
	co.tryStack = append(co.tryStack, fr.tryIdx)
	co.pushFrame(fr)
}

// emitTryTableHandlers materialises one trampoline per catch clause; the
// unwinder copies the payload into the target label's merge slots and
// resumes at the trampoline, which only jumps.
func (co *compiler) emitTryTableHandlers(fr *ctrlFrame) {
	for _, cl := range fr.ttClauses {
		catch := CatchBlock{TagIndex: CatchAll}
		withRef := cl.kind == wasm.CatchKindCatchRef || cl.kind == wasm.CatchKindCatchAllRef
		nPayload := 0
		if cl.kind == wasm.CatchKindCatch || cl.kind == wasm.CatchKindCatchRef {
			catch.TagIndex = cl.tag
			nPayload = len(co.m.Tags[cl.tag].Type.Params)
		}
		target := cl.target
		catch.PayloadOffsets = append(catch.PayloadOffsets, target.phiSlots[:nPayload]...)
		if withRef {
			catch.Ref = true
			catch.RefOffset = target.phiSlots[nPayload]
		}
		catch.Handler = co.buf.Len()
		co.c.TryTable[fr.tryIdx].Catches = append(co.c.TryTable[fr.tryIdx].Catches, catch)

		if target.kind == kindLoop {
			co.buf.EmitJump(bytecode.OpJump, int32(target.startPC-co.buf.Len()))
		} else {
			pc := co.buf.EmitJump(bytecode.OpJump, 0)
			target.endPatches = append(target.endPatches, pc)
		}
	}
}

func (co *compiler) endBlock() {
	fr := co.top()
	co.ctrl = co.ctrl[:len(co.ctrl)-1]
	if fr.dead {
		return
	}

	isFunc := len(co.ctrl) == 0

	if fr.kind == kindLoop {
		var results []stackEntry
		if !fr.unreachable {
			results = co.popN(len(fr.results))
		}
		co.stack = append([]stackEntry(nil), fr.savedStack[:fr.entryHeight()]...)
		if fr.unreachable {
			for _, t := range fr.results {
				co.push(t)
			}
		} else {
			co.stack = append(co.stack, results...)
		}
		// Loop param slots are dead now unless a result entry still reads
		// one (a param flowing straight through as the loop's value).
		live := make(map[bytecode.StackOffset]bool, len(results))
		for _, r := range results {
			live[r.off] = true
		}
		for _, s := range fr.phiSlots {
			if !live[s] {
				co.frame.release(s)
			}
		}
		return
	}

	if (fr.kind == kindTry && !fr.inHandler) || fr.kind == kindTryTable {
		co.closeTry(fr)
	}

	// Fall-through edge: results into the merge slots.
	fellThrough := !fr.unreachable
	if fellThrough {
		n := len(fr.results)
		vals := co.stack[len(co.stack)-n:]
		for i, v := range vals {
			co.emitMove(fr.results[i], v.off, fr.phiSlots[i])
		}
		co.releaseAll(vals)
	}

	// Stub code between the fall-through edge and the end label.
	needIfStub := fr.kind == kindIf && fr.elsePatch >= 0 && len(fr.results) > 0
	needStubs := needIfStub || len(fr.ttClauses) > 0
	if needStubs {
		if fellThrough {
			pc := co.buf.EmitJump(bytecode.OpJump, 0)
			fr.endPatches = append(fr.endPatches, pc)
		}
		if needIfStub {
			// An if without else passes its params through on the false
			// edge; route them into the merge slots.
			co.buf.PatchJump(fr.elsePatch, co.buf.Len())
			fr.elsePatch = -1
			saved := fr.savedStack[fr.entryHeight():]
			for i, v := range saved {
				co.emitMove(fr.results[i], v.off, fr.phiSlots[i])
			}
			pc := co.buf.EmitJump(bytecode.OpJump, 0)
			fr.endPatches = append(fr.endPatches, pc)
		}
		co.emitTryTableHandlers(fr)
	}

	end := co.buf.Len()
	if fr.elsePatch >= 0 {
		co.buf.PatchJump(fr.elsePatch, end)
	}
	for _, p := range fr.endPatches {
		co.buf.PatchJump(p, end)
	}

	if fr.kind == kindTry {
		co.frame.release(fr.exnSlot)
	}

	co.stack = append([]stackEntry(nil), fr.savedStack[:fr.entryHeight()]...)
	for i, t := range fr.results {
		co.pushAt(t, fr.phiSlots[i])
	}

	if isFunc {
		co.emitFunctionEnd(fr)
	}
}

// emitFunctionEnd writes the epilogue listing where each result lives.
func (co *compiler) emitFunctionEnd(fr *ctrlFrame) {
	co.buf.EmitEnd(fr.phiSlots)
}

// emitReturn lowers an explicit return: the epilogue copies straight from
// the current result positions.
func (co *compiler) emitReturn() {
	n := len(co.ft.Results)
	vals := co.stack[len(co.stack)-n:]
	offs := make([]bytecode.StackOffset, n)
	for i, v := range vals {
		offs[i] = v.off
	}
	co.buf.EmitEnd(offs)
}

func (co *compiler) brTable() {
	n := co.rU32()
	depths := make([]uint32, n+1)
	for i := uint32(0); i < n; i++ {
		depths[i] = co.rU32()
	}
	depths[n] = co.rU32()
	if !co.reachable() {
		return
	}

	idx := co.pop()
	br := co.buf.EmitBrTable(idx.off, uint32(len(depths)))
	co.frame.release(idx.off)

	stubs := make(map[uint32]int, len(depths))
	for i, d := range depths {
		pc, ok := stubs[d]
		if !ok {
			pc = co.buf.Len()
			stubs[d] = pc
			co.branchTo(d)
		}
		co.buf.PatchBrTableEntry(br, uint32(i), pc)
	}
	co.top().unreachable = true
}

// --- calls --------------------------------------------------------------

func (co *compiler) noteScratch(ft *types.FunctionType) {
	need := ft.ParamsSize
	if ft.ResultsSize > need {
		need = ft.ResultsSize
	}
	if need > co.c.ScratchSize {
		co.c.ScratchSize = need
	}
}

func (co *compiler) callOperands(ft *types.FunctionType, tail bool) (params, results []bytecode.StackOffset, srcs []stackEntry) {
	srcs = co.popN(len(ft.Params))
	params = make([]bytecode.StackOffset, len(srcs))
	for i, s := range srcs {
		params[i] = s.off
	}
	if !tail {
		results = make([]bytecode.StackOffset, len(ft.Results))
		for i, t := range ft.Results {
			results[i] = co.push(t).off
		}
	}
	return params, results, srcs
}

func isTail(op bytecode.Opcode) bool {
	return op == bytecode.OpReturnCall || op == bytecode.OpReturnCallIndirect ||
		op == bytecode.OpReturnCallRef
}

func (co *compiler) call(op bytecode.Opcode, fidx uint32) {
	if !co.reachable() {
		return
	}
	ft := co.m.Funcs[fidx].Type.Func
	params, results, srcs := co.callOperands(ft, isTail(op))
	pc := co.buf.EmitCall(op, fidx, params, results)
	co.markTrap(pc)
	co.noteScratch(ft)
	co.releaseAll(srcs)
	if len(params) > 0 {
		co.c.RegHints = append(co.c.RegHints, RegHint{PC: pc, Operand: 0, Reg: 0})
	}
}

func (co *compiler) callIndirect(op bytecode.Opcode, typeIdx, tableIdx uint32) {
	if !co.reachable() {
		return
	}
	callee := co.pop()
	ft := co.m.Types[typeIdx].Func
	params, results, srcs := co.callOperands(ft, isTail(op))
	pc := co.buf.EmitCallIndirect(op, callee.off, tableIdx, typeIdx, params, results)
	co.markTrap(pc)
	co.noteScratch(ft)
	co.releaseAll(srcs)
	co.frame.release(callee.off)
}

func (co *compiler) callRef(op bytecode.Opcode, typeIdx uint32) {
	if !co.reachable() {
		return
	}
	callee := co.pop()
	ft := co.m.Types[typeIdx].Func
	params, results, srcs := co.callOperands(ft, isTail(op))
	pc := co.buf.EmitCallRef(op, callee.off, typeIdx, params, results)
	co.markTrap(pc)
	co.noteScratch(ft)
	co.releaseAll(srcs)
	co.frame.release(callee.off)
}

// --- null-checked branches ---------------------------------------------

func (co *compiler) brOnNull(depth uint32, op bytecode.Opcode) {
	ref := co.stack[len(co.stack)-1]

	if op == bytecode.OpBrOnNull {
		// Branch values exclude the ref; the fall-through keeps it,
		// non-nullable.
		co.stack = co.stack[:len(co.stack)-1]
		if co.branchMovesNeeded(depth) {
			j := co.buf.EmitJump(op, 0, ref.off)
			skip := co.buf.EmitJump(bytecode.OpJump, 0)
			co.buf.PatchJump(j, co.buf.Len())
			co.branchTo(depth)
			co.buf.PatchJump(skip, co.buf.Len())
		} else {
			co.emitCondBranch(op, ref.off, depth)
		}
		t := ref.typ
		t.Ref.Nullable = false
		co.pushAt(t, ref.off)
		return
	}

	// br_on_non_null: branch values include the ref.
	if co.branchMovesNeeded(depth) {
		j := co.buf.EmitJump(bytecode.OpBrOnNull, 0, ref.off)
		co.branchTo(depth)
		co.buf.PatchJump(j, co.buf.Len())
	} else {
		co.emitCondBranch(op, ref.off, depth)
	}
	co.pop()
	co.frame.release(ref.off)
}

// emitCondBranch emits a conditional jump straight at the label.
func (co *compiler) emitCondBranch(op bytecode.Opcode, src bytecode.StackOffset, depth uint32) {
	fr := co.label(depth)
	if fr.kind == kindLoop {
		co.buf.EmitJump(op, int32(fr.startPC-co.buf.Len()), src)
		return
	}
	pc := co.buf.EmitJump(op, 0, src)
	fr.endPatches = append(fr.endPatches, pc)
}

// --- memory access ------------------------------------------------------

// memArg reads a memarg immediate: alignment hint, optional memory index,
// offset.
func (co *compiler) memArg() (memIdx uint32, offset uint64) {
	align := co.rU32()
	if align&0x40 != 0 {
		memIdx = co.rU32()
	}
	offset = co.rU64()
	return memIdx, offset
}

func (co *compiler) emitLoad(ls loadSpec, memIdx uint32, offset uint64) {
	addr := co.pop()
	dst := co.push(types.ValType{Kind: ls.out})
	pc := co.buf.EmitMemAccess(ls.op, uint16(memIdx), offset, addr.off, dst.off)
	co.markTrap(pc)
	co.frame.release(addr.off)
}

func (co *compiler) emitStore(ss storeSpec, memIdx uint32, offset uint64) {
	val := co.pop()
	addr := co.pop()
	pc := co.buf.EmitMemAccess(ss.op, uint16(memIdx), offset, addr.off, val.off)
	co.markTrap(pc)
	co.frame.release(val.off)
	co.frame.release(addr.off)
}

type loadSpec struct {
	op  bytecode.Opcode
	out types.Kind
}

type storeSpec struct {
	op bytecode.Opcode
}

var loadOps = map[byte]loadSpec{
	0x28: {bytecode.OpI32Load, types.KindI32},
	0x29: {bytecode.OpI64Load, types.KindI64},
	0x2A: {bytecode.OpF32Load, types.KindF32},
	0x2B: {bytecode.OpF64Load, types.KindF64},
	0x2C: {bytecode.OpI32Load8S, types.KindI32},
	0x2D: {bytecode.OpI32Load8U, types.KindI32},
	0x2E: {bytecode.OpI32Load16S, types.KindI32},
	0x2F: {bytecode.OpI32Load16U, types.KindI32},
	0x30: {bytecode.OpI64Load8S, types.KindI64},
	0x31: {bytecode.OpI64Load8U, types.KindI64},
	0x32: {bytecode.OpI64Load16S, types.KindI64},
	0x33: {bytecode.OpI64Load16U, types.KindI64},
	0x34: {bytecode.OpI64Load32S, types.KindI64},
	0x35: {bytecode.OpI64Load32U, types.KindI64},
}

var storeOps = map[byte]storeSpec{
	0x36: {bytecode.OpI32Store},
	0x37: {bytecode.OpI64Store},
	0x38: {bytecode.OpF32Store},
	0x39: {bytecode.OpF64Store},
	0x3A: {bytecode.OpI32Store8},
	0x3B: {bytecode.OpI32Store16},
	0x3C: {bytecode.OpI64Store8},
	0x3D: {bytecode.OpI64Store16},
	0x3E: {bytecode.OpI64Store32},
}
