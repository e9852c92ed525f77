package interp

import (
	"github.com/wippyai/wasm-engine/bytecode"
	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/types"
)

// call pushes one activation level and runs fn at frame base bp.
func (ec *ExecutionContext) call(fn *runtime.Function, bp int) *runtime.Trap {
	if ec.store != nil {
		if ec.store.Terminated() {
			return runtime.NewTrap(runtime.TrapTerminated)
		}
		if ec.depth >= ec.store.MaxCallDepth() {
			return runtime.NewTrap(runtime.TrapStackOverflow)
		}
	}
	ec.depth++
	defer func() { ec.depth-- }()
	return ec.run(fn, bp)
}

// run is the trampolined dispatch loop; tail calls rebind fn and restart
// it without growing the activation chain.
func (ec *ExecutionContext) run(fn *runtime.Function, bp int) *runtime.Trap {
trampoline:
	for {
		inst := fn.Instance()
		comp := fn.Compiled()
		ft := fn.Type()
		code := comp.Code
		fr := frameView{data: ec.stack, refs: ec.refs, bp: bp}
		ec.inst, ec.bp = inst, bp

		if bp+int(comp.FrameSize+comp.ScratchSize) > len(ec.stack) {
			return runtime.NewTrap(runtime.TrapStackOverflow)
		}
		// Locals are default-initialised.
		nParams := len(ft.Params)
		for i, l := range comp.Locals {
			o := fr.bp + int(comp.LocalOffsets[nParams+i])
			w := int(l.Kind.StackSize())
			for j := 0; j < w; j++ {
				fr.data[o+j] = 0
			}
			if w >= 8 {
				fr.refs[o/8] = nil
			}
		}

		pc := 0
		for {
			in := bytecode.At(code, pc)
			op := in.Opcode()
			switch op {
			case bytecode.OpUnreachable:
				ec.trap = runtime.NewTrap(runtime.TrapUnreachable)

			case bytecode.OpJump:
				pc = in.JumpTarget()
				continue
			case bytecode.OpJumpIfTrue:
				if fr.u32(fr.abs(in.Off(2))) != 0 {
					pc = in.JumpTarget()
					continue
				}
			case bytecode.OpJumpIfFalse:
				if fr.u32(fr.abs(in.Off(2))) == 0 {
					pc = in.JumpTarget()
					continue
				}
			case bytecode.OpBrTable:
				idx := fr.u32(fr.abs(in.Off(2)))
				n := in.U32(4) - 1 // last entry is the default
				if idx >= n {
					idx = n
				}
				pc = in.BrTableTarget(idx)
				continue

			case bytecode.OpSelect:
				size := int(in.U16(10))
				dst := fr.abs(in.Off(8))
				if fr.u32(fr.abs(in.Off(2))) != 0 {
					fr.copyValue(dst, fr.abs(in.Off(4)), size)
				} else {
					fr.copyValue(dst, fr.abs(in.Off(6)), size)
				}

			case bytecode.OpMove32:
				fr.copyValue(fr.abs(in.Off(4)), fr.abs(in.Off(2)), 4)
			case bytecode.OpMove64:
				fr.copyValue(fr.abs(in.Off(4)), fr.abs(in.Off(2)), 8)
			case bytecode.OpMove128:
				fr.copyValue(fr.abs(in.Off(4)), fr.abs(in.Off(2)), 16)

			case bytecode.OpConst32:
				fr.setU32(fr.abs(in.Off(2)), in.U32(4))
			case bytecode.OpConst64:
				fr.setU64(fr.abs(in.Off(2)), in.U64(8))
			case bytecode.OpConst128:
				o := fr.abs(in.Off(2))
				fr.setU64(o, in.U64(8))
				fr.setU64(o+8, in.U64(16))

			case bytecode.OpEnd:
				offs := in.OffsetList()
				for i, t := range ft.Results {
					w := int(t.Kind.StackSize())
					fr.copyValue(bp+int(ft.ResultOffsets[i]), fr.abs(offs[i]), w)
					if t.IsRef() {
						fr.setRef(bp+int(ft.ResultOffsets[i]), fr.ref(fr.abs(offs[i])))
					}
				}
				return nil

			case bytecode.OpCall, bytecode.OpCallIndirect, bytecode.OpCallRef:
				callee, trap := ec.resolveCallee(op, in, inst, fr)
				if trap != nil {
					ec.trap = trap
					break
				}
				params, results := in.CallSignature()
				calleeBp := bp + int(comp.FrameSize)
				if trap := ec.invokeNested(callee, fr, calleeBp, params, results); trap != nil {
					ec.trap = trap
				}

			case bytecode.OpReturnCall, bytecode.OpReturnCallIndirect, bytecode.OpReturnCallRef:
				callee, trap := ec.resolveCallee(op, in, inst, fr)
				if trap != nil {
					ec.trap = trap
					break
				}
				params, _ := in.CallSignature()
				cft := callee.Type()
				if callee.IsHost() {
					args := make([]types.Value, len(cft.Params))
					for i, t := range cft.Params {
						args[i] = readValue(fr, fr.abs(params[i]), t)
					}
					rs, err := callee.Host()(ec.store, args)
					if err != nil {
						ec.trap = hostTrap(err)
						ec.exn = ec.trap.Exception
						break
					}
					for i := range cft.Results {
						writeValue(fr, bp+int(cft.ResultOffsets[i]), rs[i])
					}
					return nil
				}
				// Rehome the arguments through a staging copy: source and
				// destination slots may overlap within this frame.
				staged := make([]byte, cft.ParamsSize)
				stagedRefs := make([]types.Reference, len(cft.Params))
				for i, t := range cft.Params {
					w := int(t.Kind.StackSize())
					src := fr.abs(params[i])
					copy(staged[cft.ParamOffsets[i]:], fr.data[src:src+w])
					if w >= 8 {
						stagedRefs[i] = fr.ref(src)
					}
				}
				for i, t := range cft.Params {
					w := int(t.Kind.StackSize())
					dst := bp + int(cft.ParamOffsets[i])
					copy(fr.data[dst:dst+w], staged[cft.ParamOffsets[i]:int(cft.ParamOffsets[i])+w])
					if w >= 8 {
						fr.setRef(dst, stagedRefs[i])
					}
				}
				fn = callee
				continue trampoline

			case bytecode.OpThrow:
				tag := inst.TagAt(in.U32(4))
				exn := runtime.NewException(tag)
				tft := tag.Type()
				offs := in.OffsetList()
				for j, t := range tft.Params {
					w := int(t.Kind.StackSize())
					src := fr.abs(offs[j])
					copy(exn.Payload[tft.ParamOffsets[j]:], fr.data[src:src+w])
					if t.IsRef() {
						exn.Refs[j] = fr.ref(src)
					}
				}
				ec.exn = exn
				ec.trap = &runtime.Trap{Code: runtime.TrapUncaughtException, Exception: exn}

			case bytecode.OpThrowRef:
				ref := fr.ref(fr.abs(in.Off(2)))
				if ref == nil {
					ec.trap = runtime.NewTrap(runtime.TrapNullAccess)
					break
				}
				exn := ref.(*runtime.Exception)
				ec.exn = exn
				ec.trap = &runtime.Trap{Code: runtime.TrapUncaughtException, Exception: exn}

			case bytecode.OpGlobalGet32:
				fr.setU32(fr.abs(in.Off(2)), uint32(inst.Global(in.U32(4)).Get().Bits()))
			case bytecode.OpGlobalGet64:
				fr.setU64(fr.abs(in.Off(2)), inst.Global(in.U32(4)).Get().Bits())
			case bytecode.OpGlobalGet128:
				lo, hi := inst.Global(in.U32(4)).Get().V128()
				o := fr.abs(in.Off(2))
				fr.setU64(o, lo)
				fr.setU64(o+8, hi)
			case bytecode.OpGlobalGetRef:
				fr.setRef(fr.abs(in.Off(2)), inst.Global(in.U32(4)).Get().Ref())
			case bytecode.OpGlobalSet32:
				g := inst.Global(in.U32(4))
				if g.Type().Type.Kind == types.KindF32 {
					g.Set(types.NewF32(fr.f32(fr.abs(in.Off(2)))))
				} else {
					g.Set(types.NewI32(fr.i32(fr.abs(in.Off(2)))))
				}
			case bytecode.OpGlobalSet64:
				g := inst.Global(in.U32(4))
				if g.Type().Type.Kind == types.KindF64 {
					g.Set(types.NewF64(fr.f64(fr.abs(in.Off(2)))))
				} else {
					g.Set(types.NewI64(fr.i64(fr.abs(in.Off(2)))))
				}
			case bytecode.OpGlobalSet128:
				o := fr.abs(in.Off(2))
				inst.Global(in.U32(4)).Set(types.NewV128(fr.u64(o), fr.u64(o+8)))
			case bytecode.OpGlobalSetRef:
				inst.Global(in.U32(4)).Set(types.NewRef(fr.ref(fr.abs(in.Off(2)))))

			case bytecode.OpRefNull:
				fr.setRef(fr.abs(in.Off(2)), nil)
			case bytecode.OpRefFunc:
				fr.setRef(fr.abs(in.Off(2)), inst.Function(in.U32(4)))
			case bytecode.OpRefIsNull:
				fr.setBool(fr.abs(in.Off(4)), fr.ref(fr.abs(in.Off(2))) == nil)
			case bytecode.OpRefEq:
				a := fr.ref(fr.abs(in.Off(2)))
				b := fr.ref(fr.abs(in.Off(4)))
				fr.setBool(fr.abs(in.Off(6)), refEq(a, b))
			case bytecode.OpRefAsNonNull:
				ref := fr.ref(fr.abs(in.Off(2)))
				if ref == nil {
					ec.trap = runtime.NewTrap(runtime.TrapNullAccess)
					break
				}
				fr.setRef(fr.abs(in.Off(4)), ref)
			case bytecode.OpBrOnNull:
				if fr.ref(fr.abs(in.Off(2))) == nil {
					pc = in.JumpTarget()
					continue
				}
			case bytecode.OpBrOnNonNull:
				if fr.ref(fr.abs(in.Off(2))) != nil {
					pc = in.JumpTarget()
					continue
				}

			case bytecode.OpRefI31:
				v := fr.i32(fr.abs(in.Off(2)))
				fr.setRef(fr.abs(in.Off(4)), types.I31(v&0x7fffffff))
			case bytecode.OpI31GetS, bytecode.OpI31GetU:
				ref := fr.ref(fr.abs(in.Off(2)))
				if ref == nil {
					ec.trap = runtime.NewTrap(runtime.TrapNullAccess)
					break
				}
				i31 := ref.(types.I31)
				if op == bytecode.OpI31GetS {
					fr.setI32(fr.abs(in.Off(4)), i31.GetS())
				} else {
					fr.setI32(fr.abs(in.Off(4)), i31.GetU())
				}

			case bytecode.OpAnyConvertExtern:
				ref := fr.ref(fr.abs(in.Off(2)))
				if ext, ok := ref.(*runtime.ExternRef); ok {
					if inner, ok := ext.Value.(types.Reference); ok {
						ref = inner
					}
				}
				fr.setRef(fr.abs(in.Off(4)), ref)
			case bytecode.OpExternConvertAny:
				ref := fr.ref(fr.abs(in.Off(2)))
				if ref != nil {
					if _, isExt := ref.(*runtime.ExternRef); !isExt {
						ref = &runtime.ExternRef{Value: ref}
					}
				}
				fr.setRef(fr.abs(in.Off(4)), ref)

			case bytecode.OpRefTest:
				ref := fr.ref(fr.abs(in.Off(2)))
				target := ec.castTarget(inst, in.I32(8), in.U16(6)&1 != 0)
				fr.setBool(fr.abs(in.Off(4)), types.RefMatches(ref, target))
			case bytecode.OpRefCast:
				ref := fr.ref(fr.abs(in.Off(2)))
				target := ec.castTarget(inst, in.I32(8), in.U16(4)&1 != 0)
				if !types.RefMatches(ref, target) {
					ec.trap = runtime.NewTrap(runtime.TrapBadCast)
				}

			default:
				if !ec.execNumeric(op, in, fr) &&
					!ec.execMemory(op, in, inst, fr) &&
					!ec.execTable(op, in, inst, fr) &&
					!ec.execGC(op, in, inst, fr) &&
					!ec.execSIMD(op, in, fr) &&
					!ec.execAtomic(op, in, inst, fr) {
					panic("interp: unhandled opcode " + op.String())
				}
			}

			if ec.trap != nil {
				ec.pc = pc
				handler, ok := ec.unwind(comp, inst, fr, pc)
				if !ok {
					return ec.trap
				}
				pc = handler
				continue
			}
			pc = in.Next()
		}
	}
}

func refEq(a, b types.Reference) bool {
	ai, aok := a.(types.I31)
	bi, bok := b.(types.I31)
	if aok || bok {
		return aok && bok && ai == bi
	}
	return a == b
}

// castTarget decodes the heap immediate of a cast instruction.
func (ec *ExecutionContext) castTarget(inst *runtime.Instance, heap int32, nullable bool) types.RefType {
	if heap >= 0 {
		return types.RefType{Heap: types.HeapComposite, Composite: inst.Type(uint32(heap)), Nullable: nullable}
	}
	var h types.HeapKind
	switch int64(heap) {
	case -16:
		h = types.HeapFunc
	case -17:
		h = types.HeapExtern
	case -18:
		h = types.HeapAny
	case -19:
		h = types.HeapEq
	case -20:
		h = types.HeapI31
	case -21:
		h = types.HeapStruct
	case -22:
		h = types.HeapArray
	case -23:
		h = types.HeapExn
	case -15:
		h = types.HeapNone
	case -14:
		h = types.HeapNoExtern
	case -13:
		h = types.HeapNoFunc
	default:
		h = types.HeapNoExn
	}
	return types.RefType{Heap: h, Nullable: nullable}
}

// resolveCallee locates the target function of any call family member.
func (ec *ExecutionContext) resolveCallee(op bytecode.Opcode, in bytecode.Instr, inst *runtime.Instance, fr frameView) (*runtime.Function, *runtime.Trap) {
	switch op {
	case bytecode.OpCall, bytecode.OpReturnCall:
		return inst.Function(in.U32(8)), nil

	case bytecode.OpCallIndirect, bytecode.OpReturnCallIndirect:
		table := inst.Table(in.U32(8))
		idx := uint64(fr.u32(fr.abs(in.Off(6))))
		ref, ok := table.Get(idx)
		if !ok {
			return nil, runtime.NewTrap(runtime.TrapUndefinedElement)
		}
		if ref == nil {
			return nil, runtime.NewTrap(runtime.TrapUninitializedElement)
		}
		f, ok := ref.(*runtime.Function)
		if !ok {
			return nil, runtime.NewTrap(runtime.TrapIndirectCallTypeMismatch)
		}
		expected := inst.Type(in.U32(12))
		if !f.CompositeType().MatchesSupertype(expected) &&
			!f.Type().EqualSignature(expected.Func) {
			return nil, runtime.NewTrap(runtime.TrapIndirectCallTypeMismatch)
		}
		return f, nil

	default: // call_ref / return_call_ref
		ref := fr.ref(fr.abs(in.Off(6)))
		if ref == nil {
			return nil, runtime.NewTrap(runtime.TrapNullAccess)
		}
		return ref.(*runtime.Function), nil
	}
}

// invokeNested performs a non-tail call: copy arguments into the callee's
// parameter region, run it, copy results back.
func (ec *ExecutionContext) invokeNested(callee *runtime.Function, fr frameView, calleeBp int, params, results []bytecode.StackOffset) *runtime.Trap {
	cft := callee.Type()

	if callee.IsHost() {
		args := make([]types.Value, len(cft.Params))
		for i, t := range cft.Params {
			args[i] = readValue(fr, fr.abs(params[i]), t)
		}
		rs, err := callee.Host()(ec.store, args)
		if err != nil {
			trap := hostTrap(err)
			ec.exn = trap.Exception
			return trap
		}
		for i := range cft.Results {
			writeValue(fr, fr.abs(results[i]), rs[i])
		}
		return nil
	}

	for i, t := range cft.Params {
		w := int(t.Kind.StackSize())
		fr.copyValue(calleeBp+int(cft.ParamOffsets[i]), fr.abs(params[i]), w)
		if t.IsRef() {
			fr.setRef(calleeBp+int(cft.ParamOffsets[i]), fr.ref(fr.abs(params[i])))
		}
	}
	if trap := ec.call(callee, calleeBp); trap != nil {
		return trap
	}
	for i, t := range cft.Results {
		w := int(t.Kind.StackSize())
		fr.copyValue(fr.abs(results[i]), calleeBp+int(cft.ResultOffsets[i]), w)
		if t.IsRef() {
			fr.setRef(fr.abs(results[i]), fr.ref(calleeBp+int(cft.ResultOffsets[i])))
		}
	}
	return nil
}
