package interp

import (
	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/translator"
	"github.com/wippyai/wasm-engine/types"
)

// unwind routes the pending trap or exception through the function's try
// tables. It returns the handler pc to resume at, or false when nothing in
// this frame catches and the trap must propagate to the caller.
func (ec *ExecutionContext) unwind(comp *translator.Compiled, inst *runtime.Instance, fr frameView, pc int) (int, bool) {
	tryIdx, ok := comp.FindTry(pc)
	for ok {
		tb := &comp.TryTable[tryIdx]
		for i := range tb.Catches {
			c := &tb.Catches[i]
			if !ec.catchMatches(c, inst) {
				continue
			}
			if c.TagIndex != translator.CatchAll && ec.exn != nil {
				ec.copyPayload(c, fr)
			}
			if c.Ref {
				fr.setRef(fr.abs(c.RefOffset), refOrNil(ec.exn))
			}
			ec.trap, ec.exn = nil, nil
			return c.Handler, true
		}
		if tb.Parent == translator.TryBlockNone {
			break
		}
		tryIdx = tb.Parent
	}
	return 0, false
}

// refOrNil avoids storing a typed-nil interface for trap recoveries.
func refOrNil(e *runtime.Exception) types.Reference {
	if e == nil {
		return nil
	}
	return e
}

// catchMatches applies the routing rules: a tagged catch takes exceptions
// of exactly that tag; catch_all takes any exception and is also the only
// clause that may recover a trap.
func (ec *ExecutionContext) catchMatches(c *translator.CatchBlock, inst *runtime.Instance) bool {
	if c.TagIndex == translator.CatchAll {
		return true
	}
	if ec.trap == nil || ec.trap.Code != runtime.TrapUncaughtException || ec.exn == nil {
		return false
	}
	return ec.exn.Tag != nil && ec.exn.Tag == inst.TagAt(c.TagIndex)
}

// copyPayload lands the exception's payload at the catch's stack offsets.
func (ec *ExecutionContext) copyPayload(c *translator.CatchBlock, fr frameView) {
	tft := ec.exn.Tag.Type()
	for j, t := range tft.Params {
		w := int(t.Kind.StackSize())
		src := int(tft.ParamOffsets[j])
		dst := fr.abs(c.PayloadOffsets[j])
		copy(fr.data[dst:dst+w], ec.exn.Payload[src:src+w])
		if t.IsRef() {
			fr.setRef(dst, ec.exn.Refs[j])
		}
	}
}
