package interp

import (
	"encoding/binary"
	"math"

	"github.com/wippyai/wasm-engine/bytecode"
	"github.com/wippyai/wasm-engine/runtime"
	"github.com/wippyai/wasm-engine/types"
)

var le = binary.LittleEndian

// StackSize is the byte size of one execution context's frame arena.
const StackSize = 1 << 20

// Engine is the interpreting executor.
type Engine struct{}

// New returns the interpreter engine.
func New() *Engine { return &Engine{} }

// ExecutionContext is the per-invocation machine state: the frame arena,
// its reference mirror, the captured exception and error tag, and scratch
// temporaries native code may use when calling back into the interpreter.
type ExecutionContext struct {
	store *runtime.Store
	inst  *runtime.Instance

	stack []byte
	refs  []types.Reference

	pc    int
	bp    int
	depth int

	trap *runtime.Trap
	exn  *runtime.Exception

	// Scratch registers for JIT-to-interpreter callbacks.
	TmpI [2]uint64
	TmpF [2]float64
}

// Invoke implements runtime.Engine.
func (e *Engine) Invoke(fn *runtime.Function, args []types.Value) ([]types.Value, *runtime.Trap) {
	ec := &ExecutionContext{stack: make([]byte, StackSize)}
	if inst := fn.Instance(); inst != nil {
		ec.store = inst.Store()
	}
	ec.refs = make([]types.Reference, StackSize/8)

	if fn.IsHost() {
		results, err := fn.Host()(ec.store, args)
		if err != nil {
			return nil, hostTrap(err)
		}
		return results, nil
	}

	ft := fn.Type()
	fr := frameView{data: ec.stack, refs: ec.refs, bp: 0}
	for i, a := range args {
		writeValue(fr, int(ft.ParamOffsets[i]), a)
	}

	if trap := ec.call(fn, 0); trap != nil {
		return nil, trap
	}

	results := make([]types.Value, len(ft.Results))
	for i, t := range ft.Results {
		results[i] = readValue(fr, int(ft.ResultOffsets[i]), t)
	}
	return results, nil
}

func hostTrap(err error) *runtime.Trap {
	if t, ok := err.(*runtime.Trap); ok {
		return t
	}
	// A host error propagates like an exception carrying no tag payload.
	return &runtime.Trap{Code: runtime.TrapUncaughtException, Exception: &runtime.Exception{}}
}

// frameView addresses one activation inside the arena.
type frameView struct {
	data []byte
	refs []types.Reference
	bp   int
}

func (f frameView) abs(off bytecode.StackOffset) int { return f.bp + int(off) }

func (f frameView) u32(o int) uint32       { return le.Uint32(f.data[o:]) }
func (f frameView) u64(o int) uint64       { return le.Uint64(f.data[o:]) }
func (f frameView) setU32(o int, v uint32) { le.PutUint32(f.data[o:], v) }
func (f frameView) setU64(o int, v uint64) { le.PutUint64(f.data[o:], v) }

func (f frameView) i32(o int) int32        { return int32(f.u32(o)) }
func (f frameView) i64(o int) int64        { return int64(f.u64(o)) }
func (f frameView) setI32(o int, v int32) { f.setU32(o, uint32(v)) }
func (f frameView) setI64(o int, v int64) { f.setU64(o, uint64(v)) }
func (f frameView) f32(o int) float32      { return math.Float32frombits(f.u32(o)) }
func (f frameView) f64(o int) float64      { return math.Float64frombits(f.u64(o)) }
func (f frameView) setF32(o int, v float32) { f.setU32(o, math.Float32bits(v)) }
func (f frameView) setF64(o int, v float64) { f.setU64(o, math.Float64bits(v)) }

// setBool writes a wasm boolean.
func (f frameView) setBool(o int, b bool) {
	if b {
		f.setU32(o, 1)
	} else {
		f.setU32(o, 0)
	}
}

// v128 returns the 16-byte slice of a vector slot.
func (f frameView) v128(o int) []byte { return f.data[o : o+16] }

// Reference slots mirror the frame at 8-byte granularity.
func (f frameView) ref(o int) types.Reference       { return f.refs[o/8] }
func (f frameView) setRef(o int, r types.Reference) { f.refs[o/8] = r }

// copyValue moves width bytes between slots; 8-byte and wider moves also
// carry the reference mirror so references travel with their slots.
func (f frameView) copyValue(dst, src, width int) {
	copy(f.data[dst:dst+width], f.data[src:src+width])
	if width >= 8 {
		f.refs[dst/8] = f.refs[src/8]
	}
}

// writeValue stores an api value at a frame offset.
func writeValue(f frameView, o int, v types.Value) {
	switch v.Kind() {
	case types.KindI32, types.KindF32:
		f.setU32(o, uint32(v.Bits()))
	case types.KindV128:
		lo, hi := v.V128()
		f.setU64(o, lo)
		f.setU64(o+8, hi)
	case types.KindRef:
		f.setRef(o, v.Ref())
	default:
		f.setU64(o, v.Bits())
	}
}

// readValue loads an api value from a frame offset.
func readValue(f frameView, o int, t types.ValType) types.Value {
	switch t.Kind.StackKind() {
	case types.KindI32:
		return types.NewI32(f.i32(o))
	case types.KindF32:
		return types.NewF32(f.f32(o))
	case types.KindI64:
		return types.NewI64(f.i64(o))
	case types.KindF64:
		return types.NewF64(f.f64(o))
	case types.KindV128:
		return types.NewV128(f.u64(o), f.u64(o+8))
	default:
		return types.NewRef(f.ref(o))
	}
}
