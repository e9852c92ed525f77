package translator

import (
	"testing"

	"github.com/wippyai/wasm-engine/bytecode"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

func testModule(t *testing.T, params, results []types.ValType, locals []types.ValType, body []byte) *wasm.Module {
	t.Helper()
	ts := types.NewTypeStore()
	comp := &types.CompositeType{
		Kind:  types.CompFunc,
		Func:  types.NewFunctionType(params, results),
		Final: true,
	}
	g := ts.Intern([]*types.CompositeType{comp})
	return &wasm.Module{
		Types:  []*types.CompositeType{g.Types[0]},
		Groups: []*types.RecGroup{g},
		Funcs:  []wasm.FuncDesc{{Type: g.Types[0]}},
		Code:   []wasm.FuncBody{{Locals: locals, Body: body}},
	}
}

func addBody() []byte {
	return []byte{
		wasm.OpLocalGet, 0,
		wasm.OpLocalGet, 1,
		0x6A, // i32.add
		wasm.OpEnd,
	}
}

func TestCompileAdd(t *testing.T) {
	m := testModule(t,
		[]types.ValType{types.I32(), types.I32()}, []types.ValType{types.I32()},
		nil, addBody())

	compiled, err := CompileModule(m)
	if err != nil {
		t.Fatal(err)
	}
	c := compiled[0]
	if len(c.Code) == 0 {
		t.Fatal("no code emitted")
	}
	if c.FrameSize%16 != 0 {
		t.Errorf("frame size %d not 16-aligned", c.FrameSize)
	}
	if len(c.LocalOffsets) != 2 {
		t.Errorf("LocalOffsets = %v", c.LocalOffsets)
	}
}

func TestSizesTileTheBuffer(t *testing.T) {
	m := testModule(t,
		[]types.ValType{types.I32(), types.I32()}, []types.ValType{types.I32()},
		[]types.ValType{types.I64()},
		[]byte{
			wasm.OpBlock, 0x7F, // (result i32)
			wasm.OpLocalGet, 0,
			wasm.OpLocalGet, 1,
			0x6A,
			wasm.OpLocalGet, 0,
			wasm.OpBrIf, 0,
			0x45, // i32.eqz
			wasm.OpEnd,
			wasm.OpEnd,
		})

	compiled, err := CompileModule(m)
	if err != nil {
		t.Fatal(err)
	}
	code := compiled[0].Code

	total := uint32(0)
	for pc := 0; pc < len(code); {
		in := bytecode.At(code, pc)
		size := in.Size()
		if size == 0 || size%8 != 0 {
			t.Fatalf("instruction %s at 0x%x has size %d", in.Name(), pc, size)
		}
		total += size
		pc = in.Next()
	}
	if int(total) != len(code) {
		t.Errorf("sum of sizes %d != buffer %d", total, len(code))
	}
}

func TestJumpTargetsLandOnInstructionHeads(t *testing.T) {
	m := testModule(t,
		[]types.ValType{types.I32()}, []types.ValType{types.I32()},
		nil,
		[]byte{
			wasm.OpBlock, 0x40,
			wasm.OpLoop, 0x40,
			wasm.OpLocalGet, 0,
			wasm.OpBrIf, 1,
			wasm.OpBr, 0,
			wasm.OpEnd,
			wasm.OpEnd,
			wasm.OpLocalGet, 0,
			wasm.OpEnd,
		})

	compiled, err := CompileModule(m)
	if err != nil {
		t.Fatal(err)
	}
	code := compiled[0].Code

	heads := map[int]bool{}
	for pc := 0; pc < len(code); {
		heads[pc] = true
		pc = bytecode.At(code, pc).Next()
	}
	for pc := 0; pc < len(code); {
		in := bytecode.At(code, pc)
		switch in.Opcode() {
		case bytecode.OpJump, bytecode.OpJumpIfTrue, bytecode.OpJumpIfFalse:
			if !heads[in.JumpTarget()] {
				t.Errorf("%s at 0x%x targets mid-instruction 0x%x", in.Name(), pc, in.JumpTarget())
			}
		}
		pc = in.Next()
	}
}

func TestTryBlockTable(t *testing.T) {
	// try { unreachable } catch_all {} end
	m := testModule(t, nil, nil, nil,
		[]byte{
			wasm.OpTry, 0x40,
			wasm.OpUnreachable,
			wasm.OpCatchAll,
			wasm.OpEnd,
			wasm.OpEnd,
		})

	compiled, err := CompileModule(m)
	if err != nil {
		t.Fatal(err)
	}
	c := compiled[0]
	if len(c.TryTable) != 1 {
		t.Fatalf("TryTable = %d entries", len(c.TryTable))
	}
	tb := c.TryTable[0]
	if tb.Parent != TryBlockNone {
		t.Errorf("Parent = %d, want none", tb.Parent)
	}
	if len(tb.Catches) != 1 || tb.Catches[0].TagIndex != CatchAll {
		t.Errorf("Catches = %+v", tb.Catches)
	}
	if tb.End <= tb.Begin {
		t.Errorf("degenerate range [%d, %d)", tb.Begin, tb.End)
	}
	if len(c.TrapPoints) == 0 {
		t.Fatal("unreachable inside try must be a trap point")
	}
	if try, ok := c.FindTry(c.TrapPoints[0].PC); !ok || try != 0 {
		t.Errorf("FindTry = %d, %v", try, ok)
	}
}

func TestNestedTryParents(t *testing.T) {
	m := testModule(t, nil, nil, nil,
		[]byte{
			wasm.OpTry, 0x40,
			wasm.OpTry, 0x40,
			wasm.OpUnreachable,
			wasm.OpCatchAll,
			wasm.OpEnd,
			wasm.OpCatchAll,
			wasm.OpEnd,
			wasm.OpEnd,
		})

	compiled, err := CompileModule(m)
	if err != nil {
		t.Fatal(err)
	}
	c := compiled[0]
	if len(c.TryTable) != 2 {
		t.Fatalf("TryTable = %d entries", len(c.TryTable))
	}
	inner := c.TryTable[1]
	if inner.Parent != 0 {
		t.Errorf("inner parent = %d, want 0", inner.Parent)
	}
}

func TestOperandSingleAssignmentBetweenJumps(t *testing.T) {
	// Within one basic block no slot is written twice.
	m := testModule(t,
		[]types.ValType{types.I32(), types.I32()}, []types.ValType{types.I32()},
		nil,
		[]byte{
			wasm.OpLocalGet, 0,
			wasm.OpLocalGet, 1,
			0x6A,
			wasm.OpLocalGet, 0,
			0x6C, // i32.mul
			wasm.OpEnd,
		})

	compiled, err := CompileModule(m)
	if err != nil {
		t.Fatal(err)
	}
	c := compiled[0]

	// Collect the straight-line instruction list: (reads, write) per
	// instruction, treating the last offset of these shapes as the
	// destination.
	type step struct {
		reads []bytecode.StackOffset
		write bytecode.StackOffset
	}
	var steps []step
	for pc := 0; pc < len(c.Code); {
		in := bytecode.At(c.Code, pc)
		if in.Opcode() == bytecode.OpEnd {
			break
		}
		offs := in.StackOffsets()
		steps = append(steps, step{reads: offs[:len(offs)-1], write: offs[len(offs)-1]})
		pc = in.Next()
	}

	// Between a producer and the next read of its slot there must be no
	// other write to that slot.
	for i, s := range steps {
		for j := i + 1; j < len(steps); j++ {
			read := false
			for _, r := range steps[j].reads {
				read = read || r == s.write
			}
			if read {
				break
			}
			if steps[j].write == s.write {
				// Overwritten without an intervening reader: the value was
				// never consumed, which breaks single assignment.
				t.Errorf("slot %d written at step %d and clobbered at %d", s.write, i, j)
			}
		}
	}
}

func TestFrameOverflowRejected(t *testing.T) {
	// 9000 v128 locals exceed the 16-bit offset space.
	locals := make([]types.ValType, 9000)
	for i := range locals {
		locals[i] = types.V128()
	}
	m := testModule(t, nil, nil, locals, []byte{wasm.OpEnd})

	if _, err := CompileModule(m); err == nil {
		t.Fatal("expected frame overflow error")
	}
}

func TestCallScratchSized(t *testing.T) {
	ts := types.NewTypeStore()
	callee := &types.CompositeType{
		Kind: types.CompFunc,
		Func: types.NewFunctionType(
			[]types.ValType{types.I64(), types.I64(), types.I64()},
			[]types.ValType{types.I64()}),
		Final: true,
	}
	caller := &types.CompositeType{
		Kind:  types.CompFunc,
		Func:  types.NewFunctionType(nil, nil),
		Final: true,
	}
	g := ts.Intern([]*types.CompositeType{callee, caller})

	m := &wasm.Module{
		Types:  g.Types,
		Groups: []*types.RecGroup{g},
		Funcs: []wasm.FuncDesc{
			{Type: g.Types[0]},
			{Type: g.Types[1], TypeIndex: 1},
		},
		Code: []wasm.FuncBody{
			{Body: []byte{wasm.OpLocalGet, 0, wasm.OpEnd}},
			{Body: []byte{
				0x42, 1, 0x42, 2, 0x42, 3, // i64.const x3
				wasm.OpCall, 0,
				0x1A, // drop
				wasm.OpEnd,
			}},
		},
	}
	compiled, err := CompileModule(m)
	if err != nil {
		t.Fatal(err)
	}
	if compiled[1].ScratchSize < 24 {
		t.Errorf("ScratchSize = %d, want at least the callee parameter region", compiled[1].ScratchSize)
	}
}
