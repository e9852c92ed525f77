package bytecode

import (
	"strings"
	"testing"
)

func TestEveryInstructionStartsAligned(t *testing.T) {
	var b Buffer
	b.Emit(OpI32Add, 0, 4, 8)
	b.EmitConst32(12, 7)
	b.EmitCall(OpCall, 3, []StackOffset{0, 4, 8}, []StackOffset{0})
	b.EmitBrTable(4, 3)
	b.EmitThrow(1, []StackOffset{0})
	b.EmitEnd([]StackOffset{0})

	for pc := 0; pc < b.Len(); {
		if pc%8 != 0 {
			t.Fatalf("instruction at 0x%x not 8-byte aligned", pc)
		}
		pc = At(b.Bytes(), pc).Next()
	}
}

func TestSizeMatchesDistanceToNext(t *testing.T) {
	var b Buffer
	pcs := []int{
		b.Emit(OpUnreachable),
		b.Emit(OpMove64, 0, 8),
		b.EmitConst64(16, 0xDEADBEEF),
		b.EmitConst128(24, 1, 2),
		b.EmitMemAccess(OpI64Load, 0, 128, 0, 8),
		b.EmitMemAccess(OpI64AtomicRmwAdd, 0, 0, 0, 8, 16),
		b.EmitCallIndirect(OpCallIndirect, 20, 0, 3, []StackOffset{0, 8}, nil),
		b.EmitStructNew(4, 2, []StackOffset{0, 8, 16}),
		b.EmitArrayNewFixed(4, 2, []StackOffset{0, 8, 16, 24, 32}),
		b.EmitBrTable(0, 5),
		b.EmitEnd(nil),
	}

	total := uint32(0)
	for i, pc := range pcs {
		in := At(b.Bytes(), pc)
		next := b.Len()
		if i+1 < len(pcs) {
			next = pcs[i+1]
		}
		if got := in.Size(); got != uint32(next-pc) {
			t.Errorf("%s: Size() = %d, want %d", in.Name(), got, next-pc)
		}
		total += in.Size()
	}
	if int(total) != b.Len() {
		t.Errorf("sum of sizes %d != buffer length %d", total, b.Len())
	}
}

func TestStackOffsetRoundTrip(t *testing.T) {
	var b Buffer
	pcs := []int{
		b.Emit(OpI32Add, 0, 4, 8),
		b.EmitMemAccess(OpI32Store, 0, 4, 12, 16),
		b.EmitCall(OpCall, 9, []StackOffset{0, 8}, []StackOffset{16}),
		b.EmitCallRef(OpCallRef, 24, 1, []StackOffset{0}, []StackOffset{8}),
		b.EmitThrow(0, []StackOffset{4, 12}),
		b.EmitSelect(0, 4, 8, 12, 4),
	}

	for _, pc := range pcs {
		in := At(b.Bytes(), pc)
		offs := in.StackOffsets()
		for i := range offs {
			want := StackOffset(1000 + 2*i)
			in.SetStackOffset(i, want)
			if got := in.StackOffsets()[i]; got != want {
				t.Errorf("%s operand %d: got %d, want %d", in.Name(), i, got, want)
			}
		}
	}
}

func TestJumpPatching(t *testing.T) {
	var b Buffer
	jmp := b.EmitJump(OpJump, 0)
	b.Emit(OpI32Add, 0, 4, 8)
	target := b.EmitEnd(nil)
	b.PatchJump(jmp, target)

	if got := At(b.Bytes(), jmp).JumpTarget(); got != target {
		t.Errorf("JumpTarget = 0x%x, want 0x%x", got, target)
	}
}

func TestBrTableTargets(t *testing.T) {
	var b Buffer
	br := b.EmitBrTable(0, 3)
	t0 := b.Emit(OpUnreachable)
	t1 := b.Emit(OpUnreachable)
	td := b.EmitEnd(nil)
	b.PatchBrTableEntry(br, 0, t0)
	b.PatchBrTableEntry(br, 1, t1)
	b.PatchBrTableEntry(br, 2, td)

	in := At(b.Bytes(), br)
	for i, want := range []int{t0, t1, td} {
		if got := in.BrTableTarget(uint32(i)); got != want {
			t.Errorf("entry %d: got 0x%x, want 0x%x", i, got, want)
		}
	}
}

func TestCallSignature(t *testing.T) {
	var b Buffer
	params := []StackOffset{0, 8, 16}
	results := []StackOffset{24, 32}
	pc := b.EmitCall(OpCall, 7, params, results)

	in := At(b.Bytes(), pc)
	gotP, gotR := in.CallSignature()
	if len(gotP) != 3 || len(gotR) != 2 {
		t.Fatalf("arity: got %d/%d", len(gotP), len(gotR))
	}
	for i := range params {
		if gotP[i] != params[i] {
			t.Errorf("param %d: got %d", i, gotP[i])
		}
	}
	for i := range results {
		if gotR[i] != results[i] {
			t.Errorf("result %d: got %d", i, gotR[i])
		}
	}
	if in.U32(8) != 7 {
		t.Errorf("func index: got %d", in.U32(8))
	}
}

func TestMemArg(t *testing.T) {
	var b Buffer
	pc := b.EmitMemAccess(OpI32Load8S, 2, 0xFFFF_FFFF_0000, 4, 8)
	in := At(b.Bytes(), pc)
	memIdx, off := in.MemArg()
	if memIdx != 2 {
		t.Errorf("memIdx = %d", memIdx)
	}
	if off != 0xFFFF_FFFF_0000 {
		t.Errorf("offset = %#x", off)
	}
}

func TestLaneImmediates(t *testing.T) {
	var b Buffer
	e := b.EmitLane(OpI8x16ExtractLaneS, 13, 0, 16)
	r := b.EmitLane(OpF32x4ReplaceLane, 3, 0, 16, 32)
	ll := b.EmitMemLane(OpV128Load32Lane, 2, 0, 64, 0, 16, 32)
	sl := b.EmitMemLane(OpV128Store64Lane, 1, 0, 0, 0, 16)

	for _, tc := range []struct {
		pc   int
		want uint16
	}{{e, 13}, {r, 3}, {ll, 2}, {sl, 1}} {
		if got := At(b.Bytes(), tc.pc).Lane(); got != tc.want {
			t.Errorf("lane at 0x%x: got %d, want %d", tc.pc, got, tc.want)
		}
	}
}

func TestShuffleLanes(t *testing.T) {
	var lanes [16]byte
	for i := range lanes {
		lanes[i] = byte(31 - i)
	}
	var b Buffer
	pc := b.EmitShuffle(0, 16, 32, lanes)
	got := At(b.Bytes(), pc).Bytes(8, 16)
	for i := range lanes {
		if got[i] != lanes[i] {
			t.Errorf("lane %d: got %d, want %d", i, got[i], lanes[i])
		}
	}
}

func TestCastEncoding(t *testing.T) {
	var b Buffer
	pc := b.EmitCast(OpRefCast, -int32(3), true, 4)
	in := At(b.Bytes(), pc)
	if in.U16(4)&1 != 1 {
		t.Error("nullable flag not set")
	}
	if in.I32(8) != -3 {
		t.Errorf("heap = %d", in.I32(8))
	}
}

func TestDisassemble(t *testing.T) {
	var b Buffer
	b.EmitConst32(8, 5)
	b.Emit(OpI32Add, 0, 4, 8)
	b.EmitEnd([]StackOffset{8})

	out := Disassemble(b.Bytes())
	for _, want := range []string{"Const32", "I32Add", "End", "imm=0x5"} {
		if !strings.Contains(out, want) {
			t.Errorf("disassembly missing %q:\n%s", want, out)
		}
	}
	if got := len(strings.Split(strings.TrimSpace(out), "\n")); got != 3 {
		t.Errorf("want 3 lines, got %d", got)
	}
}

func TestOpcodeNamesComplete(t *testing.T) {
	for op := Opcode(0); op < OpcodeCount; op++ {
		if instrTable[op].name == "" {
			t.Errorf("opcode %d has no table entry", op)
		}
	}
}
