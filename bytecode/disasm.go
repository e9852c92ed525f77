package bytecode

import (
	"fmt"
	"strings"
)

// Disassemble renders an instruction stream one line per instruction:
//
//	0x0000 Const32 [4] imm=0x2
//	0x0008 I32Add [0 4 8]
//	0x0010 End [8]
func Disassemble(code []byte) string {
	var b strings.Builder
	for pc := 0; pc < len(code); {
		in := At(code, pc)
		writeInstr(&b, in)
		pc = in.Next()
	}
	return b.String()
}

func writeInstr(b *strings.Builder, in Instr) {
	fmt.Fprintf(b, "0x%04x %s", in.PC(), in.Name())
	if offs := in.StackOffsets(); len(offs) > 0 {
		fmt.Fprintf(b, " %v", offs)
	}

	op := in.Opcode()
	switch {
	case op == OpConst32:
		fmt.Fprintf(b, " imm=0x%x", in.U32(4))
	case op == OpConst64:
		fmt.Fprintf(b, " imm=0x%x", in.U64(8))
	case op == OpConst128:
		fmt.Fprintf(b, " imm=0x%016x%016x", in.U64(16), in.U64(8))
	case op == OpJump, op == OpJumpIfTrue, op == OpJumpIfFalse,
		op == OpBrOnNull, op == OpBrOnNonNull, op == OpBrOnCast, op == OpBrOnCastFail:
		fmt.Fprintf(b, " -> 0x%04x", in.JumpTarget())
	case op == OpBrTable:
		n := in.U32(4)
		fmt.Fprintf(b, " targets=[")
		for i := uint32(0); i < n; i++ {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "0x%04x", in.BrTableTarget(i))
		}
		b.WriteByte(']')
	case op == OpCall || op == OpReturnCall:
		fmt.Fprintf(b, " func=%d", in.U32(8))
	case op == OpCallIndirect || op == OpReturnCallIndirect:
		fmt.Fprintf(b, " table=%d type=%d", in.U32(8), in.U32(12))
	case op == OpThrow:
		fmt.Fprintf(b, " tag=%d", in.U32(4))
	case IsMemoryAccess(op):
		memIdx, off := in.MemArg()
		if memIdx != 0 {
			fmt.Fprintf(b, " mem=%d", memIdx)
		}
		if off != 0 {
			fmt.Fprintf(b, " offset=%d", off)
		}
	}
	b.WriteByte('\n')
}
