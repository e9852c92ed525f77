package bytecode

import "fmt"

// Instr is a cursor over one encoded instruction.
type Instr struct {
	code []byte
	pc   int
}

// At returns the instruction starting at pc.
func At(code []byte, pc int) Instr {
	return Instr{code: code, pc: pc}
}

func (in Instr) PC() int        { return in.pc }
func (in Instr) Opcode() Opcode { return Opcode(le.Uint16(in.code[in.pc:])) }
func (in Instr) Name() string   { return instrTable[in.Opcode()].name }

// Field readers; at is a byte position within the record.
func (in Instr) U16(at uint32) uint16 { return le.Uint16(in.code[in.pc+int(at):]) }
func (in Instr) U32(at uint32) uint32 { return le.Uint32(in.code[in.pc+int(at):]) }
func (in Instr) U64(at uint32) uint64 { return le.Uint64(in.code[in.pc+int(at):]) }
func (in Instr) I32(at uint32) int32  { return int32(in.U32(at)) }

// Off reads the stack offset field at byte position at.
func (in Instr) Off(at uint32) StackOffset { return in.U16(at) }

// Bytes returns n raw bytes starting at position at (shuffle lane lists).
func (in Instr) Bytes(at, n uint32) []byte {
	return in.code[in.pc+int(at) : in.pc+int(at+n)]
}

// Size returns the encoded size of the instruction in bytes, a total
// function of the opcode plus, for variable forms, its header fields.
func (in Instr) Size() uint32 {
	op := in.Opcode()
	if s := instrTable[op].size; s != 0 {
		return s
	}
	switch op {
	case OpBrTable:
		return alignUp8(8 + 4*in.U32(4))
	case OpCall, OpReturnCall:
		return alignUp8(12 + 2*uint32(in.U16(2)+in.U16(4)))
	case OpCallIndirect, OpReturnCallIndirect:
		return alignUp8(16 + 2*uint32(in.U16(2)+in.U16(4)))
	case OpCallRef, OpReturnCallRef:
		return alignUp8(12 + 2*uint32(in.U16(2)+in.U16(4)))
	case OpEnd:
		return alignUp8(4 + 2*uint32(in.U16(2)))
	case OpThrow:
		return alignUp8(8 + 2*uint32(in.U16(2)))
	case OpStructNew, OpArrayNewFixed:
		return alignUp8(12 + 2*uint32(in.U16(2)))
	}
	panic(fmt.Sprintf("bytecode: size of %s not derivable", instrTable[op].name))
}

// Next returns the pc of the following instruction.
func (in Instr) Next() int { return in.pc + int(in.Size()) }

// JumpTarget resolves a jump instruction's absolute target pc.
func (in Instr) JumpTarget() int {
	return in.pc + int(in.I32(jumpDeltaPos(in.Opcode())))
}

// BrTableTarget resolves entry i (the last entry is the default target).
func (in Instr) BrTableTarget(i uint32) int {
	return in.pc + int(in.I32(8+4*i))
}

// offsetPositions lists the byte positions of every stack-offset field, in
// operand order. For call-family instructions the callee offset (if any)
// comes first, then parameter sources, then result destinations.
func (in Instr) offsetPositions() []uint32 {
	op := in.Opcode()
	if info := &instrTable[op]; info.size != 0 {
		return info.offs
	}
	var pos []uint32
	switch op {
	case OpBrTable:
		pos = []uint32{2}
	case OpCall, OpReturnCall:
		pos = listPositions(nil, 12, uint32(in.U16(2))+uint32(in.U16(4)))
	case OpCallIndirect, OpReturnCallIndirect:
		pos = listPositions([]uint32{6}, 16, uint32(in.U16(2))+uint32(in.U16(4)))
	case OpCallRef, OpReturnCallRef:
		pos = listPositions([]uint32{6}, 12, uint32(in.U16(2))+uint32(in.U16(4)))
	case OpEnd:
		pos = listPositions(nil, 4, uint32(in.U16(2)))
	case OpThrow:
		pos = listPositions(nil, 8, uint32(in.U16(2)))
	case OpStructNew, OpArrayNewFixed:
		pos = listPositions([]uint32{4}, 12, uint32(in.U16(2)))
	}
	return pos
}

func listPositions(head []uint32, at, n uint32) []uint32 {
	pos := append([]uint32(nil), head...)
	for i := uint32(0); i < n; i++ {
		pos = append(pos, at+2*i)
	}
	return pos
}

// StackOffsets returns every stack-offset operand of the instruction.
func (in Instr) StackOffsets() []StackOffset {
	pos := in.offsetPositions()
	offs := make([]StackOffset, len(pos))
	for i, p := range pos {
		offs[i] = in.Off(p)
	}
	return offs
}

// SetStackOffset rewrites the i'th stack-offset operand in place.
func (in Instr) SetStackOffset(i int, v StackOffset) {
	pos := in.offsetPositions()
	le.PutUint16(in.code[in.pc+int(pos[i]):], v)
}

// CallSignature reads the operand layout of a call-family instruction:
// parameter source offsets and result destination offsets.
func (in Instr) CallSignature() (params, results []StackOffset) {
	op := in.Opcode()
	var at uint32
	switch op {
	case OpCall, OpReturnCall, OpCallRef, OpReturnCallRef:
		at = 12
	case OpCallIndirect, OpReturnCallIndirect:
		at = 16
	default:
		panic("bytecode: not a call: " + instrTable[op].name)
	}
	nP, nR := uint32(in.U16(2)), uint32(in.U16(4))
	params = make([]StackOffset, nP)
	results = make([]StackOffset, nR)
	for i := uint32(0); i < nP; i++ {
		params[i] = in.Off(at + 2*i)
	}
	for i := uint32(0); i < nR; i++ {
		results[i] = in.Off(at + 2*(nP+i))
	}
	return params, results
}

// OffsetList reads the trailing offset list of End/Throw/StructNew/
// ArrayNewFixed.
func (in Instr) OffsetList() []StackOffset {
	op := in.Opcode()
	var at uint32
	switch op {
	case OpEnd:
		at = 4
	case OpThrow:
		at = 8
	case OpStructNew, OpArrayNewFixed:
		at = 12
	default:
		panic("bytecode: no offset list: " + instrTable[op].name)
	}
	n := uint32(in.U16(2))
	offs := make([]StackOffset, n)
	for i := uint32(0); i < n; i++ {
		offs[i] = in.Off(at + 2*i)
	}
	return offs
}

// MemArg reads the memory index and offset immediate of any memory-access
// instruction.
func (in Instr) MemArg() (memIdx uint16, offset uint64) {
	memPos, offPos := memAccessPos(in.Opcode())
	return in.U16(memPos), in.U64(offPos)
}

// Lane reads the lane immediate of a lane-indexed instruction.
func (in Instr) Lane() uint16 {
	op := in.Opcode()
	switch shapeClass(op) {
	case classLoadLane:
		return in.U16(8)
	case classStoreLane:
		return in.U16(6)
	}
	return in.U16(lanePos(op))
}

func (op Opcode) String() string {
	if op < OpcodeCount {
		return instrTable[op].name
	}
	return fmt.Sprintf("Opcode(%d)", uint16(op))
}
