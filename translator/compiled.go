package translator

import (
	"sort"

	"github.com/wippyai/wasm-engine/bytecode"
	"github.com/wippyai/wasm-engine/types"
)

// TryBlockNone marks a try block with no enclosing try; the unwinder
// treats it as "parent = host".
const TryBlockNone = ^uint32(0)

// CatchAll is the tag-index sentinel for catch_all clauses.
const CatchAll = ^uint32(0)

// Compiled is one function's translation result: the bytecode stream, its
// frame layout, and the try/catch side tables both executors consult.
type Compiled struct {
	Code []byte

	// FrameSize covers parameters, locals and operand slots, 16-aligned.
	// ScratchSize extends it with the largest callee parameter+result
	// region among this function's call sites.
	FrameSize   uint32
	ScratchSize uint32

	// LocalOffsets maps parameter/local index to its frame byte offset.
	LocalOffsets []uint32
	// Locals lists declared locals (excluding parameters).
	Locals []types.ValType

	// TryTable lists try blocks in emission order, inner blocks after
	// their parents; Begin is ascending for blocks opened at distinct pcs.
	TryTable []TryBlock

	// TrapPoints lists, sorted by pc, every instruction inside some try
	// that can trap, with the index of its innermost try block.
	TrapPoints []TrapPoint

	// RegHints carries the translator's register preferences for the JIT;
	// the interpreter ignores them.
	RegHints []RegHint

	FuncIndex uint32
	Name      string
}

// TryBlock is the compile-time descriptor of one try region.
type TryBlock struct {
	// Parent is the index of the enclosing try block, or TryBlockNone.
	Parent uint32
	// [Begin, End) is the covered pc range of the protected body.
	Begin, End int
	Catches    []CatchBlock
}

// CatchBlock routes one catch clause.
type CatchBlock struct {
	// TagIndex is the module tag matched, or CatchAll.
	TagIndex uint32
	// Ref marks catch_ref/catch_all_ref: the exception package itself is
	// stored at RefOffset before resuming.
	Ref       bool
	RefOffset bytecode.StackOffset
	// PayloadOffsets receive the exception payload values in order.
	PayloadOffsets []bytecode.StackOffset
	// Handler is the pc to resume at.
	Handler int
}

// TrapPoint associates a trapping pc with its innermost try block.
type TrapPoint struct {
	PC  int
	Try uint32
}

// FindTry locates the innermost active try block covering pc via the
// sorted trap-point list. The second result is false when pc is not
// protected.
func (c *Compiled) FindTry(pc int) (uint32, bool) {
	i := sort.Search(len(c.TrapPoints), func(i int) bool {
		return c.TrapPoints[i].PC >= pc
	})
	if i < len(c.TrapPoints) && c.TrapPoints[i].PC == pc {
		return c.TrapPoints[i].Try, true
	}
	return 0, false
}

// RegHint records a preferred register for one instruction operand. Its
// meaning is owned by the JIT backend; see jit.Backend.
type RegHint struct {
	PC      int
	Operand uint8
	Reg     uint8
}
