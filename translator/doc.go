// Package translator lowers validated WebAssembly function bodies to the
// engine's register-style bytecode.
//
// The translation is one forward pass per function. A type-tagged
// compile-time stack mirrors the operand stack; every producer is assigned
// a byte offset in the frame's operand region, so the emitted instructions
// read and write slots by offset and the interpreter never pushes or pops.
// Structured control flow becomes signed-delta jumps: forward labels are
// back-patched when their target is emitted, loop labels jump backwards to
// the pc recorded at entry. Branches that carry values move them into the
// target label's pre-allocated result slots first.
//
// try/catch (both the legacy form and try_table) lowers to side tables: a
// TryBlock per region with its CatchBlocks, plus the sorted list of
// trapping pcs inside protected regions. The interpreter and the JIT
// consult the same tables to route traps and exceptions.
//
// The translator assumes its input already passed validation; structural
// inconsistencies it detects anyway are reported as translate-phase errors.
package translator
