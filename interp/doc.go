// Package interp is the bytecode interpreter: the engine's canonical
// executor.
//
// One ExecutionContext serves one top-level invocation. Frames live in a
// contiguous byte arena with a parallel reference mirror (one reference
// slot per 8 frame bytes), so instructions address operands by byte offset
// exactly as the translator assigned them. A callee's frame begins where
// the caller's call-scratch region starts; parameter and result copies
// are driven entirely by the offsets encoded in the call instruction.
//
// Traps and exceptions never travel as Go panics. A handler that fails
// stores the trap in the context and control enters the unwinder, which
// walks the translator's try tables; only what the tables route to a
// handler resumes, everything else returns the trap up the frame chain.
package interp
