// Package bytecode defines the engine's internal instruction set.
//
// Instructions are variable-length little-endian records packed into one
// contiguous byte buffer per function. Every record starts with a 16-bit
// opcode tag and is padded to 8-byte alignment, so a program counter always
// lands on an aligned record head. Operands are one of three things: a
// 16-bit byte offset into the current frame (a "stack offset"), an inline
// immediate, or a signed 32-bit jump delta relative to the instruction head.
//
// Fixed-shape instructions share a small set of layouts (two/three/four
// offsets, memory access, lane ops, jumps, constants). Variable-length
// instructions (br_table, the call family, end, throw, struct.new,
// array.new_fixed) carry a trailing array of stack offsets whose length is
// written in their header; Instr.Size measures any record from its opcode
// plus header fields alone.
//
// The Buffer type builds instruction streams and supports back-patching of
// forward jump deltas; Instr is a cursor over an encoded stream used by the
// interpreter, the disassembler and the JIT backends.
package bytecode
