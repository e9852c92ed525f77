// Package jit defines the contract between the engine and native-code
// backends.
//
// A Backend consumes the same bytecode and try/catch side tables the
// interpreter executes and produces a Code artifact: the native buffer, a
// sorted trap-address table mapping faulting instruction addresses back to
// bytecode-level recovery, and the catch list mirroring the translator's.
// Register allocation may use the translator's RegHints; spills go to the
// same frame offsets the interpreter uses, so execution can hand control
// back to the interpreter at any bytecode boundary.
//
// This package ships no instruction selector. Fallback is the bundled
// backend that declines every function, which keeps the interpreter in
// charge; an architecture backend plugs in by implementing Backend.
package jit
