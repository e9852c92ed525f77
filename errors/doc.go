// Package errors provides structured error types for the wasm-engine library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the section/item the error was raised
// for, free-form detail, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidData).
//		Context("code section").
//		Detail("function body truncated at 0x%x", pos).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Decode("read type section", cause)
//	err := errors.NotFound(errors.PhaseRuntime, "export", name)
//
// All errors implement the standard error interface and support errors.Is/As.
//
// WebAssembly traps are deliberately NOT represented here: a trap is a
// runtime.Trap with a fixed code, produced and consumed inside the engine.
// This package is the public API boundary's error vocabulary only.
package errors
