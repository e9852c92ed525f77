// Package wasmengine is a WebAssembly virtual machine: a binary-format
// front end, a register-style bytecode translator, and a trampolined
// interpreter, with a pluggable JIT backend contract over the same
// bytecode.
//
// # Architecture Overview
//
// The engine is organized into packages with distinct responsibilities:
//
//	wasm-engine/
//	├── types/       Value model, composite types, recursive-group interning
//	├── wasm/        Binary module decoding/encoding (the Module contract)
//	├── bytecode/    The internal instruction set and its buffer format
//	├── translator/  Validated wasm bodies -> bytecode + try/catch tables
//	├── runtime/     Store, Instance, Memory, Table, Global, Tag, GC heap
//	├── interp/      The dispatch loop executing translated functions
//	├── jit/         Backend contract: native code + trap-address tables
//	├── errors/      Structured error types for the public API boundary
//	└── cmd/         The wasm-engine driver (run, test, dump-bytecode)
//
// # Quick Start
//
// Decode, instantiate and call a module:
//
//	store := runtime.NewStore(interp.New())
//	mod, err := wasm.Decode(moduleBytes, store.Types())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	inst, err := store.Instantiate(mod, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	results, err := inst.Invoke("add", types.NewI32(2), types.NewI32(3))
//
// Failed WebAssembly execution returns a *runtime.Trap; every other failure
// is a structured *errors.Error.
//
// Feature surface: WebAssembly 1.0 plus sign extension, non-trapping
// conversions, multi-value, reference types, bulk memory, multi-memory,
// SIMD and relaxed SIMD, threads/atomics, exception handling (legacy and
// try_table), tail calls, typed function references, and GC.
package wasmengine
