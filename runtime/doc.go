// Package runtime owns the engine's long-lived objects: the Store, module
// Instances, linear Memories, Tables, Globals, exception Tags, data and
// element segment instances, functions, and the GC-managed struct/array
// heap objects.
//
// A Store exclusively owns its instances and the type store used to
// canonicalise composite types. An Instance owns handles to its imported
// and internal objects. Execution is delegated to an Engine (the interp
// package provides the default one; a JIT may substitute itself per
// function), so this package carries no dispatch loop.
//
// Traps are represented by the Trap type with a fixed code per WebAssembly
// failure class. Inside the engine traps travel as values, never as
// panics; the public API wraps them at the boundary.
package runtime
