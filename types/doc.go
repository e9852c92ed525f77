// Package types defines the engine's value and type model.
//
// A Value is a tagged union over the six WebAssembly value kinds (i32, i64,
// f32, f64, v128, reference). Packed storage kinds i8/i16 exist only inside
// struct fields and array elements and widen to i32 when read onto the
// operand stack.
//
// Composite types (function, struct, array) live inside recursive type
// groups. Groups are canonicalised by the TypeStore so that type equality
// reduces to pointer equality on the group; see TypeStore.Intern.
//
// Subtyping is a lattice over reference kinds with tops any/extern/func/exn
// and bottoms none/noextern/nofunc/noexn; nullable and non-nullable variants are
// distinguished throughout.
package types
