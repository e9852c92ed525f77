// Package wasm decodes and encodes the WebAssembly binary module format.
//
// Decode produces a resolved Module: composite types are parsed into
// recursive groups and canonicalised through a types.TypeStore, imports and
// exports are indexed, and each function body is kept as a raw expression
// slice plus its expanded local declarations. The translator package walks
// those raw bodies directly; this package performs structural decoding only
// and assumes bodies that reach execution have been produced by a correct
// toolchain.
//
// Supported feature extensions beyond WebAssembly 1.0: sign-extension,
// non-trapping float-to-int, multi-value, reference types, bulk memory,
// multi-memory, SIMD and relaxed SIMD, threads/atomics, exception handling
// (legacy and try_table), tail calls, typed function references, and GC.
//
// Encode performs the reverse mapping and exists for the test infrastructure
// and tooling; it writes one canonical encoding of a Module.
package wasm
