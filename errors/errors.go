package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode      Phase = "decode"      // binary module decoding
	PhaseValidate    Phase = "validate"    // module validation
	PhaseTranslate   Phase = "translate"   // wasm to bytecode translation
	PhaseInstantiate Phase = "instantiate" // store instantiation and linking
	PhaseRuntime     Phase = "runtime"     // invocation and runtime operations
	PhaseHost        Phase = "host"        // host function registration/calls
	PhaseJIT         Phase = "jit"         // native code installation
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidData    Kind = "invalid_data"
	KindUnsupported    Kind = "unsupported"
	KindTypeMismatch   Kind = "type_mismatch"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindNotFound       Kind = "not_found"
	KindMissingImport  Kind = "missing_import"
	KindInstantiation  Kind = "instantiation"
	KindRegistration   Kind = "registration"
	KindNotInitialized Kind = "not_initialized"
	KindOverflow       Kind = "overflow"
	KindTrap           Kind = "trap"
	KindExhaustion     Kind = "exhaustion"
)

// Error is the structured error type used throughout the engine's public API
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	Context string
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Context != "" {
		b.WriteString(" at ")
		b.WriteString(e.Context)
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by phase and kind
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{err: Error{Phase: phase, Kind: kind}}
}

// Context names the section, export, or object the error relates to
func (b *Builder) Context(parts ...string) *Builder {
	b.err.Context = strings.Join(parts, ".")
	return b
}

// Detail adds a formatted human-readable message
func (b *Builder) Detail(format string, args ...any) *Builder {
	if len(args) == 0 {
		b.err.Detail = format
	} else {
		b.err.Detail = fmt.Sprintf(format, args...)
	}
	return b
}

// Cause attaches the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Decode wraps a binary-decoding failure
func Decode(context string, cause error) *Error {
	return New(PhaseDecode, KindInvalidData).Context(context).Cause(cause).Build()
}

// Translate wraps a translation failure
func Translate(context string, cause error) *Error {
	return New(PhaseTranslate, KindInvalidData).Context(context).Cause(cause).Build()
}

// Instantiate wraps an instantiation failure
func Instantiate(context string, cause error) *Error {
	return New(PhaseInstantiate, KindInstantiation).Context(context).Cause(cause).Build()
}

// NotFound reports a missing item (export, import, function)
func NotFound(phase Phase, what, name string) *Error {
	return New(phase, KindNotFound).Context(what).Detail("%q not found", name).Build()
}

// MissingImport reports an unresolved import
func MissingImport(module, name string) *Error {
	return New(PhaseInstantiate, KindMissingImport).
		Context(module, name).
		Detail("import not provided").
		Build()
}

// TypeMismatch reports a type error at the API boundary
func TypeMismatch(phase Phase, context, want, got string) *Error {
	return New(phase, KindTypeMismatch).
		Context(context).
		Detail("want %s, got %s", want, got).
		Build()
}

// Unsupported reports use of a feature the engine was built without
func Unsupported(phase Phase, what string) *Error {
	return New(phase, KindUnsupported).Detail("%s", what).Build()
}

// InvalidInput reports malformed caller input
func InvalidInput(phase Phase, detail string) *Error {
	return New(phase, KindInvalidData).Detail("%s", detail).Build()
}
