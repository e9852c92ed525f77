package jit

import (
	"errors"
	"sort"

	"github.com/wippyai/wasm-engine/bytecode"
	"github.com/wippyai/wasm-engine/translator"
)

// ErrUnsupported reports that a backend cannot compile the function; the
// caller keeps interpreting it.
var ErrUnsupported = errors.New("jit: function not supported by backend")

// Backend lowers one function's bytecode to native code.
type Backend interface {
	// Name identifies the backend ("amd64", "arm64", ...).
	Name() string

	// Compile translates the function. The returned Code owns its buffer.
	// Backends return ErrUnsupported for functions they cannot lower;
	// anything else aborts installation.
	Compile(fn *translator.Compiled) (*Code, error)
}

// TrapEntry maps native code addresses to a recovery handler: the entry
// covers [start of function or previous entry, End) and faults inside it
// resume at Handler.
type TrapEntry struct {
	End     uintptr
	Handler uintptr
}

// CatchEntry mirrors translator.CatchBlock at the native level.
type CatchEntry struct {
	TagIndex       uint32
	Ref            bool
	RefOffset      bytecode.StackOffset
	PayloadOffsets []bytecode.StackOffset
	Handler        uintptr
}

// Code is one function's native translation.
type Code struct {
	// Buf is the executable buffer; entry point at Buf[0].
	Buf []byte

	// Traps is sorted ascending by End for binary search.
	Traps []TrapEntry

	Catches []CatchEntry

	// FrameSize mirrors the bytecode frame so the interpreter can resume
	// from a deoptimised activation.
	FrameSize uint32
}

// LookupTrap maps a faulting instruction address to its recovery handler
// in O(log n).
func (c *Code) LookupTrap(ip uintptr) (uintptr, bool) {
	i := sort.Search(len(c.Traps), func(i int) bool { return c.Traps[i].End > ip })
	if i == len(c.Traps) {
		return 0, false
	}
	return c.Traps[i].Handler, true
}

// noopBackend declines everything; it is the default when no architecture
// backend is linked in.
type noopBackend struct{}

func (noopBackend) Name() string { return "none" }

func (noopBackend) Compile(*translator.Compiled) (*Code, error) {
	return nil, ErrUnsupported
}

// NewNoopBackend returns the always-declining backend.
func NewNoopBackend() Backend { return noopBackend{} }
