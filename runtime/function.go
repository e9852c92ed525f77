package runtime

import (
	"github.com/wippyai/wasm-engine/translator"
	"github.com/wippyai/wasm-engine/types"
)

// HostFunc is the Go side of an imported function. The engine packs the
// caller's argument bytes into Values before the call and writes the
// returned Values back into the caller's result offsets.
type HostFunc func(s *Store, args []types.Value) ([]types.Value, error)

// Function is a callable: either a translated WebAssembly function bound to
// its defining instance, or a host function. Functions are references
// (funcref) and share their composite type with their defining module.
type Function struct {
	comp     *types.CompositeType
	instance *Instance
	compiled *translator.Compiled
	host     HostFunc
	index    uint32
	name     string
}

func (f *Function) RefKind() types.RefKind              { return types.RefKindFunc }
func (f *Function) CompositeType() *types.CompositeType { return f.comp }

// Type returns the function signature.
func (f *Function) Type() *types.FunctionType { return f.comp.Func }

// Instance returns the defining instance; nil for host functions.
func (f *Function) Instance() *Instance { return f.instance }

// Compiled returns the translation result; nil for host functions.
func (f *Function) Compiled() *translator.Compiled { return f.compiled }

// Host returns the host implementation; nil for wasm functions.
func (f *Function) Host() HostFunc { return f.host }

func (f *Function) IsHost() bool { return f.host != nil }

// Index is the function's index in its defining module.
func (f *Function) Index() uint32 { return f.index }

// Name returns the debug name, or the empty string.
func (f *Function) Name() string { return f.name }

// NewHostFunction wraps fn as a callable with the given signature. The
// signature is interned in the store's type store so it participates in
// call_indirect type checks.
func NewHostFunction(s *Store, params, results []types.ValType, fn HostFunc) *Function {
	comp := &types.CompositeType{
		Kind:  types.CompFunc,
		Func:  types.NewFunctionType(params, results),
		Final: true,
	}
	group := s.Types().Intern([]*types.CompositeType{comp})
	return &Function{comp: group.Types[0], host: fn}
}
