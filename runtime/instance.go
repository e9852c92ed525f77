package runtime

import (
	"github.com/wippyai/wasm-engine/errors"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

// Instance is one instantiation of a module: its bound function, table,
// memory, global, tag, element and data arrays.
type Instance struct {
	module  *wasm.Module
	store   *Store
	funcs   []*Function
	tables  []*Table
	mems    []*Memory
	globals []*Global
	tags    []*Tag
	elems   []*ElemInstance
	datas   []*DataInstance
	exports map[string]Extern
}

func (i *Instance) Module() *wasm.Module { return i.module }
func (i *Instance) Store() *Store        { return i.store }

// Index-space accessors used by the executors; indices come from validated
// code, so they do not re-check bounds.

func (i *Instance) Function(idx uint32) *Function  { return i.funcs[idx] }
func (i *Instance) Table(idx uint32) *Table        { return i.tables[idx] }
func (i *Instance) Memory(idx uint32) *Memory      { return i.mems[idx] }
func (i *Instance) Global(idx uint32) *Global      { return i.globals[idx] }
func (i *Instance) TagAt(idx uint32) *Tag          { return i.tags[idx] }
func (i *Instance) Elem(idx uint32) *ElemInstance  { return i.elems[idx] }
func (i *Instance) Data(idx uint32) *DataInstance  { return i.datas[idx] }
func (i *Instance) Type(idx uint32) *types.CompositeType { return i.module.Types[idx] }

// Export looks up an export by name.
func (i *Instance) Export(name string) (Extern, bool) {
	ext, ok := i.exports[name]
	return ext, ok
}

// ExportedFunction resolves a function export.
func (i *Instance) ExportedFunction(name string) (*Function, error) {
	ext, ok := i.exports[name]
	if !ok || ext.Kind != ExternFunc {
		return nil, errors.NotFound(errors.PhaseRuntime, "function export", name)
	}
	return ext.Func, nil
}

// Invoke calls an exported function by name. Traps are returned as *Trap
// errors; all other failures as structured errors.
func (i *Instance) Invoke(name string, args ...types.Value) ([]types.Value, error) {
	fn, err := i.ExportedFunction(name)
	if err != nil {
		return nil, err
	}
	return i.store.Call(fn, args...)
}
