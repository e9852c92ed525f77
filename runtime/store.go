package runtime

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-engine/errors"
	"github.com/wippyai/wasm-engine/translator"
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

// Engine executes functions. The interp package provides the canonical
// implementation; a JIT-backed engine may substitute itself and fall back
// to the interpreter per function.
type Engine interface {
	// Invoke runs fn to completion. A non-nil Trap reports failure.
	Invoke(fn *Function, args []types.Value) ([]types.Value, *Trap)
}

// Store owns every instance and all long-lived GC objects, and manages
// global uniqueness of composite type groups. A Store is safe for use from
// multiple goroutines; each call executes on the caller's goroutine.
type Store struct {
	ts     *types.TypeStore
	engine Engine

	mu        sync.Mutex
	instances []*Instance
	compiled  map[*wasm.Module][]*translator.Compiled

	terminated atomic.Bool

	maxCallDepth int
}

// Option configures a Store.
type Option func(*Store)

// WithMaxCallDepth bounds interpreter recursion before a stack-overflow
// trap. The default is 1000 nested calls.
func WithMaxCallDepth(n int) Option {
	return func(s *Store) { s.maxCallDepth = n }
}

// NewStore creates a store executing through engine.
func NewStore(engine Engine, opts ...Option) *Store {
	s := &Store{
		ts:           types.NewTypeStore(),
		engine:       engine,
		compiled:     make(map[*wasm.Module][]*translator.Compiled),
		maxCallDepth: 1000,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Types returns the store's canonical type store; decode modules against it
// so that type identity spans instances.
func (s *Store) Types() *types.TypeStore { return s.ts }

// Engine returns the executing engine.
func (s *Store) Engine() Engine { return s.engine }

// MaxCallDepth returns the configured call-depth bound.
func (s *Store) MaxCallDepth() int { return s.maxCallDepth }

// Terminate requests asynchronous termination: the next call boundary
// returns a TrapTerminated.
func (s *Store) Terminate() { s.terminated.Store(true) }

// ClearTermination re-arms the store after a termination.
func (s *Store) ClearTermination() { s.terminated.Store(false) }

// Terminated reports whether termination was requested.
func (s *Store) Terminated() bool { return s.terminated.Load() }

// Call invokes fn, wrapping traps as errors at this public boundary.
func (s *Store) Call(fn *Function, args ...types.Value) ([]types.Value, error) {
	if err := checkArgs(fn.Type(), args); err != nil {
		return nil, err
	}
	results, trap := s.engine.Invoke(fn, args)
	if trap != nil {
		return nil, trap
	}
	return results, nil
}

func checkArgs(ft *types.FunctionType, args []types.Value) error {
	if len(args) != len(ft.Params) {
		return errors.New(errors.PhaseRuntime, errors.KindTypeMismatch).
			Detail("want %d arguments, got %d", len(ft.Params), len(args)).
			Build()
	}
	for i, a := range args {
		want := ft.Params[i].Kind.StackKind()
		if a.Kind() != want {
			return errors.TypeMismatch(errors.PhaseRuntime, "argument",
				want.String(), a.Kind().String())
		}
	}
	return nil
}

// compiledFor translates a module's function bodies once per store.
func (s *Store) compiledFor(m *wasm.Module) ([]*translator.Compiled, error) {
	s.mu.Lock()
	if c, ok := s.compiled[m]; ok {
		s.mu.Unlock()
		return c, nil
	}
	s.mu.Unlock()

	c, err := translator.CompileModule(m)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.compiled[m] = c
	s.mu.Unlock()
	return c, nil
}

// Instantiate links a decoded module against the provided imports, runs
// active segment initialisation and the start function, and returns the
// live instance.
func (s *Store) Instantiate(m *wasm.Module, imports Imports) (*Instance, error) {
	compiled, err := s.compiledFor(m)
	if err != nil {
		return nil, err
	}

	inst := &Instance{module: m, store: s, exports: make(map[string]Extern)}

	if err := s.resolveImports(m, imports, inst); err != nil {
		return nil, err
	}

	// Module-defined functions.
	for idx := m.NumImportedFuncs; idx < len(m.Funcs); idx++ {
		c := compiled[idx-m.NumImportedFuncs]
		inst.funcs = append(inst.funcs, &Function{
			comp:     m.Funcs[idx].Type,
			instance: inst,
			compiled: c,
			index:    uint32(idx),
			name:     c.Name,
		})
	}
	for _, t := range m.Tables[m.NumImportedTables:] {
		inst.tables = append(inst.tables, NewTable(t, nil))
	}
	for _, mt := range m.Memories[m.NumImportedMemories:] {
		inst.mems = append(inst.mems, NewMemory(mt))
	}
	for i, tt := range m.Tags[m.NumImportedTags:] {
		inst.tags = append(inst.tags, NewTag(tt.Type, uint32(m.NumImportedTags+i)))
	}
	for _, g := range m.Globals[m.NumImportedGlobals:] {
		init, err := evalConstExpr(g.Init, inst, g.Type.Type)
		if err != nil {
			return nil, err
		}
		inst.globals = append(inst.globals, NewGlobal(g.Type, init))
	}

	if err := s.initSegments(m, inst); err != nil {
		return nil, err
	}

	for _, e := range m.Exports {
		inst.exports[e.Name] = exportExtern(inst, e)
	}

	s.mu.Lock()
	s.instances = append(s.instances, inst)
	s.mu.Unlock()

	Logger().Info("instantiated module",
		zap.Int("functions", len(inst.funcs)),
		zap.Int("memories", len(inst.mems)),
		zap.Int("exports", len(inst.exports)))

	if m.Start != nil {
		start := inst.funcs[*m.Start]
		if _, trap := s.engine.Invoke(start, nil); trap != nil {
			return nil, errors.New(errors.PhaseInstantiate, errors.KindTrap).
				Context("start").
				Cause(trap).
				Build()
		}
	}
	return inst, nil
}

func (s *Store) resolveImports(m *wasm.Module, imports Imports, inst *Instance) error {
	for _, imp := range m.Imports {
		ext, ok := imports.Lookup(imp.Module, imp.Name)
		if !ok {
			return errors.MissingImport(imp.Module, imp.Name)
		}
		switch imp.Kind {
		case wasm.KindFunc:
			if ext.Kind != ExternFunc {
				return importMismatch(imp, "function")
			}
			want := m.Types[imp.FuncTypeIndex].Func
			if !ext.Func.Type().EqualSignature(want) {
				return importMismatch(imp, "function signature")
			}
			inst.funcs = append(inst.funcs, ext.Func)
		case wasm.KindTable:
			if ext.Kind != ExternTable {
				return importMismatch(imp, "table")
			}
			inst.tables = append(inst.tables, ext.Table)
		case wasm.KindMemory:
			if ext.Kind != ExternMemory {
				return importMismatch(imp, "memory")
			}
			if ext.Memory.PageCount() < imp.Memory.Min {
				return importMismatch(imp, "memory limits")
			}
			inst.mems = append(inst.mems, ext.Memory)
		case wasm.KindGlobal:
			if ext.Kind != ExternGlobal {
				return importMismatch(imp, "global")
			}
			inst.globals = append(inst.globals, ext.Global)
		case wasm.KindTag:
			if ext.Kind != ExternTag {
				return importMismatch(imp, "tag")
			}
			inst.tags = append(inst.tags, ext.Tag)
		}
	}
	return nil
}

func importMismatch(imp wasm.Import, what string) error {
	return errors.New(errors.PhaseInstantiate, errors.KindTypeMismatch).
		Context(imp.Module, imp.Name).
		Detail("incompatible %s", what).
		Build()
}

func (s *Store) initSegments(m *wasm.Module, inst *Instance) error {
	for _, seg := range m.Elements {
		refs := make([]types.Reference, len(seg.Inits))
		for j, init := range seg.Inits {
			v, err := evalConstExpr(init, inst, seg.Type)
			if err != nil {
				return err
			}
			refs[j] = v.Ref()
		}
		ei := NewElemInstance(refs)
		switch seg.Mode {
		case wasm.SegmentActive:
			off, err := evalConstExpr(seg.Offset, inst, types.I32())
			if err != nil {
				return err
			}
			table := inst.tables[seg.TableIndex]
			if !table.Init(offsetValue(off), ei, 0, uint64(len(refs))) {
				return errors.New(errors.PhaseInstantiate, errors.KindOutOfBounds).
					Context("element segment").
					Detail("segment does not fit table").
					Build()
			}
			ei.Drop()
		case wasm.SegmentDeclared:
			ei.Drop()
		}
		inst.elems = append(inst.elems, ei)
	}

	for _, seg := range m.Datas {
		di := NewDataInstance(seg.Data)
		if seg.Mode == wasm.SegmentActive {
			off, err := evalConstExpr(seg.Offset, inst, types.I32())
			if err != nil {
				return err
			}
			mem := inst.mems[seg.MemoryIndex]
			if !mem.Write(offsetValue(off), seg.Data) {
				return errors.New(errors.PhaseInstantiate, errors.KindOutOfBounds).
					Context("data segment").
					Detail("segment does not fit memory").
					Build()
			}
			di.Drop()
		}
		inst.datas = append(inst.datas, di)
	}
	return nil
}

func offsetValue(v types.Value) uint64 {
	if v.Kind() == types.KindI64 {
		return uint64(v.I64())
	}
	return uint64(uint32(v.I32()))
}

func exportExtern(inst *Instance, e wasm.Export) Extern {
	switch e.Kind {
	case wasm.KindFunc:
		return FuncExtern(inst.funcs[e.Index])
	case wasm.KindTable:
		return TableExtern(inst.tables[e.Index])
	case wasm.KindMemory:
		return MemoryExtern(inst.mems[e.Index])
	case wasm.KindGlobal:
		return GlobalExtern(inst.globals[e.Index])
	default:
		return TagExtern(inst.tags[e.Index])
	}
}
