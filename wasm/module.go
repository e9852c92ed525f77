package wasm

import (
	"github.com/wippyai/wasm-engine/types"
)

// Module is a decoded, type-resolved WebAssembly module. Composite types
// have been canonicalised through a types.TypeStore; all index spaces are
// flattened (imports first, then module-defined entries).
type Module struct {
	// Types is the flattened type index space; each entry belongs to one of
	// Groups.
	Types  []*types.CompositeType
	Groups []*types.RecGroup

	Imports []Import
	Exports []Export

	// Funcs covers the whole function index space, imported functions first.
	Funcs    []FuncDesc
	Tables   []TableType
	Memories []MemoryType
	Globals  []Global
	Tags     []TagType

	Elements []ElementSegment
	Datas    []DataSegment

	// Code holds the bodies of module-defined functions:
	// Code[i] belongs to function index NumImportedFuncs+i.
	Code []FuncBody

	Start *uint32

	NumImportedFuncs    int
	NumImportedTables   int
	NumImportedMemories int
	NumImportedGlobals  int
	NumImportedTags     int

	// Names holds the optional debug name of each function, when a name
	// custom section was present.
	Names map[uint32]string
}

// FuncDesc declares a function's signature by type index.
type FuncDesc struct {
	Type      *types.CompositeType
	TypeIndex uint32
	Imported  bool
}

// FuncBody is a decoded function body: the raw expression bytes (ending
// with the 0x0B end opcode) plus expanded local declarations.
type FuncBody struct {
	Locals []types.ValType
	Body   []byte
}

// Import describes one import; exactly one descriptor field is meaningful
// depending on Kind.
type Import struct {
	Module string
	Name   string
	Kind   byte

	FuncTypeIndex uint32
	Table         TableType
	Memory        MemoryType
	Global        GlobalType
	TagTypeIndex  uint32
}

// Export names an index in the kind's index space.
type Export struct {
	Name  string
	Kind  byte
	Index uint32
}

// TableType describes a table: element type plus limits.
type TableType struct {
	Elem   types.ValType
	Min    uint64
	Max    uint64
	HasMax bool
	Shared bool
}

// MemoryType describes a linear memory in pages.
type MemoryType struct {
	Min      uint64
	Max      uint64
	HasMax   bool
	Shared   bool
	Memory64 bool
}

// GlobalType is a global's value type plus mutability.
type GlobalType struct {
	Type    types.ValType
	Mutable bool
}

// Global is a module-defined global with its initialiser expression.
type Global struct {
	Type GlobalType
	Init ConstExpr
}

// TagType declares an exception tag; the referenced function type describes
// the payload shape.
type TagType struct {
	Type      *types.FunctionType
	TypeIndex uint32
}

// SegmentMode distinguishes active, passive and declarative segments.
type SegmentMode uint8

const (
	SegmentActive SegmentMode = iota
	SegmentPassive
	SegmentDeclared
)

// ElementSegment backs table.init and active table initialisation.
type ElementSegment struct {
	Mode       SegmentMode
	TableIndex uint32
	Offset     ConstExpr // active only
	Type       types.ValType
	Inits      []ConstExpr // one constant expression per element
}

// DataSegment backs memory.init and active memory initialisation.
type DataSegment struct {
	Mode        SegmentMode
	MemoryIndex uint32
	Offset      ConstExpr // active only
	Data        []byte
}

// ConstExpr is a raw constant expression, including its terminating end
// opcode. The runtime evaluates it at instantiation time.
type ConstExpr []byte

// FuncType returns the function signature of the composite type at index i.
// The decoder guarantees function-typed uses reference function types.
func (m *Module) FuncType(i uint32) *types.FunctionType {
	return m.Types[i].Func
}

// ExportIndex finds an export by name and kind.
func (m *Module) ExportIndex(name string, kind byte) (uint32, bool) {
	for _, e := range m.Exports {
		if e.Name == name && e.Kind == kind {
			return e.Index, true
		}
	}
	return 0, false
}
