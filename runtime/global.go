package runtime

import (
	"github.com/wippyai/wasm-engine/types"
	"github.com/wippyai/wasm-engine/wasm"
)

// Global is a typed mutable-or-immutable cell.
type Global struct {
	typ wasm.GlobalType
	val types.Value
}

func NewGlobal(typ wasm.GlobalType, init types.Value) *Global {
	return &Global{typ: typ, val: init}
}

func (g *Global) Type() wasm.GlobalType { return g.typ }
func (g *Global) Get() types.Value      { return g.val }

// Set writes the cell. Mutability is checked at the public API boundary;
// translated code only reaches mutable globals.
func (g *Global) Set(v types.Value) { g.val = v }

// Tag identifies an exception class. Tags have identity: two instances
// importing the same tag share the *Tag, and catch matching compares
// pointers.
type Tag struct {
	typ   *types.FunctionType
	index uint32
}

func NewTag(typ *types.FunctionType, index uint32) *Tag {
	return &Tag{typ: typ, index: index}
}

// Type describes the payload shape.
func (t *Tag) Type() *types.FunctionType { return t.typ }

// Index is the tag's index in its defining module, for diagnostics.
func (t *Tag) Index() uint32 { return t.index }
