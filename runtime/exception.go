package runtime

import "github.com/wippyai/wasm-engine/types"

// Exception is a thrown exception package: its tag plus the payload laid
// out like a parameter region (scalars packed at the tag type's parameter
// offsets, references in a parallel slice).
type Exception struct {
	Tag     *Tag
	Payload []byte
	Refs    []types.Reference
}

func (e *Exception) RefKind() types.RefKind { return types.RefKindException }

// NewException allocates an exception with a payload region sized for the
// tag's parameter list.
func NewException(tag *Tag) *Exception {
	ft := tag.Type()
	return &Exception{
		Tag:     tag,
		Payload: make([]byte, ft.ParamsSize),
		Refs:    make([]types.Reference, len(ft.Params)),
	}
}
