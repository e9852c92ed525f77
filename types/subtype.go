package types

// topOf returns the top of the lattice branch a heap kind belongs to.
func topOf(h HeapKind) HeapKind {
	switch h {
	case HeapFunc, HeapNoFunc:
		return HeapFunc
	case HeapExtern, HeapNoExtern:
		return HeapExtern
	case HeapExn, HeapNoExn:
		return HeapExn
	default:
		return HeapAny
	}
}

func compTop(k CompKind) HeapKind {
	if k == CompFunc {
		return HeapFunc
	}
	return HeapAny
}

// IsSubHeap reports whether heap type (sub, subComp) is a subtype of
// (super, superComp).
func IsSubHeap(sub HeapKind, subComp *CompositeType, super HeapKind, superComp *CompositeType) bool {
	if super == HeapComposite {
		if sub == HeapComposite {
			return subComp.MatchesSupertype(superComp)
		}
		// Only a bottom of the right branch is below a concrete type.
		return sub.IsBottom() && topOf(sub) == compTop(superComp.Kind)
	}

	switch sub {
	case HeapComposite:
		switch super {
		case HeapAny:
			return subComp.Kind != CompFunc
		case HeapEq:
			return subComp.Kind == CompStruct || subComp.Kind == CompArray
		case HeapStruct:
			return subComp.Kind == CompStruct
		case HeapArray:
			return subComp.Kind == CompArray
		case HeapFunc:
			return subComp.Kind == CompFunc
		}
		return false
	case HeapNone:
		return topOf(super) == HeapAny
	case HeapNoFunc:
		return topOf(super) == HeapFunc
	case HeapNoExtern:
		return topOf(super) == HeapExtern
	case HeapNoExn:
		return topOf(super) == HeapExn
	}

	if sub == super {
		return true
	}
	switch super {
	case HeapAny:
		return sub == HeapEq || sub == HeapI31 || sub == HeapStruct || sub == HeapArray
	case HeapEq:
		return sub == HeapI31 || sub == HeapStruct || sub == HeapArray
	}
	return false
}

// IsSubRef reports whether ref type sub matches super: nullability narrows
// and heap types follow the lattice.
func IsSubRef(sub, super RefType) bool {
	if sub.Nullable && !super.Nullable {
		return false
	}
	return IsSubHeap(sub.Heap, sub.Composite, super.Heap, super.Composite)
}

// IsSubType reports whether a value of type sub may flow where super is
// expected.
func IsSubType(sub, super ValType) bool {
	if super.Kind != KindRef || sub.Kind != KindRef {
		return sub.Kind == super.Kind
	}
	return IsSubRef(sub.Ref, super.Ref)
}

// RefMatches checks a runtime reference against a target ref type; this is
// the dynamic test behind ref.test, ref.cast and br_on_cast.
func RefMatches(ref Reference, target RefType) bool {
	if ref == nil {
		return target.Nullable
	}
	switch r := ref.(type) {
	case I31:
		_ = r
		return IsSubHeap(HeapI31, nil, target.Heap, target.Composite)
	}
	if t, ok := ref.(Typed); ok {
		ct := t.CompositeType()
		if ct != nil {
			return IsSubHeap(HeapComposite, ct, target.Heap, target.Composite)
		}
	}
	switch ref.RefKind() {
	case RefKindExtern:
		return IsSubHeap(HeapExtern, nil, target.Heap, target.Composite)
	case RefKindException:
		return IsSubHeap(HeapExn, nil, target.Heap, target.Composite)
	case RefKindFunc:
		return IsSubHeap(HeapFunc, nil, target.Heap, target.Composite)
	case RefKindStruct:
		return IsSubHeap(HeapStruct, nil, target.Heap, target.Composite)
	case RefKindArray:
		return IsSubHeap(HeapArray, nil, target.Heap, target.Composite)
	}
	return false
}
