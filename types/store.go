package types

import (
	"encoding/binary"
	"hash/fnv"
	"sync"
)

// TypeStore canonicalises recursive type groups. Two groups with the same
// structure intern to the same *RecGroup, so type equality elsewhere in the
// engine is pointer equality on the group plus index equality.
//
// Safe for concurrent use; a process typically owns one TypeStore per Store.
type TypeStore struct {
	mu     sync.Mutex
	groups map[uint64][]*RecGroup
	canons map[*RecGroup][]byte
	nextID uint64
}

func NewTypeStore() *TypeStore {
	return &TypeStore{
		groups: make(map[uint64][]*RecGroup),
		canons: make(map[*RecGroup][]byte),
	}
}

// Intern canonicalises the given group members. The members must reference
// each other (or previously interned composites) only; their Group fields
// must still be nil. Intern returns the canonical group: either a new group
// built from the given members, or a structurally equal previously interned
// group. Callers must use the returned group's Types from then on.
func (s *TypeStore) Intern(members []*CompositeType) *RecGroup {
	canon := canonicalize(members)
	h := fnv.New64a()
	h.Write(canon)
	sum := h.Sum64()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.groups[sum] {
		if len(g.Types) == len(members) && bytesEqual(s.canons[g], canon) {
			return g
		}
	}

	s.nextID++
	g := &RecGroup{Types: members, hash: sum, id: s.nextID}
	for i, m := range members {
		m.Group = g
		m.Index = i
	}
	s.groups[sum] = append(s.groups[sum], g)
	s.canons[g] = canon
	return g
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// canonicalize serializes a candidate group structurally: members of the
// candidate are encoded by local index, already interned composites by their
// group id plus index. The encoding is what makes recursion well-founded.
func canonicalize(members []*CompositeType) []byte {
	local := make(map[*CompositeType]int, len(members))
	for i, m := range members {
		local[m] = i
	}

	var out []byte
	u32 := func(v uint32) {
		out = binary.LittleEndian.AppendUint32(out, v)
	}
	u64 := func(v uint64) {
		out = binary.LittleEndian.AppendUint64(out, v)
	}
	comp := func(c *CompositeType) {
		if c == nil {
			out = append(out, 0)
			return
		}
		if i, ok := local[c]; ok {
			out = append(out, 1)
			u32(uint32(i))
			return
		}
		out = append(out, 2)
		u64(c.Group.id)
		u32(uint32(c.Index))
	}
	val := func(v ValType) {
		out = append(out, byte(v.Kind))
		if v.Kind == KindRef {
			out = append(out, byte(v.Ref.Heap), boolByte(v.Ref.Nullable))
			comp(v.Ref.Composite)
		}
	}
	field := func(f FieldType) {
		val(f.Type)
		out = append(out, boolByte(f.Mutable))
	}

	for _, m := range members {
		out = append(out, byte(m.Kind), boolByte(m.Final))
		comp(m.Parent)
		switch m.Kind {
		case CompFunc:
			u32(uint32(len(m.Func.Params)))
			for _, p := range m.Func.Params {
				val(p)
			}
			u32(uint32(len(m.Func.Results)))
			for _, r := range m.Func.Results {
				val(r)
			}
		case CompStruct:
			u32(uint32(len(m.Struct.Fields)))
			for _, f := range m.Struct.Fields {
				field(f)
			}
		case CompArray:
			field(m.Array.Element)
		}
	}
	return out
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
