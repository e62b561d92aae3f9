package tag

// Tag is a single node in an NBT tree. It is a tagged union: exactly one of
// the payload fields is meaningful, selected by kind. Payloads are private so
// that the List and Compound invariants cannot be broken from outside; build
// trees with the From* constructors, NewList and NewCompound.
//
// A Tag exclusively owns its children. Nothing in this package shares a node
// between two parents, and callers must not either: the structure is a tree,
// not a graph. Use Clone to place the same data in two trees.
type Tag struct {
	kind Kind

	byteVal   int8
	shortVal  int16
	intVal    int32
	longVal   int64
	floatVal  float32
	doubleVal float64
	strVal    string

	byteArr []byte
	intArr  []int32
	longArr []int64

	// list payload; elemKind is EndKind until the first element is appended
	elemKind Kind
	list     []*Tag

	// compound payload; entries preserves insertion order, index maps a
	// member name to its position in entries
	entries []entry
	index   map[string]int
}

type entry struct {
	name string
	val  *Tag
}

func FromByte(v int8) *Tag    { return &Tag{kind: ByteKind, byteVal: v} }
func FromShort(v int16) *Tag  { return &Tag{kind: ShortKind, shortVal: v} }
func FromInt(v int32) *Tag    { return &Tag{kind: IntKind, intVal: v} }
func FromLong(v int64) *Tag   { return &Tag{kind: LongKind, longVal: v} }
func FromFloat(v float32) *Tag  { return &Tag{kind: FloatKind, floatVal: v} }
func FromDouble(v float64) *Tag { return &Tag{kind: DoubleKind, doubleVal: v} }

func FromString(v string) *Tag { return &Tag{kind: StringKind, strVal: v} }

// FromBool returns a ByteKind tag holding 1 or 0. NBT has no boolean kind;
// this is the conventional encoding.
func FromBool(v bool) *Tag {
	if v {
		return FromByte(1)
	}
	return FromByte(0)
}

func FromByteArray(v []byte) *Tag  { return &Tag{kind: ByteArrayKind, byteArr: v} }
func FromIntArray(v []int32) *Tag  { return &Tag{kind: IntArrayKind, intArr: v} }
func FromLongArray(v []int64) *Tag { return &Tag{kind: LongArrayKind, longArr: v} }

// NewList returns an empty list whose element kind is elem. Pass EndKind for
// a list whose element kind is decided by the first Append.
func NewList(elem Kind) *Tag {
	return &Tag{kind: ListKind, elemKind: elem}
}

// FromSlice builds a list from elems. All elements must share one kind.
func FromSlice(elems []*Tag) (*Tag, error) {
	l := NewList(EndKind)
	for _, e := range elems {
		if err := l.Append(e); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func NewCompound() *Tag {
	return &Tag{kind: CompoundKind}
}

func (t *Tag) Kind() Kind {
	if t == nil {
		return EndKind
	}
	return t.kind
}

func (t *Tag) ByteValue() (int8, bool)      { return t.byteVal, t != nil && t.kind == ByteKind }
func (t *Tag) ShortValue() (int16, bool)    { return t.shortVal, t != nil && t.kind == ShortKind }
func (t *Tag) IntValue() (int32, bool)      { return t.intVal, t != nil && t.kind == IntKind }
func (t *Tag) LongValue() (int64, bool)     { return t.longVal, t != nil && t.kind == LongKind }
func (t *Tag) FloatValue() (float32, bool)  { return t.floatVal, t != nil && t.kind == FloatKind }
func (t *Tag) DoubleValue() (float64, bool) { return t.doubleVal, t != nil && t.kind == DoubleKind }
func (t *Tag) StringValue() (string, bool)  { return t.strVal, t != nil && t.kind == StringKind }

func (t *Tag) ByteArrayValue() ([]byte, bool) {
	return t.byteArr, t != nil && t.kind == ByteArrayKind
}

func (t *Tag) IntArrayValue() ([]int32, bool) {
	return t.intArr, t != nil && t.kind == IntArrayKind
}

func (t *Tag) LongArrayValue() ([]int64, bool) {
	return t.longArr, t != nil && t.kind == LongArrayKind
}

// Len returns the number of members of a compound, elements of a list, or
// elements of an array kind. It is 0 for every other kind.
func (t *Tag) Len() int {
	if t == nil {
		return 0
	}
	switch t.kind {
	case CompoundKind:
		return len(t.entries)
	case ListKind:
		return len(t.list)
	case ByteArrayKind:
		return len(t.byteArr)
	case IntArrayKind:
		return len(t.intArr)
	case LongArrayKind:
		return len(t.longArr)
	default:
		return 0
	}
}

// Clone returns a deep copy of t.
func (t *Tag) Clone() *Tag {
	if t == nil {
		return nil
	}
	dst := &Tag{
		kind:      t.kind,
		byteVal:   t.byteVal,
		shortVal:  t.shortVal,
		intVal:    t.intVal,
		longVal:   t.longVal,
		floatVal:  t.floatVal,
		doubleVal: t.doubleVal,
		strVal:    t.strVal,
		elemKind:  t.elemKind,
	}
	if t.byteArr != nil {
		dst.byteArr = append([]byte(nil), t.byteArr...)
	}
	if t.intArr != nil {
		dst.intArr = append([]int32(nil), t.intArr...)
	}
	if t.longArr != nil {
		dst.longArr = append([]int64(nil), t.longArr...)
	}
	if t.list != nil {
		dst.list = make([]*Tag, len(t.list))
		for i, e := range t.list {
			dst.list[i] = e.Clone()
		}
	}
	if t.entries != nil {
		dst.entries = make([]entry, len(t.entries))
		for i, e := range t.entries {
			dst.entries[i] = entry{name: e.name, val: e.val.Clone()}
		}
	}
	if t.index != nil {
		dst.index = make(map[string]int, len(t.index))
		for k, v := range t.index {
			dst.index[k] = v
		}
	}
	return dst
}

// Equal reports deep structural equality. Compound member order and list
// order are significant. Floats compare bit-exactly, so NaN == NaN and a
// round-tripped tree always equals its source.
func (t *Tag) Equal(o *Tag) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil {
		return false
	}
	if t.kind != o.kind {
		return false
	}
	switch t.kind {
	case EndKind:
		return true
	case ByteKind:
		return t.byteVal == o.byteVal
	case ShortKind:
		return t.shortVal == o.shortVal
	case IntKind:
		return t.intVal == o.intVal
	case LongKind:
		return t.longVal == o.longVal
	case FloatKind:
		return f32bits(t.floatVal) == f32bits(o.floatVal)
	case DoubleKind:
		return f64bits(t.doubleVal) == f64bits(o.doubleVal)
	case StringKind:
		return t.strVal == o.strVal
	case ByteArrayKind:
		if len(t.byteArr) != len(o.byteArr) {
			return false
		}
		for i := range t.byteArr {
			if t.byteArr[i] != o.byteArr[i] {
				return false
			}
		}
		return true
	case IntArrayKind:
		if len(t.intArr) != len(o.intArr) {
			return false
		}
		for i := range t.intArr {
			if t.intArr[i] != o.intArr[i] {
				return false
			}
		}
		return true
	case LongArrayKind:
		if len(t.longArr) != len(o.longArr) {
			return false
		}
		for i := range t.longArr {
			if t.longArr[i] != o.longArr[i] {
				return false
			}
		}
		return true
	case ListKind:
		if len(t.list) != len(o.list) {
			return false
		}
		if len(t.list) == 0 {
			// empty lists are equal regardless of a pre-declared element kind
			return true
		}
		if t.elemKind != o.elemKind {
			return false
		}
		for i := range t.list {
			if !t.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case CompoundKind:
		if len(t.entries) != len(o.entries) {
			return false
		}
		for i := range t.entries {
			if t.entries[i].name != o.entries[i].name {
				return false
			}
			if !t.entries[i].val.Equal(o.entries[i].val) {
				return false
			}
		}
		return true
	}
	return false
}

// Visit walks t depth first. f is called before and after each node's
// children with isPost false then true; returning dive=false from the pre
// call skips the children.
func (t *Tag) Visit(f func(t *Tag, isPost bool) (bool, error)) error {
	dive, err := f(t, false)
	if err != nil {
		return err
	}
	if dive {
		switch t.kind {
		case ListKind:
			for _, e := range t.list {
				if err := e.Visit(f); err != nil {
					return err
				}
			}
		case CompoundKind:
			for _, e := range t.entries {
				if err := e.val.Visit(f); err != nil {
					return err
				}
			}
		}
	}
	if _, err := f(t, true); err != nil {
		return err
	}
	return nil
}
