package tag

import "fmt"

// Kind identifies which of the 13 NBT variants a Tag holds. The numeric
// values are the wire discriminator bytes and are identical for every
// encoding profile.
type Kind byte

const (
	EndKind Kind = iota
	ByteKind
	ShortKind
	IntKind
	LongKind
	FloatKind
	DoubleKind
	ByteArrayKind
	StringKind
	ListKind
	CompoundKind
	IntArrayKind
	LongArrayKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		EndKind:       "End",
		ByteKind:      "Byte",
		ShortKind:     "Short",
		IntKind:       "Int",
		LongKind:      "Long",
		FloatKind:     "Float",
		DoubleKind:    "Double",
		ByteArrayKind: "ByteArray",
		StringKind:    "String",
		ListKind:      "List",
		CompoundKind:  "Compound",
		IntArrayKind:  "IntArray",
		LongArrayKind: "LongArray",
	}[k]
	if ok {
		return s
	}
	return fmt.Sprintf("<unknown kind %d>", byte(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"End":       EndKind,
		"Byte":      ByteKind,
		"Short":     ShortKind,
		"Int":       IntKind,
		"Long":      LongKind,
		"Float":     FloatKind,
		"Double":    DoubleKind,
		"ByteArray": ByteArrayKind,
		"String":    StringKind,
		"List":      ListKind,
		"Compound":  CompoundKind,
		"IntArray":  IntArrayKind,
		"LongArray": LongArrayKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

// Kinds returns every kind that may appear as a value in a tree. EndKind is
// excluded: it is the compound terminator and the empty-list sentinel, never
// a value.
func Kinds() []Kind {
	return []Kind{
		ByteKind,
		ShortKind,
		IntKind,
		LongKind,
		FloatKind,
		DoubleKind,
		ByteArrayKind,
		StringKind,
		ListKind,
		CompoundKind,
		IntArrayKind,
		LongArrayKind,
	}
}

// IsValid reports whether k is one of the 13 wire discriminators.
func (k Kind) IsValid() bool {
	return k <= LongArrayKind
}

// KindOf converts a wire discriminator byte, reporting whether it names a
// kind.
func KindOf(b byte) (Kind, bool) {
	k := Kind(b)
	return k, k.IsValid()
}

func (k Kind) IsLeaf() bool {
	switch k {
	case ListKind, CompoundKind:
		return false
	default:
		return true
	}
}
