package record

import (
	"fmt"

	"github.com/nbt-format/go-nbt/tag"
)

func scalarField[T any](name string, p *T, kind tag.Kind, to func(T) *tag.Tag, from func(*tag.Tag) (T, bool), opts []FieldOption) Field {
	f := Field{
		Name: name,
		encode: func() (*tag.Tag, error) {
			return to(*p), nil
		},
		decode: func(t *tag.Tag) error {
			v, ok := from(t)
			if !ok {
				return &TypeError{Expected: kind.String(), Actual: t.Kind().String()}
			}
			*p = v
			return nil
		},
	}
	for _, o := range opts {
		o(&f)
	}
	return f
}

func Byte(name string, p *int8, opts ...FieldOption) Field {
	return scalarField(name, p, tag.ByteKind, tag.FromByte, (*tag.Tag).ByteValue, opts)
}

func Short(name string, p *int16, opts ...FieldOption) Field {
	return scalarField(name, p, tag.ShortKind, tag.FromShort, (*tag.Tag).ShortValue, opts)
}

func Int(name string, p *int32, opts ...FieldOption) Field {
	return scalarField(name, p, tag.IntKind, tag.FromInt, (*tag.Tag).IntValue, opts)
}

func Long(name string, p *int64, opts ...FieldOption) Field {
	return scalarField(name, p, tag.LongKind, tag.FromLong, (*tag.Tag).LongValue, opts)
}

func Float(name string, p *float32, opts ...FieldOption) Field {
	return scalarField(name, p, tag.FloatKind, tag.FromFloat, (*tag.Tag).FloatValue, opts)
}

func Double(name string, p *float64, opts ...FieldOption) Field {
	return scalarField(name, p, tag.DoubleKind, tag.FromDouble, (*tag.Tag).DoubleValue, opts)
}

func String(name string, p *string, opts ...FieldOption) Field {
	return scalarField(name, p, tag.StringKind, tag.FromString, (*tag.Tag).StringValue, opts)
}

// Bool maps a Go bool onto the conventional ByteKind 0/1 encoding. Any
// non-zero byte unmarshals as true.
func Bool(name string, p *bool, opts ...FieldOption) Field {
	return scalarField(name, p, tag.ByteKind, tag.FromBool,
		func(t *tag.Tag) (bool, bool) {
			v, ok := t.ByteValue()
			return v != 0, ok
		}, opts)
}

func ByteArray(name string, p *[]byte, opts ...FieldOption) Field {
	return scalarField(name, p, tag.ByteArrayKind, tag.FromByteArray, (*tag.Tag).ByteArrayValue, opts)
}

func IntArray(name string, p *[]int32, opts ...FieldOption) Field {
	return scalarField(name, p, tag.IntArrayKind, tag.FromIntArray, (*tag.Tag).IntArrayValue, opts)
}

func LongArray(name string, p *[]int64, opts ...FieldOption) Field {
	return scalarField(name, p, tag.LongArrayKind, tag.FromLongArray, (*tag.Tag).LongArrayValue, opts)
}

// Compound binds a nested record. rec is typically a pointer to an embedded
// or referenced struct that itself implements Record.
func Compound(name string, rec Record, opts ...FieldOption) Field {
	f := Field{
		Name: name,
		encode: func() (*tag.Tag, error) {
			return Marshal(rec)
		},
		decode: func(t *tag.Tag) error {
			return Unmarshal(t, rec)
		},
	}
	for _, o := range opts {
		o(&f)
	}
	return f
}

// CompoundList binds a slice of nested records. mk allocates one zero
// element; unmarshal replaces *s wholesale.
func CompoundList[R Record](name string, s *[]R, mk func() R, opts ...FieldOption) Field {
	f := Field{
		Name: name,
		encode: func() (*tag.Tag, error) {
			l := tag.NewList(tag.CompoundKind)
			for i, r := range *s {
				c, err := Marshal(r)
				if err != nil {
					return nil, prefixPath(err, fmt.Sprintf("[%d]", i), true)
				}
				if err := l.Append(c); err != nil {
					return nil, err
				}
			}
			return l, nil
		},
		decode: func(t *tag.Tag) error {
			if t.Kind() != tag.ListKind {
				return &TypeError{Expected: "List of Compound", Actual: t.Kind().String()}
			}
			if t.Len() > 0 && t.ElemKind() != tag.CompoundKind {
				return &TypeError{Expected: "List of Compound", Actual: "List of " + t.ElemKind().String()}
			}
			out := make([]R, 0, t.Len())
			for i, el := range t.Elems() {
				r := mk()
				if err := Unmarshal(el, r); err != nil {
					return prefixPath(err, fmt.Sprintf("[%d]", i), false)
				}
				out = append(out, r)
			}
			*s = out
			return nil
		},
	}
	for _, o := range opts {
		o(&f)
	}
	return f
}

func scalarList[T any](name string, s *[]T, kind tag.Kind, to func(T) *tag.Tag, from func(*tag.Tag) (T, bool), opts []FieldOption) Field {
	f := Field{
		Name: name,
		encode: func() (*tag.Tag, error) {
			l := tag.NewList(kind)
			for _, v := range *s {
				if err := l.Append(to(v)); err != nil {
					return nil, err
				}
			}
			return l, nil
		},
		decode: func(t *tag.Tag) error {
			if t.Kind() != tag.ListKind {
				return &TypeError{Expected: "List of " + kind.String(), Actual: t.Kind().String()}
			}
			if t.Len() > 0 && t.ElemKind() != kind {
				return &TypeError{Expected: "List of " + kind.String(), Actual: "List of " + t.ElemKind().String()}
			}
			out := make([]T, 0, t.Len())
			for _, el := range t.Elems() {
				v, ok := from(el)
				if !ok {
					return &TypeError{Expected: kind.String(), Actual: el.Kind().String()}
				}
				out = append(out, v)
			}
			*s = out
			return nil
		},
	}
	for _, o := range opts {
		o(&f)
	}
	return f
}

func StringList(name string, s *[]string, opts ...FieldOption) Field {
	return scalarList(name, s, tag.StringKind, tag.FromString, (*tag.Tag).StringValue, opts)
}

func IntList(name string, s *[]int32, opts ...FieldOption) Field {
	return scalarList(name, s, tag.IntKind, tag.FromInt, (*tag.Tag).IntValue, opts)
}

func FloatList(name string, s *[]float32, opts ...FieldOption) Field {
	return scalarList(name, s, tag.FloatKind, tag.FromFloat, (*tag.Tag).FloatValue, opts)
}

func DoubleList(name string, s *[]float64, opts ...FieldOption) Field {
	return scalarList(name, s, tag.DoubleKind, tag.FromDouble, (*tag.Tag).DoubleValue, opts)
}
