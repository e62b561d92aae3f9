// Package encode converts tag trees into NBT wire bytes. It is the mirror
// of the decode package: for every profile p and well-formed tree t,
// decoding Encode(t, p) under p reproduces t exactly, including compound
// member order and the empty-list element-kind sentinel. Encoding a
// well-formed tree only fails when a length exceeds what the profile's
// length field can represent.
package encode

import (
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/nbt-format/go-nbt/mutf8"
	"github.com/nbt-format/go-nbt/profile"
	"github.com/nbt-format/go-nbt/tag"
)

// Encode writes one NBT document to w. The root must be a compound. The
// name is written per the profile; BedrockNetwork elides it.
func Encode(name string, root *tag.Tag, w io.Writer, opts ...Option) error {
	b, err := Append(nil, name, root, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Append appends one encoded NBT document to dst and returns the extended
// slice.
func Append(dst []byte, name string, root *tag.Tag, opts ...Option) ([]byte, error) {
	o := encOpts{prof: profile.Java}
	for _, opt := range opts {
		opt(&o)
	}
	if root.Kind() != tag.CompoundKind {
		return nil, fmt.Errorf("%w: got %s", ErrRootKind, root.Kind())
	}
	e := &encoder{prof: o.prof}
	dst = append(dst, byte(tag.CompoundKind))
	var err error
	if o.prof.NamedRoot {
		dst, err = e.str(dst, name)
		if err != nil {
			return nil, err
		}
	}
	return e.payload(dst, root)
}

type encoder struct {
	prof profile.Profile
}

func (e *encoder) u16(dst []byte, v uint16) []byte {
	var b [2]byte
	e.prof.ByteOrder.PutUint16(b[:], v)
	return append(dst, b[:]...)
}

func (e *encoder) u32(dst []byte, v uint32) []byte {
	var b [4]byte
	e.prof.ByteOrder.PutUint32(b[:], v)
	return append(dst, b[:]...)
}

func (e *encoder) u64(dst []byte, v uint64) []byte {
	var b [8]byte
	e.prof.ByteOrder.PutUint64(b[:], v)
	return append(dst, b[:]...)
}

func uvarint(dst []byte, v uint32) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(v)|0x80)
		v >>= 7
	}
	return append(dst, byte(v))
}

// length writes an array/list length field.
func (e *encoder) length(dst []byte, n int) ([]byte, error) {
	if int64(n) > math.MaxInt32 {
		return nil, fmt.Errorf("%w: length %d exceeds int32", ErrOverflow, n)
	}
	if e.prof.VarLength {
		return uvarint(dst, uint32(n)), nil
	}
	return e.u32(dst, uint32(int32(n))), nil
}

// str writes a length-prefixed string in the profile's text encoding.
func (e *encoder) str(dst []byte, s string) ([]byte, error) {
	var payload []byte
	if e.prof.ModifiedUTF8 {
		payload = mutf8.Encode(s)
	} else if utf8.ValidString(s) {
		payload = []byte(s)
	} else {
		// sanitize the way Go string iteration does, so the bytes on the
		// wire always decode
		payload = make([]byte, 0, len(s))
		for _, r := range s {
			payload = utf8.AppendRune(payload, r)
		}
	}
	if e.prof.VarLength {
		if int64(len(payload)) > math.MaxInt32 {
			return nil, fmt.Errorf("%w: string length %d exceeds int32", ErrOverflow, len(payload))
		}
		dst = uvarint(dst, uint32(len(payload)))
	} else {
		// the decoder rejects 16-bit lengths with the sign bit set, so cap
		// at MaxInt16 rather than MaxUint16
		if len(payload) > math.MaxInt16 {
			return nil, fmt.Errorf("%w: string length %d exceeds int16", ErrOverflow, len(payload))
		}
		dst = e.u16(dst, uint16(len(payload)))
	}
	return append(dst, payload...), nil
}

func (e *encoder) payload(dst []byte, t *tag.Tag) ([]byte, error) {
	switch t.Kind() {
	case tag.ByteKind:
		v, _ := t.ByteValue()
		return append(dst, byte(v)), nil
	case tag.ShortKind:
		v, _ := t.ShortValue()
		return e.u16(dst, uint16(v)), nil
	case tag.IntKind:
		v, _ := t.IntValue()
		return e.u32(dst, uint32(v)), nil
	case tag.LongKind:
		v, _ := t.LongValue()
		return e.u64(dst, uint64(v)), nil
	case tag.FloatKind:
		v, _ := t.FloatValue()
		return e.u32(dst, math.Float32bits(v)), nil
	case tag.DoubleKind:
		v, _ := t.DoubleValue()
		return e.u64(dst, math.Float64bits(v)), nil
	case tag.StringKind:
		v, _ := t.StringValue()
		return e.str(dst, v)
	case tag.ByteArrayKind:
		v, _ := t.ByteArrayValue()
		dst, err := e.length(dst, len(v))
		if err != nil {
			return nil, err
		}
		return append(dst, v...), nil
	case tag.IntArrayKind:
		v, _ := t.IntArrayValue()
		dst, err := e.length(dst, len(v))
		if err != nil {
			return nil, err
		}
		for _, x := range v {
			dst = e.u32(dst, uint32(x))
		}
		return dst, nil
	case tag.LongArrayKind:
		v, _ := t.LongArrayValue()
		dst, err := e.length(dst, len(v))
		if err != nil {
			return nil, err
		}
		for _, x := range v {
			dst = e.u64(dst, uint64(x))
		}
		return dst, nil
	case tag.ListKind:
		// an empty list carries its element kind byte, EndKind when the
		// kind was never set
		dst = append(dst, byte(t.ElemKind()))
		dst, err := e.length(dst, t.Len())
		if err != nil {
			return nil, err
		}
		for _, el := range t.Elems() {
			dst, err = e.payload(dst, el)
			if err != nil {
				return nil, err
			}
		}
		return dst, nil
	case tag.CompoundKind:
		var err error
		for name, v := range t.All() {
			dst = append(dst, byte(v.Kind()))
			dst, err = e.str(dst, name)
			if err != nil {
				return nil, err
			}
			dst, err = e.payload(dst, v)
			if err != nil {
				return nil, err
			}
		}
		return append(dst, byte(tag.EndKind)), nil
	}
	return nil, fmt.Errorf("cannot encode %s", t.Kind())
}
