// Package decode converts NBT wire bytes into tag trees.
//
// Decoding is parameterized by an encoding profile (see the profile
// package): byte order, length-field encoding, string text encoding and
// root-name presence all come from the profile, while the recursive
// kind-dispatch below is written once for both editions.
//
// Malformed and adversarial input is rejected, never crashed on: every
// failure wraps one of the sentinel errors in errs.go together with the byte
// offset, and recursion depth plus declared payload sizes are bounded.
package decode

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/nbt-format/go-nbt/mutf8"
	"github.com/nbt-format/go-nbt/profile"
	"github.com/nbt-format/go-nbt/tag"
)

// Decode parses one NBT document from data and returns the root name and
// tree. The root must be a compound; profiles without a named root report an
// empty name. Trailing bytes after the document are ignored, since callers
// such as region-file readers hand over slices of larger buffers.
func Decode(data []byte, opts ...Option) (string, *tag.Tag, error) {
	o := decOpts{prof: profile.Java, maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	d := &decoder{data: data, opts: o}

	kind, err := d.kindByte()
	if err != nil {
		return "", nil, err
	}
	if kind != tag.CompoundKind {
		return "", nil, d.errf(ErrRootKind, "got %s", kind)
	}
	name := ""
	if o.prof.NamedRoot {
		name, err = d.str()
		if err != nil {
			return "", nil, err
		}
	}
	root, err := d.payload(tag.CompoundKind, 0)
	if err != nil {
		return "", nil, err
	}
	return name, root, nil
}

type decoder struct {
	data []byte
	off  int
	opts decOpts

	// bytes of string/array payload declared so far, checked against the
	// MaxBytes budget
	spent int64
}

func (d *decoder) errf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", sentinel, d.off, fmt.Sprintf(format, args...))
}

func (d *decoder) take(n int) ([]byte, error) {
	if n < 0 || len(d.data)-d.off < n {
		return nil, d.errf(ErrTruncated, "need %d bytes, have %d", n, len(d.data)-d.off)
	}
	b := d.data[d.off : d.off+n]
	d.off += n
	return b, nil
}

func (d *decoder) spend(n int64) error {
	if d.opts.maxBytes <= 0 {
		return nil
	}
	d.spent += n
	if d.spent > d.opts.maxBytes {
		return d.errf(ErrLimit, "declared payload exceeds %d bytes", d.opts.maxBytes)
	}
	return nil
}

func (d *decoder) u8() (byte, error) {
	b, err := d.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *decoder) kindByte() (tag.Kind, error) {
	b, err := d.u8()
	if err != nil {
		return 0, err
	}
	k := tag.Kind(b)
	if !k.IsValid() {
		d.off-- // point at the offending byte
		return 0, d.errf(ErrTagKind, "byte 0x%02x", b)
	}
	return k, nil
}

func (d *decoder) i16() (int16, error) {
	b, err := d.take(2)
	if err != nil {
		return 0, err
	}
	return int16(d.opts.prof.ByteOrder.Uint16(b)), nil
}

func (d *decoder) i32() (int32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return int32(d.opts.prof.ByteOrder.Uint32(b)), nil
}

func (d *decoder) i64() (int64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return int64(d.opts.prof.ByteOrder.Uint64(b)), nil
}

func (d *decoder) f32() (float32, error) {
	b, err := d.take(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(d.opts.prof.ByteOrder.Uint32(b)), nil
}

func (d *decoder) f64() (float64, error) {
	b, err := d.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(d.opts.prof.ByteOrder.Uint64(b)), nil
}

// uvarint reads an unsigned LEB128 varint of at most 32 bits.
func (d *decoder) uvarint() (uint32, error) {
	var v uint32
	for shift := 0; ; shift += 7 {
		if shift > 28 {
			return 0, d.errf(ErrLength, "varint exceeds 32 bits")
		}
		b, err := d.u8()
		if err != nil {
			return 0, err
		}
		if shift == 28 && b&0x7F > 0x0F {
			return 0, d.errf(ErrLength, "varint exceeds 32 bits")
		}
		v |= uint32(b&0x7F) << shift
		if b&0x80 == 0 {
			return v, nil
		}
	}
}

// length reads an array/list length field: signed 32-bit fixed width or
// varint per the profile. Negative lengths are rejected.
func (d *decoder) length() (int, error) {
	if d.opts.prof.VarLength {
		v, err := d.uvarint()
		if err != nil {
			return 0, err
		}
		if v > math.MaxInt32 {
			return 0, d.errf(ErrLength, "length %d exceeds int32", v)
		}
		return int(v), nil
	}
	v, err := d.i32()
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, d.errf(ErrLength, "negative length %d", v)
	}
	return int(v), nil
}

// str reads a length-prefixed string: fixed 16-bit unsigned length (Java) or
// varint (Bedrock), then the payload in the profile's text encoding. Text
// that does not decode is an ErrText, distinct from a short payload which is
// ErrTruncated.
func (d *decoder) str() (string, error) {
	var n int
	if d.opts.prof.VarLength {
		v, err := d.uvarint()
		if err != nil {
			return "", err
		}
		n = int(v)
	} else {
		v, err := d.i16()
		if err != nil {
			return "", err
		}
		if v < 0 {
			return "", d.errf(ErrLength, "negative string length %d", v)
		}
		n = int(v)
	}
	if err := d.spend(int64(n)); err != nil {
		return "", err
	}
	start := d.off
	b, err := d.take(n)
	if err != nil {
		return "", err
	}
	if d.opts.prof.ModifiedUTF8 {
		s, err := mutf8.Decode(b)
		if err != nil {
			d.off = start
			return "", d.errf(ErrText, "%v", err)
		}
		return s, nil
	}
	if !utf8.Valid(b) {
		d.off = start
		return "", d.errf(ErrText, "invalid UTF-8")
	}
	return string(b), nil
}

func (d *decoder) payload(kind tag.Kind, depth int) (*tag.Tag, error) {
	if depth > d.opts.maxDepth {
		return nil, d.errf(ErrLimit, "nesting exceeds %d", d.opts.maxDepth)
	}
	switch kind {
	case tag.ByteKind:
		b, err := d.u8()
		if err != nil {
			return nil, err
		}
		return tag.FromByte(int8(b)), nil
	case tag.ShortKind:
		v, err := d.i16()
		if err != nil {
			return nil, err
		}
		return tag.FromShort(v), nil
	case tag.IntKind:
		v, err := d.i32()
		if err != nil {
			return nil, err
		}
		return tag.FromInt(v), nil
	case tag.LongKind:
		v, err := d.i64()
		if err != nil {
			return nil, err
		}
		return tag.FromLong(v), nil
	case tag.FloatKind:
		v, err := d.f32()
		if err != nil {
			return nil, err
		}
		return tag.FromFloat(v), nil
	case tag.DoubleKind:
		v, err := d.f64()
		if err != nil {
			return nil, err
		}
		return tag.FromDouble(v), nil
	case tag.StringKind:
		s, err := d.str()
		if err != nil {
			return nil, err
		}
		return tag.FromString(s), nil
	case tag.ByteArrayKind:
		n, err := d.length()
		if err != nil {
			return nil, err
		}
		if err := d.spend(int64(n)); err != nil {
			return nil, err
		}
		b, err := d.take(n)
		if err != nil {
			return nil, err
		}
		return tag.FromByteArray(append([]byte(nil), b...)), nil
	case tag.IntArrayKind:
		n, err := d.length()
		if err != nil {
			return nil, err
		}
		if err := d.arrayFits(n, 4); err != nil {
			return nil, err
		}
		arr := make([]int32, n)
		for i := range arr {
			v, err := d.i32()
			if err != nil {
				return nil, err
			}
			arr[i] = v
		}
		return tag.FromIntArray(arr), nil
	case tag.LongArrayKind:
		n, err := d.length()
		if err != nil {
			return nil, err
		}
		if err := d.arrayFits(n, 8); err != nil {
			return nil, err
		}
		arr := make([]int64, n)
		for i := range arr {
			v, err := d.i64()
			if err != nil {
				return nil, err
			}
			arr[i] = v
		}
		return tag.FromLongArray(arr), nil
	case tag.ListKind:
		return d.list(depth)
	case tag.CompoundKind:
		return d.compound(depth)
	}
	return nil, d.errf(ErrTagKind, "%s has no payload", kind)
}

// arrayFits rejects element counts whose minimum wire size exceeds the
// remaining input, so a forged length cannot drive a huge allocation.
func (d *decoder) arrayFits(n, elemSize int) error {
	if err := d.spend(int64(n) * int64(elemSize)); err != nil {
		return err
	}
	if int64(n)*int64(elemSize) > int64(len(d.data)-d.off) {
		return d.errf(ErrTruncated, "%d elements of %d bytes exceed remaining input", n, elemSize)
	}
	return nil
}

func (d *decoder) list(depth int) (*tag.Tag, error) {
	elem, err := d.kindByte()
	if err != nil {
		return nil, err
	}
	n, err := d.length()
	if err != nil {
		return nil, err
	}
	if elem == tag.EndKind {
		if n != 0 {
			return nil, d.errf(ErrTagKind, "list of End with length %d", n)
		}
		// empty list, element kind not yet set
		return tag.NewList(tag.EndKind), nil
	}
	// a list element has at least one byte of payload
	if err := d.arrayFits(n, 1); err != nil {
		return nil, err
	}
	l := tag.NewList(elem)
	for i := 0; i < n; i++ {
		v, err := d.payload(elem, depth+1)
		if err != nil {
			return nil, err
		}
		if err := l.Append(v); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (d *decoder) compound(depth int) (*tag.Tag, error) {
	c := tag.NewCompound()
	for {
		kind, err := d.kindByte()
		if err != nil {
			return nil, err
		}
		if kind == tag.EndKind {
			return c, nil
		}
		name, err := d.str()
		if err != nil {
			return nil, err
		}
		v, err := d.payload(kind, depth+1)
		if err != nil {
			return nil, err
		}
		// duplicate names: last value wins, at the position of the first
		if err := c.Set(name, v); err != nil {
			return nil, err
		}
	}
}
