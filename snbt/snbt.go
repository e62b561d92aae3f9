// Package snbt renders tag trees as SNBT text, the human-readable form of
// NBT: typed numeric suffixes (1b, 2s, 3L, 1.5f, 2.5d), typed array
// brackets ([B; ...], [I; ...], [L; ...]), quoted strings and braced
// compounds. Output is display-oriented; the codec packages are the
// round-trip surface.
package snbt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nbt-format/go-nbt/tag"
)

type encState struct {
	indent int
	depth  int
	Color  func(tag.Kind, ColorAttr, string) string
}

type Option func(*encState)

// Indent selects pretty multi-line output with n-space indentation. Zero,
// the default, renders one line.
func Indent(n int) Option {
	return func(es *encState) { es.indent = n }
}

// EncodeColors colorizes output with c's palette.
func EncodeColors(c *Colors) Option {
	return func(es *encState) { es.Color = c.Color }
}

// Encode writes the SNBT rendering of t to w.
func Encode(t *tag.Tag, w io.Writer, opts ...Option) error {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.Color == nil {
		es.Color = func(_ tag.Kind, _ ColorAttr, s string) string { return s }
	}
	if err := es.encode(t, w); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *encState) nl(w io.Writer) error {
	if es.indent == 0 {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func (es *encState) sep(w io.Writer, k tag.Kind) error {
	if es.indent == 0 {
		return writeString(w, es.Color(k, SepColor, ","))
	}
	if err := writeString(w, es.Color(k, SepColor, ",")); err != nil {
		return err
	}
	return es.nl(w)
}

func (es *encState) encode(t *tag.Tag, w io.Writer) error {
	switch t.Kind() {
	case tag.ByteKind:
		v, _ := t.ByteValue()
		return es.scalar(w, t.Kind(), strconv.FormatInt(int64(v), 10), "b")
	case tag.ShortKind:
		v, _ := t.ShortValue()
		return es.scalar(w, t.Kind(), strconv.FormatInt(int64(v), 10), "s")
	case tag.IntKind:
		v, _ := t.IntValue()
		return es.scalar(w, t.Kind(), strconv.FormatInt(int64(v), 10), "")
	case tag.LongKind:
		v, _ := t.LongValue()
		return es.scalar(w, t.Kind(), strconv.FormatInt(v, 10), "L")
	case tag.FloatKind:
		v, _ := t.FloatValue()
		return es.scalar(w, t.Kind(), floatString(float64(v), 32), "f")
	case tag.DoubleKind:
		v, _ := t.DoubleValue()
		return es.scalar(w, t.Kind(), floatString(v, 64), "d")
	case tag.StringKind:
		v, _ := t.StringValue()
		return writeString(w, es.Color(t.Kind(), ValueColor, tag.QuoteString(v)))
	case tag.ByteArrayKind:
		v, _ := t.ByteArrayValue()
		return es.array(w, t.Kind(), "B", len(v), func(i int) (string, string) {
			return strconv.FormatInt(int64(int8(v[i])), 10), "b"
		})
	case tag.IntArrayKind:
		v, _ := t.IntArrayValue()
		return es.array(w, t.Kind(), "I", len(v), func(i int) (string, string) {
			return strconv.FormatInt(int64(v[i]), 10), ""
		})
	case tag.LongArrayKind:
		v, _ := t.LongArrayValue()
		return es.array(w, t.Kind(), "L", len(v), func(i int) (string, string) {
			return strconv.FormatInt(v[i], 10), "L"
		})
	case tag.ListKind:
		return es.list(t, w)
	case tag.CompoundKind:
		return es.compound(t, w)
	}
	return fmt.Errorf("cannot render %s", t.Kind())
}

func (es *encState) scalar(w io.Writer, k tag.Kind, num, suffix string) error {
	if err := writeString(w, es.Color(k, ValueColor, num)); err != nil {
		return err
	}
	if suffix == "" {
		return nil
	}
	return writeString(w, es.Color(k, SuffixColor, suffix))
}

func (es *encState) array(w io.Writer, k tag.Kind, marker string, n int, at func(int) (string, string)) error {
	if err := writeString(w, es.Color(k, SepColor, "[")); err != nil {
		return err
	}
	if err := writeString(w, es.Color(k, SuffixColor, marker+";")); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if i > 0 {
			if err := writeString(w, es.Color(k, SepColor, ",")); err != nil {
				return err
			}
		}
		num, suffix := at(i)
		if err := es.scalar(w, k, num, suffix); err != nil {
			return err
		}
	}
	return writeString(w, es.Color(k, SepColor, "]"))
}

func (es *encState) list(t *tag.Tag, w io.Writer) error {
	k := t.Kind()
	if err := writeString(w, es.Color(k, SepColor, "[")); err != nil {
		return err
	}
	if t.Len() == 0 {
		return writeString(w, es.Color(k, SepColor, "]"))
	}
	es.depth++
	if err := es.nl(w); err != nil {
		return err
	}
	for i, el := range t.Elems() {
		if i > 0 {
			if err := es.sep(w, k); err != nil {
				return err
			}
		}
		if err := es.encode(el, w); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.nl(w); err != nil {
		return err
	}
	return writeString(w, es.Color(k, SepColor, "]"))
}

func (es *encState) compound(t *tag.Tag, w io.Writer) error {
	k := t.Kind()
	if err := writeString(w, es.Color(k, SepColor, "{")); err != nil {
		return err
	}
	if t.Len() == 0 {
		return writeString(w, es.Color(k, SepColor, "}"))
	}
	es.depth++
	if err := es.nl(w); err != nil {
		return err
	}
	first := true
	for name, v := range t.All() {
		if !first {
			if err := es.sep(w, k); err != nil {
				return err
			}
		}
		first = false
		if err := writeString(w, es.Color(k, FieldColor, tag.QuoteName(name))); err != nil {
			return err
		}
		if err := writeString(w, es.Color(k, SepColor, ": ")); err != nil {
			return err
		}
		if err := es.encode(v, w); err != nil {
			return err
		}
	}
	es.depth--
	if err := es.nl(w); err != nil {
		return err
	}
	return writeString(w, es.Color(k, SepColor, "}"))
}

func floatString(v float64, bits int) string {
	s := strconv.FormatFloat(v, 'g', -1, bits)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
